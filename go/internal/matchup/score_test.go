package matchup

import (
	"testing"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func activeSlot(playerID uuid.UUID) models.RosterSlot {
	return models.RosterSlot{ID: uuid.New(), PlayerID: &playerID, IsActive: true}
}

func benchSlot(playerID uuid.UUID) models.RosterSlot {
	return models.RosterSlot{ID: uuid.New(), PlayerID: &playerID, IsActive: false}
}

func statRow(playerID uuid.UUID, points string) models.PlayerFantasyStats {
	return models.PlayerFantasyStats{
		ID:                 uuid.New(),
		PlayerID:           playerID,
		TotalFantasyPoints: decimal.RequireFromString(points),
	}
}

func TestWeeklyTeamScore(t *testing.T) {
	starter1 := uuid.New()
	starter2 := uuid.New()
	benched := uuid.New()
	departed := uuid.New()

	tests := []struct {
		name  string
		slots []models.RosterSlot
		stats []models.PlayerFantasyStats
		want  string
	}{
		{
			name: "no slots no stats",
			want: "0",
		},
		{
			name:  "active players sum",
			slots: []models.RosterSlot{activeSlot(starter1), activeSlot(starter2)},
			stats: []models.PlayerFantasyStats{statRow(starter1, "12.5"), statRow(starter2, "7.5")},
			want:  "20",
		},
		{
			name:  "benched player excluded",
			slots: []models.RosterSlot{activeSlot(starter1), benchSlot(benched)},
			stats: []models.PlayerFantasyStats{statRow(starter1, "10"), statRow(benched, "40")},
			want:  "10",
		},
		{
			name:  "empty active slot contributes nothing",
			slots: []models.RosterSlot{activeSlot(starter1), {ID: uuid.New(), IsActive: true}},
			stats: []models.PlayerFantasyStats{statRow(starter1, "6")},
			want:  "6",
		},
		{
			name:  "stat row without a slot is ignored",
			slots: []models.RosterSlot{activeSlot(starter1)},
			stats: []models.PlayerFantasyStats{statRow(starter1, "6"), statRow(departed, "18")},
			want:  "6",
		},
		{
			name:  "active player with no stats yet",
			slots: []models.RosterSlot{activeSlot(starter1), activeSlot(starter2)},
			stats: []models.PlayerFantasyStats{statRow(starter1, "-2")},
			want:  "-2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeeklyTeamScore(tt.slots, tt.stats)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("WeeklyTeamScore() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	team1 := uuid.New()
	team2 := uuid.New()

	tests := []struct {
		name   string
		score1 string
		score2 string
		want   *uuid.UUID
	}{
		{"team1 wins", "10", "7", &team1},
		{"team2 wins", "7", "10", &team2},
		{"tie yields no winner", "8", "8", nil},
		{"zero zero is a tie", "0", "0", nil},
		{"fractional margin still wins", "8.1", "8", &team1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := models.Matchup{
				Team1ID:    team1,
				Team2ID:    team2,
				Team1Score: decimal.RequireFromString(tt.score1),
				Team2Score: decimal.RequireFromString(tt.score2),
			}
			got := Resolve(m)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("Resolve() = %s, want nil", got)
			case tt.want != nil && got == nil:
				t.Errorf("Resolve() = nil, want %s", tt.want)
			case tt.want != nil && *got != *tt.want:
				t.Errorf("Resolve() = %s, want %s", got, tt.want)
			}
		})
	}
}
