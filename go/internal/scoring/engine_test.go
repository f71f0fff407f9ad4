package scoring

import (
	"testing"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/shopspring/decimal"
)

func TestComputePoints(t *testing.T) {
	cfg := models.DefaultScoringConfig()

	tests := []struct {
		name string
		line models.StatLine
		want string
	}{
		{
			name: "empty line scores zero",
			line: models.StatLine{},
			want: "0",
		},
		{
			name: "goals and assists",
			line: models.StatLine{Goals: 2, Assists: 1},
			want: "16", // 2*6 + 1*4
		},
		{
			name: "games played never scores",
			line: models.StatLine{GamesPlayed: 7},
			want: "0",
		},
		{
			name: "negative plus minus",
			line: models.StatLine{PlusMinus: -3},
			want: "-3",
		},
		{
			name: "goalie week with negative weights",
			line: models.StatLine{Wins: 2, Losses: 1, GoalsAgainst: 5, Saves: 60, Shutouts: 1},
			want: "43", // 2*4 - 1 - 5 + 60*0.6 + 5
		},
		{
			name: "fractional weights accumulate exactly",
			line: models.StatLine{ShotsOnGoal: 3, Hits: 3, PenaltyMinutes: 1},
			want: "3.5", // 3*0.4 + 3*0.6 + 0.5
		},
		{
			name: "full skater line",
			line: models.StatLine{
				GamesPlayed:    3,
				Goals:          1,
				Assists:        2,
				PlusMinus:      2,
				PenaltyMinutes: 4,
				PowerPlayGoals: 1,
				ShotsOnGoal:    10,
				Hits:           5,
				BlockedShots:   2,
			},
			want: "28", // 6 + 8 + 2 + 2 + 1 + 4 + 3 + 2
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.line, cfg)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ComputePoints() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputePointsIsDeterministic(t *testing.T) {
	cfg := models.DefaultScoringConfig()
	line := models.StatLine{Goals: 3, Assists: 5, ShotsOnGoal: 17, Hits: 9, PlusMinus: -2}

	first := ComputePoints(line, cfg)
	for i := 0; i < 100; i++ {
		if got := ComputePoints(line, cfg); !got.Equal(first) {
			t.Fatalf("run %d: ComputePoints() = %s, want %s", i, got, first)
		}
	}
}

// Each category must contribute through its own weight and no other.
func TestComputePointsWeightIsolation(t *testing.T) {
	base := models.ScoringConfig{}
	tests := []struct {
		name   string
		line   models.StatLine
		weight func(*models.ScoringConfig) *decimal.Decimal
	}{
		{"goals", models.StatLine{Goals: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Goals }},
		{"assists", models.StatLine{Assists: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Assists }},
		{"plus_minus", models.StatLine{PlusMinus: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.PlusMinus }},
		{"penalty_minutes", models.StatLine{PenaltyMinutes: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.PenaltyMinutes }},
		{"power_play_goals", models.StatLine{PowerPlayGoals: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.PowerPlayGoals }},
		{"power_play_assists", models.StatLine{PowerPlayAssists: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.PowerPlayAssists }},
		{"short_handed_goals", models.StatLine{ShortHandedGoals: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.ShortHandedGoals }},
		{"short_handed_assists", models.StatLine{ShortHandedAssists: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.ShortHandedAssists }},
		{"shots_on_goal", models.StatLine{ShotsOnGoal: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.ShotsOnGoal }},
		{"hits", models.StatLine{Hits: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Hits }},
		{"blocked_shots", models.StatLine{BlockedShots: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.BlockedShots }},
		{"wins", models.StatLine{Wins: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Wins }},
		{"losses", models.StatLine{Losses: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Losses }},
		{"goals_against", models.StatLine{GoalsAgainst: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.GoalsAgainst }},
		{"saves", models.StatLine{Saves: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Saves }},
		{"shutouts", models.StatLine{Shutouts: 1}, func(c *models.ScoringConfig) *decimal.Decimal { return &c.Shutouts }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			*tt.weight(&cfg) = decimal.NewFromInt(7)
			if got := ComputePoints(tt.line, cfg); !got.Equal(decimal.NewFromInt(7)) {
				t.Errorf("ComputePoints() = %s, want 7", got)
			}
			if got := ComputePoints(models.StatLine{}, cfg); !got.IsZero() {
				t.Errorf("ComputePoints(empty) = %s, want 0", got)
			}
		})
	}
}
