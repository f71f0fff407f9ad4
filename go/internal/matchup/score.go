package matchup

import (
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WeeklyTeamScore totals the fantasy points a team earned for one week.
// Only players sitting in an active slot count; benched players and empty
// slots contribute nothing, and stat rows for players no longer slotted are
// ignored.
func WeeklyTeamScore(slots []models.RosterSlot, stats []models.PlayerFantasyStats) decimal.Decimal {
	active := make(map[uuid.UUID]bool, len(slots))
	for _, slot := range slots {
		if slot.IsActive && slot.PlayerID != nil {
			active[*slot.PlayerID] = true
		}
	}

	score := decimal.Zero
	for _, s := range stats {
		if active[s.PlayerID] {
			score = score.Add(s.TotalFantasyPoints)
		}
	}
	return score
}

// Resolve derives the winner of a matchup from its scores. A strictly
// higher score wins; equal scores are a tie and yield nil. The result is
// only meaningful once the matchup is complete.
func Resolve(m models.Matchup) *uuid.UUID {
	switch m.Team1Score.Cmp(m.Team2Score) {
	case 1:
		id := m.Team1ID
		return &id
	case -1:
		id := m.Team2ID
		return &id
	default:
		return nil
	}
}
