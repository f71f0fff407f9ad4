package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Matchup is a head-to-head pairing of two fantasy teams for one week.
// IsComplete is an external signal set once the week's games have all
// concluded; the winner is derived from the scores, never stored.
type Matchup struct {
	ID         uuid.UUID       `json:"id"`
	WeekID     uuid.UUID       `json:"week_id"`
	Team1ID    uuid.UUID       `json:"team1_id"`
	Team2ID    uuid.UUID       `json:"team2_id"`
	Team1Score decimal.Decimal `json:"team1_score"`
	Team2Score decimal.Decimal `json:"team2_score"`
	IsComplete bool            `json:"is_complete"`
}
