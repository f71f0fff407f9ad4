package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FantasyTeam is a user-owned team within a league. A given owner may only
// have one team per league.
type FantasyTeam struct {
	ID          uuid.UUID       `json:"id"`
	LeagueID    uuid.UUID       `json:"league_id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Name        string          `json:"name"`
	LogoURL     string          `json:"logo_url"`
	Wins        int             `json:"wins"`
	Losses      int             `json:"losses"`
	Ties        int             `json:"ties"`
	TotalPoints decimal.Decimal `json:"total_points"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// WinPercentage treats ties as half a win. Zero games played yields 0.
func (t *FantasyTeam) WinPercentage() float64 {
	total := t.Wins + t.Losses + t.Ties
	if total == 0 {
		return 0
	}
	return (float64(t.Wins) + float64(t.Ties)*0.5) / float64(total)
}
