package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PositionCategory groups hockey positions into forward, defense and goalie
type PositionCategory string

const (
	PositionCategoryForward PositionCategory = "forward"
	PositionCategoryDefense PositionCategory = "defense"
	PositionCategoryGoalie  PositionCategory = "goalie"
)

// Position is hockey position reference data (Center, Left Wing, Goalie, ...)
type Position struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Abbreviation string           `json:"abbreviation"`
	Category     PositionCategory `json:"category"`
}

// Player is an NHL player, consumed as read-only reference data
type Player struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PositionID   uuid.UUID  `json:"position_id"`
	TeamID       *uuid.UUID `json:"team_id,omitempty"`
	JerseyNumber *int       `json:"jersey_number,omitempty"`
	IsActive     bool       `json:"is_active"`
	ExternalID   string     `json:"external_id"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// PlayerSeasonStats aggregates one player's production for a season with a
// team. Points, power-play/short-handed points and the percentage fields are
// derived; see players.DeriveSeasonTotals.
type PlayerSeasonStats struct {
	ID       uuid.UUID `json:"id"`
	PlayerID uuid.UUID `json:"player_id"`
	TeamID   uuid.UUID `json:"team_id"`
	SeasonID uuid.UUID `json:"season_id"`

	GamesPlayed        int `json:"games_played"`
	Goals              int `json:"goals"`
	Assists            int `json:"assists"`
	Points             int `json:"points"`
	PlusMinus          int `json:"plus_minus"`
	PenaltyMinutes     int `json:"penalty_minutes"`
	PowerPlayGoals     int `json:"power_play_goals"`
	PowerPlayAssists   int `json:"power_play_assists"`
	PowerPlayPoints    int `json:"power_play_points"`
	ShortHandedGoals   int `json:"short_handed_goals"`
	ShortHandedAssists int `json:"short_handed_assists"`
	ShortHandedPoints  int `json:"short_handed_points"`
	ShotsOnGoal        int `json:"shots_on_goal"`

	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	OvertimeLoss int `json:"overtime_losses"`
	Shutouts     int `json:"shutouts"`
	GoalsAgainst int `json:"goals_against"`
	ShotsAgainst int `json:"shots_against"`
	Saves        int `json:"saves"`

	ShootingPercentage decimal.Decimal `json:"shooting_percentage"`
	SavePercentage     decimal.Decimal `json:"save_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
