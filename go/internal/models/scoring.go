package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScoringConfig holds a league's per-category point weights. The category set
// is closed; weights may be zero or negative (losses and goals against are
// typically negative for goalies). Exactly one config exists per league.
type ScoringConfig struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"league_id"`

	Goals              decimal.Decimal `json:"goals"`
	Assists            decimal.Decimal `json:"assists"`
	PlusMinus          decimal.Decimal `json:"plus_minus"`
	PenaltyMinutes     decimal.Decimal `json:"penalty_minutes"`
	PowerPlayGoals     decimal.Decimal `json:"power_play_goals"`
	PowerPlayAssists   decimal.Decimal `json:"power_play_assists"`
	ShortHandedGoals   decimal.Decimal `json:"short_handed_goals"`
	ShortHandedAssists decimal.Decimal `json:"short_handed_assists"`
	ShotsOnGoal        decimal.Decimal `json:"shots_on_goal"`
	Hits               decimal.Decimal `json:"hits"`
	BlockedShots       decimal.Decimal `json:"blocked_shots"`
	Wins               decimal.Decimal `json:"wins"`
	Losses             decimal.Decimal `json:"losses"`
	GoalsAgainst       decimal.Decimal `json:"goals_against"`
	Saves              decimal.Decimal `json:"saves"`
	Shutouts           decimal.Decimal `json:"shutouts"`
}

// DefaultScoringConfig returns the standard weights a new league starts with
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Goals:              decimal.NewFromFloat(6.0),
		Assists:            decimal.NewFromFloat(4.0),
		PlusMinus:          decimal.NewFromFloat(1.0),
		PenaltyMinutes:     decimal.NewFromFloat(0.5),
		PowerPlayGoals:     decimal.NewFromFloat(1.0),
		PowerPlayAssists:   decimal.NewFromFloat(0.5),
		ShortHandedGoals:   decimal.NewFromFloat(2.0),
		ShortHandedAssists: decimal.NewFromFloat(1.0),
		ShotsOnGoal:        decimal.NewFromFloat(0.4),
		Hits:               decimal.NewFromFloat(0.6),
		BlockedShots:       decimal.NewFromFloat(1.0),
		Wins:               decimal.NewFromFloat(4.0),
		Losses:             decimal.NewFromFloat(-1.0),
		GoalsAgainst:       decimal.NewFromFloat(-1.0),
		Saves:              decimal.NewFromFloat(0.6),
		Shutouts:           decimal.NewFromFloat(5.0),
	}
}

// StatLine is the raw weekly stat counters for one player, copied from the
// upstream game feed. PlusMinus is the only counter that may be negative.
type StatLine struct {
	GamesPlayed        int `json:"games_played"`
	Goals              int `json:"goals"`
	Assists            int `json:"assists"`
	PlusMinus          int `json:"plus_minus"`
	PenaltyMinutes     int `json:"penalty_minutes"`
	PowerPlayGoals     int `json:"power_play_goals"`
	PowerPlayAssists   int `json:"power_play_assists"`
	ShortHandedGoals   int `json:"short_handed_goals"`
	ShortHandedAssists int `json:"short_handed_assists"`
	ShotsOnGoal        int `json:"shots_on_goal"`
	Hits               int `json:"hits"`
	BlockedShots       int `json:"blocked_shots"`
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	GoalsAgainst       int `json:"goals_against"`
	Saves              int `json:"saves"`
	Shutouts           int `json:"shutouts"`
}

// PlayerFantasyStats is one player's raw and derived production for a single
// (player, week, fantasy team). TotalFantasyPoints is written only by the
// scoring recompute path, never set directly.
type PlayerFantasyStats struct {
	ID            uuid.UUID `json:"id"`
	PlayerID      uuid.UUID `json:"player_id"`
	WeekID        uuid.UUID `json:"week_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`

	StatLine

	TotalFantasyPoints decimal.Decimal `json:"total_fantasy_points"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
