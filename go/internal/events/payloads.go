package events

import (
	"time"
)

// Event types published through the outbox
const (
	TypeTradeCompleted   = "trade.completed"
	TypeStatsRecomputed  = "stats.recomputed"
	TypeMatchupFinalized = "matchup.finalized"
	TypeSeasonChanged    = "season.changed"
)

// TradeCompletedPayload is emitted when a trade's legs have been applied
type TradeCompletedPayload struct {
	TradeID     string    `json:"trade_id"`
	FromTeamID  string    `json:"from_team_id"`
	ToTeamID    string    `json:"to_team_id"`
	PlayerIDs   []string  `json:"player_ids"`
	CompletedAt time.Time `json:"completed_at"`
}

// StatsRecomputedPayload is emitted after a player's weekly fantasy points
// are recomputed
type StatsRecomputedPayload struct {
	PlayerID      string    `json:"player_id"`
	WeekID        string    `json:"week_id"`
	FantasyTeamID string    `json:"fantasy_team_id"`
	TotalPoints   string    `json:"total_points"`
	RecomputedAt  time.Time `json:"recomputed_at"`
}

// MatchupFinalizedPayload is emitted when a matchup's scores are locked in
type MatchupFinalizedPayload struct {
	MatchupID   string    `json:"matchup_id"`
	WeekID      string    `json:"week_id"`
	Team1ID     string    `json:"team1_id"`
	Team2ID     string    `json:"team2_id"`
	Team1Score  string    `json:"team1_score"`
	Team2Score  string    `json:"team2_score"`
	WinnerID    string    `json:"winner_id,omitempty"`
	FinalizedAt time.Time `json:"finalized_at"`
}

// SeasonChangedPayload is emitted when the current season flag moves
type SeasonChangedPayload struct {
	SeasonID  string    `json:"season_id"`
	Name      string    `json:"name"`
	ChangedAt time.Time `json:"changed_at"`
}
