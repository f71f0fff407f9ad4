package models

import (
	"time"

	"github.com/google/uuid"
)

// TradeStatus represents the lifecycle state of a trade
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusAccepted  TradeStatus = "accepted"
	TradeStatusRejected  TradeStatus = "rejected"
	TradeStatusCancelled TradeStatus = "cancelled"
	TradeStatusCompleted TradeStatus = "completed"
)

// IsTerminal reports whether no further transitions are permitted
func (s TradeStatus) IsTerminal() bool {
	switch s {
	case TradeStatusRejected, TradeStatusCancelled, TradeStatusCompleted:
		return true
	}
	return false
}

// Trade is a proposed exchange of players between two fantasy teams
type Trade struct {
	ID          uuid.UUID   `json:"id"`
	FromTeamID  uuid.UUID   `json:"from_team_id"`
	ToTeamID    uuid.UUID   `json:"to_team_id"`
	Status      TradeStatus `json:"status"`
	Message     string      `json:"message"`
	ProposedAt  time.Time   `json:"proposed_at"`
	RespondedAt *time.Time  `json:"responded_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// TradePlayer is one leg of a trade: a player leaving FromTeamID for ToTeamID
type TradePlayer struct {
	ID         uuid.UUID `json:"id"`
	TradeID    uuid.UUID `json:"trade_id"`
	PlayerID   uuid.UUID `json:"player_id"`
	FromTeamID uuid.UUID `json:"from_team_id"`
	ToTeamID   uuid.UUID `json:"to_team_id"`
}
