package models

import (
	"time"

	"github.com/google/uuid"
)

// RosterPosition is shared reference data describing one slot type a roster
// may carry, e.g. Center (C, starting, max 2) or Bench (BN, non-starting).
type RosterPosition struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	IsStarting   bool      `json:"is_starting"`
	MaxPlayers   int       `json:"max_players"`
}

// RosterSlot is a single assignment of a player to a positional slot on a
// fantasy team's roster. PlayerID is nil when the underlying player record
// was removed; the slot survives and readers must handle the absence.
type RosterSlot struct {
	ID            uuid.UUID  `json:"id"`
	FantasyTeamID uuid.UUID  `json:"fantasy_team_id"`
	PositionID    uuid.UUID  `json:"position_id"`
	PlayerID      *uuid.UUID `json:"player_id,omitempty"`
	IsActive      bool       `json:"is_active"`
	AcquiredAt    time.Time  `json:"acquired_at"`
}
