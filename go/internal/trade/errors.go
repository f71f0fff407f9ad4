package trade

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrInvalidTransition is returned for any trade status change not
	// permitted by the state machine
	ErrInvalidTransition = errors.New("invalid trade transition")

	// ErrPlayerNotOnTeam is returned when a trade leg lists a player that
	// does not currently reside on the team it is leaving
	ErrPlayerNotOnTeam = errors.New("player not on team")

	// ErrTeamNotInTrade is returned when a leg references a team that is
	// neither side of the trade
	ErrTeamNotInTrade = errors.New("team is not part of the trade")

	// ErrConcurrentModification is returned when roster state changed
	// between acceptance and completion; the caller may retry
	ErrConcurrentModification = errors.New("concurrent roster modification")
)

// ExecutionError reports the leg that prevented a trade from completing.
// The whole trade rolls back; no roster is mutated.
type ExecutionError struct {
	PlayerID uuid.UUID
	TeamID   uuid.UUID
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("trade execution failed for player %s on team %s: %v", e.PlayerID, e.TeamID, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
