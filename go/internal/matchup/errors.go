package matchup

import "errors"

var (
	// ErrMatchupNotFound is returned when no matchup exists with the given id
	ErrMatchupNotFound = errors.New("matchup not found")

	// ErrAlreadyFinalized is returned when finalizing a matchup that has
	// already been completed. Finalization happens exactly once.
	ErrAlreadyFinalized = errors.New("matchup already finalized")

	// ErrSameTeam is returned when a matchup pairs a team with itself
	ErrSameTeam = errors.New("matchup requires two distinct teams")
)
