package players

import "errors"

var (
	// ErrPlayerNotFound is returned when no player exists with the given id
	ErrPlayerNotFound = errors.New("player not found")

	// ErrPositionNotFound is returned when no position matches the lookup
	ErrPositionNotFound = errors.New("position not found")

	// ErrStatsNotFound is returned when a player has no season stats row
	ErrStatsNotFound = errors.New("player season stats not found")
)
