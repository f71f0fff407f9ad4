package scoring

import "errors"

var (
	// ErrStatsNotFound is returned when no stat row exists for the requested
	// (player, week, fantasy team).
	ErrStatsNotFound = errors.New("player fantasy stats not found")

	// ErrConfigNotFound is returned when a league has no scoring config row
	ErrConfigNotFound = errors.New("scoring config not found")

	// ErrConcurrentModification is returned when a recompute loses the race
	// against another writer and its recency guard rejects the update.
	ErrConcurrentModification = errors.New("stats modified concurrently")
)
