package leagues

import "errors"

var (
	// ErrLeagueNotFound is returned when no league exists with the given id
	ErrLeagueNotFound = errors.New("league not found")

	// ErrWeekNotFound is returned when no fantasy week matches the lookup
	ErrWeekNotFound = errors.New("fantasy week not found")

	// ErrSeasonNotFound is returned when no season exists with the given id
	ErrSeasonNotFound = errors.New("season not found")

	// ErrInvalidScoringMode is returned for a scoring mode outside the known set
	ErrInvalidScoringMode = errors.New("invalid scoring mode")
)
