package roster

import "errors"

var (
	// ErrDuplicatePlayer is returned when a player already occupies a slot
	// on the same roster
	ErrDuplicatePlayer = errors.New("player already on roster")

	// ErrSlotCapacityExceeded is returned when a position already holds its
	// max_players count of slots
	ErrSlotCapacityExceeded = errors.New("position slot capacity exceeded")

	// ErrLineupFull is returned when activating a slot would exceed the
	// league's starting lineup size
	ErrLineupFull = errors.New("starting lineup full")

	// ErrRosterFull is returned when the roster already holds roster_size slots
	ErrRosterFull = errors.New("roster full")

	// ErrUnknownPosition is returned when the referenced roster position
	// does not exist
	ErrUnknownPosition = errors.New("unknown roster position")

	// ErrPlayerNotOnRoster is returned when an operation targets a player
	// that has no slot on the roster
	ErrPlayerNotOnRoster = errors.New("player not on roster")
)
