package fantasyteam

import "errors"

var (
	// ErrTeamNotFound is returned when no fantasy team exists with the given id
	ErrTeamNotFound = errors.New("fantasy team not found")

	// ErrLeagueFull is returned when a league has reached its max_teams cap
	ErrLeagueFull = errors.New("league is full")

	// ErrDuplicateOwner is returned when an owner already has a team in the
	// league. One team per owner per league.
	ErrDuplicateOwner = errors.New("owner already has a team in this league")
)
