package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/matchup"
	"github.com/blueline/fantasyhockey/go/internal/players"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/blueline/fantasyhockey/go/internal/teams"
	"github.com/blueline/fantasyhockey/go/internal/trade"
)

var notFoundErrors = []error{
	roster.ErrPlayerNotOnRoster,
	trade.ErrTradeNotFound,
	matchup.ErrMatchupNotFound,
	fantasyteam.ErrTeamNotFound,
	leagues.ErrLeagueNotFound,
	leagues.ErrWeekNotFound,
	leagues.ErrSeasonNotFound,
	players.ErrPlayerNotFound,
	players.ErrPositionNotFound,
	players.ErrStatsNotFound,
	scoring.ErrStatsNotFound,
	scoring.ErrConfigNotFound,
	teams.ErrTeamNotFound,
}

var conflictErrors = []error{
	roster.ErrDuplicatePlayer,
	roster.ErrSlotCapacityExceeded,
	roster.ErrLineupFull,
	roster.ErrRosterFull,
	trade.ErrInvalidTransition,
	trade.ErrPlayerNotOnTeam,
	trade.ErrConcurrentModification,
	scoring.ErrConcurrentModification,
	matchup.ErrAlreadyFinalized,
	fantasyteam.ErrLeagueFull,
	fantasyteam.ErrDuplicateOwner,
	sqlutil.ErrSerializationFailure,
}

var badRequestErrors = []error{
	roster.ErrUnknownPosition,
	matchup.ErrSameTeam,
	leagues.ErrInvalidScoringMode,
}

// statusForError maps domain errors onto HTTP statuses: missing entities are
// 404, invariant and state-machine violations are 409, malformed input is
// 400, everything else is 500.
func statusForError(err error) int {
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict
		}
	}
	var execErr *trade.ExecutionError
	if errors.As(err, &execErr) {
		return http.StatusConflict
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	if strings.HasPrefix(err.Error(), "validation failed") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
