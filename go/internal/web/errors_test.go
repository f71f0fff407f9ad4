package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/matchup"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/blueline/fantasyhockey/go/internal/trade"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"trade not found", trade.ErrTradeNotFound, http.StatusNotFound},
		{"league not found", leagues.ErrLeagueNotFound, http.StatusNotFound},
		{"player not on roster", roster.ErrPlayerNotOnRoster, http.StatusNotFound},
		{"roster full", roster.ErrRosterFull, http.StatusConflict},
		{"lineup full", roster.ErrLineupFull, http.StatusConflict},
		{"duplicate player", roster.ErrDuplicatePlayer, http.StatusConflict},
		{"invalid trade transition", trade.ErrInvalidTransition, http.StatusConflict},
		{"stats modified concurrently", scoring.ErrConcurrentModification, http.StatusConflict},
		{"matchup already finalized", matchup.ErrAlreadyFinalized, http.StatusConflict},
		{"trade completion conflict", trade.ErrConcurrentModification, http.StatusConflict},
		{"serializable transaction aborted", sqlutil.ErrSerializationFailure, http.StatusConflict},
		{"league at capacity", fantasyteam.ErrLeagueFull, http.StatusConflict},
		{"unknown position", roster.ErrUnknownPosition, http.StatusBadRequest},
		{"matchup with same team twice", matchup.ErrSameTeam, http.StatusBadRequest},
		{"validation failure", fmt.Errorf("validation failed: name is required"), http.StatusBadRequest},
		{"unclassified error", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("failed to complete trade: %w", roster.ErrRosterFull)
	assert.Equal(t, http.StatusConflict, statusForError(wrapped))
}

func TestStatusForTradeExecutionError(t *testing.T) {
	execErr := &trade.ExecutionError{
		PlayerID: uuid.New(),
		TeamID:   uuid.New(),
		Err:      roster.ErrSlotCapacityExceeded,
	}
	assert.Equal(t, http.StatusConflict, statusForError(fmt.Errorf("trade failed: %w", execErr)))
}
