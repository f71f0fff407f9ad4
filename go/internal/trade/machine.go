package trade

import (
	"fmt"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/google/uuid"
)

// validTransitions is the complete trade state machine. Rejected, cancelled
// and completed are terminal.
var validTransitions = map[models.TradeStatus][]models.TradeStatus{
	models.TradeStatusPending: {
		models.TradeStatusAccepted,
		models.TradeStatusRejected,
		models.TradeStatusCancelled,
	},
	models.TradeStatusAccepted: {
		models.TradeStatusCompleted,
	},
}

// Transition validates a status change against the state machine
func Transition(current, next models.TradeStatus) error {
	for _, allowed := range validTransitions[current] {
		if next == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, next)
}

// Changeset is the set of slot mutations a completed trade produces. It is
// persisted as one unit inside the completion transaction.
type Changeset struct {
	RemovedSlotIDs []uuid.UUID
	AddedSlots     []models.RosterSlot
}

// ApplyLegs executes every trade leg against the loaded roster aggregates:
// all departures first, then all arrivals, so a balanced swap between two
// full rosters still fits. Each player keeps the position and activity
// status it held. The first leg that violates a roster invariant aborts the
// whole application with an ExecutionError; callers must then discard the
// aggregates and roll back.
func ApplyLegs(rosters map[uuid.UUID]*roster.Roster, legs []models.TradePlayer, now time.Time) (*Changeset, error) {
	type departure struct {
		leg        models.TradePlayer
		positionID uuid.UUID
		active     bool
	}

	cs := &Changeset{}
	departures := make([]departure, 0, len(legs))

	for _, leg := range legs {
		from, ok := rosters[leg.FromTeamID]
		if !ok {
			return nil, &ExecutionError{PlayerID: leg.PlayerID, TeamID: leg.FromTeamID, Err: ErrTeamNotInTrade}
		}
		removed := from.Remove(leg.PlayerID)
		if len(removed) == 0 {
			return nil, &ExecutionError{PlayerID: leg.PlayerID, TeamID: leg.FromTeamID, Err: ErrPlayerNotOnTeam}
		}
		for _, s := range removed {
			cs.RemovedSlotIDs = append(cs.RemovedSlotIDs, s.ID)
		}
		departures = append(departures, departure{
			leg:        leg,
			positionID: removed[0].PositionID,
			active:     removed[0].IsActive,
		})
	}

	for _, d := range departures {
		to, ok := rosters[d.leg.ToTeamID]
		if !ok {
			return nil, &ExecutionError{PlayerID: d.leg.PlayerID, TeamID: d.leg.ToTeamID, Err: ErrTeamNotInTrade}
		}
		slot, err := to.Assign(d.positionID, d.leg.PlayerID, d.active, now)
		if err != nil {
			return nil, &ExecutionError{PlayerID: d.leg.PlayerID, TeamID: d.leg.ToTeamID, Err: err}
		}
		cs.AddedSlots = append(cs.AddedSlots, *slot)
	}

	return cs, nil
}
