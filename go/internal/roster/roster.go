package roster

import (
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/google/uuid"
)

// Limits are the league-level roster constraints that apply to every team
// in the league.
type Limits struct {
	RosterSize         int
	StartingLineupSize int
}

// Roster is the in-memory aggregate of one fantasy team's slot assignments.
// All composition invariants are checked here, against the loaded state,
// before anything is persisted. Mutations either fully apply or leave the
// aggregate untouched.
type Roster struct {
	FantasyTeamID uuid.UUID
	Limits        Limits
	Positions     map[uuid.UUID]models.RosterPosition
	Slots         []models.RosterSlot
}

// New builds a roster aggregate from loaded state.
func New(fantasyTeamID uuid.UUID, limits Limits, positions []models.RosterPosition, slots []models.RosterSlot) *Roster {
	posIndex := make(map[uuid.UUID]models.RosterPosition, len(positions))
	for _, p := range positions {
		posIndex[p.ID] = p
	}
	return &Roster{
		FantasyTeamID: fantasyTeamID,
		Limits:        limits,
		Positions:     posIndex,
		Slots:         slots,
	}
}

// HasPlayer reports whether the player occupies any slot on this roster.
// Slots whose player was removed upstream (nil PlayerID) never match.
func (r *Roster) HasPlayer(playerID uuid.UUID) bool {
	return r.findSlot(playerID) != nil
}

// ActiveCount is the number of slots currently in the starting lineup
func (r *Roster) ActiveCount() int {
	n := 0
	for _, s := range r.Slots {
		if s.IsActive {
			n++
		}
	}
	return n
}

// PositionCount is the number of slots assigned to the given position
func (r *Roster) PositionCount(positionID uuid.UUID) int {
	n := 0
	for _, s := range r.Slots {
		if s.PositionID == positionID {
			n++
		}
	}
	return n
}

// Assign places a player into a positional slot. Checks run in order:
// duplicate player, position capacity, lineup capacity (when active),
// total roster capacity. On success the new slot is appended and returned.
func (r *Roster) Assign(positionID, playerID uuid.UUID, active bool, now time.Time) (*models.RosterSlot, error) {
	pos, ok := r.Positions[positionID]
	if !ok {
		return nil, ErrUnknownPosition
	}
	if r.HasPlayer(playerID) {
		return nil, ErrDuplicatePlayer
	}
	if r.PositionCount(positionID) >= pos.MaxPlayers {
		return nil, ErrSlotCapacityExceeded
	}
	if active && r.ActiveCount() >= r.Limits.StartingLineupSize {
		return nil, ErrLineupFull
	}
	if len(r.Slots) >= r.Limits.RosterSize {
		return nil, ErrRosterFull
	}

	pid := playerID
	slot := models.RosterSlot{
		ID:            uuid.New(),
		FantasyTeamID: r.FantasyTeamID,
		PositionID:    positionID,
		PlayerID:      &pid,
		IsActive:      active,
		AcquiredAt:    now,
	}
	r.Slots = append(r.Slots, slot)
	return &r.Slots[len(r.Slots)-1], nil
}

// Remove deletes the player's slot(s) from the roster and returns them.
// Removing an absent player is a no-op.
func (r *Roster) Remove(playerID uuid.UUID) []models.RosterSlot {
	var removed []models.RosterSlot
	kept := r.Slots[:0]
	for _, s := range r.Slots {
		if s.PlayerID != nil && *s.PlayerID == playerID {
			removed = append(removed, s)
			continue
		}
		kept = append(kept, s)
	}
	r.Slots = kept
	return removed
}

// SetActive toggles a slot between bench and starting lineup. Promoting a
// bench slot re-validates the lineup capacity.
func (r *Roster) SetActive(playerID uuid.UUID, active bool) (*models.RosterSlot, error) {
	slot := r.findSlot(playerID)
	if slot == nil {
		return nil, ErrPlayerNotOnRoster
	}
	if active && !slot.IsActive && r.ActiveCount() >= r.Limits.StartingLineupSize {
		return nil, ErrLineupFull
	}
	slot.IsActive = active
	return slot, nil
}

func (r *Roster) findSlot(playerID uuid.UUID) *models.RosterSlot {
	for i := range r.Slots {
		if r.Slots[i].PlayerID != nil && *r.Slots[i].PlayerID == playerID {
			return &r.Slots[i]
		}
	}
	return nil
}
