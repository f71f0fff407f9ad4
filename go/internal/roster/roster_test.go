package roster

import (
	"errors"
	"testing"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/google/uuid"
)

var (
	posCenter = models.RosterPosition{ID: uuid.New(), Name: "Center", Abbreviation: "C", IsStarting: true, MaxPlayers: 2}
	posGoalie = models.RosterPosition{ID: uuid.New(), Name: "Goalie", Abbreviation: "G", IsStarting: true, MaxPlayers: 1}
	posBench  = models.RosterPosition{ID: uuid.New(), Name: "Bench", Abbreviation: "BN", IsStarting: false, MaxPlayers: 14}
)

func newTestRoster(limits Limits) *Roster {
	return New(uuid.New(), limits, []models.RosterPosition{posCenter, posGoalie, posBench}, nil)
}

func now() time.Time {
	return time.Date(2024, 11, 4, 12, 0, 0, 0, time.UTC)
}

func TestAssignChecksRunInOrder(t *testing.T) {
	dup := uuid.New()

	tests := []struct {
		name     string
		setup    func(r *Roster)
		position uuid.UUID
		player   uuid.UUID
		active   bool
		expected error
	}{
		{
			name:     "unknown position",
			setup:    func(r *Roster) {},
			position: uuid.New(),
			player:   uuid.New(),
			expected: ErrUnknownPosition,
		},
		{
			name: "duplicate player before capacity",
			setup: func(r *Roster) {
				mustAssign(t, r, posCenter.ID, dup, true)
				mustAssign(t, r, posCenter.ID, uuid.New(), true)
			},
			// position is already at capacity too, but the duplicate
			// check must win
			position: posCenter.ID,
			player:   dup,
			expected: ErrDuplicatePlayer,
		},
		{
			name: "position capacity",
			setup: func(r *Roster) {
				mustAssign(t, r, posGoalie.ID, uuid.New(), true)
			},
			position: posGoalie.ID,
			player:   uuid.New(),
			expected: ErrSlotCapacityExceeded,
		},
		{
			name: "lineup full",
			setup: func(r *Roster) {
				mustAssign(t, r, posCenter.ID, uuid.New(), true)
				mustAssign(t, r, posGoalie.ID, uuid.New(), true)
			},
			position: posCenter.ID,
			player:   uuid.New(),
			active:   true,
			expected: ErrLineupFull,
		},
		{
			name: "bench assignment ignores lineup limit",
			setup: func(r *Roster) {
				mustAssign(t, r, posCenter.ID, uuid.New(), true)
				mustAssign(t, r, posGoalie.ID, uuid.New(), true)
			},
			position: posBench.ID,
			player:   uuid.New(),
			expected: nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRoster(Limits{RosterSize: 23, StartingLineupSize: 2})
			tc.setup(r)
			before := len(r.Slots)

			slot, err := r.Assign(tc.position, tc.player, tc.active, now())
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected error %v, got %v", tc.expected, err)
			}
			if tc.expected != nil {
				if len(r.Slots) != before {
					t.Errorf("failed assign mutated the roster: %d -> %d slots", before, len(r.Slots))
				}
				return
			}
			if slot == nil || slot.PlayerID == nil || *slot.PlayerID != tc.player {
				t.Errorf("returned slot does not reference the assigned player: %+v", slot)
			}
		})
	}
}

func TestAssignRosterFull(t *testing.T) {
	r := newTestRoster(Limits{RosterSize: 3, StartingLineupSize: 2})
	mustAssign(t, r, posCenter.ID, uuid.New(), true)
	mustAssign(t, r, posGoalie.ID, uuid.New(), true)
	mustAssign(t, r, posBench.ID, uuid.New(), false)

	_, err := r.Assign(posBench.ID, uuid.New(), false, now())
	if !errors.Is(err, ErrRosterFull) {
		t.Fatalf("expected ErrRosterFull, got %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	r := newTestRoster(Limits{RosterSize: 23, StartingLineupSize: 9})
	player := uuid.New()
	mustAssign(t, r, posCenter.ID, player, true)
	mustAssign(t, r, posBench.ID, uuid.New(), false)

	removed := r.Remove(player)
	if len(removed) != 1 {
		t.Fatalf("expected 1 removed slot, got %d", len(removed))
	}
	if r.HasPlayer(player) {
		t.Error("player still on roster after remove")
	}
	if len(r.Slots) != 1 {
		t.Errorf("expected 1 remaining slot, got %d", len(r.Slots))
	}

	// Second removal is a no-op
	if removed := r.Remove(player); len(removed) != 0 {
		t.Errorf("expected no-op on second remove, got %d slots", len(removed))
	}
}

func TestSetActive(t *testing.T) {
	r := newTestRoster(Limits{RosterSize: 23, StartingLineupSize: 1})
	starter := uuid.New()
	benched := uuid.New()
	mustAssign(t, r, posCenter.ID, starter, true)
	mustAssign(t, r, posBench.ID, benched, false)

	// Promoting the bench player re-validates lineup capacity
	if _, err := r.SetActive(benched, true); !errors.Is(err, ErrLineupFull) {
		t.Fatalf("expected ErrLineupFull, got %v", err)
	}

	// Demote the starter, then the promotion fits
	if _, err := r.SetActive(starter, false); err != nil {
		t.Fatalf("unexpected error demoting starter: %v", err)
	}
	slot, err := r.SetActive(benched, true)
	if err != nil {
		t.Fatalf("unexpected error promoting bench player: %v", err)
	}
	if !slot.IsActive {
		t.Error("slot not marked active after promotion")
	}

	// Re-activating an already active slot is allowed
	if _, err := r.SetActive(benched, true); err != nil {
		t.Errorf("re-activating an active slot should not fail: %v", err)
	}

	if _, err := r.SetActive(uuid.New(), true); !errors.Is(err, ErrPlayerNotOnRoster) {
		t.Errorf("expected ErrPlayerNotOnRoster, got %v", err)
	}
}

func TestInvariantsHoldAfterMutations(t *testing.T) {
	limits := Limits{RosterSize: 6, StartingLineupSize: 3}
	r := newTestRoster(limits)

	players := make([]uuid.UUID, 0)
	for i := 0; i < 10; i++ {
		p := uuid.New()
		if _, err := r.Assign(posBench.ID, p, i%2 == 0, now()); err == nil {
			players = append(players, p)
		}
	}
	for i, p := range players {
		if i%3 == 0 {
			r.Remove(p)
		}
	}

	if got := r.ActiveCount(); got > limits.StartingLineupSize {
		t.Errorf("active slots %d exceed lineup size %d", got, limits.StartingLineupSize)
	}
	if got := len(r.Slots); got > limits.RosterSize {
		t.Errorf("total slots %d exceed roster size %d", got, limits.RosterSize)
	}
	seen := make(map[uuid.UUID]bool)
	for _, s := range r.Slots {
		if s.PlayerID == nil {
			continue
		}
		if seen[*s.PlayerID] {
			t.Errorf("player %s appears twice in the roster", *s.PlayerID)
		}
		seen[*s.PlayerID] = true
	}
}

func mustAssign(t *testing.T, r *Roster, positionID, playerID uuid.UUID, active bool) {
	t.Helper()
	if _, err := r.Assign(positionID, playerID, active, now()); err != nil {
		t.Fatalf("setup assign failed: %v", err)
	}
}
