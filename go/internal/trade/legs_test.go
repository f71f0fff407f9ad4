package trade

import (
	"errors"
	"testing"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/google/uuid"
)

var (
	testCenter = models.RosterPosition{ID: uuid.New(), Name: "Center", Abbreviation: "C", IsStarting: true, MaxPlayers: 2}
	testBench  = models.RosterPosition{ID: uuid.New(), Name: "Bench", Abbreviation: "BN", IsStarting: false, MaxPlayers: 14}
)

func testPositions() []models.RosterPosition {
	return []models.RosterPosition{testCenter, testBench}
}

func testNow() time.Time {
	return time.Date(2024, 12, 2, 9, 30, 0, 0, time.UTC)
}

func buildRoster(t *testing.T, teamID uuid.UUID, limits roster.Limits, assignments map[uuid.UUID]bool) *roster.Roster {
	t.Helper()
	r := roster.New(teamID, limits, testPositions(), nil)
	for player, active := range assignments {
		pos := testBench.ID
		if active {
			pos = testCenter.ID
		}
		if _, err := r.Assign(pos, player, active, testNow()); err != nil {
			t.Fatalf("setup assign failed: %v", err)
		}
	}
	return r
}

func TestApplyLegsSwapsBothSides(t *testing.T) {
	team1, team2 := uuid.New(), uuid.New()
	playerA, playerB := uuid.New(), uuid.New()
	limits := roster.Limits{RosterSize: 23, StartingLineupSize: 9}

	rosters := map[uuid.UUID]*roster.Roster{
		team1: buildRoster(t, team1, limits, map[uuid.UUID]bool{playerA: true}),
		team2: buildRoster(t, team2, limits, map[uuid.UUID]bool{playerB: false}),
	}

	legs := []models.TradePlayer{
		{ID: uuid.New(), PlayerID: playerA, FromTeamID: team1, ToTeamID: team2},
		{ID: uuid.New(), PlayerID: playerB, FromTeamID: team2, ToTeamID: team1},
	}

	cs, err := ApplyLegs(rosters, legs, testNow())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every player now resides on its destination team, nowhere twice
	if !rosters[team2].HasPlayer(playerA) || rosters[team1].HasPlayer(playerA) {
		t.Error("player A did not move to team 2")
	}
	if !rosters[team1].HasPlayer(playerB) || rosters[team2].HasPlayer(playerB) {
		t.Error("player B did not move to team 1")
	}

	// Position and activity status are preserved across the move
	for _, slot := range cs.AddedSlots {
		switch *slot.PlayerID {
		case playerA:
			if slot.PositionID != testCenter.ID || !slot.IsActive {
				t.Errorf("player A lost its slot attributes: %+v", slot)
			}
		case playerB:
			if slot.PositionID != testBench.ID || slot.IsActive {
				t.Errorf("player B lost its slot attributes: %+v", slot)
			}
		}
	}

	if len(cs.RemovedSlotIDs) != 2 || len(cs.AddedSlots) != 2 {
		t.Errorf("changeset should carry one removal and one addition per leg: %+v", cs)
	}
}

func TestApplyLegsBalancedSwapOnFullRosters(t *testing.T) {
	// One-for-one trade between two rosters already at capacity must
	// succeed: departures free the space the arrivals need.
	team1, team2 := uuid.New(), uuid.New()
	playerA, playerB := uuid.New(), uuid.New()
	limits := roster.Limits{RosterSize: 1, StartingLineupSize: 1}

	rosters := map[uuid.UUID]*roster.Roster{
		team1: buildRoster(t, team1, limits, map[uuid.UUID]bool{playerA: true}),
		team2: buildRoster(t, team2, limits, map[uuid.UUID]bool{playerB: true}),
	}

	legs := []models.TradePlayer{
		{ID: uuid.New(), PlayerID: playerA, FromTeamID: team1, ToTeamID: team2},
		{ID: uuid.New(), PlayerID: playerB, FromTeamID: team2, ToTeamID: team1},
	}

	if _, err := ApplyLegs(rosters, legs, testNow()); err != nil {
		t.Fatalf("balanced swap on full rosters should succeed: %v", err)
	}
}

func TestApplyLegsFailsWhenDestinationFull(t *testing.T) {
	// A one-sided trade into a full roster must fail and identify the leg
	team1, team2 := uuid.New(), uuid.New()
	playerA, playerB := uuid.New(), uuid.New()
	limits := roster.Limits{RosterSize: 1, StartingLineupSize: 1}

	rosters := map[uuid.UUID]*roster.Roster{
		team1: buildRoster(t, team1, limits, map[uuid.UUID]bool{playerA: false}),
		team2: buildRoster(t, team2, limits, map[uuid.UUID]bool{playerB: false}),
	}

	legs := []models.TradePlayer{
		{ID: uuid.New(), PlayerID: playerA, FromTeamID: team1, ToTeamID: team2},
	}

	_, err := ApplyLegs(rosters, legs, testNow())
	if err == nil {
		t.Fatal("expected the leg to fail against a full destination roster")
	}

	var execErr *ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutionError, got %T: %v", err, err)
	}
	if execErr.PlayerID != playerA || execErr.TeamID != team2 {
		t.Errorf("error does not identify the failing leg: %+v", execErr)
	}
	if !errors.Is(err, roster.ErrRosterFull) {
		t.Errorf("expected wrapped ErrRosterFull, got %v", err)
	}
}

func TestApplyLegsFailsWhenPlayerMovedAway(t *testing.T) {
	// The player named by the trade left the roster after acceptance: the
	// commit-time re-validation must catch it.
	team1, team2 := uuid.New(), uuid.New()
	limits := roster.Limits{RosterSize: 23, StartingLineupSize: 9}

	rosters := map[uuid.UUID]*roster.Roster{
		team1: buildRoster(t, team1, limits, nil),
		team2: buildRoster(t, team2, limits, nil),
	}

	gone := uuid.New()
	legs := []models.TradePlayer{
		{ID: uuid.New(), PlayerID: gone, FromTeamID: team1, ToTeamID: team2},
	}

	_, err := ApplyLegs(rosters, legs, testNow())
	if !errors.Is(err, ErrPlayerNotOnTeam) {
		t.Fatalf("expected ErrPlayerNotOnTeam, got %v", err)
	}
}
