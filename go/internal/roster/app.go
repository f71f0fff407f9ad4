package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// PlayersRepository defines what the app layer needs from the players
// repository for validation
type PlayersRepository interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// AssignPlayerRequest adds a player to a team's roster
type AssignPlayerRequest struct {
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`
	PositionID    uuid.UUID `json:"position_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Active        bool      `json:"active"`
}

// App handles roster business logic. Every mutating operation runs at
// serializable isolation with the team's slots locked, so the invariants
// checked by the aggregate hold at commit time rather than only at read time.
type App struct {
	db          *sql.DB
	playersRepo PlayersRepository
	clock       clockwork.Clock
}

// NewApp creates a new roster App
func NewApp(db *sql.DB, playersRepo PlayersRepository, clock clockwork.Clock) *App {
	return &App{
		db:          db,
		playersRepo: playersRepo,
		clock:       clock,
	}
}

// AssignPlayer places a player into a positional slot on a team's roster
func (a *App) AssignPlayer(ctx context.Context, req AssignPlayerRequest) (*models.RosterSlot, error) {
	if err := a.validateAssignPlayerRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := a.playersRepo.GetPlayer(ctx, req.PlayerID); err != nil {
		return nil, fmt.Errorf("player not found: %w", err)
	}

	var slot *models.RosterSlot
	err := sqlutil.RunSerializable(ctx, a.db, func(tx *sql.Tx) *Repository { return NewRepository(tx) }, func(repo *Repository) error {
		ros, err := repo.LoadRosterForUpdate(ctx, req.FantasyTeamID)
		if err != nil {
			return err
		}
		slot, err = ros.Assign(req.PositionID, req.PlayerID, req.Active, a.clock.Now())
		if err != nil {
			return err
		}
		return repo.InsertSlot(ctx, *slot)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("player_id", req.PlayerID.String()).
		Str("fantasy_team_id", req.FantasyTeamID.String()).
		Bool("active", req.Active).
		Msg("assigned player to roster slot")
	return slot, nil
}

// RemovePlayer drops a player from a team's roster. Removing a player that
// is not on the roster is a no-op.
func (a *App) RemovePlayer(ctx context.Context, fantasyTeamID, playerID uuid.UUID) error {
	if fantasyTeamID == uuid.Nil || playerID == uuid.Nil {
		return fmt.Errorf("validation failed: fantasy_team_id and player_id are required")
	}

	var removed int
	err := sqlutil.RunSerializable(ctx, a.db, func(tx *sql.Tx) *Repository { return NewRepository(tx) }, func(repo *Repository) error {
		ros, err := repo.LoadRosterForUpdate(ctx, fantasyTeamID)
		if err != nil {
			return err
		}
		slots := ros.Remove(playerID)
		if len(slots) == 0 {
			return nil
		}
		removed = len(slots)
		ids := make([]uuid.UUID, len(slots))
		for i, s := range slots {
			ids[i] = s.ID
		}
		return repo.DeleteSlots(ctx, ids)
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		log.Info().
			Str("player_id", playerID.String()).
			Str("fantasy_team_id", fantasyTeamID.String()).
			Msg("removed player from roster")
	}
	return nil
}

// SetSlotActive moves a player between bench and starting lineup
func (a *App) SetSlotActive(ctx context.Context, fantasyTeamID, playerID uuid.UUID, active bool) (*models.RosterSlot, error) {
	if fantasyTeamID == uuid.Nil || playerID == uuid.Nil {
		return nil, fmt.Errorf("validation failed: fantasy_team_id and player_id are required")
	}

	var slot *models.RosterSlot
	err := sqlutil.RunSerializable(ctx, a.db, func(tx *sql.Tx) *Repository { return NewRepository(tx) }, func(repo *Repository) error {
		ros, err := repo.LoadRosterForUpdate(ctx, fantasyTeamID)
		if err != nil {
			return err
		}
		slot, err = ros.SetActive(playerID, active)
		if err != nil {
			return err
		}
		return repo.UpdateSlotActive(ctx, slot.ID, active)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("player_id", playerID.String()).
		Str("fantasy_team_id", fantasyTeamID.String()).
		Bool("active", active).
		Msg("updated roster slot activity")
	return slot, nil
}

// GetRoster returns a team's current slot assignments
func (a *App) GetRoster(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.RosterSlot, error) {
	slots, err := NewRepository(a.db).GetSlotsByFantasyTeam(ctx, fantasyTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	return slots, nil
}

// GetStartingSlots returns a team's current starting lineup
func (a *App) GetStartingSlots(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.RosterSlot, error) {
	slots, err := NewRepository(a.db).GetStartingSlots(ctx, fantasyTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get starting slots: %w", err)
	}
	return slots, nil
}

// ListPositions returns the shared roster position reference data
func (a *App) ListPositions(ctx context.Context) ([]models.RosterPosition, error) {
	return NewRepository(a.db).ListPositions(ctx)
}

func (a *App) validateAssignPlayerRequest(req AssignPlayerRequest) error {
	if req.FantasyTeamID == uuid.Nil {
		return fmt.Errorf("fantasy_team_id is required")
	}
	if req.PositionID == uuid.Nil {
		return fmt.Errorf("position_id is required")
	}
	if req.PlayerID == uuid.Nil {
		return fmt.Errorf("player_id is required")
	}
	return nil
}
