package roster

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Repository persists roster slots and loads roster aggregates. It works
// against either *sql.DB or a *sql.Tx so callers can compose it into larger
// transactions (trade completion spans two rosters plus the trade row).
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const slotColumns = `id, fantasy_team_id, position_id, player_id, is_active, acquired_at`

// LoadRoster loads the full aggregate for a team: league limits, the shared
// position reference set, and the team's current slots.
func (r *Repository) LoadRoster(ctx context.Context, fantasyTeamID uuid.UUID) (*Roster, error) {
	return r.loadRoster(ctx, fantasyTeamID, false)
}

// LoadRosterForUpdate is LoadRoster with the team's slot rows locked for the
// duration of the enclosing transaction.
func (r *Repository) LoadRosterForUpdate(ctx context.Context, fantasyTeamID uuid.UUID) (*Roster, error) {
	return r.loadRoster(ctx, fantasyTeamID, true)
}

func (r *Repository) loadRoster(ctx context.Context, fantasyTeamID uuid.UUID, forUpdate bool) (*Roster, error) {
	limits, err := r.getTeamLimits(ctx, fantasyTeamID)
	if err != nil {
		return nil, err
	}

	positions, err := r.ListPositions(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM roster_slots WHERE fantasy_team_id = $1 ORDER BY acquired_at`, slotColumns)
	if forUpdate {
		query += ` FOR UPDATE`
	}

	rows, err := r.db.QueryContext(ctx, query, fantasyTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster slots: %w", err)
	}
	defer rows.Close()

	var slots []models.RosterSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster slots: %w", err)
	}

	return New(fantasyTeamID, limits, positions, slots), nil
}

// GetSlotsByFantasyTeam returns the current slot assignments for a team
func (r *Repository) GetSlotsByFantasyTeam(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.RosterSlot, error) {
	return r.querySlots(ctx,
		fmt.Sprintf(`SELECT %s FROM roster_slots WHERE fantasy_team_id = $1 ORDER BY acquired_at`, slotColumns),
		fantasyTeamID)
}

// GetStartingSlots returns only the slots counted toward the weekly lineup
func (r *Repository) GetStartingSlots(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.RosterSlot, error) {
	return r.querySlots(ctx,
		fmt.Sprintf(`SELECT %s FROM roster_slots WHERE fantasy_team_id = $1 AND is_active ORDER BY acquired_at`, slotColumns),
		fantasyTeamID)
}

func (r *Repository) querySlots(ctx context.Context, query string, args ...any) ([]models.RosterSlot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster slots: %w", err)
	}
	defer rows.Close()

	var slots []models.RosterSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster slots: %w", err)
	}
	return slots, nil
}

// InsertSlot persists a slot produced by Roster.Assign
func (r *Repository) InsertSlot(ctx context.Context, slot models.RosterSlot) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO roster_slots (id, fantasy_team_id, position_id, player_id, is_active, acquired_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		slot.ID, slot.FantasyTeamID, slot.PositionID, sqlutil.ToNullUUID(slot.PlayerID), slot.IsActive, slot.AcquiredAt)
	if err != nil {
		return fmt.Errorf("failed to insert roster slot: %w", err)
	}
	return nil
}

// UpdateSlotActive flips a slot's starting-lineup flag
func (r *Repository) UpdateSlotActive(ctx context.Context, slotID uuid.UUID, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE roster_slots SET is_active = $2 WHERE id = $1`, slotID, active)
	if err != nil {
		return fmt.Errorf("failed to update roster slot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update roster slot: %w", err)
	}
	if n == 0 {
		return ErrPlayerNotOnRoster
	}
	return nil
}

// DeleteSlots removes the given slot rows
func (r *Repository) DeleteSlots(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM roster_slots WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to delete roster slots: %w", err)
	}
	return nil
}

// ListPositions returns the shared roster position reference set
func (r *Repository) ListPositions(ctx context.Context) ([]models.RosterPosition, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, is_starting, max_players
		 FROM roster_positions ORDER BY is_starting DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster positions: %w", err)
	}
	defer rows.Close()

	var positions []models.RosterPosition
	for rows.Next() {
		var p models.RosterPosition
		if err := rows.Scan(&p.ID, &p.Name, &p.Abbreviation, &p.IsStarting, &p.MaxPlayers); err != nil {
			return nil, fmt.Errorf("failed to scan roster position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster positions: %w", err)
	}
	return positions, nil
}

func (r *Repository) getTeamLimits(ctx context.Context, fantasyTeamID uuid.UUID) (Limits, error) {
	var limits Limits
	err := r.db.QueryRowContext(ctx,
		`SELECT l.roster_size, l.starting_lineup_size
		 FROM fantasy_teams t
		 JOIN leagues l ON l.id = t.league_id
		 WHERE t.id = $1`, fantasyTeamID).Scan(&limits.RosterSize, &limits.StartingLineupSize)
	if err == sql.ErrNoRows {
		return Limits{}, fmt.Errorf("fantasy team %s not found", fantasyTeamID)
	}
	if err != nil {
		return Limits{}, fmt.Errorf("failed to get league limits: %w", err)
	}
	return limits, nil
}

func scanSlot(rows *sql.Rows) (models.RosterSlot, error) {
	var (
		slot     models.RosterSlot
		playerID uuid.NullUUID
	)
	if err := rows.Scan(&slot.ID, &slot.FantasyTeamID, &slot.PositionID, &playerID, &slot.IsActive, &slot.AcquiredAt); err != nil {
		return models.RosterSlot{}, fmt.Errorf("failed to scan roster slot: %w", err)
	}
	slot.PlayerID = sqlutil.FromNullUUID(playerID)
	return slot, nil
}
