package fantasyteam

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository persists fantasy teams and their running records
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const teamColumns = `id, league_id, owner_id, name, logo_url, wins, losses, ties,
	total_points, created_at, updated_at`

// CreateFantasyTeam inserts a new team
func (r *Repository) CreateFantasyTeam(ctx context.Context, team models.FantasyTeam) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fantasy_teams (id, league_id, owner_id, name, logo_url, wins, losses, ties,
			total_points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		team.ID, team.LeagueID, team.OwnerID, team.Name, team.LogoURL,
		team.Wins, team.Losses, team.Ties, team.TotalPoints, team.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create fantasy team: %w", err)
	}
	return nil
}

// GetFantasyTeam returns one team by id
func (r *Repository) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE id = $1`, teamColumns), id)
	return scanTeam(row)
}

// GetFantasyTeamByLeagueAndOwner returns the owner's team in a league, if any
func (r *Repository) GetFantasyTeamByLeagueAndOwner(ctx context.Context, ownerID, leagueID uuid.UUID) (*models.FantasyTeam, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE owner_id = $1 AND league_id = $2`, teamColumns),
		ownerID, leagueID)
	return scanTeam(row)
}

// GetFantasyTeamsByLeague returns a league's teams ordered as standings:
// best record first, cumulative points as the tiebreaker.
func (r *Repository) GetFantasyTeamsByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	return r.queryTeams(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE league_id = $1
		 ORDER BY wins DESC, ties DESC, total_points DESC, name`, teamColumns),
		leagueID)
}

// GetFantasyTeamsByOwner returns every team an owner holds across leagues
func (r *Repository) GetFantasyTeamsByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	return r.queryTeams(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_teams WHERE owner_id = $1 ORDER BY created_at`, teamColumns),
		ownerID)
}

// UpdateFantasyTeam renames a team or swaps its logo
func (r *Repository) UpdateFantasyTeam(ctx context.Context, id uuid.UUID, name, logoURL string) (*models.FantasyTeam, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE fantasy_teams SET name = $2, logo_url = $3, updated_at = NOW()
		 WHERE id = $1 RETURNING %s`, teamColumns),
		id, name, logoURL)
	return scanTeam(row)
}

// DeleteFantasyTeam removes a team
func (r *Repository) DeleteFantasyTeam(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fantasy_teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fantasy team: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete fantasy team: %w", err)
	}
	if n == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// ApplyResult advances a team's record after a finalized matchup: one of
// wins, losses, or ties is 1 and the week's score joins the cumulative total.
func (r *Repository) ApplyResult(ctx context.Context, id uuid.UUID, wins, losses, ties int, points decimal.Decimal) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fantasy_teams
		 SET wins = wins + $2, losses = losses + $3, ties = ties + $4,
			total_points = total_points + $5, updated_at = NOW()
		 WHERE id = $1`,
		id, wins, losses, ties, points)
	if err != nil {
		return fmt.Errorf("failed to apply matchup result: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to apply matchup result: %w", err)
	}
	if n == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// CountTeamsByLeagueForUpdate locks the league's team rows and returns their
// count, used by the capacity check when a team joins
func (r *Repository) CountTeamsByLeagueForUpdate(ctx context.Context, leagueID uuid.UUID) (int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM fantasy_teams WHERE league_id = $1 FOR UPDATE`, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to count fantasy teams: %w", err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to count fantasy teams: %w", err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to count fantasy teams: %w", err)
	}
	return count, nil
}

func (r *Repository) queryTeams(ctx context.Context, query string, args ...any) ([]models.FantasyTeam, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fantasy teams: %w", err)
	}
	defer rows.Close()

	var teams []models.FantasyTeam
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fantasy teams: %w", err)
	}
	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.FantasyTeam, error) {
	var t models.FantasyTeam
	err := row.Scan(&t.ID, &t.LeagueID, &t.OwnerID, &t.Name, &t.LogoURL,
		&t.Wins, &t.Losses, &t.Ties, &t.TotalPoints, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan fantasy team: %w", err)
	}
	return &t, nil
}
