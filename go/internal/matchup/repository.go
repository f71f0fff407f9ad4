package matchup

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
)

// Repository persists weekly matchup pairings and their scores
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const matchupColumns = `id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete`

// CreateMatchup inserts a new pairing for a week
func (r *Repository) CreateMatchup(ctx context.Context, m models.Matchup) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO matchups (id, week_id, team1_id, team2_id, team1_score, team2_score, is_complete)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.WeekID, m.Team1ID, m.Team2ID, m.Team1Score, m.Team2Score, m.IsComplete)
	if err != nil {
		return fmt.Errorf("failed to insert matchup: %w", err)
	}
	return nil
}

// GetMatchup returns one matchup by id
func (r *Repository) GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	return r.getMatchup(ctx, id, false)
}

// GetMatchupForUpdate is GetMatchup with the row locked for the enclosing
// transaction, used by finalization
func (r *Repository) GetMatchupForUpdate(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	return r.getMatchup(ctx, id, true)
}

func (r *Repository) getMatchup(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Matchup, error) {
	query := fmt.Sprintf(`SELECT %s FROM matchups WHERE id = $1`, matchupColumns)
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var m models.Matchup
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID, &m.WeekID, &m.Team1ID, &m.Team2ID, &m.Team1Score, &m.Team2Score, &m.IsComplete)
	if err == sql.ErrNoRows {
		return nil, ErrMatchupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get matchup: %w", err)
	}
	return &m, nil
}

// ListMatchupsByWeek returns every pairing scheduled for a week
func (r *Repository) ListMatchupsByWeek(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM matchups WHERE week_id = $1 ORDER BY id`, matchupColumns), weekID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups: %w", err)
	}
	defer rows.Close()

	var matchups []models.Matchup
	for rows.Next() {
		var m models.Matchup
		if err := rows.Scan(&m.ID, &m.WeekID, &m.Team1ID, &m.Team2ID, &m.Team1Score, &m.Team2Score, &m.IsComplete); err != nil {
			return nil, fmt.Errorf("failed to scan matchup: %w", err)
		}
		matchups = append(matchups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matchups: %w", err)
	}
	return matchups, nil
}

// ListMatchupsByTeam returns a team's pairings across all weeks
func (r *Repository) ListMatchupsByTeam(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.Matchup, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM matchups WHERE team1_id = $1 OR team2_id = $1 ORDER BY id`, matchupColumns),
		fantasyTeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query matchups: %w", err)
	}
	defer rows.Close()

	var matchups []models.Matchup
	for rows.Next() {
		var m models.Matchup
		if err := rows.Scan(&m.ID, &m.WeekID, &m.Team1ID, &m.Team2ID, &m.Team1Score, &m.Team2Score, &m.IsComplete); err != nil {
			return nil, fmt.Errorf("failed to scan matchup: %w", err)
		}
		matchups = append(matchups, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read matchups: %w", err)
	}
	return matchups, nil
}

// FinalizeMatchup writes both scores and flips is_complete in one statement.
// Zero rows affected means the matchup was already complete.
func (r *Repository) FinalizeMatchup(ctx context.Context, m models.Matchup) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE matchups SET team1_score = $2, team2_score = $3, is_complete = TRUE
		 WHERE id = $1 AND NOT is_complete`,
		m.ID, m.Team1Score, m.Team2Score)
	if err != nil {
		return fmt.Errorf("failed to finalize matchup: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finalize matchup: %w", err)
	}
	if n == 0 {
		return ErrAlreadyFinalized
	}
	return nil
}
