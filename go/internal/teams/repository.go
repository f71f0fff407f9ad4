package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
)

// ErrTeamNotFound is returned when no NHL team matches the lookup
var ErrTeamNotFound = errors.New("team not found")

// Repository reads NHL team, division, and conference reference data. Rows
// arrive through the seed tool; nothing here mutates them.
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const teamColumns = `id, name, city, abbreviation, division_id, is_active, created_at`

// GetTeam returns one NHL team by id
func (r *Repository) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM teams WHERE id = $1`, teamColumns), id)
	return scanTeam(row)
}

// GetTeamByAbbreviation returns the team matching a three letter code
func (r *Repository) GetTeamByAbbreviation(ctx context.Context, abbreviation string) (*models.Team, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM teams WHERE abbreviation = $1`, teamColumns), abbreviation)
	return scanTeam(row)
}

// ListTeams returns all active NHL teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	return r.queryTeams(ctx,
		fmt.Sprintf(`SELECT %s FROM teams WHERE is_active ORDER BY city, name`, teamColumns))
}

// ListTeamsByDivision returns a division's teams
func (r *Repository) ListTeamsByDivision(ctx context.Context, divisionID uuid.UUID) ([]models.Team, error) {
	return r.queryTeams(ctx,
		fmt.Sprintf(`SELECT %s FROM teams WHERE division_id = $1 AND is_active ORDER BY city, name`, teamColumns),
		divisionID)
}

// ListConferences returns both conferences
func (r *Repository) ListConferences(ctx context.Context) ([]models.Conference, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, abbreviation FROM conferences ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query conferences: %w", err)
	}
	defer rows.Close()

	var conferences []models.Conference
	for rows.Next() {
		var c models.Conference
		if err := rows.Scan(&c.ID, &c.Name, &c.Abbreviation); err != nil {
			return nil, fmt.Errorf("failed to scan conference: %w", err)
		}
		conferences = append(conferences, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conferences: %w", err)
	}
	return conferences, nil
}

// ListDivisionsByConference returns a conference's divisions
func (r *Repository) ListDivisionsByConference(ctx context.Context, conferenceID uuid.UUID) ([]models.Division, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, conference_id FROM divisions
		 WHERE conference_id = $1 ORDER BY name`, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query divisions: %w", err)
	}
	defer rows.Close()

	var divisions []models.Division
	for rows.Next() {
		var d models.Division
		if err := rows.Scan(&d.ID, &d.Name, &d.Abbreviation, &d.ConferenceID); err != nil {
			return nil, fmt.Errorf("failed to scan division: %w", err)
		}
		divisions = append(divisions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read divisions: %w", err)
	}
	return divisions, nil
}

func (r *Repository) queryTeams(ctx context.Context, query string, args ...any) ([]models.Team, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}
	return teams, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var t models.Team
	err := row.Scan(&t.ID, &t.Name, &t.City, &t.Abbreviation, &t.DivisionID, &t.IsActive, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTeamNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan team: %w", err)
	}
	return &t, nil
}
