package leagues

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
)

// Repository persists leagues, their weekly calendar, and seasons
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const leagueColumns = `id, name, description, season_id, commissioner_id, scoring_mode,
	max_teams, roster_size, starting_lineup_size, is_active, is_public, created_at, updated_at`

const weekColumns = `id, league_id, week_number, start_date, end_date, is_playoffs`

const seasonColumns = `id, name, start_date, end_date, playoffs_start_date, is_current`

// CreateLeague inserts a new league
func (r *Repository) CreateLeague(ctx context.Context, league models.League) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO leagues (id, name, description, season_id, commissioner_id, scoring_mode,
			max_teams, roster_size, starting_lineup_size, is_active, is_public, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12)`,
		league.ID, league.Name, league.Description, league.SeasonID, league.CommissionerID,
		league.ScoringMode, league.MaxTeams, league.RosterSize, league.StartingLineupSize,
		league.IsActive, league.IsPublic, league.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create league: %w", err)
	}
	return nil
}

// GetLeague returns one league by id
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM leagues WHERE id = $1`, leagueColumns), id)
	return scanLeague(row)
}

// GetLeaguesByCommissioner returns every league a commissioner runs
func (r *Repository) GetLeaguesByCommissioner(ctx context.Context, commissionerID uuid.UUID) ([]models.League, error) {
	return r.queryLeagues(ctx,
		fmt.Sprintf(`SELECT %s FROM leagues WHERE commissioner_id = $1 ORDER BY created_at`, leagueColumns),
		commissionerID)
}

// ListPublicLeagues returns the leagues open to new joins
func (r *Repository) ListPublicLeagues(ctx context.Context) ([]models.League, error) {
	return r.queryLeagues(ctx,
		fmt.Sprintf(`SELECT %s FROM leagues WHERE is_public AND is_active ORDER BY name`, leagueColumns))
}

// UpdateLeague rewrites a league's mutable fields
func (r *Repository) UpdateLeague(ctx context.Context, league models.League) (*models.League, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`UPDATE leagues
		 SET name = $2, description = $3, max_teams = $4, is_active = $5, is_public = $6,
			updated_at = NOW()
		 WHERE id = $1 RETURNING %s`, leagueColumns),
		league.ID, league.Name, league.Description, league.MaxTeams, league.IsActive, league.IsPublic)
	return scanLeague(row)
}

// DeleteLeague removes a league
func (r *Repository) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leagues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	if n == 0 {
		return ErrLeagueNotFound
	}
	return nil
}

// CreateWeek inserts one scoring week into a league's calendar
func (r *Repository) CreateWeek(ctx context.Context, week models.FantasyWeek) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fantasy_weeks (id, league_id, week_number, start_date, end_date, is_playoffs)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		week.ID, week.LeagueID, week.WeekNumber, week.StartDate, week.EndDate, week.IsPlayoffs)
	if err != nil {
		return fmt.Errorf("failed to create fantasy week: %w", err)
	}
	return nil
}

// GetWeek returns one week by id
func (r *Repository) GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_weeks WHERE id = $1`, weekColumns), id)
	return scanWeek(row)
}

// ListWeeksByLeague returns a league's calendar in week order
func (r *Repository) ListWeeksByLeague(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_weeks WHERE league_id = $1 ORDER BY week_number`, weekColumns),
		leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fantasy weeks: %w", err)
	}
	defer rows.Close()

	var weeks []models.FantasyWeek
	for rows.Next() {
		week, err := scanWeek(rows)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, *week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fantasy weeks: %w", err)
	}
	return weeks, nil
}

// GetWeekForDate returns the league week whose date range covers the given
// date, ErrWeekNotFound when the date falls outside the calendar
func (r *Repository) GetWeekForDate(ctx context.Context, leagueID uuid.UUID, date time.Time) (*models.FantasyWeek, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM fantasy_weeks
		 WHERE league_id = $1 AND start_date <= $2 AND end_date >= $2
		 ORDER BY week_number LIMIT 1`, weekColumns),
		leagueID, date)
	return scanWeek(row)
}

// CreateSeason inserts a season
func (r *Repository) CreateSeason(ctx context.Context, season models.Season) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO seasons (id, name, start_date, end_date, playoffs_start_date, is_current)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		season.ID, season.Name, season.StartDate, season.EndDate,
		sqlutil.ToSqlTime(season.PlayoffsStartDate), season.IsCurrent)
	if err != nil {
		return fmt.Errorf("failed to create season: %w", err)
	}
	return nil
}

// GetSeason returns one season by id
func (r *Repository) GetSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM seasons WHERE id = $1`, seasonColumns), id)
	return scanSeason(row)
}

// GetCurrentSeason returns the season flagged current
func (r *Repository) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM seasons WHERE is_current`, seasonColumns))
	return scanSeason(row)
}

// ClearCurrentSeason drops the current flag wherever it is set
func (r *Repository) ClearCurrentSeason(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `UPDATE seasons SET is_current = FALSE WHERE is_current`)
	if err != nil {
		return fmt.Errorf("failed to clear current season: %w", err)
	}
	return nil
}

// MarkSeasonCurrent sets the current flag on one season
func (r *Repository) MarkSeasonCurrent(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `UPDATE seasons SET is_current = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to mark season current: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark season current: %w", err)
	}
	if n == 0 {
		return ErrSeasonNotFound
	}
	return nil
}

func (r *Repository) queryLeagues(ctx context.Context, query string, args ...any) ([]models.League, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leagues: %w", err)
	}
	defer rows.Close()

	var all []models.League
	for rows.Next() {
		league, err := scanLeague(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *league)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leagues: %w", err)
	}
	return all, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLeague(row rowScanner) (*models.League, error) {
	var l models.League
	err := row.Scan(&l.ID, &l.Name, &l.Description, &l.SeasonID, &l.CommissionerID,
		&l.ScoringMode, &l.MaxTeams, &l.RosterSize, &l.StartingLineupSize,
		&l.IsActive, &l.IsPublic, &l.CreatedAt, &l.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrLeagueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan league: %w", err)
	}
	return &l, nil
}

func scanWeek(row rowScanner) (*models.FantasyWeek, error) {
	var w models.FantasyWeek
	err := row.Scan(&w.ID, &w.LeagueID, &w.WeekNumber, &w.StartDate, &w.EndDate, &w.IsPlayoffs)
	if err == sql.ErrNoRows {
		return nil, ErrWeekNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan fantasy week: %w", err)
	}
	return &w, nil
}

func scanSeason(row rowScanner) (*models.Season, error) {
	var (
		s        models.Season
		playoffs sql.NullTime
	)
	err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &playoffs, &s.IsCurrent)
	if err == sql.ErrNoRows {
		return nil, ErrSeasonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan season: %w", err)
	}
	s.PlayoffsStartDate = sqlutil.FromSqlTime(playoffs)
	return &s, nil
}
