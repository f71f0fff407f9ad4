package leagues

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/events"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// CreateLeagueRequest carries the fields a new league is created with.
// Roster limits are fixed at creation; changing them under live rosters
// would invalidate existing slot assignments.
type CreateLeagueRequest struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	SeasonID           uuid.UUID          `json:"season_id"`
	CommissionerID     uuid.UUID          `json:"commissioner_id"`
	ScoringMode        models.ScoringMode `json:"scoring_mode"`
	MaxTeams           int                `json:"max_teams"`
	RosterSize         int                `json:"roster_size"`
	StartingLineupSize int                `json:"starting_lineup_size"`
	IsPublic           bool               `json:"is_public"`
}

// UpdateLeagueRequest carries the mutable league fields
type UpdateLeagueRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxTeams    int    `json:"max_teams"`
	IsActive    bool   `json:"is_active"`
	IsPublic    bool   `json:"is_public"`
}

// CreateWeekRequest adds one scoring week to a league's calendar
type CreateWeekRequest struct {
	LeagueID   uuid.UUID `json:"league_id"`
	WeekNumber int       `json:"week_number"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsPlayoffs bool      `json:"is_playoffs"`
}

// CreateSeasonRequest adds a season
type CreateSeasonRequest struct {
	Name              string     `json:"name"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	PlayoffsStartDate *time.Time `json:"playoffs_start_date"`
}

// App handles league, calendar, and season business logic
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new leagues App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

type txRepos struct {
	leagues *Repository
	scoring *scoring.Repository
	outbox  *outbox.Repository
}

func newTxRepos(tx *sql.Tx) *txRepos {
	return &txRepos{
		leagues: NewRepository(tx),
		scoring: scoring.NewRepository(tx),
		outbox:  outbox.NewRepository(tx),
	}
}

// CreateLeague creates a league together with its scoring config. The config
// starts from the default weights; both rows land in one transaction so no
// league ever exists without weights.
func (a *App) CreateLeague(ctx context.Context, req CreateLeagueRequest) (*models.League, error) {
	if err := validateCreateLeagueRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	league := models.League{
		ID:                 uuid.New(),
		Name:               req.Name,
		Description:        req.Description,
		SeasonID:           req.SeasonID,
		CommissionerID:     req.CommissionerID,
		ScoringMode:        req.ScoringMode,
		MaxTeams:           req.MaxTeams,
		RosterSize:         req.RosterSize,
		StartingLineupSize: req.StartingLineupSize,
		IsActive:           true,
		IsPublic:           req.IsPublic,
		CreatedAt:          a.clock.Now(),
	}
	league.UpdatedAt = league.CreatedAt

	cfg := models.DefaultScoringConfig()
	cfg.ID = uuid.New()
	cfg.LeagueID = league.ID

	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		if err := q.leagues.CreateLeague(ctx, league); err != nil {
			return err
		}
		return q.scoring.InsertConfig(ctx, cfg)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("league_id", league.ID.String()).
		Str("name", league.Name).
		Str("scoring_mode", string(league.ScoringMode)).
		Msg("league created")
	return &league, nil
}

// GetLeague returns one league by id
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return NewRepository(a.db).GetLeague(ctx, id)
}

// ListPublicLeagues returns the leagues open to new joins
func (a *App) ListPublicLeagues(ctx context.Context) ([]models.League, error) {
	return NewRepository(a.db).ListPublicLeagues(ctx)
}

// ListCommissionerLeagues returns every league a commissioner runs
func (a *App) ListCommissionerLeagues(ctx context.Context, commissionerID uuid.UUID) ([]models.League, error) {
	return NewRepository(a.db).GetLeaguesByCommissioner(ctx, commissionerID)
}

// UpdateLeague rewrites a league's mutable fields
func (a *App) UpdateLeague(ctx context.Context, id uuid.UUID, req UpdateLeagueRequest) (*models.League, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	if req.MaxTeams <= 0 {
		return nil, fmt.Errorf("validation failed: max_teams must be positive")
	}

	league, err := NewRepository(a.db).UpdateLeague(ctx, models.League{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		MaxTeams:    req.MaxTeams,
		IsActive:    req.IsActive,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("league_id", id.String()).Msg("league updated")
	return league, nil
}

// DeleteLeague removes a league
func (a *App) DeleteLeague(ctx context.Context, id uuid.UUID) error {
	if err := NewRepository(a.db).DeleteLeague(ctx, id); err != nil {
		return err
	}

	log.Info().Str("league_id", id.String()).Msg("league deleted")
	return nil
}

// CreateWeek adds one scoring week to a league's calendar
func (a *App) CreateWeek(ctx context.Context, req CreateWeekRequest) (*models.FantasyWeek, error) {
	if req.WeekNumber <= 0 {
		return nil, fmt.Errorf("validation failed: week_number must be positive")
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("validation failed: start_date must precede end_date")
	}

	week := models.FantasyWeek{
		ID:         uuid.New(),
		LeagueID:   req.LeagueID,
		WeekNumber: req.WeekNumber,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		IsPlayoffs: req.IsPlayoffs,
	}
	if err := NewRepository(a.db).CreateWeek(ctx, week); err != nil {
		return nil, err
	}

	log.Info().
		Str("week_id", week.ID.String()).
		Str("league_id", week.LeagueID.String()).
		Int("week_number", week.WeekNumber).
		Msg("fantasy week created")
	return &week, nil
}

// GetWeek returns one week by id
func (a *App) GetWeek(ctx context.Context, id uuid.UUID) (*models.FantasyWeek, error) {
	return NewRepository(a.db).GetWeek(ctx, id)
}

// ListLeagueWeeks returns a league's calendar in week order
func (a *App) ListLeagueWeeks(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyWeek, error) {
	return NewRepository(a.db).ListWeeksByLeague(ctx, leagueID)
}

// WeekForDate returns the league week covering the given date
func (a *App) WeekForDate(ctx context.Context, leagueID uuid.UUID, date time.Time) (*models.FantasyWeek, error) {
	return NewRepository(a.db).GetWeekForDate(ctx, leagueID, date)
}

// CurrentWeek returns the league week covering today
func (a *App) CurrentWeek(ctx context.Context, leagueID uuid.UUID) (*models.FantasyWeek, error) {
	return NewRepository(a.db).GetWeekForDate(ctx, leagueID, a.clock.Now())
}

// CreateSeason adds a season, never current on creation
func (a *App) CreateSeason(ctx context.Context, req CreateSeasonRequest) (*models.Season, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, fmt.Errorf("validation failed: start_date must precede end_date")
	}

	season := models.Season{
		ID:                uuid.New(),
		Name:              req.Name,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		PlayoffsStartDate: req.PlayoffsStartDate,
	}
	if err := NewRepository(a.db).CreateSeason(ctx, season); err != nil {
		return nil, err
	}

	log.Info().Str("season_id", season.ID.String()).Str("name", season.Name).Msg("season created")
	return &season, nil
}

// GetCurrentSeason returns the season flagged current
func (a *App) GetCurrentSeason(ctx context.Context) (*models.Season, error) {
	return NewRepository(a.db).GetCurrentSeason(ctx)
}

// SetCurrentSeason moves the current flag to the given season. The previous
// flag is cleared and the new one set in a single transaction, so exactly
// one season is current at any time.
func (a *App) SetCurrentSeason(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	now := a.clock.Now()
	var season *models.Season
	err := sqlutil.RunSerializable(ctx, a.db, newTxRepos, func(q *txRepos) error {
		var err error
		season, err = q.leagues.GetSeason(ctx, id)
		if err != nil {
			return err
		}
		if err := q.leagues.ClearCurrentSeason(ctx); err != nil {
			return err
		}
		if err := q.leagues.MarkSeasonCurrent(ctx, id); err != nil {
			return err
		}
		season.IsCurrent = true

		payload, err := json.Marshal(events.SeasonChangedPayload{
			SeasonID:  season.ID.String(),
			Name:      season.Name,
			ChangedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal season changed payload: %w", err)
		}
		return q.outbox.Insert(ctx, outbox.NewEvent(season.ID, events.TypeSeasonChanged, payload, now))
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("season_id", id.String()).Str("name", season.Name).Msg("current season changed")
	return season, nil
}

func validateCreateLeagueRequest(req CreateLeagueRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.SeasonID == uuid.Nil {
		return fmt.Errorf("season_id is required")
	}
	if req.CommissionerID == uuid.Nil {
		return fmt.Errorf("commissioner_id is required")
	}
	switch req.ScoringMode {
	case models.ScoringModePoints, models.ScoringModeCategories,
		models.ScoringModeRotisserie, models.ScoringModeHeadToHead:
	default:
		return fmt.Errorf("%w: %s", ErrInvalidScoringMode, req.ScoringMode)
	}
	if req.MaxTeams <= 0 {
		return fmt.Errorf("max_teams must be positive")
	}
	if req.RosterSize <= 0 {
		return fmt.Errorf("roster_size must be positive")
	}
	if req.StartingLineupSize <= 0 || req.StartingLineupSize > req.RosterSize {
		return fmt.Errorf("starting_lineup_size must be positive and within roster_size")
	}
	return nil
}
