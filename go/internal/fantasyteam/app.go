package fantasyteam

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// CreateFantasyTeamRequest carries the fields a new team is created with
type CreateFantasyTeamRequest struct {
	LeagueID uuid.UUID `json:"league_id"`
	OwnerID  uuid.UUID `json:"owner_id"`
	Name     string    `json:"name"`
	LogoURL  string    `json:"logo_url"`
}

// UpdateFantasyTeamRequest carries the mutable team fields
type UpdateFantasyTeamRequest struct {
	Name    string `json:"name"`
	LogoURL string `json:"logo_url"`
}

// App handles fantasy team business logic. Creation checks league capacity
// and the one-team-per-owner rule inside a serializable transaction so two
// racing joins cannot both land in the last open spot.
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new fantasy team App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

type txRepos struct {
	teams   *Repository
	leagues *leagues.Repository
}

func newTxRepos(tx *sql.Tx) *txRepos {
	return &txRepos{
		teams:   NewRepository(tx),
		leagues: leagues.NewRepository(tx),
	}
}

// CreateFantasyTeam creates a new team after validating league capacity and
// owner uniqueness
func (a *App) CreateFantasyTeam(ctx context.Context, req CreateFantasyTeamRequest) (*models.FantasyTeam, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := models.FantasyTeam{
		ID:        uuid.New(),
		LeagueID:  req.LeagueID,
		OwnerID:   req.OwnerID,
		Name:      req.Name,
		LogoURL:   req.LogoURL,
		CreatedAt: a.clock.Now(),
	}
	team.UpdatedAt = team.CreatedAt

	err := sqlutil.RunSerializable(ctx, a.db, newTxRepos, func(q *txRepos) error {
		league, err := q.leagues.GetLeague(ctx, req.LeagueID)
		if err != nil {
			return err
		}

		count, err := q.teams.CountTeamsByLeagueForUpdate(ctx, req.LeagueID)
		if err != nil {
			return err
		}
		if count >= league.MaxTeams {
			return ErrLeagueFull
		}

		_, err = q.teams.GetFantasyTeamByLeagueAndOwner(ctx, req.OwnerID, req.LeagueID)
		if err == nil {
			return ErrDuplicateOwner
		}
		if err != ErrTeamNotFound {
			return err
		}

		return q.teams.CreateFantasyTeam(ctx, team)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("fantasy_team_id", team.ID.String()).
		Str("league_id", team.LeagueID.String()).
		Str("name", team.Name).
		Msg("fantasy team created")
	return &team, nil
}

// GetFantasyTeam returns one team by id
func (a *App) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	return NewRepository(a.db).GetFantasyTeam(ctx, id)
}

// ListLeagueTeams returns a league's teams in standings order
func (a *App) ListLeagueTeams(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	return NewRepository(a.db).GetFantasyTeamsByLeague(ctx, leagueID)
}

// ListOwnerTeams returns every team an owner holds
func (a *App) ListOwnerTeams(ctx context.Context, ownerID uuid.UUID) ([]models.FantasyTeam, error) {
	return NewRepository(a.db).GetFantasyTeamsByOwner(ctx, ownerID)
}

// UpdateFantasyTeam renames a team or swaps its logo
func (a *App) UpdateFantasyTeam(ctx context.Context, id uuid.UUID, req UpdateFantasyTeamRequest) (*models.FantasyTeam, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("validation failed: name is required")
	}
	team, err := NewRepository(a.db).UpdateFantasyTeam(ctx, id, req.Name, req.LogoURL)
	if err != nil {
		return nil, err
	}

	log.Info().Str("fantasy_team_id", id.String()).Msg("fantasy team updated")
	return team, nil
}

// DeleteFantasyTeam removes a team
func (a *App) DeleteFantasyTeam(ctx context.Context, id uuid.UUID) error {
	if err := NewRepository(a.db).DeleteFantasyTeam(ctx, id); err != nil {
		return err
	}

	log.Info().Str("fantasy_team_id", id.String()).Msg("fantasy team deleted")
	return nil
}

func validateCreateRequest(req CreateFantasyTeamRequest) error {
	if req.LeagueID == uuid.Nil {
		return fmt.Errorf("league_id is required")
	}
	if req.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id is required")
	}
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
