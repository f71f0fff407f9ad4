package players

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

const defaultSearchLimit = 25

// App serves NHL player and position reference lookups and season stat
// ingestion
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new players App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

// GetPlayer returns one player by id
func (a *App) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return NewRepository(a.db).GetPlayer(ctx, id)
}

// ListTeamPlayers returns a team's active players
func (a *App) ListTeamPlayers(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	return NewRepository(a.db).ListPlayersByTeam(ctx, teamID)
}

// ListPositionPlayers returns active players at one position
func (a *App) ListPositionPlayers(ctx context.Context, positionID uuid.UUID) ([]models.Player, error) {
	return NewRepository(a.db).ListPlayersByPosition(ctx, positionID)
}

// SearchPlayers matches active players by name fragment
func (a *App) SearchPlayers(ctx context.Context, query string) ([]models.Player, error) {
	if query == "" {
		return nil, fmt.Errorf("validation failed: query is required")
	}
	return NewRepository(a.db).SearchPlayers(ctx, query, defaultSearchLimit)
}

// ListPositions returns the full position reference set
func (a *App) ListPositions(ctx context.Context) ([]models.Position, error) {
	return NewRepository(a.db).ListPositions(ctx)
}

// GetSeasonStats returns one player's aggregate for a season with a team
func (a *App) GetSeasonStats(ctx context.Context, playerID, teamID, seasonID uuid.UUID) (*models.PlayerSeasonStats, error) {
	return NewRepository(a.db).GetSeasonStats(ctx, playerID, teamID, seasonID)
}

// UpsertSeasonStats ingests a raw season aggregate from the game feed. The
// derived fields are recomputed here; whatever the feed carried for them is
// discarded.
func (a *App) UpsertSeasonStats(ctx context.Context, stats models.PlayerSeasonStats) (*models.PlayerSeasonStats, error) {
	if stats.ID == uuid.Nil {
		stats.ID = uuid.New()
	}
	stats.CreatedAt = a.clock.Now()
	stats.UpdatedAt = stats.CreatedAt
	stats = DeriveSeasonTotals(stats)

	if err := NewRepository(a.db).UpsertSeasonStats(ctx, stats); err != nil {
		return nil, err
	}

	log.Info().
		Str("player_id", stats.PlayerID.String()).
		Str("season_id", stats.SeasonID.String()).
		Int("points", stats.Points).
		Msg("player season stats upserted")
	return &stats, nil
}
