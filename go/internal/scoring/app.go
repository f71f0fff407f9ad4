package scoring

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/events"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// UpsertStatsRequest carries one player's raw weekly counters from the game
// feed. The derived total is never accepted from callers.
type UpsertStatsRequest struct {
	PlayerID      uuid.UUID       `json:"player_id"`
	WeekID        uuid.UUID       `json:"week_id"`
	FantasyTeamID uuid.UUID       `json:"fantasy_team_id"`
	Line          models.StatLine `json:"line"`
}

// App owns the scoring lifecycle: raw stat ingestion, point recomputation,
// and league weight changes. Every Upsert recomputes the row's total in the
// same transaction, so a committed row never carries a stale total.
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new scoring App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

type txRepos struct {
	scoring *Repository
	outbox  *outbox.Repository
}

func newTxRepos(tx *sql.Tx) *txRepos {
	return &txRepos{
		scoring: NewRepository(tx),
		outbox:  outbox.NewRepository(tx),
	}
}

// UpsertWeeklyStats writes the raw line for one (player, week, team) and
// recomputes its total under the league's current weights, all in one
// transaction
func (a *App) UpsertWeeklyStats(ctx context.Context, req UpsertStatsRequest) (*models.PlayerFantasyStats, error) {
	now := a.clock.Now()
	var saved *models.PlayerFantasyStats
	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		cfg, err := q.scoring.GetConfigByFantasyTeam(ctx, req.FantasyTeamID)
		if err != nil {
			return err
		}

		stats := models.PlayerFantasyStats{
			ID:                 uuid.New(),
			PlayerID:           req.PlayerID,
			WeekID:             req.WeekID,
			FantasyTeamID:      req.FantasyTeamID,
			StatLine:           req.Line,
			TotalFantasyPoints: ComputePoints(req.Line, *cfg),
			UpdatedAt:          now,
		}
		saved, err = q.scoring.UpsertStats(ctx, stats)
		if err != nil {
			return err
		}
		return a.emitRecomputed(ctx, q, *saved, now)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("player_id", req.PlayerID.String()).
		Str("week_id", req.WeekID.String()).
		Str("total_points", saved.TotalFantasyPoints.String()).
		Msg("weekly stats upserted")
	return saved, nil
}

// RecomputePlayer rereads one row and rewrites its total from the raw
// counters. The update is guarded by the updated_at the row was read at, so
// a concurrent writer surfaces as ErrConcurrentModification instead of a
// silent overwrite.
func (a *App) RecomputePlayer(ctx context.Context, playerID, weekID, fantasyTeamID uuid.UUID) (*models.PlayerFantasyStats, error) {
	now := a.clock.Now()
	var result *models.PlayerFantasyStats
	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		stats, err := q.scoring.GetStats(ctx, playerID, weekID, fantasyTeamID)
		if err != nil {
			return err
		}
		cfg, err := q.scoring.GetConfigByFantasyTeam(ctx, fantasyTeamID)
		if err != nil {
			return err
		}

		total := ComputePoints(stats.StatLine, *cfg)
		if err := q.scoring.UpdateTotal(ctx, stats.ID, total, stats.UpdatedAt, now); err != nil {
			return err
		}
		stats.TotalFantasyPoints = total
		stats.UpdatedAt = now
		result = stats
		return a.emitRecomputed(ctx, q, *stats, now)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("player_id", playerID.String()).
		Str("week_id", weekID.String()).
		Str("total_points", result.TotalFantasyPoints.String()).
		Msg("player fantasy points recomputed")
	return result, nil
}

// UpdateLeagueConfig replaces a league's weights and recomputes every stat
// row in the league under the new weights before the change becomes visible.
// The rows are locked for the duration, so no reader ever observes a mix of
// old and new totals.
func (a *App) UpdateLeagueConfig(ctx context.Context, leagueID uuid.UUID, weights models.ScoringConfig) (*models.ScoringConfig, error) {
	now := a.clock.Now()
	weights.LeagueID = leagueID

	var recomputed int
	err := sqlutil.RunSerializable(ctx, a.db, newTxRepos, func(q *txRepos) error {
		if err := q.scoring.UpdateConfig(ctx, weights); err != nil {
			return err
		}

		rows, err := q.scoring.ListStatsByLeagueForUpdate(ctx, leagueID)
		if err != nil {
			return err
		}
		for _, stats := range rows {
			total := ComputePoints(stats.StatLine, weights)
			if total.Equal(stats.TotalFantasyPoints) {
				continue
			}
			if err := q.scoring.UpdateTotal(ctx, stats.ID, total, stats.UpdatedAt, now); err != nil {
				return err
			}
			stats.TotalFantasyPoints = total
			if err := a.emitRecomputed(ctx, q, stats, now); err != nil {
				return err
			}
			recomputed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("league_id", leagueID.String()).
		Int("rows_recomputed", recomputed).
		Msg("scoring config updated")
	return &weights, nil
}

// GetLeagueConfig returns the league's current weights
func (a *App) GetLeagueConfig(ctx context.Context, leagueID uuid.UUID) (*models.ScoringConfig, error) {
	return NewRepository(a.db).GetConfig(ctx, leagueID)
}

// GetPlayerStats returns the stat row for one (player, week, fantasy team)
func (a *App) GetPlayerStats(ctx context.Context, playerID, weekID, fantasyTeamID uuid.UUID) (*models.PlayerFantasyStats, error) {
	return NewRepository(a.db).GetStats(ctx, playerID, weekID, fantasyTeamID)
}

// ListTeamWeekStats returns every stat row a team has for one week
func (a *App) ListTeamWeekStats(ctx context.Context, fantasyTeamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	return NewRepository(a.db).ListStatsByTeamWeek(ctx, fantasyTeamID, weekID)
}

func (a *App) emitRecomputed(ctx context.Context, q *txRepos, stats models.PlayerFantasyStats, now time.Time) error {
	payload, err := json.Marshal(events.StatsRecomputedPayload{
		PlayerID:      stats.PlayerID.String(),
		WeekID:        stats.WeekID.String(),
		FantasyTeamID: stats.FantasyTeamID.String(),
		TotalPoints:   stats.TotalFantasyPoints.String(),
		RecomputedAt:  now,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal stats recomputed payload: %w", err)
	}
	return q.outbox.Insert(ctx, outbox.NewEvent(stats.ID, events.TypeStatsRecomputed, payload, now))
}
