package scoring

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Repository persists scoring configs and player fantasy stat rows. Like the
// roster repository it works against either *sql.DB or a *sql.Tx.
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const configColumns = `id, league_id, goals, assists, plus_minus, penalty_minutes,
	power_play_goals, power_play_assists, short_handed_goals, short_handed_assists,
	shots_on_goal, hits, blocked_shots, wins, losses, goals_against, saves, shutouts`

const statsColumns = `id, player_id, week_id, fantasy_team_id, games_played,
	goals, assists, plus_minus, penalty_minutes, power_play_goals, power_play_assists,
	short_handed_goals, short_handed_assists, shots_on_goal, hits, blocked_shots,
	wins, losses, goals_against, saves, shutouts, total_fantasy_points, created_at, updated_at`

// GetConfig returns the league's scoring weights
func (r *Repository) GetConfig(ctx context.Context, leagueID uuid.UUID) (*models.ScoringConfig, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM scoring_configs WHERE league_id = $1`, configColumns), leagueID)
	cfg, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scoring config: %w", err)
	}
	return cfg, nil
}

// GetConfigByFantasyTeam resolves a team's league and returns that league's
// weights in one round trip
func (r *Repository) GetConfigByFantasyTeam(ctx context.Context, fantasyTeamID uuid.UUID) (*models.ScoringConfig, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM scoring_configs
		 WHERE league_id = (SELECT league_id FROM fantasy_teams WHERE id = $1)`, configColumns),
		fantasyTeamID)
	cfg, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scoring config: %w", err)
	}
	return cfg, nil
}

// InsertConfig creates the league's scoring config row. Leagues get exactly
// one; creation happens inside the league-create transaction.
func (r *Repository) InsertConfig(ctx context.Context, cfg models.ScoringConfig) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO scoring_configs (id, league_id, goals, assists, plus_minus, penalty_minutes,
			power_play_goals, power_play_assists, short_handed_goals, short_handed_assists,
			shots_on_goal, hits, blocked_shots, wins, losses, goals_against, saves, shutouts)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		cfg.ID, cfg.LeagueID, cfg.Goals, cfg.Assists, cfg.PlusMinus, cfg.PenaltyMinutes,
		cfg.PowerPlayGoals, cfg.PowerPlayAssists, cfg.ShortHandedGoals, cfg.ShortHandedAssists,
		cfg.ShotsOnGoal, cfg.Hits, cfg.BlockedShots, cfg.Wins, cfg.Losses, cfg.GoalsAgainst,
		cfg.Saves, cfg.Shutouts)
	if err != nil {
		return fmt.Errorf("failed to insert scoring config: %w", err)
	}
	return nil
}

// UpdateConfig replaces the league's weights in place
func (r *Repository) UpdateConfig(ctx context.Context, cfg models.ScoringConfig) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE scoring_configs SET goals = $2, assists = $3, plus_minus = $4, penalty_minutes = $5,
			power_play_goals = $6, power_play_assists = $7, short_handed_goals = $8,
			short_handed_assists = $9, shots_on_goal = $10, hits = $11, blocked_shots = $12,
			wins = $13, losses = $14, goals_against = $15, saves = $16, shutouts = $17
		 WHERE league_id = $1`,
		cfg.LeagueID, cfg.Goals, cfg.Assists, cfg.PlusMinus, cfg.PenaltyMinutes,
		cfg.PowerPlayGoals, cfg.PowerPlayAssists, cfg.ShortHandedGoals, cfg.ShortHandedAssists,
		cfg.ShotsOnGoal, cfg.Hits, cfg.BlockedShots, cfg.Wins, cfg.Losses, cfg.GoalsAgainst,
		cfg.Saves, cfg.Shutouts)
	if err != nil {
		return fmt.Errorf("failed to update scoring config: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update scoring config: %w", err)
	}
	if n == 0 {
		return ErrConfigNotFound
	}
	return nil
}

// GetStats returns the stat row for one (player, week, fantasy team)
func (r *Repository) GetStats(ctx context.Context, playerID, weekID, fantasyTeamID uuid.UUID) (*models.PlayerFantasyStats, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM player_fantasy_stats
		 WHERE player_id = $1 AND week_id = $2 AND fantasy_team_id = $3`, statsColumns),
		playerID, weekID, fantasyTeamID)
	stats, err := scanStats(row)
	if err == sql.ErrNoRows {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player fantasy stats: %w", err)
	}
	return stats, nil
}

// ListStatsByTeamWeek returns every stat row a team has for one week
func (r *Repository) ListStatsByTeamWeek(ctx context.Context, fantasyTeamID, weekID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	return r.queryStats(ctx,
		fmt.Sprintf(`SELECT %s FROM player_fantasy_stats
		 WHERE fantasy_team_id = $1 AND week_id = $2 ORDER BY total_fantasy_points DESC`, statsColumns),
		fantasyTeamID, weekID)
}

// ListStatsByLeagueForUpdate locks and returns every stat row in a league,
// used by the config-change recompute so the whole league flips atomically.
func (r *Repository) ListStatsByLeagueForUpdate(ctx context.Context, leagueID uuid.UUID) ([]models.PlayerFantasyStats, error) {
	return r.queryStats(ctx,
		fmt.Sprintf(`SELECT %s FROM player_fantasy_stats s
		 WHERE s.fantasy_team_id IN (SELECT id FROM fantasy_teams WHERE league_id = $1)
		 ORDER BY s.id FOR UPDATE`, prefixColumns("s", statsColumns)),
		leagueID)
}

// UpsertStats writes the raw counters and the freshly computed total for one
// (player, week, fantasy team), inserting the row on first sight.
func (r *Repository) UpsertStats(ctx context.Context, stats models.PlayerFantasyStats) (*models.PlayerFantasyStats, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`INSERT INTO player_fantasy_stats (id, player_id, week_id, fantasy_team_id,
			games_played, goals, assists, plus_minus, penalty_minutes, power_play_goals,
			power_play_assists, short_handed_goals, short_handed_assists, shots_on_goal,
			hits, blocked_shots, wins, losses, goals_against, saves, shutouts,
			total_fantasy_points, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $23)
		 ON CONFLICT (player_id, week_id, fantasy_team_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes,
			power_play_goals = EXCLUDED.power_play_goals,
			power_play_assists = EXCLUDED.power_play_assists,
			short_handed_goals = EXCLUDED.short_handed_goals,
			short_handed_assists = EXCLUDED.short_handed_assists,
			shots_on_goal = EXCLUDED.shots_on_goal,
			hits = EXCLUDED.hits,
			blocked_shots = EXCLUDED.blocked_shots,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			goals_against = EXCLUDED.goals_against,
			saves = EXCLUDED.saves,
			shutouts = EXCLUDED.shutouts,
			total_fantasy_points = EXCLUDED.total_fantasy_points,
			updated_at = EXCLUDED.updated_at
		 RETURNING %s`, statsColumns),
		stats.ID, stats.PlayerID, stats.WeekID, stats.FantasyTeamID,
		stats.GamesPlayed, stats.Goals, stats.Assists, stats.PlusMinus, stats.PenaltyMinutes,
		stats.PowerPlayGoals, stats.PowerPlayAssists, stats.ShortHandedGoals, stats.ShortHandedAssists,
		stats.ShotsOnGoal, stats.Hits, stats.BlockedShots, stats.Wins, stats.Losses,
		stats.GoalsAgainst, stats.Saves, stats.Shutouts, stats.TotalFantasyPoints, stats.UpdatedAt)
	saved, err := scanStats(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert player fantasy stats: %w", err)
	}
	return saved, nil
}

// UpdateTotal rewrites a row's derived total, guarded by the updated_at the
// caller read the row at. Zero rows affected means another writer got there
// first and the caller should reload before retrying.
func (r *Repository) UpdateTotal(ctx context.Context, id uuid.UUID, total decimal.Decimal, readAt, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE player_fantasy_stats SET total_fantasy_points = $2, updated_at = $4
		 WHERE id = $1 AND updated_at = $3`,
		id, total, readAt, now)
	if err != nil {
		return fmt.Errorf("failed to update total fantasy points: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update total fantasy points: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}
	return nil
}

func (r *Repository) queryStats(ctx context.Context, query string, args ...any) ([]models.PlayerFantasyStats, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query player fantasy stats: %w", err)
	}
	defer rows.Close()

	var all []models.PlayerFantasyStats
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player fantasy stats: %w", err)
		}
		all = append(all, *stats)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read player fantasy stats: %w", err)
	}
	return all, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*models.ScoringConfig, error) {
	var cfg models.ScoringConfig
	err := row.Scan(&cfg.ID, &cfg.LeagueID, &cfg.Goals, &cfg.Assists, &cfg.PlusMinus,
		&cfg.PenaltyMinutes, &cfg.PowerPlayGoals, &cfg.PowerPlayAssists,
		&cfg.ShortHandedGoals, &cfg.ShortHandedAssists, &cfg.ShotsOnGoal, &cfg.Hits,
		&cfg.BlockedShots, &cfg.Wins, &cfg.Losses, &cfg.GoalsAgainst, &cfg.Saves, &cfg.Shutouts)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func scanStats(row rowScanner) (*models.PlayerFantasyStats, error) {
	var s models.PlayerFantasyStats
	err := row.Scan(&s.ID, &s.PlayerID, &s.WeekID, &s.FantasyTeamID,
		&s.GamesPlayed, &s.Goals, &s.Assists, &s.PlusMinus, &s.PenaltyMinutes,
		&s.PowerPlayGoals, &s.PowerPlayAssists, &s.ShortHandedGoals, &s.ShortHandedAssists,
		&s.ShotsOnGoal, &s.Hits, &s.BlockedShots, &s.Wins, &s.Losses,
		&s.GoalsAgainst, &s.Saves, &s.Shutouts, &s.TotalFantasyPoints, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// prefixColumns qualifies a comma separated column list with a table alias
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
