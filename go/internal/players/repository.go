package players

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
)

// Repository reads NHL player and position reference data and maintains
// season stat aggregates. Player and position rows arrive through the seed
// tool and stat ingestion, never through the API surface.
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const playerColumns = `id, first_name, last_name, position_id, team_id, jersey_number,
	is_active, external_id, created_at`

const seasonStatsColumns = `id, player_id, team_id, season_id, games_played, goals, assists,
	points, plus_minus, penalty_minutes, power_play_goals, power_play_assists, power_play_points,
	short_handed_goals, short_handed_assists, short_handed_points, shots_on_goal,
	wins, losses, overtime_losses, shutouts, goals_against, shots_against, saves,
	shooting_percentage, save_percentage, created_at, updated_at`

// GetPlayer returns one player by id
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM players WHERE id = $1`, playerColumns), id)
	return scanPlayer(row)
}

// GetPlayerByExternalID returns the player matching an upstream feed id
func (r *Repository) GetPlayerByExternalID(ctx context.Context, externalID string) (*models.Player, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM players WHERE external_id = $1`, playerColumns), externalID)
	return scanPlayer(row)
}

// ListPlayersByTeam returns a team's active players
func (r *Repository) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Player, error) {
	return r.queryPlayers(ctx,
		fmt.Sprintf(`SELECT %s FROM players WHERE team_id = $1 AND is_active
		 ORDER BY last_name, first_name`, playerColumns),
		teamID)
}

// ListPlayersByPosition returns active players at one position
func (r *Repository) ListPlayersByPosition(ctx context.Context, positionID uuid.UUID) ([]models.Player, error) {
	return r.queryPlayers(ctx,
		fmt.Sprintf(`SELECT %s FROM players WHERE position_id = $1 AND is_active
		 ORDER BY last_name, first_name`, playerColumns),
		positionID)
}

// SearchPlayers matches players by name fragment, case-insensitive
func (r *Repository) SearchPlayers(ctx context.Context, query string, limit int) ([]models.Player, error) {
	return r.queryPlayers(ctx,
		fmt.Sprintf(`SELECT %s FROM players
		 WHERE is_active AND (first_name ILIKE '%%' || $1 || '%%' OR last_name ILIKE '%%' || $1 || '%%')
		 ORDER BY last_name, first_name LIMIT $2`, playerColumns),
		query, limit)
}

// GetPosition returns one position by id
func (r *Repository) GetPosition(ctx context.Context, id uuid.UUID) (*models.Position, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, abbreviation, category FROM positions WHERE id = $1`, id)
	var p models.Position
	err := row.Scan(&p.ID, &p.Name, &p.Abbreviation, &p.Category)
	if err == sql.ErrNoRows {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}
	return &p, nil
}

// ListPositions returns the full position reference set
func (r *Repository) ListPositions(ctx context.Context) ([]models.Position, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, abbreviation, category FROM positions ORDER BY category, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query positions: %w", err)
	}
	defer rows.Close()

	var positions []models.Position
	for rows.Next() {
		var p models.Position
		if err := rows.Scan(&p.ID, &p.Name, &p.Abbreviation, &p.Category); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read positions: %w", err)
	}
	return positions, nil
}

// GetSeasonStats returns one player's aggregate for a season with a team
func (r *Repository) GetSeasonStats(ctx context.Context, playerID, teamID, seasonID uuid.UUID) (*models.PlayerSeasonStats, error) {
	row := r.db.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT %s FROM player_season_stats
		 WHERE player_id = $1 AND team_id = $2 AND season_id = $3`, seasonStatsColumns),
		playerID, teamID, seasonID)
	stats, err := scanSeasonStats(row)
	if err == sql.ErrNoRows {
		return nil, ErrStatsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player season stats: %w", err)
	}
	return stats, nil
}

// UpsertSeasonStats writes a season aggregate, raw counters and derived
// fields together
func (r *Repository) UpsertSeasonStats(ctx context.Context, s models.PlayerSeasonStats) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO player_season_stats (id, player_id, team_id, season_id, games_played,
			goals, assists, points, plus_minus, penalty_minutes, power_play_goals,
			power_play_assists, power_play_points, short_handed_goals, short_handed_assists,
			short_handed_points, shots_on_goal, wins, losses, overtime_losses, shutouts,
			goals_against, shots_against, saves, shooting_percentage, save_percentage,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $27)
		 ON CONFLICT (player_id, team_id, season_id) DO UPDATE SET
			games_played = EXCLUDED.games_played,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			points = EXCLUDED.points,
			plus_minus = EXCLUDED.plus_minus,
			penalty_minutes = EXCLUDED.penalty_minutes,
			power_play_goals = EXCLUDED.power_play_goals,
			power_play_assists = EXCLUDED.power_play_assists,
			power_play_points = EXCLUDED.power_play_points,
			short_handed_goals = EXCLUDED.short_handed_goals,
			short_handed_assists = EXCLUDED.short_handed_assists,
			short_handed_points = EXCLUDED.short_handed_points,
			shots_on_goal = EXCLUDED.shots_on_goal,
			wins = EXCLUDED.wins,
			losses = EXCLUDED.losses,
			overtime_losses = EXCLUDED.overtime_losses,
			shutouts = EXCLUDED.shutouts,
			goals_against = EXCLUDED.goals_against,
			shots_against = EXCLUDED.shots_against,
			saves = EXCLUDED.saves,
			shooting_percentage = EXCLUDED.shooting_percentage,
			save_percentage = EXCLUDED.save_percentage,
			updated_at = EXCLUDED.updated_at`,
		s.ID, s.PlayerID, s.TeamID, s.SeasonID, s.GamesPlayed,
		s.Goals, s.Assists, s.Points, s.PlusMinus, s.PenaltyMinutes, s.PowerPlayGoals,
		s.PowerPlayAssists, s.PowerPlayPoints, s.ShortHandedGoals, s.ShortHandedAssists,
		s.ShortHandedPoints, s.ShotsOnGoal, s.Wins, s.Losses, s.OvertimeLoss, s.Shutouts,
		s.GoalsAgainst, s.ShotsAgainst, s.Saves, s.ShootingPercentage, s.SavePercentage,
		s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert player season stats: %w", err)
	}
	return nil
}

func (r *Repository) queryPlayers(ctx context.Context, query string, args ...any) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, *player)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read players: %w", err)
	}
	return players, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var (
		p      models.Player
		teamID uuid.NullUUID
		jersey sql.NullInt32
	)
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.PositionID, &teamID, &jersey,
		&p.IsActive, &p.ExternalID, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	p.TeamID = sqlutil.FromNullUUID(teamID)
	if jersey.Valid {
		n := int(jersey.Int32)
		p.JerseyNumber = &n
	}
	return &p, nil
}

func scanSeasonStats(row rowScanner) (*models.PlayerSeasonStats, error) {
	var s models.PlayerSeasonStats
	err := row.Scan(&s.ID, &s.PlayerID, &s.TeamID, &s.SeasonID, &s.GamesPlayed,
		&s.Goals, &s.Assists, &s.Points, &s.PlusMinus, &s.PenaltyMinutes,
		&s.PowerPlayGoals, &s.PowerPlayAssists, &s.PowerPlayPoints,
		&s.ShortHandedGoals, &s.ShortHandedAssists, &s.ShortHandedPoints, &s.ShotsOnGoal,
		&s.Wins, &s.Losses, &s.OvertimeLoss, &s.Shutouts, &s.GoalsAgainst,
		&s.ShotsAgainst, &s.Saves, &s.ShootingPercentage, &s.SavePercentage,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
