package trade

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
)

// ErrTradeNotFound is returned when no trade exists with the given id
var ErrTradeNotFound = errors.New("trade not found")

// Repository persists trades and their legs
type Repository struct {
	db sqlutil.DBTX
}

func NewRepository(db sqlutil.DBTX) *Repository {
	return &Repository{db: db}
}

const tradeColumns = `id, from_team_id, to_team_id, status, message, proposed_at, responded_at, completed_at`

// CreateTrade inserts a trade and its legs
func (r *Repository) CreateTrade(ctx context.Context, trade models.Trade, legs []models.TradePlayer) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trades (id, from_team_id, to_team_id, status, message, proposed_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		trade.ID, trade.FromTeamID, trade.ToTeamID, trade.Status, trade.Message, trade.ProposedAt)
	if err != nil {
		return fmt.Errorf("failed to insert trade: %w", err)
	}
	for _, leg := range legs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO trade_players (id, trade_id, player_id, from_team_id, to_team_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			leg.ID, leg.TradeID, leg.PlayerID, leg.FromTeamID, leg.ToTeamID)
		if err != nil {
			return fmt.Errorf("failed to insert trade player: %w", err)
		}
	}
	return nil
}

// GetTrade retrieves a trade by id
func (r *Repository) GetTrade(ctx context.Context, id uuid.UUID) (*models.Trade, error) {
	return r.getTrade(ctx, id, false)
}

// GetTradeForUpdate locks the trade row for the enclosing transaction so
// concurrent responses and completions serialize on it
func (r *Repository) GetTradeForUpdate(ctx context.Context, id uuid.UUID) (*models.Trade, error) {
	return r.getTrade(ctx, id, true)
}

func (r *Repository) getTrade(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.Trade, error) {
	query := fmt.Sprintf(`SELECT %s FROM trades WHERE id = $1`, tradeColumns)
	if forUpdate {
		query += ` FOR UPDATE`
	}

	trade, err := scanTrade(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trade: %w", err)
	}
	return trade, nil
}

// GetTradePlayers returns the legs of a trade
func (r *Repository) GetTradePlayers(ctx context.Context, tradeID uuid.UUID) ([]models.TradePlayer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, trade_id, player_id, from_team_id, to_team_id
		 FROM trade_players WHERE trade_id = $1`, tradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade players: %w", err)
	}
	defer rows.Close()

	var legs []models.TradePlayer
	for rows.Next() {
		var leg models.TradePlayer
		if err := rows.Scan(&leg.ID, &leg.TradeID, &leg.PlayerID, &leg.FromTeamID, &leg.ToTeamID); err != nil {
			return nil, fmt.Errorf("failed to scan trade player: %w", err)
		}
		legs = append(legs, leg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trade players: %w", err)
	}
	return legs, nil
}

// ListTradesByTeam returns trades where the team is either side, newest first
func (r *Repository) ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Trade, error) {
	rows, err := r.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT %s FROM trades
		 WHERE from_team_id = $1 OR to_team_id = $1
		 ORDER BY proposed_at DESC`, tradeColumns), teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades: %w", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		trade, err := scanTradeRows(rows)
		if err != nil {
			return nil, err
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trades: %w", err)
	}
	return trades, nil
}

// UpdateTradeStatus writes the trade's new status and timestamps
func (r *Repository) UpdateTradeStatus(ctx context.Context, trade *models.Trade) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE trades SET status = $2, responded_at = $3, completed_at = $4 WHERE id = $1`,
		trade.ID, trade.Status, sqlutil.ToSqlTime(trade.RespondedAt), sqlutil.ToSqlTime(trade.CompletedAt))
	if err != nil {
		return fmt.Errorf("failed to update trade status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update trade status: %w", err)
	}
	if n == 0 {
		return ErrTradeNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (*models.Trade, error) {
	var (
		trade       models.Trade
		respondedAt sql.NullTime
		completedAt sql.NullTime
	)
	if err := row.Scan(&trade.ID, &trade.FromTeamID, &trade.ToTeamID, &trade.Status, &trade.Message,
		&trade.ProposedAt, &respondedAt, &completedAt); err != nil {
		return nil, err
	}
	trade.RespondedAt = sqlutil.FromSqlTime(respondedAt)
	trade.CompletedAt = sqlutil.FromSqlTime(completedAt)
	return &trade, nil
}

func scanTradeRows(rows *sql.Rows) (*models.Trade, error) {
	trade, err := scanTrade(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan trade: %w", err)
	}
	return trade, nil
}
