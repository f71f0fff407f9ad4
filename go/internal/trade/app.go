package trade

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/events"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// ProposeTradeRequest opens a trade between two teams. Each player entry
// names the side it is leaving.
type ProposeTradeRequest struct {
	FromTeamID uuid.UUID          `json:"from_team_id"`
	ToTeamID   uuid.UUID          `json:"to_team_id"`
	Message    string             `json:"message"`
	Players    []ProposedTradeLeg `json:"players"`
}

// ProposedTradeLeg is one player changing sides
type ProposedTradeLeg struct {
	PlayerID   uuid.UUID `json:"player_id"`
	FromTeamID uuid.UUID `json:"from_team_id"`
}

// App drives the trade lifecycle. Completion applies every leg across both
// rosters in a single serializable transaction: roster state is re-validated
// at commit time, and any failing leg rolls the whole trade back with the
// trade left in accepted.
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new trade App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

// txRepos bundles the repositories a trade transaction touches
type txRepos struct {
	trades *Repository
	slots  *roster.Repository
	outbox *outbox.Repository
}

func newTxRepos(tx *sql.Tx) *txRepos {
	return &txRepos{
		trades: NewRepository(tx),
		slots:  roster.NewRepository(tx),
		outbox: outbox.NewRepository(tx),
	}
}

// Propose opens a pending trade after verifying every listed player
// currently resides on the side it is leaving
func (a *App) Propose(ctx context.Context, req ProposeTradeRequest) (*models.Trade, error) {
	if err := a.validateProposeRequest(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	trade := models.Trade{
		ID:         uuid.New(),
		FromTeamID: req.FromTeamID,
		ToTeamID:   req.ToTeamID,
		Status:     models.TradeStatusPending,
		Message:    req.Message,
		ProposedAt: a.clock.Now(),
	}

	legs := make([]models.TradePlayer, 0, len(req.Players))
	for _, p := range req.Players {
		toTeam, err := counterparty(trade, p.FromTeamID)
		if err != nil {
			return nil, err
		}
		legs = append(legs, models.TradePlayer{
			ID:         uuid.New(),
			TradeID:    trade.ID,
			PlayerID:   p.PlayerID,
			FromTeamID: p.FromTeamID,
			ToTeamID:   toTeam,
		})
	}

	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		rosters, err := loadTradeRosters(ctx, q.slots, trade, false)
		if err != nil {
			return err
		}
		for _, leg := range legs {
			if !rosters[leg.FromTeamID].HasPlayer(leg.PlayerID) {
				return fmt.Errorf("%w: player %s is not on team %s", ErrPlayerNotOnTeam, leg.PlayerID, leg.FromTeamID)
			}
		}
		return q.trades.CreateTrade(ctx, trade, legs)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("trade_id", trade.ID.String()).
		Str("from_team_id", trade.FromTeamID.String()).
		Str("to_team_id", trade.ToTeamID.String()).
		Int("players", len(legs)).
		Msg("trade proposed")
	return &trade, nil
}

// Respond moves a pending trade to accepted or rejected
func (a *App) Respond(ctx context.Context, tradeID uuid.UUID, accept bool) (*models.Trade, error) {
	next := models.TradeStatusRejected
	if accept {
		next = models.TradeStatusAccepted
	}
	return a.transition(ctx, tradeID, next)
}

// Cancel withdraws a pending trade; only the proposer may do this, and only
// before a response
func (a *App) Cancel(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error) {
	return a.transition(ctx, tradeID, models.TradeStatusCancelled)
}

func (a *App) transition(ctx context.Context, tradeID uuid.UUID, next models.TradeStatus) (*models.Trade, error) {
	var updated *models.Trade
	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		trade, err := q.trades.GetTradeForUpdate(ctx, tradeID)
		if err != nil {
			return err
		}
		if err := Transition(trade.Status, next); err != nil {
			return err
		}
		stampTransition(trade, next, a.clock.Now())
		if err := q.trades.UpdateTradeStatus(ctx, trade); err != nil {
			return err
		}
		updated = trade
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("trade_id", tradeID.String()).
		Str("status", string(updated.Status)).
		Msg("trade status updated")
	return updated, nil
}

// Complete executes an accepted trade: every leg is re-validated against
// current roster state and applied, or nothing is
func (a *App) Complete(ctx context.Context, tradeID uuid.UUID) (*models.Trade, error) {
	var completed *models.Trade
	err := sqlutil.RunSerializable(ctx, a.db, newTxRepos, func(q *txRepos) error {
		trade, err := q.trades.GetTradeForUpdate(ctx, tradeID)
		if err != nil {
			return err
		}
		if err := Transition(trade.Status, models.TradeStatusCompleted); err != nil {
			return err
		}

		legs, err := q.trades.GetTradePlayers(ctx, trade.ID)
		if err != nil {
			return err
		}

		rosters, err := loadTradeRosters(ctx, q.slots, *trade, true)
		if err != nil {
			return err
		}

		now := a.clock.Now()
		cs, err := ApplyLegs(rosters, legs, now)
		if err != nil {
			return err
		}

		if err := q.slots.DeleteSlots(ctx, cs.RemovedSlotIDs); err != nil {
			return err
		}
		for _, slot := range cs.AddedSlots {
			if err := q.slots.InsertSlot(ctx, slot); err != nil {
				return err
			}
		}

		trade.Status = models.TradeStatusCompleted
		trade.CompletedAt = &now
		if err := q.trades.UpdateTradeStatus(ctx, trade); err != nil {
			return err
		}

		playerIDs := make([]string, len(legs))
		for i, leg := range legs {
			playerIDs[i] = leg.PlayerID.String()
		}
		payload, err := json.Marshal(events.TradeCompletedPayload{
			TradeID:     trade.ID.String(),
			FromTeamID:  trade.FromTeamID.String(),
			ToTeamID:    trade.ToTeamID.String(),
			PlayerIDs:   playerIDs,
			CompletedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal trade completed payload: %w", err)
		}
		if err := q.outbox.Insert(ctx, outbox.NewEvent(trade.ID, events.TypeTradeCompleted, payload, now)); err != nil {
			return err
		}

		completed = trade
		return nil
	})
	if err != nil {
		return nil, completionError(err)
	}

	log.Info().
		Str("trade_id", tradeID.String()).
		Msg("trade completed")
	return completed, nil
}

// stampTransition applies the status change. Only accept and reject are
// responses; a cancellation is a proposer withdrawal and carries no
// responded_at timestamp.
func stampTransition(trade *models.Trade, next models.TradeStatus, now time.Time) {
	trade.Status = next
	switch next {
	case models.TradeStatusAccepted, models.TradeStatusRejected:
		trade.RespondedAt = &now
	}
}

// completionError maps an aborted serializable transaction onto the trade
// sentinel so callers see a retryable conflict, not a driver error.
func completionError(err error) error {
	if errors.Is(err, sqlutil.ErrSerializationFailure) {
		return fmt.Errorf("trade completion conflicted with a concurrent roster change: %w", ErrConcurrentModification)
	}
	return err
}

// GetTrade returns a trade with its legs
func (a *App) GetTrade(ctx context.Context, tradeID uuid.UUID) (*models.Trade, []models.TradePlayer, error) {
	repo := NewRepository(a.db)
	trade, err := repo.GetTrade(ctx, tradeID)
	if err != nil {
		return nil, nil, err
	}
	legs, err := repo.GetTradePlayers(ctx, tradeID)
	if err != nil {
		return nil, nil, err
	}
	return trade, legs, nil
}

// ListTradesByTeam returns a team's trade history, newest first
func (a *App) ListTradesByTeam(ctx context.Context, teamID uuid.UUID) ([]models.Trade, error) {
	return NewRepository(a.db).ListTradesByTeam(ctx, teamID)
}

// loadTradeRosters loads both sides' aggregates in a deterministic order so
// two concurrent completions touching the same teams cannot deadlock
func loadTradeRosters(ctx context.Context, repo *roster.Repository, trade models.Trade, forUpdate bool) (map[uuid.UUID]*roster.Roster, error) {
	teamIDs := []uuid.UUID{trade.FromTeamID, trade.ToTeamID}
	sort.Slice(teamIDs, func(i, j int) bool { return teamIDs[i].String() < teamIDs[j].String() })

	rosters := make(map[uuid.UUID]*roster.Roster, 2)
	for _, id := range teamIDs {
		var (
			ros *roster.Roster
			err error
		)
		if forUpdate {
			ros, err = repo.LoadRosterForUpdate(ctx, id)
		} else {
			ros, err = repo.LoadRoster(ctx, id)
		}
		if err != nil {
			return nil, err
		}
		rosters[id] = ros
	}
	return rosters, nil
}

func counterparty(trade models.Trade, fromTeamID uuid.UUID) (uuid.UUID, error) {
	switch fromTeamID {
	case trade.FromTeamID:
		return trade.ToTeamID, nil
	case trade.ToTeamID:
		return trade.FromTeamID, nil
	default:
		return uuid.Nil, fmt.Errorf("%w: %s", ErrTeamNotInTrade, fromTeamID)
	}
}

func (a *App) validateProposeRequest(req ProposeTradeRequest) error {
	if req.FromTeamID == uuid.Nil || req.ToTeamID == uuid.Nil {
		return fmt.Errorf("from_team_id and to_team_id are required")
	}
	if req.FromTeamID == req.ToTeamID {
		return fmt.Errorf("a team cannot trade with itself")
	}
	if len(req.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	return nil
}
