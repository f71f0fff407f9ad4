package matchup

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/blueline/fantasyhockey/go/internal/events"
	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/outbox"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/sqlutil"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// App drives weekly matchups: scheduling pairings, computing live scores
// from active lineups, and finalizing results into team records.
type App struct {
	db    *sql.DB
	clock clockwork.Clock
}

// NewApp creates a new matchup App
func NewApp(db *sql.DB, clock clockwork.Clock) *App {
	return &App{
		db:    db,
		clock: clock,
	}
}

type txRepos struct {
	matchups *Repository
	slots    *roster.Repository
	stats    *scoring.Repository
	teams    *fantasyteam.Repository
	outbox   *outbox.Repository
}

func newTxRepos(tx *sql.Tx) *txRepos {
	return &txRepos{
		matchups: NewRepository(tx),
		slots:    roster.NewRepository(tx),
		stats:    scoring.NewRepository(tx),
		teams:    fantasyteam.NewRepository(tx),
		outbox:   outbox.NewRepository(tx),
	}
}

// ScheduleMatchup creates a pairing for a week
func (a *App) ScheduleMatchup(ctx context.Context, weekID, team1ID, team2ID uuid.UUID) (*models.Matchup, error) {
	if team1ID == team2ID {
		return nil, ErrSameTeam
	}

	m := models.Matchup{
		ID:      uuid.New(),
		WeekID:  weekID,
		Team1ID: team1ID,
		Team2ID: team2ID,
	}
	if err := NewRepository(a.db).CreateMatchup(ctx, m); err != nil {
		return nil, err
	}

	log.Info().
		Str("matchup_id", m.ID.String()).
		Str("week_id", weekID.String()).
		Msg("matchup scheduled")
	return &m, nil
}

// GetMatchup returns one matchup with its current scores. For incomplete
// matchups the scores are recomputed live from the teams' active lineups.
func (a *App) GetMatchup(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	var m *models.Matchup
	err := sqlutil.Run(ctx, a.db, newTxRepos, func(q *txRepos) error {
		var err error
		m, err = q.matchups.GetMatchup(ctx, id)
		if err != nil {
			return err
		}
		if m.IsComplete {
			return nil
		}
		m.Team1Score, err = weeklyScore(ctx, q, m.Team1ID, m.WeekID)
		if err != nil {
			return err
		}
		m.Team2Score, err = weeklyScore(ctx, q, m.Team2ID, m.WeekID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListWeekMatchups returns every pairing scheduled for a week
func (a *App) ListWeekMatchups(ctx context.Context, weekID uuid.UUID) ([]models.Matchup, error) {
	return NewRepository(a.db).ListMatchupsByWeek(ctx, weekID)
}

// ListTeamMatchups returns a team's pairings across all weeks
func (a *App) ListTeamMatchups(ctx context.Context, fantasyTeamID uuid.UUID) ([]models.Matchup, error) {
	return NewRepository(a.db).ListMatchupsByTeam(ctx, fantasyTeamID)
}

// Finalize locks in a matchup's result. Both scores are computed from the
// active lineups inside the transaction, the winner and loser records are
// updated, and each team's cumulative points advance. Runs serializable so
// a concurrent roster move cannot slip between score computation and the
// write. Finalizing twice returns ErrAlreadyFinalized.
func (a *App) Finalize(ctx context.Context, id uuid.UUID) (*models.Matchup, error) {
	now := a.clock.Now()
	var final *models.Matchup
	err := sqlutil.RunSerializable(ctx, a.db, newTxRepos, func(q *txRepos) error {
		m, err := q.matchups.GetMatchupForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m.IsComplete {
			return ErrAlreadyFinalized
		}

		m.Team1Score, err = weeklyScore(ctx, q, m.Team1ID, m.WeekID)
		if err != nil {
			return err
		}
		m.Team2Score, err = weeklyScore(ctx, q, m.Team2ID, m.WeekID)
		if err != nil {
			return err
		}

		if err := q.matchups.FinalizeMatchup(ctx, *m); err != nil {
			return err
		}
		m.IsComplete = true

		winner := Resolve(*m)
		if err := applyRecords(ctx, q, *m, winner); err != nil {
			return err
		}

		payload := events.MatchupFinalizedPayload{
			MatchupID:   m.ID.String(),
			WeekID:      m.WeekID.String(),
			Team1ID:     m.Team1ID.String(),
			Team2ID:     m.Team2ID.String(),
			Team1Score:  m.Team1Score.String(),
			Team2Score:  m.Team2Score.String(),
			FinalizedAt: now,
		}
		if winner != nil {
			payload.WinnerID = winner.String()
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal matchup finalized payload: %w", err)
		}
		if err := q.outbox.Insert(ctx, outbox.NewEvent(m.ID, events.TypeMatchupFinalized, raw, now)); err != nil {
			return err
		}

		final = m
		return nil
	})
	if err != nil {
		return nil, err
	}

	evt := log.Info().
		Str("matchup_id", final.ID.String()).
		Str("team1_score", final.Team1Score.String()).
		Str("team2_score", final.Team2Score.String())
	if winner := Resolve(*final); winner != nil {
		evt = evt.Str("winner_id", winner.String())
	}
	evt.Msg("matchup finalized")
	return final, nil
}

func weeklyScore(ctx context.Context, q *txRepos, fantasyTeamID, weekID uuid.UUID) (decimal.Decimal, error) {
	slots, err := q.slots.GetStartingSlots(ctx, fantasyTeamID)
	if err != nil {
		return decimal.Zero, err
	}
	stats, err := q.stats.ListStatsByTeamWeek(ctx, fantasyTeamID, weekID)
	if err != nil {
		return decimal.Zero, err
	}
	return WeeklyTeamScore(slots, stats), nil
}

func applyRecords(ctx context.Context, q *txRepos, m models.Matchup, winner *uuid.UUID) error {
	type result struct {
		teamID             uuid.UUID
		wins, losses, ties int
		points             decimal.Decimal
	}
	results := []result{
		{teamID: m.Team1ID, points: m.Team1Score},
		{teamID: m.Team2ID, points: m.Team2Score},
	}
	switch {
	case winner == nil:
		results[0].ties, results[1].ties = 1, 1
	case *winner == m.Team1ID:
		results[0].wins, results[1].losses = 1, 1
	default:
		results[0].losses, results[1].wins = 1, 1
	}
	for _, r := range results {
		if err := q.teams.ApplyResult(ctx, r.teamID, r.wins, r.losses, r.ties, r.points); err != nil {
			return err
		}
	}
	return nil
}
