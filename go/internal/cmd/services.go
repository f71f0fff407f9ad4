package main

import (
	"database/sql"

	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/matchup"
	"github.com/blueline/fantasyhockey/go/internal/players"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/teams"
	"github.com/blueline/fantasyhockey/go/internal/trade"
	"github.com/blueline/fantasyhockey/go/internal/web"
	"github.com/jonboulle/clockwork"
)

// setupApps wires repositories into application layers. Every app shares the
// one *sql.DB and the one clock.
func setupApps(database *sql.DB, clock clockwork.Clock) web.Apps {
	playersRepo := players.NewRepository(database)

	return web.Apps{
		Rosters:      roster.NewApp(database, playersRepo, clock),
		Trades:       trade.NewApp(database, clock),
		Scoring:      scoring.NewApp(database, clock),
		Matchups:     matchup.NewApp(database, clock),
		Leagues:      leagues.NewApp(database, clock),
		FantasyTeams: fantasyteam.NewApp(database, clock),
		Players:      players.NewApp(database, clock),
		Teams:        teams.NewRepository(database),
	}
}
