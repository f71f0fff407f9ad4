package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/matchup"
	"github.com/blueline/fantasyhockey/go/internal/players"
	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/blueline/fantasyhockey/go/internal/teams"
	"github.com/blueline/fantasyhockey/go/internal/trade"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

// Apps bundles the application layers the HTTP surface exposes
type Apps struct {
	Rosters      *roster.App
	Trades       *trade.App
	Scoring      *scoring.App
	Matchups     *matchup.App
	Leagues      *leagues.App
	FantasyTeams *fantasyteam.App
	Players      *players.App
	Teams        *teams.Repository
}

// Server is the JSON API server
type Server struct {
	server *http.Server
}

// NewServer builds the router and wraps it in an http.Server
func NewServer(port int, apps Apps) *Server {
	rnd := render.New()
	return &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(apps, rnd),
		},
	}
}

// ListenAndServe runs the server until the shutdown channel fires, then
// drains in-flight requests before releasing the wait group
func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("error shutting down server")
		}
	}()

	log.Info().Str("addr", s.server.Addr).Msg("api server listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("api server failed")
	}
}
