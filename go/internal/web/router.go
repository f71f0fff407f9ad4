package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/unrolled/render"
)

func newRouter(apps Apps, rnd *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/leagues", func(r chi.Router) {
			r.Get("/", listPublicLeaguesHandler(apps, rnd))
			r.Post("/", createLeagueHandler(apps, rnd))
			r.Route("/{leagueID}", func(r chi.Router) {
				r.Get("/", getLeagueHandler(apps, rnd))
				r.Put("/", updateLeagueHandler(apps, rnd))
				r.Delete("/", deleteLeagueHandler(apps, rnd))
				r.Get("/teams", listLeagueTeamsHandler(apps, rnd))
				r.Get("/weeks", listLeagueWeeksHandler(apps, rnd))
				r.Post("/weeks", createWeekHandler(apps, rnd))
				r.Get("/weeks/current", currentWeekHandler(apps, rnd))
				r.Get("/scoring-config", getScoringConfigHandler(apps, rnd))
				r.Put("/scoring-config", updateScoringConfigHandler(apps, rnd))
			})
		})

		r.Route("/seasons", func(r chi.Router) {
			r.Post("/", createSeasonHandler(apps, rnd))
			r.Get("/current", currentSeasonHandler(apps, rnd))
			r.Post("/{seasonID}/activate", activateSeasonHandler(apps, rnd))
		})

		r.Route("/fantasy-teams", func(r chi.Router) {
			r.Get("/", listOwnerTeamsHandler(apps, rnd))
			r.Post("/", createFantasyTeamHandler(apps, rnd))
			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/", getFantasyTeamHandler(apps, rnd))
				r.Put("/", updateFantasyTeamHandler(apps, rnd))
				r.Delete("/", deleteFantasyTeamHandler(apps, rnd))
				r.Get("/roster", getRosterHandler(apps, rnd))
				r.Post("/roster", assignPlayerHandler(apps, rnd))
				r.Delete("/roster/{playerID}", removePlayerHandler(apps, rnd))
				r.Put("/roster/{playerID}/active", setSlotActiveHandler(apps, rnd))
				r.Get("/trades", listTeamTradesHandler(apps, rnd))
				r.Get("/matchups", listTeamMatchupsHandler(apps, rnd))
				r.Get("/weeks/{weekID}/stats", listTeamWeekStatsHandler(apps, rnd))
			})
		})

		r.Route("/trades", func(r chi.Router) {
			r.Post("/", proposeTradeHandler(apps, rnd))
			r.Route("/{tradeID}", func(r chi.Router) {
				r.Get("/", getTradeHandler(apps, rnd))
				r.Post("/accept", respondTradeHandler(apps, rnd, true))
				r.Post("/reject", respondTradeHandler(apps, rnd, false))
				r.Post("/cancel", cancelTradeHandler(apps, rnd))
				r.Post("/complete", completeTradeHandler(apps, rnd))
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Put("/weekly", upsertWeeklyStatsHandler(apps, rnd))
			r.Post("/weekly/recompute", recomputePlayerHandler(apps, rnd))
			r.Get("/weekly", getPlayerStatsHandler(apps, rnd))
		})

		r.Route("/matchups", func(r chi.Router) {
			r.Post("/", scheduleMatchupHandler(apps, rnd))
			r.Get("/{matchupID}", getMatchupHandler(apps, rnd))
			r.Post("/{matchupID}/finalize", finalizeMatchupHandler(apps, rnd))
		})
		r.Get("/weeks/{weekID}", getWeekHandler(apps, rnd))
		r.Get("/weeks/{weekID}/matchups", listWeekMatchupsHandler(apps, rnd))

		r.Route("/players", func(r chi.Router) {
			r.Get("/", searchPlayersHandler(apps, rnd))
			r.Get("/{playerID}", getPlayerHandler(apps, rnd))
			r.Get("/{playerID}/season-stats", getSeasonStatsHandler(apps, rnd))
			r.Put("/{playerID}/season-stats", upsertSeasonStatsHandler(apps, rnd))
		})
		r.Get("/positions", listPositionsHandler(apps, rnd))
		r.Get("/positions/{positionID}/players", listPositionPlayersHandler(apps, rnd))
		r.Get("/roster-positions", listRosterPositionsHandler(apps, rnd))
		r.Get("/teams", listNHLTeamsHandler(apps, rnd))
		r.Get("/teams/{teamID}", getNHLTeamHandler(apps, rnd))
		r.Get("/teams/{teamID}/players", listTeamPlayersHandler(apps, rnd))
		r.Get("/conferences", listConferencesHandler(apps, rnd))
		r.Get("/conferences/{conferenceID}/divisions", listConferenceDivisionsHandler(apps, rnd))
		r.Get("/divisions/{divisionID}/teams", listDivisionTeamsHandler(apps, rnd))
	})

	return r
}
