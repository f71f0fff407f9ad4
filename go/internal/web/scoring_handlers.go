package web

import (
	"net/http"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/scoring"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type recomputeBody struct {
	PlayerID      uuid.UUID `json:"player_id"`
	WeekID        uuid.UUID `json:"week_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`
}

func upsertWeeklyStatsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req scoring.UpsertStatsRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		stats, err := apps.Scoring.UpsertWeeklyStats(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func recomputePlayerHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body recomputeBody
		if err := decodeJSON(r, &body); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		stats, err := apps.Scoring.RecomputePlayer(r.Context(), body.PlayerID, body.WeekID, body.FantasyTeamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func getPlayerStatsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := uuidQuery(r, "player_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		weekID, err := uuidQuery(r, "week_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		teamID, err := uuidQuery(r, "fantasy_team_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		stats, err := apps.Scoring.GetPlayerStats(r.Context(), playerID, weekID, teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func listTeamWeekStatsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		weekID, err := uuidParam(r, "weekID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		stats, err := apps.Scoring.ListTeamWeekStats(r.Context(), teamID, weekID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func getScoringConfigHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		cfg, err := apps.Scoring.GetLeagueConfig(r.Context(), leagueID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, cfg)
	}
}

func updateScoringConfigHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var weights models.ScoringConfig
		if err := decodeJSON(r, &weights); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		cfg, err := apps.Scoring.UpdateLeagueConfig(r.Context(), leagueID, weights)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, cfg)
	}
}
