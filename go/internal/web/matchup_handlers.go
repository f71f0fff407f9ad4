package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type scheduleMatchupBody struct {
	WeekID  uuid.UUID `json:"week_id"`
	Team1ID uuid.UUID `json:"team1_id"`
	Team2ID uuid.UUID `json:"team2_id"`
}

func scheduleMatchupHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body scheduleMatchupBody
		if err := decodeJSON(r, &body); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		m, err := apps.Matchups.ScheduleMatchup(r.Context(), body.WeekID, body.Team1ID, body.Team2ID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, m)
	}
}

func getMatchupHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchupID, err := uuidParam(r, "matchupID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		m, err := apps.Matchups.GetMatchup(r.Context(), matchupID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, m)
	}
}

func finalizeMatchupHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchupID, err := uuidParam(r, "matchupID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		m, err := apps.Matchups.Finalize(r.Context(), matchupID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, m)
	}
}

func listWeekMatchupsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, err := uuidParam(r, "weekID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		matchups, err := apps.Matchups.ListWeekMatchups(r.Context(), weekID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, matchups)
	}
}

func listTeamMatchupsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		matchups, err := apps.Matchups.ListTeamMatchups(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, matchups)
	}
}
