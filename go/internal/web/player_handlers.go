package web

import (
	"net/http"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/unrolled/render"
)

func getPlayerHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := uuidParam(r, "playerID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		player, err := apps.Players.GetPlayer(r.Context(), playerID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, player)
	}
}

func searchPlayersHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := apps.Players.SearchPlayers(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, results)
	}
}

func listPositionsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := apps.Players.ListPositions(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, positions)
	}
}

func listTeamPlayersHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		roster, err := apps.Players.ListTeamPlayers(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, roster)
	}
}

func listPositionPlayersHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positionID, err := uuidParam(r, "positionID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		players, err := apps.Players.ListPositionPlayers(r.Context(), positionID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, players)
	}
}

func getSeasonStatsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := uuidParam(r, "playerID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		teamID, err := uuidQuery(r, "team_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		seasonID, err := uuidQuery(r, "season_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		stats, err := apps.Players.GetSeasonStats(r.Context(), playerID, teamID, seasonID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func upsertSeasonStatsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, err := uuidParam(r, "playerID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var body models.PlayerSeasonStats
		if err := decodeJSON(r, &body); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		body.PlayerID = playerID

		stats, err := apps.Players.UpsertSeasonStats(r.Context(), body)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, stats)
	}
}

func listNHLTeamsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if abbr := r.URL.Query().Get("abbreviation"); abbr != "" {
			team, err := apps.Teams.GetTeamByAbbreviation(r.Context(), abbr)
			if err != nil {
				respondError(w, rnd, err)
				return
			}
			rnd.JSON(w, http.StatusOK, team)
			return
		}

		all, err := apps.Teams.ListTeams(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, all)
	}
}

func getNHLTeamHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		team, err := apps.Teams.GetTeam(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, team)
	}
}

func listConferencesHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conferences, err := apps.Teams.ListConferences(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, conferences)
	}
}

func listConferenceDivisionsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conferenceID, err := uuidParam(r, "conferenceID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		divisions, err := apps.Teams.ListDivisionsByConference(r.Context(), conferenceID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, divisions)
	}
}

func listDivisionTeamsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		divisionID, err := uuidParam(r, "divisionID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		teams, err := apps.Teams.ListTeamsByDivision(r.Context(), divisionID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, teams)
	}
}
