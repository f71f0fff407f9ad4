package web

import (
	"net/http"
	"time"

	"github.com/blueline/fantasyhockey/go/internal/fantasyteam"
	"github.com/blueline/fantasyhockey/go/internal/leagues"
	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/unrolled/render"
)

func createLeagueHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leagues.CreateLeagueRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		league, err := apps.Leagues.CreateLeague(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, league)
	}
}

func getLeagueHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		league, err := apps.Leagues.GetLeague(r.Context(), leagueID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, league)
	}
}

func listPublicLeaguesHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("commissioner_id") {
			commissionerID, err := uuidQuery(r, "commissioner_id")
			if err != nil {
				respondBadRequest(w, rnd, err.Error())
				return
			}
			owned, err := apps.Leagues.ListCommissionerLeagues(r.Context(), commissionerID)
			if err != nil {
				respondError(w, rnd, err)
				return
			}
			rnd.JSON(w, http.StatusOK, owned)
			return
		}

		all, err := apps.Leagues.ListPublicLeagues(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, all)
	}
}

func updateLeagueHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var req leagues.UpdateLeagueRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		league, err := apps.Leagues.UpdateLeague(r.Context(), leagueID, req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, league)
	}
}

func deleteLeagueHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		if err := apps.Leagues.DeleteLeague(r.Context(), leagueID); err != nil {
			respondError(w, rnd, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func createWeekHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var req leagues.CreateWeekRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		req.LeagueID = leagueID

		week, err := apps.Leagues.CreateWeek(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, week)
	}
}

func listLeagueWeeksHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		weeks, err := apps.Leagues.ListLeagueWeeks(r.Context(), leagueID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, weeks)
	}
}

func currentWeekHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var week *models.FantasyWeek
		if raw := r.URL.Query().Get("date"); raw != "" {
			date, parseErr := time.Parse("2006-01-02", raw)
			if parseErr != nil {
				respondBadRequest(w, rnd, "date must be formatted YYYY-MM-DD")
				return
			}
			week, err = apps.Leagues.WeekForDate(r.Context(), leagueID, date)
		} else {
			week, err = apps.Leagues.CurrentWeek(r.Context(), leagueID)
		}
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, week)
	}
}

func getWeekHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekID, err := uuidParam(r, "weekID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		week, err := apps.Leagues.GetWeek(r.Context(), weekID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, week)
	}
}

func createSeasonHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leagues.CreateSeasonRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		season, err := apps.Leagues.CreateSeason(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, season)
	}
}

func currentSeasonHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		season, err := apps.Leagues.GetCurrentSeason(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, season)
	}
}

func activateSeasonHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		seasonID, err := uuidParam(r, "seasonID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		season, err := apps.Leagues.SetCurrentSeason(r.Context(), seasonID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, season)
	}
}

func createFantasyTeamHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fantasyteam.CreateFantasyTeamRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		team, err := apps.FantasyTeams.CreateFantasyTeam(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, team)
	}
}

func getFantasyTeamHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		team, err := apps.FantasyTeams.GetFantasyTeam(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, team)
	}
}

func listOwnerTeamsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuidQuery(r, "owner_id")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		teams, err := apps.FantasyTeams.ListOwnerTeams(r.Context(), ownerID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, teams)
	}
}

func listLeagueTeamsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuidParam(r, "leagueID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		teams, err := apps.FantasyTeams.ListLeagueTeams(r.Context(), leagueID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, teams)
	}
}

func updateFantasyTeamHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var req fantasyteam.UpdateFantasyTeamRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		team, err := apps.FantasyTeams.UpdateFantasyTeam(r.Context(), teamID, req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, team)
	}
}

func deleteFantasyTeamHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		if err := apps.FantasyTeams.DeleteFantasyTeam(r.Context(), teamID); err != nil {
			respondError(w, rnd, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
