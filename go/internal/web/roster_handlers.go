package web

import (
	"net/http"

	"github.com/blueline/fantasyhockey/go/internal/roster"
	"github.com/google/uuid"
	"github.com/unrolled/render"
)

type assignPlayerBody struct {
	PositionID uuid.UUID `json:"position_id"`
	PlayerID   uuid.UUID `json:"player_id"`
	Active     bool      `json:"active"`
}

type setActiveBody struct {
	Active bool `json:"active"`
}

func getRosterHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		slots, err := apps.Rosters.GetRoster(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, slots)
	}
}

func assignPlayerHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var body assignPlayerBody
		if err := decodeJSON(r, &body); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		slot, err := apps.Rosters.AssignPlayer(r.Context(), roster.AssignPlayerRequest{
			FantasyTeamID: teamID,
			PositionID:    body.PositionID,
			PlayerID:      body.PlayerID,
			Active:        body.Active,
		})
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, slot)
	}
}

func removePlayerHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		playerID, err := uuidParam(r, "playerID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		if err := apps.Rosters.RemovePlayer(r.Context(), teamID, playerID); err != nil {
			respondError(w, rnd, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func setSlotActiveHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}
		playerID, err := uuidParam(r, "playerID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		var body setActiveBody
		if err := decodeJSON(r, &body); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		slot, err := apps.Rosters.SetSlotActive(r.Context(), teamID, playerID, body.Active)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, slot)
	}
}

func listRosterPositionsHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		positions, err := apps.Rosters.ListPositions(r.Context())
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, positions)
	}
}
