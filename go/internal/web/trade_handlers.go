package web

import (
	"net/http"

	"github.com/blueline/fantasyhockey/go/internal/models"
	"github.com/blueline/fantasyhockey/go/internal/trade"
	"github.com/unrolled/render"
)

type tradeResponse struct {
	Trade   *models.Trade        `json:"trade"`
	Players []models.TradePlayer `json:"players,omitempty"`
}

func proposeTradeHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req trade.ProposeTradeRequest
		if err := decodeJSON(r, &req); err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		t, err := apps.Trades.Propose(r.Context(), req)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusCreated, tradeResponse{Trade: t})
	}
}

func getTradeHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tradeID, err := uuidParam(r, "tradeID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		t, legs, err := apps.Trades.GetTrade(r.Context(), tradeID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, tradeResponse{Trade: t, Players: legs})
	}
}

func respondTradeHandler(apps Apps, rnd *render.Render, accept bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tradeID, err := uuidParam(r, "tradeID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		t, err := apps.Trades.Respond(r.Context(), tradeID, accept)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, tradeResponse{Trade: t})
	}
}

func cancelTradeHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tradeID, err := uuidParam(r, "tradeID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		t, err := apps.Trades.Cancel(r.Context(), tradeID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, tradeResponse{Trade: t})
	}
}

func completeTradeHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tradeID, err := uuidParam(r, "tradeID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		t, err := apps.Trades.Complete(r.Context(), tradeID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, tradeResponse{Trade: t})
	}
}

func listTeamTradesHandler(apps Apps, rnd *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := uuidParam(r, "teamID")
		if err != nil {
			respondBadRequest(w, rnd, err.Error())
			return
		}

		trades, err := apps.Trades.ListTradesByTeam(r.Context(), teamID)
		if err != nil {
			respondError(w, rnd, err)
			return
		}
		rnd.JSON(w, http.StatusOK, trades)
	}
}
