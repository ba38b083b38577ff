package leaderboard

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"enbminer/entity"
	"enbminer/lib/api/response"
	"enbminer/lib/sl"
)

type Core interface {
	Leaderboard(kind entity.LeaderboardKind, limit int) ([]entity.LeaderboardEntry, error)
	Rankings(walletAddress string) (*entity.Rankings, error)
}

func Board(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.leaderboard"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		kind := entity.LeaderboardKind(chi.URLParam(r, "board"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		logger = logger.With(slog.String("board", string(kind)))

		entries, err := handler.Leaderboard(kind, limit)
		if err != nil {
			logger.Error("leaderboard query", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(entries))
	}
}

func Rankings(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.leaderboard"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		wallet := chi.URLParam(r, "wallet")
		logger = logger.With(sl.Wallet(wallet))

		rankings, err := handler.Rankings(wallet)
		if err != nil {
			logger.Error("rankings query", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(rankings))
	}
}
