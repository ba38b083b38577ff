package claim

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"enbminer/entity"
	"enbminer/lib/api/response"
	"enbminer/lib/sl"
)

type Core interface {
	DailyClaim(req *entity.ClaimRequest) (*entity.ClaimResult, error)
	ClaimStatus(walletAddress string) (*entity.ClaimStatus, error)
}

// Claim serves both /daily-claim and its /checkin alias; the rules are one
// code path.
func Claim(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.claim"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.ClaimRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(sl.Wallet(req.WalletAddress))

		result, err := handler.DailyClaim(&req)
		if err != nil {
			logger.Error("daily claim", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("claim paid",
			slog.Int64("reward", result.Reward),
			slog.Int("streak", result.ConsecutiveDays),
		)

		render.JSON(w, r, response.Ok(result))
	}
}

func Status(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.claim"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		wallet := chi.URLParam(r, "wallet")
		logger = logger.With(sl.Wallet(wallet))

		status, err := handler.ClaimStatus(wallet)
		if err != nil {
			logger.Error("claim status", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(status))
	}
}
