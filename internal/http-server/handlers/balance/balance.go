package balance

import (
	"fmt"
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
	UpdateBalance(req *entity.BalanceUpdateRequest) (*entity.BalanceUpdateResult, error)
	Transactions(walletAddress string, limit int) ([]entity.TokenTransaction, error)
}

func Update(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.balance"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.BalanceUpdateRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(
			sl.Wallet(req.WalletAddress),
			slog.String("type", string(req.Type)),
			slog.Int64("amount", req.Amount),
		)

		result, err := handler.UpdateBalance(&req)
		if err != nil {
			logger.Error("update balance", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("balance updated", slog.Int64("balance", result.NewBalance))

		render.JSON(w, r, response.Ok(result))
	}
}

func Transactions(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.balance"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		wallet := chi.URLParam(r, "wallet")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		logger = logger.With(sl.Wallet(wallet))

		transactions, err := handler.Transactions(wallet, limit)
		if err != nil {
			logger.Error("list transactions", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(transactions))
	}
}
