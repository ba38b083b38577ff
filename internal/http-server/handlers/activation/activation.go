package activation

import (
	"context"
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
	Activate(ctx context.Context, req *entity.ActivateRequest) (*entity.ActivationResult, error)
	InvitationUsage(code string) (*entity.InvitationUsageReport, error)
}

func Activate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.activation"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.ActivateRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(
			sl.Wallet(req.WalletAddress),
			slog.String("code", req.InvitationCode),
		)

		result, err := handler.Activate(r.Context(), &req)
		if err != nil {
			logger.Error("activate account", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("account activated")

		render.JSON(w, r, response.Ok(result))
	}
}

func Usage(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.activation"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		code := chi.URLParam(r, "code")
		logger = logger.With(slog.String("code", code))

		report, err := handler.InvitationUsage(code)
		if err != nil {
			logger.Error("invitation usage", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(report))
	}
}
