package account

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
	CreateAccount(req *entity.CreateAccountRequest) (*entity.Account, error)
	CreateDefaultAccount(req *entity.DefaultAccountRequest) (*entity.Account, error)
	Profile(walletAddress string) (*entity.Account, error)
	ListAccounts(filter entity.AccountFilter) ([]*entity.Account, error)
	UpdateMembership(req *entity.MembershipUpdateRequest) (*entity.Account, error)
}

func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.account"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.CreateAccountRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(sl.Wallet(req.WalletAddress))

		account, err := handler.CreateAccount(&req)
		if err != nil {
			logger.Error("create account", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("account created")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(account))
	}
}

func CreateDefault(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.account"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.DefaultAccountRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(sl.Wallet(req.WalletAddress))

		account, err := handler.CreateDefaultAccount(&req)
		if err != nil {
			logger.Error("seed default account", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("default account seeded")

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, response.Ok(account))
	}
}

func Profile(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.account"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		wallet := chi.URLParam(r, "wallet")
		logger = logger.With(sl.Wallet(wallet))

		account, err := handler.Profile(wallet)
		if err != nil {
			logger.Error("get profile", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(account))
	}
}

func List(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.account"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		filter := entity.AccountFilter{
			MembershipLevel: entity.MembershipLevel(r.URL.Query().Get("membership_level")),
		}
		if v := r.URL.Query().Get("is_activated"); v != "" {
			activated, err := strconv.ParseBool(v)
			if err != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid is_activated value"))
				return
			}
			filter.IsActivated = &activated
		}
		filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
		filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

		accounts, err := handler.ListAccounts(filter)
		if err != nil {
			logger.Error("list accounts", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}

		render.JSON(w, r, response.Ok(accounts))
	}
}

func UpdateMembership(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.account"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req entity.MembershipUpdateRequest
		if err := render.Bind(r, &req); err != nil {
			logger.Error("bind request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(fmt.Sprintf("Invalid request: %v", err)))
			return
		}
		logger = logger.With(
			sl.Wallet(req.WalletAddress),
			slog.String("level", string(req.MembershipLevel)),
		)

		account, err := handler.UpdateMembership(&req)
		if err != nil {
			logger.Error("update membership", sl.Err(err))
			render.Status(r, response.HttpStatus(err))
			render.JSON(w, r, response.Error(response.Message(err)))
			return
		}
		logger.Debug("membership updated")

		render.JSON(w, r, response.Ok(account))
	}
}
