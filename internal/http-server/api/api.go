package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"enbminer/internal/config"
	"enbminer/internal/http-server/handlers/account"
	"enbminer/internal/http-server/handlers/activation"
	"enbminer/internal/http-server/handlers/balance"
	"enbminer/internal/http-server/handlers/claim"
	"enbminer/internal/http-server/handlers/errors"
	"enbminer/internal/http-server/handlers/leaderboard"
	"enbminer/internal/http-server/middleware/authenticate"
	"enbminer/internal/http-server/middleware/timeout"
	"enbminer/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	account.Core
	activation.Core
	claim.Core
	balance.Core
	leaderboard.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(5))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api", func(rootApi chi.Router) {
		rootApi.Post("/create-account", account.Create(log, handler))
		rootApi.Get("/profile/{wallet}", account.Profile(log, handler))
		rootApi.Get("/users", account.List(log, handler))

		rootApi.Post("/activate-account", activation.Activate(log, handler))
		rootApi.Get("/invitation-usage/{code}", activation.Usage(log, handler))

		rootApi.Post("/daily-claim", claim.Claim(log, handler))
		rootApi.Post("/checkin", claim.Claim(log, handler))
		rootApi.Get("/daily-claim-status/{wallet}", claim.Status(log, handler))

		rootApi.Get("/transactions/{wallet}", balance.Transactions(log, handler))

		rootApi.Get("/leaderboard/{board}", leaderboard.Board(log, handler))
		rootApi.Get("/user-rankings/{wallet}", leaderboard.Rankings(log, handler))

		// operator surface: seeding and direct mutations
		rootApi.Group(func(op chi.Router) {
			op.Use(authenticate.New(log, handler))
			op.Post("/create-default-user", account.CreateDefault(log, handler))
			op.Post("/update-balance", balance.Update(log, handler))
			op.Post("/update-membership", account.UpdateMembership(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:      router,
		ErrorLog:     httpLog,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIp, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
