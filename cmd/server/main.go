package main

import (
	"flag"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"enbminer/bot"
	"enbminer/impl/core"
	"enbminer/internal/config"
	"enbminer/internal/database"
	"enbminer/internal/http-server/api"
	"enbminer/internal/rate"
	"enbminer/lib/logger"
	"enbminer/lib/sl"
)

const logFileName = "enbminer.log"

func main() {
	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	log := logger.SetupLogger(conf.Env, filepath.Join(*logPath, logFileName))
	log.Info("starting enbminer", slog.String("config", *configPath), slog.String("env", conf.Env))

	store := database.NewMongoClient(conf)
	handler := core.New(store, log)
	handler.SetOperatorToken(conf.Api.OperatorToken)
	handler.SetLeaderboardMax(conf.Limits.LeaderboardMax)

	window := time.Duration(conf.Limits.ActivationWindowHours) * time.Hour
	if conf.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		handler.SetActivationLimiter(rate.NewRedisLimiter(client, conf.Limits.ActivationAttempts, window))
		log.Info("activation limiter: redis", slog.String("addr", conf.Redis.Addr))
	} else {
		limiter := rate.NewMemoryLimiter(conf.Limits.ActivationAttempts, window)
		go func() {
			for range time.Tick(window) {
				limiter.Cleanup()
			}
		}()
		handler.SetActivationLimiter(limiter)
		log.Info("activation limiter: in-memory")
	}

	if conf.Telegram.Enabled {
		tgBot, err := bot.NewTgBot(conf.Telegram.ApiKey, conf.Telegram.ChatId, handler, log)
		if err != nil {
			log.Error("telegram bot init", sl.Err(err))
		} else {
			log = slog.New(logger.NewTelegramHandler(log.Handler(), tgBot, slog.LevelWarn))
			go func() {
				if err := tgBot.Start(); err != nil {
					log.Error("telegram bot", sl.Err(err))
				}
			}()
			defer tgBot.Stop()
		}
	}

	if err := api.New(conf, log, handler); err != nil {
		log.Error("api server stopped", sl.Err(err))
	}
}
