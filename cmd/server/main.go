package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"carrental_backend/internal/app/di"
	"carrental_backend/internal/platform/config"
	platformdb "carrental_backend/internal/platform/db"
	"carrental_backend/internal/platform/logging"
	platformredis "carrental_backend/internal/platform/redis"
)

const (
	dbConnectTimeout = 60 * time.Second
	shutdownTimeout  = 10 * time.Second
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.Env)
	if cfg.Env == config.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("starting carrental backend", "addr", cfg.HTTPAddr, "db_driver", cfg.DB.Driver)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	db, err := platformdb.Open(platformdb.Config{
		Driver:       cfg.DB.Driver,
		User:         cfg.DB.User,
		Password:     cfg.DB.Password,
		Name:         cfg.DB.Name,
		Host:         cfg.DB.Host,
		Port:         cfg.DB.Port,
		SSLMode:      cfg.DB.SSLMode,
		InstanceName: cfg.DB.InstanceName,
	}, dbConnectTimeout, cfg.DB.RunMigrations, di.Models()...)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx, platformredis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
	}); err != nil {
		log.Warn("Redis unavailable. Running without cache.", "reason", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	mailer, err := di.NewMailer(cfg.Env, cfg.Mail)
	if err != nil {
		log.Error("mailer misconfigured", "error", err)
		os.Exit(1)
	}

	engine, err := di.NewEngine(cfg, di.Infra{DB: db, Redis: rdb, Mailer: mailer, Logger: log})
	if err != nil {
		log.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
