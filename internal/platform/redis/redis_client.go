// Package redis opens the optional cache connection.
package redis

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrDisabled is returned when no Redis host is configured.
var ErrDisabled = errors.New("redis disabled: REDIS_HOST is empty")

const pingTimeout = 3 * time.Second

// Config holds the connection settings.
type Config struct {
	Host     string
	Port     string
	Password string
}

// NewRedisClient connects and pings. Callers treat any error as "run without cache".
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Host == "" {
		return nil, ErrDisabled
	}
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
