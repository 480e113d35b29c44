// Package logging configures slog and the HTTP access log.
package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"carrental_backend/internal/platform/config"
)

// New builds the logger for env: text/debug locally, JSON/debug in dev and
// JSON/info in prod. Unknown values get the prod logger.
func New(env string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}

// Setup installs the logger for env as the slog default and returns it.
func Setup(env string) *slog.Logger {
	log := New(env, os.Stdout).With(slog.String("env", env))
	slog.SetDefault(log)
	return log
}

// RequestLogger logs one line per request. Server errors log at error level,
// client errors at warn. The query string is left out since it may carry secrets.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.ErrorContext(c.Request.Context(), "request", attrs...)
		case status >= 400:
			log.WarnContext(c.Request.Context(), "request", attrs...)
		default:
			log.InfoContext(c.Request.Context(), "request", attrs...)
		}
	}
}
