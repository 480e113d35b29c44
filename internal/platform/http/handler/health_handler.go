// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

// Health serves /healthz. Required checks turn the response into 503 when they
// fail; optional ones (the cache) are only reported.
type Health struct {
	required map[string]Check
	optional map[string]Check
	timeout  time.Duration
}

// NewHealth returns a Health with no checks; it always reports ok.
func NewHealth() *Health {
	return &Health{
		required: map[string]Check{},
		optional: map[string]Check{},
		timeout:  2 * time.Second,
	}
}

// Require registers a check whose failure makes the service unhealthy.
func (h *Health) Require(name string, check Check) *Health {
	h.required[name] = check
	return h
}

// Observe registers a check that is reported but never fails the probe.
func (h *Health) Observe(name string, check Check) *Health {
	h.optional[name] = check
	return h
}

// Handle answers GET with a JSON report, HEAD with the bare status and
// OPTIONS with 204. Responses are never cached.
func (h *Health) Handle(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	report := gin.H{}
	for name, check := range h.required {
		if err := check(ctx); err != nil {
			slog.Warn("health check failed", "check", name, "error", err)
			report[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "up"
	}
	for name, check := range h.optional {
		if err := check(ctx); err != nil {
			report[name] = "down"
			continue
		}
		report[name] = "up"
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unavailable"
	}
	c.JSON(status, gin.H{"status": overall, "checks": report})
}
