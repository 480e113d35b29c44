package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrental_backend/internal/platform/config"
)

func TestNew_LevelsAndFormat(t *testing.T) {
	tests := []struct {
		env       string
		json      bool
		debugOpen bool
	}{
		{config.EnvLocal, false, true},
		{config.EnvDev, true, true},
		{config.EnvProd, true, false},
		{"unknown", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.env, &buf)

			assert.Equal(t, tt.debugOpen, log.Enabled(context.Background(), slog.LevelDebug))

			log.Info("hello", "k", "v")
			line := strings.TrimSpace(buf.String())
			if tt.json {
				var m map[string]any
				require.NoError(t, json.Unmarshal([]byte(line), &m))
				assert.Equal(t, "hello", m["msg"])
			} else {
				assert.Contains(t, line, "msg=hello")
				assert.Contains(t, line, "k=v")
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "INFO"},
		{"client error", http.StatusNotFound, "WARN"},
		{"server error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := gin.New()
			r.Use(RequestLogger(New(config.EnvProd, &buf)))
			r.GET("/cars", func(c *gin.Context) { c.Status(tt.status) })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cars?token=secret", nil))

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/cars", entry["path"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.NotContains(t, buf.String(), "secret")
		})
	}
}
