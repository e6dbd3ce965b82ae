package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/catalog/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHealth(t *testing.T, h *HealthHandler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	engine := gin.New()
	engine.GET("/health", h.Health)
	engine.GET("/ready", h.Ready)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHealthHandler_Health(t *testing.T) {
	w, body := serveHealth(t, NewHealthHandler("1.2.3"), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, "1.2.3", data["version"])
}

func TestHealthHandler_Ready(t *testing.T) {
	ok := ReadinessCheck{Name: "database", Check: func(context.Context) error { return nil }}
	down := ReadinessCheck{Name: "redis", Check: func(context.Context) error { return errors.New("dial tcp: refused") }}

	t.Run("all checks pass", func(t *testing.T) {
		w, body := serveHealth(t, NewHealthHandler("test", ok), "/ready")

		assert.Equal(t, http.StatusOK, w.Code)
		data := body["data"].(map[string]any)
		assert.Equal(t, "ready", data["status"])
		assert.Equal(t, "ok", data["checks"].(map[string]any)["database"])
	})

	t.Run("one failing check", func(t *testing.T) {
		w, body := serveHealth(t, NewHealthHandler("test", ok, down), "/ready")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, dto.ErrCodeUnavailable, body["error"].(map[string]any)["code"])
		checks := body["data"].(map[string]any)["checks"].(map[string]any)
		assert.Equal(t, "dial tcp: refused", checks["redis"])
		assert.Equal(t, "ok", checks["database"])
	})

	t.Run("checks get a deadline", func(t *testing.T) {
		var hadDeadline bool
		probe := ReadinessCheck{Name: "database", Check: func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		}}
		serveHealth(t, NewHealthHandler("test", probe), "/ready")
		assert.True(t, hadDeadline)
	})
}
