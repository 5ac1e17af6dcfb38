package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ruralroots/directory-api/internal/core/ports"
)

// HealthHandler handles GET /health, the liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe.
// Probes the snapshot store before declaring the service ready; a missing
// snapshot is healthy (first run), an unreachable store is not.
type ReadinessHandler struct {
	store ports.SnapshotStore
}

func NewReadinessHandler(store ports.SnapshotStore) *ReadinessHandler {
	return &ReadinessHandler{store: store}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	status := http.StatusOK
	overall := "ready"

	if _, err := h.store.Load(ctx); err != nil && !errors.Is(err, ports.ErrSnapshotNotFound) {
		deps["snapshot_store"] = dependencyStatus{Status: "down", Error: err.Error()}
		status = http.StatusServiceUnavailable
		overall = "degraded"
	} else {
		deps["snapshot_store"] = dependencyStatus{Status: "up"}
	}

	return c.JSON(status, readinessResponse{Status: overall, Dependencies: deps})
}
