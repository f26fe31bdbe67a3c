// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"mangahub/config"
	domainerrors "mangahub/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the unauthenticated service endpoints.
type SystemHandler struct {
	cfg *config.Config
	now func() time.Time
}

// NewSystemHandler is the constructor for SystemHandler.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg, now: time.Now}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

// RootResponse describes the service.
type RootResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Health reports that the process is serving.
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   h.now().UTC().Format(time.RFC3339Nano),
		Environment: h.cfg.Env.Env,
	})
}

// Root lists the entry points.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Name:    h.cfg.Env.ServiceName,
		Version: h.cfg.Env.Version,
		Endpoints: map[string]string{
			"health": "/health",
			"api":    "/api",
		},
	})
}

// RouteNotFound answers every unmatched path.
func (h *SystemHandler) RouteNotFound(c echo.Context) error {
	return domainerrors.ErrRouteNotFound
}
