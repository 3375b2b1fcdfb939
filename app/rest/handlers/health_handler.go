package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var startTime = time.Now()

// HealthChecker is anything that can report its own liveness.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthResponse is the basic health check payload.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Uptime    string    `json:"uptime"`
}

// ReadinessResponse reports per-dependency status.
type ReadinessResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler handles the health endpoints.
type HealthHandler struct {
	checkers map[string]HealthChecker
	logger   *slog.Logger
}

func NewHealthHandler(checkers map[string]HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checkers: checkers,
		logger:   logger.With("component", "health_handler"),
	}
}

// HealthCheck handles GET /health.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Service:   "vocablo",
		Uptime:    time.Since(startTime).String(),
	})
}

// ReadinessCheck handles GET /ready. Every registered dependency is probed;
// any failure turns the response into a 503.
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.checkers))
	healthy := true
	for name, checker := range h.checkers {
		if err := checker.HealthCheck(ctx); err != nil {
			h.logger.Warn("readiness check failed", "dependency", name, "error", err)
			checks[name] = "unhealthy: " + err.Error()
			healthy = false
			continue
		}
		checks[name] = "healthy"
	}

	status := http.StatusOK
	overall := "ready"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "not ready"
	}

	return c.JSON(status, ReadinessResponse{
		Status:    overall,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}

// LivenessCheck handles GET /live.
func (h *HealthHandler) LivenessCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "alive"})
}
