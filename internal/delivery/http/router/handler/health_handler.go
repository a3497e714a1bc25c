package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bcraftd/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler reports service liveness including database reachability.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Check answers liveness probes. The database is pinged with a short
// timeout so a stalled pool cannot hang the probe.
func (h *HealthHandler) Check(c echo.Context) error {
	status := map[string]string{
		"status":   "ok",
		"database": "up",
	}

	if err := h.pingDatabase(c.Request().Context()); err != nil {
		h.logger.Warn("Health check database ping failed", slog.Any("error", err))
		status["status"] = "degraded"
		status["database"] = "down"

		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", "")
	}

	return response.Success(c, http.StatusOK, status, "Service is healthy")
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(pingCtx)
}
