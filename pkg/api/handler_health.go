package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/stridesec/threatmodel/pkg/database"
)

// healthHandler handles GET /health: a liveness probe backed by a DB ping.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.db == nil {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":   "ok",
		"database": dbHealth,
	})
}

// systemHealthHandler handles GET /api/v1/system/health: detailed worker
// pool and queue state.
func (s *Server) systemHealthHandler(c *echo.Context) error {
	if s.pool == nil {
		return c.JSON(http.StatusOK, map[string]any{"status": "ok", "workers": nil})
	}

	health := s.pool.Health()
	status := http.StatusOK
	if !health.IsHealthy {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, health)
}
