package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wordwheel/wheelbot/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health. Unauthenticated; only the panel's own
// database is checked.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	health, err := s.db.Health(reqCtx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   healthStatusUnhealthy,
			Version:  version.GitCommit,
			Database: health,
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   healthStatusHealthy,
		Version:  version.GitCommit,
		Database: health,
	})
}
