package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the kernel's own components (database, scheduler) are checked.
// External dependencies (embedding, LLM, sandbox provisioner) are
// excluded so an orchestrator never restarts the kernel over a sick
// upstream.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	dbHealth, err := database.Health(reqCtx, s.deps.DB.DB())
	if err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	resp := &HealthResponse{
		Version:  version.GitCommit,
		Database: dbHealth,
		Checks:   checks,
	}

	if s.deps.Scheduler != nil {
		schedHealth := s.deps.Scheduler.Health(reqCtx)
		resp.Scheduler = schedHealth
		if schedHealth != nil && !schedHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if schedHealth.DBError != "" {
				msg = schedHealth.DBError
			}
			checks["scheduler"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["scheduler"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	resp.Status = status
	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
}
