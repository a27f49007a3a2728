package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// recordDiscoveryHandler handles POST /api/v1/discoveries. An agent logs
// a finding mid-task; follow-up tasks are enqueued separately and linked
// with the attach route.
func (s *Server) recordDiscoveryHandler(c *gin.Context) {
	var req models.RecordDiscoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	discovery, err := s.deps.Discoveries.Record(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.DiscoveryResponse{TaskDiscovery: discovery})
}

// getDiscoveryHandler handles GET /api/v1/discoveries/:id.
func (s *Server) getDiscoveryHandler(c *gin.Context) {
	discovery, err := s.deps.Discoveries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DiscoveryResponse{TaskDiscovery: discovery})
}

// listOpenDiscoveriesHandler handles GET /api/v1/discoveries, the
// unresolved backlog.
func (s *Server) listOpenDiscoveriesHandler(c *gin.Context) {
	discoveries, err := s.deps.Discoveries.ListOpen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DiscoveriesResponse{Discoveries: discoveries})
}

// listTaskDiscoveriesHandler handles GET /api/v1/tasks/:id/discoveries.
func (s *Server) listTaskDiscoveriesHandler(c *gin.Context) {
	discoveries, err := s.deps.Discoveries.ListBySourceTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DiscoveriesResponse{Discoveries: discoveries})
}

// attachDiscoveryTasksHandler handles POST /api/v1/discoveries/:id/tasks,
// linking the follow-up tasks spawned for a finding.
func (s *Server) attachDiscoveryTasksHandler(c *gin.Context) {
	var req AttachDiscoveryTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Discoveries.AttachSpawnedTasks(c.Request.Context(), c.Param("id"), req.TaskIDs); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// resolveDiscoveryHandler handles POST /api/v1/discoveries/:id/resolve.
func (s *Server) resolveDiscoveryHandler(c *gin.Context) {
	var req ResolveDiscoveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Discoveries.Resolve(c.Request.Context(), c.Param("id"), req.Resolution); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
