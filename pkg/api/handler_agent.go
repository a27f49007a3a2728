package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// registerAgentHandler handles POST /api/v1/agents. Spawned agents call
// this once on startup; re-registering an id is a conflict.
func (s *Server) registerAgentHandler(c *gin.Context) {
	var req models.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	a, err := s.deps.Agents.RegisterAgent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AgentResponse{Agent: a})
}

// getAgentHandler handles GET /api/v1/agents/:id.
func (s *Server) getAgentHandler(c *gin.Context) {
	a, err := s.deps.Agents.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AgentResponse{Agent: a})
}

// listAgentsHandler handles GET /api/v1/agents with optional agent_type
// and status filters.
func (s *Server) listAgentsHandler(c *gin.Context) {
	agents, err := s.deps.Agents.ListAgents(c.Request.Context(), c.Query("agent_type"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AgentsResponse{Agents: agents})
}

// heartbeatHandler handles POST /api/v1/agents/:id/heartbeat. The stale
// sweep reaps agents that stop calling this.
func (s *Server) heartbeatHandler(c *gin.Context) {
	if err := s.deps.Agents.Heartbeat(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateAgentStatusHandler handles PUT /api/v1/agents/:id/status.
func (s *Server) updateAgentStatusHandler(c *gin.Context) {
	var req UpdateAgentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Agents.UpdateAgentStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// releaseAgentLocksHandler handles POST /api/v1/agents/:id/locks/release,
// the teardown path for an agent that exits while holding locks.
func (s *Server) releaseAgentLocksHandler(c *gin.Context) {
	released, err := s.deps.Locks.ReleaseAllForAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReleasedLocksResponse{Released: released})
}
