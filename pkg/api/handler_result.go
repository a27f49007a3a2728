package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// submitAgentResultHandler handles POST /api/v1/results/agent, the
// per-task markdown deliverable.
func (s *Server) submitAgentResultHandler(c *gin.Context) {
	var req models.SubmitAgentResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	result, err := s.deps.Results.SubmitAgentResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.AgentResultResponse{AgentResult: result})
}

// submitWorkflowResultHandler handles POST /api/v1/results/workflow.
// When the body names no submitter, the proxy identity headers do.
func (s *Server) submitWorkflowResultHandler(c *gin.Context) {
	var req models.SubmitWorkflowResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}
	if req.SubmittedBy == nil || *req.SubmittedBy == "" {
		author := extractAuthor(c)
		req.SubmittedBy = &author
	}

	result, err := s.deps.Results.SubmitWorkflowResult(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.WorkflowResultResponse{WorkflowResult: result})
}

// validateWorkflowResultHandler handles POST /api/v1/results/workflow/:id/validate.
func (s *Server) validateWorkflowResultHandler(c *gin.Context) {
	result, err := s.deps.Results.ValidateWorkflowResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.WorkflowResultResponse{WorkflowResult: result})
}

// rejectWorkflowResultHandler handles POST /api/v1/results/workflow/:id/reject.
func (s *Server) rejectWorkflowResultHandler(c *gin.Context) {
	result, err := s.deps.Results.RejectWorkflowResult(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.WorkflowResultResponse{WorkflowResult: result})
}

// listAgentResultsHandler handles GET /api/v1/tasks/:id/results, newest
// first.
func (s *Server) listAgentResultsHandler(c *gin.Context) {
	results, err := s.deps.Results.AgentResultsForTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, AgentResultsResponse{Results: results})
}

// listWorkflowResultsHandler handles GET /api/v1/tickets/:id/results,
// newest first.
func (s *Server) listWorkflowResultsHandler(c *gin.Context) {
	results, err := s.deps.Results.WorkflowResultsForTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, WorkflowResultsResponse{Results: results})
}
