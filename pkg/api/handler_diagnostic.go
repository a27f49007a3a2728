package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/services"
)

// triggerDiagnosticHandler handles POST /api/v1/diagnostics/trigger.
// The run executes synchronously; a safeguarded skip (healthy ticket,
// diagnostic cap reached, recovery already in flight) reports skipped
// without creating a row.
func (s *Server) triggerDiagnosticHandler(c *gin.Context) {
	var req TriggerDiagnosticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}
	if req.TicketID == "" {
		respondError(c, services.NewValidationError("ticket_id", "required"))
		return
	}

	run, err := s.deps.Diagnostics.Run(c.Request.Context(), req.TicketID, req.Reason, req.Detail)
	if err != nil {
		respondError(c, err)
		return
	}
	if run == nil {
		c.JSON(http.StatusOK, DiagnosticRunResponse{Skipped: true})
		return
	}
	c.JSON(http.StatusCreated, DiagnosticRunResponse{Run: run})
}

// listDiagnosticRunsHandler handles GET /api/v1/diagnostics/runs with
// optional ticket_id and limit parameters.
func (s *Server) listDiagnosticRunsHandler(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			respondError(c, services.NewValidationError("limit", "must be an integer between 1 and 500"))
			return
		}
		limit = n
	}

	runs, err := s.deps.Diagnostics.Runs(c.Request.Context(), c.Query("ticket_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DiagnosticRunsResponse{Runs: runs})
}

// getDiagnosticRunHandler handles GET /api/v1/diagnostics/runs/:id.
func (s *Server) getDiagnosticRunHandler(c *gin.Context) {
	run, err := s.deps.Diagnostics.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}
