package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// createTicketHandler handles POST /api/v1/tickets.
func (s *Server) createTicketHandler(c *gin.Context) {
	var req models.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	tkt, err := s.deps.Tickets.CreateTicket(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.TicketResponse{Ticket: tkt})
}

// getTicketHandler handles GET /api/v1/tickets/:id.
func (s *Server) getTicketHandler(c *gin.Context) {
	tkt, err := s.deps.Tickets.GetTicket(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TicketResponse{Ticket: tkt})
}

// listTicketsHandler handles GET /api/v1/tickets with optional status and
// phase_id filters.
func (s *Server) listTicketsHandler(c *gin.Context) {
	tickets, err := s.deps.Tickets.ListTickets(c.Request.Context(), c.Query("status"), c.Query("phase_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TicketsResponse{Tickets: tickets})
}

// updateTicketStatusHandler handles PUT /api/v1/tickets/:id/status.
func (s *Server) updateTicketStatusHandler(c *gin.Context) {
	var req UpdateTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Tickets.UpdateTicketStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// updateTicketPhaseHandler handles PUT /api/v1/tickets/:id/phase.
func (s *Server) updateTicketPhaseHandler(c *gin.Context) {
	var req UpdateTicketPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	if err := s.deps.Tickets.UpdateTicketPhase(c.Request.Context(), c.Param("id"), req.PhaseID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// cloneReadyHandler handles GET /api/v1/tickets/:id/clone-ready. Recovery
// spawning is pointless for a ticket whose repository cannot be cloned;
// this exposes the same check the diagnostic safeguards use.
func (s *Server) cloneReadyHandler(c *gin.Context) {
	ready, reason, err := s.deps.Tickets.CloneReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CloneReadyResponse{Ready: ready, Reason: reason})
}
