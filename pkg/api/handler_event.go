package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// listEventsHandler handles GET /api/v1/events, the catch-up read over
// the durable event log. Consumers poll a channel (a ticket's, or the
// kernel channel) with the last id they saw.
func (s *Server) listEventsHandler(c *gin.Context) {
	channel := c.Query("channel")
	if channel == "" {
		respondError(c, services.NewValidationError("channel", "required"))
		return
	}

	sinceID := 0
	if v := c.Query("since_id"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(c, services.NewValidationError("since_id", "must be a non-negative integer"))
			return
		}
		sinceID = n
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			respondError(c, services.NewValidationError("limit", "must be an integer between 1 and 500"))
			return
		}
		limit = n
	}

	events, err := s.deps.Events.GetEventsSince(c.Request.Context(), channel, sinceID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EventsResponse{Events: events})
}
