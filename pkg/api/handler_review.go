package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// submitForReviewHandler handles POST /api/v1/tasks/:id/submit-review.
// The worker hands over its commit; the orchestrator moves the task into
// review and spawns a validator when one is due.
func (s *Server) submitForReviewHandler(c *gin.Context) {
	var req models.SubmitForReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	t, err := s.deps.Review.Submit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TaskResponse{Task: t})
}

// reviewHandler handles POST /api/v1/tasks/:id/review. Only the task's
// active validator may file the verdict; anyone else gets a 403.
func (s *Server) reviewHandler(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	review, err := s.deps.Review.GiveReview(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// feedbackHandler handles POST /api/v1/feedback, relaying review feedback
// to a worker agent over the event bus.
func (s *Server) feedbackHandler(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	delivered, err := s.deps.Review.SendFeedback(c.Request.Context(), req.AgentID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FeedbackResponse{Delivered: delivered})
}

// activeValidatorsHandler handles GET /api/v1/validators/active.
func (s *Server) activeValidatorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ActiveValidatorsResponse{Validators: s.deps.Review.ActiveValidators()})
}
