package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
)

// enqueueTaskHandler handles POST /api/v1/tasks. Well-formed candidates
// pass the dedup gate first: a skip verdict returns the matched task
// instead of creating a row, and a create verdict hands its precomputed
// hash and embedding to the queue so they are persisted with the task.
func (s *Server) enqueueTaskHandler(c *gin.Context) {
	var req models.EnqueueTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	var verdict *dedup.Result
	runGate := s.deps.Dedup != nil && !req.SkipDedup &&
		req.TicketID != "" && req.PhaseID != "" && req.Description != ""
	if runGate {
		result, err := s.deps.Dedup.CheckTask(c.Request.Context(), dedup.TaskCandidate{
			TaskID:      req.TaskID,
			TicketID:    req.TicketID,
			TaskType:    req.TaskType,
			Description: req.Description,
		})
		if err != nil {
			// The gate is advisory; a broken gate must not block intake.
			s.logger.Warn("Dedup gate failed, enqueueing anyway", "ticket_id", req.TicketID, "error", err)
		} else {
			verdict = result
		}
	}

	if verdict != nil && verdict.Action == dedup.ActionSkip {
		c.JSON(http.StatusOK, EnqueueTaskResponse{Dedup: verdict})
		return
	}

	var artifacts *queue.DedupArtifacts
	if verdict != nil {
		artifacts = &queue.DedupArtifacts{
			ContentHash: verdict.ContentHash,
			Embedding:   verdict.Embedding,
		}
	}
	created, err := s.deps.Tasks.Enqueue(c.Request.Context(), req, artifacts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, EnqueueTaskResponse{Task: created, Dedup: verdict})
}

// getTaskHandler handles GET /api/v1/tasks/:id.
func (s *Server) getTaskHandler(c *gin.Context) {
	t, err := s.deps.Tasks.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TaskResponse{Task: t})
}

// readyTasksHandler handles GET /api/v1/tasks/ready. It is a read-only
// view ordered by score; claiming stays with the scheduler.
func (s *Server) readyTasksHandler(c *gin.Context) {
	phaseID := c.Query("phase_id")
	if phaseID == "" {
		respondError(c, services.NewValidationError("phase_id", "required"))
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			respondError(c, services.NewValidationError("limit", "must be an integer between 1 and 100"))
			return
		}
		limit = n
	}

	tasks, err := s.deps.Tasks.ReadyTasks(c.Request.Context(), phaseID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TasksResponse{Tasks: tasks})
}

// updateTaskStatusHandler handles PUT /api/v1/tasks/:id/status, the
// worker-reported transitions (running, completed, failed).
func (s *Server) updateTaskStatusHandler(c *gin.Context) {
	var req models.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}

	updated, err := s.deps.Tasks.UpdateStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TaskResponse{Task: updated})
}

// failTaskHandler handles POST /api/v1/tasks/:id/fail. With retries
// remaining the task returns to pending; the response carries whichever
// status it landed on.
func (s *Server) failTaskHandler(c *gin.Context) {
	var req FailTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, services.NewValidationError("body", err.Error()))
		return
	}
	if req.Reason == "" {
		respondError(c, services.NewValidationError("reason", "required"))
		return
	}

	failed, err := s.deps.Tasks.MarkFailed(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TaskResponse{Task: failed})
}

// listTicketTasksHandler handles GET /api/v1/tickets/:id/tasks.
func (s *Server) listTicketTasksHandler(c *gin.Context) {
	tasks, err := s.deps.Tasks.ListByTicket(c.Request.Context(), c.Param("id"), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TasksResponse{Tasks: tasks})
}

// recomputeScoresHandler handles POST /api/v1/queue/recompute. phase_id
// narrows the refresh to one phase; empty refreshes everything pending.
func (s *Server) recomputeScoresHandler(c *gin.Context) {
	updated, err := s.deps.Tasks.RecomputeScores(c.Request.Context(), c.Query("phase_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecomputeResponse{Recomputed: updated})
}
