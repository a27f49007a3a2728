package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
)

func TestReviewFlowRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     "PHASE_REVIEW",
		TaskType:    "implement_api",
		Description: "Implement the queue claim path",
	})
	f.claim(t, "PHASE_REVIEW", created.ID, "agent-w1")
	f.startRunning(t, created.ID, "agent-w1")

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/submit-review", models.SubmitForReviewRequest{
		AgentID:   "agent-w1",
		CommitSHA: "a3f8c2d",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	submitted := decode[models.TaskResponse](t, rec)
	assert.Equal(t, task.StatusValidationInProgress, submitted.Status)
	assert.Equal(t, 1, submitted.ValidationIteration)
	assert.Equal(t, []string{created.ID}, f.spawner.calls())

	valID := validatorID(created.ID, 1)
	f.registerAgent(t, valID, "validator")

	rec = f.do(t, http.MethodGet, "/api/v1/validators/active", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decode[ActiveValidatorsResponse](t, rec)
	entry, ok := active.Validators[created.ID]
	require.True(t, ok)
	assert.Equal(t, valID, entry.ValidatorAgentID)

	t.Run("wrong validator is rejected", func(t *testing.T) {
		f.registerAgent(t, "val-intruder", "validator")
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
			ValidatorAgentID: "val-intruder",
			Passed:           true,
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, reasonPermissionDenied, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("failing verdict needs feedback", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
			ValidatorAgentID: valID,
			Passed:           false,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "feedback", decode[ErrorResponse](t, rec).Field)
	})

	rec = f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
		ValidatorAgentID: valID,
		Passed:           true,
		Evidence:         map[string]any{"tests": "all green"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	review := decode[*ent.ValidationReview](t, rec)
	assert.True(t, review.ValidationPassed)
	assert.Equal(t, 1, review.IterationNumber)
	assert.Equal(t, valID, review.ValidatorAgentID)

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.StatusCompleted, decode[models.TaskResponse](t, rec).Status)

	t.Run("second verdict is illegal", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
			ValidatorAgentID: valID,
			Passed:           true,
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonIllegalTransition, decode[ErrorResponse](t, rec).Reason)
	})
}

func TestReviewNeedsWorkRoundTrip(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	f.registerAgent(t, "agent-w1", "worker")

	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     "PHASE_REVIEW",
		TaskType:    "implement_api",
		Description: "Build the retry backoff",
	})
	f.claim(t, "PHASE_REVIEW", created.ID, "agent-w1")
	f.startRunning(t, created.ID, "agent-w1")

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/submit-review", models.SubmitForReviewRequest{
		AgentID:   "agent-w1",
		CommitSHA: "b1c2d3e",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	valID := validatorID(created.ID, 1)
	f.registerAgent(t, valID, "validator")
	rec = f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
		ValidatorAgentID: valID,
		Passed:           false,
		Feedback:         "API returns 500 on an empty body",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.StatusNeedsWork, decode[models.TaskResponse](t, rec).Status)

	// The orchestrator relays the feedback to the worker over the bus.
	rec = f.do(t, http.MethodPost, "/api/v1/feedback", models.FeedbackRequest{
		AgentID: "agent-w1",
		Message: "API returns 500 on an empty body",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[FeedbackResponse](t, rec).Delivered)

	// The worker picks the task back up and resubmits.
	f.startRunning(t, created.ID, "agent-w1")
	rec = f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/submit-review", models.SubmitForReviewRequest{
		AgentID:   "agent-w1",
		CommitSHA: "c4d5e6f",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resubmitted := decode[models.TaskResponse](t, rec)
	assert.Equal(t, 2, resubmitted.ValidationIteration)

	valID2 := validatorID(created.ID, 2)
	f.registerAgent(t, valID2, "validator")
	rec = f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/review", models.ReviewRequest{
		ValidatorAgentID: valID2,
		Passed:           true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = f.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, task.StatusCompleted, decode[models.TaskResponse](t, rec).Status)
}

func TestFeedbackRoute(t *testing.T) {
	f := newTestServer(t)
	f.registerAgent(t, "agent-w1", "worker")

	rec := f.do(t, http.MethodPost, "/api/v1/feedback", models.FeedbackRequest{
		AgentID: "agent-w1",
		Message: "tests are failing on the import path",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[FeedbackResponse](t, rec).Delivered)

	t.Run("unknown agent is not delivered", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/feedback", models.FeedbackRequest{
			AgentID: "ghost",
			Message: "anyone home",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, decode[FeedbackResponse](t, rec).Delivered)
	})

	t.Run("empty message", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/feedback", models.FeedbackRequest{AgentID: "agent-w1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "feedback", decode[ErrorResponse](t, rec).Field)
	})
}

func TestSubmitForReviewValidation(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     "PHASE_REVIEW",
		Description: "Ship the export endpoint",
	})

	t.Run("missing commit sha", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/submit-review", models.SubmitForReviewRequest{
			AgentID: "agent-w1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "commit_sha", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("pending task cannot enter review", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/submit-review", models.SubmitForReviewRequest{
			AgentID:   "agent-w1",
			CommitSHA: "a1b2c3d",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonIllegalTransition, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("unknown task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/nope/submit-review", models.SubmitForReviewRequest{
			CommitSHA: "a1b2c3d",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
