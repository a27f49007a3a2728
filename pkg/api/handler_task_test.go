package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/models"
)

func TestEnqueueTaskRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		TaskType:    "implement_api",
		Description: "Wire the pagination endpoint",
		Priority:    ptr("HIGH"),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[EnqueueTaskResponse](t, rec)
	require.NotNil(t, resp.Task)
	assert.Equal(t, task.StatusPending, resp.Task.Status)
	assert.Equal(t, "T-1", resp.Task.TicketID)
	assert.Equal(t, task.Priority("HIGH"), resp.Task.Priority)
	require.NotNil(t, resp.Dedup)
	assert.Equal(t, dedup.ActionCreate, resp.Dedup.Action)
	assert.NotEmpty(t, resp.Dedup.ContentHash)

	// The gate's precomputed hash is persisted with the row.
	stored, err := f.client.Task.Get(context.Background(), resp.Task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ContentHash)
	assert.Equal(t, resp.Dedup.ContentHash, *stored.ContentHash)

	t.Run("missing description", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
			TicketID: "T-1",
			PhaseID:  testPhase,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[ErrorResponse](t, rec)
		assert.Equal(t, reasonValidationFailed, body.Reason)
		assert.Equal(t, "description", body.Field)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
			TicketID:    "T-missing",
			PhaseID:     testPhase,
			Description: "Orphan work item",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, reasonNotFound, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("invalid priority", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     testPhase,
			Description: "Tune the scorer",
			Priority:    ptr("URGENT"),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "priority", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "body", decode[ErrorResponse](t, rec).Field)
	})
}

func TestEnqueueTaskDedupGate(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	ctx := context.Background()

	first := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		TaskType:    "implement_api",
		Description: "Normalize the audit log schema",
	})

	// An identical candidate is skipped; the matched row comes back
	// instead of a new one.
	rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		TaskType:    "implement_api",
		Description: "Normalize the audit log schema",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[EnqueueTaskResponse](t, rec)
	assert.Nil(t, resp.Task)
	require.NotNil(t, resp.Dedup)
	assert.True(t, resp.Dedup.IsDuplicate)
	assert.Equal(t, dedup.ActionSkip, resp.Dedup.Action)
	assert.Equal(t, first.ID, resp.Dedup.MatchedTaskID)

	count, err := f.client.Task.Query().Where(task.TicketIDEQ("T-1")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	t.Run("skip_dedup bypasses the gate", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     testPhase,
			TaskType:    "implement_api",
			Description: "Normalize the audit log schema",
			SkipDedup:   true,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[EnqueueTaskResponse](t, rec)
		require.NotNil(t, resp.Task)
		assert.Nil(t, resp.Dedup)

		count, err := f.client.Task.Query().Where(task.TicketIDEQ("T-1")).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("unrelated description creates", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks", models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     testPhase,
			TaskType:    "implement_api",
			Description: "Document the audit log retention policy",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		resp := decode[EnqueueTaskResponse](t, rec)
		require.NotNil(t, resp.Dedup)
		assert.Equal(t, dedup.ActionCreate, resp.Dedup.Action)
	})
}

func TestGetTaskRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Expose the claim endpoint",
	})

	rec := f.do(t, http.MethodGet, "/api/v1/tasks/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.TaskResponse](t, rec)
	require.NotNil(t, got.Task)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, task.StatusPending, got.Status)

	t.Run("not found", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, reasonNotFound, decode[ErrorResponse](t, rec).Reason)
	})
}

func TestReadyTasksRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	low := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Backfill the import fixtures",
		Priority:    ptr("LOW"),
	})
	critical := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "Patch the auth bypass",
		Priority:    ptr("CRITICAL"),
	})

	rec := f.do(t, http.MethodGet, "/api/v1/tasks/ready?phase_id="+testPhase, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[models.TasksResponse](t, rec)
	require.Len(t, resp.Tasks, 2)
	assert.Equal(t, critical.ID, resp.Tasks[0].ID)
	assert.Equal(t, low.ID, resp.Tasks[1].ID)

	t.Run("limit narrows the view", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/ready?phase_id="+testPhase+"&limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[models.TasksResponse](t, rec)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, critical.ID, resp.Tasks[0].ID)
	})

	t.Run("missing phase_id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/ready", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "phase_id", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("limit out of range", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tasks/ready?phase_id="+testPhase+"&limit=0", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "limit", decode[ErrorResponse](t, rec).Field)
	})
}

func TestUpdateTaskStatusRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:          "T-1",
		PhaseID:           "PHASE_STATUS",
		Description:       "Rotate the signing keys",
		ValidationEnabled: ptr(false),
	})
	f.claim(t, "PHASE_STATUS", created.ID, "agent-1")

	rec := f.do(t, http.MethodPut, "/api/v1/tasks/"+created.ID+"/status", models.UpdateTaskStatusRequest{
		Status:  "running",
		AgentID: "agent-1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	running := decode[models.TaskResponse](t, rec)
	assert.Equal(t, task.StatusRunning, running.Status)
	assert.NotNil(t, running.StartedAt)

	rec = f.do(t, http.MethodPut, "/api/v1/tasks/"+created.ID+"/status", models.UpdateTaskStatusRequest{
		Status:  "completed",
		AgentID: "agent-1",
		Result:  map[string]any{"files_changed": 3},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	completed := decode[models.TaskResponse](t, rec)
	assert.Equal(t, task.StatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)

	t.Run("pending task cannot start", func(t *testing.T) {
		fresh := f.enqueue(t, models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     "PHASE_STATUS_B",
			Description: "Index the search corpus",
		})
		rec := f.do(t, http.MethodPut, "/api/v1/tasks/"+fresh.ID+"/status", models.UpdateTaskStatusRequest{Status: "running"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonIllegalTransition, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("non worker status", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tasks/"+created.ID+"/status", models.UpdateTaskStatusRequest{Status: "under_review"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("validation enabled blocks direct completion", func(t *testing.T) {
		guarded := f.enqueue(t, models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     "PHASE_STATUS_C",
			Description: "Harden the webhook receiver",
		})
		f.claim(t, "PHASE_STATUS_C", guarded.ID, "agent-2")
		f.startRunning(t, guarded.ID, "agent-2")

		rec := f.do(t, http.MethodPut, "/api/v1/tasks/"+guarded.ID+"/status", models.UpdateTaskStatusRequest{
			Status:  "completed",
			AgentID: "agent-2",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decode[ErrorResponse](t, rec)
		assert.Equal(t, reasonValidationFailed, body.Reason)
		assert.Contains(t, body.Error, "submit the task for review")
	})

	t.Run("unknown task", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/tasks/nope/status", models.UpdateTaskStatusRequest{Status: "running"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFailTaskRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	created := f.enqueue(t, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     "PHASE_FAIL",
		Description: "Repair the flaky export job",
	})
	f.claim(t, "PHASE_FAIL", created.ID, "agent-1")
	f.startRunning(t, created.ID, "agent-1")

	rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/fail", FailTaskRequest{Reason: "exit status 2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	failed := decode[models.TaskResponse](t, rec)
	assert.Equal(t, task.StatusPending, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	assert.Nil(t, failed.AssignedAgentID)

	t.Run("last retry is terminal", func(t *testing.T) {
		oneShot := f.enqueue(t, models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     "PHASE_FAIL_B",
			Description: "Migrate the settings table",
			MaxRetries:  ptr(1),
		})
		f.claim(t, "PHASE_FAIL_B", oneShot.ID, "agent-2")
		f.startRunning(t, oneShot.ID, "agent-2")

		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+oneShot.ID+"/fail", FailTaskRequest{Reason: "panic in worker"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		terminal := decode[models.TaskResponse](t, rec)
		assert.Equal(t, task.StatusFailed, terminal.Status)
		assert.NotNil(t, terminal.CompletedAt)
	})

	t.Run("missing reason", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/fail", FailTaskRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "reason", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("pending task cannot fail", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/"+created.ID+"/fail", FailTaskRequest{Reason: "stale"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonIllegalTransition, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("unknown task", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/tasks/nope/fail", FailTaskRequest{Reason: "gone"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListTicketTasksRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	f.enqueue(t, models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "Draft the schema"})
	f.enqueue(t, models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "Review the schema draft"})

	rec := f.do(t, http.MethodGet, "/api/v1/tickets/T-1/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[models.TasksResponse](t, rec).Tasks, 2)

	t.Run("status filter", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/tickets/T-1/tasks?status=running", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[models.TasksResponse](t, rec).Tasks)
	})
}

func TestRecomputeScoresRoute(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")
	f.enqueue(t, models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "Profile the hot path"})

	rec := f.do(t, http.MethodPost, "/api/v1/queue/recompute", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[RecomputeResponse](t, rec)
	assert.GreaterOrEqual(t, resp.Recomputed, 0)

	t.Run("phase scoped", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/queue/recompute?phase_id="+testPhase, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
