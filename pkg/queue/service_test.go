package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

const testPhase = "PHASE_IMPLEMENTATION"

func TestService_Enqueue(t *testing.T) {
	svc, client, bus := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskEnqueued, "test-recorder", recorder.record)

	t.Run("defaults", func(t *testing.T) {
		created := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TicketID:    "T-1",
			PhaseID:     testPhase,
			Description: "implement the parser",
		})

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, task.Priority("MEDIUM"), created.Priority)
		assert.Equal(t, "general", created.TaskType)
		assert.Equal(t, 3, created.MaxRetries)
		assert.True(t, created.ValidationEnabled)
		// 0.45*0.5 priority plus the full 0.05 retry headroom.
		assert.InDelta(t, 0.275, created.Score, 0.01)

		enqueued := recorder.byType(events.EventTypeTaskEnqueued)
		require.Len(t, enqueued, 1)
		payload, ok := enqueued[0].Payload.(events.TaskEnqueuedPayload)
		require.True(t, ok)
		assert.Equal(t, created.ID, payload.TaskID)
		assert.Equal(t, "T-1", payload.TicketID)
		assert.Equal(t, "MEDIUM", payload.Priority)
	})

	t.Run("explicit fields", func(t *testing.T) {
		deadline := time.Now().Add(30 * time.Minute)
		created := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID:            "t-exp",
			TicketID:          "T-1",
			PhaseID:           testPhase,
			TaskType:          "refactor",
			Description:       "split the handler",
			Priority:          ptr("CRITICAL"),
			DeadlineAt:        &deadline,
			OwnedFiles:        []string{"src/api/**"},
			Dependencies:      map[string][]string{"depends_on": {"other-task"}},
			ValidationEnabled: ptr(false),
			MaxRetries:        ptr(5),
		})

		assert.Equal(t, "t-exp", created.ID)
		assert.Equal(t, task.Priority("CRITICAL"), created.Priority)
		assert.Equal(t, "refactor", created.TaskType)
		require.NotNil(t, created.DeadlineAt)
		assert.Equal(t, []string{"src/api/**"}, created.OwnedFiles)
		assert.Equal(t, []string{"other-task"}, created.Dependencies["depends_on"])
		assert.False(t, created.ValidationEnabled)
		assert.Equal(t, 5, created.MaxRetries)
		// 0.45 + 0.15*(1 - 1800/7200) + 0.05, outside the SLA window.
		assert.InDelta(t, 0.6125, created.Score, 0.01)
	})

	t.Run("priority boost raises one level", func(t *testing.T) {
		boosted := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TicketID:      "T-1",
			PhaseID:       testPhase,
			Description:   "boosted from default",
			PriorityBoost: true,
		})
		assert.Equal(t, task.Priority("HIGH"), boosted.Priority)

		capped := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TicketID:      "T-1",
			PhaseID:       testPhase,
			Description:   "already critical",
			Priority:      ptr("CRITICAL"),
			PriorityBoost: true,
		})
		assert.Equal(t, task.Priority("CRITICAL"), capped.Priority)
	})

	t.Run("duplicate id", func(t *testing.T) {
		req := models.EnqueueTaskRequest{
			TaskID:      "t-dup",
			TicketID:    "T-1",
			PhaseID:     testPhase,
			Description: "first",
		}
		enqueueTask(t, svc, req)

		_, err := svc.Enqueue(ctx, req, nil)
		assert.ErrorIs(t, err, services.ErrAlreadyExists)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := svc.Enqueue(ctx, models.EnqueueTaskRequest{
			TicketID:    "T-missing",
			PhaseID:     testPhase,
			Description: "orphan",
		}, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestService_Enqueue_Validation(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	tests := []struct {
		name string
		req  models.EnqueueTaskRequest
	}{
		{"missing ticket id", models.EnqueueTaskRequest{PhaseID: testPhase, Description: "x"}},
		{"missing phase id", models.EnqueueTaskRequest{TicketID: "T-1", Description: "x"}},
		{"missing description", models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase}},
		{"invalid priority", models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "x", Priority: ptr("URGENT")}},
		{"negative max retries", models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "x", MaxRetries: ptr(-1)}},
		{"unknown dependency key", models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "x", Dependencies: map[string][]string{"blocks": {"a"}}}},
		{"self dependency", models.EnqueueTaskRequest{TaskID: "t-self", TicketID: "T-1", PhaseID: testPhase, Description: "x", Dependencies: map[string][]string{"depends_on": {"t-self"}}}},
		{"invalid glob", models.EnqueueTaskRequest{TicketID: "T-1", PhaseID: testPhase, Description: "x", OwnedFiles: []string{"src/[unclosed"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Enqueue(ctx, tt.req, nil)
			assert.True(t, services.IsValidationError(err), "got %v", err)
		})
	}
}

func TestService_Enqueue_DedupArtifacts(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	embedding := make([]float32, 1536)
	embedding[0] = 1

	created, err := svc.Enqueue(ctx, models.EnqueueTaskRequest{
		TicketID:    "T-1",
		PhaseID:     testPhase,
		Description: "hash and embed me",
	}, &DedupArtifacts{ContentHash: "aabbcc", Embedding: embedding})
	require.NoError(t, err)

	require.NotNil(t, created.ContentHash)
	assert.Equal(t, "aabbcc", *created.ContentHash)

	stored, err := database.ListTaskEmbeddings(ctx, client.DB(), database.TaskVectorScope{TicketID: "T-1"})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, created.ID, stored[0].TaskID)
	assert.Len(t, stored[0].Embedding, 1536)
}

func TestService_NextReady(t *testing.T) {
	svc, client, bus := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskStatusChanged, "test-recorder", recorder.record)

	low := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "low", Priority: ptr("LOW"),
	})
	medium := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "medium", Priority: ptr("MEDIUM"),
	})
	critical := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "critical", Priority: ptr("CRITICAL"),
	})

	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, critical.ID, claimed.ID)
	assert.Equal(t, task.StatusClaiming, claimed.Status)
	require.NotNil(t, claimed.ClaimedAt)

	changed := recorder.byType(events.EventTypeTaskStatusChanged)
	require.Len(t, changed, 1)
	payload, ok := changed[0].Payload.(events.TaskStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "pending", payload.From)
	assert.Equal(t, "claiming", payload.To)
	assert.Equal(t, "claimed", payload.Reason)

	// A claimed task is out of the pool; the rest follow score order.
	second, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, medium.ID, second.ID)

	third, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, low.ID, third.ID)

	_, err = svc.NextReady(ctx, testPhase)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	_, err = svc.NextReady(ctx, "PHASE_EMPTY")
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	_, err = svc.NextReady(ctx, "")
	assert.True(t, services.IsValidationError(err))
}

func TestService_NextReady_TieBreak(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	base := time.Now().Add(-time.Minute).Truncate(time.Millisecond)
	seed := func(id string, createdAt time.Time) {
		_, err := client.Task.Create().
			SetID(id).
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("tie " + id).
			SetScore(0.5).
			SetCreatedAt(createdAt).
			Save(ctx)
		require.NoError(t, err)
	}
	seed("tie-b", base)
	seed("tie-a", base)
	seed("tie-old", base.Add(-time.Hour))

	// Equal scores: oldest first, then id ascending.
	for _, want := range []string{"tie-old", "tie-a", "tie-b"} {
		claimed, err := svc.NextReady(ctx, testPhase)
		require.NoError(t, err)
		assert.Equal(t, want, claimed.ID)
	}
}

func TestService_NextReady_DependencyGate(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "dep-b", TicketID: "T-1", PhaseID: testPhase,
		Description: "prerequisite", Priority: ptr("LOW"),
	})
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "dep-a", TicketID: "T-1", PhaseID: testPhase,
		Description: "blocked until b completes", Priority: ptr("CRITICAL"),
		Dependencies: map[string][]string{"depends_on": {"dep-b"}},
	})

	// dep-a outranks dep-b but its dependency is not completed.
	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, "dep-b", claimed.ID)

	_, err = svc.NextReady(ctx, testPhase)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)

	err = client.Task.UpdateOneID("dep-b").SetStatus(task.StatusCompleted).Exec(ctx)
	require.NoError(t, err)

	claimed, err = svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, "dep-a", claimed.ID)

	t.Run("dependency id with no row is unmet", func(t *testing.T) {
		enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID: "dep-ghost", TicketID: "T-1", PhaseID: testPhase,
			Description: "depends on a task nobody created",
			Dependencies: map[string][]string{"depends_on": {"no-such-task"}},
		})

		_, err := svc.NextReady(ctx, testPhase)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})
}

func TestService_NextReady_ReadyTaskBeyondFirstPage(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	// A full page of higher-scored tasks, every one blocked by a
	// dependency that never completes.
	for i := 0; i < claimCandidateWindow; i++ {
		enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID: fmt.Sprintf("blocked-%02d", i), TicketID: "T-1", PhaseID: testPhase,
			Description: "blocked high-priority work", Priority: ptr("CRITICAL"),
			Dependencies: map[string][]string{"depends_on": {"never-done"}},
		})
	}
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "buried-but-ready", TicketID: "T-1", PhaseID: testPhase,
		Description: "low-priority but claimable", Priority: ptr("LOW"),
	})

	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, "buried-but-ready", claimed.ID)

	_, err = svc.NextReady(ctx, testPhase)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestService_Finalize(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-1", TicketID: "T-1", PhaseID: testPhase, Description: "claim me",
	})
	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)

	finalized, err := svc.Finalize(ctx, claimed.ID, "agent-1", "sandbox-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, finalized.Status)
	require.NotNil(t, finalized.AssignedAgentID)
	assert.Equal(t, "agent-1", *finalized.AssignedAgentID)
	require.NotNil(t, finalized.SandboxID)
	assert.Equal(t, "sandbox-1", *finalized.SandboxID)

	t.Run("second finalize loses the race", func(t *testing.T) {
		_, err := svc.Finalize(ctx, claimed.ID, "agent-2", "")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("pending task cannot be finalized", func(t *testing.T) {
		pending := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TicketID: "T-1", PhaseID: "PHASE_OTHER", Description: "never claimed",
		})
		_, err := svc.Finalize(ctx, pending.ID, "agent-1", "")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.Finalize(ctx, "no-such-task", "agent-1", "")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("agent id required", func(t *testing.T) {
		_, err := svc.Finalize(ctx, claimed.ID, "", "")
		assert.True(t, services.IsValidationError(err))
	})
}

func TestService_Release(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-1", TicketID: "T-1", PhaseID: testPhase, Description: "claim and release",
	})
	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)

	require.NoError(t, svc.Release(ctx, claimed.ID))

	released, err := svc.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, released.Status)
	assert.Nil(t, released.ClaimedAt)

	// Released tasks rejoin the pool.
	again, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, claimed.ID, again.ID)

	t.Run("only claiming tasks release", func(t *testing.T) {
		err := svc.Release(ctx, "t-1")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("unknown task", func(t *testing.T) {
		err := svc.Release(ctx, "no-such-task")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestService_UpdateStatus_WorkerLifecycle(t *testing.T) {
	svc, client, bus := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskCompleted, "test-recorder", recorder.record)

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-1", TicketID: "T-1", PhaseID: testPhase,
		Description: "direct completion", ValidationEnabled: ptr(false),
	})
	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	_, err = svc.Finalize(ctx, claimed.ID, "agent-1", "")
	require.NoError(t, err)

	running, err := svc.UpdateStatus(ctx, "t-1", models.UpdateTaskStatusRequest{
		Status: "running", AgentID: "agent-1",
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, running.Status)
	require.NotNil(t, running.StartedAt)

	completed, err := svc.UpdateStatus(ctx, "t-1", models.UpdateTaskStatusRequest{
		Status:  "completed",
		AgentID: "agent-1",
		Result:  map[string]any{"files_changed": float64(3)},
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Equal(t, float64(3), completed.Result["files_changed"])

	done := recorder.byType(events.EventTypeTaskCompleted)
	require.Len(t, done, 1)
	payload, ok := done[0].Payload.(events.TaskCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, "t-1", payload.TaskID)
	assert.Equal(t, "agent-1", payload.AgentID)
}

func TestService_UpdateStatus_Rejections(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	t.Run("review states are not worker targets", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "t-any", models.UpdateTaskStatusRequest{Status: "under_review"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.UpdateStatus(ctx, "t-any", models.UpdateTaskStatusRequest{Status: "claiming"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "no-such-task", models.UpdateTaskStatusRequest{Status: "running"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("pending cannot jump to running", func(t *testing.T) {
		enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID: "t-pending", TicketID: "T-1", PhaseID: testPhase, Description: "still queued",
		})
		_, err := svc.UpdateStatus(ctx, "t-pending", models.UpdateTaskStatusRequest{Status: "running"})
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("validation enabled blocks direct completion", func(t *testing.T) {
		seedRunningTask(t, client, "t-validated", true)
		_, err := svc.UpdateStatus(ctx, "t-validated", models.UpdateTaskStatusRequest{Status: "completed"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("review owned by the orchestrator", func(t *testing.T) {
		seedRunningTask(t, client, "t-reviewed", true)
		err := client.Task.UpdateOneID("t-reviewed").SetStatus(task.StatusUnderReview).Exec(ctx)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, "t-reviewed", models.UpdateTaskStatusRequest{Status: "completed"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("terminal tasks stay put", func(t *testing.T) {
		seedRunningTask(t, client, "t-done", false)
		err := client.Task.UpdateOneID("t-done").SetStatus(task.StatusCompleted).Exec(ctx)
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, "t-done", models.UpdateTaskStatusRequest{Status: "failed"})
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})
}

// seedRunningTask inserts a task already in running state.
func seedRunningTask(t *testing.T, client *database.Client, id string, validated bool) {
	t.Helper()
	_, err := client.Task.Create().
		SetID(id).
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("running " + id).
		SetStatus(task.StatusRunning).
		SetAssignedAgentID("agent-1").
		SetValidationEnabled(validated).
		Save(context.Background())
	require.NoError(t, err)
}

func TestService_MarkFailed(t *testing.T) {
	svc, client, bus := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskFailed, "test-recorder", recorder.record)

	t.Run("retries remaining requeues", func(t *testing.T) {
		seedRunningTask(t, client, "t-retry", false)

		updated, err := svc.MarkFailed(ctx, "t-retry", "agent crashed")
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, updated.Status)
		assert.Equal(t, 1, updated.RetryCount)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "agent crashed", *updated.ErrorMessage)
		assert.Nil(t, updated.AssignedAgentID)
		assert.Nil(t, updated.SandboxID)
		assert.Nil(t, updated.ClaimedAt)
		// MEDIUM with one of three retries burned.
		assert.InDelta(t, 0.275-0.05/3.0, updated.Score, 0.01)

		failed := recorder.byType(events.EventTypeTaskFailed)
		require.Len(t, failed, 1)
		payload, ok := failed[0].Payload.(events.TaskFailedPayload)
		require.True(t, ok)
		assert.True(t, payload.WillRetry)
		assert.Equal(t, 1, payload.RetryCount)
	})

	t.Run("exhausted retries fail terminally", func(t *testing.T) {
		_, err := client.Task.Create().
			SetID("t-last").
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("last attempt").
			SetStatus(task.StatusRunning).
			SetRetryCount(2).
			SetMaxRetries(3).
			Save(ctx)
		require.NoError(t, err)

		updated, err := svc.MarkFailed(ctx, "t-last", "still broken")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
		assert.Equal(t, 3, updated.RetryCount)
		require.NotNil(t, updated.CompletedAt)

		failed := recorder.byType(events.EventTypeTaskFailed)
		payload, ok := failed[len(failed)-1].Payload.(events.TaskFailedPayload)
		require.True(t, ok)
		assert.False(t, payload.WillRetry)
	})

	t.Run("count already at the cap fails terminally", func(t *testing.T) {
		_, err := client.Task.Create().
			SetID("t-over").
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("over the cap").
			SetStatus(task.StatusRunning).
			SetRetryCount(3).
			SetMaxRetries(3).
			Save(ctx)
		require.NoError(t, err)

		updated, err := svc.MarkFailed(ctx, "t-over", "broken")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
	})

	t.Run("zero max retries never requeues", func(t *testing.T) {
		_, err := client.Task.Create().
			SetID("t-once").
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("single shot").
			SetStatus(task.StatusRunning).
			SetMaxRetries(0).
			Save(ctx)
		require.NoError(t, err)

		updated, err := svc.MarkFailed(ctx, "t-once", "broken")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, updated.Status)
	})

	t.Run("queued and terminal tasks are rejected", func(t *testing.T) {
		enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID: "t-queued", TicketID: "T-1", PhaseID: testPhase, Description: "still pending",
		})
		_, err := svc.MarkFailed(ctx, "t-queued", "nope")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)

		_, err = svc.MarkFailed(ctx, "t-last", "already failed")
		assert.ErrorIs(t, err, services.ErrIllegalTransition)

		_, err = svc.MarkFailed(ctx, "no-such-task", "missing")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestService_RecomputeScores(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	t.Run("aged task gains score", func(t *testing.T) {
		_, err := client.Task.Create().
			SetID("t-aged").
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("half an hour old").
			SetCreatedAt(time.Now().Add(-30 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		updated, err := svc.RecomputeScores(ctx, testPhase)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, updated, 1)

		aged, err := svc.Get(ctx, "t-aged")
		require.NoError(t, err)
		// 0.225 priority + 0.10 age + 0.05 retry headroom.
		assert.InDelta(t, 0.375, aged.Score, 0.01)
	})

	t.Run("dependents raise the blocker component", func(t *testing.T) {
		blocker := enqueueTask(t, svc, models.EnqueueTaskRequest{
			TaskID: "t-block", TicketID: "T-1", PhaseID: testPhase, Description: "blocks two",
		})
		assert.InDelta(t, 0.275, blocker.Score, 0.01)
		for _, id := range []string{"t-dep-1", "t-dep-2"} {
			enqueueTask(t, svc, models.EnqueueTaskRequest{
				TaskID: id, TicketID: "T-1", PhaseID: testPhase, Description: "waits on t-block",
				Dependencies: map[string][]string{"depends_on": {"t-block"}},
			})
		}

		_, err := svc.RecomputeScores(ctx, testPhase)
		require.NoError(t, err)

		rescored, err := svc.Get(ctx, "t-block")
		require.NoError(t, err)
		// Two dependents against a ceiling of ten adds 0.15*0.2.
		assert.InDelta(t, 0.305, rescored.Score, 0.01)
	})

	t.Run("phase filter leaves other phases alone", func(t *testing.T) {
		_, err := client.Task.Create().
			SetID("t-elsewhere").
			SetTicketID("T-1").
			SetPhaseID("PHASE_OTHER").
			SetDescription("stale in another phase").
			SetCreatedAt(time.Now().Add(-30 * time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.RecomputeScores(ctx, testPhase)
		require.NoError(t, err)

		other, err := svc.Get(ctx, "t-elsewhere")
		require.NoError(t, err)
		assert.Zero(t, other.Score)

		_, err = svc.RecomputeScores(ctx, "")
		require.NoError(t, err)

		other, err = svc.Get(ctx, "t-elsewhere")
		require.NoError(t, err)
		assert.Greater(t, other.Score, 0.0)
	})
}

func TestService_ReadyTasks(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "r-low", TicketID: "T-1", PhaseID: testPhase, Description: "low", Priority: ptr("LOW"),
	})
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "r-high", TicketID: "T-1", PhaseID: testPhase, Description: "high", Priority: ptr("HIGH"),
	})
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "r-crit", TicketID: "T-1", PhaseID: testPhase, Description: "critical", Priority: ptr("CRITICAL"),
	})

	ready, err := svc.ReadyTasks(ctx, testPhase, 2)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.Equal(t, "r-crit", ready[0].ID)
	assert.Equal(t, "r-high", ready[1].ID)

	// Claimed tasks drop out of the view.
	_, err = svc.NextReady(ctx, testPhase)
	require.NoError(t, err)

	ready, err = svc.ReadyTasks(ctx, testPhase, 0)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.Equal(t, "r-high", ready[0].ID)
	assert.Equal(t, "r-low", ready[1].ID)

	count, err := svc.PendingCount(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestService_ListByTicket(t *testing.T) {
	svc, client, _ := newTestService(t)
	createTestTicket(t, client.Client, "T-1")
	createTestTicket(t, client.Client, "T-2")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "l-1", TicketID: "T-1", PhaseID: testPhase, Description: "first",
	})
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "l-2", TicketID: "T-1", PhaseID: testPhase, Description: "second",
	})
	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "l-other", TicketID: "T-2", PhaseID: testPhase, Description: "elsewhere",
	})
	err := client.Task.UpdateOneID("l-2").SetStatus(task.StatusCompleted).Exec(ctx)
	require.NoError(t, err)

	all, err := svc.ListByTicket(ctx, "T-1", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "l-1", all[0].ID)
	assert.Equal(t, "l-2", all[1].ID)

	completed, err := svc.ListByTicket(ctx, "T-1", "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "l-2", completed[0].ID)

	missing, err := svc.Get(ctx, "no-such-task")
	assert.Nil(t, missing)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
