package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

func seedAgent(t *testing.T, client *ent.Client, id string, heartbeat time.Time) {
	t.Helper()
	_, err := client.Agent.Create().
		SetID(id).
		SetAgentType(agent.AgentTypeWorker).
		SetStatus(agent.StatusBusy).
		SetLastHeartbeat(heartbeat).
		Save(context.Background())
	require.NoError(t, err)
}

func TestLivenessSweeper_FailsStrandedWork(t *testing.T) {
	svc, client, bus := newTestService(t)
	agents := services.NewAgentService(client.Client)
	sweeper := NewLivenessSweeper(client.Client, agents, svc, svc.config)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskFailed, "test-recorder", recorder.record)

	seedAgent(t, client.Client, "dead-worker", time.Now().Add(-10*time.Minute))
	seedAgent(t, client.Client, "live-worker", time.Now())

	// One task with retries left, one without, both on the dead agent.
	retryable := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "retryable work",
	})
	terminal := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "terminal work",
		MaxRetries: ptr(0),
	})
	healthy := enqueueTask(t, svc, models.EnqueueTaskRequest{
		TicketID: "T-1", PhaseID: testPhase, Description: "healthy work",
	})

	assign := func(id, agentID string, status task.Status) {
		require.NoError(t, client.Task.UpdateOneID(id).
			SetStatus(status).
			SetAssignedAgentID(agentID).
			Exec(ctx))
	}
	assign(retryable.ID, "dead-worker", task.StatusRunning)
	assign(terminal.ID, "dead-worker", task.StatusAssigned)
	assign(healthy.ID, "live-worker", task.StatusRunning)

	swept, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	// Retries left: back to pending, unassigned, ready for reclaim.
	requeued, err := client.Task.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, requeued.Status)
	assert.Nil(t, requeued.AssignedAgentID)
	assert.Equal(t, 1, requeued.RetryCount)

	// Retries exhausted: terminal failure.
	failed, err := client.Task.Get(ctx, terminal.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "dead-worker")

	// The live agent's work is untouched.
	untouched, err := client.Task.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRunning, untouched.Status)

	deadAgent, err := client.Agent.Get(ctx, "dead-worker")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusFailed, deadAgent.Status)
	liveAgent, err := client.Agent.Get(ctx, "live-worker")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusBusy, liveAgent.Status)

	captured := recorder.byType(events.EventTypeTaskFailed)
	require.Len(t, captured, 2)
	willRetry := map[string]bool{}
	for _, e := range captured {
		payload, ok := e.Payload.(events.TaskFailedPayload)
		require.True(t, ok)
		willRetry[e.EntityID] = payload.WillRetry
	}
	assert.True(t, willRetry[retryable.ID])
	assert.False(t, willRetry[terminal.ID])
}

func TestLivenessSweeper_RepeatSweepIsIdempotent(t *testing.T) {
	svc, client, _ := newTestService(t)
	agents := services.NewAgentService(client.Client)
	sweeper := NewLivenessSweeper(client.Client, agents, svc, svc.config)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedAgent(t, client.Client, "dead-worker", time.Now().Add(-10*time.Minute))

	swept, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)

	// Failed agents drop out of the stale query.
	swept, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, swept)
}
