package e2e

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
)

func strPtr(s string) *string { return &s }

// ────────────────────────────────────────────────────────────
// Scoring and dispatch order
// ────────────────────────────────────────────────────────────

func TestScheduler_DeadlinePressureDrivesDispatchOrder(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.CreateTicket(t, "TICK-sched-order")

	// Same priority; only B is under deadline pressure, inside the SLA
	// urgency window, so its score must beat A's.
	taskA := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "refactor the settings page layout",
		Priority:    strPtr("LOW"),
	})
	deadline := time.Now().Add(10 * time.Minute)
	taskB := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "rotate the expiring signing certificate",
		Priority:    strPtr("LOW"),
		DeadlineAt:  &deadline,
	})

	// LOW with no deadline: 0.45*0.25 + 0.05*1 = 0.1625.
	// LOW due in 10min: (0.1625 + 0.15*(1-600/7200)) * 1.25 SLA boost.
	assert.InDelta(t, 0.1625, taskA.Score, 0.02)
	assert.InDelta(t, 0.3747, taskB.Score, 0.02)

	ready := app.Ready(t, testPhase, 10)
	require.Len(t, ready, 2)
	assert.Equal(t, taskB.ID, ready[0].ID)
	assert.Equal(t, taskA.ID, ready[1].ID)

	app.StartScheduler()

	require.Eventually(t, func() bool {
		return len(app.Provisioner.Spawns()) >= 2
	}, 10*time.Second, 25*time.Millisecond, "both tasks should be dispatched")

	spawns := app.Provisioner.Spawns()
	assert.Equal(t, taskB.ID, spawns[0].TaskID, "deadline-pressured task dispatches first")
	assert.Equal(t, taskA.ID, spawns[1].TaskID)
	assert.Equal(t, "worker", spawns[0].AgentType)

	dispatched := app.WaitForStatus(t, taskB.ID, "assigned")
	require.NotNil(t, dispatched.AssignedAgentID)
	assert.Equal(t, spawns[0].AgentID, *dispatched.AssignedAgentID)
	assert.NotNil(t, dispatched.SandboxID)
}

// ────────────────────────────────────────────────────────────
// Claim protocol
// ────────────────────────────────────────────────────────────

func TestQueue_ConcurrentClaimYieldsOneWinner(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.CreateTicket(t, "TICK-claim-race")
	created := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "wire the payment webhook retries",
	})

	const claimers = 2
	results := make([]*ent.Task, claimers)
	errs := make([]error, claimers)
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = app.Tasks.NextReady(context.Background(), testPhase)
		}(i)
	}
	wg.Wait()

	var winners, losers int
	for i := 0; i < claimers; i++ {
		switch {
		case errs[i] == nil:
			winners++
			assert.Equal(t, created.ID, results[i].ID)
			assert.Equal(t, task.StatusClaiming, results[i].Status)
		default:
			losers++
			assert.ErrorIs(t, errs[i], queue.ErrNoTasksAvailable)
		}
	}
	assert.Equal(t, 1, winners, "exactly one claimer wins the row")
	assert.Equal(t, 1, losers)
}

func TestQueue_StaleClaimReturnsToPending(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.CreateTicket(t, "TICK-claim-reap")
	created := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "index the audit log by actor",
	})

	ctx := context.Background()
	claimed, err := app.Tasks.NextReady(ctx, testPhase)
	require.NoError(t, err)
	require.Equal(t, created.ID, claimed.ID)

	// Never finalized: the claimer died. Queue is empty meanwhile.
	_, err = app.Tasks.NextReady(ctx, testPhase)
	require.ErrorIs(t, err, queue.ErrNoTasksAvailable)

	// ClaimTTL is 1s in the test config.
	time.Sleep(app.Config.Queue.ClaimTTL + 100*time.Millisecond)
	reaped, err := app.Reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	recovered := app.Task(t, created.ID)
	assert.Equal(t, task.StatusPending, recovered.Status)
	assert.Nil(t, recovered.ClaimedAt)

	// The reaped task is claimable again.
	reclaimed, err := app.Tasks.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, created.ID, reclaimed.ID)
}

// ────────────────────────────────────────────────────────────
// Enqueue-time dedup gate
// ────────────────────────────────────────────────────────────

func TestQueue_ExactDuplicateEnqueueIsSkipped(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.CreateTicket(t, "TICK-dedup-exact")

	first := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "Add rate limiting to the login endpoint",
	})

	// Same text modulo case and whitespace: phase-1 hash match, no
	// second row, HTTP 200 instead of 201.
	resp := decode[struct {
		Task  *ent.Task `json:"task"`
		Dedup *struct {
			Action        string `json:"action"`
			IsDuplicate   bool   `json:"is_duplicate"`
			MatchedTaskID string `json:"matched_task_id"`
		} `json:"dedup"`
	}](t, app.postJSON(t, "/api/v1/tasks", models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "  add RATE limiting to the login   endpoint ",
	}, 200))

	assert.Nil(t, resp.Task)
	require.NotNil(t, resp.Dedup)
	assert.Equal(t, "skip", resp.Dedup.Action)
	assert.True(t, resp.Dedup.IsDuplicate)
	assert.Equal(t, first.ID, resp.Dedup.MatchedTaskID)

	found := app.Recorder.ByType("dedup.duplicate_found")
	require.NotEmpty(t, found)
	assert.Equal(t, first.ID, found[0].EntityID)

	// SkipDedup bypasses the gate even for identical text.
	forced := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "Add rate limiting to the login endpoint",
		SkipDedup:   true,
	})
	assert.NotEqual(t, first.ID, forced.ID)
}
