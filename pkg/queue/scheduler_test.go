package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/ownership"
)

// fakeSpawner records spawn calls and can be told to fail.
type fakeSpawner struct {
	mu      sync.Mutex
	spawned []string
	err     error
}

func (f *fakeSpawner) Spawn(_ context.Context, t *ent.Task) (*SpawnedAgent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.spawned = append(f.spawned, t.ID)
	return &SpawnedAgent{AgentID: "agent-" + t.ID, SandboxID: "sandbox-" + t.ID}, nil
}

func (f *fakeSpawner) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spawned...)
}

func newTestScheduler(t *testing.T, ownershipMode string) (*Scheduler, *Service, *database.Client, *fakeSpawner) {
	t.Helper()
	svc, client, _ := newTestService(t)
	cfg := config.DefaultQueueConfig()
	cfg.Phases = []string{testPhase}
	spawner := &fakeSpawner{}
	validator := ownership.NewValidator(client.Client, &config.OwnershipConfig{Mode: ownershipMode})
	reaper := NewClaimReaper(client.Client, cfg, svc.publisher)
	sched := NewScheduler(svc, validator, spawner, reaper, cfg)
	return sched, svc, client, spawner
}

func TestScheduler_DispatchOne(t *testing.T) {
	sched, svc, client, spawner := newTestScheduler(t, config.OwnershipLenient)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-1", TicketID: "T-1", PhaseID: testPhase, Description: "dispatch me",
	})

	require.NoError(t, sched.dispatchOne(ctx, testPhase))

	dispatched, err := svc.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, dispatched.Status)
	require.NotNil(t, dispatched.AssignedAgentID)
	assert.Equal(t, "agent-t-1", *dispatched.AssignedAgentID)
	require.NotNil(t, dispatched.SandboxID)
	assert.Equal(t, "sandbox-t-1", *dispatched.SandboxID)
	assert.Equal(t, []string{"t-1"}, spawner.calls())

	err = sched.dispatchOne(ctx, testPhase)
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestScheduler_SpawnFailureReleasesClaim(t *testing.T) {
	sched, svc, client, spawner := newTestScheduler(t, config.OwnershipLenient)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()
	spawner.err = errors.New("gateway unavailable")

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-1", TicketID: "T-1", PhaseID: testPhase, Description: "cannot spawn",
	})

	err := sched.dispatchOne(ctx, testPhase)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to spawn worker")

	// The claim is rolled back so another cycle can retry.
	released, err := svc.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, released.Status)
	assert.Nil(t, released.ClaimedAt)
}

func TestScheduler_StrictOwnershipConflictReleases(t *testing.T) {
	sched, svc, client, spawner := newTestScheduler(t, config.OwnershipStrict)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	_, err := client.Task.Create().
		SetID("t-sibling").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("holds the auth tree").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID("agent-0").
		SetOwnedFiles([]string{"src/auth/**"}).
		Save(ctx)
	require.NoError(t, err)

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-conflicting", TicketID: "T-1", PhaseID: testPhase,
		Description: "touches a file inside the held tree",
		OwnedFiles:  []string{"src/auth/jwt.py"},
	})

	err = sched.dispatchOne(ctx, testPhase)
	assert.ErrorIs(t, err, errClaimReleased)
	assert.Empty(t, spawner.calls())

	blocked, err := svc.Get(ctx, "t-conflicting")
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, blocked.Status)

	// Once the sibling finishes the conflict clears.
	err = client.Task.UpdateOneID("t-sibling").SetStatus(task.StatusCompleted).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, sched.dispatchOne(ctx, testPhase))
	assert.Equal(t, []string{"t-conflicting"}, spawner.calls())
}

func TestScheduler_LenientOwnershipDispatchesAnyway(t *testing.T) {
	sched, svc, client, spawner := newTestScheduler(t, config.OwnershipLenient)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	_, err := client.Task.Create().
		SetID("t-sibling").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("holds the auth tree").
		SetStatus(task.StatusRunning).
		SetAssignedAgentID("agent-0").
		SetOwnedFiles([]string{"src/auth/**"}).
		Save(ctx)
	require.NoError(t, err)

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-overlapping", TicketID: "T-1", PhaseID: testPhase,
		Description: "overlaps but is only warned about",
		OwnedFiles:  []string{"src/auth/jwt.py"},
	})

	require.NoError(t, sched.dispatchOne(ctx, testPhase))
	assert.Equal(t, []string{"t-overlapping"}, spawner.calls())
}

func TestScheduler_StartStop(t *testing.T) {
	sched, svc, client, spawner := newTestScheduler(t, config.OwnershipLenient)
	sched.config.PollInterval = 10 * time.Millisecond
	sched.config.PollIntervalJitter = 0
	sched.config.ReaperInterval = 50 * time.Millisecond
	sched.config.RecomputeInterval = 50 * time.Millisecond
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	enqueueTask(t, svc, models.EnqueueTaskRequest{
		TaskID: "t-loop", TicketID: "T-1", PhaseID: testPhase, Description: "picked up by the loop",
	})

	require.NoError(t, sched.Start(ctx))
	// Duplicate Start is a no-op.
	require.NoError(t, sched.Start(ctx))

	require.Eventually(t, func() bool {
		tk, err := svc.Get(ctx, "t-loop")
		return err == nil && tk.Status == task.StatusAssigned
	}, 5*time.Second, 20*time.Millisecond)

	health := sched.Health(ctx)
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Zero(t, health.QueueDepth)
	require.Len(t, health.Loops, 1)
	assert.Equal(t, testPhase, health.Loops[0].Phase)
	assert.GreaterOrEqual(t, health.Loops[0].TasksDispatched, 1)
	assert.False(t, health.Loops[0].LastActivity.IsZero())

	sched.Stop()
	// Stop is idempotent.
	sched.Stop()

	assert.Equal(t, []string{"t-loop"}, spawner.calls())
}
