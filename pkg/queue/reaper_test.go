package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/events"
	testdb "github.com/droverhq/drover/test/database"
)

func seedClaim(t *testing.T, client *ent.Client, id string, claimedAt time.Time) {
	t.Helper()
	_, err := client.Task.Create().
		SetID(id).
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("claimed " + id).
		SetStatus(task.StatusClaiming).
		SetClaimedAt(claimedAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestClaimReaper_Sweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	reaper := NewClaimReaper(client.Client, config.DefaultQueueConfig(), events.NewPublisher(client.DB(), bus))
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeTaskStatusChanged, "test-recorder", recorder.record)

	seedClaim(t, client.Client, "stale-1", time.Now().Add(-2*time.Minute))
	seedClaim(t, client.Client, "stale-2", time.Now().Add(-90*time.Second))
	seedClaim(t, client.Client, "fresh", time.Now().Add(-5*time.Second))

	// An assigned task with an old claim timestamp is not the reaper's
	// business.
	_, err := client.Task.Create().
		SetID("dispatched").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("already dispatched").
		SetStatus(task.StatusAssigned).
		SetAssignedAgentID("agent-1").
		SetClaimedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	reclaimed, err := reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reclaimed)

	for _, id := range []string{"stale-1", "stale-2"} {
		tk, err := client.Task.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, tk.Status, "task %s", id)
		assert.Nil(t, tk.ClaimedAt, "task %s", id)
	}

	fresh, err := client.Task.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, task.StatusClaiming, fresh.Status)

	dispatched, err := client.Task.Get(ctx, "dispatched")
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, dispatched.Status)

	expired := recorder.byType(events.EventTypeTaskStatusChanged)
	require.Len(t, expired, 2)
	payload, ok := expired[0].Payload.(events.TaskStatusChangedPayload)
	require.True(t, ok)
	assert.Equal(t, "claiming", payload.From)
	assert.Equal(t, "pending", payload.To)
	assert.Equal(t, "claim expired", payload.Reason)

	stats := reaper.Stats()
	assert.Equal(t, 2, stats.ClaimsReclaimed)
	assert.False(t, stats.LastScan.IsZero())

	// Nothing left to reclaim.
	reclaimed, err = reaper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, reclaimed)
}

func TestClaimReaper_ReclaimedTaskIsClaimable(t *testing.T) {
	svc, client, _ := newTestService(t)
	reaper := NewClaimReaper(client.Client, config.DefaultQueueConfig(), svc.publisher)
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedClaim(t, client.Client, "abandoned", time.Now().Add(-2*time.Minute))

	reclaimed, err := reaper.Sweep(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, reclaimed)

	claimed, err := svc.NextReady(ctx, testPhase)
	require.NoError(t, err)
	assert.Equal(t, "abandoned", claimed.ID)
}

func TestClaimReaper_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	cfg := config.DefaultQueueConfig()
	cfg.ClaimTTL = 50 * time.Millisecond
	cfg.ReaperInterval = 20 * time.Millisecond
	reaper := NewClaimReaper(client.Client, cfg, events.NewPublisher(client.DB(), bus))
	createTestTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedClaim(t, client.Client, "short-ttl", time.Now())

	reaper.Start(ctx)
	defer reaper.Stop()

	require.Eventually(t, func() bool {
		tk, err := client.Task.Get(ctx, "short-ttl")
		return err == nil && tk.Status == task.StatusPending
	}, 3*time.Second, 25*time.Millisecond)

	reaper.Stop()
	// Stop is idempotent.
	reaper.Stop()
}
