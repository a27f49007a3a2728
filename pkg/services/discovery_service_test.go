package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

// eventRecorder captures locally dispatched events for assertions. Bus
// dispatch is synchronous, so captured events are visible as soon as the
// service call returns.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.SystemEvent
}

func (r *eventRecorder) record(_ context.Context, event events.SystemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) byType(eventType string) []events.SystemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.SystemEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func TestDiscoveryService_Record(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher, bus := newTestPublisher(t, client)
	svc := NewDiscoveryService(client.Client, publisher)
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeDiscoveryRecorded, "test-recorder", recorder.record)

	createTestTicket(t, client.Client, "t-1")
	createTestTask(t, client.Client, "t-1", "task-1")

	t.Run("records a discovery and publishes it", func(t *testing.T) {
		discovery, err := svc.Record(ctx, models.RecordDiscoveryRequest{
			SourceTaskID:  "task-1",
			DiscoveryType: "missing_dependency",
			Description:   "auth module needs a session store",
			PriorityBoost: 0.1,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, discovery.ID)
		assert.Equal(t, "task-1", discovery.SourceTaskID)
		assert.Equal(t, taskdiscovery.ResolutionStatusOpen, discovery.ResolutionStatus)
		assert.InDelta(t, 0.1, discovery.PriorityBoost, 0.0001)

		captured := recorder.byType(events.EventTypeDiscoveryRecorded)
		require.Len(t, captured, 1)
		payload, ok := captured[0].Payload.(events.DiscoveryPayload)
		require.True(t, ok)
		assert.Equal(t, discovery.ID, payload.DiscoveryID)
		assert.Equal(t, "t-1", payload.TicketID)
		assert.Equal(t, "missing_dependency", payload.DiscoveryType)
	})

	t.Run("unknown source task", func(t *testing.T) {
		_, err := svc.Record(ctx, models.RecordDiscoveryRequest{
			SourceTaskID:  "task-missing",
			DiscoveryType: "bug",
			Description:   "x",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.Record(ctx, models.RecordDiscoveryRequest{DiscoveryType: "bug", Description: "x"})
		assert.True(t, IsValidationError(err))
		_, err = svc.Record(ctx, models.RecordDiscoveryRequest{SourceTaskID: "task-1", Description: "x"})
		assert.True(t, IsValidationError(err))
		_, err = svc.Record(ctx, models.RecordDiscoveryRequest{SourceTaskID: "task-1", DiscoveryType: "bug"})
		assert.True(t, IsValidationError(err))
	})
}

func TestDiscoveryService_AttachSpawnedTasks(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher, bus := newTestPublisher(t, client)
	svc := NewDiscoveryService(client.Client, publisher)
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeDiscoveryBranchCreated, "test-recorder", recorder.record)

	createTestTicket(t, client.Client, "t-1")
	createTestTask(t, client.Client, "t-1", "task-1")

	discovery, err := svc.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID:  "task-1",
		DiscoveryType: "scope_gap",
		Description:   "migration script missing",
	})
	require.NoError(t, err)

	require.NoError(t, svc.AttachSpawnedTasks(ctx, discovery.ID, []string{"task-2", "task-3"}))

	got, err := svc.Get(ctx, discovery.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"task-2", "task-3"}, got.SpawnedTaskIds)
	assert.Equal(t, taskdiscovery.ResolutionStatusInProgress, got.ResolutionStatus)

	// A second attach appends rather than replaces.
	require.NoError(t, svc.AttachSpawnedTasks(ctx, discovery.ID, []string{"task-4"}))
	got, err = svc.Get(ctx, discovery.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"task-2", "task-3", "task-4"}, got.SpawnedTaskIds)

	captured := recorder.byType(events.EventTypeDiscoveryBranchCreated)
	require.Len(t, captured, 2)
	payload, ok := captured[1].Payload.(events.DiscoveryPayload)
	require.True(t, ok)
	assert.Equal(t, []string{"task-2", "task-3", "task-4"}, payload.SpawnedTaskIDs)

	t.Run("empty task list", func(t *testing.T) {
		err := svc.AttachSpawnedTasks(ctx, discovery.ID, nil)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown discovery", func(t *testing.T) {
		assert.ErrorIs(t, svc.AttachSpawnedTasks(ctx, "d-missing", []string{"task-9"}), ErrNotFound)
	})
}

func TestDiscoveryService_Resolve(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher, bus := newTestPublisher(t, client)
	svc := NewDiscoveryService(client.Client, publisher)
	ctx := context.Background()

	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeDiscoveryResolved, "test-recorder", recorder.record)

	createTestTicket(t, client.Client, "t-1")
	createTestTask(t, client.Client, "t-1", "task-1")

	discovery, err := svc.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID:  "task-1",
		DiscoveryType: "bug",
		Description:   "flaky timeout in retry loop",
	})
	require.NoError(t, err)

	t.Run("rejects unknown resolution", func(t *testing.T) {
		err := svc.Resolve(ctx, discovery.ID, "done")
		assert.True(t, IsValidationError(err))
	})

	t.Run("resolves and publishes", func(t *testing.T) {
		require.NoError(t, svc.Resolve(ctx, discovery.ID, "resolved"))

		got, err := svc.Get(ctx, discovery.ID)
		require.NoError(t, err)
		assert.Equal(t, taskdiscovery.ResolutionStatusResolved, got.ResolutionStatus)

		captured := recorder.byType(events.EventTypeDiscoveryResolved)
		require.Len(t, captured, 1)
		payload, ok := captured[0].Payload.(events.DiscoveryPayload)
		require.True(t, ok)
		assert.Equal(t, "resolved", payload.Resolution)
	})

	t.Run("unknown discovery", func(t *testing.T) {
		assert.ErrorIs(t, svc.Resolve(ctx, "d-missing", "invalid"), ErrNotFound)
	})
}

func TestDiscoveryService_Listing(t *testing.T) {
	client := testdb.NewTestClient(t)
	publisher, _ := newTestPublisher(t, client)
	svc := NewDiscoveryService(client.Client, publisher)
	ctx := context.Background()

	createTestTicket(t, client.Client, "t-1")
	createTestTask(t, client.Client, "t-1", "task-1")
	createTestTask(t, client.Client, "t-1", "task-2")

	d1, err := svc.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID: "task-1", DiscoveryType: "bug", Description: "first",
	})
	require.NoError(t, err)
	d2, err := svc.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID: "task-1", DiscoveryType: "scope_gap", Description: "second",
	})
	require.NoError(t, err)
	d3, err := svc.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID: "task-2", DiscoveryType: "bug", Description: "third",
	})
	require.NoError(t, err)

	byTask, err := svc.ListBySourceTask(ctx, "task-1")
	require.NoError(t, err)
	require.Len(t, byTask, 2)
	assert.Equal(t, d1.ID, byTask[0].ID)
	assert.Equal(t, d2.ID, byTask[1].ID)

	// Resolving one removes it from the open set; in_progress stays open.
	require.NoError(t, svc.AttachSpawnedTasks(ctx, d2.ID, []string{"task-9"}))
	require.NoError(t, svc.Resolve(ctx, d1.ID, "invalid"))

	open, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, open, 2)
	ids := []string{open[0].ID, open[1].ID}
	assert.Contains(t, ids, d2.ID)
	assert.Contains(t, ids, d3.ID)
}
