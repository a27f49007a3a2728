package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	testdb "github.com/droverhq/drover/test/database"
)

// createTestEvent appends a log row directly, bypassing the publisher.
func createTestEvent(t *testing.T, client *ent.Client, channel, eventType string, createdAt time.Time) *ent.Event {
	t.Helper()
	e, err := client.Event.Create().
		SetEventType(eventType).
		SetEntityType("task").
		SetEntityID("task-1").
		SetChannel(channel).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return e
}

func TestEventService_GetEventsSince(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	now := time.Now()
	e1 := createTestEvent(t, client.Client, "ticket:t-1", "task.enqueued", now)
	e2 := createTestEvent(t, client.Client, "ticket:t-1", "task.status.changed", now)
	e3 := createTestEvent(t, client.Client, "ticket:t-1", "task.completed", now)
	createTestEvent(t, client.Client, "ticket:t-2", "task.enqueued", now)

	t.Run("returns the channel's events in insertion order", func(t *testing.T) {
		got, err := svc.GetEventsSince(ctx, "ticket:t-1", 0, 0)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, e1.ID, got[0].ID)
		assert.Equal(t, e2.ID, got[1].ID)
		assert.Equal(t, e3.ID, got[2].ID)
	})

	t.Run("sinceID excludes earlier rows", func(t *testing.T) {
		got, err := svc.GetEventsSince(ctx, "ticket:t-1", e1.ID, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, e2.ID, got[0].ID)
	})

	t.Run("limit caps the page", func(t *testing.T) {
		got, err := svc.GetEventsSince(ctx, "ticket:t-1", 0, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, e1.ID, got[0].ID)
		assert.Equal(t, e2.ID, got[1].ID)
	})

	t.Run("unknown channel is empty", func(t *testing.T) {
		got, err := svc.GetEventsSince(ctx, "ticket:t-9", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEventService_LatestEventAt(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	t.Run("nil for a silent channel", func(t *testing.T) {
		at, err := svc.LatestEventAt(ctx, "ticket:silent")
		require.NoError(t, err)
		assert.Nil(t, at)
	})

	t.Run("returns the newest row's timestamp", func(t *testing.T) {
		old := time.Now().Add(-1 * time.Hour)
		newer := time.Now().Add(-1 * time.Minute)
		createTestEvent(t, client.Client, "ticket:t-1", "task.enqueued", old)
		createTestEvent(t, client.Client, "ticket:t-1", "task.completed", newer)

		at, err := svc.LatestEventAt(ctx, "ticket:t-1")
		require.NoError(t, err)
		require.NotNil(t, at)
		assert.WithinDuration(t, newer, *at, time.Second)
	})
}

func TestEventService_CleanupEventsOlderThan(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewEventService(client.Client)
	ctx := context.Background()

	now := time.Now()
	createTestEvent(t, client.Client, "ticket:t-1", "task.enqueued", now.Add(-72*time.Hour))
	createTestEvent(t, client.Client, "ticket:t-1", "task.completed", now.Add(-48*time.Hour))
	keep := createTestEvent(t, client.Client, "ticket:t-1", "task.status.changed", now)

	deleted, err := svc.CleanupEventsOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := svc.GetEventsSince(ctx, "ticket:t-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, keep.ID, remaining[0].ID)

	t.Run("noop when nothing is old enough", func(t *testing.T) {
		deleted, err := svc.CleanupEventsOlderThan(ctx, now.Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
