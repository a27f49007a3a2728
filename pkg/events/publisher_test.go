package events

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// The publisher only touches the events table, so tests create just that
// instead of dragging in the full schema.
const eventsTableDDL = `
CREATE TABLE IF NOT EXISTS events (
	id          BIGSERIAL PRIMARY KEY,
	event_type  VARCHAR NOT NULL,
	entity_type VARCHAR NOT NULL,
	entity_id   VARCHAR NOT NULL,
	channel     VARCHAR NOT NULL,
	payload     JSONB NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// newEventsTestDB returns a database with the events table, plus the conn
// string for LISTEN connections. Uses CI_DATABASE_URL when set, otherwise
// a throwaway container.
func newEventsTestDB(t *testing.T) (*stdsql.DB, string) {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)
		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, eventsTableDDL)
	require.NoError(t, err)

	return db, connStr
}

func TestNotifyEnvelope(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		result, err := notifyEnvelope(SystemEvent{
			DBEventID:  3,
			Type:       EventTypeTaskEnqueued,
			EntityType: EntityTypeTask,
			EntityID:   "task-1",
			Payload:    TaskEnqueuedPayload{TaskID: "task-1", TicketID: "T-1", Score: 0.5},
		})
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeTaskEnqueued)
		assert.Contains(t, result, `"score":0.5`)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		result, err := notifyEnvelope(SystemEvent{
			DBEventID:  9,
			Type:       EventTypeValidationFailed,
			EntityType: EntityTypeTask,
			EntityID:   "task-2",
			Payload: ValidationPayload{
				TaskID:   "task-2",
				TicketID: "T-1",
				Feedback: strings.Repeat("x", 9000),
			},
		})
		require.NoError(t, err)
		assert.Less(t, len(result), 8000)

		var stub SystemEvent
		require.NoError(t, json.Unmarshal([]byte(result), &stub))
		assert.True(t, stub.Truncated)
		assert.Nil(t, stub.Payload)
		// Routing fields survive so consumers can fetch the full row.
		assert.Equal(t, int64(9), stub.DBEventID)
		assert.Equal(t, EventTypeValidationFailed, stub.Type)
		assert.Equal(t, "task-2", stub.EntityID)
	})
}

func TestPublisher_PersistAndDispatch(t *testing.T) {
	db, _ := newEventsTestDB(t)
	bus := NewBus(time.Second)
	pub := NewPublisher(db, bus)

	var got []SystemEvent
	bus.Subscribe(EventTypeTaskEnqueued, "recorder", func(ctx context.Context, event SystemEvent) error {
		got = append(got, event)
		return nil
	})

	err := pub.PublishTaskEnqueued(context.Background(), TaskEnqueuedPayload{
		TaskID:   "task-1",
		TicketID: "TICKET-7",
		PhaseID:  "PHASE_IMPLEMENTATION",
		TaskType: "general",
		Priority: "HIGH",
		Score:    0.91,
	})
	require.NoError(t, err)

	// Local dispatch is synchronous, after commit.
	require.Len(t, got, 1)
	assert.Equal(t, EventTypeTaskEnqueued, got[0].Type)
	assert.Equal(t, "task-1", got[0].EntityID)
	assert.Positive(t, got[0].DBEventID)
	payload, ok := got[0].Payload.(TaskEnqueuedPayload)
	require.True(t, ok)
	assert.Equal(t, 0.91, payload.Score)

	// Row persisted with routing columns and the full envelope.
	var eventType, channel string
	var storedPayload []byte
	err = db.QueryRowContext(context.Background(),
		`SELECT event_type, channel, payload FROM events WHERE entity_id = $1`,
		"task-1").Scan(&eventType, &channel, &storedPayload)
	require.NoError(t, err)
	assert.Equal(t, EventTypeTaskEnqueued, eventType)
	assert.Equal(t, "ticket:TICKET-7", channel)

	var stored SystemEvent
	require.NoError(t, json.Unmarshal(storedPayload, &stored))
	assert.Equal(t, pub.Origin(), stored.Origin)
	assert.NotEmpty(t, stored.Timestamp)
}

func TestPublisher_PerEntityOrderPreserved(t *testing.T) {
	db, _ := newEventsTestDB(t)
	bus := NewBus(time.Second)
	pub := NewPublisher(db, bus)
	ctx := context.Background()

	var seen []string
	bus.Subscribe(EventTypeTaskStatusChanged, "recorder", func(ctx context.Context, event SystemEvent) error {
		p := event.Payload.(TaskStatusChangedPayload)
		seen = append(seen, p.To)
		return nil
	})

	for _, to := range []string{"claiming", "assigned", "running"} {
		require.NoError(t, pub.PublishTaskStatusChanged(ctx, TaskStatusChangedPayload{
			TaskID:   "task-ord",
			TicketID: "TICKET-ord",
			From:     "pending",
			To:       to,
		}))
	}

	// Handler order matches publish order for one entity.
	assert.Equal(t, []string{"claiming", "assigned", "running"}, seen)

	// Durable log ids are monotonic in the same order.
	rows, err := db.QueryContext(ctx,
		`SELECT payload->'payload'->>'to' FROM events WHERE entity_id = $1 ORDER BY id`,
		"task-ord")
	require.NoError(t, err)
	defer rows.Close()

	var persisted []string
	for rows.Next() {
		var to string
		require.NoError(t, rows.Scan(&to))
		persisted = append(persisted, to)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"claiming", "assigned", "running"}, persisted)
}

func TestPublisher_ListenerRoundtrip(t *testing.T) {
	db, connStr := newEventsTestDB(t)
	ctx := context.Background()

	pubBus := NewBus(time.Second)
	pub := NewPublisher(db, pubBus)

	// A second process: its own bus, fed by LISTEN, different origin.
	remoteBus := NewBus(time.Second)
	received := make(chan SystemEvent, 4)
	remoteBus.Subscribe(EventTypeMonitorAnomalyDetected, "remote", func(ctx context.Context, event SystemEvent) error {
		received <- event
		return nil
	})

	listener := NewNotifyListener(connStr, remoteBus, "some-other-origin")
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	require.NoError(t, listener.Subscribe(ctx, KernelChannel))

	require.NoError(t, pub.PublishAnomalyDetected(ctx, AnomalyPayload{
		AnomalyID:    "anom-1",
		MetricName:   "queue_depth",
		Observed:     42,
		BaselineMean: 5,
		ZScore:       6.1,
		Severity:     "warning",
	}))

	select {
	case evt := <-received:
		assert.Equal(t, EventTypeMonitorAnomalyDetected, evt.Type)
		assert.Equal(t, "anom-1", evt.EntityID)
		assert.Positive(t, evt.DBEventID)
		payload, ok := evt.Payload.(map[string]any)
		require.True(t, ok, "payload decodes as a map after the wire round-trip")
		assert.Equal(t, "queue_depth", payload["metric_name"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for NOTIFY delivery")
	}
}

func TestPublisher_ListenerDropsOwnEvents(t *testing.T) {
	db, connStr := newEventsTestDB(t)
	ctx := context.Background()

	bus := NewBus(time.Second)
	pub := NewPublisher(db, bus)

	received := make(chan SystemEvent, 4)
	bus.Subscribe(EventTypeDuplicateFound, "recorder", func(ctx context.Context, event SystemEvent) error {
		received <- event
		return nil
	})

	// Listener wired with the publisher's own origin: its NOTIFYs must be
	// dropped or every local event would be dispatched twice.
	listener := NewNotifyListener(connStr, bus, pub.Origin())
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	require.NoError(t, listener.Subscribe(ctx, KernelChannel))

	require.NoError(t, pub.PublishDuplicateFound(ctx, DuplicateFoundPayload{
		Scope:      "task",
		MatchID:    "task-1",
		Similarity: 0.93,
		Action:     "skip",
	}))

	select {
	case <-received:
		// The synchronous local dispatch.
	case <-time.After(2 * time.Second):
		t.Fatal("missing local dispatch")
	}

	select {
	case <-received:
		t.Fatal("NOTIFY round-trip dispatched a local event twice")
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestPublisher_OversizedEventTruncatedOnWire(t *testing.T) {
	db, connStr := newEventsTestDB(t)
	ctx := context.Background()

	pub := NewPublisher(db, NewBus(time.Second))

	remoteBus := NewBus(time.Second)
	received := make(chan SystemEvent, 1)
	remoteBus.Subscribe(EventTypeValidationFailed, "remote", func(ctx context.Context, event SystemEvent) error {
		received <- event
		return nil
	})

	listener := NewNotifyListener(connStr, remoteBus, "some-other-origin")
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	require.NoError(t, listener.Subscribe(ctx, TicketChannel("TICKET-big")))

	bigFeedback := strings.Repeat("details ", 2000) // ~16KB
	require.NoError(t, pub.PublishValidationFailed(ctx, ValidationPayload{
		TaskID:    "task-big",
		TicketID:  "TICKET-big",
		Iteration: 1,
		Feedback:  bigFeedback,
	}))

	select {
	case evt := <-received:
		assert.True(t, evt.Truncated)
		assert.Nil(t, evt.Payload)
		require.Positive(t, evt.DBEventID)

		// The durable row still carries the complete event.
		var storedPayload []byte
		err := db.QueryRowContext(ctx,
			`SELECT payload FROM events WHERE id = $1`, evt.DBEventID).Scan(&storedPayload)
		require.NoError(t, err)
		var stored SystemEvent
		require.NoError(t, json.Unmarshal(storedPayload, &stored))
		assert.False(t, stored.Truncated)
		full, ok := stored.Payload.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, bigFeedback, full["feedback"])
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for truncated NOTIFY delivery")
	}
}
