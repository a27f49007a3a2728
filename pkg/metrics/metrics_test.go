package metrics

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/events"
	testdb "github.com/droverhq/drover/test/database"
)

func newTestMetrics(t *testing.T) (*Metrics, *events.Bus) {
	t.Helper()
	m := New(prometheus.NewRegistry())
	bus := events.NewBus(5 * time.Second)
	m.Attach(bus)
	return m, bus
}

func TestMetrics_Observe(t *testing.T) {
	m, bus := newTestMetrics(t)
	ctx := context.Background()

	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeTaskEnqueued,
		EntityID: "task-1",
		Payload:  events.TaskEnqueuedPayload{TaskID: "task-1"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeTaskStatusChanged,
		EntityID: "task-1",
		Payload:  events.TaskStatusChangedPayload{TaskID: "task-1", From: "pending", To: "claiming"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeTaskStatusChanged,
		EntityID: "task-1",
		Payload:  events.TaskStatusChangedPayload{TaskID: "task-1", From: "claiming", To: "assigned"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeValidationPassed,
		EntityID: "task-1",
		Payload:  events.ValidationPayload{TaskID: "task-1", Passed: true},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeValidationFailed,
		EntityID: "task-2",
		Payload:  events.ValidationPayload{TaskID: "task-2"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeValidationFailed,
		EntityID: "task-3",
		Payload:  events.ValidationPayload{TaskID: "task-3"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeDiagnosticCompleted,
		EntityID: "run-1",
		Payload:  events.DiagnosticPayload{RunID: "run-1", Status: "skipped"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeDiagnosticFailed,
		EntityID: "run-2",
		Payload:  events.DiagnosticPayload{RunID: "run-2", Error: "llm timeout"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeMonitorAnomalyDetected,
		EntityID: "a-1",
		Payload:  events.AnomalyPayload{AnomalyID: "a-1", Severity: "critical"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeDuplicateFound,
		EntityID: "task-4",
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeMemoryStored,
		EntityID: "mem-1",
		Payload:  events.MemoryStoredPayload{MemoryID: "mem-1"},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.enqueued))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("claiming")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("assigned")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reviews.WithLabelValues("passed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.reviews.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.diagnosticRuns.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.diagnosticRuns.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.anomalies.WithLabelValues("critical")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.duplicates))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.memories))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.events.WithLabelValues(events.EventTypeTaskStatusChanged)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(events.EventTypeMemoryStored)))
}

func TestMetrics_ObserveRemotePayloads(t *testing.T) {
	// After a NOTIFY round-trip the payload arrives as a decoded map.
	m, bus := newTestMetrics(t)
	ctx := context.Background()

	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeTaskStatusChanged,
		EntityID: "task-1",
		Origin:   "other-kernel",
		Payload:  map[string]any{"task_id": "task-1", "from": "running", "to": "completed"},
	})
	bus.Dispatch(ctx, events.SystemEvent{
		Type:     events.EventTypeMonitorAnomalyDetected,
		EntityID: "a-1",
		Origin:   "other-kernel",
		Payload:  map[string]any{"severity": "warning"},
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.anomalies.WithLabelValues("warning")))
}

func TestMetrics_ObservePayloadWithoutLabel(t *testing.T) {
	m, bus := newTestMetrics(t)

	// A truncated NOTIFY stub has no payload; the event still counts, the
	// labeled counter does not.
	bus.Dispatch(context.Background(), events.SystemEvent{
		Type:      events.EventTypeTaskStatusChanged,
		EntityID:  "task-1",
		Truncated: true,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.events.WithLabelValues(events.EventTypeTaskStatusChanged)))
	assert.Zero(t, testutil.CollectAndCount(m.transitions))
}

func TestQueueDepthCollector(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Client.Ticket.Create().
		SetID("T-1").
		SetTitle("ticket T-1").
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(ctx)
	require.NoError(t, err)

	statuses := []task.Status{
		task.StatusPending, task.StatusPending, task.StatusRunning, task.StatusCompleted,
	}
	for i, status := range statuses {
		_, err := client.Client.Task.Create().
			SetID(fmt.Sprintf("task-%d", i)).
			SetTicketID("T-1").
			SetPhaseID("PHASE_IMPLEMENTATION").
			SetDescription("queued work").
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
	}

	collector := NewQueueDepthCollector(client.Client)

	expected := `
# HELP drover_queue_tasks Tasks currently in the queue, by status.
# TYPE drover_queue_tasks gauge
drover_queue_tasks{status="completed"} 1
drover_queue_tasks{status="pending"} 2
drover_queue_tasks{status="running"} 1
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected), "drover_queue_tasks"))
}
