package monitor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/monitoranomaly"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	testdb "github.com/droverhq/drover/test/database"
)

func TestMetricHistory(t *testing.T) {
	h := newMetricHistory(5)
	assert.Zero(t, h.len())
	assert.Zero(t, h.mean())

	for _, v := range []float64{1, 2, 3, 4, 5} {
		h.add(v)
	}
	assert.Equal(t, 5, h.len())
	assert.InDelta(t, 3.0, h.mean(), 1e-9)
	assert.InDelta(t, 1.4142, h.stddev(h.mean()), 1e-3)
}

func TestMetricHistory_WindowEviction(t *testing.T) {
	h := newMetricHistory(3)
	for _, v := range []float64{1, 2, 3, 4} {
		h.add(v)
	}
	assert.Equal(t, 3, h.len())
	assert.InDelta(t, 3.0, h.mean(), 1e-9, "the oldest value must fall out")
}

// eventRecorder captures bus deliveries.
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

func (r *eventRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

type fixture struct {
	monitor  *Monitor
	client   *database.Client
	recorder *eventRecorder
}

func newTestMonitor(t *testing.T, cfg *config.MonitorConfig) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	recorder := &eventRecorder{}
	bus.Subscribe(events.EventTypeMonitorAnomalyDetected, "test-recorder", recorder.record)
	publisher := events.NewPublisher(client.DB(), bus)

	if cfg == nil {
		cfg = &config.MonitorConfig{
			SampleInterval: time.Minute,
			WindowSize:     20,
			MinSamples:     4,
			WarningZScore:  2.0,
			CriticalZScore: 4.0,
		}
	}
	return &fixture{
		monitor:  NewMonitor(client, cfg, publisher),
		client:   client,
		recorder: recorder,
	}
}

// feed observes baseline values that must not trip detection.
func feed(t *testing.T, m *Monitor, metric string, values ...float64) {
	t.Helper()
	for _, v := range values {
		anomaly, err := m.Observe(context.Background(), Sample{MetricName: metric, Value: v})
		require.NoError(t, err)
		require.Nil(t, anomaly)
	}
}

func anomalyRows(t *testing.T, client *database.Client, metric string) []*ent.MonitorAnomaly {
	t.Helper()
	rows, err := client.MonitorAnomaly.Query().
		Where(monitoranomaly.MetricNameEQ(metric)).
		All(context.Background())
	require.NoError(t, err)
	return rows
}

func TestMonitor_Observe(t *testing.T) {
	f := newTestMonitor(t, nil)
	ctx := context.Background()

	t.Run("warning deviation", func(t *testing.T) {
		feed(t, f.monitor, "m.warn", 9, 11, 9, 11)
		anomaly, err := f.monitor.Observe(ctx, Sample{MetricName: "m.warn", Value: 13})
		require.NoError(t, err)
		require.NotNil(t, anomaly)
		assert.Equal(t, monitoranomaly.SeverityWarning, anomaly.Severity)
		assert.InDelta(t, 3.0, anomaly.Zscore, 1e-9)
		assert.InDelta(t, 10.0, anomaly.BaselineMean, 1e-9)
		assert.InDelta(t, 1.0, anomaly.BaselineStddev, 1e-9)
		assert.InDelta(t, 13.0, anomaly.Observed, 1e-9)
	})

	t.Run("critical deviation", func(t *testing.T) {
		feed(t, f.monitor, "m.crit", 9, 11, 9, 11)
		anomaly, err := f.monitor.Observe(ctx, Sample{MetricName: "m.crit", Value: 14})
		require.NoError(t, err)
		require.NotNil(t, anomaly)
		assert.Equal(t, monitoranomaly.SeverityCritical, anomaly.Severity)
		assert.InDelta(t, 4.0, anomaly.Zscore, 1e-9)
	})

	t.Run("negative deviation", func(t *testing.T) {
		feed(t, f.monitor, "m.neg", 9, 11, 9, 11)
		anomaly, err := f.monitor.Observe(ctx, Sample{MetricName: "m.neg", Value: 7})
		require.NoError(t, err)
		require.NotNil(t, anomaly)
		assert.Equal(t, monitoranomaly.SeverityWarning, anomaly.Severity)
		assert.InDelta(t, -3.0, anomaly.Zscore, 1e-9)
	})

	t.Run("within baseline", func(t *testing.T) {
		feed(t, f.monitor, "m.ok", 9, 11, 9, 11, 11)
		assert.Empty(t, anomalyRows(t, f.client, "m.ok"))
	})

	t.Run("zero variance is not scored", func(t *testing.T) {
		feed(t, f.monitor, "m.flat", 10, 10, 10, 10, 100)
		assert.Empty(t, anomalyRows(t, f.client, "m.flat"))
	})

	t.Run("too little history", func(t *testing.T) {
		feed(t, f.monitor, "m.few", 9, 11, 100)
		assert.Empty(t, anomalyRows(t, f.client, "m.few"))
	})

	t.Run("entity attribution", func(t *testing.T) {
		feed(t, f.monitor, "m.entity", 9, 11, 9, 11)
		anomaly, err := f.monitor.Observe(ctx, Sample{
			MetricName: "m.entity",
			Value:      13,
			EntityType: "ticket",
			EntityID:   "T-1",
		})
		require.NoError(t, err)
		require.NotNil(t, anomaly)
		require.NotNil(t, anomaly.EntityType)
		assert.Equal(t, "ticket", *anomaly.EntityType)
		require.NotNil(t, anomaly.EntityID)
		assert.Equal(t, "T-1", *anomaly.EntityID)
	})

	assert.Equal(t, 4, f.recorder.count(), "each anomaly publishes one event")

	f.recorder.mu.Lock()
	first := f.recorder.events[0]
	f.recorder.mu.Unlock()
	payload, ok := first.Payload.(events.AnomalyPayload)
	require.True(t, ok)
	assert.Equal(t, "m.warn", payload.MetricName)
	assert.Equal(t, "warning", payload.Severity)
	assert.InDelta(t, 3.0, payload.ZScore, 1e-9)
	assert.InDelta(t, 10.0, payload.BaselineMean, 1e-9)
}

func TestMonitor_TickUsesSources(t *testing.T) {
	f := newTestMonitor(t, nil)
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	seedTaskRows(t, f.client, "T-1", map[task.Status]int{
		task.StatusPending:   3,
		task.StatusClaiming:  1,
		task.StatusAssigned:  1,
		task.StatusRunning:   2,
		task.StatusCompleted: 1,
	})
	seedRun(t, f.client, "run-recent", "T-1", diagnosticrun.StatusFailed, time.Now().Add(-10*time.Minute))
	seedRun(t, f.client, "run-old", "T-1", diagnosticrun.StatusFailed, time.Now().Add(-2*time.Hour))
	seedRun(t, f.client, "run-ok", "T-1", diagnosticrun.StatusCompleted, time.Now().Add(-10*time.Minute))

	queueSamples, err := QueueDepthSource(f.client)(ctx)
	require.NoError(t, err)
	require.Len(t, queueSamples, 2)
	assert.Equal(t, Sample{MetricName: "queue.depth", Value: 4}, queueSamples[0])
	assert.Equal(t, Sample{MetricName: "queue.active", Value: 3}, queueSamples[1])

	diagSamples, err := DiagnosticFailureSource(f.client)(ctx)
	require.NoError(t, err)
	require.Len(t, diagSamples, 1)
	assert.Equal(t, Sample{MetricName: "diagnostic.failures", Value: 1}, diagSamples[0])

	f.monitor.Register("queue", QueueDepthSource(f.client))
	f.monitor.Register("diagnostic", DiagnosticFailureSource(f.client))
	f.monitor.Register("broken", func(context.Context) ([]Sample, error) {
		return nil, fmt.Errorf("source down")
	})

	f.monitor.tick(ctx)

	f.monitor.mu.Lock()
	defer f.monitor.mu.Unlock()
	require.Contains(t, f.monitor.histories, "queue.depth")
	assert.Equal(t, 1, f.monitor.histories["queue.depth"].len())
	require.Contains(t, f.monitor.histories, "diagnostic.failures")
	assert.Equal(t, 1, f.monitor.histories["diagnostic.failures"].len())
}

func TestMonitor_StartStop(t *testing.T) {
	f := newTestMonitor(t, &config.MonitorConfig{
		SampleInterval: 20 * time.Millisecond,
		WindowSize:     10,
		MinSamples:     3,
		WarningZScore:  2.0,
		CriticalZScore: 4.0,
	})

	var mu sync.Mutex
	calls := 0
	f.monitor.Register("counter", func(context.Context) ([]Sample, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return []Sample{{MetricName: "counter", Value: float64(calls)}}, nil
	})

	f.monitor.Start(context.Background())
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 2
	}, 5*time.Second, 10*time.Millisecond)

	f.monitor.Stop()
	f.monitor.Stop()
}

func seedTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
}

func seedTaskRows(t *testing.T, client *database.Client, ticketID string, counts map[task.Status]int) {
	t.Helper()
	i := 0
	for status, n := range counts {
		for j := 0; j < n; j++ {
			i++
			_, err := client.Task.Create().
				SetID(fmt.Sprintf("task-%d", i)).
				SetTicketID(ticketID).
				SetPhaseID("PHASE_IMPLEMENTATION").
				SetTaskType("implement_api").
				SetStatus(status).
				SetDescription("work item").
				Save(context.Background())
			require.NoError(t, err)
		}
	}
}

func seedRun(t *testing.T, client *database.Client, id, ticketID string, status diagnosticrun.Status, triggeredAt time.Time) {
	t.Helper()
	_, err := client.DiagnosticRun.Create().
		SetID(id).
		SetWorkflowID(ticketID).
		SetTrigger("stuck_workflow").
		SetStatus(status).
		SetTriggeredAt(triggeredAt).
		Save(context.Background())
	require.NoError(t, err)
}
