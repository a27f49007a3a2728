// Package metrics exposes the kernel's Prometheus collectors. Activity
// counters feed off the event bus, so instrumented packages never see
// prometheus types; queue depth is read from the database at scrape time.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/droverhq/drover/pkg/events"
)

const namespace = "drover"

// Metrics holds the kernel's activity counters.
type Metrics struct {
	events          *prometheus.CounterVec
	enqueued        prometheus.Counter
	transitions     *prometheus.CounterVec
	reviews         *prometheus.CounterVec
	diagnosticRuns  *prometheus.CounterVec
	duplicates      prometheus.Counter
	memories        prometheus.Counter
	anomalies       *prometheus.CounterVec
	handlerTimeouts prometheus.Counter
}

// New creates the activity counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Events delivered to the in-process bus, by type.",
		}, []string{"event_type"}),
		enqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "tasks_enqueued_total",
			Help:      "Tasks accepted into the queue.",
		}),
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "queue",
			Name:      "task_transitions_total",
			Help:      "Persisted task status transitions, by destination status.",
		}, []string{"to"}),
		reviews: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "validation",
			Name:      "reviews_total",
			Help:      "Finalized validation reviews, by outcome.",
		}, []string{"outcome"}),
		diagnosticRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "diagnostic",
			Name:      "runs_total",
			Help:      "Diagnostic runs reaching a terminal status.",
		}, []string{"status"}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dedup",
			Name:      "duplicates_total",
			Help:      "Candidates rejected as semantic duplicates.",
		}),
		memories: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ace",
			Name:      "memories_stored_total",
			Help:      "Execution records captured by the learning pipeline.",
		}),
		anomalies: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "anomalies_total",
			Help:      "Metric anomalies detected, by severity.",
		}, []string{"severity"}),
		handlerTimeouts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bus",
			Name:      "handler_timeouts_total",
			Help:      "Bus handlers abandoned after exceeding their deadline.",
		}),
	}
}

// observedEvents is every event type the counters feed off.
var observedEvents = []string{
	events.EventTypeTaskEnqueued,
	events.EventTypeTaskStatusChanged,
	events.EventTypeTaskCompleted,
	events.EventTypeTaskFailed,
	events.EventTypeValidationStarted,
	events.EventTypeValidationReviewSubmitted,
	events.EventTypeValidationPassed,
	events.EventTypeValidationFailed,
	events.EventTypeDiagnosticTriggered,
	events.EventTypeDiagnosticCompleted,
	events.EventTypeDiagnosticFailed,
	events.EventTypeMemoryStored,
	events.EventTypeMemoryPatternLearned,
	events.EventTypeACEWorkflowCompleted,
	events.EventTypeDiscoveryRecorded,
	events.EventTypeDiscoveryBranchCreated,
	events.EventTypeDiscoveryResolved,
	events.EventTypeMonitorAnomalyDetected,
	events.EventTypeAgentValidationFeedback,
	events.EventTypeDuplicateFound,
	events.EventTypeBusHandlerTimeout,
}

// Attach subscribes the counters to the bus. The handler only bumps
// in-memory counters, so it never eats a meaningful share of a dispatch
// deadline.
func (m *Metrics) Attach(bus *events.Bus) {
	for _, eventType := range observedEvents {
		bus.Subscribe(eventType, "metrics", m.observe)
	}
}

func (m *Metrics) observe(_ context.Context, event events.SystemEvent) error {
	m.events.WithLabelValues(event.Type).Inc()

	switch event.Type {
	case events.EventTypeTaskEnqueued:
		m.enqueued.Inc()
	case events.EventTypeTaskStatusChanged:
		if to := transitionTarget(event.Payload); to != "" {
			m.transitions.WithLabelValues(to).Inc()
		}
	case events.EventTypeValidationPassed:
		m.reviews.WithLabelValues("passed").Inc()
	case events.EventTypeValidationFailed:
		m.reviews.WithLabelValues("failed").Inc()
	case events.EventTypeDiagnosticCompleted:
		// Completed runs carry their stored status, which distinguishes
		// skipped runs from ones that spawned recovery tasks.
		status := diagnosticStatus(event.Payload)
		if status == "" {
			status = "completed"
		}
		m.diagnosticRuns.WithLabelValues(status).Inc()
	case events.EventTypeDiagnosticFailed:
		m.diagnosticRuns.WithLabelValues("failed").Inc()
	case events.EventTypeDuplicateFound:
		m.duplicates.Inc()
	case events.EventTypeMemoryStored:
		m.memories.Inc()
	case events.EventTypeMonitorAnomalyDetected:
		if severity := anomalySeverity(event.Payload); severity != "" {
			m.anomalies.WithLabelValues(severity).Inc()
		}
	case events.EventTypeBusHandlerTimeout:
		m.handlerTimeouts.Inc()
	}
	return nil
}

// Payloads are typed structs in-process and maps after a NOTIFY round-trip;
// the label readers accept both so remote events count the same as local
// ones.

func transitionTarget(payload any) string {
	switch p := payload.(type) {
	case events.TaskStatusChangedPayload:
		return p.To
	case map[string]any:
		s, _ := p["to"].(string)
		return s
	}
	return ""
}

func diagnosticStatus(payload any) string {
	switch p := payload.(type) {
	case events.DiagnosticPayload:
		return p.Status
	case map[string]any:
		s, _ := p["status"].(string)
		return s
	}
	return ""
}

func anomalySeverity(payload any) string {
	switch p := payload.(type) {
	case events.AnomalyPayload:
		return p.Severity
	case map[string]any:
		s, _ := p["severity"].(string)
		return s
	}
	return ""
}
