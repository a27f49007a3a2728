// Package slack posts kernel notifications to a Slack channel: terminal
// diagnostic runs and monitor anomalies. Messages about the same ticket are
// threaded together by scanning recent channel history for the ticket
// fingerprint.
package slack

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/droverhq/drover/pkg/events"
)

// postTimeout bounds each Slack API call. Delivery runs inside a bus
// handler, so the bus deadline is the hard ceiling either way.
const postTimeout = 10 * time.Second

// Config holds the parameters needed to construct a Notifier.
type Config struct {
	Token        string
	Channel      string
	DashboardURL string
}

// Notifier consumes bus events and posts them to Slack.
// Nil-safe: Attach on a nil notifier registers nothing.
type Notifier struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewNotifier creates a Slack notifier.
// Returns nil if Token or Channel is empty.
func NewNotifier(cfg Config) *Notifier {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Notifier{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-notifier"),
	}
}

// NewNotifierWithClient creates a Notifier backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewNotifierWithClient(client *Client, dashboardURL string) *Notifier {
	return &Notifier{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-notifier"),
	}
}

// Attach subscribes the notifier to the bus. Handlers do network I/O, so
// they run under the bus delivery deadline like any other consumer.
func (n *Notifier) Attach(bus *events.Bus) {
	if n == nil {
		return
	}
	bus.Subscribe(events.EventTypeDiagnosticCompleted, "slack-notifier", n.handleDiagnostic)
	bus.Subscribe(events.EventTypeDiagnosticFailed, "slack-notifier", n.handleDiagnostic)
	bus.Subscribe(events.EventTypeMonitorAnomalyDetected, "slack-notifier", n.handleAnomaly)
}

// handleDiagnostic posts a terminal diagnostic run to the channel, threaded
// under the ticket's earlier messages when one is in recent history.
// Fail-open: delivery errors are logged, never returned, so a Slack outage
// cannot surface as a failed consumer.
func (n *Notifier) handleDiagnostic(ctx context.Context, event events.SystemEvent) error {
	input := diagnosisInput(event)
	if input.TicketID == "" {
		return nil
	}
	if input.Status == "" {
		if event.Type == events.EventTypeDiagnosticFailed {
			input.Status = "failed"
		} else {
			input.Status = "completed"
		}
	}

	fingerprint := TicketFingerprint(input.TicketID)
	threadTS, err := n.client.FindMessageByFingerprint(ctx, fingerprint)
	if err != nil {
		n.logger.Warn("Failed to find Slack thread for ticket",
			"ticket_id", input.TicketID,
			"error", err)
	}

	fallback := fmt.Sprintf("Diagnosis %s for %s", input.Status, fingerprint)
	blocks := BuildDiagnosisMessage(input, n.dashboardURL)
	if err := n.client.PostMessage(ctx, fallback, blocks, threadTS, postTimeout); err != nil {
		n.logger.Error("Failed to send Slack diagnosis notification",
			"run_id", input.RunID,
			"ticket_id", input.TicketID,
			"status", input.Status,
			"error", err)
	}
	return nil
}

// handleAnomaly posts a monitor anomaly to the channel. Anomalies are
// kernel-wide, so they are never threaded.
func (n *Notifier) handleAnomaly(ctx context.Context, event events.SystemEvent) error {
	input := anomalyInput(event)
	if input.MetricName == "" {
		return nil
	}

	fallback := fmt.Sprintf("Anomaly detected on %s (%s)", input.MetricName, input.Severity)
	blocks := BuildAnomalyMessage(input, n.dashboardURL)
	if err := n.client.PostMessage(ctx, fallback, blocks, "", postTimeout); err != nil {
		n.logger.Error("Failed to send Slack anomaly notification",
			"metric", input.MetricName,
			"severity", input.Severity,
			"error", err)
	}
	return nil
}

// Payloads are typed structs in-process and maps after a NOTIFY round-trip;
// the readers accept both so remote events notify the same as local ones.

func diagnosisInput(event events.SystemEvent) DiagnosisInput {
	switch p := event.Payload.(type) {
	case events.DiagnosticPayload:
		return DiagnosisInput{
			RunID:        p.RunID,
			TicketID:     p.TicketID,
			Trigger:      p.Trigger,
			Status:       p.Status,
			TasksCreated: p.TasksCreated,
			TaskIDs:      p.TaskIDs,
			Error:        p.Error,
		}
	case map[string]any:
		return DiagnosisInput{
			RunID:        stringField(p, "run_id"),
			TicketID:     stringField(p, "ticket_id"),
			Trigger:      stringField(p, "trigger"),
			Status:       stringField(p, "status"),
			TasksCreated: intField(p, "tasks_created"),
			TaskIDs:      stringSliceField(p, "task_ids"),
			Error:        stringField(p, "error"),
		}
	}
	return DiagnosisInput{}
}

func anomalyInput(event events.SystemEvent) AnomalyInput {
	switch p := event.Payload.(type) {
	case events.AnomalyPayload:
		return AnomalyInput{
			MetricName:   p.MetricName,
			Observed:     p.Observed,
			BaselineMean: p.BaselineMean,
			ZScore:       p.ZScore,
			Severity:     p.Severity,
		}
	case map[string]any:
		return AnomalyInput{
			MetricName:   stringField(p, "metric_name"),
			Observed:     floatField(p, "observed"),
			BaselineMean: floatField(p, "baseline_mean"),
			ZScore:       floatField(p, "zscore"),
			Severity:     stringField(p, "severity"),
		}
	}
	return AnomalyInput{}
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// JSON numbers decode as float64, including integral counts.
func intField(m map[string]any, key string) int {
	f, _ := m[key].(float64)
	return int(f)
}

func floatField(m map[string]any, key string) float64 {
	f, _ := m[key].(float64)
	return f
}

func stringSliceField(m map[string]any, key string) []string {
	raw, _ := m[key].([]any)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
