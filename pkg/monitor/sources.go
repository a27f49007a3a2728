package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/database"
)

// diagnosticFailureWindow bounds how far back the failure gauge looks.
const diagnosticFailureWindow = time.Hour

// QueueDepthSource samples the ready backlog and the in-flight set.
func QueueDepthSource(db *database.Client) Source {
	return func(ctx context.Context) ([]Sample, error) {
		pending, err := db.Task.Query().
			Where(task.StatusIn(task.StatusPending, task.StatusClaiming)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count queued tasks: %w", err)
		}
		active, err := db.Task.Query().
			Where(task.StatusIn(task.StatusAssigned, task.StatusRunning)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count active tasks: %w", err)
		}
		return []Sample{
			{MetricName: "queue.depth", Value: float64(pending)},
			{MetricName: "queue.active", Value: float64(active)},
		}, nil
	}
}

// DiagnosticFailureSource samples failed diagnostic runs over the recent
// window.
func DiagnosticFailureSource(db *database.Client) Source {
	return func(ctx context.Context) ([]Sample, error) {
		since := time.Now().Add(-diagnosticFailureWindow)
		failed, err := db.DiagnosticRun.Query().
			Where(
				diagnosticrun.StatusEQ(diagnosticrun.StatusFailed),
				diagnosticrun.TriggeredAtGT(since),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count failed diagnostic runs: %w", err)
		}
		return []Sample{
			{MetricName: "diagnostic.failures", Value: float64(failed)},
		}, nil
	}
}
