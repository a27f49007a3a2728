package diagnostic

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
)

// Tracker maintains per-ticket consecutive recovery-failure counts. The
// counts are advisory and in memory; CheckOutcomes rebuilds them from
// persisted diagnostic runs, so a restart converges after one scan.
type Tracker struct {
	db     *database.Client
	config *config.DiagnosticConfig
	logger *slog.Logger

	mu     sync.Mutex
	counts map[string]int
}

// NewTracker creates a Tracker.
func NewTracker(db *database.Client, cfg *config.DiagnosticConfig) *Tracker {
	return &Tracker{
		db:     db,
		config: cfg,
		logger: slog.Default(),
		counts: make(map[string]int),
	}
}

// RecordFailure increments a ticket's consecutive-failure count and
// returns the new value.
func (t *Tracker) RecordFailure(ticketID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[ticketID]++
	return t.counts[ticketID]
}

// RecordSuccess clears a ticket's consecutive-failure count.
func (t *Tracker) RecordSuccess(ticketID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.counts, ticketID)
}

// Count returns a ticket's current consecutive-failure count.
func (t *Tracker) Count(ticketID string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[ticketID]
}

// CheckOutcomes rederives the counters from the recovery tasks of recent
// runs, newest first per ticket: each run whose spawned tasks all failed
// extends the streak, the first run with a completed task (or one still
// in flight) ends it. Rederiving instead of incrementing keeps repeated
// scans idempotent.
func (t *Tracker) CheckOutcomes(ctx context.Context) error {
	runs, err := t.db.DiagnosticRun.Query().
		Order(ent.Desc(diagnosticrun.FieldTriggeredAt)).
		Limit(t.config.OutcomeSampleSize).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to sample diagnostic runs: %w", err)
	}

	derived := make(map[string]int)
	settled := make(map[string]bool)
	for _, run := range runs {
		ticketID := run.WorkflowID
		if settled[ticketID] {
			continue
		}
		if len(run.TasksCreatedIds) == 0 {
			// Skipped or failed runs spawned nothing; look further back.
			continue
		}

		spawned, err := t.db.Task.Query().
			Where(task.IDIn(run.TasksCreatedIds...)).
			All(ctx)
		if err != nil {
			t.logger.Error("Failed to load recovery tasks", "run_id", run.ID, "error", err)
			continue
		}

		anyCompleted := false
		allTerminal := true
		for _, recovery := range spawned {
			switch recovery.Status {
			case task.StatusCompleted:
				anyCompleted = true
			case task.StatusFailed:
			default:
				allTerminal = false
			}
		}
		if !allTerminal || anyCompleted {
			// Streak ends here: either a recovery round worked, or the
			// newest round has not finished yet.
			settled[ticketID] = true
			continue
		}
		derived[ticketID]++
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for ticketID, n := range derived {
		t.counts[ticketID] = n
	}
	for ticketID := range settled {
		if _, ok := derived[ticketID]; !ok {
			delete(t.counts, ticketID)
		}
	}
	return nil
}
