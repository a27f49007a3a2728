// Package diagnostic detects stuck workflows and spawns bounded recovery
// work. A periodic scan evaluates every open ticket against the stuck
// conjunction; eligible tickets get an LLM diagnosis, a dedup gate, and
// up to a capped number of boosted recovery tasks through the discovery
// branch. Every attempt leaves a DiagnosticRun row, including the ones
// that were deduplicated away.
package diagnostic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
)

// Trigger reasons recorded on diagnostic runs.
const (
	TriggerStuckWorkflow     = "stuck_workflow"
	TriggerRepeatedFailures  = "repeated_validation_failures"
	TriggerValidationTimeout = "validation_timeout"
)

// recoveryDedupType scopes the diagnosis-level dedup gate.
const recoveryDedupType = "discovery_diagnostic_no_result"

// Deps are the collaborators the engine drives.
type Deps struct {
	DB          *database.Client
	Queue       *queue.Service
	Dedup       *dedup.Service
	Tickets     *services.TicketService
	Events      *services.EventService
	Discoveries *services.DiscoveryService
	Gateway     llm.Gateway
	Publisher   *events.Publisher

	// Masker scrubs credentials from the prompt before it leaves the
	// process. Optional; nil ships the prompt as rendered.
	Masker *masking.Service
}

// Engine runs the stuck-workflow scan and the recovery spawn pipeline.
type Engine struct {
	db           *database.Client
	queue        *queue.Service
	dedup        *dedup.Service
	tickets      *services.TicketService
	eventService *services.EventService
	discoveries  *services.DiscoveryService
	gateway      llm.Gateway
	masker       *masking.Service
	config       *config.DiagnosticConfig
	publisher    *events.Publisher
	logger       *slog.Logger
	tracker      *Tracker

	mu            sync.Mutex
	lastDiagnosed map[string]time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewEngine creates a diagnostic Engine.
func NewEngine(deps Deps, cfg *config.DiagnosticConfig) *Engine {
	return &Engine{
		db:            deps.DB,
		queue:         deps.Queue,
		dedup:         deps.Dedup,
		tickets:       deps.Tickets,
		eventService:  deps.Events,
		discoveries:   deps.Discoveries,
		gateway:       deps.Gateway,
		masker:        deps.Masker,
		config:        cfg,
		publisher:     deps.Publisher,
		logger:        slog.Default(),
		tracker:       NewTracker(deps.DB, cfg),
		lastDiagnosed: make(map[string]time.Time),
		stopCh:        make(chan struct{}),
	}
}

// Tracker exposes the consecutive-failure tracker.
func (e *Engine) Tracker() *Tracker {
	return e.tracker
}

// Runs lists diagnostic runs newest first, optionally narrowed to one
// ticket. limit 0 means no limit.
func (e *Engine) Runs(ctx context.Context, ticketID string, limit int) ([]*ent.DiagnosticRun, error) {
	query := e.db.DiagnosticRun.Query().
		Order(ent.Desc(diagnosticrun.FieldTriggeredAt), ent.Desc(diagnosticrun.FieldID))
	if ticketID != "" {
		query = query.Where(diagnosticrun.WorkflowIDEQ(ticketID))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	runs, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list diagnostic runs: %w", err)
	}
	return runs, nil
}

// GetRun retrieves one diagnostic run by id.
func (e *Engine) GetRun(ctx context.Context, runID string) (*ent.DiagnosticRun, error) {
	run, err := e.db.DiagnosticRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get diagnostic run: %w", err)
	}
	return run, nil
}

// Start begins the periodic stuck-workflow scan.
func (e *Engine) Start(ctx context.Context) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.run(ctx)
	}()
}

// Stop signals the scan to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	e.wg.Wait()
}

func (e *Engine) run(ctx context.Context) {
	ticker := time.NewTicker(e.config.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.Scan(ctx)
		}
	}
}

// Scan refreshes the failure counters and diagnoses every stuck open
// ticket. One ticket's failure never aborts the scan.
func (e *Engine) Scan(ctx context.Context) {
	if err := e.tracker.CheckOutcomes(ctx); err != nil {
		e.logger.Error("Recovery outcome check failed", "error", err)
	}

	open, err := e.db.Ticket.Query().
		Where(ticket.StatusNEQ(ticket.StatusDone)).
		All(ctx)
	if err != nil {
		e.logger.Error("Failed to list open tickets", "error", err)
		return
	}

	for _, tkt := range open {
		snap, err := e.snapshotWorkflow(ctx, tkt)
		if err != nil {
			e.logger.Error("Failed to snapshot workflow", "ticket_id", tkt.ID, "error", err)
			continue
		}
		eligible, why, err := e.stuckEligible(ctx, snap)
		if err != nil {
			e.logger.Error("Stuck check failed", "ticket_id", tkt.ID, "error", err)
			continue
		}
		if !eligible {
			e.logger.Debug("Ticket not stuck", "ticket_id", tkt.ID, "reason", why)
			continue
		}
		if _, err := e.Run(ctx, tkt.ID, TriggerStuckWorkflow, nil); err != nil {
			e.logger.Error("Diagnostic run failed", "ticket_id", tkt.ID, "error", err)
		}
	}
}

// Trigger runs a diagnosis in response to an external signal, such as
// repeated validation failures or a validator timeout. Safeguards still
// apply; the stuck predicate does not.
func (e *Engine) Trigger(ctx context.Context, ticketID, reason string, detail map[string]any) error {
	_, err := e.Run(ctx, ticketID, reason, detail)
	return err
}

// Run diagnoses one ticket now: safeguards, run row, analysis, dedup
// gate, then the bounded recovery spawn. A safeguarded skip returns
// (nil, nil); a deduplicated diagnosis returns the run with
// status=skipped.
func (e *Engine) Run(ctx context.Context, ticketID, trigger string, detail map[string]any) (*ent.DiagnosticRun, error) {
	if ticketID == "" {
		return nil, services.NewValidationError("ticket_id", "required")
	}
	if trigger == "" {
		trigger = TriggerStuckWorkflow
	}

	tkt, err := e.db.Ticket.Get(ctx, ticketID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	snap, err := e.snapshotWorkflow(ctx, tkt)
	if err != nil {
		return nil, err
	}

	guard, err := e.safeguards(ctx, snap)
	if err != nil {
		return nil, err
	}
	if guard != "" {
		e.logger.Info("Diagnostic skipped",
			"ticket_id", ticketID, "trigger", trigger, "reason", guard)
		return nil, nil
	}

	run, err := e.createRun(ctx, snap, trigger)
	if err != nil {
		return nil, err
	}
	e.markDiagnosed(ticketID)
	e.logger.Info("Diagnosing workflow",
		"ticket_id", ticketID, "run_id", run.ID, "trigger", trigger,
		"total_tasks", len(snap.Tasks), "failed_tasks", snap.Failed)
	e.publishTriggered(ctx, run)

	analysis := e.analyze(ctx, snap, trigger, detail)

	gate, err := e.dedup.CheckTask(ctx, dedup.TaskCandidate{
		TicketID:    ticketID,
		TaskType:    recoveryDedupType,
		Description: analysis.RootCause,
		Kind:        dedup.KindDiagnostic,
	})
	switch {
	case err != nil:
		e.logger.Warn("Diagnosis dedup gate failed, spawning anyway", "run_id", run.ID, "error", err)
	case gate.Action == dedup.ActionSkip:
		return e.skipRun(ctx, run, analysis, gate)
	}

	ids, err := e.spawnRecovery(ctx, snap, analysis)
	if err != nil {
		return e.failRun(ctx, run, err)
	}
	return e.completeRun(ctx, run, analysis, ids)
}

func (e *Engine) createRun(ctx context.Context, snap *WorkflowSnapshot, trigger string) (*ent.DiagnosticRun, error) {
	reviewed := make([]string, 0, 4)
	seen := make(map[string]bool)
	for _, t := range snap.Tasks {
		if t.AssignedAgentID == nil || *t.AssignedAgentID == "" || seen[*t.AssignedAgentID] {
			continue
		}
		seen[*t.AssignedAgentID] = true
		reviewed = append(reviewed, *t.AssignedAgentID)
	}

	create := e.db.DiagnosticRun.Create().
		SetID(uuid.New().String()).
		SetWorkflowID(snap.Ticket.ID).
		SetTrigger(trigger).
		SetTotalTasks(len(snap.Tasks)).
		SetCompletedTasks(snap.Completed).
		SetFailedTasks(snap.Failed).
		SetPhasesAnalyzed(sortedKeys(snap.PhaseDistribution))
	if len(reviewed) > 0 {
		create = create.SetAgentsReviewed(reviewed)
	}
	run, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create diagnostic run: %w", err)
	}
	return run, nil
}

// analyze produces the diagnosis, falling back to a default analysis when
// the gateway fails or returns nothing usable.
func (e *Engine) analyze(ctx context.Context, snap *WorkflowSnapshot, trigger string, detail map[string]any) *llm.DiagnosticAnalysis {
	results, err := e.submittedResults(ctx, snap, e.config.ContextTaskLimit)
	if err != nil {
		e.logger.Warn("Result history unavailable for diagnosis", "ticket_id", snap.Ticket.ID, "error", err)
	}
	prompt := e.masker.Mask(renderPrompt(snap, results, trigger, detail, e.config.ContextTaskLimit))

	llmCtx, cancel := context.WithTimeout(ctx, e.config.LLMTimeout)
	defer cancel()

	var analysis llm.DiagnosticAnalysis
	if err := e.gateway.StructuredOutput(llmCtx, prompt, &analysis, diagnosticSystemPrompt); err != nil {
		e.logger.Warn("Diagnosis fell back to default", "ticket_id", snap.Ticket.ID, "error", err)
		return fallbackAnalysis(snap)
	}
	if strings.TrimSpace(analysis.RootCause) == "" {
		return fallbackAnalysis(snap)
	}
	return &analysis
}

func fallbackAnalysis(snap *WorkflowSnapshot) *llm.DiagnosticAnalysis {
	return &llm.DiagnosticAnalysis{
		RootCause: fmt.Sprintf(
			"Workflow stalled with %d of %d tasks failed and no active work; no automated root cause is available",
			snap.Failed, len(snap.Tasks)),
		Recommendations: []llm.Recommendation{{
			Action: fmt.Sprintf(
				"Investigate why workflow %s produced no validated result: review the most recent task output, fix the blocking issue, and restart the failed step",
				snap.Ticket.ID),
			TaskType: "no_result",
			Priority: "HIGH",
		}},
	}
}

// spawnRecovery enqueues up to MaxRecoveryTasks boosted tasks from the
// recommendations, linked through a single recovery discovery on the most
// recent task. One bad recommendation never sinks the round.
func (e *Engine) spawnRecovery(ctx context.Context, snap *WorkflowSnapshot, analysis *llm.DiagnosticAnalysis) ([]string, error) {
	recs := analysis.Recommendations
	if len(recs) == 0 {
		recs = fallbackAnalysis(snap).Recommendations
	}
	if len(recs) > e.config.MaxRecoveryTasks {
		recs = recs[:e.config.MaxRecoveryTasks]
	}

	source := snap.Tasks[len(snap.Tasks)-1]
	discovery, err := e.discoveries.Record(ctx, models.RecordDiscoveryRequest{
		SourceTaskID:  source.ID,
		DiscoveryType: "diagnostic_recovery",
		Description:   analysis.RootCause,
		PriorityBoost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record recovery discovery: %w", err)
	}

	var ids []string
	for _, rec := range recs {
		action := strings.TrimSpace(rec.Action)
		if action == "" {
			continue
		}
		taskType := recoveryTaskType(rec.TaskType)

		var artifacts *queue.DedupArtifacts
		check, err := e.dedup.CheckTask(ctx, dedup.TaskCandidate{
			TicketID:    snap.Ticket.ID,
			TaskType:    taskType,
			Description: action,
			Kind:        dedup.KindDiagnostic,
		})
		switch {
		case err != nil:
			e.logger.Warn("Recovery task dedup failed, enqueueing anyway",
				"ticket_id", snap.Ticket.ID, "error", err)
		case check.Action == dedup.ActionSkip:
			e.logger.Info("Recovery task deduplicated",
				"ticket_id", snap.Ticket.ID, "matched_task_id", check.MatchedTaskID)
			continue
		default:
			artifacts = &queue.DedupArtifacts{ContentHash: check.ContentHash, Embedding: check.Embedding}
		}

		created, err := e.queue.Enqueue(ctx, models.EnqueueTaskRequest{
			TicketID:      snap.Ticket.ID,
			PhaseID:       snap.Ticket.PhaseID,
			TaskType:      taskType,
			Description:   action,
			Priority:      recoveryPriority(rec.Priority),
			PriorityBoost: true,
		}, artifacts)
		if err != nil {
			e.logger.Error("Failed to enqueue recovery task",
				"ticket_id", snap.Ticket.ID, "task_type", taskType, "error", err)
			continue
		}
		ids = append(ids, created.ID)
	}

	if len(ids) > 0 {
		if err := e.discoveries.AttachSpawnedTasks(ctx, discovery.ID, ids); err != nil {
			e.logger.Warn("Failed to link recovery tasks to discovery",
				"discovery_id", discovery.ID, "error", err)
		}
	}
	return ids, nil
}

func (e *Engine) skipRun(ctx context.Context, run *ent.DiagnosticRun, analysis *llm.DiagnosticAnalysis, gate *dedup.Result) (*ent.DiagnosticRun, error) {
	diagnosis := fmt.Sprintf("%s [duplicate of task %s, similarity %.2f]",
		analysis.RootCause, gate.MatchedTaskID, gate.HighestSimilarity)
	updated, err := e.db.DiagnosticRun.UpdateOneID(run.ID).
		SetStatus(diagnosticrun.StatusSkipped).
		SetDiagnosis(diagnosis).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark run skipped: %w", err)
	}
	e.logger.Info("Diagnosis deduplicated, run skipped",
		"run_id", run.ID, "ticket_id", run.WorkflowID, "matched_task_id", gate.MatchedTaskID)
	e.publishCompleted(ctx, updated, nil)
	return updated, nil
}

func (e *Engine) completeRun(ctx context.Context, run *ent.DiagnosticRun, analysis *llm.DiagnosticAnalysis, ids []string) (*ent.DiagnosticRun, error) {
	update := e.db.DiagnosticRun.UpdateOneID(run.ID).
		SetStatus(diagnosticrun.StatusCompleted).
		SetDiagnosis(analysis.RootCause).
		SetTasksCreatedCount(len(ids)).
		SetCompletedAt(time.Now())
	if len(ids) > 0 {
		update = update.SetTasksCreatedIds(ids)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete run: %w", err)
	}
	e.logger.Info("Diagnostic run completed",
		"run_id", run.ID, "ticket_id", run.WorkflowID, "tasks_created", len(ids))
	e.publishCompleted(ctx, updated, ids)
	return updated, nil
}

func (e *Engine) failRun(ctx context.Context, run *ent.DiagnosticRun, cause error) (*ent.DiagnosticRun, error) {
	_, err := e.db.DiagnosticRun.UpdateOneID(run.ID).
		SetStatus(diagnosticrun.StatusFailed).
		SetErrorMessage(cause.Error()).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		e.logger.Error("Failed to mark run failed", "run_id", run.ID, "error", err)
	}
	e.tracker.RecordFailure(run.WorkflowID)
	if err := e.publisher.PublishDiagnosticFailed(ctx, events.DiagnosticPayload{
		RunID:    run.ID,
		TicketID: run.WorkflowID,
		Trigger:  run.Trigger,
		Status:   string(diagnosticrun.StatusFailed),
		Error:    cause.Error(),
	}); err != nil {
		e.logger.Warn("Failed to publish diagnostic.failed", "run_id", run.ID, "error", err)
	}
	return nil, cause
}

func (e *Engine) publishTriggered(ctx context.Context, run *ent.DiagnosticRun) {
	if err := e.publisher.PublishDiagnosticTriggered(ctx, events.DiagnosticPayload{
		RunID:    run.ID,
		TicketID: run.WorkflowID,
		Trigger:  run.Trigger,
		Status:   string(run.Status),
	}); err != nil {
		e.logger.Warn("Failed to publish diagnostic.triggered", "run_id", run.ID, "error", err)
	}
}

func (e *Engine) publishCompleted(ctx context.Context, run *ent.DiagnosticRun, ids []string) {
	if err := e.publisher.PublishDiagnosticCompleted(ctx, events.DiagnosticPayload{
		RunID:        run.ID,
		TicketID:     run.WorkflowID,
		Trigger:      run.Trigger,
		Status:       string(run.Status),
		TasksCreated: len(ids),
		TaskIDs:      ids,
	}); err != nil {
		e.logger.Warn("Failed to publish diagnostic.completed", "run_id", run.ID, "error", err)
	}
}

func (e *Engine) markDiagnosed(ticketID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastDiagnosed[ticketID] = time.Now()
}

func (e *Engine) lastDiagnosedAt(ticketID string) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	at, ok := e.lastDiagnosed[ticketID]
	return at, ok
}

func recoveryTaskType(recType string) string {
	t := strings.ToLower(strings.TrimSpace(recType))
	t = strings.ReplaceAll(t, " ", "_")
	t = strings.TrimPrefix(t, "discovery_")
	t = strings.TrimPrefix(t, "diagnostic_")
	if t == "" {
		t = "no_result"
	}
	return diagnosticTaskPrefix + "_" + t
}

// recoveryPriority passes through a valid model-suggested priority and
// drops anything else, leaving Enqueue's default plus the boost.
func recoveryPriority(p string) *string {
	upper := strings.ToUpper(strings.TrimSpace(p))
	switch upper {
	case "LOW", "MEDIUM", "HIGH", "CRITICAL":
		return &upper
	default:
		return nil
	}
}
