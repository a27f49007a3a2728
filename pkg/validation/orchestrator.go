// Package validation drives the review state machine. A worker submits a
// finished task with its commit, a validator agent is spawned for that
// iteration, and the validator's verdict either completes the task or
// returns it for rework. A periodic sweep advances stuck submissions and
// fails reviews whose validator has gone silent.
package validation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/validationreview"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
)

// repeatedFailureThreshold is the consecutive failed-review count that
// triggers a diagnostic run for the task's ticket.
const repeatedFailureThreshold = 2

// ValidatorSpawner starts a validator agent for a task under review.
// Implementations talk to the sandbox gateway.
type ValidatorSpawner interface {
	SpawnValidator(ctx context.Context, task *ent.Task) (*queue.SpawnedAgent, error)
}

// LearningPipeline runs after a passed review. pkg/ace implements it.
type LearningPipeline interface {
	Run(ctx context.Context, task *ent.Task, review *ent.ValidationReview) error
}

// DiagnosticTrigger requests a diagnostic run for a ticket.
// pkg/diagnostic implements it.
type DiagnosticTrigger interface {
	Trigger(ctx context.Context, ticketID, reason string, detail map[string]any) error
}

// Orchestrator owns the review lifecycle for validation-enabled tasks:
// submission, validator spawn, verdicts, feedback relay, and the timeout
// sweep. At most one validator is active per task at a time.
type Orchestrator struct {
	db        *database.Client
	agents    *services.AgentService
	spawner   ValidatorSpawner
	config    *config.ValidationConfig
	publisher *events.Publisher
	logger    *slog.Logger
	registry  *registry

	// Optional collaborators, wired after construction.
	learning   LearningPipeline
	diagnostic DiagnosticTrigger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewOrchestrator creates a validation Orchestrator.
func NewOrchestrator(db *database.Client, agents *services.AgentService, spawner ValidatorSpawner, cfg *config.ValidationConfig, publisher *events.Publisher) *Orchestrator {
	return &Orchestrator{
		db:        db,
		agents:    agents,
		spawner:   spawner,
		config:    cfg,
		publisher: publisher,
		logger:    slog.Default(),
		registry:  newRegistry(),
		stopCh:    make(chan struct{}),
	}
}

// SetLearningPipeline wires the pipeline run after each passed review.
func (o *Orchestrator) SetLearningPipeline(p LearningPipeline) {
	o.learning = p
}

// SetDiagnosticTrigger wires the diagnostic hook fired on validator
// timeouts and repeated review failures.
func (o *Orchestrator) SetDiagnosticTrigger(d DiagnosticTrigger) {
	o.diagnostic = d
}

// Start restores the active-validator registry from task state and begins
// the periodic sweep.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.rebuildRegistry(ctx); err != nil {
		return err
	}
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		o.run(ctx)
	}()
	return nil
}

// Stop signals the sweep to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() { close(o.stopCh) })
	o.wg.Wait()
}

// ActiveValidators returns a snapshot of the per-task validator registry.
func (o *Orchestrator) ActiveValidators() map[string]ActiveValidator {
	return o.registry.snapshot()
}

// Submit moves a running task into review. The commit is recorded, the
// validation iteration advances, and a validator is spawned. A failed
// spawn leaves the task in under_review for the sweep to retry.
func (o *Orchestrator) Submit(httpCtx context.Context, taskID string, req models.SubmitForReviewRequest) (*ent.Task, error) {
	if taskID == "" {
		return nil, services.NewValidationError("task_id", "required")
	}
	if strings.TrimSpace(req.CommitSHA) == "" {
		return nil, services.NewValidationError("commit_sha", "required to enter review")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	current, err := o.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !queue.CanTransition(current.Status, task.StatusUnderReview) {
		return nil, services.ErrIllegalTransition
	}
	if !current.ValidationEnabled {
		return nil, services.NewValidationError("validation_enabled", "validation is disabled for this task; report completed instead")
	}

	update := o.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(current.Status)).
		SetStatus(task.StatusUnderReview).
		SetCommitSha(req.CommitSHA).
		AddValidationIteration(1).
		SetReviewDone(false)
	if req.Result != nil {
		update = update.SetResult(req.Result)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to submit task for review: %w", err)
	}
	if n == 0 {
		return nil, services.ErrIllegalTransition
	}

	submitted, err := o.db.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	o.publishStatusChanged(ctx, submitted, current.Status, task.StatusUnderReview, "submitted for review", req.AgentID)

	advanced, err := o.advance(ctx, submitted)
	if err != nil {
		o.logger.Warn("Validator spawn failed, sweep will retry",
			"task_id", taskID, "iteration", submitted.ValidationIteration, "error", err)
		return submitted, nil
	}
	return advanced, nil
}

// advance spawns a validator for an under_review task and moves it to
// validation_in_progress. The spawn happens first so a failure leaves the
// task parked where the sweep can retry it.
func (o *Orchestrator) advance(ctx context.Context, t *ent.Task) (*ent.Task, error) {
	spawned, err := o.spawner.SpawnValidator(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn validator: %w", err)
	}

	n, err := o.db.Task.Update().
		Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusUnderReview)).
		SetStatus(task.StatusValidationInProgress).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start validation: %w", err)
	}
	if n == 0 {
		// Another instance advanced the task and registered its own
		// validator; ours is redundant and will idle out.
		o.logger.Warn("Task advanced concurrently, spawned validator is redundant",
			"task_id", t.ID, "validator_agent_id", spawned.AgentID)
		return nil, services.ErrIllegalTransition
	}

	if prev, existed := o.registry.put(t.ID, spawned.AgentID, t.ValidationIteration); existed {
		o.logger.Warn("Replacing registered validator",
			"task_id", t.ID, "previous", prev.ValidatorAgentID, "validator_agent_id", spawned.AgentID)
	}

	advanced, err := o.db.Task.Get(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload task: %w", err)
	}
	o.publishStatusChanged(ctx, advanced, task.StatusUnderReview, task.StatusValidationInProgress, "validator assigned", spawned.AgentID)
	if err := o.publisher.PublishValidationStarted(ctx, events.ValidationPayload{
		TaskID:           advanced.ID,
		TicketID:         advanced.TicketID,
		ValidatorAgentID: spawned.AgentID,
		Iteration:        advanced.ValidationIteration,
	}); err != nil {
		o.logger.Warn("Failed to publish validation_started", "task_id", advanced.ID, "error", err)
	}
	return advanced, nil
}

// GiveReview records a validator's verdict. Only validator agents may
// review, a failing review needs feedback, and a pass completes the task
// while a fail returns it to the worker as needs_work. The review row and
// the status change commit atomically.
func (o *Orchestrator) GiveReview(httpCtx context.Context, taskID string, req models.ReviewRequest) (*ent.ValidationReview, error) {
	if taskID == "" {
		return nil, services.NewValidationError("task_id", "required")
	}
	if req.ValidatorAgentID == "" {
		return nil, services.NewValidationError("validator_agent_id", "required")
	}
	if !req.Passed && strings.TrimSpace(req.Feedback) == "" {
		return nil, services.NewValidationError("feedback", "required when the review fails")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	current, err := o.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if current.Status != task.StatusValidationInProgress {
		return nil, services.ErrIllegalTransition
	}

	reviewer, err := o.agents.GetAgent(ctx, req.ValidatorAgentID)
	if err != nil {
		return nil, err
	}
	if reviewer.AgentType != agent.AgentTypeValidator {
		return nil, services.NewPermissionError(req.ValidatorAgentID, "submit a review",
			fmt.Sprintf("agent type is %s", reviewer.AgentType))
	}

	if entry, ok := o.registry.get(taskID); !ok {
		o.logger.Warn("No registered validator for task, accepting review",
			"task_id", taskID, "validator_agent_id", req.ValidatorAgentID)
	} else if entry.ValidatorAgentID != "" && entry.ValidatorAgentID != req.ValidatorAgentID {
		return nil, services.NewPermissionError(req.ValidatorAgentID, "submit a review",
			fmt.Sprintf("agent %q holds the active review", entry.ValidatorAgentID))
	}

	review, err := o.recordReview(ctx, current, req)
	if err != nil {
		return nil, err
	}
	o.registry.release(taskID)

	target := task.StatusNeedsWork
	reason := "review failed"
	if req.Passed {
		target = task.StatusCompleted
		reason = "review passed"
	}
	reviewed, err := o.db.Task.Get(ctx, taskID)
	if err != nil {
		o.logger.Warn("Failed to reload reviewed task", "task_id", taskID, "error", err)
		reviewed = current
	}
	o.publishStatusChanged(ctx, reviewed, task.StatusValidationInProgress, target, reason, req.ValidatorAgentID)

	payload := events.ValidationPayload{
		TaskID:           taskID,
		TicketID:         current.TicketID,
		ValidatorAgentID: req.ValidatorAgentID,
		Iteration:        review.IterationNumber,
		Passed:           req.Passed,
		Feedback:         req.Feedback,
	}
	if err := o.publisher.PublishValidationReviewSubmitted(ctx, payload); err != nil {
		o.logger.Warn("Failed to publish validation_review_submitted", "task_id", taskID, "error", err)
	}

	if req.Passed {
		if err := o.publisher.PublishValidationPassed(ctx, payload); err != nil {
			o.logger.Warn("Failed to publish validation_passed", "task_id", taskID, "error", err)
		}
		o.publishCompleted(ctx, reviewed)
		o.runLearning(httpCtx, reviewed, review)
	} else {
		if err := o.publisher.PublishValidationFailed(ctx, payload); err != nil {
			o.logger.Warn("Failed to publish validation_failed", "task_id", taskID, "error", err)
		}
		o.checkRepeatedFailures(httpCtx, reviewed)
	}
	return review, nil
}

// recordReview writes the review row and the task transition in one
// transaction. The (task_id, iteration_number) unique index rejects a
// second verdict for the same iteration.
func (o *Orchestrator) recordReview(ctx context.Context, current *ent.Task, req models.ReviewRequest) (*ent.ValidationReview, error) {
	tx, err := o.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start review transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	create := tx.ValidationReview.Create().
		SetID(uuid.New().String()).
		SetTaskID(current.ID).
		SetValidatorAgentID(req.ValidatorAgentID).
		SetIterationNumber(current.ValidationIteration).
		SetValidationPassed(req.Passed).
		SetFeedback(req.Feedback)
	if req.Evidence != nil {
		create = create.SetEvidence(req.Evidence)
	}
	if len(req.Recommendations) > 0 {
		create = create.SetRecommendations(req.Recommendations)
	}
	review, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, services.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record review: %w", err)
	}

	update := tx.Task.Update().
		Where(task.IDEQ(current.ID), task.StatusEQ(task.StatusValidationInProgress))
	if req.Passed {
		update = update.
			SetStatus(task.StatusCompleted).
			SetReviewDone(true).
			SetCompletedAt(time.Now())
	} else {
		update = update.
			SetStatus(task.StatusNeedsWork).
			SetLastValidationFeedback(req.Feedback)
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply review verdict: %w", err)
	}
	if n == 0 {
		return nil, services.ErrIllegalTransition
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit review: %w", err)
	}
	return review, nil
}

// runLearning hands a passed task to the learning pipeline. Learning is
// best effort and never fails the review.
func (o *Orchestrator) runLearning(ctx context.Context, t *ent.Task, review *ent.ValidationReview) {
	if o.learning == nil {
		return
	}
	if err := o.learning.Run(ctx, t, review); err != nil {
		o.logger.Error("Learning pipeline failed", "task_id", t.ID, "error", err)
	}
}

// checkRepeatedFailures triggers a diagnostic run once a task has failed
// review on consecutive iterations.
func (o *Orchestrator) checkRepeatedFailures(ctx context.Context, t *ent.Task) {
	if o.diagnostic == nil {
		return
	}
	failures, err := o.consecutiveFailures(ctx, t.ID)
	if err != nil {
		o.logger.Error("Failed to count review failures", "task_id", t.ID, "error", err)
		return
	}
	if failures < repeatedFailureThreshold {
		return
	}
	if err := o.diagnostic.Trigger(ctx, t.TicketID, "repeated_validation_failures", map[string]any{
		"task_id":              t.ID,
		"consecutive_failures": failures,
	}); err != nil {
		o.logger.Error("Failed to trigger diagnostic", "ticket_id", t.TicketID, "error", err)
	}
}

// consecutiveFailures counts failed reviews since the task last passed,
// newest iteration first.
func (o *Orchestrator) consecutiveFailures(ctx context.Context, taskID string) (int, error) {
	reviews, err := o.db.ValidationReview.Query().
		Where(validationreview.TaskIDEQ(taskID)).
		Order(ent.Desc(validationreview.FieldIterationNumber)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	count := 0
	for _, r := range reviews {
		if r.ValidationPassed {
			break
		}
		count++
	}
	return count, nil
}

// SendFeedback relays review feedback to an agent over the event bus.
// It reports whether the agent exists; feedback for an unknown agent is
// dropped without error.
func (o *Orchestrator) SendFeedback(httpCtx context.Context, agentID, feedback string) (bool, error) {
	if agentID == "" {
		return false, services.NewValidationError("agent_id", "required")
	}
	if strings.TrimSpace(feedback) == "" {
		return false, services.NewValidationError("feedback", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := o.agents.AgentExists(ctx, agentID)
	if err != nil {
		return false, fmt.Errorf("failed to check agent: %w", err)
	}
	if !exists {
		return false, nil
	}

	payload := events.ValidationFeedbackPayload{
		AgentID:  agentID,
		Feedback: feedback,
	}
	assigned, err := o.db.Task.Query().
		Where(
			task.AssignedAgentIDEQ(agentID),
			task.StatusIn(
				task.StatusAssigned,
				task.StatusRunning,
				task.StatusUnderReview,
				task.StatusValidationInProgress,
				task.StatusNeedsWork,
			),
		).
		Order(ent.Desc(task.FieldCreatedAt)).
		First(ctx)
	switch {
	case err == nil:
		payload.TaskID = assigned.ID
		payload.TicketID = assigned.TicketID
		payload.Iteration = assigned.ValidationIteration
	case !ent.IsNotFound(err):
		return false, fmt.Errorf("failed to look up agent task: %w", err)
	}

	if err := o.publisher.PublishValidationFeedback(ctx, payload); err != nil {
		o.logger.Warn("Failed to publish validation_feedback", "agent_id", agentID, "error", err)
	}
	return true, nil
}

func (o *Orchestrator) run(ctx context.Context) {
	ticker := time.NewTicker(o.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-o.stopCh:
			return
		case <-ticker.C:
			o.Sweep(ctx)
		}
	}
}

// Sweep advances submissions whose validator spawn failed and fails
// validations whose validator has been silent past the timeout.
func (o *Orchestrator) Sweep(ctx context.Context) {
	o.advanceStalled(ctx)
	o.expireValidators(ctx)
}

// advanceStalled retries the validator spawn for tasks parked in
// under_review.
func (o *Orchestrator) advanceStalled(ctx context.Context) {
	stalled, err := o.db.Task.Query().
		Where(
			task.StatusEQ(task.StatusUnderReview),
			task.ValidationEnabledEQ(true),
		).
		All(ctx)
	if err != nil {
		o.logger.Error("Failed to query stalled submissions", "error", err)
		return
	}
	for _, t := range stalled {
		if _, err := o.advance(ctx, t); err != nil {
			o.logger.Warn("Failed to advance stalled submission", "task_id", t.ID, "error", err)
		}
	}
}

// expireValidators fails tasks whose validator heartbeat is older than
// the timeout. Entries restored without a known validator expire on their
// restore time instead.
func (o *Orchestrator) expireValidators(ctx context.Context) {
	for taskID, entry := range o.registry.snapshot() {
		lastSeen := entry.StartedAt
		if entry.ValidatorAgentID != "" {
			if reviewer, err := o.agents.GetAgent(ctx, entry.ValidatorAgentID); err == nil && reviewer.LastHeartbeat.After(lastSeen) {
				lastSeen = reviewer.LastHeartbeat
			}
		}
		if time.Since(lastSeen) < o.config.ValidatorTimeout {
			continue
		}
		o.failValidation(ctx, taskID, entry)
	}
}

// failValidation moves a timed-out validation to failed and asks for a
// diagnostic run on the ticket.
func (o *Orchestrator) failValidation(ctx context.Context, taskID string, entry ActiveValidator) {
	n, err := o.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusValidationInProgress)).
		SetStatus(task.StatusFailed).
		SetErrorMessage(fmt.Sprintf("validation timed out after %s", o.config.ValidatorTimeout)).
		SetCompletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		o.logger.Error("Failed to fail timed-out validation", "task_id", taskID, "error", err)
		return
	}
	o.registry.release(taskID)
	if n == 0 {
		// Reviewed or otherwise moved on before the deadline hit.
		return
	}

	failed, err := o.db.Task.Get(ctx, taskID)
	if err != nil {
		o.logger.Error("Failed to reload failed task", "task_id", taskID, "error", err)
		return
	}
	o.logger.Error("Validation timed out",
		"task_id", taskID, "validator_agent_id", entry.ValidatorAgentID, "iteration", entry.Iteration)

	o.publishStatusChanged(ctx, failed, task.StatusValidationInProgress, task.StatusFailed, "validation timeout", entry.ValidatorAgentID)
	if err := o.publisher.PublishTaskFailed(ctx, events.TaskFailedPayload{
		TaskID:     failed.ID,
		TicketID:   failed.TicketID,
		Reason:     "validation timeout",
		RetryCount: failed.RetryCount,
		WillRetry:  false,
	}); err != nil {
		o.logger.Warn("Failed to publish task.failed", "task_id", taskID, "error", err)
	}

	if o.diagnostic != nil {
		if err := o.diagnostic.Trigger(ctx, failed.TicketID, "validation_timeout", map[string]any{
			"task_id":            taskID,
			"validator_agent_id": entry.ValidatorAgentID,
			"iteration":          entry.Iteration,
		}); err != nil {
			o.logger.Error("Failed to trigger diagnostic", "ticket_id", failed.TicketID, "error", err)
		}
	}
}

// rebuildRegistry restores registry entries for tasks already in
// validation_in_progress. The spawned validator is unknown after a
// restart, so restored entries accept a verdict from any validator and
// time out on the restore time.
func (o *Orchestrator) rebuildRegistry(ctx context.Context) error {
	active, err := o.db.Task.Query().
		Where(task.StatusEQ(task.StatusValidationInProgress)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active validations: %w", err)
	}
	for _, t := range active {
		o.registry.put(t.ID, "", t.ValidationIteration)
	}
	if len(active) > 0 {
		o.logger.Info("Restored active validations", "count", len(active))
	}
	return nil
}

func (o *Orchestrator) publishStatusChanged(ctx context.Context, t *ent.Task, from, to task.Status, reason, agentID string) {
	if err := o.publisher.PublishTaskStatusChanged(ctx, events.TaskStatusChangedPayload{
		TaskID:   t.ID,
		TicketID: t.TicketID,
		From:     string(from),
		To:       string(to),
		Reason:   reason,
		AgentID:  agentID,
	}); err != nil {
		o.logger.Warn("Failed to publish task.status.changed", "task_id", t.ID, "error", err)
	}
}

func (o *Orchestrator) publishCompleted(ctx context.Context, t *ent.Task) {
	agentID := ""
	if t.AssignedAgentID != nil {
		agentID = *t.AssignedAgentID
	}
	if err := o.publisher.PublishTaskCompleted(ctx, events.TaskCompletedPayload{
		TaskID:   t.ID,
		TicketID: t.TicketID,
		AgentID:  agentID,
	}); err != nil {
		o.logger.Warn("Failed to publish task.completed", "task_id", t.ID, "error", err)
	}
}
