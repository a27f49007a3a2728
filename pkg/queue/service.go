package queue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/ownership"
	"github.com/droverhq/drover/pkg/services"
)

// depsKey is the recognized key of the task dependencies mapping.
const depsKey = "depends_on"

/// claimCandidateWindow is the page size of the claim query: rows are
// locked and dependency-checked a page at a time, so a ready task ranked
// below any number of dependency-blocked ones is still reachable.
const claimCandidateWindow = 20

// scoreEpsilon is the change below which a recomputed score is not
// written back.
const scoreEpsilon = 0.0001

// Service is the task queue: persistence, scoring, and the claim protocol.
type Service struct {
	db        *database.Client
	scorer    *Scorer
	config    *config.QueueConfig
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewService creates a queue Service.
func NewService(db *database.Client, scorer *Scorer, cfg *config.QueueConfig, publisher *events.Publisher) *Service {
	return &Service{
		db:        db,
		scorer:    scorer,
		config:    cfg,
		publisher: publisher,
		logger:    slog.Default(),
	}
}

// Enqueue persists a new pending task with its initial score and publishes
// task.enqueued. artifacts may carry a dedup-computed content hash and
// embedding; nil means the dedup check was skipped.
func (s *Service) Enqueue(httpCtx context.Context, req models.EnqueueTaskRequest, artifacts *DedupArtifacts) (*ent.Task, error) {
	if req.TicketID == "" {
		return nil, services.NewValidationError("ticket_id", "required")
	}
	if req.PhaseID == "" {
		return nil, services.NewValidationError("phase_id", "required")
	}
	if req.Description == "" {
		return nil, services.NewValidationError("description", "required")
	}
	if req.Priority != nil {
		if _, ok := priorityNorm[*req.Priority]; !ok {
			return nil, services.NewValidationError("priority", "invalid: must be LOW, MEDIUM, HIGH or CRITICAL")
		}
	}
	if req.MaxRetries != nil && *req.MaxRetries < 0 {
		return nil, services.NewValidationError("max_retries", "must not be negative")
	}
	for key := range req.Dependencies {
		if key != depsKey {
			return nil, services.NewValidationError("dependencies", fmt.Sprintf("unknown key %q, only %q is recognized", key, depsKey))
		}
	}
	if err := ownership.CheckSyntax(req.OwnedFiles); err != nil {
		return nil, err
	}

	taskID := req.TaskID
	if taskID == "" {
		taskID = uuid.New().String()
	}
	for _, dep := range req.Dependencies[depsKey] {
		if dep == taskID {
			return nil, services.NewValidationError("dependencies", "task cannot depend on itself")
		}
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	ticketExists, err := s.db.Ticket.Query().Where(ticket.IDEQ(req.TicketID)).Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check ticket: %w", err)
	}
	if !ticketExists {
		return nil, services.ErrNotFound
	}

	priority := "MEDIUM"
	if req.Priority != nil {
		priority = *req.Priority
	}
	if req.PriorityBoost {
		priority = boostPriority(priority)
	}

	builder := s.db.Task.Create().
		SetID(taskID).
		SetTicketID(req.TicketID).
		SetPhaseID(req.PhaseID).
		SetDescription(req.Description).
		SetPriority(task.Priority(priority))
	if req.TaskType != "" {
		builder = builder.SetTaskType(req.TaskType)
	}
	if req.DeadlineAt != nil {
		builder = builder.SetDeadlineAt(*req.DeadlineAt)
	}
	if len(req.OwnedFiles) > 0 {
		builder = builder.SetOwnedFiles(req.OwnedFiles)
	}
	if len(req.Dependencies) > 0 {
		builder = builder.SetDependencies(req.Dependencies)
	}
	if req.ValidationEnabled != nil {
		builder = builder.SetValidationEnabled(*req.ValidationEnabled)
	}
	if req.MaxRetries != nil {
		builder = builder.SetMaxRetries(*req.MaxRetries)
	}
	if artifacts != nil && artifacts.ContentHash != "" {
		builder = builder.SetContentHash(artifacts.ContentHash)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, services.ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	// Initial score. Dependents are counted among the ticket's live tasks;
	// a fresh id normally has none, but DAG batches may reference
	// caller-assigned ids that already exist.
	dependents, err := s.dependentCount(ctx, req.TicketID, created.ID)
	if err != nil {
		s.logger.Warn("Failed to count dependents for initial score", "task_id", created.ID, "error", err)
		dependents = 0
	}
	score := s.scorer.Compute(created, dependents, time.Now())
	created, err = created.Update().SetScore(score).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write initial score: %w", err)
	}

	if artifacts != nil && len(artifacts.Embedding) > 0 {
		if err := database.SetTaskEmbedding(ctx, s.db.DB(), created.ID, artifacts.Embedding); err != nil {
			s.logger.Warn("Failed to store task embedding", "task_id", created.ID, "error", err)
		}
	}

	if err := s.publisher.PublishTaskEnqueued(ctx, events.TaskEnqueuedPayload{
		TaskID:   created.ID,
		TicketID: created.TicketID,
		PhaseID:  created.PhaseID,
		TaskType: created.TaskType,
		Priority: string(created.Priority),
		Score:    created.Score,
	}); err != nil {
		s.logger.Warn("Failed to publish task.enqueued", "task_id", created.ID, "error", err)
	}

	return created, nil
}

// NextReady claims the highest-scored ready task for a phase. The claim
// is one transaction: lock top candidates with SKIP LOCKED, take the first
// whose dependencies are all completed, move it pending→claiming. The
// caller must Finalize or Release the claim; claims older than ClaimTTL
// are reaped back to pending.
func (s *Service) NextReady(ctx context.Context, phaseID string) (*ent.Task, error) {
	if phaseID == "" {
		return nil, services.NewValidationError("phase_id", "required")
	}

	var claimed *ent.Task
	err := database.WithRetry(ctx, "claim next task", func(ctx context.Context) error {
		var err error
		claimed, err = s.claimNext(ctx, phaseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publishStatusChanged(ctx, claimed, task.StatusPending, task.StatusClaiming, "claimed", "")
	return claimed, nil
}

// claimNext runs the single-transaction claim protocol.
func (s *Service) claimNext(ctx context.Context, phaseID string) (*ent.Task, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for offset := 0; ; offset += claimCandidateWindow {
		candidates, err := tx.Task.Query().
			Where(
				task.PhaseIDEQ(phaseID),
				task.StatusEQ(task.StatusPending),
			).
			Order(ent.Desc(task.FieldScore), ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
			Offset(offset).
			Limit(claimCandidateWindow).
			ForUpdate(sql.WithLockAction(sql.SkipLocked)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query ready tasks: %w", err)
		}

		for _, candidate := range candidates {
			ok, err := s.dependenciesCompleted(ctx, tx, candidate)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}

			claimed, err := candidate.Update().
				SetStatus(task.StatusClaiming).
				SetClaimedAt(time.Now()).
				Save(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to claim task: %w", err)
			}
			if err := tx.Commit(); err != nil {
				return nil, fmt.Errorf("failed to commit claim: %w", err)
			}
			return claimed, nil
		}

		if len(candidates) < claimCandidateWindow {
			return nil, ErrNoTasksAvailable
		}
	}
}

// dependenciesCompleted reports whether every task the candidate depends
// on has reached completed. A dependency id that matches no row counts as
// unmet.
func (s *Service) dependenciesCompleted(ctx context.Context, tx *ent.Tx, candidate *ent.Task) (bool, error) {
	ids := uniqueIDs(candidate.Dependencies[depsKey])
	if len(ids) == 0 {
		return true, nil
	}

	done, err := tx.Task.Query().
		Where(task.IDIn(ids...), task.StatusEQ(task.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check dependencies: %w", err)
	}
	return done == len(ids), nil
}

// Finalize moves a claimed task to assigned with its worker agent.
func (s *Service) Finalize(ctx context.Context, taskID, agentID, sandboxID string) (*ent.Task, error) {
	if agentID == "" {
		return nil, services.NewValidationError("agent_id", "required")
	}

	update := s.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusClaiming)).
		SetStatus(task.StatusAssigned).
		SetAssignedAgentID(agentID)
	if sandboxID != "" {
		update = update.SetSandboxID(sandboxID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize claim: %w", err)
	}
	if n == 0 {
		return nil, s.classifyMissedUpdate(ctx, taskID)
	}

	finalized, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load finalized task: %w", err)
	}

	s.publishStatusChanged(ctx, finalized, task.StatusClaiming, task.StatusAssigned, "finalized", agentID)
	return finalized, nil
}

// Release returns a claimed task to pending without dispatching it.
func (s *Service) Release(ctx context.Context, taskID string) error {
	n, err := s.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(task.StatusClaiming)).
		SetStatus(task.StatusPending).
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to release claim: %w", err)
	}
	if n == 0 {
		return s.classifyMissedUpdate(ctx, taskID)
	}

	released, err := s.db.Task.Get(ctx, taskID)
	if err == nil {
		s.publishStatusChanged(ctx, released, task.StatusClaiming, task.StatusPending, "released", "")
	}
	return nil
}

// ReadyTasks is a read-only view of the phase's pending tasks in dispatch
// order.
func (s *Service) ReadyTasks(ctx context.Context, phaseID string, limit int) ([]*ent.Task, error) {
	if phaseID == "" {
		return nil, services.NewValidationError("phase_id", "required")
	}

	query := s.db.Task.Query().
		Where(task.PhaseIDEQ(phaseID), task.StatusEQ(task.StatusPending)).
		Order(ent.Desc(task.FieldScore), ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	tasks, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready tasks: %w", err)
	}
	return tasks, nil
}

// UpdateStatus applies a worker-reported status change. Accepted targets
// are running, completed and failed; review states belong to the
// validation orchestrator and the claim states to the claim protocol.
func (s *Service) UpdateStatus(httpCtx context.Context, taskID string, req models.UpdateTaskStatusRequest) (*ent.Task, error) {
	target := task.Status(req.Status)
	switch target {
	case task.StatusRunning, task.StatusCompleted, task.StatusFailed:
	default:
		return nil, services.NewValidationError("status", fmt.Sprintf("%q is not a worker-reported status", req.Status))
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	current, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if !CanTransition(current.Status, target) {
		return nil, services.ErrIllegalTransition
	}
	if current.Status == task.StatusUnderReview || current.Status == task.StatusValidationInProgress {
		return nil, services.NewValidationError("status", "task is in review: the validation orchestrator owns this transition")
	}
	if target == task.StatusCompleted && current.Status == task.StatusRunning && current.ValidationEnabled {
		return nil, services.NewValidationError("status", "validation is enabled: submit the task for review instead")
	}

	now := time.Now()
	update := s.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(current.Status)).
		SetStatus(target)
	if req.AgentID != "" {
		update = update.SetAssignedAgentID(req.AgentID)
	}
	if req.Result != nil {
		update = update.SetResult(req.Result)
	}
	if req.ErrorMessage != "" {
		update = update.SetErrorMessage(req.ErrorMessage)
	}
	if req.CommitSHA != "" {
		update = update.SetCommitSha(req.CommitSHA)
	}
	if target == task.StatusRunning && current.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	if IsTerminal(target) {
		update = update.SetCompletedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}
	if n == 0 {
		// The row moved between read and write.
		return nil, services.ErrIllegalTransition
	}

	updated, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load updated task: %w", err)
	}

	s.publishStatusChanged(ctx, updated, current.Status, target, "", req.AgentID)
	switch target {
	case task.StatusCompleted:
		s.publishCompleted(ctx, updated, req.AgentID)
	case task.StatusFailed:
		s.publishFailed(ctx, updated, req.ErrorMessage, false)
	}

	return updated, nil
}

// MarkFailed records a failed attempt. With retries remaining the task
// returns to pending with its score recomputed; otherwise it is failed
// for good.
func (s *Service) MarkFailed(httpCtx context.Context, taskID, reason string) (*ent.Task, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	current, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	switch current.Status {
	case task.StatusPending, task.StatusClaiming, task.StatusCompleted, task.StatusFailed:
		return nil, services.ErrIllegalTransition
	}

	retryCount := current.RetryCount + 1
	willRetry := retryCount < current.MaxRetries
	now := time.Now()

	update := s.db.Task.Update().
		Where(task.IDEQ(taskID), task.StatusEQ(current.Status)).
		SetRetryCount(retryCount).
		SetErrorMessage(reason)
	if willRetry {
		retried := *current
		retried.RetryCount = retryCount
		dependents, err := s.dependentCount(ctx, current.TicketID, current.ID)
		if err != nil {
			s.logger.Warn("Failed to count dependents for retry score", "task_id", taskID, "error", err)
		}
		update = update.
			SetStatus(task.StatusPending).
			SetScore(s.scorer.Compute(&retried, dependents, now)).
			ClearAssignedAgentID().
			ClearSandboxID().
			ClearClaimedAt()
	} else {
		update = update.
			SetStatus(task.StatusFailed).
			SetCompletedAt(now)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark task failed: %w", err)
	}
	if n == 0 {
		return nil, services.ErrIllegalTransition
	}

	updated, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task: %w", err)
	}

	to := task.StatusFailed
	if willRetry {
		to = task.StatusPending
	}
	s.publishStatusChanged(ctx, updated, current.Status, to, "attempt failed", "")
	s.publishFailed(ctx, updated, reason, willRetry)

	return updated, nil
}

// RecomputeScores refreshes the scores of pending tasks, optionally
// narrowed to one phase. Per-task write failures are logged and skipped;
// a stale score only delays dispatch.
func (s *Service) RecomputeScores(ctx context.Context, phaseID string) (int, error) {
	live, err := s.db.Task.Query().
		Where(task.StatusNotIn(task.StatusCompleted, task.StatusFailed)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load live tasks: %w", err)
	}

	dependents := make(map[string]int)
	for _, t := range live {
		for _, dep := range uniqueIDs(t.Dependencies[depsKey]) {
			dependents[dep]++
		}
	}

	now := time.Now()
	updated := 0
	for _, t := range live {
		if t.Status != task.StatusPending {
			continue
		}
		if phaseID != "" && t.PhaseID != phaseID {
			continue
		}
		score := s.scorer.Compute(t, dependents[t.ID], now)
		if diff := score - t.Score; diff < scoreEpsilon && diff > -scoreEpsilon {
			continue
		}
		if err := s.db.Task.UpdateOneID(t.ID).SetScore(score).Exec(ctx); err != nil {
			s.logger.Warn("Failed to write recomputed score", "task_id", t.ID, "error", err)
			continue
		}
		updated++
	}

	return updated, nil
}

// Get retrieves a task by id.
func (s *Service) Get(ctx context.Context, taskID string) (*ent.Task, error) {
	t, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListByTicket retrieves a ticket's tasks in creation order, optionally
// filtered by status.
func (s *Service) ListByTicket(ctx context.Context, ticketID, status string) ([]*ent.Task, error) {
	query := s.db.Task.Query().Where(task.TicketIDEQ(ticketID))
	if status != "" {
		query = query.Where(task.StatusEQ(task.Status(status)))
	}
	tasks, err := query.Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// PendingCount returns the queue depth, optionally per phase.
func (s *Service) PendingCount(ctx context.Context, phaseID string) (int, error) {
	query := s.db.Task.Query().Where(task.StatusEQ(task.StatusPending))
	if phaseID != "" {
		query = query.Where(task.PhaseIDEQ(phaseID))
	}
	count, err := query.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return count, nil
}

// dependentCount counts the ticket's live tasks that depend on taskID.
func (s *Service) dependentCount(ctx context.Context, ticketID, taskID string) (int, error) {
	siblings, err := s.db.Task.Query().
		Where(
			task.TicketIDEQ(ticketID),
			task.StatusNotIn(task.StatusCompleted, task.StatusFailed),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load ticket tasks: %w", err)
	}

	count := 0
	for _, sibling := range siblings {
		for _, dep := range uniqueIDs(sibling.Dependencies[depsKey]) {
			if dep == taskID {
				count++
			}
		}
	}
	return count, nil
}

// classifyMissedUpdate distinguishes a vanished row from a lost
// status race after a conditional update matched nothing.
func (s *Service) classifyMissedUpdate(ctx context.Context, taskID string) error {
	_, err := s.db.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}
	return services.ErrIllegalTransition
}

func (s *Service) publishStatusChanged(ctx context.Context, t *ent.Task, from, to task.Status, reason, agentID string) {
	if err := s.publisher.PublishTaskStatusChanged(ctx, events.TaskStatusChangedPayload{
		TaskID:   t.ID,
		TicketID: t.TicketID,
		From:     string(from),
		To:       string(to),
		Reason:   reason,
		AgentID:  agentID,
	}); err != nil {
		s.logger.Warn("Failed to publish task.status.changed", "task_id", t.ID, "error", err)
	}
}

func (s *Service) publishCompleted(ctx context.Context, t *ent.Task, agentID string) {
	if err := s.publisher.PublishTaskCompleted(ctx, events.TaskCompletedPayload{
		TaskID:   t.ID,
		TicketID: t.TicketID,
		AgentID:  agentID,
	}); err != nil {
		s.logger.Warn("Failed to publish task.completed", "task_id", t.ID, "error", err)
	}
}

func (s *Service) publishFailed(ctx context.Context, t *ent.Task, reason string, willRetry bool) {
	if err := s.publisher.PublishTaskFailed(ctx, events.TaskFailedPayload{
		TaskID:     t.ID,
		TicketID:   t.TicketID,
		Reason:     reason,
		RetryCount: t.RetryCount,
		WillRetry:  willRetry,
	}); err != nil {
		s.logger.Warn("Failed to publish task.failed", "task_id", t.ID, "error", err)
	}
}

// boostPriority raises a priority one level; CRITICAL stays put.
func boostPriority(p string) string {
	switch p {
	case "LOW":
		return "MEDIUM"
	case "MEDIUM":
		return "HIGH"
	case "HIGH":
		return "CRITICAL"
	}
	return p
}

func uniqueIDs(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[string]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
