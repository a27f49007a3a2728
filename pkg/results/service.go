package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/workflowresult"
	"github.com/droverhq/drover/pkg/masking"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
)

// Service persists validated deliverables and drives workflow results through
// their review states.
type Service struct {
	db     *ent.Client
	masker *masking.Service
}

// NewService creates a results intake service.
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// SetMasker installs the credential masker applied to submitted markdown.
// Unset, submissions are stored verbatim.
func (s *Service) SetMasker(m *masking.Service) {
	s.masker = m
}

// SubmitAgentResult stores a per-task markdown deliverable. A task may
// accumulate several results across needs-work iterations; every submission
// is kept.
func (s *Service) SubmitAgentResult(httpCtx context.Context, req models.SubmitAgentResultRequest) (*ent.AgentResult, error) {
	if req.TaskID == "" {
		return nil, services.NewValidationError("task_id", "required")
	}
	if req.AgentID == "" {
		return nil, services.NewValidationError("agent_id", "required")
	}
	if err := ValidateMarkdown(req.MarkdownContent); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	if _, err := s.db.Task.Get(ctx, req.TaskID); err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	// Masking happens at intake so every downstream reader, human or LLM,
	// sees the scrubbed deliverable.
	content := s.masker.Mask(req.MarkdownContent)
	summary := req.Summary
	if summary != nil {
		masked := s.masker.Mask(*summary)
		summary = &masked
	}

	result, err := s.db.AgentResult.Create().
		SetID(uuid.New().String()).
		SetTaskID(req.TaskID).
		SetAgentID(req.AgentID).
		SetMarkdownContent(content).
		SetNillableSummary(summary).
		SetNillableCommitSha(req.CommitSHA).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent result: %w", err)
	}

	return result, nil
}

// SubmitWorkflowResult records a workflow-level deliverable by path. The
// result starts out submitted; a validator moves it on from there.
func (s *Service) SubmitWorkflowResult(httpCtx context.Context, req models.SubmitWorkflowResultRequest) (*ent.WorkflowResult, error) {
	if req.TicketID == "" {
		return nil, services.NewValidationError("ticket_id", "required")
	}
	path := strings.TrimSpace(req.MarkdownFilePath)
	if err := ValidateResultPath(path); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	if _, err := s.db.Ticket.Get(ctx, req.TicketID); err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	result, err := s.db.WorkflowResult.Create().
		SetID(uuid.New().String()).
		SetTicketID(req.TicketID).
		SetMarkdownFilePath(path).
		SetNillableSubmittedBy(req.SubmittedBy).
		SetNillableSummary(req.Summary).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store workflow result: %w", err)
	}

	return result, nil
}

// ValidateWorkflowResult marks a submitted result validated and stamps
// validated_at. The diagnostic engine reads this status as proof that the
// workflow produced its deliverable.
func (s *Service) ValidateWorkflowResult(httpCtx context.Context, resultID string) (*ent.WorkflowResult, error) {
	return s.transition(httpCtx, resultID, workflowresult.StatusValidated)
}

// RejectWorkflowResult marks a submitted result rejected.
func (s *Service) RejectWorkflowResult(httpCtx context.Context, resultID string) (*ent.WorkflowResult, error) {
	return s.transition(httpCtx, resultID, workflowresult.StatusRejected)
}

// transition moves a workflow result out of submitted. Repeating a decision
// is a no-op, so replayed deliveries converge on the same row; crossing from
// one terminal status to the other is illegal.
func (s *Service) transition(httpCtx context.Context, resultID string, target workflowresult.Status) (*ent.WorkflowResult, error) {
	if resultID == "" {
		return nil, services.NewValidationError("result_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	current, err := s.db.WorkflowResult.Get(ctx, resultID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow result: %w", err)
	}
	if current.Status == target {
		return current, nil
	}
	if current.Status != workflowresult.StatusSubmitted {
		return nil, services.ErrIllegalTransition
	}

	update := s.db.WorkflowResult.Update().
		Where(workflowresult.IDEQ(resultID), workflowresult.StatusEQ(workflowresult.StatusSubmitted)).
		SetStatus(target)
	if target == workflowresult.StatusValidated {
		update.SetValidatedAt(time.Now())
	}
	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update workflow result: %w", err)
	}
	if n == 0 {
		return nil, services.ErrIllegalTransition
	}

	updated, err := s.db.WorkflowResult.Get(ctx, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload workflow result: %w", err)
	}
	return updated, nil
}

// AgentResultsForTask lists a task's deliverables, newest first.
func (s *Service) AgentResultsForTask(httpCtx context.Context, taskID string) ([]*ent.AgentResult, error) {
	if taskID == "" {
		return nil, services.NewValidationError("task_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	rows, err := s.db.AgentResult.Query().
		Where(agentresult.TaskIDEQ(taskID)).
		Order(ent.Desc(agentresult.FieldCreatedAt), ent.Desc(agentresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent results: %w", err)
	}
	return rows, nil
}

// WorkflowResultsForTicket lists a ticket's workflow results, newest first.
func (s *Service) WorkflowResultsForTicket(httpCtx context.Context, ticketID string) ([]*ent.WorkflowResult, error) {
	if ticketID == "" {
		return nil, services.NewValidationError("ticket_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	rows, err := s.db.WorkflowResult.Query().
		Where(workflowresult.TicketIDEQ(ticketID)).
		Order(ent.Desc(workflowresult.FieldCreatedAt), ent.Desc(workflowresult.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflow results: %w", err)
	}
	return rows, nil
}
