package diagnostic

import (
	"context"
	"fmt"
	"time"

	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/workflowresult"
	"github.com/droverhq/drover/pkg/events"
)

// stuckEligible evaluates the stuck conjunction for one ticket: work
// exists, none of it is moving, nothing validated came out, the event
// stream has been silent past the threshold, and the cooldown since the
// last diagnosis has elapsed. The returned reason names the first failed
// conjunct.
func (e *Engine) stuckEligible(ctx context.Context, snap *WorkflowSnapshot) (bool, string, error) {
	if len(snap.Tasks) == 0 {
		return false, "no tasks", nil
	}
	if snap.ActiveTasks > 0 {
		return false, fmt.Sprintf("%d active tasks", snap.ActiveTasks), nil
	}

	validated, err := e.db.WorkflowResult.Query().
		Where(
			workflowresult.TicketIDEQ(snap.Ticket.ID),
			workflowresult.StatusEQ(workflowresult.StatusValidated),
		).
		Exist(ctx)
	if err != nil {
		return false, "", fmt.Errorf("failed to check workflow results: %w", err)
	}
	if validated {
		return false, "validated result exists", nil
	}

	lastActivity, err := e.eventService.LatestEventAt(ctx, events.TicketChannel(snap.Ticket.ID))
	if err != nil {
		return false, "", fmt.Errorf("failed to read ticket activity: %w", err)
	}
	if lastActivity != nil && time.Since(*lastActivity) < e.config.StuckThreshold {
		return false, "recent activity", nil
	}

	if last, ok := e.lastDiagnosedAt(snap.Ticket.ID); ok && time.Since(last) < e.config.Cooldown {
		return false, "cooldown", nil
	}
	return true, "", nil
}

// safeguards returns a non-empty skip reason when diagnosing the ticket
// would be wasted or unsafe. They apply to every trigger, scan or
// explicit.
func (e *Engine) safeguards(ctx context.Context, snap *WorkflowSnapshot) (string, error) {
	ticketID := snap.Ticket.ID

	if len(snap.Tasks) == 0 {
		return "no tasks to diagnose", nil
	}
	if snap.Completed == len(snap.Tasks) && snap.Failed == 0 {
		return "workflow succeeded", nil
	}
	if snap.DiagnosticCompleted > 0 && snap.NonDiagnosticFailed > 0 {
		return "recovery already ran and work still fails, needs human review", nil
	}
	if snap.DiagnosticInFlight {
		return "diagnostic task already in flight", nil
	}
	if count := e.tracker.Count(ticketID); count >= e.config.MaxConsecutiveFailures {
		return fmt.Sprintf("%d consecutive recovery failures", count), nil
	}

	runs, err := e.db.DiagnosticRun.Query().
		Where(diagnosticrun.WorkflowIDEQ(ticketID)).
		Count(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to count diagnostic runs: %w", err)
	}
	if runs >= e.config.MaxDiagnosticsPerWorkflow {
		return fmt.Sprintf("diagnostic cap reached (%d runs)", runs), nil
	}

	ready, reason, err := e.tickets.CloneReady(ctx, ticketID)
	if err != nil {
		return "", fmt.Errorf("failed to check clone readiness: %w", err)
	}
	if !ready {
		return "not clone ready: " + reason, nil
	}
	return "", nil
}
