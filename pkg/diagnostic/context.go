package diagnostic

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/queue"
)

// diagnosticTaskPrefix marks tasks the engine itself spawned. Safeguards
// count them separately from ordinary work.
const diagnosticTaskPrefix = "discovery_diagnostic"

// summaryMaxChars bounds each task description and result excerpt in the
// LLM context.
const summaryMaxChars = 200

const diagnosticSystemPrompt = "You are the workflow diagnostician of an agent " +
	"orchestration system. Workflows stall when every task has stopped moving " +
	"without a validated result. Diagnose the root cause from the task history " +
	"and recommend concrete recovery tasks an autonomous agent can execute."

// WorkflowSnapshot is one ticket's task state, read once per diagnosis and
// shared by the stuck predicate, the safeguards, and the LLM context.
type WorkflowSnapshot struct {
	Ticket *ent.Ticket
	// Tasks in creation order.
	Tasks []*ent.Task

	Completed         int
	Failed            int
	ActiveTasks       int
	PhaseDistribution map[string]int

	DiagnosticCompleted int
	NonDiagnosticFailed int
	// DiagnosticInFlight reports a diagnostic-spawned task in
	// pending/claiming/assigned/running.
	DiagnosticInFlight bool
}

var activeStatusSet = func() map[task.Status]bool {
	set := make(map[task.Status]bool, len(queue.ActiveStatuses))
	for _, s := range queue.ActiveStatuses {
		set[s] = true
	}
	return set
}()

// In-flight for the diagnostic safeguard is narrower than queue-active:
// a diagnostic task sitting in review does not block a new diagnosis.
var diagnosticInFlightSet = map[task.Status]bool{
	task.StatusPending:  true,
	task.StatusClaiming: true,
	task.StatusAssigned: true,
	task.StatusRunning:  true,
}

func (e *Engine) snapshotWorkflow(ctx context.Context, tkt *ent.Ticket) (*WorkflowSnapshot, error) {
	tasks, err := e.db.Task.Query().
		Where(task.TicketIDEQ(tkt.ID)).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket tasks: %w", err)
	}

	snap := &WorkflowSnapshot{
		Ticket:            tkt,
		Tasks:             tasks,
		PhaseDistribution: make(map[string]int),
	}
	for _, t := range tasks {
		snap.PhaseDistribution[t.PhaseID]++
		if activeStatusSet[t.Status] {
			snap.ActiveTasks++
		}
		isDiagnostic := strings.HasPrefix(t.TaskType, diagnosticTaskPrefix)
		switch t.Status {
		case task.StatusCompleted:
			snap.Completed++
			if isDiagnostic {
				snap.DiagnosticCompleted++
			}
		case task.StatusFailed:
			snap.Failed++
			if !isDiagnostic {
				snap.NonDiagnosticFailed++
			}
		}
		if isDiagnostic && diagnosticInFlightSet[t.Status] {
			snap.DiagnosticInFlight = true
		}
	}
	return snap, nil
}

// recentTasks returns up to limit tasks, newest first.
func (s *WorkflowSnapshot) recentTasks(limit int) []*ent.Task {
	n := len(s.Tasks)
	if limit > n {
		limit = n
	}
	out := make([]*ent.Task, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.Tasks[i])
	}
	return out
}

// submittedResults loads the newest agent results across the ticket's
// tasks, for the result-history section of the LLM context.
func (e *Engine) submittedResults(ctx context.Context, snap *WorkflowSnapshot, limit int) ([]*ent.AgentResult, error) {
	if len(snap.Tasks) == 0 {
		return nil, nil
	}
	ids := make([]string, len(snap.Tasks))
	for i, t := range snap.Tasks {
		ids[i] = t.ID
	}
	results, err := e.db.AgentResult.Query().
		Where(agentresult.TaskIDIn(ids...)).
		Order(ent.Desc(agentresult.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent results: %w", err)
	}
	return results, nil
}

// renderPrompt lays the snapshot out as the diagnosis prompt: goal, what
// triggered the run, phase distribution, recent task history, and
// submitted results.
func renderPrompt(snap *WorkflowSnapshot, results []*ent.AgentResult, trigger string, detail map[string]any, taskLimit int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Workflow %s: %s\n", snap.Ticket.ID, snap.Ticket.Title)
	if snap.Ticket.Description != "" {
		fmt.Fprintf(&b, "Goal: %s\n", snap.Ticket.Description)
	}
	fmt.Fprintf(&b, "Trigger: %s\n", trigger)
	for _, key := range sortedKeys(detail) {
		fmt.Fprintf(&b, "  %s: %v\n", key, detail[key])
	}

	fmt.Fprintf(&b, "\nTasks: %d total, %d completed, %d failed, %d active.\n",
		len(snap.Tasks), snap.Completed, snap.Failed, snap.ActiveTasks)
	b.WriteString("Phase distribution:\n")
	for _, phase := range sortedKeys(snap.PhaseDistribution) {
		fmt.Fprintf(&b, "  %s: %d\n", phase, snap.PhaseDistribution[phase])
	}

	fmt.Fprintf(&b, "\nRecent tasks (newest first, up to %d):\n", taskLimit)
	for _, t := range snap.recentTasks(taskLimit) {
		fmt.Fprintf(&b, "- [%s] %s %s: %s", t.Status, t.TaskType, t.ID, truncate(t.Description, summaryMaxChars))
		if t.ErrorMessage != nil && *t.ErrorMessage != "" {
			fmt.Fprintf(&b, " (error: %s)", truncate(*t.ErrorMessage, summaryMaxChars))
		}
		b.WriteString("\n")
	}

	if len(results) > 0 {
		b.WriteString("\nSubmitted results (newest first):\n")
		for _, r := range results {
			excerpt := r.MarkdownContent
			if r.Summary != nil && *r.Summary != "" {
				excerpt = *r.Summary
			}
			fmt.Fprintf(&b, "- task %s by %s: %s\n", r.TaskID, r.AgentID, truncate(excerpt, summaryMaxChars))
		}
	}

	b.WriteString("\nRespond with root_cause (string), hypotheses (description, likelihood 0..1) " +
		"and recommendations (action, task_type, priority LOW|MEDIUM|HIGH|CRITICAL).")
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return cut + "..."
}
