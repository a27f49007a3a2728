package api

import (
	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/validation"
)

// EnqueueTaskResponse is returned by POST /api/v1/tasks. On a duplicate
// skip, Task is nil and Dedup names the matched row.
type EnqueueTaskResponse struct {
	Task  *ent.Task     `json:"task,omitempty"`
	Dedup *dedup.Result `json:"dedup,omitempty"`
}

// RecomputeResponse is returned by POST /api/v1/queue/recompute.
type RecomputeResponse struct {
	Recomputed int `json:"recomputed"`
}

// FeedbackResponse is returned by POST /api/v1/feedback. Delivered is
// false when the target agent is unknown; the feedback was dropped.
type FeedbackResponse struct {
	Delivered bool `json:"delivered"`
}

// ActiveValidatorsResponse is returned by GET /api/v1/validators/active,
// keyed by task id.
type ActiveValidatorsResponse struct {
	Validators map[string]validation.ActiveValidator `json:"validators"`
}

// CloneReadyResponse is returned by GET /api/v1/tickets/:id/clone-ready.
type CloneReadyResponse struct {
	Ready  bool   `json:"ready"`
	Reason string `json:"reason,omitempty"`
}

// ReleasedLocksResponse is returned by POST /api/v1/agents/:id/locks/release.
type ReleasedLocksResponse struct {
	Released int `json:"released"`
}

// DiagnosticRunResponse is returned by POST /api/v1/diagnostics/trigger.
// Skipped is true when a safeguard suppressed the run before a row was
// created; Run then stays nil.
type DiagnosticRunResponse struct {
	Run     *ent.DiagnosticRun `json:"run,omitempty"`
	Skipped bool               `json:"skipped,omitempty"`
}

// DiagnosticRunsResponse is returned by GET /api/v1/diagnostics/runs.
type DiagnosticRunsResponse struct {
	Runs []*ent.DiagnosticRun `json:"runs"`
}

// AgentResultsResponse is returned by GET /api/v1/tasks/:id/results.
type AgentResultsResponse struct {
	Results []*ent.AgentResult `json:"results"`
}

// WorkflowResultsResponse is returned by GET /api/v1/tickets/:id/results.
type WorkflowResultsResponse struct {
	Results []*ent.WorkflowResult `json:"results"`
}

// HealthCheck is one named probe inside a health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Version   string                 `json:"version"`
	Database  *database.HealthStatus `json:"database,omitempty"`
	Scheduler *queue.SchedulerHealth `json:"scheduler,omitempty"`
	Checks    map[string]HealthCheck `json:"checks"`
}
