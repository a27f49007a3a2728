package models

import (
	"time"

	"github.com/droverhq/drover/ent"
)

// EnqueueTaskRequest contains fields for enqueueing a task
type EnqueueTaskRequest struct {
	TaskID            string              `json:"task_id,omitempty"`
	TicketID          string              `json:"ticket_id"`
	PhaseID           string              `json:"phase_id"`
	TaskType          string              `json:"task_type,omitempty"`
	Description       string              `json:"description"`
	Priority          *string             `json:"priority,omitempty"` // LOW, MEDIUM, HIGH or CRITICAL
	DeadlineAt        *time.Time          `json:"deadline_at,omitempty"`
	OwnedFiles        []string            `json:"owned_files,omitempty"`
	Dependencies      map[string][]string `json:"dependencies,omitempty"` // {"depends_on": [task_id, ...]}
	ValidationEnabled *bool               `json:"validation_enabled,omitempty"`
	MaxRetries        *int                `json:"max_retries,omitempty"`
	PriorityBoost     bool                `json:"priority_boost,omitempty"`
	SkipDedup         bool                `json:"skip_dedup,omitempty"`
}

// UpdateTaskStatusRequest contains fields for a worker-reported status change
type UpdateTaskStatusRequest struct {
	Status       string         `json:"status"`
	AgentID      string         `json:"agent_id,omitempty"`
	Result       map[string]any `json:"result,omitempty"`
	ErrorMessage string         `json:"error_message,omitempty"`
	CommitSHA    string         `json:"commit_sha,omitempty"`
}

// SubmitForReviewRequest contains fields for a worker submitting its
// finished task for validation
type SubmitForReviewRequest struct {
	AgentID   string         `json:"agent_id,omitempty"`
	CommitSHA string         `json:"commit_sha"`
	Result    map[string]any `json:"result,omitempty"`
}

// ReviewRequest contains fields for a validator's review verdict
type ReviewRequest struct {
	ValidatorAgentID string         `json:"validator_agent_id"`
	Passed           bool           `json:"passed"`
	Feedback         string         `json:"feedback,omitempty"`
	Evidence         map[string]any `json:"evidence,omitempty"`
	Recommendations  []string       `json:"recommendations,omitempty"`
}

// TaskResponse wraps a Task
type TaskResponse struct {
	*ent.Task
}

// TasksResponse contains a list of tasks
type TasksResponse struct {
	Tasks []*ent.Task `json:"tasks"`
}
