package models

import "github.com/droverhq/drover/ent"

// SubmitAgentResultRequest contains fields for a per-task markdown deliverable
type SubmitAgentResultRequest struct {
	TaskID          string  `json:"task_id"`
	AgentID         string  `json:"agent_id"`
	MarkdownContent string  `json:"markdown_content"`
	Summary         *string `json:"summary,omitempty"`
	CommitSHA       *string `json:"commit_sha,omitempty"`
}

// SubmitWorkflowResultRequest contains fields for a workflow-level deliverable
type SubmitWorkflowResultRequest struct {
	TicketID         string  `json:"ticket_id"`
	MarkdownFilePath string  `json:"markdown_file_path"`
	SubmittedBy      *string `json:"submitted_by,omitempty"`
	Summary          *string `json:"summary,omitempty"`
}

// AgentResultResponse wraps an AgentResult
type AgentResultResponse struct {
	*ent.AgentResult
}

// WorkflowResultResponse wraps a WorkflowResult
type WorkflowResultResponse struct {
	*ent.WorkflowResult
}
