package events

// Typed payloads for every event in the taxonomy. These marshal into
// SystemEvent.Payload; after a NOTIFY round-trip consumers see them as
// map[string]any, so field names are part of the wire contract.

// TicketCreatedPayload is the payload for ticket.created events.
type TicketCreatedPayload struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title"`
	PhaseID  string `json:"phase_id"`
}

// TaskEnqueuedPayload is the payload for task.enqueued events.
type TaskEnqueuedPayload struct {
	TaskID   string  `json:"task_id"`
	TicketID string  `json:"ticket_id"`
	PhaseID  string  `json:"phase_id"`
	TaskType string  `json:"task_type"`
	Priority string  `json:"priority"`
	Score    float64 `json:"score"`
}

// TaskStatusChangedPayload is the payload for task.status.changed events.
// Published on every persisted status transition, including claim steps.
type TaskStatusChangedPayload struct {
	TaskID   string `json:"task_id"`
	TicketID string `json:"ticket_id"`
	From     string `json:"from"`
	To       string `json:"to"`
	Reason   string `json:"reason,omitempty"`
	AgentID  string `json:"agent_id,omitempty"`
}

// TaskCompletedPayload is the payload for task.completed events.
type TaskCompletedPayload struct {
	TaskID   string `json:"task_id"`
	TicketID string `json:"ticket_id"`
	AgentID  string `json:"agent_id,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// TaskFailedPayload is the payload for task.failed events.
type TaskFailedPayload struct {
	TaskID     string `json:"task_id"`
	TicketID   string `json:"ticket_id"`
	Reason     string `json:"reason"`
	RetryCount int    `json:"retry_count"`
	WillRetry  bool   `json:"will_retry"`
}

// ValidationPayload is the shared payload for validation_started,
// validation_review_submitted, validation_passed and validation_failed.
// Passed/Feedback are meaningful from review submission onward.
type ValidationPayload struct {
	TaskID           string `json:"task_id"`
	TicketID         string `json:"ticket_id"`
	ValidatorAgentID string `json:"validator_agent_id,omitempty"`
	Iteration        int    `json:"iteration"`
	Passed           bool   `json:"passed,omitempty"`
	Feedback         string `json:"feedback,omitempty"`
}

// DiagnosticPayload is the payload for diagnostic.triggered,
// diagnostic.completed and diagnostic.failed.
type DiagnosticPayload struct {
	RunID        string   `json:"run_id"`
	TicketID     string   `json:"ticket_id"`
	Trigger      string   `json:"trigger"`
	Status       string   `json:"status,omitempty"`
	TasksCreated int      `json:"tasks_created,omitempty"`
	TaskIDs      []string `json:"task_ids,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// MemoryStoredPayload is the payload for memory.stored events.
type MemoryStoredPayload struct {
	MemoryID   string `json:"memory_id"`
	TaskID     string `json:"task_id"`
	TicketID   string `json:"ticket_id"`
	MemoryType string `json:"memory_type"`
	Success    bool   `json:"success"`
}

// PatternLearnedPayload is the payload for memory.pattern.learned events.
type PatternLearnedPayload struct {
	PatternID   string  `json:"pattern_id"`
	PatternType string  `json:"pattern_type"`
	Confidence  float64 `json:"confidence"`
}

// ACEWorkflowCompletedPayload is the payload for ace.workflow.completed
// events, published by the Curator at the end of the pipeline.
type ACEWorkflowCompletedPayload struct {
	TaskID        string `json:"task_id"`
	TicketID      string `json:"ticket_id"`
	MemoryID      string `json:"memory_id"`
	InsightCount  int    `json:"insight_count"`
	ErrorCount    int    `json:"error_count"`
	PlaybookAdds  int    `json:"playbook_adds"`
	PlaybookSkips int    `json:"playbook_skips"`
}

// DiscoveryPayload is the payload for discovery.recorded,
// discovery.branch_created and discovery.resolved.
type DiscoveryPayload struct {
	DiscoveryID    string   `json:"discovery_id"`
	SourceTaskID   string   `json:"source_task_id"`
	TicketID       string   `json:"ticket_id"`
	DiscoveryType  string   `json:"discovery_type"`
	SpawnedTaskIDs []string `json:"spawned_task_ids,omitempty"`
	Resolution     string   `json:"resolution,omitempty"`
}

// AnomalyPayload is the payload for monitor.anomaly.detected events.
type AnomalyPayload struct {
	AnomalyID    string  `json:"anomaly_id"`
	MetricName   string  `json:"metric_name"`
	Observed     float64 `json:"observed"`
	BaselineMean float64 `json:"baseline_mean"`
	ZScore       float64 `json:"zscore"`
	Severity     string  `json:"severity"`
}

// ValidationFeedbackPayload is the payload for agent.validation_feedback
// events: the orchestrator relaying reviewer feedback to the task's agent.
type ValidationFeedbackPayload struct {
	TaskID    string `json:"task_id"`
	TicketID  string `json:"ticket_id"`
	AgentID   string `json:"agent_id"`
	Iteration int    `json:"iteration"`
	Feedback  string `json:"feedback"`
}

// DuplicateFoundPayload is the payload for dedup.duplicate_found events.
type DuplicateFoundPayload struct {
	Scope       string  `json:"scope"`
	CandidateID string  `json:"candidate_id,omitempty"`
	MatchID     string  `json:"match_id"`
	Similarity  float64 `json:"similarity"`
	Action      string  `json:"action"` // skip or merge
}

// HandlerTimeoutPayload is the payload for bus.handler_timeout events.
type HandlerTimeoutPayload struct {
	Handler    string `json:"handler"`
	EventType  string `json:"event_type"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	DeadlineMS int64  `json:"deadline_ms"`
}
