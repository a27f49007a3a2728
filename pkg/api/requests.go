package api

// Route-local request bodies. DTOs shared with the service layer live in
// pkg/models; these exist only for routes whose service method takes
// plain arguments.

// FailTaskRequest is the body for POST /api/v1/tasks/:id/fail.
type FailTaskRequest struct {
	Reason string `json:"reason"`
}

// UpdateTicketStatusRequest is the body for PUT /api/v1/tickets/:id/status.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// UpdateTicketPhaseRequest is the body for PUT /api/v1/tickets/:id/phase.
type UpdateTicketPhaseRequest struct {
	PhaseID string `json:"phase_id"`
}

// UpdateAgentStatusRequest is the body for PUT /api/v1/agents/:id/status.
type UpdateAgentStatusRequest struct {
	Status string `json:"status"`
}

// AttachDiscoveryTasksRequest is the body for POST /api/v1/discoveries/:id/tasks.
type AttachDiscoveryTasksRequest struct {
	TaskIDs []string `json:"task_ids"`
}

// ResolveDiscoveryRequest is the body for POST /api/v1/discoveries/:id/resolve.
type ResolveDiscoveryRequest struct {
	Resolution string `json:"resolution"`
}

// TriggerDiagnosticRequest is the body for POST /api/v1/diagnostics/trigger.
type TriggerDiagnosticRequest struct {
	TicketID string         `json:"ticket_id"`
	Reason   string         `json:"reason,omitempty"`
	Detail   map[string]any `json:"detail,omitempty"`
}
