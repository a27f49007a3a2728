package models

import "github.com/droverhq/drover/ent"

// RegisterAgentRequest contains fields for registering a spawned agent
type RegisterAgentRequest struct {
	AgentID      string   `json:"agent_id,omitempty"`
	AgentType    string   `json:"agent_type"` // worker, validator, diagnostic or monitor
	PhaseID      *string  `json:"phase_id,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	SandboxID    *string  `json:"sandbox_id,omitempty"`
}

// FeedbackRequest contains fields for relaying validation feedback to an agent
type FeedbackRequest struct {
	AgentID string `json:"agent_id"`
	Message string `json:"message"`
}

// AgentResponse wraps an Agent
type AgentResponse struct {
	*ent.Agent
}

// AgentsResponse contains a list of agents
type AgentsResponse struct {
	Agents []*ent.Agent `json:"agents"`
}
