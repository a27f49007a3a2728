package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/pkg/models"
)

// AgentService manages the registered agent population: registration,
// heartbeats, and the stale-heartbeat queries the validator timeout sweep
// runs on.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// RegisterAgent registers a spawned agent
func (s *AgentService) RegisterAgent(httpCtx context.Context, req models.RegisterAgentRequest) (*ent.Agent, error) {
	switch req.AgentType {
	case "worker", "validator", "diagnostic", "monitor":
	default:
		return nil, NewValidationError("agent_type", "invalid: must be worker, validator, diagnostic or monitor")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	agentID := req.AgentID
	if agentID == "" {
		agentID = uuid.New().String()
	}

	builder := s.client.Agent.Create().
		SetID(agentID).
		SetAgentType(agent.AgentType(req.AgentType)).
		SetLastHeartbeat(time.Now())

	if req.PhaseID != nil {
		builder.SetPhaseID(*req.PhaseID)
	}
	if len(req.Capabilities) > 0 {
		builder.SetCapabilities(req.Capabilities)
	}
	if len(req.Tags) > 0 {
		builder.SetTags(req.Tags)
	}
	if req.SandboxID != nil {
		builder.SetSandboxID(*req.SandboxID)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}

	return a, nil
}

// Heartbeat records a liveness signal from an agent
func (s *AgentService) Heartbeat(ctx context.Context, agentID string) error {
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Agent.UpdateOneID(agentID).
		SetLastHeartbeat(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}

	return nil
}

// UpdateAgentStatus updates an agent's lifecycle status
func (s *AgentService) UpdateAgentStatus(ctx context.Context, agentID, status string) error {
	switch status {
	case "spawning", "idle", "busy", "stopped", "failed":
	default:
		return NewValidationError("status", "invalid: must be spawning, idle, busy, stopped or failed")
	}

	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err := s.client.Agent.UpdateOneID(agentID).
		SetStatus(agent.Status(status)).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update agent status: %w", err)
	}

	return nil
}

// GetAgent retrieves an agent by ID
func (s *AgentService) GetAgent(ctx context.Context, agentID string) (*ent.Agent, error) {
	a, err := s.client.Agent.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return a, nil
}

// AgentExists reports whether an agent is registered
func (s *AgentService) AgentExists(ctx context.Context, agentID string) (bool, error) {
	exists, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check agent existence: %w", err)
	}

	return exists, nil
}

// ListAgents retrieves agents, optionally filtered by type and status
func (s *AgentService) ListAgents(ctx context.Context, agentType, status string) ([]*ent.Agent, error) {
	query := s.client.Agent.Query()

	if agentType != "" {
		query = query.Where(agent.AgentTypeEQ(agent.AgentType(agentType)))
	}
	if status != "" {
		query = query.Where(agent.StatusEQ(agent.Status(status)))
	}

	agents, err := query.Order(ent.Asc(agent.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return agents, nil
}

// StaleAgents retrieves agents of a type whose last heartbeat is older than
// cutoff. Stopped and failed agents are excluded; they are expected silent.
func (s *AgentService) StaleAgents(ctx context.Context, agentType string, cutoff time.Time) ([]*ent.Agent, error) {
	query := s.client.Agent.Query().
		Where(
			agent.LastHeartbeatLT(cutoff),
			agent.StatusNotIn(agent.StatusStopped, agent.StatusFailed),
		)

	if agentType != "" {
		query = query.Where(agent.AgentTypeEQ(agent.AgentType(agentType)))
	}

	agents, err := query.Order(ent.Asc(agent.FieldLastHeartbeat)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale agents: %w", err)
	}

	return agents, nil
}
