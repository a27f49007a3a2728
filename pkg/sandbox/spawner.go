package sandbox

import (
	"context"
	"errors"
	"fmt"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	"github.com/droverhq/drover/pkg/validation"
)

var (
	_ queue.Spawner               = (*AgentSpawner)(nil)
	_ validation.ValidatorSpawner = (*AgentSpawner)(nil)
)

// AgentSpawner turns spawn receipts into registered agents. It satisfies
// both the scheduler's worker-spawner and the orchestrator's
// validator-spawner contracts, so one adapter serves both loops.
type AgentSpawner struct {
	gateway Gateway
	agents  *services.AgentService
}

// NewAgentSpawner creates a spawner backed by the provisioner gateway.
func NewAgentSpawner(gateway Gateway, agents *services.AgentService) *AgentSpawner {
	return &AgentSpawner{gateway: gateway, agents: agents}
}

// Spawn starts a worker agent for a claimed task.
func (s *AgentSpawner) Spawn(ctx context.Context, tsk *ent.Task) (*queue.SpawnedAgent, error) {
	return s.spawn(ctx, "worker", tsk)
}

// SpawnValidator starts a validator agent for a task under review.
func (s *AgentSpawner) SpawnValidator(ctx context.Context, tsk *ent.Task) (*queue.SpawnedAgent, error) {
	return s.spawn(ctx, "validator", tsk)
}

func (s *AgentSpawner) spawn(ctx context.Context, agentType string, tsk *ent.Task) (*queue.SpawnedAgent, error) {
	receipt, err := s.gateway.SpawnAgent(ctx, SpawnRequest{
		AgentType: agentType,
		PhaseID:   tsk.PhaseID,
		TaskID:    tsk.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("spawn %s: %w", agentType, err)
	}

	if err := s.register(ctx, agentType, tsk.PhaseID, receipt); err != nil {
		return nil, err
	}

	return &queue.SpawnedAgent{AgentID: receipt.AgentID, SandboxID: receipt.SandboxID}, nil
}

// register records the spawned agent so heartbeats and the validator-timeout
// sweep have a row to work against. A reused idle agent is already
// registered; that is not a failure.
func (s *AgentSpawner) register(ctx context.Context, agentType, phaseID string, receipt *SpawnReceipt) error {
	req := models.RegisterAgentRequest{
		AgentID:   receipt.AgentID,
		AgentType: agentType,
		PhaseID:   &phaseID,
	}
	if receipt.SandboxID != "" {
		req.SandboxID = &receipt.SandboxID
	}

	_, err := s.agents.RegisterAgent(ctx, req)
	if err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		return fmt.Errorf("register %s %s: %w", agentType, receipt.AgentID, err)
	}
	return nil
}
