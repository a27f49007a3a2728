package sandbox

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

// fakeGateway hands out canned receipts and records what was asked of it.
type fakeGateway struct {
	receipt  *SpawnReceipt
	spawnErr error
	requests []SpawnRequest
}

func (g *fakeGateway) SpawnAgent(_ context.Context, req SpawnRequest) (*SpawnReceipt, error) {
	g.requests = append(g.requests, req)
	if g.spawnErr != nil {
		return nil, g.spawnErr
	}
	return g.receipt, nil
}

func (g *fakeGateway) SendMessage(context.Context, string, string, string) error { return nil }

func testTask(id, phaseID string) *ent.Task {
	return &ent.Task{ID: id, PhaseID: phaseID}
}

func TestAgentSpawner_Spawn(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	gateway := &fakeGateway{receipt: &SpawnReceipt{AgentID: "w-1", SandboxID: "sbx-7"}}
	spawner := NewAgentSpawner(gateway, agents)
	ctx := context.Background()

	spawned, err := spawner.Spawn(ctx, testTask("task-1", "PHASE_IMPLEMENTATION"))
	require.NoError(t, err)
	assert.Equal(t, "w-1", spawned.AgentID)
	assert.Equal(t, "sbx-7", spawned.SandboxID)

	require.Len(t, gateway.requests, 1)
	assert.Equal(t, "worker", gateway.requests[0].AgentType)
	assert.Equal(t, "task-1", gateway.requests[0].TaskID)

	row, err := client.Client.Agent.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, agent.AgentTypeWorker, row.AgentType)
	assert.Equal(t, agent.StatusSpawning, row.Status)
	require.NotNil(t, row.PhaseID)
	assert.Equal(t, "PHASE_IMPLEMENTATION", *row.PhaseID)
	require.NotNil(t, row.SandboxID)
	assert.Equal(t, "sbx-7", *row.SandboxID)
}

func TestAgentSpawner_SpawnValidator(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	gateway := &fakeGateway{receipt: &SpawnReceipt{AgentID: "v-1"}}
	spawner := NewAgentSpawner(gateway, agents)
	ctx := context.Background()

	spawned, err := spawner.SpawnValidator(ctx, testTask("task-2", "PHASE_TESTING"))
	require.NoError(t, err)
	assert.Equal(t, "v-1", spawned.AgentID)
	assert.Empty(t, spawned.SandboxID)

	require.Len(t, gateway.requests, 1)
	assert.Equal(t, "validator", gateway.requests[0].AgentType)

	row, err := client.Client.Agent.Get(ctx, "v-1")
	require.NoError(t, err)
	assert.Equal(t, agent.AgentTypeValidator, row.AgentType)
	assert.Nil(t, row.SandboxID)
}

func TestAgentSpawner_ReusedAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	ctx := context.Background()

	// The provisioner handed back an idle agent the kernel already knows.
	_, err := agents.RegisterAgent(ctx, models.RegisterAgentRequest{
		AgentID:   "w-reused",
		AgentType: "worker",
	})
	require.NoError(t, err)

	gateway := &fakeGateway{receipt: &SpawnReceipt{AgentID: "w-reused", SandboxID: "sbx-2"}}
	spawner := NewAgentSpawner(gateway, agents)

	spawned, err := spawner.Spawn(ctx, testTask("task-3", "PHASE_IMPLEMENTATION"))
	require.NoError(t, err)
	assert.Equal(t, "w-reused", spawned.AgentID)

	count, err := client.Client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAgentSpawner_GatewayFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	agents := services.NewAgentService(client.Client)
	gateway := &fakeGateway{spawnErr: assert.AnError}
	spawner := NewAgentSpawner(gateway, agents)
	ctx := context.Background()

	_, err := spawner.Spawn(ctx, testTask("task-4", "PHASE_IMPLEMENTATION"))
	require.Error(t, err)

	count, err := client.Client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
