package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/models"
	testdb "github.com/droverhq/drover/test/database"
)

func TestAgentService_RegisterAgent(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	t.Run("registers worker with defaults", func(t *testing.T) {
		phase := "PHASE_IMPLEMENTATION"
		a, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{
			AgentType:    "worker",
			PhaseID:      &phase,
			Capabilities: []string{"python", "go"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "worker", string(a.AgentType))
		assert.Equal(t, "spawning", string(a.Status))
		assert.Equal(t, []string{"python", "go"}, a.Capabilities)
		assert.WithinDuration(t, time.Now(), a.LastHeartbeat, 5*time.Second)
	})

	t.Run("rejects unknown agent type", func(t *testing.T) {
		_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentType: "overseer"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: "a-1", AgentType: "worker"})
		require.NoError(t, err)
		_, err = svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: "a-1", AgentType: "worker"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestAgentService_Heartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	a, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: "a-1", AgentType: "validator"})
	require.NoError(t, err)

	// Backdate the heartbeat, then verify Heartbeat moves it forward.
	past := time.Now().Add(-time.Hour)
	_, err = client.Agent.UpdateOneID(a.ID).SetLastHeartbeat(past).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Heartbeat(ctx, "a-1"))

	refreshed, err := svc.GetAgent(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, refreshed.LastHeartbeat.After(past.Add(30*time.Minute)))

	t.Run("not found", func(t *testing.T) {
		assert.ErrorIs(t, svc.Heartbeat(ctx, "missing"), ErrNotFound)
	})
}

func TestAgentService_UpdateAgentStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: "a-1", AgentType: "worker"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAgentStatus(ctx, "a-1", "busy"))
	a, err := svc.GetAgent(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "busy", string(a.Status))

	t.Run("rejects unknown status", func(t *testing.T) {
		err := svc.UpdateAgentStatus(ctx, "a-1", "sleeping")
		assert.True(t, IsValidationError(err))
	})
}

func TestAgentService_AgentExists(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: "a-1", AgentType: "monitor"})
	require.NoError(t, err)

	exists, err := svc.AgentExists(ctx, "a-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.AgentExists(ctx, "a-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAgentService_ListAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	for _, spec := range []struct{ id, kind string }{
		{"w-1", "worker"}, {"w-2", "worker"}, {"v-1", "validator"},
	} {
		_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: spec.id, AgentType: spec.kind})
		require.NoError(t, err)
	}
	require.NoError(t, svc.UpdateAgentStatus(ctx, "w-2", "busy"))

	agents, err := svc.ListAgents(ctx, "worker", "")
	require.NoError(t, err)
	assert.Len(t, agents, 2)

	agents, err = svc.ListAgents(ctx, "worker", "busy")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "w-2", agents[0].ID)
}

func TestAgentService_StaleAgents(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewAgentService(client.Client)
	ctx := context.Background()

	for _, id := range []string{"v-stale", "v-fresh", "v-stopped"} {
		_, err := svc.RegisterAgent(ctx, models.RegisterAgentRequest{AgentID: id, AgentType: "validator"})
		require.NoError(t, err)
	}

	stale := time.Now().Add(-15 * time.Minute)
	_, err := client.Agent.UpdateOneID("v-stale").SetLastHeartbeat(stale).Save(ctx)
	require.NoError(t, err)
	_, err = client.Agent.UpdateOneID("v-stopped").SetLastHeartbeat(stale).Save(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateAgentStatus(ctx, "v-stopped", "stopped"))

	cutoff := time.Now().Add(-10 * time.Minute)
	agents, err := svc.StaleAgents(ctx, "validator", cutoff)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "v-stale", agents[0].ID)
}
