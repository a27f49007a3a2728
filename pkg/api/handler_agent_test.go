package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/agent"
	"github.com/droverhq/drover/pkg/models"
)

func TestAgentRegistrationRoutes(t *testing.T) {
	f := newTestServer(t)

	rec := f.do(t, http.MethodPost, "/api/v1/agents", models.RegisterAgentRequest{
		AgentID:      "w-1",
		AgentType:    "worker",
		PhaseID:      ptr(testPhase),
		Capabilities: []string{"go", "postgres"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[models.AgentResponse](t, rec)
	require.NotNil(t, created.Agent)
	assert.Equal(t, "w-1", created.ID)
	assert.Equal(t, agent.AgentTypeWorker, created.AgentType)
	assert.Equal(t, agent.StatusSpawning, created.Status)

	t.Run("generated id", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/agents", models.RegisterAgentRequest{AgentType: "validator"})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotEmpty(t, decode[models.AgentResponse](t, rec).ID)
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/agents", models.RegisterAgentRequest{
			AgentID:   "w-1",
			AgentType: "worker",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, reasonConflict, decode[ErrorResponse](t, rec).Reason)
	})

	t.Run("invalid agent type", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/agents", models.RegisterAgentRequest{
			AgentID:   "x-1",
			AgentType: "supervisor",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "agent_type", decode[ErrorResponse](t, rec).Field)
	})

	rec = f.do(t, http.MethodGet, "/api/v1/agents/w-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "w-1", decode[models.AgentResponse](t, rec).ID)

	t.Run("get unknown", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/agents/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAgentLifecycleRoutes(t *testing.T) {
	f := newTestServer(t)
	f.registerAgent(t, "w-1", "worker")
	ctx := context.Background()

	before, err := f.client.Agent.Get(ctx, "w-1")
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/agents/w-1/heartbeat", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	after, err := f.client.Agent.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.False(t, after.LastHeartbeat.Before(before.LastHeartbeat))

	t.Run("heartbeat for unknown agent", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/agents/nope/heartbeat", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	rec = f.do(t, http.MethodPut, "/api/v1/agents/w-1/status", UpdateAgentStatusRequest{Status: "busy"})
	require.Equal(t, http.StatusNoContent, rec.Code)
	updated, err := f.client.Agent.Get(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusBusy, updated.Status)

	t.Run("invalid status", func(t *testing.T) {
		rec := f.do(t, http.MethodPut, "/api/v1/agents/w-1/status", UpdateAgentStatusRequest{Status: "retired"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("list filters", func(t *testing.T) {
		f.registerAgent(t, "v-1", "validator")

		rec := f.do(t, http.MethodGet, "/api/v1/agents?agent_type=worker", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		workers := decode[models.AgentsResponse](t, rec)
		require.Len(t, workers.Agents, 1)
		assert.Equal(t, "w-1", workers.Agents[0].ID)

		rec = f.do(t, http.MethodGet, "/api/v1/agents?status=busy", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		busy := decode[models.AgentsResponse](t, rec)
		require.Len(t, busy.Agents, 1)
		assert.Equal(t, "w-1", busy.Agents[0].ID)
	})
}

func TestReleaseAgentLocksRoute(t *testing.T) {
	f := newTestServer(t)
	f.registerAgent(t, "w-1", "worker")

	for _, name := range []string{"schema-migration", "release-train"} {
		rec := f.do(t, http.MethodPost, "/api/v1/locks", models.AcquireLockRequest{
			Name:         name,
			OwnerAgentID: "w-1",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := f.do(t, http.MethodPost, "/api/v1/agents/w-1/locks/release", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, 2, decode[ReleasedLocksResponse](t, rec).Released)

	rec = f.do(t, http.MethodGet, "/api/v1/locks/schema-migration", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	t.Run("nothing held releases zero", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/agents/w-1/locks/release", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 0, decode[ReleasedLocksResponse](t, rec).Released)
	})
}
