package sandbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/config"
)

func newTestGateway(t *testing.T, handler http.Handler) *HTTPGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPGateway(&config.SandboxGatewayConfig{
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
}

func TestHTTPGateway_SpawnAgent(t *testing.T) {
	var gotReq SpawnRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/agents/spawn", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(SpawnReceipt{AgentID: "agent-9", SandboxID: "sbx-3"})
	})

	gateway := newTestGateway(t, handler)
	receipt, err := gateway.SpawnAgent(context.Background(), SpawnRequest{
		AgentType: "worker",
		PhaseID:   "PHASE_IMPLEMENTATION",
		TaskID:    "task-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "worker", gotReq.AgentType)
	assert.Equal(t, "PHASE_IMPLEMENTATION", gotReq.PhaseID)
	assert.Equal(t, "task-1", gotReq.TaskID)
	assert.Equal(t, "agent-9", receipt.AgentID)
	assert.Equal(t, "sbx-3", receipt.SandboxID)
}

func TestHTTPGateway_SpawnAgentErrors(t *testing.T) {
	t.Run("provisioner error field", func(t *testing.T) {
		gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(SpawnReceipt{Error: "pool exhausted"})
		}))
		_, err := gateway.SpawnAgent(context.Background(), SpawnRequest{AgentType: "worker"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pool exhausted")
	})

	t.Run("http failure carries the body", func(t *testing.T) {
		gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		_, err := gateway.SpawnAgent(context.Background(), SpawnRequest{AgentType: "worker"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
		assert.Contains(t, err.Error(), "upstream down")
	})

	t.Run("missing agent id", func(t *testing.T) {
		gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(SpawnReceipt{SandboxID: "sbx-1"})
		}))
		_, err := gateway.SpawnAgent(context.Background(), SpawnRequest{AgentType: "worker"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no agent id")
	})
}

func TestHTTPGateway_SendMessage(t *testing.T) {
	var gotReq sendMessageRequest
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.WriteHeader(http.StatusAccepted)
	})

	gateway := newTestGateway(t, handler)
	err := gateway.SendMessage(context.Background(), "v-42", "wrap up and report", "intervention")
	require.NoError(t, err)

	assert.Equal(t, "/api/agents/v-42/message", gotPath)
	assert.Equal(t, "wrap up and report", gotReq.Message)
	assert.Equal(t, "intervention", gotReq.Kind)
}

func TestHTTPGateway_SendMessageUnknownAgent(t *testing.T) {
	gateway := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	err := gateway.SendMessage(context.Background(), "ghost", "hello", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
