package e2e

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/llm"
)

// ────────────────────────────────────────────────────────────
// Gateway stubs
//
// The kernel's three external services (LLM, embedding, sandbox
// provisioner) are stubbed as real HTTP servers so e2e tests exercise the
// production gateway clients, wire formats included.
// ────────────────────────────────────────────────────────────

// ModelStub serves the chat-completions contract of the LLM gateway.
// Diagnostic prompts (recognized by the diagnostician system prompt) get
// the canned analysis; every other structured-output call gets an empty
// object, which downstream callers treat as "no usable answer" and
// degrade to their rule-based paths.
type ModelStub struct {
	server *httptest.Server

	mu       sync.Mutex
	analysis *llm.DiagnosticAnalysis
	down     bool
	prompts  []string
	systems  []string
}

// NewModelStub starts the stub server. Close is the caller's job.
func NewModelStub() *ModelStub {
	s := &ModelStub{}
	s.server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *ModelStub) URL() string { return s.server.URL }

func (s *ModelStub) Close() { s.server.Close() }

// SetAnalysis sets the canned diagnosis returned for diagnostic prompts.
func (s *ModelStub) SetAnalysis(a *llm.DiagnosticAnalysis) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analysis = a
}

// SetDown makes every call fail with HTTP 503 until reset, for testing
// gateway-degradation paths.
func (s *ModelStub) SetDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

// Prompts returns every user prompt the stub has seen.
func (s *ModelStub) Prompts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.prompts...)
}

func (s *ModelStub) handle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var system, prompt string
	for _, msg := range req.Messages {
		switch msg.Role {
		case "system":
			system = msg.Content
		case "user":
			prompt = msg.Content
		}
	}

	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.systems = append(s.systems, system)
	analysis := s.analysis
	down := s.down
	s.mu.Unlock()

	if down {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
		return
	}

	content := "{}"
	if analysis != nil && strings.Contains(system, "diagnostician") {
		encoded, err := json.Marshal(analysis)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		content = string(encoded)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"model": req.Model,
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
	})
}

// AxisVector embeds text deterministically: each distinct normalized text
// hashes to its own axis of the 1536-dim space. Identical texts embed
// identically (cosine 1), distinct texts are orthogonal (cosine 0), so
// tests can seed rows that the dedup gate must or must not match.
func AxisVector(text string) []float32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(dedup.Normalize(text)))
	vec := make([]float32, 1536)
	vec[h.Sum32()%1536] = 1
	return vec
}

// EmbedStub serves the embedding gateway's batch and single routes with
// AxisVector embeddings.
type EmbedStub struct {
	server *httptest.Server

	mu    sync.Mutex
	down  bool
	calls int
}

// NewEmbedStub starts the stub server.
func NewEmbedStub() *EmbedStub {
	s := &EmbedStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/embed", s.handleBatch)
	mux.HandleFunc("POST /api/embeddings", s.handleSingle)
	s.server = httptest.NewServer(mux)
	return s
}

func (s *EmbedStub) URL() string { return s.server.URL }

func (s *EmbedStub) Close() { s.server.Close() }

// SetDown makes every call fail until reset.
func (s *EmbedStub) SetDown(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.down = down
}

// Calls returns how many embedding requests the stub has served.
func (s *EmbedStub) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *EmbedStub) unavailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.down
}

func (s *EmbedStub) handleBatch(w http.ResponseWriter, r *http.Request) {
	if s.unavailable() {
		http.Error(w, "embedding service down", http.StatusServiceUnavailable)
		return
	}
	var req struct {
		Model string   `json:"model"`
		Input []string `json:"input"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	embeddings := make([][]float32, len(req.Input))
	for i, text := range req.Input {
		embeddings[i] = AxisVector(text)
	}
	writeJSON(w, http.StatusOK, map[string]any{"embeddings": embeddings})
}

func (s *EmbedStub) handleSingle(w http.ResponseWriter, r *http.Request) {
	if s.unavailable() {
		http.Error(w, "embedding service down", http.StatusServiceUnavailable)
		return
	}
	var req struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"embedding": AxisVector(req.Prompt)})
}

// SpawnRecord is one provisioner spawn request and the receipt it got.
type SpawnRecord struct {
	AgentType string
	PhaseID   string
	TaskID    string
	AgentID   string
	SandboxID string
}

// AgentMessage is one out-of-band message delivered to an agent.
type AgentMessage struct {
	AgentID string
	Message string
	Kind    string
}

// ProvisionerStub serves the sandbox provisioner's REST contract. Each
// spawn gets a deterministic agent id derived from the request, so tests
// can predict which agent row the kernel registers.
type ProvisionerStub struct {
	server *httptest.Server

	mu       sync.Mutex
	failing  bool
	n        int
	spawns   []SpawnRecord
	messages []AgentMessage
}

// NewProvisionerStub starts the stub server.
func NewProvisionerStub() *ProvisionerStub {
	s := &ProvisionerStub{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/agents/spawn", s.handleSpawn)
	mux.HandleFunc("POST /api/agents/{id}/message", s.handleMessage)
	s.server = httptest.NewServer(mux)
	return s
}

func (s *ProvisionerStub) URL() string { return s.server.URL }

func (s *ProvisionerStub) Close() { s.server.Close() }

// SetFailing makes every spawn fail until reset, so tests can observe
// claims being released and retried.
func (s *ProvisionerStub) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Spawns returns every spawn served so far, in request order.
func (s *ProvisionerStub) Spawns() []SpawnRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]SpawnRecord(nil), s.spawns...)
}

// Messages returns every out-of-band message delivered so far.
func (s *ProvisionerStub) Messages() []AgentMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AgentMessage(nil), s.messages...)
}

func (s *ProvisionerStub) handleSpawn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AgentType string `json:"agent_type"`
		PhaseID   string `json:"phase_id"`
		TaskID    string `json:"task_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	if s.failing {
		s.mu.Unlock()
		http.Error(w, "no sandbox capacity", http.StatusServiceUnavailable)
		return
	}
	s.n++
	record := SpawnRecord{
		AgentType: req.AgentType,
		PhaseID:   req.PhaseID,
		TaskID:    req.TaskID,
		AgentID:   fmt.Sprintf("%s-%d", req.AgentType, s.n),
		SandboxID: fmt.Sprintf("sbx-%d", s.n),
	}
	s.spawns = append(s.spawns, record)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, map[string]any{
		"agent_id":   record.AgentID,
		"sandbox_id": record.SandboxID,
	})
}

func (s *ProvisionerStub) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
		Kind    string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.messages = append(s.messages, AgentMessage{
		AgentID: r.PathValue("id"),
		Message: req.Message,
		Kind:    req.Kind,
	})
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
