package llm

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

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPClient(&config.LLMGatewayConfig{
		BaseURL: server.URL,
		Model:   "test-model",
		Timeout: 5 * time.Second,
	})
}

// completionWith returns a handler that answers every request with the
// given assistant message content.
func completionWith(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model": "test-model",
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}
}

func TestStructuredOutput_PlainJSON(t *testing.T) {
	var gotReq chatRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		completionWith(`{"memory_type":"procedural","confidence":0.9,"reasoning":"tool heavy"}`)(w, r)
	})

	client := newTestClient(t, handler)
	var out MemoryClassification
	err := client.StructuredOutput(context.Background(), "classify this", &out, "You label task records.")
	require.NoError(t, err)

	assert.Equal(t, "procedural", out.MemoryType)
	assert.InDelta(t, 0.9, out.Confidence, 1e-9)
	assert.Equal(t, "tool heavy", out.Reasoning)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "You label task records.")
	assert.Contains(t, gotReq.Messages[0].Content, "JSON object only")
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "classify this", gotReq.Messages[1].Content)
	assert.Equal(t, "test-model", gotReq.Model)
	require.NotNil(t, gotReq.Temperature)
	assert.Zero(t, *gotReq.Temperature)
}

func TestStructuredOutput_FencedJSON(t *testing.T) {
	content := "Here is the analysis:\n```json\n{\"root_cause\": \"no validator heartbeat\", \"hypotheses\": [{\"description\": \"sandbox died\", \"likelihood\": 0.8}], \"recommendations\": [{\"action\": \"respawn validator\", \"task_type\": \"validation\", \"priority\": \"high\"}]}\n```\nLet me know if you need more."

	client := newTestClient(t, completionWith(content))
	var out DiagnosticAnalysis
	err := client.StructuredOutput(context.Background(), "diagnose", &out, "")
	require.NoError(t, err)

	assert.Equal(t, "no validator heartbeat", out.RootCause)
	require.Len(t, out.Hypotheses, 1)
	assert.InDelta(t, 0.8, out.Hypotheses[0].Likelihood, 1e-9)
	require.Len(t, out.Recommendations, 1)
	assert.Equal(t, "respawn validator", out.Recommendations[0].Action)
	assert.Equal(t, "high", out.Recommendations[0].Priority)
}

func TestStructuredOutput_RepairsMalformedJSON(t *testing.T) {
	// Trailing comma and single quotes, both common model artifacts.
	content := `{'passed': false, 'feedback': 'tests missing', 'blocking_reasons': ['no coverage',],}`

	client := newTestClient(t, completionWith(content))
	var out ValidationResult
	err := client.StructuredOutput(context.Background(), "review", &out, "")
	require.NoError(t, err)

	assert.False(t, out.Passed)
	assert.Equal(t, "tests missing", out.Feedback)
	assert.Equal(t, []string{"no coverage"}, out.BlockingReasons)
}

func TestStructuredOutput_NoJSONInResponse(t *testing.T) {
	client := newTestClient(t, completionWith("I cannot produce that output."))
	var out PatternExtraction
	err := client.StructuredOutput(context.Background(), "extract", &out, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestStructuredOutput_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		errContains string
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model overloaded", http.StatusServiceUnavailable)
			},
			errContains: "HTTP 503",
		},
		{
			name: "error object in body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "context length exceeded"},
				})
			},
			errContains: "context length exceeded",
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
			},
			errContains: "no choices",
		},
		{
			name:        "empty content",
			handler:     completionWith("   "),
			errContains: "content is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			var out MemoryClassification
			err := client.StructuredOutput(context.Background(), "p", &out, "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestStructuredOutput_APIKeyHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		completionWith(`{"memory_type":"episodic","confidence":1,"reasoning":""}`)(w, r)
	})
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewHTTPClient(&config.LLMGatewayConfig{
		BaseURL: server.URL,
		Model:   "test-model",
		APIKey:  "sk-test",
		Timeout: 5 * time.Second,
	})

	var out MemoryClassification
	require.NoError(t, client.StructuredOutput(context.Background(), "p", &out, ""))
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestCompletionsURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{base: "http://localhost:11434", want: "http://localhost:11434/v1/chat/completions"},
		{base: "http://localhost:11434/v1", want: "http://localhost:11434/v1/chat/completions"},
		{base: "https://gateway.internal/v1/chat/completions", want: "https://gateway.internal/v1/chat/completions"},
	}

	for _, tt := range tests {
		client := NewHTTPClient(&config.LLMGatewayConfig{BaseURL: tt.base, Model: "m", Timeout: time.Second})
		assert.Equal(t, tt.want, client.completionsURL())
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bare object", content: `{"a": 1}`, want: `{"a": 1}`},
		{name: "fenced with language", content: "```json\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "fenced without language", content: "```\n{\"a\": 1}\n```", want: `{"a": 1}`},
		{name: "object inside prose", content: "Sure! {\"a\": 1} Hope that helps.", want: `{"a": 1}`},
		{name: "no object", content: "nothing here", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractJSONObject(tt.content))
		})
	}
}
