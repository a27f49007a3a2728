package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/pkg/config"
)

func newTestEmbedder(t *testing.T, handler http.Handler, dim int) *HTTPEmbedder {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPEmbedder(&config.EmbeddingGatewayConfig{
		BaseURL:   server.URL,
		Model:     "test-embed",
		Dimension: dim,
		Timeout:   5 * time.Second,
	})
}

func TestHTTPEmbedder_BatchEmbed(t *testing.T) {
	var gotReq embedBatchRequest
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/embed", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(embedBatchResponse{
			Embeddings: [][]float32{{1, 0, 0, 0}, {0, 1, 0, 0}},
		})
	})

	embedder := newTestEmbedder(t, handler, 4)
	vectors, err := embedder.BatchEmbed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)

	assert.Equal(t, "test-embed", gotReq.Model)
	assert.Equal(t, []string{"first", "second"}, gotReq.Input)

	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 0, 0, 0}, vectors[0])
	assert.Equal(t, []float32{0, 1, 0, 0}, vectors[1])
}

func TestHTTPEmbedder_PadsAndTrimsToDimension(t *testing.T) {
	// One narrower, one wider, one exactly at the kernel width.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(embedBatchResponse{
			Embeddings: [][]float32{
				{0.5, 0.5},
				{1, 2, 3, 4, 5, 6, 7},
				{0.1, 0.2, 0.3, 0.4},
			},
		})
	})

	embedder := newTestEmbedder(t, handler, 4)
	vectors, err := embedder.BatchEmbed(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	assert.Equal(t, []float32{0.5, 0.5, 0, 0}, vectors[0])
	assert.Equal(t, []float32{1, 2, 3, 4}, vectors[1])
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.4}, vectors[2])
}

func TestHTTPEmbedder_FallsBackToPerTextRoute(t *testing.T) {
	var fallbackCalls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/embed":
			w.WriteHeader(http.StatusNotFound)
		case "/api/embeddings":
			fallbackCalls.Add(1)
			var req embedSingleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, "test-embed", req.Model)

			vec := []float32{0, 0, 0}
			switch req.Prompt {
			case "first":
				vec[0] = 1
			case "second":
				vec[1] = 1
			}
			_ = json.NewEncoder(w).Encode(embedSingleResponse{Embedding: vec})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	embedder := newTestEmbedder(t, handler, 3)
	vectors, err := embedder.BatchEmbed(context.Background(), []string{"first", "second"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), fallbackCalls.Load())
	require.Len(t, vectors, 2)
	assert.Equal(t, []float32{1, 0, 0}, vectors[0])
	assert.Equal(t, []float32{0, 1, 0}, vectors[1])
}

func TestHTTPEmbedder_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		errContains string
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model is loading", http.StatusInternalServerError)
			},
			errContains: "HTTP 500",
		},
		{
			name: "error field in body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(embedBatchResponse{Error: "model not found"})
			},
			errContains: "model not found",
		},
		{
			name: "count mismatch",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(embedBatchResponse{
					Embeddings: [][]float32{{1, 0}},
				})
			},
			errContains: "count mismatch",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			errContains: "decode embed response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embedder := newTestEmbedder(t, tt.handler, 2)
			_, err := embedder.BatchEmbed(context.Background(), []string{"a", "b"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestHTTPEmbedder_FallbackRouteError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/embed" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(embedSingleResponse{Error: "out of memory"})
	})

	embedder := newTestEmbedder(t, handler, 2)
	_, err := embedder.BatchEmbed(context.Background(), []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of memory")
	assert.Contains(t, err.Error(), "text 0")
}

func TestHTTPEmbedder_Embed(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embedBatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, []string{"only one"}, req.Input)

		_ = json.NewEncoder(w).Encode(embedBatchResponse{
			Embeddings: [][]float32{{0.6, 0.8}},
		})
	})

	embedder := newTestEmbedder(t, handler, 2)
	vec, err := embedder.Embed(context.Background(), "only one")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.6, 0.8}, vec)
}

func TestHTTPEmbedder_EmptyInput(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for empty input")
	})

	embedder := newTestEmbedder(t, handler, 2)
	vectors, err := embedder.BatchEmbed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vectors)
}

func TestHTTPEmbedder_ContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	embedder := newTestEmbedder(t, handler, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := embedder.BatchEmbed(ctx, []string{"slow"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "scaled copy", a: []float32{1, 2, 3}, b: []float32{2, 4, 6}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "mismatched length", a: []float32{1, 0}, b: []float32{1, 0, 0}, want: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}
