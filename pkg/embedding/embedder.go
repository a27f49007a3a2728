// Package embedding provides the HTTP gateway to the vector embedding
// service. Every vector the kernel stores shares one fixed dimension;
// providers with a smaller native width are zero-padded up to it so
// vectors stay comparable regardless of the backing model.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/droverhq/drover/pkg/config"
)

// Embedder produces fixed-width embedding vectors for free text.
type Embedder interface {
	// Embed returns the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// BatchEmbed returns one embedding per input text, in input order.
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension reports the width every returned vector has.
	Dimension() int
}

// HTTPEmbedder talks to an Ollama-compatible embedding endpoint.
// The batch route (/api/embed) is preferred; servers that predate it
// answer 404 and are served one text at a time via /api/embeddings.
type HTTPEmbedder struct {
	baseURL    string
	model      string
	dim        int
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPEmbedder creates an embedder from gateway configuration.
// The configured timeout bounds each HTTP request.
func NewHTTPEmbedder(cfg *config.EmbeddingGatewayConfig) *HTTPEmbedder {
	return &HTTPEmbedder{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		dim:        cfg.Dimension,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
	}
}

// Dimension reports the kernel-wide vector width.
func (e *HTTPEmbedder) Dimension() int { return e.dim }

// Embed returns the embedding for a single text.
func (e *HTTPEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.BatchEmbed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// BatchEmbed returns one embedding per input text, in input order.
// Vectors are padded or trimmed to the configured dimension before return.
func (e *HTTPEmbedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors, fallback, err := e.embedBatch(ctx, texts)
	if fallback {
		e.logger.Debug("Batch embed route unavailable, falling back to per-text requests",
			"texts", len(texts))
		vectors, err = e.embedPerText(ctx, texts)
	}
	if err != nil {
		return nil, err
	}

	for i := range vectors {
		vectors[i] = e.conform(vectors[i])
	}
	return vectors, nil
}

type embedBatchRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embedBatchResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
	Error      string      `json:"error,omitempty"`
}

type embedSingleRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedSingleResponse struct {
	Embedding []float32 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

// embedBatch calls the batch route. The second return value reports that
// the server does not expose the route and the caller should fall back.
func (e *HTTPEmbedder) embedBatch(ctx context.Context, texts []string) ([][]float32, bool, error) {
	status, body, err := e.postJSON(ctx, "/api/embed", embedBatchRequest{Model: e.model, Input: texts})
	if err != nil {
		return nil, false, fmt.Errorf("embed batch: %w", err)
	}
	if status == http.StatusNotFound {
		return nil, true, nil
	}
	if status != http.StatusOK {
		return nil, false, fmt.Errorf("embedding service returned HTTP %d: %s", status, compactBody(body))
	}

	var decoded embedBatchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, false, fmt.Errorf("decode embed response: %w", err)
	}
	if decoded.Error != "" {
		return nil, false, fmt.Errorf("embedding service error: %s", decoded.Error)
	}
	if len(decoded.Embeddings) != len(texts) {
		return nil, false, fmt.Errorf("embedding count mismatch: requested %d, got %d",
			len(texts), len(decoded.Embeddings))
	}
	return decoded.Embeddings, false, nil
}

// embedPerText serves older servers that only expose the single-prompt route.
func (e *HTTPEmbedder) embedPerText(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for i, text := range texts {
		status, body, err := e.postJSON(ctx, "/api/embeddings", embedSingleRequest{Model: e.model, Prompt: text})
		if err != nil {
			return nil, fmt.Errorf("embed text %d: %w", i, err)
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("embedding service returned HTTP %d for text %d: %s",
				status, i, compactBody(body))
		}

		var decoded embedSingleResponse
		if err := json.Unmarshal(body, &decoded); err != nil {
			return nil, fmt.Errorf("decode embedding response for text %d: %w", i, err)
		}
		if decoded.Error != "" {
			return nil, fmt.Errorf("embedding service error for text %d: %s", i, decoded.Error)
		}
		vectors = append(vectors, decoded.Embedding)
	}
	return vectors, nil
}

func (e *HTTPEmbedder) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// conform pads or trims a provider vector to the kernel dimension.
func (e *HTTPEmbedder) conform(vec []float32) []float32 {
	if e.dim <= 0 || len(vec) == e.dim {
		return vec
	}
	if len(vec) > e.dim {
		return vec[:e.dim]
	}
	padded := make([]float32, e.dim)
	copy(padded, vec)
	return padded
}

func compactBody(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors yield 0.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
