// Package llm provides the structured-output gateway to an
// OpenAI-compatible chat completion service. Callers hand it a prompt
// and a destination struct; the gateway prompts for JSON, strips any
// markdown fencing, repairs near-JSON output, and decodes the result.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/droverhq/drover/pkg/config"
)

// Gateway produces structured output from a language model.
type Gateway interface {
	// StructuredOutput sends prompt (with optional system prompt) and
	// decodes the model's JSON response into out, which must be a pointer.
	StructuredOutput(ctx context.Context, prompt string, out any, system string) error
}

// Models rarely emit bare JSON even when told to. The block pattern
// peels a ```json fence; the object pattern grabs the outermost braces
// from responses that wrap JSON in prose.
var (
	jsonBlockPattern  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	jsonObjectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
)

const jsonInstruction = "Respond with a single JSON object only. No prose, no markdown fences."

// HTTPClient implements Gateway against a /v1/chat/completions endpoint.
type HTTPClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a gateway client from configuration.
// The configured timeout bounds each completion request.
func NewHTTPClient(cfg *config.LLMGatewayConfig) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// StructuredOutput sends prompt to the model and decodes its JSON
// response into out. The system prompt is prepended when non-empty;
// a JSON-only instruction is always appended to the system role.
func (c *HTTPClient) StructuredOutput(ctx context.Context, prompt string, out any, system string) error {
	content, err := c.complete(ctx, prompt, system)
	if err != nil {
		return err
	}
	if err := decodeStructured(content, out); err != nil {
		c.logger.Warn("Structured output decode failed", "model", c.model, "error", err)
		return err
	}
	return nil
}

func (c *HTTPClient) complete(ctx context.Context, prompt, system string) (string, error) {
	systemContent := jsonInstruction
	if system != "" {
		systemContent = system + "\n\n" + jsonInstruction
	}

	// Temperature 0 keeps schema-bound output deterministic.
	temperature := 0.0
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemContent},
			{Role: "user", Content: prompt},
		},
		Temperature: &temperature,
	}

	encoded, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.completionsURL(), bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM service returned HTTP %d: %s", resp.StatusCode, compactBody(body))
	}

	var decoded chatResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if decoded.Error != nil && decoded.Error.Message != "" {
		return "", fmt.Errorf("LLM service error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("completion response has no choices")
	}

	content := decoded.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("completion response content is empty")
	}
	return content, nil
}

func (c *HTTPClient) completionsURL() string {
	if strings.HasSuffix(c.baseURL, "/chat/completions") {
		return c.baseURL
	}
	if strings.HasSuffix(c.baseURL, "/v1") {
		return c.baseURL + "/chat/completions"
	}
	return c.baseURL + "/v1/chat/completions"
}

// decodeStructured extracts the JSON object from a model response and
// unmarshals it into out. Strict decode is tried first; on failure the
// text is run through jsonrepair and decoded again.
func decodeStructured(content string, out any) error {
	raw := extractJSONObject(content)
	if raw == "" {
		return fmt.Errorf("no JSON object in model response")
	}

	strictErr := json.Unmarshal([]byte(raw), out)
	if strictErr == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return fmt.Errorf("decode model response: %w (repair also failed: %v)", strictErr, repairErr)
	}
	if err := json.Unmarshal([]byte(repaired), out); err != nil {
		return fmt.Errorf("decode repaired model response: %w", err)
	}
	return nil
}

// extractJSONObject returns the JSON object embedded in content,
// preferring a fenced block over a bare brace match.
func extractJSONObject(content string) string {
	if matches := jsonBlockPattern.FindStringSubmatch(content); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}
	if match := jsonObjectPattern.FindString(content); match != "" {
		return strings.TrimSpace(match)
	}
	return ""
}

func compactBody(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
