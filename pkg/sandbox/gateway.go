// Package sandbox is the HTTP gateway to the agent provisioner. The kernel
// never builds containers itself; it asks the provisioner for an agent and
// records what came back.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/droverhq/drover/pkg/config"
)

// SpawnRequest asks the provisioner for one agent.
type SpawnRequest struct {
	AgentType    string   `json:"agent_type"`
	PhaseID      string   `json:"phase_id,omitempty"`
	TaskID       string   `json:"task_id,omitempty"`
	Capabilities []string `json:"capabilities,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// SpawnReceipt identifies the agent the provisioner started. The provisioner
// may hand back an already-running idle agent instead of a fresh one.
type SpawnReceipt struct {
	AgentID   string `json:"agent_id"`
	SandboxID string `json:"sandbox_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Gateway provisions agents and delivers out-of-band messages to them.
type Gateway interface {
	SpawnAgent(ctx context.Context, req SpawnRequest) (*SpawnReceipt, error)
	SendMessage(ctx context.Context, targetID, message, kind string) error
}

// HTTPGateway implements Gateway against the provisioner's REST API.
type HTTPGateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPGateway creates a gateway client from configuration.
// The configured timeout bounds each HTTP request.
func NewHTTPGateway(cfg *config.SandboxGatewayConfig) *HTTPGateway {
	return &HTTPGateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SpawnAgent asks the provisioner for an agent of the requested type.
func (g *HTTPGateway) SpawnAgent(ctx context.Context, req SpawnRequest) (*SpawnReceipt, error) {
	status, body, err := g.postJSON(ctx, "/api/agents/spawn", req)
	if err != nil {
		return nil, fmt.Errorf("spawn agent: %w", err)
	}
	if status != http.StatusOK && status != http.StatusCreated {
		return nil, fmt.Errorf("provisioner returned HTTP %d: %s", status, compactBody(body))
	}

	var receipt SpawnReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return nil, fmt.Errorf("decode spawn receipt: %w", err)
	}
	if receipt.Error != "" {
		return nil, fmt.Errorf("provisioner error: %s", receipt.Error)
	}
	if receipt.AgentID == "" {
		return nil, fmt.Errorf("provisioner returned no agent id")
	}
	return &receipt, nil
}

type sendMessageRequest struct {
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

// SendMessage delivers an out-of-band message to a running agent.
func (g *HTTPGateway) SendMessage(ctx context.Context, targetID, message, kind string) error {
	path := "/api/agents/" + url.PathEscape(targetID) + "/message"
	status, body, err := g.postJSON(ctx, path, sendMessageRequest{Message: message, Kind: kind})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	switch status {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("agent %s not found in sandbox", targetID)
	default:
		return fmt.Errorf("provisioner returned HTTP %d: %s", status, compactBody(body))
	}
}

func (g *HTTPGateway) postJSON(ctx context.Context, path string, payload any) (int, []byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
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

func compactBody(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
