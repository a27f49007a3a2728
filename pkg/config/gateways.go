package config

import "time"

// LLMGatewayConfig holds the structured-output LLM gateway settings.
type LLMGatewayConfig struct {
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	APIKey  string        `yaml:"api_key,omitempty"`
	Timeout time.Duration `yaml:"timeout"`
}

// EmbeddingGatewayConfig holds the embedding gateway settings.
// Dimension is the kernel-wide vector width; providers with a smaller
// native dimension are zero-padded up to it.
type EmbeddingGatewayConfig struct {
	BaseURL   string        `yaml:"base_url"`
	Model     string        `yaml:"model"`
	Dimension int           `yaml:"dimension"`
	Timeout   time.Duration `yaml:"timeout"`
}

// SandboxGatewayConfig holds the agent spawner settings.
type SandboxGatewayConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// GatewaysConfig groups the external service endpoints.
type GatewaysConfig struct {
	LLM       *LLMGatewayConfig       `yaml:"llm"`
	Embedding *EmbeddingGatewayConfig `yaml:"embedding"`
	Sandbox   *SandboxGatewayConfig   `yaml:"sandbox"`
}

// DefaultGatewaysConfig returns the built-in gateway defaults.
func DefaultGatewaysConfig() *GatewaysConfig {
	return &GatewaysConfig{
		LLM: &LLMGatewayConfig{
			BaseURL: "http://localhost:11434",
			Model:   "qwen3:32b",
			Timeout: 120 * time.Second,
		},
		Embedding: &EmbeddingGatewayConfig{
			BaseURL:   "http://localhost:11434",
			Model:     "nomic-embed-text",
			Dimension: 1536,
			Timeout:   60 * time.Second,
		},
		Sandbox: &SandboxGatewayConfig{
			BaseURL: "http://localhost:8800",
			Timeout: 30 * time.Second,
		},
	}
}
