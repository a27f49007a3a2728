package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	// Empty directory: no drover.yaml, everything from built-in defaults
	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 60*time.Second, cfg.Queue.ClaimTTL)
	assert.Equal(t, 2*time.Minute, cfg.Queue.AgentHeartbeatTimeout)
	assert.Equal(t, 30*time.Second, cfg.Queue.LivenessInterval)
	assert.Equal(t, 10*time.Minute, cfg.Validation.ValidatorTimeout)
	assert.Equal(t, 60*time.Second, cfg.Diagnostic.StuckThreshold)
	assert.Equal(t, 3, cfg.Diagnostic.MaxConsecutiveFailures)
	assert.Equal(t, 10, cfg.Diagnostic.MaxDiagnosticsPerWorkflow)
	assert.Equal(t, 5, cfg.Diagnostic.MaxRecoveryTasks)
	assert.Equal(t, 0.85, cfg.Dedup.TaskThreshold)
	assert.Equal(t, 0.90, cfg.Dedup.DiagnosticThreshold)
	assert.Equal(t, 1536, cfg.Gateways.Embedding.Dimension)
	assert.Equal(t, OwnershipLenient, cfg.Ownership.Mode)
	assert.Len(t, cfg.Queue.Phases, 5)
	assert.Equal(t, 0.85, cfg.ACE.NearDuplicateThreshold)
	assert.Equal(t, 0.7, cfg.ACE.PlaybookLinkThreshold)
	assert.Equal(t, 10, cfg.ACE.MinInsightChars)
	assert.Equal(t, 30*time.Second, cfg.Monitor.SampleInterval)
	assert.Equal(t, 2.5, cfg.Monitor.WarningZScore)
	assert.Equal(t, 4.0, cfg.Monitor.CriticalZScore)
}

func TestInitializeYAMLOverridesDefaults(t *testing.T) {
	configDir := t.TempDir()
	yaml := `
scoring:
  sla_boost_multiplier: 1.5
queue:
  claim_ttl: 90s
  phases: ["PHASE_IMPLEMENTATION"]
dedup:
  task_threshold: 0.8
ownership:
  mode: strict
`
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "drover.yaml"), []byte(yaml), 0644))

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 1.5, cfg.Scoring.SLABoostMultiplier)
	assert.Equal(t, 90*time.Second, cfg.Queue.ClaimTTL)
	assert.Equal(t, []string{"PHASE_IMPLEMENTATION"}, cfg.Queue.Phases)
	assert.Equal(t, 0.8, cfg.Dedup.TaskThreshold)
	assert.Equal(t, OwnershipStrict, cfg.Ownership.Mode)

	// Untouched keys keep defaults
	assert.Equal(t, 1*time.Hour, cfg.Scoring.AgeCeiling)
	assert.Equal(t, 0.92, cfg.Dedup.SpecThreshold)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)
}

func TestInitializeEnvOverrides(t *testing.T) {
	t.Setenv("AGE_CEILING_S", "1800")
	t.Setenv("CLAIM_TTL_S", "120")
	t.Setenv("SLA_BOOST_MULTIPLIER", "2.0")
	t.Setenv("MAX_RECOVERY_TASKS", "2")
	t.Setenv("DEDUP_THRESHOLD_TASK", "0.7")

	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Scoring.AgeCeiling)
	assert.Equal(t, 2*time.Minute, cfg.Queue.ClaimTTL)
	assert.Equal(t, 2.0, cfg.Scoring.SLABoostMultiplier)
	assert.Equal(t, 2, cfg.Diagnostic.MaxRecoveryTasks)
	assert.Equal(t, 0.7, cfg.Dedup.TaskThreshold)
}

func TestInitializeEnvOverridesBeatYAML(t *testing.T) {
	configDir := t.TempDir()
	yaml := "queue:\n  claim_ttl: 45s\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "drover.yaml"), []byte(yaml), 0644))
	t.Setenv("CLAIM_TTL_S", "300")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Queue.ClaimTTL)
}

func TestInitializeInvalidEnvValue(t *testing.T) {
	t.Setenv("CLAIM_TTL_S", "not-a-number")

	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAIM_TTL_S")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "drover.yaml"), []byte(":::"), 0644))

	_, err := Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "threshold out of range",
			yaml: "dedup:\n  task_threshold: 1.5\n",
			want: "task_threshold",
		},
		{
			name: "bad ownership mode",
			yaml: "ownership:\n  mode: paranoid\n",
			want: "mode",
		},
		{
			name: "duplicate phases",
			yaml: "queue:\n  phases: [\"PHASE_DESIGN\", \"PHASE_DESIGN\"]\n",
			want: "phases",
		},
		{
			name: "heartbeat timeout not positive",
			yaml: "queue:\n  agent_heartbeat_timeout: -30s\n",
			want: "agent_heartbeat_timeout",
		},
		{
			name: "ace threshold out of range",
			yaml: "ace:\n  near_duplicate_threshold: 1.5\n",
			want: "near_duplicate_threshold",
		},
		{
			name: "monitor window below min samples",
			yaml: "monitor:\n  window_size: 2\n  min_samples: 5\n",
			want: "window_size",
		},
		{
			name: "monitor inverted zscores",
			yaml: "monitor:\n  warning_zscore: 5.0\n  critical_zscore: 3.0\n",
			want: "critical_zscore",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(configDir, "drover.yaml"), []byte(tt.yaml), 0644))

			_, err := Initialize(context.Background(), configDir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExpandEnvTemplates(t *testing.T) {
	t.Setenv("TEST_LLM_KEY", "sk-123")

	in := []byte("gateways:\n  llm:\n    api_key: \"{{.TEST_LLM_KEY}}\"\n")
	out := ExpandEnv(in)
	assert.Contains(t, string(out), "sk-123")

	// Literal $ untouched
	in = []byte("pattern: \"^deploy_.*$\"\n")
	out = ExpandEnv(in)
	assert.Equal(t, string(in), string(out))

	// Missing variable expands to empty string
	in = []byte("key: \"{{.DOES_NOT_EXIST_XYZ}}\"\n")
	out = ExpandEnv(in)
	assert.Contains(t, string(out), `key: ""`)
}

func TestDedupThresholdByKind(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 0.92, cfg.DedupThreshold("spec"))
	assert.Equal(t, 0.88, cfg.DedupThreshold("requirement"))
	assert.Equal(t, 0.85, cfg.DedupThreshold("task"))
	assert.Equal(t, 0.90, cfg.DedupThreshold("diagnostic"))
	assert.Equal(t, 0.85, cfg.DedupThreshold("unknown-kind"))
}
