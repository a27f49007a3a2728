package config

import (
	"fmt"
	"time"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateScoring(); err != nil {
		return fmt.Errorf("scoring validation failed: %w", err)
	}
	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}
	if err := v.validateValidation(); err != nil {
		return fmt.Errorf("validation section failed: %w", err)
	}
	if err := v.validateDiagnostic(); err != nil {
		return fmt.Errorf("diagnostic validation failed: %w", err)
	}
	if err := v.validateDedup(); err != nil {
		return fmt.Errorf("dedup validation failed: %w", err)
	}
	if err := v.validateACE(); err != nil {
		return fmt.Errorf("ace validation failed: %w", err)
	}
	if err := v.validateMonitor(); err != nil {
		return fmt.Errorf("monitor validation failed: %w", err)
	}
	if err := v.validateOwnership(); err != nil {
		return fmt.Errorf("ownership validation failed: %w", err)
	}
	if err := v.validateMasking(); err != nil {
		return fmt.Errorf("masking validation failed: %w", err)
	}
	if err := v.validateNotifications(); err != nil {
		return fmt.Errorf("notifications validation failed: %w", err)
	}
	if err := v.validateGateways(); err != nil {
		return fmt.Errorf("gateway validation failed: %w", err)
	}
	return nil
}

func (v *ConfigValidator) validateScoring() error {
	s := v.cfg.Scoring
	if s.AgeCeiling <= 0 {
		return NewValidationError("scoring", "age_ceiling", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.DeadlineHorizon <= 0 {
		return NewValidationError("scoring", "deadline_horizon", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.BlockerCeiling <= 0 {
		return NewValidationError("scoring", "blocker_ceiling", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if s.SLABoostMultiplier < 1.0 {
		return NewValidationError("scoring", "sla_boost_multiplier", fmt.Errorf("%w: must be >= 1.0", ErrInvalidValue))
	}
	if s.StarvationFloorScore < 0 || s.StarvationFloorScore > 1 {
		return NewValidationError("scoring", "starvation_floor_score", fmt.Errorf("%w: must be within [0,1]", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue
	if len(q.Phases) == 0 {
		return NewValidationError("queue", "phases", fmt.Errorf("%w: at least one phase required", ErrMissingRequiredField))
	}
	seen := make(map[string]bool, len(q.Phases))
	for _, phase := range q.Phases {
		if phase == "" {
			return NewValidationError("queue", "phases", fmt.Errorf("%w: empty phase id", ErrInvalidValue))
		}
		if seen[phase] {
			return NewValidationError("queue", "phases", fmt.Errorf("%w: duplicate phase %q", ErrInvalidValue, phase))
		}
		seen[phase] = true
	}
	if q.ClaimTTL < time.Second {
		return NewValidationError("queue", "claim_ttl", fmt.Errorf("%w: must be at least 1s", ErrInvalidValue))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "poll_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if q.AgentHeartbeatTimeout <= 0 {
		return NewValidationError("queue", "agent_heartbeat_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateValidation() error {
	if v.cfg.Validation.ValidatorTimeout <= 0 {
		return NewValidationError("validation", "validator_timeout", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateDiagnostic() error {
	d := v.cfg.Diagnostic
	if d.StuckThreshold <= 0 {
		return NewValidationError("diagnostic", "stuck_threshold", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if d.MaxRecoveryTasks < 1 {
		return NewValidationError("diagnostic", "max_recovery_tasks", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if d.MaxDiagnosticsPerWorkflow < 1 {
		return NewValidationError("diagnostic", "max_diagnostics_per_workflow", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if d.ContextTaskLimit < 1 {
		return NewValidationError("diagnostic", "context_task_limit", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateDedup() error {
	d := v.cfg.Dedup
	thresholds := map[string]float64{
		"spec_threshold":        d.SpecThreshold,
		"requirement_threshold": d.RequirementThreshold,
		"task_threshold":        d.TaskThreshold,
		"diagnostic_threshold":  d.DiagnosticThreshold,
	}
	for field, t := range thresholds {
		if t <= 0 || t > 1 {
			return NewValidationError("dedup", field, fmt.Errorf("%w: must be within (0,1]", ErrInvalidValue))
		}
	}
	if d.TopK < 1 {
		return NewValidationError("dedup", "top_k", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateACE() error {
	a := v.cfg.ACE
	thresholds := map[string]float64{
		"playbook_link_threshold":  a.PlaybookLinkThreshold,
		"near_duplicate_threshold": a.NearDuplicateThreshold,
		"insight_confidence":       a.InsightConfidence,
		"classify_confidence":      a.ClassifyConfidence,
	}
	for field, t := range thresholds {
		if t <= 0 || t > 1 {
			return NewValidationError("ace", field, fmt.Errorf("%w: must be within (0,1]", ErrInvalidValue))
		}
	}
	if a.PlaybookLinkTopK < 1 {
		return NewValidationError("ace", "playbook_link_top_k", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	if a.MinInsightChars < 1 {
		return NewValidationError("ace", "min_insight_chars", fmt.Errorf("%w: must be at least 1", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateMonitor() error {
	m := v.cfg.Monitor
	if m.SampleInterval <= 0 {
		return NewValidationError("monitor", "sample_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if m.MinSamples < 2 {
		return NewValidationError("monitor", "min_samples", fmt.Errorf("%w: must be at least 2", ErrInvalidValue))
	}
	if m.WindowSize < m.MinSamples {
		return NewValidationError("monitor", "window_size", fmt.Errorf("%w: must be at least min_samples", ErrInvalidValue))
	}
	if m.WarningZScore <= 0 {
		return NewValidationError("monitor", "warning_zscore", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if m.CriticalZScore < m.WarningZScore {
		return NewValidationError("monitor", "critical_zscore", fmt.Errorf("%w: must be at least warning_zscore", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateOwnership() error {
	mode := v.cfg.Ownership.Mode
	if mode != OwnershipLenient && mode != OwnershipStrict {
		return NewValidationError("ownership", "mode", fmt.Errorf("%w: must be %q or %q", ErrInvalidValue, OwnershipLenient, OwnershipStrict))
	}
	return nil
}

func (v *ConfigValidator) validateMasking() error {
	if v.cfg.Masking.Enabled && v.cfg.Masking.PatternGroup == "" {
		return NewValidationError("masking", "pattern_group", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateNotifications() error {
	n := v.cfg.Notifications
	if !n.SlackEnabled {
		return nil
	}
	if n.SlackChannel == "" {
		return NewValidationError("notifications", "slack_channel", ErrMissingRequiredField)
	}
	if n.SlackTokenEnv == "" {
		return NewValidationError("notifications", "slack_token_env", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateGateways() error {
	g := v.cfg.Gateways
	if g.Embedding == nil || g.Embedding.Dimension <= 0 {
		return NewValidationError("gateways", "embedding.dimension", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if g.LLM == nil || g.LLM.BaseURL == "" {
		return NewValidationError("gateways", "llm.base_url", ErrMissingRequiredField)
	}
	if g.Sandbox == nil || g.Sandbox.BaseURL == "" {
		return NewValidationError("gateways", "sandbox.base_url", ErrMissingRequiredField)
	}
	return nil
}
