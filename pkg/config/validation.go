package config

import "time"

// ValidationConfig contains validation orchestrator configuration.
type ValidationConfig struct {
	// ValidatorTimeout is the maximum validator heartbeat age before the
	// sweep fails the task under review.
	ValidatorTimeout time.Duration `yaml:"validator_timeout"`

	// SweepInterval is how often the timeout sweep inspects active validators.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultValidationConfig returns the built-in validation defaults.
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		ValidatorTimeout: 10 * time.Minute,
		SweepInterval:    30 * time.Second,
	}
}
