package config

import "time"

// ScoringConfig contains the dynamic scorer parameters.
// The component weights are fixed in pkg/queue; these knobs control the
// normalization windows and the SLA/starvation guards.
type ScoringConfig struct {
	// AgeCeiling is the task age at which the age component saturates at 1.0.
	AgeCeiling time.Duration `yaml:"age_ceiling"`

	// DeadlineHorizon is the window over which deadline proximity scales up.
	// A deadline further out than the horizon contributes 0.
	DeadlineHorizon time.Duration `yaml:"deadline_horizon"`

	// BlockerCeiling is the dependents count at which the blocker component
	// saturates at 1.0.
	BlockerCeiling int `yaml:"blocker_ceiling"`

	// SLAUrgencyWindow is the deadline distance below which the SLA boost
	// multiplier applies.
	SLAUrgencyWindow time.Duration `yaml:"sla_urgency_window"`

	// SLABoostMultiplier scales the base score for tasks inside the SLA window.
	SLABoostMultiplier float64 `yaml:"sla_boost_multiplier"`

	// StarvationLimit is the age past which a task is guaranteed the
	// starvation floor score.
	StarvationLimit time.Duration `yaml:"starvation_limit"`

	// StarvationFloorScore is the minimum score granted to starved tasks.
	StarvationFloorScore float64 `yaml:"starvation_floor_score"`
}

// DefaultScoringConfig returns the built-in scoring defaults.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		AgeCeiling:           1 * time.Hour,
		DeadlineHorizon:      2 * time.Hour,
		BlockerCeiling:       10,
		SLAUrgencyWindow:     15 * time.Minute,
		SLABoostMultiplier:   1.25,
		StarvationLimit:      2 * time.Hour,
		StarvationFloorScore: 0.6,
	}
}
