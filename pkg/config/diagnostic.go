package config

import "time"

// DiagnosticConfig contains stuck-workflow detection and recovery bounds.
type DiagnosticConfig struct {
	// StuckThreshold is the minimum silence (seconds since the last task
	// event on a ticket) before the ticket is considered stuck.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`

	// Cooldown is the minimum gap between diagnostics for the same ticket.
	Cooldown time.Duration `yaml:"cooldown"`

	// ScanInterval is how often the diagnostic tick scans for stuck tickets.
	ScanInterval time.Duration `yaml:"scan_interval"`

	// MaxConsecutiveFailures stops diagnosing a ticket after this many
	// failed recovery rounds in a row.
	MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`

	// MaxDiagnosticsPerWorkflow caps total diagnostic runs per ticket.
	MaxDiagnosticsPerWorkflow int `yaml:"max_diagnostics_per_workflow"`

	// MaxRecoveryTasks caps the tasks a single diagnostic run may spawn.
	MaxRecoveryTasks int `yaml:"max_recovery_tasks"`

	// ContextTaskLimit caps the task summaries included in the LLM context.
	ContextTaskLimit int `yaml:"context_task_limit"`

	// OutcomeSampleSize is how many recent runs check_outcomes examines.
	OutcomeSampleSize int `yaml:"outcome_sample_size"`

	// LLMTimeout bounds the diagnosis call; on elapse the engine degrades
	// to the fallback diagnosis.
	LLMTimeout time.Duration `yaml:"llm_timeout"`
}

// DefaultDiagnosticConfig returns the built-in diagnostic defaults.
func DefaultDiagnosticConfig() *DiagnosticConfig {
	return &DiagnosticConfig{
		StuckThreshold:            60 * time.Second,
		Cooldown:                  60 * time.Second,
		ScanInterval:              30 * time.Second,
		MaxConsecutiveFailures:    3,
		MaxDiagnosticsPerWorkflow: 10,
		MaxRecoveryTasks:          5,
		ContextTaskLimit:          15,
		OutcomeSampleSize:         100,
		LLMTimeout:                60 * time.Second,
	}
}
