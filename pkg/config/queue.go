package config

import "time"

// QueueConfig contains claim, dispatch, and reaper configuration.
// These values control how tasks are polled, claimed, and handed to agents.
type QueueConfig struct {
	// Phases lists the workflow phases the scheduler dispatches for.
	// One dispatch loop runs per phase.
	Phases []string `yaml:"phases"`

	// PollInterval is the base interval between claim attempts when a phase
	// has no ready tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ClaimTTL is how long a task may sit in 'claiming' before the reaper
	// reverts it to 'pending'.
	ClaimTTL time.Duration `yaml:"claim_ttl"`

	// ReaperInterval is how often the claim reaper scans for stale claims.
	ReaperInterval time.Duration `yaml:"reaper_interval"`

	// RecomputeInterval is how often scores are batch-refreshed per phase.
	RecomputeInterval time.Duration `yaml:"recompute_interval"`

	// AgentHeartbeatTimeout is how long an agent may go without a
	// heartbeat before the liveness sweep marks it failed and fails its
	// assigned work back through the retry policy.
	AgentHeartbeatTimeout time.Duration `yaml:"agent_heartbeat_timeout"`

	// LivenessInterval is how often the liveness sweep scans for agents
	// with stale heartbeats.
	LivenessInterval time.Duration `yaml:"liveness_interval"`

	// GracefulShutdownTimeout is the max time to wait for in-flight dispatch
	// loops to finish during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		Phases: []string{
			"PHASE_BACKLOG",
			"PHASE_REQUIREMENTS",
			"PHASE_DESIGN",
			"PHASE_IMPLEMENTATION",
			"PHASE_TESTING",
		},
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		ClaimTTL:                60 * time.Second,
		ReaperInterval:          15 * time.Second,
		RecomputeInterval:       30 * time.Second,
		AgentHeartbeatTimeout:   2 * time.Minute,
		LivenessInterval:        30 * time.Second,
		GracefulShutdownTimeout: 30 * time.Second,
	}
}
