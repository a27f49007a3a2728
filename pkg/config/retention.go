package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// EventTTL is the maximum age of event-log rows before deletion.
	// Live consumers read events via NOTIFY; the log is a catch-up buffer,
	// not an archive.
	EventTTL time.Duration `yaml:"event_ttl"`

	// DiagnosticRunTTL is how long terminal diagnostic runs are kept.
	DiagnosticRunTTL time.Duration `yaml:"diagnostic_run_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:         24 * time.Hour,
		DiagnosticRunTTL: 30 * 24 * time.Hour,
		CleanupInterval:  12 * time.Hour,
	}
}
