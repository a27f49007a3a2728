package config

// Config is the umbrella configuration object for the coordination kernel.
// This is the primary object returned by Initialize() and used throughout
// the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	Scoring       *ScoringConfig
	Queue         *QueueConfig
	Validation    *ValidationConfig
	Diagnostic    *DiagnosticConfig
	Dedup         *DedupConfig
	ACE           *ACEConfig
	Bus           *BusConfig
	Ownership     *OwnershipConfig
	Monitor       *MonitorConfig
	Retention     *RetentionConfig
	Masking       *MaskingConfig
	Notifications *NotificationsConfig
	Gateways      *GatewaysConfig
	Server        *ServerConfig
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// DedupThreshold returns the cosine threshold for a dedup entity kind.
// Unknown kinds fall back to the task threshold, the most permissive of the
// vector-matched kinds.
func (c *Config) DedupThreshold(kind string) float64 {
	switch kind {
	case "spec":
		return c.Dedup.SpecThreshold
	case "requirement":
		return c.Dedup.RequirementThreshold
	case "task":
		return c.Dedup.TaskThreshold
	case "diagnostic":
		return c.Dedup.DiagnosticThreshold
	default:
		return c.Dedup.TaskThreshold
	}
}
