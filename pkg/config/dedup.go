package config

// DedupConfig contains the per-entity cosine similarity thresholds.
// Acceptance criteria use hash-only matching and carry no threshold.
type DedupConfig struct {
	SpecThreshold        float64 `yaml:"spec_threshold"`
	RequirementThreshold float64 `yaml:"requirement_threshold"`
	TaskThreshold        float64 `yaml:"task_threshold"`
	DiagnosticThreshold  float64 `yaml:"diagnostic_threshold"`

	// TopK is how many nearest neighbors the vector phase retrieves.
	TopK int `yaml:"top_k"`
}

// DefaultDedupConfig returns the built-in dedup thresholds.
func DefaultDedupConfig() *DedupConfig {
	return &DedupConfig{
		SpecThreshold:        0.92,
		RequirementThreshold: 0.88,
		TaskThreshold:        0.85,
		DiagnosticThreshold:  0.90,
		TopK:                 5,
	}
}
