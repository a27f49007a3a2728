package config

// OwnershipConfig controls glob-overlap conflict handling for parallel
// sibling tasks.
type OwnershipConfig struct {
	// Mode is "lenient" (overlaps warn) or "strict" (overlaps block dispatch).
	Mode string `yaml:"mode"`
}

// Ownership modes.
const (
	OwnershipLenient = "lenient"
	OwnershipStrict  = "strict"
)

// DefaultOwnershipConfig returns the built-in ownership defaults.
func DefaultOwnershipConfig() *OwnershipConfig {
	return &OwnershipConfig{
		Mode: OwnershipLenient,
	}
}
