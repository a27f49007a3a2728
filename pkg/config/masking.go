package config

// MaskingConfig controls credential masking of free-form text the kernel
// stores or forwards: agent result markdown and the failure context sent
// to the diagnosis gateway.
type MaskingConfig struct {
	// Enabled turns masking on. Disabling it passes text through untouched.
	Enabled bool `yaml:"enabled"`

	// PatternGroup selects the built-in pattern group to apply. Groups are
	// defined in the masking package; unknown names mask nothing.
	PatternGroup string `yaml:"pattern_group"`
}

// DefaultMaskingConfig returns the built-in masking defaults.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled:      true,
		PatternGroup: "secrets",
	}
}
