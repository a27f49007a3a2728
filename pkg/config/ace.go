package config

import "time"

// ACEConfig tunes the Execute/Reflect/Curate learning pipeline.
type ACEConfig struct {
	// PlaybookLinkThreshold is the cosine floor for linking a new memory
	// to existing playbook entries of the same ticket.
	PlaybookLinkThreshold float64 `yaml:"playbook_link_threshold"`

	// PlaybookLinkTopK caps how many playbook entries one memory links to.
	PlaybookLinkTopK int `yaml:"playbook_link_top_k"`

	// InsightConfidence is the confidence recorded on extracted insights.
	InsightConfidence float64 `yaml:"insight_confidence"`

	// NearDuplicateThreshold is the cosine floor above which a proposed
	// playbook entry is dropped as a near duplicate.
	NearDuplicateThreshold float64 `yaml:"near_duplicate_threshold"`

	// MinInsightChars drops insights shorter than this many characters.
	MinInsightChars int `yaml:"min_insight_chars"`

	// ClassifyTimeout bounds the optional LLM reclassification call.
	ClassifyTimeout time.Duration `yaml:"classify_timeout"`

	// ClassifyConfidence is the minimum LLM confidence required to
	// override the rule-based memory type.
	ClassifyConfidence float64 `yaml:"classify_confidence"`
}

// DefaultACEConfig returns the built-in ACE pipeline defaults.
func DefaultACEConfig() *ACEConfig {
	return &ACEConfig{
		PlaybookLinkThreshold:  0.7,
		PlaybookLinkTopK:       5,
		InsightConfidence:      0.7,
		NearDuplicateThreshold: 0.85,
		MinInsightChars:        10,
		ClassifyTimeout:        15 * time.Second,
		ClassifyConfidence:     0.6,
	}
}
