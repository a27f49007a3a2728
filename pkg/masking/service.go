// Package masking scrubs credentials from free-form text before the kernel
// stores or forwards it: agent result markdown at intake, and the failure
// context shipped to the diagnosis gateway.
package masking

import (
	"log/slog"

	"github.com/droverhq/drover/pkg/config"
)

// Service applies the configured pattern group to text. Created once at
// startup; thread-safe and stateless aside from compiled patterns.
// Nil-safe: a nil *Service passes text through unchanged.
type Service struct {
	enabled  bool
	group    string
	maskers  []Masker           // structural maskers run first
	patterns []*CompiledPattern // regex sweep runs second
}

// NewService compiles the configured group's patterns eagerly. An unknown
// group name is logged and masks nothing.
func NewService(cfg *config.MaskingConfig) *Service {
	s := &Service{enabled: cfg.Enabled, group: cfg.PatternGroup}
	if !cfg.Enabled {
		slog.Info("Masking disabled")
		return s
	}

	structural := make(map[string]Masker)
	for _, m := range []Masker{&EnvAssignmentMasker{}} {
		structural[m.Name()] = m
	}

	builtin := builtinPatterns()
	members, ok := builtinGroups()[cfg.PatternGroup]
	if !ok {
		slog.Warn("Unknown masking pattern group, masking nothing",
			"pattern_group", cfg.PatternGroup)
	}

	seen := make(map[string]bool, len(members))
	for _, name := range members {
		if seen[name] {
			continue
		}
		seen[name] = true

		if m, found := structural[name]; found {
			s.maskers = append(s.maskers, m)
			continue
		}
		p, found := builtin[name]
		if !found {
			continue
		}
		if cp := compilePattern(name, p); cp != nil {
			s.patterns = append(s.patterns, cp)
		}
	}

	slog.Info("Masking service initialized",
		"pattern_group", cfg.PatternGroup,
		"regex_patterns", len(s.patterns),
		"structural_maskers", len(s.maskers))

	return s
}

// Mask scrubs credentials from text. Structural maskers run before the
// regex sweep so key-aware decisions see unmangled input.
func (s *Service) Mask(text string) string {
	if s == nil || !s.enabled || text == "" {
		return text
	}

	masked := text
	for _, m := range s.maskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}
	for _, p := range s.patterns {
		masked = p.Regex.ReplaceAllString(masked, p.Replacement)
	}
	return masked
}
