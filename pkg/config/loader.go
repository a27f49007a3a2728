package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// DroverYAMLConfig represents the complete drover.yaml file structure.
// Every section is optional; unset values fall back to built-in defaults
// and may still be overridden by the environment (see env.go).
type DroverYAMLConfig struct {
	Scoring       *ScoringConfig       `yaml:"scoring"`
	Queue         *QueueConfig         `yaml:"queue"`
	Validation    *ValidationConfig    `yaml:"validation"`
	Diagnostic    *DiagnosticConfig    `yaml:"diagnostic"`
	Dedup         *DedupConfig         `yaml:"dedup"`
	ACE           *ACEConfig           `yaml:"ace"`
	Bus           *BusConfig           `yaml:"bus"`
	Ownership     *OwnershipConfig     `yaml:"ownership"`
	Monitor       *MonitorConfig       `yaml:"monitor"`
	Retention     *RetentionConfig     `yaml:"retention"`
	Masking       *MaskingConfig       `yaml:"masking"`
	Notifications *NotificationsConfig `yaml:"notifications"`
	Gateways      *GatewaysConfig      `yaml:"gateways"`
	Server        *ServerConfig        `yaml:"server"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load drover.yaml from configDir (optional; defaults apply when absent)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Merge user YAML over built-in defaults
//  4. Apply direct environment overrides (AGE_CEILING_S, CLAIM_TTL_S, ...)
//  5. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"phases", len(cfg.Queue.Phases),
		"claim_ttl", cfg.Queue.ClaimTTL,
		"validator_timeout", cfg.Validation.ValidatorTimeout,
		"ownership_mode", cfg.Ownership.Mode)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	cfg := defaultConfig(configDir)

	yamlCfg, err := loadDroverYAML(configDir)
	if err != nil {
		return nil, NewLoadError("drover.yaml", err)
	}
	if yamlCfg == nil {
		// No file present: built-in defaults plus env overrides.
		return cfg, nil
	}

	// Merge each user-provided section over its defaults so unset keys keep
	// their built-in values.
	if err := firstErr(
		mergeSection(cfg.Scoring, yamlCfg.Scoring),
		mergeSection(cfg.Queue, yamlCfg.Queue),
		mergeSection(cfg.Validation, yamlCfg.Validation),
		mergeSection(cfg.Diagnostic, yamlCfg.Diagnostic),
		mergeSection(cfg.Dedup, yamlCfg.Dedup),
		mergeSection(cfg.ACE, yamlCfg.ACE),
		mergeSection(cfg.Bus, yamlCfg.Bus),
		mergeSection(cfg.Ownership, yamlCfg.Ownership),
		mergeSection(cfg.Monitor, yamlCfg.Monitor),
		mergeSection(cfg.Retention, yamlCfg.Retention),
		mergeSection(cfg.Masking, yamlCfg.Masking),
		mergeSection(cfg.Notifications, yamlCfg.Notifications),
		mergeSection(cfg.Gateways, yamlCfg.Gateways),
		mergeSection(cfg.Server, yamlCfg.Server),
	); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}

	return cfg, nil
}

// mergeSection merges a user-provided config section into its defaults.
// Non-zero user values override; nil sections are left at defaults.
func mergeSection[T any](dst, src *T) error {
	if src == nil {
		return nil
	}
	return mergo.Merge(dst, src, mergo.WithOverride)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func defaultConfig(configDir string) *Config {
	return &Config{
		configDir:     configDir,
		Scoring:       DefaultScoringConfig(),
		Queue:         DefaultQueueConfig(),
		Validation:    DefaultValidationConfig(),
		Diagnostic:    DefaultDiagnosticConfig(),
		Dedup:         DefaultDedupConfig(),
		ACE:           DefaultACEConfig(),
		Bus:           DefaultBusConfig(),
		Ownership:     DefaultOwnershipConfig(),
		Monitor:       DefaultMonitorConfig(),
		Retention:     DefaultRetentionConfig(),
		Masking:       DefaultMaskingConfig(),
		Notifications: DefaultNotificationsConfig(),
		Gateways:      DefaultGatewaysConfig(),
		Server:        DefaultServerConfig(),
	}
}

// loadDroverYAML reads and parses drover.yaml. A missing file is not an
// error: the kernel boots on defaults and environment overrides alone.
func loadDroverYAML(configDir string) (*DroverYAMLConfig, error) {
	path := filepath.Join(configDir, "drover.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("No drover.yaml found, using built-in defaults", "path", path)
			return nil, nil
		}
		return nil, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	var config DroverYAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return &config, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

