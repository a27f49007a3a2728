package config

import "time"

// MonitorConfig contains metric-baseline anomaly detection settings.
type MonitorConfig struct {
	// SampleInterval is how often monitored metrics are sampled.
	SampleInterval time.Duration `yaml:"sample_interval"`

	// WindowSize is the rolling history length per metric.
	WindowSize int `yaml:"window_size"`

	// MinSamples is the history size required before z-scores are computed.
	MinSamples int `yaml:"min_samples"`

	// WarningZScore and CriticalZScore are the anomaly thresholds.
	WarningZScore  float64 `yaml:"warning_zscore"`
	CriticalZScore float64 `yaml:"critical_zscore"`
}

// DefaultMonitorConfig returns the built-in monitor defaults.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		SampleInterval: 30 * time.Second,
		WindowSize:     120,
		MinSamples:     10,
		WarningZScore:  2.5,
		CriticalZScore: 4.0,
	}
}
