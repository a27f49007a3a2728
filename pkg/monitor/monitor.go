// Package monitor watches kernel health metrics against rolling baselines
// and records statistical outliers. Sources sample gauges on a fixed
// interval; observations past the z-score thresholds become
// MonitorAnomaly rows and monitor.anomaly.detected events.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/monitoranomaly"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
)

// Sample is one observation of a named metric.
type Sample struct {
	MetricName string
	Value      float64
	EntityType string
	EntityID   string
}

// Source produces samples on each monitor tick.
type Source func(ctx context.Context) ([]Sample, error)

// Monitor keeps per-metric rolling histories and flags observations that
// deviate from their baseline.
type Monitor struct {
	db        *database.Client
	config    *config.MonitorConfig
	publisher *events.Publisher
	logger    *slog.Logger

	mu        sync.Mutex
	histories map[string]*metricHistory
	sources   map[string]Source

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewMonitor creates a monitor with no sources registered.
func NewMonitor(db *database.Client, cfg *config.MonitorConfig, publisher *events.Publisher) *Monitor {
	return &Monitor{
		db:        db,
		config:    cfg,
		publisher: publisher,
		logger:    slog.Default(),
		histories: make(map[string]*metricHistory),
		sources:   make(map[string]Source),
		stopCh:    make(chan struct{}),
	}
}

// Register adds a sample source under a name used for logging.
func (m *Monitor) Register(name string, source Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[name] = source
}

// Start launches the sampling loop.
func (m *Monitor) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.run(ctx)
	m.logger.Info("Metric monitor started", "interval", m.config.SampleInterval)
}

// Stop halts the sampling loop and waits for it to exit.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
	m.wg.Wait()
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.config.SampleInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	m.mu.Lock()
	names := make([]string, 0, len(m.sources))
	for name := range m.sources {
		names = append(names, name)
	}
	m.mu.Unlock()

	for _, name := range names {
		m.mu.Lock()
		source := m.sources[name]
		m.mu.Unlock()
		if source == nil {
			continue
		}
		samples, err := source(ctx)
		if err != nil {
			m.logger.Warn("Metric source failed", "source", name, "error", err)
			continue
		}
		for _, sample := range samples {
			if _, err := m.Observe(ctx, sample); err != nil {
				m.logger.Error("Failed to record anomaly",
					"metric", sample.MetricName, "error", err)
			}
		}
	}
}

// Observe scores a sample against the metric's baseline, then folds it
// into the rolling history. The baseline needs MinSamples observations
// before scoring starts, and a zero-variance baseline is never scored.
// Returns the anomaly row when one was recorded.
func (m *Monitor) Observe(ctx context.Context, sample Sample) (*ent.MonitorAnomaly, error) {
	mean, stddev, ready := m.score(sample)
	if !ready || stddev == 0 {
		return nil, nil
	}

	zscore := (sample.Value - mean) / stddev
	severity, anomalous := m.severityFor(zscore)
	if !anomalous {
		return nil, nil
	}

	create := m.db.MonitorAnomaly.Create().
		SetID(uuid.New().String()).
		SetMetricName(sample.MetricName).
		SetObserved(sample.Value).
		SetBaselineMean(mean).
		SetBaselineStddev(stddev).
		SetZscore(zscore).
		SetSeverity(severity)
	if sample.EntityType != "" {
		create = create.SetEntityType(sample.EntityType)
	}
	if sample.EntityID != "" {
		create = create.SetEntityID(sample.EntityID)
	}
	anomaly, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record anomaly: %w", err)
	}

	m.logger.Warn("Metric anomaly detected",
		"metric", sample.MetricName,
		"observed", sample.Value,
		"baseline_mean", mean,
		"zscore", zscore,
		"severity", severity)

	if err := m.publisher.PublishAnomalyDetected(ctx, events.AnomalyPayload{
		AnomalyID:    anomaly.ID,
		MetricName:   sample.MetricName,
		Observed:     sample.Value,
		BaselineMean: mean,
		ZScore:       zscore,
		Severity:     string(severity),
	}); err != nil {
		m.logger.Warn("Failed to publish anomaly event", "anomaly_id", anomaly.ID, "error", err)
	}
	return anomaly, nil
}

// score reads the baseline for the sample's metric and appends the
// observation to the history in one critical section.
func (m *Monitor) score(sample Sample) (mean, stddev float64, ready bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	history, ok := m.histories[sample.MetricName]
	if !ok {
		history = newMetricHistory(m.config.WindowSize)
		m.histories[sample.MetricName] = history
	}
	if history.len() >= m.config.MinSamples {
		mean = history.mean()
		stddev = history.stddev(mean)
		ready = true
	}
	history.add(sample.Value)
	return mean, stddev, ready
}

func (m *Monitor) severityFor(zscore float64) (monitoranomaly.Severity, bool) {
	abs := math.Abs(zscore)
	switch {
	case abs >= m.config.CriticalZScore:
		return monitoranomaly.SeverityCritical, true
	case abs >= m.config.WarningZScore:
		return monitoranomaly.SeverityWarning, true
	default:
		return "", false
	}
}
