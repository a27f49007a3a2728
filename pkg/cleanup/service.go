// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/services"
)

// Service periodically enforces retention policies:
//   - Removes event-log rows past their TTL
//   - Removes terminal diagnostic runs past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config       *config.RetentionConfig
	client       *ent.Client
	eventService *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	client *ent.Client,
	eventService *services.EventService,
) *Service {
	return &Service{
		config:       cfg,
		client:       client,
		eventService: eventService,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"diagnostic_run_ttl", s.config.DiagnosticRunTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.cleanupOldEvents(ctx)
	s.cleanupOldDiagnosticRuns(ctx)
}

// cleanupOldEvents trims the event log. Live consumers receive events via
// NOTIFY as they happen; rows only serve catch-up reads, so anything past
// the TTL is dead weight.
func (s *Service) cleanupOldEvents(_ context.Context) {
	cutoff := time.Now().Add(-s.config.EventTTL)
	count, err := s.eventService.CleanupEventsOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old events", "count", count)
	}
}

// cleanupOldDiagnosticRuns removes terminal runs whose completion is past
// the TTL. Running rows are never touched.
func (s *Service) cleanupOldDiagnosticRuns(_ context.Context) {
	cutoff := time.Now().Add(-s.config.DiagnosticRunTTL)
	count, err := s.client.DiagnosticRun.Delete().
		Where(
			diagnosticrun.StatusIn(
				diagnosticrun.StatusCompleted,
				diagnosticrun.StatusSkipped,
				diagnosticrun.StatusFailed,
			),
			diagnosticrun.CompletedAtLT(cutoff),
		).
		Exec(context.Background())
	if err != nil {
		slog.Error("Retention: diagnostic run cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up old diagnostic runs", "count", count)
	}
}
