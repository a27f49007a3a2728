package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/ownership"
)

// Scheduler runs one dispatch loop per configured phase: claim the top
// ready task, check its ownership claims, hand it to the spawner, and
// finalize the claim with the spawned agent. It also owns the claim
// reaper and the periodic score refresh.
type Scheduler struct {
	service   *Service
	ownership *ownership.Validator
	spawner   Spawner
	reaper    *ClaimReaper
	config    *config.QueueConfig
	logger    *slog.Logger
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu      sync.RWMutex
	loops   map[string]*DispatchStats
	started bool
}

// NewScheduler creates a Scheduler.
func NewScheduler(service *Service, owner *ownership.Validator, spawner Spawner, reaper *ClaimReaper, cfg *config.QueueConfig) *Scheduler {
	return &Scheduler{
		service:   service,
		ownership: owner,
		spawner:   spawner,
		reaper:    reaper,
		config:    cfg,
		logger:    slog.Default(),
		stopCh:    make(chan struct{}),
		loops:     make(map[string]*DispatchStats),
	}
}

// Start spawns the per-phase dispatch loops, the claim reaper, and the
// score refresh loop. It is safe to call multiple times; subsequent calls
// are no-ops.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		s.logger.Warn("Scheduler already started, ignoring duplicate Start call")
		return nil
	}
	s.started = true
	for _, phase := range s.config.Phases {
		s.loops[phase] = &DispatchStats{Phase: phase}
	}
	s.mu.Unlock()

	s.logger.Info("Starting scheduler", "phases", s.config.Phases)

	for _, phase := range s.config.Phases {
		s.wg.Add(1)
		go func(phase string) {
			defer s.wg.Done()
			s.dispatchLoop(ctx, phase)
		}(phase)
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.recomputeLoop(ctx)
	}()

	s.reaper.Start(ctx)
	return nil
}

// Stop signals all loops to stop and waits for in-flight dispatches to
// finish.
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.reaper.Stop()
	s.logger.Info("Scheduler stopped")
}

// Health returns a snapshot of dispatch activity and queue depth.
func (s *Scheduler) Health(ctx context.Context) *SchedulerHealth {
	depth, err := s.service.PendingCount(ctx, "")

	s.mu.RLock()
	loops := make([]DispatchStats, 0, len(s.loops))
	for _, phase := range s.config.Phases {
		if stats, ok := s.loops[phase]; ok {
			loops = append(loops, *stats)
		}
	}
	s.mu.RUnlock()

	health := &SchedulerHealth{
		IsHealthy:   err == nil,
		DBReachable: err == nil,
		QueueDepth:  depth,
		Loops:       loops,
		Reaper:      s.reaper.Stats(),
	}
	if err != nil {
		health.DBError = fmt.Sprintf("queue depth query failed: %v", err)
	}
	return health
}

// dispatchLoop is the main loop for one phase.
func (s *Scheduler) dispatchLoop(ctx context.Context, phase string) {
	log := s.logger.With("phase", phase)
	log.Info("Dispatch loop started")

	for {
		select {
		case <-s.stopCh:
			log.Info("Dispatch loop shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, dispatch loop shutting down")
			return
		default:
			if err := s.dispatchOne(ctx, phase); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, errClaimReleased) {
					s.sleep(s.pollInterval())
					continue
				}
				log.Error("Dispatch failed", "error", err)
				s.sleep(time.Second)
			}
		}
	}
}

// dispatchOne claims one task and hands it to the spawner.
func (s *Scheduler) dispatchOne(ctx context.Context, phase string) error {
	claimed, err := s.service.NextReady(ctx, phase)
	if err != nil {
		return err
	}

	log := s.logger.With("task_id", claimed.ID, "phase", phase)
	log.Info("Task claimed")

	if err := s.checkOwnership(ctx, claimed); err != nil {
		return err
	}

	spawned, err := s.spawner.Spawn(ctx, claimed)
	if err != nil {
		log.Error("Spawner failed, releasing claim", "error", err)
		if releaseErr := s.service.Release(ctx, claimed.ID); releaseErr != nil {
			log.Error("Failed to release claim after spawn failure", "error", releaseErr)
		}
		return fmt.Errorf("failed to spawn worker: %w", err)
	}

	if _, err := s.service.Finalize(ctx, claimed.ID, spawned.AgentID, spawned.SandboxID); err != nil {
		// Likely reaped while the spawner ran; the agent will find no
		// assigned task and exit.
		return fmt.Errorf("failed to finalize claim: %w", err)
	}

	s.mu.Lock()
	if stats, ok := s.loops[phase]; ok {
		stats.TasksDispatched++
		stats.LastActivity = time.Now()
	}
	s.mu.Unlock()

	log.Info("Task dispatched", "agent_id", spawned.AgentID)
	return nil
}

// checkOwnership validates the claimed task's owned_files against its
// active siblings. Strict-mode conflicts release the claim; the conflict
// clears once the sibling finishes.
func (s *Scheduler) checkOwnership(ctx context.Context, claimed *ent.Task) error {
	result, err := s.ownership.ValidateTask(ctx, claimed)
	if err != nil {
		s.logger.Warn("Ownership validation failed, dispatching anyway",
			"task_id", claimed.ID, "error", err)
		return nil
	}

	for _, warning := range result.Warnings {
		s.logger.Warn("Ownership warning", "task_id", claimed.ID, "warning", warning)
	}
	if result.Valid {
		return nil
	}

	s.logger.Warn("Ownership conflict blocks dispatch, releasing claim",
		"task_id", claimed.ID, "conflicts", len(result.Conflicts))
	if err := s.service.Release(ctx, claimed.ID); err != nil {
		return fmt.Errorf("failed to release conflicting claim: %w", err)
	}
	return errClaimReleased
}

// recomputeLoop refreshes scores on a timer so age, deadline proximity
// and starvation move tasks up without external triggers.
func (s *Scheduler) recomputeLoop(ctx context.Context) {
	ticker := time.NewTicker(s.config.RecomputeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			updated, err := s.service.RecomputeScores(ctx, "")
			if err != nil {
				s.logger.Error("Score refresh failed", "error", err)
				continue
			}
			if updated > 0 {
				s.logger.Debug("Scores refreshed", "updated", updated)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (s *Scheduler) sleep(d time.Duration) {
	select {
	case <-s.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter.
func (s *Scheduler) pollInterval() time.Duration {
	base := s.config.PollInterval
	jitter := s.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
