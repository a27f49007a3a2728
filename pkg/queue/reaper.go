package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/events"
)

// ClaimReaper reverts stale claims. A scheduler that crashes between
// claim and finalize leaves the row in claiming; once the claim is older
// than ClaimTTL the reaper returns it to pending. Every instance runs the
// sweep independently; the conditional update makes reclaims idempotent.
type ClaimReaper struct {
	client    *ent.Client
	config    *config.QueueConfig
	publisher *events.Publisher
	logger    *slog.Logger
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	mu        sync.Mutex
	lastScan  time.Time
	reclaimed int
}

// NewClaimReaper creates a ClaimReaper.
func NewClaimReaper(client *ent.Client, cfg *config.QueueConfig, publisher *events.Publisher) *ClaimReaper {
	return &ClaimReaper{
		client:    client,
		config:    cfg,
		publisher: publisher,
		logger:    slog.Default(),
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic sweep in a goroutine.
func (r *ClaimReaper) Start(ctx context.Context) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()
}

// Stop signals the reaper to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (r *ClaimReaper) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}

// Stats returns the reaper's scan metrics.
func (r *ClaimReaper) Stats() ClaimReaperStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ClaimReaperStats{
		LastScan:        r.lastScan,
		ClaimsReclaimed: r.reclaimed,
	}
}

func (r *ClaimReaper) run(ctx context.Context) {
	ticker := time.NewTicker(r.config.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			return
		case <-ticker.C:
			if _, err := r.Sweep(ctx); err != nil {
				r.logger.Error("Claim sweep failed", "error", err)
			}
		}
	}
}

// Sweep reverts every claim older than ClaimTTL to pending and returns
// how many were reclaimed. A single row's failure does not abort the
// sweep.
func (r *ClaimReaper) Sweep(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-r.config.ClaimTTL)

	stale, err := r.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusClaiming),
			task.ClaimedAtNotNil(),
			task.ClaimedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale claims: %w", err)
	}

	reclaimed := 0
	for _, t := range stale {
		n, err := r.client.Task.Update().
			Where(task.IDEQ(t.ID), task.StatusEQ(task.StatusClaiming)).
			SetStatus(task.StatusPending).
			ClearClaimedAt().
			Save(ctx)
		if err != nil {
			r.logger.Error("Failed to reclaim stale claim", "task_id", t.ID, "error", err)
			continue
		}
		if n == 0 {
			// Finalized or reclaimed elsewhere in the meantime.
			continue
		}

		r.logger.Warn("Stale claim returned to pending",
			"task_id", t.ID,
			"claimed_at", t.ClaimedAt.Format(time.RFC3339))
		if err := r.publisher.PublishTaskStatusChanged(ctx, events.TaskStatusChangedPayload{
			TaskID:   t.ID,
			TicketID: t.TicketID,
			From:     string(task.StatusClaiming),
			To:       string(task.StatusPending),
			Reason:   "claim expired",
		}); err != nil {
			r.logger.Warn("Failed to publish task.status.changed", "task_id", t.ID, "error", err)
		}
		reclaimed++
	}

	r.mu.Lock()
	r.lastScan = time.Now()
	r.reclaimed += reclaimed
	r.mu.Unlock()

	return reclaimed, nil
}
