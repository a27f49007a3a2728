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
	"github.com/droverhq/drover/pkg/services"
)

// LivenessSweeper fails work stranded by dead agents. An agent whose last
// heartbeat is older than AgentHeartbeatTimeout is marked failed, and its
// assigned or running tasks go back through MarkFailed's retry policy, so
// a task with retries left returns to pending. Every instance runs the
// sweep independently; MarkFailed's status precondition makes it
// idempotent.
type LivenessSweeper struct {
	client   *ent.Client
	agents   *services.AgentService
	tasks    *Service
	config   *config.QueueConfig
	logger   *slog.Logger
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewLivenessSweeper creates a LivenessSweeper.
func NewLivenessSweeper(client *ent.Client, agents *services.AgentService, tasks *Service, cfg *config.QueueConfig) *LivenessSweeper {
	return &LivenessSweeper{
		client: client,
		agents: agents,
		tasks:  tasks,
		config: cfg,
		logger: slog.Default(),
		stopCh: make(chan struct{}),
	}
}

// Start begins the periodic sweep in a goroutine.
func (l *LivenessSweeper) Start(ctx context.Context) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.run(ctx)
	}()
}

// Stop signals the sweeper to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (l *LivenessSweeper) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
	l.wg.Wait()
}

func (l *LivenessSweeper) run(ctx context.Context) {
	ticker := time.NewTicker(l.config.LivenessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-l.stopCh:
			return
		case <-ticker.C:
			if _, err := l.Sweep(ctx); err != nil {
				l.logger.Error("Liveness sweep failed", "error", err)
			}
		}
	}
}

// Sweep marks agents with expired heartbeats failed, fails their in-flight
// tasks, and returns how many agents were swept. One agent's failure does
// not abort the sweep.
func (l *LivenessSweeper) Sweep(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-l.config.AgentHeartbeatTimeout)

	stale, err := l.agents.StaleAgents(ctx, "", cutoff)
	if err != nil {
		return 0, err
	}

	swept := 0
	for _, a := range stale {
		stranded, err := l.client.Task.Query().
			Where(
				task.AssignedAgentIDEQ(a.ID),
				task.StatusIn(task.StatusAssigned, task.StatusRunning),
			).
			All(ctx)
		if err != nil {
			l.logger.Error("Failed to query stranded tasks", "agent_id", a.ID, "error", err)
			continue
		}

		for _, t := range stranded {
			if _, err := l.tasks.MarkFailed(ctx, t.ID, fmt.Sprintf("agent %s stopped heartbeating", a.ID)); err != nil {
				l.logger.Error("Failed to fail stranded task",
					"task_id", t.ID, "agent_id", a.ID, "error", err)
			}
		}

		if err := l.agents.UpdateAgentStatus(ctx, a.ID, "failed"); err != nil {
			l.logger.Error("Failed to mark agent failed", "agent_id", a.ID, "error", err)
			continue
		}

		l.logger.Warn("Agent heartbeat expired",
			"agent_id", a.ID,
			"last_heartbeat", a.LastHeartbeat.Format(time.RFC3339),
			"tasks_failed", len(stranded))
		swept++
	}

	return swept, nil
}
