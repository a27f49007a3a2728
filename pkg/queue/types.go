// Package queue implements the scored task queue: enqueue with dynamic
// scoring, atomic claim with skip-locked row locks, retry accounting, the
// claim reaper, and the per-phase dispatch scheduler.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/droverhq/drover/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no ready task exists for the phase.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// errClaimReleased indicates a claim was rolled back before dispatch
	// (ownership conflict); the dispatch loop treats it like an idle poll.
	errClaimReleased = errors.New("claim released")
)

// DedupArtifacts carries the content hash and embedding a dedup check
// computed for a candidate, so Enqueue can persist them with the row.
type DedupArtifacts struct {
	ContentHash string
	Embedding   []float32
}

// SpawnedAgent identifies the worker an external spawner started for a
// claimed task.
type SpawnedAgent struct {
	AgentID   string
	SandboxID string
}

// Spawner starts a worker agent for a claimed task. Implementations talk
// to the sandbox gateway; the scheduler only needs the resulting ids.
type Spawner interface {
	Spawn(ctx context.Context, task *ent.Task) (*SpawnedAgent, error)
}

// SchedulerHealth is a snapshot of the scheduler and its dispatch loops.
type SchedulerHealth struct {
	IsHealthy   bool             `json:"is_healthy"`
	DBReachable bool             `json:"db_reachable"`
	DBError     string           `json:"db_error,omitempty"`
	QueueDepth  int              `json:"queue_depth"`
	Loops       []DispatchStats  `json:"loops"`
	Reaper      ClaimReaperStats `json:"reaper"`
}

// DispatchStats reports one phase loop's activity.
type DispatchStats struct {
	Phase           string    `json:"phase"`
	TasksDispatched int       `json:"tasks_dispatched"`
	LastActivity    time.Time `json:"last_activity"`
}

// ClaimReaperStats reports the claim reaper's activity.
type ClaimReaperStats struct {
	LastScan        time.Time `json:"last_scan"`
	ClaimsReclaimed int       `json:"claims_reclaimed"`
}
