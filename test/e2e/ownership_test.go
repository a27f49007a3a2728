package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/models"
)

func boolPtr(b bool) *bool { return &b }

// ────────────────────────────────────────────────────────────
// File-ownership checks at dispatch
// ────────────────────────────────────────────────────────────

func TestOwnership_LenientModeDispatchesOverlappingSiblings(t *testing.T) {
	app := NewTestApp(t) // lenient is the default
	app.StartScheduler()
	ticket := app.CreateTicket(t, "TICK-own-lenient")

	taskA := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "refactor the auth middleware chain",
		OwnedFiles:  []string{"pkg/auth/**"},
	})
	taskB := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "add request tracing to the auth handlers",
		OwnedFiles:  []string{"pkg/auth/handlers.go"},
	})

	// Overlap is logged, never blocking: both dispatch.
	app.WaitForStatus(t, taskA.ID, "assigned")
	app.WaitForStatus(t, taskB.ID, "assigned")
	assert.Len(t, app.Provisioner.Spawns(), 2)
}

func TestOwnership_StrictModeBlocksUntilSiblingFinishes(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		cfg.Ownership.Mode = config.OwnershipStrict
	}))
	app.StartScheduler()
	ticket := app.CreateTicket(t, "TICK-own-strict")

	// A is validation-disabled so the worker can close it directly.
	taskA := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:          ticket,
		PhaseID:           testPhase,
		Description:       "rewrite the session store on top of the cache layer",
		OwnedFiles:        []string{"internal/session/**"},
		ValidationEnabled: boolPtr(false),
	})
	app.WaitForStatus(t, taskA.ID, "assigned")
	agentA := app.ReportRunning(t, taskA.ID)

	taskB := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "expire idle sessions from the background sweeper",
		OwnedFiles:  []string{"internal/session/expiry.go"},
	})

	// B's claim keeps getting released while A holds the subtree.
	require.Never(t, func() bool {
		return app.Task(t, taskB.ID).Status != task.StatusPending
	}, 500*time.Millisecond, 50*time.Millisecond, "conflicting task must not dispatch")

	app.putJSON(t, "/api/v1/tasks/"+taskA.ID+"/status", models.UpdateTaskStatusRequest{
		Status:  "completed",
		AgentID: agentA,
	}, 200)

	// The conflict cleared with A; the next poll dispatches B.
	app.WaitForStatus(t, taskB.ID, "assigned")
}
