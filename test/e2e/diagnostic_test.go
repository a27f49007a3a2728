package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/api"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/models"
)

func intPtr(n int) *int { return &n }

// seedFailedTask walks one task through claim, finalize and a terminal
// failure, leaving the ticket with failed work and nothing active.
func seedFailedTask(t *testing.T, app *TestApp, ticket, description string) string {
	t.Helper()
	created := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: description,
		MaxRetries:  intPtr(0),
	})
	ctx := context.Background()
	claimed, err := app.Tasks.NextReady(ctx, testPhase)
	require.NoError(t, err)
	require.Equal(t, created.ID, claimed.ID)
	_, err = app.Tasks.Finalize(ctx, claimed.ID, "worker-ext-1", "sbx-ext-1")
	require.NoError(t, err)

	app.postJSON(t, "/api/v1/tasks/"+created.ID+"/fail",
		api.FailTaskRequest{Reason: "sandbox crashed before the work started"}, 200)
	require.Equal(t, task.StatusFailed, app.Task(t, created.ID).Status)
	return created.ID
}

// ────────────────────────────────────────────────────────────
// Explicit trigger
// ────────────────────────────────────────────────────────────

func TestDiagnostic_TriggerSpawnsBoundedRecovery(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.SeedCloneReadyTicket(t, "TICK-diag-trigger")
	seedFailedTask(t, app, ticket, "generate the API client from the new schema")

	app.Model.SetAnalysis(&llm.DiagnosticAnalysis{
		RootCause: "Code generation fails because the schema file references a type that was renamed",
		Recommendations: []llm.Recommendation{
			{Action: "Update the schema to the renamed type and regenerate the client", TaskType: "codegen", Priority: "HIGH"},
			{Action: "Add a schema lint step so renames fail fast in review", TaskType: "tooling", Priority: "MEDIUM"},
		},
	})

	resp := decode[api.DiagnosticRunResponse](t, app.postJSON(t, "/api/v1/diagnostics/trigger",
		api.TriggerDiagnosticRequest{TicketID: ticket, Reason: diagnostic.TriggerStuckWorkflow}, 201))
	require.NotNil(t, resp.Run)
	assert.False(t, resp.Skipped)
	assert.Equal(t, "completed", string(resp.Run.Status))
	require.NotNil(t, resp.Run.Diagnosis)
	assert.Contains(t, *resp.Run.Diagnosis, "renamed")
	assert.Equal(t, 2, resp.Run.TasksCreatedCount)
	require.Len(t, resp.Run.TasksCreatedIds, 2)

	// Both recovery tasks are queued under the discovery prefix, boosted
	// one priority level past the model's suggestion.
	byType := map[string]string{}
	for _, id := range resp.Run.TasksCreatedIds {
		spawned := app.Task(t, id)
		assert.Equal(t, task.StatusPending, spawned.Status)
		byType[spawned.TaskType] = string(spawned.Priority)
	}
	assert.Equal(t, "CRITICAL", byType["discovery_codegen"])
	assert.Equal(t, "HIGH", byType["discovery_tooling"])

	// The spawn went through the discovery branch.
	assert.NotEmpty(t, app.Recorder.ByType(events.EventTypeDiscoveryRecorded))
	assert.NotEmpty(t, app.Recorder.ByType(events.EventTypeDiagnosticTriggered))
	completed := app.Recorder.ByType(events.EventTypeDiagnosticCompleted)
	require.NotEmpty(t, completed)
	assert.Equal(t, resp.Run.ID, completed[0].EntityID)
}

// ────────────────────────────────────────────────────────────
// Dedup gate on the diagnosis
// ────────────────────────────────────────────────────────────

// A live recovery task whose description matches the fresh root cause
// means this failure mode has already been diagnosed: the run is recorded
// as skipped and nothing new is spawned.
func TestDiagnostic_RepeatDiagnosisIsSkipped(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.SeedCloneReadyTicket(t, "TICK-diag-dedup")
	seedFailedTask(t, app, ticket, "publish the release artifacts to the registry")

	rootCause := "The registry credentials expired so every publish step is rejected"
	app.Model.SetAnalysis(&llm.DiagnosticAnalysis{
		RootCause: rootCause,
		Recommendations: []llm.Recommendation{
			{Action: "Rotate the registry credentials and rerun the publish", TaskType: "no_result", Priority: "HIGH"},
		},
	})

	// Prior recovery task from an earlier diagnosis of the same root
	// cause, still live in needs_work.
	_, err := app.DB.Task.Create().
		SetID("task-prior-recovery").
		SetTicketID(ticket).
		SetPhaseID(testPhase).
		SetTaskType("discovery_diagnostic_no_result").
		SetDescription(rootCause).
		SetStatus(task.StatusNeedsWork).
		SetContentHash(dedup.ContentHash(rootCause)).
		Save(context.Background())
	require.NoError(t, err)

	resp := decode[api.DiagnosticRunResponse](t, app.postJSON(t, "/api/v1/diagnostics/trigger",
		api.TriggerDiagnosticRequest{TicketID: ticket, Reason: diagnostic.TriggerValidationTimeout}, 201))
	require.NotNil(t, resp.Run)
	assert.Equal(t, "skipped", string(resp.Run.Status))
	require.NotNil(t, resp.Run.Diagnosis)
	assert.Contains(t, *resp.Run.Diagnosis, "duplicate of task task-prior-recovery")
	assert.Zero(t, resp.Run.TasksCreatedCount)
}

// ────────────────────────────────────────────────────────────
// Gateway degradation
// ────────────────────────────────────────────────────────────

func TestDiagnostic_FallsBackWhenModelUnavailable(t *testing.T) {
	app := NewTestApp(t)
	ticket := app.SeedCloneReadyTicket(t, "TICK-diag-fallback")
	seedFailedTask(t, app, ticket, "backfill the analytics rollup table")
	app.Model.SetDown(true)

	resp := decode[api.DiagnosticRunResponse](t, app.postJSON(t, "/api/v1/diagnostics/trigger",
		api.TriggerDiagnosticRequest{TicketID: ticket, Reason: diagnostic.TriggerStuckWorkflow}, 201))
	require.NotNil(t, resp.Run)
	assert.Equal(t, "completed", string(resp.Run.Status))
	require.NotNil(t, resp.Run.Diagnosis)
	assert.Contains(t, *resp.Run.Diagnosis, "Workflow stalled")

	// The rule-based fallback still spawns one investigation task.
	require.Len(t, resp.Run.TasksCreatedIds, 1)
	spawned := app.Task(t, resp.Run.TasksCreatedIds[0])
	assert.Equal(t, "discovery_no_result", spawned.TaskType)
	assert.Contains(t, spawned.Description, ticket)
}

// ────────────────────────────────────────────────────────────
// Periodic stuck scan
// ────────────────────────────────────────────────────────────

func TestDiagnostic_StuckScanDiagnosesSilentTicket(t *testing.T) {
	app := NewTestApp(t, WithConfig(func(cfg *config.Config) {
		cfg.Diagnostic.ScanInterval = 50 * time.Millisecond
		cfg.Diagnostic.StuckThreshold = 100 * time.Millisecond
	}))
	ticket := app.SeedCloneReadyTicket(t, "TICK-diag-scan")
	failedID := seedFailedTask(t, app, ticket, "reconcile the ledger snapshots")

	app.Model.SetAnalysis(&llm.DiagnosticAnalysis{
		RootCause: "The reconciliation job reads a snapshot path that no longer exists",
		Recommendations: []llm.Recommendation{
			{Action: "Point the reconciliation job at the current snapshot location", TaskType: "no_result", Priority: "HIGH"},
		},
	})

	app.StartEngine()

	completed := app.Recorder.WaitFor(t, events.EventTypeDiagnosticCompleted, 1)
	assert.Equal(t, "diagnostic_run", completed[0].EntityType)

	runs := decode[api.DiagnosticRunsResponse](t,
		app.getJSON(t, "/api/v1/diagnostics/runs?ticket_id="+ticket, 200))
	require.NotEmpty(t, runs.Runs)
	run := runs.Runs[0]
	assert.Equal(t, diagnostic.TriggerStuckWorkflow, run.Trigger)
	assert.Contains(t, run.AgentsReviewed, "worker-ext-1")
	assert.Equal(t, 1, run.FailedTasks)

	assert.Equal(t, task.StatusFailed, app.Task(t, failedID).Status,
		"diagnosis never resurrects the failed task itself")

	// The spawned recovery work makes the ticket active again, so the
	// next scan ticks find it ineligible and the run count stays put.
	time.Sleep(200 * time.Millisecond)
	again := decode[api.DiagnosticRunsResponse](t,
		app.getJSON(t, "/api/v1/diagnostics/runs?ticket_id="+ticket, 200))
	assert.Len(t, again.Runs, len(runs.Runs))
}
