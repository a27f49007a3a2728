package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/models"
)

func TestTriggerDiagnosticRoute(t *testing.T) {
	f := newTestServer(t)
	seedCloneReadyTicket(t, f.client, "T-9")
	_, err := f.client.Task.Create().
		SetID("task-9").
		SetTicketID("T-9").
		SetPhaseID(testPhase).
		SetTaskType("implement_api").
		SetDescription("Build the export endpoint").
		SetStatus(task.StatusFailed).
		SetErrorMessage("exit status 2: schema migration failed").
		Save(context.Background())
	require.NoError(t, err)

	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: "The migration step references a table dropped in an earlier phase",
		Recommendations: []llm.Recommendation{{
			Action:   "Recreate the export_jobs table before re-running the migration",
			TaskType: "no_result",
			Priority: "HIGH",
		}},
	}

	rec := f.do(t, http.MethodPost, "/api/v1/diagnostics/trigger", TriggerDiagnosticRequest{
		TicketID: "T-9",
		Reason:   diagnostic.TriggerRepeatedFailures,
		Detail:   map[string]any{"failed_iterations": 3},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	resp := decode[DiagnosticRunResponse](t, rec)
	require.NotNil(t, resp.Run)
	assert.False(t, resp.Skipped)

	run := resp.Run
	assert.Equal(t, diagnosticrun.StatusCompleted, run.Status)
	assert.Equal(t, diagnostic.TriggerRepeatedFailures, run.Trigger)
	assert.Equal(t, "T-9", run.WorkflowID)
	assert.Equal(t, 1, run.TotalTasks)
	assert.Equal(t, 1, run.FailedTasks)
	assert.Equal(t, 1, run.TasksCreatedCount)
	require.Len(t, run.TasksCreatedIds, 1)
	require.NotNil(t, run.Diagnosis)
	assert.Equal(t, f.gateway.analysis.RootCause, *run.Diagnosis)
	assert.NotNil(t, run.CompletedAt)

	recoveryID := run.TasksCreatedIds[0]
	taskRec := f.do(t, http.MethodGet, "/api/v1/tasks/"+recoveryID, nil)
	require.Equal(t, http.StatusOK, taskRec.Code)
	spawned := decode[models.TaskResponse](t, taskRec).Task
	require.NotNil(t, spawned)
	assert.Equal(t, "discovery_diagnostic_no_result", spawned.TaskType)
	assert.Equal(t, task.Priority("HIGH"), spawned.Priority)
	assert.Equal(t, task.StatusPending, spawned.Status)
	assert.Equal(t, "T-9", spawned.TicketID)

	discRec := f.do(t, http.MethodGet, "/api/v1/tasks/task-9/discoveries", nil)
	require.Equal(t, http.StatusOK, discRec.Code)
	discoveries := decode[models.DiscoveriesResponse](t, discRec).Discoveries
	require.Len(t, discoveries, 1)
	assert.Equal(t, "diagnostic_recovery", discoveries[0].DiscoveryType)
	assert.Contains(t, discoveries[0].SpawnedTaskIds, recoveryID)

	t.Run("run is listed for the ticket", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/diagnostics/runs?ticket_id=T-9", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		runs := decode[DiagnosticRunsResponse](t, rec).Runs
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
	})

	t.Run("run fetch by id", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/diagnostics/runs/"+run.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		fetched := decode[*ent.DiagnosticRun](t, rec)
		require.NotNil(t, fetched)
		assert.Equal(t, run.ID, fetched.ID)
		assert.Equal(t, diagnosticrun.StatusCompleted, fetched.Status)
	})

	t.Run("unknown run", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/diagnostics/runs/nope", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("second trigger skips while recovery is in flight", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/diagnostics/trigger", TriggerDiagnosticRequest{
			TicketID: "T-9",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		resp := decode[DiagnosticRunResponse](t, rec)
		assert.True(t, resp.Skipped)
		assert.Nil(t, resp.Run)
	})
}

func TestTriggerDiagnosticSkipsEmptyTicket(t *testing.T) {
	f := newTestServer(t)
	f.createTicket(t, "T-1")

	rec := f.do(t, http.MethodPost, "/api/v1/diagnostics/trigger", TriggerDiagnosticRequest{
		TicketID: "T-1",
		Reason:   diagnostic.TriggerValidationTimeout,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[DiagnosticRunResponse](t, rec)
	assert.True(t, resp.Skipped)
	assert.Nil(t, resp.Run)

	rec = f.do(t, http.MethodGet, "/api/v1/diagnostics/runs?ticket_id=T-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[DiagnosticRunsResponse](t, rec).Runs)
}

func TestTriggerDiagnosticValidation(t *testing.T) {
	f := newTestServer(t)

	t.Run("missing ticket_id", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/diagnostics/trigger", TriggerDiagnosticRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ticket_id", decode[ErrorResponse](t, rec).Field)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		rec := f.do(t, http.MethodPost, "/api/v1/diagnostics/trigger", TriggerDiagnosticRequest{
			TicketID: "nope",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad runs limit", func(t *testing.T) {
		for _, limit := range []string{"0", "501", "abc"} {
			rec := f.do(t, http.MethodGet, "/api/v1/diagnostics/runs?limit="+limit, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "limit", decode[ErrorResponse](t, rec).Field)
		}
	})
}
