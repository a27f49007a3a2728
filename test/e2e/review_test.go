package e2e

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/validationreview"
	"github.com/droverhq/drover/pkg/diagnostic"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/models"
)

// ────────────────────────────────────────────────────────────
// Review pass flow
// ────────────────────────────────────────────────────────────

// A worker picks up a task, submits it with a commit, the spawned
// validator approves, and the ACE pipeline turns the reviewer's feedback
// into a task memory and a playbook entry.
func TestReview_PassFlowCompletesAndLearns(t *testing.T) {
	app := NewTestApp(t)
	app.StartScheduler()
	app.StartOrchestrator()

	ticket := app.CreateTicket(t, "TICK-review-pass")
	created := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "implement the invoice export endpoint",
	})

	app.WaitForStatus(t, created.ID, "assigned")
	agentID := app.ReportRunning(t, created.ID)

	// Validation is enabled: the worker cannot self-complete.
	app.putJSON(t, "/api/v1/tasks/"+created.ID+"/status", models.UpdateTaskStatusRequest{
		Status:  "completed",
		AgentID: agentID,
	}, 400)

	submitted := app.SubmitForReview(t, created.ID, agentID, "3f2a1bc",
		map[string]any{"files_changed": 4})
	assert.Equal(t, task.StatusValidationInProgress, submitted.Status)
	assert.Equal(t, 1, submitted.ValidationIteration)

	entry := app.ActiveValidator(t, created.ID)
	assert.Equal(t, 1, entry.Iteration)
	assert.NotEqual(t, agentID, entry.ValidatorAgentID)

	feedback := "Solid work. Always pin dependency versions when adding new build tooling."
	review := app.Review(t, created.ID, entry.ValidatorAgentID, true, feedback)
	assert.True(t, review.ValidationPassed)
	assert.Equal(t, 1, review.IterationNumber)

	completed := app.Task(t, created.ID)
	assert.Equal(t, task.StatusCompleted, completed.Status)
	assert.True(t, completed.ReviewDone)
	assert.NotNil(t, completed.CompletedAt)

	_, ok := app.Orchestrator.ActiveValidators()[created.ID]
	assert.False(t, ok, "review releases the registry slot")

	ctx := context.Background()
	reviews, err := app.DB.ValidationReview.Query().
		Where(validationreview.TaskIDEQ(created.ID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	memory, err := app.DB.TaskMemory.Query().
		Where(taskmemory.TaskIDEQ(created.ID)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, memory.Feedback)
	assert.Equal(t, feedback, *memory.Feedback)

	// "Always ..." is an insight sentence, so the curator adds it to the
	// ticket playbook.
	entries, err := app.DB.PlaybookEntry.Query().
		Where(playbookentry.TicketIDEQ(ticket)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Content, "Always pin dependency versions")

	// Per-entity delivery is FIFO; the review lifecycle arrives in order.
	types := app.Recorder.TypesForEntity(created.ID)
	assert.Contains(t, types, events.EventTypeValidationStarted)
	assert.Contains(t, types, events.EventTypeValidationPassed)
	assert.Contains(t, types, events.EventTypeTaskCompleted)
	assert.Contains(t, types, events.EventTypeACEWorkflowCompleted)
	assert.Less(t, indexOf(types, events.EventTypeValidationStarted), indexOf(types, events.EventTypeValidationReviewSubmitted))
	assert.Less(t, indexOf(types, events.EventTypeValidationReviewSubmitted), indexOf(types, events.EventTypeValidationPassed))
	assert.Less(t, indexOf(types, events.EventTypeValidationPassed), indexOf(types, events.EventTypeACEWorkflowCompleted))

	// The bus-attached collectors were fed throughout.
	metrics := string(app.getJSON(t, "/metrics", 200))
	assert.Contains(t, metrics, "drover_events_total")
	assert.Contains(t, metrics, "drover_validation_reviews_total")
	assert.Contains(t, metrics, "drover_queue_tasks_enqueued_total")
}

func indexOf(haystack []string, needle string) int {
	for i, s := range haystack {
		if s == needle {
			return i
		}
	}
	return -1
}

// ────────────────────────────────────────────────────────────
// Repeated failures escalate to the diagnostic engine
// ────────────────────────────────────────────────────────────

func TestReview_ConsecutiveFailuresTriggerDiagnostic(t *testing.T) {
	app := NewTestApp(t)
	app.StartScheduler()
	app.StartOrchestrator()

	ticket := app.SeedCloneReadyTicket(t, "TICK-review-fail")
	app.Model.SetAnalysis(&llm.DiagnosticAnalysis{
		RootCause: "The worker keeps shipping code without running the migration suite",
		Recommendations: []llm.Recommendation{{
			Action:   "Run the migration suite locally and fix the schema drift before resubmitting",
			TaskType: "schema_fix",
			Priority: "HIGH",
		}},
	})

	created := app.Enqueue(t, models.EnqueueTaskRequest{
		TicketID:    ticket,
		PhaseID:     testPhase,
		Description: "migrate the billing tables to the new tenant model",
	})

	app.WaitForStatus(t, created.ID, "assigned")
	agentID := app.ReportRunning(t, created.ID)

	// Iteration 1: fail.
	app.SubmitForReview(t, created.ID, agentID, "a11ce00", nil)
	first := app.ActiveValidator(t, created.ID)
	app.Review(t, created.ID, first.ValidatorAgentID, false,
		"Tests are failing: ImportError in the tenant migration module")
	assert.Equal(t, task.StatusNeedsWork, app.Task(t, created.ID).Status)

	// The worker resumes and resubmits; iteration 2 fails too, which is
	// the repeated-failure threshold.
	app.ReportRunning(t, created.ID)
	app.SubmitForReview(t, created.ID, agentID, "b22df11", nil)
	second := app.ActiveValidator(t, created.ID)
	app.Review(t, created.ID, second.ValidatorAgentID, false,
		"Still broken: the ImportError is unchanged, migration never ran")

	reworked := app.Task(t, created.ID)
	assert.Equal(t, task.StatusNeedsWork, reworked.Status)
	require.NotNil(t, reworked.LastValidationFeedback)
	assert.Contains(t, *reworked.LastValidationFeedback, "Still broken")

	runs := decode[struct {
		Runs []struct {
			ID                string `json:"id"`
			Trigger           string `json:"trigger"`
			Status            string `json:"status"`
			Diagnosis         string `json:"diagnosis"`
			TasksCreatedCount int    `json:"tasks_created_count"`
		} `json:"runs"`
	}](t, app.getJSON(t, "/api/v1/diagnostics/runs?ticket_id="+ticket, 200))
	require.Len(t, runs.Runs, 1)
	run := runs.Runs[0]
	assert.Equal(t, diagnostic.TriggerRepeatedFailures, run.Trigger)
	assert.Equal(t, "completed", run.Status)
	assert.Contains(t, run.Diagnosis, "migration suite")
	assert.Equal(t, 1, run.TasksCreatedCount)

	// The recovery task entered the queue through the discovery branch,
	// boosted and typed under the discovery prefix.
	tasks := decode[models.TasksResponse](t,
		app.getJSON(t, "/api/v1/tickets/"+ticket+"/tasks", 200))
	var recovery *string
	for _, tsk := range tasks.Tasks {
		if tsk.TaskType == "discovery_schema_fix" {
			id := tsk.ID
			recovery = &id
			assert.Equal(t, task.PriorityCRITICAL, tsk.Priority)
		}
	}
	require.NotNil(t, recovery, "recovery task should exist")

	assert.NotEmpty(t, app.Recorder.ByType(events.EventTypeDiagnosticTriggered))
	completedRuns := app.Recorder.WaitFor(t, events.EventTypeDiagnosticCompleted, 1)
	assert.Equal(t, run.ID, completedRuns[0].EntityID)
	assert.NotEmpty(t, app.Recorder.ByType(events.EventTypeValidationFailed))
}
