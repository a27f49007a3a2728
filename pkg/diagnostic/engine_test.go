package diagnostic

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/workflowresult"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

const testPhase = "PHASE_IMPLEMENTATION"

// fakeGateway returns a canned analysis and records every prompt it saw.
type fakeGateway struct {
	mu       sync.Mutex
	analysis *llm.DiagnosticAnalysis
	err      error
	prompts  []string
	systems  []string
}

func (f *fakeGateway) StructuredOutput(_ context.Context, prompt string, out any, system string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.systems = append(f.systems, system)
	if f.err != nil {
		return f.err
	}
	target, ok := out.(*llm.DiagnosticAnalysis)
	if !ok {
		return fmt.Errorf("unexpected output type %T", out)
	}
	if f.analysis != nil {
		*target = *f.analysis
	}
	return nil
}

func (f *fakeGateway) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

// seqEmbedder assigns each distinct normalized text its own axis, so
// identical texts embed identically and different texts are orthogonal.
type seqEmbedder struct {
	mu   sync.Mutex
	axes map[string]int
}

func (f *seqEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.axes == nil {
		f.axes = make(map[string]int)
	}
	key := dedup.Normalize(text)
	axis, ok := f.axes[key]
	if !ok {
		axis = len(f.axes)
		f.axes[key] = axis
	}
	vec := make([]float32, 1536)
	vec[axis] = 1
	return vec, nil
}

func (f *seqEmbedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec, err := f.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *seqEmbedder) Dimension() int { return 1536 }

// eventRecorder captures bus deliveries by event type.
type eventRecorder struct {
	mu     sync.Mutex
	events []events.SystemEvent
}

func (r *eventRecorder) record(_ context.Context, event events.SystemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *eventRecorder) byType(eventType string) []events.SystemEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.SystemEvent
	for _, e := range r.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	engine    *Engine
	client    *database.Client
	gateway   *fakeGateway
	recorder  *eventRecorder
	publisher *events.Publisher
	cfg       *config.DiagnosticConfig
}

func newTestEngine(t *testing.T, cfg *config.DiagnosticConfig) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	recorder := &eventRecorder{}
	for _, eventType := range []string{
		events.EventTypeDiagnosticTriggered,
		events.EventTypeDiagnosticCompleted,
		events.EventTypeDiagnosticFailed,
	} {
		bus.Subscribe(eventType, "test-recorder", recorder.record)
	}
	publisher := events.NewPublisher(client.DB(), bus)

	if cfg == nil {
		cfg = config.DefaultDiagnosticConfig()
	}
	gateway := &fakeGateway{}
	engine := NewEngine(Deps{
		DB:          client,
		Queue:       queue.NewService(client, queue.NewScorer(config.DefaultScoringConfig()), config.DefaultQueueConfig(), publisher),
		Dedup:       dedup.NewService(client, &seqEmbedder{}, config.DefaultDedupConfig(), publisher),
		Tickets:     services.NewTicketService(client.Client, publisher),
		Events:      services.NewEventService(client.Client),
		Discoveries: services.NewDiscoveryService(client.Client, publisher),
		Gateway:     gateway,
		Publisher:   publisher,
	}, cfg)

	return &fixture{
		engine:    engine,
		client:    client,
		gateway:   gateway,
		recorder:  recorder,
		publisher: publisher,
		cfg:       cfg,
	}
}

// seedCloneReadyTicket creates a ticket whose project and owner satisfy
// the clone-readiness chain.
func seedCloneReadyTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	ctx := context.Background()
	owner, err := client.User.Create().
		SetID("user-" + ticketID).
		SetUsername("dev-" + ticketID).
		SetGithubAccessToken("ghp_" + ticketID).
		Save(ctx)
	require.NoError(t, err)
	project, err := client.Project.Create().
		SetID("proj-" + ticketID).
		SetName("project " + ticketID).
		SetRepoURL("https://github.com/acme/" + ticketID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetDescription("ship the " + ticketID + " feature").
		SetPhaseID(testPhase).
		SetProjectID(project.ID).
		Save(ctx)
	require.NoError(t, err)
}

func seedBareTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetPhaseID(testPhase).
		Save(context.Background())
	require.NoError(t, err)
}

func seedTask(t *testing.T, client *database.Client, id, ticketID, taskType string, status task.Status, agentID string) *ent.Task {
	t.Helper()
	create := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID(testPhase).
		SetTaskType(taskType).
		SetStatus(status).
		SetDescription("work item " + id)
	if agentID != "" {
		create = create.SetAssignedAgentID(agentID)
	}
	if status == task.StatusFailed {
		create = create.SetErrorMessage("exit status 1: " + id)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

func recoveryTasks(t *testing.T, client *database.Client, ticketID string) []*ent.Task {
	t.Helper()
	tasks, err := client.Task.Query().
		Where(
			task.TicketIDEQ(ticketID),
			task.TaskTypeHasPrefix(diagnosticTaskPrefix),
		).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return tasks
}

func runCount(t *testing.T, client *database.Client) int {
	t.Helper()
	n, err := client.DiagnosticRun.Query().Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestEngine_ScanSpawnsRecovery(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "agent-w1")
	seedTask(t, f.client, "task-2", "T-1", "implement_api", task.StatusFailed, "agent-w1")
	seedTask(t, f.client, "task-3", "T-1", "write_tests", task.StatusFailed, "agent-w2")

	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: "The sandbox image lacks the build toolchain",
		Hypotheses: []llm.Hypothesis{
			{Description: "missing compiler", Likelihood: 0.8},
		},
		Recommendations: []llm.Recommendation{
			{Action: "Rebuild the sandbox image with the build toolchain preinstalled", TaskType: "Fix Environment", Priority: "HIGH"},
			{Action: "Re-run the failed build once the image is fixed", TaskType: "rerun_build"},
			{Action: "   "},
		},
	}

	f.engine.Scan(ctx)

	runs, err := f.client.DiagnosticRun.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, "T-1", run.WorkflowID)
	assert.Equal(t, TriggerStuckWorkflow, run.Trigger)
	assert.Equal(t, diagnosticrun.StatusCompleted, run.Status)
	assert.Equal(t, 3, run.TotalTasks)
	assert.Equal(t, 0, run.CompletedTasks)
	assert.Equal(t, 3, run.FailedTasks)
	assert.Equal(t, []string{testPhase}, run.PhasesAnalyzed)
	assert.Equal(t, []string{"agent-w1", "agent-w2"}, run.AgentsReviewed)
	require.NotNil(t, run.Diagnosis)
	assert.Equal(t, "The sandbox image lacks the build toolchain", *run.Diagnosis)
	assert.Equal(t, 2, run.TasksCreatedCount)
	assert.Len(t, run.TasksCreatedIds, 2)
	require.NotNil(t, run.CompletedAt)

	// The blank-action recommendation is dropped; the other two become
	// boosted pending tasks carrying their dedup hash.
	spawned := recoveryTasks(t, f.client, "T-1")
	require.Len(t, spawned, 2)
	byType := make(map[string]*ent.Task, len(spawned))
	for _, s := range spawned {
		byType[s.TaskType] = s
		assert.Equal(t, task.StatusPending, s.Status)
		assert.Equal(t, testPhase, s.PhaseID)
		require.NotNil(t, s.ContentHash)
		assert.NotEmpty(t, *s.ContentHash)
	}
	fixEnv := byType["discovery_diagnostic_fix_environment"]
	require.NotNil(t, fixEnv)
	assert.Equal(t, "Rebuild the sandbox image with the build toolchain preinstalled", fixEnv.Description)
	assert.Equal(t, task.Priority("CRITICAL"), fixEnv.Priority)
	rerun := byType["discovery_diagnostic_rerun_build"]
	require.NotNil(t, rerun)
	assert.Equal(t, task.Priority("HIGH"), rerun.Priority)

	// The recovery round hangs off the newest task as a boosted discovery.
	discovery, err := f.client.TaskDiscovery.Query().
		Where(taskdiscovery.SourceTaskIDEQ("task-3")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "diagnostic_recovery", discovery.DiscoveryType)
	assert.Equal(t, "The sandbox image lacks the build toolchain", discovery.Description)
	assert.True(t, discovery.PriorityBoost)
	assert.ElementsMatch(t, run.TasksCreatedIds, discovery.SpawnedTaskIds)

	triggered := f.recorder.byType(events.EventTypeDiagnosticTriggered)
	require.Len(t, triggered, 1)
	payload := triggered[0].Payload.(events.DiagnosticPayload)
	assert.Equal(t, run.ID, payload.RunID)
	assert.Equal(t, "T-1", payload.TicketID)
	assert.Equal(t, TriggerStuckWorkflow, payload.Trigger)
	assert.Equal(t, "running", payload.Status)

	completed := f.recorder.byType(events.EventTypeDiagnosticCompleted)
	require.Len(t, completed, 1)
	done := completed[0].Payload.(events.DiagnosticPayload)
	assert.Equal(t, "completed", done.Status)
	assert.Equal(t, 2, done.TasksCreated)
	assert.ElementsMatch(t, run.TasksCreatedIds, done.TaskIDs)

	prompt := f.gateway.lastPrompt()
	assert.Contains(t, prompt, "Workflow T-1: ticket T-1")
	assert.Contains(t, prompt, "Goal: ship the T-1 feature")
	assert.Contains(t, prompt, "Trigger: stuck_workflow")
	assert.Contains(t, prompt, "3 total, 0 completed, 3 failed, 0 active")
	assert.Contains(t, prompt, testPhase+": 3")
	assert.Contains(t, prompt, "- [failed] write_tests task-3")
	assert.Contains(t, prompt, "exit status 1: task-3")
	f.gateway.mu.Lock()
	require.NotEmpty(t, f.gateway.systems)
	assert.Equal(t, diagnosticSystemPrompt, f.gateway.systems[0])
	f.gateway.mu.Unlock()

	t.Run("next scan leaves the recovery round alone", func(t *testing.T) {
		f.engine.Scan(ctx)
		assert.Equal(t, 1, runCount(t, f.client))
		assert.Len(t, recoveryTasks(t, f.client, "T-1"), 2)
	})
}

func TestEngine_ScanSkipsHealthyTickets(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	// No tasks at all.
	seedCloneReadyTicket(t, f.client, "T-empty")

	// Work still moving.
	seedCloneReadyTicket(t, f.client, "T-active")
	seedTask(t, f.client, "active-1", "T-active", "implement_api", task.StatusFailed, "")
	seedTask(t, f.client, "active-2", "T-active", "implement_api", task.StatusRunning, "agent-w1")

	// A validated result already came out.
	seedCloneReadyTicket(t, f.client, "T-validated")
	seedTask(t, f.client, "val-1", "T-validated", "implement_api", task.StatusFailed, "")
	_, err := f.client.WorkflowResult.Create().
		SetID("wr-1").
		SetTicketID("T-validated").
		SetMarkdownFilePath("results/T-validated.md").
		SetStatus(workflowresult.StatusValidated).
		Save(ctx)
	require.NoError(t, err)

	// Something happened on the channel inside the stuck threshold.
	seedCloneReadyTicket(t, f.client, "T-busy")
	seedTask(t, f.client, "busy-1", "T-busy", "implement_api", task.StatusFailed, "")
	err = f.publisher.PublishTaskStatusChanged(ctx, events.TaskStatusChangedPayload{
		TaskID: "busy-1", TicketID: "T-busy", From: "running", To: "failed",
	})
	require.NoError(t, err)

	f.engine.Scan(ctx)

	assert.Equal(t, 0, runCount(t, f.client))
	assert.Empty(t, f.recorder.byType(events.EventTypeDiagnosticTriggered))
}

func TestEngine_Safeguards(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	t.Run("empty workflow", func(t *testing.T) {
		seedCloneReadyTicket(t, f.client, "T-none")
		run, err := f.engine.Run(ctx, "T-none", TriggerValidationTimeout, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("workflow succeeded", func(t *testing.T) {
		seedCloneReadyTicket(t, f.client, "T-ok")
		seedTask(t, f.client, "ok-1", "T-ok", "implement_api", task.StatusCompleted, "agent-w1")
		run, err := f.engine.Run(ctx, "T-ok", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("recovery ran and work still fails", func(t *testing.T) {
		seedCloneReadyTicket(t, f.client, "T-exhausted")
		seedTask(t, f.client, "ex-1", "T-exhausted", "implement_api", task.StatusFailed, "")
		seedTask(t, f.client, "ex-2", "T-exhausted", "discovery_diagnostic_no_result", task.StatusCompleted, "")
		run, err := f.engine.Run(ctx, "T-exhausted", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("diagnostic task in flight", func(t *testing.T) {
		seedCloneReadyTicket(t, f.client, "T-flight")
		seedTask(t, f.client, "fl-1", "T-flight", "implement_api", task.StatusFailed, "")
		seedTask(t, f.client, "fl-2", "T-flight", "discovery_diagnostic_no_result", task.StatusPending, "")
		run, err := f.engine.Run(ctx, "T-flight", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	t.Run("consecutive recovery failures", func(t *testing.T) {
		seedCloneReadyTicket(t, f.client, "T-streak")
		seedTask(t, f.client, "st-1", "T-streak", "implement_api", task.StatusFailed, "")
		for i := 0; i < f.cfg.MaxConsecutiveFailures; i++ {
			f.engine.Tracker().RecordFailure("T-streak")
		}
		run, err := f.engine.Run(ctx, "T-streak", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)

		f.engine.Tracker().RecordSuccess("T-streak")
	})

	t.Run("run cap reached", func(t *testing.T) {
		cfg := config.DefaultDiagnosticConfig()
		cfg.MaxDiagnosticsPerWorkflow = 1
		capped := newTestEngine(t, cfg)
		seedCloneReadyTicket(t, capped.client, "T-cap")
		seedTask(t, capped.client, "cap-1", "T-cap", "implement_api", task.StatusFailed, "")
		_, err := capped.client.DiagnosticRun.Create().
			SetID("run-prior").
			SetWorkflowID("T-cap").
			SetStatus(diagnosticrun.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		run, err := capped.engine.Run(ctx, "T-cap", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
		assert.Equal(t, 1, runCount(t, capped.client))
	})

	t.Run("not clone ready", func(t *testing.T) {
		seedBareTicket(t, f.client, "T-noclone")
		seedTask(t, f.client, "nc-1", "T-noclone", "implement_api", task.StatusFailed, "")
		run, err := f.engine.Run(ctx, "T-noclone", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		assert.Nil(t, run)
	})

	// None of the skips left a run row or an event behind.
	assert.Equal(t, 0, runCount(t, f.client))
	assert.Empty(t, f.recorder.byType(events.EventTypeDiagnosticTriggered))
}

func TestEngine_DedupSkipsRepeatDiagnosis(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	rootCause := "The API credentials expired"
	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

	// A recovery task from an earlier round is parked in needs_work: live
	// for dedup, but not in flight for the safeguard.
	_, err := f.client.Task.Create().
		SetID("prior-recovery").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetTaskType(recoveryDedupType).
		SetStatus(task.StatusNeedsWork).
		SetDescription(rootCause).
		SetContentHash(dedup.ContentHash(rootCause)).
		Save(ctx)
	require.NoError(t, err)

	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: rootCause,
		Recommendations: []llm.Recommendation{
			{Action: "Rotate the API credentials", TaskType: "no_result", Priority: "HIGH"},
		},
	}

	run, err := f.engine.Run(ctx, "T-1", TriggerStuckWorkflow, nil)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, diagnosticrun.StatusSkipped, run.Status)
	require.NotNil(t, run.Diagnosis)
	assert.Contains(t, *run.Diagnosis, rootCause)
	assert.Contains(t, *run.Diagnosis, "duplicate of task prior-recovery")
	require.NotNil(t, run.CompletedAt)
	assert.Zero(t, run.TasksCreatedCount)

	// Nothing was enqueued and no discovery was recorded.
	spawned, err := f.client.Task.Query().
		Where(task.TicketIDEQ("T-1"), task.StatusEQ(task.StatusPending)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, spawned)
	discoveries, err := f.client.TaskDiscovery.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, discoveries)

	completed := f.recorder.byType(events.EventTypeDiagnosticCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "skipped", completed[0].Payload.(events.DiagnosticPayload).Status)
}

func TestEngine_RecoveryBounds(t *testing.T) {
	ctx := context.Background()

	t.Run("identical recommendations collapse", func(t *testing.T) {
		f := newTestEngine(t, nil)
		seedCloneReadyTicket(t, f.client, "T-1")
		seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

		f.gateway.analysis = &llm.DiagnosticAnalysis{
			RootCause: "Flaky integration suite",
			Recommendations: []llm.Recommendation{
				{Action: "Quarantine the flaky integration test", TaskType: "fix_tests"},
				{Action: "Quarantine the flaky integration test", TaskType: "fix_tests"},
			},
		}

		run, err := f.engine.Run(ctx, "T-1", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, diagnosticrun.StatusCompleted, run.Status)
		assert.Equal(t, 1, run.TasksCreatedCount)
		assert.Len(t, recoveryTasks(t, f.client, "T-1"), 1)
	})

	t.Run("spawn cap", func(t *testing.T) {
		f := newTestEngine(t, nil)
		seedCloneReadyTicket(t, f.client, "T-1")
		seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

		var recs []llm.Recommendation
		for i := 0; i < f.cfg.MaxRecoveryTasks+2; i++ {
			recs = append(recs, llm.Recommendation{
				Action:   fmt.Sprintf("Recovery step %d for the stalled build", i),
				TaskType: fmt.Sprintf("step_%d", i),
			})
		}
		f.gateway.analysis = &llm.DiagnosticAnalysis{RootCause: "Build stalled", Recommendations: recs}

		run, err := f.engine.Run(ctx, "T-1", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, f.cfg.MaxRecoveryTasks, run.TasksCreatedCount)
		assert.Len(t, recoveryTasks(t, f.client, "T-1"), f.cfg.MaxRecoveryTasks)
	})

	t.Run("no recommendations falls back to investigate", func(t *testing.T) {
		f := newTestEngine(t, nil)
		seedCloneReadyTicket(t, f.client, "T-1")
		seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

		f.gateway.analysis = &llm.DiagnosticAnalysis{RootCause: "Unclear stall"}

		run, err := f.engine.Run(ctx, "T-1", TriggerStuckWorkflow, nil)
		require.NoError(t, err)
		require.NotNil(t, run)
		assert.Equal(t, 1, run.TasksCreatedCount)

		spawned := recoveryTasks(t, f.client, "T-1")
		require.Len(t, spawned, 1)
		assert.Equal(t, "discovery_diagnostic_no_result", spawned[0].TaskType)
		assert.Contains(t, spawned[0].Description, "Investigate why workflow T-1")
		assert.Equal(t, task.Priority("CRITICAL"), spawned[0].Priority)
	})
}

func TestEngine_FallbackDiagnosis(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "agent-w1")
	seedTask(t, f.client, "task-2", "T-1", "write_tests", task.StatusFailed, "agent-w1")

	f.gateway.err = fmt.Errorf("gateway unavailable")

	err := f.engine.Trigger(ctx, "T-1", TriggerValidationTimeout, map[string]any{
		"task_id":            "task-2",
		"validator_agent_id": "val-9",
	})
	require.NoError(t, err)

	runs, err := f.client.DiagnosticRun.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, TriggerValidationTimeout, run.Trigger)
	assert.Equal(t, diagnosticrun.StatusCompleted, run.Status)
	require.NotNil(t, run.Diagnosis)
	assert.Equal(t,
		"Workflow stalled with 2 of 2 tasks failed and no active work; no automated root cause is available",
		*run.Diagnosis)
	assert.Equal(t, 1, run.TasksCreatedCount)

	spawned := recoveryTasks(t, f.client, "T-1")
	require.Len(t, spawned, 1)
	assert.Equal(t, "discovery_diagnostic_no_result", spawned[0].TaskType)
	assert.Equal(t, task.Priority("CRITICAL"), spawned[0].Priority)

	// The prompt was rendered before the gateway failed, trigger detail
	// included.
	prompt := f.gateway.lastPrompt()
	assert.Contains(t, prompt, "Trigger: validation_timeout")
	assert.Contains(t, prompt, "task_id: task-2")
	assert.Contains(t, prompt, "validator_agent_id: val-9")
}

func TestEngine_TriggerExplicit(t *testing.T) {
	f := newTestEngine(t, nil)
	ctx := context.Background()

	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

	// Fresh channel activity blocks the periodic scan but not an explicit
	// trigger.
	err := f.publisher.PublishTaskStatusChanged(ctx, events.TaskStatusChangedPayload{
		TaskID: "task-1", TicketID: "T-1", From: "running", To: "failed",
	})
	require.NoError(t, err)

	f.engine.Scan(ctx)
	assert.Equal(t, 0, runCount(t, f.client))

	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: "Validator never reported back",
		Recommendations: []llm.Recommendation{
			{Action: "Re-run the validation for the last submission", TaskType: "no_result", Priority: "HIGH"},
		},
	}
	err = f.engine.Trigger(ctx, "T-1", TriggerRepeatedFailures, map[string]any{"consecutive_failures": 2})
	require.NoError(t, err)

	runs, err := f.client.DiagnosticRun.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, TriggerRepeatedFailures, runs[0].Trigger)
	assert.Equal(t, diagnosticrun.StatusCompleted, runs[0].Status)

	t.Run("unknown ticket", func(t *testing.T) {
		err := f.engine.Trigger(ctx, "missing", TriggerValidationTimeout, nil)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("missing ticket id", func(t *testing.T) {
		err := f.engine.Trigger(ctx, "", TriggerValidationTimeout, nil)
		assert.True(t, services.IsValidationError(err))
	})
}

func TestEngine_ScanCooldown(t *testing.T) {
	cfg := config.DefaultDiagnosticConfig()
	cfg.StuckThreshold = time.Millisecond
	f := newTestEngine(t, cfg)
	ctx := context.Background()

	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")

	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: "First round root cause",
		Recommendations: []llm.Recommendation{
			{Action: "Retry the failing step with verbose logging", TaskType: "retry"},
		},
	}

	f.engine.Scan(ctx)
	require.Equal(t, 1, runCount(t, f.client))

	// Make the ticket eligible again: the recovery round failed too, and
	// the channel activity ages past the (tiny) threshold.
	for _, spawned := range recoveryTasks(t, f.client, "T-1") {
		_, err := f.client.Task.UpdateOneID(spawned.ID).
			SetStatus(task.StatusFailed).
			SetErrorMessage("also failed").
			Save(ctx)
		require.NoError(t, err)
	}
	time.Sleep(10 * time.Millisecond)

	f.engine.Scan(ctx)
	assert.Equal(t, 1, runCount(t, f.client), "cooldown must hold the second diagnosis back")

	// Age the cooldown out and the scan diagnoses again.
	f.engine.mu.Lock()
	f.engine.lastDiagnosed["T-1"] = time.Now().Add(-time.Hour)
	f.engine.mu.Unlock()
	f.gateway.analysis.RootCause = "Second round root cause"
	f.gateway.analysis.Recommendations[0].Action = "Escalate the failing step to a bigger sandbox"

	f.engine.Scan(ctx)
	assert.Equal(t, 2, runCount(t, f.client))
}

func TestEngine_StartScanLoop(t *testing.T) {
	cfg := config.DefaultDiagnosticConfig()
	cfg.ScanInterval = 20 * time.Millisecond
	f := newTestEngine(t, cfg)
	ctx := context.Background()

	seedCloneReadyTicket(t, f.client, "T-1")
	seedTask(t, f.client, "task-1", "T-1", "implement_api", task.StatusFailed, "")
	f.gateway.analysis = &llm.DiagnosticAnalysis{
		RootCause: "Ticker-driven diagnosis",
		Recommendations: []llm.Recommendation{
			{Action: "Restart the failing step", TaskType: "retry"},
		},
	}

	f.engine.Start(ctx)
	require.Eventually(t, func() bool {
		return runCount(t, f.client) == 1
	}, 5*time.Second, 25*time.Millisecond)

	f.engine.Stop()
	f.engine.Stop()
}

func TestTracker_CheckOutcomes(t *testing.T) {
	f := newTestEngine(t, nil)
	tracker := f.engine.Tracker()
	ctx := context.Background()

	seedBareTicket(t, f.client, "T-1")
	seedTask(t, f.client, "r1-a", "T-1", "discovery_diagnostic_no_result", task.StatusFailed, "")
	seedTask(t, f.client, "r2-a", "T-1", "discovery_diagnostic_no_result", task.StatusFailed, "")
	seedTask(t, f.client, "r2-b", "T-1", "discovery_diagnostic_no_result", task.StatusFailed, "")
	seedTask(t, f.client, "r3-a", "T-1", "discovery_diagnostic_no_result", task.StatusFailed, "")

	base := time.Now().Add(-time.Hour)
	seedRun := func(id string, at time.Time, taskIDs []string) {
		create := f.client.DiagnosticRun.Create().
			SetID(id).
			SetWorkflowID("T-1").
			SetTriggeredAt(at).
			SetStatus(diagnosticrun.StatusCompleted)
		if len(taskIDs) > 0 {
			create = create.SetTasksCreatedIds(taskIDs).SetTasksCreatedCount(len(taskIDs))
		}
		_, err := create.Save(ctx)
		require.NoError(t, err)
	}
	seedRun("run-1", base, []string{"r1-a"})
	seedRun("run-2", base.Add(time.Minute), []string{"r2-a", "r2-b"})
	seedRun("run-3", base.Add(2*time.Minute), []string{"r3-a"})
	// A skipped run spawned nothing and must not interrupt the streak.
	seedRun("run-4", base.Add(3*time.Minute), nil)

	require.NoError(t, tracker.CheckOutcomes(ctx))
	assert.Equal(t, 3, tracker.Count("T-1"))

	t.Run("rederiving is idempotent", func(t *testing.T) {
		require.NoError(t, tracker.CheckOutcomes(ctx))
		require.NoError(t, tracker.CheckOutcomes(ctx))
		assert.Equal(t, 3, tracker.Count("T-1"))
	})

	t.Run("one completed recovery clears the streak", func(t *testing.T) {
		_, err := f.client.Task.UpdateOneID("r3-a").
			SetStatus(task.StatusCompleted).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, tracker.CheckOutcomes(ctx))
		assert.Equal(t, 0, tracker.Count("T-1"))
	})

	t.Run("in-flight recovery holds the count at zero", func(t *testing.T) {
		_, err := f.client.Task.UpdateOneID("r3-a").
			SetStatus(task.StatusRunning).
			Save(ctx)
		require.NoError(t, err)
		tracker.RecordFailure("T-1")

		require.NoError(t, tracker.CheckOutcomes(ctx))
		assert.Equal(t, 0, tracker.Count("T-1"))
	})
}
