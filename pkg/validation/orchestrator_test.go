package validation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/models"
	"github.com/droverhq/drover/pkg/queue"
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

const testPhase = "PHASE_IMPLEMENTATION"

// validatorID is the agent id the fake spawner hands out for a task
// iteration, so tests can register the matching agent row.
func validatorID(taskID string, iteration int) string {
	return fmt.Sprintf("val-%s-i%d", taskID, iteration)
}

type fakeValidatorSpawner struct {
	mu      sync.Mutex
	spawned []string
	err     error
}

func (f *fakeValidatorSpawner) SpawnValidator(_ context.Context, t *ent.Task) (*queue.SpawnedAgent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.spawned = append(f.spawned, t.ID)
	return &queue.SpawnedAgent{
		AgentID:   validatorID(t.ID, t.ValidationIteration),
		SandboxID: "sandbox-" + t.ID,
	}, nil
}

func (f *fakeValidatorSpawner) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func (f *fakeValidatorSpawner) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spawned...)
}

type fakeLearning struct {
	mu   sync.Mutex
	runs []string
	err  error
}

func (f *fakeLearning) Run(_ context.Context, t *ent.Task, _ *ent.ValidationReview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, t.ID)
	return nil
}

func (f *fakeLearning) ran() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.runs...)
}

type diagnosticCall struct {
	ticketID string
	reason   string
	detail   map[string]any
}

type fakeDiagnostic struct {
	mu    sync.Mutex
	calls []diagnosticCall
}

func (f *fakeDiagnostic) Trigger(_ context.Context, ticketID, reason string, detail map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, diagnosticCall{ticketID: ticketID, reason: reason, detail: detail})
	return nil
}

func (f *fakeDiagnostic) triggered() []diagnosticCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]diagnosticCall(nil), f.calls...)
}

// eventRecorder captures bus deliveries for assertions. Bus dispatch is
// synchronous, so captured events are visible as soon as the call returns.
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
	orch       *Orchestrator
	client     *database.Client
	agents     *services.AgentService
	spawner    *fakeValidatorSpawner
	learning   *fakeLearning
	diagnostic *fakeDiagnostic
	recorder   *eventRecorder
}

func newTestOrchestrator(t *testing.T, cfg *config.ValidationConfig) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	recorder := &eventRecorder{}
	for _, eventType := range []string{
		events.EventTypeTaskStatusChanged,
		events.EventTypeTaskCompleted,
		events.EventTypeTaskFailed,
		events.EventTypeValidationStarted,
		events.EventTypeValidationReviewSubmitted,
		events.EventTypeValidationPassed,
		events.EventTypeValidationFailed,
		events.EventTypeAgentValidationFeedback,
	} {
		bus.Subscribe(eventType, "test-recorder", recorder.record)
	}

	agents := services.NewAgentService(client.Client)
	spawner := &fakeValidatorSpawner{}
	learning := &fakeLearning{}
	diagnostic := &fakeDiagnostic{}
	orch := NewOrchestrator(client, agents, spawner, cfg, events.NewPublisher(client.DB(), bus))
	orch.SetLearningPipeline(learning)
	orch.SetDiagnosticTrigger(diagnostic)

	return &fixture{
		orch:       orch,
		client:     client,
		agents:     agents,
		spawner:    spawner,
		learning:   learning,
		diagnostic: diagnostic,
		recorder:   recorder,
	}
}

func createTicket(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetPhaseID(testPhase).
		Save(context.Background())
	require.NoError(t, err)
}

// seedRunningTask inserts a validation-enabled task mid-execution, the
// state a worker reports submit_for_review from.
func seedRunningTask(t *testing.T, client *database.Client, id, ticketID string, validationEnabled bool) *ent.Task {
	t.Helper()
	created, err := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID(testPhase).
		SetDescription("implement " + id).
		SetStatus(task.StatusRunning).
		SetAssignedAgentID("worker-" + id).
		SetValidationEnabled(validationEnabled).
		Save(context.Background())
	require.NoError(t, err)
	return created
}

func registerAgent(t *testing.T, agents *services.AgentService, id, agentType string) {
	t.Helper()
	_, err := agents.RegisterAgent(context.Background(), models.RegisterAgentRequest{
		AgentID:   id,
		AgentType: agentType,
	})
	require.NoError(t, err)
}

// submitTask drives a running task into validation_in_progress and
// registers the spawned validator as an agent.
func submitTask(t *testing.T, f *fixture, taskID, commit string) *ent.Task {
	t.Helper()
	submitted, err := f.orch.Submit(context.Background(), taskID, models.SubmitForReviewRequest{CommitSHA: commit})
	require.NoError(t, err)
	require.Equal(t, task.StatusValidationInProgress, submitted.Status)
	registerAgent(t, f.agents, validatorID(taskID, submitted.ValidationIteration), "validator")
	return submitted
}

func TestOrchestrator_Submit(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	t.Run("running task enters validation", func(t *testing.T) {
		seedRunningTask(t, f.client, "sub-1", "T-1", true)

		got, err := f.orch.Submit(ctx, "sub-1", models.SubmitForReviewRequest{
			AgentID:   "worker-sub-1",
			CommitSHA: "abc123",
			Result:    map[string]any{"files_changed": 3},
		})
		require.NoError(t, err)

		assert.Equal(t, task.StatusValidationInProgress, got.Status)
		require.NotNil(t, got.CommitSha)
		assert.Equal(t, "abc123", *got.CommitSha)
		assert.Equal(t, 1, got.ValidationIteration)
		assert.False(t, got.ReviewDone)
		assert.Equal(t, float64(3), got.Result["files_changed"])
		assert.Equal(t, []string{"sub-1"}, f.spawner.calls())

		active := f.orch.ActiveValidators()
		require.Contains(t, active, "sub-1")
		assert.Equal(t, validatorID("sub-1", 1), active["sub-1"].ValidatorAgentID)
		assert.Equal(t, 1, active["sub-1"].Iteration)

		changes := f.recorder.byType(events.EventTypeTaskStatusChanged)
		require.Len(t, changes, 2)
		first := changes[0].Payload.(events.TaskStatusChangedPayload)
		assert.Equal(t, "running", first.From)
		assert.Equal(t, "under_review", first.To)
		assert.Equal(t, "submitted for review", first.Reason)
		second := changes[1].Payload.(events.TaskStatusChangedPayload)
		assert.Equal(t, "under_review", second.From)
		assert.Equal(t, "validation_in_progress", second.To)
		assert.Equal(t, "validator assigned", second.Reason)

		started := f.recorder.byType(events.EventTypeValidationStarted)
		require.Len(t, started, 1)
		payload := started[0].Payload.(events.ValidationPayload)
		assert.Equal(t, "sub-1", payload.TaskID)
		assert.Equal(t, "T-1", payload.TicketID)
		assert.Equal(t, validatorID("sub-1", 1), payload.ValidatorAgentID)
		assert.Equal(t, 1, payload.Iteration)
	})

	t.Run("missing commit is rejected", func(t *testing.T) {
		seedRunningTask(t, f.client, "sub-2", "T-1", true)
		_, err := f.orch.Submit(ctx, "sub-2", models.SubmitForReviewRequest{CommitSHA: "  "})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("validation disabled tasks complete directly", func(t *testing.T) {
		seedRunningTask(t, f.client, "sub-3", "T-1", false)
		_, err := f.orch.Submit(ctx, "sub-3", models.SubmitForReviewRequest{CommitSHA: "abc123"})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("only running tasks may submit", func(t *testing.T) {
		_, err := f.client.Task.Create().
			SetID("sub-4").
			SetTicketID("T-1").
			SetPhaseID(testPhase).
			SetDescription("still pending").
			SetStatus(task.StatusPending).
			SetValidationEnabled(true).
			Save(ctx)
		require.NoError(t, err)

		_, err = f.orch.Submit(ctx, "sub-4", models.SubmitForReviewRequest{CommitSHA: "abc123"})
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})

	t.Run("unknown task", func(t *testing.T) {
		_, err := f.orch.Submit(ctx, "ghost", models.SubmitForReviewRequest{CommitSHA: "abc123"})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("spawn failure parks the task under review", func(t *testing.T) {
		seedRunningTask(t, f.client, "sub-5", "T-1", true)
		f.spawner.setErr(errors.New("gateway down"))
		defer f.spawner.setErr(nil)

		got, err := f.orch.Submit(ctx, "sub-5", models.SubmitForReviewRequest{CommitSHA: "abc123"})
		require.NoError(t, err)

		assert.Equal(t, task.StatusUnderReview, got.Status)
		assert.Equal(t, 1, got.ValidationIteration)
		assert.NotContains(t, f.orch.ActiveValidators(), "sub-5")
	})
}

func TestOrchestrator_SweepAdvancesStalled(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	seedRunningTask(t, f.client, "stall-1", "T-1", true)
	f.spawner.setErr(errors.New("gateway down"))
	_, err := f.orch.Submit(ctx, "stall-1", models.SubmitForReviewRequest{CommitSHA: "abc123"})
	require.NoError(t, err)

	// Gateway recovers; the next sweep picks the submission back up.
	f.spawner.setErr(nil)
	f.orch.Sweep(ctx)

	got, err := f.client.Task.Get(ctx, "stall-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusValidationInProgress, got.Status)
	assert.Contains(t, f.orch.ActiveValidators(), "stall-1")
	assert.Len(t, f.recorder.byType(events.EventTypeValidationStarted), 1)
}

func TestOrchestrator_GiveReview_Pass(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	seedRunningTask(t, f.client, "pass-1", "T-1", true)
	submitTask(t, f, "pass-1", "abc123")

	review, err := f.orch.GiveReview(ctx, "pass-1", models.ReviewRequest{
		ValidatorAgentID: validatorID("pass-1", 1),
		Passed:           true,
		Evidence:         map[string]any{"tests_run": 42},
		Recommendations:  []string{"add a regression test for the parser"},
	})
	require.NoError(t, err)

	assert.Equal(t, "pass-1", review.TaskID)
	assert.Equal(t, 1, review.IterationNumber)
	assert.True(t, review.ValidationPassed)
	assert.Equal(t, 42, review.Evidence["tests_run"])

	got, err := f.client.Task.Get(ctx, "pass-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)
	assert.True(t, got.ReviewDone)
	assert.NotNil(t, got.CompletedAt)

	assert.Empty(t, f.orch.ActiveValidators())
	assert.Equal(t, []string{"pass-1"}, f.learning.ran())

	require.Len(t, f.recorder.byType(events.EventTypeValidationReviewSubmitted), 1)
	passed := f.recorder.byType(events.EventTypeValidationPassed)
	require.Len(t, passed, 1)
	assert.True(t, passed[0].Payload.(events.ValidationPayload).Passed)
	completed := f.recorder.byType(events.EventTypeTaskCompleted)
	require.Len(t, completed, 1)
	assert.Equal(t, "worker-pass-1", completed[0].Payload.(events.TaskCompletedPayload).AgentID)

	t.Run("learning failure does not fail the review", func(t *testing.T) {
		seedRunningTask(t, f.client, "pass-2", "T-1", true)
		submitTask(t, f, "pass-2", "abc124")
		f.learning.err = errors.New("pipeline down")
		defer func() { f.learning.err = nil }()

		_, err := f.orch.GiveReview(ctx, "pass-2", models.ReviewRequest{
			ValidatorAgentID: validatorID("pass-2", 1),
			Passed:           true,
		})
		require.NoError(t, err)

		got, err := f.client.Task.Get(ctx, "pass-2")
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, got.Status)
	})

	t.Run("second verdict for the iteration is rejected", func(t *testing.T) {
		seedRunningTask(t, f.client, "pass-3", "T-1", true)
		submitTask(t, f, "pass-3", "abc125")

		_, err := f.client.ValidationReview.Create().
			SetID("review-prior").
			SetTaskID("pass-3").
			SetValidatorAgentID(validatorID("pass-3", 1)).
			SetIterationNumber(1).
			SetValidationPassed(false).
			SetFeedback("earlier verdict").
			Save(ctx)
		require.NoError(t, err)

		_, err = f.orch.GiveReview(ctx, "pass-3", models.ReviewRequest{
			ValidatorAgentID: validatorID("pass-3", 1),
			Passed:           true,
		})
		assert.ErrorIs(t, err, services.ErrAlreadyExists)

		// The transition rolled back with the duplicate review.
		got, err := f.client.Task.Get(ctx, "pass-3")
		require.NoError(t, err)
		assert.Equal(t, task.StatusValidationInProgress, got.Status)
	})
}

func TestOrchestrator_GiveReview_FailAndRework(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	seedRunningTask(t, f.client, "fail-1", "T-1", true)
	submitTask(t, f, "fail-1", "abc123")

	review, err := f.orch.GiveReview(ctx, "fail-1", models.ReviewRequest{
		ValidatorAgentID: validatorID("fail-1", 1),
		Passed:           false,
		Feedback:         "tests are missing",
	})
	require.NoError(t, err)
	assert.False(t, review.ValidationPassed)

	got, err := f.client.Task.Get(ctx, "fail-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusNeedsWork, got.Status)
	require.NotNil(t, got.LastValidationFeedback)
	assert.Equal(t, "tests are missing", *got.LastValidationFeedback)
	assert.False(t, got.ReviewDone)
	assert.Nil(t, got.CompletedAt)
	assert.Empty(t, f.learning.ran())

	failed := f.recorder.byType(events.EventTypeValidationFailed)
	require.Len(t, failed, 1)
	assert.Equal(t, "tests are missing", failed[0].Payload.(events.ValidationPayload).Feedback)

	// One failed review is not yet a pattern.
	assert.Empty(t, f.diagnostic.triggered())

	// The worker resumes, resubmits, and fails review again.
	n, err := f.client.Task.Update().
		Where(task.IDEQ("fail-1"), task.StatusEQ(task.StatusNeedsWork)).
		SetStatus(task.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	resubmitted := submitTask(t, f, "fail-1", "def456")
	assert.Equal(t, 2, resubmitted.ValidationIteration)
	require.NotNil(t, resubmitted.CommitSha)
	assert.Equal(t, "def456", *resubmitted.CommitSha)

	_, err = f.orch.GiveReview(ctx, "fail-1", models.ReviewRequest{
		ValidatorAgentID: validatorID("fail-1", 2),
		Passed:           false,
		Feedback:         "tests still missing",
	})
	require.NoError(t, err)

	triggers := f.diagnostic.triggered()
	require.Len(t, triggers, 1)
	assert.Equal(t, "T-1", triggers[0].ticketID)
	assert.Equal(t, "repeated_validation_failures", triggers[0].reason)
	assert.Equal(t, 2, triggers[0].detail["consecutive_failures"])
}

func TestOrchestrator_GiveReview_Permissions(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	seedRunningTask(t, f.client, "perm-1", "T-1", true)
	submitTask(t, f, "perm-1", "abc123")

	t.Run("worker agents may not review", func(t *testing.T) {
		registerAgent(t, f.agents, "worker-agent", "worker")
		_, err := f.orch.GiveReview(ctx, "perm-1", models.ReviewRequest{
			ValidatorAgentID: "worker-agent",
			Passed:           true,
		})
		assert.True(t, services.IsPermissionError(err))
	})

	t.Run("only the active validator may review", func(t *testing.T) {
		registerAgent(t, f.agents, "other-validator", "validator")
		_, err := f.orch.GiveReview(ctx, "perm-1", models.ReviewRequest{
			ValidatorAgentID: "other-validator",
			Passed:           true,
		})
		assert.True(t, services.IsPermissionError(err))
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := f.orch.GiveReview(ctx, "perm-1", models.ReviewRequest{
			ValidatorAgentID: "ghost",
			Passed:           true,
		})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("failing review needs feedback", func(t *testing.T) {
		_, err := f.orch.GiveReview(ctx, "perm-1", models.ReviewRequest{
			ValidatorAgentID: validatorID("perm-1", 1),
			Passed:           false,
			Feedback:         "   ",
		})
		assert.True(t, services.IsValidationError(err))
	})

	t.Run("task must be in validation", func(t *testing.T) {
		seedRunningTask(t, f.client, "perm-2", "T-1", true)
		registerAgent(t, f.agents, "val-idle", "validator")
		_, err := f.orch.GiveReview(ctx, "perm-2", models.ReviewRequest{
			ValidatorAgentID: "val-idle",
			Passed:           true,
		})
		assert.ErrorIs(t, err, services.ErrIllegalTransition)
	})
}

func TestOrchestrator_ValidatorTimeout(t *testing.T) {
	cfg := config.DefaultValidationConfig()
	cfg.ValidatorTimeout = 500 * time.Millisecond
	f := newTestOrchestrator(t, cfg)
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	seedRunningTask(t, f.client, "slow-1", "T-1", true)
	submitTask(t, f, "slow-1", "abc123")
	valID := validatorID("slow-1", 1)

	// A heartbeat inside the window keeps the validation alive.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, f.agents.Heartbeat(ctx, valID))
	f.orch.Sweep(ctx)
	got, err := f.client.Task.Get(ctx, "slow-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusValidationInProgress, got.Status)

	// Then the validator goes silent.
	require.Eventually(t, func() bool {
		f.orch.Sweep(ctx)
		got, err := f.client.Task.Get(ctx, "slow-1")
		require.NoError(t, err)
		return got.Status == task.StatusFailed
	}, 5*time.Second, 50*time.Millisecond)

	got, err = f.client.Task.Get(ctx, "slow-1")
	require.NoError(t, err)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "validation timed out")
	assert.NotNil(t, got.CompletedAt)
	assert.Empty(t, f.orch.ActiveValidators())

	failedEvents := f.recorder.byType(events.EventTypeTaskFailed)
	require.Len(t, failedEvents, 1)
	payload := failedEvents[0].Payload.(events.TaskFailedPayload)
	assert.Equal(t, "validation timeout", payload.Reason)
	assert.False(t, payload.WillRetry)

	triggers := f.diagnostic.triggered()
	require.Len(t, triggers, 1)
	assert.Equal(t, "validation_timeout", triggers[0].reason)
	assert.Equal(t, valID, triggers[0].detail["validator_agent_id"])
}

func TestOrchestrator_RegistryRebuild(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	// A validation that was in flight when the previous instance died.
	_, err := f.client.Task.Create().
		SetID("restart-1").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("in flight across restart").
		SetStatus(task.StatusValidationInProgress).
		SetValidationEnabled(true).
		SetValidationIteration(2).
		SetCommitSha("abc123").
		SetAssignedAgentID("worker-restart-1").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.orch.Start(ctx))
	defer f.orch.Stop()

	active := f.orch.ActiveValidators()
	require.Contains(t, active, "restart-1")
	assert.Empty(t, active["restart-1"].ValidatorAgentID)
	assert.Equal(t, 2, active["restart-1"].Iteration)

	// The spawned validator is unknown after a restart, so any validator
	// agent may conclude the review.
	registerAgent(t, f.agents, "val-after-restart", "validator")
	review, err := f.orch.GiveReview(ctx, "restart-1", models.ReviewRequest{
		ValidatorAgentID: "val-after-restart",
		Passed:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, review.IterationNumber)

	got, err := f.client.Task.Get(ctx, "restart-1")
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)

	f.orch.Stop()
	f.orch.Stop()
}

func TestOrchestrator_RestoredEntryTimesOut(t *testing.T) {
	cfg := config.DefaultValidationConfig()
	cfg.ValidatorTimeout = 50 * time.Millisecond
	f := newTestOrchestrator(t, cfg)
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	_, err := f.client.Task.Create().
		SetID("restart-2").
		SetTicketID("T-1").
		SetPhaseID(testPhase).
		SetDescription("orphaned validation").
		SetStatus(task.StatusValidationInProgress).
		SetValidationEnabled(true).
		SetValidationIteration(1).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.orch.rebuildRegistry(ctx))

	require.Eventually(t, func() bool {
		f.orch.Sweep(ctx)
		got, err := f.client.Task.Get(ctx, "restart-2")
		require.NoError(t, err)
		return got.Status == task.StatusFailed
	}, 5*time.Second, 20*time.Millisecond)

	triggers := f.diagnostic.triggered()
	require.Len(t, triggers, 1)
	assert.Equal(t, "validation_timeout", triggers[0].reason)
}

func TestOrchestrator_SendFeedback(t *testing.T) {
	f := newTestOrchestrator(t, config.DefaultValidationConfig())
	createTicket(t, f.client.Client, "T-1")
	ctx := context.Background()

	registerAgent(t, f.agents, "worker-fb-1", "worker")
	seedRunningTask(t, f.client, "fb-1", "T-1", true)

	t.Run("delivers to a known agent with its task attached", func(t *testing.T) {
		ok, err := f.orch.SendFeedback(ctx, "worker-fb-1", "fix the null check in the parser")
		require.NoError(t, err)
		assert.True(t, ok)

		delivered := f.recorder.byType(events.EventTypeAgentValidationFeedback)
		require.Len(t, delivered, 1)
		payload := delivered[0].Payload.(events.ValidationFeedbackPayload)
		assert.Equal(t, "worker-fb-1", payload.AgentID)
		assert.Equal(t, "fb-1", payload.TaskID)
		assert.Equal(t, "T-1", payload.TicketID)
		assert.Equal(t, "fix the null check in the parser", payload.Feedback)
	})

	t.Run("unknown agent is reported without error", func(t *testing.T) {
		ok, err := f.orch.SendFeedback(ctx, "ghost", "hello")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Len(t, f.recorder.byType(events.EventTypeAgentValidationFeedback), 1)
	})

	t.Run("idle agent gets feedback without a task reference", func(t *testing.T) {
		registerAgent(t, f.agents, "idle-agent", "worker")
		ok, err := f.orch.SendFeedback(ctx, "idle-agent", "general guidance")
		require.NoError(t, err)
		assert.True(t, ok)

		delivered := f.recorder.byType(events.EventTypeAgentValidationFeedback)
		require.Len(t, delivered, 2)
		assert.Empty(t, delivered[1].Payload.(events.ValidationFeedbackPayload).TaskID)
	})

	t.Run("feedback text is required", func(t *testing.T) {
		_, err := f.orch.SendFeedback(ctx, "worker-fb-1", "  ")
		assert.True(t, services.IsValidationError(err))
	})
}
