package ace

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/dedup"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
	testdb "github.com/droverhq/drover/test/database"
)

const testPhase = "PHASE_IMPLEMENTATION"

// fakeGateway serves canned structured outputs and records every prompt.
type fakeGateway struct {
	mu             sync.Mutex
	classification *llm.MemoryClassification
	extraction     *llm.PatternExtraction
	err            error
	prompts        []string
}

func (f *fakeGateway) StructuredOutput(_ context.Context, prompt string, out any, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return f.err
	}
	switch target := out.(type) {
	case *llm.MemoryClassification:
		if f.classification != nil {
			*target = *f.classification
		}
	case *llm.PatternExtraction:
		if f.extraction != nil {
			*target = *f.extraction
		}
	default:
		return fmt.Errorf("unexpected output type %T", out)
	}
	return nil
}

func (f *fakeGateway) promptCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
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

// failEmbedder simulates an unreachable embedding gateway.
type failEmbedder struct{}

func (failEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, fmt.Errorf("embedding gateway unreachable")
}

func (failEmbedder) BatchEmbed(context.Context, []string) ([][]float32, error) {
	return nil, fmt.Errorf("embedding gateway unreachable")
}

func (failEmbedder) Dimension() int { return 1536 }

// eventRecorder captures bus deliveries in publish order.
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

func (r *eventRecorder) firstIndex(eventType string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.events {
		if e.Type == eventType {
			return i
		}
	}
	return -1
}

type fixture struct {
	pipeline *Pipeline
	client   *database.Client
	gateway  *fakeGateway
	embedder *seqEmbedder
	recorder *eventRecorder
	cfg      *config.ACEConfig
}

func newTestPipeline(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	recorder := &eventRecorder{}
	for _, eventType := range []string{
		events.EventTypeMemoryStored,
		events.EventTypeMemoryPatternLearned,
		events.EventTypeACEWorkflowCompleted,
	} {
		bus.Subscribe(eventType, "test-recorder", recorder.record)
	}
	publisher := events.NewPublisher(client.DB(), bus)

	cfg := config.DefaultACEConfig()
	gateway := &fakeGateway{}
	embedder := &seqEmbedder{}
	pipeline := NewPipeline(client, embedder, gateway, cfg, publisher)
	t.Cleanup(pipeline.Wait)

	return &fixture{
		pipeline: pipeline,
		client:   client,
		gateway:  gateway,
		embedder: embedder,
		recorder: recorder,
		cfg:      cfg,
	}
}

// detachGateway keeps the pipeline on its rule-based paths.
func (f *fixture) detachGateway() {
	f.pipeline.executor.gateway = nil
	f.pipeline.patterns.gateway = nil
}

func (f *fixture) vecFor(t *testing.T, text string) []float32 {
	t.Helper()
	vec, err := f.embedder.Embed(context.Background(), text)
	require.NoError(t, err)
	return vec
}

func seedTicket(t *testing.T, client *database.Client, ticketID string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(ticketID).
		SetTitle("ticket " + ticketID).
		SetPhaseID(testPhase).
		Save(context.Background())
	require.NoError(t, err)
}

func seedCompletedTask(t *testing.T, client *database.Client, id, ticketID, taskType, agentID string, result map[string]interface{}) *ent.Task {
	t.Helper()
	create := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID(testPhase).
		SetTaskType(taskType).
		SetStatus(task.StatusCompleted).
		SetDescription("work item " + id)
	if agentID != "" {
		create = create.SetAssignedAgentID(agentID)
	}
	if result != nil {
		create = create.SetResult(result)
	}
	created, err := create.Save(context.Background())
	require.NoError(t, err)
	return created
}

func seedReview(t *testing.T, client *database.Client, id, taskID string, passed bool, feedback string) *ent.ValidationReview {
	t.Helper()
	review, err := client.ValidationReview.Create().
		SetID(id).
		SetTaskID(taskID).
		SetValidatorAgentID("val-1").
		SetIterationNumber(1).
		SetValidationPassed(passed).
		SetFeedback(feedback).
		Save(context.Background())
	require.NoError(t, err)
	return review
}

// seedMemory creates a memory row directly, bypassing the executor.
// embedKey selects the embedding axis; empty means a zero vector.
func seedMemory(t *testing.T, f *fixture, id, taskID string, success bool, feedback string, errorPatterns []string, embedKey string) *ent.TaskMemory {
	t.Helper()
	vec := make([]float32, 1536)
	if embedKey != "" {
		vec = f.vecFor(t, embedKey)
	}
	create := f.client.TaskMemory.Create().
		SetID(id).
		SetTaskID(taskID).
		SetExecutionSummary("seeded record " + id).
		SetContextEmbedding(pgvector.NewVector(vec)).
		SetSuccess(success)
	if feedback != "" {
		create = create.SetFeedback(feedback)
	}
	if len(errorPatterns) > 0 {
		create = create.SetErrorPatterns(errorPatterns)
	}
	memory, err := create.Save(context.Background())
	require.NoError(t, err)
	return memory
}

// seedEntry creates a playbook entry; embedKey selects its embedding
// axis, empty leaves the embedding column NULL.
func seedEntry(t *testing.T, f *fixture, id, ticketID, content string, active bool, embedKey string) *ent.PlaybookEntry {
	t.Helper()
	ctx := context.Background()
	entry, err := f.client.PlaybookEntry.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetContent(content).
		SetCategory(playbookentry.CategoryGeneral).
		SetIsActive(active).
		Save(ctx)
	require.NoError(t, err)
	if embedKey != "" {
		require.NoError(t, database.SetPlaybookEntryEmbedding(ctx, f.client.DB(), id, f.vecFor(t, embedKey)))
	}
	return entry
}

func ticketEntries(t *testing.T, client *database.Client, ticketID string) []*ent.PlaybookEntry {
	t.Helper()
	entries, err := client.PlaybookEntry.Query().
		Where(playbookentry.TicketIDEQ(ticketID)).
		Order(ent.Asc(playbookentry.FieldCreatedAt), ent.Asc(playbookentry.FieldID)).
		All(context.Background())
	require.NoError(t, err)
	return entries
}

func TestPipeline_Run(t *testing.T) {
	f := newTestPipeline(t)
	ctx := context.Background()

	f.gateway.classification = &llm.MemoryClassification{
		MemoryType: "error_fix",
		Confidence: 0.95,
		Reasoning:  "the record describes a bug fix",
	}
	f.gateway.extraction = &llm.PatternExtraction{
		SuccessIndicators: []string{"tests green"},
	}

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "agent-w1", map[string]interface{}{
		"summary": "Fixed the login bug",
		"tool_usage": []interface{}{
			map[string]interface{}{"tool": "file_edit", "args": map[string]interface{}{"path": "src/auth/login.py"}},
		},
	})
	review := seedReview(t, f.client, "rev-1", "task-1", true,
		"Looks solid. Always add a regression test when a bug is fixed.")

	require.NoError(t, f.pipeline.Run(ctx, tsk, review))
	f.pipeline.Wait()

	memories, err := f.client.TaskMemory.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	memory := memories[0]
	assert.Equal(t, "task-1", memory.TaskID)
	assert.Equal(t, taskmemory.MemoryTypeErrorFix, memory.MemoryType)
	assert.True(t, memory.Success)
	require.NotNil(t, memory.Result)
	assert.Equal(t, "Fixed the login bug", *memory.Result)

	patterns, err := f.client.LearnedPattern.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, learnedpattern.PatternTypeSuccess, patterns[0].PatternType)
	assert.Equal(t, "^implement_api$", patterns[0].TaskTypePattern)
	assert.Equal(t, []string{"tests green"}, patterns[0].SuccessIndicators)

	entries := ticketEntries(t, f.client, "T-1")
	require.Len(t, entries, 1)
	assert.Equal(t, "Always add a regression test when a bug is fixed", entries[0].Content)
	assert.Equal(t, playbookentry.CategoryPatterns, entries[0].Category)
	assert.Equal(t, []string{memory.ID}, entries[0].SupportingMemoryIds)
	require.NotNil(t, entries[0].CreatedBy)
	assert.Equal(t, "agent-w1", *entries[0].CreatedBy)

	stored := f.recorder.byType(events.EventTypeMemoryStored)
	require.Len(t, stored, 1)
	assert.Equal(t, memory.ID, stored[0].EntityID)

	learned := f.recorder.byType(events.EventTypeMemoryPatternLearned)
	require.Len(t, learned, 1)

	completed := f.recorder.byType(events.EventTypeACEWorkflowCompleted)
	require.Len(t, completed, 1)
	payload, ok := completed[0].Payload.(events.ACEWorkflowCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, "task-1", payload.TaskID)
	assert.Equal(t, "T-1", payload.TicketID)
	assert.Equal(t, memory.ID, payload.MemoryID)
	assert.Equal(t, 1, payload.InsightCount)
	assert.Equal(t, 0, payload.ErrorCount)
	assert.Equal(t, 1, payload.PlaybookAdds)
	assert.Equal(t, 0, payload.PlaybookSkips)

	assert.Less(t,
		f.recorder.firstIndex(events.EventTypeMemoryStored),
		f.recorder.firstIndex(events.EventTypeACEWorkflowCompleted),
		"memory.stored must precede ace.workflow.completed")
}

func TestPipeline_RunWithoutGateway(t *testing.T) {
	f := newTestPipeline(t)
	f.detachGateway()
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "write_tests", "agent-w1", nil)
	review := seedReview(t, f.client, "rev-1", "task-1", true, "All tests passed on the first run.")

	require.NoError(t, f.pipeline.Run(ctx, tsk, review))
	f.pipeline.Wait()

	memories, err := f.client.TaskMemory.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, memories, 1)
	assert.Equal(t, taskmemory.MemoryTypeLearning, memories[0].MemoryType)

	patterns, err := f.client.LearnedPattern.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, []string{"All tests passed on the first run"}, patterns[0].SuccessIndicators)

	assert.Zero(t, f.gateway.promptCount(), "detached gateway must not be called")
}
