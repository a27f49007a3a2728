package dedup

import (
	"context"
	"errors"
	"math"
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
	"github.com/droverhq/drover/pkg/services"
	testdb "github.com/droverhq/drover/test/database"
)

// axisVector returns a 1536-dim unit vector along the given axis.
func axisVector(axis int) []float32 {
	vec := make([]float32, 1536)
	vec[axis] = 1
	return vec
}

// blendVector returns a unit vector whose cosine similarity to
// axisVector(0) is sim.
func blendVector(sim float64) []float32 {
	vec := make([]float32, 1536)
	vec[0] = float32(sim)
	vec[1] = float32(math.Sqrt(1 - sim*sim))
	return vec
}

// fakeEmbedder serves canned vectors keyed by normalized text. Unknown
// texts embed orthogonally to every canned vector.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if vec, ok := f.vectors[Normalize(text)]; ok {
		return vec, nil
	}
	return axisVector(1535), nil
}

func (f *fakeEmbedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
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

func (f *fakeEmbedder) Dimension() int { return 1536 }

// duplicateRecorder captures dedup.duplicate_found deliveries.
type duplicateRecorder struct {
	mu       sync.Mutex
	payloads []events.DuplicateFoundPayload
}

func (r *duplicateRecorder) record(_ context.Context, event events.SystemEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payload, ok := event.Payload.(events.DuplicateFoundPayload); ok {
		r.payloads = append(r.payloads, payload)
	}
	return nil
}

func (r *duplicateRecorder) all() []events.DuplicateFoundPayload {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]events.DuplicateFoundPayload(nil), r.payloads...)
}

func newTestDedup(t *testing.T, embedder *fakeEmbedder) (*Service, *database.Client, *duplicateRecorder) {
	t.Helper()
	client := testdb.NewTestClient(t)
	bus := events.NewBus(5 * time.Second)
	recorder := &duplicateRecorder{}
	bus.Subscribe(events.EventTypeDuplicateFound, "test-recorder", recorder.record)
	svc := NewService(client, embedder, config.DefaultDedupConfig(), events.NewPublisher(client.DB(), bus))
	return svc, client, recorder
}

func createTicket(t *testing.T, client *ent.Client, id string) {
	t.Helper()
	_, err := client.Ticket.Create().
		SetID(id).
		SetTitle("ticket " + id).
		SetPhaseID("PHASE_IMPLEMENTATION").
		Save(context.Background())
	require.NoError(t, err)
}

// seedTask inserts a task with its content hash precomputed from the
// description, and optionally a stored embedding.
func seedTask(t *testing.T, client *database.Client, id, ticketID, taskType string, status task.Status, description string, emb []float32) {
	t.Helper()
	ctx := context.Background()
	create := client.Task.Create().
		SetID(id).
		SetTicketID(ticketID).
		SetPhaseID("PHASE_IMPLEMENTATION").
		SetDescription(description).
		SetStatus(status).
		SetContentHash(ContentHash(description))
	if taskType != "" {
		create = create.SetTaskType(taskType)
	}
	if status == task.StatusRunning || status == task.StatusAssigned {
		create = create.SetAssignedAgentID("agent-seed")
	}
	_, err := create.Save(ctx)
	require.NoError(t, err)
	if emb != nil {
		require.NoError(t, database.SetTaskEmbedding(ctx, client.DB(), id, emb))
	}
}

func TestService_CheckTask_HashPhase(t *testing.T) {
	embedder := &fakeEmbedder{}
	svc, client, recorder := newTestDedup(t, embedder)
	createTicket(t, client.Client, "T-1")
	createTicket(t, client.Client, "T-2")
	ctx := context.Background()

	seedTask(t, client, "seed-1", "T-1", "", task.StatusPending, "Fix the login bug", nil)

	t.Run("normalized text matches exactly", func(t *testing.T) {
		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "  fix THE login   bug ",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionSkip, result.Action)
		assert.True(t, result.IsDuplicate)
		assert.Equal(t, 1.0, result.HighestSimilarity)
		assert.Equal(t, "seed-1", result.MatchedTaskID)
		assert.Equal(t, "hash", result.Method)
		// Hash hits never reach the embedding gateway.
		assert.Zero(t, embedder.calls)

		published := recorder.all()
		require.Len(t, published, 1)
		assert.Equal(t, "seed-1", published[0].MatchID)
		assert.Equal(t, ActionSkip, published[0].Action)
		assert.Equal(t, 1.0, published[0].Similarity)
	})

	t.Run("terminal rows are history", func(t *testing.T) {
		seedTask(t, client, "seed-done", "T-2", "", task.StatusCompleted, "Fix the login bug", nil)

		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-2",
			Description: "Fix the login bug",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, result.Action)
		assert.False(t, result.IsDuplicate)
		assert.NotEmpty(t, result.ContentHash)
	})

	t.Run("other tickets are out of scope", func(t *testing.T) {
		createTicket(t, client.Client, "T-3")
		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-3",
			Description: "Fix the login bug",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, result.Action)
	})

	t.Run("task type narrows the scope", func(t *testing.T) {
		createTicket(t, client.Client, "T-4")
		seedTask(t, client, "seed-diag", "T-4", "discovery_diagnostic_no_result",
			task.StatusPending, "Investigate missing results", nil)

		sameType, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-4",
			TaskType:    "discovery_diagnostic_no_result",
			Description: "Investigate missing results",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionSkip, sameType.Action)

		otherType, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-4",
			TaskType:    "general",
			Description: "Investigate missing results",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, otherType.Action)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CheckTask(ctx, TaskCandidate{Description: "no ticket"})
		assert.True(t, services.IsValidationError(err))

		_, err = svc.CheckTask(ctx, TaskCandidate{TicketID: "T-1"})
		assert.True(t, services.IsValidationError(err))
	})
}

func TestService_CheckTask_VectorPhase(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"resolve the sign-in redirect cycle": blendVector(0.95),
		"related but distinct work":          blendVector(0.5),
		"borderline diagnosis text":          blendVector(0.87),
	}}
	svc, client, recorder := newTestDedup(t, embedder)
	createTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedTask(t, client, "vec-1", "T-1", "", task.StatusPending,
		"Fix the login redirect loop", axisVector(0))

	t.Run("similar pending task is skipped", func(t *testing.T) {
		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Resolve the sign-in redirect cycle",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionSkip, result.Action)
		assert.True(t, result.IsDuplicate)
		assert.Equal(t, "vec-1", result.MatchedTaskID)
		assert.Equal(t, "vector", result.Method)
		assert.InDelta(t, 0.95, result.HighestSimilarity, 0.01)

		published := recorder.all()
		require.Len(t, published, 1)
		assert.Equal(t, "vec-1", published[0].MatchID)
	})

	t.Run("below threshold creates with artifacts", func(t *testing.T) {
		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Related but distinct work",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, result.Action)
		assert.False(t, result.IsDuplicate)
		assert.InDelta(t, 0.5, result.HighestSimilarity, 0.01)
		assert.NotEmpty(t, result.ContentHash)
		assert.Len(t, result.Embedding, 1536)
	})

	t.Run("diagnostic threshold is stricter than task", func(t *testing.T) {
		asTask, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Borderline diagnosis text",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionSkip, asTask.Action, "0.87 meets the 0.85 task threshold")

		asDiagnostic, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Borderline diagnosis text",
			Kind:        KindDiagnostic,
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, asDiagnostic.Action, "0.87 misses the 0.90 diagnostic threshold")
		assert.InDelta(t, 0.87, asDiagnostic.HighestSimilarity, 0.01)
	})

	t.Run("acceptance criteria never embed", func(t *testing.T) {
		before := embedder.calls
		result, err := svc.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Clicking login redirects to the dashboard",
			Kind:        KindAcceptanceCriterion,
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, result.Action)
		assert.Equal(t, before, embedder.calls)
	})

	t.Run("embedding failure degrades to hash only", func(t *testing.T) {
		broken := &fakeEmbedder{err: errors.New("gateway timeout")}
		svc2, client2, _ := newTestDedup(t, broken)
		createTicket(t, client2.Client, "T-1")
		seedTask(t, client2, "vec-1", "T-1", "", task.StatusPending,
			"Fix the login redirect loop", axisVector(0))

		result, err := svc2.CheckTask(ctx, TaskCandidate{
			TicketID:    "T-1",
			Description: "Resolve the sign-in redirect cycle",
		})
		require.NoError(t, err)
		assert.Equal(t, ActionCreate, result.Action)
		assert.NotEmpty(t, result.ContentHash)
		assert.Empty(t, result.Embedding)
	})
}

func TestService_CheckTask_TerminalEmbeddingsIgnored(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"nearly identical to finished work": blendVector(0.99),
	}}
	svc, client, _ := newTestDedup(t, embedder)
	createTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedTask(t, client, "done-1", "T-1", "", task.StatusCompleted,
		"The finished work item", axisVector(0))

	result, err := svc.CheckTask(ctx, TaskCandidate{
		TicketID:    "T-1",
		Description: "Nearly identical to finished work",
	})
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, result.Action)
	assert.Zero(t, result.HighestSimilarity)
}

func TestService_CheckBatch(t *testing.T) {
	embedder := &fakeEmbedder{vectors: map[string][]float32{
		"add retry backoff to the fetcher":  axisVector(0),
		"fetcher should back off and retry": blendVector(0.95),
		"document the deployment runbook":   axisVector(2),
	}}
	svc, client, recorder := newTestDedup(t, embedder)
	createTicket(t, client.Client, "T-1")
	ctx := context.Background()

	seedTask(t, client, "existing", "T-1", "", task.StatusPending,
		"Persisted gamma task", nil)

	result, err := svc.CheckBatch(ctx, []TaskCandidate{
		{TaskID: "c-0", TicketID: "T-1", Description: "Add retry backoff to the fetcher"},
		{TaskID: "c-1", TicketID: "T-1", Description: "Fetcher should back off and retry"},
		{TaskID: "c-2", TicketID: "T-1", Description: "Document the deployment runbook"},
		{TaskID: "c-3", TicketID: "T-1", Description: "ADD RETRY BACKOFF TO THE FETCHER"},
		{TaskID: "c-4", TicketID: "T-1", Description: "Persisted gamma task"},
	})
	require.NoError(t, err)

	require.Len(t, result.ToCreate, 2)
	assert.Equal(t, "c-0", result.ToCreate[0].Candidate.TaskID)
	assert.Equal(t, "c-2", result.ToCreate[1].Candidate.TaskID)
	assert.Equal(t, 0, result.ToCreate[0].Index)
	assert.Equal(t, 2, result.ToCreate[1].Index)

	require.Len(t, result.ToMerge, 2)
	paraphrase := result.ToMerge[0]
	assert.Equal(t, "c-1", paraphrase.Candidate.TaskID)
	assert.Equal(t, ActionMerge, paraphrase.Result.Action)
	assert.Equal(t, "c-0", paraphrase.Result.MatchedTaskID)
	assert.InDelta(t, 0.95, paraphrase.Result.HighestSimilarity, 0.01)
	exact := result.ToMerge[1]
	assert.Equal(t, "c-3", exact.Candidate.TaskID)
	assert.Equal(t, "c-0", exact.Result.MatchedTaskID)
	assert.Equal(t, 1.0, exact.Result.HighestSimilarity)

	require.Len(t, result.ToSkip, 1)
	assert.Equal(t, "c-4", result.ToSkip[0].Candidate.TaskID)
	assert.Equal(t, "existing", result.ToSkip[0].Result.MatchedTaskID)

	assert.Equal(t, BatchStats{Total: 5, Created: 2, Skipped: 1, Merged: 2}, result.Stats)

	// One event per duplicate verdict: two merges and one skip.
	assert.Len(t, recorder.all(), 3)
}
