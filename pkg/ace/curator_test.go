package ace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
)

func TestCurator_Curate(t *testing.T) {
	f := newTestPipeline(t)
	curator := f.pipeline.curator
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "agent-w1", nil)
	memory := seedMemory(t, f, "mem-1", "task-1", true, "fine", nil, "m1")

	reflection := &Reflection{
		Errors: []errorSignature{{Kind: "Failure", Context: "the first run failed"}},
		Insights: []Insight{
			{Category: playbookentry.CategoryPatterns, Content: "Always run migrations before deploying the api", Confidence: 0.7},
			{Category: playbookentry.CategoryGotchas, Content: "Careful", Confidence: 0.7},
			{Category: playbookentry.CategoryBestPractices, Content: "Prefer the staging cluster for load tests", Confidence: 0.7},
		},
	}

	stats, err := curator.Curate(ctx, tsk, memory, reflection)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Adds)
	assert.Equal(t, 1, stats.Skips, "short insight must be skipped")

	entries := ticketEntries(t, f.client, "T-1")
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, []string{"mem-1"}, entry.SupportingMemoryIds)
		assert.True(t, entry.IsActive)
		require.NotNil(t, entry.CreatedBy)
		assert.Equal(t, "agent-w1", *entry.CreatedBy)
	}
	assert.Equal(t, "Always run migrations before deploying the api", entries[0].Content)
	assert.Equal(t, playbookentry.CategoryPatterns, entries[0].Category)
	assert.Equal(t, playbookentry.CategoryBestPractices, entries[1].Category)

	// The stored embedding must make the entry findable.
	neighbors, err := database.SearchPlaybookNeighbors(ctx, f.client.DB(),
		f.vecFor(t, "Always run migrations before deploying the api"), "T-1", 0.9, 5)
	require.NoError(t, err)
	require.Len(t, neighbors, 1)
	assert.Equal(t, entries[0].ID, neighbors[0].EntryID)

	changes, err := f.client.PlaybookChange.Query().
		Where(playbookchange.TicketIDEQ("T-1")).
		Order(ent.Asc(playbookchange.FieldCreatedAt), ent.Asc(playbookchange.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, changes, 2)
	for _, change := range changes {
		assert.Equal(t, playbookchange.ChangeTypeAdd, change.ChangeType)
		require.NotNil(t, change.RelatedMemoryID)
		assert.Equal(t, "mem-1", *change.RelatedMemoryID)
		require.NotNil(t, change.Reasoning)
		assert.Contains(t, *change.Reasoning, "0.70")
	}
	assert.Equal(t, "patterns", changes[0].Section)
	assert.Equal(t, "best_practices", changes[1].Section)

	completed := f.recorder.byType(events.EventTypeACEWorkflowCompleted)
	require.Len(t, completed, 1)
	payload, ok := completed[0].Payload.(events.ACEWorkflowCompletedPayload)
	require.True(t, ok)
	assert.Equal(t, 3, payload.InsightCount)
	assert.Equal(t, 1, payload.ErrorCount)
	assert.Equal(t, 2, payload.PlaybookAdds)
	assert.Equal(t, 1, payload.PlaybookSkips)

	t.Run("replay applies nothing", func(t *testing.T) {
		stats, err := curator.Curate(ctx, tsk, memory, reflection)
		require.NoError(t, err)
		assert.Zero(t, stats.Adds)
		assert.Equal(t, 3, stats.Skips)
		assert.Len(t, ticketEntries(t, f.client, "T-1"), 2)

		completed := f.recorder.byType(events.EventTypeACEWorkflowCompleted)
		require.Len(t, completed, 2)
		replayed, ok := completed[1].Payload.(events.ACEWorkflowCompletedPayload)
		require.True(t, ok)
		assert.Zero(t, replayed.PlaybookAdds)
	})
}

func TestCurator_NearDuplicateRejected(t *testing.T) {
	f := newTestPipeline(t)
	curator := f.pipeline.curator
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "", nil)
	memory := seedMemory(t, f, "mem-1", "task-1", true, "fine", nil, "m1")

	insight := Insight{
		Category:   playbookentry.CategoryPatterns,
		Content:    "Always run migrations before deploying",
		Confidence: 0.7,
	}
	// Different wording, same embedding axis: only the semantic gate can
	// reject this.
	seedEntry(t, f, "pb-existing", "T-1", "Run migrations first", true, insight.Content)

	stats, err := curator.Curate(ctx, tsk, memory, &Reflection{Insights: []Insight{insight}})
	require.NoError(t, err)
	assert.Zero(t, stats.Adds)
	assert.Equal(t, 1, stats.Skips)
	assert.Len(t, ticketEntries(t, f.client, "T-1"), 1)

	changeCount, err := f.client.PlaybookChange.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, changeCount, "a rejected insight leaves no audit row")
}

func TestCurator_ExactMatchRejectedWithoutEmbeddings(t *testing.T) {
	f := newTestPipeline(t)
	curator := f.pipeline.curator
	curator.embedder = failEmbedder{}
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "", nil)
	memory := seedMemory(t, f, "mem-1", "task-1", true, "fine", nil, "m1")

	seedEntry(t, f, "pb-active", "T-1", "Never commit secrets", true, "")
	seedEntry(t, f, "pb-retired", "T-1", "Must rotate tokens monthly", false, "")

	reflection := &Reflection{Insights: []Insight{
		{Category: playbookentry.CategoryPatterns, Content: "Never commit secrets", Confidence: 0.7},
		{Category: playbookentry.CategoryPatterns, Content: "Must rotate tokens monthly", Confidence: 0.7},
	}}

	stats, err := curator.Curate(ctx, tsk, memory, reflection)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Adds, "an inactive twin does not block the add")
	assert.Equal(t, 1, stats.Skips, "an active twin does")

	entries := ticketEntries(t, f.client, "T-1")
	require.Len(t, entries, 3)
}
