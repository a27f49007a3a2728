package ace

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent/playbookentry"
)

func TestScanErrorPatterns(t *testing.T) {
	t.Run("named kinds deduped", func(t *testing.T) {
		feedback := "Build broke: ImportError: cannot import jwt. Then a ValueError: invalid literal. ImportError again."
		signatures := scanErrorPatterns(feedback)
		require.Len(t, signatures, 2)
		assert.Equal(t, "ImportError", signatures[0].Kind)
		assert.Contains(t, signatures[0].Context, "cannot import jwt")
		assert.Equal(t, "ValueError", signatures[1].Kind)
	})

	t.Run("named kind suppresses generic", func(t *testing.T) {
		signatures := scanErrorPatterns("TypeError: x is not a function, so the run failed.")
		require.Len(t, signatures, 1)
		assert.Equal(t, "TypeError", signatures[0].Kind)
	})

	t.Run("generic failure", func(t *testing.T) {
		signatures := scanErrorPatterns("The deploy failed because the disk filled up.")
		require.Len(t, signatures, 1)
		assert.Equal(t, "Failure", signatures[0].Kind)
		assert.Contains(t, signatures[0].Context, "disk filled up")
	})

	t.Run("clean feedback", func(t *testing.T) {
		assert.Nil(t, scanErrorPatterns("Everything works as expected."))
		assert.Nil(t, scanErrorPatterns(""))
	})

	t.Run("context is windowed", func(t *testing.T) {
		padding := strings.Repeat("x", 300)
		signatures := scanErrorPatterns(padding + " KeyError " + padding)
		require.Len(t, signatures, 1)
		assert.LessOrEqual(t, len(signatures[0].Context), 2*errorContextChars+len("KeyError")+2)
		assert.Contains(t, signatures[0].Context, "KeyError")
	})
}

func TestExtractInsights(t *testing.T) {
	feedback := "You should use parameterized queries. Be careful with the connection pool! " +
		"Always close the cursor.\nIt rained today."
	insights := extractInsights(feedback, 0.7)
	require.Len(t, insights, 3)

	assert.Equal(t, playbookentry.CategoryBestPractices, insights[0].Category)
	assert.Equal(t, "You should use parameterized queries", insights[0].Content)
	assert.Equal(t, playbookentry.CategoryGotchas, insights[1].Category)
	assert.Equal(t, playbookentry.CategoryPatterns, insights[2].Category)
	assert.Equal(t, "Always close the cursor", insights[2].Content)
	for _, insight := range insights {
		assert.InDelta(t, 0.7, insight.Confidence, 1e-9)
	}

	assert.Empty(t, extractInsights("Nothing notable here.", 0.7))
}

func TestExtractInsights_BucketOrder(t *testing.T) {
	// "should use" is a best practice even though "should" alone is a
	// pattern keyword.
	insights := extractInsights("You should use the shared fixture.", 0.7)
	require.Len(t, insights, 1)
	assert.Equal(t, playbookentry.CategoryBestPractices, insights[0].Category)

	insights = extractInsights("Tests should run in isolation.", 0.7)
	require.Len(t, insights, 1)
	assert.Equal(t, playbookentry.CategoryPatterns, insights[0].Category)
}

func TestReflector_Reflect(t *testing.T) {
	f := newTestPipeline(t)
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	seedTicket(t, f.client, "T-2")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "build_image", "", nil)

	memory := seedMemory(t, f, "mem-1", "task-1", false,
		"Always pin the base image version. The build hit a KeyError: missing tag.",
		nil, "link me")

	seedEntry(t, f, "pb-near", "T-1", "Pin versions in the Dockerfile", true, "link me")
	seedEntry(t, f, "pb-far", "T-1", "Unrelated advice", true, "other axis")
	seedEntry(t, f, "pb-other-ticket", "T-2", "Different ticket", true, "link me")
	seedEntry(t, f, "pb-inactive", "T-1", "Retired advice", false, "link me")
	seedEntry(t, f, "pb-no-embedding", "T-1", "Never indexed", true, "")

	reflection, err := f.pipeline.reflector.Reflect(ctx, tsk, memory)
	require.NoError(t, err)

	require.Len(t, reflection.Errors, 1)
	assert.Equal(t, "KeyError", reflection.Errors[0].Kind)
	require.Len(t, reflection.Insights, 1)
	assert.Equal(t, "Always pin the base image version", reflection.Insights[0].Content)
	assert.Equal(t, 1, reflection.LinkedEntries)

	near, err := f.client.PlaybookEntry.Get(ctx, "pb-near")
	require.NoError(t, err)
	assert.Equal(t, []string{"mem-1"}, near.SupportingMemoryIds)

	for _, id := range []string{"pb-far", "pb-other-ticket", "pb-inactive", "pb-no-embedding"} {
		entry, err := f.client.PlaybookEntry.Get(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, entry.SupportingMemoryIds, id)
	}

	// A second pass must not duplicate the link.
	_, err = f.pipeline.reflector.Reflect(ctx, tsk, memory)
	require.NoError(t, err)
	near, err = f.client.PlaybookEntry.Get(ctx, "pb-near")
	require.NoError(t, err)
	assert.Equal(t, []string{"mem-1"}, near.SupportingMemoryIds)
}

func TestReflector_ZeroVectorSkipsLinking(t *testing.T) {
	f := newTestPipeline(t)
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "build_image", "", nil)
	memory := seedMemory(t, f, "mem-1", "task-1", false, "The build failed.", nil, "")
	seedEntry(t, f, "pb-1", "T-1", "Some advice", true, "anything")

	reflection, err := f.pipeline.reflector.Reflect(ctx, tsk, memory)
	require.NoError(t, err)
	assert.Zero(t, reflection.LinkedEntries)
	require.Len(t, reflection.Errors, 1)
	assert.Equal(t, "Failure", reflection.Errors[0].Kind)
}
