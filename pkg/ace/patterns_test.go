package ace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/pkg/events"
)

func TestHeuristicIndicators(t *testing.T) {
	t.Run("success memory", func(t *testing.T) {
		memory := stubMemory(true, "All tests passed and the linter is clean. Remove the debug prints.", nil)
		success, failure := heuristicIndicators(memory)
		assert.Equal(t, []string{"All tests passed and the linter is clean"}, success)
		assert.Empty(t, failure)
	})

	t.Run("failure memory", func(t *testing.T) {
		memory := stubMemory(false, "It broke.", []string{
			"ImportError: cannot import x",
			"Failure: the build failed",
		})
		success, failure := heuristicIndicators(memory)
		assert.Empty(t, success)
		assert.Equal(t, []string{"ImportError", "Failure"}, failure)
	})
}

// stubMemory builds an in-memory record for pure-function tests.
func stubMemory(success bool, feedback string, errorPatterns []string) *ent.TaskMemory {
	memory := &ent.TaskMemory{
		Success:       success,
		ErrorPatterns: errorPatterns,
	}
	if feedback != "" {
		memory.Feedback = &feedback
	}
	return memory
}

func TestClampConfidence(t *testing.T) {
	assert.InDelta(t, confidenceFloor, clampConfidence(0.01), 1e-9)
	assert.InDelta(t, confidenceCeiling, clampConfidence(0.99), 1e-9)
	assert.InDelta(t, 0.5, clampConfidence(0.5), 1e-9)
}

func TestMergeIndicators(t *testing.T) {
	merged := mergeIndicators([]string{"a", "b"}, []string{" b ", "c", ""})
	assert.Equal(t, []string{"a", "b", "c"}, merged)

	long := make([]string, 0, indicatorCap+5)
	for i := 0; i < indicatorCap+5; i++ {
		long = append(long, string(rune('a'+i)))
	}
	assert.Len(t, mergeIndicators(nil, long), indicatorCap)
}

func TestPatternLearner_Learn(t *testing.T) {
	f := newTestPipeline(t)
	f.detachGateway()
	learner := f.pipeline.patterns
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "", nil)

	first := seedMemory(t, f, "mem-1", "task-1", true, "All tests passed.", nil, "m1")
	pattern, err := learner.Learn(ctx, tsk, first)
	require.NoError(t, err)
	assert.Equal(t, learnedpattern.PatternTypeSuccess, pattern.PatternType)
	assert.Equal(t, "^implement_api$", pattern.TaskTypePattern)
	assert.InDelta(t, 0.5, pattern.ConfidenceScore, 1e-9)
	assert.Zero(t, pattern.UsageCount)
	assert.Equal(t, []string{"All tests passed"}, pattern.SuccessIndicators)

	second := seedMemory(t, f, "mem-2", "task-1", true, "The endpoint works end to end.", nil, "m2")
	confirmed, err := learner.Learn(ctx, tsk, second)
	require.NoError(t, err)
	assert.Equal(t, pattern.ID, confirmed.ID)
	assert.InDelta(t, 0.55, confirmed.ConfidenceScore, 1e-9)
	assert.Equal(t, 1, confirmed.UsageCount)
	assert.Equal(t, []string{"All tests passed", "The endpoint works end to end"}, confirmed.SuccessIndicators)

	failing := seedMemory(t, f, "mem-3", "task-1", false, "It regressed.",
		[]string{"ImportError: cannot import x"}, "m3")
	failurePattern, err := learner.Learn(ctx, tsk, failing)
	require.NoError(t, err)
	assert.Equal(t, learnedpattern.PatternTypeFailure, failurePattern.PatternType)
	assert.InDelta(t, 0.5, failurePattern.ConfidenceScore, 1e-9)
	assert.Equal(t, []string{"ImportError"}, failurePattern.FailureIndicators)

	contradicted, err := f.client.LearnedPattern.Get(ctx, pattern.ID)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, contradicted.ConfidenceScore, 1e-9,
		"opposite outcome must lower the success pattern")

	learned := f.recorder.byType(events.EventTypeMemoryPatternLearned)
	require.Len(t, learned, 3)
	payload, ok := learned[0].Payload.(events.PatternLearnedPayload)
	require.True(t, ok)
	assert.Equal(t, pattern.ID, payload.PatternID)
	assert.Equal(t, "success", payload.PatternType)
	assert.InDelta(t, 0.5, payload.Confidence, 1e-9)
}

func TestPatternLearner_DistinctTaskTypes(t *testing.T) {
	f := newTestPipeline(t)
	f.detachGateway()
	learner := f.pipeline.patterns
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	apiTask := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "", nil)
	testTask := seedCompletedTask(t, f.client, "task-2", "T-1", "write_tests", "", nil)

	m1 := seedMemory(t, f, "mem-1", "task-1", true, "", nil, "m1")
	m2 := seedMemory(t, f, "mem-2", "task-2", true, "", nil, "m2")

	_, err := learner.Learn(ctx, apiTask, m1)
	require.NoError(t, err)
	_, err = learner.Learn(ctx, testTask, m2)
	require.NoError(t, err)

	count, err := f.client.LearnedPattern.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count, "each task type keeps its own pattern")
}
