package ace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
)

func TestTouchedFiles(t *testing.T) {
	entries := parseToolUsage([]interface{}{
		map[string]interface{}{"tool": "file_read", "args": map[string]interface{}{"path": "src/auth/login.py"}},
		map[string]interface{}{"tool": "edit_file", "file_path": "src/auth/login.py"},
		map[string]interface{}{"tool": "write_file", "file": "tests/test_login.py"},
		map[string]interface{}{"tool_name": "file_create", "args": map[string]interface{}{"path": "docs/auth.md"}},
		map[string]interface{}{"tool": "bash", "args": map[string]interface{}{"command": "pytest"}},
		map[string]interface{}{"tool": "file_edit"},
	})
	require.Len(t, entries, 6)

	touches := touchedFiles(entries)
	require.Len(t, touches, 3)
	assert.Equal(t, fileTouch{Path: "src/auth/login.py", Op: "read"}, touches[0])
	assert.Equal(t, fileTouch{Path: "tests/test_login.py", Op: "create"}, touches[1])
	assert.Equal(t, fileTouch{Path: "docs/auth.md", Op: "create"}, touches[2])
}

func TestParseToolUsage(t *testing.T) {
	assert.Nil(t, parseToolUsage(nil))
	assert.Nil(t, parseToolUsage("not a list"))

	direct := parseToolUsage([]map[string]interface{}{{"tool": "file_read"}})
	require.Len(t, direct, 1)

	mixed := parseToolUsage([]interface{}{
		map[string]interface{}{"tool": "file_read"},
		"stray string",
	})
	require.Len(t, mixed, 1)
}

func TestClassifyMemoryType(t *testing.T) {
	cases := []struct {
		name     string
		goal     string
		result   string
		expected taskmemory.MemoryType
	}{
		{"error fix", "fix the login bug", "", taskmemory.MemoryTypeErrorFix},
		{"decision", "pick a queue library", "Chose river instead of a cron table", taskmemory.MemoryTypeDecision},
		{"warning", "", "Be careful when truncating the events table", taskmemory.MemoryTypeWarning},
		{"discovery", "", "Turns out the scheduler already retries claims", taskmemory.MemoryTypeDiscovery},
		{"codebase knowledge", "", "The scorer is defined in pkg/queue", taskmemory.MemoryTypeCodebaseKnowledge},
		{"default", "add pagination", "Added limit and offset parameters", taskmemory.MemoryTypeLearning},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifyMemoryType(tc.goal, tc.result, tc.goal))
		})
	}
}

func TestRenderResult(t *testing.T) {
	assert.Empty(t, renderResult(nil))
	assert.Empty(t, renderResult(map[string]interface{}{}))
	assert.Equal(t, "done", renderResult(map[string]interface{}{"summary": "done", "extra": 1}))
	assert.JSONEq(t, `{"files": 3}`, renderResult(map[string]interface{}{"files": 3}))
}

func TestExecutor_Capture(t *testing.T) {
	f := newTestPipeline(t)
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "agent-w1", map[string]interface{}{
		"summary": "Implemented the login endpoint",
		"tool_usage": []interface{}{
			map[string]interface{}{"tool": "file_read", "args": map[string]interface{}{"path": "src/auth/login.py"}},
			map[string]interface{}{"tool": "edit_file", "file_path": "src/auth/login.py"},
			map[string]interface{}{"tool": "write_file", "file": "tests/test_login.py"},
			map[string]interface{}{"tool": "bash", "args": map[string]interface{}{"command": "pytest"}},
		},
	})
	review := seedReview(t, f.client, "rev-1", "task-1", true,
		"Looks good, the endpoint works and the tests are clean.")

	memory, err := f.pipeline.executor.Capture(ctx, tsk, review)
	require.NoError(t, err)
	f.pipeline.Wait()

	assert.Equal(t, "task-1", memory.TaskID)
	assert.Equal(t, taskmemory.MemoryTypeLearning, memory.MemoryType)
	assert.True(t, memory.Success)
	assert.Equal(t,
		"implement_api passed validation on iteration 1 after 4 tool calls; touched src/auth/login.py, tests/test_login.py",
		memory.ExecutionSummary)
	require.NotNil(t, memory.Goal)
	assert.Equal(t, "work item task-1", *memory.Goal)
	require.NotNil(t, memory.Result)
	assert.Equal(t, "Implemented the login endpoint", *memory.Result)
	require.NotNil(t, memory.Feedback)
	assert.Equal(t, review.Feedback, *memory.Feedback)
	assert.Empty(t, memory.ErrorPatterns)
	assert.Len(t, memory.ToolUsage, 4)
	assert.False(t, isZeroVector(memory.ContextEmbedding.Slice()))

	stored := f.recorder.byType(events.EventTypeMemoryStored)
	require.Len(t, stored, 1)
	payload, ok := stored[0].Payload.(events.MemoryStoredPayload)
	require.True(t, ok)
	assert.Equal(t, memory.ID, payload.MemoryID)
	assert.Equal(t, "task-1", payload.TaskID)
	assert.Equal(t, "T-1", payload.TicketID)
	assert.Equal(t, "learning", payload.MemoryType)
	assert.True(t, payload.Success)
}

func TestExecutor_CaptureFailedReview(t *testing.T) {
	f := newTestPipeline(t)
	f.pipeline.executor.embedder = failEmbedder{}
	ctx := context.Background()

	seedTicket(t, f.client, "T-1")
	tsk := seedCompletedTask(t, f.client, "task-1", "T-1", "implement_api", "", nil)
	review := seedReview(t, f.client, "rev-1", "task-1", false,
		"ImportError: cannot import name jwt_handler from the auth module.")

	memory, err := f.pipeline.executor.Capture(ctx, tsk, review)
	require.NoError(t, err)
	f.pipeline.Wait()

	assert.False(t, memory.Success)
	assert.Nil(t, memory.Result)
	require.Len(t, memory.ErrorPatterns, 1)
	assert.Contains(t, memory.ErrorPatterns[0], "ImportError: ")
	assert.Contains(t, memory.ErrorPatterns[0], "jwt_handler")
	assert.True(t, isZeroVector(memory.ContextEmbedding.Slice()),
		"embed failure must degrade to a zero vector")
	assert.Contains(t, memory.ExecutionSummary, "failed validation")
}

func TestExecutor_Reclassify(t *testing.T) {
	f := newTestPipeline(t)
	ctx := context.Background()
	seedTicket(t, f.client, "T-1")

	capture := func(t *testing.T, id string) *ent.TaskMemory {
		t.Helper()
		tsk := seedCompletedTask(t, f.client, id, "T-1", "implement_api", "", nil)
		review := seedReview(t, f.client, "rev-"+id, id, true, "Fine work on "+id+".")
		memory, err := f.pipeline.executor.Capture(ctx, tsk, review)
		require.NoError(t, err)
		f.pipeline.Wait()
		reloaded, err := f.client.TaskMemory.Get(ctx, memory.ID)
		require.NoError(t, err)
		return reloaded
	}

	t.Run("confident answer wins", func(t *testing.T) {
		f.gateway.classification = &llm.MemoryClassification{MemoryType: "decision", Confidence: 0.9}
		assert.Equal(t, taskmemory.MemoryTypeDecision, capture(t, "task-1").MemoryType)
	})

	t.Run("low confidence keeps rule-based type", func(t *testing.T) {
		f.gateway.classification = &llm.MemoryClassification{MemoryType: "decision", Confidence: 0.3}
		assert.Equal(t, taskmemory.MemoryTypeLearning, capture(t, "task-2").MemoryType)
	})

	t.Run("unknown type keeps rule-based type", func(t *testing.T) {
		f.gateway.classification = &llm.MemoryClassification{MemoryType: "galaxy", Confidence: 0.99}
		assert.Equal(t, taskmemory.MemoryTypeLearning, capture(t, "task-3").MemoryType)
	})

	t.Run("gateway error keeps rule-based type", func(t *testing.T) {
		f.gateway.err = assert.AnError
		assert.Equal(t, taskmemory.MemoryTypeLearning, capture(t, "task-4").MemoryType)
	})
}
