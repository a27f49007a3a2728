// Package ace captures what the kernel learns from completed work. The
// pipeline runs after a validation pass: the executor persists a task
// memory, the reflector mines it for error signatures and insights and
// links it into the ticket playbook, and the curator turns surviving
// insights into audited playbook entries.
package ace

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/pkg/config"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/embedding"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
)

// toolVocabulary maps the tool names workers report to the file operation
// they perform. Workers built on different harnesses use different names
// for the same operation.
var toolVocabulary = map[string]string{
	"file_read":   "read",
	"read_file":   "read",
	"file_edit":   "edit",
	"edit_file":   "edit",
	"file_create": "create",
	"write_file":  "create",
}

// pathAliases are the argument keys a file path may hide behind.
var pathAliases = []string{"path", "file_path", "file"}

const classifySystemPrompt = "You label execution records from an agent " +
	"workflow. Answer with memory_type, confidence (0..1) and a one-line " +
	"reasoning."

var memoryTypeNames = []string{
	string(taskmemory.MemoryTypeErrorFix),
	string(taskmemory.MemoryTypeDecision),
	string(taskmemory.MemoryTypeLearning),
	string(taskmemory.MemoryTypeWarning),
	string(taskmemory.MemoryTypeCodebaseKnowledge),
	string(taskmemory.MemoryTypeDiscovery),
}

// Executor turns a validated task and its review into a persisted
// TaskMemory row.
type Executor struct {
	db        *database.Client
	embedder  embedding.Embedder
	gateway   llm.Gateway
	config    *config.ACEConfig
	publisher *events.Publisher
	logger    *slog.Logger

	wg sync.WaitGroup
}

// Capture builds and stores the execution record: summary, rule-based
// memory type, error signatures from the review feedback, the tool usage
// the worker reported, and the goal+result+feedback embedding. The
// embedding degrades to a zero vector when the gateway is unavailable.
func (e *Executor) Capture(ctx context.Context, tsk *ent.Task, review *ent.ValidationReview) (*ent.TaskMemory, error) {
	goal := tsk.Description
	result := renderResult(tsk.Result)
	feedback := review.Feedback

	var toolEntries []map[string]interface{}
	if tsk.Result != nil {
		toolEntries = parseToolUsage(tsk.Result["tool_usage"])
	}
	touches := touchedFiles(toolEntries)
	signatures := scanErrorPatterns(feedback)

	vec, err := e.embedder.Embed(ctx, embedText(goal, result, feedback))
	if err != nil {
		e.logger.Warn("Embedding failed, storing zero vector",
			"task_id", tsk.ID, "error", err)
		vec = make([]float32, e.embedder.Dimension())
	}

	create := e.db.TaskMemory.Create().
		SetID(uuid.New().String()).
		SetTaskID(tsk.ID).
		SetExecutionSummary(buildSummary(tsk, review, touches, len(toolEntries))).
		SetMemoryType(classifyMemoryType(goal, result, tsk.Description)).
		SetContextEmbedding(pgvector.NewVector(vec)).
		SetSuccess(review.ValidationPassed)
	if goal != "" {
		create = create.SetGoal(goal)
	}
	if result != "" {
		create = create.SetResult(result)
	}
	if feedback != "" {
		create = create.SetFeedback(feedback)
	}
	if len(signatures) > 0 {
		create = create.SetErrorPatterns(signatureLabels(signatures))
	}
	if len(toolEntries) > 0 {
		create = create.SetToolUsage(toolEntries)
	}

	memory, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store task memory: %w", err)
	}

	if err := e.publisher.PublishMemoryStored(ctx, events.MemoryStoredPayload{
		MemoryID:   memory.ID,
		TaskID:     tsk.ID,
		TicketID:   tsk.TicketID,
		MemoryType: string(memory.MemoryType),
		Success:    memory.Success,
	}); err != nil {
		e.logger.Warn("Failed to publish memory.stored", "memory_id", memory.ID, "error", err)
	}

	e.maybeReclassify(memory, goal, result, feedback)
	return memory, nil
}

// Wait blocks until background reclassification calls have finished.
func (e *Executor) Wait() {
	e.wg.Wait()
}

// maybeReclassify refines the rule-based memory type through the LLM
// gateway in the background. The rule-based label stands unless the model
// answers with a valid type at enough confidence.
func (e *Executor) maybeReclassify(memory *ent.TaskMemory, goal, result, feedback string) {
	if e.gateway == nil {
		return
	}
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), e.config.ClassifyTimeout)
		defer cancel()

		prompt := fmt.Sprintf(
			"Goal: %s\nResult: %s\nFeedback: %s\n\nClassify this execution record as one of: %s.",
			goal, result, feedback, strings.Join(memoryTypeNames, ", "))
		var classification llm.MemoryClassification
		if err := e.gateway.StructuredOutput(ctx, prompt, &classification, classifySystemPrompt); err != nil {
			e.logger.Warn("LLM classification failed, keeping rule-based type",
				"memory_id", memory.ID, "error", err)
			return
		}

		next := taskmemory.MemoryType(classification.MemoryType)
		if taskmemory.MemoryTypeValidator(next) != nil ||
			classification.Confidence < e.config.ClassifyConfidence ||
			next == memory.MemoryType {
			return
		}
		if err := e.db.TaskMemory.UpdateOneID(memory.ID).SetMemoryType(next).Exec(ctx); err != nil {
			e.logger.Warn("Failed to apply LLM classification",
				"memory_id", memory.ID, "error", err)
		}
	}()
}

func embedText(goal, result, feedback string) string {
	return strings.TrimSpace(goal + "\n" + result + "\n" + feedback)
}

// renderResult flattens the worker's structured result for embedding and
// classification. A summary field wins; otherwise the whole payload is
// serialized.
func renderResult(result map[string]interface{}) string {
	if len(result) == 0 {
		return ""
	}
	if summary, ok := result["summary"].(string); ok && summary != "" {
		return summary
	}
	data, err := json.Marshal(result)
	if err != nil {
		return ""
	}
	return string(data)
}

func parseToolUsage(raw any) []map[string]interface{} {
	switch entries := raw.(type) {
	case []map[string]interface{}:
		return entries
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(entries))
		for _, e := range entries {
			if m, ok := e.(map[string]interface{}); ok {
				out = append(out, m)
			}
		}
		return out
	default:
		return nil
	}
}

type fileTouch struct {
	Path string
	Op   string
}

// touchedFiles extracts the distinct file paths named by known tools,
// resolving the path argument aliases.
func touchedFiles(entries []map[string]interface{}) []fileTouch {
	var touches []fileTouch
	seen := make(map[string]bool)
	for _, entry := range entries {
		tool, _ := entry["tool"].(string)
		if tool == "" {
			tool, _ = entry["tool_name"].(string)
		}
		op, known := toolVocabulary[tool]
		if !known {
			continue
		}
		args, _ := entry["args"].(map[string]interface{})
		if args == nil {
			args = entry
		}
		for _, alias := range pathAliases {
			path, ok := args[alias].(string)
			if !ok || path == "" {
				continue
			}
			if !seen[path] {
				seen[path] = true
				touches = append(touches, fileTouch{Path: path, Op: op})
			}
			break
		}
	}
	return touches
}

// Rule order matters: the first bucket with a keyword hit wins.
var classifierRules = []struct {
	memoryType taskmemory.MemoryType
	keywords   []string
}{
	{taskmemory.MemoryTypeErrorFix, []string{"fixed", "fix for", "resolved", "bug", "exception", "traceback"}},
	{taskmemory.MemoryTypeDecision, []string{"decided", "chose", "opted", "instead of", "trade-off", "tradeoff"}},
	{taskmemory.MemoryTypeWarning, []string{"careful", "caution", "beware", "watch out", "warning"}},
	{taskmemory.MemoryTypeDiscovery, []string{"discovered", "found that", "turns out", "realized"}},
	{taskmemory.MemoryTypeCodebaseKnowledge, []string{"defined in", "located in", "lives in", "architecture"}},
}

func classifyMemoryType(goal, result, description string) taskmemory.MemoryType {
	text := strings.ToLower(goal + "\n" + result + "\n" + description)
	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.memoryType
			}
		}
	}
	return taskmemory.MemoryTypeLearning
}

func buildSummary(tsk *ent.Task, review *ent.ValidationReview, touches []fileTouch, toolCalls int) string {
	var b strings.Builder
	verdict := "failed validation"
	if review.ValidationPassed {
		verdict = "passed validation"
	}
	fmt.Fprintf(&b, "%s %s on iteration %d", tsk.TaskType, verdict, review.IterationNumber)
	if toolCalls > 0 {
		fmt.Fprintf(&b, " after %d tool calls", toolCalls)
	}
	if len(touches) > 0 {
		paths := make([]string, len(touches))
		for i, touch := range touches {
			paths[i] = touch.Path
		}
		fmt.Fprintf(&b, "; touched %s", strings.Join(paths, ", "))
	}
	return b.String()
}
