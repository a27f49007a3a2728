package ace

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/droverhq/drover/ent"
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/pkg/database"
	"github.com/droverhq/drover/pkg/events"
	"github.com/droverhq/drover/pkg/llm"
)

const (
	confidenceStep    = 0.05
	confidenceFloor   = 0.05
	confidenceCeiling = 0.95
	indicatorCap      = 10
)

const patternSystemPrompt = "You aggregate execution records into reusable " +
	"patterns. List short, concrete indicator phrases; no prose."

var successIndicatorKeywords = []string{
	"passed", "passes", "works", "succeeded", "clean", "correct",
}

// PatternLearner folds each stored memory into the per-task-type
// success/failure signatures.
type PatternLearner struct {
	db        *database.Client
	gateway   llm.Gateway
	publisher *events.Publisher
	logger    *slog.Logger
}

// Learn upserts the pattern matching the memory's outcome for the task's
// type: confirmations raise confidence and merge indicators, and the
// opposite-outcome pattern, if one exists, loses confidence. Adjustment
// is bounded so a pattern never becomes certain or impossible.
func (l *PatternLearner) Learn(ctx context.Context, tsk *ent.Task, memory *ent.TaskMemory) (*ent.LearnedPattern, error) {
	patternType := learnedpattern.PatternTypeFailure
	if memory.Success {
		patternType = learnedpattern.PatternTypeSuccess
	}
	taskTypePattern := "^" + regexp.QuoteMeta(tsk.TaskType) + "$"

	successIndicators, failureIndicators := l.extractIndicators(ctx, tsk, memory)

	pattern, err := l.upsert(ctx, patternType, taskTypePattern, successIndicators, failureIndicators)
	if err != nil {
		return nil, err
	}
	if err := l.contradict(ctx, patternType, taskTypePattern); err != nil {
		l.logger.Warn("Failed to adjust opposite pattern",
			"task_type_pattern", taskTypePattern, "error", err)
	}

	if err := l.publisher.PublishPatternLearned(ctx, events.PatternLearnedPayload{
		PatternID:   pattern.ID,
		PatternType: string(pattern.PatternType),
		Confidence:  pattern.ConfidenceScore,
	}); err != nil {
		l.logger.Warn("Failed to publish memory.pattern.learned",
			"pattern_id", pattern.ID, "error", err)
	}
	return pattern, nil
}

func (l *PatternLearner) extractIndicators(ctx context.Context, tsk *ent.Task, memory *ent.TaskMemory) ([]string, []string) {
	if l.gateway != nil {
		outcome := "failed validation"
		if memory.Success {
			outcome = "passed validation"
		}
		prompt := fmt.Sprintf(
			"Task type: %s\nOutcome: %s\nSummary: %s\n%s\nList the signals that indicate success or failure for tasks of this type.",
			tsk.TaskType, outcome, memory.ExecutionSummary, memoryText(memory))
		var extraction llm.PatternExtraction
		err := l.gateway.StructuredOutput(ctx, prompt, &extraction, patternSystemPrompt)
		if err == nil {
			return extraction.SuccessIndicators, extraction.FailureIndicators
		}
		l.logger.Warn("Pattern extraction fell back to heuristics",
			"memory_id", memory.ID, "error", err)
	}
	return heuristicIndicators(memory)
}

// heuristicIndicators derives indicators without the model: error kinds
// become failure indicators, success language in the feedback becomes
// success indicators.
func heuristicIndicators(memory *ent.TaskMemory) ([]string, []string) {
	var failure []string
	for _, label := range memory.ErrorPatterns {
		kind, _, _ := strings.Cut(label, ":")
		failure = append(failure, strings.TrimSpace(kind))
	}

	var success []string
	if memory.Success {
		text := ""
		if memory.Feedback != nil {
			text = *memory.Feedback
		}
		for _, sentence := range splitSentences(text) {
			if containsAny(strings.ToLower(sentence), successIndicatorKeywords) {
				success = append(success, sentence)
			}
		}
	}
	return success, failure
}

func (l *PatternLearner) upsert(ctx context.Context, patternType learnedpattern.PatternType, taskTypePattern string, successIndicators, failureIndicators []string) (*ent.LearnedPattern, error) {
	existing, err := l.db.LearnedPattern.Query().
		Where(
			learnedpattern.PatternTypeEQ(patternType),
			learnedpattern.TaskTypePatternEQ(taskTypePattern),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query learned pattern: %w", err)
	}

	if existing == nil {
		created, err := l.db.LearnedPattern.Create().
			SetID(uuid.New().String()).
			SetPatternType(patternType).
			SetTaskTypePattern(taskTypePattern).
			SetSuccessIndicators(capIndicators(dedupeStrings(successIndicators))).
			SetFailureIndicators(capIndicators(dedupeStrings(failureIndicators))).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create learned pattern: %w", err)
		}
		return created, nil
	}

	updated, err := l.db.LearnedPattern.UpdateOneID(existing.ID).
		SetConfidenceScore(clampConfidence(existing.ConfidenceScore + confidenceStep)).
		SetUsageCount(existing.UsageCount + 1).
		SetSuccessIndicators(mergeIndicators(existing.SuccessIndicators, successIndicators)).
		SetFailureIndicators(mergeIndicators(existing.FailureIndicators, failureIndicators)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update learned pattern: %w", err)
	}
	return updated, nil
}

// contradict lowers the confidence of the opposite-outcome pattern for
// the same task type.
func (l *PatternLearner) contradict(ctx context.Context, confirmed learnedpattern.PatternType, taskTypePattern string) error {
	opposite := learnedpattern.PatternTypeSuccess
	if confirmed == learnedpattern.PatternTypeSuccess {
		opposite = learnedpattern.PatternTypeFailure
	}
	existing, err := l.db.LearnedPattern.Query().
		Where(
			learnedpattern.PatternTypeEQ(opposite),
			learnedpattern.TaskTypePatternEQ(taskTypePattern),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return l.db.LearnedPattern.UpdateOneID(existing.ID).
		SetConfidenceScore(clampConfidence(existing.ConfidenceScore - confidenceStep)).
		Exec(ctx)
}

func clampConfidence(score float64) float64 {
	if score < confidenceFloor {
		return confidenceFloor
	}
	if score > confidenceCeiling {
		return confidenceCeiling
	}
	return score
}

func mergeIndicators(existing, incoming []string) []string {
	return capIndicators(dedupeStrings(append(append([]string(nil), existing...), incoming...)))
}

func dedupeStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func capIndicators(values []string) []string {
	if len(values) > indicatorCap {
		return values[:indicatorCap]
	}
	return values
}

func memoryText(memory *ent.TaskMemory) string {
	var parts []string
	if memory.Goal != nil && *memory.Goal != "" {
		parts = append(parts, "Goal: "+*memory.Goal)
	}
	if memory.Result != nil && *memory.Result != "" {
		parts = append(parts, "Result: "+*memory.Result)
	}
	if memory.Feedback != nil && *memory.Feedback != "" {
		parts = append(parts, "Feedback: "+*memory.Feedback)
	}
	return strings.Join(parts, "\n")
}
