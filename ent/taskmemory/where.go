// Code generated by ent, DO NOT EDIT.

package taskmemory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
	pgvector "github.com/pgvector/pgvector-go"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldTaskID, v))
}

// ExecutionSummary applies equality check predicate on the "execution_summary" field. It's identical to ExecutionSummaryEQ.
func ExecutionSummary(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldExecutionSummary, v))
}

// ContextEmbedding applies equality check predicate on the "context_embedding" field. It's identical to ContextEmbeddingEQ.
func ContextEmbedding(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldContextEmbedding, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldSuccess, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldGoal, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldResult, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldFeedback, v))
}

// ReusedCount applies equality check predicate on the "reused_count" field. It's identical to ReusedCountEQ.
func ReusedCount(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldReusedCount, v))
}

// LearnedAt applies equality check predicate on the "learned_at" field. It's identical to LearnedAtEQ.
func LearnedAt(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldLearnedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldTaskID, v))
}

// ExecutionSummaryEQ applies the EQ predicate on the "execution_summary" field.
func ExecutionSummaryEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldExecutionSummary, v))
}

// ExecutionSummaryNEQ applies the NEQ predicate on the "execution_summary" field.
func ExecutionSummaryNEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldExecutionSummary, v))
}

// ExecutionSummaryIn applies the In predicate on the "execution_summary" field.
func ExecutionSummaryIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldExecutionSummary, vs...))
}

// ExecutionSummaryNotIn applies the NotIn predicate on the "execution_summary" field.
func ExecutionSummaryNotIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldExecutionSummary, vs...))
}

// ExecutionSummaryGT applies the GT predicate on the "execution_summary" field.
func ExecutionSummaryGT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldExecutionSummary, v))
}

// ExecutionSummaryGTE applies the GTE predicate on the "execution_summary" field.
func ExecutionSummaryGTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldExecutionSummary, v))
}

// ExecutionSummaryLT applies the LT predicate on the "execution_summary" field.
func ExecutionSummaryLT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldExecutionSummary, v))
}

// ExecutionSummaryLTE applies the LTE predicate on the "execution_summary" field.
func ExecutionSummaryLTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldExecutionSummary, v))
}

// ExecutionSummaryContains applies the Contains predicate on the "execution_summary" field.
func ExecutionSummaryContains(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContains(FieldExecutionSummary, v))
}

// ExecutionSummaryHasPrefix applies the HasPrefix predicate on the "execution_summary" field.
func ExecutionSummaryHasPrefix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasPrefix(FieldExecutionSummary, v))
}

// ExecutionSummaryHasSuffix applies the HasSuffix predicate on the "execution_summary" field.
func ExecutionSummaryHasSuffix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasSuffix(FieldExecutionSummary, v))
}

// ExecutionSummaryEqualFold applies the EqualFold predicate on the "execution_summary" field.
func ExecutionSummaryEqualFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldExecutionSummary, v))
}

// ExecutionSummaryContainsFold applies the ContainsFold predicate on the "execution_summary" field.
func ExecutionSummaryContainsFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldExecutionSummary, v))
}

// MemoryTypeEQ applies the EQ predicate on the "memory_type" field.
func MemoryTypeEQ(v MemoryType) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldMemoryType, v))
}

// MemoryTypeNEQ applies the NEQ predicate on the "memory_type" field.
func MemoryTypeNEQ(v MemoryType) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldMemoryType, v))
}

// MemoryTypeIn applies the In predicate on the "memory_type" field.
func MemoryTypeIn(vs ...MemoryType) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldMemoryType, vs...))
}

// MemoryTypeNotIn applies the NotIn predicate on the "memory_type" field.
func MemoryTypeNotIn(vs ...MemoryType) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldMemoryType, vs...))
}

// ContextEmbeddingEQ applies the EQ predicate on the "context_embedding" field.
func ContextEmbeddingEQ(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldContextEmbedding, v))
}

// ContextEmbeddingNEQ applies the NEQ predicate on the "context_embedding" field.
func ContextEmbeddingNEQ(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldContextEmbedding, v))
}

// ContextEmbeddingIn applies the In predicate on the "context_embedding" field.
func ContextEmbeddingIn(vs ...pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldContextEmbedding, vs...))
}

// ContextEmbeddingNotIn applies the NotIn predicate on the "context_embedding" field.
func ContextEmbeddingNotIn(vs ...pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldContextEmbedding, vs...))
}

// ContextEmbeddingGT applies the GT predicate on the "context_embedding" field.
func ContextEmbeddingGT(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldContextEmbedding, v))
}

// ContextEmbeddingGTE applies the GTE predicate on the "context_embedding" field.
func ContextEmbeddingGTE(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldContextEmbedding, v))
}

// ContextEmbeddingLT applies the LT predicate on the "context_embedding" field.
func ContextEmbeddingLT(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldContextEmbedding, v))
}

// ContextEmbeddingLTE applies the LTE predicate on the "context_embedding" field.
func ContextEmbeddingLTE(v pgvector.Vector) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldContextEmbedding, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorPatternsIsNil applies the IsNil predicate on the "error_patterns" field.
func ErrorPatternsIsNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIsNull(FieldErrorPatterns))
}

// ErrorPatternsNotNil applies the NotNil predicate on the "error_patterns" field.
func ErrorPatternsNotNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotNull(FieldErrorPatterns))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalIsNil applies the IsNil predicate on the "goal" field.
func GoalIsNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIsNull(FieldGoal))
}

// GoalNotNil applies the NotNil predicate on the "goal" field.
func GoalNotNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotNull(FieldGoal))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldGoal, v))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldResult, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldContainsFold(FieldFeedback, v))
}

// ToolUsageIsNil applies the IsNil predicate on the "tool_usage" field.
func ToolUsageIsNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIsNull(FieldToolUsage))
}

// ToolUsageNotNil applies the NotNil predicate on the "tool_usage" field.
func ToolUsageNotNil() predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotNull(FieldToolUsage))
}

// ReusedCountEQ applies the EQ predicate on the "reused_count" field.
func ReusedCountEQ(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldReusedCount, v))
}

// ReusedCountNEQ applies the NEQ predicate on the "reused_count" field.
func ReusedCountNEQ(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldReusedCount, v))
}

// ReusedCountIn applies the In predicate on the "reused_count" field.
func ReusedCountIn(vs ...int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldReusedCount, vs...))
}

// ReusedCountNotIn applies the NotIn predicate on the "reused_count" field.
func ReusedCountNotIn(vs ...int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldReusedCount, vs...))
}

// ReusedCountGT applies the GT predicate on the "reused_count" field.
func ReusedCountGT(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldReusedCount, v))
}

// ReusedCountGTE applies the GTE predicate on the "reused_count" field.
func ReusedCountGTE(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldReusedCount, v))
}

// ReusedCountLT applies the LT predicate on the "reused_count" field.
func ReusedCountLT(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldReusedCount, v))
}

// ReusedCountLTE applies the LTE predicate on the "reused_count" field.
func ReusedCountLTE(v int) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldReusedCount, v))
}

// LearnedAtEQ applies the EQ predicate on the "learned_at" field.
func LearnedAtEQ(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldEQ(FieldLearnedAt, v))
}

// LearnedAtNEQ applies the NEQ predicate on the "learned_at" field.
func LearnedAtNEQ(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNEQ(FieldLearnedAt, v))
}

// LearnedAtIn applies the In predicate on the "learned_at" field.
func LearnedAtIn(vs ...time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldIn(FieldLearnedAt, vs...))
}

// LearnedAtNotIn applies the NotIn predicate on the "learned_at" field.
func LearnedAtNotIn(vs ...time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldNotIn(FieldLearnedAt, vs...))
}

// LearnedAtGT applies the GT predicate on the "learned_at" field.
func LearnedAtGT(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGT(FieldLearnedAt, v))
}

// LearnedAtGTE applies the GTE predicate on the "learned_at" field.
func LearnedAtGTE(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldGTE(FieldLearnedAt, v))
}

// LearnedAtLT applies the LT predicate on the "learned_at" field.
func LearnedAtLT(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLT(FieldLearnedAt, v))
}

// LearnedAtLTE applies the LTE predicate on the "learned_at" field.
func LearnedAtLTE(v time.Time) predicate.TaskMemory {
	return predicate.TaskMemory(sql.FieldLTE(FieldLearnedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TaskMemory {
	return predicate.TaskMemory(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TaskMemory {
	return predicate.TaskMemory(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskMemory) predicate.TaskMemory {
	return predicate.TaskMemory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskMemory) predicate.TaskMemory {
	return predicate.TaskMemory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskMemory) predicate.TaskMemory {
	return predicate.TaskMemory(sql.NotPredicates(p))
}
