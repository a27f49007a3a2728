// Code generated by ent, DO NOT EDIT.

package taskmemory

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskmemory type in the database.
	Label = "task_memory"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "memory_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldExecutionSummary holds the string denoting the execution_summary field in the database.
	FieldExecutionSummary = "execution_summary"
	// FieldMemoryType holds the string denoting the memory_type field in the database.
	FieldMemoryType = "memory_type"
	// FieldContextEmbedding holds the string denoting the context_embedding field in the database.
	FieldContextEmbedding = "context_embedding"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorPatterns holds the string denoting the error_patterns field in the database.
	FieldErrorPatterns = "error_patterns"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldToolUsage holds the string denoting the tool_usage field in the database.
	FieldToolUsage = "tool_usage"
	// FieldReusedCount holds the string denoting the reused_count field in the database.
	FieldReusedCount = "reused_count"
	// FieldLearnedAt holds the string denoting the learned_at field in the database.
	FieldLearnedAt = "learned_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskmemory in the database.
	Table = "task_memories"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "task_memories"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for taskmemory fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldExecutionSummary,
	FieldMemoryType,
	FieldContextEmbedding,
	FieldSuccess,
	FieldErrorPatterns,
	FieldGoal,
	FieldResult,
	FieldFeedback,
	FieldToolUsage,
	FieldReusedCount,
	FieldLearnedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultReusedCount holds the default value on creation for the "reused_count" field.
	DefaultReusedCount int
	// DefaultLearnedAt holds the default value on creation for the "learned_at" field.
	DefaultLearnedAt func() time.Time
)

// MemoryType defines the type for the "memory_type" enum field.
type MemoryType string

// MemoryTypeLearning is the default value of the MemoryType enum.
const DefaultMemoryType = MemoryTypeLearning

// MemoryType values.
const (
	MemoryTypeErrorFix          MemoryType = "error_fix"
	MemoryTypeDecision          MemoryType = "decision"
	MemoryTypeLearning          MemoryType = "learning"
	MemoryTypeWarning           MemoryType = "warning"
	MemoryTypeCodebaseKnowledge MemoryType = "codebase_knowledge"
	MemoryTypeDiscovery         MemoryType = "discovery"
)

func (mt MemoryType) String() string {
	return string(mt)
}

// MemoryTypeValidator is a validator for the "memory_type" field enum values. It is called by the builders before save.
func MemoryTypeValidator(mt MemoryType) error {
	switch mt {
	case MemoryTypeErrorFix, MemoryTypeDecision, MemoryTypeLearning, MemoryTypeWarning, MemoryTypeCodebaseKnowledge, MemoryTypeDiscovery:
		return nil
	default:
		return fmt.Errorf("taskmemory: invalid enum value for memory_type field: %q", mt)
	}
}

// OrderOption defines the ordering options for the TaskMemory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByExecutionSummary orders the results by the execution_summary field.
func ByExecutionSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionSummary, opts...).ToFunc()
}

// ByMemoryType orders the results by the memory_type field.
func ByMemoryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemoryType, opts...).ToFunc()
}

// ByContextEmbedding orders the results by the context_embedding field.
func ByContextEmbedding(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextEmbedding, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByReusedCount orders the results by the reused_count field.
func ByReusedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReusedCount, opts...).ToFunc()
}

// ByLearnedAt orders the results by the learned_at field.
func ByLearnedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
