// Code generated by ent, DO NOT EDIT.

package validationreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the validationreview type in the database.
	Label = "validation_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "review_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldValidatorAgentID holds the string denoting the validator_agent_id field in the database.
	FieldValidatorAgentID = "validator_agent_id"
	// FieldIterationNumber holds the string denoting the iteration_number field in the database.
	FieldIterationNumber = "iteration_number"
	// FieldValidationPassed holds the string denoting the validation_passed field in the database.
	FieldValidationPassed = "validation_passed"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldEvidence holds the string denoting the evidence field in the database.
	FieldEvidence = "evidence"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the validationreview in the database.
	Table = "validation_reviews"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "validation_reviews"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
)

// Columns holds all SQL columns for validationreview fields.
var Columns = []string{
	FieldID,
	FieldTaskID,
	FieldValidatorAgentID,
	FieldIterationNumber,
	FieldValidationPassed,
	FieldFeedback,
	FieldEvidence,
	FieldRecommendations,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ValidationReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByValidatorAgentID orders the results by the validator_agent_id field.
func ByValidatorAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidatorAgentID, opts...).ToFunc()
}

// ByIterationNumber orders the results by the iteration_number field.
func ByIterationNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIterationNumber, opts...).ToFunc()
}

// ByValidationPassed orders the results by the validation_passed field.
func ByValidationPassed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationPassed, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
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
