// Code generated by ent, DO NOT EDIT.

package diagnosticrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the diagnosticrun type in the database.
	Label = "diagnostic_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldWorkflowID holds the string denoting the workflow_id field in the database.
	FieldWorkflowID = "workflow_id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldTriggeredAt holds the string denoting the triggered_at field in the database.
	FieldTriggeredAt = "triggered_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalTasks holds the string denoting the total_tasks field in the database.
	FieldTotalTasks = "total_tasks"
	// FieldCompletedTasks holds the string denoting the completed_tasks field in the database.
	FieldCompletedTasks = "completed_tasks"
	// FieldFailedTasks holds the string denoting the failed_tasks field in the database.
	FieldFailedTasks = "failed_tasks"
	// FieldPhasesAnalyzed holds the string denoting the phases_analyzed field in the database.
	FieldPhasesAnalyzed = "phases_analyzed"
	// FieldAgentsReviewed holds the string denoting the agents_reviewed field in the database.
	FieldAgentsReviewed = "agents_reviewed"
	// FieldDiagnosis holds the string denoting the diagnosis field in the database.
	FieldDiagnosis = "diagnosis"
	// FieldTasksCreatedCount holds the string denoting the tasks_created_count field in the database.
	FieldTasksCreatedCount = "tasks_created_count"
	// FieldTasksCreatedIds holds the string denoting the tasks_created_ids field in the database.
	FieldTasksCreatedIds = "tasks_created_ids"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// TicketFieldID holds the string denoting the ID field of the Ticket.
	TicketFieldID = "ticket_id"
	// Table holds the table name of the diagnosticrun in the database.
	Table = "diagnostic_runs"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "diagnostic_runs"
	// TicketInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketInverseTable = "tickets"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "workflow_id"
)

// Columns holds all SQL columns for diagnosticrun fields.
var Columns = []string{
	FieldID,
	FieldWorkflowID,
	FieldTrigger,
	FieldTriggeredAt,
	FieldCompletedAt,
	FieldTotalTasks,
	FieldCompletedTasks,
	FieldFailedTasks,
	FieldPhasesAnalyzed,
	FieldAgentsReviewed,
	FieldDiagnosis,
	FieldTasksCreatedCount,
	FieldTasksCreatedIds,
	FieldStatus,
	FieldErrorMessage,
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
	// DefaultTrigger holds the default value on creation for the "trigger" field.
	DefaultTrigger string
	// DefaultTriggeredAt holds the default value on creation for the "triggered_at" field.
	DefaultTriggeredAt func() time.Time
	// DefaultTotalTasks holds the default value on creation for the "total_tasks" field.
	DefaultTotalTasks int
	// DefaultCompletedTasks holds the default value on creation for the "completed_tasks" field.
	DefaultCompletedTasks int
	// DefaultFailedTasks holds the default value on creation for the "failed_tasks" field.
	DefaultFailedTasks int
	// DefaultTasksCreatedCount holds the default value on creation for the "tasks_created_count" field.
	DefaultTasksCreatedCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusCompleted, StatusSkipped, StatusFailed:
		return nil
	default:
		return fmt.Errorf("diagnosticrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DiagnosticRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByWorkflowID orders the results by the workflow_id field.
func ByWorkflowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByTriggeredAt orders the results by the triggered_at field.
func ByTriggeredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggeredAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalTasks orders the results by the total_tasks field.
func ByTotalTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTasks, opts...).ToFunc()
}

// ByCompletedTasks orders the results by the completed_tasks field.
func ByCompletedTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedTasks, opts...).ToFunc()
}

// ByFailedTasks orders the results by the failed_tasks field.
func ByFailedTasks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedTasks, opts...).ToFunc()
}

// ByDiagnosis orders the results by the diagnosis field.
func ByDiagnosis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosis, opts...).ToFunc()
}

// ByTasksCreatedCount orders the results by the tasks_created_count field.
func ByTasksCreatedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTasksCreatedCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, TicketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
	)
}
