// Code generated by ent, DO NOT EDIT.

package ticket

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the ticket type in the database.
	Label = "ticket"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "ticket_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgePlaybookEntries holds the string denoting the playbook_entries edge name in mutations.
	EdgePlaybookEntries = "playbook_entries"
	// EdgePlaybookChanges holds the string denoting the playbook_changes edge name in mutations.
	EdgePlaybookChanges = "playbook_changes"
	// EdgeDiagnosticRuns holds the string denoting the diagnostic_runs edge name in mutations.
	EdgeDiagnosticRuns = "diagnostic_runs"
	// EdgeWorkflowResults holds the string denoting the workflow_results edge name in mutations.
	EdgeWorkflowResults = "workflow_results"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// PlaybookEntryFieldID holds the string denoting the ID field of the PlaybookEntry.
	PlaybookEntryFieldID = "entry_id"
	// PlaybookChangeFieldID holds the string denoting the ID field of the PlaybookChange.
	PlaybookChangeFieldID = "change_id"
	// DiagnosticRunFieldID holds the string denoting the ID field of the DiagnosticRun.
	DiagnosticRunFieldID = "run_id"
	// WorkflowResultFieldID holds the string denoting the ID field of the WorkflowResult.
	WorkflowResultFieldID = "result_id"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the ticket in the database.
	Table = "tickets"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "ticket_id"
	// PlaybookEntriesTable is the table that holds the playbook_entries relation/edge.
	PlaybookEntriesTable = "playbook_entries"
	// PlaybookEntriesInverseTable is the table name for the PlaybookEntry entity.
	// It exists in this package in order to avoid circular dependency with the "playbookentry" package.
	PlaybookEntriesInverseTable = "playbook_entries"
	// PlaybookEntriesColumn is the table column denoting the playbook_entries relation/edge.
	PlaybookEntriesColumn = "ticket_id"
	// PlaybookChangesTable is the table that holds the playbook_changes relation/edge.
	PlaybookChangesTable = "playbook_changes"
	// PlaybookChangesInverseTable is the table name for the PlaybookChange entity.
	// It exists in this package in order to avoid circular dependency with the "playbookchange" package.
	PlaybookChangesInverseTable = "playbook_changes"
	// PlaybookChangesColumn is the table column denoting the playbook_changes relation/edge.
	PlaybookChangesColumn = "ticket_id"
	// DiagnosticRunsTable is the table that holds the diagnostic_runs relation/edge.
	DiagnosticRunsTable = "diagnostic_runs"
	// DiagnosticRunsInverseTable is the table name for the DiagnosticRun entity.
	// It exists in this package in order to avoid circular dependency with the "diagnosticrun" package.
	DiagnosticRunsInverseTable = "diagnostic_runs"
	// DiagnosticRunsColumn is the table column denoting the diagnostic_runs relation/edge.
	DiagnosticRunsColumn = "workflow_id"
	// WorkflowResultsTable is the table that holds the workflow_results relation/edge.
	WorkflowResultsTable = "workflow_results"
	// WorkflowResultsInverseTable is the table name for the WorkflowResult entity.
	// It exists in this package in order to avoid circular dependency with the "workflowresult" package.
	WorkflowResultsInverseTable = "workflow_results"
	// WorkflowResultsColumn is the table column denoting the workflow_results relation/edge.
	WorkflowResultsColumn = "ticket_id"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "tickets"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for ticket fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldPhaseID,
	FieldStatus,
	FieldPriority,
	FieldProjectID,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for status field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMEDIUM is the default value of the Priority enum.
const DefaultPriority = PriorityMEDIUM

// Priority values.
const (
	PriorityLOW      Priority = "LOW"
	PriorityMEDIUM   Priority = "MEDIUM"
	PriorityHIGH     Priority = "HIGH"
	PriorityCRITICAL Priority = "CRITICAL"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityLOW, PriorityMEDIUM, PriorityHIGH, PriorityCRITICAL:
		return nil
	default:
		return fmt.Errorf("ticket: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Ticket queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPlaybookEntriesCount orders the results by playbook_entries count.
func ByPlaybookEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlaybookEntriesStep(), opts...)
	}
}

// ByPlaybookEntries orders the results by playbook_entries terms.
func ByPlaybookEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlaybookEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPlaybookChangesCount orders the results by playbook_changes count.
func ByPlaybookChangesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPlaybookChangesStep(), opts...)
	}
}

// ByPlaybookChanges orders the results by playbook_changes terms.
func ByPlaybookChanges(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPlaybookChangesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDiagnosticRunsCount orders the results by diagnostic_runs count.
func ByDiagnosticRunsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDiagnosticRunsStep(), opts...)
	}
}

// ByDiagnosticRuns orders the results by diagnostic_runs terms.
func ByDiagnosticRuns(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiagnosticRunsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWorkflowResultsCount orders the results by workflow_results count.
func ByWorkflowResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWorkflowResultsStep(), opts...)
	}
}

// ByWorkflowResults orders the results by workflow_results terms.
func ByWorkflowResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWorkflowResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newPlaybookEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlaybookEntriesInverseTable, PlaybookEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlaybookEntriesTable, PlaybookEntriesColumn),
	)
}
func newPlaybookChangesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PlaybookChangesInverseTable, PlaybookChangeFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PlaybookChangesTable, PlaybookChangesColumn),
	)
}
func newDiagnosticRunsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiagnosticRunsInverseTable, DiagnosticRunFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DiagnosticRunsTable, DiagnosticRunsColumn),
	)
}
func newWorkflowResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WorkflowResultsInverseTable, WorkflowResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WorkflowResultsTable, WorkflowResultsColumn),
	)
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
