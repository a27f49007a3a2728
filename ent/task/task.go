// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "task_id"
	// FieldTicketID holds the string denoting the ticket_id field in the database.
	FieldTicketID = "ticket_id"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldTaskType holds the string denoting the task_type field in the database.
	FieldTaskType = "task_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAssignedAgentID holds the string denoting the assigned_agent_id field in the database.
	FieldAssignedAgentID = "assigned_agent_id"
	// FieldSandboxID holds the string denoting the sandbox_id field in the database.
	FieldSandboxID = "sandbox_id"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldDeadlineAt holds the string denoting the deadline_at field in the database.
	FieldDeadlineAt = "deadline_at"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldValidationEnabled holds the string denoting the validation_enabled field in the database.
	FieldValidationEnabled = "validation_enabled"
	// FieldValidationIteration holds the string denoting the validation_iteration field in the database.
	FieldValidationIteration = "validation_iteration"
	// FieldReviewDone holds the string denoting the review_done field in the database.
	FieldReviewDone = "review_done"
	// FieldLastValidationFeedback holds the string denoting the last_validation_feedback field in the database.
	FieldLastValidationFeedback = "last_validation_feedback"
	// FieldCommitSha holds the string denoting the commit_sha field in the database.
	FieldCommitSha = "commit_sha"
	// FieldOwnedFiles holds the string denoting the owned_files field in the database.
	FieldOwnedFiles = "owned_files"
	// FieldDependencies holds the string denoting the dependencies field in the database.
	FieldDependencies = "dependencies"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldClaimedAt holds the string denoting the claimed_at field in the database.
	FieldClaimedAt = "claimed_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTicket holds the string denoting the ticket edge name in mutations.
	EdgeTicket = "ticket"
	// EdgeMemories holds the string denoting the memories edge name in mutations.
	EdgeMemories = "memories"
	// EdgeValidationReviews holds the string denoting the validation_reviews edge name in mutations.
	EdgeValidationReviews = "validation_reviews"
	// EdgeDiscoveries holds the string denoting the discoveries edge name in mutations.
	EdgeDiscoveries = "discoveries"
	// EdgeAgentResults holds the string denoting the agent_results edge name in mutations.
	EdgeAgentResults = "agent_results"
	// TicketFieldID holds the string denoting the ID field of the Ticket.
	TicketFieldID = "ticket_id"
	// TaskMemoryFieldID holds the string denoting the ID field of the TaskMemory.
	TaskMemoryFieldID = "memory_id"
	// ValidationReviewFieldID holds the string denoting the ID field of the ValidationReview.
	ValidationReviewFieldID = "review_id"
	// TaskDiscoveryFieldID holds the string denoting the ID field of the TaskDiscovery.
	TaskDiscoveryFieldID = "discovery_id"
	// AgentResultFieldID holds the string denoting the ID field of the AgentResult.
	AgentResultFieldID = "result_id"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// TicketTable is the table that holds the ticket relation/edge.
	TicketTable = "tasks"
	// TicketInverseTable is the table name for the Ticket entity.
	// It exists in this package in order to avoid circular dependency with the "ticket" package.
	TicketInverseTable = "tickets"
	// TicketColumn is the table column denoting the ticket relation/edge.
	TicketColumn = "ticket_id"
	// MemoriesTable is the table that holds the memories relation/edge.
	MemoriesTable = "task_memories"
	// MemoriesInverseTable is the table name for the TaskMemory entity.
	// It exists in this package in order to avoid circular dependency with the "taskmemory" package.
	MemoriesInverseTable = "task_memories"
	// MemoriesColumn is the table column denoting the memories relation/edge.
	MemoriesColumn = "task_id"
	// ValidationReviewsTable is the table that holds the validation_reviews relation/edge.
	ValidationReviewsTable = "validation_reviews"
	// ValidationReviewsInverseTable is the table name for the ValidationReview entity.
	// It exists in this package in order to avoid circular dependency with the "validationreview" package.
	ValidationReviewsInverseTable = "validation_reviews"
	// ValidationReviewsColumn is the table column denoting the validation_reviews relation/edge.
	ValidationReviewsColumn = "task_id"
	// DiscoveriesTable is the table that holds the discoveries relation/edge.
	DiscoveriesTable = "task_discoveries"
	// DiscoveriesInverseTable is the table name for the TaskDiscovery entity.
	// It exists in this package in order to avoid circular dependency with the "taskdiscovery" package.
	DiscoveriesInverseTable = "task_discoveries"
	// DiscoveriesColumn is the table column denoting the discoveries relation/edge.
	DiscoveriesColumn = "source_task_id"
	// AgentResultsTable is the table that holds the agent_results relation/edge.
	AgentResultsTable = "agent_results"
	// AgentResultsInverseTable is the table name for the AgentResult entity.
	// It exists in this package in order to avoid circular dependency with the "agentresult" package.
	AgentResultsInverseTable = "agent_results"
	// AgentResultsColumn is the table column denoting the agent_results relation/edge.
	AgentResultsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldTicketID,
	FieldPhaseID,
	FieldTaskType,
	FieldDescription,
	FieldPriority,
	FieldStatus,
	FieldAssignedAgentID,
	FieldSandboxID,
	FieldResult,
	FieldErrorMessage,
	FieldRetryCount,
	FieldMaxRetries,
	FieldDeadlineAt,
	FieldScore,
	FieldValidationEnabled,
	FieldValidationIteration,
	FieldReviewDone,
	FieldLastValidationFeedback,
	FieldCommitSha,
	FieldOwnedFiles,
	FieldDependencies,
	FieldContentHash,
	FieldClaimedAt,
	FieldStartedAt,
	FieldCompletedAt,
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
	// DefaultTaskType holds the default value on creation for the "task_type" field.
	DefaultTaskType string
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore float64
	// DefaultValidationEnabled holds the default value on creation for the "validation_enabled" field.
	DefaultValidationEnabled bool
	// DefaultValidationIteration holds the default value on creation for the "validation_iteration" field.
	DefaultValidationIteration int
	// DefaultReviewDone holds the default value on creation for the "review_done" field.
	DefaultReviewDone bool
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

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
		return fmt.Errorf("task: invalid enum value for priority field: %q", pr)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending              Status = "pending"
	StatusClaiming             Status = "claiming"
	StatusAssigned             Status = "assigned"
	StatusRunning              Status = "running"
	StatusUnderReview          Status = "under_review"
	StatusValidationInProgress Status = "validation_in_progress"
	StatusNeedsWork            Status = "needs_work"
	StatusCompleted            Status = "completed"
	StatusFailed               Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusClaiming, StatusAssigned, StatusRunning, StatusUnderReview, StatusValidationInProgress, StatusNeedsWork, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTicketID orders the results by the ticket_id field.
func ByTicketID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTicketID, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByTaskType orders the results by the task_type field.
func ByTaskType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAssignedAgentID orders the results by the assigned_agent_id field.
func ByAssignedAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedAgentID, opts...).ToFunc()
}

// BySandboxID orders the results by the sandbox_id field.
func BySandboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxID, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByDeadlineAt orders the results by the deadline_at field.
func ByDeadlineAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeadlineAt, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByValidationEnabled orders the results by the validation_enabled field.
func ByValidationEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationEnabled, opts...).ToFunc()
}

// ByValidationIteration orders the results by the validation_iteration field.
func ByValidationIteration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidationIteration, opts...).ToFunc()
}

// ByReviewDone orders the results by the review_done field.
func ByReviewDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewDone, opts...).ToFunc()
}

// ByLastValidationFeedback orders the results by the last_validation_feedback field.
func ByLastValidationFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastValidationFeedback, opts...).ToFunc()
}

// ByCommitSha orders the results by the commit_sha field.
func ByCommitSha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommitSha, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByClaimedAt orders the results by the claimed_at field.
func ByClaimedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClaimedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTicketField orders the results by ticket field.
func ByTicketField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTicketStep(), sql.OrderByField(field, opts...))
	}
}

// ByMemoriesCount orders the results by memories count.
func ByMemoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMemoriesStep(), opts...)
	}
}

// ByMemories orders the results by memories terms.
func ByMemories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMemoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByValidationReviewsCount orders the results by validation_reviews count.
func ByValidationReviewsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newValidationReviewsStep(), opts...)
	}
}

// ByValidationReviews orders the results by validation_reviews terms.
func ByValidationReviews(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newValidationReviewsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDiscoveriesCount orders the results by discoveries count.
func ByDiscoveriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDiscoveriesStep(), opts...)
	}
}

// ByDiscoveries orders the results by discoveries terms.
func ByDiscoveries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDiscoveriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentResultsCount orders the results by agent_results count.
func ByAgentResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentResultsStep(), opts...)
	}
}

// ByAgentResults orders the results by agent_results terms.
func ByAgentResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTicketStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TicketInverseTable, TicketFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
	)
}
func newMemoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MemoriesInverseTable, TaskMemoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
	)
}
func newValidationReviewsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ValidationReviewsInverseTable, ValidationReviewFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ValidationReviewsTable, ValidationReviewsColumn),
	)
}
func newDiscoveriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DiscoveriesInverseTable, TaskDiscoveryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DiscoveriesTable, DiscoveriesColumn),
	)
}
func newAgentResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentResultsInverseTable, AgentResultFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentResultsTable, AgentResultsColumn),
	)
}
