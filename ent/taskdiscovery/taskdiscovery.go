// Code generated by ent, DO NOT EDIT.

package taskdiscovery

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the taskdiscovery type in the database.
	Label = "task_discovery"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "discovery_id"
	// FieldSourceTaskID holds the string denoting the source_task_id field in the database.
	FieldSourceTaskID = "source_task_id"
	// FieldDiscoveryType holds the string denoting the discovery_type field in the database.
	FieldDiscoveryType = "discovery_type"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldSpawnedTaskIds holds the string denoting the spawned_task_ids field in the database.
	FieldSpawnedTaskIds = "spawned_task_ids"
	// FieldPriorityBoost holds the string denoting the priority_boost field in the database.
	FieldPriorityBoost = "priority_boost"
	// FieldResolutionStatus holds the string denoting the resolution_status field in the database.
	FieldResolutionStatus = "resolution_status"
	// FieldDiscoveredAt holds the string denoting the discovered_at field in the database.
	FieldDiscoveredAt = "discovered_at"
	// EdgeSourceTask holds the string denoting the source_task edge name in mutations.
	EdgeSourceTask = "source_task"
	// TaskFieldID holds the string denoting the ID field of the Task.
	TaskFieldID = "task_id"
	// Table holds the table name of the taskdiscovery in the database.
	Table = "task_discoveries"
	// SourceTaskTable is the table that holds the source_task relation/edge.
	SourceTaskTable = "task_discoveries"
	// SourceTaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	SourceTaskInverseTable = "tasks"
	// SourceTaskColumn is the table column denoting the source_task relation/edge.
	SourceTaskColumn = "source_task_id"
)

// Columns holds all SQL columns for taskdiscovery fields.
var Columns = []string{
	FieldID,
	FieldSourceTaskID,
	FieldDiscoveryType,
	FieldDescription,
	FieldSpawnedTaskIds,
	FieldPriorityBoost,
	FieldResolutionStatus,
	FieldDiscoveredAt,
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
	// DefaultPriorityBoost holds the default value on creation for the "priority_boost" field.
	DefaultPriorityBoost bool
	// DefaultDiscoveredAt holds the default value on creation for the "discovered_at" field.
	DefaultDiscoveredAt func() time.Time
)

// ResolutionStatus defines the type for the "resolution_status" enum field.
type ResolutionStatus string

// ResolutionStatusOpen is the default value of the ResolutionStatus enum.
const DefaultResolutionStatus = ResolutionStatusOpen

// ResolutionStatus values.
const (
	ResolutionStatusOpen       ResolutionStatus = "open"
	ResolutionStatusInProgress ResolutionStatus = "in_progress"
	ResolutionStatusResolved   ResolutionStatus = "resolved"
	ResolutionStatusInvalid    ResolutionStatus = "invalid"
)

func (rs ResolutionStatus) String() string {
	return string(rs)
}

// ResolutionStatusValidator is a validator for the "resolution_status" field enum values. It is called by the builders before save.
func ResolutionStatusValidator(rs ResolutionStatus) error {
	switch rs {
	case ResolutionStatusOpen, ResolutionStatusInProgress, ResolutionStatusResolved, ResolutionStatusInvalid:
		return nil
	default:
		return fmt.Errorf("taskdiscovery: invalid enum value for resolution_status field: %q", rs)
	}
}

// OrderOption defines the ordering options for the TaskDiscovery queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceTaskID orders the results by the source_task_id field.
func BySourceTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceTaskID, opts...).ToFunc()
}

// ByDiscoveryType orders the results by the discovery_type field.
func ByDiscoveryType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveryType, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByPriorityBoost orders the results by the priority_boost field.
func ByPriorityBoost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriorityBoost, opts...).ToFunc()
}

// ByResolutionStatus orders the results by the resolution_status field.
func ByResolutionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolutionStatus, opts...).ToFunc()
}

// ByDiscoveredAt orders the results by the discovered_at field.
func ByDiscoveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscoveredAt, opts...).ToFunc()
}

// BySourceTaskField orders the results by source_task field.
func BySourceTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceTaskStep(), sql.OrderByField(field, opts...))
	}
}
func newSourceTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceTaskInverseTable, TaskFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceTaskTable, SourceTaskColumn),
	)
}
