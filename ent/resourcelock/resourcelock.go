// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the resourcelock type in the database.
	Label = "resource_lock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "lock_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldOwnerAgentID holds the string denoting the owner_agent_id field in the database.
	FieldOwnerAgentID = "owner_agent_id"
	// FieldAcquiredAt holds the string denoting the acquired_at field in the database.
	FieldAcquiredAt = "acquired_at"
	// FieldReleasedAt holds the string denoting the released_at field in the database.
	FieldReleasedAt = "released_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// Table holds the table name of the resourcelock in the database.
	Table = "resource_locks"
)

// Columns holds all SQL columns for resourcelock fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldOwnerAgentID,
	FieldAcquiredAt,
	FieldReleasedAt,
	FieldMetadata,
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
	// DefaultAcquiredAt holds the default value on creation for the "acquired_at" field.
	DefaultAcquiredAt func() time.Time
)

// OrderOption defines the ordering options for the ResourceLock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByOwnerAgentID orders the results by the owner_agent_id field.
func ByOwnerAgentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerAgentID, opts...).ToFunc()
}

// ByAcquiredAt orders the results by the acquired_at field.
func ByAcquiredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcquiredAt, opts...).ToFunc()
}

// ByReleasedAt orders the results by the released_at field.
func ByReleasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReleasedAt, opts...).ToFunc()
}
