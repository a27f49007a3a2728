// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_id"
	// FieldAgentType holds the string denoting the agent_type field in the database.
	FieldAgentType = "agent_type"
	// FieldPhaseID holds the string denoting the phase_id field in the database.
	FieldPhaseID = "phase_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCapabilities holds the string denoting the capabilities field in the database.
	FieldCapabilities = "capabilities"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldSandboxID holds the string denoting the sandbox_id field in the database.
	FieldSandboxID = "sandbox_id"
	// FieldLastHeartbeat holds the string denoting the last_heartbeat field in the database.
	FieldLastHeartbeat = "last_heartbeat"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the agent in the database.
	Table = "agents"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldAgentType,
	FieldPhaseID,
	FieldStatus,
	FieldCapabilities,
	FieldTags,
	FieldSandboxID,
	FieldLastHeartbeat,
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
	// DefaultLastHeartbeat holds the default value on creation for the "last_heartbeat" field.
	DefaultLastHeartbeat func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AgentType defines the type for the "agent_type" enum field.
type AgentType string

// AgentType values.
const (
	AgentTypeWorker     AgentType = "worker"
	AgentTypeValidator  AgentType = "validator"
	AgentTypeDiagnostic AgentType = "diagnostic"
	AgentTypeMonitor    AgentType = "monitor"
)

func (at AgentType) String() string {
	return string(at)
}

// AgentTypeValidator is a validator for the "agent_type" field enum values. It is called by the builders before save.
func AgentTypeFieldValidator(at AgentType) error {
	switch at {
	case AgentTypeWorker, AgentTypeValidator, AgentTypeDiagnostic, AgentTypeMonitor:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for agent_type field: %q", at)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSpawning is the default value of the Status enum.
const DefaultStatus = StatusSpawning

// Status values.
const (
	StatusSpawning Status = "spawning"
	StatusIdle     Status = "idle"
	StatusBusy     Status = "busy"
	StatusStopped  Status = "stopped"
	StatusFailed   Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSpawning, StatusIdle, StatusBusy, StatusStopped, StatusFailed:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAgentType orders the results by the agent_type field.
func ByAgentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentType, opts...).ToFunc()
}

// ByPhaseID orders the results by the phase_id field.
func ByPhaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySandboxID orders the results by the sandbox_id field.
func BySandboxID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSandboxID, opts...).ToFunc()
}

// ByLastHeartbeat orders the results by the last_heartbeat field.
func ByLastHeartbeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeat, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
