// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
)

// TaskDiscovery is the model entity for the TaskDiscovery schema.
type TaskDiscovery struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SourceTaskID holds the value of the "source_task_id" field.
	SourceTaskID string `json:"source_task_id,omitempty"`
	// e.g., 'missing_dependency', 'diagnostic_no_result'
	DiscoveryType string `json:"discovery_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// SpawnedTaskIds holds the value of the "spawned_task_ids" field.
	SpawnedTaskIds []string `json:"spawned_task_ids,omitempty"`
	// Spawned tasks inherit a priority bump
	PriorityBoost bool `json:"priority_boost,omitempty"`
	// ResolutionStatus holds the value of the "resolution_status" field.
	ResolutionStatus taskdiscovery.ResolutionStatus `json:"resolution_status,omitempty"`
	// DiscoveredAt holds the value of the "discovered_at" field.
	DiscoveredAt time.Time `json:"discovered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskDiscoveryQuery when eager-loading is set.
	Edges        TaskDiscoveryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskDiscoveryEdges holds the relations/edges for other nodes in the graph.
type TaskDiscoveryEdges struct {
	// SourceTask holds the value of the source_task edge.
	SourceTask *Task `json:"source_task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SourceTaskOrErr returns the SourceTask value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskDiscoveryEdges) SourceTaskOrErr() (*Task, error) {
	if e.SourceTask != nil {
		return e.SourceTask, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "source_task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskDiscovery) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskdiscovery.FieldSpawnedTaskIds:
			values[i] = new([]byte)
		case taskdiscovery.FieldPriorityBoost:
			values[i] = new(sql.NullBool)
		case taskdiscovery.FieldID, taskdiscovery.FieldSourceTaskID, taskdiscovery.FieldDiscoveryType, taskdiscovery.FieldDescription, taskdiscovery.FieldResolutionStatus:
			values[i] = new(sql.NullString)
		case taskdiscovery.FieldDiscoveredAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskDiscovery fields.
func (_m *TaskDiscovery) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskdiscovery.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskdiscovery.FieldSourceTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_task_id", values[i])
			} else if value.Valid {
				_m.SourceTaskID = value.String
			}
		case taskdiscovery.FieldDiscoveryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discovery_type", values[i])
			} else if value.Valid {
				_m.DiscoveryType = value.String
			}
		case taskdiscovery.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case taskdiscovery.FieldSpawnedTaskIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field spawned_task_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SpawnedTaskIds); err != nil {
					return fmt.Errorf("unmarshal field spawned_task_ids: %w", err)
				}
			}
		case taskdiscovery.FieldPriorityBoost:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field priority_boost", values[i])
			} else if value.Valid {
				_m.PriorityBoost = value.Bool
			}
		case taskdiscovery.FieldResolutionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolution_status", values[i])
			} else if value.Valid {
				_m.ResolutionStatus = taskdiscovery.ResolutionStatus(value.String)
			}
		case taskdiscovery.FieldDiscoveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field discovered_at", values[i])
			} else if value.Valid {
				_m.DiscoveredAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskDiscovery.
// This includes values selected through modifiers, order, etc.
func (_m *TaskDiscovery) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySourceTask queries the "source_task" edge of the TaskDiscovery entity.
func (_m *TaskDiscovery) QuerySourceTask() *TaskQuery {
	return NewTaskDiscoveryClient(_m.config).QuerySourceTask(_m)
}

// Update returns a builder for updating this TaskDiscovery.
// Note that you need to call TaskDiscovery.Unwrap() before calling this method if this TaskDiscovery
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskDiscovery) Update() *TaskDiscoveryUpdateOne {
	return NewTaskDiscoveryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskDiscovery entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskDiscovery) Unwrap() *TaskDiscovery {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskDiscovery is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskDiscovery) String() string {
	var builder strings.Builder
	builder.WriteString("TaskDiscovery(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_task_id=")
	builder.WriteString(_m.SourceTaskID)
	builder.WriteString(", ")
	builder.WriteString("discovery_type=")
	builder.WriteString(_m.DiscoveryType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("spawned_task_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpawnedTaskIds))
	builder.WriteString(", ")
	builder.WriteString("priority_boost=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorityBoost))
	builder.WriteString(", ")
	builder.WriteString("resolution_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolutionStatus))
	builder.WriteString(", ")
	builder.WriteString("discovered_at=")
	builder.WriteString(_m.DiscoveredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskDiscoveries is a parsable slice of TaskDiscovery.
type TaskDiscoveries []*TaskDiscovery
