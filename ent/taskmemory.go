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
	"github.com/droverhq/drover/ent/taskmemory"
	pgvector "github.com/pgvector/pgvector-go"
)

// TaskMemory is the model entity for the TaskMemory schema.
type TaskMemory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID string `json:"task_id,omitempty"`
	// ExecutionSummary holds the value of the "execution_summary" field.
	ExecutionSummary string `json:"execution_summary,omitempty"`
	// MemoryType holds the value of the "memory_type" field.
	MemoryType taskmemory.MemoryType `json:"memory_type,omitempty"`
	// Embedding of goal+result+feedback; zero vector when the gateway was unavailable
	ContextEmbedding pgvector.Vector `json:"context_embedding,omitempty"`
	// Success holds the value of the "success" field.
	Success bool `json:"success,omitempty"`
	// ErrorPatterns holds the value of the "error_patterns" field.
	ErrorPatterns []string `json:"error_patterns,omitempty"`
	// Goal holds the value of the "goal" field.
	Goal *string `json:"goal,omitempty"`
	// Result holds the value of the "result" field.
	Result *string `json:"result,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback *string `json:"feedback,omitempty"`
	// Raw tool invocations reported by the worker
	ToolUsage []map[string]interface{} `json:"tool_usage,omitempty"`
	// Monotonic; incremented when the memory informs a later task
	ReusedCount int `json:"reused_count,omitempty"`
	// LearnedAt holds the value of the "learned_at" field.
	LearnedAt time.Time `json:"learned_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskMemoryQuery when eager-loading is set.
	Edges        TaskMemoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskMemoryEdges holds the relations/edges for other nodes in the graph.
type TaskMemoryEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskMemoryEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TaskMemory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case taskmemory.FieldErrorPatterns, taskmemory.FieldToolUsage:
			values[i] = new([]byte)
		case taskmemory.FieldContextEmbedding:
			values[i] = new(pgvector.Vector)
		case taskmemory.FieldSuccess:
			values[i] = new(sql.NullBool)
		case taskmemory.FieldReusedCount:
			values[i] = new(sql.NullInt64)
		case taskmemory.FieldID, taskmemory.FieldTaskID, taskmemory.FieldExecutionSummary, taskmemory.FieldMemoryType, taskmemory.FieldGoal, taskmemory.FieldResult, taskmemory.FieldFeedback:
			values[i] = new(sql.NullString)
		case taskmemory.FieldLearnedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TaskMemory fields.
func (_m *TaskMemory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case taskmemory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case taskmemory.FieldTaskID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = value.String
			}
		case taskmemory.FieldExecutionSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_summary", values[i])
			} else if value.Valid {
				_m.ExecutionSummary = value.String
			}
		case taskmemory.FieldMemoryType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field memory_type", values[i])
			} else if value.Valid {
				_m.MemoryType = taskmemory.MemoryType(value.String)
			}
		case taskmemory.FieldContextEmbedding:
			if value, ok := values[i].(*pgvector.Vector); !ok {
				return fmt.Errorf("unexpected type %T for field context_embedding", values[i])
			} else if value != nil {
				_m.ContextEmbedding = *value
			}
		case taskmemory.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case taskmemory.FieldErrorPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorPatterns); err != nil {
					return fmt.Errorf("unmarshal field error_patterns: %w", err)
				}
			}
		case taskmemory.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = new(string)
				*_m.Goal = value.String
			}
		case taskmemory.FieldResult:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value.Valid {
				_m.Result = new(string)
				*_m.Result = value.String
			}
		case taskmemory.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case taskmemory.FieldToolUsage:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tool_usage", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ToolUsage); err != nil {
					return fmt.Errorf("unmarshal field tool_usage: %w", err)
				}
			}
		case taskmemory.FieldReusedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field reused_count", values[i])
			} else if value.Valid {
				_m.ReusedCount = int(value.Int64)
			}
		case taskmemory.FieldLearnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field learned_at", values[i])
			} else if value.Valid {
				_m.LearnedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TaskMemory.
// This includes values selected through modifiers, order, etc.
func (_m *TaskMemory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TaskMemory entity.
func (_m *TaskMemory) QueryTask() *TaskQuery {
	return NewTaskMemoryClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this TaskMemory.
// Note that you need to call TaskMemory.Unwrap() before calling this method if this TaskMemory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TaskMemory) Update() *TaskMemoryUpdateOne {
	return NewTaskMemoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TaskMemory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TaskMemory) Unwrap() *TaskMemory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TaskMemory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TaskMemory) String() string {
	var builder strings.Builder
	builder.WriteString("TaskMemory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("task_id=")
	builder.WriteString(_m.TaskID)
	builder.WriteString(", ")
	builder.WriteString("execution_summary=")
	builder.WriteString(_m.ExecutionSummary)
	builder.WriteString(", ")
	builder.WriteString("memory_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemoryType))
	builder.WriteString(", ")
	builder.WriteString("context_embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContextEmbedding))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("error_patterns=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorPatterns))
	builder.WriteString(", ")
	if v := _m.Goal; v != nil {
		builder.WriteString("goal=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Result; v != nil {
		builder.WriteString("result=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tool_usage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ToolUsage))
	builder.WriteString(", ")
	builder.WriteString("reused_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReusedCount))
	builder.WriteString(", ")
	builder.WriteString("learned_at=")
	builder.WriteString(_m.LearnedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TaskMemories is a parsable slice of TaskMemory.
type TaskMemories []*TaskMemory
