// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/ticket"
)

// DiagnosticRun is the model entity for the DiagnosticRun schema.
type DiagnosticRun struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Ticket under diagnosis
	WorkflowID string `json:"workflow_id,omitempty"`
	// stuck_workflow, repeated_validation_failures, or validation_timeout
	Trigger string `json:"trigger,omitempty"`
	// TriggeredAt holds the value of the "triggered_at" field.
	TriggeredAt time.Time `json:"triggered_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Task counts captured at trigger time
	TotalTasks int `json:"total_tasks,omitempty"`
	// CompletedTasks holds the value of the "completed_tasks" field.
	CompletedTasks int `json:"completed_tasks,omitempty"`
	// FailedTasks holds the value of the "failed_tasks" field.
	FailedTasks int `json:"failed_tasks,omitempty"`
	// PhasesAnalyzed holds the value of the "phases_analyzed" field.
	PhasesAnalyzed []string `json:"phases_analyzed,omitempty"`
	// AgentsReviewed holds the value of the "agents_reviewed" field.
	AgentsReviewed []string `json:"agents_reviewed,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis *string `json:"diagnosis,omitempty"`
	// TasksCreatedCount holds the value of the "tasks_created_count" field.
	TasksCreatedCount int `json:"tasks_created_count,omitempty"`
	// TasksCreatedIds holds the value of the "tasks_created_ids" field.
	TasksCreatedIds []string `json:"tasks_created_ids,omitempty"`
	// Status holds the value of the "status" field.
	Status diagnosticrun.Status `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DiagnosticRunQuery when eager-loading is set.
	Edges        DiagnosticRunEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DiagnosticRunEdges holds the relations/edges for other nodes in the graph.
type DiagnosticRunEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DiagnosticRunEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiagnosticRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diagnosticrun.FieldPhasesAnalyzed, diagnosticrun.FieldAgentsReviewed, diagnosticrun.FieldTasksCreatedIds:
			values[i] = new([]byte)
		case diagnosticrun.FieldTotalTasks, diagnosticrun.FieldCompletedTasks, diagnosticrun.FieldFailedTasks, diagnosticrun.FieldTasksCreatedCount:
			values[i] = new(sql.NullInt64)
		case diagnosticrun.FieldID, diagnosticrun.FieldWorkflowID, diagnosticrun.FieldTrigger, diagnosticrun.FieldDiagnosis, diagnosticrun.FieldStatus, diagnosticrun.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case diagnosticrun.FieldTriggeredAt, diagnosticrun.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiagnosticRun fields.
func (_m *DiagnosticRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diagnosticrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case diagnosticrun.FieldWorkflowID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_id", values[i])
			} else if value.Valid {
				_m.WorkflowID = value.String
			}
		case diagnosticrun.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = value.String
			}
		case diagnosticrun.FieldTriggeredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field triggered_at", values[i])
			} else if value.Valid {
				_m.TriggeredAt = value.Time
			}
		case diagnosticrun.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case diagnosticrun.FieldTotalTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tasks", values[i])
			} else if value.Valid {
				_m.TotalTasks = int(value.Int64)
			}
		case diagnosticrun.FieldCompletedTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_tasks", values[i])
			} else if value.Valid {
				_m.CompletedTasks = int(value.Int64)
			}
		case diagnosticrun.FieldFailedTasks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_tasks", values[i])
			} else if value.Valid {
				_m.FailedTasks = int(value.Int64)
			}
		case diagnosticrun.FieldPhasesAnalyzed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phases_analyzed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhasesAnalyzed); err != nil {
					return fmt.Errorf("unmarshal field phases_analyzed: %w", err)
				}
			}
		case diagnosticrun.FieldAgentsReviewed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field agents_reviewed", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AgentsReviewed); err != nil {
					return fmt.Errorf("unmarshal field agents_reviewed: %w", err)
				}
			}
		case diagnosticrun.FieldDiagnosis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value.Valid {
				_m.Diagnosis = new(string)
				*_m.Diagnosis = value.String
			}
		case diagnosticrun.FieldTasksCreatedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_created_count", values[i])
			} else if value.Valid {
				_m.TasksCreatedCount = int(value.Int64)
			}
		case diagnosticrun.FieldTasksCreatedIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tasks_created_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TasksCreatedIds); err != nil {
					return fmt.Errorf("unmarshal field tasks_created_ids: %w", err)
				}
			}
		case diagnosticrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = diagnosticrun.Status(value.String)
			}
		case diagnosticrun.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiagnosticRun.
// This includes values selected through modifiers, order, etc.
func (_m *DiagnosticRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the DiagnosticRun entity.
func (_m *DiagnosticRun) QueryTicket() *TicketQuery {
	return NewDiagnosticRunClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this DiagnosticRun.
// Note that you need to call DiagnosticRun.Unwrap() before calling this method if this DiagnosticRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiagnosticRun) Update() *DiagnosticRunUpdateOne {
	return NewDiagnosticRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiagnosticRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiagnosticRun) Unwrap() *DiagnosticRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiagnosticRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiagnosticRun) String() string {
	var builder strings.Builder
	builder.WriteString("DiagnosticRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("workflow_id=")
	builder.WriteString(_m.WorkflowID)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(_m.Trigger)
	builder.WriteString(", ")
	builder.WriteString("triggered_at=")
	builder.WriteString(_m.TriggeredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTasks))
	builder.WriteString(", ")
	builder.WriteString("completed_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedTasks))
	builder.WriteString(", ")
	builder.WriteString("failed_tasks=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedTasks))
	builder.WriteString(", ")
	builder.WriteString("phases_analyzed=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhasesAnalyzed))
	builder.WriteString(", ")
	builder.WriteString("agents_reviewed=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentsReviewed))
	builder.WriteString(", ")
	if v := _m.Diagnosis; v != nil {
		builder.WriteString("diagnosis=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tasks_created_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCreatedCount))
	builder.WriteString(", ")
	builder.WriteString("tasks_created_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.TasksCreatedIds))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DiagnosticRuns is a parsable slice of DiagnosticRun.
type DiagnosticRuns []*DiagnosticRun
