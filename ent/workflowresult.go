// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/workflowresult"
)

// WorkflowResult is the model entity for the WorkflowResult schema.
type WorkflowResult struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// Validated path to the submitted markdown deliverable
	MarkdownFilePath string `json:"markdown_file_path,omitempty"`
	// Status holds the value of the "status" field.
	Status workflowresult.Status `json:"status,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy *string `json:"submitted_by,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// ValidatedAt holds the value of the "validated_at" field.
	ValidatedAt *time.Time `json:"validated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowResultQuery when eager-loading is set.
	Edges        WorkflowResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowResultEdges holds the relations/edges for other nodes in the graph.
type WorkflowResultEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WorkflowResultEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowresult.FieldID, workflowresult.FieldTicketID, workflowresult.FieldMarkdownFilePath, workflowresult.FieldStatus, workflowresult.FieldSubmittedBy, workflowresult.FieldSummary:
			values[i] = new(sql.NullString)
		case workflowresult.FieldValidatedAt, workflowresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowResult fields.
func (_m *WorkflowResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowresult.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case workflowresult.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case workflowresult.FieldMarkdownFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field markdown_file_path", values[i])
			} else if value.Valid {
				_m.MarkdownFilePath = value.String
			}
		case workflowresult.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = workflowresult.Status(value.String)
			}
		case workflowresult.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = new(string)
				*_m.SubmittedBy = value.String
			}
		case workflowresult.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case workflowresult.FieldValidatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field validated_at", values[i])
			} else if value.Valid {
				_m.ValidatedAt = new(time.Time)
				*_m.ValidatedAt = value.Time
			}
		case workflowresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowResult.
// This includes values selected through modifiers, order, etc.
func (_m *WorkflowResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the WorkflowResult entity.
func (_m *WorkflowResult) QueryTicket() *TicketQuery {
	return NewWorkflowResultClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this WorkflowResult.
// Note that you need to call WorkflowResult.Unwrap() before calling this method if this WorkflowResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WorkflowResult) Update() *WorkflowResultUpdateOne {
	return NewWorkflowResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WorkflowResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WorkflowResult) Unwrap() *WorkflowResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WorkflowResult) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("markdown_file_path=")
	builder.WriteString(_m.MarkdownFilePath)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SubmittedBy; v != nil {
		builder.WriteString("submitted_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ValidatedAt; v != nil {
		builder.WriteString("validated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowResults is a parsable slice of WorkflowResult.
type WorkflowResults []*WorkflowResult
