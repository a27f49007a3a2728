// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/ticket"
)

// PlaybookChange is the model entity for the PlaybookChange schema.
type PlaybookChange struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// ChangeType holds the value of the "change_type" field.
	ChangeType playbookchange.ChangeType `json:"change_type,omitempty"`
	// Playbook category the delta applied to
	Section string `json:"section,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Reasoning holds the value of the "reasoning" field.
	Reasoning *string `json:"reasoning,omitempty"`
	// RelatedMemoryID holds the value of the "related_memory_id" field.
	RelatedMemoryID *string `json:"related_memory_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy *string `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlaybookChangeQuery when eager-loading is set.
	Edges        PlaybookChangeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlaybookChangeEdges holds the relations/edges for other nodes in the graph.
type PlaybookChangeEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlaybookChangeEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlaybookChange) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case playbookchange.FieldID, playbookchange.FieldTicketID, playbookchange.FieldChangeType, playbookchange.FieldSection, playbookchange.FieldContent, playbookchange.FieldReasoning, playbookchange.FieldRelatedMemoryID, playbookchange.FieldCreatedBy:
			values[i] = new(sql.NullString)
		case playbookchange.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlaybookChange fields.
func (_m *PlaybookChange) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case playbookchange.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case playbookchange.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case playbookchange.FieldChangeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field change_type", values[i])
			} else if value.Valid {
				_m.ChangeType = playbookchange.ChangeType(value.String)
			}
		case playbookchange.FieldSection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field section", values[i])
			} else if value.Valid {
				_m.Section = value.String
			}
		case playbookchange.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case playbookchange.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = new(string)
				*_m.Reasoning = value.String
			}
		case playbookchange.FieldRelatedMemoryID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field related_memory_id", values[i])
			} else if value.Valid {
				_m.RelatedMemoryID = new(string)
				*_m.RelatedMemoryID = value.String
			}
		case playbookchange.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(string)
				*_m.CreatedBy = value.String
			}
		case playbookchange.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PlaybookChange.
// This includes values selected through modifiers, order, etc.
func (_m *PlaybookChange) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the PlaybookChange entity.
func (_m *PlaybookChange) QueryTicket() *TicketQuery {
	return NewPlaybookChangeClient(_m.config).QueryTicket(_m)
}

// Update returns a builder for updating this PlaybookChange.
// Note that you need to call PlaybookChange.Unwrap() before calling this method if this PlaybookChange
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlaybookChange) Update() *PlaybookChangeUpdateOne {
	return NewPlaybookChangeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlaybookChange entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlaybookChange) Unwrap() *PlaybookChange {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlaybookChange is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlaybookChange) String() string {
	var builder strings.Builder
	builder.WriteString("PlaybookChange(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("change_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChangeType))
	builder.WriteString(", ")
	builder.WriteString("section=")
	builder.WriteString(_m.Section)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.Reasoning; v != nil {
		builder.WriteString("reasoning=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RelatedMemoryID; v != nil {
		builder.WriteString("related_memory_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlaybookChanges is a parsable slice of PlaybookChange.
type PlaybookChanges []*PlaybookChange
