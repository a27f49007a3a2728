// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/project"
	"github.com/droverhq/drover/ent/ticket"
)

// Ticket is the model entity for the Ticket schema.
type Ticket struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Current workflow phase (e.g., 'PHASE_IMPLEMENTATION')
	PhaseID string `json:"phase_id,omitempty"`
	// Status holds the value of the "status" field.
	Status ticket.Status `json:"status,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority ticket.Priority `json:"priority,omitempty"`
	// Optional project link; required for diagnostic clone readiness
	ProjectID *string `json:"project_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TicketQuery when eager-loading is set.
	Edges        TicketEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TicketEdges holds the relations/edges for other nodes in the graph.
type TicketEdges struct {
	// Tasks holds the value of the tasks edge.
	Tasks []*Task `json:"tasks,omitempty"`
	// PlaybookEntries holds the value of the playbook_entries edge.
	PlaybookEntries []*PlaybookEntry `json:"playbook_entries,omitempty"`
	// PlaybookChanges holds the value of the playbook_changes edge.
	PlaybookChanges []*PlaybookChange `json:"playbook_changes,omitempty"`
	// DiagnosticRuns holds the value of the diagnostic_runs edge.
	DiagnosticRuns []*DiagnosticRun `json:"diagnostic_runs,omitempty"`
	// WorkflowResults holds the value of the workflow_results edge.
	WorkflowResults []*WorkflowResult `json:"workflow_results,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) TasksOrErr() ([]*Task, error) {
	if e.loadedTypes[0] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// PlaybookEntriesOrErr returns the PlaybookEntries value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) PlaybookEntriesOrErr() ([]*PlaybookEntry, error) {
	if e.loadedTypes[1] {
		return e.PlaybookEntries, nil
	}
	return nil, &NotLoadedError{edge: "playbook_entries"}
}

// PlaybookChangesOrErr returns the PlaybookChanges value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) PlaybookChangesOrErr() ([]*PlaybookChange, error) {
	if e.loadedTypes[2] {
		return e.PlaybookChanges, nil
	}
	return nil, &NotLoadedError{edge: "playbook_changes"}
}

// DiagnosticRunsOrErr returns the DiagnosticRuns value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) DiagnosticRunsOrErr() ([]*DiagnosticRun, error) {
	if e.loadedTypes[3] {
		return e.DiagnosticRuns, nil
	}
	return nil, &NotLoadedError{edge: "diagnostic_runs"}
}

// WorkflowResultsOrErr returns the WorkflowResults value or an error if the edge
// was not loaded in eager-loading.
func (e TicketEdges) WorkflowResultsOrErr() ([]*WorkflowResult, error) {
	if e.loadedTypes[4] {
		return e.WorkflowResults, nil
	}
	return nil, &NotLoadedError{edge: "workflow_results"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TicketEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[5] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Ticket) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID, ticket.FieldTitle, ticket.FieldDescription, ticket.FieldPhaseID, ticket.FieldStatus, ticket.FieldPriority, ticket.FieldProjectID:
			values[i] = new(sql.NullString)
		case ticket.FieldCreatedAt, ticket.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Ticket fields.
func (_m *Ticket) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ticket.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ticket.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case ticket.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case ticket.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = value.String
			}
		case ticket.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ticket.Status(value.String)
			}
		case ticket.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = ticket.Priority(value.String)
			}
		case ticket.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = new(string)
				*_m.ProjectID = value.String
			}
		case ticket.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case ticket.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Ticket.
// This includes values selected through modifiers, order, etc.
func (_m *Ticket) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTasks queries the "tasks" edge of the Ticket entity.
func (_m *Ticket) QueryTasks() *TaskQuery {
	return NewTicketClient(_m.config).QueryTasks(_m)
}

// QueryPlaybookEntries queries the "playbook_entries" edge of the Ticket entity.
func (_m *Ticket) QueryPlaybookEntries() *PlaybookEntryQuery {
	return NewTicketClient(_m.config).QueryPlaybookEntries(_m)
}

// QueryPlaybookChanges queries the "playbook_changes" edge of the Ticket entity.
func (_m *Ticket) QueryPlaybookChanges() *PlaybookChangeQuery {
	return NewTicketClient(_m.config).QueryPlaybookChanges(_m)
}

// QueryDiagnosticRuns queries the "diagnostic_runs" edge of the Ticket entity.
func (_m *Ticket) QueryDiagnosticRuns() *DiagnosticRunQuery {
	return NewTicketClient(_m.config).QueryDiagnosticRuns(_m)
}

// QueryWorkflowResults queries the "workflow_results" edge of the Ticket entity.
func (_m *Ticket) QueryWorkflowResults() *WorkflowResultQuery {
	return NewTicketClient(_m.config).QueryWorkflowResults(_m)
}

// QueryProject queries the "project" edge of the Ticket entity.
func (_m *Ticket) QueryProject() *ProjectQuery {
	return NewTicketClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Ticket.
// Note that you need to call Ticket.Unwrap() before calling this method if this Ticket
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Ticket) Update() *TicketUpdateOne {
	return NewTicketClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Ticket entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Ticket) Unwrap() *Ticket {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Ticket is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Ticket) String() string {
	var builder strings.Builder
	builder.WriteString("Ticket(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("phase_id=")
	builder.WriteString(_m.PhaseID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	if v := _m.ProjectID; v != nil {
		builder.WriteString("project_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tickets is a parsable slice of Ticket.
type Tickets []*Ticket
