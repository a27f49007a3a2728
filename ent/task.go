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
	"github.com/droverhq/drover/ent/ticket"
)

// Task is the model entity for the Task schema.
type Task struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TicketID holds the value of the "ticket_id" field.
	TicketID string `json:"ticket_id,omitempty"`
	// Workflow phase this task is scoped to
	PhaseID string `json:"phase_id,omitempty"`
	// Free-form type; 'discovery_*' when spawned by the diagnostic engine
	TaskType string `json:"task_type,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Priority holds the value of the "priority" field.
	Priority task.Priority `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status task.Status `json:"status,omitempty"`
	// AssignedAgentID holds the value of the "assigned_agent_id" field.
	AssignedAgentID *string `json:"assigned_agent_id,omitempty"`
	// SandboxID holds the value of the "sandbox_id" field.
	SandboxID *string `json:"sandbox_id,omitempty"`
	// Structured completion payload reported by the worker
	Result map[string]interface{} `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// MaxRetries holds the value of the "max_retries" field.
	MaxRetries int `json:"max_retries,omitempty"`
	// DeadlineAt holds the value of the "deadline_at" field.
	DeadlineAt *time.Time `json:"deadline_at,omitempty"`
	// Dispatch priority in [0,1]; recomputed by the scorer
	Score float64 `json:"score,omitempty"`
	// ValidationEnabled holds the value of the "validation_enabled" field.
	ValidationEnabled bool `json:"validation_enabled,omitempty"`
	// Incremented on each submit for review; never decreases
	ValidationIteration int `json:"validation_iteration,omitempty"`
	// ReviewDone holds the value of the "review_done" field.
	ReviewDone bool `json:"review_done,omitempty"`
	// LastValidationFeedback holds the value of the "last_validation_feedback" field.
	LastValidationFeedback *string `json:"last_validation_feedback,omitempty"`
	// Required to enter under_review when validation is enabled
	CommitSha *string `json:"commit_sha,omitempty"`
	// POSIX-style glob patterns claimed by this task
	OwnedFiles []string `json:"owned_files,omitempty"`
	// {'depends_on': [task_id, ...]}; all must be completed before claim
	Dependencies map[string][]string `json:"dependencies,omitempty"`
	// SHA-256 of normalized description, for exact-match dedup
	ContentHash *string `json:"content_hash,omitempty"`
	// When the claim transaction moved the task to claiming; reaper threshold
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TaskQuery when eager-loading is set.
	Edges        TaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TaskEdges holds the relations/edges for other nodes in the graph.
type TaskEdges struct {
	// Ticket holds the value of the ticket edge.
	Ticket *Ticket `json:"ticket,omitempty"`
	// Memories holds the value of the memories edge.
	Memories []*TaskMemory `json:"memories,omitempty"`
	// ValidationReviews holds the value of the validation_reviews edge.
	ValidationReviews []*ValidationReview `json:"validation_reviews,omitempty"`
	// Discoveries holds the value of the discoveries edge.
	Discoveries []*TaskDiscovery `json:"discoveries,omitempty"`
	// AgentResults holds the value of the agent_results edge.
	AgentResults []*AgentResult `json:"agent_results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// TicketOrErr returns the Ticket value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TaskEdges) TicketOrErr() (*Ticket, error) {
	if e.Ticket != nil {
		return e.Ticket, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: ticket.Label}
	}
	return nil, &NotLoadedError{edge: "ticket"}
}

// MemoriesOrErr returns the Memories value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) MemoriesOrErr() ([]*TaskMemory, error) {
	if e.loadedTypes[1] {
		return e.Memories, nil
	}
	return nil, &NotLoadedError{edge: "memories"}
}

// ValidationReviewsOrErr returns the ValidationReviews value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) ValidationReviewsOrErr() ([]*ValidationReview, error) {
	if e.loadedTypes[2] {
		return e.ValidationReviews, nil
	}
	return nil, &NotLoadedError{edge: "validation_reviews"}
}

// DiscoveriesOrErr returns the Discoveries value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) DiscoveriesOrErr() ([]*TaskDiscovery, error) {
	if e.loadedTypes[3] {
		return e.Discoveries, nil
	}
	return nil, &NotLoadedError{edge: "discoveries"}
}

// AgentResultsOrErr returns the AgentResults value or an error if the edge
// was not loaded in eager-loading.
func (e TaskEdges) AgentResultsOrErr() ([]*AgentResult, error) {
	if e.loadedTypes[4] {
		return e.AgentResults, nil
	}
	return nil, &NotLoadedError{edge: "agent_results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Task) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case task.FieldResult, task.FieldOwnedFiles, task.FieldDependencies:
			values[i] = new([]byte)
		case task.FieldValidationEnabled, task.FieldReviewDone:
			values[i] = new(sql.NullBool)
		case task.FieldScore:
			values[i] = new(sql.NullFloat64)
		case task.FieldRetryCount, task.FieldMaxRetries, task.FieldValidationIteration:
			values[i] = new(sql.NullInt64)
		case task.FieldID, task.FieldTicketID, task.FieldPhaseID, task.FieldTaskType, task.FieldDescription, task.FieldPriority, task.FieldStatus, task.FieldAssignedAgentID, task.FieldSandboxID, task.FieldErrorMessage, task.FieldLastValidationFeedback, task.FieldCommitSha, task.FieldContentHash:
			values[i] = new(sql.NullString)
		case task.FieldDeadlineAt, task.FieldClaimedAt, task.FieldStartedAt, task.FieldCompletedAt, task.FieldCreatedAt, task.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Task fields.
func (_m *Task) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case task.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case task.FieldTicketID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ticket_id", values[i])
			} else if value.Valid {
				_m.TicketID = value.String
			}
		case task.FieldPhaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_id", values[i])
			} else if value.Valid {
				_m.PhaseID = value.String
			}
		case task.FieldTaskType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type", values[i])
			} else if value.Valid {
				_m.TaskType = value.String
			}
		case task.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case task.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = task.Priority(value.String)
			}
		case task.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = task.Status(value.String)
			}
		case task.FieldAssignedAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_agent_id", values[i])
			} else if value.Valid {
				_m.AssignedAgentID = new(string)
				*_m.AssignedAgentID = value.String
			}
		case task.FieldSandboxID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sandbox_id", values[i])
			} else if value.Valid {
				_m.SandboxID = new(string)
				*_m.SandboxID = value.String
			}
		case task.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case task.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case task.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case task.FieldMaxRetries:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_retries", values[i])
			} else if value.Valid {
				_m.MaxRetries = int(value.Int64)
			}
		case task.FieldDeadlineAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline_at", values[i])
			} else if value.Valid {
				_m.DeadlineAt = new(time.Time)
				*_m.DeadlineAt = value.Time
			}
		case task.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = value.Float64
			}
		case task.FieldValidationEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field validation_enabled", values[i])
			} else if value.Valid {
				_m.ValidationEnabled = value.Bool
			}
		case task.FieldValidationIteration:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field validation_iteration", values[i])
			} else if value.Valid {
				_m.ValidationIteration = int(value.Int64)
			}
		case task.FieldReviewDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field review_done", values[i])
			} else if value.Valid {
				_m.ReviewDone = value.Bool
			}
		case task.FieldLastValidationFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_validation_feedback", values[i])
			} else if value.Valid {
				_m.LastValidationFeedback = new(string)
				*_m.LastValidationFeedback = value.String
			}
		case task.FieldCommitSha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field commit_sha", values[i])
			} else if value.Valid {
				_m.CommitSha = new(string)
				*_m.CommitSha = value.String
			}
		case task.FieldOwnedFiles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field owned_files", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OwnedFiles); err != nil {
					return fmt.Errorf("unmarshal field owned_files: %w", err)
				}
			}
		case task.FieldDependencies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dependencies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dependencies); err != nil {
					return fmt.Errorf("unmarshal field dependencies: %w", err)
				}
			}
		case task.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = new(string)
				*_m.ContentHash = value.String
			}
		case task.FieldClaimedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field claimed_at", values[i])
			} else if value.Valid {
				_m.ClaimedAt = new(time.Time)
				*_m.ClaimedAt = value.Time
			}
		case task.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case task.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case task.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case task.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Task.
// This includes values selected through modifiers, order, etc.
func (_m *Task) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTicket queries the "ticket" edge of the Task entity.
func (_m *Task) QueryTicket() *TicketQuery {
	return NewTaskClient(_m.config).QueryTicket(_m)
}

// QueryMemories queries the "memories" edge of the Task entity.
func (_m *Task) QueryMemories() *TaskMemoryQuery {
	return NewTaskClient(_m.config).QueryMemories(_m)
}

// QueryValidationReviews queries the "validation_reviews" edge of the Task entity.
func (_m *Task) QueryValidationReviews() *ValidationReviewQuery {
	return NewTaskClient(_m.config).QueryValidationReviews(_m)
}

// QueryDiscoveries queries the "discoveries" edge of the Task entity.
func (_m *Task) QueryDiscoveries() *TaskDiscoveryQuery {
	return NewTaskClient(_m.config).QueryDiscoveries(_m)
}

// QueryAgentResults queries the "agent_results" edge of the Task entity.
func (_m *Task) QueryAgentResults() *AgentResultQuery {
	return NewTaskClient(_m.config).QueryAgentResults(_m)
}

// Update returns a builder for updating this Task.
// Note that you need to call Task.Unwrap() before calling this method if this Task
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Task) Update() *TaskUpdateOne {
	return NewTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Task entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Task) Unwrap() *Task {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Task is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Task) String() string {
	var builder strings.Builder
	builder.WriteString("Task(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("ticket_id=")
	builder.WriteString(_m.TicketID)
	builder.WriteString(", ")
	builder.WriteString("phase_id=")
	builder.WriteString(_m.PhaseID)
	builder.WriteString(", ")
	builder.WriteString("task_type=")
	builder.WriteString(_m.TaskType)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.AssignedAgentID; v != nil {
		builder.WriteString("assigned_agent_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SandboxID; v != nil {
		builder.WriteString("sandbox_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("max_retries=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxRetries))
	builder.WriteString(", ")
	if v := _m.DeadlineAt; v != nil {
		builder.WriteString("deadline_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("validation_enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationEnabled))
	builder.WriteString(", ")
	builder.WriteString("validation_iteration=")
	builder.WriteString(fmt.Sprintf("%v", _m.ValidationIteration))
	builder.WriteString(", ")
	builder.WriteString("review_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewDone))
	builder.WriteString(", ")
	if v := _m.LastValidationFeedback; v != nil {
		builder.WriteString("last_validation_feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CommitSha; v != nil {
		builder.WriteString("commit_sha=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("owned_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.OwnedFiles))
	builder.WriteString(", ")
	builder.WriteString("dependencies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dependencies))
	builder.WriteString(", ")
	if v := _m.ContentHash; v != nil {
		builder.WriteString("content_hash=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClaimedAt; v != nil {
		builder.WriteString("claimed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
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

// Tasks is a parsable slice of Task.
type Tasks []*Task
