// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/agentresult"
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
	"github.com/droverhq/drover/ent/taskmemory"
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/validationreview"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *TaskCreate) SetTicketID(v string) *TaskCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *TaskCreate) SetPhaseID(v string) *TaskCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v string) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTaskType(v *string) *TaskCreate {
	if v != nil {
		_c.SetTaskType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v task.Priority) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *task.Priority) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_c *TaskCreate) SetAssignedAgentID(v string) *TaskCreate {
	_c.mutation.SetAssignedAgentID(v)
	return _c
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAgentID(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignedAgentID(*v)
	}
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *TaskCreate) SetSandboxID(v string) *TaskCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableSandboxID(v *string) *TaskCreate {
	if v != nil {
		_c.SetSandboxID(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskCreate) SetResult(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TaskCreate) SetErrorMessage(v string) *TaskCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TaskCreate) SetNillableErrorMessage(v *string) *TaskCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskCreate) SetRetryCount(v int) *TaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TaskCreate) SetMaxRetries(v int) *TaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRetries(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetDeadlineAt sets the "deadline_at" field.
func (_c *TaskCreate) SetDeadlineAt(v time.Time) *TaskCreate {
	_c.mutation.SetDeadlineAt(v)
	return _c
}

// SetNillableDeadlineAt sets the "deadline_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeadlineAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeadlineAt(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *TaskCreate) SetScore(v float64) *TaskCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *TaskCreate) SetNillableScore(v *float64) *TaskCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetValidationEnabled sets the "validation_enabled" field.
func (_c *TaskCreate) SetValidationEnabled(v bool) *TaskCreate {
	_c.mutation.SetValidationEnabled(v)
	return _c
}

// SetNillableValidationEnabled sets the "validation_enabled" field if the given value is not nil.
func (_c *TaskCreate) SetNillableValidationEnabled(v *bool) *TaskCreate {
	if v != nil {
		_c.SetValidationEnabled(*v)
	}
	return _c
}

// SetValidationIteration sets the "validation_iteration" field.
func (_c *TaskCreate) SetValidationIteration(v int) *TaskCreate {
	_c.mutation.SetValidationIteration(v)
	return _c
}

// SetNillableValidationIteration sets the "validation_iteration" field if the given value is not nil.
func (_c *TaskCreate) SetNillableValidationIteration(v *int) *TaskCreate {
	if v != nil {
		_c.SetValidationIteration(*v)
	}
	return _c
}

// SetReviewDone sets the "review_done" field.
func (_c *TaskCreate) SetReviewDone(v bool) *TaskCreate {
	_c.mutation.SetReviewDone(v)
	return _c
}

// SetNillableReviewDone sets the "review_done" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReviewDone(v *bool) *TaskCreate {
	if v != nil {
		_c.SetReviewDone(*v)
	}
	return _c
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (_c *TaskCreate) SetLastValidationFeedback(v string) *TaskCreate {
	_c.mutation.SetLastValidationFeedback(v)
	return _c
}

// SetNillableLastValidationFeedback sets the "last_validation_feedback" field if the given value is not nil.
func (_c *TaskCreate) SetNillableLastValidationFeedback(v *string) *TaskCreate {
	if v != nil {
		_c.SetLastValidationFeedback(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *TaskCreate) SetCommitSha(v string) *TaskCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCommitSha(v *string) *TaskCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetOwnedFiles sets the "owned_files" field.
func (_c *TaskCreate) SetOwnedFiles(v []string) *TaskCreate {
	_c.mutation.SetOwnedFiles(v)
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *TaskCreate) SetDependencies(v map[string][]string) *TaskCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *TaskCreate) SetContentHash(v string) *TaskCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_c *TaskCreate) SetNillableContentHash(v *string) *TaskCreate {
	if v != nil {
		_c.SetContentHash(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *TaskCreate) SetClaimedAt(v time.Time) *TaskCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableClaimedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskCreate) SetID(v string) *TaskCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *TaskCreate) SetTicket(v *Ticket) *TaskCreate {
	return _c.SetTicketID(v.ID)
}

// AddMemoryIDs adds the "memories" edge to the TaskMemory entity by IDs.
func (_c *TaskCreate) AddMemoryIDs(ids ...string) *TaskCreate {
	_c.mutation.AddMemoryIDs(ids...)
	return _c
}

// AddMemories adds the "memories" edges to the TaskMemory entity.
func (_c *TaskCreate) AddMemories(v ...*TaskMemory) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemoryIDs(ids...)
}

// AddValidationReviewIDs adds the "validation_reviews" edge to the ValidationReview entity by IDs.
func (_c *TaskCreate) AddValidationReviewIDs(ids ...string) *TaskCreate {
	_c.mutation.AddValidationReviewIDs(ids...)
	return _c
}

// AddValidationReviews adds the "validation_reviews" edges to the ValidationReview entity.
func (_c *TaskCreate) AddValidationReviews(v ...*ValidationReview) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddValidationReviewIDs(ids...)
}

// AddDiscoveryIDs adds the "discoveries" edge to the TaskDiscovery entity by IDs.
func (_c *TaskCreate) AddDiscoveryIDs(ids ...string) *TaskCreate {
	_c.mutation.AddDiscoveryIDs(ids...)
	return _c
}

// AddDiscoveries adds the "discoveries" edges to the TaskDiscovery entity.
func (_c *TaskCreate) AddDiscoveries(v ...*TaskDiscovery) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDiscoveryIDs(ids...)
}

// AddAgentResultIDs adds the "agent_results" edge to the AgentResult entity by IDs.
func (_c *TaskCreate) AddAgentResultIDs(ids ...string) *TaskCreate {
	_c.mutation.AddAgentResultIDs(ids...)
	return _c
}

// AddAgentResults adds the "agent_results" edges to the AgentResult entity.
func (_c *TaskCreate) AddAgentResults(v ...*AgentResult) *TaskCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentResultIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.TaskType(); !ok {
		v := task.DefaultTaskType
		_c.mutation.SetTaskType(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := task.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := task.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := task.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		v := task.DefaultValidationEnabled
		_c.mutation.SetValidationEnabled(v)
	}
	if _, ok := _c.mutation.ValidationIteration(); !ok {
		v := task.DefaultValidationIteration
		_c.mutation.SetValidationIteration(v)
	}
	if _, ok := _c.mutation.ReviewDone(); !ok {
		v := task.DefaultReviewDone
		_c.mutation.SetReviewDone(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "Task.ticket_id"`)}
	}
	if _, ok := _c.mutation.PhaseID(); !ok {
		return &ValidationError{Name: "phase_id", err: errors.New(`ent: missing required field "Task.phase_id"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "Task.description"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Task.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Task.max_retries"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Task.score"`)}
	}
	if _, ok := _c.mutation.ValidationEnabled(); !ok {
		return &ValidationError{Name: "validation_enabled", err: errors.New(`ent: missing required field "Task.validation_enabled"`)}
	}
	if _, ok := _c.mutation.ValidationIteration(); !ok {
		return &ValidationError{Name: "validation_iteration", err: errors.New(`ent: missing required field "Task.validation_iteration"`)}
	}
	if _, ok := _c.mutation.ReviewDone(); !ok {
		return &ValidationError{Name: "review_done", err: errors.New(`ent: missing required field "Task.review_done"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := task.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Task.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "Task.ticket"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Task.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(task.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeString, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
		_node.AssignedAgentID = &value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(task.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.DeadlineAt(); ok {
		_spec.SetField(task.FieldDeadlineAt, field.TypeTime, value)
		_node.DeadlineAt = &value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(task.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.ValidationEnabled(); ok {
		_spec.SetField(task.FieldValidationEnabled, field.TypeBool, value)
		_node.ValidationEnabled = value
	}
	if value, ok := _c.mutation.ValidationIteration(); ok {
		_spec.SetField(task.FieldValidationIteration, field.TypeInt, value)
		_node.ValidationIteration = value
	}
	if value, ok := _c.mutation.ReviewDone(); ok {
		_spec.SetField(task.FieldReviewDone, field.TypeBool, value)
		_node.ReviewDone = value
	}
	if value, ok := _c.mutation.LastValidationFeedback(); ok {
		_spec.SetField(task.FieldLastValidationFeedback, field.TypeString, value)
		_node.LastValidationFeedback = &value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(task.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = &value
	}
	if value, ok := _c.mutation.OwnedFiles(); ok {
		_spec.SetField(task.FieldOwnedFiles, field.TypeJSON, value)
		_node.OwnedFiles = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(task.FieldContentHash, field.TypeString, value)
		_node.ContentHash = &value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(task.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.TicketTable,
			Columns: []string{task.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TicketID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MemoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.MemoriesTable,
			Columns: []string{task.MemoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskmemory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ValidationReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ValidationReviewsTable,
			Columns: []string{task.ValidationReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DiscoveriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.DiscoveriesTable,
			Columns: []string{task.DiscoveriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.AgentResultsTable,
			Columns: []string{task.AgentResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetPhaseID sets the "phase_id" field.
func (u *TaskUpsert) SetPhaseID(v string) *TaskUpsert {
	u.Set(task.FieldPhaseID, v)
	return u
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePhaseID() *TaskUpsert {
	u.SetExcluded(task.FieldPhaseID)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsert) SetTaskType(v string) *TaskUpsert {
	u.Set(task.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskType() *TaskUpsert {
	u.SetExcluded(task.FieldTaskType)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v task.Priority) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsert) SetAssignedAgentID(v string) *TaskUpsert {
	u.Set(task.FieldAssignedAgentID, v)
	return u
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAgentID() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAgentID)
	return u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsert) ClearAssignedAgentID() *TaskUpsert {
	u.SetNull(task.FieldAssignedAgentID)
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsert) SetSandboxID(v string) *TaskUpsert {
	u.Set(task.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateSandboxID() *TaskUpsert {
	u.SetExcluded(task.FieldSandboxID)
	return u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsert) ClearSandboxID() *TaskUpsert {
	u.SetNull(task.FieldSandboxID)
	return u
}

// SetResult sets the "result" field.
func (u *TaskUpsert) SetResult(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResult() *TaskUpsert {
	u.SetExcluded(task.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsert) ClearResult() *TaskUpsert {
	u.SetNull(task.FieldResult)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsert) SetErrorMessage(v string) *TaskUpsert {
	u.Set(task.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsert) UpdateErrorMessage() *TaskUpsert {
	u.SetExcluded(task.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsert) ClearErrorMessage() *TaskUpsert {
	u.SetNull(task.FieldErrorMessage)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsert) SetRetryCount(v int) *TaskUpsert {
	u.Set(task.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRetryCount() *TaskUpsert {
	u.SetExcluded(task.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsert) AddRetryCount(v int) *TaskUpsert {
	u.Add(task.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsert) SetMaxRetries(v int) *TaskUpsert {
	u.Set(task.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxRetries() *TaskUpsert {
	u.SetExcluded(task.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsert) AddMaxRetries(v int) *TaskUpsert {
	u.Add(task.FieldMaxRetries, v)
	return u
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *TaskUpsert) SetDeadlineAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldDeadlineAt, v)
	return u
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDeadlineAt() *TaskUpsert {
	u.SetExcluded(task.FieldDeadlineAt)
	return u
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *TaskUpsert) ClearDeadlineAt() *TaskUpsert {
	u.SetNull(task.FieldDeadlineAt)
	return u
}

// SetScore sets the "score" field.
func (u *TaskUpsert) SetScore(v float64) *TaskUpsert {
	u.Set(task.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsert) UpdateScore() *TaskUpsert {
	u.SetExcluded(task.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *TaskUpsert) AddScore(v float64) *TaskUpsert {
	u.Add(task.FieldScore, v)
	return u
}

// SetValidationEnabled sets the "validation_enabled" field.
func (u *TaskUpsert) SetValidationEnabled(v bool) *TaskUpsert {
	u.Set(task.FieldValidationEnabled, v)
	return u
}

// UpdateValidationEnabled sets the "validation_enabled" field to the value that was provided on create.
func (u *TaskUpsert) UpdateValidationEnabled() *TaskUpsert {
	u.SetExcluded(task.FieldValidationEnabled)
	return u
}

// SetValidationIteration sets the "validation_iteration" field.
func (u *TaskUpsert) SetValidationIteration(v int) *TaskUpsert {
	u.Set(task.FieldValidationIteration, v)
	return u
}

// UpdateValidationIteration sets the "validation_iteration" field to the value that was provided on create.
func (u *TaskUpsert) UpdateValidationIteration() *TaskUpsert {
	u.SetExcluded(task.FieldValidationIteration)
	return u
}

// AddValidationIteration adds v to the "validation_iteration" field.
func (u *TaskUpsert) AddValidationIteration(v int) *TaskUpsert {
	u.Add(task.FieldValidationIteration, v)
	return u
}

// SetReviewDone sets the "review_done" field.
func (u *TaskUpsert) SetReviewDone(v bool) *TaskUpsert {
	u.Set(task.FieldReviewDone, v)
	return u
}

// UpdateReviewDone sets the "review_done" field to the value that was provided on create.
func (u *TaskUpsert) UpdateReviewDone() *TaskUpsert {
	u.SetExcluded(task.FieldReviewDone)
	return u
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (u *TaskUpsert) SetLastValidationFeedback(v string) *TaskUpsert {
	u.Set(task.FieldLastValidationFeedback, v)
	return u
}

// UpdateLastValidationFeedback sets the "last_validation_feedback" field to the value that was provided on create.
func (u *TaskUpsert) UpdateLastValidationFeedback() *TaskUpsert {
	u.SetExcluded(task.FieldLastValidationFeedback)
	return u
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (u *TaskUpsert) ClearLastValidationFeedback() *TaskUpsert {
	u.SetNull(task.FieldLastValidationFeedback)
	return u
}

// SetCommitSha sets the "commit_sha" field.
func (u *TaskUpsert) SetCommitSha(v string) *TaskUpsert {
	u.Set(task.FieldCommitSha, v)
	return u
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCommitSha() *TaskUpsert {
	u.SetExcluded(task.FieldCommitSha)
	return u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *TaskUpsert) ClearCommitSha() *TaskUpsert {
	u.SetNull(task.FieldCommitSha)
	return u
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsert) SetOwnedFiles(v []string) *TaskUpsert {
	u.Set(task.FieldOwnedFiles, v)
	return u
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsert) UpdateOwnedFiles() *TaskUpsert {
	u.SetExcluded(task.FieldOwnedFiles)
	return u
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsert) ClearOwnedFiles() *TaskUpsert {
	u.SetNull(task.FieldOwnedFiles)
	return u
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsert) SetDependencies(v map[string][]string) *TaskUpsert {
	u.Set(task.FieldDependencies, v)
	return u
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDependencies() *TaskUpsert {
	u.SetExcluded(task.FieldDependencies)
	return u
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *TaskUpsert) ClearDependencies() *TaskUpsert {
	u.SetNull(task.FieldDependencies)
	return u
}

// SetContentHash sets the "content_hash" field.
func (u *TaskUpsert) SetContentHash(v string) *TaskUpsert {
	u.Set(task.FieldContentHash, v)
	return u
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *TaskUpsert) UpdateContentHash() *TaskUpsert {
	u.SetExcluded(task.FieldContentHash)
	return u
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *TaskUpsert) ClearContentHash() *TaskUpsert {
	u.SetNull(task.FieldContentHash)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsert) SetClaimedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateClaimedAt() *TaskUpsert {
	u.SetExcluded(task.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsert) ClearClaimedAt() *TaskUpsert {
	u.SetNull(task.FieldClaimedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(task.FieldID)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(task.FieldTicketID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *TaskUpsertOne) SetPhaseID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePhaseID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePhaseID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertOne) SetTaskType(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v task.Priority) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsertOne) SetAssignedAgentID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsertOne) ClearAssignedAgentID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsertOne) SetSandboxID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateSandboxID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsertOne) ClearSandboxID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSandboxID()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertOne) SetResult(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertOne) ClearResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertOne) SetErrorMessage(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertOne) ClearErrorMessage() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertOne) SetRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertOne) AddRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRetryCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertOne) SetMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertOne) AddMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxRetries() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *TaskUpsertOne) SetDeadlineAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDeadlineAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *TaskUpsertOne) ClearDeadlineAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetScore sets the "score" field.
func (u *TaskUpsertOne) SetScore(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TaskUpsertOne) AddScore(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateScore() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScore()
	})
}

// SetValidationEnabled sets the "validation_enabled" field.
func (u *TaskUpsertOne) SetValidationEnabled(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetValidationEnabled(v)
	})
}

// UpdateValidationEnabled sets the "validation_enabled" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateValidationEnabled() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateValidationEnabled()
	})
}

// SetValidationIteration sets the "validation_iteration" field.
func (u *TaskUpsertOne) SetValidationIteration(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetValidationIteration(v)
	})
}

// AddValidationIteration adds v to the "validation_iteration" field.
func (u *TaskUpsertOne) AddValidationIteration(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddValidationIteration(v)
	})
}

// UpdateValidationIteration sets the "validation_iteration" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateValidationIteration() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateValidationIteration()
	})
}

// SetReviewDone sets the "review_done" field.
func (u *TaskUpsertOne) SetReviewDone(v bool) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewDone(v)
	})
}

// UpdateReviewDone sets the "review_done" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateReviewDone() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewDone()
	})
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (u *TaskUpsertOne) SetLastValidationFeedback(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastValidationFeedback(v)
	})
}

// UpdateLastValidationFeedback sets the "last_validation_feedback" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateLastValidationFeedback() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastValidationFeedback()
	})
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (u *TaskUpsertOne) ClearLastValidationFeedback() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastValidationFeedback()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *TaskUpsertOne) SetCommitSha(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCommitSha() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *TaskUpsertOne) ClearCommitSha() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCommitSha()
	})
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsertOne) SetOwnedFiles(v []string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnedFiles(v)
	})
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateOwnedFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnedFiles()
	})
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsertOne) ClearOwnedFiles() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnedFiles()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsertOne) SetDependencies(v map[string][]string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDependencies() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *TaskUpsertOne) ClearDependencies() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependencies()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *TaskUpsertOne) SetContentHash(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateContentHash() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *TaskUpsertOne) ClearContentHash() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearContentHash()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsertOne) SetClaimedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateClaimedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsertOne) ClearClaimedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskUpsertOne.ID is not supported by MySQL driver. Use TaskUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(task.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(task.FieldID)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(task.FieldTicketID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *TaskUpsertBulk) SetPhaseID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePhaseID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePhaseID()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertBulk) SetTaskType(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v task.Priority) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (u *TaskUpsertBulk) SetAssignedAgentID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAgentID(v)
	})
}

// UpdateAssignedAgentID sets the "assigned_agent_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAgentID()
	})
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (u *TaskUpsertBulk) ClearAssignedAgentID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAgentID()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *TaskUpsertBulk) SetSandboxID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateSandboxID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *TaskUpsertBulk) ClearSandboxID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearSandboxID()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertBulk) SetResult(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertBulk) ClearResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *TaskUpsertBulk) SetErrorMessage(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *TaskUpsertBulk) ClearErrorMessage() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearErrorMessage()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertBulk) SetRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertBulk) AddRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRetryCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertBulk) SetMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertBulk) AddMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxRetries() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetDeadlineAt sets the "deadline_at" field.
func (u *TaskUpsertBulk) SetDeadlineAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeadlineAt(v)
	})
}

// UpdateDeadlineAt sets the "deadline_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDeadlineAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeadlineAt()
	})
}

// ClearDeadlineAt clears the value of the "deadline_at" field.
func (u *TaskUpsertBulk) ClearDeadlineAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeadlineAt()
	})
}

// SetScore sets the "score" field.
func (u *TaskUpsertBulk) SetScore(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *TaskUpsertBulk) AddScore(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateScore() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateScore()
	})
}

// SetValidationEnabled sets the "validation_enabled" field.
func (u *TaskUpsertBulk) SetValidationEnabled(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetValidationEnabled(v)
	})
}

// UpdateValidationEnabled sets the "validation_enabled" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateValidationEnabled() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateValidationEnabled()
	})
}

// SetValidationIteration sets the "validation_iteration" field.
func (u *TaskUpsertBulk) SetValidationIteration(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetValidationIteration(v)
	})
}

// AddValidationIteration adds v to the "validation_iteration" field.
func (u *TaskUpsertBulk) AddValidationIteration(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddValidationIteration(v)
	})
}

// UpdateValidationIteration sets the "validation_iteration" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateValidationIteration() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateValidationIteration()
	})
}

// SetReviewDone sets the "review_done" field.
func (u *TaskUpsertBulk) SetReviewDone(v bool) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewDone(v)
	})
}

// UpdateReviewDone sets the "review_done" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateReviewDone() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewDone()
	})
}

// SetLastValidationFeedback sets the "last_validation_feedback" field.
func (u *TaskUpsertBulk) SetLastValidationFeedback(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetLastValidationFeedback(v)
	})
}

// UpdateLastValidationFeedback sets the "last_validation_feedback" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateLastValidationFeedback() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateLastValidationFeedback()
	})
}

// ClearLastValidationFeedback clears the value of the "last_validation_feedback" field.
func (u *TaskUpsertBulk) ClearLastValidationFeedback() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearLastValidationFeedback()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *TaskUpsertBulk) SetCommitSha(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCommitSha() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *TaskUpsertBulk) ClearCommitSha() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCommitSha()
	})
}

// SetOwnedFiles sets the "owned_files" field.
func (u *TaskUpsertBulk) SetOwnedFiles(v []string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetOwnedFiles(v)
	})
}

// UpdateOwnedFiles sets the "owned_files" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateOwnedFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateOwnedFiles()
	})
}

// ClearOwnedFiles clears the value of the "owned_files" field.
func (u *TaskUpsertBulk) ClearOwnedFiles() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearOwnedFiles()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsertBulk) SetDependencies(v map[string][]string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDependencies() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependencies()
	})
}

// ClearDependencies clears the value of the "dependencies" field.
func (u *TaskUpsertBulk) ClearDependencies() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDependencies()
	})
}

// SetContentHash sets the "content_hash" field.
func (u *TaskUpsertBulk) SetContentHash(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetContentHash(v)
	})
}

// UpdateContentHash sets the "content_hash" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateContentHash() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateContentHash()
	})
}

// ClearContentHash clears the value of the "content_hash" field.
func (u *TaskUpsertBulk) ClearContentHash() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearContentHash()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *TaskUpsertBulk) SetClaimedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateClaimedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *TaskUpsertBulk) ClearClaimedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearClaimedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
