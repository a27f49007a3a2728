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
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/ticket"
)

// DiagnosticRunCreate is the builder for creating a DiagnosticRun entity.
type DiagnosticRunCreate struct {
	config
	mutation *DiagnosticRunMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetWorkflowID sets the "workflow_id" field.
func (_c *DiagnosticRunCreate) SetWorkflowID(v string) *DiagnosticRunCreate {
	_c.mutation.SetWorkflowID(v)
	return _c
}

// SetTrigger sets the "trigger" field.
func (_c *DiagnosticRunCreate) SetTrigger(v string) *DiagnosticRunCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableTrigger(v *string) *DiagnosticRunCreate {
	if v != nil {
		_c.SetTrigger(*v)
	}
	return _c
}

// SetTriggeredAt sets the "triggered_at" field.
func (_c *DiagnosticRunCreate) SetTriggeredAt(v time.Time) *DiagnosticRunCreate {
	_c.mutation.SetTriggeredAt(v)
	return _c
}

// SetNillableTriggeredAt sets the "triggered_at" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableTriggeredAt(v *time.Time) *DiagnosticRunCreate {
	if v != nil {
		_c.SetTriggeredAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DiagnosticRunCreate) SetCompletedAt(v time.Time) *DiagnosticRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableCompletedAt(v *time.Time) *DiagnosticRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *DiagnosticRunCreate) SetTotalTasks(v int) *DiagnosticRunCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableTotalTasks(v *int) *DiagnosticRunCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_c *DiagnosticRunCreate) SetCompletedTasks(v int) *DiagnosticRunCreate {
	_c.mutation.SetCompletedTasks(v)
	return _c
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableCompletedTasks(v *int) *DiagnosticRunCreate {
	if v != nil {
		_c.SetCompletedTasks(*v)
	}
	return _c
}

// SetFailedTasks sets the "failed_tasks" field.
func (_c *DiagnosticRunCreate) SetFailedTasks(v int) *DiagnosticRunCreate {
	_c.mutation.SetFailedTasks(v)
	return _c
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableFailedTasks(v *int) *DiagnosticRunCreate {
	if v != nil {
		_c.SetFailedTasks(*v)
	}
	return _c
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (_c *DiagnosticRunCreate) SetPhasesAnalyzed(v []string) *DiagnosticRunCreate {
	_c.mutation.SetPhasesAnalyzed(v)
	return _c
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (_c *DiagnosticRunCreate) SetAgentsReviewed(v []string) *DiagnosticRunCreate {
	_c.mutation.SetAgentsReviewed(v)
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *DiagnosticRunCreate) SetDiagnosis(v string) *DiagnosticRunCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableDiagnosis(v *string) *DiagnosticRunCreate {
	if v != nil {
		_c.SetDiagnosis(*v)
	}
	return _c
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (_c *DiagnosticRunCreate) SetTasksCreatedCount(v int) *DiagnosticRunCreate {
	_c.mutation.SetTasksCreatedCount(v)
	return _c
}

// SetNillableTasksCreatedCount sets the "tasks_created_count" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableTasksCreatedCount(v *int) *DiagnosticRunCreate {
	if v != nil {
		_c.SetTasksCreatedCount(*v)
	}
	return _c
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_c *DiagnosticRunCreate) SetTasksCreatedIds(v []string) *DiagnosticRunCreate {
	_c.mutation.SetTasksCreatedIds(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DiagnosticRunCreate) SetStatus(v diagnosticrun.Status) *DiagnosticRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DiagnosticRunCreate) SetErrorMessage(v string) *DiagnosticRunCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DiagnosticRunCreate) SetNillableErrorMessage(v *string) *DiagnosticRunCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiagnosticRunCreate) SetID(v string) *DiagnosticRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicketID sets the "ticket" edge to the Ticket entity by ID.
func (_c *DiagnosticRunCreate) SetTicketID(id string) *DiagnosticRunCreate {
	_c.mutation.SetTicketID(id)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *DiagnosticRunCreate) SetTicket(v *Ticket) *DiagnosticRunCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_c *DiagnosticRunCreate) Mutation() *DiagnosticRunMutation {
	return _c.mutation
}

// Save creates the DiagnosticRun in the database.
func (_c *DiagnosticRunCreate) Save(ctx context.Context) (*DiagnosticRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiagnosticRunCreate) SaveX(ctx context.Context) *DiagnosticRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiagnosticRunCreate) defaults() {
	if _, ok := _c.mutation.Trigger(); !ok {
		v := diagnosticrun.DefaultTrigger
		_c.mutation.SetTrigger(v)
	}
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		v := diagnosticrun.DefaultTriggeredAt()
		_c.mutation.SetTriggeredAt(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := diagnosticrun.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		v := diagnosticrun.DefaultCompletedTasks
		_c.mutation.SetCompletedTasks(v)
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		v := diagnosticrun.DefaultFailedTasks
		_c.mutation.SetFailedTasks(v)
	}
	if _, ok := _c.mutation.TasksCreatedCount(); !ok {
		v := diagnosticrun.DefaultTasksCreatedCount
		_c.mutation.SetTasksCreatedCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := diagnosticrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiagnosticRunCreate) check() error {
	if _, ok := _c.mutation.WorkflowID(); !ok {
		return &ValidationError{Name: "workflow_id", err: errors.New(`ent: missing required field "DiagnosticRun.workflow_id"`)}
	}
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "DiagnosticRun.trigger"`)}
	}
	if _, ok := _c.mutation.TriggeredAt(); !ok {
		return &ValidationError{Name: "triggered_at", err: errors.New(`ent: missing required field "DiagnosticRun.triggered_at"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "DiagnosticRun.total_tasks"`)}
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		return &ValidationError{Name: "completed_tasks", err: errors.New(`ent: missing required field "DiagnosticRun.completed_tasks"`)}
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		return &ValidationError{Name: "failed_tasks", err: errors.New(`ent: missing required field "DiagnosticRun.failed_tasks"`)}
	}
	if _, ok := _c.mutation.TasksCreatedCount(); !ok {
		return &ValidationError{Name: "tasks_created_count", err: errors.New(`ent: missing required field "DiagnosticRun.tasks_created_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DiagnosticRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "DiagnosticRun.ticket"`)}
	}
	return nil
}

func (_c *DiagnosticRunCreate) sqlSave(ctx context.Context) (*DiagnosticRun, error) {
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
			return nil, fmt.Errorf("unexpected DiagnosticRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiagnosticRunCreate) createSpec() (*DiagnosticRun, *sqlgraph.CreateSpec) {
	var (
		_node = &DiagnosticRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diagnosticrun.Table, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(diagnosticrun.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.TriggeredAt(); ok {
		_spec.SetField(diagnosticrun.FieldTriggeredAt, field.TypeTime, value)
		_node.TriggeredAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(diagnosticrun.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CompletedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedTasks, field.TypeInt, value)
		_node.CompletedTasks = value
	}
	if value, ok := _c.mutation.FailedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldFailedTasks, field.TypeInt, value)
		_node.FailedTasks = value
	}
	if value, ok := _c.mutation.PhasesAnalyzed(); ok {
		_spec.SetField(diagnosticrun.FieldPhasesAnalyzed, field.TypeJSON, value)
		_node.PhasesAnalyzed = value
	}
	if value, ok := _c.mutation.AgentsReviewed(); ok {
		_spec.SetField(diagnosticrun.FieldAgentsReviewed, field.TypeJSON, value)
		_node.AgentsReviewed = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
		_node.Diagnosis = &value
	}
	if value, ok := _c.mutation.TasksCreatedCount(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedCount, field.TypeInt, value)
		_node.TasksCreatedCount = value
	}
	if value, ok := _c.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
		_node.TasksCreatedIds = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(diagnosticrun.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   diagnosticrun.TicketTable,
			Columns: []string{diagnosticrun.TicketColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ticket.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WorkflowID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiagnosticRun.Create().
//		SetWorkflowID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosticRunUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosticRunCreate) OnConflict(opts ...sql.ConflictOption) *DiagnosticRunUpsertOne {
	_c.conflict = opts
	return &DiagnosticRunUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosticRunCreate) OnConflictColumns(columns ...string) *DiagnosticRunUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosticRunUpsertOne{
		create: _c,
	}
}

type (
	// DiagnosticRunUpsertOne is the builder for "upsert"-ing
	//  one DiagnosticRun node.
	DiagnosticRunUpsertOne struct {
		create *DiagnosticRunCreate
	}

	// DiagnosticRunUpsert is the "OnConflict" setter.
	DiagnosticRunUpsert struct {
		*sql.UpdateSet
	}
)

// SetTrigger sets the "trigger" field.
func (u *DiagnosticRunUpsert) SetTrigger(v string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldTrigger, v)
	return u
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateTrigger() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldTrigger)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *DiagnosticRunUpsert) SetCompletedAt(v time.Time) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateCompletedAt() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *DiagnosticRunUpsert) ClearCompletedAt() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldCompletedAt)
	return u
}

// SetTotalTasks sets the "total_tasks" field.
func (u *DiagnosticRunUpsert) SetTotalTasks(v int) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldTotalTasks, v)
	return u
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateTotalTasks() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldTotalTasks)
	return u
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *DiagnosticRunUpsert) AddTotalTasks(v int) *DiagnosticRunUpsert {
	u.Add(diagnosticrun.FieldTotalTasks, v)
	return u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *DiagnosticRunUpsert) SetCompletedTasks(v int) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldCompletedTasks, v)
	return u
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateCompletedTasks() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldCompletedTasks)
	return u
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *DiagnosticRunUpsert) AddCompletedTasks(v int) *DiagnosticRunUpsert {
	u.Add(diagnosticrun.FieldCompletedTasks, v)
	return u
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *DiagnosticRunUpsert) SetFailedTasks(v int) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldFailedTasks, v)
	return u
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateFailedTasks() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldFailedTasks)
	return u
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *DiagnosticRunUpsert) AddFailedTasks(v int) *DiagnosticRunUpsert {
	u.Add(diagnosticrun.FieldFailedTasks, v)
	return u
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (u *DiagnosticRunUpsert) SetPhasesAnalyzed(v []string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldPhasesAnalyzed, v)
	return u
}

// UpdatePhasesAnalyzed sets the "phases_analyzed" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdatePhasesAnalyzed() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldPhasesAnalyzed)
	return u
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (u *DiagnosticRunUpsert) ClearPhasesAnalyzed() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldPhasesAnalyzed)
	return u
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (u *DiagnosticRunUpsert) SetAgentsReviewed(v []string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldAgentsReviewed, v)
	return u
}

// UpdateAgentsReviewed sets the "agents_reviewed" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateAgentsReviewed() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldAgentsReviewed)
	return u
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (u *DiagnosticRunUpsert) ClearAgentsReviewed() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldAgentsReviewed)
	return u
}

// SetDiagnosis sets the "diagnosis" field.
func (u *DiagnosticRunUpsert) SetDiagnosis(v string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldDiagnosis, v)
	return u
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateDiagnosis() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldDiagnosis)
	return u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *DiagnosticRunUpsert) ClearDiagnosis() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldDiagnosis)
	return u
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (u *DiagnosticRunUpsert) SetTasksCreatedCount(v int) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldTasksCreatedCount, v)
	return u
}

// UpdateTasksCreatedCount sets the "tasks_created_count" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateTasksCreatedCount() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldTasksCreatedCount)
	return u
}

// AddTasksCreatedCount adds v to the "tasks_created_count" field.
func (u *DiagnosticRunUpsert) AddTasksCreatedCount(v int) *DiagnosticRunUpsert {
	u.Add(diagnosticrun.FieldTasksCreatedCount, v)
	return u
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (u *DiagnosticRunUpsert) SetTasksCreatedIds(v []string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldTasksCreatedIds, v)
	return u
}

// UpdateTasksCreatedIds sets the "tasks_created_ids" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateTasksCreatedIds() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldTasksCreatedIds)
	return u
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (u *DiagnosticRunUpsert) ClearTasksCreatedIds() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldTasksCreatedIds)
	return u
}

// SetStatus sets the "status" field.
func (u *DiagnosticRunUpsert) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateStatus() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DiagnosticRunUpsert) SetErrorMessage(v string) *DiagnosticRunUpsert {
	u.Set(diagnosticrun.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DiagnosticRunUpsert) UpdateErrorMessage() *DiagnosticRunUpsert {
	u.SetExcluded(diagnosticrun.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DiagnosticRunUpsert) ClearErrorMessage() *DiagnosticRunUpsert {
	u.SetNull(diagnosticrun.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosticrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosticRunUpsertOne) UpdateNewValues() *DiagnosticRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(diagnosticrun.FieldID)
		}
		if _, exists := u.create.mutation.WorkflowID(); exists {
			s.SetIgnore(diagnosticrun.FieldWorkflowID)
		}
		if _, exists := u.create.mutation.TriggeredAt(); exists {
			s.SetIgnore(diagnosticrun.FieldTriggeredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DiagnosticRunUpsertOne) Ignore() *DiagnosticRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosticRunUpsertOne) DoNothing() *DiagnosticRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosticRunCreate.OnConflict
// documentation for more info.
func (u *DiagnosticRunUpsertOne) Update(set func(*DiagnosticRunUpsert)) *DiagnosticRunUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosticRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTrigger sets the "trigger" field.
func (u *DiagnosticRunUpsertOne) SetTrigger(v string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateTrigger() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTrigger()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *DiagnosticRunUpsertOne) SetCompletedAt(v time.Time) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateCompletedAt() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *DiagnosticRunUpsertOne) ClearCompletedAt() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTotalTasks sets the "total_tasks" field.
func (u *DiagnosticRunUpsertOne) SetTotalTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTotalTasks(v)
	})
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *DiagnosticRunUpsertOne) AddTotalTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddTotalTasks(v)
	})
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateTotalTasks() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTotalTasks()
	})
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *DiagnosticRunUpsertOne) SetCompletedTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetCompletedTasks(v)
	})
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *DiagnosticRunUpsertOne) AddCompletedTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddCompletedTasks(v)
	})
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateCompletedTasks() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateCompletedTasks()
	})
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *DiagnosticRunUpsertOne) SetFailedTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetFailedTasks(v)
	})
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *DiagnosticRunUpsertOne) AddFailedTasks(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddFailedTasks(v)
	})
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateFailedTasks() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateFailedTasks()
	})
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (u *DiagnosticRunUpsertOne) SetPhasesAnalyzed(v []string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetPhasesAnalyzed(v)
	})
}

// UpdatePhasesAnalyzed sets the "phases_analyzed" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdatePhasesAnalyzed() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdatePhasesAnalyzed()
	})
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (u *DiagnosticRunUpsertOne) ClearPhasesAnalyzed() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearPhasesAnalyzed()
	})
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (u *DiagnosticRunUpsertOne) SetAgentsReviewed(v []string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetAgentsReviewed(v)
	})
}

// UpdateAgentsReviewed sets the "agents_reviewed" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateAgentsReviewed() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateAgentsReviewed()
	})
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (u *DiagnosticRunUpsertOne) ClearAgentsReviewed() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearAgentsReviewed()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *DiagnosticRunUpsertOne) SetDiagnosis(v string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateDiagnosis() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateDiagnosis()
	})
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *DiagnosticRunUpsertOne) ClearDiagnosis() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearDiagnosis()
	})
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (u *DiagnosticRunUpsertOne) SetTasksCreatedCount(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTasksCreatedCount(v)
	})
}

// AddTasksCreatedCount adds v to the "tasks_created_count" field.
func (u *DiagnosticRunUpsertOne) AddTasksCreatedCount(v int) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddTasksCreatedCount(v)
	})
}

// UpdateTasksCreatedCount sets the "tasks_created_count" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateTasksCreatedCount() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTasksCreatedCount()
	})
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (u *DiagnosticRunUpsertOne) SetTasksCreatedIds(v []string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTasksCreatedIds(v)
	})
}

// UpdateTasksCreatedIds sets the "tasks_created_ids" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateTasksCreatedIds() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTasksCreatedIds()
	})
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (u *DiagnosticRunUpsertOne) ClearTasksCreatedIds() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearTasksCreatedIds()
	})
}

// SetStatus sets the "status" field.
func (u *DiagnosticRunUpsertOne) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateStatus() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DiagnosticRunUpsertOne) SetErrorMessage(v string) *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DiagnosticRunUpsertOne) UpdateErrorMessage() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DiagnosticRunUpsertOne) ClearErrorMessage() *DiagnosticRunUpsertOne {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *DiagnosticRunUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiagnosticRunCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosticRunUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DiagnosticRunUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DiagnosticRunUpsertOne.ID is not supported by MySQL driver. Use DiagnosticRunUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DiagnosticRunUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DiagnosticRunCreateBulk is the builder for creating many DiagnosticRun entities in bulk.
type DiagnosticRunCreateBulk struct {
	config
	err      error
	builders []*DiagnosticRunCreate
	conflict []sql.ConflictOption
}

// Save creates the DiagnosticRun entities in the database.
func (_c *DiagnosticRunCreateBulk) Save(ctx context.Context) ([]*DiagnosticRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiagnosticRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiagnosticRunMutation)
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
func (_c *DiagnosticRunCreateBulk) SaveX(ctx context.Context) []*DiagnosticRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiagnosticRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiagnosticRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DiagnosticRun.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DiagnosticRunUpsert) {
//			SetWorkflowID(v+v).
//		}).
//		Exec(ctx)
func (_c *DiagnosticRunCreateBulk) OnConflict(opts ...sql.ConflictOption) *DiagnosticRunUpsertBulk {
	_c.conflict = opts
	return &DiagnosticRunUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DiagnosticRunCreateBulk) OnConflictColumns(columns ...string) *DiagnosticRunUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DiagnosticRunUpsertBulk{
		create: _c,
	}
}

// DiagnosticRunUpsertBulk is the builder for "upsert"-ing
// a bulk of DiagnosticRun nodes.
type DiagnosticRunUpsertBulk struct {
	create *DiagnosticRunCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(diagnosticrun.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DiagnosticRunUpsertBulk) UpdateNewValues() *DiagnosticRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(diagnosticrun.FieldID)
			}
			if _, exists := b.mutation.WorkflowID(); exists {
				s.SetIgnore(diagnosticrun.FieldWorkflowID)
			}
			if _, exists := b.mutation.TriggeredAt(); exists {
				s.SetIgnore(diagnosticrun.FieldTriggeredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DiagnosticRun.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DiagnosticRunUpsertBulk) Ignore() *DiagnosticRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DiagnosticRunUpsertBulk) DoNothing() *DiagnosticRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DiagnosticRunCreateBulk.OnConflict
// documentation for more info.
func (u *DiagnosticRunUpsertBulk) Update(set func(*DiagnosticRunUpsert)) *DiagnosticRunUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DiagnosticRunUpsert{UpdateSet: update})
	}))
	return u
}

// SetTrigger sets the "trigger" field.
func (u *DiagnosticRunUpsertBulk) SetTrigger(v string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTrigger(v)
	})
}

// UpdateTrigger sets the "trigger" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateTrigger() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTrigger()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *DiagnosticRunUpsertBulk) SetCompletedAt(v time.Time) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateCompletedAt() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *DiagnosticRunUpsertBulk) ClearCompletedAt() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearCompletedAt()
	})
}

// SetTotalTasks sets the "total_tasks" field.
func (u *DiagnosticRunUpsertBulk) SetTotalTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTotalTasks(v)
	})
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *DiagnosticRunUpsertBulk) AddTotalTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddTotalTasks(v)
	})
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateTotalTasks() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTotalTasks()
	})
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *DiagnosticRunUpsertBulk) SetCompletedTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetCompletedTasks(v)
	})
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *DiagnosticRunUpsertBulk) AddCompletedTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddCompletedTasks(v)
	})
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateCompletedTasks() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateCompletedTasks()
	})
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *DiagnosticRunUpsertBulk) SetFailedTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetFailedTasks(v)
	})
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *DiagnosticRunUpsertBulk) AddFailedTasks(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddFailedTasks(v)
	})
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateFailedTasks() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateFailedTasks()
	})
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (u *DiagnosticRunUpsertBulk) SetPhasesAnalyzed(v []string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetPhasesAnalyzed(v)
	})
}

// UpdatePhasesAnalyzed sets the "phases_analyzed" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdatePhasesAnalyzed() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdatePhasesAnalyzed()
	})
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (u *DiagnosticRunUpsertBulk) ClearPhasesAnalyzed() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearPhasesAnalyzed()
	})
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (u *DiagnosticRunUpsertBulk) SetAgentsReviewed(v []string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetAgentsReviewed(v)
	})
}

// UpdateAgentsReviewed sets the "agents_reviewed" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateAgentsReviewed() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateAgentsReviewed()
	})
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (u *DiagnosticRunUpsertBulk) ClearAgentsReviewed() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearAgentsReviewed()
	})
}

// SetDiagnosis sets the "diagnosis" field.
func (u *DiagnosticRunUpsertBulk) SetDiagnosis(v string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetDiagnosis(v)
	})
}

// UpdateDiagnosis sets the "diagnosis" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateDiagnosis() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateDiagnosis()
	})
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (u *DiagnosticRunUpsertBulk) ClearDiagnosis() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearDiagnosis()
	})
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (u *DiagnosticRunUpsertBulk) SetTasksCreatedCount(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTasksCreatedCount(v)
	})
}

// AddTasksCreatedCount adds v to the "tasks_created_count" field.
func (u *DiagnosticRunUpsertBulk) AddTasksCreatedCount(v int) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.AddTasksCreatedCount(v)
	})
}

// UpdateTasksCreatedCount sets the "tasks_created_count" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateTasksCreatedCount() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTasksCreatedCount()
	})
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (u *DiagnosticRunUpsertBulk) SetTasksCreatedIds(v []string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetTasksCreatedIds(v)
	})
}

// UpdateTasksCreatedIds sets the "tasks_created_ids" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateTasksCreatedIds() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateTasksCreatedIds()
	})
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (u *DiagnosticRunUpsertBulk) ClearTasksCreatedIds() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearTasksCreatedIds()
	})
}

// SetStatus sets the "status" field.
func (u *DiagnosticRunUpsertBulk) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateStatus() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DiagnosticRunUpsertBulk) SetErrorMessage(v string) *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DiagnosticRunUpsertBulk) UpdateErrorMessage() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DiagnosticRunUpsertBulk) ClearErrorMessage() *DiagnosticRunUpsertBulk {
	return u.Update(func(s *DiagnosticRunUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *DiagnosticRunUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DiagnosticRunCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DiagnosticRunCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DiagnosticRunUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
