// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/predicate"
)

// DiagnosticRunUpdate is the builder for updating DiagnosticRun entities.
type DiagnosticRunUpdate struct {
	config
	hooks    []Hook
	mutation *DiagnosticRunMutation
}

// Where appends a list predicates to the DiagnosticRunUpdate builder.
func (_u *DiagnosticRunUpdate) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *DiagnosticRunUpdate) SetTrigger(v string) *DiagnosticRunUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableTrigger(v *string) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiagnosticRunUpdate) SetCompletedAt(v time.Time) *DiagnosticRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableCompletedAt(v *time.Time) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiagnosticRunUpdate) ClearCompletedAt() *DiagnosticRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *DiagnosticRunUpdate) SetTotalTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableTotalTasks(v *int) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *DiagnosticRunUpdate) AddTotalTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *DiagnosticRunUpdate) SetCompletedTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.ResetCompletedTasks()
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableCompletedTasks(v *int) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetCompletedTasks(*v)
	}
	return _u
}

// AddCompletedTasks adds value to the "completed_tasks" field.
func (_u *DiagnosticRunUpdate) AddCompletedTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.AddCompletedTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *DiagnosticRunUpdate) SetFailedTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableFailedTasks(v *int) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *DiagnosticRunUpdate) AddFailedTasks(v int) *DiagnosticRunUpdate {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (_u *DiagnosticRunUpdate) SetPhasesAnalyzed(v []string) *DiagnosticRunUpdate {
	_u.mutation.SetPhasesAnalyzed(v)
	return _u
}

// AppendPhasesAnalyzed appends value to the "phases_analyzed" field.
func (_u *DiagnosticRunUpdate) AppendPhasesAnalyzed(v []string) *DiagnosticRunUpdate {
	_u.mutation.AppendPhasesAnalyzed(v)
	return _u
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (_u *DiagnosticRunUpdate) ClearPhasesAnalyzed() *DiagnosticRunUpdate {
	_u.mutation.ClearPhasesAnalyzed()
	return _u
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (_u *DiagnosticRunUpdate) SetAgentsReviewed(v []string) *DiagnosticRunUpdate {
	_u.mutation.SetAgentsReviewed(v)
	return _u
}

// AppendAgentsReviewed appends value to the "agents_reviewed" field.
func (_u *DiagnosticRunUpdate) AppendAgentsReviewed(v []string) *DiagnosticRunUpdate {
	_u.mutation.AppendAgentsReviewed(v)
	return _u
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (_u *DiagnosticRunUpdate) ClearAgentsReviewed() *DiagnosticRunUpdate {
	_u.mutation.ClearAgentsReviewed()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiagnosticRunUpdate) SetDiagnosis(v string) *DiagnosticRunUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableDiagnosis(v *string) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *DiagnosticRunUpdate) ClearDiagnosis() *DiagnosticRunUpdate {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (_u *DiagnosticRunUpdate) SetTasksCreatedCount(v int) *DiagnosticRunUpdate {
	_u.mutation.ResetTasksCreatedCount()
	_u.mutation.SetTasksCreatedCount(v)
	return _u
}

// SetNillableTasksCreatedCount sets the "tasks_created_count" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableTasksCreatedCount(v *int) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetTasksCreatedCount(*v)
	}
	return _u
}

// AddTasksCreatedCount adds value to the "tasks_created_count" field.
func (_u *DiagnosticRunUpdate) AddTasksCreatedCount(v int) *DiagnosticRunUpdate {
	_u.mutation.AddTasksCreatedCount(v)
	return _u
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) SetTasksCreatedIds(v []string) *DiagnosticRunUpdate {
	_u.mutation.SetTasksCreatedIds(v)
	return _u
}

// AppendTasksCreatedIds appends value to the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) AppendTasksCreatedIds(v []string) *DiagnosticRunUpdate {
	_u.mutation.AppendTasksCreatedIds(v)
	return _u
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdate) ClearTasksCreatedIds() *DiagnosticRunUpdate {
	_u.mutation.ClearTasksCreatedIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticRunUpdate) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DiagnosticRunUpdate) SetErrorMessage(v string) *DiagnosticRunUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DiagnosticRunUpdate) SetNillableErrorMessage(v *string) *DiagnosticRunUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DiagnosticRunUpdate) ClearErrorMessage() *DiagnosticRunUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_u *DiagnosticRunUpdate) Mutation() *DiagnosticRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiagnosticRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiagnosticRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagnosticRun.ticket"`)
	}
	return nil
}

func (_u *DiagnosticRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticrun.Table, diagnosticrun.Columns, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(diagnosticrun.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(diagnosticrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(diagnosticrun.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(diagnosticrun.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTasks(); ok {
		_spec.AddField(diagnosticrun.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(diagnosticrun.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhasesAnalyzed(); ok {
		_spec.SetField(diagnosticrun.FieldPhasesAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhasesAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldPhasesAnalyzed, value)
		})
	}
	if _u.mutation.PhasesAnalyzedCleared() {
		_spec.ClearField(diagnosticrun.FieldPhasesAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentsReviewed(); ok {
		_spec.SetField(diagnosticrun.FieldAgentsReviewed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentsReviewed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldAgentsReviewed, value)
		})
	}
	if _u.mutation.AgentsReviewedCleared() {
		_spec.ClearField(diagnosticrun.FieldAgentsReviewed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(diagnosticrun.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCreatedCount(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCreatedCount(); ok {
		_spec.AddField(diagnosticrun.FieldTasksCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTasksCreatedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldTasksCreatedIds, value)
		})
	}
	if _u.mutation.TasksCreatedIdsCleared() {
		_spec.ClearField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(diagnosticrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(diagnosticrun.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiagnosticRunUpdateOne is the builder for updating a single DiagnosticRun entity.
type DiagnosticRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiagnosticRunMutation
}

// SetTrigger sets the "trigger" field.
func (_u *DiagnosticRunUpdateOne) SetTrigger(v string) *DiagnosticRunUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableTrigger(v *string) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DiagnosticRunUpdateOne) SetCompletedAt(v time.Time) *DiagnosticRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableCompletedAt(v *time.Time) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DiagnosticRunUpdateOne) ClearCompletedAt() *DiagnosticRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalTasks sets the "total_tasks" field.
func (_u *DiagnosticRunUpdateOne) SetTotalTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.ResetTotalTasks()
	_u.mutation.SetTotalTasks(v)
	return _u
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableTotalTasks(v *int) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetTotalTasks(*v)
	}
	return _u
}

// AddTotalTasks adds value to the "total_tasks" field.
func (_u *DiagnosticRunUpdateOne) AddTotalTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.AddTotalTasks(v)
	return _u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_u *DiagnosticRunUpdateOne) SetCompletedTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.ResetCompletedTasks()
	_u.mutation.SetCompletedTasks(v)
	return _u
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableCompletedTasks(v *int) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetCompletedTasks(*v)
	}
	return _u
}

// AddCompletedTasks adds value to the "completed_tasks" field.
func (_u *DiagnosticRunUpdateOne) AddCompletedTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.AddCompletedTasks(v)
	return _u
}

// SetFailedTasks sets the "failed_tasks" field.
func (_u *DiagnosticRunUpdateOne) SetFailedTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.ResetFailedTasks()
	_u.mutation.SetFailedTasks(v)
	return _u
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableFailedTasks(v *int) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetFailedTasks(*v)
	}
	return _u
}

// AddFailedTasks adds value to the "failed_tasks" field.
func (_u *DiagnosticRunUpdateOne) AddFailedTasks(v int) *DiagnosticRunUpdateOne {
	_u.mutation.AddFailedTasks(v)
	return _u
}

// SetPhasesAnalyzed sets the "phases_analyzed" field.
func (_u *DiagnosticRunUpdateOne) SetPhasesAnalyzed(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.SetPhasesAnalyzed(v)
	return _u
}

// AppendPhasesAnalyzed appends value to the "phases_analyzed" field.
func (_u *DiagnosticRunUpdateOne) AppendPhasesAnalyzed(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.AppendPhasesAnalyzed(v)
	return _u
}

// ClearPhasesAnalyzed clears the value of the "phases_analyzed" field.
func (_u *DiagnosticRunUpdateOne) ClearPhasesAnalyzed() *DiagnosticRunUpdateOne {
	_u.mutation.ClearPhasesAnalyzed()
	return _u
}

// SetAgentsReviewed sets the "agents_reviewed" field.
func (_u *DiagnosticRunUpdateOne) SetAgentsReviewed(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.SetAgentsReviewed(v)
	return _u
}

// AppendAgentsReviewed appends value to the "agents_reviewed" field.
func (_u *DiagnosticRunUpdateOne) AppendAgentsReviewed(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.AppendAgentsReviewed(v)
	return _u
}

// ClearAgentsReviewed clears the value of the "agents_reviewed" field.
func (_u *DiagnosticRunUpdateOne) ClearAgentsReviewed() *DiagnosticRunUpdateOne {
	_u.mutation.ClearAgentsReviewed()
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiagnosticRunUpdateOne) SetDiagnosis(v string) *DiagnosticRunUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetNillableDiagnosis sets the "diagnosis" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableDiagnosis(v *string) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetDiagnosis(*v)
	}
	return _u
}

// ClearDiagnosis clears the value of the "diagnosis" field.
func (_u *DiagnosticRunUpdateOne) ClearDiagnosis() *DiagnosticRunUpdateOne {
	_u.mutation.ClearDiagnosis()
	return _u
}

// SetTasksCreatedCount sets the "tasks_created_count" field.
func (_u *DiagnosticRunUpdateOne) SetTasksCreatedCount(v int) *DiagnosticRunUpdateOne {
	_u.mutation.ResetTasksCreatedCount()
	_u.mutation.SetTasksCreatedCount(v)
	return _u
}

// SetNillableTasksCreatedCount sets the "tasks_created_count" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableTasksCreatedCount(v *int) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetTasksCreatedCount(*v)
	}
	return _u
}

// AddTasksCreatedCount adds value to the "tasks_created_count" field.
func (_u *DiagnosticRunUpdateOne) AddTasksCreatedCount(v int) *DiagnosticRunUpdateOne {
	_u.mutation.AddTasksCreatedCount(v)
	return _u
}

// SetTasksCreatedIds sets the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) SetTasksCreatedIds(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.SetTasksCreatedIds(v)
	return _u
}

// AppendTasksCreatedIds appends value to the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) AppendTasksCreatedIds(v []string) *DiagnosticRunUpdateOne {
	_u.mutation.AppendTasksCreatedIds(v)
	return _u
}

// ClearTasksCreatedIds clears the value of the "tasks_created_ids" field.
func (_u *DiagnosticRunUpdateOne) ClearTasksCreatedIds() *DiagnosticRunUpdateOne {
	_u.mutation.ClearTasksCreatedIds()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DiagnosticRunUpdateOne) SetStatus(v diagnosticrun.Status) *DiagnosticRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableStatus(v *diagnosticrun.Status) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DiagnosticRunUpdateOne) SetErrorMessage(v string) *DiagnosticRunUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DiagnosticRunUpdateOne) SetNillableErrorMessage(v *string) *DiagnosticRunUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DiagnosticRunUpdateOne) ClearErrorMessage() *DiagnosticRunUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the DiagnosticRunMutation object of the builder.
func (_u *DiagnosticRunUpdateOne) Mutation() *DiagnosticRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiagnosticRunUpdate builder.
func (_u *DiagnosticRunUpdateOne) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiagnosticRunUpdateOne) Select(field string, fields ...string) *DiagnosticRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiagnosticRun entity.
func (_u *DiagnosticRunUpdateOne) Save(ctx context.Context) (*DiagnosticRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiagnosticRunUpdateOne) SaveX(ctx context.Context) *DiagnosticRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiagnosticRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiagnosticRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DiagnosticRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := diagnosticrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DiagnosticRun.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DiagnosticRun.ticket"`)
	}
	return nil
}

func (_u *DiagnosticRunUpdateOne) sqlSave(ctx context.Context) (_node *DiagnosticRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(diagnosticrun.Table, diagnosticrun.Columns, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiagnosticRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diagnosticrun.FieldID)
		for _, f := range fields {
			if !diagnosticrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diagnosticrun.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(diagnosticrun.FieldTrigger, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(diagnosticrun.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalTasks(); ok {
		_spec.SetField(diagnosticrun.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTasks(); ok {
		_spec.AddField(diagnosticrun.FieldTotalTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedTasks(); ok {
		_spec.AddField(diagnosticrun.FieldCompletedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedTasks(); ok {
		_spec.SetField(diagnosticrun.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedTasks(); ok {
		_spec.AddField(diagnosticrun.FieldFailedTasks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PhasesAnalyzed(); ok {
		_spec.SetField(diagnosticrun.FieldPhasesAnalyzed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhasesAnalyzed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldPhasesAnalyzed, value)
		})
	}
	if _u.mutation.PhasesAnalyzedCleared() {
		_spec.ClearField(diagnosticrun.FieldPhasesAnalyzed, field.TypeJSON)
	}
	if value, ok := _u.mutation.AgentsReviewed(); ok {
		_spec.SetField(diagnosticrun.FieldAgentsReviewed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAgentsReviewed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldAgentsReviewed, value)
		})
	}
	if _u.mutation.AgentsReviewedCleared() {
		_spec.ClearField(diagnosticrun.FieldAgentsReviewed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diagnosticrun.FieldDiagnosis, field.TypeString, value)
	}
	if _u.mutation.DiagnosisCleared() {
		_spec.ClearField(diagnosticrun.FieldDiagnosis, field.TypeString)
	}
	if value, ok := _u.mutation.TasksCreatedCount(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTasksCreatedCount(); ok {
		_spec.AddField(diagnosticrun.FieldTasksCreatedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TasksCreatedIds(); ok {
		_spec.SetField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTasksCreatedIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, diagnosticrun.FieldTasksCreatedIds, value)
		})
	}
	if _u.mutation.TasksCreatedIdsCleared() {
		_spec.ClearField(diagnosticrun.FieldTasksCreatedIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(diagnosticrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(diagnosticrun.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(diagnosticrun.FieldErrorMessage, field.TypeString)
	}
	_node = &DiagnosticRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diagnosticrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
