// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/taskdiscovery"
)

// TaskDiscoveryUpdate is the builder for updating TaskDiscovery entities.
type TaskDiscoveryUpdate struct {
	config
	hooks    []Hook
	mutation *TaskDiscoveryMutation
}

// Where appends a list predicates to the TaskDiscoveryUpdate builder.
func (_u *TaskDiscoveryUpdate) Where(ps ...predicate.TaskDiscovery) *TaskDiscoveryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDiscoveryType sets the "discovery_type" field.
func (_u *TaskDiscoveryUpdate) SetDiscoveryType(v string) *TaskDiscoveryUpdate {
	_u.mutation.SetDiscoveryType(v)
	return _u
}

// SetNillableDiscoveryType sets the "discovery_type" field if the given value is not nil.
func (_u *TaskDiscoveryUpdate) SetNillableDiscoveryType(v *string) *TaskDiscoveryUpdate {
	if v != nil {
		_u.SetDiscoveryType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskDiscoveryUpdate) SetDescription(v string) *TaskDiscoveryUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskDiscoveryUpdate) SetNillableDescription(v *string) *TaskDiscoveryUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdate) SetSpawnedTaskIds(v []string) *TaskDiscoveryUpdate {
	_u.mutation.SetSpawnedTaskIds(v)
	return _u
}

// AppendSpawnedTaskIds appends value to the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdate) AppendSpawnedTaskIds(v []string) *TaskDiscoveryUpdate {
	_u.mutation.AppendSpawnedTaskIds(v)
	return _u
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdate) ClearSpawnedTaskIds() *TaskDiscoveryUpdate {
	_u.mutation.ClearSpawnedTaskIds()
	return _u
}

// SetPriorityBoost sets the "priority_boost" field.
func (_u *TaskDiscoveryUpdate) SetPriorityBoost(v bool) *TaskDiscoveryUpdate {
	_u.mutation.SetPriorityBoost(v)
	return _u
}

// SetNillablePriorityBoost sets the "priority_boost" field if the given value is not nil.
func (_u *TaskDiscoveryUpdate) SetNillablePriorityBoost(v *bool) *TaskDiscoveryUpdate {
	if v != nil {
		_u.SetPriorityBoost(*v)
	}
	return _u
}

// SetResolutionStatus sets the "resolution_status" field.
func (_u *TaskDiscoveryUpdate) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryUpdate {
	_u.mutation.SetResolutionStatus(v)
	return _u
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_u *TaskDiscoveryUpdate) SetNillableResolutionStatus(v *taskdiscovery.ResolutionStatus) *TaskDiscoveryUpdate {
	if v != nil {
		_u.SetResolutionStatus(*v)
	}
	return _u
}

// Mutation returns the TaskDiscoveryMutation object of the builder.
func (_u *TaskDiscoveryUpdate) Mutation() *TaskDiscoveryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskDiscoveryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDiscoveryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskDiscoveryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDiscoveryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskDiscoveryUpdate) check() error {
	if v, ok := _u.mutation.ResolutionStatus(); ok {
		if err := taskdiscovery.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "TaskDiscovery.resolution_status": %w`, err)}
		}
	}
	if _u.mutation.SourceTaskCleared() && len(_u.mutation.SourceTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskDiscovery.source_task"`)
	}
	return nil
}

func (_u *TaskDiscoveryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskdiscovery.Table, taskdiscovery.Columns, sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DiscoveryType(); ok {
		_spec.SetField(taskdiscovery.FieldDiscoveryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskdiscovery.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpawnedTaskIds(); ok {
		_spec.SetField(taskdiscovery.FieldSpawnedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpawnedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskdiscovery.FieldSpawnedTaskIds, value)
		})
	}
	if _u.mutation.SpawnedTaskIdsCleared() {
		_spec.ClearField(taskdiscovery.FieldSpawnedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityBoost(); ok {
		_spec.SetField(taskdiscovery.FieldPriorityBoost, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionStatus(); ok {
		_spec.SetField(taskdiscovery.FieldResolutionStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdiscovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskDiscoveryUpdateOne is the builder for updating a single TaskDiscovery entity.
type TaskDiscoveryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskDiscoveryMutation
}

// SetDiscoveryType sets the "discovery_type" field.
func (_u *TaskDiscoveryUpdateOne) SetDiscoveryType(v string) *TaskDiscoveryUpdateOne {
	_u.mutation.SetDiscoveryType(v)
	return _u
}

// SetNillableDiscoveryType sets the "discovery_type" field if the given value is not nil.
func (_u *TaskDiscoveryUpdateOne) SetNillableDiscoveryType(v *string) *TaskDiscoveryUpdateOne {
	if v != nil {
		_u.SetDiscoveryType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskDiscoveryUpdateOne) SetDescription(v string) *TaskDiscoveryUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskDiscoveryUpdateOne) SetNillableDescription(v *string) *TaskDiscoveryUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdateOne) SetSpawnedTaskIds(v []string) *TaskDiscoveryUpdateOne {
	_u.mutation.SetSpawnedTaskIds(v)
	return _u
}

// AppendSpawnedTaskIds appends value to the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdateOne) AppendSpawnedTaskIds(v []string) *TaskDiscoveryUpdateOne {
	_u.mutation.AppendSpawnedTaskIds(v)
	return _u
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (_u *TaskDiscoveryUpdateOne) ClearSpawnedTaskIds() *TaskDiscoveryUpdateOne {
	_u.mutation.ClearSpawnedTaskIds()
	return _u
}

// SetPriorityBoost sets the "priority_boost" field.
func (_u *TaskDiscoveryUpdateOne) SetPriorityBoost(v bool) *TaskDiscoveryUpdateOne {
	_u.mutation.SetPriorityBoost(v)
	return _u
}

// SetNillablePriorityBoost sets the "priority_boost" field if the given value is not nil.
func (_u *TaskDiscoveryUpdateOne) SetNillablePriorityBoost(v *bool) *TaskDiscoveryUpdateOne {
	if v != nil {
		_u.SetPriorityBoost(*v)
	}
	return _u
}

// SetResolutionStatus sets the "resolution_status" field.
func (_u *TaskDiscoveryUpdateOne) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryUpdateOne {
	_u.mutation.SetResolutionStatus(v)
	return _u
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_u *TaskDiscoveryUpdateOne) SetNillableResolutionStatus(v *taskdiscovery.ResolutionStatus) *TaskDiscoveryUpdateOne {
	if v != nil {
		_u.SetResolutionStatus(*v)
	}
	return _u
}

// Mutation returns the TaskDiscoveryMutation object of the builder.
func (_u *TaskDiscoveryUpdateOne) Mutation() *TaskDiscoveryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskDiscoveryUpdate builder.
func (_u *TaskDiscoveryUpdateOne) Where(ps ...predicate.TaskDiscovery) *TaskDiscoveryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskDiscoveryUpdateOne) Select(field string, fields ...string) *TaskDiscoveryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskDiscovery entity.
func (_u *TaskDiscoveryUpdateOne) Save(ctx context.Context) (*TaskDiscovery, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskDiscoveryUpdateOne) SaveX(ctx context.Context) *TaskDiscovery {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskDiscoveryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskDiscoveryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskDiscoveryUpdateOne) check() error {
	if v, ok := _u.mutation.ResolutionStatus(); ok {
		if err := taskdiscovery.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "TaskDiscovery.resolution_status": %w`, err)}
		}
	}
	if _u.mutation.SourceTaskCleared() && len(_u.mutation.SourceTaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskDiscovery.source_task"`)
	}
	return nil
}

func (_u *TaskDiscoveryUpdateOne) sqlSave(ctx context.Context) (_node *TaskDiscovery, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(taskdiscovery.Table, taskdiscovery.Columns, sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskDiscovery.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, taskdiscovery.FieldID)
		for _, f := range fields {
			if !taskdiscovery.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != taskdiscovery.FieldID {
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
	if value, ok := _u.mutation.DiscoveryType(); ok {
		_spec.SetField(taskdiscovery.FieldDiscoveryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(taskdiscovery.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpawnedTaskIds(); ok {
		_spec.SetField(taskdiscovery.FieldSpawnedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpawnedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, taskdiscovery.FieldSpawnedTaskIds, value)
		})
	}
	if _u.mutation.SpawnedTaskIdsCleared() {
		_spec.ClearField(taskdiscovery.FieldSpawnedTaskIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorityBoost(); ok {
		_spec.SetField(taskdiscovery.FieldPriorityBoost, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResolutionStatus(); ok {
		_spec.SetField(taskdiscovery.FieldResolutionStatus, field.TypeEnum, value)
	}
	_node = &TaskDiscovery{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{taskdiscovery.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
