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
	"github.com/droverhq/drover/ent/task"
	"github.com/droverhq/drover/ent/taskdiscovery"
)

// TaskDiscoveryCreate is the builder for creating a TaskDiscovery entity.
type TaskDiscoveryCreate struct {
	config
	mutation *TaskDiscoveryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceTaskID sets the "source_task_id" field.
func (_c *TaskDiscoveryCreate) SetSourceTaskID(v string) *TaskDiscoveryCreate {
	_c.mutation.SetSourceTaskID(v)
	return _c
}

// SetDiscoveryType sets the "discovery_type" field.
func (_c *TaskDiscoveryCreate) SetDiscoveryType(v string) *TaskDiscoveryCreate {
	_c.mutation.SetDiscoveryType(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskDiscoveryCreate) SetDescription(v string) *TaskDiscoveryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (_c *TaskDiscoveryCreate) SetSpawnedTaskIds(v []string) *TaskDiscoveryCreate {
	_c.mutation.SetSpawnedTaskIds(v)
	return _c
}

// SetPriorityBoost sets the "priority_boost" field.
func (_c *TaskDiscoveryCreate) SetPriorityBoost(v bool) *TaskDiscoveryCreate {
	_c.mutation.SetPriorityBoost(v)
	return _c
}

// SetNillablePriorityBoost sets the "priority_boost" field if the given value is not nil.
func (_c *TaskDiscoveryCreate) SetNillablePriorityBoost(v *bool) *TaskDiscoveryCreate {
	if v != nil {
		_c.SetPriorityBoost(*v)
	}
	return _c
}

// SetResolutionStatus sets the "resolution_status" field.
func (_c *TaskDiscoveryCreate) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryCreate {
	_c.mutation.SetResolutionStatus(v)
	return _c
}

// SetNillableResolutionStatus sets the "resolution_status" field if the given value is not nil.
func (_c *TaskDiscoveryCreate) SetNillableResolutionStatus(v *taskdiscovery.ResolutionStatus) *TaskDiscoveryCreate {
	if v != nil {
		_c.SetResolutionStatus(*v)
	}
	return _c
}

// SetDiscoveredAt sets the "discovered_at" field.
func (_c *TaskDiscoveryCreate) SetDiscoveredAt(v time.Time) *TaskDiscoveryCreate {
	_c.mutation.SetDiscoveredAt(v)
	return _c
}

// SetNillableDiscoveredAt sets the "discovered_at" field if the given value is not nil.
func (_c *TaskDiscoveryCreate) SetNillableDiscoveredAt(v *time.Time) *TaskDiscoveryCreate {
	if v != nil {
		_c.SetDiscoveredAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TaskDiscoveryCreate) SetID(v string) *TaskDiscoveryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSourceTask sets the "source_task" edge to the Task entity.
func (_c *TaskDiscoveryCreate) SetSourceTask(v *Task) *TaskDiscoveryCreate {
	return _c.SetSourceTaskID(v.ID)
}

// Mutation returns the TaskDiscoveryMutation object of the builder.
func (_c *TaskDiscoveryCreate) Mutation() *TaskDiscoveryMutation {
	return _c.mutation
}

// Save creates the TaskDiscovery in the database.
func (_c *TaskDiscoveryCreate) Save(ctx context.Context) (*TaskDiscovery, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskDiscoveryCreate) SaveX(ctx context.Context) *TaskDiscovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDiscoveryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDiscoveryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskDiscoveryCreate) defaults() {
	if _, ok := _c.mutation.PriorityBoost(); !ok {
		v := taskdiscovery.DefaultPriorityBoost
		_c.mutation.SetPriorityBoost(v)
	}
	if _, ok := _c.mutation.ResolutionStatus(); !ok {
		v := taskdiscovery.DefaultResolutionStatus
		_c.mutation.SetResolutionStatus(v)
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		v := taskdiscovery.DefaultDiscoveredAt()
		_c.mutation.SetDiscoveredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskDiscoveryCreate) check() error {
	if _, ok := _c.mutation.SourceTaskID(); !ok {
		return &ValidationError{Name: "source_task_id", err: errors.New(`ent: missing required field "TaskDiscovery.source_task_id"`)}
	}
	if _, ok := _c.mutation.DiscoveryType(); !ok {
		return &ValidationError{Name: "discovery_type", err: errors.New(`ent: missing required field "TaskDiscovery.discovery_type"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "TaskDiscovery.description"`)}
	}
	if _, ok := _c.mutation.PriorityBoost(); !ok {
		return &ValidationError{Name: "priority_boost", err: errors.New(`ent: missing required field "TaskDiscovery.priority_boost"`)}
	}
	if _, ok := _c.mutation.ResolutionStatus(); !ok {
		return &ValidationError{Name: "resolution_status", err: errors.New(`ent: missing required field "TaskDiscovery.resolution_status"`)}
	}
	if v, ok := _c.mutation.ResolutionStatus(); ok {
		if err := taskdiscovery.ResolutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "resolution_status", err: fmt.Errorf(`ent: validator failed for field "TaskDiscovery.resolution_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscoveredAt(); !ok {
		return &ValidationError{Name: "discovered_at", err: errors.New(`ent: missing required field "TaskDiscovery.discovered_at"`)}
	}
	if len(_c.mutation.SourceTaskIDs()) == 0 {
		return &ValidationError{Name: "source_task", err: errors.New(`ent: missing required edge "TaskDiscovery.source_task"`)}
	}
	return nil
}

func (_c *TaskDiscoveryCreate) sqlSave(ctx context.Context) (*TaskDiscovery, error) {
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
			return nil, fmt.Errorf("unexpected TaskDiscovery.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TaskDiscoveryCreate) createSpec() (*TaskDiscovery, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskDiscovery{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(taskdiscovery.Table, sqlgraph.NewFieldSpec(taskdiscovery.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DiscoveryType(); ok {
		_spec.SetField(taskdiscovery.FieldDiscoveryType, field.TypeString, value)
		_node.DiscoveryType = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(taskdiscovery.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.SpawnedTaskIds(); ok {
		_spec.SetField(taskdiscovery.FieldSpawnedTaskIds, field.TypeJSON, value)
		_node.SpawnedTaskIds = value
	}
	if value, ok := _c.mutation.PriorityBoost(); ok {
		_spec.SetField(taskdiscovery.FieldPriorityBoost, field.TypeBool, value)
		_node.PriorityBoost = value
	}
	if value, ok := _c.mutation.ResolutionStatus(); ok {
		_spec.SetField(taskdiscovery.FieldResolutionStatus, field.TypeEnum, value)
		_node.ResolutionStatus = value
	}
	if value, ok := _c.mutation.DiscoveredAt(); ok {
		_spec.SetField(taskdiscovery.FieldDiscoveredAt, field.TypeTime, value)
		_node.DiscoveredAt = value
	}
	if nodes := _c.mutation.SourceTaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   taskdiscovery.SourceTaskTable,
			Columns: []string{taskdiscovery.SourceTaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceTaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskDiscovery.Create().
//		SetSourceTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskDiscoveryUpsert) {
//			SetSourceTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskDiscoveryCreate) OnConflict(opts ...sql.ConflictOption) *TaskDiscoveryUpsertOne {
	_c.conflict = opts
	return &TaskDiscoveryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskDiscoveryCreate) OnConflictColumns(columns ...string) *TaskDiscoveryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskDiscoveryUpsertOne{
		create: _c,
	}
}

type (
	// TaskDiscoveryUpsertOne is the builder for "upsert"-ing
	//  one TaskDiscovery node.
	TaskDiscoveryUpsertOne struct {
		create *TaskDiscoveryCreate
	}

	// TaskDiscoveryUpsert is the "OnConflict" setter.
	TaskDiscoveryUpsert struct {
		*sql.UpdateSet
	}
)

// SetDiscoveryType sets the "discovery_type" field.
func (u *TaskDiscoveryUpsert) SetDiscoveryType(v string) *TaskDiscoveryUpsert {
	u.Set(taskdiscovery.FieldDiscoveryType, v)
	return u
}

// UpdateDiscoveryType sets the "discovery_type" field to the value that was provided on create.
func (u *TaskDiscoveryUpsert) UpdateDiscoveryType() *TaskDiscoveryUpsert {
	u.SetExcluded(taskdiscovery.FieldDiscoveryType)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskDiscoveryUpsert) SetDescription(v string) *TaskDiscoveryUpsert {
	u.Set(taskdiscovery.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDiscoveryUpsert) UpdateDescription() *TaskDiscoveryUpsert {
	u.SetExcluded(taskdiscovery.FieldDescription)
	return u
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsert) SetSpawnedTaskIds(v []string) *TaskDiscoveryUpsert {
	u.Set(taskdiscovery.FieldSpawnedTaskIds, v)
	return u
}

// UpdateSpawnedTaskIds sets the "spawned_task_ids" field to the value that was provided on create.
func (u *TaskDiscoveryUpsert) UpdateSpawnedTaskIds() *TaskDiscoveryUpsert {
	u.SetExcluded(taskdiscovery.FieldSpawnedTaskIds)
	return u
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsert) ClearSpawnedTaskIds() *TaskDiscoveryUpsert {
	u.SetNull(taskdiscovery.FieldSpawnedTaskIds)
	return u
}

// SetPriorityBoost sets the "priority_boost" field.
func (u *TaskDiscoveryUpsert) SetPriorityBoost(v bool) *TaskDiscoveryUpsert {
	u.Set(taskdiscovery.FieldPriorityBoost, v)
	return u
}

// UpdatePriorityBoost sets the "priority_boost" field to the value that was provided on create.
func (u *TaskDiscoveryUpsert) UpdatePriorityBoost() *TaskDiscoveryUpsert {
	u.SetExcluded(taskdiscovery.FieldPriorityBoost)
	return u
}

// SetResolutionStatus sets the "resolution_status" field.
func (u *TaskDiscoveryUpsert) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryUpsert {
	u.Set(taskdiscovery.FieldResolutionStatus, v)
	return u
}

// UpdateResolutionStatus sets the "resolution_status" field to the value that was provided on create.
func (u *TaskDiscoveryUpsert) UpdateResolutionStatus() *TaskDiscoveryUpsert {
	u.SetExcluded(taskdiscovery.FieldResolutionStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskdiscovery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskDiscoveryUpsertOne) UpdateNewValues() *TaskDiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(taskdiscovery.FieldID)
		}
		if _, exists := u.create.mutation.SourceTaskID(); exists {
			s.SetIgnore(taskdiscovery.FieldSourceTaskID)
		}
		if _, exists := u.create.mutation.DiscoveredAt(); exists {
			s.SetIgnore(taskdiscovery.FieldDiscoveredAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskDiscoveryUpsertOne) Ignore() *TaskDiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskDiscoveryUpsertOne) DoNothing() *TaskDiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskDiscoveryCreate.OnConflict
// documentation for more info.
func (u *TaskDiscoveryUpsertOne) Update(set func(*TaskDiscoveryUpsert)) *TaskDiscoveryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskDiscoveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetDiscoveryType sets the "discovery_type" field.
func (u *TaskDiscoveryUpsertOne) SetDiscoveryType(v string) *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetDiscoveryType(v)
	})
}

// UpdateDiscoveryType sets the "discovery_type" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertOne) UpdateDiscoveryType() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateDiscoveryType()
	})
}

// SetDescription sets the "description" field.
func (u *TaskDiscoveryUpsertOne) SetDescription(v string) *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertOne) UpdateDescription() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateDescription()
	})
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsertOne) SetSpawnedTaskIds(v []string) *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetSpawnedTaskIds(v)
	})
}

// UpdateSpawnedTaskIds sets the "spawned_task_ids" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertOne) UpdateSpawnedTaskIds() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateSpawnedTaskIds()
	})
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsertOne) ClearSpawnedTaskIds() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.ClearSpawnedTaskIds()
	})
}

// SetPriorityBoost sets the "priority_boost" field.
func (u *TaskDiscoveryUpsertOne) SetPriorityBoost(v bool) *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetPriorityBoost(v)
	})
}

// UpdatePriorityBoost sets the "priority_boost" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertOne) UpdatePriorityBoost() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdatePriorityBoost()
	})
}

// SetResolutionStatus sets the "resolution_status" field.
func (u *TaskDiscoveryUpsertOne) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetResolutionStatus(v)
	})
}

// UpdateResolutionStatus sets the "resolution_status" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertOne) UpdateResolutionStatus() *TaskDiscoveryUpsertOne {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateResolutionStatus()
	})
}

// Exec executes the query.
func (u *TaskDiscoveryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskDiscoveryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskDiscoveryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskDiscoveryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TaskDiscoveryUpsertOne.ID is not supported by MySQL driver. Use TaskDiscoveryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskDiscoveryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskDiscoveryCreateBulk is the builder for creating many TaskDiscovery entities in bulk.
type TaskDiscoveryCreateBulk struct {
	config
	err      error
	builders []*TaskDiscoveryCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskDiscovery entities in the database.
func (_c *TaskDiscoveryCreateBulk) Save(ctx context.Context) ([]*TaskDiscovery, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskDiscovery, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskDiscoveryMutation)
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
func (_c *TaskDiscoveryCreateBulk) SaveX(ctx context.Context) []*TaskDiscovery {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskDiscoveryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskDiscoveryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskDiscovery.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskDiscoveryUpsert) {
//			SetSourceTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskDiscoveryCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskDiscoveryUpsertBulk {
	_c.conflict = opts
	return &TaskDiscoveryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskDiscoveryCreateBulk) OnConflictColumns(columns ...string) *TaskDiscoveryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskDiscoveryUpsertBulk{
		create: _c,
	}
}

// TaskDiscoveryUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskDiscovery nodes.
type TaskDiscoveryUpsertBulk struct {
	create *TaskDiscoveryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(taskdiscovery.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TaskDiscoveryUpsertBulk) UpdateNewValues() *TaskDiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(taskdiscovery.FieldID)
			}
			if _, exists := b.mutation.SourceTaskID(); exists {
				s.SetIgnore(taskdiscovery.FieldSourceTaskID)
			}
			if _, exists := b.mutation.DiscoveredAt(); exists {
				s.SetIgnore(taskdiscovery.FieldDiscoveredAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskDiscovery.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskDiscoveryUpsertBulk) Ignore() *TaskDiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskDiscoveryUpsertBulk) DoNothing() *TaskDiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskDiscoveryCreateBulk.OnConflict
// documentation for more info.
func (u *TaskDiscoveryUpsertBulk) Update(set func(*TaskDiscoveryUpsert)) *TaskDiscoveryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskDiscoveryUpsert{UpdateSet: update})
	}))
	return u
}

// SetDiscoveryType sets the "discovery_type" field.
func (u *TaskDiscoveryUpsertBulk) SetDiscoveryType(v string) *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetDiscoveryType(v)
	})
}

// UpdateDiscoveryType sets the "discovery_type" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertBulk) UpdateDiscoveryType() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateDiscoveryType()
	})
}

// SetDescription sets the "description" field.
func (u *TaskDiscoveryUpsertBulk) SetDescription(v string) *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertBulk) UpdateDescription() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateDescription()
	})
}

// SetSpawnedTaskIds sets the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsertBulk) SetSpawnedTaskIds(v []string) *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetSpawnedTaskIds(v)
	})
}

// UpdateSpawnedTaskIds sets the "spawned_task_ids" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertBulk) UpdateSpawnedTaskIds() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateSpawnedTaskIds()
	})
}

// ClearSpawnedTaskIds clears the value of the "spawned_task_ids" field.
func (u *TaskDiscoveryUpsertBulk) ClearSpawnedTaskIds() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.ClearSpawnedTaskIds()
	})
}

// SetPriorityBoost sets the "priority_boost" field.
func (u *TaskDiscoveryUpsertBulk) SetPriorityBoost(v bool) *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetPriorityBoost(v)
	})
}

// UpdatePriorityBoost sets the "priority_boost" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertBulk) UpdatePriorityBoost() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdatePriorityBoost()
	})
}

// SetResolutionStatus sets the "resolution_status" field.
func (u *TaskDiscoveryUpsertBulk) SetResolutionStatus(v taskdiscovery.ResolutionStatus) *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.SetResolutionStatus(v)
	})
}

// UpdateResolutionStatus sets the "resolution_status" field to the value that was provided on create.
func (u *TaskDiscoveryUpsertBulk) UpdateResolutionStatus() *TaskDiscoveryUpsertBulk {
	return u.Update(func(s *TaskDiscoveryUpsert) {
		s.UpdateResolutionStatus()
	})
}

// Exec executes the query.
func (u *TaskDiscoveryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskDiscoveryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskDiscoveryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskDiscoveryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
