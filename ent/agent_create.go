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
	"github.com/droverhq/drover/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentType sets the "agent_type" field.
func (_c *AgentCreate) SetAgentType(v agent.AgentType) *AgentCreate {
	_c.mutation.SetAgentType(v)
	return _c
}

// SetPhaseID sets the "phase_id" field.
func (_c *AgentCreate) SetPhaseID(v string) *AgentCreate {
	_c.mutation.SetPhaseID(v)
	return _c
}

// SetNillablePhaseID sets the "phase_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillablePhaseID(v *string) *AgentCreate {
	if v != nil {
		_c.SetPhaseID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v []string) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *AgentCreate) SetTags(v []string) *AgentCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSandboxID sets the "sandbox_id" field.
func (_c *AgentCreate) SetSandboxID(v string) *AgentCreate {
	_c.mutation.SetSandboxID(v)
	return _c
}

// SetNillableSandboxID sets the "sandbox_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSandboxID(v *string) *AgentCreate {
	if v != nil {
		_c.SetSandboxID(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentCreate) SetLastHeartbeat(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeat(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentCreate) SetID(v string) *AgentCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := agent.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.AgentType(); !ok {
		return &ValidationError{Name: "agent_type", err: errors.New(`ent: missing required field "Agent.agent_type"`)}
	}
	if v, ok := _c.mutation.AgentType(); ok {
		if err := agent.AgentTypeFieldValidator(v); err != nil {
			return &ValidationError{Name: "agent_type", err: fmt.Errorf(`ent: validator failed for field "Agent.agent_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "Agent.last_heartbeat"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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
			return nil, fmt.Errorf("unexpected Agent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentType(); ok {
		_spec.SetField(agent.FieldAgentType, field.TypeEnum, value)
		_node.AgentType = value
	}
	if value, ok := _c.mutation.PhaseID(); ok {
		_spec.SetField(agent.FieldPhaseID, field.TypeString, value)
		_node.PhaseID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(agent.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.SandboxID(); ok {
		_spec.SetField(agent.FieldSandboxID, field.TypeString, value)
		_node.SandboxID = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetAgentType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsert) SetAgentType(v agent.AgentType) *AgentUpsert {
	u.Set(agent.FieldAgentType, v)
	return u
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAgentType() *AgentUpsert {
	u.SetExcluded(agent.FieldAgentType)
	return u
}

// SetPhaseID sets the "phase_id" field.
func (u *AgentUpsert) SetPhaseID(v string) *AgentUpsert {
	u.Set(agent.FieldPhaseID, v)
	return u
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdatePhaseID() *AgentUpsert {
	u.SetExcluded(agent.FieldPhaseID)
	return u
}

// ClearPhaseID clears the value of the "phase_id" field.
func (u *AgentUpsert) ClearPhaseID() *AgentUpsert {
	u.SetNull(agent.FieldPhaseID)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsert) SetCapabilities(v []string) *AgentUpsert {
	u.Set(agent.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapabilities() *AgentUpsert {
	u.SetExcluded(agent.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsert) ClearCapabilities() *AgentUpsert {
	u.SetNull(agent.FieldCapabilities)
	return u
}

// SetTags sets the "tags" field.
func (u *AgentUpsert) SetTags(v []string) *AgentUpsert {
	u.Set(agent.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTags() *AgentUpsert {
	u.SetExcluded(agent.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *AgentUpsert) ClearTags() *AgentUpsert {
	u.SetNull(agent.FieldTags)
	return u
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsert) SetSandboxID(v string) *AgentUpsert {
	u.Set(agent.FieldSandboxID, v)
	return u
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSandboxID() *AgentUpsert {
	u.SetExcluded(agent.FieldSandboxID)
	return u
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsert) ClearSandboxID() *AgentUpsert {
	u.SetNull(agent.FieldSandboxID)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsert) SetLastHeartbeat(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastHeartbeat() *AgentUpsert {
	u.SetExcluded(agent.FieldLastHeartbeat)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agent.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsertOne) SetAgentType(v agent.AgentType) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAgentType() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentType()
	})
}

// SetPhaseID sets the "phase_id" field.
func (u *AgentUpsertOne) SetPhaseID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdatePhaseID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePhaseID()
	})
}

// ClearPhaseID clears the value of the "phase_id" field.
func (u *AgentUpsertOne) ClearPhaseID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearPhaseID()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertOne) SetCapabilities(v []string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertOne) ClearCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetTags sets the "tags" field.
func (u *AgentUpsertOne) SetTags(v []string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTags() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *AgentUpsertOne) ClearTags() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearTags()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsertOne) SetSandboxID(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSandboxID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsertOne) ClearSandboxID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSandboxID()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertOne) SetLastHeartbeat(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentUpsertOne.ID is not supported by MySQL driver. Use AgentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetAgentType(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agent.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentType sets the "agent_type" field.
func (u *AgentUpsertBulk) SetAgentType(v agent.AgentType) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAgentType(v)
	})
}

// UpdateAgentType sets the "agent_type" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAgentType() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAgentType()
	})
}

// SetPhaseID sets the "phase_id" field.
func (u *AgentUpsertBulk) SetPhaseID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetPhaseID(v)
	})
}

// UpdatePhaseID sets the "phase_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdatePhaseID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdatePhaseID()
	})
}

// ClearPhaseID clears the value of the "phase_id" field.
func (u *AgentUpsertBulk) ClearPhaseID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearPhaseID()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertBulk) SetCapabilities(v []string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertBulk) ClearCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetTags sets the "tags" field.
func (u *AgentUpsertBulk) SetTags(v []string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTags() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *AgentUpsertBulk) ClearTags() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearTags()
	})
}

// SetSandboxID sets the "sandbox_id" field.
func (u *AgentUpsertBulk) SetSandboxID(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSandboxID(v)
	})
}

// UpdateSandboxID sets the "sandbox_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSandboxID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSandboxID()
	})
}

// ClearSandboxID clears the value of the "sandbox_id" field.
func (u *AgentUpsertBulk) ClearSandboxID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearSandboxID()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertBulk) SetLastHeartbeat(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
