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
)

// AgentResultCreate is the builder for creating a AgentResult entity.
type AgentResultCreate struct {
	config
	mutation *AgentResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *AgentResultCreate) SetTaskID(v string) *AgentResultCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *AgentResultCreate) SetAgentID(v string) *AgentResultCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetMarkdownContent sets the "markdown_content" field.
func (_c *AgentResultCreate) SetMarkdownContent(v string) *AgentResultCreate {
	_c.mutation.SetMarkdownContent(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *AgentResultCreate) SetSummary(v string) *AgentResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *AgentResultCreate) SetNillableSummary(v *string) *AgentResultCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetCommitSha sets the "commit_sha" field.
func (_c *AgentResultCreate) SetCommitSha(v string) *AgentResultCreate {
	_c.mutation.SetCommitSha(v)
	return _c
}

// SetNillableCommitSha sets the "commit_sha" field if the given value is not nil.
func (_c *AgentResultCreate) SetNillableCommitSha(v *string) *AgentResultCreate {
	if v != nil {
		_c.SetCommitSha(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentResultCreate) SetCreatedAt(v time.Time) *AgentResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentResultCreate) SetNillableCreatedAt(v *time.Time) *AgentResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentResultCreate) SetID(v string) *AgentResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *AgentResultCreate) SetTask(v *Task) *AgentResultCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the AgentResultMutation object of the builder.
func (_c *AgentResultCreate) Mutation() *AgentResultMutation {
	return _c.mutation
}

// Save creates the AgentResult in the database.
func (_c *AgentResultCreate) Save(ctx context.Context) (*AgentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentResultCreate) SaveX(ctx context.Context) *AgentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentResultCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AgentResult.task_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "AgentResult.agent_id"`)}
	}
	if _, ok := _c.mutation.MarkdownContent(); !ok {
		return &ValidationError{Name: "markdown_content", err: errors.New(`ent: missing required field "AgentResult.markdown_content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentResult.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "AgentResult.task"`)}
	}
	return nil
}

func (_c *AgentResultCreate) sqlSave(ctx context.Context) (*AgentResult, error) {
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
			return nil, fmt.Errorf("unexpected AgentResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentResultCreate) createSpec() (*AgentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentresult.Table, sqlgraph.NewFieldSpec(agentresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(agentresult.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.MarkdownContent(); ok {
		_spec.SetField(agentresult.FieldMarkdownContent, field.TypeString, value)
		_node.MarkdownContent = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(agentresult.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.CommitSha(); ok {
		_spec.SetField(agentresult.FieldCommitSha, field.TypeString, value)
		_node.CommitSha = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentresult.TaskTable,
			Columns: []string{agentresult.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentResult.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentResultUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentResultCreate) OnConflict(opts ...sql.ConflictOption) *AgentResultUpsertOne {
	_c.conflict = opts
	return &AgentResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentResultCreate) OnConflictColumns(columns ...string) *AgentResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentResultUpsertOne{
		create: _c,
	}
}

type (
	// AgentResultUpsertOne is the builder for "upsert"-ing
	//  one AgentResult node.
	AgentResultUpsertOne struct {
		create *AgentResultCreate
	}

	// AgentResultUpsert is the "OnConflict" setter.
	AgentResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetAgentID sets the "agent_id" field.
func (u *AgentResultUpsert) SetAgentID(v string) *AgentResultUpsert {
	u.Set(agentresult.FieldAgentID, v)
	return u
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentResultUpsert) UpdateAgentID() *AgentResultUpsert {
	u.SetExcluded(agentresult.FieldAgentID)
	return u
}

// SetMarkdownContent sets the "markdown_content" field.
func (u *AgentResultUpsert) SetMarkdownContent(v string) *AgentResultUpsert {
	u.Set(agentresult.FieldMarkdownContent, v)
	return u
}

// UpdateMarkdownContent sets the "markdown_content" field to the value that was provided on create.
func (u *AgentResultUpsert) UpdateMarkdownContent() *AgentResultUpsert {
	u.SetExcluded(agentresult.FieldMarkdownContent)
	return u
}

// SetSummary sets the "summary" field.
func (u *AgentResultUpsert) SetSummary(v string) *AgentResultUpsert {
	u.Set(agentresult.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AgentResultUpsert) UpdateSummary() *AgentResultUpsert {
	u.SetExcluded(agentresult.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *AgentResultUpsert) ClearSummary() *AgentResultUpsert {
	u.SetNull(agentresult.FieldSummary)
	return u
}

// SetCommitSha sets the "commit_sha" field.
func (u *AgentResultUpsert) SetCommitSha(v string) *AgentResultUpsert {
	u.Set(agentresult.FieldCommitSha, v)
	return u
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *AgentResultUpsert) UpdateCommitSha() *AgentResultUpsert {
	u.SetExcluded(agentresult.FieldCommitSha)
	return u
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *AgentResultUpsert) ClearCommitSha() *AgentResultUpsert {
	u.SetNull(agentresult.FieldCommitSha)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentResultUpsertOne) UpdateNewValues() *AgentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentresult.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(agentresult.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentResultUpsertOne) Ignore() *AgentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentResultUpsertOne) DoNothing() *AgentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentResultCreate.OnConflict
// documentation for more info.
func (u *AgentResultUpsertOne) Update(set func(*AgentResultUpsert)) *AgentResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *AgentResultUpsertOne) SetAgentID(v string) *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentResultUpsertOne) UpdateAgentID() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateAgentID()
	})
}

// SetMarkdownContent sets the "markdown_content" field.
func (u *AgentResultUpsertOne) SetMarkdownContent(v string) *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetMarkdownContent(v)
	})
}

// UpdateMarkdownContent sets the "markdown_content" field to the value that was provided on create.
func (u *AgentResultUpsertOne) UpdateMarkdownContent() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateMarkdownContent()
	})
}

// SetSummary sets the "summary" field.
func (u *AgentResultUpsertOne) SetSummary(v string) *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AgentResultUpsertOne) UpdateSummary() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AgentResultUpsertOne) ClearSummary() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.ClearSummary()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *AgentResultUpsertOne) SetCommitSha(v string) *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *AgentResultUpsertOne) UpdateCommitSha() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *AgentResultUpsertOne) ClearCommitSha() *AgentResultUpsertOne {
	return u.Update(func(s *AgentResultUpsert) {
		s.ClearCommitSha()
	})
}

// Exec executes the query.
func (u *AgentResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentResultUpsertOne.ID is not supported by MySQL driver. Use AgentResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentResultCreateBulk is the builder for creating many AgentResult entities in bulk.
type AgentResultCreateBulk struct {
	config
	err      error
	builders []*AgentResultCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentResult entities in the database.
func (_c *AgentResultCreateBulk) Save(ctx context.Context) ([]*AgentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentResultMutation)
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
func (_c *AgentResultCreateBulk) SaveX(ctx context.Context) []*AgentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentResultUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentResultUpsertBulk {
	_c.conflict = opts
	return &AgentResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentResultCreateBulk) OnConflictColumns(columns ...string) *AgentResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentResultUpsertBulk{
		create: _c,
	}
}

// AgentResultUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentResult nodes.
type AgentResultUpsertBulk struct {
	create *AgentResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentResultUpsertBulk) UpdateNewValues() *AgentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentresult.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(agentresult.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentResultUpsertBulk) Ignore() *AgentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentResultUpsertBulk) DoNothing() *AgentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentResultCreateBulk.OnConflict
// documentation for more info.
func (u *AgentResultUpsertBulk) Update(set func(*AgentResultUpsert)) *AgentResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetAgentID sets the "agent_id" field.
func (u *AgentResultUpsertBulk) SetAgentID(v string) *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetAgentID(v)
	})
}

// UpdateAgentID sets the "agent_id" field to the value that was provided on create.
func (u *AgentResultUpsertBulk) UpdateAgentID() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateAgentID()
	})
}

// SetMarkdownContent sets the "markdown_content" field.
func (u *AgentResultUpsertBulk) SetMarkdownContent(v string) *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetMarkdownContent(v)
	})
}

// UpdateMarkdownContent sets the "markdown_content" field to the value that was provided on create.
func (u *AgentResultUpsertBulk) UpdateMarkdownContent() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateMarkdownContent()
	})
}

// SetSummary sets the "summary" field.
func (u *AgentResultUpsertBulk) SetSummary(v string) *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *AgentResultUpsertBulk) UpdateSummary() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *AgentResultUpsertBulk) ClearSummary() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.ClearSummary()
	})
}

// SetCommitSha sets the "commit_sha" field.
func (u *AgentResultUpsertBulk) SetCommitSha(v string) *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.SetCommitSha(v)
	})
}

// UpdateCommitSha sets the "commit_sha" field to the value that was provided on create.
func (u *AgentResultUpsertBulk) UpdateCommitSha() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.UpdateCommitSha()
	})
}

// ClearCommitSha clears the value of the "commit_sha" field.
func (u *AgentResultUpsertBulk) ClearCommitSha() *AgentResultUpsertBulk {
	return u.Update(func(s *AgentResultUpsert) {
		s.ClearCommitSha()
	})
}

// Exec executes the query.
func (u *AgentResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
