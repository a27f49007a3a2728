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
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/ticket"
)

// PlaybookChangeCreate is the builder for creating a PlaybookChange entity.
type PlaybookChangeCreate struct {
	config
	mutation *PlaybookChangeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *PlaybookChangeCreate) SetTicketID(v string) *PlaybookChangeCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetChangeType sets the "change_type" field.
func (_c *PlaybookChangeCreate) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeCreate {
	_c.mutation.SetChangeType(v)
	return _c
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_c *PlaybookChangeCreate) SetNillableChangeType(v *playbookchange.ChangeType) *PlaybookChangeCreate {
	if v != nil {
		_c.SetChangeType(*v)
	}
	return _c
}

// SetSection sets the "section" field.
func (_c *PlaybookChangeCreate) SetSection(v string) *PlaybookChangeCreate {
	_c.mutation.SetSection(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PlaybookChangeCreate) SetContent(v string) *PlaybookChangeCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *PlaybookChangeCreate) SetReasoning(v string) *PlaybookChangeCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *PlaybookChangeCreate) SetNillableReasoning(v *string) *PlaybookChangeCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (_c *PlaybookChangeCreate) SetRelatedMemoryID(v string) *PlaybookChangeCreate {
	_c.mutation.SetRelatedMemoryID(v)
	return _c
}

// SetNillableRelatedMemoryID sets the "related_memory_id" field if the given value is not nil.
func (_c *PlaybookChangeCreate) SetNillableRelatedMemoryID(v *string) *PlaybookChangeCreate {
	if v != nil {
		_c.SetRelatedMemoryID(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PlaybookChangeCreate) SetCreatedBy(v string) *PlaybookChangeCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PlaybookChangeCreate) SetNillableCreatedBy(v *string) *PlaybookChangeCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlaybookChangeCreate) SetCreatedAt(v time.Time) *PlaybookChangeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlaybookChangeCreate) SetNillableCreatedAt(v *time.Time) *PlaybookChangeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlaybookChangeCreate) SetID(v string) *PlaybookChangeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *PlaybookChangeCreate) SetTicket(v *Ticket) *PlaybookChangeCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the PlaybookChangeMutation object of the builder.
func (_c *PlaybookChangeCreate) Mutation() *PlaybookChangeMutation {
	return _c.mutation
}

// Save creates the PlaybookChange in the database.
func (_c *PlaybookChangeCreate) Save(ctx context.Context) (*PlaybookChange, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybookChangeCreate) SaveX(ctx context.Context) *PlaybookChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookChangeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookChangeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybookChangeCreate) defaults() {
	if _, ok := _c.mutation.ChangeType(); !ok {
		v := playbookchange.DefaultChangeType
		_c.mutation.SetChangeType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := playbookchange.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybookChangeCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "PlaybookChange.ticket_id"`)}
	}
	if _, ok := _c.mutation.ChangeType(); !ok {
		return &ValidationError{Name: "change_type", err: errors.New(`ent: missing required field "PlaybookChange.change_type"`)}
	}
	if v, ok := _c.mutation.ChangeType(); ok {
		if err := playbookchange.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PlaybookChange.change_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Section(); !ok {
		return &ValidationError{Name: "section", err: errors.New(`ent: missing required field "PlaybookChange.section"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PlaybookChange.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlaybookChange.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "PlaybookChange.ticket"`)}
	}
	return nil
}

func (_c *PlaybookChangeCreate) sqlSave(ctx context.Context) (*PlaybookChange, error) {
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
			return nil, fmt.Errorf("unexpected PlaybookChange.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlaybookChangeCreate) createSpec() (*PlaybookChange, *sqlgraph.CreateSpec) {
	var (
		_node = &PlaybookChange{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbookchange.Table, sqlgraph.NewFieldSpec(playbookchange.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChangeType(); ok {
		_spec.SetField(playbookchange.FieldChangeType, field.TypeEnum, value)
		_node.ChangeType = value
	}
	if value, ok := _c.mutation.Section(); ok {
		_spec.SetField(playbookchange.FieldSection, field.TypeString, value)
		_node.Section = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(playbookchange.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(playbookchange.FieldReasoning, field.TypeString, value)
		_node.Reasoning = &value
	}
	if value, ok := _c.mutation.RelatedMemoryID(); ok {
		_spec.SetField(playbookchange.FieldRelatedMemoryID, field.TypeString, value)
		_node.RelatedMemoryID = &value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(playbookchange.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(playbookchange.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   playbookchange.TicketTable,
			Columns: []string{playbookchange.TicketColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlaybookChange.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookChangeUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookChangeCreate) OnConflict(opts ...sql.ConflictOption) *PlaybookChangeUpsertOne {
	_c.conflict = opts
	return &PlaybookChangeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookChangeCreate) OnConflictColumns(columns ...string) *PlaybookChangeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookChangeUpsertOne{
		create: _c,
	}
}

type (
	// PlaybookChangeUpsertOne is the builder for "upsert"-ing
	//  one PlaybookChange node.
	PlaybookChangeUpsertOne struct {
		create *PlaybookChangeCreate
	}

	// PlaybookChangeUpsert is the "OnConflict" setter.
	PlaybookChangeUpsert struct {
		*sql.UpdateSet
	}
)

// SetChangeType sets the "change_type" field.
func (u *PlaybookChangeUpsert) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldChangeType, v)
	return u
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateChangeType() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldChangeType)
	return u
}

// SetSection sets the "section" field.
func (u *PlaybookChangeUpsert) SetSection(v string) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldSection, v)
	return u
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateSection() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldSection)
	return u
}

// SetContent sets the "content" field.
func (u *PlaybookChangeUpsert) SetContent(v string) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateContent() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldContent)
	return u
}

// SetReasoning sets the "reasoning" field.
func (u *PlaybookChangeUpsert) SetReasoning(v string) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldReasoning, v)
	return u
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateReasoning() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldReasoning)
	return u
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *PlaybookChangeUpsert) ClearReasoning() *PlaybookChangeUpsert {
	u.SetNull(playbookchange.FieldReasoning)
	return u
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (u *PlaybookChangeUpsert) SetRelatedMemoryID(v string) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldRelatedMemoryID, v)
	return u
}

// UpdateRelatedMemoryID sets the "related_memory_id" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateRelatedMemoryID() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldRelatedMemoryID)
	return u
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (u *PlaybookChangeUpsert) ClearRelatedMemoryID() *PlaybookChangeUpsert {
	u.SetNull(playbookchange.FieldRelatedMemoryID)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookChangeUpsert) SetCreatedBy(v string) *PlaybookChangeUpsert {
	u.Set(playbookchange.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookChangeUpsert) UpdateCreatedBy() *PlaybookChangeUpsert {
	u.SetExcluded(playbookchange.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookChangeUpsert) ClearCreatedBy() *PlaybookChangeUpsert {
	u.SetNull(playbookchange.FieldCreatedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookchange.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookChangeUpsertOne) UpdateNewValues() *PlaybookChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(playbookchange.FieldID)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(playbookchange.FieldTicketID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(playbookchange.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlaybookChangeUpsertOne) Ignore() *PlaybookChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookChangeUpsertOne) DoNothing() *PlaybookChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookChangeCreate.OnConflict
// documentation for more info.
func (u *PlaybookChangeUpsertOne) Update(set func(*PlaybookChangeUpsert)) *PlaybookChangeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookChangeUpsert{UpdateSet: update})
	}))
	return u
}

// SetChangeType sets the "change_type" field.
func (u *PlaybookChangeUpsertOne) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateChangeType() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateChangeType()
	})
}

// SetSection sets the "section" field.
func (u *PlaybookChangeUpsertOne) SetSection(v string) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateSection() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateSection()
	})
}

// SetContent sets the "content" field.
func (u *PlaybookChangeUpsertOne) SetContent(v string) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateContent() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateContent()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *PlaybookChangeUpsertOne) SetReasoning(v string) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateReasoning() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *PlaybookChangeUpsertOne) ClearReasoning() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearReasoning()
	})
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (u *PlaybookChangeUpsertOne) SetRelatedMemoryID(v string) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetRelatedMemoryID(v)
	})
}

// UpdateRelatedMemoryID sets the "related_memory_id" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateRelatedMemoryID() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateRelatedMemoryID()
	})
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (u *PlaybookChangeUpsertOne) ClearRelatedMemoryID() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearRelatedMemoryID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookChangeUpsertOne) SetCreatedBy(v string) *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookChangeUpsertOne) UpdateCreatedBy() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookChangeUpsertOne) ClearCreatedBy() *PlaybookChangeUpsertOne {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearCreatedBy()
	})
}

// Exec executes the query.
func (u *PlaybookChangeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookChangeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookChangeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlaybookChangeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlaybookChangeUpsertOne.ID is not supported by MySQL driver. Use PlaybookChangeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlaybookChangeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlaybookChangeCreateBulk is the builder for creating many PlaybookChange entities in bulk.
type PlaybookChangeCreateBulk struct {
	config
	err      error
	builders []*PlaybookChangeCreate
	conflict []sql.ConflictOption
}

// Save creates the PlaybookChange entities in the database.
func (_c *PlaybookChangeCreateBulk) Save(ctx context.Context) ([]*PlaybookChange, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlaybookChange, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybookChangeMutation)
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
func (_c *PlaybookChangeCreateBulk) SaveX(ctx context.Context) []*PlaybookChange {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookChangeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookChangeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlaybookChange.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookChangeUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookChangeCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlaybookChangeUpsertBulk {
	_c.conflict = opts
	return &PlaybookChangeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookChangeCreateBulk) OnConflictColumns(columns ...string) *PlaybookChangeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookChangeUpsertBulk{
		create: _c,
	}
}

// PlaybookChangeUpsertBulk is the builder for "upsert"-ing
// a bulk of PlaybookChange nodes.
type PlaybookChangeUpsertBulk struct {
	create *PlaybookChangeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookchange.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookChangeUpsertBulk) UpdateNewValues() *PlaybookChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(playbookchange.FieldID)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(playbookchange.FieldTicketID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(playbookchange.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookChange.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlaybookChangeUpsertBulk) Ignore() *PlaybookChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookChangeUpsertBulk) DoNothing() *PlaybookChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookChangeCreateBulk.OnConflict
// documentation for more info.
func (u *PlaybookChangeUpsertBulk) Update(set func(*PlaybookChangeUpsert)) *PlaybookChangeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookChangeUpsert{UpdateSet: update})
	}))
	return u
}

// SetChangeType sets the "change_type" field.
func (u *PlaybookChangeUpsertBulk) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetChangeType(v)
	})
}

// UpdateChangeType sets the "change_type" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateChangeType() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateChangeType()
	})
}

// SetSection sets the "section" field.
func (u *PlaybookChangeUpsertBulk) SetSection(v string) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetSection(v)
	})
}

// UpdateSection sets the "section" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateSection() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateSection()
	})
}

// SetContent sets the "content" field.
func (u *PlaybookChangeUpsertBulk) SetContent(v string) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateContent() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateContent()
	})
}

// SetReasoning sets the "reasoning" field.
func (u *PlaybookChangeUpsertBulk) SetReasoning(v string) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetReasoning(v)
	})
}

// UpdateReasoning sets the "reasoning" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateReasoning() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateReasoning()
	})
}

// ClearReasoning clears the value of the "reasoning" field.
func (u *PlaybookChangeUpsertBulk) ClearReasoning() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearReasoning()
	})
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (u *PlaybookChangeUpsertBulk) SetRelatedMemoryID(v string) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetRelatedMemoryID(v)
	})
}

// UpdateRelatedMemoryID sets the "related_memory_id" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateRelatedMemoryID() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateRelatedMemoryID()
	})
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (u *PlaybookChangeUpsertBulk) ClearRelatedMemoryID() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearRelatedMemoryID()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookChangeUpsertBulk) SetCreatedBy(v string) *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookChangeUpsertBulk) UpdateCreatedBy() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookChangeUpsertBulk) ClearCreatedBy() *PlaybookChangeUpsertBulk {
	return u.Update(func(s *PlaybookChangeUpsert) {
		s.ClearCreatedBy()
	})
}

// Exec executes the query.
func (u *PlaybookChangeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlaybookChangeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookChangeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookChangeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
