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
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/ticket"
)

// PlaybookEntryCreate is the builder for creating a PlaybookEntry entity.
type PlaybookEntryCreate struct {
	config
	mutation *PlaybookEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *PlaybookEntryCreate) SetTicketID(v string) *PlaybookEntryCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PlaybookEntryCreate) SetContent(v string) *PlaybookEntryCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *PlaybookEntryCreate) SetCategory(v playbookentry.Category) *PlaybookEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *PlaybookEntryCreate) SetNillableCategory(v *playbookentry.Category) *PlaybookEntryCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *PlaybookEntryCreate) SetTags(v []string) *PlaybookEntryCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (_c *PlaybookEntryCreate) SetSupportingMemoryIds(v []string) *PlaybookEntryCreate {
	_c.mutation.SetSupportingMemoryIds(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *PlaybookEntryCreate) SetIsActive(v bool) *PlaybookEntryCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *PlaybookEntryCreate) SetNillableIsActive(v *bool) *PlaybookEntryCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *PlaybookEntryCreate) SetCreatedBy(v string) *PlaybookEntryCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *PlaybookEntryCreate) SetNillableCreatedBy(v *string) *PlaybookEntryCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlaybookEntryCreate) SetCreatedAt(v time.Time) *PlaybookEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlaybookEntryCreate) SetNillableCreatedAt(v *time.Time) *PlaybookEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PlaybookEntryCreate) SetUpdatedAt(v time.Time) *PlaybookEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PlaybookEntryCreate) SetNillableUpdatedAt(v *time.Time) *PlaybookEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlaybookEntryCreate) SetID(v string) *PlaybookEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *PlaybookEntryCreate) SetTicket(v *Ticket) *PlaybookEntryCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the PlaybookEntryMutation object of the builder.
func (_c *PlaybookEntryCreate) Mutation() *PlaybookEntryMutation {
	return _c.mutation
}

// Save creates the PlaybookEntry in the database.
func (_c *PlaybookEntryCreate) Save(ctx context.Context) (*PlaybookEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlaybookEntryCreate) SaveX(ctx context.Context) *PlaybookEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlaybookEntryCreate) defaults() {
	if _, ok := _c.mutation.Category(); !ok {
		v := playbookentry.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := playbookentry.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := playbookentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := playbookentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlaybookEntryCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "PlaybookEntry.ticket_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PlaybookEntry.content"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "PlaybookEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := playbookentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PlaybookEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "PlaybookEntry.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlaybookEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PlaybookEntry.updated_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "PlaybookEntry.ticket"`)}
	}
	return nil
}

func (_c *PlaybookEntryCreate) sqlSave(ctx context.Context) (*PlaybookEntry, error) {
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
			return nil, fmt.Errorf("unexpected PlaybookEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlaybookEntryCreate) createSpec() (*PlaybookEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &PlaybookEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(playbookentry.Table, sqlgraph.NewFieldSpec(playbookentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(playbookentry.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(playbookentry.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(playbookentry.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.SupportingMemoryIds(); ok {
		_spec.SetField(playbookentry.FieldSupportingMemoryIds, field.TypeJSON, value)
		_node.SupportingMemoryIds = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(playbookentry.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(playbookentry.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(playbookentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   playbookentry.TicketTable,
			Columns: []string{playbookentry.TicketColumn},
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
//	client.PlaybookEntry.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookEntryUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookEntryCreate) OnConflict(opts ...sql.ConflictOption) *PlaybookEntryUpsertOne {
	_c.conflict = opts
	return &PlaybookEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookEntryCreate) OnConflictColumns(columns ...string) *PlaybookEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookEntryUpsertOne{
		create: _c,
	}
}

type (
	// PlaybookEntryUpsertOne is the builder for "upsert"-ing
	//  one PlaybookEntry node.
	PlaybookEntryUpsertOne struct {
		create *PlaybookEntryCreate
	}

	// PlaybookEntryUpsert is the "OnConflict" setter.
	PlaybookEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetContent sets the "content" field.
func (u *PlaybookEntryUpsert) SetContent(v string) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateContent() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldContent)
	return u
}

// SetCategory sets the "category" field.
func (u *PlaybookEntryUpsert) SetCategory(v playbookentry.Category) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateCategory() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldCategory)
	return u
}

// SetTags sets the "tags" field.
func (u *PlaybookEntryUpsert) SetTags(v []string) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldTags, v)
	return u
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateTags() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldTags)
	return u
}

// ClearTags clears the value of the "tags" field.
func (u *PlaybookEntryUpsert) ClearTags() *PlaybookEntryUpsert {
	u.SetNull(playbookentry.FieldTags)
	return u
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsert) SetSupportingMemoryIds(v []string) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldSupportingMemoryIds, v)
	return u
}

// UpdateSupportingMemoryIds sets the "supporting_memory_ids" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateSupportingMemoryIds() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldSupportingMemoryIds)
	return u
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsert) ClearSupportingMemoryIds() *PlaybookEntryUpsert {
	u.SetNull(playbookentry.FieldSupportingMemoryIds)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *PlaybookEntryUpsert) SetIsActive(v bool) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateIsActive() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldIsActive)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookEntryUpsert) SetCreatedBy(v string) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateCreatedBy() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookEntryUpsert) ClearCreatedBy() *PlaybookEntryUpsert {
	u.SetNull(playbookentry.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookEntryUpsert) SetUpdatedAt(v time.Time) *PlaybookEntryUpsert {
	u.Set(playbookentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookEntryUpsert) UpdateUpdatedAt() *PlaybookEntryUpsert {
	u.SetExcluded(playbookentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookEntryUpsertOne) UpdateNewValues() *PlaybookEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(playbookentry.FieldID)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(playbookentry.FieldTicketID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(playbookentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlaybookEntryUpsertOne) Ignore() *PlaybookEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookEntryUpsertOne) DoNothing() *PlaybookEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookEntryCreate.OnConflict
// documentation for more info.
func (u *PlaybookEntryUpsertOne) Update(set func(*PlaybookEntryUpsert)) *PlaybookEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *PlaybookEntryUpsertOne) SetContent(v string) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateContent() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateContent()
	})
}

// SetCategory sets the "category" field.
func (u *PlaybookEntryUpsertOne) SetCategory(v playbookentry.Category) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateCategory() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateCategory()
	})
}

// SetTags sets the "tags" field.
func (u *PlaybookEntryUpsertOne) SetTags(v []string) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateTags() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *PlaybookEntryUpsertOne) ClearTags() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearTags()
	})
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsertOne) SetSupportingMemoryIds(v []string) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetSupportingMemoryIds(v)
	})
}

// UpdateSupportingMemoryIds sets the "supporting_memory_ids" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateSupportingMemoryIds() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateSupportingMemoryIds()
	})
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsertOne) ClearSupportingMemoryIds() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearSupportingMemoryIds()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PlaybookEntryUpsertOne) SetIsActive(v bool) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateIsActive() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateIsActive()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookEntryUpsertOne) SetCreatedBy(v string) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateCreatedBy() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookEntryUpsertOne) ClearCreatedBy() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookEntryUpsertOne) SetUpdatedAt(v time.Time) *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookEntryUpsertOne) UpdateUpdatedAt() *PlaybookEntryUpsertOne {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlaybookEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlaybookEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PlaybookEntryUpsertOne.ID is not supported by MySQL driver. Use PlaybookEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlaybookEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlaybookEntryCreateBulk is the builder for creating many PlaybookEntry entities in bulk.
type PlaybookEntryCreateBulk struct {
	config
	err      error
	builders []*PlaybookEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the PlaybookEntry entities in the database.
func (_c *PlaybookEntryCreateBulk) Save(ctx context.Context) ([]*PlaybookEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlaybookEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlaybookEntryMutation)
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
func (_c *PlaybookEntryCreateBulk) SaveX(ctx context.Context) []*PlaybookEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlaybookEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlaybookEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlaybookEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlaybookEntryUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlaybookEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlaybookEntryUpsertBulk {
	_c.conflict = opts
	return &PlaybookEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlaybookEntryCreateBulk) OnConflictColumns(columns ...string) *PlaybookEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlaybookEntryUpsertBulk{
		create: _c,
	}
}

// PlaybookEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of PlaybookEntry nodes.
type PlaybookEntryUpsertBulk struct {
	create *PlaybookEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(playbookentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PlaybookEntryUpsertBulk) UpdateNewValues() *PlaybookEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(playbookentry.FieldID)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(playbookentry.FieldTicketID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(playbookentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlaybookEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlaybookEntryUpsertBulk) Ignore() *PlaybookEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlaybookEntryUpsertBulk) DoNothing() *PlaybookEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlaybookEntryCreateBulk.OnConflict
// documentation for more info.
func (u *PlaybookEntryUpsertBulk) Update(set func(*PlaybookEntryUpsert)) *PlaybookEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlaybookEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *PlaybookEntryUpsertBulk) SetContent(v string) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateContent() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateContent()
	})
}

// SetCategory sets the "category" field.
func (u *PlaybookEntryUpsertBulk) SetCategory(v playbookentry.Category) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateCategory() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateCategory()
	})
}

// SetTags sets the "tags" field.
func (u *PlaybookEntryUpsertBulk) SetTags(v []string) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetTags(v)
	})
}

// UpdateTags sets the "tags" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateTags() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateTags()
	})
}

// ClearTags clears the value of the "tags" field.
func (u *PlaybookEntryUpsertBulk) ClearTags() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearTags()
	})
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsertBulk) SetSupportingMemoryIds(v []string) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetSupportingMemoryIds(v)
	})
}

// UpdateSupportingMemoryIds sets the "supporting_memory_ids" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateSupportingMemoryIds() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateSupportingMemoryIds()
	})
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (u *PlaybookEntryUpsertBulk) ClearSupportingMemoryIds() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearSupportingMemoryIds()
	})
}

// SetIsActive sets the "is_active" field.
func (u *PlaybookEntryUpsertBulk) SetIsActive(v bool) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateIsActive() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateIsActive()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *PlaybookEntryUpsertBulk) SetCreatedBy(v string) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateCreatedBy() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *PlaybookEntryUpsertBulk) ClearCreatedBy() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PlaybookEntryUpsertBulk) SetUpdatedAt(v time.Time) *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PlaybookEntryUpsertBulk) UpdateUpdatedAt() *PlaybookEntryUpsertBulk {
	return u.Update(func(s *PlaybookEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *PlaybookEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlaybookEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlaybookEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlaybookEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
