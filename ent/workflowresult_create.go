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
	"github.com/droverhq/drover/ent/ticket"
	"github.com/droverhq/drover/ent/workflowresult"
)

// WorkflowResultCreate is the builder for creating a WorkflowResult entity.
type WorkflowResultCreate struct {
	config
	mutation *WorkflowResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTicketID sets the "ticket_id" field.
func (_c *WorkflowResultCreate) SetTicketID(v string) *WorkflowResultCreate {
	_c.mutation.SetTicketID(v)
	return _c
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (_c *WorkflowResultCreate) SetMarkdownFilePath(v string) *WorkflowResultCreate {
	_c.mutation.SetMarkdownFilePath(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowResultCreate) SetStatus(v workflowresult.Status) *WorkflowResultCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableStatus(v *workflowresult.Status) *WorkflowResultCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *WorkflowResultCreate) SetSubmittedBy(v string) *WorkflowResultCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableSubmittedBy(v *string) *WorkflowResultCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WorkflowResultCreate) SetSummary(v string) *WorkflowResultCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableSummary(v *string) *WorkflowResultCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetValidatedAt sets the "validated_at" field.
func (_c *WorkflowResultCreate) SetValidatedAt(v time.Time) *WorkflowResultCreate {
	_c.mutation.SetValidatedAt(v)
	return _c
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableValidatedAt(v *time.Time) *WorkflowResultCreate {
	if v != nil {
		_c.SetValidatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowResultCreate) SetCreatedAt(v time.Time) *WorkflowResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowResultCreate) SetNillableCreatedAt(v *time.Time) *WorkflowResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowResultCreate) SetID(v string) *WorkflowResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTicket sets the "ticket" edge to the Ticket entity.
func (_c *WorkflowResultCreate) SetTicket(v *Ticket) *WorkflowResultCreate {
	return _c.SetTicketID(v.ID)
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_c *WorkflowResultCreate) Mutation() *WorkflowResultMutation {
	return _c.mutation
}

// Save creates the WorkflowResult in the database.
func (_c *WorkflowResultCreate) Save(ctx context.Context) (*WorkflowResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowResultCreate) SaveX(ctx context.Context) *WorkflowResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowResultCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowresult.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowResultCreate) check() error {
	if _, ok := _c.mutation.TicketID(); !ok {
		return &ValidationError{Name: "ticket_id", err: errors.New(`ent: missing required field "WorkflowResult.ticket_id"`)}
	}
	if _, ok := _c.mutation.MarkdownFilePath(); !ok {
		return &ValidationError{Name: "markdown_file_path", err: errors.New(`ent: missing required field "WorkflowResult.markdown_file_path"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowResult.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowResult.created_at"`)}
	}
	if len(_c.mutation.TicketIDs()) == 0 {
		return &ValidationError{Name: "ticket", err: errors.New(`ent: missing required edge "WorkflowResult.ticket"`)}
	}
	return nil
}

func (_c *WorkflowResultCreate) sqlSave(ctx context.Context) (*WorkflowResult, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowResult.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowResultCreate) createSpec() (*WorkflowResult, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowresult.Table, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MarkdownFilePath(); ok {
		_spec.SetField(workflowresult.FieldMarkdownFilePath, field.TypeString, value)
		_node.MarkdownFilePath = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(workflowresult.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = &value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(workflowresult.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
		_node.ValidatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TicketIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowresult.TicketTable,
			Columns: []string{workflowresult.TicketColumn},
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
//	client.WorkflowResult.Create().
//		SetTicketID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowResultUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowResultCreate) OnConflict(opts ...sql.ConflictOption) *WorkflowResultUpsertOne {
	_c.conflict = opts
	return &WorkflowResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowResultCreate) OnConflictColumns(columns ...string) *WorkflowResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowResultUpsertOne{
		create: _c,
	}
}

type (
	// WorkflowResultUpsertOne is the builder for "upsert"-ing
	//  one WorkflowResult node.
	WorkflowResultUpsertOne struct {
		create *WorkflowResultCreate
	}

	// WorkflowResultUpsert is the "OnConflict" setter.
	WorkflowResultUpsert struct {
		*sql.UpdateSet
	}
)

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (u *WorkflowResultUpsert) SetMarkdownFilePath(v string) *WorkflowResultUpsert {
	u.Set(workflowresult.FieldMarkdownFilePath, v)
	return u
}

// UpdateMarkdownFilePath sets the "markdown_file_path" field to the value that was provided on create.
func (u *WorkflowResultUpsert) UpdateMarkdownFilePath() *WorkflowResultUpsert {
	u.SetExcluded(workflowresult.FieldMarkdownFilePath)
	return u
}

// SetStatus sets the "status" field.
func (u *WorkflowResultUpsert) SetStatus(v workflowresult.Status) *WorkflowResultUpsert {
	u.Set(workflowresult.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowResultUpsert) UpdateStatus() *WorkflowResultUpsert {
	u.SetExcluded(workflowresult.FieldStatus)
	return u
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *WorkflowResultUpsert) SetSubmittedBy(v string) *WorkflowResultUpsert {
	u.Set(workflowresult.FieldSubmittedBy, v)
	return u
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *WorkflowResultUpsert) UpdateSubmittedBy() *WorkflowResultUpsert {
	u.SetExcluded(workflowresult.FieldSubmittedBy)
	return u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *WorkflowResultUpsert) ClearSubmittedBy() *WorkflowResultUpsert {
	u.SetNull(workflowresult.FieldSubmittedBy)
	return u
}

// SetSummary sets the "summary" field.
func (u *WorkflowResultUpsert) SetSummary(v string) *WorkflowResultUpsert {
	u.Set(workflowresult.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *WorkflowResultUpsert) UpdateSummary() *WorkflowResultUpsert {
	u.SetExcluded(workflowresult.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *WorkflowResultUpsert) ClearSummary() *WorkflowResultUpsert {
	u.SetNull(workflowresult.FieldSummary)
	return u
}

// SetValidatedAt sets the "validated_at" field.
func (u *WorkflowResultUpsert) SetValidatedAt(v time.Time) *WorkflowResultUpsert {
	u.Set(workflowresult.FieldValidatedAt, v)
	return u
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *WorkflowResultUpsert) UpdateValidatedAt() *WorkflowResultUpsert {
	u.SetExcluded(workflowresult.FieldValidatedAt)
	return u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *WorkflowResultUpsert) ClearValidatedAt() *WorkflowResultUpsert {
	u.SetNull(workflowresult.FieldValidatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowResultUpsertOne) UpdateNewValues() *WorkflowResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(workflowresult.FieldID)
		}
		if _, exists := u.create.mutation.TicketID(); exists {
			s.SetIgnore(workflowresult.FieldTicketID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(workflowresult.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *WorkflowResultUpsertOne) Ignore() *WorkflowResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowResultUpsertOne) DoNothing() *WorkflowResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowResultCreate.OnConflict
// documentation for more info.
func (u *WorkflowResultUpsertOne) Update(set func(*WorkflowResultUpsert)) *WorkflowResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (u *WorkflowResultUpsertOne) SetMarkdownFilePath(v string) *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetMarkdownFilePath(v)
	})
}

// UpdateMarkdownFilePath sets the "markdown_file_path" field to the value that was provided on create.
func (u *WorkflowResultUpsertOne) UpdateMarkdownFilePath() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateMarkdownFilePath()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowResultUpsertOne) SetStatus(v workflowresult.Status) *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowResultUpsertOne) UpdateStatus() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateStatus()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *WorkflowResultUpsertOne) SetSubmittedBy(v string) *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *WorkflowResultUpsertOne) UpdateSubmittedBy() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *WorkflowResultUpsertOne) ClearSubmittedBy() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetSummary sets the "summary" field.
func (u *WorkflowResultUpsertOne) SetSummary(v string) *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *WorkflowResultUpsertOne) UpdateSummary() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *WorkflowResultUpsertOne) ClearSummary() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearSummary()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *WorkflowResultUpsertOne) SetValidatedAt(v time.Time) *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *WorkflowResultUpsertOne) UpdateValidatedAt() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *WorkflowResultUpsertOne) ClearValidatedAt() *WorkflowResultUpsertOne {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearValidatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *WorkflowResultUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: WorkflowResultUpsertOne.ID is not supported by MySQL driver. Use WorkflowResultUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *WorkflowResultUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// WorkflowResultCreateBulk is the builder for creating many WorkflowResult entities in bulk.
type WorkflowResultCreateBulk struct {
	config
	err      error
	builders []*WorkflowResultCreate
	conflict []sql.ConflictOption
}

// Save creates the WorkflowResult entities in the database.
func (_c *WorkflowResultCreateBulk) Save(ctx context.Context) ([]*WorkflowResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowResultMutation)
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
func (_c *WorkflowResultCreateBulk) SaveX(ctx context.Context) []*WorkflowResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.WorkflowResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.WorkflowResultUpsert) {
//			SetTicketID(v+v).
//		}).
//		Exec(ctx)
func (_c *WorkflowResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *WorkflowResultUpsertBulk {
	_c.conflict = opts
	return &WorkflowResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *WorkflowResultCreateBulk) OnConflictColumns(columns ...string) *WorkflowResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &WorkflowResultUpsertBulk{
		create: _c,
	}
}

// WorkflowResultUpsertBulk is the builder for "upsert"-ing
// a bulk of WorkflowResult nodes.
type WorkflowResultUpsertBulk struct {
	create *WorkflowResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(workflowresult.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *WorkflowResultUpsertBulk) UpdateNewValues() *WorkflowResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(workflowresult.FieldID)
			}
			if _, exists := b.mutation.TicketID(); exists {
				s.SetIgnore(workflowresult.FieldTicketID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(workflowresult.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.WorkflowResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *WorkflowResultUpsertBulk) Ignore() *WorkflowResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *WorkflowResultUpsertBulk) DoNothing() *WorkflowResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the WorkflowResultCreateBulk.OnConflict
// documentation for more info.
func (u *WorkflowResultUpsertBulk) Update(set func(*WorkflowResultUpsert)) *WorkflowResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&WorkflowResultUpsert{UpdateSet: update})
	}))
	return u
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (u *WorkflowResultUpsertBulk) SetMarkdownFilePath(v string) *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetMarkdownFilePath(v)
	})
}

// UpdateMarkdownFilePath sets the "markdown_file_path" field to the value that was provided on create.
func (u *WorkflowResultUpsertBulk) UpdateMarkdownFilePath() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateMarkdownFilePath()
	})
}

// SetStatus sets the "status" field.
func (u *WorkflowResultUpsertBulk) SetStatus(v workflowresult.Status) *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *WorkflowResultUpsertBulk) UpdateStatus() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateStatus()
	})
}

// SetSubmittedBy sets the "submitted_by" field.
func (u *WorkflowResultUpsertBulk) SetSubmittedBy(v string) *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetSubmittedBy(v)
	})
}

// UpdateSubmittedBy sets the "submitted_by" field to the value that was provided on create.
func (u *WorkflowResultUpsertBulk) UpdateSubmittedBy() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateSubmittedBy()
	})
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (u *WorkflowResultUpsertBulk) ClearSubmittedBy() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearSubmittedBy()
	})
}

// SetSummary sets the "summary" field.
func (u *WorkflowResultUpsertBulk) SetSummary(v string) *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *WorkflowResultUpsertBulk) UpdateSummary() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *WorkflowResultUpsertBulk) ClearSummary() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearSummary()
	})
}

// SetValidatedAt sets the "validated_at" field.
func (u *WorkflowResultUpsertBulk) SetValidatedAt(v time.Time) *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.SetValidatedAt(v)
	})
}

// UpdateValidatedAt sets the "validated_at" field to the value that was provided on create.
func (u *WorkflowResultUpsertBulk) UpdateValidatedAt() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.UpdateValidatedAt()
	})
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (u *WorkflowResultUpsertBulk) ClearValidatedAt() *WorkflowResultUpsertBulk {
	return u.Update(func(s *WorkflowResultUpsert) {
		s.ClearValidatedAt()
	})
}

// Exec executes the query.
func (u *WorkflowResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the WorkflowResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for WorkflowResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *WorkflowResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
