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
	"github.com/droverhq/drover/ent/validationreview"
)

// ValidationReviewCreate is the builder for creating a ValidationReview entity.
type ValidationReviewCreate struct {
	config
	mutation *ValidationReviewMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *ValidationReviewCreate) SetTaskID(v string) *ValidationReviewCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (_c *ValidationReviewCreate) SetValidatorAgentID(v string) *ValidationReviewCreate {
	_c.mutation.SetValidatorAgentID(v)
	return _c
}

// SetIterationNumber sets the "iteration_number" field.
func (_c *ValidationReviewCreate) SetIterationNumber(v int) *ValidationReviewCreate {
	_c.mutation.SetIterationNumber(v)
	return _c
}

// SetValidationPassed sets the "validation_passed" field.
func (_c *ValidationReviewCreate) SetValidationPassed(v bool) *ValidationReviewCreate {
	_c.mutation.SetValidationPassed(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *ValidationReviewCreate) SetFeedback(v string) *ValidationReviewCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetEvidence sets the "evidence" field.
func (_c *ValidationReviewCreate) SetEvidence(v map[string]interface{}) *ValidationReviewCreate {
	_c.mutation.SetEvidence(v)
	return _c
}

// SetRecommendations sets the "recommendations" field.
func (_c *ValidationReviewCreate) SetRecommendations(v []string) *ValidationReviewCreate {
	_c.mutation.SetRecommendations(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ValidationReviewCreate) SetCreatedAt(v time.Time) *ValidationReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ValidationReviewCreate) SetNillableCreatedAt(v *time.Time) *ValidationReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ValidationReviewCreate) SetID(v string) *ValidationReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ValidationReviewCreate) SetTask(v *Task) *ValidationReviewCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ValidationReviewMutation object of the builder.
func (_c *ValidationReviewCreate) Mutation() *ValidationReviewMutation {
	return _c.mutation
}

// Save creates the ValidationReview in the database.
func (_c *ValidationReviewCreate) Save(ctx context.Context) (*ValidationReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ValidationReviewCreate) SaveX(ctx context.Context) *ValidationReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ValidationReviewCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := validationreview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ValidationReviewCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ValidationReview.task_id"`)}
	}
	if _, ok := _c.mutation.ValidatorAgentID(); !ok {
		return &ValidationError{Name: "validator_agent_id", err: errors.New(`ent: missing required field "ValidationReview.validator_agent_id"`)}
	}
	if _, ok := _c.mutation.IterationNumber(); !ok {
		return &ValidationError{Name: "iteration_number", err: errors.New(`ent: missing required field "ValidationReview.iteration_number"`)}
	}
	if _, ok := _c.mutation.ValidationPassed(); !ok {
		return &ValidationError{Name: "validation_passed", err: errors.New(`ent: missing required field "ValidationReview.validation_passed"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "ValidationReview.feedback"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ValidationReview.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ValidationReview.task"`)}
	}
	return nil
}

func (_c *ValidationReviewCreate) sqlSave(ctx context.Context) (*ValidationReview, error) {
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
			return nil, fmt.Errorf("unexpected ValidationReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ValidationReviewCreate) createSpec() (*ValidationReview, *sqlgraph.CreateSpec) {
	var (
		_node = &ValidationReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(validationreview.Table, sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ValidatorAgentID(); ok {
		_spec.SetField(validationreview.FieldValidatorAgentID, field.TypeString, value)
		_node.ValidatorAgentID = value
	}
	if value, ok := _c.mutation.IterationNumber(); ok {
		_spec.SetField(validationreview.FieldIterationNumber, field.TypeInt, value)
		_node.IterationNumber = value
	}
	if value, ok := _c.mutation.ValidationPassed(); ok {
		_spec.SetField(validationreview.FieldValidationPassed, field.TypeBool, value)
		_node.ValidationPassed = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(validationreview.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.Evidence(); ok {
		_spec.SetField(validationreview.FieldEvidence, field.TypeJSON, value)
		_node.Evidence = value
	}
	if value, ok := _c.mutation.Recommendations(); ok {
		_spec.SetField(validationreview.FieldRecommendations, field.TypeJSON, value)
		_node.Recommendations = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(validationreview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   validationreview.TaskTable,
			Columns: []string{validationreview.TaskColumn},
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
//	client.ValidationReview.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ValidationReviewUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ValidationReviewCreate) OnConflict(opts ...sql.ConflictOption) *ValidationReviewUpsertOne {
	_c.conflict = opts
	return &ValidationReviewUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ValidationReviewCreate) OnConflictColumns(columns ...string) *ValidationReviewUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ValidationReviewUpsertOne{
		create: _c,
	}
}

type (
	// ValidationReviewUpsertOne is the builder for "upsert"-ing
	//  one ValidationReview node.
	ValidationReviewUpsertOne struct {
		create *ValidationReviewCreate
	}

	// ValidationReviewUpsert is the "OnConflict" setter.
	ValidationReviewUpsert struct {
		*sql.UpdateSet
	}
)

// SetValidatorAgentID sets the "validator_agent_id" field.
func (u *ValidationReviewUpsert) SetValidatorAgentID(v string) *ValidationReviewUpsert {
	u.Set(validationreview.FieldValidatorAgentID, v)
	return u
}

// UpdateValidatorAgentID sets the "validator_agent_id" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateValidatorAgentID() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldValidatorAgentID)
	return u
}

// SetIterationNumber sets the "iteration_number" field.
func (u *ValidationReviewUpsert) SetIterationNumber(v int) *ValidationReviewUpsert {
	u.Set(validationreview.FieldIterationNumber, v)
	return u
}

// UpdateIterationNumber sets the "iteration_number" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateIterationNumber() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldIterationNumber)
	return u
}

// AddIterationNumber adds v to the "iteration_number" field.
func (u *ValidationReviewUpsert) AddIterationNumber(v int) *ValidationReviewUpsert {
	u.Add(validationreview.FieldIterationNumber, v)
	return u
}

// SetValidationPassed sets the "validation_passed" field.
func (u *ValidationReviewUpsert) SetValidationPassed(v bool) *ValidationReviewUpsert {
	u.Set(validationreview.FieldValidationPassed, v)
	return u
}

// UpdateValidationPassed sets the "validation_passed" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateValidationPassed() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldValidationPassed)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *ValidationReviewUpsert) SetFeedback(v string) *ValidationReviewUpsert {
	u.Set(validationreview.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateFeedback() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldFeedback)
	return u
}

// SetEvidence sets the "evidence" field.
func (u *ValidationReviewUpsert) SetEvidence(v map[string]interface{}) *ValidationReviewUpsert {
	u.Set(validationreview.FieldEvidence, v)
	return u
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateEvidence() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldEvidence)
	return u
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ValidationReviewUpsert) ClearEvidence() *ValidationReviewUpsert {
	u.SetNull(validationreview.FieldEvidence)
	return u
}

// SetRecommendations sets the "recommendations" field.
func (u *ValidationReviewUpsert) SetRecommendations(v []string) *ValidationReviewUpsert {
	u.Set(validationreview.FieldRecommendations, v)
	return u
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ValidationReviewUpsert) UpdateRecommendations() *ValidationReviewUpsert {
	u.SetExcluded(validationreview.FieldRecommendations)
	return u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ValidationReviewUpsert) ClearRecommendations() *ValidationReviewUpsert {
	u.SetNull(validationreview.FieldRecommendations)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(validationreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ValidationReviewUpsertOne) UpdateNewValues() *ValidationReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(validationreview.FieldID)
		}
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(validationreview.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(validationreview.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ValidationReviewUpsertOne) Ignore() *ValidationReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ValidationReviewUpsertOne) DoNothing() *ValidationReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ValidationReviewCreate.OnConflict
// documentation for more info.
func (u *ValidationReviewUpsertOne) Update(set func(*ValidationReviewUpsert)) *ValidationReviewUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ValidationReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (u *ValidationReviewUpsertOne) SetValidatorAgentID(v string) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetValidatorAgentID(v)
	})
}

// UpdateValidatorAgentID sets the "validator_agent_id" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateValidatorAgentID() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateValidatorAgentID()
	})
}

// SetIterationNumber sets the "iteration_number" field.
func (u *ValidationReviewUpsertOne) SetIterationNumber(v int) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetIterationNumber(v)
	})
}

// AddIterationNumber adds v to the "iteration_number" field.
func (u *ValidationReviewUpsertOne) AddIterationNumber(v int) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.AddIterationNumber(v)
	})
}

// UpdateIterationNumber sets the "iteration_number" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateIterationNumber() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateIterationNumber()
	})
}

// SetValidationPassed sets the "validation_passed" field.
func (u *ValidationReviewUpsertOne) SetValidationPassed(v bool) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetValidationPassed(v)
	})
}

// UpdateValidationPassed sets the "validation_passed" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateValidationPassed() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateValidationPassed()
	})
}

// SetFeedback sets the "feedback" field.
func (u *ValidationReviewUpsertOne) SetFeedback(v string) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateFeedback() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateFeedback()
	})
}

// SetEvidence sets the "evidence" field.
func (u *ValidationReviewUpsertOne) SetEvidence(v map[string]interface{}) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateEvidence() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ValidationReviewUpsertOne) ClearEvidence() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.ClearEvidence()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *ValidationReviewUpsertOne) SetRecommendations(v []string) *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ValidationReviewUpsertOne) UpdateRecommendations() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ValidationReviewUpsertOne) ClearRecommendations() *ValidationReviewUpsertOne {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.ClearRecommendations()
	})
}

// Exec executes the query.
func (u *ValidationReviewUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ValidationReviewCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ValidationReviewUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ValidationReviewUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ValidationReviewUpsertOne.ID is not supported by MySQL driver. Use ValidationReviewUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ValidationReviewUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ValidationReviewCreateBulk is the builder for creating many ValidationReview entities in bulk.
type ValidationReviewCreateBulk struct {
	config
	err      error
	builders []*ValidationReviewCreate
	conflict []sql.ConflictOption
}

// Save creates the ValidationReview entities in the database.
func (_c *ValidationReviewCreateBulk) Save(ctx context.Context) ([]*ValidationReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ValidationReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ValidationReviewMutation)
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
func (_c *ValidationReviewCreateBulk) SaveX(ctx context.Context) []*ValidationReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ValidationReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ValidationReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ValidationReview.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ValidationReviewUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *ValidationReviewCreateBulk) OnConflict(opts ...sql.ConflictOption) *ValidationReviewUpsertBulk {
	_c.conflict = opts
	return &ValidationReviewUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ValidationReviewCreateBulk) OnConflictColumns(columns ...string) *ValidationReviewUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ValidationReviewUpsertBulk{
		create: _c,
	}
}

// ValidationReviewUpsertBulk is the builder for "upsert"-ing
// a bulk of ValidationReview nodes.
type ValidationReviewUpsertBulk struct {
	create *ValidationReviewCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(validationreview.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ValidationReviewUpsertBulk) UpdateNewValues() *ValidationReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(validationreview.FieldID)
			}
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(validationreview.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(validationreview.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ValidationReview.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ValidationReviewUpsertBulk) Ignore() *ValidationReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ValidationReviewUpsertBulk) DoNothing() *ValidationReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ValidationReviewCreateBulk.OnConflict
// documentation for more info.
func (u *ValidationReviewUpsertBulk) Update(set func(*ValidationReviewUpsert)) *ValidationReviewUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ValidationReviewUpsert{UpdateSet: update})
	}))
	return u
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (u *ValidationReviewUpsertBulk) SetValidatorAgentID(v string) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetValidatorAgentID(v)
	})
}

// UpdateValidatorAgentID sets the "validator_agent_id" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateValidatorAgentID() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateValidatorAgentID()
	})
}

// SetIterationNumber sets the "iteration_number" field.
func (u *ValidationReviewUpsertBulk) SetIterationNumber(v int) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetIterationNumber(v)
	})
}

// AddIterationNumber adds v to the "iteration_number" field.
func (u *ValidationReviewUpsertBulk) AddIterationNumber(v int) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.AddIterationNumber(v)
	})
}

// UpdateIterationNumber sets the "iteration_number" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateIterationNumber() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateIterationNumber()
	})
}

// SetValidationPassed sets the "validation_passed" field.
func (u *ValidationReviewUpsertBulk) SetValidationPassed(v bool) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetValidationPassed(v)
	})
}

// UpdateValidationPassed sets the "validation_passed" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateValidationPassed() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateValidationPassed()
	})
}

// SetFeedback sets the "feedback" field.
func (u *ValidationReviewUpsertBulk) SetFeedback(v string) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateFeedback() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateFeedback()
	})
}

// SetEvidence sets the "evidence" field.
func (u *ValidationReviewUpsertBulk) SetEvidence(v map[string]interface{}) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetEvidence(v)
	})
}

// UpdateEvidence sets the "evidence" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateEvidence() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateEvidence()
	})
}

// ClearEvidence clears the value of the "evidence" field.
func (u *ValidationReviewUpsertBulk) ClearEvidence() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.ClearEvidence()
	})
}

// SetRecommendations sets the "recommendations" field.
func (u *ValidationReviewUpsertBulk) SetRecommendations(v []string) *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.SetRecommendations(v)
	})
}

// UpdateRecommendations sets the "recommendations" field to the value that was provided on create.
func (u *ValidationReviewUpsertBulk) UpdateRecommendations() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.UpdateRecommendations()
	})
}

// ClearRecommendations clears the value of the "recommendations" field.
func (u *ValidationReviewUpsertBulk) ClearRecommendations() *ValidationReviewUpsertBulk {
	return u.Update(func(s *ValidationReviewUpsert) {
		s.ClearRecommendations()
	})
}

// Exec executes the query.
func (u *ValidationReviewUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ValidationReviewCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ValidationReviewCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ValidationReviewUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
