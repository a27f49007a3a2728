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
	"github.com/droverhq/drover/ent/learnedpattern"
)

// LearnedPatternCreate is the builder for creating a LearnedPattern entity.
type LearnedPatternCreate struct {
	config
	mutation *LearnedPatternMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPatternType sets the "pattern_type" field.
func (_c *LearnedPatternCreate) SetPatternType(v learnedpattern.PatternType) *LearnedPatternCreate {
	_c.mutation.SetPatternType(v)
	return _c
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (_c *LearnedPatternCreate) SetTaskTypePattern(v string) *LearnedPatternCreate {
	_c.mutation.SetTaskTypePattern(v)
	return _c
}

// SetSuccessIndicators sets the "success_indicators" field.
func (_c *LearnedPatternCreate) SetSuccessIndicators(v []string) *LearnedPatternCreate {
	_c.mutation.SetSuccessIndicators(v)
	return _c
}

// SetFailureIndicators sets the "failure_indicators" field.
func (_c *LearnedPatternCreate) SetFailureIndicators(v []string) *LearnedPatternCreate {
	_c.mutation.SetFailureIndicators(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *LearnedPatternCreate) SetConfidenceScore(v float64) *LearnedPatternCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableConfidenceScore(v *float64) *LearnedPatternCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *LearnedPatternCreate) SetUsageCount(v int) *LearnedPatternCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableUsageCount(v *int) *LearnedPatternCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LearnedPatternCreate) SetCreatedAt(v time.Time) *LearnedPatternCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableCreatedAt(v *time.Time) *LearnedPatternCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnedPatternCreate) SetUpdatedAt(v time.Time) *LearnedPatternCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnedPatternCreate) SetNillableUpdatedAt(v *time.Time) *LearnedPatternCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LearnedPatternCreate) SetID(v string) *LearnedPatternCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_c *LearnedPatternCreate) Mutation() *LearnedPatternMutation {
	return _c.mutation
}

// Save creates the LearnedPattern in the database.
func (_c *LearnedPatternCreate) Save(ctx context.Context) (*LearnedPattern, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnedPatternCreate) SaveX(ctx context.Context) *LearnedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedPatternCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedPatternCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnedPatternCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := learnedpattern.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := learnedpattern.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := learnedpattern.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnedpattern.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnedPatternCreate) check() error {
	if _, ok := _c.mutation.PatternType(); !ok {
		return &ValidationError{Name: "pattern_type", err: errors.New(`ent: missing required field "LearnedPattern.pattern_type"`)}
	}
	if v, ok := _c.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskTypePattern(); !ok {
		return &ValidationError{Name: "task_type_pattern", err: errors.New(`ent: missing required field "LearnedPattern.task_type_pattern"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "LearnedPattern.confidence_score"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "LearnedPattern.usage_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LearnedPattern.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnedPattern.updated_at"`)}
	}
	return nil
}

func (_c *LearnedPatternCreate) sqlSave(ctx context.Context) (*LearnedPattern, error) {
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
			return nil, fmt.Errorf("unexpected LearnedPattern.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnedPatternCreate) createSpec() (*LearnedPattern, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnedPattern{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnedpattern.Table, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
		_node.PatternType = value
	}
	if value, ok := _c.mutation.TaskTypePattern(); ok {
		_spec.SetField(learnedpattern.FieldTaskTypePattern, field.TypeString, value)
		_node.TaskTypePattern = value
	}
	if value, ok := _c.mutation.SuccessIndicators(); ok {
		_spec.SetField(learnedpattern.FieldSuccessIndicators, field.TypeJSON, value)
		_node.SuccessIndicators = value
	}
	if value, ok := _c.mutation.FailureIndicators(); ok {
		_spec.SetField(learnedpattern.FieldFailureIndicators, field.TypeJSON, value)
		_node.FailureIndicators = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(learnedpattern.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(learnedpattern.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(learnedpattern.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnedPattern.Create().
//		SetPatternType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnedPatternUpsert) {
//			SetPatternType(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnedPatternCreate) OnConflict(opts ...sql.ConflictOption) *LearnedPatternUpsertOne {
	_c.conflict = opts
	return &LearnedPatternUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnedPatternCreate) OnConflictColumns(columns ...string) *LearnedPatternUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnedPatternUpsertOne{
		create: _c,
	}
}

type (
	// LearnedPatternUpsertOne is the builder for "upsert"-ing
	//  one LearnedPattern node.
	LearnedPatternUpsertOne struct {
		create *LearnedPatternCreate
	}

	// LearnedPatternUpsert is the "OnConflict" setter.
	LearnedPatternUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatternType sets the "pattern_type" field.
func (u *LearnedPatternUpsert) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldPatternType, v)
	return u
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdatePatternType() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldPatternType)
	return u
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (u *LearnedPatternUpsert) SetTaskTypePattern(v string) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldTaskTypePattern, v)
	return u
}

// UpdateTaskTypePattern sets the "task_type_pattern" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateTaskTypePattern() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldTaskTypePattern)
	return u
}

// SetSuccessIndicators sets the "success_indicators" field.
func (u *LearnedPatternUpsert) SetSuccessIndicators(v []string) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldSuccessIndicators, v)
	return u
}

// UpdateSuccessIndicators sets the "success_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateSuccessIndicators() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldSuccessIndicators)
	return u
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (u *LearnedPatternUpsert) ClearSuccessIndicators() *LearnedPatternUpsert {
	u.SetNull(learnedpattern.FieldSuccessIndicators)
	return u
}

// SetFailureIndicators sets the "failure_indicators" field.
func (u *LearnedPatternUpsert) SetFailureIndicators(v []string) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldFailureIndicators, v)
	return u
}

// UpdateFailureIndicators sets the "failure_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateFailureIndicators() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldFailureIndicators)
	return u
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (u *LearnedPatternUpsert) ClearFailureIndicators() *LearnedPatternUpsert {
	u.SetNull(learnedpattern.FieldFailureIndicators)
	return u
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *LearnedPatternUpsert) SetConfidenceScore(v float64) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldConfidenceScore, v)
	return u
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateConfidenceScore() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldConfidenceScore)
	return u
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *LearnedPatternUpsert) AddConfidenceScore(v float64) *LearnedPatternUpsert {
	u.Add(learnedpattern.FieldConfidenceScore, v)
	return u
}

// SetUsageCount sets the "usage_count" field.
func (u *LearnedPatternUpsert) SetUsageCount(v int) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldUsageCount, v)
	return u
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateUsageCount() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldUsageCount)
	return u
}

// AddUsageCount adds v to the "usage_count" field.
func (u *LearnedPatternUpsert) AddUsageCount(v int) *LearnedPatternUpsert {
	u.Add(learnedpattern.FieldUsageCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnedPatternUpsert) SetUpdatedAt(v time.Time) *LearnedPatternUpsert {
	u.Set(learnedpattern.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnedPatternUpsert) UpdateUpdatedAt() *LearnedPatternUpsert {
	u.SetExcluded(learnedpattern.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learnedpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnedPatternUpsertOne) UpdateNewValues() *LearnedPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(learnedpattern.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(learnedpattern.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearnedPatternUpsertOne) Ignore() *LearnedPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnedPatternUpsertOne) DoNothing() *LearnedPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnedPatternCreate.OnConflict
// documentation for more info.
func (u *LearnedPatternUpsertOne) Update(set func(*LearnedPatternUpsert)) *LearnedPatternUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnedPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternType sets the "pattern_type" field.
func (u *LearnedPatternUpsertOne) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdatePatternType() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (u *LearnedPatternUpsertOne) SetTaskTypePattern(v string) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetTaskTypePattern(v)
	})
}

// UpdateTaskTypePattern sets the "task_type_pattern" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateTaskTypePattern() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateTaskTypePattern()
	})
}

// SetSuccessIndicators sets the "success_indicators" field.
func (u *LearnedPatternUpsertOne) SetSuccessIndicators(v []string) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetSuccessIndicators(v)
	})
}

// UpdateSuccessIndicators sets the "success_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateSuccessIndicators() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateSuccessIndicators()
	})
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (u *LearnedPatternUpsertOne) ClearSuccessIndicators() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.ClearSuccessIndicators()
	})
}

// SetFailureIndicators sets the "failure_indicators" field.
func (u *LearnedPatternUpsertOne) SetFailureIndicators(v []string) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetFailureIndicators(v)
	})
}

// UpdateFailureIndicators sets the "failure_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateFailureIndicators() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateFailureIndicators()
	})
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (u *LearnedPatternUpsertOne) ClearFailureIndicators() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.ClearFailureIndicators()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *LearnedPatternUpsertOne) SetConfidenceScore(v float64) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *LearnedPatternUpsertOne) AddConfidenceScore(v float64) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateConfidenceScore() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *LearnedPatternUpsertOne) SetUsageCount(v int) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *LearnedPatternUpsertOne) AddUsageCount(v int) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateUsageCount() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateUsageCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnedPatternUpsertOne) SetUpdatedAt(v time.Time) *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnedPatternUpsertOne) UpdateUpdatedAt() *LearnedPatternUpsertOne {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnedPatternUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnedPatternCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnedPatternUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearnedPatternUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: LearnedPatternUpsertOne.ID is not supported by MySQL driver. Use LearnedPatternUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearnedPatternUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearnedPatternCreateBulk is the builder for creating many LearnedPattern entities in bulk.
type LearnedPatternCreateBulk struct {
	config
	err      error
	builders []*LearnedPatternCreate
	conflict []sql.ConflictOption
}

// Save creates the LearnedPattern entities in the database.
func (_c *LearnedPatternCreateBulk) Save(ctx context.Context) ([]*LearnedPattern, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnedPattern, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnedPatternMutation)
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
func (_c *LearnedPatternCreateBulk) SaveX(ctx context.Context) []*LearnedPattern {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnedPatternCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnedPatternCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnedPattern.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnedPatternUpsert) {
//			SetPatternType(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnedPatternCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearnedPatternUpsertBulk {
	_c.conflict = opts
	return &LearnedPatternUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnedPatternCreateBulk) OnConflictColumns(columns ...string) *LearnedPatternUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnedPatternUpsertBulk{
		create: _c,
	}
}

// LearnedPatternUpsertBulk is the builder for "upsert"-ing
// a bulk of LearnedPattern nodes.
type LearnedPatternUpsertBulk struct {
	create *LearnedPatternCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(learnedpattern.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LearnedPatternUpsertBulk) UpdateNewValues() *LearnedPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(learnedpattern.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(learnedpattern.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnedPattern.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearnedPatternUpsertBulk) Ignore() *LearnedPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnedPatternUpsertBulk) DoNothing() *LearnedPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnedPatternCreateBulk.OnConflict
// documentation for more info.
func (u *LearnedPatternUpsertBulk) Update(set func(*LearnedPatternUpsert)) *LearnedPatternUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnedPatternUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatternType sets the "pattern_type" field.
func (u *LearnedPatternUpsertBulk) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetPatternType(v)
	})
}

// UpdatePatternType sets the "pattern_type" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdatePatternType() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdatePatternType()
	})
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (u *LearnedPatternUpsertBulk) SetTaskTypePattern(v string) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetTaskTypePattern(v)
	})
}

// UpdateTaskTypePattern sets the "task_type_pattern" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateTaskTypePattern() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateTaskTypePattern()
	})
}

// SetSuccessIndicators sets the "success_indicators" field.
func (u *LearnedPatternUpsertBulk) SetSuccessIndicators(v []string) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetSuccessIndicators(v)
	})
}

// UpdateSuccessIndicators sets the "success_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateSuccessIndicators() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateSuccessIndicators()
	})
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (u *LearnedPatternUpsertBulk) ClearSuccessIndicators() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.ClearSuccessIndicators()
	})
}

// SetFailureIndicators sets the "failure_indicators" field.
func (u *LearnedPatternUpsertBulk) SetFailureIndicators(v []string) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetFailureIndicators(v)
	})
}

// UpdateFailureIndicators sets the "failure_indicators" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateFailureIndicators() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateFailureIndicators()
	})
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (u *LearnedPatternUpsertBulk) ClearFailureIndicators() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.ClearFailureIndicators()
	})
}

// SetConfidenceScore sets the "confidence_score" field.
func (u *LearnedPatternUpsertBulk) SetConfidenceScore(v float64) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetConfidenceScore(v)
	})
}

// AddConfidenceScore adds v to the "confidence_score" field.
func (u *LearnedPatternUpsertBulk) AddConfidenceScore(v float64) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.AddConfidenceScore(v)
	})
}

// UpdateConfidenceScore sets the "confidence_score" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateConfidenceScore() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateConfidenceScore()
	})
}

// SetUsageCount sets the "usage_count" field.
func (u *LearnedPatternUpsertBulk) SetUsageCount(v int) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetUsageCount(v)
	})
}

// AddUsageCount adds v to the "usage_count" field.
func (u *LearnedPatternUpsertBulk) AddUsageCount(v int) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.AddUsageCount(v)
	})
}

// UpdateUsageCount sets the "usage_count" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateUsageCount() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateUsageCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnedPatternUpsertBulk) SetUpdatedAt(v time.Time) *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnedPatternUpsertBulk) UpdateUpdatedAt() *LearnedPatternUpsertBulk {
	return u.Update(func(s *LearnedPatternUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnedPatternUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearnedPatternCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnedPatternCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnedPatternUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
