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
	"github.com/droverhq/drover/ent/learnedpattern"
	"github.com/droverhq/drover/ent/predicate"
)

// LearnedPatternUpdate is the builder for updating LearnedPattern entities.
type LearnedPatternUpdate struct {
	config
	hooks    []Hook
	mutation *LearnedPatternMutation
}

// Where appends a list predicates to the LearnedPatternUpdate builder.
func (_u *LearnedPatternUpdate) Where(ps ...predicate.LearnedPattern) *LearnedPatternUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatternType sets the "pattern_type" field.
func (_u *LearnedPatternUpdate) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpdate {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillablePatternType(v *learnedpattern.PatternType) *LearnedPatternUpdate {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (_u *LearnedPatternUpdate) SetTaskTypePattern(v string) *LearnedPatternUpdate {
	_u.mutation.SetTaskTypePattern(v)
	return _u
}

// SetNillableTaskTypePattern sets the "task_type_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableTaskTypePattern(v *string) *LearnedPatternUpdate {
	if v != nil {
		_u.SetTaskTypePattern(*v)
	}
	return _u
}

// SetSuccessIndicators sets the "success_indicators" field.
func (_u *LearnedPatternUpdate) SetSuccessIndicators(v []string) *LearnedPatternUpdate {
	_u.mutation.SetSuccessIndicators(v)
	return _u
}

// AppendSuccessIndicators appends value to the "success_indicators" field.
func (_u *LearnedPatternUpdate) AppendSuccessIndicators(v []string) *LearnedPatternUpdate {
	_u.mutation.AppendSuccessIndicators(v)
	return _u
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (_u *LearnedPatternUpdate) ClearSuccessIndicators() *LearnedPatternUpdate {
	_u.mutation.ClearSuccessIndicators()
	return _u
}

// SetFailureIndicators sets the "failure_indicators" field.
func (_u *LearnedPatternUpdate) SetFailureIndicators(v []string) *LearnedPatternUpdate {
	_u.mutation.SetFailureIndicators(v)
	return _u
}

// AppendFailureIndicators appends value to the "failure_indicators" field.
func (_u *LearnedPatternUpdate) AppendFailureIndicators(v []string) *LearnedPatternUpdate {
	_u.mutation.AppendFailureIndicators(v)
	return _u
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (_u *LearnedPatternUpdate) ClearFailureIndicators() *LearnedPatternUpdate {
	_u.mutation.ClearFailureIndicators()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *LearnedPatternUpdate) SetConfidenceScore(v float64) *LearnedPatternUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableConfidenceScore(v *float64) *LearnedPatternUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *LearnedPatternUpdate) AddConfidenceScore(v float64) *LearnedPatternUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *LearnedPatternUpdate) SetUsageCount(v int) *LearnedPatternUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *LearnedPatternUpdate) SetNillableUsageCount(v *int) *LearnedPatternUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *LearnedPatternUpdate) AddUsageCount(v int) *LearnedPatternUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnedPatternUpdate) SetUpdatedAt(v time.Time) *LearnedPatternUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_u *LearnedPatternUpdate) Mutation() *LearnedPatternMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnedPatternUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedPatternUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnedPatternUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedPatternUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnedPatternUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedPatternUpdate) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedPatternUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedpattern.Table, learnedpattern.Columns, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskTypePattern(); ok {
		_spec.SetField(learnedpattern.FieldTaskTypePattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessIndicators(); ok {
		_spec.SetField(learnedpattern.FieldSuccessIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldSuccessIndicators, value)
		})
	}
	if _u.mutation.SuccessIndicatorsCleared() {
		_spec.ClearField(learnedpattern.FieldSuccessIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureIndicators(); ok {
		_spec.SetField(learnedpattern.FieldFailureIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldFailureIndicators, value)
		})
	}
	if _u.mutation.FailureIndicatorsCleared() {
		_spec.ClearField(learnedpattern.FieldFailureIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(learnedpattern.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(learnedpattern.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(learnedpattern.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(learnedpattern.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnedPatternUpdateOne is the builder for updating a single LearnedPattern entity.
type LearnedPatternUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnedPatternMutation
}

// SetPatternType sets the "pattern_type" field.
func (_u *LearnedPatternUpdateOne) SetPatternType(v learnedpattern.PatternType) *LearnedPatternUpdateOne {
	_u.mutation.SetPatternType(v)
	return _u
}

// SetNillablePatternType sets the "pattern_type" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillablePatternType(v *learnedpattern.PatternType) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetPatternType(*v)
	}
	return _u
}

// SetTaskTypePattern sets the "task_type_pattern" field.
func (_u *LearnedPatternUpdateOne) SetTaskTypePattern(v string) *LearnedPatternUpdateOne {
	_u.mutation.SetTaskTypePattern(v)
	return _u
}

// SetNillableTaskTypePattern sets the "task_type_pattern" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableTaskTypePattern(v *string) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetTaskTypePattern(*v)
	}
	return _u
}

// SetSuccessIndicators sets the "success_indicators" field.
func (_u *LearnedPatternUpdateOne) SetSuccessIndicators(v []string) *LearnedPatternUpdateOne {
	_u.mutation.SetSuccessIndicators(v)
	return _u
}

// AppendSuccessIndicators appends value to the "success_indicators" field.
func (_u *LearnedPatternUpdateOne) AppendSuccessIndicators(v []string) *LearnedPatternUpdateOne {
	_u.mutation.AppendSuccessIndicators(v)
	return _u
}

// ClearSuccessIndicators clears the value of the "success_indicators" field.
func (_u *LearnedPatternUpdateOne) ClearSuccessIndicators() *LearnedPatternUpdateOne {
	_u.mutation.ClearSuccessIndicators()
	return _u
}

// SetFailureIndicators sets the "failure_indicators" field.
func (_u *LearnedPatternUpdateOne) SetFailureIndicators(v []string) *LearnedPatternUpdateOne {
	_u.mutation.SetFailureIndicators(v)
	return _u
}

// AppendFailureIndicators appends value to the "failure_indicators" field.
func (_u *LearnedPatternUpdateOne) AppendFailureIndicators(v []string) *LearnedPatternUpdateOne {
	_u.mutation.AppendFailureIndicators(v)
	return _u
}

// ClearFailureIndicators clears the value of the "failure_indicators" field.
func (_u *LearnedPatternUpdateOne) ClearFailureIndicators() *LearnedPatternUpdateOne {
	_u.mutation.ClearFailureIndicators()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *LearnedPatternUpdateOne) SetConfidenceScore(v float64) *LearnedPatternUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableConfidenceScore(v *float64) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *LearnedPatternUpdateOne) AddConfidenceScore(v float64) *LearnedPatternUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *LearnedPatternUpdateOne) SetUsageCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *LearnedPatternUpdateOne) SetNillableUsageCount(v *int) *LearnedPatternUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *LearnedPatternUpdateOne) AddUsageCount(v int) *LearnedPatternUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnedPatternUpdateOne) SetUpdatedAt(v time.Time) *LearnedPatternUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnedPatternMutation object of the builder.
func (_u *LearnedPatternUpdateOne) Mutation() *LearnedPatternMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnedPatternUpdate builder.
func (_u *LearnedPatternUpdateOne) Where(ps ...predicate.LearnedPattern) *LearnedPatternUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnedPatternUpdateOne) Select(field string, fields ...string) *LearnedPatternUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnedPattern entity.
func (_u *LearnedPatternUpdateOne) Save(ctx context.Context) (*LearnedPattern, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnedPatternUpdateOne) SaveX(ctx context.Context) *LearnedPattern {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnedPatternUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnedPatternUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnedPatternUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnedpattern.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnedPatternUpdateOne) check() error {
	if v, ok := _u.mutation.PatternType(); ok {
		if err := learnedpattern.PatternTypeValidator(v); err != nil {
			return &ValidationError{Name: "pattern_type", err: fmt.Errorf(`ent: validator failed for field "LearnedPattern.pattern_type": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnedPatternUpdateOne) sqlSave(ctx context.Context) (_node *LearnedPattern, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learnedpattern.Table, learnedpattern.Columns, sqlgraph.NewFieldSpec(learnedpattern.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnedPattern.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnedpattern.FieldID)
		for _, f := range fields {
			if !learnedpattern.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnedpattern.FieldID {
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
	if value, ok := _u.mutation.PatternType(); ok {
		_spec.SetField(learnedpattern.FieldPatternType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TaskTypePattern(); ok {
		_spec.SetField(learnedpattern.FieldTaskTypePattern, field.TypeString, value)
	}
	if value, ok := _u.mutation.SuccessIndicators(); ok {
		_spec.SetField(learnedpattern.FieldSuccessIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSuccessIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldSuccessIndicators, value)
		})
	}
	if _u.mutation.SuccessIndicatorsCleared() {
		_spec.ClearField(learnedpattern.FieldSuccessIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureIndicators(); ok {
		_spec.SetField(learnedpattern.FieldFailureIndicators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFailureIndicators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learnedpattern.FieldFailureIndicators, value)
		})
	}
	if _u.mutation.FailureIndicatorsCleared() {
		_spec.ClearField(learnedpattern.FieldFailureIndicators, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(learnedpattern.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(learnedpattern.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(learnedpattern.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(learnedpattern.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnedpattern.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnedPattern{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnedpattern.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
