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
	"github.com/droverhq/drover/ent/validationreview"
)

// ValidationReviewUpdate is the builder for updating ValidationReview entities.
type ValidationReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ValidationReviewMutation
}

// Where appends a list predicates to the ValidationReviewUpdate builder.
func (_u *ValidationReviewUpdate) Where(ps ...predicate.ValidationReview) *ValidationReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (_u *ValidationReviewUpdate) SetValidatorAgentID(v string) *ValidationReviewUpdate {
	_u.mutation.SetValidatorAgentID(v)
	return _u
}

// SetNillableValidatorAgentID sets the "validator_agent_id" field if the given value is not nil.
func (_u *ValidationReviewUpdate) SetNillableValidatorAgentID(v *string) *ValidationReviewUpdate {
	if v != nil {
		_u.SetValidatorAgentID(*v)
	}
	return _u
}

// SetIterationNumber sets the "iteration_number" field.
func (_u *ValidationReviewUpdate) SetIterationNumber(v int) *ValidationReviewUpdate {
	_u.mutation.ResetIterationNumber()
	_u.mutation.SetIterationNumber(v)
	return _u
}

// SetNillableIterationNumber sets the "iteration_number" field if the given value is not nil.
func (_u *ValidationReviewUpdate) SetNillableIterationNumber(v *int) *ValidationReviewUpdate {
	if v != nil {
		_u.SetIterationNumber(*v)
	}
	return _u
}

// AddIterationNumber adds value to the "iteration_number" field.
func (_u *ValidationReviewUpdate) AddIterationNumber(v int) *ValidationReviewUpdate {
	_u.mutation.AddIterationNumber(v)
	return _u
}

// SetValidationPassed sets the "validation_passed" field.
func (_u *ValidationReviewUpdate) SetValidationPassed(v bool) *ValidationReviewUpdate {
	_u.mutation.SetValidationPassed(v)
	return _u
}

// SetNillableValidationPassed sets the "validation_passed" field if the given value is not nil.
func (_u *ValidationReviewUpdate) SetNillableValidationPassed(v *bool) *ValidationReviewUpdate {
	if v != nil {
		_u.SetValidationPassed(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ValidationReviewUpdate) SetFeedback(v string) *ValidationReviewUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ValidationReviewUpdate) SetNillableFeedback(v *string) *ValidationReviewUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ValidationReviewUpdate) SetEvidence(v map[string]interface{}) *ValidationReviewUpdate {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ValidationReviewUpdate) ClearEvidence() *ValidationReviewUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ValidationReviewUpdate) SetRecommendations(v []string) *ValidationReviewUpdate {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ValidationReviewUpdate) AppendRecommendations(v []string) *ValidationReviewUpdate {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ValidationReviewUpdate) ClearRecommendations() *ValidationReviewUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// Mutation returns the ValidationReviewMutation object of the builder.
func (_u *ValidationReviewUpdate) Mutation() *ValidationReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ValidationReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ValidationReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationReviewUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationReview.task"`)
	}
	return nil
}

func (_u *ValidationReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationreview.Table, validationreview.Columns, sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ValidatorAgentID(); ok {
		_spec.SetField(validationreview.FieldValidatorAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IterationNumber(); ok {
		_spec.SetField(validationreview.FieldIterationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationNumber(); ok {
		_spec.AddField(validationreview.FieldIterationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationPassed(); ok {
		_spec.SetField(validationreview.FieldValidationPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(validationreview.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(validationreview.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(validationreview.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(validationreview.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationreview.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(validationreview.FieldRecommendations, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ValidationReviewUpdateOne is the builder for updating a single ValidationReview entity.
type ValidationReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ValidationReviewMutation
}

// SetValidatorAgentID sets the "validator_agent_id" field.
func (_u *ValidationReviewUpdateOne) SetValidatorAgentID(v string) *ValidationReviewUpdateOne {
	_u.mutation.SetValidatorAgentID(v)
	return _u
}

// SetNillableValidatorAgentID sets the "validator_agent_id" field if the given value is not nil.
func (_u *ValidationReviewUpdateOne) SetNillableValidatorAgentID(v *string) *ValidationReviewUpdateOne {
	if v != nil {
		_u.SetValidatorAgentID(*v)
	}
	return _u
}

// SetIterationNumber sets the "iteration_number" field.
func (_u *ValidationReviewUpdateOne) SetIterationNumber(v int) *ValidationReviewUpdateOne {
	_u.mutation.ResetIterationNumber()
	_u.mutation.SetIterationNumber(v)
	return _u
}

// SetNillableIterationNumber sets the "iteration_number" field if the given value is not nil.
func (_u *ValidationReviewUpdateOne) SetNillableIterationNumber(v *int) *ValidationReviewUpdateOne {
	if v != nil {
		_u.SetIterationNumber(*v)
	}
	return _u
}

// AddIterationNumber adds value to the "iteration_number" field.
func (_u *ValidationReviewUpdateOne) AddIterationNumber(v int) *ValidationReviewUpdateOne {
	_u.mutation.AddIterationNumber(v)
	return _u
}

// SetValidationPassed sets the "validation_passed" field.
func (_u *ValidationReviewUpdateOne) SetValidationPassed(v bool) *ValidationReviewUpdateOne {
	_u.mutation.SetValidationPassed(v)
	return _u
}

// SetNillableValidationPassed sets the "validation_passed" field if the given value is not nil.
func (_u *ValidationReviewUpdateOne) SetNillableValidationPassed(v *bool) *ValidationReviewUpdateOne {
	if v != nil {
		_u.SetValidationPassed(*v)
	}
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ValidationReviewUpdateOne) SetFeedback(v string) *ValidationReviewUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ValidationReviewUpdateOne) SetNillableFeedback(v *string) *ValidationReviewUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetEvidence sets the "evidence" field.
func (_u *ValidationReviewUpdateOne) SetEvidence(v map[string]interface{}) *ValidationReviewUpdateOne {
	_u.mutation.SetEvidence(v)
	return _u
}

// ClearEvidence clears the value of the "evidence" field.
func (_u *ValidationReviewUpdateOne) ClearEvidence() *ValidationReviewUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// SetRecommendations sets the "recommendations" field.
func (_u *ValidationReviewUpdateOne) SetRecommendations(v []string) *ValidationReviewUpdateOne {
	_u.mutation.SetRecommendations(v)
	return _u
}

// AppendRecommendations appends value to the "recommendations" field.
func (_u *ValidationReviewUpdateOne) AppendRecommendations(v []string) *ValidationReviewUpdateOne {
	_u.mutation.AppendRecommendations(v)
	return _u
}

// ClearRecommendations clears the value of the "recommendations" field.
func (_u *ValidationReviewUpdateOne) ClearRecommendations() *ValidationReviewUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// Mutation returns the ValidationReviewMutation object of the builder.
func (_u *ValidationReviewUpdateOne) Mutation() *ValidationReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the ValidationReviewUpdate builder.
func (_u *ValidationReviewUpdateOne) Where(ps ...predicate.ValidationReview) *ValidationReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ValidationReviewUpdateOne) Select(field string, fields ...string) *ValidationReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ValidationReview entity.
func (_u *ValidationReviewUpdateOne) Save(ctx context.Context) (*ValidationReview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ValidationReviewUpdateOne) SaveX(ctx context.Context) *ValidationReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ValidationReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ValidationReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ValidationReviewUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ValidationReview.task"`)
	}
	return nil
}

func (_u *ValidationReviewUpdateOne) sqlSave(ctx context.Context) (_node *ValidationReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(validationreview.Table, validationreview.Columns, sqlgraph.NewFieldSpec(validationreview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ValidationReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, validationreview.FieldID)
		for _, f := range fields {
			if !validationreview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != validationreview.FieldID {
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
	if value, ok := _u.mutation.ValidatorAgentID(); ok {
		_spec.SetField(validationreview.FieldValidatorAgentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IterationNumber(); ok {
		_spec.SetField(validationreview.FieldIterationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIterationNumber(); ok {
		_spec.AddField(validationreview.FieldIterationNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ValidationPassed(); ok {
		_spec.SetField(validationreview.FieldValidationPassed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(validationreview.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.Evidence(); ok {
		_spec.SetField(validationreview.FieldEvidence, field.TypeJSON, value)
	}
	if _u.mutation.EvidenceCleared() {
		_spec.ClearField(validationreview.FieldEvidence, field.TypeJSON)
	}
	if value, ok := _u.mutation.Recommendations(); ok {
		_spec.SetField(validationreview.FieldRecommendations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, validationreview.FieldRecommendations, value)
		})
	}
	if _u.mutation.RecommendationsCleared() {
		_spec.ClearField(validationreview.FieldRecommendations, field.TypeJSON)
	}
	_node = &ValidationReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{validationreview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
