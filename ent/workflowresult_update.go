// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/predicate"
	"github.com/droverhq/drover/ent/workflowresult"
)

// WorkflowResultUpdate is the builder for updating WorkflowResult entities.
type WorkflowResultUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowResultMutation
}

// Where appends a list predicates to the WorkflowResultUpdate builder.
func (_u *WorkflowResultUpdate) Where(ps ...predicate.WorkflowResult) *WorkflowResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (_u *WorkflowResultUpdate) SetMarkdownFilePath(v string) *WorkflowResultUpdate {
	_u.mutation.SetMarkdownFilePath(v)
	return _u
}

// SetNillableMarkdownFilePath sets the "markdown_file_path" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableMarkdownFilePath(v *string) *WorkflowResultUpdate {
	if v != nil {
		_u.SetMarkdownFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowResultUpdate) SetStatus(v workflowresult.Status) *WorkflowResultUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableStatus(v *workflowresult.Status) *WorkflowResultUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *WorkflowResultUpdate) SetSubmittedBy(v string) *WorkflowResultUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableSubmittedBy(v *string) *WorkflowResultUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *WorkflowResultUpdate) ClearSubmittedBy() *WorkflowResultUpdate {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowResultUpdate) SetSummary(v string) *WorkflowResultUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableSummary(v *string) *WorkflowResultUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowResultUpdate) ClearSummary() *WorkflowResultUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *WorkflowResultUpdate) SetValidatedAt(v time.Time) *WorkflowResultUpdate {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *WorkflowResultUpdate) SetNillableValidatedAt(v *time.Time) *WorkflowResultUpdate {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *WorkflowResultUpdate) ClearValidatedAt() *WorkflowResultUpdate {
	_u.mutation.ClearValidatedAt()
	return _u
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_u *WorkflowResultUpdate) Mutation() *WorkflowResultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowResultUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowResult.ticket"`)
	}
	return nil
}

func (_u *WorkflowResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowresult.Table, workflowresult.Columns, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MarkdownFilePath(); ok {
		_spec.SetField(workflowresult.FieldMarkdownFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(workflowresult.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(workflowresult.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(workflowresult.FieldValidatedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowResultUpdateOne is the builder for updating a single WorkflowResult entity.
type WorkflowResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowResultMutation
}

// SetMarkdownFilePath sets the "markdown_file_path" field.
func (_u *WorkflowResultUpdateOne) SetMarkdownFilePath(v string) *WorkflowResultUpdateOne {
	_u.mutation.SetMarkdownFilePath(v)
	return _u
}

// SetNillableMarkdownFilePath sets the "markdown_file_path" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableMarkdownFilePath(v *string) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetMarkdownFilePath(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowResultUpdateOne) SetStatus(v workflowresult.Status) *WorkflowResultUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableStatus(v *workflowresult.Status) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *WorkflowResultUpdateOne) SetSubmittedBy(v string) *WorkflowResultUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableSubmittedBy(v *string) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *WorkflowResultUpdateOne) ClearSubmittedBy() *WorkflowResultUpdateOne {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkflowResultUpdateOne) SetSummary(v string) *WorkflowResultUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableSummary(v *string) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkflowResultUpdateOne) ClearSummary() *WorkflowResultUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetValidatedAt sets the "validated_at" field.
func (_u *WorkflowResultUpdateOne) SetValidatedAt(v time.Time) *WorkflowResultUpdateOne {
	_u.mutation.SetValidatedAt(v)
	return _u
}

// SetNillableValidatedAt sets the "validated_at" field if the given value is not nil.
func (_u *WorkflowResultUpdateOne) SetNillableValidatedAt(v *time.Time) *WorkflowResultUpdateOne {
	if v != nil {
		_u.SetValidatedAt(*v)
	}
	return _u
}

// ClearValidatedAt clears the value of the "validated_at" field.
func (_u *WorkflowResultUpdateOne) ClearValidatedAt() *WorkflowResultUpdateOne {
	_u.mutation.ClearValidatedAt()
	return _u
}

// Mutation returns the WorkflowResultMutation object of the builder.
func (_u *WorkflowResultUpdateOne) Mutation() *WorkflowResultMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowResultUpdate builder.
func (_u *WorkflowResultUpdateOne) Where(ps ...predicate.WorkflowResult) *WorkflowResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowResultUpdateOne) Select(field string, fields ...string) *WorkflowResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowResult entity.
func (_u *WorkflowResultUpdateOne) Save(ctx context.Context) (*WorkflowResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowResultUpdateOne) SaveX(ctx context.Context) *WorkflowResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowResultUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowresult.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowResult.status": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowResult.ticket"`)
	}
	return nil
}

func (_u *WorkflowResultUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowresult.Table, workflowresult.Columns, sqlgraph.NewFieldSpec(workflowresult.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowresult.FieldID)
		for _, f := range fields {
			if !workflowresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowresult.FieldID {
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
	if value, ok := _u.mutation.MarkdownFilePath(); ok {
		_spec.SetField(workflowresult.FieldMarkdownFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowresult.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(workflowresult.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(workflowresult.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workflowresult.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workflowresult.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ValidatedAt(); ok {
		_spec.SetField(workflowresult.FieldValidatedAt, field.TypeTime, value)
	}
	if _u.mutation.ValidatedAtCleared() {
		_spec.ClearField(workflowresult.FieldValidatedAt, field.TypeTime)
	}
	_node = &WorkflowResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
