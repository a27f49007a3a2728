// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/predicate"
)

// PlaybookChangeUpdate is the builder for updating PlaybookChange entities.
type PlaybookChangeUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybookChangeMutation
}

// Where appends a list predicates to the PlaybookChangeUpdate builder.
func (_u *PlaybookChangeUpdate) Where(ps ...predicate.PlaybookChange) *PlaybookChangeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChangeType sets the "change_type" field.
func (_u *PlaybookChangeUpdate) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeUpdate {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableChangeType(v *playbookchange.ChangeType) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *PlaybookChangeUpdate) SetSection(v string) *PlaybookChangeUpdate {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableSection(v *string) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PlaybookChangeUpdate) SetContent(v string) *PlaybookChangeUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableContent(v *string) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlaybookChangeUpdate) SetReasoning(v string) *PlaybookChangeUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableReasoning(v *string) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PlaybookChangeUpdate) ClearReasoning() *PlaybookChangeUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (_u *PlaybookChangeUpdate) SetRelatedMemoryID(v string) *PlaybookChangeUpdate {
	_u.mutation.SetRelatedMemoryID(v)
	return _u
}

// SetNillableRelatedMemoryID sets the "related_memory_id" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableRelatedMemoryID(v *string) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetRelatedMemoryID(*v)
	}
	return _u
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (_u *PlaybookChangeUpdate) ClearRelatedMemoryID() *PlaybookChangeUpdate {
	_u.mutation.ClearRelatedMemoryID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookChangeUpdate) SetCreatedBy(v string) *PlaybookChangeUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookChangeUpdate) SetNillableCreatedBy(v *string) *PlaybookChangeUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookChangeUpdate) ClearCreatedBy() *PlaybookChangeUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PlaybookChangeMutation object of the builder.
func (_u *PlaybookChangeUpdate) Mutation() *PlaybookChangeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybookChangeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookChangeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybookChangeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookChangeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybookChangeUpdate) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := playbookchange.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PlaybookChange.change_type": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlaybookChange.ticket"`)
	}
	return nil
}

func (_u *PlaybookChangeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbookchange.Table, playbookchange.Columns, sqlgraph.NewFieldSpec(playbookchange.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(playbookchange.FieldChangeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(playbookchange.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(playbookchange.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(playbookchange.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(playbookchange.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedMemoryID(); ok {
		_spec.SetField(playbookchange.FieldRelatedMemoryID, field.TypeString, value)
	}
	if _u.mutation.RelatedMemoryIDCleared() {
		_spec.ClearField(playbookchange.FieldRelatedMemoryID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbookchange.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbookchange.FieldCreatedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybookChangeUpdateOne is the builder for updating a single PlaybookChange entity.
type PlaybookChangeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybookChangeMutation
}

// SetChangeType sets the "change_type" field.
func (_u *PlaybookChangeUpdateOne) SetChangeType(v playbookchange.ChangeType) *PlaybookChangeUpdateOne {
	_u.mutation.SetChangeType(v)
	return _u
}

// SetNillableChangeType sets the "change_type" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableChangeType(v *playbookchange.ChangeType) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetChangeType(*v)
	}
	return _u
}

// SetSection sets the "section" field.
func (_u *PlaybookChangeUpdateOne) SetSection(v string) *PlaybookChangeUpdateOne {
	_u.mutation.SetSection(v)
	return _u
}

// SetNillableSection sets the "section" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableSection(v *string) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetSection(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PlaybookChangeUpdateOne) SetContent(v string) *PlaybookChangeUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableContent(v *string) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *PlaybookChangeUpdateOne) SetReasoning(v string) *PlaybookChangeUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableReasoning(v *string) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *PlaybookChangeUpdateOne) ClearReasoning() *PlaybookChangeUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetRelatedMemoryID sets the "related_memory_id" field.
func (_u *PlaybookChangeUpdateOne) SetRelatedMemoryID(v string) *PlaybookChangeUpdateOne {
	_u.mutation.SetRelatedMemoryID(v)
	return _u
}

// SetNillableRelatedMemoryID sets the "related_memory_id" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableRelatedMemoryID(v *string) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetRelatedMemoryID(*v)
	}
	return _u
}

// ClearRelatedMemoryID clears the value of the "related_memory_id" field.
func (_u *PlaybookChangeUpdateOne) ClearRelatedMemoryID() *PlaybookChangeUpdateOne {
	_u.mutation.ClearRelatedMemoryID()
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookChangeUpdateOne) SetCreatedBy(v string) *PlaybookChangeUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookChangeUpdateOne) SetNillableCreatedBy(v *string) *PlaybookChangeUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookChangeUpdateOne) ClearCreatedBy() *PlaybookChangeUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// Mutation returns the PlaybookChangeMutation object of the builder.
func (_u *PlaybookChangeUpdateOne) Mutation() *PlaybookChangeMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybookChangeUpdate builder.
func (_u *PlaybookChangeUpdateOne) Where(ps ...predicate.PlaybookChange) *PlaybookChangeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybookChangeUpdateOne) Select(field string, fields ...string) *PlaybookChangeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybookChange entity.
func (_u *PlaybookChangeUpdateOne) Save(ctx context.Context) (*PlaybookChange, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookChangeUpdateOne) SaveX(ctx context.Context) *PlaybookChange {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybookChangeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookChangeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybookChangeUpdateOne) check() error {
	if v, ok := _u.mutation.ChangeType(); ok {
		if err := playbookchange.ChangeTypeValidator(v); err != nil {
			return &ValidationError{Name: "change_type", err: fmt.Errorf(`ent: validator failed for field "PlaybookChange.change_type": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlaybookChange.ticket"`)
	}
	return nil
}

func (_u *PlaybookChangeUpdateOne) sqlSave(ctx context.Context) (_node *PlaybookChange, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbookchange.Table, playbookchange.Columns, sqlgraph.NewFieldSpec(playbookchange.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybookChange.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbookchange.FieldID)
		for _, f := range fields {
			if !playbookchange.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbookchange.FieldID {
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
	if value, ok := _u.mutation.ChangeType(); ok {
		_spec.SetField(playbookchange.FieldChangeType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Section(); ok {
		_spec.SetField(playbookchange.FieldSection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(playbookchange.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(playbookchange.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(playbookchange.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedMemoryID(); ok {
		_spec.SetField(playbookchange.FieldRelatedMemoryID, field.TypeString, value)
	}
	if _u.mutation.RelatedMemoryIDCleared() {
		_spec.ClearField(playbookchange.FieldRelatedMemoryID, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbookchange.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbookchange.FieldCreatedBy, field.TypeString)
	}
	_node = &PlaybookChange{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookchange.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
