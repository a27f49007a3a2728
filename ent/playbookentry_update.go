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
	"github.com/droverhq/drover/ent/playbookentry"
	"github.com/droverhq/drover/ent/predicate"
)

// PlaybookEntryUpdate is the builder for updating PlaybookEntry entities.
type PlaybookEntryUpdate struct {
	config
	hooks    []Hook
	mutation *PlaybookEntryMutation
}

// Where appends a list predicates to the PlaybookEntryUpdate builder.
func (_u *PlaybookEntryUpdate) Where(ps ...predicate.PlaybookEntry) *PlaybookEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *PlaybookEntryUpdate) SetContent(v string) *PlaybookEntryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PlaybookEntryUpdate) SetNillableContent(v *string) *PlaybookEntryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PlaybookEntryUpdate) SetCategory(v playbookentry.Category) *PlaybookEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PlaybookEntryUpdate) SetNillableCategory(v *playbookentry.Category) *PlaybookEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *PlaybookEntryUpdate) SetTags(v []string) *PlaybookEntryUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PlaybookEntryUpdate) AppendTags(v []string) *PlaybookEntryUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PlaybookEntryUpdate) ClearTags() *PlaybookEntryUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdate) SetSupportingMemoryIds(v []string) *PlaybookEntryUpdate {
	_u.mutation.SetSupportingMemoryIds(v)
	return _u
}

// AppendSupportingMemoryIds appends value to the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdate) AppendSupportingMemoryIds(v []string) *PlaybookEntryUpdate {
	_u.mutation.AppendSupportingMemoryIds(v)
	return _u
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdate) ClearSupportingMemoryIds() *PlaybookEntryUpdate {
	_u.mutation.ClearSupportingMemoryIds()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PlaybookEntryUpdate) SetIsActive(v bool) *PlaybookEntryUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PlaybookEntryUpdate) SetNillableIsActive(v *bool) *PlaybookEntryUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookEntryUpdate) SetCreatedBy(v string) *PlaybookEntryUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookEntryUpdate) SetNillableCreatedBy(v *string) *PlaybookEntryUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookEntryUpdate) ClearCreatedBy() *PlaybookEntryUpdate {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookEntryUpdate) SetUpdatedAt(v time.Time) *PlaybookEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlaybookEntryMutation object of the builder.
func (_u *PlaybookEntryUpdate) Mutation() *PlaybookEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlaybookEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlaybookEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlaybookEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playbookentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybookEntryUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := playbookentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PlaybookEntry.category": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlaybookEntry.ticket"`)
	}
	return nil
}

func (_u *PlaybookEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbookentry.Table, playbookentry.Columns, sqlgraph.NewFieldSpec(playbookentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(playbookentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(playbookentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(playbookentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(playbookentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportingMemoryIds(); ok {
		_spec.SetField(playbookentry.FieldSupportingMemoryIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingMemoryIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookentry.FieldSupportingMemoryIds, value)
		})
	}
	if _u.mutation.SupportingMemoryIdsCleared() {
		_spec.ClearField(playbookentry.FieldSupportingMemoryIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(playbookentry.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbookentry.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbookentry.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlaybookEntryUpdateOne is the builder for updating a single PlaybookEntry entity.
type PlaybookEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlaybookEntryMutation
}

// SetContent sets the "content" field.
func (_u *PlaybookEntryUpdateOne) SetContent(v string) *PlaybookEntryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PlaybookEntryUpdateOne) SetNillableContent(v *string) *PlaybookEntryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *PlaybookEntryUpdateOne) SetCategory(v playbookentry.Category) *PlaybookEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *PlaybookEntryUpdateOne) SetNillableCategory(v *playbookentry.Category) *PlaybookEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTags sets the "tags" field.
func (_u *PlaybookEntryUpdateOne) SetTags(v []string) *PlaybookEntryUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *PlaybookEntryUpdateOne) AppendTags(v []string) *PlaybookEntryUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *PlaybookEntryUpdateOne) ClearTags() *PlaybookEntryUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetSupportingMemoryIds sets the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdateOne) SetSupportingMemoryIds(v []string) *PlaybookEntryUpdateOne {
	_u.mutation.SetSupportingMemoryIds(v)
	return _u
}

// AppendSupportingMemoryIds appends value to the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdateOne) AppendSupportingMemoryIds(v []string) *PlaybookEntryUpdateOne {
	_u.mutation.AppendSupportingMemoryIds(v)
	return _u
}

// ClearSupportingMemoryIds clears the value of the "supporting_memory_ids" field.
func (_u *PlaybookEntryUpdateOne) ClearSupportingMemoryIds() *PlaybookEntryUpdateOne {
	_u.mutation.ClearSupportingMemoryIds()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *PlaybookEntryUpdateOne) SetIsActive(v bool) *PlaybookEntryUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *PlaybookEntryUpdateOne) SetNillableIsActive(v *bool) *PlaybookEntryUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *PlaybookEntryUpdateOne) SetCreatedBy(v string) *PlaybookEntryUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *PlaybookEntryUpdateOne) SetNillableCreatedBy(v *string) *PlaybookEntryUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (_u *PlaybookEntryUpdateOne) ClearCreatedBy() *PlaybookEntryUpdateOne {
	_u.mutation.ClearCreatedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PlaybookEntryUpdateOne) SetUpdatedAt(v time.Time) *PlaybookEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the PlaybookEntryMutation object of the builder.
func (_u *PlaybookEntryUpdateOne) Mutation() *PlaybookEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlaybookEntryUpdate builder.
func (_u *PlaybookEntryUpdateOne) Where(ps ...predicate.PlaybookEntry) *PlaybookEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlaybookEntryUpdateOne) Select(field string, fields ...string) *PlaybookEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlaybookEntry entity.
func (_u *PlaybookEntryUpdateOne) Save(ctx context.Context) (*PlaybookEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlaybookEntryUpdateOne) SaveX(ctx context.Context) *PlaybookEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlaybookEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlaybookEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PlaybookEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := playbookentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlaybookEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := playbookentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "PlaybookEntry.category": %w`, err)}
		}
	}
	if _u.mutation.TicketCleared() && len(_u.mutation.TicketIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlaybookEntry.ticket"`)
	}
	return nil
}

func (_u *PlaybookEntryUpdateOne) sqlSave(ctx context.Context) (_node *PlaybookEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(playbookentry.Table, playbookentry.Columns, sqlgraph.NewFieldSpec(playbookentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlaybookEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, playbookentry.FieldID)
		for _, f := range fields {
			if !playbookentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != playbookentry.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(playbookentry.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(playbookentry.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(playbookentry.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookentry.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(playbookentry.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.SupportingMemoryIds(); ok {
		_spec.SetField(playbookentry.FieldSupportingMemoryIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSupportingMemoryIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, playbookentry.FieldSupportingMemoryIds, value)
		})
	}
	if _u.mutation.SupportingMemoryIdsCleared() {
		_spec.ClearField(playbookentry.FieldSupportingMemoryIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(playbookentry.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(playbookentry.FieldCreatedBy, field.TypeString, value)
	}
	if _u.mutation.CreatedByCleared() {
		_spec.ClearField(playbookentry.FieldCreatedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(playbookentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PlaybookEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{playbookentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
