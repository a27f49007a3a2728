// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/playbookchange"
	"github.com/droverhq/drover/ent/predicate"
)

// PlaybookChangeDelete is the builder for deleting a PlaybookChange entity.
type PlaybookChangeDelete struct {
	config
	hooks    []Hook
	mutation *PlaybookChangeMutation
}

// Where appends a list predicates to the PlaybookChangeDelete builder.
func (_d *PlaybookChangeDelete) Where(ps ...predicate.PlaybookChange) *PlaybookChangeDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PlaybookChangeDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybookChangeDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PlaybookChangeDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(playbookchange.Table, sqlgraph.NewFieldSpec(playbookchange.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PlaybookChangeDeleteOne is the builder for deleting a single PlaybookChange entity.
type PlaybookChangeDeleteOne struct {
	_d *PlaybookChangeDelete
}

// Where appends a list predicates to the PlaybookChangeDelete builder.
func (_d *PlaybookChangeDeleteOne) Where(ps ...predicate.PlaybookChange) *PlaybookChangeDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PlaybookChangeDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{playbookchange.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PlaybookChangeDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
