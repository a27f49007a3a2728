// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/diagnosticrun"
	"github.com/droverhq/drover/ent/predicate"
)

// DiagnosticRunDelete is the builder for deleting a DiagnosticRun entity.
type DiagnosticRunDelete struct {
	config
	hooks    []Hook
	mutation *DiagnosticRunMutation
}

// Where appends a list predicates to the DiagnosticRunDelete builder.
func (_d *DiagnosticRunDelete) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiagnosticRunDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticRunDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiagnosticRunDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diagnosticrun.Table, sqlgraph.NewFieldSpec(diagnosticrun.FieldID, field.TypeString))
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

// DiagnosticRunDeleteOne is the builder for deleting a single DiagnosticRun entity.
type DiagnosticRunDeleteOne struct {
	_d *DiagnosticRunDelete
}

// Where appends a list predicates to the DiagnosticRunDelete builder.
func (_d *DiagnosticRunDeleteOne) Where(ps ...predicate.DiagnosticRun) *DiagnosticRunDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiagnosticRunDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diagnosticrun.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiagnosticRunDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
