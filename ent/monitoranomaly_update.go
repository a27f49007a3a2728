// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/droverhq/drover/ent/monitoranomaly"
	"github.com/droverhq/drover/ent/predicate"
)

// MonitorAnomalyUpdate is the builder for updating MonitorAnomaly entities.
type MonitorAnomalyUpdate struct {
	config
	hooks    []Hook
	mutation *MonitorAnomalyMutation
}

// Where appends a list predicates to the MonitorAnomalyUpdate builder.
func (_u *MonitorAnomalyUpdate) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetricName sets the "metric_name" field.
func (_u *MonitorAnomalyUpdate) SetMetricName(v string) *MonitorAnomalyUpdate {
	_u.mutation.SetMetricName(v)
	return _u
}

// SetNillableMetricName sets the "metric_name" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableMetricName(v *string) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetMetricName(*v)
	}
	return _u
}

// SetObserved sets the "observed" field.
func (_u *MonitorAnomalyUpdate) SetObserved(v float64) *MonitorAnomalyUpdate {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableObserved(v *float64) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *MonitorAnomalyUpdate) AddObserved(v float64) *MonitorAnomalyUpdate {
	_u.mutation.AddObserved(v)
	return _u
}

// SetBaselineMean sets the "baseline_mean" field.
func (_u *MonitorAnomalyUpdate) SetBaselineMean(v float64) *MonitorAnomalyUpdate {
	_u.mutation.ResetBaselineMean()
	_u.mutation.SetBaselineMean(v)
	return _u
}

// SetNillableBaselineMean sets the "baseline_mean" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableBaselineMean(v *float64) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetBaselineMean(*v)
	}
	return _u
}

// AddBaselineMean adds value to the "baseline_mean" field.
func (_u *MonitorAnomalyUpdate) AddBaselineMean(v float64) *MonitorAnomalyUpdate {
	_u.mutation.AddBaselineMean(v)
	return _u
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (_u *MonitorAnomalyUpdate) SetBaselineStddev(v float64) *MonitorAnomalyUpdate {
	_u.mutation.ResetBaselineStddev()
	_u.mutation.SetBaselineStddev(v)
	return _u
}

// SetNillableBaselineStddev sets the "baseline_stddev" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableBaselineStddev(v *float64) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetBaselineStddev(*v)
	}
	return _u
}

// AddBaselineStddev adds value to the "baseline_stddev" field.
func (_u *MonitorAnomalyUpdate) AddBaselineStddev(v float64) *MonitorAnomalyUpdate {
	_u.mutation.AddBaselineStddev(v)
	return _u
}

// SetZscore sets the "zscore" field.
func (_u *MonitorAnomalyUpdate) SetZscore(v float64) *MonitorAnomalyUpdate {
	_u.mutation.ResetZscore()
	_u.mutation.SetZscore(v)
	return _u
}

// SetNillableZscore sets the "zscore" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableZscore(v *float64) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetZscore(*v)
	}
	return _u
}

// AddZscore adds value to the "zscore" field.
func (_u *MonitorAnomalyUpdate) AddZscore(v float64) *MonitorAnomalyUpdate {
	_u.mutation.AddZscore(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MonitorAnomalyUpdate) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableSeverity(v *monitoranomaly.Severity) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *MonitorAnomalyUpdate) SetEntityType(v string) *MonitorAnomalyUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableEntityType(v *string) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *MonitorAnomalyUpdate) ClearEntityType() *MonitorAnomalyUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *MonitorAnomalyUpdate) SetEntityID(v string) *MonitorAnomalyUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *MonitorAnomalyUpdate) SetNillableEntityID(v *string) *MonitorAnomalyUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *MonitorAnomalyUpdate) ClearEntityID() *MonitorAnomalyUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_u *MonitorAnomalyUpdate) Mutation() *MonitorAnomalyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitorAnomalyUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitorAnomalyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitorAnomalyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitorAnomalyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitorAnomalyUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := monitoranomaly.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitorAnomaly.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitorAnomalyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoranomaly.Table, monitoranomaly.Columns, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetricName(); ok {
		_spec.SetField(monitoranomaly.FieldMetricName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(monitoranomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(monitoranomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaselineMean(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineMean(); ok {
		_spec.AddField(monitoranomaly.FieldBaselineMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaselineStddev(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineStddev(); ok {
		_spec.AddField(monitoranomaly.FieldBaselineStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zscore(); ok {
		_spec.SetField(monitoranomaly.FieldZscore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZscore(); ok {
		_spec.AddField(monitoranomaly.FieldZscore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(monitoranomaly.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(monitoranomaly.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(monitoranomaly.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(monitoranomaly.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(monitoranomaly.FieldEntityID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoranomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitorAnomalyUpdateOne is the builder for updating a single MonitorAnomaly entity.
type MonitorAnomalyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitorAnomalyMutation
}

// SetMetricName sets the "metric_name" field.
func (_u *MonitorAnomalyUpdateOne) SetMetricName(v string) *MonitorAnomalyUpdateOne {
	_u.mutation.SetMetricName(v)
	return _u
}

// SetNillableMetricName sets the "metric_name" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableMetricName(v *string) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetMetricName(*v)
	}
	return _u
}

// SetObserved sets the "observed" field.
func (_u *MonitorAnomalyUpdateOne) SetObserved(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.ResetObserved()
	_u.mutation.SetObserved(v)
	return _u
}

// SetNillableObserved sets the "observed" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableObserved(v *float64) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetObserved(*v)
	}
	return _u
}

// AddObserved adds value to the "observed" field.
func (_u *MonitorAnomalyUpdateOne) AddObserved(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.AddObserved(v)
	return _u
}

// SetBaselineMean sets the "baseline_mean" field.
func (_u *MonitorAnomalyUpdateOne) SetBaselineMean(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.ResetBaselineMean()
	_u.mutation.SetBaselineMean(v)
	return _u
}

// SetNillableBaselineMean sets the "baseline_mean" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableBaselineMean(v *float64) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetBaselineMean(*v)
	}
	return _u
}

// AddBaselineMean adds value to the "baseline_mean" field.
func (_u *MonitorAnomalyUpdateOne) AddBaselineMean(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.AddBaselineMean(v)
	return _u
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (_u *MonitorAnomalyUpdateOne) SetBaselineStddev(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.ResetBaselineStddev()
	_u.mutation.SetBaselineStddev(v)
	return _u
}

// SetNillableBaselineStddev sets the "baseline_stddev" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableBaselineStddev(v *float64) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetBaselineStddev(*v)
	}
	return _u
}

// AddBaselineStddev adds value to the "baseline_stddev" field.
func (_u *MonitorAnomalyUpdateOne) AddBaselineStddev(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.AddBaselineStddev(v)
	return _u
}

// SetZscore sets the "zscore" field.
func (_u *MonitorAnomalyUpdateOne) SetZscore(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.ResetZscore()
	_u.mutation.SetZscore(v)
	return _u
}

// SetNillableZscore sets the "zscore" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableZscore(v *float64) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetZscore(*v)
	}
	return _u
}

// AddZscore adds value to the "zscore" field.
func (_u *MonitorAnomalyUpdateOne) AddZscore(v float64) *MonitorAnomalyUpdateOne {
	_u.mutation.AddZscore(v)
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *MonitorAnomalyUpdateOne) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableSeverity(v *monitoranomaly.Severity) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *MonitorAnomalyUpdateOne) SetEntityType(v string) *MonitorAnomalyUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableEntityType(v *string) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *MonitorAnomalyUpdateOne) ClearEntityType() *MonitorAnomalyUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *MonitorAnomalyUpdateOne) SetEntityID(v string) *MonitorAnomalyUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *MonitorAnomalyUpdateOne) SetNillableEntityID(v *string) *MonitorAnomalyUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *MonitorAnomalyUpdateOne) ClearEntityID() *MonitorAnomalyUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_u *MonitorAnomalyUpdateOne) Mutation() *MonitorAnomalyMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonitorAnomalyUpdate builder.
func (_u *MonitorAnomalyUpdateOne) Where(ps ...predicate.MonitorAnomaly) *MonitorAnomalyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitorAnomalyUpdateOne) Select(field string, fields ...string) *MonitorAnomalyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitorAnomaly entity.
func (_u *MonitorAnomalyUpdateOne) Save(ctx context.Context) (*MonitorAnomaly, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitorAnomalyUpdateOne) SaveX(ctx context.Context) *MonitorAnomaly {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitorAnomalyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitorAnomalyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitorAnomalyUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := monitoranomaly.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitorAnomaly.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *MonitorAnomalyUpdateOne) sqlSave(ctx context.Context) (_node *MonitorAnomaly, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoranomaly.Table, monitoranomaly.Columns, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitorAnomaly.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoranomaly.FieldID)
		for _, f := range fields {
			if !monitoranomaly.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoranomaly.FieldID {
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
	if value, ok := _u.mutation.MetricName(); ok {
		_spec.SetField(monitoranomaly.FieldMetricName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Observed(); ok {
		_spec.SetField(monitoranomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedObserved(); ok {
		_spec.AddField(monitoranomaly.FieldObserved, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaselineMean(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineMean(); ok {
		_spec.AddField(monitoranomaly.FieldBaselineMean, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BaselineStddev(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBaselineStddev(); ok {
		_spec.AddField(monitoranomaly.FieldBaselineStddev, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Zscore(); ok {
		_spec.SetField(monitoranomaly.FieldZscore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedZscore(); ok {
		_spec.AddField(monitoranomaly.FieldZscore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(monitoranomaly.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(monitoranomaly.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(monitoranomaly.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(monitoranomaly.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(monitoranomaly.FieldEntityID, field.TypeString)
	}
	_node = &MonitorAnomaly{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoranomaly.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
