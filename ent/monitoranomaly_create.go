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
	"github.com/droverhq/drover/ent/monitoranomaly"
)

// MonitorAnomalyCreate is the builder for creating a MonitorAnomaly entity.
type MonitorAnomalyCreate struct {
	config
	mutation *MonitorAnomalyMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMetricName sets the "metric_name" field.
func (_c *MonitorAnomalyCreate) SetMetricName(v string) *MonitorAnomalyCreate {
	_c.mutation.SetMetricName(v)
	return _c
}

// SetObserved sets the "observed" field.
func (_c *MonitorAnomalyCreate) SetObserved(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetObserved(v)
	return _c
}

// SetBaselineMean sets the "baseline_mean" field.
func (_c *MonitorAnomalyCreate) SetBaselineMean(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetBaselineMean(v)
	return _c
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (_c *MonitorAnomalyCreate) SetBaselineStddev(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetBaselineStddev(v)
	return _c
}

// SetZscore sets the "zscore" field.
func (_c *MonitorAnomalyCreate) SetZscore(v float64) *MonitorAnomalyCreate {
	_c.mutation.SetZscore(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *MonitorAnomalyCreate) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *MonitorAnomalyCreate) SetEntityType(v string) *MonitorAnomalyCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *MonitorAnomalyCreate) SetNillableEntityType(v *string) *MonitorAnomalyCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *MonitorAnomalyCreate) SetEntityID(v string) *MonitorAnomalyCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *MonitorAnomalyCreate) SetNillableEntityID(v *string) *MonitorAnomalyCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *MonitorAnomalyCreate) SetDetectedAt(v time.Time) *MonitorAnomalyCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *MonitorAnomalyCreate) SetNillableDetectedAt(v *time.Time) *MonitorAnomalyCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MonitorAnomalyCreate) SetID(v string) *MonitorAnomalyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the MonitorAnomalyMutation object of the builder.
func (_c *MonitorAnomalyCreate) Mutation() *MonitorAnomalyMutation {
	return _c.mutation
}

// Save creates the MonitorAnomaly in the database.
func (_c *MonitorAnomalyCreate) Save(ctx context.Context) (*MonitorAnomaly, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MonitorAnomalyCreate) SaveX(ctx context.Context) *MonitorAnomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitorAnomalyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitorAnomalyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MonitorAnomalyCreate) defaults() {
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := monitoranomaly.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MonitorAnomalyCreate) check() error {
	if _, ok := _c.mutation.MetricName(); !ok {
		return &ValidationError{Name: "metric_name", err: errors.New(`ent: missing required field "MonitorAnomaly.metric_name"`)}
	}
	if _, ok := _c.mutation.Observed(); !ok {
		return &ValidationError{Name: "observed", err: errors.New(`ent: missing required field "MonitorAnomaly.observed"`)}
	}
	if _, ok := _c.mutation.BaselineMean(); !ok {
		return &ValidationError{Name: "baseline_mean", err: errors.New(`ent: missing required field "MonitorAnomaly.baseline_mean"`)}
	}
	if _, ok := _c.mutation.BaselineStddev(); !ok {
		return &ValidationError{Name: "baseline_stddev", err: errors.New(`ent: missing required field "MonitorAnomaly.baseline_stddev"`)}
	}
	if _, ok := _c.mutation.Zscore(); !ok {
		return &ValidationError{Name: "zscore", err: errors.New(`ent: missing required field "MonitorAnomaly.zscore"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "MonitorAnomaly.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := monitoranomaly.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "MonitorAnomaly.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "MonitorAnomaly.detected_at"`)}
	}
	return nil
}

func (_c *MonitorAnomalyCreate) sqlSave(ctx context.Context) (*MonitorAnomaly, error) {
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
			return nil, fmt.Errorf("unexpected MonitorAnomaly.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MonitorAnomalyCreate) createSpec() (*MonitorAnomaly, *sqlgraph.CreateSpec) {
	var (
		_node = &MonitorAnomaly{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(monitoranomaly.Table, sqlgraph.NewFieldSpec(monitoranomaly.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MetricName(); ok {
		_spec.SetField(monitoranomaly.FieldMetricName, field.TypeString, value)
		_node.MetricName = value
	}
	if value, ok := _c.mutation.Observed(); ok {
		_spec.SetField(monitoranomaly.FieldObserved, field.TypeFloat64, value)
		_node.Observed = value
	}
	if value, ok := _c.mutation.BaselineMean(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineMean, field.TypeFloat64, value)
		_node.BaselineMean = value
	}
	if value, ok := _c.mutation.BaselineStddev(); ok {
		_spec.SetField(monitoranomaly.FieldBaselineStddev, field.TypeFloat64, value)
		_node.BaselineStddev = value
	}
	if value, ok := _c.mutation.Zscore(); ok {
		_spec.SetField(monitoranomaly.FieldZscore, field.TypeFloat64, value)
		_node.Zscore = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(monitoranomaly.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(monitoranomaly.FieldEntityType, field.TypeString, value)
		_node.EntityType = &value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(monitoranomaly.FieldEntityID, field.TypeString, value)
		_node.EntityID = &value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(monitoranomaly.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitorAnomaly.Create().
//		SetMetricName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitorAnomalyUpsert) {
//			SetMetricName(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitorAnomalyCreate) OnConflict(opts ...sql.ConflictOption) *MonitorAnomalyUpsertOne {
	_c.conflict = opts
	return &MonitorAnomalyUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitorAnomalyCreate) OnConflictColumns(columns ...string) *MonitorAnomalyUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitorAnomalyUpsertOne{
		create: _c,
	}
}

type (
	// MonitorAnomalyUpsertOne is the builder for "upsert"-ing
	//  one MonitorAnomaly node.
	MonitorAnomalyUpsertOne struct {
		create *MonitorAnomalyCreate
	}

	// MonitorAnomalyUpsert is the "OnConflict" setter.
	MonitorAnomalyUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetricName sets the "metric_name" field.
func (u *MonitorAnomalyUpsert) SetMetricName(v string) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldMetricName, v)
	return u
}

// UpdateMetricName sets the "metric_name" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateMetricName() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldMetricName)
	return u
}

// SetObserved sets the "observed" field.
func (u *MonitorAnomalyUpsert) SetObserved(v float64) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldObserved, v)
	return u
}

// UpdateObserved sets the "observed" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateObserved() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldObserved)
	return u
}

// AddObserved adds v to the "observed" field.
func (u *MonitorAnomalyUpsert) AddObserved(v float64) *MonitorAnomalyUpsert {
	u.Add(monitoranomaly.FieldObserved, v)
	return u
}

// SetBaselineMean sets the "baseline_mean" field.
func (u *MonitorAnomalyUpsert) SetBaselineMean(v float64) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldBaselineMean, v)
	return u
}

// UpdateBaselineMean sets the "baseline_mean" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateBaselineMean() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldBaselineMean)
	return u
}

// AddBaselineMean adds v to the "baseline_mean" field.
func (u *MonitorAnomalyUpsert) AddBaselineMean(v float64) *MonitorAnomalyUpsert {
	u.Add(monitoranomaly.FieldBaselineMean, v)
	return u
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (u *MonitorAnomalyUpsert) SetBaselineStddev(v float64) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldBaselineStddev, v)
	return u
}

// UpdateBaselineStddev sets the "baseline_stddev" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateBaselineStddev() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldBaselineStddev)
	return u
}

// AddBaselineStddev adds v to the "baseline_stddev" field.
func (u *MonitorAnomalyUpsert) AddBaselineStddev(v float64) *MonitorAnomalyUpsert {
	u.Add(monitoranomaly.FieldBaselineStddev, v)
	return u
}

// SetZscore sets the "zscore" field.
func (u *MonitorAnomalyUpsert) SetZscore(v float64) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldZscore, v)
	return u
}

// UpdateZscore sets the "zscore" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateZscore() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldZscore)
	return u
}

// AddZscore adds v to the "zscore" field.
func (u *MonitorAnomalyUpsert) AddZscore(v float64) *MonitorAnomalyUpsert {
	u.Add(monitoranomaly.FieldZscore, v)
	return u
}

// SetSeverity sets the "severity" field.
func (u *MonitorAnomalyUpsert) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateSeverity() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldSeverity)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *MonitorAnomalyUpsert) SetEntityType(v string) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateEntityType() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldEntityType)
	return u
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *MonitorAnomalyUpsert) ClearEntityType() *MonitorAnomalyUpsert {
	u.SetNull(monitoranomaly.FieldEntityType)
	return u
}

// SetEntityID sets the "entity_id" field.
func (u *MonitorAnomalyUpsert) SetEntityID(v string) *MonitorAnomalyUpsert {
	u.Set(monitoranomaly.FieldEntityID, v)
	return u
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *MonitorAnomalyUpsert) UpdateEntityID() *MonitorAnomalyUpsert {
	u.SetExcluded(monitoranomaly.FieldEntityID)
	return u
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *MonitorAnomalyUpsert) ClearEntityID() *MonitorAnomalyUpsert {
	u.SetNull(monitoranomaly.FieldEntityID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoranomaly.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitorAnomalyUpsertOne) UpdateNewValues() *MonitorAnomalyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(monitoranomaly.FieldID)
		}
		if _, exists := u.create.mutation.DetectedAt(); exists {
			s.SetIgnore(monitoranomaly.FieldDetectedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MonitorAnomalyUpsertOne) Ignore() *MonitorAnomalyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitorAnomalyUpsertOne) DoNothing() *MonitorAnomalyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitorAnomalyCreate.OnConflict
// documentation for more info.
func (u *MonitorAnomalyUpsertOne) Update(set func(*MonitorAnomalyUpsert)) *MonitorAnomalyUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitorAnomalyUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetricName sets the "metric_name" field.
func (u *MonitorAnomalyUpsertOne) SetMetricName(v string) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetMetricName(v)
	})
}

// UpdateMetricName sets the "metric_name" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateMetricName() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateMetricName()
	})
}

// SetObserved sets the "observed" field.
func (u *MonitorAnomalyUpsertOne) SetObserved(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetObserved(v)
	})
}

// AddObserved adds v to the "observed" field.
func (u *MonitorAnomalyUpsertOne) AddObserved(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddObserved(v)
	})
}

// UpdateObserved sets the "observed" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateObserved() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateObserved()
	})
}

// SetBaselineMean sets the "baseline_mean" field.
func (u *MonitorAnomalyUpsertOne) SetBaselineMean(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetBaselineMean(v)
	})
}

// AddBaselineMean adds v to the "baseline_mean" field.
func (u *MonitorAnomalyUpsertOne) AddBaselineMean(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddBaselineMean(v)
	})
}

// UpdateBaselineMean sets the "baseline_mean" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateBaselineMean() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateBaselineMean()
	})
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (u *MonitorAnomalyUpsertOne) SetBaselineStddev(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetBaselineStddev(v)
	})
}

// AddBaselineStddev adds v to the "baseline_stddev" field.
func (u *MonitorAnomalyUpsertOne) AddBaselineStddev(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddBaselineStddev(v)
	})
}

// UpdateBaselineStddev sets the "baseline_stddev" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateBaselineStddev() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateBaselineStddev()
	})
}

// SetZscore sets the "zscore" field.
func (u *MonitorAnomalyUpsertOne) SetZscore(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetZscore(v)
	})
}

// AddZscore adds v to the "zscore" field.
func (u *MonitorAnomalyUpsertOne) AddZscore(v float64) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddZscore(v)
	})
}

// UpdateZscore sets the "zscore" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateZscore() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateZscore()
	})
}

// SetSeverity sets the "severity" field.
func (u *MonitorAnomalyUpsertOne) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateSeverity() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateSeverity()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *MonitorAnomalyUpsertOne) SetEntityType(v string) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateEntityType() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *MonitorAnomalyUpsertOne) ClearEntityType() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *MonitorAnomalyUpsertOne) SetEntityID(v string) *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertOne) UpdateEntityID() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *MonitorAnomalyUpsertOne) ClearEntityID() *MonitorAnomalyUpsertOne {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.ClearEntityID()
	})
}

// Exec executes the query.
func (u *MonitorAnomalyUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitorAnomalyCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitorAnomalyUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MonitorAnomalyUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MonitorAnomalyUpsertOne.ID is not supported by MySQL driver. Use MonitorAnomalyUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MonitorAnomalyUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MonitorAnomalyCreateBulk is the builder for creating many MonitorAnomaly entities in bulk.
type MonitorAnomalyCreateBulk struct {
	config
	err      error
	builders []*MonitorAnomalyCreate
	conflict []sql.ConflictOption
}

// Save creates the MonitorAnomaly entities in the database.
func (_c *MonitorAnomalyCreateBulk) Save(ctx context.Context) ([]*MonitorAnomaly, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MonitorAnomaly, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MonitorAnomalyMutation)
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
func (_c *MonitorAnomalyCreateBulk) SaveX(ctx context.Context) []*MonitorAnomaly {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MonitorAnomalyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MonitorAnomalyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MonitorAnomaly.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MonitorAnomalyUpsert) {
//			SetMetricName(v+v).
//		}).
//		Exec(ctx)
func (_c *MonitorAnomalyCreateBulk) OnConflict(opts ...sql.ConflictOption) *MonitorAnomalyUpsertBulk {
	_c.conflict = opts
	return &MonitorAnomalyUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MonitorAnomalyCreateBulk) OnConflictColumns(columns ...string) *MonitorAnomalyUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MonitorAnomalyUpsertBulk{
		create: _c,
	}
}

// MonitorAnomalyUpsertBulk is the builder for "upsert"-ing
// a bulk of MonitorAnomaly nodes.
type MonitorAnomalyUpsertBulk struct {
	create *MonitorAnomalyCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(monitoranomaly.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MonitorAnomalyUpsertBulk) UpdateNewValues() *MonitorAnomalyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(monitoranomaly.FieldID)
			}
			if _, exists := b.mutation.DetectedAt(); exists {
				s.SetIgnore(monitoranomaly.FieldDetectedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MonitorAnomaly.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MonitorAnomalyUpsertBulk) Ignore() *MonitorAnomalyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MonitorAnomalyUpsertBulk) DoNothing() *MonitorAnomalyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MonitorAnomalyCreateBulk.OnConflict
// documentation for more info.
func (u *MonitorAnomalyUpsertBulk) Update(set func(*MonitorAnomalyUpsert)) *MonitorAnomalyUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MonitorAnomalyUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetricName sets the "metric_name" field.
func (u *MonitorAnomalyUpsertBulk) SetMetricName(v string) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetMetricName(v)
	})
}

// UpdateMetricName sets the "metric_name" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateMetricName() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateMetricName()
	})
}

// SetObserved sets the "observed" field.
func (u *MonitorAnomalyUpsertBulk) SetObserved(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetObserved(v)
	})
}

// AddObserved adds v to the "observed" field.
func (u *MonitorAnomalyUpsertBulk) AddObserved(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddObserved(v)
	})
}

// UpdateObserved sets the "observed" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateObserved() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateObserved()
	})
}

// SetBaselineMean sets the "baseline_mean" field.
func (u *MonitorAnomalyUpsertBulk) SetBaselineMean(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetBaselineMean(v)
	})
}

// AddBaselineMean adds v to the "baseline_mean" field.
func (u *MonitorAnomalyUpsertBulk) AddBaselineMean(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddBaselineMean(v)
	})
}

// UpdateBaselineMean sets the "baseline_mean" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateBaselineMean() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateBaselineMean()
	})
}

// SetBaselineStddev sets the "baseline_stddev" field.
func (u *MonitorAnomalyUpsertBulk) SetBaselineStddev(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetBaselineStddev(v)
	})
}

// AddBaselineStddev adds v to the "baseline_stddev" field.
func (u *MonitorAnomalyUpsertBulk) AddBaselineStddev(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddBaselineStddev(v)
	})
}

// UpdateBaselineStddev sets the "baseline_stddev" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateBaselineStddev() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateBaselineStddev()
	})
}

// SetZscore sets the "zscore" field.
func (u *MonitorAnomalyUpsertBulk) SetZscore(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetZscore(v)
	})
}

// AddZscore adds v to the "zscore" field.
func (u *MonitorAnomalyUpsertBulk) AddZscore(v float64) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.AddZscore(v)
	})
}

// UpdateZscore sets the "zscore" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateZscore() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateZscore()
	})
}

// SetSeverity sets the "severity" field.
func (u *MonitorAnomalyUpsertBulk) SetSeverity(v monitoranomaly.Severity) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateSeverity() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateSeverity()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *MonitorAnomalyUpsertBulk) SetEntityType(v string) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateEntityType() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *MonitorAnomalyUpsertBulk) ClearEntityType() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.ClearEntityType()
	})
}

// SetEntityID sets the "entity_id" field.
func (u *MonitorAnomalyUpsertBulk) SetEntityID(v string) *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.SetEntityID(v)
	})
}

// UpdateEntityID sets the "entity_id" field to the value that was provided on create.
func (u *MonitorAnomalyUpsertBulk) UpdateEntityID() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.UpdateEntityID()
	})
}

// ClearEntityID clears the value of the "entity_id" field.
func (u *MonitorAnomalyUpsertBulk) ClearEntityID() *MonitorAnomalyUpsertBulk {
	return u.Update(func(s *MonitorAnomalyUpsert) {
		s.ClearEntityID()
	})
}

// Exec executes the query.
func (u *MonitorAnomalyUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MonitorAnomalyCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MonitorAnomalyCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MonitorAnomalyUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
