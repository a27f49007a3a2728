// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/monitoranomaly"
)

// MonitorAnomaly is the model entity for the MonitorAnomaly schema.
type MonitorAnomaly struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// MetricName holds the value of the "metric_name" field.
	MetricName string `json:"metric_name,omitempty"`
	// Observed holds the value of the "observed" field.
	Observed float64 `json:"observed,omitempty"`
	// BaselineMean holds the value of the "baseline_mean" field.
	BaselineMean float64 `json:"baseline_mean,omitempty"`
	// BaselineStddev holds the value of the "baseline_stddev" field.
	BaselineStddev float64 `json:"baseline_stddev,omitempty"`
	// Zscore holds the value of the "zscore" field.
	Zscore float64 `json:"zscore,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity monitoranomaly.Severity `json:"severity,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType *string `json:"entity_type,omitempty"`
	// EntityID holds the value of the "entity_id" field.
	EntityID *string `json:"entity_id,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt   time.Time `json:"detected_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitorAnomaly) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoranomaly.FieldObserved, monitoranomaly.FieldBaselineMean, monitoranomaly.FieldBaselineStddev, monitoranomaly.FieldZscore:
			values[i] = new(sql.NullFloat64)
		case monitoranomaly.FieldID, monitoranomaly.FieldMetricName, monitoranomaly.FieldSeverity, monitoranomaly.FieldEntityType, monitoranomaly.FieldEntityID:
			values[i] = new(sql.NullString)
		case monitoranomaly.FieldDetectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitorAnomaly fields.
func (_m *MonitorAnomaly) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoranomaly.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case monitoranomaly.FieldMetricName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metric_name", values[i])
			} else if value.Valid {
				_m.MetricName = value.String
			}
		case monitoranomaly.FieldObserved:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field observed", values[i])
			} else if value.Valid {
				_m.Observed = value.Float64
			}
		case monitoranomaly.FieldBaselineMean:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_mean", values[i])
			} else if value.Valid {
				_m.BaselineMean = value.Float64
			}
		case monitoranomaly.FieldBaselineStddev:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field baseline_stddev", values[i])
			} else if value.Valid {
				_m.BaselineStddev = value.Float64
			}
		case monitoranomaly.FieldZscore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field zscore", values[i])
			} else if value.Valid {
				_m.Zscore = value.Float64
			}
		case monitoranomaly.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = monitoranomaly.Severity(value.String)
			}
		case monitoranomaly.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = new(string)
				*_m.EntityType = value.String
			}
		case monitoranomaly.FieldEntityID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_id", values[i])
			} else if value.Valid {
				_m.EntityID = new(string)
				*_m.EntityID = value.String
			}
		case monitoranomaly.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MonitorAnomaly.
// This includes values selected through modifiers, order, etc.
func (_m *MonitorAnomaly) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MonitorAnomaly.
// Note that you need to call MonitorAnomaly.Unwrap() before calling this method if this MonitorAnomaly
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitorAnomaly) Update() *MonitorAnomalyUpdateOne {
	return NewMonitorAnomalyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitorAnomaly entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitorAnomaly) Unwrap() *MonitorAnomaly {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonitorAnomaly is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitorAnomaly) String() string {
	var builder strings.Builder
	builder.WriteString("MonitorAnomaly(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("metric_name=")
	builder.WriteString(_m.MetricName)
	builder.WriteString(", ")
	builder.WriteString("observed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Observed))
	builder.WriteString(", ")
	builder.WriteString("baseline_mean=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineMean))
	builder.WriteString(", ")
	builder.WriteString("baseline_stddev=")
	builder.WriteString(fmt.Sprintf("%v", _m.BaselineStddev))
	builder.WriteString(", ")
	builder.WriteString("zscore=")
	builder.WriteString(fmt.Sprintf("%v", _m.Zscore))
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	if v := _m.EntityType; v != nil {
		builder.WriteString("entity_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EntityID; v != nil {
		builder.WriteString("entity_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MonitorAnomalies is a parsable slice of MonitorAnomaly.
type MonitorAnomalies []*MonitorAnomaly
