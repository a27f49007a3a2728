// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/learnedpattern"
)

// LearnedPattern is the model entity for the LearnedPattern schema.
type LearnedPattern struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// PatternType holds the value of the "pattern_type" field.
	PatternType learnedpattern.PatternType `json:"pattern_type,omitempty"`
	// Regex matched against task_type
	TaskTypePattern string `json:"task_type_pattern,omitempty"`
	// SuccessIndicators holds the value of the "success_indicators" field.
	SuccessIndicators []string `json:"success_indicators,omitempty"`
	// FailureIndicators holds the value of the "failure_indicators" field.
	FailureIndicators []string `json:"failure_indicators,omitempty"`
	// Bounded to [0,1]; adjusted as the pattern is confirmed or contradicted
	ConfidenceScore float64 `json:"confidence_score,omitempty"`
	// UsageCount holds the value of the "usage_count" field.
	UsageCount int `json:"usage_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnedPattern) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnedpattern.FieldSuccessIndicators, learnedpattern.FieldFailureIndicators:
			values[i] = new([]byte)
		case learnedpattern.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case learnedpattern.FieldUsageCount:
			values[i] = new(sql.NullInt64)
		case learnedpattern.FieldID, learnedpattern.FieldPatternType, learnedpattern.FieldTaskTypePattern:
			values[i] = new(sql.NullString)
		case learnedpattern.FieldCreatedAt, learnedpattern.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnedPattern fields.
func (_m *LearnedPattern) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnedpattern.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case learnedpattern.FieldPatternType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pattern_type", values[i])
			} else if value.Valid {
				_m.PatternType = learnedpattern.PatternType(value.String)
			}
		case learnedpattern.FieldTaskTypePattern:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field task_type_pattern", values[i])
			} else if value.Valid {
				_m.TaskTypePattern = value.String
			}
		case learnedpattern.FieldSuccessIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field success_indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SuccessIndicators); err != nil {
					return fmt.Errorf("unmarshal field success_indicators: %w", err)
				}
			}
		case learnedpattern.FieldFailureIndicators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field failure_indicators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FailureIndicators); err != nil {
					return fmt.Errorf("unmarshal field failure_indicators: %w", err)
				}
			}
		case learnedpattern.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = value.Float64
			}
		case learnedpattern.FieldUsageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field usage_count", values[i])
			} else if value.Valid {
				_m.UsageCount = int(value.Int64)
			}
		case learnedpattern.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case learnedpattern.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnedPattern.
// This includes values selected through modifiers, order, etc.
func (_m *LearnedPattern) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnedPattern.
// Note that you need to call LearnedPattern.Unwrap() before calling this method if this LearnedPattern
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnedPattern) Update() *LearnedPatternUpdateOne {
	return NewLearnedPatternClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnedPattern entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnedPattern) Unwrap() *LearnedPattern {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnedPattern is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnedPattern) String() string {
	var builder strings.Builder
	builder.WriteString("LearnedPattern(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pattern_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatternType))
	builder.WriteString(", ")
	builder.WriteString("task_type_pattern=")
	builder.WriteString(_m.TaskTypePattern)
	builder.WriteString(", ")
	builder.WriteString("success_indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuccessIndicators))
	builder.WriteString(", ")
	builder.WriteString("failure_indicators=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureIndicators))
	builder.WriteString(", ")
	builder.WriteString("confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("usage_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UsageCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnedPatterns is a parsable slice of LearnedPattern.
type LearnedPatterns []*LearnedPattern
