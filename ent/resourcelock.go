// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/resourcelock"
)

// ResourceLock is the model entity for the ResourceLock schema.
type ResourceLock struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Lock key, e.g. 'repo:acme/api' or 'file:src/auth/jwt.go'
	Name string `json:"name,omitempty"`
	// OwnerAgentID holds the value of the "owner_agent_id" field.
	OwnerAgentID string `json:"owner_agent_id,omitempty"`
	// AcquiredAt holds the value of the "acquired_at" field.
	AcquiredAt time.Time `json:"acquired_at,omitempty"`
	// ReleasedAt holds the value of the "released_at" field.
	ReleasedAt *time.Time `json:"released_at,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ResourceLock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldMetadata:
			values[i] = new([]byte)
		case resourcelock.FieldID, resourcelock.FieldName, resourcelock.FieldOwnerAgentID:
			values[i] = new(sql.NullString)
		case resourcelock.FieldAcquiredAt, resourcelock.FieldReleasedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ResourceLock fields.
func (_m *ResourceLock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case resourcelock.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case resourcelock.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case resourcelock.FieldOwnerAgentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_agent_id", values[i])
			} else if value.Valid {
				_m.OwnerAgentID = value.String
			}
		case resourcelock.FieldAcquiredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field acquired_at", values[i])
			} else if value.Valid {
				_m.AcquiredAt = value.Time
			}
		case resourcelock.FieldReleasedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field released_at", values[i])
			} else if value.Valid {
				_m.ReleasedAt = new(time.Time)
				*_m.ReleasedAt = value.Time
			}
		case resourcelock.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ResourceLock.
// This includes values selected through modifiers, order, etc.
func (_m *ResourceLock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ResourceLock.
// Note that you need to call ResourceLock.Unwrap() before calling this method if this ResourceLock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ResourceLock) Update() *ResourceLockUpdateOne {
	return NewResourceLockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ResourceLock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ResourceLock) Unwrap() *ResourceLock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ResourceLock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ResourceLock) String() string {
	var builder strings.Builder
	builder.WriteString("ResourceLock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("owner_agent_id=")
	builder.WriteString(_m.OwnerAgentID)
	builder.WriteString(", ")
	builder.WriteString("acquired_at=")
	builder.WriteString(_m.AcquiredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReleasedAt; v != nil {
		builder.WriteString("released_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteByte(')')
	return builder.String()
}

// ResourceLocks is a parsable slice of ResourceLock.
type ResourceLocks []*ResourceLock
