// Code generated by ent, DO NOT EDIT.

package monitoranomaly

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the monitoranomaly type in the database.
	Label = "monitor_anomaly"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "anomaly_id"
	// FieldMetricName holds the string denoting the metric_name field in the database.
	FieldMetricName = "metric_name"
	// FieldObserved holds the string denoting the observed field in the database.
	FieldObserved = "observed"
	// FieldBaselineMean holds the string denoting the baseline_mean field in the database.
	FieldBaselineMean = "baseline_mean"
	// FieldBaselineStddev holds the string denoting the baseline_stddev field in the database.
	FieldBaselineStddev = "baseline_stddev"
	// FieldZscore holds the string denoting the zscore field in the database.
	FieldZscore = "zscore"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldEntityID holds the string denoting the entity_id field in the database.
	FieldEntityID = "entity_id"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// Table holds the table name of the monitoranomaly in the database.
	Table = "monitor_anomalies"
)

// Columns holds all SQL columns for monitoranomaly fields.
var Columns = []string{
	FieldID,
	FieldMetricName,
	FieldObserved,
	FieldBaselineMean,
	FieldBaselineStddev,
	FieldZscore,
	FieldSeverity,
	FieldEntityType,
	FieldEntityID,
	FieldDetectedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityWarning, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("monitoranomaly: invalid enum value for severity field: %q", s)
	}
}

// OrderOption defines the ordering options for the MonitorAnomaly queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMetricName orders the results by the metric_name field.
func ByMetricName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricName, opts...).ToFunc()
}

// ByObserved orders the results by the observed field.
func ByObserved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObserved, opts...).ToFunc()
}

// ByBaselineMean orders the results by the baseline_mean field.
func ByBaselineMean(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineMean, opts...).ToFunc()
}

// ByBaselineStddev orders the results by the baseline_stddev field.
func ByBaselineStddev(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBaselineStddev, opts...).ToFunc()
}

// ByZscore orders the results by the zscore field.
func ByZscore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZscore, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByEntityID orders the results by the entity_id field.
func ByEntityID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityID, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}
