// Code generated by ent, DO NOT EDIT.

package learnedpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnedpattern type in the database.
	Label = "learned_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pattern_id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldTaskTypePattern holds the string denoting the task_type_pattern field in the database.
	FieldTaskTypePattern = "task_type_pattern"
	// FieldSuccessIndicators holds the string denoting the success_indicators field in the database.
	FieldSuccessIndicators = "success_indicators"
	// FieldFailureIndicators holds the string denoting the failure_indicators field in the database.
	FieldFailureIndicators = "failure_indicators"
	// FieldConfidenceScore holds the string denoting the confidence_score field in the database.
	FieldConfidenceScore = "confidence_score"
	// FieldUsageCount holds the string denoting the usage_count field in the database.
	FieldUsageCount = "usage_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnedpattern in the database.
	Table = "learned_patterns"
)

// Columns holds all SQL columns for learnedpattern fields.
var Columns = []string{
	FieldID,
	FieldPatternType,
	FieldTaskTypePattern,
	FieldSuccessIndicators,
	FieldFailureIndicators,
	FieldConfidenceScore,
	FieldUsageCount,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultConfidenceScore holds the default value on creation for the "confidence_score" field.
	DefaultConfidenceScore float64
	// DefaultUsageCount holds the default value on creation for the "usage_count" field.
	DefaultUsageCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// PatternType defines the type for the "pattern_type" enum field.
type PatternType string

// PatternType values.
const (
	PatternTypeSuccess      PatternType = "success"
	PatternTypeFailure      PatternType = "failure"
	PatternTypeOptimization PatternType = "optimization"
)

func (pt PatternType) String() string {
	return string(pt)
}

// PatternTypeValidator is a validator for the "pattern_type" field enum values. It is called by the builders before save.
func PatternTypeValidator(pt PatternType) error {
	switch pt {
	case PatternTypeSuccess, PatternTypeFailure, PatternTypeOptimization:
		return nil
	default:
		return fmt.Errorf("learnedpattern: invalid enum value for pattern_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the LearnedPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByTaskTypePattern orders the results by the task_type_pattern field.
func ByTaskTypePattern(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskTypePattern, opts...).ToFunc()
}

// ByConfidenceScore orders the results by the confidence_score field.
func ByConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceScore, opts...).ToFunc()
}

// ByUsageCount orders the results by the usage_count field.
func ByUsageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsageCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
