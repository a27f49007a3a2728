// Code generated by ent, DO NOT EDIT.

package learnedpattern

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldID, id))
}

// TaskTypePattern applies equality check predicate on the "task_type_pattern" field. It's identical to TaskTypePatternEQ.
func TaskTypePattern(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTaskTypePattern, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldConfidenceScore, v))
}

// UsageCount applies equality check predicate on the "usage_count" field. It's identical to UsageCountEQ.
func UsageCount(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUsageCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatternTypeEQ applies the EQ predicate on the "pattern_type" field.
func PatternTypeEQ(v PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldPatternType, v))
}

// PatternTypeNEQ applies the NEQ predicate on the "pattern_type" field.
func PatternTypeNEQ(v PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldPatternType, v))
}

// PatternTypeIn applies the In predicate on the "pattern_type" field.
func PatternTypeIn(vs ...PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldPatternType, vs...))
}

// PatternTypeNotIn applies the NotIn predicate on the "pattern_type" field.
func PatternTypeNotIn(vs ...PatternType) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldPatternType, vs...))
}

// TaskTypePatternEQ applies the EQ predicate on the "task_type_pattern" field.
func TaskTypePatternEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldTaskTypePattern, v))
}

// TaskTypePatternNEQ applies the NEQ predicate on the "task_type_pattern" field.
func TaskTypePatternNEQ(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldTaskTypePattern, v))
}

// TaskTypePatternIn applies the In predicate on the "task_type_pattern" field.
func TaskTypePatternIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldTaskTypePattern, vs...))
}

// TaskTypePatternNotIn applies the NotIn predicate on the "task_type_pattern" field.
func TaskTypePatternNotIn(vs ...string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldTaskTypePattern, vs...))
}

// TaskTypePatternGT applies the GT predicate on the "task_type_pattern" field.
func TaskTypePatternGT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldTaskTypePattern, v))
}

// TaskTypePatternGTE applies the GTE predicate on the "task_type_pattern" field.
func TaskTypePatternGTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldTaskTypePattern, v))
}

// TaskTypePatternLT applies the LT predicate on the "task_type_pattern" field.
func TaskTypePatternLT(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldTaskTypePattern, v))
}

// TaskTypePatternLTE applies the LTE predicate on the "task_type_pattern" field.
func TaskTypePatternLTE(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldTaskTypePattern, v))
}

// TaskTypePatternContains applies the Contains predicate on the "task_type_pattern" field.
func TaskTypePatternContains(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContains(FieldTaskTypePattern, v))
}

// TaskTypePatternHasPrefix applies the HasPrefix predicate on the "task_type_pattern" field.
func TaskTypePatternHasPrefix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasPrefix(FieldTaskTypePattern, v))
}

// TaskTypePatternHasSuffix applies the HasSuffix predicate on the "task_type_pattern" field.
func TaskTypePatternHasSuffix(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldHasSuffix(FieldTaskTypePattern, v))
}

// TaskTypePatternEqualFold applies the EqualFold predicate on the "task_type_pattern" field.
func TaskTypePatternEqualFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEqualFold(FieldTaskTypePattern, v))
}

// TaskTypePatternContainsFold applies the ContainsFold predicate on the "task_type_pattern" field.
func TaskTypePatternContainsFold(v string) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldContainsFold(FieldTaskTypePattern, v))
}

// SuccessIndicatorsIsNil applies the IsNil predicate on the "success_indicators" field.
func SuccessIndicatorsIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldSuccessIndicators))
}

// SuccessIndicatorsNotNil applies the NotNil predicate on the "success_indicators" field.
func SuccessIndicatorsNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldSuccessIndicators))
}

// FailureIndicatorsIsNil applies the IsNil predicate on the "failure_indicators" field.
func FailureIndicatorsIsNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIsNull(FieldFailureIndicators))
}

// FailureIndicatorsNotNil applies the NotNil predicate on the "failure_indicators" field.
func FailureIndicatorsNotNil() predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotNull(FieldFailureIndicators))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldConfidenceScore, v))
}

// UsageCountEQ applies the EQ predicate on the "usage_count" field.
func UsageCountEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUsageCount, v))
}

// UsageCountNEQ applies the NEQ predicate on the "usage_count" field.
func UsageCountNEQ(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldUsageCount, v))
}

// UsageCountIn applies the In predicate on the "usage_count" field.
func UsageCountIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldUsageCount, vs...))
}

// UsageCountNotIn applies the NotIn predicate on the "usage_count" field.
func UsageCountNotIn(vs ...int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldUsageCount, vs...))
}

// UsageCountGT applies the GT predicate on the "usage_count" field.
func UsageCountGT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldUsageCount, v))
}

// UsageCountGTE applies the GTE predicate on the "usage_count" field.
func UsageCountGTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldUsageCount, v))
}

// UsageCountLT applies the LT predicate on the "usage_count" field.
func UsageCountLT(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldUsageCount, v))
}

// UsageCountLTE applies the LTE predicate on the "usage_count" field.
func UsageCountLTE(v int) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldUsageCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnedPattern) predicate.LearnedPattern {
	return predicate.LearnedPattern(sql.NotPredicates(p))
}
