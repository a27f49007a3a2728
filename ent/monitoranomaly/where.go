// Code generated by ent, DO NOT EDIT.

package monitoranomaly

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldID, id))
}

// MetricName applies equality check predicate on the "metric_name" field. It's identical to MetricNameEQ.
func MetricName(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldMetricName, v))
}

// Observed applies equality check predicate on the "observed" field. It's identical to ObservedEQ.
func Observed(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldObserved, v))
}

// BaselineMean applies equality check predicate on the "baseline_mean" field. It's identical to BaselineMeanEQ.
func BaselineMean(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineMean, v))
}

// BaselineStddev applies equality check predicate on the "baseline_stddev" field. It's identical to BaselineStddevEQ.
func BaselineStddev(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineStddev, v))
}

// Zscore applies equality check predicate on the "zscore" field. It's identical to ZscoreEQ.
func Zscore(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldZscore, v))
}

// EntityType applies equality check predicate on the "entity_type" field. It's identical to EntityTypeEQ.
func EntityType(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldEntityType, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldEntityID, v))
}

// DetectedAt applies equality check predicate on the "detected_at" field. It's identical to DetectedAtEQ.
func DetectedAt(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDetectedAt, v))
}

// MetricNameEQ applies the EQ predicate on the "metric_name" field.
func MetricNameEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldMetricName, v))
}

// MetricNameNEQ applies the NEQ predicate on the "metric_name" field.
func MetricNameNEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldMetricName, v))
}

// MetricNameIn applies the In predicate on the "metric_name" field.
func MetricNameIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldMetricName, vs...))
}

// MetricNameNotIn applies the NotIn predicate on the "metric_name" field.
func MetricNameNotIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldMetricName, vs...))
}

// MetricNameGT applies the GT predicate on the "metric_name" field.
func MetricNameGT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldMetricName, v))
}

// MetricNameGTE applies the GTE predicate on the "metric_name" field.
func MetricNameGTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldMetricName, v))
}

// MetricNameLT applies the LT predicate on the "metric_name" field.
func MetricNameLT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldMetricName, v))
}

// MetricNameLTE applies the LTE predicate on the "metric_name" field.
func MetricNameLTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldMetricName, v))
}

// MetricNameContains applies the Contains predicate on the "metric_name" field.
func MetricNameContains(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContains(FieldMetricName, v))
}

// MetricNameHasPrefix applies the HasPrefix predicate on the "metric_name" field.
func MetricNameHasPrefix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasPrefix(FieldMetricName, v))
}

// MetricNameHasSuffix applies the HasSuffix predicate on the "metric_name" field.
func MetricNameHasSuffix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasSuffix(FieldMetricName, v))
}

// MetricNameEqualFold applies the EqualFold predicate on the "metric_name" field.
func MetricNameEqualFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldMetricName, v))
}

// MetricNameContainsFold applies the ContainsFold predicate on the "metric_name" field.
func MetricNameContainsFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldMetricName, v))
}

// ObservedEQ applies the EQ predicate on the "observed" field.
func ObservedEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldObserved, v))
}

// ObservedNEQ applies the NEQ predicate on the "observed" field.
func ObservedNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldObserved, v))
}

// ObservedIn applies the In predicate on the "observed" field.
func ObservedIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldObserved, vs...))
}

// ObservedNotIn applies the NotIn predicate on the "observed" field.
func ObservedNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldObserved, vs...))
}

// ObservedGT applies the GT predicate on the "observed" field.
func ObservedGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldObserved, v))
}

// ObservedGTE applies the GTE predicate on the "observed" field.
func ObservedGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldObserved, v))
}

// ObservedLT applies the LT predicate on the "observed" field.
func ObservedLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldObserved, v))
}

// ObservedLTE applies the LTE predicate on the "observed" field.
func ObservedLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldObserved, v))
}

// BaselineMeanEQ applies the EQ predicate on the "baseline_mean" field.
func BaselineMeanEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineMean, v))
}

// BaselineMeanNEQ applies the NEQ predicate on the "baseline_mean" field.
func BaselineMeanNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldBaselineMean, v))
}

// BaselineMeanIn applies the In predicate on the "baseline_mean" field.
func BaselineMeanIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldBaselineMean, vs...))
}

// BaselineMeanNotIn applies the NotIn predicate on the "baseline_mean" field.
func BaselineMeanNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldBaselineMean, vs...))
}

// BaselineMeanGT applies the GT predicate on the "baseline_mean" field.
func BaselineMeanGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldBaselineMean, v))
}

// BaselineMeanGTE applies the GTE predicate on the "baseline_mean" field.
func BaselineMeanGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldBaselineMean, v))
}

// BaselineMeanLT applies the LT predicate on the "baseline_mean" field.
func BaselineMeanLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldBaselineMean, v))
}

// BaselineMeanLTE applies the LTE predicate on the "baseline_mean" field.
func BaselineMeanLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldBaselineMean, v))
}

// BaselineStddevEQ applies the EQ predicate on the "baseline_stddev" field.
func BaselineStddevEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldBaselineStddev, v))
}

// BaselineStddevNEQ applies the NEQ predicate on the "baseline_stddev" field.
func BaselineStddevNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldBaselineStddev, v))
}

// BaselineStddevIn applies the In predicate on the "baseline_stddev" field.
func BaselineStddevIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldBaselineStddev, vs...))
}

// BaselineStddevNotIn applies the NotIn predicate on the "baseline_stddev" field.
func BaselineStddevNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldBaselineStddev, vs...))
}

// BaselineStddevGT applies the GT predicate on the "baseline_stddev" field.
func BaselineStddevGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldBaselineStddev, v))
}

// BaselineStddevGTE applies the GTE predicate on the "baseline_stddev" field.
func BaselineStddevGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldBaselineStddev, v))
}

// BaselineStddevLT applies the LT predicate on the "baseline_stddev" field.
func BaselineStddevLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldBaselineStddev, v))
}

// BaselineStddevLTE applies the LTE predicate on the "baseline_stddev" field.
func BaselineStddevLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldBaselineStddev, v))
}

// ZscoreEQ applies the EQ predicate on the "zscore" field.
func ZscoreEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldZscore, v))
}

// ZscoreNEQ applies the NEQ predicate on the "zscore" field.
func ZscoreNEQ(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldZscore, v))
}

// ZscoreIn applies the In predicate on the "zscore" field.
func ZscoreIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldZscore, vs...))
}

// ZscoreNotIn applies the NotIn predicate on the "zscore" field.
func ZscoreNotIn(vs ...float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldZscore, vs...))
}

// ZscoreGT applies the GT predicate on the "zscore" field.
func ZscoreGT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldZscore, v))
}

// ZscoreGTE applies the GTE predicate on the "zscore" field.
func ZscoreGTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldZscore, v))
}

// ZscoreLT applies the LT predicate on the "zscore" field.
func ZscoreLT(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldZscore, v))
}

// ZscoreLTE applies the LTE predicate on the "zscore" field.
func ZscoreLTE(v float64) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldZscore, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldSeverity, vs...))
}

// EntityTypeEQ applies the EQ predicate on the "entity_type" field.
func EntityTypeEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldEntityType, v))
}

// EntityTypeNEQ applies the NEQ predicate on the "entity_type" field.
func EntityTypeNEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldEntityType, v))
}

// EntityTypeIn applies the In predicate on the "entity_type" field.
func EntityTypeIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldEntityType, vs...))
}

// EntityTypeNotIn applies the NotIn predicate on the "entity_type" field.
func EntityTypeNotIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldEntityType, vs...))
}

// EntityTypeGT applies the GT predicate on the "entity_type" field.
func EntityTypeGT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldEntityType, v))
}

// EntityTypeGTE applies the GTE predicate on the "entity_type" field.
func EntityTypeGTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldEntityType, v))
}

// EntityTypeLT applies the LT predicate on the "entity_type" field.
func EntityTypeLT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldEntityType, v))
}

// EntityTypeLTE applies the LTE predicate on the "entity_type" field.
func EntityTypeLTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldEntityType, v))
}

// EntityTypeContains applies the Contains predicate on the "entity_type" field.
func EntityTypeContains(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContains(FieldEntityType, v))
}

// EntityTypeHasPrefix applies the HasPrefix predicate on the "entity_type" field.
func EntityTypeHasPrefix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasPrefix(FieldEntityType, v))
}

// EntityTypeHasSuffix applies the HasSuffix predicate on the "entity_type" field.
func EntityTypeHasSuffix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasSuffix(FieldEntityType, v))
}

// EntityTypeIsNil applies the IsNil predicate on the "entity_type" field.
func EntityTypeIsNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIsNull(FieldEntityType))
}

// EntityTypeNotNil applies the NotNil predicate on the "entity_type" field.
func EntityTypeNotNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotNull(FieldEntityType))
}

// EntityTypeEqualFold applies the EqualFold predicate on the "entity_type" field.
func EntityTypeEqualFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldEntityType, v))
}

// EntityTypeContainsFold applies the ContainsFold predicate on the "entity_type" field.
func EntityTypeContainsFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldEntityType, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldContainsFold(FieldEntityID, v))
}

// DetectedAtEQ applies the EQ predicate on the "detected_at" field.
func DetectedAtEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldEQ(FieldDetectedAt, v))
}

// DetectedAtNEQ applies the NEQ predicate on the "detected_at" field.
func DetectedAtNEQ(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNEQ(FieldDetectedAt, v))
}

// DetectedAtIn applies the In predicate on the "detected_at" field.
func DetectedAtIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldIn(FieldDetectedAt, vs...))
}

// DetectedAtNotIn applies the NotIn predicate on the "detected_at" field.
func DetectedAtNotIn(vs ...time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldNotIn(FieldDetectedAt, vs...))
}

// DetectedAtGT applies the GT predicate on the "detected_at" field.
func DetectedAtGT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGT(FieldDetectedAt, v))
}

// DetectedAtGTE applies the GTE predicate on the "detected_at" field.
func DetectedAtGTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldGTE(FieldDetectedAt, v))
}

// DetectedAtLT applies the LT predicate on the "detected_at" field.
func DetectedAtLT(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLT(FieldDetectedAt, v))
}

// DetectedAtLTE applies the LTE predicate on the "detected_at" field.
func DetectedAtLTE(v time.Time) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.FieldLTE(FieldDetectedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitorAnomaly) predicate.MonitorAnomaly {
	return predicate.MonitorAnomaly(sql.NotPredicates(p))
}
