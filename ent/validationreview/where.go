// Code generated by ent, DO NOT EDIT.

package validationreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldTaskID, v))
}

// ValidatorAgentID applies equality check predicate on the "validator_agent_id" field. It's identical to ValidatorAgentIDEQ.
func ValidatorAgentID(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldValidatorAgentID, v))
}

// IterationNumber applies equality check predicate on the "iteration_number" field. It's identical to IterationNumberEQ.
func IterationNumber(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldIterationNumber, v))
}

// ValidationPassed applies equality check predicate on the "validation_passed" field. It's identical to ValidationPassedEQ.
func ValidationPassed(v bool) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldValidationPassed, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContainsFold(FieldTaskID, v))
}

// ValidatorAgentIDEQ applies the EQ predicate on the "validator_agent_id" field.
func ValidatorAgentIDEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldValidatorAgentID, v))
}

// ValidatorAgentIDNEQ applies the NEQ predicate on the "validator_agent_id" field.
func ValidatorAgentIDNEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldValidatorAgentID, v))
}

// ValidatorAgentIDIn applies the In predicate on the "validator_agent_id" field.
func ValidatorAgentIDIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldValidatorAgentID, vs...))
}

// ValidatorAgentIDNotIn applies the NotIn predicate on the "validator_agent_id" field.
func ValidatorAgentIDNotIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldValidatorAgentID, vs...))
}

// ValidatorAgentIDGT applies the GT predicate on the "validator_agent_id" field.
func ValidatorAgentIDGT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldValidatorAgentID, v))
}

// ValidatorAgentIDGTE applies the GTE predicate on the "validator_agent_id" field.
func ValidatorAgentIDGTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldValidatorAgentID, v))
}

// ValidatorAgentIDLT applies the LT predicate on the "validator_agent_id" field.
func ValidatorAgentIDLT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldValidatorAgentID, v))
}

// ValidatorAgentIDLTE applies the LTE predicate on the "validator_agent_id" field.
func ValidatorAgentIDLTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldValidatorAgentID, v))
}

// ValidatorAgentIDContains applies the Contains predicate on the "validator_agent_id" field.
func ValidatorAgentIDContains(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContains(FieldValidatorAgentID, v))
}

// ValidatorAgentIDHasPrefix applies the HasPrefix predicate on the "validator_agent_id" field.
func ValidatorAgentIDHasPrefix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasPrefix(FieldValidatorAgentID, v))
}

// ValidatorAgentIDHasSuffix applies the HasSuffix predicate on the "validator_agent_id" field.
func ValidatorAgentIDHasSuffix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasSuffix(FieldValidatorAgentID, v))
}

// ValidatorAgentIDEqualFold applies the EqualFold predicate on the "validator_agent_id" field.
func ValidatorAgentIDEqualFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEqualFold(FieldValidatorAgentID, v))
}

// ValidatorAgentIDContainsFold applies the ContainsFold predicate on the "validator_agent_id" field.
func ValidatorAgentIDContainsFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContainsFold(FieldValidatorAgentID, v))
}

// IterationNumberEQ applies the EQ predicate on the "iteration_number" field.
func IterationNumberEQ(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldIterationNumber, v))
}

// IterationNumberNEQ applies the NEQ predicate on the "iteration_number" field.
func IterationNumberNEQ(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldIterationNumber, v))
}

// IterationNumberIn applies the In predicate on the "iteration_number" field.
func IterationNumberIn(vs ...int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldIterationNumber, vs...))
}

// IterationNumberNotIn applies the NotIn predicate on the "iteration_number" field.
func IterationNumberNotIn(vs ...int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldIterationNumber, vs...))
}

// IterationNumberGT applies the GT predicate on the "iteration_number" field.
func IterationNumberGT(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldIterationNumber, v))
}

// IterationNumberGTE applies the GTE predicate on the "iteration_number" field.
func IterationNumberGTE(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldIterationNumber, v))
}

// IterationNumberLT applies the LT predicate on the "iteration_number" field.
func IterationNumberLT(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldIterationNumber, v))
}

// IterationNumberLTE applies the LTE predicate on the "iteration_number" field.
func IterationNumberLTE(v int) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldIterationNumber, v))
}

// ValidationPassedEQ applies the EQ predicate on the "validation_passed" field.
func ValidationPassedEQ(v bool) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldValidationPassed, v))
}

// ValidationPassedNEQ applies the NEQ predicate on the "validation_passed" field.
func ValidationPassedNEQ(v bool) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldValidationPassed, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldContainsFold(FieldFeedback, v))
}

// EvidenceIsNil applies the IsNil predicate on the "evidence" field.
func EvidenceIsNil() predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIsNull(FieldEvidence))
}

// EvidenceNotNil applies the NotNil predicate on the "evidence" field.
func EvidenceNotNil() predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotNull(FieldEvidence))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotNull(FieldRecommendations))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ValidationReview {
	return predicate.ValidationReview(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ValidationReview {
	return predicate.ValidationReview(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ValidationReview {
	return predicate.ValidationReview(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ValidationReview) predicate.ValidationReview {
	return predicate.ValidationReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ValidationReview) predicate.ValidationReview {
	return predicate.ValidationReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ValidationReview) predicate.ValidationReview {
	return predicate.ValidationReview(sql.NotPredicates(p))
}
