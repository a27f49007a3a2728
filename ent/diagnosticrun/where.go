// Code generated by ent, DO NOT EDIT.

package diagnosticrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldID, id))
}

// WorkflowID applies equality check predicate on the "workflow_id" field. It's identical to WorkflowIDEQ.
func WorkflowID(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldWorkflowID, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTrigger, v))
}

// TriggeredAt applies equality check predicate on the "triggered_at" field. It's identical to TriggeredAtEQ.
func TriggeredAt(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTriggeredAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalTasks applies equality check predicate on the "total_tasks" field. It's identical to TotalTasksEQ.
func TotalTasks(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTotalTasks, v))
}

// CompletedTasks applies equality check predicate on the "completed_tasks" field. It's identical to CompletedTasksEQ.
func CompletedTasks(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldCompletedTasks, v))
}

// FailedTasks applies equality check predicate on the "failed_tasks" field. It's identical to FailedTasksEQ.
func FailedTasks(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldFailedTasks, v))
}

// Diagnosis applies equality check predicate on the "diagnosis" field. It's identical to DiagnosisEQ.
func Diagnosis(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldDiagnosis, v))
}

// TasksCreatedCount applies equality check predicate on the "tasks_created_count" field. It's identical to TasksCreatedCountEQ.
func TasksCreatedCount(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTasksCreatedCount, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldErrorMessage, v))
}

// WorkflowIDEQ applies the EQ predicate on the "workflow_id" field.
func WorkflowIDEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldWorkflowID, v))
}

// WorkflowIDNEQ applies the NEQ predicate on the "workflow_id" field.
func WorkflowIDNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldWorkflowID, v))
}

// WorkflowIDIn applies the In predicate on the "workflow_id" field.
func WorkflowIDIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldWorkflowID, vs...))
}

// WorkflowIDNotIn applies the NotIn predicate on the "workflow_id" field.
func WorkflowIDNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldWorkflowID, vs...))
}

// WorkflowIDGT applies the GT predicate on the "workflow_id" field.
func WorkflowIDGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldWorkflowID, v))
}

// WorkflowIDGTE applies the GTE predicate on the "workflow_id" field.
func WorkflowIDGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldWorkflowID, v))
}

// WorkflowIDLT applies the LT predicate on the "workflow_id" field.
func WorkflowIDLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldWorkflowID, v))
}

// WorkflowIDLTE applies the LTE predicate on the "workflow_id" field.
func WorkflowIDLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldWorkflowID, v))
}

// WorkflowIDContains applies the Contains predicate on the "workflow_id" field.
func WorkflowIDContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldWorkflowID, v))
}

// WorkflowIDHasPrefix applies the HasPrefix predicate on the "workflow_id" field.
func WorkflowIDHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldWorkflowID, v))
}

// WorkflowIDHasSuffix applies the HasSuffix predicate on the "workflow_id" field.
func WorkflowIDHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldWorkflowID, v))
}

// WorkflowIDEqualFold applies the EqualFold predicate on the "workflow_id" field.
func WorkflowIDEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldWorkflowID, v))
}

// WorkflowIDContainsFold applies the ContainsFold predicate on the "workflow_id" field.
func WorkflowIDContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldWorkflowID, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldTrigger, v))
}

// TriggeredAtEQ applies the EQ predicate on the "triggered_at" field.
func TriggeredAtEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTriggeredAt, v))
}

// TriggeredAtNEQ applies the NEQ predicate on the "triggered_at" field.
func TriggeredAtNEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldTriggeredAt, v))
}

// TriggeredAtIn applies the In predicate on the "triggered_at" field.
func TriggeredAtIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldTriggeredAt, vs...))
}

// TriggeredAtNotIn applies the NotIn predicate on the "triggered_at" field.
func TriggeredAtNotIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldTriggeredAt, vs...))
}

// TriggeredAtGT applies the GT predicate on the "triggered_at" field.
func TriggeredAtGT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldTriggeredAt, v))
}

// TriggeredAtGTE applies the GTE predicate on the "triggered_at" field.
func TriggeredAtGTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldTriggeredAt, v))
}

// TriggeredAtLT applies the LT predicate on the "triggered_at" field.
func TriggeredAtLT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldTriggeredAt, v))
}

// TriggeredAtLTE applies the LTE predicate on the "triggered_at" field.
func TriggeredAtLTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldTriggeredAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldCompletedAt))
}

// TotalTasksEQ applies the EQ predicate on the "total_tasks" field.
func TotalTasksEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTotalTasks, v))
}

// TotalTasksNEQ applies the NEQ predicate on the "total_tasks" field.
func TotalTasksNEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldTotalTasks, v))
}

// TotalTasksIn applies the In predicate on the "total_tasks" field.
func TotalTasksIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldTotalTasks, vs...))
}

// TotalTasksNotIn applies the NotIn predicate on the "total_tasks" field.
func TotalTasksNotIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldTotalTasks, vs...))
}

// TotalTasksGT applies the GT predicate on the "total_tasks" field.
func TotalTasksGT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldTotalTasks, v))
}

// TotalTasksGTE applies the GTE predicate on the "total_tasks" field.
func TotalTasksGTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldTotalTasks, v))
}

// TotalTasksLT applies the LT predicate on the "total_tasks" field.
func TotalTasksLT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldTotalTasks, v))
}

// TotalTasksLTE applies the LTE predicate on the "total_tasks" field.
func TotalTasksLTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldTotalTasks, v))
}

// CompletedTasksEQ applies the EQ predicate on the "completed_tasks" field.
func CompletedTasksEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldCompletedTasks, v))
}

// CompletedTasksNEQ applies the NEQ predicate on the "completed_tasks" field.
func CompletedTasksNEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldCompletedTasks, v))
}

// CompletedTasksIn applies the In predicate on the "completed_tasks" field.
func CompletedTasksIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldCompletedTasks, vs...))
}

// CompletedTasksNotIn applies the NotIn predicate on the "completed_tasks" field.
func CompletedTasksNotIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldCompletedTasks, vs...))
}

// CompletedTasksGT applies the GT predicate on the "completed_tasks" field.
func CompletedTasksGT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldCompletedTasks, v))
}

// CompletedTasksGTE applies the GTE predicate on the "completed_tasks" field.
func CompletedTasksGTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldCompletedTasks, v))
}

// CompletedTasksLT applies the LT predicate on the "completed_tasks" field.
func CompletedTasksLT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldCompletedTasks, v))
}

// CompletedTasksLTE applies the LTE predicate on the "completed_tasks" field.
func CompletedTasksLTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldCompletedTasks, v))
}

// FailedTasksEQ applies the EQ predicate on the "failed_tasks" field.
func FailedTasksEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldFailedTasks, v))
}

// FailedTasksNEQ applies the NEQ predicate on the "failed_tasks" field.
func FailedTasksNEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldFailedTasks, v))
}

// FailedTasksIn applies the In predicate on the "failed_tasks" field.
func FailedTasksIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldFailedTasks, vs...))
}

// FailedTasksNotIn applies the NotIn predicate on the "failed_tasks" field.
func FailedTasksNotIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldFailedTasks, vs...))
}

// FailedTasksGT applies the GT predicate on the "failed_tasks" field.
func FailedTasksGT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldFailedTasks, v))
}

// FailedTasksGTE applies the GTE predicate on the "failed_tasks" field.
func FailedTasksGTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldFailedTasks, v))
}

// FailedTasksLT applies the LT predicate on the "failed_tasks" field.
func FailedTasksLT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldFailedTasks, v))
}

// FailedTasksLTE applies the LTE predicate on the "failed_tasks" field.
func FailedTasksLTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldFailedTasks, v))
}

// PhasesAnalyzedIsNil applies the IsNil predicate on the "phases_analyzed" field.
func PhasesAnalyzedIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldPhasesAnalyzed))
}

// PhasesAnalyzedNotNil applies the NotNil predicate on the "phases_analyzed" field.
func PhasesAnalyzedNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldPhasesAnalyzed))
}

// AgentsReviewedIsNil applies the IsNil predicate on the "agents_reviewed" field.
func AgentsReviewedIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldAgentsReviewed))
}

// AgentsReviewedNotNil applies the NotNil predicate on the "agents_reviewed" field.
func AgentsReviewedNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldAgentsReviewed))
}

// DiagnosisEQ applies the EQ predicate on the "diagnosis" field.
func DiagnosisEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldDiagnosis, v))
}

// DiagnosisNEQ applies the NEQ predicate on the "diagnosis" field.
func DiagnosisNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldDiagnosis, v))
}

// DiagnosisIn applies the In predicate on the "diagnosis" field.
func DiagnosisIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldDiagnosis, vs...))
}

// DiagnosisNotIn applies the NotIn predicate on the "diagnosis" field.
func DiagnosisNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldDiagnosis, vs...))
}

// DiagnosisGT applies the GT predicate on the "diagnosis" field.
func DiagnosisGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldDiagnosis, v))
}

// DiagnosisGTE applies the GTE predicate on the "diagnosis" field.
func DiagnosisGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldDiagnosis, v))
}

// DiagnosisLT applies the LT predicate on the "diagnosis" field.
func DiagnosisLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldDiagnosis, v))
}

// DiagnosisLTE applies the LTE predicate on the "diagnosis" field.
func DiagnosisLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldDiagnosis, v))
}

// DiagnosisContains applies the Contains predicate on the "diagnosis" field.
func DiagnosisContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldDiagnosis, v))
}

// DiagnosisHasPrefix applies the HasPrefix predicate on the "diagnosis" field.
func DiagnosisHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldDiagnosis, v))
}

// DiagnosisHasSuffix applies the HasSuffix predicate on the "diagnosis" field.
func DiagnosisHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldDiagnosis, v))
}

// DiagnosisIsNil applies the IsNil predicate on the "diagnosis" field.
func DiagnosisIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldDiagnosis))
}

// DiagnosisNotNil applies the NotNil predicate on the "diagnosis" field.
func DiagnosisNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldDiagnosis))
}

// DiagnosisEqualFold applies the EqualFold predicate on the "diagnosis" field.
func DiagnosisEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldDiagnosis, v))
}

// DiagnosisContainsFold applies the ContainsFold predicate on the "diagnosis" field.
func DiagnosisContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldDiagnosis, v))
}

// TasksCreatedCountEQ applies the EQ predicate on the "tasks_created_count" field.
func TasksCreatedCountEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldTasksCreatedCount, v))
}

// TasksCreatedCountNEQ applies the NEQ predicate on the "tasks_created_count" field.
func TasksCreatedCountNEQ(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldTasksCreatedCount, v))
}

// TasksCreatedCountIn applies the In predicate on the "tasks_created_count" field.
func TasksCreatedCountIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldTasksCreatedCount, vs...))
}

// TasksCreatedCountNotIn applies the NotIn predicate on the "tasks_created_count" field.
func TasksCreatedCountNotIn(vs ...int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldTasksCreatedCount, vs...))
}

// TasksCreatedCountGT applies the GT predicate on the "tasks_created_count" field.
func TasksCreatedCountGT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldTasksCreatedCount, v))
}

// TasksCreatedCountGTE applies the GTE predicate on the "tasks_created_count" field.
func TasksCreatedCountGTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldTasksCreatedCount, v))
}

// TasksCreatedCountLT applies the LT predicate on the "tasks_created_count" field.
func TasksCreatedCountLT(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldTasksCreatedCount, v))
}

// TasksCreatedCountLTE applies the LTE predicate on the "tasks_created_count" field.
func TasksCreatedCountLTE(v int) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldTasksCreatedCount, v))
}

// TasksCreatedIdsIsNil applies the IsNil predicate on the "tasks_created_ids" field.
func TasksCreatedIdsIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldTasksCreatedIds))
}

// TasksCreatedIdsNotNil applies the NotNil predicate on the "tasks_created_ids" field.
func TasksCreatedIdsNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldTasksCreatedIds))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldStatus, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.DiagnosticRun {
	return predicate.DiagnosticRun(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DiagnosticRun) predicate.DiagnosticRun {
	return predicate.DiagnosticRun(sql.NotPredicates(p))
}
