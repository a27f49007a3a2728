// Code generated by ent, DO NOT EDIT.

package task

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTicketID, v))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhaseID, v))
}

// TaskType applies equality check predicate on the "task_type" field. It's identical to TaskTypeEQ.
func TaskType(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// AssignedAgentID applies equality check predicate on the "assigned_agent_id" field. It's identical to AssignedAgentIDEQ.
func AssignedAgentID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgentID, v))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSandboxID, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRetries, v))
}

// DeadlineAt applies equality check predicate on the "deadline_at" field. It's identical to DeadlineAtEQ.
func DeadlineAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeadlineAt, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScore, v))
}

// ValidationEnabled applies equality check predicate on the "validation_enabled" field. It's identical to ValidationEnabledEQ.
func ValidationEnabled(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidationIteration applies equality check predicate on the "validation_iteration" field. It's identical to ValidationIterationEQ.
func ValidationIteration(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationIteration, v))
}

// ReviewDone applies equality check predicate on the "review_done" field. It's identical to ReviewDoneEQ.
func ReviewDone(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewDone, v))
}

// LastValidationFeedback applies equality check predicate on the "last_validation_feedback" field. It's identical to LastValidationFeedbackEQ.
func LastValidationFeedback(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastValidationFeedback, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitSha, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldContentHash, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTicketID, v))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldPhaseID, v))
}

// TaskTypeEQ applies the EQ predicate on the "task_type" field.
func TaskTypeEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldTaskType, v))
}

// TaskTypeNEQ applies the NEQ predicate on the "task_type" field.
func TaskTypeNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldTaskType, v))
}

// TaskTypeIn applies the In predicate on the "task_type" field.
func TaskTypeIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldTaskType, vs...))
}

// TaskTypeNotIn applies the NotIn predicate on the "task_type" field.
func TaskTypeNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldTaskType, vs...))
}

// TaskTypeGT applies the GT predicate on the "task_type" field.
func TaskTypeGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldTaskType, v))
}

// TaskTypeGTE applies the GTE predicate on the "task_type" field.
func TaskTypeGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldTaskType, v))
}

// TaskTypeLT applies the LT predicate on the "task_type" field.
func TaskTypeLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldTaskType, v))
}

// TaskTypeLTE applies the LTE predicate on the "task_type" field.
func TaskTypeLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldTaskType, v))
}

// TaskTypeContains applies the Contains predicate on the "task_type" field.
func TaskTypeContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldTaskType, v))
}

// TaskTypeHasPrefix applies the HasPrefix predicate on the "task_type" field.
func TaskTypeHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldTaskType, v))
}

// TaskTypeHasSuffix applies the HasSuffix predicate on the "task_type" field.
func TaskTypeHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldTaskType, v))
}

// TaskTypeEqualFold applies the EqualFold predicate on the "task_type" field.
func TaskTypeEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldTaskType, v))
}

// TaskTypeContainsFold applies the ContainsFold predicate on the "task_type" field.
func TaskTypeContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldTaskType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldDescription, v))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v Priority) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...Priority) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldPriority, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStatus, vs...))
}

// AssignedAgentIDEQ applies the EQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDNEQ applies the NEQ predicate on the "assigned_agent_id" field.
func AssignedAgentIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldAssignedAgentID, v))
}

// AssignedAgentIDIn applies the In predicate on the "assigned_agent_id" field.
func AssignedAgentIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDNotIn applies the NotIn predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldAssignedAgentID, vs...))
}

// AssignedAgentIDGT applies the GT predicate on the "assigned_agent_id" field.
func AssignedAgentIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldAssignedAgentID, v))
}

// AssignedAgentIDGTE applies the GTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDLT applies the LT predicate on the "assigned_agent_id" field.
func AssignedAgentIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldAssignedAgentID, v))
}

// AssignedAgentIDLTE applies the LTE predicate on the "assigned_agent_id" field.
func AssignedAgentIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldAssignedAgentID, v))
}

// AssignedAgentIDContains applies the Contains predicate on the "assigned_agent_id" field.
func AssignedAgentIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasPrefix applies the HasPrefix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldAssignedAgentID, v))
}

// AssignedAgentIDHasSuffix applies the HasSuffix predicate on the "assigned_agent_id" field.
func AssignedAgentIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldAssignedAgentID, v))
}

// AssignedAgentIDIsNil applies the IsNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldAssignedAgentID))
}

// AssignedAgentIDNotNil applies the NotNil predicate on the "assigned_agent_id" field.
func AssignedAgentIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldAssignedAgentID))
}

// AssignedAgentIDEqualFold applies the EqualFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldAssignedAgentID, v))
}

// AssignedAgentIDContainsFold applies the ContainsFold predicate on the "assigned_agent_id" field.
func AssignedAgentIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldAssignedAgentID, v))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDIsNil applies the IsNil predicate on the "sandbox_id" field.
func SandboxIDIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldSandboxID))
}

// SandboxIDNotNil applies the NotNil predicate on the "sandbox_id" field.
func SandboxIDNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldSandboxID))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldSandboxID, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldResult))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldErrorMessage, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldMaxRetries, v))
}

// DeadlineAtEQ applies the EQ predicate on the "deadline_at" field.
func DeadlineAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldDeadlineAt, v))
}

// DeadlineAtNEQ applies the NEQ predicate on the "deadline_at" field.
func DeadlineAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldDeadlineAt, v))
}

// DeadlineAtIn applies the In predicate on the "deadline_at" field.
func DeadlineAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldDeadlineAt, vs...))
}

// DeadlineAtNotIn applies the NotIn predicate on the "deadline_at" field.
func DeadlineAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldDeadlineAt, vs...))
}

// DeadlineAtGT applies the GT predicate on the "deadline_at" field.
func DeadlineAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldDeadlineAt, v))
}

// DeadlineAtGTE applies the GTE predicate on the "deadline_at" field.
func DeadlineAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldDeadlineAt, v))
}

// DeadlineAtLT applies the LT predicate on the "deadline_at" field.
func DeadlineAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldDeadlineAt, v))
}

// DeadlineAtLTE applies the LTE predicate on the "deadline_at" field.
func DeadlineAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldDeadlineAt, v))
}

// DeadlineAtIsNil applies the IsNil predicate on the "deadline_at" field.
func DeadlineAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDeadlineAt))
}

// DeadlineAtNotNil applies the NotNil predicate on the "deadline_at" field.
func DeadlineAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDeadlineAt))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldScore, v))
}

// ValidationEnabledEQ applies the EQ predicate on the "validation_enabled" field.
func ValidationEnabledEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationEnabled, v))
}

// ValidationEnabledNEQ applies the NEQ predicate on the "validation_enabled" field.
func ValidationEnabledNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldValidationEnabled, v))
}

// ValidationIterationEQ applies the EQ predicate on the "validation_iteration" field.
func ValidationIterationEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldValidationIteration, v))
}

// ValidationIterationNEQ applies the NEQ predicate on the "validation_iteration" field.
func ValidationIterationNEQ(v int) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldValidationIteration, v))
}

// ValidationIterationIn applies the In predicate on the "validation_iteration" field.
func ValidationIterationIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldValidationIteration, vs...))
}

// ValidationIterationNotIn applies the NotIn predicate on the "validation_iteration" field.
func ValidationIterationNotIn(vs ...int) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldValidationIteration, vs...))
}

// ValidationIterationGT applies the GT predicate on the "validation_iteration" field.
func ValidationIterationGT(v int) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldValidationIteration, v))
}

// ValidationIterationGTE applies the GTE predicate on the "validation_iteration" field.
func ValidationIterationGTE(v int) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldValidationIteration, v))
}

// ValidationIterationLT applies the LT predicate on the "validation_iteration" field.
func ValidationIterationLT(v int) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldValidationIteration, v))
}

// ValidationIterationLTE applies the LTE predicate on the "validation_iteration" field.
func ValidationIterationLTE(v int) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldValidationIteration, v))
}

// ReviewDoneEQ applies the EQ predicate on the "review_done" field.
func ReviewDoneEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldReviewDone, v))
}

// ReviewDoneNEQ applies the NEQ predicate on the "review_done" field.
func ReviewDoneNEQ(v bool) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldReviewDone, v))
}

// LastValidationFeedbackEQ applies the EQ predicate on the "last_validation_feedback" field.
func LastValidationFeedbackEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackNEQ applies the NEQ predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackIn applies the In predicate on the "last_validation_feedback" field.
func LastValidationFeedbackIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldLastValidationFeedback, vs...))
}

// LastValidationFeedbackNotIn applies the NotIn predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldLastValidationFeedback, vs...))
}

// LastValidationFeedbackGT applies the GT predicate on the "last_validation_feedback" field.
func LastValidationFeedbackGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackGTE applies the GTE predicate on the "last_validation_feedback" field.
func LastValidationFeedbackGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackLT applies the LT predicate on the "last_validation_feedback" field.
func LastValidationFeedbackLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackLTE applies the LTE predicate on the "last_validation_feedback" field.
func LastValidationFeedbackLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackContains applies the Contains predicate on the "last_validation_feedback" field.
func LastValidationFeedbackContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackHasPrefix applies the HasPrefix predicate on the "last_validation_feedback" field.
func LastValidationFeedbackHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackHasSuffix applies the HasSuffix predicate on the "last_validation_feedback" field.
func LastValidationFeedbackHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackIsNil applies the IsNil predicate on the "last_validation_feedback" field.
func LastValidationFeedbackIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldLastValidationFeedback))
}

// LastValidationFeedbackNotNil applies the NotNil predicate on the "last_validation_feedback" field.
func LastValidationFeedbackNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldLastValidationFeedback))
}

// LastValidationFeedbackEqualFold applies the EqualFold predicate on the "last_validation_feedback" field.
func LastValidationFeedbackEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldLastValidationFeedback, v))
}

// LastValidationFeedbackContainsFold applies the ContainsFold predicate on the "last_validation_feedback" field.
func LastValidationFeedbackContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldLastValidationFeedback, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldCommitSha, v))
}

// OwnedFilesIsNil applies the IsNil predicate on the "owned_files" field.
func OwnedFilesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldOwnedFiles))
}

// OwnedFilesNotNil applies the NotNil predicate on the "owned_files" field.
func OwnedFilesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldOwnedFiles))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldDependencies))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Task {
	return predicate.Task(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Task {
	return predicate.Task(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashIsNil applies the IsNil predicate on the "content_hash" field.
func ContentHashIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldContentHash))
}

// ContentHashNotNil applies the NotNil predicate on the "content_hash" field.
func ContentHashNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldContentHash))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Task {
	return predicate.Task(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Task {
	return predicate.Task(sql.FieldContainsFold(FieldContentHash, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldClaimedAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Task {
	return predicate.Task(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Task {
	return predicate.Task(sql.FieldNotNull(FieldCompletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Task {
	return predicate.Task(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Task {
	return predicate.Task(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMemories applies the HasEdge predicate on the "memories" edge.
func HasMemories() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MemoriesTable, MemoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMemoriesWith applies the HasEdge predicate on the "memories" edge with a given conditions (other predicates).
func HasMemoriesWith(preds ...predicate.TaskMemory) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newMemoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasValidationReviews applies the HasEdge predicate on the "validation_reviews" edge.
func HasValidationReviews() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ValidationReviewsTable, ValidationReviewsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasValidationReviewsWith applies the HasEdge predicate on the "validation_reviews" edge with a given conditions (other predicates).
func HasValidationReviewsWith(preds ...predicate.ValidationReview) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newValidationReviewsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDiscoveries applies the HasEdge predicate on the "discoveries" edge.
func HasDiscoveries() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DiscoveriesTable, DiscoveriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDiscoveriesWith applies the HasEdge predicate on the "discoveries" edge with a given conditions (other predicates).
func HasDiscoveriesWith(preds ...predicate.TaskDiscovery) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newDiscoveriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentResults applies the HasEdge predicate on the "agent_results" edge.
func HasAgentResults() predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentResultsTable, AgentResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentResultsWith applies the HasEdge predicate on the "agent_results" edge with a given conditions (other predicates).
func HasAgentResultsWith(preds ...predicate.AgentResult) predicate.Task {
	return predicate.Task(func(s *sql.Selector) {
		step := newAgentResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Task) predicate.Task {
	return predicate.Task(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Task) predicate.Task {
	return predicate.Task(sql.NotPredicates(p))
}
