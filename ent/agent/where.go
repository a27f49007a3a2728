// Code generated by ent, DO NOT EDIT.

package agent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldID, id))
}

// PhaseID applies equality check predicate on the "phase_id" field. It's identical to PhaseIDEQ.
func PhaseID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPhaseID, v))
}

// SandboxID applies equality check predicate on the "sandbox_id" field. It's identical to SandboxIDEQ.
func SandboxID(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSandboxID, v))
}

// LastHeartbeat applies equality check predicate on the "last_heartbeat" field. It's identical to LastHeartbeatEQ.
func LastHeartbeat(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// AgentTypeEQ applies the EQ predicate on the "agent_type" field.
func AgentTypeEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldAgentType, v))
}

// AgentTypeNEQ applies the NEQ predicate on the "agent_type" field.
func AgentTypeNEQ(v AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldAgentType, v))
}

// AgentTypeIn applies the In predicate on the "agent_type" field.
func AgentTypeIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldAgentType, vs...))
}

// AgentTypeNotIn applies the NotIn predicate on the "agent_type" field.
func AgentTypeNotIn(vs ...AgentType) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldAgentType, vs...))
}

// PhaseIDEQ applies the EQ predicate on the "phase_id" field.
func PhaseIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldPhaseID, v))
}

// PhaseIDNEQ applies the NEQ predicate on the "phase_id" field.
func PhaseIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldPhaseID, v))
}

// PhaseIDIn applies the In predicate on the "phase_id" field.
func PhaseIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldPhaseID, vs...))
}

// PhaseIDNotIn applies the NotIn predicate on the "phase_id" field.
func PhaseIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldPhaseID, vs...))
}

// PhaseIDGT applies the GT predicate on the "phase_id" field.
func PhaseIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldPhaseID, v))
}

// PhaseIDGTE applies the GTE predicate on the "phase_id" field.
func PhaseIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldPhaseID, v))
}

// PhaseIDLT applies the LT predicate on the "phase_id" field.
func PhaseIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldPhaseID, v))
}

// PhaseIDLTE applies the LTE predicate on the "phase_id" field.
func PhaseIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldPhaseID, v))
}

// PhaseIDContains applies the Contains predicate on the "phase_id" field.
func PhaseIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldPhaseID, v))
}

// PhaseIDHasPrefix applies the HasPrefix predicate on the "phase_id" field.
func PhaseIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldPhaseID, v))
}

// PhaseIDHasSuffix applies the HasSuffix predicate on the "phase_id" field.
func PhaseIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldPhaseID, v))
}

// PhaseIDIsNil applies the IsNil predicate on the "phase_id" field.
func PhaseIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldPhaseID))
}

// PhaseIDNotNil applies the NotNil predicate on the "phase_id" field.
func PhaseIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldPhaseID))
}

// PhaseIDEqualFold applies the EqualFold predicate on the "phase_id" field.
func PhaseIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldPhaseID, v))
}

// PhaseIDContainsFold applies the ContainsFold predicate on the "phase_id" field.
func PhaseIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldPhaseID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldStatus, vs...))
}

// CapabilitiesIsNil applies the IsNil predicate on the "capabilities" field.
func CapabilitiesIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldCapabilities))
}

// CapabilitiesNotNil applies the NotNil predicate on the "capabilities" field.
func CapabilitiesNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldCapabilities))
}

// TagsIsNil applies the IsNil predicate on the "tags" field.
func TagsIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldTags))
}

// TagsNotNil applies the NotNil predicate on the "tags" field.
func TagsNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldTags))
}

// SandboxIDEQ applies the EQ predicate on the "sandbox_id" field.
func SandboxIDEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldSandboxID, v))
}

// SandboxIDNEQ applies the NEQ predicate on the "sandbox_id" field.
func SandboxIDNEQ(v string) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldSandboxID, v))
}

// SandboxIDIn applies the In predicate on the "sandbox_id" field.
func SandboxIDIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldSandboxID, vs...))
}

// SandboxIDNotIn applies the NotIn predicate on the "sandbox_id" field.
func SandboxIDNotIn(vs ...string) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldSandboxID, vs...))
}

// SandboxIDGT applies the GT predicate on the "sandbox_id" field.
func SandboxIDGT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldSandboxID, v))
}

// SandboxIDGTE applies the GTE predicate on the "sandbox_id" field.
func SandboxIDGTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldSandboxID, v))
}

// SandboxIDLT applies the LT predicate on the "sandbox_id" field.
func SandboxIDLT(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldSandboxID, v))
}

// SandboxIDLTE applies the LTE predicate on the "sandbox_id" field.
func SandboxIDLTE(v string) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldSandboxID, v))
}

// SandboxIDContains applies the Contains predicate on the "sandbox_id" field.
func SandboxIDContains(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContains(FieldSandboxID, v))
}

// SandboxIDHasPrefix applies the HasPrefix predicate on the "sandbox_id" field.
func SandboxIDHasPrefix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasPrefix(FieldSandboxID, v))
}

// SandboxIDHasSuffix applies the HasSuffix predicate on the "sandbox_id" field.
func SandboxIDHasSuffix(v string) predicate.Agent {
	return predicate.Agent(sql.FieldHasSuffix(FieldSandboxID, v))
}

// SandboxIDIsNil applies the IsNil predicate on the "sandbox_id" field.
func SandboxIDIsNil() predicate.Agent {
	return predicate.Agent(sql.FieldIsNull(FieldSandboxID))
}

// SandboxIDNotNil applies the NotNil predicate on the "sandbox_id" field.
func SandboxIDNotNil() predicate.Agent {
	return predicate.Agent(sql.FieldNotNull(FieldSandboxID))
}

// SandboxIDEqualFold applies the EqualFold predicate on the "sandbox_id" field.
func SandboxIDEqualFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldEqualFold(FieldSandboxID, v))
}

// SandboxIDContainsFold applies the ContainsFold predicate on the "sandbox_id" field.
func SandboxIDContainsFold(v string) predicate.Agent {
	return predicate.Agent(sql.FieldContainsFold(FieldSandboxID, v))
}

// LastHeartbeatEQ applies the EQ predicate on the "last_heartbeat" field.
func LastHeartbeatEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatNEQ applies the NEQ predicate on the "last_heartbeat" field.
func LastHeartbeatNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldLastHeartbeat, v))
}

// LastHeartbeatIn applies the In predicate on the "last_heartbeat" field.
func LastHeartbeatIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatNotIn applies the NotIn predicate on the "last_heartbeat" field.
func LastHeartbeatNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldLastHeartbeat, vs...))
}

// LastHeartbeatGT applies the GT predicate on the "last_heartbeat" field.
func LastHeartbeatGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldLastHeartbeat, v))
}

// LastHeartbeatGTE applies the GTE predicate on the "last_heartbeat" field.
func LastHeartbeatGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldLastHeartbeat, v))
}

// LastHeartbeatLT applies the LT predicate on the "last_heartbeat" field.
func LastHeartbeatLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldLastHeartbeat, v))
}

// LastHeartbeatLTE applies the LTE predicate on the "last_heartbeat" field.
func LastHeartbeatLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldLastHeartbeat, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Agent {
	return predicate.Agent(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Agent) predicate.Agent {
	return predicate.Agent(sql.NotPredicates(p))
}
