// Code generated by ent, DO NOT EDIT.

package resourcelock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldName, v))
}

// OwnerAgentID applies equality check predicate on the "owner_agent_id" field. It's identical to OwnerAgentIDEQ.
func OwnerAgentID(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldOwnerAgentID, v))
}

// AcquiredAt applies equality check predicate on the "acquired_at" field. It's identical to AcquiredAtEQ.
func AcquiredAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// ReleasedAt applies equality check predicate on the "released_at" field. It's identical to ReleasedAtEQ.
func ReleasedAt(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReleasedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldName, v))
}

// OwnerAgentIDEQ applies the EQ predicate on the "owner_agent_id" field.
func OwnerAgentIDEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldOwnerAgentID, v))
}

// OwnerAgentIDNEQ applies the NEQ predicate on the "owner_agent_id" field.
func OwnerAgentIDNEQ(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldOwnerAgentID, v))
}

// OwnerAgentIDIn applies the In predicate on the "owner_agent_id" field.
func OwnerAgentIDIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldOwnerAgentID, vs...))
}

// OwnerAgentIDNotIn applies the NotIn predicate on the "owner_agent_id" field.
func OwnerAgentIDNotIn(vs ...string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldOwnerAgentID, vs...))
}

// OwnerAgentIDGT applies the GT predicate on the "owner_agent_id" field.
func OwnerAgentIDGT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldOwnerAgentID, v))
}

// OwnerAgentIDGTE applies the GTE predicate on the "owner_agent_id" field.
func OwnerAgentIDGTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldOwnerAgentID, v))
}

// OwnerAgentIDLT applies the LT predicate on the "owner_agent_id" field.
func OwnerAgentIDLT(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldOwnerAgentID, v))
}

// OwnerAgentIDLTE applies the LTE predicate on the "owner_agent_id" field.
func OwnerAgentIDLTE(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldOwnerAgentID, v))
}

// OwnerAgentIDContains applies the Contains predicate on the "owner_agent_id" field.
func OwnerAgentIDContains(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContains(FieldOwnerAgentID, v))
}

// OwnerAgentIDHasPrefix applies the HasPrefix predicate on the "owner_agent_id" field.
func OwnerAgentIDHasPrefix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasPrefix(FieldOwnerAgentID, v))
}

// OwnerAgentIDHasSuffix applies the HasSuffix predicate on the "owner_agent_id" field.
func OwnerAgentIDHasSuffix(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldHasSuffix(FieldOwnerAgentID, v))
}

// OwnerAgentIDEqualFold applies the EqualFold predicate on the "owner_agent_id" field.
func OwnerAgentIDEqualFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEqualFold(FieldOwnerAgentID, v))
}

// OwnerAgentIDContainsFold applies the ContainsFold predicate on the "owner_agent_id" field.
func OwnerAgentIDContainsFold(v string) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldContainsFold(FieldOwnerAgentID, v))
}

// AcquiredAtEQ applies the EQ predicate on the "acquired_at" field.
func AcquiredAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldAcquiredAt, v))
}

// AcquiredAtNEQ applies the NEQ predicate on the "acquired_at" field.
func AcquiredAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldAcquiredAt, v))
}

// AcquiredAtIn applies the In predicate on the "acquired_at" field.
func AcquiredAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldAcquiredAt, vs...))
}

// AcquiredAtNotIn applies the NotIn predicate on the "acquired_at" field.
func AcquiredAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldAcquiredAt, vs...))
}

// AcquiredAtGT applies the GT predicate on the "acquired_at" field.
func AcquiredAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldAcquiredAt, v))
}

// AcquiredAtGTE applies the GTE predicate on the "acquired_at" field.
func AcquiredAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldAcquiredAt, v))
}

// AcquiredAtLT applies the LT predicate on the "acquired_at" field.
func AcquiredAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldAcquiredAt, v))
}

// AcquiredAtLTE applies the LTE predicate on the "acquired_at" field.
func AcquiredAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldAcquiredAt, v))
}

// ReleasedAtEQ applies the EQ predicate on the "released_at" field.
func ReleasedAtEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldEQ(FieldReleasedAt, v))
}

// ReleasedAtNEQ applies the NEQ predicate on the "released_at" field.
func ReleasedAtNEQ(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNEQ(FieldReleasedAt, v))
}

// ReleasedAtIn applies the In predicate on the "released_at" field.
func ReleasedAtIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIn(FieldReleasedAt, vs...))
}

// ReleasedAtNotIn applies the NotIn predicate on the "released_at" field.
func ReleasedAtNotIn(vs ...time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotIn(FieldReleasedAt, vs...))
}

// ReleasedAtGT applies the GT predicate on the "released_at" field.
func ReleasedAtGT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGT(FieldReleasedAt, v))
}

// ReleasedAtGTE applies the GTE predicate on the "released_at" field.
func ReleasedAtGTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldGTE(FieldReleasedAt, v))
}

// ReleasedAtLT applies the LT predicate on the "released_at" field.
func ReleasedAtLT(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLT(FieldReleasedAt, v))
}

// ReleasedAtLTE applies the LTE predicate on the "released_at" field.
func ReleasedAtLTE(v time.Time) predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldLTE(FieldReleasedAt, v))
}

// ReleasedAtIsNil applies the IsNil predicate on the "released_at" field.
func ReleasedAtIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldReleasedAt))
}

// ReleasedAtNotNil applies the NotNil predicate on the "released_at" field.
func ReleasedAtNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldReleasedAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ResourceLock {
	return predicate.ResourceLock(sql.FieldNotNull(FieldMetadata))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResourceLock) predicate.ResourceLock {
	return predicate.ResourceLock(sql.NotPredicates(p))
}
