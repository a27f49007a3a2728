// Code generated by ent, DO NOT EDIT.

package taskdiscovery

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContainsFold(FieldID, id))
}

// SourceTaskID applies equality check predicate on the "source_task_id" field. It's identical to SourceTaskIDEQ.
func SourceTaskID(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldSourceTaskID, v))
}

// DiscoveryType applies equality check predicate on the "discovery_type" field. It's identical to DiscoveryTypeEQ.
func DiscoveryType(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDiscoveryType, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDescription, v))
}

// PriorityBoost applies equality check predicate on the "priority_boost" field. It's identical to PriorityBoostEQ.
func PriorityBoost(v bool) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldPriorityBoost, v))
}

// DiscoveredAt applies equality check predicate on the "discovered_at" field. It's identical to DiscoveredAtEQ.
func DiscoveredAt(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDiscoveredAt, v))
}

// SourceTaskIDEQ applies the EQ predicate on the "source_task_id" field.
func SourceTaskIDEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldSourceTaskID, v))
}

// SourceTaskIDNEQ applies the NEQ predicate on the "source_task_id" field.
func SourceTaskIDNEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldSourceTaskID, v))
}

// SourceTaskIDIn applies the In predicate on the "source_task_id" field.
func SourceTaskIDIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldSourceTaskID, vs...))
}

// SourceTaskIDNotIn applies the NotIn predicate on the "source_task_id" field.
func SourceTaskIDNotIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldSourceTaskID, vs...))
}

// SourceTaskIDGT applies the GT predicate on the "source_task_id" field.
func SourceTaskIDGT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGT(FieldSourceTaskID, v))
}

// SourceTaskIDGTE applies the GTE predicate on the "source_task_id" field.
func SourceTaskIDGTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGTE(FieldSourceTaskID, v))
}

// SourceTaskIDLT applies the LT predicate on the "source_task_id" field.
func SourceTaskIDLT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLT(FieldSourceTaskID, v))
}

// SourceTaskIDLTE applies the LTE predicate on the "source_task_id" field.
func SourceTaskIDLTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLTE(FieldSourceTaskID, v))
}

// SourceTaskIDContains applies the Contains predicate on the "source_task_id" field.
func SourceTaskIDContains(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContains(FieldSourceTaskID, v))
}

// SourceTaskIDHasPrefix applies the HasPrefix predicate on the "source_task_id" field.
func SourceTaskIDHasPrefix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasPrefix(FieldSourceTaskID, v))
}

// SourceTaskIDHasSuffix applies the HasSuffix predicate on the "source_task_id" field.
func SourceTaskIDHasSuffix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasSuffix(FieldSourceTaskID, v))
}

// SourceTaskIDEqualFold applies the EqualFold predicate on the "source_task_id" field.
func SourceTaskIDEqualFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEqualFold(FieldSourceTaskID, v))
}

// SourceTaskIDContainsFold applies the ContainsFold predicate on the "source_task_id" field.
func SourceTaskIDContainsFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContainsFold(FieldSourceTaskID, v))
}

// DiscoveryTypeEQ applies the EQ predicate on the "discovery_type" field.
func DiscoveryTypeEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDiscoveryType, v))
}

// DiscoveryTypeNEQ applies the NEQ predicate on the "discovery_type" field.
func DiscoveryTypeNEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldDiscoveryType, v))
}

// DiscoveryTypeIn applies the In predicate on the "discovery_type" field.
func DiscoveryTypeIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldDiscoveryType, vs...))
}

// DiscoveryTypeNotIn applies the NotIn predicate on the "discovery_type" field.
func DiscoveryTypeNotIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldDiscoveryType, vs...))
}

// DiscoveryTypeGT applies the GT predicate on the "discovery_type" field.
func DiscoveryTypeGT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGT(FieldDiscoveryType, v))
}

// DiscoveryTypeGTE applies the GTE predicate on the "discovery_type" field.
func DiscoveryTypeGTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGTE(FieldDiscoveryType, v))
}

// DiscoveryTypeLT applies the LT predicate on the "discovery_type" field.
func DiscoveryTypeLT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLT(FieldDiscoveryType, v))
}

// DiscoveryTypeLTE applies the LTE predicate on the "discovery_type" field.
func DiscoveryTypeLTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLTE(FieldDiscoveryType, v))
}

// DiscoveryTypeContains applies the Contains predicate on the "discovery_type" field.
func DiscoveryTypeContains(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContains(FieldDiscoveryType, v))
}

// DiscoveryTypeHasPrefix applies the HasPrefix predicate on the "discovery_type" field.
func DiscoveryTypeHasPrefix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasPrefix(FieldDiscoveryType, v))
}

// DiscoveryTypeHasSuffix applies the HasSuffix predicate on the "discovery_type" field.
func DiscoveryTypeHasSuffix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasSuffix(FieldDiscoveryType, v))
}

// DiscoveryTypeEqualFold applies the EqualFold predicate on the "discovery_type" field.
func DiscoveryTypeEqualFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEqualFold(FieldDiscoveryType, v))
}

// DiscoveryTypeContainsFold applies the ContainsFold predicate on the "discovery_type" field.
func DiscoveryTypeContainsFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContainsFold(FieldDiscoveryType, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldContainsFold(FieldDescription, v))
}

// SpawnedTaskIdsIsNil applies the IsNil predicate on the "spawned_task_ids" field.
func SpawnedTaskIdsIsNil() predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIsNull(FieldSpawnedTaskIds))
}

// SpawnedTaskIdsNotNil applies the NotNil predicate on the "spawned_task_ids" field.
func SpawnedTaskIdsNotNil() predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotNull(FieldSpawnedTaskIds))
}

// PriorityBoostEQ applies the EQ predicate on the "priority_boost" field.
func PriorityBoostEQ(v bool) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldPriorityBoost, v))
}

// PriorityBoostNEQ applies the NEQ predicate on the "priority_boost" field.
func PriorityBoostNEQ(v bool) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldPriorityBoost, v))
}

// ResolutionStatusEQ applies the EQ predicate on the "resolution_status" field.
func ResolutionStatusEQ(v ResolutionStatus) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldResolutionStatus, v))
}

// ResolutionStatusNEQ applies the NEQ predicate on the "resolution_status" field.
func ResolutionStatusNEQ(v ResolutionStatus) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldResolutionStatus, v))
}

// ResolutionStatusIn applies the In predicate on the "resolution_status" field.
func ResolutionStatusIn(vs ...ResolutionStatus) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldResolutionStatus, vs...))
}

// ResolutionStatusNotIn applies the NotIn predicate on the "resolution_status" field.
func ResolutionStatusNotIn(vs ...ResolutionStatus) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldResolutionStatus, vs...))
}

// DiscoveredAtEQ applies the EQ predicate on the "discovered_at" field.
func DiscoveredAtEQ(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtNEQ applies the NEQ predicate on the "discovered_at" field.
func DiscoveredAtNEQ(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNEQ(FieldDiscoveredAt, v))
}

// DiscoveredAtIn applies the In predicate on the "discovered_at" field.
func DiscoveredAtIn(vs ...time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtNotIn applies the NotIn predicate on the "discovered_at" field.
func DiscoveredAtNotIn(vs ...time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldNotIn(FieldDiscoveredAt, vs...))
}

// DiscoveredAtGT applies the GT predicate on the "discovered_at" field.
func DiscoveredAtGT(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGT(FieldDiscoveredAt, v))
}

// DiscoveredAtGTE applies the GTE predicate on the "discovered_at" field.
func DiscoveredAtGTE(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldGTE(FieldDiscoveredAt, v))
}

// DiscoveredAtLT applies the LT predicate on the "discovered_at" field.
func DiscoveredAtLT(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLT(FieldDiscoveredAt, v))
}

// DiscoveredAtLTE applies the LTE predicate on the "discovered_at" field.
func DiscoveredAtLTE(v time.Time) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.FieldLTE(FieldDiscoveredAt, v))
}

// HasSourceTask applies the HasEdge predicate on the "source_task" edge.
func HasSourceTask() predicate.TaskDiscovery {
	return predicate.TaskDiscovery(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceTaskTable, SourceTaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceTaskWith applies the HasEdge predicate on the "source_task" edge with a given conditions (other predicates).
func HasSourceTaskWith(preds ...predicate.Task) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(func(s *sql.Selector) {
		step := newSourceTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TaskDiscovery) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TaskDiscovery) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TaskDiscovery) predicate.TaskDiscovery {
	return predicate.TaskDiscovery(sql.NotPredicates(p))
}
