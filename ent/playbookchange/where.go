// Code generated by ent, DO NOT EDIT.

package playbookchange

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldTicketID, v))
}

// Section applies equality check predicate on the "section" field. It's identical to SectionEQ.
func Section(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldSection, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldContent, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldReasoning, v))
}

// RelatedMemoryID applies equality check predicate on the "related_memory_id" field. It's identical to RelatedMemoryIDEQ.
func RelatedMemoryID(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldRelatedMemoryID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldTicketID, v))
}

// ChangeTypeEQ applies the EQ predicate on the "change_type" field.
func ChangeTypeEQ(v ChangeType) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldChangeType, v))
}

// ChangeTypeNEQ applies the NEQ predicate on the "change_type" field.
func ChangeTypeNEQ(v ChangeType) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldChangeType, v))
}

// ChangeTypeIn applies the In predicate on the "change_type" field.
func ChangeTypeIn(vs ...ChangeType) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldChangeType, vs...))
}

// ChangeTypeNotIn applies the NotIn predicate on the "change_type" field.
func ChangeTypeNotIn(vs ...ChangeType) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldChangeType, vs...))
}

// SectionEQ applies the EQ predicate on the "section" field.
func SectionEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldSection, v))
}

// SectionNEQ applies the NEQ predicate on the "section" field.
func SectionNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldSection, v))
}

// SectionIn applies the In predicate on the "section" field.
func SectionIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldSection, vs...))
}

// SectionNotIn applies the NotIn predicate on the "section" field.
func SectionNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldSection, vs...))
}

// SectionGT applies the GT predicate on the "section" field.
func SectionGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldSection, v))
}

// SectionGTE applies the GTE predicate on the "section" field.
func SectionGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldSection, v))
}

// SectionLT applies the LT predicate on the "section" field.
func SectionLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldSection, v))
}

// SectionLTE applies the LTE predicate on the "section" field.
func SectionLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldSection, v))
}

// SectionContains applies the Contains predicate on the "section" field.
func SectionContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldSection, v))
}

// SectionHasPrefix applies the HasPrefix predicate on the "section" field.
func SectionHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldSection, v))
}

// SectionHasSuffix applies the HasSuffix predicate on the "section" field.
func SectionHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldSection, v))
}

// SectionEqualFold applies the EqualFold predicate on the "section" field.
func SectionEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldSection, v))
}

// SectionContainsFold applies the ContainsFold predicate on the "section" field.
func SectionContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldSection, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldContent, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldReasoning, v))
}

// RelatedMemoryIDEQ applies the EQ predicate on the "related_memory_id" field.
func RelatedMemoryIDEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDNEQ applies the NEQ predicate on the "related_memory_id" field.
func RelatedMemoryIDNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDIn applies the In predicate on the "related_memory_id" field.
func RelatedMemoryIDIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldRelatedMemoryID, vs...))
}

// RelatedMemoryIDNotIn applies the NotIn predicate on the "related_memory_id" field.
func RelatedMemoryIDNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldRelatedMemoryID, vs...))
}

// RelatedMemoryIDGT applies the GT predicate on the "related_memory_id" field.
func RelatedMemoryIDGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDGTE applies the GTE predicate on the "related_memory_id" field.
func RelatedMemoryIDGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDLT applies the LT predicate on the "related_memory_id" field.
func RelatedMemoryIDLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDLTE applies the LTE predicate on the "related_memory_id" field.
func RelatedMemoryIDLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDContains applies the Contains predicate on the "related_memory_id" field.
func RelatedMemoryIDContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDHasPrefix applies the HasPrefix predicate on the "related_memory_id" field.
func RelatedMemoryIDHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDHasSuffix applies the HasSuffix predicate on the "related_memory_id" field.
func RelatedMemoryIDHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDIsNil applies the IsNil predicate on the "related_memory_id" field.
func RelatedMemoryIDIsNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIsNull(FieldRelatedMemoryID))
}

// RelatedMemoryIDNotNil applies the NotNil predicate on the "related_memory_id" field.
func RelatedMemoryIDNotNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotNull(FieldRelatedMemoryID))
}

// RelatedMemoryIDEqualFold applies the EqualFold predicate on the "related_memory_id" field.
func RelatedMemoryIDEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldRelatedMemoryID, v))
}

// RelatedMemoryIDContainsFold applies the ContainsFold predicate on the "related_memory_id" field.
func RelatedMemoryIDContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldRelatedMemoryID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldContainsFold(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.PlaybookChange {
	return predicate.PlaybookChange(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.PlaybookChange {
	return predicate.PlaybookChange(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlaybookChange) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlaybookChange) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlaybookChange) predicate.PlaybookChange {
	return predicate.PlaybookChange(sql.NotPredicates(p))
}
