// Code generated by ent, DO NOT EDIT.

package workflowresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldID, id))
}

// TicketID applies equality check predicate on the "ticket_id" field. It's identical to TicketIDEQ.
func TicketID(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldTicketID, v))
}

// MarkdownFilePath applies equality check predicate on the "markdown_file_path" field. It's identical to MarkdownFilePathEQ.
func MarkdownFilePath(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownFilePath, v))
}

// SubmittedBy applies equality check predicate on the "submitted_by" field. It's identical to SubmittedByEQ.
func SubmittedBy(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldSubmittedBy, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldSummary, v))
}

// ValidatedAt applies equality check predicate on the "validated_at" field. It's identical to ValidatedAtEQ.
func ValidatedAt(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TicketIDEQ applies the EQ predicate on the "ticket_id" field.
func TicketIDEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldTicketID, v))
}

// TicketIDNEQ applies the NEQ predicate on the "ticket_id" field.
func TicketIDNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldTicketID, v))
}

// TicketIDIn applies the In predicate on the "ticket_id" field.
func TicketIDIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldTicketID, vs...))
}

// TicketIDNotIn applies the NotIn predicate on the "ticket_id" field.
func TicketIDNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldTicketID, vs...))
}

// TicketIDGT applies the GT predicate on the "ticket_id" field.
func TicketIDGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldTicketID, v))
}

// TicketIDGTE applies the GTE predicate on the "ticket_id" field.
func TicketIDGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldTicketID, v))
}

// TicketIDLT applies the LT predicate on the "ticket_id" field.
func TicketIDLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldTicketID, v))
}

// TicketIDLTE applies the LTE predicate on the "ticket_id" field.
func TicketIDLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldTicketID, v))
}

// TicketIDContains applies the Contains predicate on the "ticket_id" field.
func TicketIDContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldTicketID, v))
}

// TicketIDHasPrefix applies the HasPrefix predicate on the "ticket_id" field.
func TicketIDHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldTicketID, v))
}

// TicketIDHasSuffix applies the HasSuffix predicate on the "ticket_id" field.
func TicketIDHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldTicketID, v))
}

// TicketIDEqualFold applies the EqualFold predicate on the "ticket_id" field.
func TicketIDEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldTicketID, v))
}

// TicketIDContainsFold applies the ContainsFold predicate on the "ticket_id" field.
func TicketIDContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldTicketID, v))
}

// MarkdownFilePathEQ applies the EQ predicate on the "markdown_file_path" field.
func MarkdownFilePathEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldMarkdownFilePath, v))
}

// MarkdownFilePathNEQ applies the NEQ predicate on the "markdown_file_path" field.
func MarkdownFilePathNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldMarkdownFilePath, v))
}

// MarkdownFilePathIn applies the In predicate on the "markdown_file_path" field.
func MarkdownFilePathIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldMarkdownFilePath, vs...))
}

// MarkdownFilePathNotIn applies the NotIn predicate on the "markdown_file_path" field.
func MarkdownFilePathNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldMarkdownFilePath, vs...))
}

// MarkdownFilePathGT applies the GT predicate on the "markdown_file_path" field.
func MarkdownFilePathGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldMarkdownFilePath, v))
}

// MarkdownFilePathGTE applies the GTE predicate on the "markdown_file_path" field.
func MarkdownFilePathGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldMarkdownFilePath, v))
}

// MarkdownFilePathLT applies the LT predicate on the "markdown_file_path" field.
func MarkdownFilePathLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldMarkdownFilePath, v))
}

// MarkdownFilePathLTE applies the LTE predicate on the "markdown_file_path" field.
func MarkdownFilePathLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldMarkdownFilePath, v))
}

// MarkdownFilePathContains applies the Contains predicate on the "markdown_file_path" field.
func MarkdownFilePathContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldMarkdownFilePath, v))
}

// MarkdownFilePathHasPrefix applies the HasPrefix predicate on the "markdown_file_path" field.
func MarkdownFilePathHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldMarkdownFilePath, v))
}

// MarkdownFilePathHasSuffix applies the HasSuffix predicate on the "markdown_file_path" field.
func MarkdownFilePathHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldMarkdownFilePath, v))
}

// MarkdownFilePathEqualFold applies the EqualFold predicate on the "markdown_file_path" field.
func MarkdownFilePathEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldMarkdownFilePath, v))
}

// MarkdownFilePathContainsFold applies the ContainsFold predicate on the "markdown_file_path" field.
func MarkdownFilePathContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldMarkdownFilePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldStatus, vs...))
}

// SubmittedByEQ applies the EQ predicate on the "submitted_by" field.
func SubmittedByEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldSubmittedBy, v))
}

// SubmittedByNEQ applies the NEQ predicate on the "submitted_by" field.
func SubmittedByNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldSubmittedBy, v))
}

// SubmittedByIn applies the In predicate on the "submitted_by" field.
func SubmittedByIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldSubmittedBy, vs...))
}

// SubmittedByNotIn applies the NotIn predicate on the "submitted_by" field.
func SubmittedByNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldSubmittedBy, vs...))
}

// SubmittedByGT applies the GT predicate on the "submitted_by" field.
func SubmittedByGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldSubmittedBy, v))
}

// SubmittedByGTE applies the GTE predicate on the "submitted_by" field.
func SubmittedByGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldSubmittedBy, v))
}

// SubmittedByLT applies the LT predicate on the "submitted_by" field.
func SubmittedByLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldSubmittedBy, v))
}

// SubmittedByLTE applies the LTE predicate on the "submitted_by" field.
func SubmittedByLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldSubmittedBy, v))
}

// SubmittedByContains applies the Contains predicate on the "submitted_by" field.
func SubmittedByContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldSubmittedBy, v))
}

// SubmittedByHasPrefix applies the HasPrefix predicate on the "submitted_by" field.
func SubmittedByHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldSubmittedBy, v))
}

// SubmittedByHasSuffix applies the HasSuffix predicate on the "submitted_by" field.
func SubmittedByHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldSubmittedBy, v))
}

// SubmittedByIsNil applies the IsNil predicate on the "submitted_by" field.
func SubmittedByIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldSubmittedBy))
}

// SubmittedByNotNil applies the NotNil predicate on the "submitted_by" field.
func SubmittedByNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldSubmittedBy))
}

// SubmittedByEqualFold applies the EqualFold predicate on the "submitted_by" field.
func SubmittedByEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldSubmittedBy, v))
}

// SubmittedByContainsFold applies the ContainsFold predicate on the "submitted_by" field.
func SubmittedByContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldSubmittedBy, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldContainsFold(FieldSummary, v))
}

// ValidatedAtEQ applies the EQ predicate on the "validated_at" field.
func ValidatedAtEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldValidatedAt, v))
}

// ValidatedAtNEQ applies the NEQ predicate on the "validated_at" field.
func ValidatedAtNEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldValidatedAt, v))
}

// ValidatedAtIn applies the In predicate on the "validated_at" field.
func ValidatedAtIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldValidatedAt, vs...))
}

// ValidatedAtNotIn applies the NotIn predicate on the "validated_at" field.
func ValidatedAtNotIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldValidatedAt, vs...))
}

// ValidatedAtGT applies the GT predicate on the "validated_at" field.
func ValidatedAtGT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldValidatedAt, v))
}

// ValidatedAtGTE applies the GTE predicate on the "validated_at" field.
func ValidatedAtGTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldValidatedAt, v))
}

// ValidatedAtLT applies the LT predicate on the "validated_at" field.
func ValidatedAtLT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldValidatedAt, v))
}

// ValidatedAtLTE applies the LTE predicate on the "validated_at" field.
func ValidatedAtLTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldValidatedAt, v))
}

// ValidatedAtIsNil applies the IsNil predicate on the "validated_at" field.
func ValidatedAtIsNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIsNull(FieldValidatedAt))
}

// ValidatedAtNotNil applies the NotNil predicate on the "validated_at" field.
func ValidatedAtNotNil() predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotNull(FieldValidatedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTicket applies the HasEdge predicate on the "ticket" edge.
func HasTicket() predicate.WorkflowResult {
	return predicate.WorkflowResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TicketTable, TicketColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTicketWith applies the HasEdge predicate on the "ticket" edge with a given conditions (other predicates).
func HasTicketWith(preds ...predicate.Ticket) predicate.WorkflowResult {
	return predicate.WorkflowResult(func(s *sql.Selector) {
		step := newTicketStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkflowResult) predicate.WorkflowResult {
	return predicate.WorkflowResult(sql.NotPredicates(p))
}
