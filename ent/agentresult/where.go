// Code generated by ent, DO NOT EDIT.

package agentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/droverhq/drover/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldTaskID, v))
}

// AgentID applies equality check predicate on the "agent_id" field. It's identical to AgentIDEQ.
func AgentID(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldAgentID, v))
}

// MarkdownContent applies equality check predicate on the "markdown_content" field. It's identical to MarkdownContentEQ.
func MarkdownContent(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldSummary, v))
}

// CommitSha applies equality check predicate on the "commit_sha" field. It's identical to CommitShaEQ.
func CommitSha(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldCommitSha, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldTaskID, v))
}

// AgentIDEQ applies the EQ predicate on the "agent_id" field.
func AgentIDEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldAgentID, v))
}

// AgentIDNEQ applies the NEQ predicate on the "agent_id" field.
func AgentIDNEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldAgentID, v))
}

// AgentIDIn applies the In predicate on the "agent_id" field.
func AgentIDIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldAgentID, vs...))
}

// AgentIDNotIn applies the NotIn predicate on the "agent_id" field.
func AgentIDNotIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldAgentID, vs...))
}

// AgentIDGT applies the GT predicate on the "agent_id" field.
func AgentIDGT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldAgentID, v))
}

// AgentIDGTE applies the GTE predicate on the "agent_id" field.
func AgentIDGTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldAgentID, v))
}

// AgentIDLT applies the LT predicate on the "agent_id" field.
func AgentIDLT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldAgentID, v))
}

// AgentIDLTE applies the LTE predicate on the "agent_id" field.
func AgentIDLTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldAgentID, v))
}

// AgentIDContains applies the Contains predicate on the "agent_id" field.
func AgentIDContains(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContains(FieldAgentID, v))
}

// AgentIDHasPrefix applies the HasPrefix predicate on the "agent_id" field.
func AgentIDHasPrefix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasPrefix(FieldAgentID, v))
}

// AgentIDHasSuffix applies the HasSuffix predicate on the "agent_id" field.
func AgentIDHasSuffix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasSuffix(FieldAgentID, v))
}

// AgentIDEqualFold applies the EqualFold predicate on the "agent_id" field.
func AgentIDEqualFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldAgentID, v))
}

// AgentIDContainsFold applies the ContainsFold predicate on the "agent_id" field.
func AgentIDContainsFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldAgentID, v))
}

// MarkdownContentEQ applies the EQ predicate on the "markdown_content" field.
func MarkdownContentEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldMarkdownContent, v))
}

// MarkdownContentNEQ applies the NEQ predicate on the "markdown_content" field.
func MarkdownContentNEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldMarkdownContent, v))
}

// MarkdownContentIn applies the In predicate on the "markdown_content" field.
func MarkdownContentIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldMarkdownContent, vs...))
}

// MarkdownContentNotIn applies the NotIn predicate on the "markdown_content" field.
func MarkdownContentNotIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldMarkdownContent, vs...))
}

// MarkdownContentGT applies the GT predicate on the "markdown_content" field.
func MarkdownContentGT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldMarkdownContent, v))
}

// MarkdownContentGTE applies the GTE predicate on the "markdown_content" field.
func MarkdownContentGTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldMarkdownContent, v))
}

// MarkdownContentLT applies the LT predicate on the "markdown_content" field.
func MarkdownContentLT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldMarkdownContent, v))
}

// MarkdownContentLTE applies the LTE predicate on the "markdown_content" field.
func MarkdownContentLTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldMarkdownContent, v))
}

// MarkdownContentContains applies the Contains predicate on the "markdown_content" field.
func MarkdownContentContains(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContains(FieldMarkdownContent, v))
}

// MarkdownContentHasPrefix applies the HasPrefix predicate on the "markdown_content" field.
func MarkdownContentHasPrefix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasPrefix(FieldMarkdownContent, v))
}

// MarkdownContentHasSuffix applies the HasSuffix predicate on the "markdown_content" field.
func MarkdownContentHasSuffix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasSuffix(FieldMarkdownContent, v))
}

// MarkdownContentEqualFold applies the EqualFold predicate on the "markdown_content" field.
func MarkdownContentEqualFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldMarkdownContent, v))
}

// MarkdownContentContainsFold applies the ContainsFold predicate on the "markdown_content" field.
func MarkdownContentContainsFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldMarkdownContent, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldSummary, v))
}

// CommitShaEQ applies the EQ predicate on the "commit_sha" field.
func CommitShaEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldCommitSha, v))
}

// CommitShaNEQ applies the NEQ predicate on the "commit_sha" field.
func CommitShaNEQ(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldCommitSha, v))
}

// CommitShaIn applies the In predicate on the "commit_sha" field.
func CommitShaIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldCommitSha, vs...))
}

// CommitShaNotIn applies the NotIn predicate on the "commit_sha" field.
func CommitShaNotIn(vs ...string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldCommitSha, vs...))
}

// CommitShaGT applies the GT predicate on the "commit_sha" field.
func CommitShaGT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldCommitSha, v))
}

// CommitShaGTE applies the GTE predicate on the "commit_sha" field.
func CommitShaGTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldCommitSha, v))
}

// CommitShaLT applies the LT predicate on the "commit_sha" field.
func CommitShaLT(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldCommitSha, v))
}

// CommitShaLTE applies the LTE predicate on the "commit_sha" field.
func CommitShaLTE(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldCommitSha, v))
}

// CommitShaContains applies the Contains predicate on the "commit_sha" field.
func CommitShaContains(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContains(FieldCommitSha, v))
}

// CommitShaHasPrefix applies the HasPrefix predicate on the "commit_sha" field.
func CommitShaHasPrefix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasPrefix(FieldCommitSha, v))
}

// CommitShaHasSuffix applies the HasSuffix predicate on the "commit_sha" field.
func CommitShaHasSuffix(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldHasSuffix(FieldCommitSha, v))
}

// CommitShaIsNil applies the IsNil predicate on the "commit_sha" field.
func CommitShaIsNil() predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIsNull(FieldCommitSha))
}

// CommitShaNotNil applies the NotNil predicate on the "commit_sha" field.
func CommitShaNotNil() predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotNull(FieldCommitSha))
}

// CommitShaEqualFold applies the EqualFold predicate on the "commit_sha" field.
func CommitShaEqualFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEqualFold(FieldCommitSha, v))
}

// CommitShaContainsFold applies the ContainsFold predicate on the "commit_sha" field.
func CommitShaContainsFold(v string) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldContainsFold(FieldCommitSha, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.AgentResult {
	return predicate.AgentResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.AgentResult {
	return predicate.AgentResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.AgentResult {
	return predicate.AgentResult(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentResult) predicate.AgentResult {
	return predicate.AgentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentResult) predicate.AgentResult {
	return predicate.AgentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentResult) predicate.AgentResult {
	return predicate.AgentResult(sql.NotPredicates(p))
}
