package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentResult holds the schema definition for the AgentResult entity.
// Per-task deliverable receipt: the markdown body produced by the worker,
// capped at 100 KiB by the results intake.
type AgentResult struct {
	ent.Schema
}

// Fields of the AgentResult.
func (AgentResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("agent_id"),
		field.Text("markdown_content"),
		field.Text("summary").
			Optional().
			Nillable(),
		field.String("commit_sha").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentResult.
func (AgentResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("agent_results").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AgentResult.
func (AgentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("agent_id"),
	}
}
