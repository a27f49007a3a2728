package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
// A ticket is the aggregate workflow unit: it owns tasks, playbook knowledge,
// diagnostic runs, and workflow-level results.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.String("phase_id").
			Comment("Current workflow phase (e.g., 'PHASE_IMPLEMENTATION')"),
		field.Enum("status").
			Values("open", "in_progress", "done").
			Default("open"),
		field.Enum("priority").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL").
			Default("MEDIUM"),
		field.String("project_id").
			Optional().
			Nillable().
			Comment("Optional project link; required for diagnostic clone readiness"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("tasks", Task.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("playbook_entries", PlaybookEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("playbook_changes", PlaybookChange.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("diagnostic_runs", DiagnosticRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("workflow_results", WorkflowResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("project", Project.Type).
			Ref("tickets").
			Field("project_id").
			Unique(),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("phase_id"),
		index.Fields("project_id"),
		index.Fields("status", "created_at"),
	}
}
