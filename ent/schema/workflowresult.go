package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowResult holds the schema definition for the WorkflowResult entity.
// Workflow-level deliverable submission. A validated result marks the ticket
// as not-stuck for the diagnostic engine.
type WorkflowResult struct {
	ent.Schema
}

// Fields of the WorkflowResult.
func (WorkflowResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("result_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("markdown_file_path").
			Comment("Validated path to the submitted markdown deliverable"),
		field.Enum("status").
			Values("submitted", "validated", "rejected").
			Default("submitted"),
		field.String("submitted_by").
			Optional().
			Nillable(),
		field.Text("summary").
			Optional().
			Nillable(),
		field.Time("validated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WorkflowResult.
func (WorkflowResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("workflow_results").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WorkflowResult.
func (WorkflowResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "status"),
	}
}
