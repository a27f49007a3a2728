package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DiagnosticRun holds the schema definition for the DiagnosticRun entity.
// One stuck-workflow analysis attempt. status=skipped is first-class: a run
// that was deduplicated away still leaves an auditable row.
type DiagnosticRun struct {
	ent.Schema
}

// Fields of the DiagnosticRun.
func (DiagnosticRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("workflow_id").
			Immutable().
			Comment("Ticket under diagnosis"),
		field.String("trigger").
			Default("stuck_workflow").
			Comment("stuck_workflow, repeated_validation_failures, or validation_timeout"),
		field.Time("triggered_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("total_tasks").
			Default(0).
			Comment("Task counts captured at trigger time"),
		field.Int("completed_tasks").
			Default(0),
		field.Int("failed_tasks").
			Default(0),
		field.JSON("phases_analyzed", []string{}).
			Optional(),
		field.JSON("agents_reviewed", []string{}).
			Optional(),
		field.Text("diagnosis").
			Optional().
			Nillable(),
		field.Int("tasks_created_count").
			Default(0),
		field.JSON("tasks_created_ids", []string{}).
			Optional(),
		field.Enum("status").
			Values("running", "completed", "skipped", "failed").
			Default("running"),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the DiagnosticRun.
func (DiagnosticRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("diagnostic_runs").
			Field("workflow_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DiagnosticRun.
func (DiagnosticRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("workflow_id", "triggered_at"),
		index.Fields("status"),
	}
}
