package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity.
// A task is the unit of work dispatched to agents. Its status follows the
// coordination state machine; the score column is recomputed by the scorer
// and drives claim ordering.
//
// The nullable dedup embedding lives in a vector(1536) column managed by
// migrations and accessed through pkg/database vector helpers; Ent does not
// map it (see pkg/database/vector.go).
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("phase_id").
			Comment("Workflow phase this task is scoped to"),
		field.String("task_type").
			Default("general").
			Comment("Free-form type; 'discovery_*' when spawned by the diagnostic engine"),
		field.Text("description"),
		field.Enum("priority").
			Values("LOW", "MEDIUM", "HIGH", "CRITICAL").
			Default("MEDIUM"),
		field.Enum("status").
			Values("pending", "claiming", "assigned", "running", "under_review",
				"validation_in_progress", "needs_work", "completed", "failed").
			Default("pending"),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.String("sandbox_id").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Structured completion payload reported by the worker"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.Time("deadline_at").
			Optional().
			Nillable(),
		field.Float("score").
			Default(0).
			Comment("Dispatch priority in [0,1]; recomputed by the scorer"),
		field.Bool("validation_enabled").
			Default(true),
		field.Int("validation_iteration").
			Default(0).
			Comment("Incremented on each submit for review; never decreases"),
		field.Bool("review_done").
			Default(false),
		field.Text("last_validation_feedback").
			Optional().
			Nillable(),
		field.String("commit_sha").
			Optional().
			Nillable().
			Comment("Required to enter under_review when validation is enabled"),
		field.JSON("owned_files", []string{}).
			Optional().
			Comment("POSIX-style glob patterns claimed by this task"),
		field.JSON("dependencies", map[string][]string{}).
			Optional().
			Comment("{'depends_on': [task_id, ...]}; all must be completed before claim"),
		field.String("content_hash").
			Optional().
			Nillable().
			MaxLen(64).
			Comment("SHA-256 of normalized description, for exact-match dedup"),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("When the claim transaction moved the task to claiming; reaper threshold"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("tasks").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.To("memories", TaskMemory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("validation_reviews", ValidationReview.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("discoveries", TaskDiscovery.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_results", AgentResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("task_type"),
		index.Fields("ticket_id", "status"),

		// Claim ordering: status+phase filter, score-desc scan
		index.Fields("phase_id", "status", "score"),

		// Reaper scan over stale claims only
		index.Fields("claimed_at").
			Annotations(entsql.IndexWhere("status = 'claiming'")),

		// Exact-match dedup lookups
		index.Fields("ticket_id", "task_type", "content_hash").
			Annotations(entsql.IndexWhere("content_hash IS NOT NULL")),
	}
}
