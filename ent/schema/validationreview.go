package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ValidationReview holds the schema definition for the ValidationReview entity.
// Append-only: exactly one review per task per validation iteration.
type ValidationReview struct {
	ent.Schema
}

// Fields of the ValidationReview.
func (ValidationReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.String("validator_agent_id"),
		field.Int("iteration_number").
			Comment("Equals the task's validation_iteration at creation time"),
		field.Bool("validation_passed"),
		field.Text("feedback").
			Comment("Required non-empty when the review fails"),
		field.JSON("evidence", map[string]interface{}{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ValidationReview.
func (ValidationReview) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("validation_reviews").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ValidationReview.
func (ValidationReview) Indexes() []ent.Index {
	return []ent.Index{
		// One review per iteration
		index.Fields("task_id", "iteration_number").
			Unique(),
	}
}
