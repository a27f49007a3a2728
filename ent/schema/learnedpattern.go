package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearnedPattern holds the schema definition for the LearnedPattern entity.
// Aggregated success/failure signature extracted from task memories.
type LearnedPattern struct {
	ent.Schema
}

// Fields of the LearnedPattern.
func (LearnedPattern) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pattern_id").
			Unique().
			Immutable(),
		field.Enum("pattern_type").
			Values("success", "failure", "optimization"),
		field.String("task_type_pattern").
			Comment("Regex matched against task_type"),
		field.JSON("success_indicators", []string{}).
			Optional(),
		field.JSON("failure_indicators", []string{}).
			Optional(),
		field.Float("confidence_score").
			Default(0.5).
			Comment("Bounded to [0,1]; adjusted as the pattern is confirmed or contradicted"),
		field.Int("usage_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the LearnedPattern.
func (LearnedPattern) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pattern_type"),
	}
}
