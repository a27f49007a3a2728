package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/pgvector/pgvector-go"
)

// TaskMemory holds the schema definition for the TaskMemory entity.
// Append-only execution record written by the ACE executor. Only
// reused_count mutates after creation.
type TaskMemory struct {
	ent.Schema
}

// Fields of the TaskMemory.
func (TaskMemory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("memory_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Text("execution_summary"),
		field.Enum("memory_type").
			Values("error_fix", "decision", "learning", "warning",
				"codebase_knowledge", "discovery").
			Default("learning"),
		field.Other("context_embedding", pgvector.Vector{}).
			SchemaType(map[string]string{
				dialect.Postgres: "vector(1536)",
			}).
			Comment("Embedding of goal+result+feedback; zero vector when the gateway was unavailable"),
		field.Bool("success").
			Default(true),
		field.JSON("error_patterns", []string{}).
			Optional(),
		field.Text("goal").
			Optional().
			Nillable(),
		field.Text("result").
			Optional().
			Nillable(),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.JSON("tool_usage", []map[string]interface{}{}).
			Optional().
			Comment("Raw tool invocations reported by the worker"),
		field.Int("reused_count").
			Default(0).
			Comment("Monotonic; incremented when the memory informs a later task"),
		field.Time("learned_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskMemory.
func (TaskMemory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("memories").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskMemory.
func (TaskMemory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("memory_type"),
		index.Fields("task_id", "learned_at"),
	}
}
