package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskDiscovery holds the schema definition for the TaskDiscovery entity.
// An edge in the workflow-branching graph: a finding on a source task that
// spawned follow-up tasks. Spawned task ids are stored as a value list, not
// edges, to keep the Task/Ticket/Discovery graph acyclic.
type TaskDiscovery struct {
	ent.Schema
}

// Fields of the TaskDiscovery.
func (TaskDiscovery) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("discovery_id").
			Unique().
			Immutable(),
		field.String("source_task_id").
			Immutable(),
		field.String("discovery_type").
			Comment("e.g., 'missing_dependency', 'diagnostic_no_result'"),
		field.Text("description"),
		field.JSON("spawned_task_ids", []string{}).
			Optional(),
		field.Bool("priority_boost").
			Default(false).
			Comment("Spawned tasks inherit a priority bump"),
		field.Enum("resolution_status").
			Values("open", "in_progress", "resolved", "invalid").
			Default("open"),
		field.Time("discovered_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskDiscovery.
func (TaskDiscovery) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("source_task", Task.Type).
			Ref("discoveries").
			Field("source_task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskDiscovery.
func (TaskDiscovery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_task_id"),
		index.Fields("resolution_status"),
	}
}
