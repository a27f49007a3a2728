package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Durable append-only event log backing the bus: rows are written in the
// same transaction as the pg_notify that announces them, so cross-replica
// consumers can catch up from the auto-increment id. The default integer id
// is kept deliberately — insertion order is the per-entity FIFO order.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("event_type").
			Comment("Taxonomy constant, e.g. 'task.enqueued'"),
		field.String("entity_type").
			Comment("'task', 'ticket', 'agent', ..."),
		field.String("entity_id"),
		field.String("channel").
			Comment("NOTIFY channel the event was announced on"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_id", "id"),
		index.Fields("channel"),
		index.Fields("created_at"),
	}
}
