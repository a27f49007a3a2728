package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybookChange holds the schema definition for the PlaybookChange entity.
// Append-only audit trail of curator deltas. The (ticket_id,
// related_memory_id) pair makes the ACE pipeline idempotent per memory.
type PlaybookChange struct {
	ent.Schema
}

// Fields of the PlaybookChange.
func (PlaybookChange) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("change_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Enum("change_type").
			Values("add", "update", "remove").
			Default("add"),
		field.String("section").
			Comment("Playbook category the delta applied to"),
		field.Text("content"),
		field.Text("reasoning").
			Optional().
			Nillable(),
		field.String("related_memory_id").
			Optional().
			Nillable(),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PlaybookChange.
func (PlaybookChange) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("playbook_changes").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PlaybookChange.
func (PlaybookChange) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "related_memory_id"),
		index.Fields("created_at"),
	}
}
