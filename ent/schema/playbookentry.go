package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlaybookEntry holds the schema definition for the PlaybookEntry entity.
// A curated knowledge bullet scoped to a ticket. Soft-deleted by flipping
// is_active; the curator never hard-deletes.
//
// The semantic-search embedding is a vector(1536) column managed outside Ent
// (see pkg/database/vector.go).
type PlaybookEntry struct {
	ent.Schema
}

// Fields of the PlaybookEntry.
func (PlaybookEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("entry_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Text("content"),
		field.Enum("category").
			Values("patterns", "gotchas", "best_practices", "general").
			Default("general"),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("supporting_memory_ids", []string{}).
			Optional().
			Comment("Memory ids that back this bullet; appended by the reflector"),
		field.Bool("is_active").
			Default(true),
		field.String("created_by").
			Optional().
			Nillable().
			Comment("Agent that contributed the insight"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the PlaybookEntry.
func (PlaybookEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("playbook_entries").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the PlaybookEntry.
func (PlaybookEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "is_active"),
		index.Fields("category"),
	}
}
