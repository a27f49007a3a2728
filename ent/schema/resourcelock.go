package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResourceLock holds the schema definition for the ResourceLock entity.
// A named advisory lock held by an agent. At most one unreleased lock may
// exist per name; the partial unique index enforcing this is created via
// migration hooks in pkg/database/migrations.go.
type ResourceLock struct {
	ent.Schema
}

// Fields of the ResourceLock.
func (ResourceLock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("lock_id").
			Unique().
			Immutable(),
		field.String("name").
			Comment("Lock key, e.g. 'repo:acme/api' or 'file:src/auth/jwt.go'"),
		field.String("owner_agent_id"),
		field.Time("acquired_at").
			Default(time.Now).
			Immutable(),
		field.Time("released_at").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the ResourceLock.
func (ResourceLock) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("owner_agent_id"),
	}
}
