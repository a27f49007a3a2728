package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity.
// A spawned population member. agent_type gates privileged operations:
// only validators may finalize reviews.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.Enum("agent_type").
			Values("worker", "validator", "diagnostic", "monitor"),
		field.String("phase_id").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("spawning", "idle", "busy", "stopped", "failed").
			Default("spawning"),
		field.JSON("capabilities", []string{}).
			Optional(),
		field.JSON("tags", []string{}).
			Optional(),
		field.String("sandbox_id").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Default(time.Now).
			Comment("Validator-timeout sweep compares this against VALIDATOR_TIMEOUT_S"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_type", "status"),
		index.Fields("last_heartbeat"),
	}
}
