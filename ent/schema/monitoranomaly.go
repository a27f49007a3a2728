package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitorAnomaly holds the schema definition for the MonitorAnomaly entity.
// A statistical outlier detected by the metric monitor against its rolling
// baseline.
type MonitorAnomaly struct {
	ent.Schema
}

// Fields of the MonitorAnomaly.
func (MonitorAnomaly) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("anomaly_id").
			Unique().
			Immutable(),
		field.String("metric_name"),
		field.Float("observed"),
		field.Float("baseline_mean"),
		field.Float("baseline_stddev"),
		field.Float("zscore"),
		field.Enum("severity").
			Values("warning", "critical"),
		field.String("entity_type").
			Optional().
			Nillable(),
		field.String("entity_id").
			Optional().
			Nillable(),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the MonitorAnomaly.
func (MonitorAnomaly) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("metric_name", "detected_at"),
		index.Fields("severity"),
	}
}
