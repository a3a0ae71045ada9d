package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IngestRun holds the schema definition for the IngestRun entity.
// One audit row per ingestion trigger, with per-platform outcomes.
type IngestRun struct {
	ent.Schema
}

// Fields of the IngestRun.
func (IngestRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable().
			Comment("e.g. run_a1b2c3d4e5f6"),
		field.Enum("status").
			Values("running", "success", "partial", "failed").
			Default("running"),
		field.String("window"),

		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.Int("platform_count").
			Default(0),
		field.Int("platform_success").
			Default(0),
		field.Int("item_count").
			Default(0),
		field.Int("new_item_count").
			Default(0),

		field.JSON("platform_results", map[string]interface{}{}).
			Optional().
			Comment("Per-platform fetched/saved/error breakdown"),
		field.String("error_summary").
			Optional().
			Nillable(),
	}
}

// Indexes of the IngestRun.
func (IngestRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("window"),
	}
}
