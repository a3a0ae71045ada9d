package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRun holds the schema definition for the PipelineRun entity.
// One audit row per stage invocation, written at start and finalized on
// completion or error.
type PipelineRun struct {
	ent.Schema
}

// Fields of the PipelineRun.
func (PipelineRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable().
			Comment("e.g. period_merge_a1b2c3d4e5f6"),
		field.Enum("stage").
			Values("period_merge", "global_merge", "category_metrics"),
		field.String("window").
			Optional().
			Comment("Window the run processed, empty for the metrics job"),
		field.Enum("status").
			Values("running", "success", "partial", "failed").
			Default("running"),

		field.Time("started_at"),
		field.Time("ended_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.Int("input_count").
			Default(0),
		field.Int("output_count").
			Default(0),
		field.Int("success_count").
			Default(0),
		field.Int("failed_count").
			Default(0),

		field.JSON("results", map[string]interface{}{}).
			Optional(),
		field.String("error_summary").
			Optional().
			Nillable(),
	}
}

// Indexes of the PipelineRun.
func (PipelineRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage", "started_at"),
		index.Fields("window"),
	}
}
