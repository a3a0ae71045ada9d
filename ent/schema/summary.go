package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Summary holds the schema definition for the Summary entity.
// One row per generation; the topic's summary_id points at the latest.
type Summary struct {
	ent.Schema
}

// Fields of the Summary.
func (Summary) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Immutable(),
		field.Text("content"),
		field.JSON("key_points", []string{}).
			Optional(),
		field.Enum("method").
			Values("full", "incremental", "placeholder"),
		field.Time("generated_at"),
		field.String("provider"),
		field.String("model"),
	}
}

// Edges of the Summary.
func (Summary) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("topic", Topic.Type).
			Ref("summaries").
			Field("topic_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Summary.
func (Summary) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "generated_at"),
	}
}
