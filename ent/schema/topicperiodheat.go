package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicPeriodHeat holds the schema definition for the TopicPeriodHeat entity.
// One row per (topic, date, period) with the window's aggregated heat for that
// topic. Replays overwrite heat and source_count; the stage recomputes both
// from the full cluster.
type TopicPeriodHeat struct {
	ent.Schema
}

// Fields of the TopicPeriodHeat.
func (TopicPeriodHeat) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Immutable(),
		field.String("date").
			Comment("YYYY-MM-DD in the configured timezone"),
		field.Enum("period").
			Values("AM", "PM", "EVE"),
		field.Float("heat_normalized"),
		field.Float("heat_percentage").
			Optional().
			Nillable(),
		field.Int("source_count").
			Default(0),
		field.Time("updated_at"),
	}
}

// Edges of the TopicPeriodHeat.
func (TopicPeriodHeat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("topic", Topic.Type).
			Ref("period_heats").
			Field("topic_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TopicPeriodHeat.
func (TopicPeriodHeat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "date", "period").
			Unique(),
		index.Fields("date", "period"),
	}
}
