package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryDayMetrics holds the schema definition for the CategoryDayMetrics
// entity. Daily per-category rollups recomputed by the 01:00 job.
type CategoryDayMetrics struct {
	ent.Schema
}

// Fields of the CategoryDayMetrics.
func (CategoryDayMetrics) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			Comment("YYYY-MM-DD"),
		field.Enum("category").
			Values("entertainment", "current_affairs", "sports_esports"),
		field.Int("topic_count").
			Default(0),
		field.Int("active_topic_count").
			Default(0),
		field.Float("avg_duration_hours").
			Optional().
			Nillable(),
		field.Float("max_duration_hours").
			Optional().
			Nillable(),
		field.Int("intensity_sum").
			Default(0),
		field.Time("updated_at"),
	}
}

// Indexes of the CategoryDayMetrics.
func (CategoryDayMetrics) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date", "category").
			Unique(),
	}
}
