package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic holds the schema definition for the Topic entity.
// A persistent event that accumulates clusters from many windows over time.
type Topic struct {
	ent.Schema
}

// Fields of the Topic.
func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("title_key").
			Comment("Representative headline chosen at creation"),
		field.Time("first_seen"),
		field.Time("last_active").
			Comment("Max fetched_at across all attached items"),
		field.Enum("status").
			Values("active", "ended").
			Default("active"),

		field.Int("intensity_total").
			Default(0).
			Comment("Cumulative count of merged items"),
		field.Int64("interaction_total").
			Optional().
			Nillable(),
		field.Float("current_heat_normalized").
			Optional().
			Nillable().
			Comment("Most recent window's mean normalized heat"),
		field.Float("heat_percentage").
			Optional().
			Nillable(),

		// Classification write-back
		field.Enum("category").
			Values("entertainment", "current_affairs", "sports_esports").
			Optional().
			Nillable(),
		field.Float("category_confidence").
			Optional().
			Nillable(),
		field.Enum("category_method").
			Values("rule", "llm", "default", "manual").
			Optional().
			Nillable(),
		field.Time("category_updated_at").
			Optional().
			Nillable(),

		field.Int("summary_id").
			Optional().
			Nillable().
			Comment("Latest summary row; older rows are history"),

		field.Time("created_at").
			Immutable(),
		field.Time("updated_at"),
	}
}

// Edges of the Topic.
func (Topic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("nodes", TopicNode.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("period_heats", TopicPeriodHeat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("summaries", Summary.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Topic.
func (Topic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "last_active"),
		index.Fields("category"),
	}
}
