package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceItem holds the schema definition for the SourceItem entity.
// One crawled row from a platform hot list. Rows are append-only except for
// the grouping fields written by the merge pipeline.
type SourceItem struct {
	ent.Schema
}

// Fields of the SourceItem.
func (SourceItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("platform"),
		field.String("title"),
		field.String("summary").
			Optional().
			Nillable(),
		field.String("url"),
		field.String("url_hash").
			Comment("MD5 of url"),
		field.String("content_hash").
			Comment("MD5 of title+summary, used for change detection"),
		field.String("dedup_key").
			Unique().
			Immutable().
			Comment("platform:urlHash:runId, unique per ingestion run"),

		field.Time("published_at").
			Optional().
			Nillable(),
		field.Time("fetched_at"),
		field.JSON("interactions", map[string]interface{}{}).
			Optional().
			Comment("Free-form platform interaction counters, kept verbatim"),

		// Heat
		field.Float("raw_heat").
			Optional().
			Nillable().
			Comment("Platform-native heat score; absent for platforms without one"),
		field.Float("normalized_heat").
			Optional().
			Nillable().
			Comment("Window-normalized weighted heat, sums to 1.0 per window"),

		// Pipeline grouping
		field.String("window").
			Comment("Collection window tag, e.g. 2025-11-07_AM"),
		field.String("cluster_id").
			Optional().
			Nillable().
			Comment("Set exactly once, when the item leaves pending_period"),
		field.Int("occurrence_count").
			Default(1).
			Comment("Final cluster size once clustered"),
		field.Enum("status").
			Values("pending_period", "pending_global", "merged", "discarded").
			Default("pending_period"),

		field.Int("embedding_id").
			Optional().
			Nillable(),
		field.String("run_id").
			Optional().
			Comment("Ingestion run that produced this row"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the SourceItem.
func (SourceItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("topic_nodes", TopicNode.Type),
	}
}

// Indexes of the SourceItem.
func (SourceItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("window", "status"),
		index.Fields("cluster_id"),
		index.Fields("platform", "fetched_at"),
		index.Fields("run_id"),
	}
}
