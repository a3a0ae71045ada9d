package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TopicNode holds the schema definition for the TopicNode entity.
// Links a topic to one of its constituent source items. Created at attachment,
// never updated.
type TopicNode struct {
	ent.Schema
}

// Fields of the TopicNode.
func (TopicNode) Fields() []ent.Field {
	return []ent.Field{
		field.Int("topic_id").
			Immutable(),
		field.Int("source_item_id").
			Immutable(),
		field.Time("appended_at").
			Immutable(),
	}
}

// Edges of the TopicNode.
func (TopicNode) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("topic", Topic.Type).
			Ref("nodes").
			Field("topic_id").
			Unique().
			Required().
			Immutable(),
		edge.From("source_item", SourceItem.Type).
			Ref("topic_nodes").
			Field("source_item_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TopicNode.
func (TopicNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id", "source_item_id").
			Unique(),
		index.Fields("source_item_id"),
	}
}
