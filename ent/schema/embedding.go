package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Embedding holds the schema definition for the Embedding entity.
// Authoritative copy of every vector; the pgvector index table is derived and
// can be rebuilt from these rows.
type Embedding struct {
	ent.Schema
}

// Fields of the Embedding.
func (Embedding) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("object_type").
			Values("source_item", "topic_summary"),
		field.Int("object_id"),
		field.String("provider").
			Comment("'mock' marks the random-vector degradation path"),
		field.String("model"),
		field.JSON("vector", []float32{}),
		field.Time("created_at").
			Immutable(),
	}
}

// Indexes of the Embedding.
func (Embedding) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("object_type", "object_id"),
	}
}
