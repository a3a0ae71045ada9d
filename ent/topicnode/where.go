// Code generated by ent, DO NOT EDIT.

package topicnode

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldTopicID, v))
}

// SourceItemID applies equality check predicate on the "source_item_id" field. It's identical to SourceItemIDEQ.
func SourceItemID(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldSourceItemID, v))
}

// AppendedAt applies equality check predicate on the "appended_at" field. It's identical to AppendedAtEQ.
func AppendedAt(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldAppendedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNotIn(FieldTopicID, vs...))
}

// SourceItemIDEQ applies the EQ predicate on the "source_item_id" field.
func SourceItemIDEQ(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldSourceItemID, v))
}

// SourceItemIDNEQ applies the NEQ predicate on the "source_item_id" field.
func SourceItemIDNEQ(v int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNEQ(FieldSourceItemID, v))
}

// SourceItemIDIn applies the In predicate on the "source_item_id" field.
func SourceItemIDIn(vs ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldIn(FieldSourceItemID, vs...))
}

// SourceItemIDNotIn applies the NotIn predicate on the "source_item_id" field.
func SourceItemIDNotIn(vs ...int) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNotIn(FieldSourceItemID, vs...))
}

// AppendedAtEQ applies the EQ predicate on the "appended_at" field.
func AppendedAtEQ(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldEQ(FieldAppendedAt, v))
}

// AppendedAtNEQ applies the NEQ predicate on the "appended_at" field.
func AppendedAtNEQ(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNEQ(FieldAppendedAt, v))
}

// AppendedAtIn applies the In predicate on the "appended_at" field.
func AppendedAtIn(vs ...time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldIn(FieldAppendedAt, vs...))
}

// AppendedAtNotIn applies the NotIn predicate on the "appended_at" field.
func AppendedAtNotIn(vs ...time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldNotIn(FieldAppendedAt, vs...))
}

// AppendedAtGT applies the GT predicate on the "appended_at" field.
func AppendedAtGT(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldGT(FieldAppendedAt, v))
}

// AppendedAtGTE applies the GTE predicate on the "appended_at" field.
func AppendedAtGTE(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldGTE(FieldAppendedAt, v))
}

// AppendedAtLT applies the LT predicate on the "appended_at" field.
func AppendedAtLT(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldLT(FieldAppendedAt, v))
}

// AppendedAtLTE applies the LTE predicate on the "appended_at" field.
func AppendedAtLTE(v time.Time) predicate.TopicNode {
	return predicate.TopicNode(sql.FieldLTE(FieldAppendedAt, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.TopicNode {
	return predicate.TopicNode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.TopicNode {
	return predicate.TopicNode(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSourceItem applies the HasEdge predicate on the "source_item" edge.
func HasSourceItem() predicate.TopicNode {
	return predicate.TopicNode(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SourceItemTable, SourceItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourceItemWith applies the HasEdge predicate on the "source_item" edge with a given conditions (other predicates).
func HasSourceItemWith(preds ...predicate.SourceItem) predicate.TopicNode {
	return predicate.TopicNode(func(s *sql.Selector) {
		step := newSourceItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicNode) predicate.TopicNode {
	return predicate.TopicNode(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicNode) predicate.TopicNode {
	return predicate.TopicNode(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicNode) predicate.TopicNode {
	return predicate.TopicNode(sql.NotPredicates(p))
}
