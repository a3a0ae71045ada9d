// Code generated by ent, DO NOT EDIT.

package topicnode

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topicnode type in the database.
	Label = "topic_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldSourceItemID holds the string denoting the source_item_id field in the database.
	FieldSourceItemID = "source_item_id"
	// FieldAppendedAt holds the string denoting the appended_at field in the database.
	FieldAppendedAt = "appended_at"
	// EdgeTopic holds the string denoting the topic edge name in mutations.
	EdgeTopic = "topic"
	// EdgeSourceItem holds the string denoting the source_item edge name in mutations.
	EdgeSourceItem = "source_item"
	// Table holds the table name of the topicnode in the database.
	Table = "topic_nodes"
	// TopicTable is the table that holds the topic relation/edge.
	TopicTable = "topic_nodes"
	// TopicInverseTable is the table name for the Topic entity.
	// It exists in this package in order to avoid circular dependency with the "topic" package.
	TopicInverseTable = "topics"
	// TopicColumn is the table column denoting the topic relation/edge.
	TopicColumn = "topic_id"
	// SourceItemTable is the table that holds the source_item relation/edge.
	SourceItemTable = "topic_nodes"
	// SourceItemInverseTable is the table name for the SourceItem entity.
	// It exists in this package in order to avoid circular dependency with the "sourceitem" package.
	SourceItemInverseTable = "source_items"
	// SourceItemColumn is the table column denoting the source_item relation/edge.
	SourceItemColumn = "source_item_id"
)

// Columns holds all SQL columns for topicnode fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldSourceItemID,
	FieldAppendedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

// OrderOption defines the ordering options for the TopicNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// BySourceItemID orders the results by the source_item_id field.
func BySourceItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceItemID, opts...).ToFunc()
}

// ByAppendedAt orders the results by the appended_at field.
func ByAppendedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAppendedAt, opts...).ToFunc()
}

// ByTopicField orders the results by topic field.
func ByTopicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicStep(), sql.OrderByField(field, opts...))
	}
}

// BySourceItemField orders the results by source_item field.
func BySourceItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSourceItemStep(), sql.OrderByField(field, opts...))
	}
}
func newTopicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
	)
}
func newSourceItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SourceItemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SourceItemTable, SourceItemColumn),
	)
}
