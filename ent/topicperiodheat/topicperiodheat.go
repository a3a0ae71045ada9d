// Code generated by ent, DO NOT EDIT.

package topicperiodheat

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topicperiodheat type in the database.
	Label = "topic_period_heat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldPeriod holds the string denoting the period field in the database.
	FieldPeriod = "period"
	// FieldHeatNormalized holds the string denoting the heat_normalized field in the database.
	FieldHeatNormalized = "heat_normalized"
	// FieldHeatPercentage holds the string denoting the heat_percentage field in the database.
	FieldHeatPercentage = "heat_percentage"
	// FieldSourceCount holds the string denoting the source_count field in the database.
	FieldSourceCount = "source_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTopic holds the string denoting the topic edge name in mutations.
	EdgeTopic = "topic"
	// Table holds the table name of the topicperiodheat in the database.
	Table = "topic_period_heats"
	// TopicTable is the table that holds the topic relation/edge.
	TopicTable = "topic_period_heats"
	// TopicInverseTable is the table name for the Topic entity.
	// It exists in this package in order to avoid circular dependency with the "topic" package.
	TopicInverseTable = "topics"
	// TopicColumn is the table column denoting the topic relation/edge.
	TopicColumn = "topic_id"
)

// Columns holds all SQL columns for topicperiodheat fields.
var Columns = []string{
	FieldID,
	FieldTopicID,
	FieldDate,
	FieldPeriod,
	FieldHeatNormalized,
	FieldHeatPercentage,
	FieldSourceCount,
	FieldUpdatedAt,
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

var (
	// DefaultSourceCount holds the default value on creation for the "source_count" field.
	DefaultSourceCount int
)

// Period defines the type for the "period" enum field.
type Period string

// Period values.
const (
	PeriodAM  Period = "AM"
	PeriodPM  Period = "PM"
	PeriodEVE Period = "EVE"
)

func (pe Period) String() string {
	return string(pe)
}

// PeriodValidator is a validator for the "period" field enum values. It is called by the builders before save.
func PeriodValidator(pe Period) error {
	switch pe {
	case PeriodAM, PeriodPM, PeriodEVE:
		return nil
	default:
		return fmt.Errorf("topicperiodheat: invalid enum value for period field: %q", pe)
	}
}

// OrderOption defines the ordering options for the TopicPeriodHeat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByPeriod orders the results by the period field.
func ByPeriod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPeriod, opts...).ToFunc()
}

// ByHeatNormalized orders the results by the heat_normalized field.
func ByHeatNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeatNormalized, opts...).ToFunc()
}

// ByHeatPercentage orders the results by the heat_percentage field.
func ByHeatPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeatPercentage, opts...).ToFunc()
}

// BySourceCount orders the results by the source_count field.
func BySourceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceCount, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTopicField orders the results by topic field.
func ByTopicField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicStep(), sql.OrderByField(field, opts...))
	}
}
func newTopicStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
	)
}
