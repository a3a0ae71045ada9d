// Code generated by ent, DO NOT EDIT.

package categorydaymetrics

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the categorydaymetrics type in the database.
	Label = "category_day_metrics"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldTopicCount holds the string denoting the topic_count field in the database.
	FieldTopicCount = "topic_count"
	// FieldActiveTopicCount holds the string denoting the active_topic_count field in the database.
	FieldActiveTopicCount = "active_topic_count"
	// FieldAvgDurationHours holds the string denoting the avg_duration_hours field in the database.
	FieldAvgDurationHours = "avg_duration_hours"
	// FieldMaxDurationHours holds the string denoting the max_duration_hours field in the database.
	FieldMaxDurationHours = "max_duration_hours"
	// FieldIntensitySum holds the string denoting the intensity_sum field in the database.
	FieldIntensitySum = "intensity_sum"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the categorydaymetrics in the database.
	Table = "category_day_metrics"
)

// Columns holds all SQL columns for categorydaymetrics fields.
var Columns = []string{
	FieldID,
	FieldDate,
	FieldCategory,
	FieldTopicCount,
	FieldActiveTopicCount,
	FieldAvgDurationHours,
	FieldMaxDurationHours,
	FieldIntensitySum,
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
	// DefaultTopicCount holds the default value on creation for the "topic_count" field.
	DefaultTopicCount int
	// DefaultActiveTopicCount holds the default value on creation for the "active_topic_count" field.
	DefaultActiveTopicCount int
	// DefaultIntensitySum holds the default value on creation for the "intensity_sum" field.
	DefaultIntensitySum int
)

// Category defines the type for the "category" enum field.
type Category string

// Category values.
const (
	CategoryEntertainment  Category = "entertainment"
	CategoryCurrentAffairs Category = "current_affairs"
	CategorySportsEsports  Category = "sports_esports"
)

func (c Category) String() string {
	return string(c)
}

// CategoryValidator is a validator for the "category" field enum values. It is called by the builders before save.
func CategoryValidator(c Category) error {
	switch c {
	case CategoryEntertainment, CategoryCurrentAffairs, CategorySportsEsports:
		return nil
	default:
		return fmt.Errorf("categorydaymetrics: invalid enum value for category field: %q", c)
	}
}

// OrderOption defines the ordering options for the CategoryDayMetrics queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByTopicCount orders the results by the topic_count field.
func ByTopicCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicCount, opts...).ToFunc()
}

// ByActiveTopicCount orders the results by the active_topic_count field.
func ByActiveTopicCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveTopicCount, opts...).ToFunc()
}

// ByAvgDurationHours orders the results by the avg_duration_hours field.
func ByAvgDurationHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDurationHours, opts...).ToFunc()
}

// ByMaxDurationHours orders the results by the max_duration_hours field.
func ByMaxDurationHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDurationHours, opts...).ToFunc()
}

// ByIntensitySum orders the results by the intensity_sum field.
func ByIntensitySum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntensitySum, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
