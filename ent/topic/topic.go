// Code generated by ent, DO NOT EDIT.

package topic

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the topic type in the database.
	Label = "topic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitleKey holds the string denoting the title_key field in the database.
	FieldTitleKey = "title_key"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastActive holds the string denoting the last_active field in the database.
	FieldLastActive = "last_active"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIntensityTotal holds the string denoting the intensity_total field in the database.
	FieldIntensityTotal = "intensity_total"
	// FieldInteractionTotal holds the string denoting the interaction_total field in the database.
	FieldInteractionTotal = "interaction_total"
	// FieldCurrentHeatNormalized holds the string denoting the current_heat_normalized field in the database.
	FieldCurrentHeatNormalized = "current_heat_normalized"
	// FieldHeatPercentage holds the string denoting the heat_percentage field in the database.
	FieldHeatPercentage = "heat_percentage"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldCategoryConfidence holds the string denoting the category_confidence field in the database.
	FieldCategoryConfidence = "category_confidence"
	// FieldCategoryMethod holds the string denoting the category_method field in the database.
	FieldCategoryMethod = "category_method"
	// FieldCategoryUpdatedAt holds the string denoting the category_updated_at field in the database.
	FieldCategoryUpdatedAt = "category_updated_at"
	// FieldSummaryID holds the string denoting the summary_id field in the database.
	FieldSummaryID = "summary_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeNodes holds the string denoting the nodes edge name in mutations.
	EdgeNodes = "nodes"
	// EdgePeriodHeats holds the string denoting the period_heats edge name in mutations.
	EdgePeriodHeats = "period_heats"
	// EdgeSummaries holds the string denoting the summaries edge name in mutations.
	EdgeSummaries = "summaries"
	// Table holds the table name of the topic in the database.
	Table = "topics"
	// NodesTable is the table that holds the nodes relation/edge.
	NodesTable = "topic_nodes"
	// NodesInverseTable is the table name for the TopicNode entity.
	// It exists in this package in order to avoid circular dependency with the "topicnode" package.
	NodesInverseTable = "topic_nodes"
	// NodesColumn is the table column denoting the nodes relation/edge.
	NodesColumn = "topic_id"
	// PeriodHeatsTable is the table that holds the period_heats relation/edge.
	PeriodHeatsTable = "topic_period_heats"
	// PeriodHeatsInverseTable is the table name for the TopicPeriodHeat entity.
	// It exists in this package in order to avoid circular dependency with the "topicperiodheat" package.
	PeriodHeatsInverseTable = "topic_period_heats"
	// PeriodHeatsColumn is the table column denoting the period_heats relation/edge.
	PeriodHeatsColumn = "topic_id"
	// SummariesTable is the table that holds the summaries relation/edge.
	SummariesTable = "summaries"
	// SummariesInverseTable is the table name for the Summary entity.
	// It exists in this package in order to avoid circular dependency with the "summary" package.
	SummariesInverseTable = "summaries"
	// SummariesColumn is the table column denoting the summaries relation/edge.
	SummariesColumn = "topic_id"
)

// Columns holds all SQL columns for topic fields.
var Columns = []string{
	FieldID,
	FieldTitleKey,
	FieldFirstSeen,
	FieldLastActive,
	FieldStatus,
	FieldIntensityTotal,
	FieldInteractionTotal,
	FieldCurrentHeatNormalized,
	FieldHeatPercentage,
	FieldCategory,
	FieldCategoryConfidence,
	FieldCategoryMethod,
	FieldCategoryUpdatedAt,
	FieldSummaryID,
	FieldCreatedAt,
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
	// DefaultIntensityTotal holds the default value on creation for the "intensity_total" field.
	DefaultIntensityTotal int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusEnded:
		return nil
	default:
		return fmt.Errorf("topic: invalid enum value for status field: %q", s)
	}
}

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
		return fmt.Errorf("topic: invalid enum value for category field: %q", c)
	}
}

// CategoryMethod defines the type for the "category_method" enum field.
type CategoryMethod string

// CategoryMethod values.
const (
	CategoryMethodRule    CategoryMethod = "rule"
	CategoryMethodLlm     CategoryMethod = "llm"
	CategoryMethodDefault CategoryMethod = "default"
	CategoryMethodManual  CategoryMethod = "manual"
)

func (cm CategoryMethod) String() string {
	return string(cm)
}

// CategoryMethodValidator is a validator for the "category_method" field enum values. It is called by the builders before save.
func CategoryMethodValidator(cm CategoryMethod) error {
	switch cm {
	case CategoryMethodRule, CategoryMethodLlm, CategoryMethodDefault, CategoryMethodManual:
		return nil
	default:
		return fmt.Errorf("topic: invalid enum value for category_method field: %q", cm)
	}
}

// OrderOption defines the ordering options for the Topic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitleKey orders the results by the title_key field.
func ByTitleKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitleKey, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastActive orders the results by the last_active field.
func ByLastActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActive, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIntensityTotal orders the results by the intensity_total field.
func ByIntensityTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntensityTotal, opts...).ToFunc()
}

// ByInteractionTotal orders the results by the interaction_total field.
func ByInteractionTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInteractionTotal, opts...).ToFunc()
}

// ByCurrentHeatNormalized orders the results by the current_heat_normalized field.
func ByCurrentHeatNormalized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentHeatNormalized, opts...).ToFunc()
}

// ByHeatPercentage orders the results by the heat_percentage field.
func ByHeatPercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHeatPercentage, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByCategoryConfidence orders the results by the category_confidence field.
func ByCategoryConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryConfidence, opts...).ToFunc()
}

// ByCategoryMethod orders the results by the category_method field.
func ByCategoryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryMethod, opts...).ToFunc()
}

// ByCategoryUpdatedAt orders the results by the category_updated_at field.
func ByCategoryUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryUpdatedAt, opts...).ToFunc()
}

// BySummaryID orders the results by the summary_id field.
func BySummaryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummaryID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNodesCount orders the results by nodes count.
func ByNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNodesStep(), opts...)
	}
}

// ByNodes orders the results by nodes terms.
func ByNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPeriodHeatsCount orders the results by period_heats count.
func ByPeriodHeatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPeriodHeatsStep(), opts...)
	}
}

// ByPeriodHeats orders the results by period_heats terms.
func ByPeriodHeats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPeriodHeatsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySummariesCount orders the results by summaries count.
func BySummariesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSummariesStep(), opts...)
	}
}

// BySummaries orders the results by summaries terms.
func BySummaries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSummariesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
	)
}
func newPeriodHeatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PeriodHeatsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PeriodHeatsTable, PeriodHeatsColumn),
	)
}
func newSummariesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SummariesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
	)
}
