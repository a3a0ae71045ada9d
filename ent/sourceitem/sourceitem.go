// Code generated by ent, DO NOT EDIT.

package sourceitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sourceitem type in the database.
	Label = "source_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldURLHash holds the string denoting the url_hash field in the database.
	FieldURLHash = "url_hash"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldDedupKey holds the string denoting the dedup_key field in the database.
	FieldDedupKey = "dedup_key"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// FieldInteractions holds the string denoting the interactions field in the database.
	FieldInteractions = "interactions"
	// FieldRawHeat holds the string denoting the raw_heat field in the database.
	FieldRawHeat = "raw_heat"
	// FieldNormalizedHeat holds the string denoting the normalized_heat field in the database.
	FieldNormalizedHeat = "normalized_heat"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldClusterID holds the string denoting the cluster_id field in the database.
	FieldClusterID = "cluster_id"
	// FieldOccurrenceCount holds the string denoting the occurrence_count field in the database.
	FieldOccurrenceCount = "occurrence_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldEmbeddingID holds the string denoting the embedding_id field in the database.
	FieldEmbeddingID = "embedding_id"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTopicNodes holds the string denoting the topic_nodes edge name in mutations.
	EdgeTopicNodes = "topic_nodes"
	// Table holds the table name of the sourceitem in the database.
	Table = "source_items"
	// TopicNodesTable is the table that holds the topic_nodes relation/edge.
	TopicNodesTable = "topic_nodes"
	// TopicNodesInverseTable is the table name for the TopicNode entity.
	// It exists in this package in order to avoid circular dependency with the "topicnode" package.
	TopicNodesInverseTable = "topic_nodes"
	// TopicNodesColumn is the table column denoting the topic_nodes relation/edge.
	TopicNodesColumn = "source_item_id"
)

// Columns holds all SQL columns for sourceitem fields.
var Columns = []string{
	FieldID,
	FieldPlatform,
	FieldTitle,
	FieldSummary,
	FieldURL,
	FieldURLHash,
	FieldContentHash,
	FieldDedupKey,
	FieldPublishedAt,
	FieldFetchedAt,
	FieldInteractions,
	FieldRawHeat,
	FieldNormalizedHeat,
	FieldWindow,
	FieldClusterID,
	FieldOccurrenceCount,
	FieldStatus,
	FieldEmbeddingID,
	FieldRunID,
	FieldCreatedAt,
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
	// DefaultOccurrenceCount holds the default value on creation for the "occurrence_count" field.
	DefaultOccurrenceCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPendingPeriod is the default value of the Status enum.
const DefaultStatus = StatusPendingPeriod

// Status values.
const (
	StatusPendingPeriod Status = "pending_period"
	StatusPendingGlobal Status = "pending_global"
	StatusMerged        Status = "merged"
	StatusDiscarded     Status = "discarded"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPendingPeriod, StatusPendingGlobal, StatusMerged, StatusDiscarded:
		return nil
	default:
		return fmt.Errorf("sourceitem: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SourceItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByURLHash orders the results by the url_hash field.
func ByURLHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURLHash, opts...).ToFunc()
}

// ByContentHash orders the results by the content_hash field.
func ByContentHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentHash, opts...).ToFunc()
}

// ByDedupKey orders the results by the dedup_key field.
func ByDedupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupKey, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}

// ByRawHeat orders the results by the raw_heat field.
func ByRawHeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawHeat, opts...).ToFunc()
}

// ByNormalizedHeat orders the results by the normalized_heat field.
func ByNormalizedHeat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedHeat, opts...).ToFunc()
}

// ByWindow orders the results by the window field.
func ByWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindow, opts...).ToFunc()
}

// ByClusterID orders the results by the cluster_id field.
func ByClusterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClusterID, opts...).ToFunc()
}

// ByOccurrenceCount orders the results by the occurrence_count field.
func ByOccurrenceCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOccurrenceCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByEmbeddingID orders the results by the embedding_id field.
func ByEmbeddingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmbeddingID, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTopicNodesCount orders the results by topic_nodes count.
func ByTopicNodesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTopicNodesStep(), opts...)
	}
}

// ByTopicNodes orders the results by topic_nodes terms.
func ByTopicNodes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTopicNodesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTopicNodesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TopicNodesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TopicNodesTable, TopicNodesColumn),
	)
}
