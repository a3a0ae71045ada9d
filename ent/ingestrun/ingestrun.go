// Code generated by ent, DO NOT EDIT.

package ingestrun

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the ingestrun type in the database.
	Label = "ingest_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "run_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWindow holds the string denoting the window field in the database.
	FieldWindow = "window"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// FieldPlatformCount holds the string denoting the platform_count field in the database.
	FieldPlatformCount = "platform_count"
	// FieldPlatformSuccess holds the string denoting the platform_success field in the database.
	FieldPlatformSuccess = "platform_success"
	// FieldItemCount holds the string denoting the item_count field in the database.
	FieldItemCount = "item_count"
	// FieldNewItemCount holds the string denoting the new_item_count field in the database.
	FieldNewItemCount = "new_item_count"
	// FieldPlatformResults holds the string denoting the platform_results field in the database.
	FieldPlatformResults = "platform_results"
	// FieldErrorSummary holds the string denoting the error_summary field in the database.
	FieldErrorSummary = "error_summary"
	// Table holds the table name of the ingestrun in the database.
	Table = "ingest_runs"
)

// Columns holds all SQL columns for ingestrun fields.
var Columns = []string{
	FieldID,
	FieldStatus,
	FieldWindow,
	FieldStartedAt,
	FieldEndedAt,
	FieldDurationMs,
	FieldPlatformCount,
	FieldPlatformSuccess,
	FieldItemCount,
	FieldNewItemCount,
	FieldPlatformResults,
	FieldErrorSummary,
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
	// DefaultPlatformCount holds the default value on creation for the "platform_count" field.
	DefaultPlatformCount int
	// DefaultPlatformSuccess holds the default value on creation for the "platform_success" field.
	DefaultPlatformSuccess int
	// DefaultItemCount holds the default value on creation for the "item_count" field.
	DefaultItemCount int
	// DefaultNewItemCount holds the default value on creation for the "new_item_count" field.
	DefaultNewItemCount int
)

// Status defines the type for the "status" enum field.
type Status string

// StatusRunning is the default value of the Status enum.
const DefaultStatus = StatusRunning

// Status values.
const (
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusRunning, StatusSuccess, StatusPartial, StatusFailed:
		return nil
	default:
		return fmt.Errorf("ingestrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the IngestRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWindow orders the results by the window field.
func ByWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindow, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByPlatformCount orders the results by the platform_count field.
func ByPlatformCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformCount, opts...).ToFunc()
}

// ByPlatformSuccess orders the results by the platform_success field.
func ByPlatformSuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformSuccess, opts...).ToFunc()
}

// ByItemCount orders the results by the item_count field.
func ByItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemCount, opts...).ToFunc()
}

// ByNewItemCount orders the results by the new_item_count field.
func ByNewItemCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewItemCount, opts...).ToFunc()
}

// ByErrorSummary orders the results by the error_summary field.
func ByErrorSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorSummary, opts...).ToFunc()
}
