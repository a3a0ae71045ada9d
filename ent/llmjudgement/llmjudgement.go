// Code generated by ent, DO NOT EDIT.

package llmjudgement

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the llmjudgement type in the database.
	Label = "llm_judgement"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJudgementType holds the string denoting the judgement_type field in the database.
	FieldJudgementType = "judgement_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRequest holds the string denoting the request field in the database.
	FieldRequest = "request"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldTokensPrompt holds the string denoting the tokens_prompt field in the database.
	FieldTokensPrompt = "tokens_prompt"
	// FieldTokensCompletion holds the string denoting the tokens_completion field in the database.
	FieldTokensCompletion = "tokens_completion"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldRunID holds the string denoting the run_id field in the database.
	FieldRunID = "run_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the llmjudgement in the database.
	Table = "llm_judgements"
)

// Columns holds all SQL columns for llmjudgement fields.
var Columns = []string{
	FieldID,
	FieldJudgementType,
	FieldStatus,
	FieldRequest,
	FieldResponse,
	FieldErrorMessage,
	FieldLatencyMs,
	FieldTokensPrompt,
	FieldTokensCompletion,
	FieldProvider,
	FieldModel,
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

// JudgementType defines the type for the "judgement_type" enum field.
type JudgementType string

// JudgementType values.
const (
	JudgementTypeSameEvent          JudgementType = "same_event"
	JudgementTypeTopicRelation      JudgementType = "topic_relation"
	JudgementTypeClassification     JudgementType = "classification"
	JudgementTypeSummaryFull        JudgementType = "summary_full"
	JudgementTypeSummaryIncremental JudgementType = "summary_incremental"
)

func (jt JudgementType) String() string {
	return string(jt)
}

// JudgementTypeValidator is a validator for the "judgement_type" field enum values. It is called by the builders before save.
func JudgementTypeValidator(jt JudgementType) error {
	switch jt {
	case JudgementTypeSameEvent, JudgementTypeTopicRelation, JudgementTypeClassification, JudgementTypeSummaryFull, JudgementTypeSummaryIncremental:
		return nil
	default:
		return fmt.Errorf("llmjudgement: invalid enum value for judgement_type field: %q", jt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusFallback Status = "fallback"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusFailed, StatusFallback:
		return nil
	default:
		return fmt.Errorf("llmjudgement: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the LLMJudgement queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJudgementType orders the results by the judgement_type field.
func ByJudgementType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJudgementType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// ByTokensPrompt orders the results by the tokens_prompt field.
func ByTokensPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensPrompt, opts...).ToFunc()
}

// ByTokensCompletion orders the results by the tokens_completion field.
func ByTokensCompletion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensCompletion, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByRunID orders the results by the run_id field.
func ByRunID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRunID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
