// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/llmjudgement"
)

// LLMJudgement is the model entity for the LLMJudgement schema.
type LLMJudgement struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// JudgementType holds the value of the "judgement_type" field.
	JudgementType llmjudgement.JudgementType `json:"judgement_type,omitempty"`
	// Status holds the value of the "status" field.
	Status llmjudgement.Status `json:"status,omitempty"`
	// Request holds the value of the "request" field.
	Request map[string]interface{} `json:"request,omitempty"`
	// Response holds the value of the "response" field.
	Response map[string]interface{} `json:"response,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// LatencyMs holds the value of the "latency_ms" field.
	LatencyMs *int `json:"latency_ms,omitempty"`
	// TokensPrompt holds the value of the "tokens_prompt" field.
	TokensPrompt *int `json:"tokens_prompt,omitempty"`
	// TokensCompletion holds the value of the "tokens_completion" field.
	TokensCompletion *int `json:"tokens_completion,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// Model holds the value of the "model" field.
	Model string `json:"model,omitempty"`
	// Pipeline run that issued the call
	RunID string `json:"run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LLMJudgement) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case llmjudgement.FieldRequest, llmjudgement.FieldResponse:
			values[i] = new([]byte)
		case llmjudgement.FieldID, llmjudgement.FieldLatencyMs, llmjudgement.FieldTokensPrompt, llmjudgement.FieldTokensCompletion:
			values[i] = new(sql.NullInt64)
		case llmjudgement.FieldJudgementType, llmjudgement.FieldStatus, llmjudgement.FieldErrorMessage, llmjudgement.FieldProvider, llmjudgement.FieldModel, llmjudgement.FieldRunID:
			values[i] = new(sql.NullString)
		case llmjudgement.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LLMJudgement fields.
func (_m *LLMJudgement) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case llmjudgement.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case llmjudgement.FieldJudgementType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field judgement_type", values[i])
			} else if value.Valid {
				_m.JudgementType = llmjudgement.JudgementType(value.String)
			}
		case llmjudgement.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = llmjudgement.Status(value.String)
			}
		case llmjudgement.FieldRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Request); err != nil {
					return fmt.Errorf("unmarshal field request: %w", err)
				}
			}
		case llmjudgement.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Response); err != nil {
					return fmt.Errorf("unmarshal field response: %w", err)
				}
			}
		case llmjudgement.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case llmjudgement.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = new(int)
				*_m.LatencyMs = int(value.Int64)
			}
		case llmjudgement.FieldTokensPrompt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_prompt", values[i])
			} else if value.Valid {
				_m.TokensPrompt = new(int)
				*_m.TokensPrompt = int(value.Int64)
			}
		case llmjudgement.FieldTokensCompletion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_completion", values[i])
			} else if value.Valid {
				_m.TokensCompletion = new(int)
				*_m.TokensCompletion = int(value.Int64)
			}
		case llmjudgement.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case llmjudgement.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case llmjudgement.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case llmjudgement.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LLMJudgement.
// This includes values selected through modifiers, order, etc.
func (_m *LLMJudgement) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LLMJudgement.
// Note that you need to call LLMJudgement.Unwrap() before calling this method if this LLMJudgement
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LLMJudgement) Update() *LLMJudgementUpdateOne {
	return NewLLMJudgementClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LLMJudgement entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LLMJudgement) Unwrap() *LLMJudgement {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LLMJudgement is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LLMJudgement) String() string {
	var builder strings.Builder
	builder.WriteString("LLMJudgement(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("judgement_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.JudgementType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(fmt.Sprintf("%v", _m.Request))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LatencyMs; v != nil {
		builder.WriteString("latency_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensPrompt; v != nil {
		builder.WriteString("tokens_prompt=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TokensCompletion; v != nil {
		builder.WriteString("tokens_completion=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LLMJudgements is a parsable slice of LLMJudgement.
type LLMJudgements []*LLMJudgement
