// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/ingestrun"
)

// IngestRun is the model entity for the IngestRun schema.
type IngestRun struct {
	config `json:"-"`
	// ID of the ent.
	// e.g. run_a1b2c3d4e5f6
	ID string `json:"id,omitempty"`
	// Status holds the value of the "status" field.
	Status ingestrun.Status `json:"status,omitempty"`
	// Window holds the value of the "window" field.
	Window string `json:"window,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// EndedAt holds the value of the "ended_at" field.
	EndedAt *time.Time `json:"ended_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int `json:"duration_ms,omitempty"`
	// PlatformCount holds the value of the "platform_count" field.
	PlatformCount int `json:"platform_count,omitempty"`
	// PlatformSuccess holds the value of the "platform_success" field.
	PlatformSuccess int `json:"platform_success,omitempty"`
	// ItemCount holds the value of the "item_count" field.
	ItemCount int `json:"item_count,omitempty"`
	// NewItemCount holds the value of the "new_item_count" field.
	NewItemCount int `json:"new_item_count,omitempty"`
	// Per-platform fetched/saved/error breakdown
	PlatformResults map[string]interface{} `json:"platform_results,omitempty"`
	// ErrorSummary holds the value of the "error_summary" field.
	ErrorSummary *string `json:"error_summary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*IngestRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ingestrun.FieldPlatformResults:
			values[i] = new([]byte)
		case ingestrun.FieldDurationMs, ingestrun.FieldPlatformCount, ingestrun.FieldPlatformSuccess, ingestrun.FieldItemCount, ingestrun.FieldNewItemCount:
			values[i] = new(sql.NullInt64)
		case ingestrun.FieldID, ingestrun.FieldStatus, ingestrun.FieldWindow, ingestrun.FieldErrorSummary:
			values[i] = new(sql.NullString)
		case ingestrun.FieldStartedAt, ingestrun.FieldEndedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the IngestRun fields.
func (_m *IngestRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ingestrun.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case ingestrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = ingestrun.Status(value.String)
			}
		case ingestrun.FieldWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value.Valid {
				_m.Window = value.String
			}
		case ingestrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case ingestrun.FieldEndedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field ended_at", values[i])
			} else if value.Valid {
				_m.EndedAt = new(time.Time)
				*_m.EndedAt = value.Time
			}
		case ingestrun.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int)
				*_m.DurationMs = int(value.Int64)
			}
		case ingestrun.FieldPlatformCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field platform_count", values[i])
			} else if value.Valid {
				_m.PlatformCount = int(value.Int64)
			}
		case ingestrun.FieldPlatformSuccess:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field platform_success", values[i])
			} else if value.Valid {
				_m.PlatformSuccess = int(value.Int64)
			}
		case ingestrun.FieldItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field item_count", values[i])
			} else if value.Valid {
				_m.ItemCount = int(value.Int64)
			}
		case ingestrun.FieldNewItemCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_item_count", values[i])
			} else if value.Valid {
				_m.NewItemCount = int(value.Int64)
			}
		case ingestrun.FieldPlatformResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field platform_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlatformResults); err != nil {
					return fmt.Errorf("unmarshal field platform_results: %w", err)
				}
			}
		case ingestrun.FieldErrorSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_summary", values[i])
			} else if value.Valid {
				_m.ErrorSummary = new(string)
				*_m.ErrorSummary = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the IngestRun.
// This includes values selected through modifiers, order, etc.
func (_m *IngestRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this IngestRun.
// Note that you need to call IngestRun.Unwrap() before calling this method if this IngestRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *IngestRun) Update() *IngestRunUpdateOne {
	return NewIngestRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the IngestRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *IngestRun) Unwrap() *IngestRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: IngestRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *IngestRun) String() string {
	var builder strings.Builder
	builder.WriteString("IngestRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(_m.Window)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndedAt; v != nil {
		builder.WriteString("ended_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("platform_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformCount))
	builder.WriteString(", ")
	builder.WriteString("platform_success=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformSuccess))
	builder.WriteString(", ")
	builder.WriteString("item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ItemCount))
	builder.WriteString(", ")
	builder.WriteString("new_item_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.NewItemCount))
	builder.WriteString(", ")
	builder.WriteString("platform_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlatformResults))
	builder.WriteString(", ")
	if v := _m.ErrorSummary; v != nil {
		builder.WriteString("error_summary=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// IngestRuns is a parsable slice of IngestRun.
type IngestRuns []*IngestRun
