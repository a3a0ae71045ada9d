// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
)

// CategoryDayMetrics is the model entity for the CategoryDayMetrics schema.
type CategoryDayMetrics struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// Category holds the value of the "category" field.
	Category categorydaymetrics.Category `json:"category,omitempty"`
	// TopicCount holds the value of the "topic_count" field.
	TopicCount int `json:"topic_count,omitempty"`
	// ActiveTopicCount holds the value of the "active_topic_count" field.
	ActiveTopicCount int `json:"active_topic_count,omitempty"`
	// AvgDurationHours holds the value of the "avg_duration_hours" field.
	AvgDurationHours *float64 `json:"avg_duration_hours,omitempty"`
	// MaxDurationHours holds the value of the "max_duration_hours" field.
	MaxDurationHours *float64 `json:"max_duration_hours,omitempty"`
	// IntensitySum holds the value of the "intensity_sum" field.
	IntensitySum int `json:"intensity_sum,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryDayMetrics) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categorydaymetrics.FieldAvgDurationHours, categorydaymetrics.FieldMaxDurationHours:
			values[i] = new(sql.NullFloat64)
		case categorydaymetrics.FieldID, categorydaymetrics.FieldTopicCount, categorydaymetrics.FieldActiveTopicCount, categorydaymetrics.FieldIntensitySum:
			values[i] = new(sql.NullInt64)
		case categorydaymetrics.FieldDate, categorydaymetrics.FieldCategory:
			values[i] = new(sql.NullString)
		case categorydaymetrics.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryDayMetrics fields.
func (_m *CategoryDayMetrics) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categorydaymetrics.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case categorydaymetrics.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case categorydaymetrics.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = categorydaymetrics.Category(value.String)
			}
		case categorydaymetrics.FieldTopicCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_count", values[i])
			} else if value.Valid {
				_m.TopicCount = int(value.Int64)
			}
		case categorydaymetrics.FieldActiveTopicCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_topic_count", values[i])
			} else if value.Valid {
				_m.ActiveTopicCount = int(value.Int64)
			}
		case categorydaymetrics.FieldAvgDurationHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_duration_hours", values[i])
			} else if value.Valid {
				_m.AvgDurationHours = new(float64)
				*_m.AvgDurationHours = value.Float64
			}
		case categorydaymetrics.FieldMaxDurationHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_duration_hours", values[i])
			} else if value.Valid {
				_m.MaxDurationHours = new(float64)
				*_m.MaxDurationHours = value.Float64
			}
		case categorydaymetrics.FieldIntensitySum:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intensity_sum", values[i])
			} else if value.Valid {
				_m.IntensitySum = int(value.Int64)
			}
		case categorydaymetrics.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryDayMetrics.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryDayMetrics) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CategoryDayMetrics.
// Note that you need to call CategoryDayMetrics.Unwrap() before calling this method if this CategoryDayMetrics
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryDayMetrics) Update() *CategoryDayMetricsUpdateOne {
	return NewCategoryDayMetricsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryDayMetrics entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryDayMetrics) Unwrap() *CategoryDayMetrics {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryDayMetrics is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryDayMetrics) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryDayMetrics(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(fmt.Sprintf("%v", _m.Category))
	builder.WriteString(", ")
	builder.WriteString("topic_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicCount))
	builder.WriteString(", ")
	builder.WriteString("active_topic_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveTopicCount))
	builder.WriteString(", ")
	if v := _m.AvgDurationHours; v != nil {
		builder.WriteString("avg_duration_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxDurationHours; v != nil {
		builder.WriteString("max_duration_hours=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("intensity_sum=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntensitySum))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CategoryDayMetricsSlice is a parsable slice of CategoryDayMetrics.
type CategoryDayMetricsSlice []*CategoryDayMetrics
