// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicPeriodHeat is the model entity for the TopicPeriodHeat schema.
type TopicPeriodHeat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int `json:"topic_id,omitempty"`
	// YYYY-MM-DD in the configured timezone
	Date string `json:"date,omitempty"`
	// Period holds the value of the "period" field.
	Period topicperiodheat.Period `json:"period,omitempty"`
	// HeatNormalized holds the value of the "heat_normalized" field.
	HeatNormalized float64 `json:"heat_normalized,omitempty"`
	// HeatPercentage holds the value of the "heat_percentage" field.
	HeatPercentage *float64 `json:"heat_percentage,omitempty"`
	// SourceCount holds the value of the "source_count" field.
	SourceCount int `json:"source_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicPeriodHeatQuery when eager-loading is set.
	Edges        TopicPeriodHeatEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicPeriodHeatEdges holds the relations/edges for other nodes in the graph.
type TopicPeriodHeatEdges struct {
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicPeriodHeatEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicPeriodHeat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicperiodheat.FieldHeatNormalized, topicperiodheat.FieldHeatPercentage:
			values[i] = new(sql.NullFloat64)
		case topicperiodheat.FieldID, topicperiodheat.FieldTopicID, topicperiodheat.FieldSourceCount:
			values[i] = new(sql.NullInt64)
		case topicperiodheat.FieldDate, topicperiodheat.FieldPeriod:
			values[i] = new(sql.NullString)
		case topicperiodheat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicPeriodHeat fields.
func (_m *TopicPeriodHeat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicperiodheat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicperiodheat.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case topicperiodheat.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case topicperiodheat.FieldPeriod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field period", values[i])
			} else if value.Valid {
				_m.Period = topicperiodheat.Period(value.String)
			}
		case topicperiodheat.FieldHeatNormalized:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field heat_normalized", values[i])
			} else if value.Valid {
				_m.HeatNormalized = value.Float64
			}
		case topicperiodheat.FieldHeatPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field heat_percentage", values[i])
			} else if value.Valid {
				_m.HeatPercentage = new(float64)
				*_m.HeatPercentage = value.Float64
			}
		case topicperiodheat.FieldSourceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_count", values[i])
			} else if value.Valid {
				_m.SourceCount = int(value.Int64)
			}
		case topicperiodheat.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TopicPeriodHeat.
// This includes values selected through modifiers, order, etc.
func (_m *TopicPeriodHeat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopic queries the "topic" edge of the TopicPeriodHeat entity.
func (_m *TopicPeriodHeat) QueryTopic() *TopicQuery {
	return NewTopicPeriodHeatClient(_m.config).QueryTopic(_m)
}

// Update returns a builder for updating this TopicPeriodHeat.
// Note that you need to call TopicPeriodHeat.Unwrap() before calling this method if this TopicPeriodHeat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicPeriodHeat) Update() *TopicPeriodHeatUpdateOne {
	return NewTopicPeriodHeatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicPeriodHeat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicPeriodHeat) Unwrap() *TopicPeriodHeat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicPeriodHeat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicPeriodHeat) String() string {
	var builder strings.Builder
	builder.WriteString("TopicPeriodHeat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("period=")
	builder.WriteString(fmt.Sprintf("%v", _m.Period))
	builder.WriteString(", ")
	builder.WriteString("heat_normalized=")
	builder.WriteString(fmt.Sprintf("%v", _m.HeatNormalized))
	builder.WriteString(", ")
	if v := _m.HeatPercentage; v != nil {
		builder.WriteString("heat_percentage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("source_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicPeriodHeats is a parsable slice of TopicPeriodHeat.
type TopicPeriodHeats []*TopicPeriodHeat
