// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/topic"
)

// Topic is the model entity for the Topic schema.
type Topic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Representative headline chosen at creation
	TitleKey string `json:"title_key,omitempty"`
	// FirstSeen holds the value of the "first_seen" field.
	FirstSeen time.Time `json:"first_seen,omitempty"`
	// Max fetched_at across all attached items
	LastActive time.Time `json:"last_active,omitempty"`
	// Status holds the value of the "status" field.
	Status topic.Status `json:"status,omitempty"`
	// Cumulative count of merged items
	IntensityTotal int `json:"intensity_total,omitempty"`
	// InteractionTotal holds the value of the "interaction_total" field.
	InteractionTotal *int64 `json:"interaction_total,omitempty"`
	// Most recent window's mean normalized heat
	CurrentHeatNormalized *float64 `json:"current_heat_normalized,omitempty"`
	// HeatPercentage holds the value of the "heat_percentage" field.
	HeatPercentage *float64 `json:"heat_percentage,omitempty"`
	// Category holds the value of the "category" field.
	Category *topic.Category `json:"category,omitempty"`
	// CategoryConfidence holds the value of the "category_confidence" field.
	CategoryConfidence *float64 `json:"category_confidence,omitempty"`
	// CategoryMethod holds the value of the "category_method" field.
	CategoryMethod *topic.CategoryMethod `json:"category_method,omitempty"`
	// CategoryUpdatedAt holds the value of the "category_updated_at" field.
	CategoryUpdatedAt *time.Time `json:"category_updated_at,omitempty"`
	// Latest summary row; older rows are history
	SummaryID *int `json:"summary_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicQuery when eager-loading is set.
	Edges        TopicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicEdges holds the relations/edges for other nodes in the graph.
type TopicEdges struct {
	// Nodes holds the value of the nodes edge.
	Nodes []*TopicNode `json:"nodes,omitempty"`
	// PeriodHeats holds the value of the period_heats edge.
	PeriodHeats []*TopicPeriodHeat `json:"period_heats,omitempty"`
	// Summaries holds the value of the summaries edge.
	Summaries []*Summary `json:"summaries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// NodesOrErr returns the Nodes value or an error if the edge
// was not loaded in eager-loading.
func (e TopicEdges) NodesOrErr() ([]*TopicNode, error) {
	if e.loadedTypes[0] {
		return e.Nodes, nil
	}
	return nil, &NotLoadedError{edge: "nodes"}
}

// PeriodHeatsOrErr returns the PeriodHeats value or an error if the edge
// was not loaded in eager-loading.
func (e TopicEdges) PeriodHeatsOrErr() ([]*TopicPeriodHeat, error) {
	if e.loadedTypes[1] {
		return e.PeriodHeats, nil
	}
	return nil, &NotLoadedError{edge: "period_heats"}
}

// SummariesOrErr returns the Summaries value or an error if the edge
// was not loaded in eager-loading.
func (e TopicEdges) SummariesOrErr() ([]*Summary, error) {
	if e.loadedTypes[2] {
		return e.Summaries, nil
	}
	return nil, &NotLoadedError{edge: "summaries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Topic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topic.FieldCurrentHeatNormalized, topic.FieldHeatPercentage, topic.FieldCategoryConfidence:
			values[i] = new(sql.NullFloat64)
		case topic.FieldID, topic.FieldIntensityTotal, topic.FieldInteractionTotal, topic.FieldSummaryID:
			values[i] = new(sql.NullInt64)
		case topic.FieldTitleKey, topic.FieldStatus, topic.FieldCategory, topic.FieldCategoryMethod:
			values[i] = new(sql.NullString)
		case topic.FieldFirstSeen, topic.FieldLastActive, topic.FieldCategoryUpdatedAt, topic.FieldCreatedAt, topic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Topic fields.
func (_m *Topic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topic.FieldTitleKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title_key", values[i])
			} else if value.Valid {
				_m.TitleKey = value.String
			}
		case topic.FieldFirstSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field first_seen", values[i])
			} else if value.Valid {
				_m.FirstSeen = value.Time
			}
		case topic.FieldLastActive:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active", values[i])
			} else if value.Valid {
				_m.LastActive = value.Time
			}
		case topic.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = topic.Status(value.String)
			}
		case topic.FieldIntensityTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field intensity_total", values[i])
			} else if value.Valid {
				_m.IntensityTotal = int(value.Int64)
			}
		case topic.FieldInteractionTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interaction_total", values[i])
			} else if value.Valid {
				_m.InteractionTotal = new(int64)
				*_m.InteractionTotal = value.Int64
			}
		case topic.FieldCurrentHeatNormalized:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_heat_normalized", values[i])
			} else if value.Valid {
				_m.CurrentHeatNormalized = new(float64)
				*_m.CurrentHeatNormalized = value.Float64
			}
		case topic.FieldHeatPercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field heat_percentage", values[i])
			} else if value.Valid {
				_m.HeatPercentage = new(float64)
				*_m.HeatPercentage = value.Float64
			}
		case topic.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = new(topic.Category)
				*_m.Category = topic.Category(value.String)
			}
		case topic.FieldCategoryConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field category_confidence", values[i])
			} else if value.Valid {
				_m.CategoryConfidence = new(float64)
				*_m.CategoryConfidence = value.Float64
			}
		case topic.FieldCategoryMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category_method", values[i])
			} else if value.Valid {
				_m.CategoryMethod = new(topic.CategoryMethod)
				*_m.CategoryMethod = topic.CategoryMethod(value.String)
			}
		case topic.FieldCategoryUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field category_updated_at", values[i])
			} else if value.Valid {
				_m.CategoryUpdatedAt = new(time.Time)
				*_m.CategoryUpdatedAt = value.Time
			}
		case topic.FieldSummaryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field summary_id", values[i])
			} else if value.Valid {
				_m.SummaryID = new(int)
				*_m.SummaryID = int(value.Int64)
			}
		case topic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case topic.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Topic.
// This includes values selected through modifiers, order, etc.
func (_m *Topic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryNodes queries the "nodes" edge of the Topic entity.
func (_m *Topic) QueryNodes() *TopicNodeQuery {
	return NewTopicClient(_m.config).QueryNodes(_m)
}

// QueryPeriodHeats queries the "period_heats" edge of the Topic entity.
func (_m *Topic) QueryPeriodHeats() *TopicPeriodHeatQuery {
	return NewTopicClient(_m.config).QueryPeriodHeats(_m)
}

// QuerySummaries queries the "summaries" edge of the Topic entity.
func (_m *Topic) QuerySummaries() *SummaryQuery {
	return NewTopicClient(_m.config).QuerySummaries(_m)
}

// Update returns a builder for updating this Topic.
// Note that you need to call Topic.Unwrap() before calling this method if this Topic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Topic) Update() *TopicUpdateOne {
	return NewTopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Topic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Topic) Unwrap() *Topic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Topic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Topic) String() string {
	var builder strings.Builder
	builder.WriteString("Topic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title_key=")
	builder.WriteString(_m.TitleKey)
	builder.WriteString(", ")
	builder.WriteString("first_seen=")
	builder.WriteString(_m.FirstSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_active=")
	builder.WriteString(_m.LastActive.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("intensity_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntensityTotal))
	builder.WriteString(", ")
	if v := _m.InteractionTotal; v != nil {
		builder.WriteString("interaction_total=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CurrentHeatNormalized; v != nil {
		builder.WriteString("current_heat_normalized=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.HeatPercentage; v != nil {
		builder.WriteString("heat_percentage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Category; v != nil {
		builder.WriteString("category=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CategoryConfidence; v != nil {
		builder.WriteString("category_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CategoryMethod; v != nil {
		builder.WriteString("category_method=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CategoryUpdatedAt; v != nil {
		builder.WriteString("category_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SummaryID; v != nil {
		builder.WriteString("summary_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Topics is a parsable slice of Topic.
type Topics []*Topic
