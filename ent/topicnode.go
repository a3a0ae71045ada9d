// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
)

// TopicNode is the model entity for the TopicNode schema.
type TopicNode struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int `json:"topic_id,omitempty"`
	// SourceItemID holds the value of the "source_item_id" field.
	SourceItemID int `json:"source_item_id,omitempty"`
	// AppendedAt holds the value of the "appended_at" field.
	AppendedAt time.Time `json:"appended_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TopicNodeQuery when eager-loading is set.
	Edges        TopicNodeEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TopicNodeEdges holds the relations/edges for other nodes in the graph.
type TopicNodeEdges struct {
	// Topic holds the value of the topic edge.
	Topic *Topic `json:"topic,omitempty"`
	// SourceItem holds the value of the source_item edge.
	SourceItem *SourceItem `json:"source_item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TopicOrErr returns the Topic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicNodeEdges) TopicOrErr() (*Topic, error) {
	if e.Topic != nil {
		return e.Topic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: topic.Label}
	}
	return nil, &NotLoadedError{edge: "topic"}
}

// SourceItemOrErr returns the SourceItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TopicNodeEdges) SourceItemOrErr() (*SourceItem, error) {
	if e.SourceItem != nil {
		return e.SourceItem, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: sourceitem.Label}
	}
	return nil, &NotLoadedError{edge: "source_item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TopicNode) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case topicnode.FieldID, topicnode.FieldTopicID, topicnode.FieldSourceItemID:
			values[i] = new(sql.NullInt64)
		case topicnode.FieldAppendedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TopicNode fields.
func (_m *TopicNode) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case topicnode.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case topicnode.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				_m.TopicID = int(value.Int64)
			}
		case topicnode.FieldSourceItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_item_id", values[i])
			} else if value.Valid {
				_m.SourceItemID = int(value.Int64)
			}
		case topicnode.FieldAppendedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field appended_at", values[i])
			} else if value.Valid {
				_m.AppendedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TopicNode.
// This includes values selected through modifiers, order, etc.
func (_m *TopicNode) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopic queries the "topic" edge of the TopicNode entity.
func (_m *TopicNode) QueryTopic() *TopicQuery {
	return NewTopicNodeClient(_m.config).QueryTopic(_m)
}

// QuerySourceItem queries the "source_item" edge of the TopicNode entity.
func (_m *TopicNode) QuerySourceItem() *SourceItemQuery {
	return NewTopicNodeClient(_m.config).QuerySourceItem(_m)
}

// Update returns a builder for updating this TopicNode.
// Note that you need to call TopicNode.Unwrap() before calling this method if this TopicNode
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TopicNode) Update() *TopicNodeUpdateOne {
	return NewTopicNodeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TopicNode entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TopicNode) Unwrap() *TopicNode {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TopicNode is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TopicNode) String() string {
	var builder strings.Builder
	builder.WriteString("TopicNode(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicID))
	builder.WriteString(", ")
	builder.WriteString("source_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourceItemID))
	builder.WriteString(", ")
	builder.WriteString("appended_at=")
	builder.WriteString(_m.AppendedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TopicNodes is a parsable slice of TopicNode.
type TopicNodes []*TopicNode
