// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/sourceitem"
)

// SourceItem is the model entity for the SourceItem schema.
type SourceItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary *string `json:"summary,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// MD5 of url
	URLHash string `json:"url_hash,omitempty"`
	// MD5 of title+summary, used for change detection
	ContentHash string `json:"content_hash,omitempty"`
	// platform:urlHash:runId, unique per ingestion run
	DedupKey string `json:"dedup_key,omitempty"`
	// PublishedAt holds the value of the "published_at" field.
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	// Free-form platform interaction counters, kept verbatim
	Interactions map[string]interface{} `json:"interactions,omitempty"`
	// Platform-native heat score; absent for platforms without one
	RawHeat *float64 `json:"raw_heat,omitempty"`
	// Window-normalized weighted heat, sums to 1.0 per window
	NormalizedHeat *float64 `json:"normalized_heat,omitempty"`
	// Collection window tag, e.g. 2025-11-07_AM
	Window string `json:"window,omitempty"`
	// Set exactly once, when the item leaves pending_period
	ClusterID *string `json:"cluster_id,omitempty"`
	// Final cluster size once clustered
	OccurrenceCount int `json:"occurrence_count,omitempty"`
	// Status holds the value of the "status" field.
	Status sourceitem.Status `json:"status,omitempty"`
	// EmbeddingID holds the value of the "embedding_id" field.
	EmbeddingID *int `json:"embedding_id,omitempty"`
	// Ingestion run that produced this row
	RunID string `json:"run_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SourceItemQuery when eager-loading is set.
	Edges        SourceItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SourceItemEdges holds the relations/edges for other nodes in the graph.
type SourceItemEdges struct {
	// TopicNodes holds the value of the topic_nodes edge.
	TopicNodes []*TopicNode `json:"topic_nodes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TopicNodesOrErr returns the TopicNodes value or an error if the edge
// was not loaded in eager-loading.
func (e SourceItemEdges) TopicNodesOrErr() ([]*TopicNode, error) {
	if e.loadedTypes[0] {
		return e.TopicNodes, nil
	}
	return nil, &NotLoadedError{edge: "topic_nodes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourceitem.FieldInteractions:
			values[i] = new([]byte)
		case sourceitem.FieldRawHeat, sourceitem.FieldNormalizedHeat:
			values[i] = new(sql.NullFloat64)
		case sourceitem.FieldID, sourceitem.FieldOccurrenceCount, sourceitem.FieldEmbeddingID:
			values[i] = new(sql.NullInt64)
		case sourceitem.FieldPlatform, sourceitem.FieldTitle, sourceitem.FieldSummary, sourceitem.FieldURL, sourceitem.FieldURLHash, sourceitem.FieldContentHash, sourceitem.FieldDedupKey, sourceitem.FieldWindow, sourceitem.FieldClusterID, sourceitem.FieldStatus, sourceitem.FieldRunID:
			values[i] = new(sql.NullString)
		case sourceitem.FieldPublishedAt, sourceitem.FieldFetchedAt, sourceitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceItem fields.
func (_m *SourceItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourceitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sourceitem.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case sourceitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case sourceitem.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = new(string)
				*_m.Summary = value.String
			}
		case sourceitem.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case sourceitem.FieldURLHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url_hash", values[i])
			} else if value.Valid {
				_m.URLHash = value.String
			}
		case sourceitem.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case sourceitem.FieldDedupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dedup_key", values[i])
			} else if value.Valid {
				_m.DedupKey = value.String
			}
		case sourceitem.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case sourceitem.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		case sourceitem.FieldInteractions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interactions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interactions); err != nil {
					return fmt.Errorf("unmarshal field interactions: %w", err)
				}
			}
		case sourceitem.FieldRawHeat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_heat", values[i])
			} else if value.Valid {
				_m.RawHeat = new(float64)
				*_m.RawHeat = value.Float64
			}
		case sourceitem.FieldNormalizedHeat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_heat", values[i])
			} else if value.Valid {
				_m.NormalizedHeat = new(float64)
				*_m.NormalizedHeat = value.Float64
			}
		case sourceitem.FieldWindow:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field window", values[i])
			} else if value.Valid {
				_m.Window = value.String
			}
		case sourceitem.FieldClusterID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cluster_id", values[i])
			} else if value.Valid {
				_m.ClusterID = new(string)
				*_m.ClusterID = value.String
			}
		case sourceitem.FieldOccurrenceCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field occurrence_count", values[i])
			} else if value.Valid {
				_m.OccurrenceCount = int(value.Int64)
			}
		case sourceitem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = sourceitem.Status(value.String)
			}
		case sourceitem.FieldEmbeddingID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field embedding_id", values[i])
			} else if value.Valid {
				_m.EmbeddingID = new(int)
				*_m.EmbeddingID = int(value.Int64)
			}
		case sourceitem.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case sourceitem.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SourceItem.
// This includes values selected through modifiers, order, etc.
func (_m *SourceItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTopicNodes queries the "topic_nodes" edge of the SourceItem entity.
func (_m *SourceItem) QueryTopicNodes() *TopicNodeQuery {
	return NewSourceItemClient(_m.config).QueryTopicNodes(_m)
}

// Update returns a builder for updating this SourceItem.
// Note that you need to call SourceItem.Unwrap() before calling this method if this SourceItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceItem) Update() *SourceItemUpdateOne {
	return NewSourceItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceItem) Unwrap() *SourceItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceItem) String() string {
	var builder strings.Builder
	builder.WriteString("SourceItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.Summary; v != nil {
		builder.WriteString("summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("url_hash=")
	builder.WriteString(_m.URLHash)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("dedup_key=")
	builder.WriteString(_m.DedupKey)
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("interactions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interactions))
	builder.WriteString(", ")
	if v := _m.RawHeat; v != nil {
		builder.WriteString("raw_heat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.NormalizedHeat; v != nil {
		builder.WriteString("normalized_heat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("window=")
	builder.WriteString(_m.Window)
	builder.WriteString(", ")
	if v := _m.ClusterID; v != nil {
		builder.WriteString("cluster_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("occurrence_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.OccurrenceCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.EmbeddingID; v != nil {
		builder.WriteString("embedding_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceItems is a parsable slice of SourceItem.
type SourceItems []*SourceItem
