// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/ingestrun"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/predicate"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategoryDayMetrics = "CategoryDayMetrics"
	TypeEmbedding          = "Embedding"
	TypeIngestRun          = "IngestRun"
	TypeLLMJudgement       = "LLMJudgement"
	TypePipelineRun        = "PipelineRun"
	TypeSourceItem         = "SourceItem"
	TypeSummary            = "Summary"
	TypeTopic              = "Topic"
	TypeTopicNode          = "TopicNode"
	TypeTopicPeriodHeat    = "TopicPeriodHeat"
)

// CategoryDayMetricsMutation represents an operation that mutates the CategoryDayMetrics nodes in the graph.
type CategoryDayMetricsMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	date                  *string
	category              *categorydaymetrics.Category
	topic_count           *int
	addtopic_count        *int
	active_topic_count    *int
	addactive_topic_count *int
	avg_duration_hours    *float64
	addavg_duration_hours *float64
	max_duration_hours    *float64
	addmax_duration_hours *float64
	intensity_sum         *int
	addintensity_sum      *int
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*CategoryDayMetrics, error)
	predicates            []predicate.CategoryDayMetrics
}

var _ ent.Mutation = (*CategoryDayMetricsMutation)(nil)

// categorydaymetricsOption allows management of the mutation configuration using functional options.
type categorydaymetricsOption func(*CategoryDayMetricsMutation)

// newCategoryDayMetricsMutation creates new mutation for the CategoryDayMetrics entity.
func newCategoryDayMetricsMutation(c config, op Op, opts ...categorydaymetricsOption) *CategoryDayMetricsMutation {
	m := &CategoryDayMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeCategoryDayMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryDayMetricsID sets the ID field of the mutation.
func withCategoryDayMetricsID(id int) categorydaymetricsOption {
	return func(m *CategoryDayMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *CategoryDayMetrics
		)
		m.oldValue = func(ctx context.Context) (*CategoryDayMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CategoryDayMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategoryDayMetrics sets the old CategoryDayMetrics of the mutation.
func withCategoryDayMetrics(node *CategoryDayMetrics) categorydaymetricsOption {
	return func(m *CategoryDayMetricsMutation) {
		m.oldValue = func(context.Context) (*CategoryDayMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryDayMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryDayMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryDayMetricsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryDayMetricsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CategoryDayMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDate sets the "date" field.
func (m *CategoryDayMetricsMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *CategoryDayMetricsMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *CategoryDayMetricsMutation) ResetDate() {
	m.date = nil
}

// SetCategory sets the "category" field.
func (m *CategoryDayMetricsMutation) SetCategory(c categorydaymetrics.Category) {
	m.category = &c
}

// Category returns the value of the "category" field in the mutation.
func (m *CategoryDayMetricsMutation) Category() (r categorydaymetrics.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldCategory(ctx context.Context) (v categorydaymetrics.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *CategoryDayMetricsMutation) ResetCategory() {
	m.category = nil
}

// SetTopicCount sets the "topic_count" field.
func (m *CategoryDayMetricsMutation) SetTopicCount(i int) {
	m.topic_count = &i
	m.addtopic_count = nil
}

// TopicCount returns the value of the "topic_count" field in the mutation.
func (m *CategoryDayMetricsMutation) TopicCount() (r int, exists bool) {
	v := m.topic_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicCount returns the old "topic_count" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldTopicCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicCount: %w", err)
	}
	return oldValue.TopicCount, nil
}

// AddTopicCount adds i to the "topic_count" field.
func (m *CategoryDayMetricsMutation) AddTopicCount(i int) {
	if m.addtopic_count != nil {
		*m.addtopic_count += i
	} else {
		m.addtopic_count = &i
	}
}

// AddedTopicCount returns the value that was added to the "topic_count" field in this mutation.
func (m *CategoryDayMetricsMutation) AddedTopicCount() (r int, exists bool) {
	v := m.addtopic_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicCount resets all changes to the "topic_count" field.
func (m *CategoryDayMetricsMutation) ResetTopicCount() {
	m.topic_count = nil
	m.addtopic_count = nil
}

// SetActiveTopicCount sets the "active_topic_count" field.
func (m *CategoryDayMetricsMutation) SetActiveTopicCount(i int) {
	m.active_topic_count = &i
	m.addactive_topic_count = nil
}

// ActiveTopicCount returns the value of the "active_topic_count" field in the mutation.
func (m *CategoryDayMetricsMutation) ActiveTopicCount() (r int, exists bool) {
	v := m.active_topic_count
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveTopicCount returns the old "active_topic_count" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldActiveTopicCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveTopicCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveTopicCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveTopicCount: %w", err)
	}
	return oldValue.ActiveTopicCount, nil
}

// AddActiveTopicCount adds i to the "active_topic_count" field.
func (m *CategoryDayMetricsMutation) AddActiveTopicCount(i int) {
	if m.addactive_topic_count != nil {
		*m.addactive_topic_count += i
	} else {
		m.addactive_topic_count = &i
	}
}

// AddedActiveTopicCount returns the value that was added to the "active_topic_count" field in this mutation.
func (m *CategoryDayMetricsMutation) AddedActiveTopicCount() (r int, exists bool) {
	v := m.addactive_topic_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveTopicCount resets all changes to the "active_topic_count" field.
func (m *CategoryDayMetricsMutation) ResetActiveTopicCount() {
	m.active_topic_count = nil
	m.addactive_topic_count = nil
}

// SetAvgDurationHours sets the "avg_duration_hours" field.
func (m *CategoryDayMetricsMutation) SetAvgDurationHours(f float64) {
	m.avg_duration_hours = &f
	m.addavg_duration_hours = nil
}

// AvgDurationHours returns the value of the "avg_duration_hours" field in the mutation.
func (m *CategoryDayMetricsMutation) AvgDurationHours() (r float64, exists bool) {
	v := m.avg_duration_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDurationHours returns the old "avg_duration_hours" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldAvgDurationHours(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDurationHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDurationHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDurationHours: %w", err)
	}
	return oldValue.AvgDurationHours, nil
}

// AddAvgDurationHours adds f to the "avg_duration_hours" field.
func (m *CategoryDayMetricsMutation) AddAvgDurationHours(f float64) {
	if m.addavg_duration_hours != nil {
		*m.addavg_duration_hours += f
	} else {
		m.addavg_duration_hours = &f
	}
}

// AddedAvgDurationHours returns the value that was added to the "avg_duration_hours" field in this mutation.
func (m *CategoryDayMetricsMutation) AddedAvgDurationHours() (r float64, exists bool) {
	v := m.addavg_duration_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgDurationHours clears the value of the "avg_duration_hours" field.
func (m *CategoryDayMetricsMutation) ClearAvgDurationHours() {
	m.avg_duration_hours = nil
	m.addavg_duration_hours = nil
	m.clearedFields[categorydaymetrics.FieldAvgDurationHours] = struct{}{}
}

// AvgDurationHoursCleared returns if the "avg_duration_hours" field was cleared in this mutation.
func (m *CategoryDayMetricsMutation) AvgDurationHoursCleared() bool {
	_, ok := m.clearedFields[categorydaymetrics.FieldAvgDurationHours]
	return ok
}

// ResetAvgDurationHours resets all changes to the "avg_duration_hours" field.
func (m *CategoryDayMetricsMutation) ResetAvgDurationHours() {
	m.avg_duration_hours = nil
	m.addavg_duration_hours = nil
	delete(m.clearedFields, categorydaymetrics.FieldAvgDurationHours)
}

// SetMaxDurationHours sets the "max_duration_hours" field.
func (m *CategoryDayMetricsMutation) SetMaxDurationHours(f float64) {
	m.max_duration_hours = &f
	m.addmax_duration_hours = nil
}

// MaxDurationHours returns the value of the "max_duration_hours" field in the mutation.
func (m *CategoryDayMetricsMutation) MaxDurationHours() (r float64, exists bool) {
	v := m.max_duration_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDurationHours returns the old "max_duration_hours" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldMaxDurationHours(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDurationHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDurationHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDurationHours: %w", err)
	}
	return oldValue.MaxDurationHours, nil
}

// AddMaxDurationHours adds f to the "max_duration_hours" field.
func (m *CategoryDayMetricsMutation) AddMaxDurationHours(f float64) {
	if m.addmax_duration_hours != nil {
		*m.addmax_duration_hours += f
	} else {
		m.addmax_duration_hours = &f
	}
}

// AddedMaxDurationHours returns the value that was added to the "max_duration_hours" field in this mutation.
func (m *CategoryDayMetricsMutation) AddedMaxDurationHours() (r float64, exists bool) {
	v := m.addmax_duration_hours
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxDurationHours clears the value of the "max_duration_hours" field.
func (m *CategoryDayMetricsMutation) ClearMaxDurationHours() {
	m.max_duration_hours = nil
	m.addmax_duration_hours = nil
	m.clearedFields[categorydaymetrics.FieldMaxDurationHours] = struct{}{}
}

// MaxDurationHoursCleared returns if the "max_duration_hours" field was cleared in this mutation.
func (m *CategoryDayMetricsMutation) MaxDurationHoursCleared() bool {
	_, ok := m.clearedFields[categorydaymetrics.FieldMaxDurationHours]
	return ok
}

// ResetMaxDurationHours resets all changes to the "max_duration_hours" field.
func (m *CategoryDayMetricsMutation) ResetMaxDurationHours() {
	m.max_duration_hours = nil
	m.addmax_duration_hours = nil
	delete(m.clearedFields, categorydaymetrics.FieldMaxDurationHours)
}

// SetIntensitySum sets the "intensity_sum" field.
func (m *CategoryDayMetricsMutation) SetIntensitySum(i int) {
	m.intensity_sum = &i
	m.addintensity_sum = nil
}

// IntensitySum returns the value of the "intensity_sum" field in the mutation.
func (m *CategoryDayMetricsMutation) IntensitySum() (r int, exists bool) {
	v := m.intensity_sum
	if v == nil {
		return
	}
	return *v, true
}

// OldIntensitySum returns the old "intensity_sum" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldIntensitySum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntensitySum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntensitySum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntensitySum: %w", err)
	}
	return oldValue.IntensitySum, nil
}

// AddIntensitySum adds i to the "intensity_sum" field.
func (m *CategoryDayMetricsMutation) AddIntensitySum(i int) {
	if m.addintensity_sum != nil {
		*m.addintensity_sum += i
	} else {
		m.addintensity_sum = &i
	}
}

// AddedIntensitySum returns the value that was added to the "intensity_sum" field in this mutation.
func (m *CategoryDayMetricsMutation) AddedIntensitySum() (r int, exists bool) {
	v := m.addintensity_sum
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntensitySum resets all changes to the "intensity_sum" field.
func (m *CategoryDayMetricsMutation) ResetIntensitySum() {
	m.intensity_sum = nil
	m.addintensity_sum = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CategoryDayMetricsMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CategoryDayMetricsMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CategoryDayMetrics entity.
// If the CategoryDayMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryDayMetricsMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CategoryDayMetricsMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CategoryDayMetricsMutation builder.
func (m *CategoryDayMetricsMutation) Where(ps ...predicate.CategoryDayMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryDayMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryDayMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CategoryDayMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryDayMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryDayMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CategoryDayMetrics).
func (m *CategoryDayMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryDayMetricsMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.date != nil {
		fields = append(fields, categorydaymetrics.FieldDate)
	}
	if m.category != nil {
		fields = append(fields, categorydaymetrics.FieldCategory)
	}
	if m.topic_count != nil {
		fields = append(fields, categorydaymetrics.FieldTopicCount)
	}
	if m.active_topic_count != nil {
		fields = append(fields, categorydaymetrics.FieldActiveTopicCount)
	}
	if m.avg_duration_hours != nil {
		fields = append(fields, categorydaymetrics.FieldAvgDurationHours)
	}
	if m.max_duration_hours != nil {
		fields = append(fields, categorydaymetrics.FieldMaxDurationHours)
	}
	if m.intensity_sum != nil {
		fields = append(fields, categorydaymetrics.FieldIntensitySum)
	}
	if m.updated_at != nil {
		fields = append(fields, categorydaymetrics.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryDayMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case categorydaymetrics.FieldDate:
		return m.Date()
	case categorydaymetrics.FieldCategory:
		return m.Category()
	case categorydaymetrics.FieldTopicCount:
		return m.TopicCount()
	case categorydaymetrics.FieldActiveTopicCount:
		return m.ActiveTopicCount()
	case categorydaymetrics.FieldAvgDurationHours:
		return m.AvgDurationHours()
	case categorydaymetrics.FieldMaxDurationHours:
		return m.MaxDurationHours()
	case categorydaymetrics.FieldIntensitySum:
		return m.IntensitySum()
	case categorydaymetrics.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryDayMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case categorydaymetrics.FieldDate:
		return m.OldDate(ctx)
	case categorydaymetrics.FieldCategory:
		return m.OldCategory(ctx)
	case categorydaymetrics.FieldTopicCount:
		return m.OldTopicCount(ctx)
	case categorydaymetrics.FieldActiveTopicCount:
		return m.OldActiveTopicCount(ctx)
	case categorydaymetrics.FieldAvgDurationHours:
		return m.OldAvgDurationHours(ctx)
	case categorydaymetrics.FieldMaxDurationHours:
		return m.OldMaxDurationHours(ctx)
	case categorydaymetrics.FieldIntensitySum:
		return m.OldIntensitySum(ctx)
	case categorydaymetrics.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CategoryDayMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryDayMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case categorydaymetrics.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case categorydaymetrics.FieldCategory:
		v, ok := value.(categorydaymetrics.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case categorydaymetrics.FieldTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicCount(v)
		return nil
	case categorydaymetrics.FieldActiveTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveTopicCount(v)
		return nil
	case categorydaymetrics.FieldAvgDurationHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDurationHours(v)
		return nil
	case categorydaymetrics.FieldMaxDurationHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDurationHours(v)
		return nil
	case categorydaymetrics.FieldIntensitySum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntensitySum(v)
		return nil
	case categorydaymetrics.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryDayMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryDayMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_count != nil {
		fields = append(fields, categorydaymetrics.FieldTopicCount)
	}
	if m.addactive_topic_count != nil {
		fields = append(fields, categorydaymetrics.FieldActiveTopicCount)
	}
	if m.addavg_duration_hours != nil {
		fields = append(fields, categorydaymetrics.FieldAvgDurationHours)
	}
	if m.addmax_duration_hours != nil {
		fields = append(fields, categorydaymetrics.FieldMaxDurationHours)
	}
	if m.addintensity_sum != nil {
		fields = append(fields, categorydaymetrics.FieldIntensitySum)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryDayMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case categorydaymetrics.FieldTopicCount:
		return m.AddedTopicCount()
	case categorydaymetrics.FieldActiveTopicCount:
		return m.AddedActiveTopicCount()
	case categorydaymetrics.FieldAvgDurationHours:
		return m.AddedAvgDurationHours()
	case categorydaymetrics.FieldMaxDurationHours:
		return m.AddedMaxDurationHours()
	case categorydaymetrics.FieldIntensitySum:
		return m.AddedIntensitySum()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryDayMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case categorydaymetrics.FieldTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicCount(v)
		return nil
	case categorydaymetrics.FieldActiveTopicCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveTopicCount(v)
		return nil
	case categorydaymetrics.FieldAvgDurationHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDurationHours(v)
		return nil
	case categorydaymetrics.FieldMaxDurationHours:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDurationHours(v)
		return nil
	case categorydaymetrics.FieldIntensitySum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntensitySum(v)
		return nil
	}
	return fmt.Errorf("unknown CategoryDayMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryDayMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(categorydaymetrics.FieldAvgDurationHours) {
		fields = append(fields, categorydaymetrics.FieldAvgDurationHours)
	}
	if m.FieldCleared(categorydaymetrics.FieldMaxDurationHours) {
		fields = append(fields, categorydaymetrics.FieldMaxDurationHours)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryDayMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryDayMetricsMutation) ClearField(name string) error {
	switch name {
	case categorydaymetrics.FieldAvgDurationHours:
		m.ClearAvgDurationHours()
		return nil
	case categorydaymetrics.FieldMaxDurationHours:
		m.ClearMaxDurationHours()
		return nil
	}
	return fmt.Errorf("unknown CategoryDayMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryDayMetricsMutation) ResetField(name string) error {
	switch name {
	case categorydaymetrics.FieldDate:
		m.ResetDate()
		return nil
	case categorydaymetrics.FieldCategory:
		m.ResetCategory()
		return nil
	case categorydaymetrics.FieldTopicCount:
		m.ResetTopicCount()
		return nil
	case categorydaymetrics.FieldActiveTopicCount:
		m.ResetActiveTopicCount()
		return nil
	case categorydaymetrics.FieldAvgDurationHours:
		m.ResetAvgDurationHours()
		return nil
	case categorydaymetrics.FieldMaxDurationHours:
		m.ResetMaxDurationHours()
		return nil
	case categorydaymetrics.FieldIntensitySum:
		m.ResetIntensitySum()
		return nil
	case categorydaymetrics.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CategoryDayMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryDayMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryDayMetricsMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryDayMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryDayMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryDayMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryDayMetricsMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryDayMetricsMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CategoryDayMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryDayMetricsMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CategoryDayMetrics edge %s", name)
}

// EmbeddingMutation represents an operation that mutates the Embedding nodes in the graph.
type EmbeddingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	object_type   *embedding.ObjectType
	object_id     *int
	addobject_id  *int
	provider      *string
	model         *string
	vector        *[]float32
	appendvector  []float32
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Embedding, error)
	predicates    []predicate.Embedding
}

var _ ent.Mutation = (*EmbeddingMutation)(nil)

// embeddingOption allows management of the mutation configuration using functional options.
type embeddingOption func(*EmbeddingMutation)

// newEmbeddingMutation creates new mutation for the Embedding entity.
func newEmbeddingMutation(c config, op Op, opts ...embeddingOption) *EmbeddingMutation {
	m := &EmbeddingMutation{
		config:        c,
		op:            op,
		typ:           TypeEmbedding,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEmbeddingID sets the ID field of the mutation.
func withEmbeddingID(id int) embeddingOption {
	return func(m *EmbeddingMutation) {
		var (
			err   error
			once  sync.Once
			value *Embedding
		)
		m.oldValue = func(ctx context.Context) (*Embedding, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Embedding.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEmbedding sets the old Embedding of the mutation.
func withEmbedding(node *Embedding) embeddingOption {
	return func(m *EmbeddingMutation) {
		m.oldValue = func(context.Context) (*Embedding, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EmbeddingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EmbeddingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EmbeddingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EmbeddingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Embedding.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetObjectType sets the "object_type" field.
func (m *EmbeddingMutation) SetObjectType(et embedding.ObjectType) {
	m.object_type = &et
}

// ObjectType returns the value of the "object_type" field in the mutation.
func (m *EmbeddingMutation) ObjectType() (r embedding.ObjectType, exists bool) {
	v := m.object_type
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectType returns the old "object_type" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldObjectType(ctx context.Context) (v embedding.ObjectType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectType: %w", err)
	}
	return oldValue.ObjectType, nil
}

// ResetObjectType resets all changes to the "object_type" field.
func (m *EmbeddingMutation) ResetObjectType() {
	m.object_type = nil
}

// SetObjectID sets the "object_id" field.
func (m *EmbeddingMutation) SetObjectID(i int) {
	m.object_id = &i
	m.addobject_id = nil
}

// ObjectID returns the value of the "object_id" field in the mutation.
func (m *EmbeddingMutation) ObjectID() (r int, exists bool) {
	v := m.object_id
	if v == nil {
		return
	}
	return *v, true
}

// OldObjectID returns the old "object_id" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldObjectID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObjectID: %w", err)
	}
	return oldValue.ObjectID, nil
}

// AddObjectID adds i to the "object_id" field.
func (m *EmbeddingMutation) AddObjectID(i int) {
	if m.addobject_id != nil {
		*m.addobject_id += i
	} else {
		m.addobject_id = &i
	}
}

// AddedObjectID returns the value that was added to the "object_id" field in this mutation.
func (m *EmbeddingMutation) AddedObjectID() (r int, exists bool) {
	v := m.addobject_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetObjectID resets all changes to the "object_id" field.
func (m *EmbeddingMutation) ResetObjectID() {
	m.object_id = nil
	m.addobject_id = nil
}

// SetProvider sets the "provider" field.
func (m *EmbeddingMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *EmbeddingMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *EmbeddingMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *EmbeddingMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *EmbeddingMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *EmbeddingMutation) ResetModel() {
	m.model = nil
}

// SetVector sets the "vector" field.
func (m *EmbeddingMutation) SetVector(f []float32) {
	m.vector = &f
	m.appendvector = nil
}

// Vector returns the value of the "vector" field in the mutation.
func (m *EmbeddingMutation) Vector() (r []float32, exists bool) {
	v := m.vector
	if v == nil {
		return
	}
	return *v, true
}

// OldVector returns the old "vector" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldVector(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVector: %w", err)
	}
	return oldValue.Vector, nil
}

// AppendVector adds f to the "vector" field.
func (m *EmbeddingMutation) AppendVector(f []float32) {
	m.appendvector = append(m.appendvector, f...)
}

// AppendedVector returns the list of values that were appended to the "vector" field in this mutation.
func (m *EmbeddingMutation) AppendedVector() ([]float32, bool) {
	if len(m.appendvector) == 0 {
		return nil, false
	}
	return m.appendvector, true
}

// ResetVector resets all changes to the "vector" field.
func (m *EmbeddingMutation) ResetVector() {
	m.vector = nil
	m.appendvector = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EmbeddingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EmbeddingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Embedding entity.
// If the Embedding object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EmbeddingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EmbeddingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EmbeddingMutation builder.
func (m *EmbeddingMutation) Where(ps ...predicate.Embedding) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EmbeddingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EmbeddingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Embedding, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EmbeddingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EmbeddingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Embedding).
func (m *EmbeddingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EmbeddingMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.object_type != nil {
		fields = append(fields, embedding.FieldObjectType)
	}
	if m.object_id != nil {
		fields = append(fields, embedding.FieldObjectID)
	}
	if m.provider != nil {
		fields = append(fields, embedding.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, embedding.FieldModel)
	}
	if m.vector != nil {
		fields = append(fields, embedding.FieldVector)
	}
	if m.created_at != nil {
		fields = append(fields, embedding.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EmbeddingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case embedding.FieldObjectType:
		return m.ObjectType()
	case embedding.FieldObjectID:
		return m.ObjectID()
	case embedding.FieldProvider:
		return m.Provider()
	case embedding.FieldModel:
		return m.Model()
	case embedding.FieldVector:
		return m.Vector()
	case embedding.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EmbeddingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case embedding.FieldObjectType:
		return m.OldObjectType(ctx)
	case embedding.FieldObjectID:
		return m.OldObjectID(ctx)
	case embedding.FieldProvider:
		return m.OldProvider(ctx)
	case embedding.FieldModel:
		return m.OldModel(ctx)
	case embedding.FieldVector:
		return m.OldVector(ctx)
	case embedding.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Embedding field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbeddingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case embedding.FieldObjectType:
		v, ok := value.(embedding.ObjectType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectType(v)
		return nil
	case embedding.FieldObjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObjectID(v)
		return nil
	case embedding.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case embedding.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case embedding.FieldVector:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVector(v)
		return nil
	case embedding.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Embedding field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EmbeddingMutation) AddedFields() []string {
	var fields []string
	if m.addobject_id != nil {
		fields = append(fields, embedding.FieldObjectID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EmbeddingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case embedding.FieldObjectID:
		return m.AddedObjectID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EmbeddingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case embedding.FieldObjectID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddObjectID(v)
		return nil
	}
	return fmt.Errorf("unknown Embedding numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EmbeddingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EmbeddingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EmbeddingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Embedding nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EmbeddingMutation) ResetField(name string) error {
	switch name {
	case embedding.FieldObjectType:
		m.ResetObjectType()
		return nil
	case embedding.FieldObjectID:
		m.ResetObjectID()
		return nil
	case embedding.FieldProvider:
		m.ResetProvider()
		return nil
	case embedding.FieldModel:
		m.ResetModel()
		return nil
	case embedding.FieldVector:
		m.ResetVector()
		return nil
	case embedding.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Embedding field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EmbeddingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EmbeddingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EmbeddingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EmbeddingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EmbeddingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EmbeddingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EmbeddingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Embedding unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EmbeddingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Embedding edge %s", name)
}

// IngestRunMutation represents an operation that mutates the IngestRun nodes in the graph.
type IngestRunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	status              *ingestrun.Status
	window              *string
	started_at          *time.Time
	ended_at            *time.Time
	duration_ms         *int
	addduration_ms      *int
	platform_count      *int
	addplatform_count   *int
	platform_success    *int
	addplatform_success *int
	item_count          *int
	additem_count       *int
	new_item_count      *int
	addnew_item_count   *int
	platform_results    *map[string]interface{}
	error_summary       *string
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*IngestRun, error)
	predicates          []predicate.IngestRun
}

var _ ent.Mutation = (*IngestRunMutation)(nil)

// ingestrunOption allows management of the mutation configuration using functional options.
type ingestrunOption func(*IngestRunMutation)

// newIngestRunMutation creates new mutation for the IngestRun entity.
func newIngestRunMutation(c config, op Op, opts ...ingestrunOption) *IngestRunMutation {
	m := &IngestRunMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestRunID sets the ID field of the mutation.
func withIngestRunID(id string) ingestrunOption {
	return func(m *IngestRunMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestRun
		)
		m.oldValue = func(ctx context.Context) (*IngestRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestRun sets the old IngestRun of the mutation.
func withIngestRun(node *IngestRun) ingestrunOption {
	return func(m *IngestRunMutation) {
		m.oldValue = func(context.Context) (*IngestRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestRun entities.
func (m *IngestRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *IngestRunMutation) SetStatus(i ingestrun.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *IngestRunMutation) Status() (r ingestrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStatus(ctx context.Context) (v ingestrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *IngestRunMutation) ResetStatus() {
	m.status = nil
}

// SetWindow sets the "window" field.
func (m *IngestRunMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *IngestRunMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *IngestRunMutation) ResetWindow() {
	m.window = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IngestRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IngestRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IngestRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *IngestRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *IngestRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *IngestRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[ingestrun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *IngestRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *IngestRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, ingestrun.FieldEndedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *IngestRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *IngestRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *IngestRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *IngestRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *IngestRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[ingestrun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *IngestRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *IngestRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, ingestrun.FieldDurationMs)
}

// SetPlatformCount sets the "platform_count" field.
func (m *IngestRunMutation) SetPlatformCount(i int) {
	m.platform_count = &i
	m.addplatform_count = nil
}

// PlatformCount returns the value of the "platform_count" field in the mutation.
func (m *IngestRunMutation) PlatformCount() (r int, exists bool) {
	v := m.platform_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformCount returns the old "platform_count" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldPlatformCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformCount: %w", err)
	}
	return oldValue.PlatformCount, nil
}

// AddPlatformCount adds i to the "platform_count" field.
func (m *IngestRunMutation) AddPlatformCount(i int) {
	if m.addplatform_count != nil {
		*m.addplatform_count += i
	} else {
		m.addplatform_count = &i
	}
}

// AddedPlatformCount returns the value that was added to the "platform_count" field in this mutation.
func (m *IngestRunMutation) AddedPlatformCount() (r int, exists bool) {
	v := m.addplatform_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlatformCount resets all changes to the "platform_count" field.
func (m *IngestRunMutation) ResetPlatformCount() {
	m.platform_count = nil
	m.addplatform_count = nil
}

// SetPlatformSuccess sets the "platform_success" field.
func (m *IngestRunMutation) SetPlatformSuccess(i int) {
	m.platform_success = &i
	m.addplatform_success = nil
}

// PlatformSuccess returns the value of the "platform_success" field in the mutation.
func (m *IngestRunMutation) PlatformSuccess() (r int, exists bool) {
	v := m.platform_success
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformSuccess returns the old "platform_success" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldPlatformSuccess(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformSuccess: %w", err)
	}
	return oldValue.PlatformSuccess, nil
}

// AddPlatformSuccess adds i to the "platform_success" field.
func (m *IngestRunMutation) AddPlatformSuccess(i int) {
	if m.addplatform_success != nil {
		*m.addplatform_success += i
	} else {
		m.addplatform_success = &i
	}
}

// AddedPlatformSuccess returns the value that was added to the "platform_success" field in this mutation.
func (m *IngestRunMutation) AddedPlatformSuccess() (r int, exists bool) {
	v := m.addplatform_success
	if v == nil {
		return
	}
	return *v, true
}

// ResetPlatformSuccess resets all changes to the "platform_success" field.
func (m *IngestRunMutation) ResetPlatformSuccess() {
	m.platform_success = nil
	m.addplatform_success = nil
}

// SetItemCount sets the "item_count" field.
func (m *IngestRunMutation) SetItemCount(i int) {
	m.item_count = &i
	m.additem_count = nil
}

// ItemCount returns the value of the "item_count" field in the mutation.
func (m *IngestRunMutation) ItemCount() (r int, exists bool) {
	v := m.item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldItemCount returns the old "item_count" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemCount: %w", err)
	}
	return oldValue.ItemCount, nil
}

// AddItemCount adds i to the "item_count" field.
func (m *IngestRunMutation) AddItemCount(i int) {
	if m.additem_count != nil {
		*m.additem_count += i
	} else {
		m.additem_count = &i
	}
}

// AddedItemCount returns the value that was added to the "item_count" field in this mutation.
func (m *IngestRunMutation) AddedItemCount() (r int, exists bool) {
	v := m.additem_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemCount resets all changes to the "item_count" field.
func (m *IngestRunMutation) ResetItemCount() {
	m.item_count = nil
	m.additem_count = nil
}

// SetNewItemCount sets the "new_item_count" field.
func (m *IngestRunMutation) SetNewItemCount(i int) {
	m.new_item_count = &i
	m.addnew_item_count = nil
}

// NewItemCount returns the value of the "new_item_count" field in the mutation.
func (m *IngestRunMutation) NewItemCount() (r int, exists bool) {
	v := m.new_item_count
	if v == nil {
		return
	}
	return *v, true
}

// OldNewItemCount returns the old "new_item_count" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldNewItemCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewItemCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewItemCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewItemCount: %w", err)
	}
	return oldValue.NewItemCount, nil
}

// AddNewItemCount adds i to the "new_item_count" field.
func (m *IngestRunMutation) AddNewItemCount(i int) {
	if m.addnew_item_count != nil {
		*m.addnew_item_count += i
	} else {
		m.addnew_item_count = &i
	}
}

// AddedNewItemCount returns the value that was added to the "new_item_count" field in this mutation.
func (m *IngestRunMutation) AddedNewItemCount() (r int, exists bool) {
	v := m.addnew_item_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetNewItemCount resets all changes to the "new_item_count" field.
func (m *IngestRunMutation) ResetNewItemCount() {
	m.new_item_count = nil
	m.addnew_item_count = nil
}

// SetPlatformResults sets the "platform_results" field.
func (m *IngestRunMutation) SetPlatformResults(value map[string]interface{}) {
	m.platform_results = &value
}

// PlatformResults returns the value of the "platform_results" field in the mutation.
func (m *IngestRunMutation) PlatformResults() (r map[string]interface{}, exists bool) {
	v := m.platform_results
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformResults returns the old "platform_results" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldPlatformResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformResults: %w", err)
	}
	return oldValue.PlatformResults, nil
}

// ClearPlatformResults clears the value of the "platform_results" field.
func (m *IngestRunMutation) ClearPlatformResults() {
	m.platform_results = nil
	m.clearedFields[ingestrun.FieldPlatformResults] = struct{}{}
}

// PlatformResultsCleared returns if the "platform_results" field was cleared in this mutation.
func (m *IngestRunMutation) PlatformResultsCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldPlatformResults]
	return ok
}

// ResetPlatformResults resets all changes to the "platform_results" field.
func (m *IngestRunMutation) ResetPlatformResults() {
	m.platform_results = nil
	delete(m.clearedFields, ingestrun.FieldPlatformResults)
}

// SetErrorSummary sets the "error_summary" field.
func (m *IngestRunMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *IngestRunMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the IngestRun entity.
// If the IngestRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestRunMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *IngestRunMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[ingestrun.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *IngestRunMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[ingestrun.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *IngestRunMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, ingestrun.FieldErrorSummary)
}

// Where appends a list predicates to the IngestRunMutation builder.
func (m *IngestRunMutation) Where(ps ...predicate.IngestRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestRun).
func (m *IngestRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.status != nil {
		fields = append(fields, ingestrun.FieldStatus)
	}
	if m.window != nil {
		fields = append(fields, ingestrun.FieldWindow)
	}
	if m.started_at != nil {
		fields = append(fields, ingestrun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, ingestrun.FieldEndedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, ingestrun.FieldDurationMs)
	}
	if m.platform_count != nil {
		fields = append(fields, ingestrun.FieldPlatformCount)
	}
	if m.platform_success != nil {
		fields = append(fields, ingestrun.FieldPlatformSuccess)
	}
	if m.item_count != nil {
		fields = append(fields, ingestrun.FieldItemCount)
	}
	if m.new_item_count != nil {
		fields = append(fields, ingestrun.FieldNewItemCount)
	}
	if m.platform_results != nil {
		fields = append(fields, ingestrun.FieldPlatformResults)
	}
	if m.error_summary != nil {
		fields = append(fields, ingestrun.FieldErrorSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldStatus:
		return m.Status()
	case ingestrun.FieldWindow:
		return m.Window()
	case ingestrun.FieldStartedAt:
		return m.StartedAt()
	case ingestrun.FieldEndedAt:
		return m.EndedAt()
	case ingestrun.FieldDurationMs:
		return m.DurationMs()
	case ingestrun.FieldPlatformCount:
		return m.PlatformCount()
	case ingestrun.FieldPlatformSuccess:
		return m.PlatformSuccess()
	case ingestrun.FieldItemCount:
		return m.ItemCount()
	case ingestrun.FieldNewItemCount:
		return m.NewItemCount()
	case ingestrun.FieldPlatformResults:
		return m.PlatformResults()
	case ingestrun.FieldErrorSummary:
		return m.ErrorSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestrun.FieldStatus:
		return m.OldStatus(ctx)
	case ingestrun.FieldWindow:
		return m.OldWindow(ctx)
	case ingestrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ingestrun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case ingestrun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case ingestrun.FieldPlatformCount:
		return m.OldPlatformCount(ctx)
	case ingestrun.FieldPlatformSuccess:
		return m.OldPlatformSuccess(ctx)
	case ingestrun.FieldItemCount:
		return m.OldItemCount(ctx)
	case ingestrun.FieldNewItemCount:
		return m.OldNewItemCount(ctx)
	case ingestrun.FieldPlatformResults:
		return m.OldPlatformResults(ctx)
	case ingestrun.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	}
	return nil, fmt.Errorf("unknown IngestRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldStatus:
		v, ok := value.(ingestrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case ingestrun.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case ingestrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ingestrun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case ingestrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case ingestrun.FieldPlatformCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformCount(v)
		return nil
	case ingestrun.FieldPlatformSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformSuccess(v)
		return nil
	case ingestrun.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemCount(v)
		return nil
	case ingestrun.FieldNewItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewItemCount(v)
		return nil
	case ingestrun.FieldPlatformResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformResults(v)
		return nil
	case ingestrun.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestRunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, ingestrun.FieldDurationMs)
	}
	if m.addplatform_count != nil {
		fields = append(fields, ingestrun.FieldPlatformCount)
	}
	if m.addplatform_success != nil {
		fields = append(fields, ingestrun.FieldPlatformSuccess)
	}
	if m.additem_count != nil {
		fields = append(fields, ingestrun.FieldItemCount)
	}
	if m.addnew_item_count != nil {
		fields = append(fields, ingestrun.FieldNewItemCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestrun.FieldDurationMs:
		return m.AddedDurationMs()
	case ingestrun.FieldPlatformCount:
		return m.AddedPlatformCount()
	case ingestrun.FieldPlatformSuccess:
		return m.AddedPlatformSuccess()
	case ingestrun.FieldItemCount:
		return m.AddedItemCount()
	case ingestrun.FieldNewItemCount:
		return m.AddedNewItemCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestrun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case ingestrun.FieldPlatformCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlatformCount(v)
		return nil
	case ingestrun.FieldPlatformSuccess:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPlatformSuccess(v)
		return nil
	case ingestrun.FieldItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemCount(v)
		return nil
	case ingestrun.FieldNewItemCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNewItemCount(v)
		return nil
	}
	return fmt.Errorf("unknown IngestRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestrun.FieldEndedAt) {
		fields = append(fields, ingestrun.FieldEndedAt)
	}
	if m.FieldCleared(ingestrun.FieldDurationMs) {
		fields = append(fields, ingestrun.FieldDurationMs)
	}
	if m.FieldCleared(ingestrun.FieldPlatformResults) {
		fields = append(fields, ingestrun.FieldPlatformResults)
	}
	if m.FieldCleared(ingestrun.FieldErrorSummary) {
		fields = append(fields, ingestrun.FieldErrorSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestRunMutation) ClearField(name string) error {
	switch name {
	case ingestrun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case ingestrun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case ingestrun.FieldPlatformResults:
		m.ClearPlatformResults()
		return nil
	case ingestrun.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown IngestRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestRunMutation) ResetField(name string) error {
	switch name {
	case ingestrun.FieldStatus:
		m.ResetStatus()
		return nil
	case ingestrun.FieldWindow:
		m.ResetWindow()
		return nil
	case ingestrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ingestrun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case ingestrun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case ingestrun.FieldPlatformCount:
		m.ResetPlatformCount()
		return nil
	case ingestrun.FieldPlatformSuccess:
		m.ResetPlatformSuccess()
		return nil
	case ingestrun.FieldItemCount:
		m.ResetItemCount()
		return nil
	case ingestrun.FieldNewItemCount:
		m.ResetNewItemCount()
		return nil
	case ingestrun.FieldPlatformResults:
		m.ResetPlatformResults()
		return nil
	case ingestrun.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown IngestRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown IngestRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown IngestRun edge %s", name)
}

// LLMJudgementMutation represents an operation that mutates the LLMJudgement nodes in the graph.
type LLMJudgementMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	judgement_type       *llmjudgement.JudgementType
	status               *llmjudgement.Status
	request              *map[string]interface{}
	response             *map[string]interface{}
	error_message        *string
	latency_ms           *int
	addlatency_ms        *int
	tokens_prompt        *int
	addtokens_prompt     *int
	tokens_completion    *int
	addtokens_completion *int
	provider             *string
	model                *string
	run_id               *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*LLMJudgement, error)
	predicates           []predicate.LLMJudgement
}

var _ ent.Mutation = (*LLMJudgementMutation)(nil)

// llmjudgementOption allows management of the mutation configuration using functional options.
type llmjudgementOption func(*LLMJudgementMutation)

// newLLMJudgementMutation creates new mutation for the LLMJudgement entity.
func newLLMJudgementMutation(c config, op Op, opts ...llmjudgementOption) *LLMJudgementMutation {
	m := &LLMJudgementMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMJudgement,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMJudgementID sets the ID field of the mutation.
func withLLMJudgementID(id int) llmjudgementOption {
	return func(m *LLMJudgementMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMJudgement
		)
		m.oldValue = func(ctx context.Context) (*LLMJudgement, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMJudgement.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMJudgement sets the old LLMJudgement of the mutation.
func withLLMJudgement(node *LLMJudgement) llmjudgementOption {
	return func(m *LLMJudgementMutation) {
		m.oldValue = func(context.Context) (*LLMJudgement, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMJudgementMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMJudgementMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMJudgementMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMJudgementMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMJudgement.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJudgementType sets the "judgement_type" field.
func (m *LLMJudgementMutation) SetJudgementType(lt llmjudgement.JudgementType) {
	m.judgement_type = &lt
}

// JudgementType returns the value of the "judgement_type" field in the mutation.
func (m *LLMJudgementMutation) JudgementType() (r llmjudgement.JudgementType, exists bool) {
	v := m.judgement_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJudgementType returns the old "judgement_type" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldJudgementType(ctx context.Context) (v llmjudgement.JudgementType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJudgementType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJudgementType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJudgementType: %w", err)
	}
	return oldValue.JudgementType, nil
}

// ResetJudgementType resets all changes to the "judgement_type" field.
func (m *LLMJudgementMutation) ResetJudgementType() {
	m.judgement_type = nil
}

// SetStatus sets the "status" field.
func (m *LLMJudgementMutation) SetStatus(l llmjudgement.Status) {
	m.status = &l
}

// Status returns the value of the "status" field in the mutation.
func (m *LLMJudgementMutation) Status() (r llmjudgement.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldStatus(ctx context.Context) (v llmjudgement.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *LLMJudgementMutation) ResetStatus() {
	m.status = nil
}

// SetRequest sets the "request" field.
func (m *LLMJudgementMutation) SetRequest(value map[string]interface{}) {
	m.request = &value
}

// Request returns the value of the "request" field in the mutation.
func (m *LLMJudgementMutation) Request() (r map[string]interface{}, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldRequest(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ClearRequest clears the value of the "request" field.
func (m *LLMJudgementMutation) ClearRequest() {
	m.request = nil
	m.clearedFields[llmjudgement.FieldRequest] = struct{}{}
}

// RequestCleared returns if the "request" field was cleared in this mutation.
func (m *LLMJudgementMutation) RequestCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldRequest]
	return ok
}

// ResetRequest resets all changes to the "request" field.
func (m *LLMJudgementMutation) ResetRequest() {
	m.request = nil
	delete(m.clearedFields, llmjudgement.FieldRequest)
}

// SetResponse sets the "response" field.
func (m *LLMJudgementMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *LLMJudgementMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *LLMJudgementMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[llmjudgement.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *LLMJudgementMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *LLMJudgementMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, llmjudgement.FieldResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMJudgementMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMJudgementMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *LLMJudgementMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[llmjudgement.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *LLMJudgementMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMJudgementMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, llmjudgement.FieldErrorMessage)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMJudgementMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMJudgementMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldLatencyMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMJudgementMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMJudgementMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (m *LLMJudgementMutation) ClearLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	m.clearedFields[llmjudgement.FieldLatencyMs] = struct{}{}
}

// LatencyMsCleared returns if the "latency_ms" field was cleared in this mutation.
func (m *LLMJudgementMutation) LatencyMsCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldLatencyMs]
	return ok
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMJudgementMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
	delete(m.clearedFields, llmjudgement.FieldLatencyMs)
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (m *LLMJudgementMutation) SetTokensPrompt(i int) {
	m.tokens_prompt = &i
	m.addtokens_prompt = nil
}

// TokensPrompt returns the value of the "tokens_prompt" field in the mutation.
func (m *LLMJudgementMutation) TokensPrompt() (r int, exists bool) {
	v := m.tokens_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensPrompt returns the old "tokens_prompt" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldTokensPrompt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensPrompt: %w", err)
	}
	return oldValue.TokensPrompt, nil
}

// AddTokensPrompt adds i to the "tokens_prompt" field.
func (m *LLMJudgementMutation) AddTokensPrompt(i int) {
	if m.addtokens_prompt != nil {
		*m.addtokens_prompt += i
	} else {
		m.addtokens_prompt = &i
	}
}

// AddedTokensPrompt returns the value that was added to the "tokens_prompt" field in this mutation.
func (m *LLMJudgementMutation) AddedTokensPrompt() (r int, exists bool) {
	v := m.addtokens_prompt
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensPrompt clears the value of the "tokens_prompt" field.
func (m *LLMJudgementMutation) ClearTokensPrompt() {
	m.tokens_prompt = nil
	m.addtokens_prompt = nil
	m.clearedFields[llmjudgement.FieldTokensPrompt] = struct{}{}
}

// TokensPromptCleared returns if the "tokens_prompt" field was cleared in this mutation.
func (m *LLMJudgementMutation) TokensPromptCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldTokensPrompt]
	return ok
}

// ResetTokensPrompt resets all changes to the "tokens_prompt" field.
func (m *LLMJudgementMutation) ResetTokensPrompt() {
	m.tokens_prompt = nil
	m.addtokens_prompt = nil
	delete(m.clearedFields, llmjudgement.FieldTokensPrompt)
}

// SetTokensCompletion sets the "tokens_completion" field.
func (m *LLMJudgementMutation) SetTokensCompletion(i int) {
	m.tokens_completion = &i
	m.addtokens_completion = nil
}

// TokensCompletion returns the value of the "tokens_completion" field in the mutation.
func (m *LLMJudgementMutation) TokensCompletion() (r int, exists bool) {
	v := m.tokens_completion
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensCompletion returns the old "tokens_completion" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldTokensCompletion(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensCompletion: %w", err)
	}
	return oldValue.TokensCompletion, nil
}

// AddTokensCompletion adds i to the "tokens_completion" field.
func (m *LLMJudgementMutation) AddTokensCompletion(i int) {
	if m.addtokens_completion != nil {
		*m.addtokens_completion += i
	} else {
		m.addtokens_completion = &i
	}
}

// AddedTokensCompletion returns the value that was added to the "tokens_completion" field in this mutation.
func (m *LLMJudgementMutation) AddedTokensCompletion() (r int, exists bool) {
	v := m.addtokens_completion
	if v == nil {
		return
	}
	return *v, true
}

// ClearTokensCompletion clears the value of the "tokens_completion" field.
func (m *LLMJudgementMutation) ClearTokensCompletion() {
	m.tokens_completion = nil
	m.addtokens_completion = nil
	m.clearedFields[llmjudgement.FieldTokensCompletion] = struct{}{}
}

// TokensCompletionCleared returns if the "tokens_completion" field was cleared in this mutation.
func (m *LLMJudgementMutation) TokensCompletionCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldTokensCompletion]
	return ok
}

// ResetTokensCompletion resets all changes to the "tokens_completion" field.
func (m *LLMJudgementMutation) ResetTokensCompletion() {
	m.tokens_completion = nil
	m.addtokens_completion = nil
	delete(m.clearedFields, llmjudgement.FieldTokensCompletion)
}

// SetProvider sets the "provider" field.
func (m *LLMJudgementMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMJudgementMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMJudgementMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMJudgementMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMJudgementMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMJudgementMutation) ResetModel() {
	m.model = nil
}

// SetRunID sets the "run_id" field.
func (m *LLMJudgementMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *LLMJudgementMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *LLMJudgementMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[llmjudgement.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *LLMJudgementMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[llmjudgement.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *LLMJudgementMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, llmjudgement.FieldRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *LLMJudgementMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LLMJudgementMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LLMJudgement entity.
// If the LLMJudgement object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMJudgementMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LLMJudgementMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the LLMJudgementMutation builder.
func (m *LLMJudgementMutation) Where(ps ...predicate.LLMJudgement) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMJudgementMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMJudgementMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMJudgement, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMJudgementMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMJudgementMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMJudgement).
func (m *LLMJudgementMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMJudgementMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.judgement_type != nil {
		fields = append(fields, llmjudgement.FieldJudgementType)
	}
	if m.status != nil {
		fields = append(fields, llmjudgement.FieldStatus)
	}
	if m.request != nil {
		fields = append(fields, llmjudgement.FieldRequest)
	}
	if m.response != nil {
		fields = append(fields, llmjudgement.FieldResponse)
	}
	if m.error_message != nil {
		fields = append(fields, llmjudgement.FieldErrorMessage)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmjudgement.FieldLatencyMs)
	}
	if m.tokens_prompt != nil {
		fields = append(fields, llmjudgement.FieldTokensPrompt)
	}
	if m.tokens_completion != nil {
		fields = append(fields, llmjudgement.FieldTokensCompletion)
	}
	if m.provider != nil {
		fields = append(fields, llmjudgement.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmjudgement.FieldModel)
	}
	if m.run_id != nil {
		fields = append(fields, llmjudgement.FieldRunID)
	}
	if m.created_at != nil {
		fields = append(fields, llmjudgement.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMJudgementMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmjudgement.FieldJudgementType:
		return m.JudgementType()
	case llmjudgement.FieldStatus:
		return m.Status()
	case llmjudgement.FieldRequest:
		return m.Request()
	case llmjudgement.FieldResponse:
		return m.Response()
	case llmjudgement.FieldErrorMessage:
		return m.ErrorMessage()
	case llmjudgement.FieldLatencyMs:
		return m.LatencyMs()
	case llmjudgement.FieldTokensPrompt:
		return m.TokensPrompt()
	case llmjudgement.FieldTokensCompletion:
		return m.TokensCompletion()
	case llmjudgement.FieldProvider:
		return m.Provider()
	case llmjudgement.FieldModel:
		return m.Model()
	case llmjudgement.FieldRunID:
		return m.RunID()
	case llmjudgement.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMJudgementMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmjudgement.FieldJudgementType:
		return m.OldJudgementType(ctx)
	case llmjudgement.FieldStatus:
		return m.OldStatus(ctx)
	case llmjudgement.FieldRequest:
		return m.OldRequest(ctx)
	case llmjudgement.FieldResponse:
		return m.OldResponse(ctx)
	case llmjudgement.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmjudgement.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmjudgement.FieldTokensPrompt:
		return m.OldTokensPrompt(ctx)
	case llmjudgement.FieldTokensCompletion:
		return m.OldTokensCompletion(ctx)
	case llmjudgement.FieldProvider:
		return m.OldProvider(ctx)
	case llmjudgement.FieldModel:
		return m.OldModel(ctx)
	case llmjudgement.FieldRunID:
		return m.OldRunID(ctx)
	case llmjudgement.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LLMJudgement field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMJudgementMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmjudgement.FieldJudgementType:
		v, ok := value.(llmjudgement.JudgementType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJudgementType(v)
		return nil
	case llmjudgement.FieldStatus:
		v, ok := value.(llmjudgement.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case llmjudgement.FieldRequest:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case llmjudgement.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case llmjudgement.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmjudgement.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmjudgement.FieldTokensPrompt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensPrompt(v)
		return nil
	case llmjudgement.FieldTokensCompletion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensCompletion(v)
		return nil
	case llmjudgement.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmjudgement.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmjudgement.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case llmjudgement.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LLMJudgement field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMJudgementMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, llmjudgement.FieldLatencyMs)
	}
	if m.addtokens_prompt != nil {
		fields = append(fields, llmjudgement.FieldTokensPrompt)
	}
	if m.addtokens_completion != nil {
		fields = append(fields, llmjudgement.FieldTokensCompletion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMJudgementMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmjudgement.FieldLatencyMs:
		return m.AddedLatencyMs()
	case llmjudgement.FieldTokensPrompt:
		return m.AddedTokensPrompt()
	case llmjudgement.FieldTokensCompletion:
		return m.AddedTokensCompletion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMJudgementMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmjudgement.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case llmjudgement.FieldTokensPrompt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensPrompt(v)
		return nil
	case llmjudgement.FieldTokensCompletion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensCompletion(v)
		return nil
	}
	return fmt.Errorf("unknown LLMJudgement numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMJudgementMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(llmjudgement.FieldRequest) {
		fields = append(fields, llmjudgement.FieldRequest)
	}
	if m.FieldCleared(llmjudgement.FieldResponse) {
		fields = append(fields, llmjudgement.FieldResponse)
	}
	if m.FieldCleared(llmjudgement.FieldErrorMessage) {
		fields = append(fields, llmjudgement.FieldErrorMessage)
	}
	if m.FieldCleared(llmjudgement.FieldLatencyMs) {
		fields = append(fields, llmjudgement.FieldLatencyMs)
	}
	if m.FieldCleared(llmjudgement.FieldTokensPrompt) {
		fields = append(fields, llmjudgement.FieldTokensPrompt)
	}
	if m.FieldCleared(llmjudgement.FieldTokensCompletion) {
		fields = append(fields, llmjudgement.FieldTokensCompletion)
	}
	if m.FieldCleared(llmjudgement.FieldRunID) {
		fields = append(fields, llmjudgement.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMJudgementMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMJudgementMutation) ClearField(name string) error {
	switch name {
	case llmjudgement.FieldRequest:
		m.ClearRequest()
		return nil
	case llmjudgement.FieldResponse:
		m.ClearResponse()
		return nil
	case llmjudgement.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case llmjudgement.FieldLatencyMs:
		m.ClearLatencyMs()
		return nil
	case llmjudgement.FieldTokensPrompt:
		m.ClearTokensPrompt()
		return nil
	case llmjudgement.FieldTokensCompletion:
		m.ClearTokensCompletion()
		return nil
	case llmjudgement.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown LLMJudgement nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMJudgementMutation) ResetField(name string) error {
	switch name {
	case llmjudgement.FieldJudgementType:
		m.ResetJudgementType()
		return nil
	case llmjudgement.FieldStatus:
		m.ResetStatus()
		return nil
	case llmjudgement.FieldRequest:
		m.ResetRequest()
		return nil
	case llmjudgement.FieldResponse:
		m.ResetResponse()
		return nil
	case llmjudgement.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmjudgement.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmjudgement.FieldTokensPrompt:
		m.ResetTokensPrompt()
		return nil
	case llmjudgement.FieldTokensCompletion:
		m.ResetTokensCompletion()
		return nil
	case llmjudgement.FieldProvider:
		m.ResetProvider()
		return nil
	case llmjudgement.FieldModel:
		m.ResetModel()
		return nil
	case llmjudgement.FieldRunID:
		m.ResetRunID()
		return nil
	case llmjudgement.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LLMJudgement field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMJudgementMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMJudgementMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMJudgementMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMJudgementMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMJudgementMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMJudgementMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMJudgementMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMJudgement unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMJudgementMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMJudgement edge %s", name)
}

// PipelineRunMutation represents an operation that mutates the PipelineRun nodes in the graph.
type PipelineRunMutation struct {
	config
	op               Op
	typ              string
	id               *string
	stage            *pipelinerun.Stage
	window           *string
	status           *pipelinerun.Status
	started_at       *time.Time
	ended_at         *time.Time
	duration_ms      *int
	addduration_ms   *int
	input_count      *int
	addinput_count   *int
	output_count     *int
	addoutput_count  *int
	success_count    *int
	addsuccess_count *int
	failed_count     *int
	addfailed_count  *int
	results          *map[string]interface{}
	error_summary    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PipelineRun, error)
	predicates       []predicate.PipelineRun
}

var _ ent.Mutation = (*PipelineRunMutation)(nil)

// pipelinerunOption allows management of the mutation configuration using functional options.
type pipelinerunOption func(*PipelineRunMutation)

// newPipelineRunMutation creates new mutation for the PipelineRun entity.
func newPipelineRunMutation(c config, op Op, opts ...pipelinerunOption) *PipelineRunMutation {
	m := &PipelineRunMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineRunID sets the ID field of the mutation.
func withPipelineRunID(id string) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineRun
		)
		m.oldValue = func(ctx context.Context) (*PipelineRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineRun sets the old PipelineRun of the mutation.
func withPipelineRun(node *PipelineRun) pipelinerunOption {
	return func(m *PipelineRunMutation) {
		m.oldValue = func(context.Context) (*PipelineRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineRun entities.
func (m *PipelineRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStage sets the "stage" field.
func (m *PipelineRunMutation) SetStage(pi pipelinerun.Stage) {
	m.stage = &pi
}

// Stage returns the value of the "stage" field in the mutation.
func (m *PipelineRunMutation) Stage() (r pipelinerun.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStage(ctx context.Context) (v pipelinerun.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *PipelineRunMutation) ResetStage() {
	m.stage = nil
}

// SetWindow sets the "window" field.
func (m *PipelineRunMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *PipelineRunMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ClearWindow clears the value of the "window" field.
func (m *PipelineRunMutation) ClearWindow() {
	m.window = nil
	m.clearedFields[pipelinerun.FieldWindow] = struct{}{}
}

// WindowCleared returns if the "window" field was cleared in this mutation.
func (m *PipelineRunMutation) WindowCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldWindow]
	return ok
}

// ResetWindow resets all changes to the "window" field.
func (m *PipelineRunMutation) ResetWindow() {
	m.window = nil
	delete(m.clearedFields, pipelinerun.FieldWindow)
}

// SetStatus sets the "status" field.
func (m *PipelineRunMutation) SetStatus(pi pipelinerun.Status) {
	m.status = &pi
}

// Status returns the value of the "status" field in the mutation.
func (m *PipelineRunMutation) Status() (r pipelinerun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStatus(ctx context.Context) (v pipelinerun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PipelineRunMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PipelineRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PipelineRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PipelineRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetEndedAt sets the "ended_at" field.
func (m *PipelineRunMutation) SetEndedAt(t time.Time) {
	m.ended_at = &t
}

// EndedAt returns the value of the "ended_at" field in the mutation.
func (m *PipelineRunMutation) EndedAt() (r time.Time, exists bool) {
	v := m.ended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEndedAt returns the old "ended_at" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldEndedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndedAt: %w", err)
	}
	return oldValue.EndedAt, nil
}

// ClearEndedAt clears the value of the "ended_at" field.
func (m *PipelineRunMutation) ClearEndedAt() {
	m.ended_at = nil
	m.clearedFields[pipelinerun.FieldEndedAt] = struct{}{}
}

// EndedAtCleared returns if the "ended_at" field was cleared in this mutation.
func (m *PipelineRunMutation) EndedAtCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldEndedAt]
	return ok
}

// ResetEndedAt resets all changes to the "ended_at" field.
func (m *PipelineRunMutation) ResetEndedAt() {
	m.ended_at = nil
	delete(m.clearedFields, pipelinerun.FieldEndedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *PipelineRunMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *PipelineRunMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *PipelineRunMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *PipelineRunMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *PipelineRunMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[pipelinerun.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *PipelineRunMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *PipelineRunMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, pipelinerun.FieldDurationMs)
}

// SetInputCount sets the "input_count" field.
func (m *PipelineRunMutation) SetInputCount(i int) {
	m.input_count = &i
	m.addinput_count = nil
}

// InputCount returns the value of the "input_count" field in the mutation.
func (m *PipelineRunMutation) InputCount() (r int, exists bool) {
	v := m.input_count
	if v == nil {
		return
	}
	return *v, true
}

// OldInputCount returns the old "input_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldInputCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputCount: %w", err)
	}
	return oldValue.InputCount, nil
}

// AddInputCount adds i to the "input_count" field.
func (m *PipelineRunMutation) AddInputCount(i int) {
	if m.addinput_count != nil {
		*m.addinput_count += i
	} else {
		m.addinput_count = &i
	}
}

// AddedInputCount returns the value that was added to the "input_count" field in this mutation.
func (m *PipelineRunMutation) AddedInputCount() (r int, exists bool) {
	v := m.addinput_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputCount resets all changes to the "input_count" field.
func (m *PipelineRunMutation) ResetInputCount() {
	m.input_count = nil
	m.addinput_count = nil
}

// SetOutputCount sets the "output_count" field.
func (m *PipelineRunMutation) SetOutputCount(i int) {
	m.output_count = &i
	m.addoutput_count = nil
}

// OutputCount returns the value of the "output_count" field in the mutation.
func (m *PipelineRunMutation) OutputCount() (r int, exists bool) {
	v := m.output_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputCount returns the old "output_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldOutputCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputCount: %w", err)
	}
	return oldValue.OutputCount, nil
}

// AddOutputCount adds i to the "output_count" field.
func (m *PipelineRunMutation) AddOutputCount(i int) {
	if m.addoutput_count != nil {
		*m.addoutput_count += i
	} else {
		m.addoutput_count = &i
	}
}

// AddedOutputCount returns the value that was added to the "output_count" field in this mutation.
func (m *PipelineRunMutation) AddedOutputCount() (r int, exists bool) {
	v := m.addoutput_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputCount resets all changes to the "output_count" field.
func (m *PipelineRunMutation) ResetOutputCount() {
	m.output_count = nil
	m.addoutput_count = nil
}

// SetSuccessCount sets the "success_count" field.
func (m *PipelineRunMutation) SetSuccessCount(i int) {
	m.success_count = &i
	m.addsuccess_count = nil
}

// SuccessCount returns the value of the "success_count" field in the mutation.
func (m *PipelineRunMutation) SuccessCount() (r int, exists bool) {
	v := m.success_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessCount returns the old "success_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldSuccessCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessCount: %w", err)
	}
	return oldValue.SuccessCount, nil
}

// AddSuccessCount adds i to the "success_count" field.
func (m *PipelineRunMutation) AddSuccessCount(i int) {
	if m.addsuccess_count != nil {
		*m.addsuccess_count += i
	} else {
		m.addsuccess_count = &i
	}
}

// AddedSuccessCount returns the value that was added to the "success_count" field in this mutation.
func (m *PipelineRunMutation) AddedSuccessCount() (r int, exists bool) {
	v := m.addsuccess_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessCount resets all changes to the "success_count" field.
func (m *PipelineRunMutation) ResetSuccessCount() {
	m.success_count = nil
	m.addsuccess_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *PipelineRunMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *PipelineRunMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *PipelineRunMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *PipelineRunMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *PipelineRunMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetResults sets the "results" field.
func (m *PipelineRunMutation) SetResults(value map[string]interface{}) {
	m.results = &value
}

// Results returns the value of the "results" field in the mutation.
func (m *PipelineRunMutation) Results() (r map[string]interface{}, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// ClearResults clears the value of the "results" field.
func (m *PipelineRunMutation) ClearResults() {
	m.results = nil
	m.clearedFields[pipelinerun.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *PipelineRunMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *PipelineRunMutation) ResetResults() {
	m.results = nil
	delete(m.clearedFields, pipelinerun.FieldResults)
}

// SetErrorSummary sets the "error_summary" field.
func (m *PipelineRunMutation) SetErrorSummary(s string) {
	m.error_summary = &s
}

// ErrorSummary returns the value of the "error_summary" field in the mutation.
func (m *PipelineRunMutation) ErrorSummary() (r string, exists bool) {
	v := m.error_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorSummary returns the old "error_summary" field's value of the PipelineRun entity.
// If the PipelineRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineRunMutation) OldErrorSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorSummary: %w", err)
	}
	return oldValue.ErrorSummary, nil
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (m *PipelineRunMutation) ClearErrorSummary() {
	m.error_summary = nil
	m.clearedFields[pipelinerun.FieldErrorSummary] = struct{}{}
}

// ErrorSummaryCleared returns if the "error_summary" field was cleared in this mutation.
func (m *PipelineRunMutation) ErrorSummaryCleared() bool {
	_, ok := m.clearedFields[pipelinerun.FieldErrorSummary]
	return ok
}

// ResetErrorSummary resets all changes to the "error_summary" field.
func (m *PipelineRunMutation) ResetErrorSummary() {
	m.error_summary = nil
	delete(m.clearedFields, pipelinerun.FieldErrorSummary)
}

// Where appends a list predicates to the PipelineRunMutation builder.
func (m *PipelineRunMutation) Where(ps ...predicate.PipelineRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineRun).
func (m *PipelineRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineRunMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.stage != nil {
		fields = append(fields, pipelinerun.FieldStage)
	}
	if m.window != nil {
		fields = append(fields, pipelinerun.FieldWindow)
	}
	if m.status != nil {
		fields = append(fields, pipelinerun.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, pipelinerun.FieldStartedAt)
	}
	if m.ended_at != nil {
		fields = append(fields, pipelinerun.FieldEndedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, pipelinerun.FieldDurationMs)
	}
	if m.input_count != nil {
		fields = append(fields, pipelinerun.FieldInputCount)
	}
	if m.output_count != nil {
		fields = append(fields, pipelinerun.FieldOutputCount)
	}
	if m.success_count != nil {
		fields = append(fields, pipelinerun.FieldSuccessCount)
	}
	if m.failed_count != nil {
		fields = append(fields, pipelinerun.FieldFailedCount)
	}
	if m.results != nil {
		fields = append(fields, pipelinerun.FieldResults)
	}
	if m.error_summary != nil {
		fields = append(fields, pipelinerun.FieldErrorSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldStage:
		return m.Stage()
	case pipelinerun.FieldWindow:
		return m.Window()
	case pipelinerun.FieldStatus:
		return m.Status()
	case pipelinerun.FieldStartedAt:
		return m.StartedAt()
	case pipelinerun.FieldEndedAt:
		return m.EndedAt()
	case pipelinerun.FieldDurationMs:
		return m.DurationMs()
	case pipelinerun.FieldInputCount:
		return m.InputCount()
	case pipelinerun.FieldOutputCount:
		return m.OutputCount()
	case pipelinerun.FieldSuccessCount:
		return m.SuccessCount()
	case pipelinerun.FieldFailedCount:
		return m.FailedCount()
	case pipelinerun.FieldResults:
		return m.Results()
	case pipelinerun.FieldErrorSummary:
		return m.ErrorSummary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinerun.FieldStage:
		return m.OldStage(ctx)
	case pipelinerun.FieldWindow:
		return m.OldWindow(ctx)
	case pipelinerun.FieldStatus:
		return m.OldStatus(ctx)
	case pipelinerun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case pipelinerun.FieldEndedAt:
		return m.OldEndedAt(ctx)
	case pipelinerun.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case pipelinerun.FieldInputCount:
		return m.OldInputCount(ctx)
	case pipelinerun.FieldOutputCount:
		return m.OldOutputCount(ctx)
	case pipelinerun.FieldSuccessCount:
		return m.OldSuccessCount(ctx)
	case pipelinerun.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case pipelinerun.FieldResults:
		return m.OldResults(ctx)
	case pipelinerun.FieldErrorSummary:
		return m.OldErrorSummary(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldStage:
		v, ok := value.(pipelinerun.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case pipelinerun.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case pipelinerun.FieldStatus:
		v, ok := value.(pipelinerun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pipelinerun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case pipelinerun.FieldEndedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndedAt(v)
		return nil
	case pipelinerun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case pipelinerun.FieldInputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputCount(v)
		return nil
	case pipelinerun.FieldOutputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputCount(v)
		return nil
	case pipelinerun.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessCount(v)
		return nil
	case pipelinerun.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case pipelinerun.FieldResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case pipelinerun.FieldErrorSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorSummary(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineRunMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, pipelinerun.FieldDurationMs)
	}
	if m.addinput_count != nil {
		fields = append(fields, pipelinerun.FieldInputCount)
	}
	if m.addoutput_count != nil {
		fields = append(fields, pipelinerun.FieldOutputCount)
	}
	if m.addsuccess_count != nil {
		fields = append(fields, pipelinerun.FieldSuccessCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, pipelinerun.FieldFailedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinerun.FieldDurationMs:
		return m.AddedDurationMs()
	case pipelinerun.FieldInputCount:
		return m.AddedInputCount()
	case pipelinerun.FieldOutputCount:
		return m.AddedOutputCount()
	case pipelinerun.FieldSuccessCount:
		return m.AddedSuccessCount()
	case pipelinerun.FieldFailedCount:
		return m.AddedFailedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinerun.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case pipelinerun.FieldInputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputCount(v)
		return nil
	case pipelinerun.FieldOutputCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputCount(v)
		return nil
	case pipelinerun.FieldSuccessCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessCount(v)
		return nil
	case pipelinerun.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipelinerun.FieldWindow) {
		fields = append(fields, pipelinerun.FieldWindow)
	}
	if m.FieldCleared(pipelinerun.FieldEndedAt) {
		fields = append(fields, pipelinerun.FieldEndedAt)
	}
	if m.FieldCleared(pipelinerun.FieldDurationMs) {
		fields = append(fields, pipelinerun.FieldDurationMs)
	}
	if m.FieldCleared(pipelinerun.FieldResults) {
		fields = append(fields, pipelinerun.FieldResults)
	}
	if m.FieldCleared(pipelinerun.FieldErrorSummary) {
		fields = append(fields, pipelinerun.FieldErrorSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineRunMutation) ClearField(name string) error {
	switch name {
	case pipelinerun.FieldWindow:
		m.ClearWindow()
		return nil
	case pipelinerun.FieldEndedAt:
		m.ClearEndedAt()
		return nil
	case pipelinerun.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case pipelinerun.FieldResults:
		m.ClearResults()
		return nil
	case pipelinerun.FieldErrorSummary:
		m.ClearErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineRunMutation) ResetField(name string) error {
	switch name {
	case pipelinerun.FieldStage:
		m.ResetStage()
		return nil
	case pipelinerun.FieldWindow:
		m.ResetWindow()
		return nil
	case pipelinerun.FieldStatus:
		m.ResetStatus()
		return nil
	case pipelinerun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case pipelinerun.FieldEndedAt:
		m.ResetEndedAt()
		return nil
	case pipelinerun.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case pipelinerun.FieldInputCount:
		m.ResetInputCount()
		return nil
	case pipelinerun.FieldOutputCount:
		m.ResetOutputCount()
		return nil
	case pipelinerun.FieldSuccessCount:
		m.ResetSuccessCount()
		return nil
	case pipelinerun.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case pipelinerun.FieldResults:
		m.ResetResults()
		return nil
	case pipelinerun.FieldErrorSummary:
		m.ResetErrorSummary()
		return nil
	}
	return fmt.Errorf("unknown PipelineRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineRun edge %s", name)
}

// SourceItemMutation represents an operation that mutates the SourceItem nodes in the graph.
type SourceItemMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	platform            *string
	title               *string
	summary             *string
	url                 *string
	url_hash            *string
	content_hash        *string
	dedup_key           *string
	published_at        *time.Time
	fetched_at          *time.Time
	interactions        *map[string]interface{}
	raw_heat            *float64
	addraw_heat         *float64
	normalized_heat     *float64
	addnormalized_heat  *float64
	window              *string
	cluster_id          *string
	occurrence_count    *int
	addoccurrence_count *int
	status              *sourceitem.Status
	embedding_id        *int
	addembedding_id     *int
	run_id              *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	topic_nodes         map[int]struct{}
	removedtopic_nodes  map[int]struct{}
	clearedtopic_nodes  bool
	done                bool
	oldValue            func(context.Context) (*SourceItem, error)
	predicates          []predicate.SourceItem
}

var _ ent.Mutation = (*SourceItemMutation)(nil)

// sourceitemOption allows management of the mutation configuration using functional options.
type sourceitemOption func(*SourceItemMutation)

// newSourceItemMutation creates new mutation for the SourceItem entity.
func newSourceItemMutation(c config, op Op, opts ...sourceitemOption) *SourceItemMutation {
	m := &SourceItemMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceItemID sets the ID field of the mutation.
func withSourceItemID(id int) sourceitemOption {
	return func(m *SourceItemMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceItem
		)
		m.oldValue = func(ctx context.Context) (*SourceItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceItem sets the old SourceItem of the mutation.
func withSourceItem(node *SourceItem) sourceitemOption {
	return func(m *SourceItemMutation) {
		m.oldValue = func(context.Context) (*SourceItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *SourceItemMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *SourceItemMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *SourceItemMutation) ResetPlatform() {
	m.platform = nil
}

// SetTitle sets the "title" field.
func (m *SourceItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SourceItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SourceItemMutation) ResetTitle() {
	m.title = nil
}

// SetSummary sets the "summary" field.
func (m *SourceItemMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SourceItemMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SourceItemMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[sourceitem.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SourceItemMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SourceItemMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, sourceitem.FieldSummary)
}

// SetURL sets the "url" field.
func (m *SourceItemMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *SourceItemMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *SourceItemMutation) ResetURL() {
	m.url = nil
}

// SetURLHash sets the "url_hash" field.
func (m *SourceItemMutation) SetURLHash(s string) {
	m.url_hash = &s
}

// URLHash returns the value of the "url_hash" field in the mutation.
func (m *SourceItemMutation) URLHash() (r string, exists bool) {
	v := m.url_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldURLHash returns the old "url_hash" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldURLHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLHash: %w", err)
	}
	return oldValue.URLHash, nil
}

// ResetURLHash resets all changes to the "url_hash" field.
func (m *SourceItemMutation) ResetURLHash() {
	m.url_hash = nil
}

// SetContentHash sets the "content_hash" field.
func (m *SourceItemMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *SourceItemMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *SourceItemMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetDedupKey sets the "dedup_key" field.
func (m *SourceItemMutation) SetDedupKey(s string) {
	m.dedup_key = &s
}

// DedupKey returns the value of the "dedup_key" field in the mutation.
func (m *SourceItemMutation) DedupKey() (r string, exists bool) {
	v := m.dedup_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupKey returns the old "dedup_key" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldDedupKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupKey: %w", err)
	}
	return oldValue.DedupKey, nil
}

// ResetDedupKey resets all changes to the "dedup_key" field.
func (m *SourceItemMutation) ResetDedupKey() {
	m.dedup_key = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *SourceItemMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *SourceItemMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *SourceItemMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[sourceitem.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *SourceItemMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *SourceItemMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, sourceitem.FieldPublishedAt)
}

// SetFetchedAt sets the "fetched_at" field.
func (m *SourceItemMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *SourceItemMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *SourceItemMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetInteractions sets the "interactions" field.
func (m *SourceItemMutation) SetInteractions(value map[string]interface{}) {
	m.interactions = &value
}

// Interactions returns the value of the "interactions" field in the mutation.
func (m *SourceItemMutation) Interactions() (r map[string]interface{}, exists bool) {
	v := m.interactions
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractions returns the old "interactions" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldInteractions(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractions: %w", err)
	}
	return oldValue.Interactions, nil
}

// ClearInteractions clears the value of the "interactions" field.
func (m *SourceItemMutation) ClearInteractions() {
	m.interactions = nil
	m.clearedFields[sourceitem.FieldInteractions] = struct{}{}
}

// InteractionsCleared returns if the "interactions" field was cleared in this mutation.
func (m *SourceItemMutation) InteractionsCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldInteractions]
	return ok
}

// ResetInteractions resets all changes to the "interactions" field.
func (m *SourceItemMutation) ResetInteractions() {
	m.interactions = nil
	delete(m.clearedFields, sourceitem.FieldInteractions)
}

// SetRawHeat sets the "raw_heat" field.
func (m *SourceItemMutation) SetRawHeat(f float64) {
	m.raw_heat = &f
	m.addraw_heat = nil
}

// RawHeat returns the value of the "raw_heat" field in the mutation.
func (m *SourceItemMutation) RawHeat() (r float64, exists bool) {
	v := m.raw_heat
	if v == nil {
		return
	}
	return *v, true
}

// OldRawHeat returns the old "raw_heat" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldRawHeat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawHeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawHeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawHeat: %w", err)
	}
	return oldValue.RawHeat, nil
}

// AddRawHeat adds f to the "raw_heat" field.
func (m *SourceItemMutation) AddRawHeat(f float64) {
	if m.addraw_heat != nil {
		*m.addraw_heat += f
	} else {
		m.addraw_heat = &f
	}
}

// AddedRawHeat returns the value that was added to the "raw_heat" field in this mutation.
func (m *SourceItemMutation) AddedRawHeat() (r float64, exists bool) {
	v := m.addraw_heat
	if v == nil {
		return
	}
	return *v, true
}

// ClearRawHeat clears the value of the "raw_heat" field.
func (m *SourceItemMutation) ClearRawHeat() {
	m.raw_heat = nil
	m.addraw_heat = nil
	m.clearedFields[sourceitem.FieldRawHeat] = struct{}{}
}

// RawHeatCleared returns if the "raw_heat" field was cleared in this mutation.
func (m *SourceItemMutation) RawHeatCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldRawHeat]
	return ok
}

// ResetRawHeat resets all changes to the "raw_heat" field.
func (m *SourceItemMutation) ResetRawHeat() {
	m.raw_heat = nil
	m.addraw_heat = nil
	delete(m.clearedFields, sourceitem.FieldRawHeat)
}

// SetNormalizedHeat sets the "normalized_heat" field.
func (m *SourceItemMutation) SetNormalizedHeat(f float64) {
	m.normalized_heat = &f
	m.addnormalized_heat = nil
}

// NormalizedHeat returns the value of the "normalized_heat" field in the mutation.
func (m *SourceItemMutation) NormalizedHeat() (r float64, exists bool) {
	v := m.normalized_heat
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedHeat returns the old "normalized_heat" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldNormalizedHeat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedHeat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedHeat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedHeat: %w", err)
	}
	return oldValue.NormalizedHeat, nil
}

// AddNormalizedHeat adds f to the "normalized_heat" field.
func (m *SourceItemMutation) AddNormalizedHeat(f float64) {
	if m.addnormalized_heat != nil {
		*m.addnormalized_heat += f
	} else {
		m.addnormalized_heat = &f
	}
}

// AddedNormalizedHeat returns the value that was added to the "normalized_heat" field in this mutation.
func (m *SourceItemMutation) AddedNormalizedHeat() (r float64, exists bool) {
	v := m.addnormalized_heat
	if v == nil {
		return
	}
	return *v, true
}

// ClearNormalizedHeat clears the value of the "normalized_heat" field.
func (m *SourceItemMutation) ClearNormalizedHeat() {
	m.normalized_heat = nil
	m.addnormalized_heat = nil
	m.clearedFields[sourceitem.FieldNormalizedHeat] = struct{}{}
}

// NormalizedHeatCleared returns if the "normalized_heat" field was cleared in this mutation.
func (m *SourceItemMutation) NormalizedHeatCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldNormalizedHeat]
	return ok
}

// ResetNormalizedHeat resets all changes to the "normalized_heat" field.
func (m *SourceItemMutation) ResetNormalizedHeat() {
	m.normalized_heat = nil
	m.addnormalized_heat = nil
	delete(m.clearedFields, sourceitem.FieldNormalizedHeat)
}

// SetWindow sets the "window" field.
func (m *SourceItemMutation) SetWindow(s string) {
	m.window = &s
}

// Window returns the value of the "window" field in the mutation.
func (m *SourceItemMutation) Window() (r string, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldWindow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *SourceItemMutation) ResetWindow() {
	m.window = nil
}

// SetClusterID sets the "cluster_id" field.
func (m *SourceItemMutation) SetClusterID(s string) {
	m.cluster_id = &s
}

// ClusterID returns the value of the "cluster_id" field in the mutation.
func (m *SourceItemMutation) ClusterID() (r string, exists bool) {
	v := m.cluster_id
	if v == nil {
		return
	}
	return *v, true
}

// OldClusterID returns the old "cluster_id" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldClusterID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClusterID: %w", err)
	}
	return oldValue.ClusterID, nil
}

// ClearClusterID clears the value of the "cluster_id" field.
func (m *SourceItemMutation) ClearClusterID() {
	m.cluster_id = nil
	m.clearedFields[sourceitem.FieldClusterID] = struct{}{}
}

// ClusterIDCleared returns if the "cluster_id" field was cleared in this mutation.
func (m *SourceItemMutation) ClusterIDCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldClusterID]
	return ok
}

// ResetClusterID resets all changes to the "cluster_id" field.
func (m *SourceItemMutation) ResetClusterID() {
	m.cluster_id = nil
	delete(m.clearedFields, sourceitem.FieldClusterID)
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (m *SourceItemMutation) SetOccurrenceCount(i int) {
	m.occurrence_count = &i
	m.addoccurrence_count = nil
}

// OccurrenceCount returns the value of the "occurrence_count" field in the mutation.
func (m *SourceItemMutation) OccurrenceCount() (r int, exists bool) {
	v := m.occurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurrenceCount returns the old "occurrence_count" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldOccurrenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurrenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurrenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurrenceCount: %w", err)
	}
	return oldValue.OccurrenceCount, nil
}

// AddOccurrenceCount adds i to the "occurrence_count" field.
func (m *SourceItemMutation) AddOccurrenceCount(i int) {
	if m.addoccurrence_count != nil {
		*m.addoccurrence_count += i
	} else {
		m.addoccurrence_count = &i
	}
}

// AddedOccurrenceCount returns the value that was added to the "occurrence_count" field in this mutation.
func (m *SourceItemMutation) AddedOccurrenceCount() (r int, exists bool) {
	v := m.addoccurrence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetOccurrenceCount resets all changes to the "occurrence_count" field.
func (m *SourceItemMutation) ResetOccurrenceCount() {
	m.occurrence_count = nil
	m.addoccurrence_count = nil
}

// SetStatus sets the "status" field.
func (m *SourceItemMutation) SetStatus(s sourceitem.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SourceItemMutation) Status() (r sourceitem.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldStatus(ctx context.Context) (v sourceitem.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SourceItemMutation) ResetStatus() {
	m.status = nil
}

// SetEmbeddingID sets the "embedding_id" field.
func (m *SourceItemMutation) SetEmbeddingID(i int) {
	m.embedding_id = &i
	m.addembedding_id = nil
}

// EmbeddingID returns the value of the "embedding_id" field in the mutation.
func (m *SourceItemMutation) EmbeddingID() (r int, exists bool) {
	v := m.embedding_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingID returns the old "embedding_id" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldEmbeddingID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingID: %w", err)
	}
	return oldValue.EmbeddingID, nil
}

// AddEmbeddingID adds i to the "embedding_id" field.
func (m *SourceItemMutation) AddEmbeddingID(i int) {
	if m.addembedding_id != nil {
		*m.addembedding_id += i
	} else {
		m.addembedding_id = &i
	}
}

// AddedEmbeddingID returns the value that was added to the "embedding_id" field in this mutation.
func (m *SourceItemMutation) AddedEmbeddingID() (r int, exists bool) {
	v := m.addembedding_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearEmbeddingID clears the value of the "embedding_id" field.
func (m *SourceItemMutation) ClearEmbeddingID() {
	m.embedding_id = nil
	m.addembedding_id = nil
	m.clearedFields[sourceitem.FieldEmbeddingID] = struct{}{}
}

// EmbeddingIDCleared returns if the "embedding_id" field was cleared in this mutation.
func (m *SourceItemMutation) EmbeddingIDCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldEmbeddingID]
	return ok
}

// ResetEmbeddingID resets all changes to the "embedding_id" field.
func (m *SourceItemMutation) ResetEmbeddingID() {
	m.embedding_id = nil
	m.addembedding_id = nil
	delete(m.clearedFields, sourceitem.FieldEmbeddingID)
}

// SetRunID sets the "run_id" field.
func (m *SourceItemMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *SourceItemMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ClearRunID clears the value of the "run_id" field.
func (m *SourceItemMutation) ClearRunID() {
	m.run_id = nil
	m.clearedFields[sourceitem.FieldRunID] = struct{}{}
}

// RunIDCleared returns if the "run_id" field was cleared in this mutation.
func (m *SourceItemMutation) RunIDCleared() bool {
	_, ok := m.clearedFields[sourceitem.FieldRunID]
	return ok
}

// ResetRunID resets all changes to the "run_id" field.
func (m *SourceItemMutation) ResetRunID() {
	m.run_id = nil
	delete(m.clearedFields, sourceitem.FieldRunID)
}

// SetCreatedAt sets the "created_at" field.
func (m *SourceItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SourceItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SourceItem entity.
// If the SourceItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SourceItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTopicNodeIDs adds the "topic_nodes" edge to the TopicNode entity by ids.
func (m *SourceItemMutation) AddTopicNodeIDs(ids ...int) {
	if m.topic_nodes == nil {
		m.topic_nodes = make(map[int]struct{})
	}
	for i := range ids {
		m.topic_nodes[ids[i]] = struct{}{}
	}
}

// ClearTopicNodes clears the "topic_nodes" edge to the TopicNode entity.
func (m *SourceItemMutation) ClearTopicNodes() {
	m.clearedtopic_nodes = true
}

// TopicNodesCleared reports if the "topic_nodes" edge to the TopicNode entity was cleared.
func (m *SourceItemMutation) TopicNodesCleared() bool {
	return m.clearedtopic_nodes
}

// RemoveTopicNodeIDs removes the "topic_nodes" edge to the TopicNode entity by IDs.
func (m *SourceItemMutation) RemoveTopicNodeIDs(ids ...int) {
	if m.removedtopic_nodes == nil {
		m.removedtopic_nodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.topic_nodes, ids[i])
		m.removedtopic_nodes[ids[i]] = struct{}{}
	}
}

// RemovedTopicNodes returns the removed IDs of the "topic_nodes" edge to the TopicNode entity.
func (m *SourceItemMutation) RemovedTopicNodesIDs() (ids []int) {
	for id := range m.removedtopic_nodes {
		ids = append(ids, id)
	}
	return
}

// TopicNodesIDs returns the "topic_nodes" edge IDs in the mutation.
func (m *SourceItemMutation) TopicNodesIDs() (ids []int) {
	for id := range m.topic_nodes {
		ids = append(ids, id)
	}
	return
}

// ResetTopicNodes resets all changes to the "topic_nodes" edge.
func (m *SourceItemMutation) ResetTopicNodes() {
	m.topic_nodes = nil
	m.clearedtopic_nodes = false
	m.removedtopic_nodes = nil
}

// Where appends a list predicates to the SourceItemMutation builder.
func (m *SourceItemMutation) Where(ps ...predicate.SourceItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceItem).
func (m *SourceItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceItemMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.platform != nil {
		fields = append(fields, sourceitem.FieldPlatform)
	}
	if m.title != nil {
		fields = append(fields, sourceitem.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, sourceitem.FieldSummary)
	}
	if m.url != nil {
		fields = append(fields, sourceitem.FieldURL)
	}
	if m.url_hash != nil {
		fields = append(fields, sourceitem.FieldURLHash)
	}
	if m.content_hash != nil {
		fields = append(fields, sourceitem.FieldContentHash)
	}
	if m.dedup_key != nil {
		fields = append(fields, sourceitem.FieldDedupKey)
	}
	if m.published_at != nil {
		fields = append(fields, sourceitem.FieldPublishedAt)
	}
	if m.fetched_at != nil {
		fields = append(fields, sourceitem.FieldFetchedAt)
	}
	if m.interactions != nil {
		fields = append(fields, sourceitem.FieldInteractions)
	}
	if m.raw_heat != nil {
		fields = append(fields, sourceitem.FieldRawHeat)
	}
	if m.normalized_heat != nil {
		fields = append(fields, sourceitem.FieldNormalizedHeat)
	}
	if m.window != nil {
		fields = append(fields, sourceitem.FieldWindow)
	}
	if m.cluster_id != nil {
		fields = append(fields, sourceitem.FieldClusterID)
	}
	if m.occurrence_count != nil {
		fields = append(fields, sourceitem.FieldOccurrenceCount)
	}
	if m.status != nil {
		fields = append(fields, sourceitem.FieldStatus)
	}
	if m.embedding_id != nil {
		fields = append(fields, sourceitem.FieldEmbeddingID)
	}
	if m.run_id != nil {
		fields = append(fields, sourceitem.FieldRunID)
	}
	if m.created_at != nil {
		fields = append(fields, sourceitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourceitem.FieldPlatform:
		return m.Platform()
	case sourceitem.FieldTitle:
		return m.Title()
	case sourceitem.FieldSummary:
		return m.Summary()
	case sourceitem.FieldURL:
		return m.URL()
	case sourceitem.FieldURLHash:
		return m.URLHash()
	case sourceitem.FieldContentHash:
		return m.ContentHash()
	case sourceitem.FieldDedupKey:
		return m.DedupKey()
	case sourceitem.FieldPublishedAt:
		return m.PublishedAt()
	case sourceitem.FieldFetchedAt:
		return m.FetchedAt()
	case sourceitem.FieldInteractions:
		return m.Interactions()
	case sourceitem.FieldRawHeat:
		return m.RawHeat()
	case sourceitem.FieldNormalizedHeat:
		return m.NormalizedHeat()
	case sourceitem.FieldWindow:
		return m.Window()
	case sourceitem.FieldClusterID:
		return m.ClusterID()
	case sourceitem.FieldOccurrenceCount:
		return m.OccurrenceCount()
	case sourceitem.FieldStatus:
		return m.Status()
	case sourceitem.FieldEmbeddingID:
		return m.EmbeddingID()
	case sourceitem.FieldRunID:
		return m.RunID()
	case sourceitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourceitem.FieldPlatform:
		return m.OldPlatform(ctx)
	case sourceitem.FieldTitle:
		return m.OldTitle(ctx)
	case sourceitem.FieldSummary:
		return m.OldSummary(ctx)
	case sourceitem.FieldURL:
		return m.OldURL(ctx)
	case sourceitem.FieldURLHash:
		return m.OldURLHash(ctx)
	case sourceitem.FieldContentHash:
		return m.OldContentHash(ctx)
	case sourceitem.FieldDedupKey:
		return m.OldDedupKey(ctx)
	case sourceitem.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case sourceitem.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case sourceitem.FieldInteractions:
		return m.OldInteractions(ctx)
	case sourceitem.FieldRawHeat:
		return m.OldRawHeat(ctx)
	case sourceitem.FieldNormalizedHeat:
		return m.OldNormalizedHeat(ctx)
	case sourceitem.FieldWindow:
		return m.OldWindow(ctx)
	case sourceitem.FieldClusterID:
		return m.OldClusterID(ctx)
	case sourceitem.FieldOccurrenceCount:
		return m.OldOccurrenceCount(ctx)
	case sourceitem.FieldStatus:
		return m.OldStatus(ctx)
	case sourceitem.FieldEmbeddingID:
		return m.OldEmbeddingID(ctx)
	case sourceitem.FieldRunID:
		return m.OldRunID(ctx)
	case sourceitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourceitem.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case sourceitem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case sourceitem.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case sourceitem.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case sourceitem.FieldURLHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLHash(v)
		return nil
	case sourceitem.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case sourceitem.FieldDedupKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupKey(v)
		return nil
	case sourceitem.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case sourceitem.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case sourceitem.FieldInteractions:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractions(v)
		return nil
	case sourceitem.FieldRawHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawHeat(v)
		return nil
	case sourceitem.FieldNormalizedHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedHeat(v)
		return nil
	case sourceitem.FieldWindow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case sourceitem.FieldClusterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClusterID(v)
		return nil
	case sourceitem.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurrenceCount(v)
		return nil
	case sourceitem.FieldStatus:
		v, ok := value.(sourceitem.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case sourceitem.FieldEmbeddingID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingID(v)
		return nil
	case sourceitem.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case sourceitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceItemMutation) AddedFields() []string {
	var fields []string
	if m.addraw_heat != nil {
		fields = append(fields, sourceitem.FieldRawHeat)
	}
	if m.addnormalized_heat != nil {
		fields = append(fields, sourceitem.FieldNormalizedHeat)
	}
	if m.addoccurrence_count != nil {
		fields = append(fields, sourceitem.FieldOccurrenceCount)
	}
	if m.addembedding_id != nil {
		fields = append(fields, sourceitem.FieldEmbeddingID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourceitem.FieldRawHeat:
		return m.AddedRawHeat()
	case sourceitem.FieldNormalizedHeat:
		return m.AddedNormalizedHeat()
	case sourceitem.FieldOccurrenceCount:
		return m.AddedOccurrenceCount()
	case sourceitem.FieldEmbeddingID:
		return m.AddedEmbeddingID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourceitem.FieldRawHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawHeat(v)
		return nil
	case sourceitem.FieldNormalizedHeat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNormalizedHeat(v)
		return nil
	case sourceitem.FieldOccurrenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOccurrenceCount(v)
		return nil
	case sourceitem.FieldEmbeddingID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmbeddingID(v)
		return nil
	}
	return fmt.Errorf("unknown SourceItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sourceitem.FieldSummary) {
		fields = append(fields, sourceitem.FieldSummary)
	}
	if m.FieldCleared(sourceitem.FieldPublishedAt) {
		fields = append(fields, sourceitem.FieldPublishedAt)
	}
	if m.FieldCleared(sourceitem.FieldInteractions) {
		fields = append(fields, sourceitem.FieldInteractions)
	}
	if m.FieldCleared(sourceitem.FieldRawHeat) {
		fields = append(fields, sourceitem.FieldRawHeat)
	}
	if m.FieldCleared(sourceitem.FieldNormalizedHeat) {
		fields = append(fields, sourceitem.FieldNormalizedHeat)
	}
	if m.FieldCleared(sourceitem.FieldClusterID) {
		fields = append(fields, sourceitem.FieldClusterID)
	}
	if m.FieldCleared(sourceitem.FieldEmbeddingID) {
		fields = append(fields, sourceitem.FieldEmbeddingID)
	}
	if m.FieldCleared(sourceitem.FieldRunID) {
		fields = append(fields, sourceitem.FieldRunID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceItemMutation) ClearField(name string) error {
	switch name {
	case sourceitem.FieldSummary:
		m.ClearSummary()
		return nil
	case sourceitem.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case sourceitem.FieldInteractions:
		m.ClearInteractions()
		return nil
	case sourceitem.FieldRawHeat:
		m.ClearRawHeat()
		return nil
	case sourceitem.FieldNormalizedHeat:
		m.ClearNormalizedHeat()
		return nil
	case sourceitem.FieldClusterID:
		m.ClearClusterID()
		return nil
	case sourceitem.FieldEmbeddingID:
		m.ClearEmbeddingID()
		return nil
	case sourceitem.FieldRunID:
		m.ClearRunID()
		return nil
	}
	return fmt.Errorf("unknown SourceItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceItemMutation) ResetField(name string) error {
	switch name {
	case sourceitem.FieldPlatform:
		m.ResetPlatform()
		return nil
	case sourceitem.FieldTitle:
		m.ResetTitle()
		return nil
	case sourceitem.FieldSummary:
		m.ResetSummary()
		return nil
	case sourceitem.FieldURL:
		m.ResetURL()
		return nil
	case sourceitem.FieldURLHash:
		m.ResetURLHash()
		return nil
	case sourceitem.FieldContentHash:
		m.ResetContentHash()
		return nil
	case sourceitem.FieldDedupKey:
		m.ResetDedupKey()
		return nil
	case sourceitem.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case sourceitem.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case sourceitem.FieldInteractions:
		m.ResetInteractions()
		return nil
	case sourceitem.FieldRawHeat:
		m.ResetRawHeat()
		return nil
	case sourceitem.FieldNormalizedHeat:
		m.ResetNormalizedHeat()
		return nil
	case sourceitem.FieldWindow:
		m.ResetWindow()
		return nil
	case sourceitem.FieldClusterID:
		m.ResetClusterID()
		return nil
	case sourceitem.FieldOccurrenceCount:
		m.ResetOccurrenceCount()
		return nil
	case sourceitem.FieldStatus:
		m.ResetStatus()
		return nil
	case sourceitem.FieldEmbeddingID:
		m.ResetEmbeddingID()
		return nil
	case sourceitem.FieldRunID:
		m.ResetRunID()
		return nil
	case sourceitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.topic_nodes != nil {
		edges = append(edges, sourceitem.EdgeTopicNodes)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sourceitem.EdgeTopicNodes:
		ids := make([]ent.Value, 0, len(m.topic_nodes))
		for id := range m.topic_nodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtopic_nodes != nil {
		edges = append(edges, sourceitem.EdgeTopicNodes)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case sourceitem.EdgeTopicNodes:
		ids := make([]ent.Value, 0, len(m.removedtopic_nodes))
		for id := range m.removedtopic_nodes {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtopic_nodes {
		edges = append(edges, sourceitem.EdgeTopicNodes)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceItemMutation) EdgeCleared(name string) bool {
	switch name {
	case sourceitem.EdgeTopicNodes:
		return m.clearedtopic_nodes
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceItemMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SourceItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceItemMutation) ResetEdge(name string) error {
	switch name {
	case sourceitem.EdgeTopicNodes:
		m.ResetTopicNodes()
		return nil
	}
	return fmt.Errorf("unknown SourceItem edge %s", name)
}

// SummaryMutation represents an operation that mutates the Summary nodes in the graph.
type SummaryMutation struct {
	config
	op               Op
	typ              string
	id               *int
	content          *string
	key_points       *[]string
	appendkey_points []string
	method           *summary.Method
	generated_at     *time.Time
	provider         *string
	model            *string
	clearedFields    map[string]struct{}
	topic            *int
	clearedtopic     bool
	done             bool
	oldValue         func(context.Context) (*Summary, error)
	predicates       []predicate.Summary
}

var _ ent.Mutation = (*SummaryMutation)(nil)

// summaryOption allows management of the mutation configuration using functional options.
type summaryOption func(*SummaryMutation)

// newSummaryMutation creates new mutation for the Summary entity.
func newSummaryMutation(c config, op Op, opts ...summaryOption) *SummaryMutation {
	m := &SummaryMutation{
		config:        c,
		op:            op,
		typ:           TypeSummary,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSummaryID sets the ID field of the mutation.
func withSummaryID(id int) summaryOption {
	return func(m *SummaryMutation) {
		var (
			err   error
			once  sync.Once
			value *Summary
		)
		m.oldValue = func(ctx context.Context) (*Summary, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Summary.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSummary sets the old Summary of the mutation.
func withSummary(node *Summary) summaryOption {
	return func(m *SummaryMutation) {
		m.oldValue = func(context.Context) (*Summary, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SummaryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SummaryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SummaryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SummaryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Summary.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *SummaryMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *SummaryMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *SummaryMutation) ResetTopicID() {
	m.topic = nil
}

// SetContent sets the "content" field.
func (m *SummaryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *SummaryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *SummaryMutation) ResetContent() {
	m.content = nil
}

// SetKeyPoints sets the "key_points" field.
func (m *SummaryMutation) SetKeyPoints(s []string) {
	m.key_points = &s
	m.appendkey_points = nil
}

// KeyPoints returns the value of the "key_points" field in the mutation.
func (m *SummaryMutation) KeyPoints() (r []string, exists bool) {
	v := m.key_points
	if v == nil {
		return
	}
	return *v, true
}

// OldKeyPoints returns the old "key_points" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldKeyPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeyPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeyPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeyPoints: %w", err)
	}
	return oldValue.KeyPoints, nil
}

// AppendKeyPoints adds s to the "key_points" field.
func (m *SummaryMutation) AppendKeyPoints(s []string) {
	m.appendkey_points = append(m.appendkey_points, s...)
}

// AppendedKeyPoints returns the list of values that were appended to the "key_points" field in this mutation.
func (m *SummaryMutation) AppendedKeyPoints() ([]string, bool) {
	if len(m.appendkey_points) == 0 {
		return nil, false
	}
	return m.appendkey_points, true
}

// ClearKeyPoints clears the value of the "key_points" field.
func (m *SummaryMutation) ClearKeyPoints() {
	m.key_points = nil
	m.appendkey_points = nil
	m.clearedFields[summary.FieldKeyPoints] = struct{}{}
}

// KeyPointsCleared returns if the "key_points" field was cleared in this mutation.
func (m *SummaryMutation) KeyPointsCleared() bool {
	_, ok := m.clearedFields[summary.FieldKeyPoints]
	return ok
}

// ResetKeyPoints resets all changes to the "key_points" field.
func (m *SummaryMutation) ResetKeyPoints() {
	m.key_points = nil
	m.appendkey_points = nil
	delete(m.clearedFields, summary.FieldKeyPoints)
}

// SetMethod sets the "method" field.
func (m *SummaryMutation) SetMethod(s summary.Method) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *SummaryMutation) Method() (r summary.Method, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldMethod(ctx context.Context) (v summary.Method, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *SummaryMutation) ResetMethod() {
	m.method = nil
}

// SetGeneratedAt sets the "generated_at" field.
func (m *SummaryMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *SummaryMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *SummaryMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// SetProvider sets the "provider" field.
func (m *SummaryMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *SummaryMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *SummaryMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *SummaryMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *SummaryMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Summary entity.
// If the Summary object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SummaryMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *SummaryMutation) ResetModel() {
	m.model = nil
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *SummaryMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[summary.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *SummaryMutation) TopicCleared() bool {
	return m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *SummaryMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *SummaryMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// Where appends a list predicates to the SummaryMutation builder.
func (m *SummaryMutation) Where(ps ...predicate.Summary) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SummaryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SummaryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Summary, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SummaryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SummaryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Summary).
func (m *SummaryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SummaryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.topic != nil {
		fields = append(fields, summary.FieldTopicID)
	}
	if m.content != nil {
		fields = append(fields, summary.FieldContent)
	}
	if m.key_points != nil {
		fields = append(fields, summary.FieldKeyPoints)
	}
	if m.method != nil {
		fields = append(fields, summary.FieldMethod)
	}
	if m.generated_at != nil {
		fields = append(fields, summary.FieldGeneratedAt)
	}
	if m.provider != nil {
		fields = append(fields, summary.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, summary.FieldModel)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SummaryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case summary.FieldTopicID:
		return m.TopicID()
	case summary.FieldContent:
		return m.Content()
	case summary.FieldKeyPoints:
		return m.KeyPoints()
	case summary.FieldMethod:
		return m.Method()
	case summary.FieldGeneratedAt:
		return m.GeneratedAt()
	case summary.FieldProvider:
		return m.Provider()
	case summary.FieldModel:
		return m.Model()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SummaryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case summary.FieldTopicID:
		return m.OldTopicID(ctx)
	case summary.FieldContent:
		return m.OldContent(ctx)
	case summary.FieldKeyPoints:
		return m.OldKeyPoints(ctx)
	case summary.FieldMethod:
		return m.OldMethod(ctx)
	case summary.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	case summary.FieldProvider:
		return m.OldProvider(ctx)
	case summary.FieldModel:
		return m.OldModel(ctx)
	}
	return nil, fmt.Errorf("unknown Summary field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case summary.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case summary.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case summary.FieldKeyPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeyPoints(v)
		return nil
	case summary.FieldMethod:
		v, ok := value.(summary.Method)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case summary.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	case summary.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case summary.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SummaryMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SummaryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SummaryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Summary numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SummaryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(summary.FieldKeyPoints) {
		fields = append(fields, summary.FieldKeyPoints)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SummaryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SummaryMutation) ClearField(name string) error {
	switch name {
	case summary.FieldKeyPoints:
		m.ClearKeyPoints()
		return nil
	}
	return fmt.Errorf("unknown Summary nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SummaryMutation) ResetField(name string) error {
	switch name {
	case summary.FieldTopicID:
		m.ResetTopicID()
		return nil
	case summary.FieldContent:
		m.ResetContent()
		return nil
	case summary.FieldKeyPoints:
		m.ResetKeyPoints()
		return nil
	case summary.FieldMethod:
		m.ResetMethod()
		return nil
	case summary.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	case summary.FieldProvider:
		m.ResetProvider()
		return nil
	case summary.FieldModel:
		m.ResetModel()
		return nil
	}
	return fmt.Errorf("unknown Summary field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SummaryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.topic != nil {
		edges = append(edges, summary.EdgeTopic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SummaryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case summary.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SummaryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SummaryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SummaryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtopic {
		edges = append(edges, summary.EdgeTopic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SummaryMutation) EdgeCleared(name string) bool {
	switch name {
	case summary.EdgeTopic:
		return m.clearedtopic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SummaryMutation) ClearEdge(name string) error {
	switch name {
	case summary.EdgeTopic:
		m.ClearTopic()
		return nil
	}
	return fmt.Errorf("unknown Summary unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SummaryMutation) ResetEdge(name string) error {
	switch name {
	case summary.EdgeTopic:
		m.ResetTopic()
		return nil
	}
	return fmt.Errorf("unknown Summary edge %s", name)
}

// TopicMutation represents an operation that mutates the Topic nodes in the graph.
type TopicMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	title_key                  *string
	first_seen                 *time.Time
	last_active                *time.Time
	status                     *topic.Status
	intensity_total            *int
	addintensity_total         *int
	interaction_total          *int64
	addinteraction_total       *int64
	current_heat_normalized    *float64
	addcurrent_heat_normalized *float64
	heat_percentage            *float64
	addheat_percentage         *float64
	category                   *topic.Category
	category_confidence        *float64
	addcategory_confidence     *float64
	category_method            *topic.CategoryMethod
	category_updated_at        *time.Time
	summary_id                 *int
	addsummary_id              *int
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	nodes                      map[int]struct{}
	removednodes               map[int]struct{}
	clearednodes               bool
	period_heats               map[int]struct{}
	removedperiod_heats        map[int]struct{}
	clearedperiod_heats        bool
	summaries                  map[int]struct{}
	removedsummaries           map[int]struct{}
	clearedsummaries           bool
	done                       bool
	oldValue                   func(context.Context) (*Topic, error)
	predicates                 []predicate.Topic
}

var _ ent.Mutation = (*TopicMutation)(nil)

// topicOption allows management of the mutation configuration using functional options.
type topicOption func(*TopicMutation)

// newTopicMutation creates new mutation for the Topic entity.
func newTopicMutation(c config, op Op, opts ...topicOption) *TopicMutation {
	m := &TopicMutation{
		config:        c,
		op:            op,
		typ:           TypeTopic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicID sets the ID field of the mutation.
func withTopicID(id int) topicOption {
	return func(m *TopicMutation) {
		var (
			err   error
			once  sync.Once
			value *Topic
		)
		m.oldValue = func(ctx context.Context) (*Topic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Topic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopic sets the old Topic of the mutation.
func withTopic(node *Topic) topicOption {
	return func(m *TopicMutation) {
		m.oldValue = func(context.Context) (*Topic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Topic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitleKey sets the "title_key" field.
func (m *TopicMutation) SetTitleKey(s string) {
	m.title_key = &s
}

// TitleKey returns the value of the "title_key" field in the mutation.
func (m *TopicMutation) TitleKey() (r string, exists bool) {
	v := m.title_key
	if v == nil {
		return
	}
	return *v, true
}

// OldTitleKey returns the old "title_key" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldTitleKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitleKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitleKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitleKey: %w", err)
	}
	return oldValue.TitleKey, nil
}

// ResetTitleKey resets all changes to the "title_key" field.
func (m *TopicMutation) ResetTitleKey() {
	m.title_key = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *TopicMutation) SetFirstSeen(t time.Time) {
	m.first_seen = &t
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *TopicMutation) FirstSeen() (r time.Time, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldFirstSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *TopicMutation) ResetFirstSeen() {
	m.first_seen = nil
}

// SetLastActive sets the "last_active" field.
func (m *TopicMutation) SetLastActive(t time.Time) {
	m.last_active = &t
}

// LastActive returns the value of the "last_active" field in the mutation.
func (m *TopicMutation) LastActive() (r time.Time, exists bool) {
	v := m.last_active
	if v == nil {
		return
	}
	return *v, true
}

// OldLastActive returns the old "last_active" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldLastActive(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastActive: %w", err)
	}
	return oldValue.LastActive, nil
}

// ResetLastActive resets all changes to the "last_active" field.
func (m *TopicMutation) ResetLastActive() {
	m.last_active = nil
}

// SetStatus sets the "status" field.
func (m *TopicMutation) SetStatus(t topic.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TopicMutation) Status() (r topic.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldStatus(ctx context.Context) (v topic.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TopicMutation) ResetStatus() {
	m.status = nil
}

// SetIntensityTotal sets the "intensity_total" field.
func (m *TopicMutation) SetIntensityTotal(i int) {
	m.intensity_total = &i
	m.addintensity_total = nil
}

// IntensityTotal returns the value of the "intensity_total" field in the mutation.
func (m *TopicMutation) IntensityTotal() (r int, exists bool) {
	v := m.intensity_total
	if v == nil {
		return
	}
	return *v, true
}

// OldIntensityTotal returns the old "intensity_total" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldIntensityTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntensityTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntensityTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntensityTotal: %w", err)
	}
	return oldValue.IntensityTotal, nil
}

// AddIntensityTotal adds i to the "intensity_total" field.
func (m *TopicMutation) AddIntensityTotal(i int) {
	if m.addintensity_total != nil {
		*m.addintensity_total += i
	} else {
		m.addintensity_total = &i
	}
}

// AddedIntensityTotal returns the value that was added to the "intensity_total" field in this mutation.
func (m *TopicMutation) AddedIntensityTotal() (r int, exists bool) {
	v := m.addintensity_total
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntensityTotal resets all changes to the "intensity_total" field.
func (m *TopicMutation) ResetIntensityTotal() {
	m.intensity_total = nil
	m.addintensity_total = nil
}

// SetInteractionTotal sets the "interaction_total" field.
func (m *TopicMutation) SetInteractionTotal(i int64) {
	m.interaction_total = &i
	m.addinteraction_total = nil
}

// InteractionTotal returns the value of the "interaction_total" field in the mutation.
func (m *TopicMutation) InteractionTotal() (r int64, exists bool) {
	v := m.interaction_total
	if v == nil {
		return
	}
	return *v, true
}

// OldInteractionTotal returns the old "interaction_total" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldInteractionTotal(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInteractionTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInteractionTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInteractionTotal: %w", err)
	}
	return oldValue.InteractionTotal, nil
}

// AddInteractionTotal adds i to the "interaction_total" field.
func (m *TopicMutation) AddInteractionTotal(i int64) {
	if m.addinteraction_total != nil {
		*m.addinteraction_total += i
	} else {
		m.addinteraction_total = &i
	}
}

// AddedInteractionTotal returns the value that was added to the "interaction_total" field in this mutation.
func (m *TopicMutation) AddedInteractionTotal() (r int64, exists bool) {
	v := m.addinteraction_total
	if v == nil {
		return
	}
	return *v, true
}

// ClearInteractionTotal clears the value of the "interaction_total" field.
func (m *TopicMutation) ClearInteractionTotal() {
	m.interaction_total = nil
	m.addinteraction_total = nil
	m.clearedFields[topic.FieldInteractionTotal] = struct{}{}
}

// InteractionTotalCleared returns if the "interaction_total" field was cleared in this mutation.
func (m *TopicMutation) InteractionTotalCleared() bool {
	_, ok := m.clearedFields[topic.FieldInteractionTotal]
	return ok
}

// ResetInteractionTotal resets all changes to the "interaction_total" field.
func (m *TopicMutation) ResetInteractionTotal() {
	m.interaction_total = nil
	m.addinteraction_total = nil
	delete(m.clearedFields, topic.FieldInteractionTotal)
}

// SetCurrentHeatNormalized sets the "current_heat_normalized" field.
func (m *TopicMutation) SetCurrentHeatNormalized(f float64) {
	m.current_heat_normalized = &f
	m.addcurrent_heat_normalized = nil
}

// CurrentHeatNormalized returns the value of the "current_heat_normalized" field in the mutation.
func (m *TopicMutation) CurrentHeatNormalized() (r float64, exists bool) {
	v := m.current_heat_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentHeatNormalized returns the old "current_heat_normalized" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCurrentHeatNormalized(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentHeatNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentHeatNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentHeatNormalized: %w", err)
	}
	return oldValue.CurrentHeatNormalized, nil
}

// AddCurrentHeatNormalized adds f to the "current_heat_normalized" field.
func (m *TopicMutation) AddCurrentHeatNormalized(f float64) {
	if m.addcurrent_heat_normalized != nil {
		*m.addcurrent_heat_normalized += f
	} else {
		m.addcurrent_heat_normalized = &f
	}
}

// AddedCurrentHeatNormalized returns the value that was added to the "current_heat_normalized" field in this mutation.
func (m *TopicMutation) AddedCurrentHeatNormalized() (r float64, exists bool) {
	v := m.addcurrent_heat_normalized
	if v == nil {
		return
	}
	return *v, true
}

// ClearCurrentHeatNormalized clears the value of the "current_heat_normalized" field.
func (m *TopicMutation) ClearCurrentHeatNormalized() {
	m.current_heat_normalized = nil
	m.addcurrent_heat_normalized = nil
	m.clearedFields[topic.FieldCurrentHeatNormalized] = struct{}{}
}

// CurrentHeatNormalizedCleared returns if the "current_heat_normalized" field was cleared in this mutation.
func (m *TopicMutation) CurrentHeatNormalizedCleared() bool {
	_, ok := m.clearedFields[topic.FieldCurrentHeatNormalized]
	return ok
}

// ResetCurrentHeatNormalized resets all changes to the "current_heat_normalized" field.
func (m *TopicMutation) ResetCurrentHeatNormalized() {
	m.current_heat_normalized = nil
	m.addcurrent_heat_normalized = nil
	delete(m.clearedFields, topic.FieldCurrentHeatNormalized)
}

// SetHeatPercentage sets the "heat_percentage" field.
func (m *TopicMutation) SetHeatPercentage(f float64) {
	m.heat_percentage = &f
	m.addheat_percentage = nil
}

// HeatPercentage returns the value of the "heat_percentage" field in the mutation.
func (m *TopicMutation) HeatPercentage() (r float64, exists bool) {
	v := m.heat_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldHeatPercentage returns the old "heat_percentage" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldHeatPercentage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeatPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeatPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeatPercentage: %w", err)
	}
	return oldValue.HeatPercentage, nil
}

// AddHeatPercentage adds f to the "heat_percentage" field.
func (m *TopicMutation) AddHeatPercentage(f float64) {
	if m.addheat_percentage != nil {
		*m.addheat_percentage += f
	} else {
		m.addheat_percentage = &f
	}
}

// AddedHeatPercentage returns the value that was added to the "heat_percentage" field in this mutation.
func (m *TopicMutation) AddedHeatPercentage() (r float64, exists bool) {
	v := m.addheat_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (m *TopicMutation) ClearHeatPercentage() {
	m.heat_percentage = nil
	m.addheat_percentage = nil
	m.clearedFields[topic.FieldHeatPercentage] = struct{}{}
}

// HeatPercentageCleared returns if the "heat_percentage" field was cleared in this mutation.
func (m *TopicMutation) HeatPercentageCleared() bool {
	_, ok := m.clearedFields[topic.FieldHeatPercentage]
	return ok
}

// ResetHeatPercentage resets all changes to the "heat_percentage" field.
func (m *TopicMutation) ResetHeatPercentage() {
	m.heat_percentage = nil
	m.addheat_percentage = nil
	delete(m.clearedFields, topic.FieldHeatPercentage)
}

// SetCategory sets the "category" field.
func (m *TopicMutation) SetCategory(t topic.Category) {
	m.category = &t
}

// Category returns the value of the "category" field in the mutation.
func (m *TopicMutation) Category() (r topic.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCategory(ctx context.Context) (v *topic.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *TopicMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[topic.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *TopicMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[topic.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *TopicMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, topic.FieldCategory)
}

// SetCategoryConfidence sets the "category_confidence" field.
func (m *TopicMutation) SetCategoryConfidence(f float64) {
	m.category_confidence = &f
	m.addcategory_confidence = nil
}

// CategoryConfidence returns the value of the "category_confidence" field in the mutation.
func (m *TopicMutation) CategoryConfidence() (r float64, exists bool) {
	v := m.category_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryConfidence returns the old "category_confidence" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCategoryConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryConfidence: %w", err)
	}
	return oldValue.CategoryConfidence, nil
}

// AddCategoryConfidence adds f to the "category_confidence" field.
func (m *TopicMutation) AddCategoryConfidence(f float64) {
	if m.addcategory_confidence != nil {
		*m.addcategory_confidence += f
	} else {
		m.addcategory_confidence = &f
	}
}

// AddedCategoryConfidence returns the value that was added to the "category_confidence" field in this mutation.
func (m *TopicMutation) AddedCategoryConfidence() (r float64, exists bool) {
	v := m.addcategory_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (m *TopicMutation) ClearCategoryConfidence() {
	m.category_confidence = nil
	m.addcategory_confidence = nil
	m.clearedFields[topic.FieldCategoryConfidence] = struct{}{}
}

// CategoryConfidenceCleared returns if the "category_confidence" field was cleared in this mutation.
func (m *TopicMutation) CategoryConfidenceCleared() bool {
	_, ok := m.clearedFields[topic.FieldCategoryConfidence]
	return ok
}

// ResetCategoryConfidence resets all changes to the "category_confidence" field.
func (m *TopicMutation) ResetCategoryConfidence() {
	m.category_confidence = nil
	m.addcategory_confidence = nil
	delete(m.clearedFields, topic.FieldCategoryConfidence)
}

// SetCategoryMethod sets the "category_method" field.
func (m *TopicMutation) SetCategoryMethod(tm topic.CategoryMethod) {
	m.category_method = &tm
}

// CategoryMethod returns the value of the "category_method" field in the mutation.
func (m *TopicMutation) CategoryMethod() (r topic.CategoryMethod, exists bool) {
	v := m.category_method
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryMethod returns the old "category_method" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCategoryMethod(ctx context.Context) (v *topic.CategoryMethod, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryMethod: %w", err)
	}
	return oldValue.CategoryMethod, nil
}

// ClearCategoryMethod clears the value of the "category_method" field.
func (m *TopicMutation) ClearCategoryMethod() {
	m.category_method = nil
	m.clearedFields[topic.FieldCategoryMethod] = struct{}{}
}

// CategoryMethodCleared returns if the "category_method" field was cleared in this mutation.
func (m *TopicMutation) CategoryMethodCleared() bool {
	_, ok := m.clearedFields[topic.FieldCategoryMethod]
	return ok
}

// ResetCategoryMethod resets all changes to the "category_method" field.
func (m *TopicMutation) ResetCategoryMethod() {
	m.category_method = nil
	delete(m.clearedFields, topic.FieldCategoryMethod)
}

// SetCategoryUpdatedAt sets the "category_updated_at" field.
func (m *TopicMutation) SetCategoryUpdatedAt(t time.Time) {
	m.category_updated_at = &t
}

// CategoryUpdatedAt returns the value of the "category_updated_at" field in the mutation.
func (m *TopicMutation) CategoryUpdatedAt() (r time.Time, exists bool) {
	v := m.category_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryUpdatedAt returns the old "category_updated_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCategoryUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryUpdatedAt: %w", err)
	}
	return oldValue.CategoryUpdatedAt, nil
}

// ClearCategoryUpdatedAt clears the value of the "category_updated_at" field.
func (m *TopicMutation) ClearCategoryUpdatedAt() {
	m.category_updated_at = nil
	m.clearedFields[topic.FieldCategoryUpdatedAt] = struct{}{}
}

// CategoryUpdatedAtCleared returns if the "category_updated_at" field was cleared in this mutation.
func (m *TopicMutation) CategoryUpdatedAtCleared() bool {
	_, ok := m.clearedFields[topic.FieldCategoryUpdatedAt]
	return ok
}

// ResetCategoryUpdatedAt resets all changes to the "category_updated_at" field.
func (m *TopicMutation) ResetCategoryUpdatedAt() {
	m.category_updated_at = nil
	delete(m.clearedFields, topic.FieldCategoryUpdatedAt)
}

// SetSummaryID sets the "summary_id" field.
func (m *TopicMutation) SetSummaryID(i int) {
	m.summary_id = &i
	m.addsummary_id = nil
}

// SummaryID returns the value of the "summary_id" field in the mutation.
func (m *TopicMutation) SummaryID() (r int, exists bool) {
	v := m.summary_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSummaryID returns the old "summary_id" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldSummaryID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummaryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummaryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummaryID: %w", err)
	}
	return oldValue.SummaryID, nil
}

// AddSummaryID adds i to the "summary_id" field.
func (m *TopicMutation) AddSummaryID(i int) {
	if m.addsummary_id != nil {
		*m.addsummary_id += i
	} else {
		m.addsummary_id = &i
	}
}

// AddedSummaryID returns the value that was added to the "summary_id" field in this mutation.
func (m *TopicMutation) AddedSummaryID() (r int, exists bool) {
	v := m.addsummary_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearSummaryID clears the value of the "summary_id" field.
func (m *TopicMutation) ClearSummaryID() {
	m.summary_id = nil
	m.addsummary_id = nil
	m.clearedFields[topic.FieldSummaryID] = struct{}{}
}

// SummaryIDCleared returns if the "summary_id" field was cleared in this mutation.
func (m *TopicMutation) SummaryIDCleared() bool {
	_, ok := m.clearedFields[topic.FieldSummaryID]
	return ok
}

// ResetSummaryID resets all changes to the "summary_id" field.
func (m *TopicMutation) ResetSummaryID() {
	m.summary_id = nil
	m.addsummary_id = nil
	delete(m.clearedFields, topic.FieldSummaryID)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Topic entity.
// If the Topic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddNodeIDs adds the "nodes" edge to the TopicNode entity by ids.
func (m *TopicMutation) AddNodeIDs(ids ...int) {
	if m.nodes == nil {
		m.nodes = make(map[int]struct{})
	}
	for i := range ids {
		m.nodes[ids[i]] = struct{}{}
	}
}

// ClearNodes clears the "nodes" edge to the TopicNode entity.
func (m *TopicMutation) ClearNodes() {
	m.clearednodes = true
}

// NodesCleared reports if the "nodes" edge to the TopicNode entity was cleared.
func (m *TopicMutation) NodesCleared() bool {
	return m.clearednodes
}

// RemoveNodeIDs removes the "nodes" edge to the TopicNode entity by IDs.
func (m *TopicMutation) RemoveNodeIDs(ids ...int) {
	if m.removednodes == nil {
		m.removednodes = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.nodes, ids[i])
		m.removednodes[ids[i]] = struct{}{}
	}
}

// RemovedNodes returns the removed IDs of the "nodes" edge to the TopicNode entity.
func (m *TopicMutation) RemovedNodesIDs() (ids []int) {
	for id := range m.removednodes {
		ids = append(ids, id)
	}
	return
}

// NodesIDs returns the "nodes" edge IDs in the mutation.
func (m *TopicMutation) NodesIDs() (ids []int) {
	for id := range m.nodes {
		ids = append(ids, id)
	}
	return
}

// ResetNodes resets all changes to the "nodes" edge.
func (m *TopicMutation) ResetNodes() {
	m.nodes = nil
	m.clearednodes = false
	m.removednodes = nil
}

// AddPeriodHeatIDs adds the "period_heats" edge to the TopicPeriodHeat entity by ids.
func (m *TopicMutation) AddPeriodHeatIDs(ids ...int) {
	if m.period_heats == nil {
		m.period_heats = make(map[int]struct{})
	}
	for i := range ids {
		m.period_heats[ids[i]] = struct{}{}
	}
}

// ClearPeriodHeats clears the "period_heats" edge to the TopicPeriodHeat entity.
func (m *TopicMutation) ClearPeriodHeats() {
	m.clearedperiod_heats = true
}

// PeriodHeatsCleared reports if the "period_heats" edge to the TopicPeriodHeat entity was cleared.
func (m *TopicMutation) PeriodHeatsCleared() bool {
	return m.clearedperiod_heats
}

// RemovePeriodHeatIDs removes the "period_heats" edge to the TopicPeriodHeat entity by IDs.
func (m *TopicMutation) RemovePeriodHeatIDs(ids ...int) {
	if m.removedperiod_heats == nil {
		m.removedperiod_heats = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.period_heats, ids[i])
		m.removedperiod_heats[ids[i]] = struct{}{}
	}
}

// RemovedPeriodHeats returns the removed IDs of the "period_heats" edge to the TopicPeriodHeat entity.
func (m *TopicMutation) RemovedPeriodHeatsIDs() (ids []int) {
	for id := range m.removedperiod_heats {
		ids = append(ids, id)
	}
	return
}

// PeriodHeatsIDs returns the "period_heats" edge IDs in the mutation.
func (m *TopicMutation) PeriodHeatsIDs() (ids []int) {
	for id := range m.period_heats {
		ids = append(ids, id)
	}
	return
}

// ResetPeriodHeats resets all changes to the "period_heats" edge.
func (m *TopicMutation) ResetPeriodHeats() {
	m.period_heats = nil
	m.clearedperiod_heats = false
	m.removedperiod_heats = nil
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by ids.
func (m *TopicMutation) AddSummaryIDs(ids ...int) {
	if m.summaries == nil {
		m.summaries = make(map[int]struct{})
	}
	for i := range ids {
		m.summaries[ids[i]] = struct{}{}
	}
}

// ClearSummaries clears the "summaries" edge to the Summary entity.
func (m *TopicMutation) ClearSummaries() {
	m.clearedsummaries = true
}

// SummariesCleared reports if the "summaries" edge to the Summary entity was cleared.
func (m *TopicMutation) SummariesCleared() bool {
	return m.clearedsummaries
}

// RemoveSummaryIDs removes the "summaries" edge to the Summary entity by IDs.
func (m *TopicMutation) RemoveSummaryIDs(ids ...int) {
	if m.removedsummaries == nil {
		m.removedsummaries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.summaries, ids[i])
		m.removedsummaries[ids[i]] = struct{}{}
	}
}

// RemovedSummaries returns the removed IDs of the "summaries" edge to the Summary entity.
func (m *TopicMutation) RemovedSummariesIDs() (ids []int) {
	for id := range m.removedsummaries {
		ids = append(ids, id)
	}
	return
}

// SummariesIDs returns the "summaries" edge IDs in the mutation.
func (m *TopicMutation) SummariesIDs() (ids []int) {
	for id := range m.summaries {
		ids = append(ids, id)
	}
	return
}

// ResetSummaries resets all changes to the "summaries" edge.
func (m *TopicMutation) ResetSummaries() {
	m.summaries = nil
	m.clearedsummaries = false
	m.removedsummaries = nil
}

// Where appends a list predicates to the TopicMutation builder.
func (m *TopicMutation) Where(ps ...predicate.Topic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Topic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Topic).
func (m *TopicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.title_key != nil {
		fields = append(fields, topic.FieldTitleKey)
	}
	if m.first_seen != nil {
		fields = append(fields, topic.FieldFirstSeen)
	}
	if m.last_active != nil {
		fields = append(fields, topic.FieldLastActive)
	}
	if m.status != nil {
		fields = append(fields, topic.FieldStatus)
	}
	if m.intensity_total != nil {
		fields = append(fields, topic.FieldIntensityTotal)
	}
	if m.interaction_total != nil {
		fields = append(fields, topic.FieldInteractionTotal)
	}
	if m.current_heat_normalized != nil {
		fields = append(fields, topic.FieldCurrentHeatNormalized)
	}
	if m.heat_percentage != nil {
		fields = append(fields, topic.FieldHeatPercentage)
	}
	if m.category != nil {
		fields = append(fields, topic.FieldCategory)
	}
	if m.category_confidence != nil {
		fields = append(fields, topic.FieldCategoryConfidence)
	}
	if m.category_method != nil {
		fields = append(fields, topic.FieldCategoryMethod)
	}
	if m.category_updated_at != nil {
		fields = append(fields, topic.FieldCategoryUpdatedAt)
	}
	if m.summary_id != nil {
		fields = append(fields, topic.FieldSummaryID)
	}
	if m.created_at != nil {
		fields = append(fields, topic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, topic.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldTitleKey:
		return m.TitleKey()
	case topic.FieldFirstSeen:
		return m.FirstSeen()
	case topic.FieldLastActive:
		return m.LastActive()
	case topic.FieldStatus:
		return m.Status()
	case topic.FieldIntensityTotal:
		return m.IntensityTotal()
	case topic.FieldInteractionTotal:
		return m.InteractionTotal()
	case topic.FieldCurrentHeatNormalized:
		return m.CurrentHeatNormalized()
	case topic.FieldHeatPercentage:
		return m.HeatPercentage()
	case topic.FieldCategory:
		return m.Category()
	case topic.FieldCategoryConfidence:
		return m.CategoryConfidence()
	case topic.FieldCategoryMethod:
		return m.CategoryMethod()
	case topic.FieldCategoryUpdatedAt:
		return m.CategoryUpdatedAt()
	case topic.FieldSummaryID:
		return m.SummaryID()
	case topic.FieldCreatedAt:
		return m.CreatedAt()
	case topic.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topic.FieldTitleKey:
		return m.OldTitleKey(ctx)
	case topic.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case topic.FieldLastActive:
		return m.OldLastActive(ctx)
	case topic.FieldStatus:
		return m.OldStatus(ctx)
	case topic.FieldIntensityTotal:
		return m.OldIntensityTotal(ctx)
	case topic.FieldInteractionTotal:
		return m.OldInteractionTotal(ctx)
	case topic.FieldCurrentHeatNormalized:
		return m.OldCurrentHeatNormalized(ctx)
	case topic.FieldHeatPercentage:
		return m.OldHeatPercentage(ctx)
	case topic.FieldCategory:
		return m.OldCategory(ctx)
	case topic.FieldCategoryConfidence:
		return m.OldCategoryConfidence(ctx)
	case topic.FieldCategoryMethod:
		return m.OldCategoryMethod(ctx)
	case topic.FieldCategoryUpdatedAt:
		return m.OldCategoryUpdatedAt(ctx)
	case topic.FieldSummaryID:
		return m.OldSummaryID(ctx)
	case topic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case topic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Topic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topic.FieldTitleKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitleKey(v)
		return nil
	case topic.FieldFirstSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case topic.FieldLastActive:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastActive(v)
		return nil
	case topic.FieldStatus:
		v, ok := value.(topic.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case topic.FieldIntensityTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntensityTotal(v)
		return nil
	case topic.FieldInteractionTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInteractionTotal(v)
		return nil
	case topic.FieldCurrentHeatNormalized:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentHeatNormalized(v)
		return nil
	case topic.FieldHeatPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeatPercentage(v)
		return nil
	case topic.FieldCategory:
		v, ok := value.(topic.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case topic.FieldCategoryConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryConfidence(v)
		return nil
	case topic.FieldCategoryMethod:
		v, ok := value.(topic.CategoryMethod)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryMethod(v)
		return nil
	case topic.FieldCategoryUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryUpdatedAt(v)
		return nil
	case topic.FieldSummaryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummaryID(v)
		return nil
	case topic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case topic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicMutation) AddedFields() []string {
	var fields []string
	if m.addintensity_total != nil {
		fields = append(fields, topic.FieldIntensityTotal)
	}
	if m.addinteraction_total != nil {
		fields = append(fields, topic.FieldInteractionTotal)
	}
	if m.addcurrent_heat_normalized != nil {
		fields = append(fields, topic.FieldCurrentHeatNormalized)
	}
	if m.addheat_percentage != nil {
		fields = append(fields, topic.FieldHeatPercentage)
	}
	if m.addcategory_confidence != nil {
		fields = append(fields, topic.FieldCategoryConfidence)
	}
	if m.addsummary_id != nil {
		fields = append(fields, topic.FieldSummaryID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topic.FieldIntensityTotal:
		return m.AddedIntensityTotal()
	case topic.FieldInteractionTotal:
		return m.AddedInteractionTotal()
	case topic.FieldCurrentHeatNormalized:
		return m.AddedCurrentHeatNormalized()
	case topic.FieldHeatPercentage:
		return m.AddedHeatPercentage()
	case topic.FieldCategoryConfidence:
		return m.AddedCategoryConfidence()
	case topic.FieldSummaryID:
		return m.AddedSummaryID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topic.FieldIntensityTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntensityTotal(v)
		return nil
	case topic.FieldInteractionTotal:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInteractionTotal(v)
		return nil
	case topic.FieldCurrentHeatNormalized:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentHeatNormalized(v)
		return nil
	case topic.FieldHeatPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeatPercentage(v)
		return nil
	case topic.FieldCategoryConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCategoryConfidence(v)
		return nil
	case topic.FieldSummaryID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSummaryID(v)
		return nil
	}
	return fmt.Errorf("unknown Topic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topic.FieldInteractionTotal) {
		fields = append(fields, topic.FieldInteractionTotal)
	}
	if m.FieldCleared(topic.FieldCurrentHeatNormalized) {
		fields = append(fields, topic.FieldCurrentHeatNormalized)
	}
	if m.FieldCleared(topic.FieldHeatPercentage) {
		fields = append(fields, topic.FieldHeatPercentage)
	}
	if m.FieldCleared(topic.FieldCategory) {
		fields = append(fields, topic.FieldCategory)
	}
	if m.FieldCleared(topic.FieldCategoryConfidence) {
		fields = append(fields, topic.FieldCategoryConfidence)
	}
	if m.FieldCleared(topic.FieldCategoryMethod) {
		fields = append(fields, topic.FieldCategoryMethod)
	}
	if m.FieldCleared(topic.FieldCategoryUpdatedAt) {
		fields = append(fields, topic.FieldCategoryUpdatedAt)
	}
	if m.FieldCleared(topic.FieldSummaryID) {
		fields = append(fields, topic.FieldSummaryID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicMutation) ClearField(name string) error {
	switch name {
	case topic.FieldInteractionTotal:
		m.ClearInteractionTotal()
		return nil
	case topic.FieldCurrentHeatNormalized:
		m.ClearCurrentHeatNormalized()
		return nil
	case topic.FieldHeatPercentage:
		m.ClearHeatPercentage()
		return nil
	case topic.FieldCategory:
		m.ClearCategory()
		return nil
	case topic.FieldCategoryConfidence:
		m.ClearCategoryConfidence()
		return nil
	case topic.FieldCategoryMethod:
		m.ClearCategoryMethod()
		return nil
	case topic.FieldCategoryUpdatedAt:
		m.ClearCategoryUpdatedAt()
		return nil
	case topic.FieldSummaryID:
		m.ClearSummaryID()
		return nil
	}
	return fmt.Errorf("unknown Topic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicMutation) ResetField(name string) error {
	switch name {
	case topic.FieldTitleKey:
		m.ResetTitleKey()
		return nil
	case topic.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case topic.FieldLastActive:
		m.ResetLastActive()
		return nil
	case topic.FieldStatus:
		m.ResetStatus()
		return nil
	case topic.FieldIntensityTotal:
		m.ResetIntensityTotal()
		return nil
	case topic.FieldInteractionTotal:
		m.ResetInteractionTotal()
		return nil
	case topic.FieldCurrentHeatNormalized:
		m.ResetCurrentHeatNormalized()
		return nil
	case topic.FieldHeatPercentage:
		m.ResetHeatPercentage()
		return nil
	case topic.FieldCategory:
		m.ResetCategory()
		return nil
	case topic.FieldCategoryConfidence:
		m.ResetCategoryConfidence()
		return nil
	case topic.FieldCategoryMethod:
		m.ResetCategoryMethod()
		return nil
	case topic.FieldCategoryUpdatedAt:
		m.ResetCategoryUpdatedAt()
		return nil
	case topic.FieldSummaryID:
		m.ResetSummaryID()
		return nil
	case topic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case topic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Topic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.nodes != nil {
		edges = append(edges, topic.EdgeNodes)
	}
	if m.period_heats != nil {
		edges = append(edges, topic.EdgePeriodHeats)
	}
	if m.summaries != nil {
		edges = append(edges, topic.EdgeSummaries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.nodes))
		for id := range m.nodes {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgePeriodHeats:
		ids := make([]ent.Value, 0, len(m.period_heats))
		for id := range m.period_heats {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.summaries))
		for id := range m.summaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removednodes != nil {
		edges = append(edges, topic.EdgeNodes)
	}
	if m.removedperiod_heats != nil {
		edges = append(edges, topic.EdgePeriodHeats)
	}
	if m.removedsummaries != nil {
		edges = append(edges, topic.EdgeSummaries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topic.EdgeNodes:
		ids := make([]ent.Value, 0, len(m.removednodes))
		for id := range m.removednodes {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgePeriodHeats:
		ids := make([]ent.Value, 0, len(m.removedperiod_heats))
		for id := range m.removedperiod_heats {
			ids = append(ids, id)
		}
		return ids
	case topic.EdgeSummaries:
		ids := make([]ent.Value, 0, len(m.removedsummaries))
		for id := range m.removedsummaries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearednodes {
		edges = append(edges, topic.EdgeNodes)
	}
	if m.clearedperiod_heats {
		edges = append(edges, topic.EdgePeriodHeats)
	}
	if m.clearedsummaries {
		edges = append(edges, topic.EdgeSummaries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicMutation) EdgeCleared(name string) bool {
	switch name {
	case topic.EdgeNodes:
		return m.clearednodes
	case topic.EdgePeriodHeats:
		return m.clearedperiod_heats
	case topic.EdgeSummaries:
		return m.clearedsummaries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Topic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicMutation) ResetEdge(name string) error {
	switch name {
	case topic.EdgeNodes:
		m.ResetNodes()
		return nil
	case topic.EdgePeriodHeats:
		m.ResetPeriodHeats()
		return nil
	case topic.EdgeSummaries:
		m.ResetSummaries()
		return nil
	}
	return fmt.Errorf("unknown Topic edge %s", name)
}

// TopicNodeMutation represents an operation that mutates the TopicNode nodes in the graph.
type TopicNodeMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	appended_at        *time.Time
	clearedFields      map[string]struct{}
	topic              *int
	clearedtopic       bool
	source_item        *int
	clearedsource_item bool
	done               bool
	oldValue           func(context.Context) (*TopicNode, error)
	predicates         []predicate.TopicNode
}

var _ ent.Mutation = (*TopicNodeMutation)(nil)

// topicnodeOption allows management of the mutation configuration using functional options.
type topicnodeOption func(*TopicNodeMutation)

// newTopicNodeMutation creates new mutation for the TopicNode entity.
func newTopicNodeMutation(c config, op Op, opts ...topicnodeOption) *TopicNodeMutation {
	m := &TopicNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicNodeID sets the ID field of the mutation.
func withTopicNodeID(id int) topicnodeOption {
	return func(m *TopicNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicNode
		)
		m.oldValue = func(ctx context.Context) (*TopicNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicNode sets the old TopicNode of the mutation.
func withTopicNode(node *TopicNode) topicnodeOption {
	return func(m *TopicNodeMutation) {
		m.oldValue = func(context.Context) (*TopicNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicNodeMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicNodeMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *TopicNodeMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicNodeMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicNode entity.
// If the TopicNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicNodeMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicNodeMutation) ResetTopicID() {
	m.topic = nil
}

// SetSourceItemID sets the "source_item_id" field.
func (m *TopicNodeMutation) SetSourceItemID(i int) {
	m.source_item = &i
}

// SourceItemID returns the value of the "source_item_id" field in the mutation.
func (m *TopicNodeMutation) SourceItemID() (r int, exists bool) {
	v := m.source_item
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceItemID returns the old "source_item_id" field's value of the TopicNode entity.
// If the TopicNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicNodeMutation) OldSourceItemID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceItemID: %w", err)
	}
	return oldValue.SourceItemID, nil
}

// ResetSourceItemID resets all changes to the "source_item_id" field.
func (m *TopicNodeMutation) ResetSourceItemID() {
	m.source_item = nil
}

// SetAppendedAt sets the "appended_at" field.
func (m *TopicNodeMutation) SetAppendedAt(t time.Time) {
	m.appended_at = &t
}

// AppendedAt returns the value of the "appended_at" field in the mutation.
func (m *TopicNodeMutation) AppendedAt() (r time.Time, exists bool) {
	v := m.appended_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAppendedAt returns the old "appended_at" field's value of the TopicNode entity.
// If the TopicNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicNodeMutation) OldAppendedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppendedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppendedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppendedAt: %w", err)
	}
	return oldValue.AppendedAt, nil
}

// ResetAppendedAt resets all changes to the "appended_at" field.
func (m *TopicNodeMutation) ResetAppendedAt() {
	m.appended_at = nil
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *TopicNodeMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[topicnode.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *TopicNodeMutation) TopicCleared() bool {
	return m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *TopicNodeMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *TopicNodeMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// ClearSourceItem clears the "source_item" edge to the SourceItem entity.
func (m *TopicNodeMutation) ClearSourceItem() {
	m.clearedsource_item = true
	m.clearedFields[topicnode.FieldSourceItemID] = struct{}{}
}

// SourceItemCleared reports if the "source_item" edge to the SourceItem entity was cleared.
func (m *TopicNodeMutation) SourceItemCleared() bool {
	return m.clearedsource_item
}

// SourceItemIDs returns the "source_item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SourceItemID instead. It exists only for internal usage by the builders.
func (m *TopicNodeMutation) SourceItemIDs() (ids []int) {
	if id := m.source_item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSourceItem resets all changes to the "source_item" edge.
func (m *TopicNodeMutation) ResetSourceItem() {
	m.source_item = nil
	m.clearedsource_item = false
}

// Where appends a list predicates to the TopicNodeMutation builder.
func (m *TopicNodeMutation) Where(ps ...predicate.TopicNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicNode).
func (m *TopicNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicNodeMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.topic != nil {
		fields = append(fields, topicnode.FieldTopicID)
	}
	if m.source_item != nil {
		fields = append(fields, topicnode.FieldSourceItemID)
	}
	if m.appended_at != nil {
		fields = append(fields, topicnode.FieldAppendedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicnode.FieldTopicID:
		return m.TopicID()
	case topicnode.FieldSourceItemID:
		return m.SourceItemID()
	case topicnode.FieldAppendedAt:
		return m.AppendedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicnode.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicnode.FieldSourceItemID:
		return m.OldSourceItemID(ctx)
	case topicnode.FieldAppendedAt:
		return m.OldAppendedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicnode.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicnode.FieldSourceItemID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceItemID(v)
		return nil
	case topicnode.FieldAppendedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppendedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicNodeMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicNodeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TopicNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicNodeMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicNodeMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TopicNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicNodeMutation) ResetField(name string) error {
	switch name {
	case topicnode.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicnode.FieldSourceItemID:
		m.ResetSourceItemID()
		return nil
	case topicnode.FieldAppendedAt:
		m.ResetAppendedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.topic != nil {
		edges = append(edges, topicnode.EdgeTopic)
	}
	if m.source_item != nil {
		edges = append(edges, topicnode.EdgeSourceItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicNodeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topicnode.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	case topicnode.EdgeSourceItem:
		if id := m.source_item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtopic {
		edges = append(edges, topicnode.EdgeTopic)
	}
	if m.clearedsource_item {
		edges = append(edges, topicnode.EdgeSourceItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicNodeMutation) EdgeCleared(name string) bool {
	switch name {
	case topicnode.EdgeTopic:
		return m.clearedtopic
	case topicnode.EdgeSourceItem:
		return m.clearedsource_item
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicNodeMutation) ClearEdge(name string) error {
	switch name {
	case topicnode.EdgeTopic:
		m.ClearTopic()
		return nil
	case topicnode.EdgeSourceItem:
		m.ClearSourceItem()
		return nil
	}
	return fmt.Errorf("unknown TopicNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicNodeMutation) ResetEdge(name string) error {
	switch name {
	case topicnode.EdgeTopic:
		m.ResetTopic()
		return nil
	case topicnode.EdgeSourceItem:
		m.ResetSourceItem()
		return nil
	}
	return fmt.Errorf("unknown TopicNode edge %s", name)
}

// TopicPeriodHeatMutation represents an operation that mutates the TopicPeriodHeat nodes in the graph.
type TopicPeriodHeatMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	date               *string
	period             *topicperiodheat.Period
	heat_normalized    *float64
	addheat_normalized *float64
	heat_percentage    *float64
	addheat_percentage *float64
	source_count       *int
	addsource_count    *int
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	topic              *int
	clearedtopic       bool
	done               bool
	oldValue           func(context.Context) (*TopicPeriodHeat, error)
	predicates         []predicate.TopicPeriodHeat
}

var _ ent.Mutation = (*TopicPeriodHeatMutation)(nil)

// topicperiodheatOption allows management of the mutation configuration using functional options.
type topicperiodheatOption func(*TopicPeriodHeatMutation)

// newTopicPeriodHeatMutation creates new mutation for the TopicPeriodHeat entity.
func newTopicPeriodHeatMutation(c config, op Op, opts ...topicperiodheatOption) *TopicPeriodHeatMutation {
	m := &TopicPeriodHeatMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicPeriodHeat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicPeriodHeatID sets the ID field of the mutation.
func withTopicPeriodHeatID(id int) topicperiodheatOption {
	return func(m *TopicPeriodHeatMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicPeriodHeat
		)
		m.oldValue = func(ctx context.Context) (*TopicPeriodHeat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicPeriodHeat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicPeriodHeat sets the old TopicPeriodHeat of the mutation.
func withTopicPeriodHeat(node *TopicPeriodHeat) topicperiodheatOption {
	return func(m *TopicPeriodHeatMutation) {
		m.oldValue = func(context.Context) (*TopicPeriodHeat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicPeriodHeatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicPeriodHeatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicPeriodHeatMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicPeriodHeatMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicPeriodHeat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *TopicPeriodHeatMutation) SetTopicID(i int) {
	m.topic = &i
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicPeriodHeatMutation) TopicID() (r int, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicPeriodHeatMutation) ResetTopicID() {
	m.topic = nil
}

// SetDate sets the "date" field.
func (m *TopicPeriodHeatMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *TopicPeriodHeatMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *TopicPeriodHeatMutation) ResetDate() {
	m.date = nil
}

// SetPeriod sets the "period" field.
func (m *TopicPeriodHeatMutation) SetPeriod(t topicperiodheat.Period) {
	m.period = &t
}

// Period returns the value of the "period" field in the mutation.
func (m *TopicPeriodHeatMutation) Period() (r topicperiodheat.Period, exists bool) {
	v := m.period
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriod returns the old "period" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldPeriod(ctx context.Context) (v topicperiodheat.Period, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriod: %w", err)
	}
	return oldValue.Period, nil
}

// ResetPeriod resets all changes to the "period" field.
func (m *TopicPeriodHeatMutation) ResetPeriod() {
	m.period = nil
}

// SetHeatNormalized sets the "heat_normalized" field.
func (m *TopicPeriodHeatMutation) SetHeatNormalized(f float64) {
	m.heat_normalized = &f
	m.addheat_normalized = nil
}

// HeatNormalized returns the value of the "heat_normalized" field in the mutation.
func (m *TopicPeriodHeatMutation) HeatNormalized() (r float64, exists bool) {
	v := m.heat_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldHeatNormalized returns the old "heat_normalized" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldHeatNormalized(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeatNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeatNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeatNormalized: %w", err)
	}
	return oldValue.HeatNormalized, nil
}

// AddHeatNormalized adds f to the "heat_normalized" field.
func (m *TopicPeriodHeatMutation) AddHeatNormalized(f float64) {
	if m.addheat_normalized != nil {
		*m.addheat_normalized += f
	} else {
		m.addheat_normalized = &f
	}
}

// AddedHeatNormalized returns the value that was added to the "heat_normalized" field in this mutation.
func (m *TopicPeriodHeatMutation) AddedHeatNormalized() (r float64, exists bool) {
	v := m.addheat_normalized
	if v == nil {
		return
	}
	return *v, true
}

// ResetHeatNormalized resets all changes to the "heat_normalized" field.
func (m *TopicPeriodHeatMutation) ResetHeatNormalized() {
	m.heat_normalized = nil
	m.addheat_normalized = nil
}

// SetHeatPercentage sets the "heat_percentage" field.
func (m *TopicPeriodHeatMutation) SetHeatPercentage(f float64) {
	m.heat_percentage = &f
	m.addheat_percentage = nil
}

// HeatPercentage returns the value of the "heat_percentage" field in the mutation.
func (m *TopicPeriodHeatMutation) HeatPercentage() (r float64, exists bool) {
	v := m.heat_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldHeatPercentage returns the old "heat_percentage" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldHeatPercentage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeatPercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeatPercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeatPercentage: %w", err)
	}
	return oldValue.HeatPercentage, nil
}

// AddHeatPercentage adds f to the "heat_percentage" field.
func (m *TopicPeriodHeatMutation) AddHeatPercentage(f float64) {
	if m.addheat_percentage != nil {
		*m.addheat_percentage += f
	} else {
		m.addheat_percentage = &f
	}
}

// AddedHeatPercentage returns the value that was added to the "heat_percentage" field in this mutation.
func (m *TopicPeriodHeatMutation) AddedHeatPercentage() (r float64, exists bool) {
	v := m.addheat_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (m *TopicPeriodHeatMutation) ClearHeatPercentage() {
	m.heat_percentage = nil
	m.addheat_percentage = nil
	m.clearedFields[topicperiodheat.FieldHeatPercentage] = struct{}{}
}

// HeatPercentageCleared returns if the "heat_percentage" field was cleared in this mutation.
func (m *TopicPeriodHeatMutation) HeatPercentageCleared() bool {
	_, ok := m.clearedFields[topicperiodheat.FieldHeatPercentage]
	return ok
}

// ResetHeatPercentage resets all changes to the "heat_percentage" field.
func (m *TopicPeriodHeatMutation) ResetHeatPercentage() {
	m.heat_percentage = nil
	m.addheat_percentage = nil
	delete(m.clearedFields, topicperiodheat.FieldHeatPercentage)
}

// SetSourceCount sets the "source_count" field.
func (m *TopicPeriodHeatMutation) SetSourceCount(i int) {
	m.source_count = &i
	m.addsource_count = nil
}

// SourceCount returns the value of the "source_count" field in the mutation.
func (m *TopicPeriodHeatMutation) SourceCount() (r int, exists bool) {
	v := m.source_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceCount returns the old "source_count" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldSourceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceCount: %w", err)
	}
	return oldValue.SourceCount, nil
}

// AddSourceCount adds i to the "source_count" field.
func (m *TopicPeriodHeatMutation) AddSourceCount(i int) {
	if m.addsource_count != nil {
		*m.addsource_count += i
	} else {
		m.addsource_count = &i
	}
}

// AddedSourceCount returns the value that was added to the "source_count" field in this mutation.
func (m *TopicPeriodHeatMutation) AddedSourceCount() (r int, exists bool) {
	v := m.addsource_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceCount resets all changes to the "source_count" field.
func (m *TopicPeriodHeatMutation) ResetSourceCount() {
	m.source_count = nil
	m.addsource_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TopicPeriodHeatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TopicPeriodHeatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TopicPeriodHeat entity.
// If the TopicPeriodHeat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicPeriodHeatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TopicPeriodHeatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTopic clears the "topic" edge to the Topic entity.
func (m *TopicPeriodHeatMutation) ClearTopic() {
	m.clearedtopic = true
	m.clearedFields[topicperiodheat.FieldTopicID] = struct{}{}
}

// TopicCleared reports if the "topic" edge to the Topic entity was cleared.
func (m *TopicPeriodHeatMutation) TopicCleared() bool {
	return m.clearedtopic
}

// TopicIDs returns the "topic" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TopicID instead. It exists only for internal usage by the builders.
func (m *TopicPeriodHeatMutation) TopicIDs() (ids []int) {
	if id := m.topic; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTopic resets all changes to the "topic" edge.
func (m *TopicPeriodHeatMutation) ResetTopic() {
	m.topic = nil
	m.clearedtopic = false
}

// Where appends a list predicates to the TopicPeriodHeatMutation builder.
func (m *TopicPeriodHeatMutation) Where(ps ...predicate.TopicPeriodHeat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicPeriodHeatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicPeriodHeatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicPeriodHeat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicPeriodHeatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicPeriodHeatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicPeriodHeat).
func (m *TopicPeriodHeatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicPeriodHeatMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.topic != nil {
		fields = append(fields, topicperiodheat.FieldTopicID)
	}
	if m.date != nil {
		fields = append(fields, topicperiodheat.FieldDate)
	}
	if m.period != nil {
		fields = append(fields, topicperiodheat.FieldPeriod)
	}
	if m.heat_normalized != nil {
		fields = append(fields, topicperiodheat.FieldHeatNormalized)
	}
	if m.heat_percentage != nil {
		fields = append(fields, topicperiodheat.FieldHeatPercentage)
	}
	if m.source_count != nil {
		fields = append(fields, topicperiodheat.FieldSourceCount)
	}
	if m.updated_at != nil {
		fields = append(fields, topicperiodheat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicPeriodHeatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicperiodheat.FieldTopicID:
		return m.TopicID()
	case topicperiodheat.FieldDate:
		return m.Date()
	case topicperiodheat.FieldPeriod:
		return m.Period()
	case topicperiodheat.FieldHeatNormalized:
		return m.HeatNormalized()
	case topicperiodheat.FieldHeatPercentage:
		return m.HeatPercentage()
	case topicperiodheat.FieldSourceCount:
		return m.SourceCount()
	case topicperiodheat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicPeriodHeatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicperiodheat.FieldTopicID:
		return m.OldTopicID(ctx)
	case topicperiodheat.FieldDate:
		return m.OldDate(ctx)
	case topicperiodheat.FieldPeriod:
		return m.OldPeriod(ctx)
	case topicperiodheat.FieldHeatNormalized:
		return m.OldHeatNormalized(ctx)
	case topicperiodheat.FieldHeatPercentage:
		return m.OldHeatPercentage(ctx)
	case topicperiodheat.FieldSourceCount:
		return m.OldSourceCount(ctx)
	case topicperiodheat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicPeriodHeat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicPeriodHeatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicperiodheat.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topicperiodheat.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case topicperiodheat.FieldPeriod:
		v, ok := value.(topicperiodheat.Period)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriod(v)
		return nil
	case topicperiodheat.FieldHeatNormalized:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeatNormalized(v)
		return nil
	case topicperiodheat.FieldHeatPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeatPercentage(v)
		return nil
	case topicperiodheat.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceCount(v)
		return nil
	case topicperiodheat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicPeriodHeatMutation) AddedFields() []string {
	var fields []string
	if m.addheat_normalized != nil {
		fields = append(fields, topicperiodheat.FieldHeatNormalized)
	}
	if m.addheat_percentage != nil {
		fields = append(fields, topicperiodheat.FieldHeatPercentage)
	}
	if m.addsource_count != nil {
		fields = append(fields, topicperiodheat.FieldSourceCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicPeriodHeatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicperiodheat.FieldHeatNormalized:
		return m.AddedHeatNormalized()
	case topicperiodheat.FieldHeatPercentage:
		return m.AddedHeatPercentage()
	case topicperiodheat.FieldSourceCount:
		return m.AddedSourceCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicPeriodHeatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicperiodheat.FieldHeatNormalized:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeatNormalized(v)
		return nil
	case topicperiodheat.FieldHeatPercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHeatPercentage(v)
		return nil
	case topicperiodheat.FieldSourceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceCount(v)
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicPeriodHeatMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicperiodheat.FieldHeatPercentage) {
		fields = append(fields, topicperiodheat.FieldHeatPercentage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicPeriodHeatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicPeriodHeatMutation) ClearField(name string) error {
	switch name {
	case topicperiodheat.FieldHeatPercentage:
		m.ClearHeatPercentage()
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicPeriodHeatMutation) ResetField(name string) error {
	switch name {
	case topicperiodheat.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topicperiodheat.FieldDate:
		m.ResetDate()
		return nil
	case topicperiodheat.FieldPeriod:
		m.ResetPeriod()
		return nil
	case topicperiodheat.FieldHeatNormalized:
		m.ResetHeatNormalized()
		return nil
	case topicperiodheat.FieldHeatPercentage:
		m.ResetHeatPercentage()
		return nil
	case topicperiodheat.FieldSourceCount:
		m.ResetSourceCount()
		return nil
	case topicperiodheat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicPeriodHeatMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.topic != nil {
		edges = append(edges, topicperiodheat.EdgeTopic)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicPeriodHeatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topicperiodheat.EdgeTopic:
		if id := m.topic; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicPeriodHeatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicPeriodHeatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicPeriodHeatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtopic {
		edges = append(edges, topicperiodheat.EdgeTopic)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicPeriodHeatMutation) EdgeCleared(name string) bool {
	switch name {
	case topicperiodheat.EdgeTopic:
		return m.clearedtopic
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicPeriodHeatMutation) ClearEdge(name string) error {
	switch name {
	case topicperiodheat.EdgeTopic:
		m.ClearTopic()
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicPeriodHeatMutation) ResetEdge(name string) error {
	switch name {
	case topicperiodheat.EdgeTopic:
		m.ResetTopic()
		return nil
	}
	return fmt.Errorf("unknown TopicPeriodHeat edge %s", name)
}
