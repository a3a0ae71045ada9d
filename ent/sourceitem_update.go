// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/predicate"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topicnode"
)

// SourceItemUpdate is the builder for updating SourceItem entities.
type SourceItemUpdate struct {
	config
	hooks    []Hook
	mutation *SourceItemMutation
}

// Where appends a list predicates to the SourceItemUpdate builder.
func (_u *SourceItemUpdate) Where(ps ...predicate.SourceItem) *SourceItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *SourceItemUpdate) SetPlatform(v string) *SourceItemUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillablePlatform(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceItemUpdate) SetTitle(v string) *SourceItemUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableTitle(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceItemUpdate) SetSummary(v string) *SourceItemUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableSummary(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SourceItemUpdate) ClearSummary() *SourceItemUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceItemUpdate) SetURL(v string) *SourceItemUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableURL(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *SourceItemUpdate) SetURLHash(v string) *SourceItemUpdate {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableURLHash(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceItemUpdate) SetContentHash(v string) *SourceItemUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableContentHash(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *SourceItemUpdate) SetPublishedAt(v time.Time) *SourceItemUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillablePublishedAt(v *time.Time) *SourceItemUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *SourceItemUpdate) ClearPublishedAt() *SourceItemUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *SourceItemUpdate) SetFetchedAt(v time.Time) *SourceItemUpdate {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableFetchedAt(v *time.Time) *SourceItemUpdate {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetInteractions sets the "interactions" field.
func (_u *SourceItemUpdate) SetInteractions(v map[string]interface{}) *SourceItemUpdate {
	_u.mutation.SetInteractions(v)
	return _u
}

// ClearInteractions clears the value of the "interactions" field.
func (_u *SourceItemUpdate) ClearInteractions() *SourceItemUpdate {
	_u.mutation.ClearInteractions()
	return _u
}

// SetRawHeat sets the "raw_heat" field.
func (_u *SourceItemUpdate) SetRawHeat(v float64) *SourceItemUpdate {
	_u.mutation.ResetRawHeat()
	_u.mutation.SetRawHeat(v)
	return _u
}

// SetNillableRawHeat sets the "raw_heat" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableRawHeat(v *float64) *SourceItemUpdate {
	if v != nil {
		_u.SetRawHeat(*v)
	}
	return _u
}

// AddRawHeat adds value to the "raw_heat" field.
func (_u *SourceItemUpdate) AddRawHeat(v float64) *SourceItemUpdate {
	_u.mutation.AddRawHeat(v)
	return _u
}

// ClearRawHeat clears the value of the "raw_heat" field.
func (_u *SourceItemUpdate) ClearRawHeat() *SourceItemUpdate {
	_u.mutation.ClearRawHeat()
	return _u
}

// SetNormalizedHeat sets the "normalized_heat" field.
func (_u *SourceItemUpdate) SetNormalizedHeat(v float64) *SourceItemUpdate {
	_u.mutation.ResetNormalizedHeat()
	_u.mutation.SetNormalizedHeat(v)
	return _u
}

// SetNillableNormalizedHeat sets the "normalized_heat" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableNormalizedHeat(v *float64) *SourceItemUpdate {
	if v != nil {
		_u.SetNormalizedHeat(*v)
	}
	return _u
}

// AddNormalizedHeat adds value to the "normalized_heat" field.
func (_u *SourceItemUpdate) AddNormalizedHeat(v float64) *SourceItemUpdate {
	_u.mutation.AddNormalizedHeat(v)
	return _u
}

// ClearNormalizedHeat clears the value of the "normalized_heat" field.
func (_u *SourceItemUpdate) ClearNormalizedHeat() *SourceItemUpdate {
	_u.mutation.ClearNormalizedHeat()
	return _u
}

// SetWindow sets the "window" field.
func (_u *SourceItemUpdate) SetWindow(v string) *SourceItemUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableWindow(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *SourceItemUpdate) SetClusterID(v string) *SourceItemUpdate {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableClusterID(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// ClearClusterID clears the value of the "cluster_id" field.
func (_u *SourceItemUpdate) ClearClusterID() *SourceItemUpdate {
	_u.mutation.ClearClusterID()
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *SourceItemUpdate) SetOccurrenceCount(v int) *SourceItemUpdate {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableOccurrenceCount(v *int) *SourceItemUpdate {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *SourceItemUpdate) AddOccurrenceCount(v int) *SourceItemUpdate {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceItemUpdate) SetStatus(v sourceitem.Status) *SourceItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableStatus(v *sourceitem.Status) *SourceItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmbeddingID sets the "embedding_id" field.
func (_u *SourceItemUpdate) SetEmbeddingID(v int) *SourceItemUpdate {
	_u.mutation.ResetEmbeddingID()
	_u.mutation.SetEmbeddingID(v)
	return _u
}

// SetNillableEmbeddingID sets the "embedding_id" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableEmbeddingID(v *int) *SourceItemUpdate {
	if v != nil {
		_u.SetEmbeddingID(*v)
	}
	return _u
}

// AddEmbeddingID adds value to the "embedding_id" field.
func (_u *SourceItemUpdate) AddEmbeddingID(v int) *SourceItemUpdate {
	_u.mutation.AddEmbeddingID(v)
	return _u
}

// ClearEmbeddingID clears the value of the "embedding_id" field.
func (_u *SourceItemUpdate) ClearEmbeddingID() *SourceItemUpdate {
	_u.mutation.ClearEmbeddingID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SourceItemUpdate) SetRunID(v string) *SourceItemUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SourceItemUpdate) SetNillableRunID(v *string) *SourceItemUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *SourceItemUpdate) ClearRunID() *SourceItemUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// AddTopicNodeIDs adds the "topic_nodes" edge to the TopicNode entity by IDs.
func (_u *SourceItemUpdate) AddTopicNodeIDs(ids ...int) *SourceItemUpdate {
	_u.mutation.AddTopicNodeIDs(ids...)
	return _u
}

// AddTopicNodes adds the "topic_nodes" edges to the TopicNode entity.
func (_u *SourceItemUpdate) AddTopicNodes(v ...*TopicNode) *SourceItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicNodeIDs(ids...)
}

// Mutation returns the SourceItemMutation object of the builder.
func (_u *SourceItemUpdate) Mutation() *SourceItemMutation {
	return _u.mutation
}

// ClearTopicNodes clears all "topic_nodes" edges to the TopicNode entity.
func (_u *SourceItemUpdate) ClearTopicNodes() *SourceItemUpdate {
	_u.mutation.ClearTopicNodes()
	return _u
}

// RemoveTopicNodeIDs removes the "topic_nodes" edge to TopicNode entities by IDs.
func (_u *SourceItemUpdate) RemoveTopicNodeIDs(ids ...int) *SourceItemUpdate {
	_u.mutation.RemoveTopicNodeIDs(ids...)
	return _u
}

// RemoveTopicNodes removes "topic_nodes" edges to TopicNode entities.
func (_u *SourceItemUpdate) RemoveTopicNodes(v ...*TopicNode) *SourceItemUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicNodeIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sourceitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourceitem.Table, sourceitem.Columns, sqlgraph.NewFieldSpec(sourceitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sourceitem.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sourceitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sourceitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sourceitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sourceitem.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(sourceitem.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourceitem.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(sourceitem.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(sourceitem.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(sourceitem.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Interactions(); ok {
		_spec.SetField(sourceitem.FieldInteractions, field.TypeJSON, value)
	}
	if _u.mutation.InteractionsCleared() {
		_spec.ClearField(sourceitem.FieldInteractions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawHeat(); ok {
		_spec.SetField(sourceitem.FieldRawHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawHeat(); ok {
		_spec.AddField(sourceitem.FieldRawHeat, field.TypeFloat64, value)
	}
	if _u.mutation.RawHeatCleared() {
		_spec.ClearField(sourceitem.FieldRawHeat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalizedHeat(); ok {
		_spec.SetField(sourceitem.FieldNormalizedHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalizedHeat(); ok {
		_spec.AddField(sourceitem.FieldNormalizedHeat, field.TypeFloat64, value)
	}
	if _u.mutation.NormalizedHeatCleared() {
		_spec.ClearField(sourceitem.FieldNormalizedHeat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(sourceitem.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(sourceitem.FieldClusterID, field.TypeString, value)
	}
	if _u.mutation.ClusterIDCleared() {
		_spec.ClearField(sourceitem.FieldClusterID, field.TypeString)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(sourceitem.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(sourceitem.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourceitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmbeddingID(); ok {
		_spec.SetField(sourceitem.FieldEmbeddingID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingID(); ok {
		_spec.AddField(sourceitem.FieldEmbeddingID, field.TypeInt, value)
	}
	if _u.mutation.EmbeddingIDCleared() {
		_spec.ClearField(sourceitem.FieldEmbeddingID, field.TypeInt)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(sourceitem.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(sourceitem.FieldRunID, field.TypeString)
	}
	if _u.mutation.TopicNodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicNodesIDs(); len(nodes) > 0 && !_u.mutation.TopicNodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicNodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceItemUpdateOne is the builder for updating a single SourceItem entity.
type SourceItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceItemMutation
}

// SetPlatform sets the "platform" field.
func (_u *SourceItemUpdateOne) SetPlatform(v string) *SourceItemUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillablePlatform(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *SourceItemUpdateOne) SetTitle(v string) *SourceItemUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableTitle(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SourceItemUpdateOne) SetSummary(v string) *SourceItemUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableSummary(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SourceItemUpdateOne) ClearSummary() *SourceItemUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetURL sets the "url" field.
func (_u *SourceItemUpdateOne) SetURL(v string) *SourceItemUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableURL(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetURLHash sets the "url_hash" field.
func (_u *SourceItemUpdateOne) SetURLHash(v string) *SourceItemUpdateOne {
	_u.mutation.SetURLHash(v)
	return _u
}

// SetNillableURLHash sets the "url_hash" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableURLHash(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetURLHash(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *SourceItemUpdateOne) SetContentHash(v string) *SourceItemUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableContentHash(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *SourceItemUpdateOne) SetPublishedAt(v time.Time) *SourceItemUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillablePublishedAt(v *time.Time) *SourceItemUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *SourceItemUpdateOne) ClearPublishedAt() *SourceItemUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetFetchedAt sets the "fetched_at" field.
func (_u *SourceItemUpdateOne) SetFetchedAt(v time.Time) *SourceItemUpdateOne {
	_u.mutation.SetFetchedAt(v)
	return _u
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableFetchedAt(v *time.Time) *SourceItemUpdateOne {
	if v != nil {
		_u.SetFetchedAt(*v)
	}
	return _u
}

// SetInteractions sets the "interactions" field.
func (_u *SourceItemUpdateOne) SetInteractions(v map[string]interface{}) *SourceItemUpdateOne {
	_u.mutation.SetInteractions(v)
	return _u
}

// ClearInteractions clears the value of the "interactions" field.
func (_u *SourceItemUpdateOne) ClearInteractions() *SourceItemUpdateOne {
	_u.mutation.ClearInteractions()
	return _u
}

// SetRawHeat sets the "raw_heat" field.
func (_u *SourceItemUpdateOne) SetRawHeat(v float64) *SourceItemUpdateOne {
	_u.mutation.ResetRawHeat()
	_u.mutation.SetRawHeat(v)
	return _u
}

// SetNillableRawHeat sets the "raw_heat" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableRawHeat(v *float64) *SourceItemUpdateOne {
	if v != nil {
		_u.SetRawHeat(*v)
	}
	return _u
}

// AddRawHeat adds value to the "raw_heat" field.
func (_u *SourceItemUpdateOne) AddRawHeat(v float64) *SourceItemUpdateOne {
	_u.mutation.AddRawHeat(v)
	return _u
}

// ClearRawHeat clears the value of the "raw_heat" field.
func (_u *SourceItemUpdateOne) ClearRawHeat() *SourceItemUpdateOne {
	_u.mutation.ClearRawHeat()
	return _u
}

// SetNormalizedHeat sets the "normalized_heat" field.
func (_u *SourceItemUpdateOne) SetNormalizedHeat(v float64) *SourceItemUpdateOne {
	_u.mutation.ResetNormalizedHeat()
	_u.mutation.SetNormalizedHeat(v)
	return _u
}

// SetNillableNormalizedHeat sets the "normalized_heat" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableNormalizedHeat(v *float64) *SourceItemUpdateOne {
	if v != nil {
		_u.SetNormalizedHeat(*v)
	}
	return _u
}

// AddNormalizedHeat adds value to the "normalized_heat" field.
func (_u *SourceItemUpdateOne) AddNormalizedHeat(v float64) *SourceItemUpdateOne {
	_u.mutation.AddNormalizedHeat(v)
	return _u
}

// ClearNormalizedHeat clears the value of the "normalized_heat" field.
func (_u *SourceItemUpdateOne) ClearNormalizedHeat() *SourceItemUpdateOne {
	_u.mutation.ClearNormalizedHeat()
	return _u
}

// SetWindow sets the "window" field.
func (_u *SourceItemUpdateOne) SetWindow(v string) *SourceItemUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableWindow(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetClusterID sets the "cluster_id" field.
func (_u *SourceItemUpdateOne) SetClusterID(v string) *SourceItemUpdateOne {
	_u.mutation.SetClusterID(v)
	return _u
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableClusterID(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetClusterID(*v)
	}
	return _u
}

// ClearClusterID clears the value of the "cluster_id" field.
func (_u *SourceItemUpdateOne) ClearClusterID() *SourceItemUpdateOne {
	_u.mutation.ClearClusterID()
	return _u
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_u *SourceItemUpdateOne) SetOccurrenceCount(v int) *SourceItemUpdateOne {
	_u.mutation.ResetOccurrenceCount()
	_u.mutation.SetOccurrenceCount(v)
	return _u
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableOccurrenceCount(v *int) *SourceItemUpdateOne {
	if v != nil {
		_u.SetOccurrenceCount(*v)
	}
	return _u
}

// AddOccurrenceCount adds value to the "occurrence_count" field.
func (_u *SourceItemUpdateOne) AddOccurrenceCount(v int) *SourceItemUpdateOne {
	_u.mutation.AddOccurrenceCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SourceItemUpdateOne) SetStatus(v sourceitem.Status) *SourceItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableStatus(v *sourceitem.Status) *SourceItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetEmbeddingID sets the "embedding_id" field.
func (_u *SourceItemUpdateOne) SetEmbeddingID(v int) *SourceItemUpdateOne {
	_u.mutation.ResetEmbeddingID()
	_u.mutation.SetEmbeddingID(v)
	return _u
}

// SetNillableEmbeddingID sets the "embedding_id" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableEmbeddingID(v *int) *SourceItemUpdateOne {
	if v != nil {
		_u.SetEmbeddingID(*v)
	}
	return _u
}

// AddEmbeddingID adds value to the "embedding_id" field.
func (_u *SourceItemUpdateOne) AddEmbeddingID(v int) *SourceItemUpdateOne {
	_u.mutation.AddEmbeddingID(v)
	return _u
}

// ClearEmbeddingID clears the value of the "embedding_id" field.
func (_u *SourceItemUpdateOne) ClearEmbeddingID() *SourceItemUpdateOne {
	_u.mutation.ClearEmbeddingID()
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *SourceItemUpdateOne) SetRunID(v string) *SourceItemUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *SourceItemUpdateOne) SetNillableRunID(v *string) *SourceItemUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *SourceItemUpdateOne) ClearRunID() *SourceItemUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// AddTopicNodeIDs adds the "topic_nodes" edge to the TopicNode entity by IDs.
func (_u *SourceItemUpdateOne) AddTopicNodeIDs(ids ...int) *SourceItemUpdateOne {
	_u.mutation.AddTopicNodeIDs(ids...)
	return _u
}

// AddTopicNodes adds the "topic_nodes" edges to the TopicNode entity.
func (_u *SourceItemUpdateOne) AddTopicNodes(v ...*TopicNode) *SourceItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTopicNodeIDs(ids...)
}

// Mutation returns the SourceItemMutation object of the builder.
func (_u *SourceItemUpdateOne) Mutation() *SourceItemMutation {
	return _u.mutation
}

// ClearTopicNodes clears all "topic_nodes" edges to the TopicNode entity.
func (_u *SourceItemUpdateOne) ClearTopicNodes() *SourceItemUpdateOne {
	_u.mutation.ClearTopicNodes()
	return _u
}

// RemoveTopicNodeIDs removes the "topic_nodes" edge to TopicNode entities by IDs.
func (_u *SourceItemUpdateOne) RemoveTopicNodeIDs(ids ...int) *SourceItemUpdateOne {
	_u.mutation.RemoveTopicNodeIDs(ids...)
	return _u
}

// RemoveTopicNodes removes "topic_nodes" edges to TopicNode entities.
func (_u *SourceItemUpdateOne) RemoveTopicNodes(v ...*TopicNode) *SourceItemUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTopicNodeIDs(ids...)
}

// Where appends a list predicates to the SourceItemUpdate builder.
func (_u *SourceItemUpdateOne) Where(ps ...predicate.SourceItem) *SourceItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceItemUpdateOne) Select(field string, fields ...string) *SourceItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceItem entity.
func (_u *SourceItemUpdateOne) Save(ctx context.Context) (*SourceItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceItemUpdateOne) SaveX(ctx context.Context) *SourceItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SourceItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := sourceitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceItem.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SourceItemUpdateOne) sqlSave(ctx context.Context) (_node *SourceItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sourceitem.Table, sourceitem.Columns, sqlgraph.NewFieldSpec(sourceitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourceitem.FieldID)
		for _, f := range fields {
			if !sourceitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourceitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(sourceitem.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(sourceitem.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sourceitem.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sourceitem.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(sourceitem.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.URLHash(); ok {
		_spec.SetField(sourceitem.FieldURLHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(sourceitem.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(sourceitem.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(sourceitem.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FetchedAt(); ok {
		_spec.SetField(sourceitem.FieldFetchedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Interactions(); ok {
		_spec.SetField(sourceitem.FieldInteractions, field.TypeJSON, value)
	}
	if _u.mutation.InteractionsCleared() {
		_spec.ClearField(sourceitem.FieldInteractions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RawHeat(); ok {
		_spec.SetField(sourceitem.FieldRawHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawHeat(); ok {
		_spec.AddField(sourceitem.FieldRawHeat, field.TypeFloat64, value)
	}
	if _u.mutation.RawHeatCleared() {
		_spec.ClearField(sourceitem.FieldRawHeat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.NormalizedHeat(); ok {
		_spec.SetField(sourceitem.FieldNormalizedHeat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedNormalizedHeat(); ok {
		_spec.AddField(sourceitem.FieldNormalizedHeat, field.TypeFloat64, value)
	}
	if _u.mutation.NormalizedHeatCleared() {
		_spec.ClearField(sourceitem.FieldNormalizedHeat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(sourceitem.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.ClusterID(); ok {
		_spec.SetField(sourceitem.FieldClusterID, field.TypeString, value)
	}
	if _u.mutation.ClusterIDCleared() {
		_spec.ClearField(sourceitem.FieldClusterID, field.TypeString)
	}
	if value, ok := _u.mutation.OccurrenceCount(); ok {
		_spec.SetField(sourceitem.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOccurrenceCount(); ok {
		_spec.AddField(sourceitem.FieldOccurrenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(sourceitem.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EmbeddingID(); ok {
		_spec.SetField(sourceitem.FieldEmbeddingID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmbeddingID(); ok {
		_spec.AddField(sourceitem.FieldEmbeddingID, field.TypeInt, value)
	}
	if _u.mutation.EmbeddingIDCleared() {
		_spec.ClearField(sourceitem.FieldEmbeddingID, field.TypeInt)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(sourceitem.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(sourceitem.FieldRunID, field.TypeString)
	}
	if _u.mutation.TopicNodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTopicNodesIDs(); len(nodes) > 0 && !_u.mutation.TopicNodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TopicNodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   sourceitem.TopicNodesTable,
			Columns: []string{sourceitem.TopicNodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SourceItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourceitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
