// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topicnode"
)

// SourceItemCreate is the builder for creating a SourceItem entity.
type SourceItemCreate struct {
	config
	mutation *SourceItemMutation
	hooks    []Hook
}

// SetPlatform sets the "platform" field.
func (_c *SourceItemCreate) SetPlatform(v string) *SourceItemCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SourceItemCreate) SetTitle(v string) *SourceItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SourceItemCreate) SetSummary(v string) *SourceItemCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableSummary(v *string) *SourceItemCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *SourceItemCreate) SetURL(v string) *SourceItemCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetURLHash sets the "url_hash" field.
func (_c *SourceItemCreate) SetURLHash(v string) *SourceItemCreate {
	_c.mutation.SetURLHash(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *SourceItemCreate) SetContentHash(v string) *SourceItemCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetDedupKey sets the "dedup_key" field.
func (_c *SourceItemCreate) SetDedupKey(v string) *SourceItemCreate {
	_c.mutation.SetDedupKey(v)
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *SourceItemCreate) SetPublishedAt(v time.Time) *SourceItemCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillablePublishedAt(v *time.Time) *SourceItemCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *SourceItemCreate) SetFetchedAt(v time.Time) *SourceItemCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetInteractions sets the "interactions" field.
func (_c *SourceItemCreate) SetInteractions(v map[string]interface{}) *SourceItemCreate {
	_c.mutation.SetInteractions(v)
	return _c
}

// SetRawHeat sets the "raw_heat" field.
func (_c *SourceItemCreate) SetRawHeat(v float64) *SourceItemCreate {
	_c.mutation.SetRawHeat(v)
	return _c
}

// SetNillableRawHeat sets the "raw_heat" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableRawHeat(v *float64) *SourceItemCreate {
	if v != nil {
		_c.SetRawHeat(*v)
	}
	return _c
}

// SetNormalizedHeat sets the "normalized_heat" field.
func (_c *SourceItemCreate) SetNormalizedHeat(v float64) *SourceItemCreate {
	_c.mutation.SetNormalizedHeat(v)
	return _c
}

// SetNillableNormalizedHeat sets the "normalized_heat" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableNormalizedHeat(v *float64) *SourceItemCreate {
	if v != nil {
		_c.SetNormalizedHeat(*v)
	}
	return _c
}

// SetWindow sets the "window" field.
func (_c *SourceItemCreate) SetWindow(v string) *SourceItemCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetClusterID sets the "cluster_id" field.
func (_c *SourceItemCreate) SetClusterID(v string) *SourceItemCreate {
	_c.mutation.SetClusterID(v)
	return _c
}

// SetNillableClusterID sets the "cluster_id" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableClusterID(v *string) *SourceItemCreate {
	if v != nil {
		_c.SetClusterID(*v)
	}
	return _c
}

// SetOccurrenceCount sets the "occurrence_count" field.
func (_c *SourceItemCreate) SetOccurrenceCount(v int) *SourceItemCreate {
	_c.mutation.SetOccurrenceCount(v)
	return _c
}

// SetNillableOccurrenceCount sets the "occurrence_count" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableOccurrenceCount(v *int) *SourceItemCreate {
	if v != nil {
		_c.SetOccurrenceCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SourceItemCreate) SetStatus(v sourceitem.Status) *SourceItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableStatus(v *sourceitem.Status) *SourceItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetEmbeddingID sets the "embedding_id" field.
func (_c *SourceItemCreate) SetEmbeddingID(v int) *SourceItemCreate {
	_c.mutation.SetEmbeddingID(v)
	return _c
}

// SetNillableEmbeddingID sets the "embedding_id" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableEmbeddingID(v *int) *SourceItemCreate {
	if v != nil {
		_c.SetEmbeddingID(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *SourceItemCreate) SetRunID(v string) *SourceItemCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableRunID(v *string) *SourceItemCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SourceItemCreate) SetCreatedAt(v time.Time) *SourceItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SourceItemCreate) SetNillableCreatedAt(v *time.Time) *SourceItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddTopicNodeIDs adds the "topic_nodes" edge to the TopicNode entity by IDs.
func (_c *SourceItemCreate) AddTopicNodeIDs(ids ...int) *SourceItemCreate {
	_c.mutation.AddTopicNodeIDs(ids...)
	return _c
}

// AddTopicNodes adds the "topic_nodes" edges to the TopicNode entity.
func (_c *SourceItemCreate) AddTopicNodes(v ...*TopicNode) *SourceItemCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTopicNodeIDs(ids...)
}

// Mutation returns the SourceItemMutation object of the builder.
func (_c *SourceItemCreate) Mutation() *SourceItemMutation {
	return _c.mutation
}

// Save creates the SourceItem in the database.
func (_c *SourceItemCreate) Save(ctx context.Context) (*SourceItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceItemCreate) SaveX(ctx context.Context) *SourceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceItemCreate) defaults() {
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		v := sourceitem.DefaultOccurrenceCount
		_c.mutation.SetOccurrenceCount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := sourceitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sourceitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceItemCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "SourceItem.platform"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SourceItem.title"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "SourceItem.url"`)}
	}
	if _, ok := _c.mutation.URLHash(); !ok {
		return &ValidationError{Name: "url_hash", err: errors.New(`ent: missing required field "SourceItem.url_hash"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "SourceItem.content_hash"`)}
	}
	if _, ok := _c.mutation.DedupKey(); !ok {
		return &ValidationError{Name: "dedup_key", err: errors.New(`ent: missing required field "SourceItem.dedup_key"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "SourceItem.fetched_at"`)}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "SourceItem.window"`)}
	}
	if _, ok := _c.mutation.OccurrenceCount(); !ok {
		return &ValidationError{Name: "occurrence_count", err: errors.New(`ent: missing required field "SourceItem.occurrence_count"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SourceItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := sourceitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SourceItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SourceItem.created_at"`)}
	}
	return nil
}

func (_c *SourceItemCreate) sqlSave(ctx context.Context) (*SourceItem, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceItemCreate) createSpec() (*SourceItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourceitem.Table, sqlgraph.NewFieldSpec(sourceitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(sourceitem.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(sourceitem.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sourceitem.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(sourceitem.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.URLHash(); ok {
		_spec.SetField(sourceitem.FieldURLHash, field.TypeString, value)
		_node.URLHash = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(sourceitem.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.DedupKey(); ok {
		_spec.SetField(sourceitem.FieldDedupKey, field.TypeString, value)
		_node.DedupKey = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(sourceitem.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(sourceitem.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	if value, ok := _c.mutation.Interactions(); ok {
		_spec.SetField(sourceitem.FieldInteractions, field.TypeJSON, value)
		_node.Interactions = value
	}
	if value, ok := _c.mutation.RawHeat(); ok {
		_spec.SetField(sourceitem.FieldRawHeat, field.TypeFloat64, value)
		_node.RawHeat = &value
	}
	if value, ok := _c.mutation.NormalizedHeat(); ok {
		_spec.SetField(sourceitem.FieldNormalizedHeat, field.TypeFloat64, value)
		_node.NormalizedHeat = &value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(sourceitem.FieldWindow, field.TypeString, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.ClusterID(); ok {
		_spec.SetField(sourceitem.FieldClusterID, field.TypeString, value)
		_node.ClusterID = &value
	}
	if value, ok := _c.mutation.OccurrenceCount(); ok {
		_spec.SetField(sourceitem.FieldOccurrenceCount, field.TypeInt, value)
		_node.OccurrenceCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(sourceitem.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.EmbeddingID(); ok {
		_spec.SetField(sourceitem.FieldEmbeddingID, field.TypeInt, value)
		_node.EmbeddingID = &value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(sourceitem.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sourceitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TopicNodesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SourceItemCreateBulk is the builder for creating many SourceItem entities in bulk.
type SourceItemCreateBulk struct {
	config
	err      error
	builders []*SourceItemCreate
}

// Save creates the SourceItem entities in the database.
func (_c *SourceItemCreateBulk) Save(ctx context.Context) ([]*SourceItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceItemMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SourceItemCreateBulk) SaveX(ctx context.Context) []*SourceItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
