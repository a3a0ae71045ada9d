// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicCreate is the builder for creating a Topic entity.
type TopicCreate struct {
	config
	mutation *TopicMutation
	hooks    []Hook
}

// SetTitleKey sets the "title_key" field.
func (_c *TopicCreate) SetTitleKey(v string) *TopicCreate {
	_c.mutation.SetTitleKey(v)
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *TopicCreate) SetFirstSeen(v time.Time) *TopicCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *TopicCreate) SetLastActive(v time.Time) *TopicCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TopicCreate) SetStatus(v topic.Status) *TopicCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TopicCreate) SetNillableStatus(v *topic.Status) *TopicCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIntensityTotal sets the "intensity_total" field.
func (_c *TopicCreate) SetIntensityTotal(v int) *TopicCreate {
	_c.mutation.SetIntensityTotal(v)
	return _c
}

// SetNillableIntensityTotal sets the "intensity_total" field if the given value is not nil.
func (_c *TopicCreate) SetNillableIntensityTotal(v *int) *TopicCreate {
	if v != nil {
		_c.SetIntensityTotal(*v)
	}
	return _c
}

// SetInteractionTotal sets the "interaction_total" field.
func (_c *TopicCreate) SetInteractionTotal(v int64) *TopicCreate {
	_c.mutation.SetInteractionTotal(v)
	return _c
}

// SetNillableInteractionTotal sets the "interaction_total" field if the given value is not nil.
func (_c *TopicCreate) SetNillableInteractionTotal(v *int64) *TopicCreate {
	if v != nil {
		_c.SetInteractionTotal(*v)
	}
	return _c
}

// SetCurrentHeatNormalized sets the "current_heat_normalized" field.
func (_c *TopicCreate) SetCurrentHeatNormalized(v float64) *TopicCreate {
	_c.mutation.SetCurrentHeatNormalized(v)
	return _c
}

// SetNillableCurrentHeatNormalized sets the "current_heat_normalized" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCurrentHeatNormalized(v *float64) *TopicCreate {
	if v != nil {
		_c.SetCurrentHeatNormalized(*v)
	}
	return _c
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_c *TopicCreate) SetHeatPercentage(v float64) *TopicCreate {
	_c.mutation.SetHeatPercentage(v)
	return _c
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_c *TopicCreate) SetNillableHeatPercentage(v *float64) *TopicCreate {
	if v != nil {
		_c.SetHeatPercentage(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *TopicCreate) SetCategory(v topic.Category) *TopicCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCategory(v *topic.Category) *TopicCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_c *TopicCreate) SetCategoryConfidence(v float64) *TopicCreate {
	_c.mutation.SetCategoryConfidence(v)
	return _c
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCategoryConfidence(v *float64) *TopicCreate {
	if v != nil {
		_c.SetCategoryConfidence(*v)
	}
	return _c
}

// SetCategoryMethod sets the "category_method" field.
func (_c *TopicCreate) SetCategoryMethod(v topic.CategoryMethod) *TopicCreate {
	_c.mutation.SetCategoryMethod(v)
	return _c
}

// SetNillableCategoryMethod sets the "category_method" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCategoryMethod(v *topic.CategoryMethod) *TopicCreate {
	if v != nil {
		_c.SetCategoryMethod(*v)
	}
	return _c
}

// SetCategoryUpdatedAt sets the "category_updated_at" field.
func (_c *TopicCreate) SetCategoryUpdatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetCategoryUpdatedAt(v)
	return _c
}

// SetNillableCategoryUpdatedAt sets the "category_updated_at" field if the given value is not nil.
func (_c *TopicCreate) SetNillableCategoryUpdatedAt(v *time.Time) *TopicCreate {
	if v != nil {
		_c.SetCategoryUpdatedAt(*v)
	}
	return _c
}

// SetSummaryID sets the "summary_id" field.
func (_c *TopicCreate) SetSummaryID(v int) *TopicCreate {
	_c.mutation.SetSummaryID(v)
	return _c
}

// SetNillableSummaryID sets the "summary_id" field if the given value is not nil.
func (_c *TopicCreate) SetNillableSummaryID(v *int) *TopicCreate {
	if v != nil {
		_c.SetSummaryID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TopicCreate) SetCreatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicCreate) SetUpdatedAt(v time.Time) *TopicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// AddNodeIDs adds the "nodes" edge to the TopicNode entity by IDs.
func (_c *TopicCreate) AddNodeIDs(ids ...int) *TopicCreate {
	_c.mutation.AddNodeIDs(ids...)
	return _c
}

// AddNodes adds the "nodes" edges to the TopicNode entity.
func (_c *TopicCreate) AddNodes(v ...*TopicNode) *TopicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddNodeIDs(ids...)
}

// AddPeriodHeatIDs adds the "period_heats" edge to the TopicPeriodHeat entity by IDs.
func (_c *TopicCreate) AddPeriodHeatIDs(ids ...int) *TopicCreate {
	_c.mutation.AddPeriodHeatIDs(ids...)
	return _c
}

// AddPeriodHeats adds the "period_heats" edges to the TopicPeriodHeat entity.
func (_c *TopicCreate) AddPeriodHeats(v ...*TopicPeriodHeat) *TopicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPeriodHeatIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_c *TopicCreate) AddSummaryIDs(ids ...int) *TopicCreate {
	_c.mutation.AddSummaryIDs(ids...)
	return _c
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_c *TopicCreate) AddSummaries(v ...*Summary) *TopicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSummaryIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_c *TopicCreate) Mutation() *TopicMutation {
	return _c.mutation
}

// Save creates the Topic in the database.
func (_c *TopicCreate) Save(ctx context.Context) (*Topic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicCreate) SaveX(ctx context.Context) *Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := topic.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.IntensityTotal(); !ok {
		v := topic.DefaultIntensityTotal
		_c.mutation.SetIntensityTotal(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicCreate) check() error {
	if _, ok := _c.mutation.TitleKey(); !ok {
		return &ValidationError{Name: "title_key", err: errors.New(`ent: missing required field "Topic.title_key"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Topic.first_seen"`)}
	}
	if _, ok := _c.mutation.LastActive(); !ok {
		return &ValidationError{Name: "last_active", err: errors.New(`ent: missing required field "Topic.last_active"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Topic.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := topic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Topic.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntensityTotal(); !ok {
		return &ValidationError{Name: "intensity_total", err: errors.New(`ent: missing required field "Topic.intensity_total"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := topic.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Topic.category": %w`, err)}
		}
	}
	if v, ok := _c.mutation.CategoryMethod(); ok {
		if err := topic.CategoryMethodValidator(v); err != nil {
			return &ValidationError{Name: "category_method", err: fmt.Errorf(`ent: validator failed for field "Topic.category_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Topic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Topic.updated_at"`)}
	}
	return nil
}

func (_c *TopicCreate) sqlSave(ctx context.Context) (*Topic, error) {
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

func (_c *TopicCreate) createSpec() (*Topic, *sqlgraph.CreateSpec) {
	var (
		_node = &Topic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topic.Table, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.TitleKey(); ok {
		_spec.SetField(topic.FieldTitleKey, field.TypeString, value)
		_node.TitleKey = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(topic.FieldFirstSeen, field.TypeTime, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(topic.FieldLastActive, field.TypeTime, value)
		_node.LastActive = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(topic.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IntensityTotal(); ok {
		_spec.SetField(topic.FieldIntensityTotal, field.TypeInt, value)
		_node.IntensityTotal = value
	}
	if value, ok := _c.mutation.InteractionTotal(); ok {
		_spec.SetField(topic.FieldInteractionTotal, field.TypeInt64, value)
		_node.InteractionTotal = &value
	}
	if value, ok := _c.mutation.CurrentHeatNormalized(); ok {
		_spec.SetField(topic.FieldCurrentHeatNormalized, field.TypeFloat64, value)
		_node.CurrentHeatNormalized = &value
	}
	if value, ok := _c.mutation.HeatPercentage(); ok {
		_spec.SetField(topic.FieldHeatPercentage, field.TypeFloat64, value)
		_node.HeatPercentage = &value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(topic.FieldCategory, field.TypeEnum, value)
		_node.Category = &value
	}
	if value, ok := _c.mutation.CategoryConfidence(); ok {
		_spec.SetField(topic.FieldCategoryConfidence, field.TypeFloat64, value)
		_node.CategoryConfidence = &value
	}
	if value, ok := _c.mutation.CategoryMethod(); ok {
		_spec.SetField(topic.FieldCategoryMethod, field.TypeEnum, value)
		_node.CategoryMethod = &value
	}
	if value, ok := _c.mutation.CategoryUpdatedAt(); ok {
		_spec.SetField(topic.FieldCategoryUpdatedAt, field.TypeTime, value)
		_node.CategoryUpdatedAt = &value
	}
	if value, ok := _c.mutation.SummaryID(); ok {
		_spec.SetField(topic.FieldSummaryID, field.TypeInt, value)
		_node.SummaryID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(topic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
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
	if nodes := _c.mutation.PeriodHeatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TopicCreateBulk is the builder for creating many Topic entities in bulk.
type TopicCreateBulk struct {
	config
	err      error
	builders []*TopicCreate
}

// Save creates the Topic entities in the database.
func (_c *TopicCreateBulk) Save(ctx context.Context) ([]*Topic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Topic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicMutation)
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
func (_c *TopicCreateBulk) SaveX(ctx context.Context) []*Topic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
