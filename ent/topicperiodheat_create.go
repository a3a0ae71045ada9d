// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicPeriodHeatCreate is the builder for creating a TopicPeriodHeat entity.
type TopicPeriodHeatCreate struct {
	config
	mutation *TopicPeriodHeatMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicPeriodHeatCreate) SetTopicID(v int) *TopicPeriodHeatCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *TopicPeriodHeatCreate) SetDate(v string) *TopicPeriodHeatCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetPeriod sets the "period" field.
func (_c *TopicPeriodHeatCreate) SetPeriod(v topicperiodheat.Period) *TopicPeriodHeatCreate {
	_c.mutation.SetPeriod(v)
	return _c
}

// SetHeatNormalized sets the "heat_normalized" field.
func (_c *TopicPeriodHeatCreate) SetHeatNormalized(v float64) *TopicPeriodHeatCreate {
	_c.mutation.SetHeatNormalized(v)
	return _c
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_c *TopicPeriodHeatCreate) SetHeatPercentage(v float64) *TopicPeriodHeatCreate {
	_c.mutation.SetHeatPercentage(v)
	return _c
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_c *TopicPeriodHeatCreate) SetNillableHeatPercentage(v *float64) *TopicPeriodHeatCreate {
	if v != nil {
		_c.SetHeatPercentage(*v)
	}
	return _c
}

// SetSourceCount sets the "source_count" field.
func (_c *TopicPeriodHeatCreate) SetSourceCount(v int) *TopicPeriodHeatCreate {
	_c.mutation.SetSourceCount(v)
	return _c
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_c *TopicPeriodHeatCreate) SetNillableSourceCount(v *int) *TopicPeriodHeatCreate {
	if v != nil {
		_c.SetSourceCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TopicPeriodHeatCreate) SetUpdatedAt(v time.Time) *TopicPeriodHeatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *TopicPeriodHeatCreate) SetTopic(v *Topic) *TopicPeriodHeatCreate {
	return _c.SetTopicID(v.ID)
}

// Mutation returns the TopicPeriodHeatMutation object of the builder.
func (_c *TopicPeriodHeatCreate) Mutation() *TopicPeriodHeatMutation {
	return _c.mutation
}

// Save creates the TopicPeriodHeat in the database.
func (_c *TopicPeriodHeatCreate) Save(ctx context.Context) (*TopicPeriodHeat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicPeriodHeatCreate) SaveX(ctx context.Context) *TopicPeriodHeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicPeriodHeatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicPeriodHeatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TopicPeriodHeatCreate) defaults() {
	if _, ok := _c.mutation.SourceCount(); !ok {
		v := topicperiodheat.DefaultSourceCount
		_c.mutation.SetSourceCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicPeriodHeatCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicPeriodHeat.topic_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "TopicPeriodHeat.date"`)}
	}
	if _, ok := _c.mutation.Period(); !ok {
		return &ValidationError{Name: "period", err: errors.New(`ent: missing required field "TopicPeriodHeat.period"`)}
	}
	if v, ok := _c.mutation.Period(); ok {
		if err := topicperiodheat.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "TopicPeriodHeat.period": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HeatNormalized(); !ok {
		return &ValidationError{Name: "heat_normalized", err: errors.New(`ent: missing required field "TopicPeriodHeat.heat_normalized"`)}
	}
	if _, ok := _c.mutation.SourceCount(); !ok {
		return &ValidationError{Name: "source_count", err: errors.New(`ent: missing required field "TopicPeriodHeat.source_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TopicPeriodHeat.updated_at"`)}
	}
	if len(_c.mutation.TopicIDs()) == 0 {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required edge "TopicPeriodHeat.topic"`)}
	}
	return nil
}

func (_c *TopicPeriodHeatCreate) sqlSave(ctx context.Context) (*TopicPeriodHeat, error) {
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

func (_c *TopicPeriodHeatCreate) createSpec() (*TopicPeriodHeat, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicPeriodHeat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicperiodheat.Table, sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(topicperiodheat.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Period(); ok {
		_spec.SetField(topicperiodheat.FieldPeriod, field.TypeEnum, value)
		_node.Period = value
	}
	if value, ok := _c.mutation.HeatNormalized(); ok {
		_spec.SetField(topicperiodheat.FieldHeatNormalized, field.TypeFloat64, value)
		_node.HeatNormalized = value
	}
	if value, ok := _c.mutation.HeatPercentage(); ok {
		_spec.SetField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64, value)
		_node.HeatPercentage = &value
	}
	if value, ok := _c.mutation.SourceCount(); ok {
		_spec.SetField(topicperiodheat.FieldSourceCount, field.TypeInt, value)
		_node.SourceCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(topicperiodheat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicperiodheat.TopicTable,
			Columns: []string{topicperiodheat.TopicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TopicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TopicPeriodHeatCreateBulk is the builder for creating many TopicPeriodHeat entities in bulk.
type TopicPeriodHeatCreateBulk struct {
	config
	err      error
	builders []*TopicPeriodHeatCreate
}

// Save creates the TopicPeriodHeat entities in the database.
func (_c *TopicPeriodHeatCreateBulk) Save(ctx context.Context) ([]*TopicPeriodHeat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicPeriodHeat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicPeriodHeatMutation)
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
func (_c *TopicPeriodHeatCreateBulk) SaveX(ctx context.Context) []*TopicPeriodHeat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicPeriodHeatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicPeriodHeatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
