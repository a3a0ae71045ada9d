// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
)

// CategoryDayMetricsCreate is the builder for creating a CategoryDayMetrics entity.
type CategoryDayMetricsCreate struct {
	config
	mutation *CategoryDayMetricsMutation
	hooks    []Hook
}

// SetDate sets the "date" field.
func (_c *CategoryDayMetricsCreate) SetDate(v string) *CategoryDayMetricsCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CategoryDayMetricsCreate) SetCategory(v categorydaymetrics.Category) *CategoryDayMetricsCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetTopicCount sets the "topic_count" field.
func (_c *CategoryDayMetricsCreate) SetTopicCount(v int) *CategoryDayMetricsCreate {
	_c.mutation.SetTopicCount(v)
	return _c
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_c *CategoryDayMetricsCreate) SetNillableTopicCount(v *int) *CategoryDayMetricsCreate {
	if v != nil {
		_c.SetTopicCount(*v)
	}
	return _c
}

// SetActiveTopicCount sets the "active_topic_count" field.
func (_c *CategoryDayMetricsCreate) SetActiveTopicCount(v int) *CategoryDayMetricsCreate {
	_c.mutation.SetActiveTopicCount(v)
	return _c
}

// SetNillableActiveTopicCount sets the "active_topic_count" field if the given value is not nil.
func (_c *CategoryDayMetricsCreate) SetNillableActiveTopicCount(v *int) *CategoryDayMetricsCreate {
	if v != nil {
		_c.SetActiveTopicCount(*v)
	}
	return _c
}

// SetAvgDurationHours sets the "avg_duration_hours" field.
func (_c *CategoryDayMetricsCreate) SetAvgDurationHours(v float64) *CategoryDayMetricsCreate {
	_c.mutation.SetAvgDurationHours(v)
	return _c
}

// SetNillableAvgDurationHours sets the "avg_duration_hours" field if the given value is not nil.
func (_c *CategoryDayMetricsCreate) SetNillableAvgDurationHours(v *float64) *CategoryDayMetricsCreate {
	if v != nil {
		_c.SetAvgDurationHours(*v)
	}
	return _c
}

// SetMaxDurationHours sets the "max_duration_hours" field.
func (_c *CategoryDayMetricsCreate) SetMaxDurationHours(v float64) *CategoryDayMetricsCreate {
	_c.mutation.SetMaxDurationHours(v)
	return _c
}

// SetNillableMaxDurationHours sets the "max_duration_hours" field if the given value is not nil.
func (_c *CategoryDayMetricsCreate) SetNillableMaxDurationHours(v *float64) *CategoryDayMetricsCreate {
	if v != nil {
		_c.SetMaxDurationHours(*v)
	}
	return _c
}

// SetIntensitySum sets the "intensity_sum" field.
func (_c *CategoryDayMetricsCreate) SetIntensitySum(v int) *CategoryDayMetricsCreate {
	_c.mutation.SetIntensitySum(v)
	return _c
}

// SetNillableIntensitySum sets the "intensity_sum" field if the given value is not nil.
func (_c *CategoryDayMetricsCreate) SetNillableIntensitySum(v *int) *CategoryDayMetricsCreate {
	if v != nil {
		_c.SetIntensitySum(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CategoryDayMetricsCreate) SetUpdatedAt(v time.Time) *CategoryDayMetricsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// Mutation returns the CategoryDayMetricsMutation object of the builder.
func (_c *CategoryDayMetricsCreate) Mutation() *CategoryDayMetricsMutation {
	return _c.mutation
}

// Save creates the CategoryDayMetrics in the database.
func (_c *CategoryDayMetricsCreate) Save(ctx context.Context) (*CategoryDayMetrics, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryDayMetricsCreate) SaveX(ctx context.Context) *CategoryDayMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryDayMetricsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryDayMetricsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryDayMetricsCreate) defaults() {
	if _, ok := _c.mutation.TopicCount(); !ok {
		v := categorydaymetrics.DefaultTopicCount
		_c.mutation.SetTopicCount(v)
	}
	if _, ok := _c.mutation.ActiveTopicCount(); !ok {
		v := categorydaymetrics.DefaultActiveTopicCount
		_c.mutation.SetActiveTopicCount(v)
	}
	if _, ok := _c.mutation.IntensitySum(); !ok {
		v := categorydaymetrics.DefaultIntensitySum
		_c.mutation.SetIntensitySum(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryDayMetricsCreate) check() error {
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "CategoryDayMetrics.date"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CategoryDayMetrics.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := categorydaymetrics.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryDayMetrics.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicCount(); !ok {
		return &ValidationError{Name: "topic_count", err: errors.New(`ent: missing required field "CategoryDayMetrics.topic_count"`)}
	}
	if _, ok := _c.mutation.ActiveTopicCount(); !ok {
		return &ValidationError{Name: "active_topic_count", err: errors.New(`ent: missing required field "CategoryDayMetrics.active_topic_count"`)}
	}
	if _, ok := _c.mutation.IntensitySum(); !ok {
		return &ValidationError{Name: "intensity_sum", err: errors.New(`ent: missing required field "CategoryDayMetrics.intensity_sum"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CategoryDayMetrics.updated_at"`)}
	}
	return nil
}

func (_c *CategoryDayMetricsCreate) sqlSave(ctx context.Context) (*CategoryDayMetrics, error) {
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

func (_c *CategoryDayMetricsCreate) createSpec() (*CategoryDayMetrics, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryDayMetrics{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categorydaymetrics.Table, sqlgraph.NewFieldSpec(categorydaymetrics.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(categorydaymetrics.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(categorydaymetrics.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.TopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldTopicCount, field.TypeInt, value)
		_node.TopicCount = value
	}
	if value, ok := _c.mutation.ActiveTopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldActiveTopicCount, field.TypeInt, value)
		_node.ActiveTopicCount = value
	}
	if value, ok := _c.mutation.AvgDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64, value)
		_node.AvgDurationHours = &value
	}
	if value, ok := _c.mutation.MaxDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64, value)
		_node.MaxDurationHours = &value
	}
	if value, ok := _c.mutation.IntensitySum(); ok {
		_spec.SetField(categorydaymetrics.FieldIntensitySum, field.TypeInt, value)
		_node.IntensitySum = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(categorydaymetrics.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CategoryDayMetricsCreateBulk is the builder for creating many CategoryDayMetrics entities in bulk.
type CategoryDayMetricsCreateBulk struct {
	config
	err      error
	builders []*CategoryDayMetricsCreate
}

// Save creates the CategoryDayMetrics entities in the database.
func (_c *CategoryDayMetricsCreateBulk) Save(ctx context.Context) ([]*CategoryDayMetrics, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryDayMetrics, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryDayMetricsMutation)
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
func (_c *CategoryDayMetricsCreateBulk) SaveX(ctx context.Context) []*CategoryDayMetrics {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryDayMetricsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryDayMetricsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
