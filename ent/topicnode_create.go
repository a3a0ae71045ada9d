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
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
)

// TopicNodeCreate is the builder for creating a TopicNode entity.
type TopicNodeCreate struct {
	config
	mutation *TopicNodeMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (_c *TopicNodeCreate) SetTopicID(v int) *TopicNodeCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetSourceItemID sets the "source_item_id" field.
func (_c *TopicNodeCreate) SetSourceItemID(v int) *TopicNodeCreate {
	_c.mutation.SetSourceItemID(v)
	return _c
}

// SetAppendedAt sets the "appended_at" field.
func (_c *TopicNodeCreate) SetAppendedAt(v time.Time) *TopicNodeCreate {
	_c.mutation.SetAppendedAt(v)
	return _c
}

// SetTopic sets the "topic" edge to the Topic entity.
func (_c *TopicNodeCreate) SetTopic(v *Topic) *TopicNodeCreate {
	return _c.SetTopicID(v.ID)
}

// SetSourceItem sets the "source_item" edge to the SourceItem entity.
func (_c *TopicNodeCreate) SetSourceItem(v *SourceItem) *TopicNodeCreate {
	return _c.SetSourceItemID(v.ID)
}

// Mutation returns the TopicNodeMutation object of the builder.
func (_c *TopicNodeCreate) Mutation() *TopicNodeMutation {
	return _c.mutation
}

// Save creates the TopicNode in the database.
func (_c *TopicNodeCreate) Save(ctx context.Context) (*TopicNode, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TopicNodeCreate) SaveX(ctx context.Context) *TopicNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TopicNodeCreate) check() error {
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "TopicNode.topic_id"`)}
	}
	if _, ok := _c.mutation.SourceItemID(); !ok {
		return &ValidationError{Name: "source_item_id", err: errors.New(`ent: missing required field "TopicNode.source_item_id"`)}
	}
	if _, ok := _c.mutation.AppendedAt(); !ok {
		return &ValidationError{Name: "appended_at", err: errors.New(`ent: missing required field "TopicNode.appended_at"`)}
	}
	if len(_c.mutation.TopicIDs()) == 0 {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required edge "TopicNode.topic"`)}
	}
	if len(_c.mutation.SourceItemIDs()) == 0 {
		return &ValidationError{Name: "source_item", err: errors.New(`ent: missing required edge "TopicNode.source_item"`)}
	}
	return nil
}

func (_c *TopicNodeCreate) sqlSave(ctx context.Context) (*TopicNode, error) {
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

func (_c *TopicNodeCreate) createSpec() (*TopicNode, *sqlgraph.CreateSpec) {
	var (
		_node = &TopicNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(topicnode.Table, sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AppendedAt(); ok {
		_spec.SetField(topicnode.FieldAppendedAt, field.TypeTime, value)
		_node.AppendedAt = value
	}
	if nodes := _c.mutation.TopicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicnode.TopicTable,
			Columns: []string{topicnode.TopicColumn},
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
	if nodes := _c.mutation.SourceItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   topicnode.SourceItemTable,
			Columns: []string{topicnode.SourceItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sourceitem.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SourceItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TopicNodeCreateBulk is the builder for creating many TopicNode entities in bulk.
type TopicNodeCreateBulk struct {
	config
	err      error
	builders []*TopicNodeCreate
}

// Save creates the TopicNode entities in the database.
func (_c *TopicNodeCreateBulk) Save(ctx context.Context) ([]*TopicNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TopicNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TopicNodeMutation)
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
func (_c *TopicNodeCreateBulk) SaveX(ctx context.Context) []*TopicNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TopicNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TopicNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
