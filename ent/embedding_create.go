// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/embedding"
)

// EmbeddingCreate is the builder for creating a Embedding entity.
type EmbeddingCreate struct {
	config
	mutation *EmbeddingMutation
	hooks    []Hook
}

// SetObjectType sets the "object_type" field.
func (_c *EmbeddingCreate) SetObjectType(v embedding.ObjectType) *EmbeddingCreate {
	_c.mutation.SetObjectType(v)
	return _c
}

// SetObjectID sets the "object_id" field.
func (_c *EmbeddingCreate) SetObjectID(v int) *EmbeddingCreate {
	_c.mutation.SetObjectID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *EmbeddingCreate) SetProvider(v string) *EmbeddingCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *EmbeddingCreate) SetModel(v string) *EmbeddingCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetVector sets the "vector" field.
func (_c *EmbeddingCreate) SetVector(v []float32) *EmbeddingCreate {
	_c.mutation.SetVector(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EmbeddingCreate) SetCreatedAt(v time.Time) *EmbeddingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the EmbeddingMutation object of the builder.
func (_c *EmbeddingCreate) Mutation() *EmbeddingMutation {
	return _c.mutation
}

// Save creates the Embedding in the database.
func (_c *EmbeddingCreate) Save(ctx context.Context) (*Embedding, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EmbeddingCreate) SaveX(ctx context.Context) *Embedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbeddingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbeddingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EmbeddingCreate) check() error {
	if _, ok := _c.mutation.ObjectType(); !ok {
		return &ValidationError{Name: "object_type", err: errors.New(`ent: missing required field "Embedding.object_type"`)}
	}
	if v, ok := _c.mutation.ObjectType(); ok {
		if err := embedding.ObjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "object_type", err: fmt.Errorf(`ent: validator failed for field "Embedding.object_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectID(); !ok {
		return &ValidationError{Name: "object_id", err: errors.New(`ent: missing required field "Embedding.object_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Embedding.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Embedding.model"`)}
	}
	if _, ok := _c.mutation.Vector(); !ok {
		return &ValidationError{Name: "vector", err: errors.New(`ent: missing required field "Embedding.vector"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Embedding.created_at"`)}
	}
	return nil
}

func (_c *EmbeddingCreate) sqlSave(ctx context.Context) (*Embedding, error) {
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

func (_c *EmbeddingCreate) createSpec() (*Embedding, *sqlgraph.CreateSpec) {
	var (
		_node = &Embedding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(embedding.Table, sqlgraph.NewFieldSpec(embedding.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ObjectType(); ok {
		_spec.SetField(embedding.FieldObjectType, field.TypeEnum, value)
		_node.ObjectType = value
	}
	if value, ok := _c.mutation.ObjectID(); ok {
		_spec.SetField(embedding.FieldObjectID, field.TypeInt, value)
		_node.ObjectID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(embedding.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(embedding.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Vector(); ok {
		_spec.SetField(embedding.FieldVector, field.TypeJSON, value)
		_node.Vector = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(embedding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// EmbeddingCreateBulk is the builder for creating many Embedding entities in bulk.
type EmbeddingCreateBulk struct {
	config
	err      error
	builders []*EmbeddingCreate
}

// Save creates the Embedding entities in the database.
func (_c *EmbeddingCreateBulk) Save(ctx context.Context) ([]*Embedding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Embedding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EmbeddingMutation)
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
func (_c *EmbeddingCreateBulk) SaveX(ctx context.Context) []*Embedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EmbeddingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EmbeddingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
