// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/embedding"
	"github.com/echoman-project/echoman/ent/predicate"
)

// EmbeddingUpdate is the builder for updating Embedding entities.
type EmbeddingUpdate struct {
	config
	hooks    []Hook
	mutation *EmbeddingMutation
}

// Where appends a list predicates to the EmbeddingUpdate builder.
func (_u *EmbeddingUpdate) Where(ps ...predicate.Embedding) *EmbeddingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjectType sets the "object_type" field.
func (_u *EmbeddingUpdate) SetObjectType(v embedding.ObjectType) *EmbeddingUpdate {
	_u.mutation.SetObjectType(v)
	return _u
}

// SetNillableObjectType sets the "object_type" field if the given value is not nil.
func (_u *EmbeddingUpdate) SetNillableObjectType(v *embedding.ObjectType) *EmbeddingUpdate {
	if v != nil {
		_u.SetObjectType(*v)
	}
	return _u
}

// SetObjectID sets the "object_id" field.
func (_u *EmbeddingUpdate) SetObjectID(v int) *EmbeddingUpdate {
	_u.mutation.ResetObjectID()
	_u.mutation.SetObjectID(v)
	return _u
}

// SetNillableObjectID sets the "object_id" field if the given value is not nil.
func (_u *EmbeddingUpdate) SetNillableObjectID(v *int) *EmbeddingUpdate {
	if v != nil {
		_u.SetObjectID(*v)
	}
	return _u
}

// AddObjectID adds value to the "object_id" field.
func (_u *EmbeddingUpdate) AddObjectID(v int) *EmbeddingUpdate {
	_u.mutation.AddObjectID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EmbeddingUpdate) SetProvider(v string) *EmbeddingUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EmbeddingUpdate) SetNillableProvider(v *string) *EmbeddingUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EmbeddingUpdate) SetModel(v string) *EmbeddingUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EmbeddingUpdate) SetNillableModel(v *string) *EmbeddingUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *EmbeddingUpdate) SetVector(v []float32) *EmbeddingUpdate {
	_u.mutation.SetVector(v)
	return _u
}

// AppendVector appends value to the "vector" field.
func (_u *EmbeddingUpdate) AppendVector(v []float32) *EmbeddingUpdate {
	_u.mutation.AppendVector(v)
	return _u
}

// Mutation returns the EmbeddingMutation object of the builder.
func (_u *EmbeddingUpdate) Mutation() *EmbeddingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EmbeddingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbeddingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EmbeddingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbeddingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbeddingUpdate) check() error {
	if v, ok := _u.mutation.ObjectType(); ok {
		if err := embedding.ObjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "object_type", err: fmt.Errorf(`ent: validator failed for field "Embedding.object_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EmbeddingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embedding.Table, embedding.Columns, sqlgraph.NewFieldSpec(embedding.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ObjectType(); ok {
		_spec.SetField(embedding.FieldObjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ObjectID(); ok {
		_spec.SetField(embedding.FieldObjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectID(); ok {
		_spec.AddField(embedding.FieldObjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(embedding.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(embedding.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(embedding.FieldVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, embedding.FieldVector, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EmbeddingUpdateOne is the builder for updating a single Embedding entity.
type EmbeddingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EmbeddingMutation
}

// SetObjectType sets the "object_type" field.
func (_u *EmbeddingUpdateOne) SetObjectType(v embedding.ObjectType) *EmbeddingUpdateOne {
	_u.mutation.SetObjectType(v)
	return _u
}

// SetNillableObjectType sets the "object_type" field if the given value is not nil.
func (_u *EmbeddingUpdateOne) SetNillableObjectType(v *embedding.ObjectType) *EmbeddingUpdateOne {
	if v != nil {
		_u.SetObjectType(*v)
	}
	return _u
}

// SetObjectID sets the "object_id" field.
func (_u *EmbeddingUpdateOne) SetObjectID(v int) *EmbeddingUpdateOne {
	_u.mutation.ResetObjectID()
	_u.mutation.SetObjectID(v)
	return _u
}

// SetNillableObjectID sets the "object_id" field if the given value is not nil.
func (_u *EmbeddingUpdateOne) SetNillableObjectID(v *int) *EmbeddingUpdateOne {
	if v != nil {
		_u.SetObjectID(*v)
	}
	return _u
}

// AddObjectID adds value to the "object_id" field.
func (_u *EmbeddingUpdateOne) AddObjectID(v int) *EmbeddingUpdateOne {
	_u.mutation.AddObjectID(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *EmbeddingUpdateOne) SetProvider(v string) *EmbeddingUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *EmbeddingUpdateOne) SetNillableProvider(v *string) *EmbeddingUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *EmbeddingUpdateOne) SetModel(v string) *EmbeddingUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *EmbeddingUpdateOne) SetNillableModel(v *string) *EmbeddingUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetVector sets the "vector" field.
func (_u *EmbeddingUpdateOne) SetVector(v []float32) *EmbeddingUpdateOne {
	_u.mutation.SetVector(v)
	return _u
}

// AppendVector appends value to the "vector" field.
func (_u *EmbeddingUpdateOne) AppendVector(v []float32) *EmbeddingUpdateOne {
	_u.mutation.AppendVector(v)
	return _u
}

// Mutation returns the EmbeddingMutation object of the builder.
func (_u *EmbeddingUpdateOne) Mutation() *EmbeddingMutation {
	return _u.mutation
}

// Where appends a list predicates to the EmbeddingUpdate builder.
func (_u *EmbeddingUpdateOne) Where(ps ...predicate.Embedding) *EmbeddingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EmbeddingUpdateOne) Select(field string, fields ...string) *EmbeddingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Embedding entity.
func (_u *EmbeddingUpdateOne) Save(ctx context.Context) (*Embedding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EmbeddingUpdateOne) SaveX(ctx context.Context) *Embedding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EmbeddingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EmbeddingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EmbeddingUpdateOne) check() error {
	if v, ok := _u.mutation.ObjectType(); ok {
		if err := embedding.ObjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "object_type", err: fmt.Errorf(`ent: validator failed for field "Embedding.object_type": %w`, err)}
		}
	}
	return nil
}

func (_u *EmbeddingUpdateOne) sqlSave(ctx context.Context) (_node *Embedding, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(embedding.Table, embedding.Columns, sqlgraph.NewFieldSpec(embedding.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Embedding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, embedding.FieldID)
		for _, f := range fields {
			if !embedding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != embedding.FieldID {
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
	if value, ok := _u.mutation.ObjectType(); ok {
		_spec.SetField(embedding.FieldObjectType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ObjectID(); ok {
		_spec.SetField(embedding.FieldObjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjectID(); ok {
		_spec.AddField(embedding.FieldObjectID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(embedding.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(embedding.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Vector(); ok {
		_spec.SetField(embedding.FieldVector, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVector(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, embedding.FieldVector, value)
		})
	}
	_node = &Embedding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{embedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
