// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/predicate"
	"github.com/echoman-project/echoman/ent/summary"
)

// SummaryUpdate is the builder for updating Summary entities.
type SummaryUpdate struct {
	config
	hooks    []Hook
	mutation *SummaryMutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdate) Where(ps ...predicate.Summary) *SummaryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *SummaryUpdate) SetContent(v string) *SummaryUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableContent(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKeyPoints sets the "key_points" field.
func (_u *SummaryUpdate) SetKeyPoints(v []string) *SummaryUpdate {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *SummaryUpdate) AppendKeyPoints(v []string) *SummaryUpdate {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// ClearKeyPoints clears the value of the "key_points" field.
func (_u *SummaryUpdate) ClearKeyPoints() *SummaryUpdate {
	_u.mutation.ClearKeyPoints()
	return _u
}

// SetMethod sets the "method" field.
func (_u *SummaryUpdate) SetMethod(v summary.Method) *SummaryUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableMethod(v *summary.Method) *SummaryUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *SummaryUpdate) SetGeneratedAt(v time.Time) *SummaryUpdate {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableGeneratedAt(v *time.Time) *SummaryUpdate {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SummaryUpdate) SetProvider(v string) *SummaryUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableProvider(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SummaryUpdate) SetModel(v string) *SummaryUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummaryUpdate) SetNillableModel(v *string) *SummaryUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdate) Mutation() *SummaryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SummaryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SummaryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := summary.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Summary.method": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.topic"`)
	}
	return nil
}

func (_u *SummaryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(summary.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldKeyPoints, value)
		})
	}
	if _u.mutation.KeyPointsCleared() {
		_spec.ClearField(summary.FieldKeyPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(summary.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(summary.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(summary.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summary.FieldModel, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SummaryUpdateOne is the builder for updating a single Summary entity.
type SummaryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SummaryMutation
}

// SetContent sets the "content" field.
func (_u *SummaryUpdateOne) SetContent(v string) *SummaryUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableContent(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetKeyPoints sets the "key_points" field.
func (_u *SummaryUpdateOne) SetKeyPoints(v []string) *SummaryUpdateOne {
	_u.mutation.SetKeyPoints(v)
	return _u
}

// AppendKeyPoints appends value to the "key_points" field.
func (_u *SummaryUpdateOne) AppendKeyPoints(v []string) *SummaryUpdateOne {
	_u.mutation.AppendKeyPoints(v)
	return _u
}

// ClearKeyPoints clears the value of the "key_points" field.
func (_u *SummaryUpdateOne) ClearKeyPoints() *SummaryUpdateOne {
	_u.mutation.ClearKeyPoints()
	return _u
}

// SetMethod sets the "method" field.
func (_u *SummaryUpdateOne) SetMethod(v summary.Method) *SummaryUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableMethod(v *summary.Method) *SummaryUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetGeneratedAt sets the "generated_at" field.
func (_u *SummaryUpdateOne) SetGeneratedAt(v time.Time) *SummaryUpdateOne {
	_u.mutation.SetGeneratedAt(v)
	return _u
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableGeneratedAt(v *time.Time) *SummaryUpdateOne {
	if v != nil {
		_u.SetGeneratedAt(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *SummaryUpdateOne) SetProvider(v string) *SummaryUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableProvider(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *SummaryUpdateOne) SetModel(v string) *SummaryUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *SummaryUpdateOne) SetNillableModel(v *string) *SummaryUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// Mutation returns the SummaryMutation object of the builder.
func (_u *SummaryUpdateOne) Mutation() *SummaryMutation {
	return _u.mutation
}

// Where appends a list predicates to the SummaryUpdate builder.
func (_u *SummaryUpdateOne) Where(ps ...predicate.Summary) *SummaryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SummaryUpdateOne) Select(field string, fields ...string) *SummaryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Summary entity.
func (_u *SummaryUpdateOne) Save(ctx context.Context) (*Summary, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SummaryUpdateOne) SaveX(ctx context.Context) *Summary {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SummaryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SummaryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SummaryUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := summary.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "Summary.method": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Summary.topic"`)
	}
	return nil
}

func (_u *SummaryUpdateOne) sqlSave(ctx context.Context) (_node *Summary, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(summary.Table, summary.Columns, sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Summary.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, summary.FieldID)
		for _, f := range fields {
			if !summary.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != summary.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(summary.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.KeyPoints(); ok {
		_spec.SetField(summary.FieldKeyPoints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeyPoints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, summary.FieldKeyPoints, value)
		})
	}
	if _u.mutation.KeyPointsCleared() {
		_spec.ClearField(summary.FieldKeyPoints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(summary.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GeneratedAt(); ok {
		_spec.SetField(summary.FieldGeneratedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(summary.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(summary.FieldModel, field.TypeString, value)
	}
	_node = &Summary{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{summary.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
