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
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicPeriodHeatUpdate is the builder for updating TopicPeriodHeat entities.
type TopicPeriodHeatUpdate struct {
	config
	hooks    []Hook
	mutation *TopicPeriodHeatMutation
}

// Where appends a list predicates to the TopicPeriodHeatUpdate builder.
func (_u *TopicPeriodHeatUpdate) Where(ps ...predicate.TopicPeriodHeat) *TopicPeriodHeatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *TopicPeriodHeatUpdate) SetDate(v string) *TopicPeriodHeatUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillableDate(v *string) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *TopicPeriodHeatUpdate) SetPeriod(v topicperiodheat.Period) *TopicPeriodHeatUpdate {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillablePeriod(v *topicperiodheat.Period) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetHeatNormalized sets the "heat_normalized" field.
func (_u *TopicPeriodHeatUpdate) SetHeatNormalized(v float64) *TopicPeriodHeatUpdate {
	_u.mutation.ResetHeatNormalized()
	_u.mutation.SetHeatNormalized(v)
	return _u
}

// SetNillableHeatNormalized sets the "heat_normalized" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillableHeatNormalized(v *float64) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetHeatNormalized(*v)
	}
	return _u
}

// AddHeatNormalized adds value to the "heat_normalized" field.
func (_u *TopicPeriodHeatUpdate) AddHeatNormalized(v float64) *TopicPeriodHeatUpdate {
	_u.mutation.AddHeatNormalized(v)
	return _u
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdate) SetHeatPercentage(v float64) *TopicPeriodHeatUpdate {
	_u.mutation.ResetHeatPercentage()
	_u.mutation.SetHeatPercentage(v)
	return _u
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillableHeatPercentage(v *float64) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetHeatPercentage(*v)
	}
	return _u
}

// AddHeatPercentage adds value to the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdate) AddHeatPercentage(v float64) *TopicPeriodHeatUpdate {
	_u.mutation.AddHeatPercentage(v)
	return _u
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdate) ClearHeatPercentage() *TopicPeriodHeatUpdate {
	_u.mutation.ClearHeatPercentage()
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *TopicPeriodHeatUpdate) SetSourceCount(v int) *TopicPeriodHeatUpdate {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillableSourceCount(v *int) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *TopicPeriodHeatUpdate) AddSourceCount(v int) *TopicPeriodHeatUpdate {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicPeriodHeatUpdate) SetUpdatedAt(v time.Time) *TopicPeriodHeatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdate) SetNillableUpdatedAt(v *time.Time) *TopicPeriodHeatUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TopicPeriodHeatMutation object of the builder.
func (_u *TopicPeriodHeatUpdate) Mutation() *TopicPeriodHeatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicPeriodHeatUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicPeriodHeatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicPeriodHeatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicPeriodHeatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicPeriodHeatUpdate) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := topicperiodheat.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "TopicPeriodHeat.period": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicPeriodHeat.topic"`)
	}
	return nil
}

func (_u *TopicPeriodHeatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicperiodheat.Table, topicperiodheat.Columns, sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(topicperiodheat.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(topicperiodheat.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeatNormalized(); ok {
		_spec.SetField(topicperiodheat.FieldHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatNormalized(); ok {
		_spec.AddField(topicperiodheat.FieldHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeatPercentage(); ok {
		_spec.SetField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatPercentage(); ok {
		_spec.AddField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.HeatPercentageCleared() {
		_spec.ClearField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(topicperiodheat.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(topicperiodheat.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicperiodheat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicperiodheat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicPeriodHeatUpdateOne is the builder for updating a single TopicPeriodHeat entity.
type TopicPeriodHeatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicPeriodHeatMutation
}

// SetDate sets the "date" field.
func (_u *TopicPeriodHeatUpdateOne) SetDate(v string) *TopicPeriodHeatUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillableDate(v *string) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPeriod sets the "period" field.
func (_u *TopicPeriodHeatUpdateOne) SetPeriod(v topicperiodheat.Period) *TopicPeriodHeatUpdateOne {
	_u.mutation.SetPeriod(v)
	return _u
}

// SetNillablePeriod sets the "period" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillablePeriod(v *topicperiodheat.Period) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetPeriod(*v)
	}
	return _u
}

// SetHeatNormalized sets the "heat_normalized" field.
func (_u *TopicPeriodHeatUpdateOne) SetHeatNormalized(v float64) *TopicPeriodHeatUpdateOne {
	_u.mutation.ResetHeatNormalized()
	_u.mutation.SetHeatNormalized(v)
	return _u
}

// SetNillableHeatNormalized sets the "heat_normalized" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillableHeatNormalized(v *float64) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetHeatNormalized(*v)
	}
	return _u
}

// AddHeatNormalized adds value to the "heat_normalized" field.
func (_u *TopicPeriodHeatUpdateOne) AddHeatNormalized(v float64) *TopicPeriodHeatUpdateOne {
	_u.mutation.AddHeatNormalized(v)
	return _u
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdateOne) SetHeatPercentage(v float64) *TopicPeriodHeatUpdateOne {
	_u.mutation.ResetHeatPercentage()
	_u.mutation.SetHeatPercentage(v)
	return _u
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillableHeatPercentage(v *float64) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetHeatPercentage(*v)
	}
	return _u
}

// AddHeatPercentage adds value to the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdateOne) AddHeatPercentage(v float64) *TopicPeriodHeatUpdateOne {
	_u.mutation.AddHeatPercentage(v)
	return _u
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (_u *TopicPeriodHeatUpdateOne) ClearHeatPercentage() *TopicPeriodHeatUpdateOne {
	_u.mutation.ClearHeatPercentage()
	return _u
}

// SetSourceCount sets the "source_count" field.
func (_u *TopicPeriodHeatUpdateOne) SetSourceCount(v int) *TopicPeriodHeatUpdateOne {
	_u.mutation.ResetSourceCount()
	_u.mutation.SetSourceCount(v)
	return _u
}

// SetNillableSourceCount sets the "source_count" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillableSourceCount(v *int) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetSourceCount(*v)
	}
	return _u
}

// AddSourceCount adds value to the "source_count" field.
func (_u *TopicPeriodHeatUpdateOne) AddSourceCount(v int) *TopicPeriodHeatUpdateOne {
	_u.mutation.AddSourceCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicPeriodHeatUpdateOne) SetUpdatedAt(v time.Time) *TopicPeriodHeatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TopicPeriodHeatUpdateOne) SetNillableUpdatedAt(v *time.Time) *TopicPeriodHeatUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the TopicPeriodHeatMutation object of the builder.
func (_u *TopicPeriodHeatUpdateOne) Mutation() *TopicPeriodHeatMutation {
	return _u.mutation
}

// Where appends a list predicates to the TopicPeriodHeatUpdate builder.
func (_u *TopicPeriodHeatUpdateOne) Where(ps ...predicate.TopicPeriodHeat) *TopicPeriodHeatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicPeriodHeatUpdateOne) Select(field string, fields ...string) *TopicPeriodHeatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TopicPeriodHeat entity.
func (_u *TopicPeriodHeatUpdateOne) Save(ctx context.Context) (*TopicPeriodHeat, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicPeriodHeatUpdateOne) SaveX(ctx context.Context) *TopicPeriodHeat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicPeriodHeatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicPeriodHeatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicPeriodHeatUpdateOne) check() error {
	if v, ok := _u.mutation.Period(); ok {
		if err := topicperiodheat.PeriodValidator(v); err != nil {
			return &ValidationError{Name: "period", err: fmt.Errorf(`ent: validator failed for field "TopicPeriodHeat.period": %w`, err)}
		}
	}
	if _u.mutation.TopicCleared() && len(_u.mutation.TopicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TopicPeriodHeat.topic"`)
	}
	return nil
}

func (_u *TopicPeriodHeatUpdateOne) sqlSave(ctx context.Context) (_node *TopicPeriodHeat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topicperiodheat.Table, topicperiodheat.Columns, sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TopicPeriodHeat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topicperiodheat.FieldID)
		for _, f := range fields {
			if !topicperiodheat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topicperiodheat.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(topicperiodheat.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Period(); ok {
		_spec.SetField(topicperiodheat.FieldPeriod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HeatNormalized(); ok {
		_spec.SetField(topicperiodheat.FieldHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatNormalized(); ok {
		_spec.AddField(topicperiodheat.FieldHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.HeatPercentage(); ok {
		_spec.SetField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatPercentage(); ok {
		_spec.AddField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.HeatPercentageCleared() {
		_spec.ClearField(topicperiodheat.FieldHeatPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SourceCount(); ok {
		_spec.SetField(topicperiodheat.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSourceCount(); ok {
		_spec.AddField(topicperiodheat.FieldSourceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topicperiodheat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TopicPeriodHeat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topicperiodheat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
