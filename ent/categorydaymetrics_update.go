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
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/predicate"
)

// CategoryDayMetricsUpdate is the builder for updating CategoryDayMetrics entities.
type CategoryDayMetricsUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryDayMetricsMutation
}

// Where appends a list predicates to the CategoryDayMetricsUpdate builder.
func (_u *CategoryDayMetricsUpdate) Where(ps ...predicate.CategoryDayMetrics) *CategoryDayMetricsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *CategoryDayMetricsUpdate) SetDate(v string) *CategoryDayMetricsUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableDate(v *string) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryDayMetricsUpdate) SetCategory(v categorydaymetrics.Category) *CategoryDayMetricsUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableCategory(v *categorydaymetrics.Category) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *CategoryDayMetricsUpdate) SetTopicCount(v int) *CategoryDayMetricsUpdate {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableTopicCount(v *int) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *CategoryDayMetricsUpdate) AddTopicCount(v int) *CategoryDayMetricsUpdate {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetActiveTopicCount sets the "active_topic_count" field.
func (_u *CategoryDayMetricsUpdate) SetActiveTopicCount(v int) *CategoryDayMetricsUpdate {
	_u.mutation.ResetActiveTopicCount()
	_u.mutation.SetActiveTopicCount(v)
	return _u
}

// SetNillableActiveTopicCount sets the "active_topic_count" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableActiveTopicCount(v *int) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetActiveTopicCount(*v)
	}
	return _u
}

// AddActiveTopicCount adds value to the "active_topic_count" field.
func (_u *CategoryDayMetricsUpdate) AddActiveTopicCount(v int) *CategoryDayMetricsUpdate {
	_u.mutation.AddActiveTopicCount(v)
	return _u
}

// SetAvgDurationHours sets the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) SetAvgDurationHours(v float64) *CategoryDayMetricsUpdate {
	_u.mutation.ResetAvgDurationHours()
	_u.mutation.SetAvgDurationHours(v)
	return _u
}

// SetNillableAvgDurationHours sets the "avg_duration_hours" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableAvgDurationHours(v *float64) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetAvgDurationHours(*v)
	}
	return _u
}

// AddAvgDurationHours adds value to the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) AddAvgDurationHours(v float64) *CategoryDayMetricsUpdate {
	_u.mutation.AddAvgDurationHours(v)
	return _u
}

// ClearAvgDurationHours clears the value of the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) ClearAvgDurationHours() *CategoryDayMetricsUpdate {
	_u.mutation.ClearAvgDurationHours()
	return _u
}

// SetMaxDurationHours sets the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) SetMaxDurationHours(v float64) *CategoryDayMetricsUpdate {
	_u.mutation.ResetMaxDurationHours()
	_u.mutation.SetMaxDurationHours(v)
	return _u
}

// SetNillableMaxDurationHours sets the "max_duration_hours" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableMaxDurationHours(v *float64) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetMaxDurationHours(*v)
	}
	return _u
}

// AddMaxDurationHours adds value to the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) AddMaxDurationHours(v float64) *CategoryDayMetricsUpdate {
	_u.mutation.AddMaxDurationHours(v)
	return _u
}

// ClearMaxDurationHours clears the value of the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdate) ClearMaxDurationHours() *CategoryDayMetricsUpdate {
	_u.mutation.ClearMaxDurationHours()
	return _u
}

// SetIntensitySum sets the "intensity_sum" field.
func (_u *CategoryDayMetricsUpdate) SetIntensitySum(v int) *CategoryDayMetricsUpdate {
	_u.mutation.ResetIntensitySum()
	_u.mutation.SetIntensitySum(v)
	return _u
}

// SetNillableIntensitySum sets the "intensity_sum" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableIntensitySum(v *int) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetIntensitySum(*v)
	}
	return _u
}

// AddIntensitySum adds value to the "intensity_sum" field.
func (_u *CategoryDayMetricsUpdate) AddIntensitySum(v int) *CategoryDayMetricsUpdate {
	_u.mutation.AddIntensitySum(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CategoryDayMetricsUpdate) SetUpdatedAt(v time.Time) *CategoryDayMetricsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdate) SetNillableUpdatedAt(v *time.Time) *CategoryDayMetricsUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CategoryDayMetricsMutation object of the builder.
func (_u *CategoryDayMetricsUpdate) Mutation() *CategoryDayMetricsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryDayMetricsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryDayMetricsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryDayMetricsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryDayMetricsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryDayMetricsUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categorydaymetrics.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryDayMetrics.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryDayMetricsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorydaymetrics.Table, categorydaymetrics.Columns, sqlgraph.NewFieldSpec(categorydaymetrics.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(categorydaymetrics.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categorydaymetrics.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(categorydaymetrics.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveTopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldActiveTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTopicCount(); ok {
		_spec.AddField(categorydaymetrics.FieldActiveTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationHours(); ok {
		_spec.AddField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64, value)
	}
	if _u.mutation.AvgDurationHoursCleared() {
		_spec.ClearField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationHours(); ok {
		_spec.AddField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64, value)
	}
	if _u.mutation.MaxDurationHoursCleared() {
		_spec.ClearField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IntensitySum(); ok {
		_spec.SetField(categorydaymetrics.FieldIntensitySum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensitySum(); ok {
		_spec.AddField(categorydaymetrics.FieldIntensitySum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(categorydaymetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorydaymetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryDayMetricsUpdateOne is the builder for updating a single CategoryDayMetrics entity.
type CategoryDayMetricsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryDayMetricsMutation
}

// SetDate sets the "date" field.
func (_u *CategoryDayMetricsUpdateOne) SetDate(v string) *CategoryDayMetricsUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableDate(v *string) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *CategoryDayMetricsUpdateOne) SetCategory(v categorydaymetrics.Category) *CategoryDayMetricsUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableCategory(v *categorydaymetrics.Category) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetTopicCount sets the "topic_count" field.
func (_u *CategoryDayMetricsUpdateOne) SetTopicCount(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.ResetTopicCount()
	_u.mutation.SetTopicCount(v)
	return _u
}

// SetNillableTopicCount sets the "topic_count" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableTopicCount(v *int) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetTopicCount(*v)
	}
	return _u
}

// AddTopicCount adds value to the "topic_count" field.
func (_u *CategoryDayMetricsUpdateOne) AddTopicCount(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.AddTopicCount(v)
	return _u
}

// SetActiveTopicCount sets the "active_topic_count" field.
func (_u *CategoryDayMetricsUpdateOne) SetActiveTopicCount(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.ResetActiveTopicCount()
	_u.mutation.SetActiveTopicCount(v)
	return _u
}

// SetNillableActiveTopicCount sets the "active_topic_count" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableActiveTopicCount(v *int) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetActiveTopicCount(*v)
	}
	return _u
}

// AddActiveTopicCount adds value to the "active_topic_count" field.
func (_u *CategoryDayMetricsUpdateOne) AddActiveTopicCount(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.AddActiveTopicCount(v)
	return _u
}

// SetAvgDurationHours sets the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) SetAvgDurationHours(v float64) *CategoryDayMetricsUpdateOne {
	_u.mutation.ResetAvgDurationHours()
	_u.mutation.SetAvgDurationHours(v)
	return _u
}

// SetNillableAvgDurationHours sets the "avg_duration_hours" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableAvgDurationHours(v *float64) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetAvgDurationHours(*v)
	}
	return _u
}

// AddAvgDurationHours adds value to the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) AddAvgDurationHours(v float64) *CategoryDayMetricsUpdateOne {
	_u.mutation.AddAvgDurationHours(v)
	return _u
}

// ClearAvgDurationHours clears the value of the "avg_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) ClearAvgDurationHours() *CategoryDayMetricsUpdateOne {
	_u.mutation.ClearAvgDurationHours()
	return _u
}

// SetMaxDurationHours sets the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) SetMaxDurationHours(v float64) *CategoryDayMetricsUpdateOne {
	_u.mutation.ResetMaxDurationHours()
	_u.mutation.SetMaxDurationHours(v)
	return _u
}

// SetNillableMaxDurationHours sets the "max_duration_hours" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableMaxDurationHours(v *float64) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetMaxDurationHours(*v)
	}
	return _u
}

// AddMaxDurationHours adds value to the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) AddMaxDurationHours(v float64) *CategoryDayMetricsUpdateOne {
	_u.mutation.AddMaxDurationHours(v)
	return _u
}

// ClearMaxDurationHours clears the value of the "max_duration_hours" field.
func (_u *CategoryDayMetricsUpdateOne) ClearMaxDurationHours() *CategoryDayMetricsUpdateOne {
	_u.mutation.ClearMaxDurationHours()
	return _u
}

// SetIntensitySum sets the "intensity_sum" field.
func (_u *CategoryDayMetricsUpdateOne) SetIntensitySum(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.ResetIntensitySum()
	_u.mutation.SetIntensitySum(v)
	return _u
}

// SetNillableIntensitySum sets the "intensity_sum" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableIntensitySum(v *int) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetIntensitySum(*v)
	}
	return _u
}

// AddIntensitySum adds value to the "intensity_sum" field.
func (_u *CategoryDayMetricsUpdateOne) AddIntensitySum(v int) *CategoryDayMetricsUpdateOne {
	_u.mutation.AddIntensitySum(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CategoryDayMetricsUpdateOne) SetUpdatedAt(v time.Time) *CategoryDayMetricsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *CategoryDayMetricsUpdateOne) SetNillableUpdatedAt(v *time.Time) *CategoryDayMetricsUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the CategoryDayMetricsMutation object of the builder.
func (_u *CategoryDayMetricsUpdateOne) Mutation() *CategoryDayMetricsMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryDayMetricsUpdate builder.
func (_u *CategoryDayMetricsUpdateOne) Where(ps ...predicate.CategoryDayMetrics) *CategoryDayMetricsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryDayMetricsUpdateOne) Select(field string, fields ...string) *CategoryDayMetricsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryDayMetrics entity.
func (_u *CategoryDayMetricsUpdateOne) Save(ctx context.Context) (*CategoryDayMetrics, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryDayMetricsUpdateOne) SaveX(ctx context.Context) *CategoryDayMetrics {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryDayMetricsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryDayMetricsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CategoryDayMetricsUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := categorydaymetrics.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryDayMetrics.category": %w`, err)}
		}
	}
	return nil
}

func (_u *CategoryDayMetricsUpdateOne) sqlSave(ctx context.Context) (_node *CategoryDayMetrics, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(categorydaymetrics.Table, categorydaymetrics.Columns, sqlgraph.NewFieldSpec(categorydaymetrics.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryDayMetrics.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categorydaymetrics.FieldID)
		for _, f := range fields {
			if !categorydaymetrics.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categorydaymetrics.FieldID {
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
		_spec.SetField(categorydaymetrics.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(categorydaymetrics.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTopicCount(); ok {
		_spec.AddField(categorydaymetrics.FieldTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ActiveTopicCount(); ok {
		_spec.SetField(categorydaymetrics.FieldActiveTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveTopicCount(); ok {
		_spec.AddField(categorydaymetrics.FieldActiveTopicCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationHours(); ok {
		_spec.AddField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64, value)
	}
	if _u.mutation.AvgDurationHoursCleared() {
		_spec.ClearField(categorydaymetrics.FieldAvgDurationHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxDurationHours(); ok {
		_spec.SetField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxDurationHours(); ok {
		_spec.AddField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64, value)
	}
	if _u.mutation.MaxDurationHoursCleared() {
		_spec.ClearField(categorydaymetrics.FieldMaxDurationHours, field.TypeFloat64)
	}
	if value, ok := _u.mutation.IntensitySum(); ok {
		_spec.SetField(categorydaymetrics.FieldIntensitySum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensitySum(); ok {
		_spec.AddField(categorydaymetrics.FieldIntensitySum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(categorydaymetrics.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CategoryDayMetrics{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categorydaymetrics.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
