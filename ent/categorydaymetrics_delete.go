// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/predicate"
)

// CategoryDayMetricsDelete is the builder for deleting a CategoryDayMetrics entity.
type CategoryDayMetricsDelete struct {
	config
	hooks    []Hook
	mutation *CategoryDayMetricsMutation
}

// Where appends a list predicates to the CategoryDayMetricsDelete builder.
func (_d *CategoryDayMetricsDelete) Where(ps ...predicate.CategoryDayMetrics) *CategoryDayMetricsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CategoryDayMetricsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryDayMetricsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CategoryDayMetricsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(categorydaymetrics.Table, sqlgraph.NewFieldSpec(categorydaymetrics.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// CategoryDayMetricsDeleteOne is the builder for deleting a single CategoryDayMetrics entity.
type CategoryDayMetricsDeleteOne struct {
	_d *CategoryDayMetricsDelete
}

// Where appends a list predicates to the CategoryDayMetricsDelete builder.
func (_d *CategoryDayMetricsDeleteOne) Where(ps ...predicate.CategoryDayMetrics) *CategoryDayMetricsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CategoryDayMetricsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{categorydaymetrics.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CategoryDayMetricsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
