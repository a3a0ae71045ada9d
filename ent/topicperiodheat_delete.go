// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/predicate"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicPeriodHeatDelete is the builder for deleting a TopicPeriodHeat entity.
type TopicPeriodHeatDelete struct {
	config
	hooks    []Hook
	mutation *TopicPeriodHeatMutation
}

// Where appends a list predicates to the TopicPeriodHeatDelete builder.
func (_d *TopicPeriodHeatDelete) Where(ps ...predicate.TopicPeriodHeat) *TopicPeriodHeatDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TopicPeriodHeatDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TopicPeriodHeatDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TopicPeriodHeatDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(topicperiodheat.Table, sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt))
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

// TopicPeriodHeatDeleteOne is the builder for deleting a single TopicPeriodHeat entity.
type TopicPeriodHeatDeleteOne struct {
	_d *TopicPeriodHeatDelete
}

// Where appends a list predicates to the TopicPeriodHeatDelete builder.
func (_d *TopicPeriodHeatDeleteOne) Where(ps ...predicate.TopicPeriodHeat) *TopicPeriodHeatDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TopicPeriodHeatDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{topicperiodheat.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TopicPeriodHeatDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
