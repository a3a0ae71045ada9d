// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/predicate"
)

// LLMJudgementDelete is the builder for deleting a LLMJudgement entity.
type LLMJudgementDelete struct {
	config
	hooks    []Hook
	mutation *LLMJudgementMutation
}

// Where appends a list predicates to the LLMJudgementDelete builder.
func (_d *LLMJudgementDelete) Where(ps ...predicate.LLMJudgement) *LLMJudgementDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LLMJudgementDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMJudgementDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LLMJudgementDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(llmjudgement.Table, sqlgraph.NewFieldSpec(llmjudgement.FieldID, field.TypeInt))
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

// LLMJudgementDeleteOne is the builder for deleting a single LLMJudgement entity.
type LLMJudgementDeleteOne struct {
	_d *LLMJudgementDelete
}

// Where appends a list predicates to the LLMJudgementDelete builder.
func (_d *LLMJudgementDeleteOne) Where(ps ...predicate.LLMJudgement) *LLMJudgementDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LLMJudgementDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{llmjudgement.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LLMJudgementDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
