// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/pipelinerun"
)

// PipelineRunCreate is the builder for creating a PipelineRun entity.
type PipelineRunCreate struct {
	config
	mutation *PipelineRunMutation
	hooks    []Hook
}

// SetStage sets the "stage" field.
func (_c *PipelineRunCreate) SetStage(v pipelinerun.Stage) *PipelineRunCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetWindow sets the "window" field.
func (_c *PipelineRunCreate) SetWindow(v string) *PipelineRunCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableWindow(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetWindow(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunCreate) SetStatus(v pipelinerun.Status) *PipelineRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PipelineRunCreate) SetStartedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *PipelineRunCreate) SetEndedAt(v time.Time) *PipelineRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableEndedAt(v *time.Time) *PipelineRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PipelineRunCreate) SetDurationMs(v int) *PipelineRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableDurationMs(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetInputCount sets the "input_count" field.
func (_c *PipelineRunCreate) SetInputCount(v int) *PipelineRunCreate {
	_c.mutation.SetInputCount(v)
	return _c
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableInputCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetInputCount(*v)
	}
	return _c
}

// SetOutputCount sets the "output_count" field.
func (_c *PipelineRunCreate) SetOutputCount(v int) *PipelineRunCreate {
	_c.mutation.SetOutputCount(v)
	return _c
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableOutputCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetOutputCount(*v)
	}
	return _c
}

// SetSuccessCount sets the "success_count" field.
func (_c *PipelineRunCreate) SetSuccessCount(v int) *PipelineRunCreate {
	_c.mutation.SetSuccessCount(v)
	return _c
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableSuccessCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetSuccessCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *PipelineRunCreate) SetFailedCount(v int) *PipelineRunCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableFailedCount(v *int) *PipelineRunCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *PipelineRunCreate) SetResults(v map[string]interface{}) *PipelineRunCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *PipelineRunCreate) SetErrorSummary(v string) *PipelineRunCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *PipelineRunCreate) SetNillableErrorSummary(v *string) *PipelineRunCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineRunCreate) SetID(v string) *PipelineRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_c *PipelineRunCreate) Mutation() *PipelineRunMutation {
	return _c.mutation
}

// Save creates the PipelineRun in the database.
func (_c *PipelineRunCreate) Save(ctx context.Context) (*PipelineRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunCreate) SaveX(ctx context.Context) *PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := pipelinerun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputCount(); !ok {
		v := pipelinerun.DefaultInputCount
		_c.mutation.SetInputCount(v)
	}
	if _, ok := _c.mutation.OutputCount(); !ok {
		v := pipelinerun.DefaultOutputCount
		_c.mutation.SetOutputCount(v)
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		v := pipelinerun.DefaultSuccessCount
		_c.mutation.SetSuccessCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := pipelinerun.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunCreate) check() error {
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "PipelineRun.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := pipelinerun.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "PipelineRun.started_at"`)}
	}
	if _, ok := _c.mutation.InputCount(); !ok {
		return &ValidationError{Name: "input_count", err: errors.New(`ent: missing required field "PipelineRun.input_count"`)}
	}
	if _, ok := _c.mutation.OutputCount(); !ok {
		return &ValidationError{Name: "output_count", err: errors.New(`ent: missing required field "PipelineRun.output_count"`)}
	}
	if _, ok := _c.mutation.SuccessCount(); !ok {
		return &ValidationError{Name: "success_count", err: errors.New(`ent: missing required field "PipelineRun.success_count"`)}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "PipelineRun.failed_count"`)}
	}
	return nil
}

func (_c *PipelineRunCreate) sqlSave(ctx context.Context) (*PipelineRun, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PipelineRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunCreate) createSpec() (*PipelineRun, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerun.Table, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(pipelinerun.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(pipelinerun.FieldWindow, field.TypeString, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(pipelinerun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerun.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.InputCount(); ok {
		_spec.SetField(pipelinerun.FieldInputCount, field.TypeInt, value)
		_node.InputCount = value
	}
	if value, ok := _c.mutation.OutputCount(); ok {
		_spec.SetField(pipelinerun.FieldOutputCount, field.TypeInt, value)
		_node.OutputCount = value
	}
	if value, ok := _c.mutation.SuccessCount(); ok {
		_spec.SetField(pipelinerun.FieldSuccessCount, field.TypeInt, value)
		_node.SuccessCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(pipelinerun.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(pipelinerun.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(pipelinerun.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	return _node, _spec
}

// PipelineRunCreateBulk is the builder for creating many PipelineRun entities in bulk.
type PipelineRunCreateBulk struct {
	config
	err      error
	builders []*PipelineRunCreate
}

// Save creates the PipelineRun entities in the database.
func (_c *PipelineRunCreateBulk) Save(ctx context.Context) ([]*PipelineRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunMutation)
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
func (_c *PipelineRunCreateBulk) SaveX(ctx context.Context) []*PipelineRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
