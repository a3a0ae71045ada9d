// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/ingestrun"
)

// IngestRunCreate is the builder for creating a IngestRun entity.
type IngestRunCreate struct {
	config
	mutation *IngestRunMutation
	hooks    []Hook
}

// SetStatus sets the "status" field.
func (_c *IngestRunCreate) SetStatus(v ingestrun.Status) *IngestRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableStatus(v *ingestrun.Status) *IngestRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWindow sets the "window" field.
func (_c *IngestRunCreate) SetWindow(v string) *IngestRunCreate {
	_c.mutation.SetWindow(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestRunCreate) SetStartedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *IngestRunCreate) SetEndedAt(v time.Time) *IngestRunCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableEndedAt(v *time.Time) *IngestRunCreate {
	if v != nil {
		_c.SetEndedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *IngestRunCreate) SetDurationMs(v int) *IngestRunCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableDurationMs(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetPlatformCount sets the "platform_count" field.
func (_c *IngestRunCreate) SetPlatformCount(v int) *IngestRunCreate {
	_c.mutation.SetPlatformCount(v)
	return _c
}

// SetNillablePlatformCount sets the "platform_count" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillablePlatformCount(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetPlatformCount(*v)
	}
	return _c
}

// SetPlatformSuccess sets the "platform_success" field.
func (_c *IngestRunCreate) SetPlatformSuccess(v int) *IngestRunCreate {
	_c.mutation.SetPlatformSuccess(v)
	return _c
}

// SetNillablePlatformSuccess sets the "platform_success" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillablePlatformSuccess(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetPlatformSuccess(*v)
	}
	return _c
}

// SetItemCount sets the "item_count" field.
func (_c *IngestRunCreate) SetItemCount(v int) *IngestRunCreate {
	_c.mutation.SetItemCount(v)
	return _c
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableItemCount(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetItemCount(*v)
	}
	return _c
}

// SetNewItemCount sets the "new_item_count" field.
func (_c *IngestRunCreate) SetNewItemCount(v int) *IngestRunCreate {
	_c.mutation.SetNewItemCount(v)
	return _c
}

// SetNillableNewItemCount sets the "new_item_count" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableNewItemCount(v *int) *IngestRunCreate {
	if v != nil {
		_c.SetNewItemCount(*v)
	}
	return _c
}

// SetPlatformResults sets the "platform_results" field.
func (_c *IngestRunCreate) SetPlatformResults(v map[string]interface{}) *IngestRunCreate {
	_c.mutation.SetPlatformResults(v)
	return _c
}

// SetErrorSummary sets the "error_summary" field.
func (_c *IngestRunCreate) SetErrorSummary(v string) *IngestRunCreate {
	_c.mutation.SetErrorSummary(v)
	return _c
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_c *IngestRunCreate) SetNillableErrorSummary(v *string) *IngestRunCreate {
	if v != nil {
		_c.SetErrorSummary(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestRunCreate) SetID(v string) *IngestRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IngestRunMutation object of the builder.
func (_c *IngestRunCreate) Mutation() *IngestRunMutation {
	return _c.mutation
}

// Save creates the IngestRun in the database.
func (_c *IngestRunCreate) Save(ctx context.Context) (*IngestRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestRunCreate) SaveX(ctx context.Context) *IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ingestrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PlatformCount(); !ok {
		v := ingestrun.DefaultPlatformCount
		_c.mutation.SetPlatformCount(v)
	}
	if _, ok := _c.mutation.PlatformSuccess(); !ok {
		v := ingestrun.DefaultPlatformSuccess
		_c.mutation.SetPlatformSuccess(v)
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		v := ingestrun.DefaultItemCount
		_c.mutation.SetItemCount(v)
	}
	if _, ok := _c.mutation.NewItemCount(); !ok {
		v := ingestrun.DefaultNewItemCount
		_c.mutation.SetNewItemCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestRunCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "IngestRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Window(); !ok {
		return &ValidationError{Name: "window", err: errors.New(`ent: missing required field "IngestRun.window"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestRun.started_at"`)}
	}
	if _, ok := _c.mutation.PlatformCount(); !ok {
		return &ValidationError{Name: "platform_count", err: errors.New(`ent: missing required field "IngestRun.platform_count"`)}
	}
	if _, ok := _c.mutation.PlatformSuccess(); !ok {
		return &ValidationError{Name: "platform_success", err: errors.New(`ent: missing required field "IngestRun.platform_success"`)}
	}
	if _, ok := _c.mutation.ItemCount(); !ok {
		return &ValidationError{Name: "item_count", err: errors.New(`ent: missing required field "IngestRun.item_count"`)}
	}
	if _, ok := _c.mutation.NewItemCount(); !ok {
		return &ValidationError{Name: "new_item_count", err: errors.New(`ent: missing required field "IngestRun.new_item_count"`)}
	}
	return nil
}

func (_c *IngestRunCreate) sqlSave(ctx context.Context) (*IngestRun, error) {
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
			return nil, fmt.Errorf("unexpected IngestRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IngestRunCreate) createSpec() (*IngestRun, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestrun.Table, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Window(); ok {
		_spec.SetField(ingestrun.FieldWindow, field.TypeString, value)
		_node.Window = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(ingestrun.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(ingestrun.FieldDurationMs, field.TypeInt, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.PlatformCount(); ok {
		_spec.SetField(ingestrun.FieldPlatformCount, field.TypeInt, value)
		_node.PlatformCount = value
	}
	if value, ok := _c.mutation.PlatformSuccess(); ok {
		_spec.SetField(ingestrun.FieldPlatformSuccess, field.TypeInt, value)
		_node.PlatformSuccess = value
	}
	if value, ok := _c.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
		_node.ItemCount = value
	}
	if value, ok := _c.mutation.NewItemCount(); ok {
		_spec.SetField(ingestrun.FieldNewItemCount, field.TypeInt, value)
		_node.NewItemCount = value
	}
	if value, ok := _c.mutation.PlatformResults(); ok {
		_spec.SetField(ingestrun.FieldPlatformResults, field.TypeJSON, value)
		_node.PlatformResults = value
	}
	if value, ok := _c.mutation.ErrorSummary(); ok {
		_spec.SetField(ingestrun.FieldErrorSummary, field.TypeString, value)
		_node.ErrorSummary = &value
	}
	return _node, _spec
}

// IngestRunCreateBulk is the builder for creating many IngestRun entities in bulk.
type IngestRunCreateBulk struct {
	config
	err      error
	builders []*IngestRunCreate
}

// Save creates the IngestRun entities in the database.
func (_c *IngestRunCreateBulk) Save(ctx context.Context) ([]*IngestRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestRunMutation)
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
func (_c *IngestRunCreateBulk) SaveX(ctx context.Context) []*IngestRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
