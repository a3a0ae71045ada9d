// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/llmjudgement"
)

// LLMJudgementCreate is the builder for creating a LLMJudgement entity.
type LLMJudgementCreate struct {
	config
	mutation *LLMJudgementMutation
	hooks    []Hook
}

// SetJudgementType sets the "judgement_type" field.
func (_c *LLMJudgementCreate) SetJudgementType(v llmjudgement.JudgementType) *LLMJudgementCreate {
	_c.mutation.SetJudgementType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LLMJudgementCreate) SetStatus(v llmjudgement.Status) *LLMJudgementCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *LLMJudgementCreate) SetRequest(v map[string]interface{}) *LLMJudgementCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *LLMJudgementCreate) SetResponse(v map[string]interface{}) *LLMJudgementCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *LLMJudgementCreate) SetErrorMessage(v string) *LLMJudgementCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *LLMJudgementCreate) SetNillableErrorMessage(v *string) *LLMJudgementCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *LLMJudgementCreate) SetLatencyMs(v int) *LLMJudgementCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *LLMJudgementCreate) SetNillableLatencyMs(v *int) *LLMJudgementCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_c *LLMJudgementCreate) SetTokensPrompt(v int) *LLMJudgementCreate {
	_c.mutation.SetTokensPrompt(v)
	return _c
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_c *LLMJudgementCreate) SetNillableTokensPrompt(v *int) *LLMJudgementCreate {
	if v != nil {
		_c.SetTokensPrompt(*v)
	}
	return _c
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_c *LLMJudgementCreate) SetTokensCompletion(v int) *LLMJudgementCreate {
	_c.mutation.SetTokensCompletion(v)
	return _c
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_c *LLMJudgementCreate) SetNillableTokensCompletion(v *int) *LLMJudgementCreate {
	if v != nil {
		_c.SetTokensCompletion(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *LLMJudgementCreate) SetProvider(v string) *LLMJudgementCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *LLMJudgementCreate) SetModel(v string) *LLMJudgementCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *LLMJudgementCreate) SetRunID(v string) *LLMJudgementCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *LLMJudgementCreate) SetNillableRunID(v *string) *LLMJudgementCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LLMJudgementCreate) SetCreatedAt(v time.Time) *LLMJudgementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// Mutation returns the LLMJudgementMutation object of the builder.
func (_c *LLMJudgementCreate) Mutation() *LLMJudgementMutation {
	return _c.mutation
}

// Save creates the LLMJudgement in the database.
func (_c *LLMJudgementCreate) Save(ctx context.Context) (*LLMJudgement, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LLMJudgementCreate) SaveX(ctx context.Context) *LLMJudgement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMJudgementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMJudgementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LLMJudgementCreate) check() error {
	if _, ok := _c.mutation.JudgementType(); !ok {
		return &ValidationError{Name: "judgement_type", err: errors.New(`ent: missing required field "LLMJudgement.judgement_type"`)}
	}
	if v, ok := _c.mutation.JudgementType(); ok {
		if err := llmjudgement.JudgementTypeValidator(v); err != nil {
			return &ValidationError{Name: "judgement_type", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.judgement_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "LLMJudgement.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := llmjudgement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "LLMJudgement.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LLMJudgement.model"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "LLMJudgement.created_at"`)}
	}
	return nil
}

func (_c *LLMJudgementCreate) sqlSave(ctx context.Context) (*LLMJudgement, error) {
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

func (_c *LLMJudgementCreate) createSpec() (*LLMJudgement, *sqlgraph.CreateSpec) {
	var (
		_node = &LLMJudgement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(llmjudgement.Table, sqlgraph.NewFieldSpec(llmjudgement.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.JudgementType(); ok {
		_spec.SetField(llmjudgement.FieldJudgementType, field.TypeEnum, value)
		_node.JudgementType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(llmjudgement.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(llmjudgement.FieldRequest, field.TypeJSON, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(llmjudgement.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(llmjudgement.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(llmjudgement.FieldLatencyMs, field.TypeInt, value)
		_node.LatencyMs = &value
	}
	if value, ok := _c.mutation.TokensPrompt(); ok {
		_spec.SetField(llmjudgement.FieldTokensPrompt, field.TypeInt, value)
		_node.TokensPrompt = &value
	}
	if value, ok := _c.mutation.TokensCompletion(); ok {
		_spec.SetField(llmjudgement.FieldTokensCompletion, field.TypeInt, value)
		_node.TokensCompletion = &value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(llmjudgement.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(llmjudgement.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(llmjudgement.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(llmjudgement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LLMJudgementCreateBulk is the builder for creating many LLMJudgement entities in bulk.
type LLMJudgementCreateBulk struct {
	config
	err      error
	builders []*LLMJudgementCreate
}

// Save creates the LLMJudgement entities in the database.
func (_c *LLMJudgementCreateBulk) Save(ctx context.Context) ([]*LLMJudgement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LLMJudgement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LLMJudgementMutation)
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
func (_c *LLMJudgementCreateBulk) SaveX(ctx context.Context) []*LLMJudgement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LLMJudgementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LLMJudgementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
