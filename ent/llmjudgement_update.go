// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/echoman-project/echoman/ent/predicate"
)

// LLMJudgementUpdate is the builder for updating LLMJudgement entities.
type LLMJudgementUpdate struct {
	config
	hooks    []Hook
	mutation *LLMJudgementMutation
}

// Where appends a list predicates to the LLMJudgementUpdate builder.
func (_u *LLMJudgementUpdate) Where(ps ...predicate.LLMJudgement) *LLMJudgementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJudgementType sets the "judgement_type" field.
func (_u *LLMJudgementUpdate) SetJudgementType(v llmjudgement.JudgementType) *LLMJudgementUpdate {
	_u.mutation.SetJudgementType(v)
	return _u
}

// SetNillableJudgementType sets the "judgement_type" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableJudgementType(v *llmjudgement.JudgementType) *LLMJudgementUpdate {
	if v != nil {
		_u.SetJudgementType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMJudgementUpdate) SetStatus(v llmjudgement.Status) *LLMJudgementUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableStatus(v *llmjudgement.Status) *LLMJudgementUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *LLMJudgementUpdate) SetRequest(v map[string]interface{}) *LLMJudgementUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *LLMJudgementUpdate) ClearRequest() *LLMJudgementUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// SetResponse sets the "response" field.
func (_u *LLMJudgementUpdate) SetResponse(v map[string]interface{}) *LLMJudgementUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *LLMJudgementUpdate) ClearResponse() *LLMJudgementUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMJudgementUpdate) SetErrorMessage(v string) *LLMJudgementUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableErrorMessage(v *string) *LLMJudgementUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMJudgementUpdate) ClearErrorMessage() *LLMJudgementUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMJudgementUpdate) SetLatencyMs(v int) *LLMJudgementUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableLatencyMs(v *int) *LLMJudgementUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMJudgementUpdate) AddLatencyMs(v int) *LLMJudgementUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *LLMJudgementUpdate) ClearLatencyMs() *LLMJudgementUpdate {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_u *LLMJudgementUpdate) SetTokensPrompt(v int) *LLMJudgementUpdate {
	_u.mutation.ResetTokensPrompt()
	_u.mutation.SetTokensPrompt(v)
	return _u
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableTokensPrompt(v *int) *LLMJudgementUpdate {
	if v != nil {
		_u.SetTokensPrompt(*v)
	}
	return _u
}

// AddTokensPrompt adds value to the "tokens_prompt" field.
func (_u *LLMJudgementUpdate) AddTokensPrompt(v int) *LLMJudgementUpdate {
	_u.mutation.AddTokensPrompt(v)
	return _u
}

// ClearTokensPrompt clears the value of the "tokens_prompt" field.
func (_u *LLMJudgementUpdate) ClearTokensPrompt() *LLMJudgementUpdate {
	_u.mutation.ClearTokensPrompt()
	return _u
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_u *LLMJudgementUpdate) SetTokensCompletion(v int) *LLMJudgementUpdate {
	_u.mutation.ResetTokensCompletion()
	_u.mutation.SetTokensCompletion(v)
	return _u
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableTokensCompletion(v *int) *LLMJudgementUpdate {
	if v != nil {
		_u.SetTokensCompletion(*v)
	}
	return _u
}

// AddTokensCompletion adds value to the "tokens_completion" field.
func (_u *LLMJudgementUpdate) AddTokensCompletion(v int) *LLMJudgementUpdate {
	_u.mutation.AddTokensCompletion(v)
	return _u
}

// ClearTokensCompletion clears the value of the "tokens_completion" field.
func (_u *LLMJudgementUpdate) ClearTokensCompletion() *LLMJudgementUpdate {
	_u.mutation.ClearTokensCompletion()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMJudgementUpdate) SetProvider(v string) *LLMJudgementUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableProvider(v *string) *LLMJudgementUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMJudgementUpdate) SetModel(v string) *LLMJudgementUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableModel(v *string) *LLMJudgementUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *LLMJudgementUpdate) SetRunID(v string) *LLMJudgementUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *LLMJudgementUpdate) SetNillableRunID(v *string) *LLMJudgementUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *LLMJudgementUpdate) ClearRunID() *LLMJudgementUpdate {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the LLMJudgementMutation object of the builder.
func (_u *LLMJudgementUpdate) Mutation() *LLMJudgementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LLMJudgementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMJudgementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LLMJudgementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMJudgementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMJudgementUpdate) check() error {
	if v, ok := _u.mutation.JudgementType(); ok {
		if err := llmjudgement.JudgementTypeValidator(v); err != nil {
			return &ValidationError{Name: "judgement_type", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.judgement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmjudgement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMJudgementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmjudgement.Table, llmjudgement.Columns, sqlgraph.NewFieldSpec(llmjudgement.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.JudgementType(); ok {
		_spec.SetField(llmjudgement.FieldJudgementType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmjudgement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(llmjudgement.FieldRequest, field.TypeJSON, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(llmjudgement.FieldRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(llmjudgement.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(llmjudgement.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmjudgement.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmjudgement.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmjudgement.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmjudgement.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(llmjudgement.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensPrompt(); ok {
		_spec.SetField(llmjudgement.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensPrompt(); ok {
		_spec.AddField(llmjudgement.FieldTokensPrompt, field.TypeInt, value)
	}
	if _u.mutation.TokensPromptCleared() {
		_spec.ClearField(llmjudgement.FieldTokensPrompt, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensCompletion(); ok {
		_spec.SetField(llmjudgement.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensCompletion(); ok {
		_spec.AddField(llmjudgement.FieldTokensCompletion, field.TypeInt, value)
	}
	if _u.mutation.TokensCompletionCleared() {
		_spec.ClearField(llmjudgement.FieldTokensCompletion, field.TypeInt)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmjudgement.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmjudgement.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(llmjudgement.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(llmjudgement.FieldRunID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmjudgement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LLMJudgementUpdateOne is the builder for updating a single LLMJudgement entity.
type LLMJudgementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LLMJudgementMutation
}

// SetJudgementType sets the "judgement_type" field.
func (_u *LLMJudgementUpdateOne) SetJudgementType(v llmjudgement.JudgementType) *LLMJudgementUpdateOne {
	_u.mutation.SetJudgementType(v)
	return _u
}

// SetNillableJudgementType sets the "judgement_type" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableJudgementType(v *llmjudgement.JudgementType) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetJudgementType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LLMJudgementUpdateOne) SetStatus(v llmjudgement.Status) *LLMJudgementUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableStatus(v *llmjudgement.Status) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *LLMJudgementUpdateOne) SetRequest(v map[string]interface{}) *LLMJudgementUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *LLMJudgementUpdateOne) ClearRequest() *LLMJudgementUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// SetResponse sets the "response" field.
func (_u *LLMJudgementUpdateOne) SetResponse(v map[string]interface{}) *LLMJudgementUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *LLMJudgementUpdateOne) ClearResponse() *LLMJudgementUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *LLMJudgementUpdateOne) SetErrorMessage(v string) *LLMJudgementUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableErrorMessage(v *string) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *LLMJudgementUpdateOne) ClearErrorMessage() *LLMJudgementUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *LLMJudgementUpdateOne) SetLatencyMs(v int) *LLMJudgementUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableLatencyMs(v *int) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *LLMJudgementUpdateOne) AddLatencyMs(v int) *LLMJudgementUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// ClearLatencyMs clears the value of the "latency_ms" field.
func (_u *LLMJudgementUpdateOne) ClearLatencyMs() *LLMJudgementUpdateOne {
	_u.mutation.ClearLatencyMs()
	return _u
}

// SetTokensPrompt sets the "tokens_prompt" field.
func (_u *LLMJudgementUpdateOne) SetTokensPrompt(v int) *LLMJudgementUpdateOne {
	_u.mutation.ResetTokensPrompt()
	_u.mutation.SetTokensPrompt(v)
	return _u
}

// SetNillableTokensPrompt sets the "tokens_prompt" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableTokensPrompt(v *int) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetTokensPrompt(*v)
	}
	return _u
}

// AddTokensPrompt adds value to the "tokens_prompt" field.
func (_u *LLMJudgementUpdateOne) AddTokensPrompt(v int) *LLMJudgementUpdateOne {
	_u.mutation.AddTokensPrompt(v)
	return _u
}

// ClearTokensPrompt clears the value of the "tokens_prompt" field.
func (_u *LLMJudgementUpdateOne) ClearTokensPrompt() *LLMJudgementUpdateOne {
	_u.mutation.ClearTokensPrompt()
	return _u
}

// SetTokensCompletion sets the "tokens_completion" field.
func (_u *LLMJudgementUpdateOne) SetTokensCompletion(v int) *LLMJudgementUpdateOne {
	_u.mutation.ResetTokensCompletion()
	_u.mutation.SetTokensCompletion(v)
	return _u
}

// SetNillableTokensCompletion sets the "tokens_completion" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableTokensCompletion(v *int) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetTokensCompletion(*v)
	}
	return _u
}

// AddTokensCompletion adds value to the "tokens_completion" field.
func (_u *LLMJudgementUpdateOne) AddTokensCompletion(v int) *LLMJudgementUpdateOne {
	_u.mutation.AddTokensCompletion(v)
	return _u
}

// ClearTokensCompletion clears the value of the "tokens_completion" field.
func (_u *LLMJudgementUpdateOne) ClearTokensCompletion() *LLMJudgementUpdateOne {
	_u.mutation.ClearTokensCompletion()
	return _u
}

// SetProvider sets the "provider" field.
func (_u *LLMJudgementUpdateOne) SetProvider(v string) *LLMJudgementUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableProvider(v *string) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *LLMJudgementUpdateOne) SetModel(v string) *LLMJudgementUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableModel(v *string) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *LLMJudgementUpdateOne) SetRunID(v string) *LLMJudgementUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *LLMJudgementUpdateOne) SetNillableRunID(v *string) *LLMJudgementUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// ClearRunID clears the value of the "run_id" field.
func (_u *LLMJudgementUpdateOne) ClearRunID() *LLMJudgementUpdateOne {
	_u.mutation.ClearRunID()
	return _u
}

// Mutation returns the LLMJudgementMutation object of the builder.
func (_u *LLMJudgementUpdateOne) Mutation() *LLMJudgementMutation {
	return _u.mutation
}

// Where appends a list predicates to the LLMJudgementUpdate builder.
func (_u *LLMJudgementUpdateOne) Where(ps ...predicate.LLMJudgement) *LLMJudgementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LLMJudgementUpdateOne) Select(field string, fields ...string) *LLMJudgementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LLMJudgement entity.
func (_u *LLMJudgementUpdateOne) Save(ctx context.Context) (*LLMJudgement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LLMJudgementUpdateOne) SaveX(ctx context.Context) *LLMJudgement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LLMJudgementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LLMJudgementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LLMJudgementUpdateOne) check() error {
	if v, ok := _u.mutation.JudgementType(); ok {
		if err := llmjudgement.JudgementTypeValidator(v); err != nil {
			return &ValidationError{Name: "judgement_type", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.judgement_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := llmjudgement.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "LLMJudgement.status": %w`, err)}
		}
	}
	return nil
}

func (_u *LLMJudgementUpdateOne) sqlSave(ctx context.Context) (_node *LLMJudgement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(llmjudgement.Table, llmjudgement.Columns, sqlgraph.NewFieldSpec(llmjudgement.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LLMJudgement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmjudgement.FieldID)
		for _, f := range fields {
			if !llmjudgement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != llmjudgement.FieldID {
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
	if value, ok := _u.mutation.JudgementType(); ok {
		_spec.SetField(llmjudgement.FieldJudgementType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(llmjudgement.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(llmjudgement.FieldRequest, field.TypeJSON, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(llmjudgement.FieldRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(llmjudgement.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(llmjudgement.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(llmjudgement.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(llmjudgement.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(llmjudgement.FieldLatencyMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(llmjudgement.FieldLatencyMs, field.TypeInt, value)
	}
	if _u.mutation.LatencyMsCleared() {
		_spec.ClearField(llmjudgement.FieldLatencyMs, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensPrompt(); ok {
		_spec.SetField(llmjudgement.FieldTokensPrompt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensPrompt(); ok {
		_spec.AddField(llmjudgement.FieldTokensPrompt, field.TypeInt, value)
	}
	if _u.mutation.TokensPromptCleared() {
		_spec.ClearField(llmjudgement.FieldTokensPrompt, field.TypeInt)
	}
	if value, ok := _u.mutation.TokensCompletion(); ok {
		_spec.SetField(llmjudgement.FieldTokensCompletion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensCompletion(); ok {
		_spec.AddField(llmjudgement.FieldTokensCompletion, field.TypeInt, value)
	}
	if _u.mutation.TokensCompletionCleared() {
		_spec.ClearField(llmjudgement.FieldTokensCompletion, field.TypeInt)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(llmjudgement.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(llmjudgement.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(llmjudgement.FieldRunID, field.TypeString, value)
	}
	if _u.mutation.RunIDCleared() {
		_spec.ClearField(llmjudgement.FieldRunID, field.TypeString)
	}
	_node = &LLMJudgement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{llmjudgement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
