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
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/predicate"
)

// PipelineRunUpdate is the builder for updating PipelineRun entities.
type PipelineRunUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunMutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdate) Where(ps ...predicate.PipelineRun) *PipelineRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStage sets the "stage" field.
func (_u *PipelineRunUpdate) SetStage(v pipelinerun.Stage) *PipelineRunUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStage(v *pipelinerun.Stage) *PipelineRunUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *PipelineRunUpdate) SetWindow(v string) *PipelineRunUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableWindow(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// ClearWindow clears the value of the "window" field.
func (_u *PipelineRunUpdate) ClearWindow() *PipelineRunUpdate {
	_u.mutation.ClearWindow()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdate) SetStatus(v pipelinerun.Status) *PipelineRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdate) SetStartedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableStartedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PipelineRunUpdate) SetEndedAt(v time.Time) *PipelineRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableEndedAt(v *time.Time) *PipelineRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PipelineRunUpdate) ClearEndedAt() *PipelineRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunUpdate) SetDurationMs(v int) *PipelineRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableDurationMs(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunUpdate) AddDurationMs(v int) *PipelineRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PipelineRunUpdate) ClearDurationMs() *PipelineRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputCount sets the "input_count" field.
func (_u *PipelineRunUpdate) SetInputCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetInputCount()
	_u.mutation.SetInputCount(v)
	return _u
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableInputCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetInputCount(*v)
	}
	return _u
}

// AddInputCount adds value to the "input_count" field.
func (_u *PipelineRunUpdate) AddInputCount(v int) *PipelineRunUpdate {
	_u.mutation.AddInputCount(v)
	return _u
}

// SetOutputCount sets the "output_count" field.
func (_u *PipelineRunUpdate) SetOutputCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetOutputCount()
	_u.mutation.SetOutputCount(v)
	return _u
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableOutputCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetOutputCount(*v)
	}
	return _u
}

// AddOutputCount adds value to the "output_count" field.
func (_u *PipelineRunUpdate) AddOutputCount(v int) *PipelineRunUpdate {
	_u.mutation.AddOutputCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *PipelineRunUpdate) SetSuccessCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableSuccessCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *PipelineRunUpdate) AddSuccessCount(v int) *PipelineRunUpdate {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *PipelineRunUpdate) SetFailedCount(v int) *PipelineRunUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableFailedCount(v *int) *PipelineRunUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *PipelineRunUpdate) AddFailedCount(v int) *PipelineRunUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *PipelineRunUpdate) SetResults(v map[string]interface{}) *PipelineRunUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *PipelineRunUpdate) ClearResults() *PipelineRunUpdate {
	_u.mutation.ClearResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *PipelineRunUpdate) SetErrorSummary(v string) *PipelineRunUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *PipelineRunUpdate) SetNillableErrorSummary(v *string) *PipelineRunUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *PipelineRunUpdate) ClearErrorSummary() *PipelineRunUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdate) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinerun.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinerun.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(pipelinerun.FieldWindow, field.TypeString, value)
	}
	if _u.mutation.WindowCleared() {
		_spec.ClearField(pipelinerun.FieldWindow, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(pipelinerun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(pipelinerun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(pipelinerun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputCount(); ok {
		_spec.SetField(pipelinerun.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputCount(); ok {
		_spec.AddField(pipelinerun.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputCount(); ok {
		_spec.SetField(pipelinerun.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputCount(); ok {
		_spec.AddField(pipelinerun.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(pipelinerun.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(pipelinerun.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(pipelinerun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(pipelinerun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(pipelinerun.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(pipelinerun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(pipelinerun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(pipelinerun.FieldErrorSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunUpdateOne is the builder for updating a single PipelineRun entity.
type PipelineRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunMutation
}

// SetStage sets the "stage" field.
func (_u *PipelineRunUpdateOne) SetStage(v pipelinerun.Stage) *PipelineRunUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStage(v *pipelinerun.Stage) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *PipelineRunUpdateOne) SetWindow(v string) *PipelineRunUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableWindow(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// ClearWindow clears the value of the "window" field.
func (_u *PipelineRunUpdateOne) ClearWindow() *PipelineRunUpdateOne {
	_u.mutation.ClearWindow()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunUpdateOne) SetStatus(v pipelinerun.Status) *PipelineRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStatus(v *pipelinerun.Status) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PipelineRunUpdateOne) SetStartedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableStartedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *PipelineRunUpdateOne) SetEndedAt(v time.Time) *PipelineRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableEndedAt(v *time.Time) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *PipelineRunUpdateOne) ClearEndedAt() *PipelineRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunUpdateOne) SetDurationMs(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableDurationMs(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunUpdateOne) AddDurationMs(v int) *PipelineRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *PipelineRunUpdateOne) ClearDurationMs() *PipelineRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetInputCount sets the "input_count" field.
func (_u *PipelineRunUpdateOne) SetInputCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetInputCount()
	_u.mutation.SetInputCount(v)
	return _u
}

// SetNillableInputCount sets the "input_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableInputCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetInputCount(*v)
	}
	return _u
}

// AddInputCount adds value to the "input_count" field.
func (_u *PipelineRunUpdateOne) AddInputCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddInputCount(v)
	return _u
}

// SetOutputCount sets the "output_count" field.
func (_u *PipelineRunUpdateOne) SetOutputCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetOutputCount()
	_u.mutation.SetOutputCount(v)
	return _u
}

// SetNillableOutputCount sets the "output_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableOutputCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetOutputCount(*v)
	}
	return _u
}

// AddOutputCount adds value to the "output_count" field.
func (_u *PipelineRunUpdateOne) AddOutputCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddOutputCount(v)
	return _u
}

// SetSuccessCount sets the "success_count" field.
func (_u *PipelineRunUpdateOne) SetSuccessCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetSuccessCount()
	_u.mutation.SetSuccessCount(v)
	return _u
}

// SetNillableSuccessCount sets the "success_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableSuccessCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetSuccessCount(*v)
	}
	return _u
}

// AddSuccessCount adds value to the "success_count" field.
func (_u *PipelineRunUpdateOne) AddSuccessCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddSuccessCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *PipelineRunUpdateOne) SetFailedCount(v int) *PipelineRunUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableFailedCount(v *int) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *PipelineRunUpdateOne) AddFailedCount(v int) *PipelineRunUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetResults sets the "results" field.
func (_u *PipelineRunUpdateOne) SetResults(v map[string]interface{}) *PipelineRunUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// ClearResults clears the value of the "results" field.
func (_u *PipelineRunUpdateOne) ClearResults() *PipelineRunUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *PipelineRunUpdateOne) SetErrorSummary(v string) *PipelineRunUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *PipelineRunUpdateOne) SetNillableErrorSummary(v *string) *PipelineRunUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *PipelineRunUpdateOne) ClearErrorSummary() *PipelineRunUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// Mutation returns the PipelineRunMutation object of the builder.
func (_u *PipelineRunUpdateOne) Mutation() *PipelineRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunUpdate builder.
func (_u *PipelineRunUpdateOne) Where(ps ...predicate.PipelineRun) *PipelineRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunUpdateOne) Select(field string, fields ...string) *PipelineRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRun entity.
func (_u *PipelineRunUpdateOne) Save(ctx context.Context) (*PipelineRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) SaveX(ctx context.Context) *PipelineRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinerun.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerun.Table, pipelinerun.Columns, sqlgraph.NewFieldSpec(pipelinerun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerun.FieldID)
		for _, f := range fields {
			if !pipelinerun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerun.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinerun.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(pipelinerun.FieldWindow, field.TypeString, value)
	}
	if _u.mutation.WindowCleared() {
		_spec.ClearField(pipelinerun.FieldWindow, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(pipelinerun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(pipelinerun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(pipelinerun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(pipelinerun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.InputCount(); ok {
		_spec.SetField(pipelinerun.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputCount(); ok {
		_spec.AddField(pipelinerun.FieldInputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputCount(); ok {
		_spec.SetField(pipelinerun.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputCount(); ok {
		_spec.AddField(pipelinerun.FieldOutputCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessCount(); ok {
		_spec.SetField(pipelinerun.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessCount(); ok {
		_spec.AddField(pipelinerun.FieldSuccessCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(pipelinerun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(pipelinerun.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(pipelinerun.FieldResults, field.TypeJSON, value)
	}
	if _u.mutation.ResultsCleared() {
		_spec.ClearField(pipelinerun.FieldResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(pipelinerun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(pipelinerun.FieldErrorSummary, field.TypeString)
	}
	_node = &PipelineRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
