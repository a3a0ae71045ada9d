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
	"github.com/echoman-project/echoman/ent/ingestrun"
	"github.com/echoman-project/echoman/ent/predicate"
)

// IngestRunUpdate is the builder for updating IngestRun entities.
type IngestRunUpdate struct {
	config
	hooks    []Hook
	mutation *IngestRunMutation
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdate) Where(ps ...predicate.IngestRun) *IngestRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdate) SetStatus(v ingestrun.Status) *IngestRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableStatus(v *ingestrun.Status) *IngestRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *IngestRunUpdate) SetWindow(v string) *IngestRunUpdate {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableWindow(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestRunUpdate) SetStartedAt(v time.Time) *IngestRunUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableStartedAt(v *time.Time) *IngestRunUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IngestRunUpdate) SetEndedAt(v time.Time) *IngestRunUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableEndedAt(v *time.Time) *IngestRunUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *IngestRunUpdate) ClearEndedAt() *IngestRunUpdate {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *IngestRunUpdate) SetDurationMs(v int) *IngestRunUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableDurationMs(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *IngestRunUpdate) AddDurationMs(v int) *IngestRunUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *IngestRunUpdate) ClearDurationMs() *IngestRunUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPlatformCount sets the "platform_count" field.
func (_u *IngestRunUpdate) SetPlatformCount(v int) *IngestRunUpdate {
	_u.mutation.ResetPlatformCount()
	_u.mutation.SetPlatformCount(v)
	return _u
}

// SetNillablePlatformCount sets the "platform_count" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillablePlatformCount(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetPlatformCount(*v)
	}
	return _u
}

// AddPlatformCount adds value to the "platform_count" field.
func (_u *IngestRunUpdate) AddPlatformCount(v int) *IngestRunUpdate {
	_u.mutation.AddPlatformCount(v)
	return _u
}

// SetPlatformSuccess sets the "platform_success" field.
func (_u *IngestRunUpdate) SetPlatformSuccess(v int) *IngestRunUpdate {
	_u.mutation.ResetPlatformSuccess()
	_u.mutation.SetPlatformSuccess(v)
	return _u
}

// SetNillablePlatformSuccess sets the "platform_success" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillablePlatformSuccess(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetPlatformSuccess(*v)
	}
	return _u
}

// AddPlatformSuccess adds value to the "platform_success" field.
func (_u *IngestRunUpdate) AddPlatformSuccess(v int) *IngestRunUpdate {
	_u.mutation.AddPlatformSuccess(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *IngestRunUpdate) SetItemCount(v int) *IngestRunUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableItemCount(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *IngestRunUpdate) AddItemCount(v int) *IngestRunUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetNewItemCount sets the "new_item_count" field.
func (_u *IngestRunUpdate) SetNewItemCount(v int) *IngestRunUpdate {
	_u.mutation.ResetNewItemCount()
	_u.mutation.SetNewItemCount(v)
	return _u
}

// SetNillableNewItemCount sets the "new_item_count" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableNewItemCount(v *int) *IngestRunUpdate {
	if v != nil {
		_u.SetNewItemCount(*v)
	}
	return _u
}

// AddNewItemCount adds value to the "new_item_count" field.
func (_u *IngestRunUpdate) AddNewItemCount(v int) *IngestRunUpdate {
	_u.mutation.AddNewItemCount(v)
	return _u
}

// SetPlatformResults sets the "platform_results" field.
func (_u *IngestRunUpdate) SetPlatformResults(v map[string]interface{}) *IngestRunUpdate {
	_u.mutation.SetPlatformResults(v)
	return _u
}

// ClearPlatformResults clears the value of the "platform_results" field.
func (_u *IngestRunUpdate) ClearPlatformResults() *IngestRunUpdate {
	_u.mutation.ClearPlatformResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *IngestRunUpdate) SetErrorSummary(v string) *IngestRunUpdate {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *IngestRunUpdate) SetNillableErrorSummary(v *string) *IngestRunUpdate {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *IngestRunUpdate) ClearErrorSummary() *IngestRunUpdate {
	_u.mutation.ClearErrorSummary()
	return _u
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdate) Mutation() *IngestRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(ingestrun.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(ingestrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(ingestrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ingestrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ingestrun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(ingestrun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PlatformCount(); ok {
		_spec.SetField(ingestrun.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformCount(); ok {
		_spec.AddField(ingestrun.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformSuccess(); ok {
		_spec.SetField(ingestrun.FieldPlatformSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformSuccess(); ok {
		_spec.AddField(ingestrun.FieldPlatformSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewItemCount(); ok {
		_spec.SetField(ingestrun.FieldNewItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewItemCount(); ok {
		_spec.AddField(ingestrun.FieldNewItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformResults(); ok {
		_spec.SetField(ingestrun.FieldPlatformResults, field.TypeJSON, value)
	}
	if _u.mutation.PlatformResultsCleared() {
		_spec.ClearField(ingestrun.FieldPlatformResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(ingestrun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(ingestrun.FieldErrorSummary, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestRunUpdateOne is the builder for updating a single IngestRun entity.
type IngestRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestRunMutation
}

// SetStatus sets the "status" field.
func (_u *IngestRunUpdateOne) SetStatus(v ingestrun.Status) *IngestRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableStatus(v *ingestrun.Status) *IngestRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWindow sets the "window" field.
func (_u *IngestRunUpdateOne) SetWindow(v string) *IngestRunUpdateOne {
	_u.mutation.SetWindow(v)
	return _u
}

// SetNillableWindow sets the "window" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableWindow(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetWindow(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestRunUpdateOne) SetStartedAt(v time.Time) *IngestRunUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableStartedAt(v *time.Time) *IngestRunUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *IngestRunUpdateOne) SetEndedAt(v time.Time) *IngestRunUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableEndedAt(v *time.Time) *IngestRunUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// ClearEndedAt clears the value of the "ended_at" field.
func (_u *IngestRunUpdateOne) ClearEndedAt() *IngestRunUpdateOne {
	_u.mutation.ClearEndedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *IngestRunUpdateOne) SetDurationMs(v int) *IngestRunUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableDurationMs(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *IngestRunUpdateOne) AddDurationMs(v int) *IngestRunUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *IngestRunUpdateOne) ClearDurationMs() *IngestRunUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetPlatformCount sets the "platform_count" field.
func (_u *IngestRunUpdateOne) SetPlatformCount(v int) *IngestRunUpdateOne {
	_u.mutation.ResetPlatformCount()
	_u.mutation.SetPlatformCount(v)
	return _u
}

// SetNillablePlatformCount sets the "platform_count" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillablePlatformCount(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetPlatformCount(*v)
	}
	return _u
}

// AddPlatformCount adds value to the "platform_count" field.
func (_u *IngestRunUpdateOne) AddPlatformCount(v int) *IngestRunUpdateOne {
	_u.mutation.AddPlatformCount(v)
	return _u
}

// SetPlatformSuccess sets the "platform_success" field.
func (_u *IngestRunUpdateOne) SetPlatformSuccess(v int) *IngestRunUpdateOne {
	_u.mutation.ResetPlatformSuccess()
	_u.mutation.SetPlatformSuccess(v)
	return _u
}

// SetNillablePlatformSuccess sets the "platform_success" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillablePlatformSuccess(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetPlatformSuccess(*v)
	}
	return _u
}

// AddPlatformSuccess adds value to the "platform_success" field.
func (_u *IngestRunUpdateOne) AddPlatformSuccess(v int) *IngestRunUpdateOne {
	_u.mutation.AddPlatformSuccess(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *IngestRunUpdateOne) SetItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableItemCount(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *IngestRunUpdateOne) AddItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetNewItemCount sets the "new_item_count" field.
func (_u *IngestRunUpdateOne) SetNewItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.ResetNewItemCount()
	_u.mutation.SetNewItemCount(v)
	return _u
}

// SetNillableNewItemCount sets the "new_item_count" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableNewItemCount(v *int) *IngestRunUpdateOne {
	if v != nil {
		_u.SetNewItemCount(*v)
	}
	return _u
}

// AddNewItemCount adds value to the "new_item_count" field.
func (_u *IngestRunUpdateOne) AddNewItemCount(v int) *IngestRunUpdateOne {
	_u.mutation.AddNewItemCount(v)
	return _u
}

// SetPlatformResults sets the "platform_results" field.
func (_u *IngestRunUpdateOne) SetPlatformResults(v map[string]interface{}) *IngestRunUpdateOne {
	_u.mutation.SetPlatformResults(v)
	return _u
}

// ClearPlatformResults clears the value of the "platform_results" field.
func (_u *IngestRunUpdateOne) ClearPlatformResults() *IngestRunUpdateOne {
	_u.mutation.ClearPlatformResults()
	return _u
}

// SetErrorSummary sets the "error_summary" field.
func (_u *IngestRunUpdateOne) SetErrorSummary(v string) *IngestRunUpdateOne {
	_u.mutation.SetErrorSummary(v)
	return _u
}

// SetNillableErrorSummary sets the "error_summary" field if the given value is not nil.
func (_u *IngestRunUpdateOne) SetNillableErrorSummary(v *string) *IngestRunUpdateOne {
	if v != nil {
		_u.SetErrorSummary(*v)
	}
	return _u
}

// ClearErrorSummary clears the value of the "error_summary" field.
func (_u *IngestRunUpdateOne) ClearErrorSummary() *IngestRunUpdateOne {
	_u.mutation.ClearErrorSummary()
	return _u
}

// Mutation returns the IngestRunMutation object of the builder.
func (_u *IngestRunUpdateOne) Mutation() *IngestRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the IngestRunUpdate builder.
func (_u *IngestRunUpdateOne) Where(ps ...predicate.IngestRun) *IngestRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestRunUpdateOne) Select(field string, fields ...string) *IngestRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestRun entity.
func (_u *IngestRunUpdateOne) Save(ctx context.Context) (*IngestRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestRunUpdateOne) SaveX(ctx context.Context) *IngestRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ingestrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "IngestRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *IngestRunUpdateOne) sqlSave(ctx context.Context) (_node *IngestRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestrun.Table, ingestrun.Columns, sqlgraph.NewFieldSpec(ingestrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestrun.FieldID)
		for _, f := range fields {
			if !ingestrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestrun.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ingestrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Window(); ok {
		_spec.SetField(ingestrun.FieldWindow, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestrun.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(ingestrun.FieldEndedAt, field.TypeTime, value)
	}
	if _u.mutation.EndedAtCleared() {
		_spec.ClearField(ingestrun.FieldEndedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(ingestrun.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(ingestrun.FieldDurationMs, field.TypeInt, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(ingestrun.FieldDurationMs, field.TypeInt)
	}
	if value, ok := _u.mutation.PlatformCount(); ok {
		_spec.SetField(ingestrun.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformCount(); ok {
		_spec.AddField(ingestrun.FieldPlatformCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformSuccess(); ok {
		_spec.SetField(ingestrun.FieldPlatformSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlatformSuccess(); ok {
		_spec.AddField(ingestrun.FieldPlatformSuccess, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(ingestrun.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NewItemCount(); ok {
		_spec.SetField(ingestrun.FieldNewItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNewItemCount(); ok {
		_spec.AddField(ingestrun.FieldNewItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlatformResults(); ok {
		_spec.SetField(ingestrun.FieldPlatformResults, field.TypeJSON, value)
	}
	if _u.mutation.PlatformResultsCleared() {
		_spec.ClearField(ingestrun.FieldPlatformResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorSummary(); ok {
		_spec.SetField(ingestrun.FieldErrorSummary, field.TypeString, value)
	}
	if _u.mutation.ErrorSummaryCleared() {
		_spec.ClearField(ingestrun.FieldErrorSummary, field.TypeString)
	}
	_node = &IngestRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
