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
	"github.com/echoman-project/echoman/ent/predicate"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicnode"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// TopicUpdate is the builder for updating Topic entities.
type TopicUpdate struct {
	config
	hooks    []Hook
	mutation *TopicMutation
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdate) Where(ps ...predicate.Topic) *TopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitleKey sets the "title_key" field.
func (_u *TopicUpdate) SetTitleKey(v string) *TopicUpdate {
	_u.mutation.SetTitleKey(v)
	return _u
}

// SetNillableTitleKey sets the "title_key" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableTitleKey(v *string) *TopicUpdate {
	if v != nil {
		_u.SetTitleKey(*v)
	}
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *TopicUpdate) SetFirstSeen(v time.Time) *TopicUpdate {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableFirstSeen(v *time.Time) *TopicUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *TopicUpdate) SetLastActive(v time.Time) *TopicUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableLastActive(v *time.Time) *TopicUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicUpdate) SetStatus(v topic.Status) *TopicUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableStatus(v *topic.Status) *TopicUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntensityTotal sets the "intensity_total" field.
func (_u *TopicUpdate) SetIntensityTotal(v int) *TopicUpdate {
	_u.mutation.ResetIntensityTotal()
	_u.mutation.SetIntensityTotal(v)
	return _u
}

// SetNillableIntensityTotal sets the "intensity_total" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableIntensityTotal(v *int) *TopicUpdate {
	if v != nil {
		_u.SetIntensityTotal(*v)
	}
	return _u
}

// AddIntensityTotal adds value to the "intensity_total" field.
func (_u *TopicUpdate) AddIntensityTotal(v int) *TopicUpdate {
	_u.mutation.AddIntensityTotal(v)
	return _u
}

// SetInteractionTotal sets the "interaction_total" field.
func (_u *TopicUpdate) SetInteractionTotal(v int64) *TopicUpdate {
	_u.mutation.ResetInteractionTotal()
	_u.mutation.SetInteractionTotal(v)
	return _u
}

// SetNillableInteractionTotal sets the "interaction_total" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableInteractionTotal(v *int64) *TopicUpdate {
	if v != nil {
		_u.SetInteractionTotal(*v)
	}
	return _u
}

// AddInteractionTotal adds value to the "interaction_total" field.
func (_u *TopicUpdate) AddInteractionTotal(v int64) *TopicUpdate {
	_u.mutation.AddInteractionTotal(v)
	return _u
}

// ClearInteractionTotal clears the value of the "interaction_total" field.
func (_u *TopicUpdate) ClearInteractionTotal() *TopicUpdate {
	_u.mutation.ClearInteractionTotal()
	return _u
}

// SetCurrentHeatNormalized sets the "current_heat_normalized" field.
func (_u *TopicUpdate) SetCurrentHeatNormalized(v float64) *TopicUpdate {
	_u.mutation.ResetCurrentHeatNormalized()
	_u.mutation.SetCurrentHeatNormalized(v)
	return _u
}

// SetNillableCurrentHeatNormalized sets the "current_heat_normalized" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCurrentHeatNormalized(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetCurrentHeatNormalized(*v)
	}
	return _u
}

// AddCurrentHeatNormalized adds value to the "current_heat_normalized" field.
func (_u *TopicUpdate) AddCurrentHeatNormalized(v float64) *TopicUpdate {
	_u.mutation.AddCurrentHeatNormalized(v)
	return _u
}

// ClearCurrentHeatNormalized clears the value of the "current_heat_normalized" field.
func (_u *TopicUpdate) ClearCurrentHeatNormalized() *TopicUpdate {
	_u.mutation.ClearCurrentHeatNormalized()
	return _u
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_u *TopicUpdate) SetHeatPercentage(v float64) *TopicUpdate {
	_u.mutation.ResetHeatPercentage()
	_u.mutation.SetHeatPercentage(v)
	return _u
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableHeatPercentage(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetHeatPercentage(*v)
	}
	return _u
}

// AddHeatPercentage adds value to the "heat_percentage" field.
func (_u *TopicUpdate) AddHeatPercentage(v float64) *TopicUpdate {
	_u.mutation.AddHeatPercentage(v)
	return _u
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (_u *TopicUpdate) ClearHeatPercentage() *TopicUpdate {
	_u.mutation.ClearHeatPercentage()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TopicUpdate) SetCategory(v topic.Category) *TopicUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCategory(v *topic.Category) *TopicUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TopicUpdate) ClearCategory() *TopicUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_u *TopicUpdate) SetCategoryConfidence(v float64) *TopicUpdate {
	_u.mutation.ResetCategoryConfidence()
	_u.mutation.SetCategoryConfidence(v)
	return _u
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCategoryConfidence(v *float64) *TopicUpdate {
	if v != nil {
		_u.SetCategoryConfidence(*v)
	}
	return _u
}

// AddCategoryConfidence adds value to the "category_confidence" field.
func (_u *TopicUpdate) AddCategoryConfidence(v float64) *TopicUpdate {
	_u.mutation.AddCategoryConfidence(v)
	return _u
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (_u *TopicUpdate) ClearCategoryConfidence() *TopicUpdate {
	_u.mutation.ClearCategoryConfidence()
	return _u
}

// SetCategoryMethod sets the "category_method" field.
func (_u *TopicUpdate) SetCategoryMethod(v topic.CategoryMethod) *TopicUpdate {
	_u.mutation.SetCategoryMethod(v)
	return _u
}

// SetNillableCategoryMethod sets the "category_method" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCategoryMethod(v *topic.CategoryMethod) *TopicUpdate {
	if v != nil {
		_u.SetCategoryMethod(*v)
	}
	return _u
}

// ClearCategoryMethod clears the value of the "category_method" field.
func (_u *TopicUpdate) ClearCategoryMethod() *TopicUpdate {
	_u.mutation.ClearCategoryMethod()
	return _u
}

// SetCategoryUpdatedAt sets the "category_updated_at" field.
func (_u *TopicUpdate) SetCategoryUpdatedAt(v time.Time) *TopicUpdate {
	_u.mutation.SetCategoryUpdatedAt(v)
	return _u
}

// SetNillableCategoryUpdatedAt sets the "category_updated_at" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableCategoryUpdatedAt(v *time.Time) *TopicUpdate {
	if v != nil {
		_u.SetCategoryUpdatedAt(*v)
	}
	return _u
}

// ClearCategoryUpdatedAt clears the value of the "category_updated_at" field.
func (_u *TopicUpdate) ClearCategoryUpdatedAt() *TopicUpdate {
	_u.mutation.ClearCategoryUpdatedAt()
	return _u
}

// SetSummaryID sets the "summary_id" field.
func (_u *TopicUpdate) SetSummaryID(v int) *TopicUpdate {
	_u.mutation.ResetSummaryID()
	_u.mutation.SetSummaryID(v)
	return _u
}

// SetNillableSummaryID sets the "summary_id" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableSummaryID(v *int) *TopicUpdate {
	if v != nil {
		_u.SetSummaryID(*v)
	}
	return _u
}

// AddSummaryID adds value to the "summary_id" field.
func (_u *TopicUpdate) AddSummaryID(v int) *TopicUpdate {
	_u.mutation.AddSummaryID(v)
	return _u
}

// ClearSummaryID clears the value of the "summary_id" field.
func (_u *TopicUpdate) ClearSummaryID() *TopicUpdate {
	_u.mutation.ClearSummaryID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdate) SetUpdatedAt(v time.Time) *TopicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TopicUpdate) SetNillableUpdatedAt(v *time.Time) *TopicUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddNodeIDs adds the "nodes" edge to the TopicNode entity by IDs.
func (_u *TopicUpdate) AddNodeIDs(ids ...int) *TopicUpdate {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the TopicNode entity.
func (_u *TopicUpdate) AddNodes(v ...*TopicNode) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// AddPeriodHeatIDs adds the "period_heats" edge to the TopicPeriodHeat entity by IDs.
func (_u *TopicUpdate) AddPeriodHeatIDs(ids ...int) *TopicUpdate {
	_u.mutation.AddPeriodHeatIDs(ids...)
	return _u
}

// AddPeriodHeats adds the "period_heats" edges to the TopicPeriodHeat entity.
func (_u *TopicUpdate) AddPeriodHeats(v ...*TopicPeriodHeat) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPeriodHeatIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *TopicUpdate) AddSummaryIDs(ids ...int) *TopicUpdate {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *TopicUpdate) AddSummaries(v ...*Summary) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdate) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the TopicNode entity.
func (_u *TopicUpdate) ClearNodes() *TopicUpdate {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to TopicNode entities by IDs.
func (_u *TopicUpdate) RemoveNodeIDs(ids ...int) *TopicUpdate {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to TopicNode entities.
func (_u *TopicUpdate) RemoveNodes(v ...*TopicNode) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// ClearPeriodHeats clears all "period_heats" edges to the TopicPeriodHeat entity.
func (_u *TopicUpdate) ClearPeriodHeats() *TopicUpdate {
	_u.mutation.ClearPeriodHeats()
	return _u
}

// RemovePeriodHeatIDs removes the "period_heats" edge to TopicPeriodHeat entities by IDs.
func (_u *TopicUpdate) RemovePeriodHeatIDs(ids ...int) *TopicUpdate {
	_u.mutation.RemovePeriodHeatIDs(ids...)
	return _u
}

// RemovePeriodHeats removes "period_heats" edges to TopicPeriodHeat entities.
func (_u *TopicUpdate) RemovePeriodHeats(v ...*TopicPeriodHeat) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePeriodHeatIDs(ids...)
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *TopicUpdate) ClearSummaries() *TopicUpdate {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *TopicUpdate) RemoveSummaryIDs(ids ...int) *TopicUpdate {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *TopicUpdate) RemoveSummaries(v ...*Summary) *TopicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Topic.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := topic.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Topic.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryMethod(); ok {
		if err := topic.CategoryMethodValidator(v); err != nil {
			return &ValidationError{Name: "category_method", err: fmt.Errorf(`ent: validator failed for field "Topic.category_method": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TitleKey(); ok {
		_spec.SetField(topic.FieldTitleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(topic.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(topic.FieldLastActive, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntensityTotal(); ok {
		_spec.SetField(topic.FieldIntensityTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensityTotal(); ok {
		_spec.AddField(topic.FieldIntensityTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionTotal(); ok {
		_spec.SetField(topic.FieldInteractionTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInteractionTotal(); ok {
		_spec.AddField(topic.FieldInteractionTotal, field.TypeInt64, value)
	}
	if _u.mutation.InteractionTotalCleared() {
		_spec.ClearField(topic.FieldInteractionTotal, field.TypeInt64)
	}
	if value, ok := _u.mutation.CurrentHeatNormalized(); ok {
		_spec.SetField(topic.FieldCurrentHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentHeatNormalized(); ok {
		_spec.AddField(topic.FieldCurrentHeatNormalized, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentHeatNormalizedCleared() {
		_spec.ClearField(topic.FieldCurrentHeatNormalized, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HeatPercentage(); ok {
		_spec.SetField(topic.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatPercentage(); ok {
		_spec.AddField(topic.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.HeatPercentageCleared() {
		_spec.ClearField(topic.FieldHeatPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(topic.FieldCategory, field.TypeEnum, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(topic.FieldCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.CategoryConfidence(); ok {
		_spec.SetField(topic.FieldCategoryConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCategoryConfidence(); ok {
		_spec.AddField(topic.FieldCategoryConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.CategoryConfidenceCleared() {
		_spec.ClearField(topic.FieldCategoryConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CategoryMethod(); ok {
		_spec.SetField(topic.FieldCategoryMethod, field.TypeEnum, value)
	}
	if _u.mutation.CategoryMethodCleared() {
		_spec.ClearField(topic.FieldCategoryMethod, field.TypeEnum)
	}
	if value, ok := _u.mutation.CategoryUpdatedAt(); ok {
		_spec.SetField(topic.FieldCategoryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryUpdatedAtCleared() {
		_spec.ClearField(topic.FieldCategoryUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummaryID(); ok {
		_spec.SetField(topic.FieldSummaryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryID(); ok {
		_spec.AddField(topic.FieldSummaryID, field.TypeInt, value)
	}
	if _u.mutation.SummaryIDCleared() {
		_spec.ClearField(topic.FieldSummaryID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PeriodHeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPeriodHeatsIDs(); len(nodes) > 0 && !_u.mutation.PeriodHeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PeriodHeatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TopicUpdateOne is the builder for updating a single Topic entity.
type TopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TopicMutation
}

// SetTitleKey sets the "title_key" field.
func (_u *TopicUpdateOne) SetTitleKey(v string) *TopicUpdateOne {
	_u.mutation.SetTitleKey(v)
	return _u
}

// SetNillableTitleKey sets the "title_key" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableTitleKey(v *string) *TopicUpdateOne {
	if v != nil {
		_u.SetTitleKey(*v)
	}
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *TopicUpdateOne) SetFirstSeen(v time.Time) *TopicUpdateOne {
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableFirstSeen(v *time.Time) *TopicUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *TopicUpdateOne) SetLastActive(v time.Time) *TopicUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableLastActive(v *time.Time) *TopicUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TopicUpdateOne) SetStatus(v topic.Status) *TopicUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableStatus(v *topic.Status) *TopicUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIntensityTotal sets the "intensity_total" field.
func (_u *TopicUpdateOne) SetIntensityTotal(v int) *TopicUpdateOne {
	_u.mutation.ResetIntensityTotal()
	_u.mutation.SetIntensityTotal(v)
	return _u
}

// SetNillableIntensityTotal sets the "intensity_total" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableIntensityTotal(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetIntensityTotal(*v)
	}
	return _u
}

// AddIntensityTotal adds value to the "intensity_total" field.
func (_u *TopicUpdateOne) AddIntensityTotal(v int) *TopicUpdateOne {
	_u.mutation.AddIntensityTotal(v)
	return _u
}

// SetInteractionTotal sets the "interaction_total" field.
func (_u *TopicUpdateOne) SetInteractionTotal(v int64) *TopicUpdateOne {
	_u.mutation.ResetInteractionTotal()
	_u.mutation.SetInteractionTotal(v)
	return _u
}

// SetNillableInteractionTotal sets the "interaction_total" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableInteractionTotal(v *int64) *TopicUpdateOne {
	if v != nil {
		_u.SetInteractionTotal(*v)
	}
	return _u
}

// AddInteractionTotal adds value to the "interaction_total" field.
func (_u *TopicUpdateOne) AddInteractionTotal(v int64) *TopicUpdateOne {
	_u.mutation.AddInteractionTotal(v)
	return _u
}

// ClearInteractionTotal clears the value of the "interaction_total" field.
func (_u *TopicUpdateOne) ClearInteractionTotal() *TopicUpdateOne {
	_u.mutation.ClearInteractionTotal()
	return _u
}

// SetCurrentHeatNormalized sets the "current_heat_normalized" field.
func (_u *TopicUpdateOne) SetCurrentHeatNormalized(v float64) *TopicUpdateOne {
	_u.mutation.ResetCurrentHeatNormalized()
	_u.mutation.SetCurrentHeatNormalized(v)
	return _u
}

// SetNillableCurrentHeatNormalized sets the "current_heat_normalized" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCurrentHeatNormalized(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetCurrentHeatNormalized(*v)
	}
	return _u
}

// AddCurrentHeatNormalized adds value to the "current_heat_normalized" field.
func (_u *TopicUpdateOne) AddCurrentHeatNormalized(v float64) *TopicUpdateOne {
	_u.mutation.AddCurrentHeatNormalized(v)
	return _u
}

// ClearCurrentHeatNormalized clears the value of the "current_heat_normalized" field.
func (_u *TopicUpdateOne) ClearCurrentHeatNormalized() *TopicUpdateOne {
	_u.mutation.ClearCurrentHeatNormalized()
	return _u
}

// SetHeatPercentage sets the "heat_percentage" field.
func (_u *TopicUpdateOne) SetHeatPercentage(v float64) *TopicUpdateOne {
	_u.mutation.ResetHeatPercentage()
	_u.mutation.SetHeatPercentage(v)
	return _u
}

// SetNillableHeatPercentage sets the "heat_percentage" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableHeatPercentage(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetHeatPercentage(*v)
	}
	return _u
}

// AddHeatPercentage adds value to the "heat_percentage" field.
func (_u *TopicUpdateOne) AddHeatPercentage(v float64) *TopicUpdateOne {
	_u.mutation.AddHeatPercentage(v)
	return _u
}

// ClearHeatPercentage clears the value of the "heat_percentage" field.
func (_u *TopicUpdateOne) ClearHeatPercentage() *TopicUpdateOne {
	_u.mutation.ClearHeatPercentage()
	return _u
}

// SetCategory sets the "category" field.
func (_u *TopicUpdateOne) SetCategory(v topic.Category) *TopicUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCategory(v *topic.Category) *TopicUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *TopicUpdateOne) ClearCategory() *TopicUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetCategoryConfidence sets the "category_confidence" field.
func (_u *TopicUpdateOne) SetCategoryConfidence(v float64) *TopicUpdateOne {
	_u.mutation.ResetCategoryConfidence()
	_u.mutation.SetCategoryConfidence(v)
	return _u
}

// SetNillableCategoryConfidence sets the "category_confidence" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCategoryConfidence(v *float64) *TopicUpdateOne {
	if v != nil {
		_u.SetCategoryConfidence(*v)
	}
	return _u
}

// AddCategoryConfidence adds value to the "category_confidence" field.
func (_u *TopicUpdateOne) AddCategoryConfidence(v float64) *TopicUpdateOne {
	_u.mutation.AddCategoryConfidence(v)
	return _u
}

// ClearCategoryConfidence clears the value of the "category_confidence" field.
func (_u *TopicUpdateOne) ClearCategoryConfidence() *TopicUpdateOne {
	_u.mutation.ClearCategoryConfidence()
	return _u
}

// SetCategoryMethod sets the "category_method" field.
func (_u *TopicUpdateOne) SetCategoryMethod(v topic.CategoryMethod) *TopicUpdateOne {
	_u.mutation.SetCategoryMethod(v)
	return _u
}

// SetNillableCategoryMethod sets the "category_method" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCategoryMethod(v *topic.CategoryMethod) *TopicUpdateOne {
	if v != nil {
		_u.SetCategoryMethod(*v)
	}
	return _u
}

// ClearCategoryMethod clears the value of the "category_method" field.
func (_u *TopicUpdateOne) ClearCategoryMethod() *TopicUpdateOne {
	_u.mutation.ClearCategoryMethod()
	return _u
}

// SetCategoryUpdatedAt sets the "category_updated_at" field.
func (_u *TopicUpdateOne) SetCategoryUpdatedAt(v time.Time) *TopicUpdateOne {
	_u.mutation.SetCategoryUpdatedAt(v)
	return _u
}

// SetNillableCategoryUpdatedAt sets the "category_updated_at" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableCategoryUpdatedAt(v *time.Time) *TopicUpdateOne {
	if v != nil {
		_u.SetCategoryUpdatedAt(*v)
	}
	return _u
}

// ClearCategoryUpdatedAt clears the value of the "category_updated_at" field.
func (_u *TopicUpdateOne) ClearCategoryUpdatedAt() *TopicUpdateOne {
	_u.mutation.ClearCategoryUpdatedAt()
	return _u
}

// SetSummaryID sets the "summary_id" field.
func (_u *TopicUpdateOne) SetSummaryID(v int) *TopicUpdateOne {
	_u.mutation.ResetSummaryID()
	_u.mutation.SetSummaryID(v)
	return _u
}

// SetNillableSummaryID sets the "summary_id" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableSummaryID(v *int) *TopicUpdateOne {
	if v != nil {
		_u.SetSummaryID(*v)
	}
	return _u
}

// AddSummaryID adds value to the "summary_id" field.
func (_u *TopicUpdateOne) AddSummaryID(v int) *TopicUpdateOne {
	_u.mutation.AddSummaryID(v)
	return _u
}

// ClearSummaryID clears the value of the "summary_id" field.
func (_u *TopicUpdateOne) ClearSummaryID() *TopicUpdateOne {
	_u.mutation.ClearSummaryID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TopicUpdateOne) SetUpdatedAt(v time.Time) *TopicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *TopicUpdateOne) SetNillableUpdatedAt(v *time.Time) *TopicUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// AddNodeIDs adds the "nodes" edge to the TopicNode entity by IDs.
func (_u *TopicUpdateOne) AddNodeIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.AddNodeIDs(ids...)
	return _u
}

// AddNodes adds the "nodes" edges to the TopicNode entity.
func (_u *TopicUpdateOne) AddNodes(v ...*TopicNode) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddNodeIDs(ids...)
}

// AddPeriodHeatIDs adds the "period_heats" edge to the TopicPeriodHeat entity by IDs.
func (_u *TopicUpdateOne) AddPeriodHeatIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.AddPeriodHeatIDs(ids...)
	return _u
}

// AddPeriodHeats adds the "period_heats" edges to the TopicPeriodHeat entity.
func (_u *TopicUpdateOne) AddPeriodHeats(v ...*TopicPeriodHeat) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPeriodHeatIDs(ids...)
}

// AddSummaryIDs adds the "summaries" edge to the Summary entity by IDs.
func (_u *TopicUpdateOne) AddSummaryIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.AddSummaryIDs(ids...)
	return _u
}

// AddSummaries adds the "summaries" edges to the Summary entity.
func (_u *TopicUpdateOne) AddSummaries(v ...*Summary) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSummaryIDs(ids...)
}

// Mutation returns the TopicMutation object of the builder.
func (_u *TopicUpdateOne) Mutation() *TopicMutation {
	return _u.mutation
}

// ClearNodes clears all "nodes" edges to the TopicNode entity.
func (_u *TopicUpdateOne) ClearNodes() *TopicUpdateOne {
	_u.mutation.ClearNodes()
	return _u
}

// RemoveNodeIDs removes the "nodes" edge to TopicNode entities by IDs.
func (_u *TopicUpdateOne) RemoveNodeIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.RemoveNodeIDs(ids...)
	return _u
}

// RemoveNodes removes "nodes" edges to TopicNode entities.
func (_u *TopicUpdateOne) RemoveNodes(v ...*TopicNode) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveNodeIDs(ids...)
}

// ClearPeriodHeats clears all "period_heats" edges to the TopicPeriodHeat entity.
func (_u *TopicUpdateOne) ClearPeriodHeats() *TopicUpdateOne {
	_u.mutation.ClearPeriodHeats()
	return _u
}

// RemovePeriodHeatIDs removes the "period_heats" edge to TopicPeriodHeat entities by IDs.
func (_u *TopicUpdateOne) RemovePeriodHeatIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.RemovePeriodHeatIDs(ids...)
	return _u
}

// RemovePeriodHeats removes "period_heats" edges to TopicPeriodHeat entities.
func (_u *TopicUpdateOne) RemovePeriodHeats(v ...*TopicPeriodHeat) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePeriodHeatIDs(ids...)
}

// ClearSummaries clears all "summaries" edges to the Summary entity.
func (_u *TopicUpdateOne) ClearSummaries() *TopicUpdateOne {
	_u.mutation.ClearSummaries()
	return _u
}

// RemoveSummaryIDs removes the "summaries" edge to Summary entities by IDs.
func (_u *TopicUpdateOne) RemoveSummaryIDs(ids ...int) *TopicUpdateOne {
	_u.mutation.RemoveSummaryIDs(ids...)
	return _u
}

// RemoveSummaries removes "summaries" edges to Summary entities.
func (_u *TopicUpdateOne) RemoveSummaries(v ...*Summary) *TopicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSummaryIDs(ids...)
}

// Where appends a list predicates to the TopicUpdate builder.
func (_u *TopicUpdateOne) Where(ps ...predicate.Topic) *TopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TopicUpdateOne) Select(field string, fields ...string) *TopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Topic entity.
func (_u *TopicUpdateOne) Save(ctx context.Context) (*Topic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TopicUpdateOne) SaveX(ctx context.Context) *Topic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TopicUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := topic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Topic.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := topic.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Topic.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CategoryMethod(); ok {
		if err := topic.CategoryMethodValidator(v); err != nil {
			return &ValidationError{Name: "category_method", err: fmt.Errorf(`ent: validator failed for field "Topic.category_method": %w`, err)}
		}
	}
	return nil
}

func (_u *TopicUpdateOne) sqlSave(ctx context.Context) (_node *Topic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(topic.Table, topic.Columns, sqlgraph.NewFieldSpec(topic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Topic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, topic.FieldID)
		for _, f := range fields {
			if !topic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != topic.FieldID {
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
	if value, ok := _u.mutation.TitleKey(); ok {
		_spec.SetField(topic.FieldTitleKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(topic.FieldFirstSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(topic.FieldLastActive, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(topic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntensityTotal(); ok {
		_spec.SetField(topic.FieldIntensityTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntensityTotal(); ok {
		_spec.AddField(topic.FieldIntensityTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InteractionTotal(); ok {
		_spec.SetField(topic.FieldInteractionTotal, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInteractionTotal(); ok {
		_spec.AddField(topic.FieldInteractionTotal, field.TypeInt64, value)
	}
	if _u.mutation.InteractionTotalCleared() {
		_spec.ClearField(topic.FieldInteractionTotal, field.TypeInt64)
	}
	if value, ok := _u.mutation.CurrentHeatNormalized(); ok {
		_spec.SetField(topic.FieldCurrentHeatNormalized, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentHeatNormalized(); ok {
		_spec.AddField(topic.FieldCurrentHeatNormalized, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentHeatNormalizedCleared() {
		_spec.ClearField(topic.FieldCurrentHeatNormalized, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HeatPercentage(); ok {
		_spec.SetField(topic.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeatPercentage(); ok {
		_spec.AddField(topic.FieldHeatPercentage, field.TypeFloat64, value)
	}
	if _u.mutation.HeatPercentageCleared() {
		_spec.ClearField(topic.FieldHeatPercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(topic.FieldCategory, field.TypeEnum, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(topic.FieldCategory, field.TypeEnum)
	}
	if value, ok := _u.mutation.CategoryConfidence(); ok {
		_spec.SetField(topic.FieldCategoryConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCategoryConfidence(); ok {
		_spec.AddField(topic.FieldCategoryConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.CategoryConfidenceCleared() {
		_spec.ClearField(topic.FieldCategoryConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CategoryMethod(); ok {
		_spec.SetField(topic.FieldCategoryMethod, field.TypeEnum, value)
	}
	if _u.mutation.CategoryMethodCleared() {
		_spec.ClearField(topic.FieldCategoryMethod, field.TypeEnum)
	}
	if value, ok := _u.mutation.CategoryUpdatedAt(); ok {
		_spec.SetField(topic.FieldCategoryUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.CategoryUpdatedAtCleared() {
		_spec.ClearField(topic.FieldCategoryUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SummaryID(); ok {
		_spec.SetField(topic.FieldSummaryID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryID(); ok {
		_spec.AddField(topic.FieldSummaryID, field.TypeInt, value)
	}
	if _u.mutation.SummaryIDCleared() {
		_spec.ClearField(topic.FieldSummaryID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(topic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedNodesIDs(); len(nodes) > 0 && !_u.mutation.NodesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NodesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.NodesTable,
			Columns: []string{topic.NodesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicnode.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PeriodHeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPeriodHeatsIDs(); len(nodes) > 0 && !_u.mutation.PeriodHeatsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PeriodHeatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.PeriodHeatsTable,
			Columns: []string{topic.PeriodHeatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(topicperiodheat.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSummariesIDs(); len(nodes) > 0 && !_u.mutation.SummariesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummariesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   topic.SummariesTable,
			Columns: []string{topic.SummariesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Topic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{topic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
