// Code generated by ent, DO NOT EDIT.

package ingestrun

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContainsFold(FieldID, id))
}

// Window applies equality check predicate on the "window" field. It's identical to WindowEQ.
func Window(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldWindow, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldEndedAt, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldDurationMs, v))
}

// PlatformCount applies equality check predicate on the "platform_count" field. It's identical to PlatformCountEQ.
func PlatformCount(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldPlatformCount, v))
}

// PlatformSuccess applies equality check predicate on the "platform_success" field. It's identical to PlatformSuccessEQ.
func PlatformSuccess(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldPlatformSuccess, v))
}

// ItemCount applies equality check predicate on the "item_count" field. It's identical to ItemCountEQ.
func ItemCount(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldItemCount, v))
}

// NewItemCount applies equality check predicate on the "new_item_count" field. It's identical to NewItemCountEQ.
func NewItemCount(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldNewItemCount, v))
}

// ErrorSummary applies equality check predicate on the "error_summary" field. It's identical to ErrorSummaryEQ.
func ErrorSummary(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldErrorSummary, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldStatus, vs...))
}

// WindowEQ applies the EQ predicate on the "window" field.
func WindowEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldWindow, v))
}

// WindowNEQ applies the NEQ predicate on the "window" field.
func WindowNEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldWindow, v))
}

// WindowIn applies the In predicate on the "window" field.
func WindowIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldWindow, vs...))
}

// WindowNotIn applies the NotIn predicate on the "window" field.
func WindowNotIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldWindow, vs...))
}

// WindowGT applies the GT predicate on the "window" field.
func WindowGT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldWindow, v))
}

// WindowGTE applies the GTE predicate on the "window" field.
func WindowGTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldWindow, v))
}

// WindowLT applies the LT predicate on the "window" field.
func WindowLT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldWindow, v))
}

// WindowLTE applies the LTE predicate on the "window" field.
func WindowLTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldWindow, v))
}

// WindowContains applies the Contains predicate on the "window" field.
func WindowContains(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContains(FieldWindow, v))
}

// WindowHasPrefix applies the HasPrefix predicate on the "window" field.
func WindowHasPrefix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasPrefix(FieldWindow, v))
}

// WindowHasSuffix applies the HasSuffix predicate on the "window" field.
func WindowHasSuffix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasSuffix(FieldWindow, v))
}

// WindowEqualFold applies the EqualFold predicate on the "window" field.
func WindowEqualFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEqualFold(FieldWindow, v))
}

// WindowContainsFold applies the ContainsFold predicate on the "window" field.
func WindowContainsFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContainsFold(FieldWindow, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldEndedAt))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldDurationMs, v))
}

// DurationMsIsNil applies the IsNil predicate on the "duration_ms" field.
func DurationMsIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldDurationMs))
}

// DurationMsNotNil applies the NotNil predicate on the "duration_ms" field.
func DurationMsNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldDurationMs))
}

// PlatformCountEQ applies the EQ predicate on the "platform_count" field.
func PlatformCountEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldPlatformCount, v))
}

// PlatformCountNEQ applies the NEQ predicate on the "platform_count" field.
func PlatformCountNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldPlatformCount, v))
}

// PlatformCountIn applies the In predicate on the "platform_count" field.
func PlatformCountIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldPlatformCount, vs...))
}

// PlatformCountNotIn applies the NotIn predicate on the "platform_count" field.
func PlatformCountNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldPlatformCount, vs...))
}

// PlatformCountGT applies the GT predicate on the "platform_count" field.
func PlatformCountGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldPlatformCount, v))
}

// PlatformCountGTE applies the GTE predicate on the "platform_count" field.
func PlatformCountGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldPlatformCount, v))
}

// PlatformCountLT applies the LT predicate on the "platform_count" field.
func PlatformCountLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldPlatformCount, v))
}

// PlatformCountLTE applies the LTE predicate on the "platform_count" field.
func PlatformCountLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldPlatformCount, v))
}

// PlatformSuccessEQ applies the EQ predicate on the "platform_success" field.
func PlatformSuccessEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldPlatformSuccess, v))
}

// PlatformSuccessNEQ applies the NEQ predicate on the "platform_success" field.
func PlatformSuccessNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldPlatformSuccess, v))
}

// PlatformSuccessIn applies the In predicate on the "platform_success" field.
func PlatformSuccessIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldPlatformSuccess, vs...))
}

// PlatformSuccessNotIn applies the NotIn predicate on the "platform_success" field.
func PlatformSuccessNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldPlatformSuccess, vs...))
}

// PlatformSuccessGT applies the GT predicate on the "platform_success" field.
func PlatformSuccessGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldPlatformSuccess, v))
}

// PlatformSuccessGTE applies the GTE predicate on the "platform_success" field.
func PlatformSuccessGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldPlatformSuccess, v))
}

// PlatformSuccessLT applies the LT predicate on the "platform_success" field.
func PlatformSuccessLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldPlatformSuccess, v))
}

// PlatformSuccessLTE applies the LTE predicate on the "platform_success" field.
func PlatformSuccessLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldPlatformSuccess, v))
}

// ItemCountEQ applies the EQ predicate on the "item_count" field.
func ItemCountEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldItemCount, v))
}

// ItemCountNEQ applies the NEQ predicate on the "item_count" field.
func ItemCountNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldItemCount, v))
}

// ItemCountIn applies the In predicate on the "item_count" field.
func ItemCountIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldItemCount, vs...))
}

// ItemCountNotIn applies the NotIn predicate on the "item_count" field.
func ItemCountNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldItemCount, vs...))
}

// ItemCountGT applies the GT predicate on the "item_count" field.
func ItemCountGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldItemCount, v))
}

// ItemCountGTE applies the GTE predicate on the "item_count" field.
func ItemCountGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldItemCount, v))
}

// ItemCountLT applies the LT predicate on the "item_count" field.
func ItemCountLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldItemCount, v))
}

// ItemCountLTE applies the LTE predicate on the "item_count" field.
func ItemCountLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldItemCount, v))
}

// NewItemCountEQ applies the EQ predicate on the "new_item_count" field.
func NewItemCountEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldNewItemCount, v))
}

// NewItemCountNEQ applies the NEQ predicate on the "new_item_count" field.
func NewItemCountNEQ(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldNewItemCount, v))
}

// NewItemCountIn applies the In predicate on the "new_item_count" field.
func NewItemCountIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldNewItemCount, vs...))
}

// NewItemCountNotIn applies the NotIn predicate on the "new_item_count" field.
func NewItemCountNotIn(vs ...int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldNewItemCount, vs...))
}

// NewItemCountGT applies the GT predicate on the "new_item_count" field.
func NewItemCountGT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldNewItemCount, v))
}

// NewItemCountGTE applies the GTE predicate on the "new_item_count" field.
func NewItemCountGTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldNewItemCount, v))
}

// NewItemCountLT applies the LT predicate on the "new_item_count" field.
func NewItemCountLT(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldNewItemCount, v))
}

// NewItemCountLTE applies the LTE predicate on the "new_item_count" field.
func NewItemCountLTE(v int) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldNewItemCount, v))
}

// PlatformResultsIsNil applies the IsNil predicate on the "platform_results" field.
func PlatformResultsIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldPlatformResults))
}

// PlatformResultsNotNil applies the NotNil predicate on the "platform_results" field.
func PlatformResultsNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldPlatformResults))
}

// ErrorSummaryEQ applies the EQ predicate on the "error_summary" field.
func ErrorSummaryEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEQ(FieldErrorSummary, v))
}

// ErrorSummaryNEQ applies the NEQ predicate on the "error_summary" field.
func ErrorSummaryNEQ(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNEQ(FieldErrorSummary, v))
}

// ErrorSummaryIn applies the In predicate on the "error_summary" field.
func ErrorSummaryIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIn(FieldErrorSummary, vs...))
}

// ErrorSummaryNotIn applies the NotIn predicate on the "error_summary" field.
func ErrorSummaryNotIn(vs ...string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotIn(FieldErrorSummary, vs...))
}

// ErrorSummaryGT applies the GT predicate on the "error_summary" field.
func ErrorSummaryGT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGT(FieldErrorSummary, v))
}

// ErrorSummaryGTE applies the GTE predicate on the "error_summary" field.
func ErrorSummaryGTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldGTE(FieldErrorSummary, v))
}

// ErrorSummaryLT applies the LT predicate on the "error_summary" field.
func ErrorSummaryLT(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLT(FieldErrorSummary, v))
}

// ErrorSummaryLTE applies the LTE predicate on the "error_summary" field.
func ErrorSummaryLTE(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldLTE(FieldErrorSummary, v))
}

// ErrorSummaryContains applies the Contains predicate on the "error_summary" field.
func ErrorSummaryContains(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContains(FieldErrorSummary, v))
}

// ErrorSummaryHasPrefix applies the HasPrefix predicate on the "error_summary" field.
func ErrorSummaryHasPrefix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasPrefix(FieldErrorSummary, v))
}

// ErrorSummaryHasSuffix applies the HasSuffix predicate on the "error_summary" field.
func ErrorSummaryHasSuffix(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldHasSuffix(FieldErrorSummary, v))
}

// ErrorSummaryIsNil applies the IsNil predicate on the "error_summary" field.
func ErrorSummaryIsNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldIsNull(FieldErrorSummary))
}

// ErrorSummaryNotNil applies the NotNil predicate on the "error_summary" field.
func ErrorSummaryNotNil() predicate.IngestRun {
	return predicate.IngestRun(sql.FieldNotNull(FieldErrorSummary))
}

// ErrorSummaryEqualFold applies the EqualFold predicate on the "error_summary" field.
func ErrorSummaryEqualFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldEqualFold(FieldErrorSummary, v))
}

// ErrorSummaryContainsFold applies the ContainsFold predicate on the "error_summary" field.
func ErrorSummaryContainsFold(v string) predicate.IngestRun {
	return predicate.IngestRun(sql.FieldContainsFold(FieldErrorSummary, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.IngestRun) predicate.IngestRun {
	return predicate.IngestRun(sql.NotPredicates(p))
}
