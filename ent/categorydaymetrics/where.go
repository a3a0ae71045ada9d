// Code generated by ent, DO NOT EDIT.

package categorydaymetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldID, id))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldDate, v))
}

// TopicCount applies equality check predicate on the "topic_count" field. It's identical to TopicCountEQ.
func TopicCount(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldTopicCount, v))
}

// ActiveTopicCount applies equality check predicate on the "active_topic_count" field. It's identical to ActiveTopicCountEQ.
func ActiveTopicCount(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldActiveTopicCount, v))
}

// AvgDurationHours applies equality check predicate on the "avg_duration_hours" field. It's identical to AvgDurationHoursEQ.
func AvgDurationHours(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldAvgDurationHours, v))
}

// MaxDurationHours applies equality check predicate on the "max_duration_hours" field. It's identical to MaxDurationHoursEQ.
func MaxDurationHours(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldMaxDurationHours, v))
}

// IntensitySum applies equality check predicate on the "intensity_sum" field. It's identical to IntensitySumEQ.
func IntensitySum(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldIntensitySum, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldContainsFold(FieldDate, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldCategory, vs...))
}

// TopicCountEQ applies the EQ predicate on the "topic_count" field.
func TopicCountEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldTopicCount, v))
}

// TopicCountNEQ applies the NEQ predicate on the "topic_count" field.
func TopicCountNEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldTopicCount, v))
}

// TopicCountIn applies the In predicate on the "topic_count" field.
func TopicCountIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldTopicCount, vs...))
}

// TopicCountNotIn applies the NotIn predicate on the "topic_count" field.
func TopicCountNotIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldTopicCount, vs...))
}

// TopicCountGT applies the GT predicate on the "topic_count" field.
func TopicCountGT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldTopicCount, v))
}

// TopicCountGTE applies the GTE predicate on the "topic_count" field.
func TopicCountGTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldTopicCount, v))
}

// TopicCountLT applies the LT predicate on the "topic_count" field.
func TopicCountLT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldTopicCount, v))
}

// TopicCountLTE applies the LTE predicate on the "topic_count" field.
func TopicCountLTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldTopicCount, v))
}

// ActiveTopicCountEQ applies the EQ predicate on the "active_topic_count" field.
func ActiveTopicCountEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldActiveTopicCount, v))
}

// ActiveTopicCountNEQ applies the NEQ predicate on the "active_topic_count" field.
func ActiveTopicCountNEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldActiveTopicCount, v))
}

// ActiveTopicCountIn applies the In predicate on the "active_topic_count" field.
func ActiveTopicCountIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldActiveTopicCount, vs...))
}

// ActiveTopicCountNotIn applies the NotIn predicate on the "active_topic_count" field.
func ActiveTopicCountNotIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldActiveTopicCount, vs...))
}

// ActiveTopicCountGT applies the GT predicate on the "active_topic_count" field.
func ActiveTopicCountGT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldActiveTopicCount, v))
}

// ActiveTopicCountGTE applies the GTE predicate on the "active_topic_count" field.
func ActiveTopicCountGTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldActiveTopicCount, v))
}

// ActiveTopicCountLT applies the LT predicate on the "active_topic_count" field.
func ActiveTopicCountLT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldActiveTopicCount, v))
}

// ActiveTopicCountLTE applies the LTE predicate on the "active_topic_count" field.
func ActiveTopicCountLTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldActiveTopicCount, v))
}

// AvgDurationHoursEQ applies the EQ predicate on the "avg_duration_hours" field.
func AvgDurationHoursEQ(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldAvgDurationHours, v))
}

// AvgDurationHoursNEQ applies the NEQ predicate on the "avg_duration_hours" field.
func AvgDurationHoursNEQ(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldAvgDurationHours, v))
}

// AvgDurationHoursIn applies the In predicate on the "avg_duration_hours" field.
func AvgDurationHoursIn(vs ...float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldAvgDurationHours, vs...))
}

// AvgDurationHoursNotIn applies the NotIn predicate on the "avg_duration_hours" field.
func AvgDurationHoursNotIn(vs ...float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldAvgDurationHours, vs...))
}

// AvgDurationHoursGT applies the GT predicate on the "avg_duration_hours" field.
func AvgDurationHoursGT(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldAvgDurationHours, v))
}

// AvgDurationHoursGTE applies the GTE predicate on the "avg_duration_hours" field.
func AvgDurationHoursGTE(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldAvgDurationHours, v))
}

// AvgDurationHoursLT applies the LT predicate on the "avg_duration_hours" field.
func AvgDurationHoursLT(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldAvgDurationHours, v))
}

// AvgDurationHoursLTE applies the LTE predicate on the "avg_duration_hours" field.
func AvgDurationHoursLTE(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldAvgDurationHours, v))
}

// AvgDurationHoursIsNil applies the IsNil predicate on the "avg_duration_hours" field.
func AvgDurationHoursIsNil() predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIsNull(FieldAvgDurationHours))
}

// AvgDurationHoursNotNil applies the NotNil predicate on the "avg_duration_hours" field.
func AvgDurationHoursNotNil() predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotNull(FieldAvgDurationHours))
}

// MaxDurationHoursEQ applies the EQ predicate on the "max_duration_hours" field.
func MaxDurationHoursEQ(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldMaxDurationHours, v))
}

// MaxDurationHoursNEQ applies the NEQ predicate on the "max_duration_hours" field.
func MaxDurationHoursNEQ(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldMaxDurationHours, v))
}

// MaxDurationHoursIn applies the In predicate on the "max_duration_hours" field.
func MaxDurationHoursIn(vs ...float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldMaxDurationHours, vs...))
}

// MaxDurationHoursNotIn applies the NotIn predicate on the "max_duration_hours" field.
func MaxDurationHoursNotIn(vs ...float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldMaxDurationHours, vs...))
}

// MaxDurationHoursGT applies the GT predicate on the "max_duration_hours" field.
func MaxDurationHoursGT(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldMaxDurationHours, v))
}

// MaxDurationHoursGTE applies the GTE predicate on the "max_duration_hours" field.
func MaxDurationHoursGTE(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldMaxDurationHours, v))
}

// MaxDurationHoursLT applies the LT predicate on the "max_duration_hours" field.
func MaxDurationHoursLT(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldMaxDurationHours, v))
}

// MaxDurationHoursLTE applies the LTE predicate on the "max_duration_hours" field.
func MaxDurationHoursLTE(v float64) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldMaxDurationHours, v))
}

// MaxDurationHoursIsNil applies the IsNil predicate on the "max_duration_hours" field.
func MaxDurationHoursIsNil() predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIsNull(FieldMaxDurationHours))
}

// MaxDurationHoursNotNil applies the NotNil predicate on the "max_duration_hours" field.
func MaxDurationHoursNotNil() predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotNull(FieldMaxDurationHours))
}

// IntensitySumEQ applies the EQ predicate on the "intensity_sum" field.
func IntensitySumEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldIntensitySum, v))
}

// IntensitySumNEQ applies the NEQ predicate on the "intensity_sum" field.
func IntensitySumNEQ(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldIntensitySum, v))
}

// IntensitySumIn applies the In predicate on the "intensity_sum" field.
func IntensitySumIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldIntensitySum, vs...))
}

// IntensitySumNotIn applies the NotIn predicate on the "intensity_sum" field.
func IntensitySumNotIn(vs ...int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldIntensitySum, vs...))
}

// IntensitySumGT applies the GT predicate on the "intensity_sum" field.
func IntensitySumGT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldIntensitySum, v))
}

// IntensitySumGTE applies the GTE predicate on the "intensity_sum" field.
func IntensitySumGTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldIntensitySum, v))
}

// IntensitySumLT applies the LT predicate on the "intensity_sum" field.
func IntensitySumLT(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldIntensitySum, v))
}

// IntensitySumLTE applies the LTE predicate on the "intensity_sum" field.
func IntensitySumLTE(v int) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldIntensitySum, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CategoryDayMetrics) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CategoryDayMetrics) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CategoryDayMetrics) predicate.CategoryDayMetrics {
	return predicate.CategoryDayMetrics(sql.NotPredicates(p))
}
