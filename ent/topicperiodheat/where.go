// Code generated by ent, DO NOT EDIT.

package topicperiodheat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldID, id))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldTopicID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldDate, v))
}

// HeatNormalized applies equality check predicate on the "heat_normalized" field. It's identical to HeatNormalizedEQ.
func HeatNormalized(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldHeatNormalized, v))
}

// HeatPercentage applies equality check predicate on the "heat_percentage" field. It's identical to HeatPercentageEQ.
func HeatPercentage(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldHeatPercentage, v))
}

// SourceCount applies equality check predicate on the "source_count" field. It's identical to SourceCountEQ.
func SourceCount(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldSourceCount, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldUpdatedAt, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldTopicID, vs...))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldDate, v))
}

// DateContains applies the Contains predicate on the "date" field.
func DateContains(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldContains(FieldDate, v))
}

// DateHasPrefix applies the HasPrefix predicate on the "date" field.
func DateHasPrefix(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldHasPrefix(FieldDate, v))
}

// DateHasSuffix applies the HasSuffix predicate on the "date" field.
func DateHasSuffix(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldHasSuffix(FieldDate, v))
}

// DateEqualFold applies the EqualFold predicate on the "date" field.
func DateEqualFold(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEqualFold(FieldDate, v))
}

// DateContainsFold applies the ContainsFold predicate on the "date" field.
func DateContainsFold(v string) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldContainsFold(FieldDate, v))
}

// PeriodEQ applies the EQ predicate on the "period" field.
func PeriodEQ(v Period) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldPeriod, v))
}

// PeriodNEQ applies the NEQ predicate on the "period" field.
func PeriodNEQ(v Period) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldPeriod, v))
}

// PeriodIn applies the In predicate on the "period" field.
func PeriodIn(vs ...Period) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldPeriod, vs...))
}

// PeriodNotIn applies the NotIn predicate on the "period" field.
func PeriodNotIn(vs ...Period) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldPeriod, vs...))
}

// HeatNormalizedEQ applies the EQ predicate on the "heat_normalized" field.
func HeatNormalizedEQ(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldHeatNormalized, v))
}

// HeatNormalizedNEQ applies the NEQ predicate on the "heat_normalized" field.
func HeatNormalizedNEQ(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldHeatNormalized, v))
}

// HeatNormalizedIn applies the In predicate on the "heat_normalized" field.
func HeatNormalizedIn(vs ...float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldHeatNormalized, vs...))
}

// HeatNormalizedNotIn applies the NotIn predicate on the "heat_normalized" field.
func HeatNormalizedNotIn(vs ...float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldHeatNormalized, vs...))
}

// HeatNormalizedGT applies the GT predicate on the "heat_normalized" field.
func HeatNormalizedGT(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldHeatNormalized, v))
}

// HeatNormalizedGTE applies the GTE predicate on the "heat_normalized" field.
func HeatNormalizedGTE(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldHeatNormalized, v))
}

// HeatNormalizedLT applies the LT predicate on the "heat_normalized" field.
func HeatNormalizedLT(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldHeatNormalized, v))
}

// HeatNormalizedLTE applies the LTE predicate on the "heat_normalized" field.
func HeatNormalizedLTE(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldHeatNormalized, v))
}

// HeatPercentageEQ applies the EQ predicate on the "heat_percentage" field.
func HeatPercentageEQ(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldHeatPercentage, v))
}

// HeatPercentageNEQ applies the NEQ predicate on the "heat_percentage" field.
func HeatPercentageNEQ(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldHeatPercentage, v))
}

// HeatPercentageIn applies the In predicate on the "heat_percentage" field.
func HeatPercentageIn(vs ...float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldHeatPercentage, vs...))
}

// HeatPercentageNotIn applies the NotIn predicate on the "heat_percentage" field.
func HeatPercentageNotIn(vs ...float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldHeatPercentage, vs...))
}

// HeatPercentageGT applies the GT predicate on the "heat_percentage" field.
func HeatPercentageGT(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldHeatPercentage, v))
}

// HeatPercentageGTE applies the GTE predicate on the "heat_percentage" field.
func HeatPercentageGTE(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldHeatPercentage, v))
}

// HeatPercentageLT applies the LT predicate on the "heat_percentage" field.
func HeatPercentageLT(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldHeatPercentage, v))
}

// HeatPercentageLTE applies the LTE predicate on the "heat_percentage" field.
func HeatPercentageLTE(v float64) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldHeatPercentage, v))
}

// HeatPercentageIsNil applies the IsNil predicate on the "heat_percentage" field.
func HeatPercentageIsNil() predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIsNull(FieldHeatPercentage))
}

// HeatPercentageNotNil applies the NotNil predicate on the "heat_percentage" field.
func HeatPercentageNotNil() predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotNull(FieldHeatPercentage))
}

// SourceCountEQ applies the EQ predicate on the "source_count" field.
func SourceCountEQ(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldSourceCount, v))
}

// SourceCountNEQ applies the NEQ predicate on the "source_count" field.
func SourceCountNEQ(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldSourceCount, v))
}

// SourceCountIn applies the In predicate on the "source_count" field.
func SourceCountIn(vs ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldSourceCount, vs...))
}

// SourceCountNotIn applies the NotIn predicate on the "source_count" field.
func SourceCountNotIn(vs ...int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldSourceCount, vs...))
}

// SourceCountGT applies the GT predicate on the "source_count" field.
func SourceCountGT(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldSourceCount, v))
}

// SourceCountGTE applies the GTE predicate on the "source_count" field.
func SourceCountGTE(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldSourceCount, v))
}

// SourceCountLT applies the LT predicate on the "source_count" field.
func SourceCountLT(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldSourceCount, v))
}

// SourceCountLTE applies the LTE predicate on the "source_count" field.
func SourceCountLTE(v int) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldSourceCount, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTopic applies the HasEdge predicate on the "topic" edge.
func HasTopic() predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TopicTable, TopicColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicWith applies the HasEdge predicate on the "topic" edge with a given conditions (other predicates).
func HasTopicWith(preds ...predicate.Topic) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(func(s *sql.Selector) {
		step := newTopicStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicPeriodHeat) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicPeriodHeat) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicPeriodHeat) predicate.TopicPeriodHeat {
	return predicate.TopicPeriodHeat(sql.NotPredicates(p))
}
