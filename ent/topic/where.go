// Code generated by ent, DO NOT EDIT.

package topic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldID, id))
}

// TitleKey applies equality check predicate on the "title_key" field. It's identical to TitleKeyEQ.
func TitleKey(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTitleKey, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldFirstSeen, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldLastActive, v))
}

// IntensityTotal applies equality check predicate on the "intensity_total" field. It's identical to IntensityTotalEQ.
func IntensityTotal(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldIntensityTotal, v))
}

// InteractionTotal applies equality check predicate on the "interaction_total" field. It's identical to InteractionTotalEQ.
func InteractionTotal(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldInteractionTotal, v))
}

// CurrentHeatNormalized applies equality check predicate on the "current_heat_normalized" field. It's identical to CurrentHeatNormalizedEQ.
func CurrentHeatNormalized(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCurrentHeatNormalized, v))
}

// HeatPercentage applies equality check predicate on the "heat_percentage" field. It's identical to HeatPercentageEQ.
func HeatPercentage(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldHeatPercentage, v))
}

// CategoryConfidence applies equality check predicate on the "category_confidence" field. It's identical to CategoryConfidenceEQ.
func CategoryConfidence(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategoryConfidence, v))
}

// CategoryUpdatedAt applies equality check predicate on the "category_updated_at" field. It's identical to CategoryUpdatedAtEQ.
func CategoryUpdatedAt(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategoryUpdatedAt, v))
}

// SummaryID applies equality check predicate on the "summary_id" field. It's identical to SummaryIDEQ.
func SummaryID(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldSummaryID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleKeyEQ applies the EQ predicate on the "title_key" field.
func TitleKeyEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldTitleKey, v))
}

// TitleKeyNEQ applies the NEQ predicate on the "title_key" field.
func TitleKeyNEQ(v string) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldTitleKey, v))
}

// TitleKeyIn applies the In predicate on the "title_key" field.
func TitleKeyIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldTitleKey, vs...))
}

// TitleKeyNotIn applies the NotIn predicate on the "title_key" field.
func TitleKeyNotIn(vs ...string) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldTitleKey, vs...))
}

// TitleKeyGT applies the GT predicate on the "title_key" field.
func TitleKeyGT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldTitleKey, v))
}

// TitleKeyGTE applies the GTE predicate on the "title_key" field.
func TitleKeyGTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldTitleKey, v))
}

// TitleKeyLT applies the LT predicate on the "title_key" field.
func TitleKeyLT(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldTitleKey, v))
}

// TitleKeyLTE applies the LTE predicate on the "title_key" field.
func TitleKeyLTE(v string) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldTitleKey, v))
}

// TitleKeyContains applies the Contains predicate on the "title_key" field.
func TitleKeyContains(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContains(FieldTitleKey, v))
}

// TitleKeyHasPrefix applies the HasPrefix predicate on the "title_key" field.
func TitleKeyHasPrefix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasPrefix(FieldTitleKey, v))
}

// TitleKeyHasSuffix applies the HasSuffix predicate on the "title_key" field.
func TitleKeyHasSuffix(v string) predicate.Topic {
	return predicate.Topic(sql.FieldHasSuffix(FieldTitleKey, v))
}

// TitleKeyEqualFold applies the EqualFold predicate on the "title_key" field.
func TitleKeyEqualFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldEqualFold(FieldTitleKey, v))
}

// TitleKeyContainsFold applies the ContainsFold predicate on the "title_key" field.
func TitleKeyContainsFold(v string) predicate.Topic {
	return predicate.Topic(sql.FieldContainsFold(FieldTitleKey, v))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldFirstSeen, v))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldLastActive, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldStatus, vs...))
}

// IntensityTotalEQ applies the EQ predicate on the "intensity_total" field.
func IntensityTotalEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldIntensityTotal, v))
}

// IntensityTotalNEQ applies the NEQ predicate on the "intensity_total" field.
func IntensityTotalNEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldIntensityTotal, v))
}

// IntensityTotalIn applies the In predicate on the "intensity_total" field.
func IntensityTotalIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldIntensityTotal, vs...))
}

// IntensityTotalNotIn applies the NotIn predicate on the "intensity_total" field.
func IntensityTotalNotIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldIntensityTotal, vs...))
}

// IntensityTotalGT applies the GT predicate on the "intensity_total" field.
func IntensityTotalGT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldIntensityTotal, v))
}

// IntensityTotalGTE applies the GTE predicate on the "intensity_total" field.
func IntensityTotalGTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldIntensityTotal, v))
}

// IntensityTotalLT applies the LT predicate on the "intensity_total" field.
func IntensityTotalLT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldIntensityTotal, v))
}

// IntensityTotalLTE applies the LTE predicate on the "intensity_total" field.
func IntensityTotalLTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldIntensityTotal, v))
}

// InteractionTotalEQ applies the EQ predicate on the "interaction_total" field.
func InteractionTotalEQ(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldInteractionTotal, v))
}

// InteractionTotalNEQ applies the NEQ predicate on the "interaction_total" field.
func InteractionTotalNEQ(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldInteractionTotal, v))
}

// InteractionTotalIn applies the In predicate on the "interaction_total" field.
func InteractionTotalIn(vs ...int64) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldInteractionTotal, vs...))
}

// InteractionTotalNotIn applies the NotIn predicate on the "interaction_total" field.
func InteractionTotalNotIn(vs ...int64) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldInteractionTotal, vs...))
}

// InteractionTotalGT applies the GT predicate on the "interaction_total" field.
func InteractionTotalGT(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldInteractionTotal, v))
}

// InteractionTotalGTE applies the GTE predicate on the "interaction_total" field.
func InteractionTotalGTE(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldInteractionTotal, v))
}

// InteractionTotalLT applies the LT predicate on the "interaction_total" field.
func InteractionTotalLT(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldInteractionTotal, v))
}

// InteractionTotalLTE applies the LTE predicate on the "interaction_total" field.
func InteractionTotalLTE(v int64) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldInteractionTotal, v))
}

// InteractionTotalIsNil applies the IsNil predicate on the "interaction_total" field.
func InteractionTotalIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldInteractionTotal))
}

// InteractionTotalNotNil applies the NotNil predicate on the "interaction_total" field.
func InteractionTotalNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldInteractionTotal))
}

// CurrentHeatNormalizedEQ applies the EQ predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedNEQ applies the NEQ predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedNEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedIn applies the In predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCurrentHeatNormalized, vs...))
}

// CurrentHeatNormalizedNotIn applies the NotIn predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedNotIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCurrentHeatNormalized, vs...))
}

// CurrentHeatNormalizedGT applies the GT predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedGT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedGTE applies the GTE predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedGTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedLT applies the LT predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedLT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedLTE applies the LTE predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedLTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldCurrentHeatNormalized, v))
}

// CurrentHeatNormalizedIsNil applies the IsNil predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldCurrentHeatNormalized))
}

// CurrentHeatNormalizedNotNil applies the NotNil predicate on the "current_heat_normalized" field.
func CurrentHeatNormalizedNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldCurrentHeatNormalized))
}

// HeatPercentageEQ applies the EQ predicate on the "heat_percentage" field.
func HeatPercentageEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldHeatPercentage, v))
}

// HeatPercentageNEQ applies the NEQ predicate on the "heat_percentage" field.
func HeatPercentageNEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldHeatPercentage, v))
}

// HeatPercentageIn applies the In predicate on the "heat_percentage" field.
func HeatPercentageIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldHeatPercentage, vs...))
}

// HeatPercentageNotIn applies the NotIn predicate on the "heat_percentage" field.
func HeatPercentageNotIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldHeatPercentage, vs...))
}

// HeatPercentageGT applies the GT predicate on the "heat_percentage" field.
func HeatPercentageGT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldHeatPercentage, v))
}

// HeatPercentageGTE applies the GTE predicate on the "heat_percentage" field.
func HeatPercentageGTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldHeatPercentage, v))
}

// HeatPercentageLT applies the LT predicate on the "heat_percentage" field.
func HeatPercentageLT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldHeatPercentage, v))
}

// HeatPercentageLTE applies the LTE predicate on the "heat_percentage" field.
func HeatPercentageLTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldHeatPercentage, v))
}

// HeatPercentageIsNil applies the IsNil predicate on the "heat_percentage" field.
func HeatPercentageIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldHeatPercentage))
}

// HeatPercentageNotNil applies the NotNil predicate on the "heat_percentage" field.
func HeatPercentageNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldHeatPercentage))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldCategory))
}

// CategoryConfidenceEQ applies the EQ predicate on the "category_confidence" field.
func CategoryConfidenceEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategoryConfidence, v))
}

// CategoryConfidenceNEQ applies the NEQ predicate on the "category_confidence" field.
func CategoryConfidenceNEQ(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCategoryConfidence, v))
}

// CategoryConfidenceIn applies the In predicate on the "category_confidence" field.
func CategoryConfidenceIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCategoryConfidence, vs...))
}

// CategoryConfidenceNotIn applies the NotIn predicate on the "category_confidence" field.
func CategoryConfidenceNotIn(vs ...float64) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCategoryConfidence, vs...))
}

// CategoryConfidenceGT applies the GT predicate on the "category_confidence" field.
func CategoryConfidenceGT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldCategoryConfidence, v))
}

// CategoryConfidenceGTE applies the GTE predicate on the "category_confidence" field.
func CategoryConfidenceGTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldCategoryConfidence, v))
}

// CategoryConfidenceLT applies the LT predicate on the "category_confidence" field.
func CategoryConfidenceLT(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldCategoryConfidence, v))
}

// CategoryConfidenceLTE applies the LTE predicate on the "category_confidence" field.
func CategoryConfidenceLTE(v float64) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldCategoryConfidence, v))
}

// CategoryConfidenceIsNil applies the IsNil predicate on the "category_confidence" field.
func CategoryConfidenceIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldCategoryConfidence))
}

// CategoryConfidenceNotNil applies the NotNil predicate on the "category_confidence" field.
func CategoryConfidenceNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldCategoryConfidence))
}

// CategoryMethodEQ applies the EQ predicate on the "category_method" field.
func CategoryMethodEQ(v CategoryMethod) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategoryMethod, v))
}

// CategoryMethodNEQ applies the NEQ predicate on the "category_method" field.
func CategoryMethodNEQ(v CategoryMethod) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCategoryMethod, v))
}

// CategoryMethodIn applies the In predicate on the "category_method" field.
func CategoryMethodIn(vs ...CategoryMethod) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCategoryMethod, vs...))
}

// CategoryMethodNotIn applies the NotIn predicate on the "category_method" field.
func CategoryMethodNotIn(vs ...CategoryMethod) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCategoryMethod, vs...))
}

// CategoryMethodIsNil applies the IsNil predicate on the "category_method" field.
func CategoryMethodIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldCategoryMethod))
}

// CategoryMethodNotNil applies the NotNil predicate on the "category_method" field.
func CategoryMethodNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldCategoryMethod))
}

// CategoryUpdatedAtEQ applies the EQ predicate on the "category_updated_at" field.
func CategoryUpdatedAtEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtNEQ applies the NEQ predicate on the "category_updated_at" field.
func CategoryUpdatedAtNEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtIn applies the In predicate on the "category_updated_at" field.
func CategoryUpdatedAtIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCategoryUpdatedAt, vs...))
}

// CategoryUpdatedAtNotIn applies the NotIn predicate on the "category_updated_at" field.
func CategoryUpdatedAtNotIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCategoryUpdatedAt, vs...))
}

// CategoryUpdatedAtGT applies the GT predicate on the "category_updated_at" field.
func CategoryUpdatedAtGT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtGTE applies the GTE predicate on the "category_updated_at" field.
func CategoryUpdatedAtGTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtLT applies the LT predicate on the "category_updated_at" field.
func CategoryUpdatedAtLT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtLTE applies the LTE predicate on the "category_updated_at" field.
func CategoryUpdatedAtLTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldCategoryUpdatedAt, v))
}

// CategoryUpdatedAtIsNil applies the IsNil predicate on the "category_updated_at" field.
func CategoryUpdatedAtIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldCategoryUpdatedAt))
}

// CategoryUpdatedAtNotNil applies the NotNil predicate on the "category_updated_at" field.
func CategoryUpdatedAtNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldCategoryUpdatedAt))
}

// SummaryIDEQ applies the EQ predicate on the "summary_id" field.
func SummaryIDEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldSummaryID, v))
}

// SummaryIDNEQ applies the NEQ predicate on the "summary_id" field.
func SummaryIDNEQ(v int) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldSummaryID, v))
}

// SummaryIDIn applies the In predicate on the "summary_id" field.
func SummaryIDIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldSummaryID, vs...))
}

// SummaryIDNotIn applies the NotIn predicate on the "summary_id" field.
func SummaryIDNotIn(vs ...int) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldSummaryID, vs...))
}

// SummaryIDGT applies the GT predicate on the "summary_id" field.
func SummaryIDGT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldSummaryID, v))
}

// SummaryIDGTE applies the GTE predicate on the "summary_id" field.
func SummaryIDGTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldSummaryID, v))
}

// SummaryIDLT applies the LT predicate on the "summary_id" field.
func SummaryIDLT(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldSummaryID, v))
}

// SummaryIDLTE applies the LTE predicate on the "summary_id" field.
func SummaryIDLTE(v int) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldSummaryID, v))
}

// SummaryIDIsNil applies the IsNil predicate on the "summary_id" field.
func SummaryIDIsNil() predicate.Topic {
	return predicate.Topic(sql.FieldIsNull(FieldSummaryID))
}

// SummaryIDNotNil applies the NotNil predicate on the "summary_id" field.
func SummaryIDNotNil() predicate.Topic {
	return predicate.Topic(sql.FieldNotNull(FieldSummaryID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Topic {
	return predicate.Topic(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasNodes applies the HasEdge predicate on the "nodes" edge.
func HasNodes() predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NodesTable, NodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNodesWith applies the HasEdge predicate on the "nodes" edge with a given conditions (other predicates).
func HasNodesWith(preds ...predicate.TopicNode) predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := newNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPeriodHeats applies the HasEdge predicate on the "period_heats" edge.
func HasPeriodHeats() predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PeriodHeatsTable, PeriodHeatsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPeriodHeatsWith applies the HasEdge predicate on the "period_heats" edge with a given conditions (other predicates).
func HasPeriodHeatsWith(preds ...predicate.TopicPeriodHeat) predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := newPeriodHeatsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSummaries applies the HasEdge predicate on the "summaries" edge.
func HasSummaries() predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SummariesTable, SummariesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSummariesWith applies the HasEdge predicate on the "summaries" edge with a given conditions (other predicates).
func HasSummariesWith(preds ...predicate.Summary) predicate.Topic {
	return predicate.Topic(func(s *sql.Selector) {
		step := newSummariesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Topic) predicate.Topic {
	return predicate.Topic(sql.NotPredicates(p))
}
