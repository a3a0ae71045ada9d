// Code generated by ent, DO NOT EDIT.

package sourceitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldID, id))
}

// Platform applies equality check predicate on the "platform" field. It's identical to PlatformEQ.
func Platform(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldPlatform, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldTitle, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldSummary, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldURL, v))
}

// URLHash applies equality check predicate on the "url_hash" field. It's identical to URLHashEQ.
func URLHash(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldURLHash, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldContentHash, v))
}

// DedupKey applies equality check predicate on the "dedup_key" field. It's identical to DedupKeyEQ.
func DedupKey(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldDedupKey, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldPublishedAt, v))
}

// FetchedAt applies equality check predicate on the "fetched_at" field. It's identical to FetchedAtEQ.
func FetchedAt(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldFetchedAt, v))
}

// RawHeat applies equality check predicate on the "raw_heat" field. It's identical to RawHeatEQ.
func RawHeat(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldRawHeat, v))
}

// NormalizedHeat applies equality check predicate on the "normalized_heat" field. It's identical to NormalizedHeatEQ.
func NormalizedHeat(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldNormalizedHeat, v))
}

// Window applies equality check predicate on the "window" field. It's identical to WindowEQ.
func Window(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldWindow, v))
}

// ClusterID applies equality check predicate on the "cluster_id" field. It's identical to ClusterIDEQ.
func ClusterID(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldClusterID, v))
}

// OccurrenceCount applies equality check predicate on the "occurrence_count" field. It's identical to OccurrenceCountEQ.
func OccurrenceCount(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldOccurrenceCount, v))
}

// EmbeddingID applies equality check predicate on the "embedding_id" field. It's identical to EmbeddingIDEQ.
func EmbeddingID(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldEmbeddingID, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldCreatedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldPlatform, vs...))
}

// PlatformGT applies the GT predicate on the "platform" field.
func PlatformGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldPlatform, v))
}

// PlatformGTE applies the GTE predicate on the "platform" field.
func PlatformGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldPlatform, v))
}

// PlatformLT applies the LT predicate on the "platform" field.
func PlatformLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldPlatform, v))
}

// PlatformLTE applies the LTE predicate on the "platform" field.
func PlatformLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldPlatform, v))
}

// PlatformContains applies the Contains predicate on the "platform" field.
func PlatformContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldPlatform, v))
}

// PlatformHasPrefix applies the HasPrefix predicate on the "platform" field.
func PlatformHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldPlatform, v))
}

// PlatformHasSuffix applies the HasSuffix predicate on the "platform" field.
func PlatformHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldPlatform, v))
}

// PlatformEqualFold applies the EqualFold predicate on the "platform" field.
func PlatformEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldPlatform, v))
}

// PlatformContainsFold applies the ContainsFold predicate on the "platform" field.
func PlatformContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldPlatform, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldTitle, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldSummary, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldURL, v))
}

// URLHashEQ applies the EQ predicate on the "url_hash" field.
func URLHashEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldURLHash, v))
}

// URLHashNEQ applies the NEQ predicate on the "url_hash" field.
func URLHashNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldURLHash, v))
}

// URLHashIn applies the In predicate on the "url_hash" field.
func URLHashIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldURLHash, vs...))
}

// URLHashNotIn applies the NotIn predicate on the "url_hash" field.
func URLHashNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldURLHash, vs...))
}

// URLHashGT applies the GT predicate on the "url_hash" field.
func URLHashGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldURLHash, v))
}

// URLHashGTE applies the GTE predicate on the "url_hash" field.
func URLHashGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldURLHash, v))
}

// URLHashLT applies the LT predicate on the "url_hash" field.
func URLHashLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldURLHash, v))
}

// URLHashLTE applies the LTE predicate on the "url_hash" field.
func URLHashLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldURLHash, v))
}

// URLHashContains applies the Contains predicate on the "url_hash" field.
func URLHashContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldURLHash, v))
}

// URLHashHasPrefix applies the HasPrefix predicate on the "url_hash" field.
func URLHashHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldURLHash, v))
}

// URLHashHasSuffix applies the HasSuffix predicate on the "url_hash" field.
func URLHashHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldURLHash, v))
}

// URLHashEqualFold applies the EqualFold predicate on the "url_hash" field.
func URLHashEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldURLHash, v))
}

// URLHashContainsFold applies the ContainsFold predicate on the "url_hash" field.
func URLHashContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldURLHash, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldContentHash, v))
}

// DedupKeyEQ applies the EQ predicate on the "dedup_key" field.
func DedupKeyEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldDedupKey, v))
}

// DedupKeyNEQ applies the NEQ predicate on the "dedup_key" field.
func DedupKeyNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldDedupKey, v))
}

// DedupKeyIn applies the In predicate on the "dedup_key" field.
func DedupKeyIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldDedupKey, vs...))
}

// DedupKeyNotIn applies the NotIn predicate on the "dedup_key" field.
func DedupKeyNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldDedupKey, vs...))
}

// DedupKeyGT applies the GT predicate on the "dedup_key" field.
func DedupKeyGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldDedupKey, v))
}

// DedupKeyGTE applies the GTE predicate on the "dedup_key" field.
func DedupKeyGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldDedupKey, v))
}

// DedupKeyLT applies the LT predicate on the "dedup_key" field.
func DedupKeyLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldDedupKey, v))
}

// DedupKeyLTE applies the LTE predicate on the "dedup_key" field.
func DedupKeyLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldDedupKey, v))
}

// DedupKeyContains applies the Contains predicate on the "dedup_key" field.
func DedupKeyContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldDedupKey, v))
}

// DedupKeyHasPrefix applies the HasPrefix predicate on the "dedup_key" field.
func DedupKeyHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldDedupKey, v))
}

// DedupKeyHasSuffix applies the HasSuffix predicate on the "dedup_key" field.
func DedupKeyHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldDedupKey, v))
}

// DedupKeyEqualFold applies the EqualFold predicate on the "dedup_key" field.
func DedupKeyEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldDedupKey, v))
}

// DedupKeyContainsFold applies the ContainsFold predicate on the "dedup_key" field.
func DedupKeyContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldDedupKey, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldPublishedAt))
}

// FetchedAtEQ applies the EQ predicate on the "fetched_at" field.
func FetchedAtEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldFetchedAt, v))
}

// FetchedAtNEQ applies the NEQ predicate on the "fetched_at" field.
func FetchedAtNEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldFetchedAt, v))
}

// FetchedAtIn applies the In predicate on the "fetched_at" field.
func FetchedAtIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldFetchedAt, vs...))
}

// FetchedAtNotIn applies the NotIn predicate on the "fetched_at" field.
func FetchedAtNotIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldFetchedAt, vs...))
}

// FetchedAtGT applies the GT predicate on the "fetched_at" field.
func FetchedAtGT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldFetchedAt, v))
}

// FetchedAtGTE applies the GTE predicate on the "fetched_at" field.
func FetchedAtGTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldFetchedAt, v))
}

// FetchedAtLT applies the LT predicate on the "fetched_at" field.
func FetchedAtLT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldFetchedAt, v))
}

// FetchedAtLTE applies the LTE predicate on the "fetched_at" field.
func FetchedAtLTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldFetchedAt, v))
}

// InteractionsIsNil applies the IsNil predicate on the "interactions" field.
func InteractionsIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldInteractions))
}

// InteractionsNotNil applies the NotNil predicate on the "interactions" field.
func InteractionsNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldInteractions))
}

// RawHeatEQ applies the EQ predicate on the "raw_heat" field.
func RawHeatEQ(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldRawHeat, v))
}

// RawHeatNEQ applies the NEQ predicate on the "raw_heat" field.
func RawHeatNEQ(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldRawHeat, v))
}

// RawHeatIn applies the In predicate on the "raw_heat" field.
func RawHeatIn(vs ...float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldRawHeat, vs...))
}

// RawHeatNotIn applies the NotIn predicate on the "raw_heat" field.
func RawHeatNotIn(vs ...float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldRawHeat, vs...))
}

// RawHeatGT applies the GT predicate on the "raw_heat" field.
func RawHeatGT(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldRawHeat, v))
}

// RawHeatGTE applies the GTE predicate on the "raw_heat" field.
func RawHeatGTE(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldRawHeat, v))
}

// RawHeatLT applies the LT predicate on the "raw_heat" field.
func RawHeatLT(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldRawHeat, v))
}

// RawHeatLTE applies the LTE predicate on the "raw_heat" field.
func RawHeatLTE(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldRawHeat, v))
}

// RawHeatIsNil applies the IsNil predicate on the "raw_heat" field.
func RawHeatIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldRawHeat))
}

// RawHeatNotNil applies the NotNil predicate on the "raw_heat" field.
func RawHeatNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldRawHeat))
}

// NormalizedHeatEQ applies the EQ predicate on the "normalized_heat" field.
func NormalizedHeatEQ(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldNormalizedHeat, v))
}

// NormalizedHeatNEQ applies the NEQ predicate on the "normalized_heat" field.
func NormalizedHeatNEQ(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldNormalizedHeat, v))
}

// NormalizedHeatIn applies the In predicate on the "normalized_heat" field.
func NormalizedHeatIn(vs ...float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldNormalizedHeat, vs...))
}

// NormalizedHeatNotIn applies the NotIn predicate on the "normalized_heat" field.
func NormalizedHeatNotIn(vs ...float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldNormalizedHeat, vs...))
}

// NormalizedHeatGT applies the GT predicate on the "normalized_heat" field.
func NormalizedHeatGT(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldNormalizedHeat, v))
}

// NormalizedHeatGTE applies the GTE predicate on the "normalized_heat" field.
func NormalizedHeatGTE(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldNormalizedHeat, v))
}

// NormalizedHeatLT applies the LT predicate on the "normalized_heat" field.
func NormalizedHeatLT(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldNormalizedHeat, v))
}

// NormalizedHeatLTE applies the LTE predicate on the "normalized_heat" field.
func NormalizedHeatLTE(v float64) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldNormalizedHeat, v))
}

// NormalizedHeatIsNil applies the IsNil predicate on the "normalized_heat" field.
func NormalizedHeatIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldNormalizedHeat))
}

// NormalizedHeatNotNil applies the NotNil predicate on the "normalized_heat" field.
func NormalizedHeatNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldNormalizedHeat))
}

// WindowEQ applies the EQ predicate on the "window" field.
func WindowEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldWindow, v))
}

// WindowNEQ applies the NEQ predicate on the "window" field.
func WindowNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldWindow, v))
}

// WindowIn applies the In predicate on the "window" field.
func WindowIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldWindow, vs...))
}

// WindowNotIn applies the NotIn predicate on the "window" field.
func WindowNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldWindow, vs...))
}

// WindowGT applies the GT predicate on the "window" field.
func WindowGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldWindow, v))
}

// WindowGTE applies the GTE predicate on the "window" field.
func WindowGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldWindow, v))
}

// WindowLT applies the LT predicate on the "window" field.
func WindowLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldWindow, v))
}

// WindowLTE applies the LTE predicate on the "window" field.
func WindowLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldWindow, v))
}

// WindowContains applies the Contains predicate on the "window" field.
func WindowContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldWindow, v))
}

// WindowHasPrefix applies the HasPrefix predicate on the "window" field.
func WindowHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldWindow, v))
}

// WindowHasSuffix applies the HasSuffix predicate on the "window" field.
func WindowHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldWindow, v))
}

// WindowEqualFold applies the EqualFold predicate on the "window" field.
func WindowEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldWindow, v))
}

// WindowContainsFold applies the ContainsFold predicate on the "window" field.
func WindowContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldWindow, v))
}

// ClusterIDEQ applies the EQ predicate on the "cluster_id" field.
func ClusterIDEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldClusterID, v))
}

// ClusterIDNEQ applies the NEQ predicate on the "cluster_id" field.
func ClusterIDNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldClusterID, v))
}

// ClusterIDIn applies the In predicate on the "cluster_id" field.
func ClusterIDIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldClusterID, vs...))
}

// ClusterIDNotIn applies the NotIn predicate on the "cluster_id" field.
func ClusterIDNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldClusterID, vs...))
}

// ClusterIDGT applies the GT predicate on the "cluster_id" field.
func ClusterIDGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldClusterID, v))
}

// ClusterIDGTE applies the GTE predicate on the "cluster_id" field.
func ClusterIDGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldClusterID, v))
}

// ClusterIDLT applies the LT predicate on the "cluster_id" field.
func ClusterIDLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldClusterID, v))
}

// ClusterIDLTE applies the LTE predicate on the "cluster_id" field.
func ClusterIDLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldClusterID, v))
}

// ClusterIDContains applies the Contains predicate on the "cluster_id" field.
func ClusterIDContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldClusterID, v))
}

// ClusterIDHasPrefix applies the HasPrefix predicate on the "cluster_id" field.
func ClusterIDHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldClusterID, v))
}

// ClusterIDHasSuffix applies the HasSuffix predicate on the "cluster_id" field.
func ClusterIDHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldClusterID, v))
}

// ClusterIDIsNil applies the IsNil predicate on the "cluster_id" field.
func ClusterIDIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldClusterID))
}

// ClusterIDNotNil applies the NotNil predicate on the "cluster_id" field.
func ClusterIDNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldClusterID))
}

// ClusterIDEqualFold applies the EqualFold predicate on the "cluster_id" field.
func ClusterIDEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldClusterID, v))
}

// ClusterIDContainsFold applies the ContainsFold predicate on the "cluster_id" field.
func ClusterIDContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldClusterID, v))
}

// OccurrenceCountEQ applies the EQ predicate on the "occurrence_count" field.
func OccurrenceCountEQ(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountNEQ applies the NEQ predicate on the "occurrence_count" field.
func OccurrenceCountNEQ(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldOccurrenceCount, v))
}

// OccurrenceCountIn applies the In predicate on the "occurrence_count" field.
func OccurrenceCountIn(vs ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountNotIn applies the NotIn predicate on the "occurrence_count" field.
func OccurrenceCountNotIn(vs ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldOccurrenceCount, vs...))
}

// OccurrenceCountGT applies the GT predicate on the "occurrence_count" field.
func OccurrenceCountGT(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldOccurrenceCount, v))
}

// OccurrenceCountGTE applies the GTE predicate on the "occurrence_count" field.
func OccurrenceCountGTE(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldOccurrenceCount, v))
}

// OccurrenceCountLT applies the LT predicate on the "occurrence_count" field.
func OccurrenceCountLT(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldOccurrenceCount, v))
}

// OccurrenceCountLTE applies the LTE predicate on the "occurrence_count" field.
func OccurrenceCountLTE(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldOccurrenceCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldStatus, vs...))
}

// EmbeddingIDEQ applies the EQ predicate on the "embedding_id" field.
func EmbeddingIDEQ(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldEmbeddingID, v))
}

// EmbeddingIDNEQ applies the NEQ predicate on the "embedding_id" field.
func EmbeddingIDNEQ(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldEmbeddingID, v))
}

// EmbeddingIDIn applies the In predicate on the "embedding_id" field.
func EmbeddingIDIn(vs ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldEmbeddingID, vs...))
}

// EmbeddingIDNotIn applies the NotIn predicate on the "embedding_id" field.
func EmbeddingIDNotIn(vs ...int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldEmbeddingID, vs...))
}

// EmbeddingIDGT applies the GT predicate on the "embedding_id" field.
func EmbeddingIDGT(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldEmbeddingID, v))
}

// EmbeddingIDGTE applies the GTE predicate on the "embedding_id" field.
func EmbeddingIDGTE(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldEmbeddingID, v))
}

// EmbeddingIDLT applies the LT predicate on the "embedding_id" field.
func EmbeddingIDLT(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldEmbeddingID, v))
}

// EmbeddingIDLTE applies the LTE predicate on the "embedding_id" field.
func EmbeddingIDLTE(v int) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldEmbeddingID, v))
}

// EmbeddingIDIsNil applies the IsNil predicate on the "embedding_id" field.
func EmbeddingIDIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldEmbeddingID))
}

// EmbeddingIDNotNil applies the NotNil predicate on the "embedding_id" field.
func EmbeddingIDNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldEmbeddingID))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldContainsFold(FieldRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SourceItem {
	return predicate.SourceItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTopicNodes applies the HasEdge predicate on the "topic_nodes" edge.
func HasTopicNodes() predicate.SourceItem {
	return predicate.SourceItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TopicNodesTable, TopicNodesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTopicNodesWith applies the HasEdge predicate on the "topic_nodes" edge with a given conditions (other predicates).
func HasTopicNodesWith(preds ...predicate.TopicNode) predicate.SourceItem {
	return predicate.SourceItem(func(s *sql.Selector) {
		step := newTopicNodesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SourceItem) predicate.SourceItem {
	return predicate.SourceItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SourceItem) predicate.SourceItem {
	return predicate.SourceItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SourceItem) predicate.SourceItem {
	return predicate.SourceItem(sql.NotPredicates(p))
}
