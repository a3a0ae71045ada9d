package services

import (
	"testing"

	"github.com/echoman-project/echoman/ent"
	"github.com/stretchr/testify/assert"
)

func TestResolveTargetTopicID(t *testing.T) {
	candidates := []topicCandidate{
		{TopicID: 42, Title: "甲"},
		{TopicID: 77, Title: "乙"},
		{TopicID: 103, Title: "丙"},
	}

	tests := []struct {
		name   string
		raw    interface{}
		wantID int
		wantOK bool
	}{
		{name: "exact id as number", raw: float64(77), wantID: 77, wantOK: true},
		{name: "exact id as string", raw: "103", wantID: 103, wantOK: true},
		{name: "id embedded in text", raw: "主题ID: 42", wantID: 42, wantOK: true},
		{name: "one-based index", raw: float64(2), wantID: 77, wantOK: true},
		{name: "index three maps to last", raw: float64(3), wantID: 103, wantOK: true},
		{name: "unknown id", raw: float64(999), wantID: 0, wantOK: false},
		{name: "zero", raw: float64(0), wantID: 0, wantOK: false},
		{name: "non-numeric string", raw: "none", wantID: 0, wantOK: false},
		{name: "nil", raw: nil, wantID: 0, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := resolveTargetTopicID(tt.raw, candidates)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolveTargetTopicID_EmptyCandidates(t *testing.T) {
	id, ok := resolveTargetTopicID(float64(1), nil)
	assert.False(t, ok)
	assert.Zero(t, id)
}

func TestMeanNormalizedHeat(t *testing.T) {
	items := []*ent.SourceItem{
		{ID: 1, NormalizedHeat: ptr(0.4)},
		{ID: 2, NormalizedHeat: ptr(0.2)},
		{ID: 3}, // missing heat counts as zero
	}
	assert.InDelta(t, 0.2, meanNormalizedHeat(items), 1e-9)
}

func TestInteractionTotal(t *testing.T) {
	items := []*ent.SourceItem{
		{ID: 1, Interactions: map[string]interface{}{"repost": float64(10), "like": float64(5)}},
		{ID: 2, Interactions: map[string]interface{}{"comment": float64(3), "rank": float64(1)}},
		{ID: 3},
	}
	// rank is not an interaction counter and must be ignored
	assert.Equal(t, int64(18), interactionTotal(items))
}

func TestMetadataInt(t *testing.T) {
	meta := map[string]interface{}{"topic_id": float64(12), "object_type": "topic_summary"}

	id, ok := metadataInt(meta, "topic_id")
	assert.True(t, ok)
	assert.Equal(t, 12, id)

	_, ok = metadataInt(meta, "object_type")
	assert.False(t, ok)

	_, ok = metadataInt(meta, "missing")
	assert.False(t, ok)
}
