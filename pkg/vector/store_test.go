package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Match{Distance: 0}.Similarity(), 1e-9)
	assert.InDelta(t, 0.25, Match{Distance: 0.75}.Similarity(), 1e-9)
	assert.InDelta(t, -1.0, Match{Distance: 2}.Similarity(), 1e-9)
}

func TestObjectIDs(t *testing.T) {
	assert.Equal(t, "source_item:42", SourceItemID(42))
	assert.Equal(t, "topic_summary:7", TopicSummaryID(7))
	assert.NotEqual(t, SourceItemID(7), TopicSummaryID(7))
}
