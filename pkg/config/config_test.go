package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.85, s.VectorSimilarityThreshold)
	assert.Equal(t, 0.6, s.TitleJaccardThreshold)
	assert.Equal(t, 2, s.MinOccurrence)
	assert.Equal(t, 0.75, s.MergeConfidence)
	assert.Equal(t, 3, s.CandidateTopK)
	assert.Equal(t, 200, s.BatchMaxClusters)
	assert.Equal(t, 4096, s.EmbeddingDimension)
	assert.Equal(t, 60*time.Second, s.LLMTimeout)
	assert.Equal(t, "Asia/Shanghai", s.Timezone)
	assert.Contains(t, s.EnabledPlatforms, "weibo")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PLATFORM_WEIGHTS", `{"weibo": 2.0}`)
	t.Setenv("MERGE_CONFIDENCE", "0.9")
	t.Setenv("CANDIDATE_TOP_K", "5")
	t.Setenv("STAGE_DEADLINE", "5m")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.Weight("weibo"))
	assert.Equal(t, 0.9, s.MergeConfidence)
	assert.Equal(t, 5, s.CandidateTopK)
	assert.Equal(t, 5*time.Minute, s.StageDeadline)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("weights not JSON", func(t *testing.T) {
		t.Setenv("PLATFORM_WEIGHTS", "not-json")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		t.Setenv("MERGE_CONFIDENCE", "1.5")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero top-k", func(t *testing.T) {
		t.Setenv("CANDIDATE_TOP_K", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestWeightDefaultsToOne(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Weight("unknown-platform"))
	assert.Equal(t, 1.2, s.Weight("weibo"))
}
