package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0, 0}, []float32{1, 0, 0}, 1.0},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0.0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1.0},
		{"scaled", []float32{1, 2, 3}, []float32{2, 4, 6}, 1.0},
		{"mismatched length", []float32{1, 2}, []float32{1, 2, 3}, 0.0},
		{"zero vector", []float32{0, 0}, []float32{1, 1}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestTitleBigramJaccard(t *testing.T) {
	t.Run("identical titles", func(t *testing.T) {
		assert.Equal(t, 1.0, titleBigramJaccard("某市发布新政策", "某市发布新政策"))
	})

	t.Run("disjoint titles", func(t *testing.T) {
		assert.Equal(t, 0.0, titleBigramJaccard("某市发布新政策", "球队夺得总冠军"))
	})

	t.Run("overlapping titles", func(t *testing.T) {
		sim := titleBigramJaccard("某市发布住房新政策", "某市发布住房政策")
		assert.Greater(t, sim, 0.5)
		assert.Less(t, sim, 1.0)
	})

	t.Run("short titles compare by equality", func(t *testing.T) {
		assert.Equal(t, 1.0, titleBigramJaccard("a", "a"))
		assert.Equal(t, 0.0, titleBigramJaccard("a", "b"))
	})
}

func TestGreedyCluster(t *testing.T) {
	near := func(base []float32) []float32 {
		out := make([]float32, len(base))
		copy(out, base)
		out[0] += 0.01
		return out
	}
	va := []float32{1, 0, 0, 0}
	vb := []float32{0, 1, 0, 0}

	t.Run("groups similar items with similar titles", func(t *testing.T) {
		vectors := [][]float32{va, near(va), vb}
		titles := []string{"某明星宣布结婚引发热议", "某明星宣布结婚网友热议", "央行发布货币政策报告"}
		clusters := greedyCluster(vectors, titles, 0.85, 0.3)
		require.Len(t, clusters, 2)
		assert.ElementsMatch(t, []int{0, 1}, clusters[0])
		assert.Equal(t, []int{2}, clusters[1])
	})

	t.Run("title gate rejects stylistic matches", func(t *testing.T) {
		// Same vector direction but unrelated titles must not cluster.
		vectors := [][]float32{va, near(va)}
		titles := []string{"某明星宣布结婚引发热议", "央行发布货币政策报告"}
		clusters := greedyCluster(vectors, titles, 0.85, 0.3)
		assert.Len(t, clusters, 2)
	})

	t.Run("vector gate rejects dissimilar vectors", func(t *testing.T) {
		vectors := [][]float32{va, vb}
		titles := []string{"同一个标题", "同一个标题"}
		clusters := greedyCluster(vectors, titles, 0.85, 0.3)
		assert.Len(t, clusters, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, greedyCluster(nil, nil, 0.85, 0.6))
	})

	t.Run("single pass is greedy by seed order", func(t *testing.T) {
		vectors := [][]float32{va, near(va), near(near(va))}
		titles := []string{"某地突发安全事故", "某地突发安全事故续报", "某地突发安全事故最新"}
		clusters := greedyCluster(vectors, titles, 0.8, 0.3)
		require.Len(t, clusters, 1)
		assert.Len(t, clusters[0], 3)
	})
}
