package services

import (
	"testing"

	"github.com/echoman-project/echoman/ent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heatItem(id int, platform string, rawHeat *float64) *ent.SourceItem {
	return &ent.SourceItem{ID: id, Platform: platform, RawHeat: rawHeat}
}

func ptr(f float64) *float64 { return &f }

func unitWeight(string) float64 { return 1.0 }

func sumValues(m map[int]float64) float64 {
	var total float64
	for _, v := range m {
		total += v
	}
	return total
}

func TestNormalizeHeatSingleItem(t *testing.T) {
	got := normalizeHeat([]*ent.SourceItem{heatItem(1, "weibo", ptr(100))}, unitWeight)
	// Min-max of a single scored item collapses to 0.5, then the window
	// normalization brings the lone item to 1.0.
	assert.InDelta(t, 1.0, got[1], 1e-9)
}

func TestNormalizeHeatMinMax(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "weibo", ptr(0)),
		heatItem(2, "weibo", ptr(50)),
		heatItem(3, "weibo", ptr(100)),
	}
	got := normalizeHeat(items, unitWeight)

	require.Len(t, got, 3)
	assert.InDelta(t, 1.0, sumValues(got), 1e-9)
	// Pre-window-normalization the values are 0, 0.5, 1; ratios survive.
	assert.Zero(t, got[1])
	assert.InDelta(t, got[3], 2*got[2], 1e-9)
}

func TestNormalizeHeatNullInsideScoredPlatform(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "weibo", ptr(0)),
		heatItem(2, "weibo", ptr(100)),
		heatItem(3, "weibo", nil),
	}
	got := normalizeHeat(items, unitWeight)

	// Null raw heat lands exactly between the extremes.
	assert.InDelta(t, got[3]*2, got[2], 1e-9)
	assert.InDelta(t, 1.0, sumValues(got), 1e-9)
}

func TestNormalizeHeatPlatformWithoutScores(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "zhihu", nil),
		heatItem(2, "zhihu", nil),
	}
	got := normalizeHeat(items, unitWeight)

	assert.InDelta(t, 0.5, got[1]/sumValues(got), 1e-9)
	assert.InDelta(t, got[1], got[2], 1e-9)
	assert.InDelta(t, 1.0, sumValues(got), 1e-9)
}

func TestNormalizeHeatAllEqualScores(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "weibo", ptr(42)),
		heatItem(2, "weibo", ptr(42)),
		heatItem(3, "weibo", ptr(42)),
	}
	got := normalizeHeat(items, unitWeight)

	for id := range got {
		assert.InDelta(t, 1.0/3.0, got[id], 1e-9)
	}
}

func TestNormalizeHeatPlatformWeights(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "weibo", ptr(100)),
		heatItem(2, "sina", ptr(100)),
	}
	weight := func(p string) float64 {
		if p == "weibo" {
			return 1.2
		}
		return 0.8
	}
	got := normalizeHeat(items, weight)

	// Both collapse to 0.5 pre-weighting; the weight ratio decides the split.
	assert.InDelta(t, 1.2/0.8, got[1]/got[2], 1e-9)
	assert.InDelta(t, 1.0, sumValues(got), 1e-9)
}

func TestNormalizeHeatIdempotent(t *testing.T) {
	items := []*ent.SourceItem{
		heatItem(1, "weibo", ptr(10)),
		heatItem(2, "weibo", ptr(90)),
		heatItem(3, "zhihu", nil),
	}
	first := normalizeHeat(items, unitWeight)
	second := normalizeHeat(items, unitWeight)
	assert.Equal(t, first, second)
}
