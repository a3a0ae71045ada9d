package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type judgement struct {
	IsSameEvent bool    `json:"is_same_event"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

func TestParseJSONObject(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			"strict JSON",
			`{"is_same_event": true, "confidence": 0.9, "reason": "同一事件"}`,
		},
		{
			"think tag prefix",
			"<think>比较两条新闻的主体...</think>\n{\"is_same_event\": true, \"confidence\": 0.9, \"reason\": \"同一事件\"}",
		},
		{
			"markdown fence",
			"```json\n{\"is_same_event\": true, \"confidence\": 0.9, \"reason\": \"同一事件\"}\n```",
		},
		{
			"prose around object",
			"根据分析，结论如下：{\"is_same_event\": true, \"confidence\": 0.9, \"reason\": \"同一事件\"} 以上。",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var j judgement
			require.NoError(t, ParseJSONObject(tt.raw, &j))
			assert.True(t, j.IsSameEvent)
			assert.Equal(t, 0.9, j.Confidence)
		})
	}
}

func TestParseJSONObjectNested(t *testing.T) {
	var out struct {
		Summary   string   `json:"summary"`
		KeyPoints []string `json:"key_points"`
	}
	raw := "前言 {\"summary\": \"事件摘要\", \"key_points\": [\"a\", \"b\", \"c\"]} 后记"
	require.NoError(t, ParseJSONObject(raw, &out))
	assert.Equal(t, "事件摘要", out.Summary)
	assert.Len(t, out.KeyPoints, 3)
}

func TestParseJSONObjectFailure(t *testing.T) {
	var j judgement
	assert.Error(t, ParseJSONObject("", &j))
	assert.Error(t, ParseJSONObject("这不是JSON，只是普通文字。", &j))
}

func TestStripThink(t *testing.T) {
	assert.Equal(t, "answer", StripThink("<think>reasoning here</think>  answer"))
	assert.Equal(t, "no tags", StripThink("  no tags "))
}

func TestRandomUnitVectors(t *testing.T) {
	vectors := RandomUnitVectors(3, 64)
	require.Len(t, vectors, 3)
	for _, v := range vectors {
		require.Len(t, v, 64)
		var norm float64
		for _, x := range v {
			norm += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, norm, 1e-5)
	}
}
