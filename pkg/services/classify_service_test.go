package services

import (
	"testing"

	"github.com/echoman-project/echoman/ent/llmjudgement"
	"github.com/stretchr/testify/assert"
)

func TestRuleClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		platforms    []string
		wantCategory string
		wantScore    float64
	}{
		{
			name:         "entertainment keywords dominate",
			text:         "某明星被曝出轨 娱乐圈震动 粉丝脱粉 综艺节目停播 电视剧下架",
			wantCategory: "entertainment",
			wantScore:    1.0,
		},
		{
			name:         "current affairs keywords dominate",
			text:         "国务院发布新政策 监管部门开展专项整治 法院公布案件调查结果",
			wantCategory: "current_affairs",
			wantScore:    1.0,
		},
		{
			name:         "sports keywords dominate",
			text:         "总决赛战队夺冠 教练与俱乐部续约 球员荣膺MVP 联赛冠军诞生",
			wantCategory: "sports_esports",
			wantScore:    1.0,
		},
		{
			name:         "hupu bias tips a weak sports signal",
			text:         "某队比赛引发讨论",
			platforms:    []string{"hupu"},
			wantCategory: "sports_esports",
			wantScore:    1.0,
		},
		{
			name:         "no signal defaults to current affairs with zero score",
			text:         "今天天气不错",
			wantCategory: "current_affairs",
			wantScore:    0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category, score := ruleClassify(tt.text, tt.platforms)
			assert.Equal(t, tt.wantCategory, category)
			assert.InDelta(t, tt.wantScore, score, 1e-9)
		})
	}
}

// A couple of strong keyword hits must be enough to settle classification
// without an LLM round trip.
func TestRuleClassify_FewHitsReachRuleThreshold(t *testing.T) {
	category, score := ruleClassify("国务院发布重要政策", nil)
	assert.Equal(t, "current_affairs", category)
	assert.GreaterOrEqual(t, score, 0.6)
}

func TestRuleClassify_ScoreClamped(t *testing.T) {
	text := "明星 娱乐 八卦 绯闻 爆料 综艺 电影 电视剧 演员 歌手 偶像 爱豆 粉丝 娱乐圈 影视 节目 出轨 离婚 恋情 结婚 生子 颁奖 首映 热播"
	_, score := ruleClassify(text, nil)
	assert.LessOrEqual(t, score, 1.0)
}

func TestKeywordScore(t *testing.T) {
	score := keywordScore("明星绯闻导演回应", entertainmentStrong, entertainmentMedium)
	// two strong hits plus one medium hit
	assert.InDelta(t, 0.35, score, 1e-9)
}

func TestParseClassifyResponse(t *testing.T) {
	t.Run("valid json", func(t *testing.T) {
		category, conf, status := parseClassifyResponse(`{"category": "sports_esports", "confidence": 0.9, "reason": "赛事报道"}`)
		assert.Equal(t, "sports_esports", category)
		assert.InDelta(t, 0.9, conf, 1e-9)
		assert.Equal(t, llmjudgement.StatusSuccess, status)
	})

	t.Run("invalid category falls back to text extraction", func(t *testing.T) {
		category, conf, status := parseClassifyResponse(`{"category": "gossip"} this looks like entertainment news`)
		assert.Equal(t, "entertainment", category)
		assert.InDelta(t, 0.5, conf, 1e-9)
		assert.Equal(t, llmjudgement.StatusFallback, status)
	})

	t.Run("prose mentioning sports", func(t *testing.T) {
		category, _, status := parseClassifyResponse(`this is clearly a sports event`)
		assert.Equal(t, "sports_esports", category)
		assert.Equal(t, llmjudgement.StatusFallback, status)
	})

	t.Run("nothing usable", func(t *testing.T) {
		category, _, status := parseClassifyResponse(`无法判断`)
		assert.Empty(t, category)
		assert.Equal(t, llmjudgement.StatusFailed, status)
	})
}
