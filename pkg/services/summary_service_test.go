package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/echoman-project/echoman/ent"
	"github.com/echoman-project/echoman/ent/summary"
	"github.com/echoman-project/echoman/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryItem(id int, fetchedAt time.Time, likes float64) *ent.SourceItem {
	return &ent.SourceItem{
		ID:        id,
		FetchedAt: fetchedAt,
		Interactions: map[string]interface{}{
			"like": likes,
		},
	}
}

func TestSelectKeyNodes_SmallTopicUnchanged(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	items := []*ent.SourceItem{
		summaryItem(1, base, 10),
		summaryItem(2, base.Add(time.Hour), 20),
	}
	assert.Equal(t, items, selectKeyNodes(items, 15))
}

func TestSelectKeyNodes_PicksAnchors(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	var items []*ent.SourceItem
	for i := 1; i <= 20; i++ {
		likes := float64(i)
		if i == 7 {
			likes = 5000 // the viral node
		}
		items = append(items, summaryItem(i, base.Add(time.Duration(i)*time.Hour), likes))
	}

	selected := selectKeyNodes(items, 15)
	require.NotEmpty(t, selected)

	ids := map[int]bool{}
	for _, item := range selected {
		ids[item.ID] = true
	}
	assert.True(t, ids[1], "earliest node must survive")
	assert.True(t, ids[7], "the most-interacted node must survive")
	for i := 16; i <= 20; i++ {
		assert.True(t, ids[i], "newest nodes must survive")
	}

	// chronological order preserved
	for i := 1; i < len(selected); i++ {
		assert.True(t, !selected[i].FetchedAt.Before(selected[i-1].FetchedAt))
	}
}

func TestSelectKeyNodes_RespectsCap(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	var items []*ent.SourceItem
	for i := 1; i <= 40; i++ {
		items = append(items, summaryItem(i, base.Add(time.Duration(i)*time.Minute), float64(i)))
	}
	selected := selectKeyNodes(items, 5)
	assert.LessOrEqual(t, len(selected), 5)
}

func TestNewestItems(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	var items []*ent.SourceItem
	for i := 1; i <= 12; i++ {
		items = append(items, summaryItem(i, base.Add(time.Duration(i)*time.Hour), float64(i)))
	}

	kept := newestItems(items, 5)
	require.Len(t, kept, 5)
	for i, item := range kept {
		assert.Equal(t, 8+i, item.ID, "only the newest nodes survive, in order")
	}

	short := items[:3]
	assert.Equal(t, short, newestItems(short, 5))
}

// A burst of new nodes must not flood the incremental prompt; only the
// newest ones are spelled out.
func TestBuildIncrementalPrompt_CapsNewNodes(t *testing.T) {
	base := time.Date(2026, 8, 20, 8, 0, 0, 0, time.UTC)
	var items []*ent.SourceItem
	for i := 1; i <= 30; i++ {
		item := summaryItem(i, base.Add(time.Duration(i)*time.Minute), float64(i))
		title := fmt.Sprintf("进展编号%02d", i)
		item.Title = title
		items = append(items, item)
	}

	s := &SummaryService{acct: tokens.NewAccountant()}
	prompt := s.buildIncrementalPrompt(&ent.Summary{Content: "当前摘要内容"}, items)

	assert.NotContains(t, prompt, "进展编号01")
	assert.NotContains(t, prompt, "进展编号25")
	for i := 26; i <= 30; i++ {
		assert.Contains(t, prompt, fmt.Sprintf("进展编号%02d", i))
	}
	// the format instructions survive intact
	assert.Contains(t, prompt, "needs_update")
}

func TestSummaryIndexText(t *testing.T) {
	topic := &ent.Topic{TitleKey: "某地暴雨"}

	placeholder := &ent.Summary{Method: summary.MethodPlaceholder, Content: "摘要正在生成中"}
	assert.Equal(t, "某地暴雨", summaryIndexText(topic, placeholder))

	full := &ent.Summary{Method: summary.MethodFull, Content: "暴雨造成城市内涝"}
	assert.Equal(t, "某地暴雨\n暴雨造成城市内涝", summaryIndexText(topic, full))
}
