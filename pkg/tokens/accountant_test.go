package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	a := NewAccountant()

	assert.Equal(t, 0, a.Count(""))
	assert.Greater(t, a.Count("hello world"), 0)
	assert.Greater(t, a.Count("某地发生重大新闻事件引发广泛关注"), 0)

	short := a.Count("hi")
	long := a.Count(strings.Repeat("hi ", 200))
	assert.Greater(t, long, short)
}

func TestContextLimit(t *testing.T) {
	a := NewAccountant()
	assert.Equal(t, 32000, a.ContextLimit("qwen3-32b"))
	assert.Equal(t, DefaultContextLimit, a.ContextLimit("some-unknown-model"))
}

func TestAvailableContext(t *testing.T) {
	a := NewAccountant()

	got := a.AvailableContext("qwen3-32b", 500, 100, 1000)
	assert.Equal(t, 32000-SafetyMargin-500-100-1000, got)

	// Never negative
	assert.Equal(t, 0, a.AvailableContext("qwen3-32b", 30000, 5000, 5000))
}

func TestTruncate(t *testing.T) {
	a := NewAccountant()

	t.Run("short text untouched", func(t *testing.T) {
		assert.Equal(t, "short", a.Truncate("short", 100, true))
	})

	t.Run("zero budget", func(t *testing.T) {
		assert.Equal(t, "", a.Truncate("anything", 0, true))
	})

	t.Run("keep head", func(t *testing.T) {
		text := strings.Repeat("事件进展持续更新中 ", 100)
		got := a.Truncate(text, 20, true)
		require.NotEqual(t, text, got)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, a.Count(got), 20)
	})

	t.Run("keep tail", func(t *testing.T) {
		text := strings.Repeat("事件进展持续更新中 ", 100)
		got := a.Truncate(text, 20, false)
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.LessOrEqual(t, a.Count(got), 20)
	})
}

func TestTruncateChunks(t *testing.T) {
	a := NewAccountant()
	chunks := []string{
		strings.Repeat("first chunk content ", 10),
		strings.Repeat("second chunk content ", 10),
		strings.Repeat("third chunk content ", 10),
	}
	total := 0
	for _, c := range chunks {
		total += a.Count(c)
	}

	t.Run("budget fits all", func(t *testing.T) {
		kept, used := a.TruncateChunks(chunks, total+10)
		assert.Len(t, kept, 3)
		assert.Equal(t, total, used)
	})

	t.Run("budget truncates", func(t *testing.T) {
		budget := a.Count(chunks[0]) + 15
		kept, used := a.TruncateChunks(chunks, budget)
		require.NotEmpty(t, kept)
		assert.Equal(t, chunks[0], kept[0])
		assert.LessOrEqual(t, used, budget)
		assert.Less(t, len(kept), 3)
	})

	t.Run("zero budget keeps nothing", func(t *testing.T) {
		kept, used := a.TruncateChunks(chunks, 0)
		assert.Empty(t, kept)
		assert.Zero(t, used)
	})
}
