// Package tokens estimates token counts and trims text and context blocks to
// fit model budgets.
package tokens

import (
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// SafetyMargin is reserved headroom below every model's context limit.
const SafetyMargin = 2000

// DefaultContextLimit applies to models missing from the limits table.
const DefaultContextLimit = 32000

// modelContextLimits maps model names to usable context sizes. The prevailing
// core model is 32k.
var modelContextLimits = map[string]int{
	"qwen3-32b":          32000,
	"qwen-plus":          131072,
	"qwen-turbo":         131072,
	"gpt-4o":             128000,
	"gpt-4o-mini":        128000,
	"deepseek-chat":      65536,
	"Qwen3-Embedding-8B": 32000,
}

// Accountant counts and truncates tokens. Counting uses the cl100k_base
// encoding; when the encoding cannot be loaded it falls back to a bytes/2
// estimate, which overshoots for CJK text and therefore errs on the safe side.
type Accountant struct {
	enc *tiktoken.Tiktoken
}

// NewAccountant loads the cl100k_base encoding. The returned Accountant is
// usable even when loading fails.
func NewAccountant() *Accountant {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		slog.Warn("tiktoken encoding unavailable, falling back to length estimate", "error", err)
		return &Accountant{}
	}
	return &Accountant{enc: enc}
}

// Count returns the token count of text.
func (a *Accountant) Count(text string) int {
	if text == "" {
		return 0
	}
	if a.enc == nil {
		return len(text)/2 + 1
	}
	return len(a.enc.Encode(text, nil, nil))
}

// ContextLimit returns the context window for model.
func (a *Accountant) ContextLimit(model string) int {
	if limit, ok := modelContextLimits[model]; ok {
		return limit
	}
	return DefaultContextLimit
}

// AvailableContext computes the token budget left for retrieval context after
// accounting for the margin, the fixed prompt parts, and the completion.
func (a *Accountant) AvailableContext(model string, systemTokens, queryTokens, maxCompletion int) int {
	available := a.ContextLimit(model) - SafetyMargin - systemTokens - queryTokens - maxCompletion
	if available < 0 {
		return 0
	}
	return available
}

// Truncate trims text to at most maxTokens, keeping the head when keepHead is
// true and the tail otherwise, and marking the cut with an ellipsis. Trimming
// shrinks iteratively because rune boundaries and token boundaries disagree.
func (a *Accountant) Truncate(text string, maxTokens int, keepHead bool) string {
	if maxTokens <= 0 || text == "" {
		return ""
	}
	if a.Count(text) <= maxTokens {
		return text
	}

	runes := []rune(text)
	// Initial guess: proportional cut, then shrink until it fits.
	keep := len(runes) * maxTokens / a.Count(text)
	if keep < 1 {
		keep = 1
	}
	for keep > 0 {
		var candidate string
		if keepHead {
			candidate = string(runes[:keep]) + "..."
		} else {
			candidate = "..." + string(runes[len(runes)-keep:])
		}
		if a.Count(candidate) <= maxTokens {
			return candidate
		}
		keep = keep * 9 / 10
		if keep == len(runes) {
			keep--
		}
	}
	return "..."
}

// TruncateChunks greedily packs chunks into budget tokens, in order. The last
// chunk that does not fit whole is truncated to the remaining budget; later
// chunks are dropped. Returns the kept chunks and the tokens consumed.
func (a *Accountant) TruncateChunks(chunks []string, budget int) ([]string, int) {
	var kept []string
	used := 0
	for _, chunk := range chunks {
		if used >= budget {
			break
		}
		n := a.Count(chunk)
		if used+n <= budget {
			kept = append(kept, chunk)
			used += n
			continue
		}
		remaining := budget - used
		if remaining > 10 {
			trimmed := a.Truncate(chunk, remaining, true)
			kept = append(kept, trimmed)
			used += a.Count(trimmed)
		}
		break
	}
	return kept, used
}

// CountJoined counts the tokens of parts joined with separators, a cheap
// approximation of a rendered prompt.
func (a *Accountant) CountJoined(parts ...string) int {
	return a.Count(strings.Join(parts, "\n"))
}
