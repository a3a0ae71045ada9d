package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	thinkTailRe = regexp.MustCompile(`(?s)</think>\s*(.+)`)
	// Flat object first; reasoning models often emit prose around the JSON.
	flatObjectRe = regexp.MustCompile(`\{[^{}]+\}`)
	anyObjectRe  = regexp.MustCompile(`(?s)\{.+\}`)
)

// ParseJSONObject extracts a JSON object from raw model output into v.
// It tries, in order: the raw string as JSON, the text after a closing
// <think> tag, and regex-extracted object candidates. Callers that can
// degrade further (e.g. wrapping raw text into a summary) do so themselves.
func ParseJSONObject(raw string, v any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("empty model output")
	}

	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	if m := thinkTailRe.FindStringSubmatch(raw); m != nil {
		tail := strings.TrimSpace(m[1])
		if err := json.Unmarshal([]byte(tail), v); err == nil {
			return nil
		}
		raw = tail
	}

	// Markdown fences are common even in JSON mode.
	if stripped := stripCodeFence(raw); stripped != raw {
		if err := json.Unmarshal([]byte(stripped), v); err == nil {
			return nil
		}
	}

	if m := flatObjectRe.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), v); err == nil {
			return nil
		}
	}
	if m := anyObjectRe.FindString(raw); m != "" {
		if err := json.Unmarshal([]byte(m), v); err == nil {
			return nil
		}
	}

	return fmt.Errorf("no parseable JSON object in model output")
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// StripThink removes a leading reasoning block, returning the answer text.
func StripThink(raw string) string {
	if m := thinkTailRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}
