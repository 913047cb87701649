package models

import "strings"

// FallbackChain derives the ordered list of alternate models to try when the
// primary model is rejected as unavailable. The original model is removed and
// duplicates are dropped while preserving first-occurrence order. The result
// may be empty; the OpenAI handler then has nothing further to try.
func FallbackChain(normalized string) []string {
	var candidates []string
	switch {
	case strings.HasPrefix(normalized, "gpt-4.1"):
		candidates = []string{"gpt-4o-mini", "gpt-4o", "gpt-4.1-mini"}
	case strings.HasPrefix(normalized, "gpt-4o"):
		candidates = []string{"gpt-4o-mini", "gpt-4o"}
	case strings.HasPrefix(normalized, "gpt-4"):
		candidates = []string{"gpt-4o-mini", "gpt-4o"}
	case strings.HasPrefix(normalized, "o1"):
		candidates = []string{"gpt-4o-mini", "gpt-4o"}
	case strings.Contains(normalized, "gemini-2.0-flash"):
		candidates = []string{"gemini-1.5-flash", "gemini-1.5-pro"}
	case strings.Contains(normalized, "gemini"):
		candidates = []string{"gemini-1.5-flash", "gemini-1.5-pro", "gemini-2.0-flash-exp"}
	default:
		return nil
	}

	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		if cand == normalized || seen[cand] {
			continue
		}
		seen[cand] = true
		out = append(out, cand)
	}
	return out
}
