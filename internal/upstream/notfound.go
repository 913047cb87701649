package upstream

import (
	"net/http"
	"strings"
)

// Known upstream phrasings for an unavailable model. Providers word this in
// many ways (English and Chinese); this list is best-effort, not exhaustive.
var (
	notFoundPhrases = []string{
		"not found",
		"does not exist",
		"not exist",
		"no available",
		"not enabled",
		"unknown model",
		"invalid model",
	}
	notFoundPhrasesCJK = []string{
		"不存在",
		"未找到",
		"无可用渠道",
		"未启用",
		"未开通",
	}
)

// LooksLikeModelNotFound reports whether an upstream failure is the
// recoverable "model unavailable" case that allows trying a fallback model.
// True only for a 404 whose message both talks about a model and matches a
// known not-found phrasing. Everything else stops the fallback loop.
func LooksLikeModelNotFound(status int, message string) bool {
	if status != http.StatusNotFound {
		return false
	}
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "model") && !strings.Contains(message, "模型") {
		return false
	}
	for _, phrase := range notFoundPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, phrase := range notFoundPhrasesCJK {
		if strings.Contains(message, phrase) {
			return true
		}
	}
	return false
}
