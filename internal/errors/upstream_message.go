package errors

import (
	"strings"

	"github.com/tidwall/gjson"

	"genrelay-go/internal/constants"
)

const fallbackMessage = "Upstream error"

// UpstreamMessage extracts a human-readable error message from an upstream
// response body. Preference order: structured `error.message`, then a
// top-level `message`, then a truncated slice of the raw body, then a fixed
// fallback. Parse failures never abort the caller; they only narrow what is
// available.
func UpstreamMessage(body []byte) string {
	if gjson.ValidBytes(body) {
		if m := gjson.GetBytes(body, "error.message"); m.Type == gjson.String && strings.TrimSpace(m.Str) != "" {
			return m.Str
		}
		if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && strings.TrimSpace(m.Str) != "" {
			return m.Str
		}
	}
	if raw := strings.TrimSpace(string(body)); raw != "" {
		return Truncate(raw, constants.ErrorMessageMaxLen)
	}
	return fallbackMessage
}

// Truncate caps s at max bytes. Bodies are diagnostic only, so cutting inside
// a multi-byte rune is acceptable here.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
