package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"genrelay-go/internal/constants"
)

func TestUpstreamMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"structured error.message", `{"error":{"message":"model not found"}}`, "model not found"},
		{"top-level message", `{"message":"quota exceeded"}`, "quota exceeded"},
		{"error.message wins over message", `{"error":{"message":"inner"},"message":"outer"}`, "inner"},
		{"non-string error.message falls through", `{"error":{"message":42},"message":"outer"}`, "outer"},
		{"unparseable body returns raw", `upstream exploded`, "upstream exploded"},
		{"empty body returns fixed fallback", ``, "Upstream error"},
		{"blank body returns fixed fallback", "  \n ", "Upstream error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, UpstreamMessage([]byte(tc.body)))
		})
	}
}

func TestUpstreamMessage_TruncatesRawBody(t *testing.T) {
	raw := strings.Repeat("x", constants.ErrorMessageMaxLen+100)
	got := UpstreamMessage([]byte(raw))
	assert.Len(t, got, constants.ErrorMessageMaxLen)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 0))
}
