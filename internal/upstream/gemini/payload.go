package gemini

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"genrelay-go/internal/constants"
	"genrelay-go/internal/upstream"
)

func buildPayload(req Request) []byte {
	payload := map[string]any{
		"systemInstruction": map[string]any{
			"parts": []map[string]any{{"text": req.SystemInstruction}},
		},
		"contents": []map[string]any{
			{"role": "user", "parts": []map[string]any{{"text": req.UserPrompt}}},
		},
		"generationConfig": map[string]any{
			"temperature": constants.DefaultTemperature,
			"topP":        constants.DefaultTopP,
		},
	}
	raw, _ := json.Marshal(payload)
	if req.EnableThinking && strings.Contains(req.Model, "thinking") {
		raw = injectThinkingConfig(raw)
	}
	return raw
}

// injectThinkingConfig adds thought support to an already-marshaled payload.
// Only thinking-capable models get this; everything else keeps the plain
// generationConfig.
func injectThinkingConfig(raw []byte) []byte {
	out, err := sjson.SetBytes(raw, "generationConfig.thinkingConfig", map[string]any{
		"includeThoughts": true,
		"thinkingBudget":  constants.ThinkingBudget,
	})
	if err != nil {
		return raw
	}
	return out
}

// extractText concatenates the text field of every part in the first
// candidate's content. Absent or malformed structures yield an empty string.
func extractText(res *upstream.Result) string {
	parts := res.Get("candidates.0.content.parts")
	if !parts.IsArray() {
		return ""
	}
	var sb strings.Builder
	parts.ForEach(func(_, part gjson.Result) bool {
		if text := part.Get("text"); text.Type == gjson.String {
			sb.WriteString(text.Str)
		}
		return true
	})
	return sb.String()
}
