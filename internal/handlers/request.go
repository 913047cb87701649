package handlers

import (
	"strings"

	"github.com/tidwall/gjson"
)

// generationRequest is the validated inbound payload. All fields are
// trimmed; absent or non-string values coerce to the empty string rather
// than failing the parse.
type generationRequest struct {
	Model             string
	SystemInstruction string
	UserPrompt        string
	EnableThinking    bool
	ProxyEndpoint     string
}

func parseGenerationRequest(raw []byte, defaultEndpoint string) generationRequest {
	str := func(path string) string {
		v := gjson.GetBytes(raw, path)
		if v.Type != gjson.String {
			return ""
		}
		return strings.TrimSpace(v.Str)
	}
	req := generationRequest{
		Model:             str("model"),
		SystemInstruction: str("systemInstruction"),
		UserPrompt:        str("userPrompt"),
		EnableThinking:    gjson.GetBytes(raw, "enableThinking").Type == gjson.True,
		ProxyEndpoint:     str("proxyEndpoint"),
	}
	if req.ProxyEndpoint == "" {
		req.ProxyEndpoint = defaultEndpoint
	}
	return req
}

// credentialFrom extracts the opaque bearer credential from the authorization
// header value; the literal "Bearer " prefix is optional.
func credentialFrom(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
