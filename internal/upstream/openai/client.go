package openai

import (
	"encoding/json"
	"net/http"
	"strings"

	"genrelay-go/internal/constants"
)

// Client talks to an OpenAI-compatible chat-completions endpoint with the
// caller's credential. It is request-scoped and carries no shared state
// beyond the HTTP client.
type Client struct {
	http       *http.Client
	base       string
	credential string
}

// New builds a client for the given resolved endpoint base.
func New(httpClient *http.Client, base, credential string) *Client {
	return &Client{http: httpClient, base: base, credential: credential}
}

// endpointURL normalizes the base path to end in /v1 (a trailing /v1beta is
// rewritten, otherwise /v1 is appended) and appends /chat/completions.
func (c *Client) endpointURL() string {
	base := c.base
	switch {
	case strings.HasSuffix(base, "/v1beta"):
		base = strings.TrimSuffix(base, "/v1beta") + "/v1"
	case strings.HasSuffix(base, "/v1"):
		// already canonical
	default:
		base += "/v1"
	}
	return base + "/chat/completions"
}

// headers always sets both credential schemes so generic proxies in front of
// OpenAI-compatible backends work regardless of which one they honor.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"Content-Type":  "application/json",
		"Accept":        "application/json",
		"Authorization": "Bearer " + c.credential,
		"X-API-Key":     c.credential,
	}
}

func (c *Client) buildPayload(model, systemInstruction, userPrompt string) []byte {
	payload := map[string]any{
		"model": model,
		"messages": []map[string]any{
			{"role": "system", "content": systemInstruction},
			{"role": "user", "content": userPrompt},
		},
		"stream":      false,
		"temperature": constants.DefaultTemperature,
		"top_p":       constants.DefaultTopP,
	}
	body, _ := json.Marshal(payload)
	return body
}
