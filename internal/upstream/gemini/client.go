package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"genrelay-go/internal/models"
	"genrelay-go/internal/upstream"
)

// Client talks to a Gemini-compatible generateContent endpoint. Unlike the
// OpenAI family there is no fallback loop; exactly one upstream call is made.
type Client struct {
	http       *http.Client
	base       string
	credential string
	// canonicalHost is the official Gemini API host; hitting it switches the
	// credential scheme to x-goog-api-key.
	canonicalHost string
}

// Request is one normalized Gemini-family generation request.
type Request struct {
	Model             string
	SystemInstruction string
	UserPrompt        string
	EnableThinking    bool
}

// New builds a client for the given resolved endpoint base.
func New(httpClient *http.Client, base, credential, canonicalHost string) *Client {
	return &Client{http: httpClient, base: base, credential: credential, canonicalHost: canonicalHost}
}

// endpointURL guarantees a /v1beta segment in the base and appends the
// per-model generateContent action.
func (c *Client) endpointURL(model string) string {
	base := c.base
	if !strings.Contains(base, "/v1beta") {
		base += "/v1beta"
	}
	return base + "/models/" + model + ":generateContent"
}

// headers picks the credential scheme by host: the canonical Gemini host
// takes x-goog-api-key, while a Gemini-compatible endpoint behind a generic
// proxy gets both bearer-style headers.
func (c *Client) headers() map[string]string {
	h := map[string]string{"Content-Type": "application/json"}
	if strings.EqualFold(upstream.HostOf(c.base), c.canonicalHost) {
		h["x-goog-api-key"] = c.credential
	} else {
		h["Authorization"] = "Bearer " + c.credential
		h["X-API-Key"] = c.credential
	}
	return h
}

// Generate issues the single upstream call and maps the result. The fallback
// chain is still derived so failures can report what a retry would have
// tried, but no retry is performed for this family.
func (c *Client) Generate(ctx context.Context, req Request) (*upstream.Outcome, error) {
	attempted := append([]string{req.Model}, models.FallbackChain(req.Model)...)

	res, err := upstream.PostJSON(ctx, c.http, c.endpointURL(req.Model), c.headers(), buildPayload(req))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"component": "gemini_client",
			"model":     req.Model,
		}).WithError(err).Warn("generateContent transport error")
		return nil, err
	}
	if !res.Success() {
		logrus.WithFields(logrus.Fields{
			"component": "gemini_client",
			"model":     req.Model,
			"status":    res.StatusCode,
		}).Warn("generateContent upstream failed")
		return &upstream.Outcome{Attempted: attempted, Failure: res}, nil
	}
	logrus.WithFields(logrus.Fields{
		"component": "gemini_client",
		"model":     req.Model,
		"status":    res.StatusCode,
	}).Info("generateContent upstream success")
	return &upstream.Outcome{
		Text:      extractText(res),
		UsedModel: req.Model,
		Attempted: attempted,
	}, nil
}
