package openai

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"genrelay-go/internal/models"
	"genrelay-go/internal/upstream"
)

// Request is one normalized OpenAI-family generation request.
type Request struct {
	Model             string
	SystemInstruction string
	UserPrompt        string
}

func logUpstreamEvent(level logrus.Level, msg, base, attempt string, status int, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"component":     "openai_client",
		"base_model":    base,
		"attempt_model": attempt,
		"status":        status,
		"fallback":      attempt != base,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(level, msg)
}

// Generate executes the request with a bounded sequential fallback over
// alternate models. Candidates are tried strictly in order; the loop stops at
// the first success, or immediately on any failure that does not look like a
// model-not-found condition. A non-nil error means the transport itself
// failed and no upstream verdict exists.
func (c *Client) Generate(ctx context.Context, req Request) (*upstream.Outcome, error) {
	attempts := append([]string{req.Model}, models.FallbackChain(req.Model)...)

	var last *upstream.Result
	for _, attempt := range attempts {
		res, err := upstream.PostJSON(ctx, c.http, c.endpointURL(), c.headers(), c.buildPayload(attempt, req.SystemInstruction, req.UserPrompt))
		if err != nil {
			logUpstreamEvent(logrus.WarnLevel, "generate upstream transport error", req.Model, attempt, 0, err)
			return nil, err
		}
		if res.Success() {
			logUpstreamEvent(logrus.InfoLevel, "generate upstream success", req.Model, attempt, res.StatusCode, nil)
			return &upstream.Outcome{
				Text:      extractText(res),
				UsedModel: attempt,
				Attempted: attempts,
			}, nil
		}
		last = res
		if !upstream.LooksLikeModelNotFound(res.StatusCode, res.Message()) {
			logUpstreamEvent(logrus.WarnLevel, "generate upstream failed; not recoverable", req.Model, attempt, res.StatusCode, nil)
			break
		}
		logUpstreamEvent(logrus.DebugLevel, "model unavailable; trying next candidate", req.Model, attempt, res.StatusCode, nil)
	}
	return &upstream.Outcome{Attempted: attempts, Failure: last}, nil
}

// extractText pulls the first choice's message content; absent or malformed
// structures yield an empty string rather than an error.
func extractText(res *upstream.Result) string {
	content := res.Get("choices.0.message.content")
	if content.Type != gjson.String {
		return ""
	}
	return content.Str
}
