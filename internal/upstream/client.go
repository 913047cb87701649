package upstream

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"genrelay-go/internal/constants"
)

// NewHTTPClient builds the shared client used for all upstream calls. A hung
// upstream must never block a request indefinitely, so the client always
// carries a timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = constants.UpstreamGenerateTimeout
	}
	return &http.Client{Timeout: timeout}
}

// PostJSON issues one upstream POST and fully reads the response. The next
// attempt in a fallback loop is only issued after this returns, which keeps
// attempts strictly sequential.
func PostJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, payload []byte) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	return ReadResult(resp)
}

// Outcome is the family-independent result of executing a generation request.
// Exactly one of (UsedModel != "") or (Failure != nil) holds.
type Outcome struct {
	Text      string
	UsedModel string
	// Attempted lists every model that was or would have been tried, in order.
	Attempted []string
	// Failure is the last upstream result when no attempt succeeded.
	Failure *Result
}
