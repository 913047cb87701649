package upstream

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	apperrors "genrelay-go/internal/errors"
)

// Result captures one upstream attempt: raw status, content type, raw body
// and a best-effort structured view of the body. It lives only long enough
// to be folded into the caller response or to decide whether to retry.
type Result struct {
	StatusCode  int
	ContentType string
	Body        []byte
	parsed      bool
}

// ReadResult drains and closes the upstream response body.
func ReadResult(resp *http.Response) (*Result, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Result{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
		parsed:      gjson.ValidBytes(body),
	}, nil
}

// Success reports a 2xx upstream status.
func (r *Result) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get extracts a gjson path from the structured body. Returns a zero Result
// when the body was not parseable.
func (r *Result) Get(path string) gjson.Result {
	if !r.parsed {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Body, path)
}

// Message extracts the best available error message from the body.
func (r *Result) Message() string {
	return apperrors.UpstreamMessage(r.Body)
}

// Detail returns the structured body when parseable, otherwise the raw text
// truncated to maxRaw bytes.
func (r *Result) Detail(maxRaw int) any {
	if r.parsed {
		return json.RawMessage(r.Body)
	}
	return apperrors.Truncate(string(r.Body), maxRaw)
}
