package errors

// Failure is the caller-facing envelope for upstream failures. The upstream's
// own status code is forwarded as the HTTP status; this body carries the
// extracted message plus full diagnostic detail.
type Failure struct {
	Error               string   `json:"error"`
	UpstreamStatus      int      `json:"upstreamStatus"`
	UpstreamContentType string   `json:"upstreamContentType"`
	Detail              any      `json:"detail"`
	TriedModels         []string `json:"triedModels"`
}
