package upstream

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveEndpoint validates a caller-supplied endpoint override against the
// host allow-list. It must be called before any network activity; a host
// outside the allow-list is a hard failure. The returned base has trailing
// slashes stripped so provider-specific paths can be appended directly.
func ResolveEndpoint(raw string, allowedHosts []string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("invalid proxy endpoint %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid proxy endpoint %q: missing scheme or host", raw)
	}
	if !hostAllowed(u.Hostname(), allowedHosts) {
		return "", fmt.Errorf("proxy endpoint host %q is not allowed", u.Hostname())
	}
	return strings.TrimRight(trimmed, "/"), nil
}

func hostAllowed(host string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(host, strings.TrimSpace(a)) {
			return true
		}
	}
	return false
}

// HostOf returns the hostname portion of a base URL, or "" when unparseable.
// Used to pick the credential header scheme for Gemini-compatible endpoints.
func HostOf(base string) string {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return ""
	}
	return u.Hostname()
}
