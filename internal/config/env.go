package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment overrides, highest precedence. GENRELAY_ALLOWED_HOSTS is a
// comma-separated list.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GENRELAY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	if v := os.Getenv("GENRELAY_BASE_PATH"); v != "" {
		cfg.BasePath = v
	}
	if v := os.Getenv("GENRELAY_DEBUG"); v != "" {
		cfg.Debug = envBool(v)
	}
	if v := os.Getenv("GENRELAY_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("GENRELAY_REQUEST_LOG"); v != "" {
		cfg.RequestLog = envBool(v)
	}
	if v := os.Getenv("GENRELAY_DEFAULT_ENDPOINT"); v != "" {
		cfg.DefaultEndpoint = strings.TrimSpace(v)
	}
	if v := os.Getenv("GENRELAY_ALLOWED_HOSTS"); v != "" {
		var hosts []string
		for _, h := range strings.Split(v, ",") {
			if h = strings.TrimSpace(h); h != "" {
				hosts = append(hosts, h)
			}
		}
		if len(hosts) > 0 {
			cfg.AllowedHosts = hosts
		}
	}
	if v := os.Getenv("GENRELAY_GEMINI_HOST"); v != "" {
		cfg.GeminiHost = strings.TrimSpace(v)
	}
	if v := os.Getenv("GENRELAY_UPSTREAM_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			cfg.UpstreamTimeoutSec = sec
		}
	}
}

func envBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
