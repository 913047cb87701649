package config

import (
	"time"

	"genrelay-go/internal/constants"
)

// Default upstream targets. The allow-list is static configuration: it is
// fixed once the process starts and never mutated at runtime.
const (
	DefaultEndpoint      = "https://api.vectorengine.ai"
	DefaultGeminiHost    = "generativelanguage.googleapis.com"
	DefaultVectorHost    = "api.vectorengine.ai"
	DefaultPort          = 8085
	DefaultUpstreamTOSec = 120
)

// Config is the process configuration, loaded from a YAML/JSON file with
// environment overrides on top.
type Config struct {
	Port     int    `yaml:"port" json:"port"`
	BasePath string `yaml:"base_path" json:"base_path"`
	Debug    bool   `yaml:"debug" json:"debug"`
	LogFile  string `yaml:"log_file" json:"log_file"`
	// RequestLog toggles per-request access logging.
	RequestLog bool `yaml:"request_log" json:"request_log"`

	// DefaultEndpoint is the upstream base used when a request carries no
	// proxyEndpoint override.
	DefaultEndpoint string `yaml:"default_endpoint" json:"default_endpoint"`
	// AllowedHosts is the upstream host allow-list. Requests overriding the
	// endpoint to any other host are rejected before network I/O.
	AllowedHosts []string `yaml:"allowed_hosts" json:"allowed_hosts"`
	// GeminiHost is the canonical Gemini API host; it selects the
	// x-goog-api-key credential scheme.
	GeminiHost string `yaml:"gemini_host" json:"gemini_host"`
	// UpstreamTimeoutSec bounds each upstream attempt.
	UpstreamTimeoutSec int `yaml:"upstream_timeout_sec" json:"upstream_timeout_sec"`
}

// Default returns the built-in configuration: the two canonical upstream
// hosts, request logging on, and the standard attempt timeout.
func Default() *Config {
	return &Config{
		Port:               DefaultPort,
		RequestLog:         true,
		DefaultEndpoint:    DefaultEndpoint,
		AllowedHosts:       []string{DefaultVectorHost, DefaultGeminiHost},
		GeminiHost:         DefaultGeminiHost,
		UpstreamTimeoutSec: DefaultUpstreamTOSec,
	}
}

// UpstreamTimeout converts the configured per-attempt timeout.
func (c *Config) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutSec <= 0 {
		return constants.UpstreamGenerateTimeout
	}
	return time.Duration(c.UpstreamTimeoutSec) * time.Second
}

// fillDefaults backfills zero values after file/env loading.
func (c *Config) fillDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.DefaultEndpoint == "" {
		c.DefaultEndpoint = DefaultEndpoint
	}
	if len(c.AllowedHosts) == 0 {
		c.AllowedHosts = []string{DefaultVectorHost, DefaultGeminiHost}
	}
	if c.GeminiHost == "" {
		c.GeminiHost = DefaultGeminiHost
	}
	if c.UpstreamTimeoutSec == 0 {
		c.UpstreamTimeoutSec = DefaultUpstreamTOSec
	}
}
