package constants

import "time"

const (
	// UpstreamGenerateTimeout enforces max duration for a single upstream attempt.
	UpstreamGenerateTimeout = 120 * time.Second
	// ServerShutdownTimeout bounds graceful HTTP server shutdown.
	ServerShutdownTimeout = 30 * time.Second
	// ServerGracefulWait defines post-shutdown wait window for cleanup.
	ServerGracefulWait = 2 * time.Second
)
