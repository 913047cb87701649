package constants

// Version information (injected at build time via -ldflags).
var (
	Version   = "dev"
	GitCommit = "unknown"
)
