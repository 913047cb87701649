package handlers

import (
	"net/http"

	"genrelay-go/internal/config"
	"genrelay-go/internal/upstream"
)

// GenerateHandler serves the generation endpoint. It holds no per-request
// state; every request is handled independently with the caller's own
// credential.
type GenerateHandler struct {
	cfg  *config.Config
	http *http.Client
}

// NewGenerate builds the handler with a shared upstream HTTP client bounded
// by the configured per-attempt timeout.
func NewGenerate(cfg *config.Config) *GenerateHandler {
	return &GenerateHandler{
		cfg:  cfg,
		http: upstream.NewHTTPClient(cfg.UpstreamTimeout()),
	}
}
