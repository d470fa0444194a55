package app

import (
	"net/http"

	"github.com/piped-embed/server/internal/config"
	"github.com/piped-embed/server/internal/handlers"
	"github.com/piped-embed/server/internal/piped"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers.
// The client is created once and shared read-only by every request.
func buildDependencies(cfg config.Config) handlers.Dependencies {
	httpClient := &http.Client{Transport: http.DefaultTransport}

	return handlers.Dependencies{
		FrontendURL: cfg.FrontendURL,
		Backend:     piped.NewClient(cfg.BackendURL, httpClient, cfg.BackendTimeout),
	}
}
