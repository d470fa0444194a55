package handlers

import "github.com/go-chi/chi/v5"

// RegisterRoutes wires HTTP handlers into the provided router.
func RegisterRoutes(r chi.Router, deps Dependencies) {
	status := StatusHandler{}

	r.Get("/status", status.Handle)
	r.Get("/watch", NewEmbedHandler(Video, deps.FrontendURL, deps.Backend).Handle)
	r.Get("/playlist", NewEmbedHandler(Playlist, deps.FrontendURL, deps.Backend).Handle)
	r.Get("/channel/{id}", NewEmbedHandler(Channel, deps.FrontendURL, deps.Backend).Handle)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	FrontendURL string
	Backend     Backend
}
