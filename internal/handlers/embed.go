package handlers

import (
	"context"
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/piped-embed/server/internal/embed"
	"github.com/piped-embed/server/internal/logging"
)

// preview is the raw, unescaped metadata shown by link unfurlers.
type preview struct {
	title       string
	description string
	image       string
}

// Entity describes one kind of embeddable Piped page.
type Entity struct {
	// Kind names the entity in logs and span names.
	Kind string
	// Path is appended to the frontend URL ahead of the identifier.
	Path string

	id     func(r *http.Request) string
	lookup func(ctx context.Context, backend Backend, id string) (preview, error)
}

var (
	// Video serves /watch?v={id}.
	Video = Entity{
		Kind: "video",
		Path: "/watch?v=",
		id:   queryParam("v"),
		lookup: func(ctx context.Context, backend Backend, id string) (preview, error) {
			video, err := backend.VideoByID(ctx, id)
			if err != nil {
				return preview{}, err
			}
			return preview{title: video.Title, description: video.Description, image: video.ThumbnailURL}, nil
		},
	}

	// Playlist serves /playlist?list={id}. The uploader stands in for a description.
	Playlist = Entity{
		Kind: "playlist",
		Path: "/playlist?list=",
		id:   queryParam("list"),
		lookup: func(ctx context.Context, backend Backend, id string) (preview, error) {
			playlist, err := backend.PlaylistByID(ctx, id)
			if err != nil {
				return preview{}, err
			}
			return preview{title: playlist.Name, description: playlist.Uploader, image: playlist.ThumbnailURL}, nil
		},
	}

	// Channel serves /channel/{id}.
	Channel = Entity{
		Kind: "channel",
		Path: "/channel/",
		id:   pathParam("id"),
		lookup: func(ctx context.Context, backend Backend, id string) (preview, error) {
			channel, err := backend.ChannelByID(ctx, id)
			if err != nil {
				return preview{}, err
			}
			return preview{title: channel.Name, description: channel.Description, image: channel.AvatarURL}, nil
		},
	}
)

func queryParam(name string) func(*http.Request) string {
	return func(r *http.Request) string {
		return r.URL.Query().Get(name)
	}
}

func pathParam(name string) func(*http.Request) string {
	return func(r *http.Request) string {
		return chi.URLParam(r, name)
	}
}

// EmbedHandler renders the unfurl page for a single entity kind.
type EmbedHandler struct {
	Entity      Entity
	FrontendURL string
	Backend     Backend
}

// NewEmbedHandler builds the handler for entity.
func NewEmbedHandler(entity Entity, frontendURL string, backend Backend) EmbedHandler {
	return EmbedHandler{Entity: entity, FrontendURL: frontendURL, Backend: backend}
}

// Handle always answers 200. When the lookup fails the page still redirects
// but carries empty metadata.
func (h EmbedHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	id := h.Entity.id(r)
	page := embed.Page{URL: h.FrontendURL + h.Entity.Path + id}

	if meta, err := h.lookup(ctx, id); err != nil {
		logger.Warn("metadata lookup failed, serving blank embed", "kind", h.Entity.Kind, "id", id, "error", err)
	} else {
		// Image URLs are passed through unescaped, matching the text/URL split
		// documented on embed.Page.
		page.Title = html.EscapeString(meta.title)
		page.Description = html.EscapeString(meta.description)
		page.Image = meta.image
	}

	writePage(w, page)
}

func (h EmbedHandler) lookup(ctx context.Context, id string) (preview, error) {
	if h.Backend == nil || h.Entity.lookup == nil {
		return preview{}, errBackendUnavailable
	}

	ctx, span := logging.StartSpan(ctx, "piped."+h.Entity.Kind)
	meta, err := h.Entity.lookup(ctx, h.Backend, id)
	span.End(err)
	return meta, err
}

func writePage(w http.ResponseWriter, page embed.Page) {
	w.Header().Set("Content-Type", embed.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(embed.Render(page))
}
