package handlers

import (
	"context"

	"github.com/piped-embed/server/internal/piped"
)

// Backend resolves entity metadata from the Piped API.
type Backend interface {
	VideoByID(ctx context.Context, id string) (piped.Video, error)
	PlaylistByID(ctx context.Context, id string) (piped.Playlist, error)
	ChannelByID(ctx context.Context, id string) (piped.Channel, error)
}
