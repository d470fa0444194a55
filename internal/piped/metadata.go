package piped

// Video captures the subset of stream details used for embeds.
type Video struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Playlist captures the subset of playlist details used for embeds.
type Playlist struct {
	Name         string `json:"name"`
	Uploader     string `json:"uploader"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Channel captures the subset of channel details used for embeds.
type Channel struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AvatarURL   string `json:"avatarUrl"`
}
