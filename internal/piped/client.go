package piped

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	userAgent       = "piped-embed/1.0"
	maxResponseSize = 1 << 20
)

// Client fetches entity metadata from a Piped API instance.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Timeout time.Duration
}

// NewClient constructs a Client for the API rooted at baseURL.
func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    httpClient,
		Timeout: timeout,
	}
}

// VideoByID fetches GET /streams/{id}.
func (c *Client) VideoByID(ctx context.Context, id string) (Video, error) {
	var video Video
	if err := c.get(ctx, "/streams/", id, &video); err != nil {
		return Video{}, err
	}
	return video, nil
}

// PlaylistByID fetches GET /playlists/{id}.
func (c *Client) PlaylistByID(ctx context.Context, id string) (Playlist, error) {
	var playlist Playlist
	if err := c.get(ctx, "/playlists/", id, &playlist); err != nil {
		return Playlist{}, err
	}
	return playlist, nil
}

// ChannelByID fetches GET /channel/{id}.
func (c *Client) ChannelByID(ctx context.Context, id string) (Channel, error) {
	var channel Channel
	if err := c.get(ctx, "/channel/", id, &channel); err != nil {
		return Channel{}, err
	}
	return channel, nil
}

func (c *Client) get(ctx context.Context, prefix, id string, out any) error {
	if c == nil || c.HTTP == nil {
		return fmt.Errorf("%w: client not configured", ErrFetch)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	endpoint := c.BaseURL + prefix + url.PathEscape(id)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return fmt.Errorf("%w: %s returned status %d", ErrFetch, prefix+id, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrFetch, prefix+id, err)
	}
	return nil
}
