package piped

import "errors"

var (
	// ErrFetch indicates metadata could not be retrieved from the Piped API.
	// Network failures, non-success statuses and malformed payloads all wrap it.
	ErrFetch = errors.New("piped metadata fetch failed")
)
