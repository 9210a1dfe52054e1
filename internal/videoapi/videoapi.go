package videoapi

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured signals no provider API key was supplied, so no
	// search call can be attempted.
	ErrNotConfigured = errors.New("video api key not configured")
	// ErrQuotaExceeded signals the provider reported quota exhaustion.
	ErrQuotaExceeded = errors.New("video api quota exceeded")
)

// UpstreamError is a provider rejection for reasons other than quota
// exhaustion. Message carries the provider's own description.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("video api error %d: %s", e.Code, e.Message)
}

// Video is a search result mapped into the canonical video shape.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     string `json:"duration"`
	ChannelTitle string `json:"channelTitle"`
	ViewCount    string `json:"viewCount"`
	PublishedAt  string `json:"publishedAt"`
}

// Client defines the interface for video search provider clients.
type Client interface {
	// Search finds videos matching a free-text query, most relevant first.
	Search(ctx context.Context, query string, maxResults int64) ([]Video, error)
}
