package search

import (
	"context"

	"muse/internal/videoapi"
)

// defaultMaxResults is used when the caller does not specify a result cap.
const defaultMaxResults = 20

// Service coordinates video search against the configured provider.
type Service interface {
	Search(ctx context.Context, query string, maxResults int64) ([]videoapi.Video, error)
}

type service struct {
	client videoapi.Client
}

// New constructs a Service backed by the provided provider client. A nil
// client is allowed; every search then fails with ErrNotConfigured before
// any network call.
func New(client videoapi.Client) Service {
	return &service{client: client}
}

func (s *service) Search(ctx context.Context, query string, maxResults int64) ([]videoapi.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.client == nil {
		return nil, videoapi.ErrNotConfigured
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	return s.client.Search(ctx, query, maxResults)
}
