package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muse/internal/videoapi"
)

type stubClient struct {
	videos []videoapi.Video
	err    error

	lastQuery      string
	lastMaxResults int64
}

func (c *stubClient) Search(ctx context.Context, query string, maxResults int64) ([]videoapi.Video, error) {
	c.lastQuery = query
	c.lastMaxResults = maxResults
	if c.err != nil {
		return nil, c.err
	}
	return c.videos, nil
}

func TestSearchNilClient(t *testing.T) {
	svc := New(nil)

	_, err := svc.Search(context.Background(), "music", 5)

	assert.ErrorIs(t, err, videoapi.ErrNotConfigured)
}

func TestSearchDefaultsMaxResults(t *testing.T) {
	client := &stubClient{}
	svc := New(client)

	_, err := svc.Search(context.Background(), "music", 0)

	require.NoError(t, err)
	assert.Equal(t, int64(defaultMaxResults), client.lastMaxResults)
}

func TestSearchPassthrough(t *testing.T) {
	client := &stubClient{
		videos: []videoapi.Video{{ID: "abc", Title: "Test Song"}},
	}
	svc := New(client)

	videos, err := svc.Search(context.Background(), "test song", 10)

	require.NoError(t, err)
	assert.Equal(t, "test song", client.lastQuery)
	assert.Equal(t, int64(10), client.lastMaxResults)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc", videos[0].ID)
}

func TestSearchCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubClient{}
	_, err := New(client).Search(ctx, "music", 5)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, client.lastQuery, "client must not be called after cancellation")
}
