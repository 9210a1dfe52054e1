package playlists

import (
	"context"
	"time"

	"github.com/google/uuid"

	"muse/internal/store"
)

// Store captures the persistence needs for playlist workflows.
type Store interface {
	CreatePlaylist(ctx context.Context, playlist *store.Playlist) error
	ListPlaylists(ctx context.Context) ([]*store.Playlist, error)
	GetPlaylist(ctx context.Context, id string) (*store.Playlist, error)
	AddVideoToPlaylist(ctx context.Context, id string, video store.Video) error
	RemoveVideoFromPlaylist(ctx context.Context, id, videoID string) error
	DeletePlaylist(ctx context.Context, id string) error
}

// Service coordinates playlist-related operations.
type Service interface {
	Create(ctx context.Context, name string) (*store.Playlist, error)
	List(ctx context.Context) ([]*store.Playlist, error)
	Get(ctx context.Context, id string) (*store.Playlist, error)
	AddVideo(ctx context.Context, id string, video store.Video) error
	RemoveVideo(ctx context.Context, id, videoID string) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	store Store
}

// New constructs a Service backed by the provided Store.
func New(store Store) Service {
	return &service{store: store}
}

// Create assigns the server-side id and timestamps. A new playlist always
// starts with an empty video list.
func (s *service) Create(ctx context.Context, name string) (*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	playlist := &store.Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		Videos:    []store.Video{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *service) List(ctx context.Context) ([]*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaylists(ctx)
}

func (s *service) Get(ctx context.Context, id string) (*store.Playlist, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.GetPlaylist(ctx, id)
}

func (s *service) AddVideo(ctx context.Context, id string, video store.Video) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.AddVideoToPlaylist(ctx, id, video)
}

func (s *service) RemoveVideo(ctx context.Context, id, videoID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.RemoveVideoFromPlaylist(ctx, id, videoID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlaylist(ctx, id)
}
