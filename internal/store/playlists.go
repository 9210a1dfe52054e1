package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Video is a single playlist entry. Duration and PublishedAt carry the
// provider's native encodings and are never parsed by this system.
type Video struct {
	ID           string `bson:"id" json:"id"`
	Title        string `bson:"title" json:"title"`
	Description  string `bson:"description" json:"description"`
	ThumbnailURL string `bson:"thumbnail_url" json:"thumbnailUrl"`
	Duration     string `bson:"duration" json:"duration"`
	ChannelTitle string `bson:"channel_title" json:"channelTitle"`
	ViewCount    string `bson:"view_count" json:"viewCount"`
	PublishedAt  string `bson:"published_at" json:"publishedAt"`
}

// Playlist is a named, ordered collection of videos. Videos preserves
// insertion order and allows duplicate video ids.
type Playlist struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Videos    []Video   `bson:"videos" json:"videos"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// CreatePlaylist persists a new playlist document.
func (s *Store) CreatePlaylist(ctx context.Context, playlist *Playlist) error {
	if _, err := s.playlists.InsertOne(ctx, playlist); err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}
	return nil
}

// ListPlaylists returns all playlists in natural store order, capped at
// the fetch limit.
func (s *Store) ListPlaylists(ctx context.Context) ([]*Playlist, error) {
	cursor, err := s.playlists.Find(ctx, bson.M{}, options.Find().SetLimit(fetchLimit))
	if err != nil {
		return nil, fmt.Errorf("find playlists: %w", err)
	}

	playlists := make([]*Playlist, 0)
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode playlists: %w", err)
	}

	for _, playlist := range playlists {
		if playlist.Videos == nil {
			playlist.Videos = []Video{}
		}
	}

	return playlists, nil
}

// GetPlaylist fetches a single playlist by its id.
func (s *Store) GetPlaylist(ctx context.Context, id string) (*Playlist, error) {
	var playlist Playlist
	err := s.playlists.FindOne(ctx, bson.M{"id": id}).Decode(&playlist)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("find playlist: %w", err)
	}

	if playlist.Videos == nil {
		playlist.Videos = []Video{}
	}

	return &playlist, nil
}

// AddVideoToPlaylist appends a video to the end of the playlist's video
// list and refreshes updated_at. The existence check and the append are
// separate operations: two concurrent calls can both pass the check and
// both append. The append itself is a single atomic $push, so neither
// update is lost, only their relative order is unspecified.
func (s *Store) AddVideoToPlaylist(ctx context.Context, id string, video Video) error {
	if _, err := s.GetPlaylist(ctx, id); err != nil {
		return err
	}

	update := bson.M{
		"$push": bson.M{"videos": video},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := s.playlists.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("push video: %w", err)
	}

	return nil
}

// RemoveVideoFromPlaylist removes every entry whose id matches videoID
// and refreshes updated_at. Removing a video that is not in the playlist
// is not an error.
func (s *Store) RemoveVideoFromPlaylist(ctx context.Context, id, videoID string) error {
	if _, err := s.GetPlaylist(ctx, id); err != nil {
		return err
	}

	update := bson.M{
		"$pull": bson.M{"videos": bson.M{"id": videoID}},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	if _, err := s.playlists.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("pull video: %w", err)
	}

	return nil
}

// DeletePlaylist removes a playlist document entirely.
func (s *Store) DeletePlaylist(ctx context.Context, id string) error {
	result, err := s.playlists.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}
