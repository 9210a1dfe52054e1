package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrPlaylistNotFound signals the referenced playlist does not exist.
	ErrPlaylistNotFound = errors.New("playlist not found")
)

// fetchLimit bounds list reads so a single request cannot pull an
// unbounded result set into memory.
const fetchLimit = 1000

// Store provides persistence backed by MongoDB.
type Store struct {
	playlists    *mongo.Collection
	statusChecks *mongo.Collection
}

// New sets up a Store using the provided database handle.
func New(db *mongo.Database) *Store {
	return &Store{
		playlists:    db.Collection("playlists"),
		statusChecks: db.Collection("status_checks"),
	}
}
