package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"muse/internal/store"
	"muse/internal/videoapi"
)

// SearchService provides video search against the configured provider.
type SearchService interface {
	Search(ctx context.Context, query string, maxResults int64) ([]videoapi.Video, error)
}

// PlaylistService coordinates playlist-related operations.
type PlaylistService interface {
	Create(ctx context.Context, name string) (*store.Playlist, error)
	List(ctx context.Context) ([]*store.Playlist, error)
	Get(ctx context.Context, id string) (*store.Playlist, error)
	AddVideo(ctx context.Context, id string, video store.Video) error
	RemoveVideo(ctx context.Context, id, videoID string) error
	Delete(ctx context.Context, id string) error
}

// StatusService coordinates status check operations.
type StatusService interface {
	Create(ctx context.Context, clientName string) (*store.StatusCheck, error)
	List(ctx context.Context) ([]*store.StatusCheck, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	search    SearchService
	playlists PlaylistService
	status    StatusService
}

// New configures a Server with the given services.
func New(search SearchService, playlists PlaylistService, status StatusService) *Server {
	return &Server{
		search:    search,
		playlists: playlists,
		status:    status,
	}
}

// Routes exposes the HTTP handlers for search and playlist management.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/v1/{$}", s.handleIndex)

	// Status check routes
	mux.HandleFunc("POST /api/v1/status", s.handleCreateStatusCheck)
	mux.HandleFunc("GET /api/v1/status", s.handleListStatusChecks)

	// Search routes
	mux.HandleFunc("GET /api/v1/search", s.handleSearch)

	// Playlist routes
	mux.HandleFunc("POST /api/v1/playlists", s.handleCreatePlaylist)
	mux.HandleFunc("GET /api/v1/playlists", s.handleListPlaylists)
	mux.HandleFunc("GET /api/v1/playlists/{id}", s.handleGetPlaylist)
	mux.HandleFunc("DELETE /api/v1/playlists/{id}", s.handleDeletePlaylist)
	mux.HandleFunc("POST /api/v1/playlists/{id}/videos", s.handleAddVideo)
	mux.HandleFunc("DELETE /api/v1/playlists/{id}/videos/{videoId}", s.handleRemoveVideo)

	return mux
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to Muse Music Player API"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}
