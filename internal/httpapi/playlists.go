package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"muse/internal/store"
)

type createPlaylistRequest struct {
	Name string `json:"name"`
}

// addVideoRequest uses pointer fields so an absent field can be told
// apart from a present-but-empty one: every field must be present, but
// empty strings are accepted.
type addVideoRequest struct {
	VideoID      *string `json:"videoId"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Duration     *string `json:"duration"`
	ChannelTitle *string `json:"channelTitle"`
	ViewCount    *string `json:"viewCount"`
	PublishedAt  *string `json:"publishedAt"`
}

func (r *addVideoRequest) validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"videoId", r.VideoID},
		{"title", r.Title},
		{"description", r.Description},
		{"thumbnailUrl", r.ThumbnailURL},
		{"duration", r.Duration},
		{"channelTitle", r.ChannelTitle},
		{"viewCount", r.ViewCount},
		{"publishedAt", r.PublishedAt},
	}
	for _, f := range fields {
		if f.value == nil {
			return errors.New(f.name + " is required")
		}
	}
	return nil
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	var req createPlaylistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if req.Name == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "name is required"})
		return
	}

	playlist, err := s.playlists.Create(r.Context(), req.Name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	playlists, err := s.playlists.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := s.playlists.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writePlaylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleAddVideo(w http.ResponseWriter, r *http.Request) {
	var req addVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if err := req.validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	video := store.Video{
		ID:           *req.VideoID,
		Title:        *req.Title,
		Description:  *req.Description,
		ThumbnailURL: *req.ThumbnailURL,
		Duration:     *req.Duration,
		ChannelTitle: *req.ChannelTitle,
		ViewCount:    *req.ViewCount,
		PublishedAt:  *req.PublishedAt,
	}

	if err := s.playlists.AddVideo(r.Context(), r.PathValue("id"), video); err != nil {
		s.writePlaylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Video added to playlist"})
}

func (s *Server) handleRemoveVideo(w http.ResponseWriter, r *http.Request) {
	if err := s.playlists.RemoveVideo(r.Context(), r.PathValue("id"), r.PathValue("videoId")); err != nil {
		s.writePlaylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Video removed from playlist"})
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := s.playlists.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writePlaylistError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Playlist deleted"})
}

func (s *Server) writePlaylistError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrPlaylistNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Playlist not found"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
