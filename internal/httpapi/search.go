package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"muse/internal/videoapi"
)

const (
	minSearchResults = 1
	maxSearchResults = 50
)

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "q parameter is required"})
		return
	}

	var maxResults int64
	if raw := r.URL.Query().Get("maxResults"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < minSearchResults || n > maxSearchResults {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "maxResults must be an integer between 1 and 50"})
			return
		}
		maxResults = n
	}

	videos, err := s.search.Search(r.Context(), query, maxResults)
	if err != nil {
		var upstream *videoapi.UpstreamError
		switch {
		case errors.Is(err, videoapi.ErrQuotaExceeded):
			writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "YouTube API quota exceeded"})
		case errors.As(err, &upstream):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: upstream.Message})
		case errors.Is(err, videoapi.ErrNotConfigured):
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "YouTube API key not configured"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, videos)
}
