package httpapi

import (
	"encoding/json"
	"net/http"
)

type createStatusCheckRequest struct {
	ClientName string `json:"clientName"`
}

func (s *Server) handleCreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req createStatusCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON payload"})
		return
	}

	if req.ClientName == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "clientName is required"})
		return
	}

	check, err := s.status.Create(r.Context(), req.ClientName)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, check)
}

func (s *Server) handleListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := s.status.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, checks)
}
