package api

import (
	"encoding/json"
	"net/http"
)

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleContentUpdate serves the latest content, honoring ?refresh=true.
func (s *Server) handleContentUpdate(w http.ResponseWriter, r *http.Request) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	update := s.content.Latest(r.Context(), forceRefresh)

	status := http.StatusOK
	if !update.Success && update.Warning == "" {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, update)
}

// handleContentRefresh triggers a manual content update.
func (s *Server) handleContentRefresh(w http.ResponseWriter, r *http.Request) {
	update := s.content.Latest(r.Context(), true)

	status := http.StatusOK
	if !update.Success && update.Warning == "" {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, update)
}

type notebookQueryRequest struct {
	Query      string `json:"query"`
	NotebookID string `json:"notebook_id"`
}

// handleNotebookQuery runs an ad-hoc question against the notebook.
func (s *Server) handleNotebookQuery(w http.ResponseWriter, r *http.Request) {
	var req notebookQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid request body",
		})
		return
	}
	if req.Query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Query parameter is required",
		})
		return
	}

	result := s.content.Query(r.Context(), req.Query, req.NotebookID)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, result)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
