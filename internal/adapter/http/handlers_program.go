package adapthttp

import (
	"errors"
	"net/http"

	"gymtrack/internal/domain"
)

func (s *Server) handleListPrograms(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	programs, err := s.programs.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": programs})
}

func (s *Server) handleCreateProgram(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		Name string `json:"name"`
		Days int    `json:"days"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.programs.Create(r.Context(), user.ID, req.Name, req.Days)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleGetProgram(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	program, err := s.programs.Get(r.Context(), user.ID, pathID(r))
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"program": program})
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	if err := s.programs.Delete(r.Context(), user.ID, pathID(r)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
