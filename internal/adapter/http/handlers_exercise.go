package adapthttp

import (
	"errors"
	"net/http"

	"gymtrack/internal/domain"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)
	day := intQuery(r, "day", 0)

	exercises, err := s.exercises.ListByProgram(r.Context(), user.ID, pathID(r), day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": exercises})
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		Day        int    `json:"day"`
		Name       string `json:"name"`
		Kind       string `json:"kind"`
		TargetSets int    `json:"targetSets"`
		TargetReps int    `json:"targetReps"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.exercises.Add(r.Context(), user.ID, pathID(r), req.Day, req.Name, req.Kind, req.TargetSets, req.TargetReps)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Server) handleFindExercise(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	name := r.URL.Query().Get("name")
	exercise, err := s.exercises.Find(r.Context(), user.ID, pathID(r), name)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercise": exercise})
}
