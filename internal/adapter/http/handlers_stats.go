package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"gymtrack/internal/domain"
)

func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	record, err := s.records.Get(r.Context(), user.ID, r.URL.Query().Get("exercise"))
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"record": record})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	history, err := s.workouts.History(r.Context(), user.ID, r.URL.Query().Get("exercise"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": history})
}

func (s *Server) handleProgramOverview(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	program, days, err := s.stats.ProgramOverview(r.Context(), user.ID, pathID(r))
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"program": program, "days": days})
}

func (s *Server) handleExerciseDetail(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	programID, err := strconv.ParseInt(r.URL.Query().Get("program"), 10, 64)
	if err != nil || programID <= 0 {
		writeError(w, http.StatusBadRequest, errors.New("program query parameter is required"))
		return
	}

	detail, err := s.stats.GetExerciseDetail(r.Context(), user.ID, programID, r.URL.Query().Get("name"))
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
