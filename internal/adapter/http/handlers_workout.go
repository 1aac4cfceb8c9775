package adapthttp

import "net/http"

func (s *Server) handleStartWorkout(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		ProgramID    int64  `json:"programId"`
		ExerciseName string `json:"exerciseName"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.workouts.StartSession(r.Context(), user.ID, req.ProgramID, req.ExerciseName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"workoutId": id})
}

func (s *Server) handleRecordStrengthSet(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		SetNumber int     `json:"setNumber"`
		Reps      int     `json:"reps"`
		Weight    float64 `json:"weight"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.workouts.RecordStrengthSet(r.Context(), user.ID, pathID(r), req.SetNumber, req.Reps, req.Weight)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"setId": id})
}

func (s *Server) handleRecordCardio(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r)

	var req struct {
		DurationMinutes int     `json:"durationMinutes"`
		DistanceKM      float64 `json:"distanceKm"`
	}
	if err := parseJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id, err := s.workouts.RecordCardio(r.Context(), user.ID, pathID(r), req.DurationMinutes, req.DistanceKM)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"setId": id})
}
