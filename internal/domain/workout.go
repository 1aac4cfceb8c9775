package domain

import "context"

// Workout is one dated logging session for a specific exercise. The
// exercise is referenced by name, not id: renaming or deleting an
// exercise leaves its history behind under the old name.
type Workout struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"userId"`
	ProgramID    int64  `json:"programId"`
	ExerciseName string `json:"exerciseName"`
	Date         string `json:"date"`
}

// WorkoutSet is one recorded entry within a workout. For cardio
// workouts set_number is fixed to 1 and (Reps, Weight) store
// (duration minutes, distance km) instead.
type WorkoutSet struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"userId"`
	WorkoutID int64   `json:"workoutId"`
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// HistoryEntry is one set of an exercise's workout history, joined to
// its workout date.
type HistoryEntry struct {
	Date      string  `json:"date"`
	SetNumber int     `json:"setNumber"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// WorkoutRepository is the port for workout and set persistence.
type WorkoutRepository interface {
	StartWorkout(ctx context.Context, w Workout) (int64, error)
	GetWorkout(ctx context.Context, userID, id int64) (*Workout, error)
	// AddStrengthSet inserts the set and applies the personal-record
	// rule (replace iff weight strictly exceeds the stored max) in one
	// atomic operation.
	AddStrengthSet(ctx context.Context, set WorkoutSet) (int64, error)
	// AddCardioSet inserts the set without touching personal records.
	AddCardioSet(ctx context.Context, set WorkoutSet) (int64, error)
	// ListHistory returns all sets ever logged for the named exercise,
	// ordered by workout date then set number.
	ListHistory(ctx context.Context, userID int64, exerciseName string) ([]HistoryEntry, error)
}
