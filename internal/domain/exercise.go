package domain

import "context"

// Exercise kinds. Strength exercises carry target sets/reps, Cardio
// exercises do not.
const (
	KindStrength = "Strength"
	KindCardio   = "Cardio"
)

// Exercise is a named movement assigned to one day within a program.
type Exercise struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	ProgramID  int64  `json:"programId"`
	Day        int    `json:"day"`
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	TargetSets int    `json:"targetSets,omitempty"`
	TargetReps int    `json:"targetReps,omitempty"`
}

// ExerciseRepository is the port for exercise persistence.
type ExerciseRepository interface {
	AddExercise(ctx context.Context, e Exercise) (int64, error)
	// ListExercises returns the program's exercises in insertion order.
	// day 0 means all days.
	ListExercises(ctx context.Context, userID, programID int64, day int) ([]Exercise, error)
	// FindExercise looks an exercise up by name within a program. Names
	// are not unique; the lowest id wins when duplicates exist.
	FindExercise(ctx context.Context, userID, programID int64, name string) (*Exercise, error)
}
