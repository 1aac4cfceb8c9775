package app

import (
	"context"
	"errors"
	"fmt"

	"gymtrack/internal/domain"
)

// ExerciseService encapsulates exercise-catalog use cases.
type ExerciseService struct {
	exercises domain.ExerciseRepository
	programs  domain.ProgramRepository
}

// NewExerciseService creates an ExerciseService backed by the given
// repositories. The program repository is needed to validate day
// numbers against the owning program's day count.
func NewExerciseService(exercises domain.ExerciseRepository, programs domain.ProgramRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises, programs: programs}
}

// Add validates and stores a new exercise, returning its id. The day
// must fall within the owning program's day count. Strength exercises
// require positive target sets/reps; for cardio both are ignored and
// stored as zero.
func (s *ExerciseService) Add(ctx context.Context, userID, programID int64, day int, name, kind string, targetSets, targetReps int) (int64, error) {
	if name == "" {
		return 0, errors.New("exercise name is required")
	}
	if kind != domain.KindStrength && kind != domain.KindCardio {
		return 0, fmt.Errorf("kind must be %q or %q", domain.KindStrength, domain.KindCardio)
	}

	program, err := s.programs.GetProgram(ctx, userID, programID)
	if err != nil {
		return 0, err
	}
	if program == nil {
		return 0, domain.ErrNotFound
	}
	if day < 1 || day > program.Days {
		return 0, fmt.Errorf("day must be between 1 and %d", program.Days)
	}

	if kind == domain.KindStrength {
		if targetSets < 1 || targetReps < 1 {
			return 0, errors.New("strength exercises require target sets and reps")
		}
	} else {
		targetSets, targetReps = 0, 0
	}

	return s.exercises.AddExercise(ctx, domain.Exercise{
		UserID:     userID,
		ProgramID:  programID,
		Day:        day,
		Name:       name,
		Kind:       kind,
		TargetSets: targetSets,
		TargetReps: targetReps,
	})
}

// ListByProgram returns the program's exercises in insertion order,
// optionally filtered to a single day (day 0 means all days).
func (s *ExerciseService) ListByProgram(ctx context.Context, userID, programID int64, day int) ([]domain.Exercise, error) {
	return s.exercises.ListExercises(ctx, userID, programID, day)
}

// Find looks an exercise up by name within a program. Duplicate names
// are possible; the earliest added wins.
func (s *ExerciseService) Find(ctx context.Context, userID, programID int64, name string) (*domain.Exercise, error) {
	e, err := s.exercises.FindExercise(ctx, userID, programID, name)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}
