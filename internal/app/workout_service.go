package app

import (
	"context"
	"errors"
	"time"

	"gymtrack/internal/domain"
)

// WorkoutService encapsulates workout-logging use cases. A logging
// session is started explicitly and ended implicitly: every recorded
// set is persisted and committed on its own, so there is no finalize
// step to lose.
type WorkoutService struct {
	workouts  domain.WorkoutRepository
	exercises domain.ExerciseRepository
}

// NewWorkoutService creates a WorkoutService backed by the given
// repositories.
func NewWorkoutService(workouts domain.WorkoutRepository, exercises domain.ExerciseRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts, exercises: exercises}
}

// StartSession opens a logging session for the named exercise and
// returns the workout id the client passes to subsequent record calls.
// The exercise name is stored as-is on the workout row; history lookups
// join on it rather than on the exercise id.
func (s *WorkoutService) StartSession(ctx context.Context, userID, programID int64, exerciseName string) (int64, error) {
	if exerciseName == "" {
		return 0, errors.New("exercise name is required")
	}
	exercise, err := s.exercises.FindExercise(ctx, userID, programID, exerciseName)
	if err != nil {
		return 0, err
	}
	if exercise == nil {
		return 0, domain.ErrNotFound
	}

	return s.workouts.StartWorkout(ctx, domain.Workout{
		UserID:       userID,
		ProgramID:    programID,
		ExerciseName: exerciseName,
		Date:         time.Now().Format("2006-01-02"),
	})
}

// RecordStrengthSet validates and stores one strength set. The set
// insert and the personal-record update happen in a single repository
// operation so a crash cannot leave one without the other.
func (s *WorkoutService) RecordStrengthSet(ctx context.Context, userID, workoutID int64, setNumber, reps int, weight float64) (int64, error) {
	if setNumber < 1 {
		return 0, errors.New("set number must be >= 1")
	}
	if reps < 1 {
		return 0, errors.New("reps must be >= 1")
	}
	if weight < 0 {
		return 0, errors.New("weight must be >= 0")
	}

	return s.workouts.AddStrengthSet(ctx, domain.WorkoutSet{
		UserID:    userID,
		WorkoutID: workoutID,
		SetNumber: setNumber,
		Reps:      reps,
		Weight:    weight,
	})
}

// RecordCardio stores a cardio session as a single set with number 1,
// reusing (reps, weight) as (duration minutes, distance km). Cardio
// never updates personal records.
func (s *WorkoutService) RecordCardio(ctx context.Context, userID, workoutID int64, durationMinutes int, distanceKM float64) (int64, error) {
	if durationMinutes < 1 {
		return 0, errors.New("duration must be >= 1 minute")
	}
	if distanceKM < 0 {
		return 0, errors.New("distance must be >= 0")
	}

	return s.workouts.AddCardioSet(ctx, domain.WorkoutSet{
		UserID:    userID,
		WorkoutID: workoutID,
		SetNumber: 1,
		Reps:      durationMinutes,
		Weight:    distanceKM,
	})
}

// History returns every set ever logged for the named exercise, across
// programs, ordered by date then set number.
func (s *WorkoutService) History(ctx context.Context, userID int64, exerciseName string) ([]domain.HistoryEntry, error) {
	if exerciseName == "" {
		return nil, errors.New("exercise name is required")
	}
	return s.workouts.ListHistory(ctx, userID, exerciseName)
}
