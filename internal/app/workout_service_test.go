package app_test

import (
	"context"
	"errors"
	"testing"

	"gymtrack/internal/app"
	"gymtrack/internal/domain"
)

type mockWorkoutRepo struct {
	startFn    func(ctx context.Context, w domain.Workout) (int64, error)
	getFn      func(ctx context.Context, userID, id int64) (*domain.Workout, error)
	strengthFn func(ctx context.Context, set domain.WorkoutSet) (int64, error)
	cardioFn   func(ctx context.Context, set domain.WorkoutSet) (int64, error)
	historyFn  func(ctx context.Context, userID int64, exerciseName string) ([]domain.HistoryEntry, error)
}

func (m *mockWorkoutRepo) StartWorkout(ctx context.Context, w domain.Workout) (int64, error) {
	if m.startFn != nil {
		return m.startFn(ctx, w)
	}
	return 1, nil
}

func (m *mockWorkoutRepo) GetWorkout(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockWorkoutRepo) AddStrengthSet(ctx context.Context, set domain.WorkoutSet) (int64, error) {
	if m.strengthFn != nil {
		return m.strengthFn(ctx, set)
	}
	return 1, nil
}

func (m *mockWorkoutRepo) AddCardioSet(ctx context.Context, set domain.WorkoutSet) (int64, error) {
	if m.cardioFn != nil {
		return m.cardioFn(ctx, set)
	}
	return 1, nil
}

func (m *mockWorkoutRepo) ListHistory(ctx context.Context, userID int64, exerciseName string) ([]domain.HistoryEntry, error) {
	if m.historyFn != nil {
		return m.historyFn(ctx, userID, exerciseName)
	}
	return nil, nil
}

func benchPressCatalog() *mockExerciseRepo {
	return &mockExerciseRepo{
		findFn: func(_ context.Context, userID, programID int64, name string) (*domain.Exercise, error) {
			if name == "Bench Press" {
				return &domain.Exercise{ID: 1, UserID: userID, ProgramID: programID, Day: 1, Name: name, Kind: domain.KindStrength, TargetSets: 3, TargetReps: 8}, nil
			}
			return nil, nil
		},
	}
}

func TestStartSession(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var started domain.Workout
		repo := &mockWorkoutRepo{
			startFn: func(_ context.Context, w domain.Workout) (int64, error) {
				started = w
				return 11, nil
			},
		}
		svc := app.NewWorkoutService(repo, benchPressCatalog())

		id, err := svc.StartSession(context.Background(), 1, 10, "Bench Press")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 11 {
			t.Fatalf("unexpected workout id: %d", id)
		}
		if started.ExerciseName != "Bench Press" || started.Date == "" {
			t.Fatalf("unexpected workout: %+v", started)
		}
	})

	t.Run("unknown exercise", func(t *testing.T) {
		svc := app.NewWorkoutService(&mockWorkoutRepo{}, benchPressCatalog())
		_, err := svc.StartSession(context.Background(), 1, 10, "Ghost Lift")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		svc := app.NewWorkoutService(&mockWorkoutRepo{}, benchPressCatalog())
		if _, err := svc.StartSession(context.Background(), 1, 10, ""); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestRecordStrengthSet(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		svc := app.NewWorkoutService(&mockWorkoutRepo{}, benchPressCatalog())

		tests := []struct {
			name   string
			setNum int
			reps   int
			weight float64
		}{
			{"zero set number", 0, 5, 100},
			{"zero reps", 1, 0, 100},
			{"negative weight", 1, 5, -1},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.RecordStrengthSet(context.Background(), 1, 11, tc.setNum, tc.reps, tc.weight)
				if err == nil {
					t.Fatal("expected validation error")
				}
			})
		}
	})

	t.Run("success", func(t *testing.T) {
		var recorded domain.WorkoutSet
		repo := &mockWorkoutRepo{
			strengthFn: func(_ context.Context, set domain.WorkoutSet) (int64, error) {
				recorded = set
				return 21, nil
			},
		}
		svc := app.NewWorkoutService(repo, benchPressCatalog())

		id, err := svc.RecordStrengthSet(context.Background(), 1, 11, 2, 5, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 21 {
			t.Fatalf("unexpected set id: %d", id)
		}
		if recorded.WorkoutID != 11 || recorded.SetNumber != 2 || recorded.Reps != 5 || recorded.Weight != 100 {
			t.Fatalf("unexpected set: %+v", recorded)
		}
	})

	t.Run("unknown workout", func(t *testing.T) {
		repo := &mockWorkoutRepo{
			strengthFn: func(_ context.Context, _ domain.WorkoutSet) (int64, error) {
				return 0, domain.ErrNotFound
			},
		}
		svc := app.NewWorkoutService(repo, benchPressCatalog())
		_, err := svc.RecordStrengthSet(context.Background(), 1, 99, 1, 5, 100)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRecordCardio(t *testing.T) {
	t.Run("maps duration and distance onto reps and weight", func(t *testing.T) {
		var recorded domain.WorkoutSet
		repo := &mockWorkoutRepo{
			cardioFn: func(_ context.Context, set domain.WorkoutSet) (int64, error) {
				recorded = set
				return 31, nil
			},
		}
		svc := app.NewWorkoutService(repo, benchPressCatalog())

		if _, err := svc.RecordCardio(context.Background(), 1, 12, 30, 5.2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if recorded.SetNumber != 1 {
			t.Fatalf("cardio set number must be 1, got %d", recorded.SetNumber)
		}
		if recorded.Reps != 30 || recorded.Weight != 5.2 {
			t.Fatalf("unexpected cardio mapping: %+v", recorded)
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc := app.NewWorkoutService(&mockWorkoutRepo{}, benchPressCatalog())
		if _, err := svc.RecordCardio(context.Background(), 1, 12, 0, 5.2); err == nil {
			t.Fatal("expected validation error for zero duration")
		}
		if _, err := svc.RecordCardio(context.Background(), 1, 12, 30, -1); err == nil {
			t.Fatal("expected validation error for negative distance")
		}
	})
}

func TestHistory(t *testing.T) {
	repo := &mockWorkoutRepo{
		historyFn: func(_ context.Context, _ int64, name string) ([]domain.HistoryEntry, error) {
			if name != "Bench Press" {
				t.Fatalf("unexpected exercise name: %s", name)
			}
			return []domain.HistoryEntry{
				{Date: "2026-08-01", SetNumber: 1, Reps: 8, Weight: 80},
				{Date: "2026-08-01", SetNumber: 2, Reps: 6, Weight: 90},
			}, nil
		},
	}
	svc := app.NewWorkoutService(repo, benchPressCatalog())

	got, err := svc.History(context.Background(), 1, "Bench Press")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1].SetNumber != 2 {
		t.Fatalf("unexpected history: %+v", got)
	}
}
