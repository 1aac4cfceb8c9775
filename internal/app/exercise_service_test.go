package app_test

import (
	"context"
	"errors"
	"testing"

	"gymtrack/internal/app"
	"gymtrack/internal/domain"
)

type mockExerciseRepo struct {
	addFn  func(ctx context.Context, e domain.Exercise) (int64, error)
	listFn func(ctx context.Context, userID, programID int64, day int) ([]domain.Exercise, error)
	findFn func(ctx context.Context, userID, programID int64, name string) (*domain.Exercise, error)
}

func (m *mockExerciseRepo) AddExercise(ctx context.Context, e domain.Exercise) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, e)
	}
	return 1, nil
}

func (m *mockExerciseRepo) ListExercises(ctx context.Context, userID, programID int64, day int) ([]domain.Exercise, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, programID, day)
	}
	return nil, nil
}

func (m *mockExerciseRepo) FindExercise(ctx context.Context, userID, programID int64, name string) (*domain.Exercise, error) {
	if m.findFn != nil {
		return m.findFn(ctx, userID, programID, name)
	}
	return nil, nil
}

func threeDayProgramRepo() *mockProgramRepo {
	return &mockProgramRepo{
		getFn: func(_ context.Context, userID, id int64) (*domain.Program, error) {
			if id == 10 {
				return &domain.Program{ID: 10, UserID: userID, Name: "PPL", Days: 3}, nil
			}
			return nil, nil
		},
	}
}

func TestAddExercise_Validation(t *testing.T) {
	svc := app.NewExerciseService(&mockExerciseRepo{}, threeDayProgramRepo())

	tests := []struct {
		name string
		day  int
		ex   string
		kind string
		sets int
		reps int
	}{
		{"empty name", 1, "", domain.KindStrength, 3, 8},
		{"bad kind", 1, "Bench Press", "Mobility", 3, 8},
		{"day zero", 0, "Bench Press", domain.KindStrength, 3, 8},
		{"day beyond program", 4, "Bench Press", domain.KindStrength, 3, 8},
		{"strength without targets", 1, "Bench Press", domain.KindStrength, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), 1, 10, tc.day, tc.ex, tc.kind, tc.sets, tc.reps)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestAddExercise_ProgramNotFound(t *testing.T) {
	svc := app.NewExerciseService(&mockExerciseRepo{}, threeDayProgramRepo())
	_, err := svc.Add(context.Background(), 1, 99, 1, "Bench Press", domain.KindStrength, 3, 8)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddExercise_Strength(t *testing.T) {
	var added domain.Exercise
	repo := &mockExerciseRepo{
		addFn: func(_ context.Context, e domain.Exercise) (int64, error) {
			added = e
			return 5, nil
		},
	}
	svc := app.NewExerciseService(repo, threeDayProgramRepo())

	id, err := svc.Add(context.Background(), 1, 10, 2, "Bench Press", domain.KindStrength, 3, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 5 {
		t.Fatalf("unexpected id: %d", id)
	}
	if added.TargetSets != 3 || added.TargetReps != 8 || added.Day != 2 {
		t.Fatalf("unexpected exercise: %+v", added)
	}
}

func TestAddExercise_CardioIgnoresTargets(t *testing.T) {
	var added domain.Exercise
	repo := &mockExerciseRepo{
		addFn: func(_ context.Context, e domain.Exercise) (int64, error) {
			added = e
			return 6, nil
		},
	}
	svc := app.NewExerciseService(repo, threeDayProgramRepo())

	if _, err := svc.Add(context.Background(), 1, 10, 1, "Treadmill", domain.KindCardio, 5, 12); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added.TargetSets != 0 || added.TargetReps != 0 {
		t.Fatalf("cardio targets should be zeroed, got %+v", added)
	}
}

func TestFindExercise(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &mockExerciseRepo{
			findFn: func(_ context.Context, _, _ int64, name string) (*domain.Exercise, error) {
				return &domain.Exercise{ID: 3, Name: name, Kind: domain.KindStrength}, nil
			},
		}
		svc := app.NewExerciseService(repo, threeDayProgramRepo())
		got, err := svc.Find(context.Background(), 1, 10, "Bench Press")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 3 {
			t.Fatalf("unexpected exercise: %+v", got)
		}
	})

	t.Run("absent", func(t *testing.T) {
		svc := app.NewExerciseService(&mockExerciseRepo{}, threeDayProgramRepo())
		_, err := svc.Find(context.Background(), 1, 10, "Ghost")
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
