package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymtrack/internal/app"
	"gymtrack/internal/domain"
)

type mockProgramRepo struct {
	createFn func(ctx context.Context, userID int64, name string, days int, createdAt time.Time) (int64, error)
	getFn    func(ctx context.Context, userID, id int64) (*domain.Program, error)
	listFn   func(ctx context.Context, userID int64) ([]domain.Program, error)
	deleteFn func(ctx context.Context, userID, id int64) (bool, error)
}

func (m *mockProgramRepo) CreateProgram(ctx context.Context, userID int64, name string, days int, createdAt time.Time) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, name, days, createdAt)
	}
	return 1, nil
}

func (m *mockProgramRepo) GetProgram(ctx context.Context, userID, id int64) (*domain.Program, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, id)
	}
	return nil, nil
}

func (m *mockProgramRepo) ListPrograms(ctx context.Context, userID int64) ([]domain.Program, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProgramRepo) DeleteProgram(ctx context.Context, userID, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return false, nil
}

func TestCreateProgram_Validation(t *testing.T) {
	svc := app.NewProgramService(&mockProgramRepo{})

	tests := []struct {
		name     string
		progName string
		days     int
	}{
		{"empty name", "", 3},
		{"zero days", "Push Pull Legs", 0},
		{"too many days", "Push Pull Legs", 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), 1, tc.progName, tc.days)
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateProgram_Success(t *testing.T) {
	repo := &mockProgramRepo{
		createFn: func(_ context.Context, userID int64, name string, days int, _ time.Time) (int64, error) {
			if userID != 1 || name != "Push Pull Legs" || days != 3 {
				t.Fatalf("unexpected args: %d %q %d", userID, name, days)
			}
			return 42, nil
		},
	}
	svc := app.NewProgramService(repo)

	id, err := svc.Create(context.Background(), 1, "Push Pull Legs", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 42 {
		t.Fatalf("unexpected id: %d", id)
	}
}

func TestGetProgram_NotFound(t *testing.T) {
	svc := app.NewProgramService(&mockProgramRepo{})
	_, err := svc.Get(context.Background(), 1, 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPrograms(t *testing.T) {
	repo := &mockProgramRepo{
		listFn: func(_ context.Context, _ int64) ([]domain.Program, error) {
			return []domain.Program{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, nil
		},
	}
	svc := app.NewProgramService(repo)

	got, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected programs: %+v", got)
	}
}

func TestDeleteProgram(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo := &mockProgramRepo{
			deleteFn: func(_ context.Context, _, _ int64) (bool, error) { return true, nil },
		}
		svc := app.NewProgramService(repo)
		if err := svc.Delete(context.Background(), 1, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc := app.NewProgramService(&mockProgramRepo{})
		err := svc.Delete(context.Background(), 1, 5)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		repo := &mockProgramRepo{
			deleteFn: func(_ context.Context, _, _ int64) (bool, error) {
				return false, errors.New("db down")
			},
		}
		svc := app.NewProgramService(repo)
		if err := svc.Delete(context.Background(), 1, 5); err == nil {
			t.Fatal("expected error from repo")
		}
	})
}
