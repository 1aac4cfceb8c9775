package app

import (
	"context"
	"errors"
	"time"

	"gymtrack/internal/domain"
)

// ProgramService encapsulates workout-program use cases.
type ProgramService struct {
	repo domain.ProgramRepository
}

// NewProgramService creates a ProgramService backed by the given repository.
func NewProgramService(repo domain.ProgramRepository) *ProgramService {
	return &ProgramService{repo: repo}
}

// Create validates and stores a new program, returning its id. An empty
// name is rejected with an explicit error rather than silently skipped.
func (s *ProgramService) Create(ctx context.Context, userID int64, name string, days int) (int64, error) {
	if name == "" {
		return 0, errors.New("program name is required")
	}
	if days < 1 || days > 7 {
		return 0, errors.New("days must be between 1 and 7")
	}
	return s.repo.CreateProgram(ctx, userID, name, days, time.Now())
}

// Get returns the owner's program by id.
func (s *ProgramService) Get(ctx context.Context, userID, id int64) (*domain.Program, error) {
	p, err := s.repo.GetProgram(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// List returns the owner's programs in the order they were created.
func (s *ProgramService) List(ctx context.Context, userID int64) ([]domain.Program, error) {
	return s.repo.ListPrograms(ctx, userID)
}

// Delete removes the program row. Exercises and workout history that
// reference the program are deliberately left behind as historical
// remnants.
func (s *ProgramService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.DeleteProgram(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}
