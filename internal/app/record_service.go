package app

import (
	"context"
	"errors"

	"gymtrack/internal/domain"
)

// RecordService encapsulates personal-record use cases. Records are
// keyed by (user, exercise name); only the single best observation
// survives.
type RecordService struct {
	repo domain.RecordRepository
}

// NewRecordService creates a RecordService backed by the given repository.
func NewRecordService(repo domain.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

// Get returns the stored record for the named exercise, or
// domain.ErrNotFound if none has been logged yet.
func (s *RecordService) Get(ctx context.Context, userID int64, exerciseName string) (*domain.PersonalRecord, error) {
	if exerciseName == "" {
		return nil, errors.New("exercise name is required")
	}
	r, err := s.repo.GetRecord(ctx, userID, exerciseName)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return r, nil
}

// UpsertIfBetter replaces the stored record iff weight strictly exceeds
// the stored max. An equal weight with more reps does not replace.
func (s *RecordService) UpsertIfBetter(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) error {
	if exerciseName == "" {
		return errors.New("exercise name is required")
	}
	if weight < 0 {
		return errors.New("weight must be >= 0")
	}
	if reps < 1 {
		return errors.New("reps must be >= 1")
	}
	return s.repo.UpsertIfBetter(ctx, userID, exerciseName, weight, reps)
}
