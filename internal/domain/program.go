package domain

import (
	"context"
	"time"
)

// Program is a named, multi-day workout plan owned by one user.
type Program struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Days      int       `json:"days"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProgramRepository is the port for program persistence.
type ProgramRepository interface {
	CreateProgram(ctx context.Context, userID int64, name string, days int, createdAt time.Time) (int64, error)
	GetProgram(ctx context.Context, userID, id int64) (*Program, error)
	// ListPrograms returns the owner's programs in insertion order
	// (ascending id).
	ListPrograms(ctx context.Context, userID int64) ([]Program, error)
	// DeleteProgram removes the program row only. Exercises, workouts,
	// and sets that reference the program are left in place.
	DeleteProgram(ctx context.Context, userID, id int64) (bool, error)
}
