package domain

import "context"

// PersonalRecord is the best (maximum weight) strength result ever
// logged for a (user, exercise name) pair. At most one record exists
// per pair; it is replaced, not merged.
type PersonalRecord struct {
	ExerciseName string  `json:"exerciseName"`
	UserID       int64   `json:"userId"`
	MaxWeight    float64 `json:"maxWeight"`
	Reps         int     `json:"reps"`
}

// RecordRepository is the port for personal-record persistence.
type RecordRepository interface {
	GetRecord(ctx context.Context, userID int64, exerciseName string) (*PersonalRecord, error)
	// UpsertIfBetter replaces the stored record iff weight is strictly
	// greater than the stored max. Equal weight never replaces, so the
	// first set to reach a given weight keeps its rep count.
	UpsertIfBetter(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) error
}
