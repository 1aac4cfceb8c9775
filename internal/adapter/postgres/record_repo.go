package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gymtrack/internal/domain"
)

// GetRecord returns the personal record for (user, exercise name), or
// nil when none has been logged.
func (d *DB) GetRecord(ctx context.Context, userID int64, exerciseName string) (*domain.PersonalRecord, error) {
	var r domain.PersonalRecord
	err := d.sql.QueryRowContext(ctx,
		"SELECT exercise_name, user_id, max_weight, reps FROM personal_records WHERE exercise_name = $1 AND user_id = $2;",
		exerciseName, userID,
	).Scan(&r.ExerciseName, &r.UserID, &r.MaxWeight, &r.Reps)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpsertIfBetter replaces the stored record iff weight strictly exceeds
// the stored max. One statement, so the comparison and replace are
// atomic.
func (d *DB) UpsertIfBetter(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO personal_records (exercise_name, user_id, max_weight, reps)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (exercise_name, user_id)
			DO UPDATE SET max_weight = EXCLUDED.max_weight, reps = EXCLUDED.reps
			WHERE personal_records.max_weight < EXCLUDED.max_weight;`,
		exerciseName, userID, weight, reps,
	)
	return err
}
