package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymtrack/internal/domain"
)

// StartWorkout inserts a new workout row and returns its id.
func (d *DB) StartWorkout(ctx context.Context, w domain.Workout) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO workouts (user_id, program_id, exercise_name, date) VALUES ($1, $2, $3, $4) RETURNING id;",
		w.UserID, w.ProgramID, w.ExerciseName, w.Date,
	).Scan(&id)
	return id, err
}

// GetWorkout returns the owner's workout by id, or nil when absent.
func (d *DB) GetWorkout(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	var w domain.Workout
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, program_id, exercise_name, date FROM workouts WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&w.ID, &w.UserID, &w.ProgramID, &w.ExerciseName, &w.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// AddStrengthSet inserts the set and applies the personal-record rule
// in one transaction, so a crash cannot record the set without the
// record update (or vice versa). Returns domain.ErrNotFound when the
// workout does not exist for the owner.
func (d *DB) AddStrengthSet(ctx context.Context, set domain.WorkoutSet) (_ int64, err error) {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exerciseName string
	err = tx.QueryRowContext(ctx,
		"SELECT exercise_name FROM workouts WHERE id = $1 AND user_id = $2;",
		set.WorkoutID, set.UserID,
	).Scan(&exerciseName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRowContext(ctx,
		"INSERT INTO workout_sets (user_id, workout_id, set_number, reps, weight) VALUES ($1, $2, $3, $4, $5) RETURNING id;",
		set.UserID, set.WorkoutID, set.SetNumber, set.Reps, set.Weight,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert set: %w", err)
	}

	// Strictly greater-than: an equal weight with different reps keeps
	// the stored record.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO personal_records (exercise_name, user_id, max_weight, reps)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (exercise_name, user_id)
			DO UPDATE SET max_weight = EXCLUDED.max_weight, reps = EXCLUDED.reps
			WHERE personal_records.max_weight < EXCLUDED.max_weight;`,
		exerciseName, set.UserID, set.Weight, set.Reps,
	)
	if err != nil {
		return 0, fmt.Errorf("update record: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// AddCardioSet inserts the set without touching personal records.
// Returns domain.ErrNotFound when the workout does not exist for the
// owner.
func (d *DB) AddCardioSet(ctx context.Context, set domain.WorkoutSet) (int64, error) {
	var workoutID int64
	err := d.sql.QueryRowContext(ctx,
		"SELECT id FROM workouts WHERE id = $1 AND user_id = $2;",
		set.WorkoutID, set.UserID,
	).Scan(&workoutID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	var id int64
	err = d.sql.QueryRowContext(ctx,
		"INSERT INTO workout_sets (user_id, workout_id, set_number, reps, weight) VALUES ($1, $2, $3, $4, $5) RETURNING id;",
		set.UserID, set.WorkoutID, set.SetNumber, set.Reps, set.Weight,
	).Scan(&id)
	return id, err
}

// ListHistory returns all sets logged for the named exercise, joined by
// exercise name, ordered by workout date then set number.
func (d *DB) ListHistory(ctx context.Context, userID int64, exerciseName string) ([]domain.HistoryEntry, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT w.date, ws.set_number, ws.reps, ws.weight
			FROM workouts w
			JOIN workout_sets ws ON w.id = ws.workout_id
			WHERE w.exercise_name = $1 AND w.user_id = $2
			ORDER BY w.date ASC, ws.set_number ASC;`,
		exerciseName, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.HistoryEntry
	for rows.Next() {
		var e domain.HistoryEntry
		if err := rows.Scan(&e.Date, &e.SetNumber, &e.Reps, &e.Weight); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
