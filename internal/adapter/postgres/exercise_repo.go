package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gymtrack/internal/domain"
)

// AddExercise inserts a new exercise and returns its id.
func (d *DB) AddExercise(ctx context.Context, e domain.Exercise) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO exercises (user_id, program_id, day, name, kind, target_sets, target_reps) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;",
		e.UserID, e.ProgramID, e.Day, e.Name, e.Kind, e.TargetSets, e.TargetReps,
	).Scan(&id)
	return id, err
}

// ListExercises returns a program's exercises in insertion order,
// optionally filtered to one day (day 0 means all days).
func (d *DB) ListExercises(ctx context.Context, userID, programID int64, day int) ([]domain.Exercise, error) {
	query := "SELECT id, user_id, program_id, day, name, kind, target_sets, target_reps FROM exercises WHERE user_id = $1 AND program_id = $2"
	args := []any{userID, programID}
	if day > 0 {
		query += " AND day = $3"
		args = append(args, day)
	}
	query += " ORDER BY id ASC;"

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProgramID, &e.Day, &e.Name, &e.Kind, &e.TargetSets, &e.TargetReps); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// FindExercise looks an exercise up by name within a program. Duplicate
// names resolve to the lowest id.
func (d *DB) FindExercise(ctx context.Context, userID, programID int64, name string) (*domain.Exercise, error) {
	var e domain.Exercise
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, program_id, day, name, kind, target_sets, target_reps FROM exercises WHERE user_id = $1 AND program_id = $2 AND name = $3 ORDER BY id ASC LIMIT 1;",
		userID, programID, name,
	).Scan(&e.ID, &e.UserID, &e.ProgramID, &e.Day, &e.Name, &e.Kind, &e.TargetSets, &e.TargetReps)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
