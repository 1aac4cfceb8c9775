package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymtrack/internal/domain"
)

// CreateProgram inserts a new program and returns its id.
func (d *DB) CreateProgram(ctx context.Context, userID int64, name string, days int, createdAt time.Time) (int64, error) {
	var id int64
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO programs (user_id, name, days, created_at) VALUES ($1, $2, $3, $4) RETURNING id;",
		userID, name, days, createdAt.UTC(),
	).Scan(&id)
	return id, err
}

// GetProgram returns the owner's program by id, or nil when absent.
func (d *DB) GetProgram(ctx context.Context, userID, id int64) (*domain.Program, error) {
	var p domain.Program
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, user_id, name, days, created_at FROM programs WHERE id = $1 AND user_id = $2;",
		id, userID,
	).Scan(&p.ID, &p.UserID, &p.Name, &p.Days, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPrograms returns the owner's programs in insertion order.
func (d *DB) ListPrograms(ctx context.Context, userID int64) ([]domain.Program, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, user_id, name, days, created_at FROM programs WHERE user_id = $1 ORDER BY id ASC;", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Program
	for rows.Next() {
		var p domain.Program
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Days, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DeleteProgram removes the program row only. Exercises, workouts, and
// sets referencing the program stay behind.
func (d *DB) DeleteProgram(ctx context.Context, userID, id int64) (bool, error) {
	res, err := d.sql.ExecContext(ctx,
		"DELETE FROM programs WHERE id = $1 AND user_id = $2;", id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
