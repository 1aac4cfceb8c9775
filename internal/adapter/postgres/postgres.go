// Package postgres implements the domain repositories using PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL, pings, and runs migrations.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	d := &DB{sql: s}
	if err := d.migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) migrate(ctx context.Context) error {
	// programs, exercises, and workouts deliberately carry no foreign
	// keys between each other: deleting a program must leave its
	// exercises and workout history behind, and workouts reference
	// exercises by name rather than id.
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS users (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, age INT NOT NULL, weight DOUBLE PRECISION NOT NULL, mail TEXT UNIQUE NOT NULL, password_hash TEXT NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE TABLE IF NOT EXISTS sessions (token TEXT PRIMARY KEY, user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE, expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);",
		"CREATE TABLE IF NOT EXISTS programs (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL, name TEXT NOT NULL, days INT NOT NULL CHECK(days BETWEEN 1 AND 7), created_at TIMESTAMPTZ NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_programs_user_id ON programs(user_id);",
		"CREATE TABLE IF NOT EXISTS exercises (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL, program_id BIGINT NOT NULL, day INT NOT NULL, name TEXT NOT NULL, kind TEXT NOT NULL CHECK(kind IN ('Strength','Cardio')), target_sets INT NOT NULL DEFAULT 0, target_reps INT NOT NULL DEFAULT 0);",
		"CREATE INDEX IF NOT EXISTS idx_exercises_program_day ON exercises(user_id, program_id, day);",
		"CREATE TABLE IF NOT EXISTS workouts (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL, program_id BIGINT NOT NULL, exercise_name TEXT NOT NULL, date TEXT NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_workouts_exercise ON workouts(user_id, exercise_name);",
		"CREATE TABLE IF NOT EXISTS workout_sets (id BIGSERIAL PRIMARY KEY, user_id BIGINT NOT NULL, workout_id BIGINT NOT NULL, set_number INT NOT NULL, reps INT NOT NULL, weight DOUBLE PRECISION NOT NULL);",
		"CREATE INDEX IF NOT EXISTS idx_workout_sets_workout_id ON workout_sets(workout_id);",
		"CREATE TABLE IF NOT EXISTS personal_records (exercise_name TEXT NOT NULL, user_id BIGINT NOT NULL, max_weight DOUBLE PRECISION NOT NULL, reps INT NOT NULL DEFAULT 0, PRIMARY KEY (exercise_name, user_id));",
	}

	for _, stmt := range stmts {
		if _, err := d.sql.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
