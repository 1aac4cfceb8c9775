// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gymtrack/internal/domain"
)

// DB implements all domain repositories in memory. A single mutex
// guards every table, so the multi-step operations (e.g. strength set
// plus record update) are atomic like their transactional postgres
// counterparts.
type DB struct {
	mu        sync.Mutex
	users     []*domain.User
	sessions  map[string]*domain.Session
	programs  []domain.Program
	exercises []domain.Exercise
	workouts  []domain.Workout
	sets      []domain.WorkoutSet
	records   map[recordKey]domain.PersonalRecord

	userIDCounter     int64
	programIDCounter  int64
	exerciseIDCounter int64
	workoutIDCounter  int64
	setIDCounter      int64
}

type recordKey struct {
	userID       int64
	exerciseName string
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		sessions: make(map[string]*domain.Session),
		records:  make(map[recordKey]domain.PersonalRecord),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)
var _ domain.ProgramRepository = (*DB)(nil)
var _ domain.ExerciseRepository = (*DB)(nil)
var _ domain.WorkoutRepository = (*DB)(nil)
var _ domain.RecordRepository = (*DB)(nil)

// --- UserRepository ---

// GetByEmail retrieves a user by email (exact match).
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// Create creates a new user, rejecting duplicate emails.
func (db *DB) Create(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == nu.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Name:         nu.Name,
		Age:          nu.Age,
		WeightKG:     nu.WeightKG,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	db.users = append(db.users, u)
	return u, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create creates a new session.
func (r *SessionRepo) Create(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}

// --- ProgramRepository ---

// CreateProgram inserts a new program.
func (db *DB) CreateProgram(ctx context.Context, userID int64, name string, days int, createdAt time.Time) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.programIDCounter++
	db.programs = append(db.programs, domain.Program{
		ID:        db.programIDCounter,
		UserID:    userID,
		Name:      name,
		Days:      days,
		CreatedAt: createdAt.UTC(),
	})
	return db.programIDCounter, nil
}

// GetProgram returns the owner's program by id.
func (db *DB) GetProgram(ctx context.Context, userID, id int64) (*domain.Program, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.programs {
		p := db.programs[i]
		if p.ID == id && p.UserID == userID {
			return &p, nil
		}
	}
	return nil, nil
}

// ListPrograms returns the owner's programs in insertion order.
func (db *DB) ListPrograms(ctx context.Context, userID int64) ([]domain.Program, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Program
	for _, p := range db.programs {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// DeleteProgram removes the program row only. Exercises, workouts, and
// sets referencing the program are left untouched.
func (db *DB) DeleteProgram(ctx context.Context, userID, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, p := range db.programs {
		if p.ID == id && p.UserID == userID {
			db.programs = append(db.programs[:i], db.programs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- ExerciseRepository ---

// AddExercise inserts a new exercise.
func (db *DB) AddExercise(ctx context.Context, e domain.Exercise) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.exerciseIDCounter++
	e.ID = db.exerciseIDCounter
	db.exercises = append(db.exercises, e)
	return e.ID, nil
}

// ListExercises returns a program's exercises in insertion order. day 0
// means all days.
func (db *DB) ListExercises(ctx context.Context, userID, programID int64, day int) ([]domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Exercise
	for _, e := range db.exercises {
		if e.UserID != userID || e.ProgramID != programID {
			continue
		}
		if day > 0 && e.Day != day {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// FindExercise looks an exercise up by name; the lowest id wins.
func (db *DB) FindExercise(ctx context.Context, userID, programID int64, name string) (*domain.Exercise, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.exercises {
		e := db.exercises[i]
		if e.UserID == userID && e.ProgramID == programID && e.Name == name {
			return &e, nil
		}
	}
	return nil, nil
}

// --- WorkoutRepository ---

// StartWorkout inserts a new workout row.
func (db *DB) StartWorkout(ctx context.Context, w domain.Workout) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.workoutIDCounter++
	w.ID = db.workoutIDCounter
	db.workouts = append(db.workouts, w)
	return w.ID, nil
}

// GetWorkout returns the owner's workout by id.
func (db *DB) GetWorkout(ctx context.Context, userID, id int64) (*domain.Workout, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if w := db.findWorkout(userID, id); w != nil {
		ret := *w
		return &ret, nil
	}
	return nil, nil
}

func (db *DB) findWorkout(userID, id int64) *domain.Workout {
	for i := range db.workouts {
		w := &db.workouts[i]
		if w.ID == id && w.UserID == userID {
			return w
		}
	}
	return nil
}

// AddStrengthSet inserts the set and applies the personal-record rule
// under one lock.
func (db *DB) AddStrengthSet(ctx context.Context, set domain.WorkoutSet) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	w := db.findWorkout(set.UserID, set.WorkoutID)
	if w == nil {
		return 0, domain.ErrNotFound
	}

	db.setIDCounter++
	set.ID = db.setIDCounter
	db.sets = append(db.sets, set)

	key := recordKey{userID: set.UserID, exerciseName: w.ExerciseName}
	if current, ok := db.records[key]; !ok || set.Weight > current.MaxWeight {
		db.records[key] = domain.PersonalRecord{
			ExerciseName: w.ExerciseName,
			UserID:       set.UserID,
			MaxWeight:    set.Weight,
			Reps:         set.Reps,
		}
	}
	return set.ID, nil
}

// AddCardioSet inserts the set without touching personal records.
func (db *DB) AddCardioSet(ctx context.Context, set domain.WorkoutSet) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.findWorkout(set.UserID, set.WorkoutID) == nil {
		return 0, domain.ErrNotFound
	}

	db.setIDCounter++
	set.ID = db.setIDCounter
	db.sets = append(db.sets, set)
	return set.ID, nil
}

// ListHistory returns all sets for the named exercise ordered by
// workout date then set number.
func (db *DB) ListHistory(ctx context.Context, userID int64, exerciseName string) ([]domain.HistoryEntry, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	dates := make(map[int64]string)
	for _, w := range db.workouts {
		if w.UserID == userID && w.ExerciseName == exerciseName {
			dates[w.ID] = w.Date
		}
	}

	var out []domain.HistoryEntry
	for _, s := range db.sets {
		date, ok := dates[s.WorkoutID]
		if !ok || s.UserID != userID {
			continue
		}
		out = append(out, domain.HistoryEntry{
			Date:      date,
			SetNumber: s.SetNumber,
			Reps:      s.Reps,
			Weight:    s.Weight,
		})
	}

	// Dates are yyyy-mm-dd strings, so lexicographic order is
	// chronological order.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].SetNumber < out[j].SetNumber
	})
	return out, nil
}

// --- RecordRepository ---

// GetRecord returns the personal record for (user, exercise name).
func (db *DB) GetRecord(ctx context.Context, userID int64, exerciseName string) (*domain.PersonalRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if r, ok := db.records[recordKey{userID: userID, exerciseName: exerciseName}]; ok {
		ret := r
		return &ret, nil
	}
	return nil, nil
}

// UpsertIfBetter replaces the record iff weight strictly exceeds the
// stored max.
func (db *DB) UpsertIfBetter(ctx context.Context, userID int64, exerciseName string, weight float64, reps int) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	key := recordKey{userID: userID, exerciseName: exerciseName}
	if current, ok := db.records[key]; !ok || weight > current.MaxWeight {
		db.records[key] = domain.PersonalRecord{
			ExerciseName: exerciseName,
			UserID:       userID,
			MaxWeight:    weight,
			Reps:         reps,
		}
	}
	return nil
}
