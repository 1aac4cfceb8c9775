package app

import (
	"context"

	"gymtrack/internal/domain"
)

// StatsService composes the catalog, record, and workout repositories
// into the read views: a per-day overview of a program and the detail
// view of one exercise.
type StatsService struct {
	programs  domain.ProgramRepository
	exercises domain.ExerciseRepository
	records   domain.RecordRepository
	workouts  domain.WorkoutRepository
}

// NewStatsService creates a StatsService backed by the given repositories.
func NewStatsService(programs domain.ProgramRepository, exercises domain.ExerciseRepository, records domain.RecordRepository, workouts domain.WorkoutRepository) *StatsService {
	return &StatsService{programs: programs, exercises: exercises, records: records, workouts: workouts}
}

// ExerciseOverview is one exercise within a program overview, with its
// personal record attached when one exists.
type ExerciseOverview struct {
	Exercise domain.Exercise        `json:"exercise"`
	Record   *domain.PersonalRecord `json:"record,omitempty"`
}

// DaySection groups a program day's exercises.
type DaySection struct {
	Day       int                `json:"day"`
	Exercises []ExerciseOverview `json:"exercises"`
}

// ProgramOverview returns the program with its exercises grouped by
// day, 1 through the program's day count, each with its personal record.
func (s *StatsService) ProgramOverview(ctx context.Context, userID, programID int64) (*domain.Program, []DaySection, error) {
	program, err := s.programs.GetProgram(ctx, userID, programID)
	if err != nil {
		return nil, nil, err
	}
	if program == nil {
		return nil, nil, domain.ErrNotFound
	}

	sections := make([]DaySection, 0, program.Days)
	for day := 1; day <= program.Days; day++ {
		exercises, err := s.exercises.ListExercises(ctx, userID, programID, day)
		if err != nil {
			return nil, nil, err
		}

		section := DaySection{Day: day, Exercises: make([]ExerciseOverview, 0, len(exercises))}
		for _, e := range exercises {
			record, err := s.records.GetRecord(ctx, userID, e.Name)
			if err != nil {
				return nil, nil, err
			}
			section.Exercises = append(section.Exercises, ExerciseOverview{Exercise: e, Record: record})
		}
		sections = append(sections, section)
	}
	return program, sections, nil
}

// ExerciseDetail is the full detail view of one exercise: its catalog
// entry, personal record, and complete workout history.
type ExerciseDetail struct {
	Exercise *domain.Exercise       `json:"exercise"`
	Record   *domain.PersonalRecord `json:"record,omitempty"`
	History  []domain.HistoryEntry  `json:"history"`
}

// GetExerciseDetail returns the detail view for the named exercise
// within a program. The record and history are keyed by name, so they
// survive program deletion and show up under any program that has an
// exercise with the same name.
func (s *StatsService) GetExerciseDetail(ctx context.Context, userID, programID int64, exerciseName string) (*ExerciseDetail, error) {
	exercise, err := s.exercises.FindExercise(ctx, userID, programID, exerciseName)
	if err != nil {
		return nil, err
	}
	if exercise == nil {
		return nil, domain.ErrNotFound
	}

	record, err := s.records.GetRecord(ctx, userID, exerciseName)
	if err != nil {
		return nil, err
	}

	history, err := s.workouts.ListHistory(ctx, userID, exerciseName)
	if err != nil {
		return nil, err
	}

	return &ExerciseDetail{Exercise: exercise, Record: record, History: history}, nil
}
