package workout

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymtrack/internal/apperr"
	"gymtrack/internal/metrics"
)

type Service interface {
	Log(ctx context.Context, memberID int, req LogRequest) (*Entry, error)
	History(ctx context.Context, memberID int) ([]Entry, error)
	Stats(ctx context.Context, memberID int) (*Stats, error)
	Recommendations(ctx context.Context, memberID int) ([]GoalRecommendation, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Log(ctx context.Context, memberID int, req LogRequest) (*Entry, error) {
	entry, err := s.repo.Insert(ctx, memberID, req)
	if err != nil {
		return nil, apperr.Dependency("failed to log workout", err)
	}

	metrics.RecordWorkoutLogged()
	return entry, nil
}

func (s *service) History(ctx context.Context, memberID int) ([]Entry, error) {
	entries, err := s.repo.History(ctx, memberID)
	if err != nil {
		return nil, apperr.Dependency("failed to load workout history", err)
	}
	return entries, nil
}

func (s *service) Stats(ctx context.Context, memberID int) (*Stats, error) {
	entries, err := s.repo.History(ctx, memberID)
	if err != nil {
		return nil, apperr.Dependency("failed to load workout history", err)
	}
	return computeStats(entries, time.Now()), nil
}

func (s *service) Recommendations(ctx context.Context, memberID int) ([]GoalRecommendation, error) {
	goals, err := s.repo.FitnessGoals(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to load fitness goals", err)
	}
	return RecommendationsFor(goals), nil
}

// computeStats summarizes a history that is already newest-first.
func computeStats(entries []Entry, now time.Time) *Stats {
	stats := &Stats{
		WorkoutsByType:  map[string]int{},
		RecentWorkouts:  []Entry{},
		MonthlyProgress: map[string]MonthlyProgress{},
	}

	stats.TotalWorkouts = len(entries)
	for _, e := range entries {
		stats.TotalDuration += e.Duration
		stats.WorkoutsByType[e.WorkoutType]++
	}
	if stats.TotalWorkouts > 0 {
		stats.AverageDuration = float64(stats.TotalDuration) / float64(stats.TotalWorkouts)
	}

	if len(entries) > 5 {
		stats.RecentWorkouts = entries[:5]
	} else {
		stats.RecentWorkouts = entries
	}

	for i := 0; i < 6; i++ {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := month.Format("2006-01")

		var progress MonthlyProgress
		for _, e := range entries {
			if e.WorkoutDate.Format("2006-01") != key {
				continue
			}
			progress.TotalWorkouts++
			progress.TotalDuration += e.Duration
		}
		if progress.TotalWorkouts > 0 {
			progress.AverageDuration = float64(progress.TotalDuration) / float64(progress.TotalWorkouts)
		}
		stats.MonthlyProgress[key] = progress
	}

	return stats
}
