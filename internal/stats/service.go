package stats

import (
	"context"
	"time"

	"gymtrack/internal/apperr"
)

const (
	defaultWindowDays = 30
	topWorkoutsLimit  = 10
)

type Service interface {
	SignupsByMonth(ctx context.Context) ([]MonthlySignups, error)
	UsageByDayOfWeek(ctx context.Context, windowDays int) ([]DayUsage, error)
	PeakHours(ctx context.Context, windowDays int) ([]HourlyCheckIns, error)
	AverageTime(ctx context.Context, windowDays int) (*AverageTime, error)
	TopWorkouts(ctx context.Context, windowDays int) ([]TopWorkout, error)
	CurrentMembers(ctx context.Context) ([]PresentMember, error)
	RetentionRate(ctx context.Context, windowDays int) (*Retention, error)
	AttendanceFrequency(ctx context.Context, windowDays int) ([]FrequencyGroup, error)
	All(ctx context.Context, windowDays int) (*Dashboard, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func windowStart(windowDays int) time.Time {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}
	return time.Now().AddDate(0, 0, -windowDays)
}

func (s *service) SignupsByMonth(ctx context.Context) ([]MonthlySignups, error) {
	rows, err := s.repo.SignupsByMonth(ctx)
	if err != nil {
		return nil, apperr.Dependency("failed to load signup statistics", err)
	}
	return rows, nil
}

func (s *service) UsageByDayOfWeek(ctx context.Context, windowDays int) ([]DayUsage, error) {
	rows, err := s.repo.UsageByDayOfWeek(ctx, windowStart(windowDays))
	if err != nil {
		return nil, apperr.Dependency("failed to load usage statistics", err)
	}
	return rows, nil
}

func (s *service) PeakHours(ctx context.Context, windowDays int) ([]HourlyCheckIns, error) {
	rows, err := s.repo.PeakHours(ctx, windowStart(windowDays))
	if err != nil {
		return nil, apperr.Dependency("failed to load peak hours", err)
	}
	return rows, nil
}

func (s *service) AverageTime(ctx context.Context, windowDays int) (*AverageTime, error) {
	avg, err := s.repo.AverageSessionMinutes(ctx, windowStart(windowDays))
	if err != nil {
		return nil, apperr.Dependency("failed to load average session time", err)
	}
	return &AverageTime{AvgMinutes: avg}, nil
}

func (s *service) TopWorkouts(ctx context.Context, windowDays int) ([]TopWorkout, error) {
	rows, err := s.repo.TopWorkouts(ctx, windowStart(windowDays), topWorkoutsLimit)
	if err != nil {
		return nil, apperr.Dependency("failed to load top workouts", err)
	}
	return rows, nil
}

func (s *service) CurrentMembers(ctx context.Context) ([]PresentMember, error) {
	rows, err := s.repo.CurrentMembers(ctx)
	if err != nil {
		return nil, apperr.Dependency("failed to load current members", err)
	}
	return rows, nil
}

func (s *service) RetentionRate(ctx context.Context, windowDays int) (*Retention, error) {
	retention, err := s.repo.RetentionRate(ctx, windowStart(windowDays))
	if err != nil {
		return nil, apperr.Dependency("failed to load retention rate", err)
	}
	return retention, nil
}

func (s *service) AttendanceFrequency(ctx context.Context, windowDays int) ([]FrequencyGroup, error) {
	rows, err := s.repo.AttendanceFrequency(ctx, windowStart(windowDays))
	if err != nil {
		return nil, apperr.Dependency("failed to load attendance frequency", err)
	}
	return rows, nil
}

// All collects every aggregate in one response for the dashboard.
func (s *service) All(ctx context.Context, windowDays int) (*Dashboard, error) {
	dashboard := &Dashboard{}
	var err error

	if dashboard.SignupsByMonth, err = s.SignupsByMonth(ctx); err != nil {
		return nil, err
	}
	if dashboard.UsageByDayOfWeek, err = s.UsageByDayOfWeek(ctx, windowDays); err != nil {
		return nil, err
	}
	if dashboard.PeakHours, err = s.PeakHours(ctx, windowDays); err != nil {
		return nil, err
	}
	averageTime, err := s.AverageTime(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	dashboard.AverageTime = *averageTime
	if dashboard.TopWorkouts, err = s.TopWorkouts(ctx, windowDays); err != nil {
		return nil, err
	}
	if dashboard.CurrentMembers, err = s.CurrentMembers(ctx); err != nil {
		return nil, err
	}
	retention, err := s.RetentionRate(ctx, windowDays)
	if err != nil {
		return nil, err
	}
	dashboard.RetentionRate = *retention
	if dashboard.AttendanceFrequency, err = s.AttendanceFrequency(ctx, windowDays); err != nil {
		return nil, err
	}

	return dashboard, nil
}
