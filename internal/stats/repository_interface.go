package stats

import (
	"context"
	"time"
)

// Repository runs the read-only aggregates. Every windowed query takes
// an explicit cutoff so callers control the trailing window.
type Repository interface {
	SignupsByMonth(ctx context.Context) ([]MonthlySignups, error)
	UsageByDayOfWeek(ctx context.Context, since time.Time) ([]DayUsage, error)
	PeakHours(ctx context.Context, since time.Time) ([]HourlyCheckIns, error)
	AverageSessionMinutes(ctx context.Context, since time.Time) (float64, error)
	TopWorkouts(ctx context.Context, since time.Time, limit int) ([]TopWorkout, error)
	CurrentMembers(ctx context.Context) ([]PresentMember, error)
	RetentionRate(ctx context.Context, since time.Time) (*Retention, error)
	AttendanceFrequency(ctx context.Context, since time.Time) ([]FrequencyGroup, error)
}
