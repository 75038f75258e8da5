package stats

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestRepositorySignupsByMonth(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`to_char\(created_at, 'YYYY-MM'\) AS month`).
		WillReturnRows(sqlmock.NewRows([]string{"month", "count"}).
			AddRow("2026-01", 24).
			AddRow("2026-02", 36))

	rows, err := repo.SignupsByMonth(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2026-01", rows[0].Month)
	assert.Equal(t, 36, rows[1].Count)
}

func TestRepositoryUsageByDayOfWeekNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`extract\(DOW FROM check_in_time\)`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week", "total_visits", "unique_members"}).
			AddRow(0, 145, 78).
			AddRow(1, 210, 120).
			AddRow(6, 156, 89))

	rows, err := repo.UsageByDayOfWeek(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Sunday", rows[0].DayName)
	assert.Equal(t, "Monday", rows[1].DayName)
	assert.Equal(t, "Saturday", rows[2].DayName)
}

func TestRepositoryAverageSessionMinutesEmptyWindow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`COALESCE\(avg`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"avg_minutes"}).AddRow(0.0))

	avg, err := repo.AverageSessionMinutes(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 0.0, avg)
}

func TestRepositoryTopWorkouts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`ORDER BY avg_calories DESC, workout_type ASC\s+LIMIT \$2`).
		WithArgs(since, 10).
		WillReturnRows(sqlmock.NewRows([]string{"workout_type", "avg_calories", "member_count"}).
			AddRow("hiit", 520, 87).
			AddRow("powerlifting", 480, 65))

	rows, err := repo.TopWorkouts(context.Background(), since, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hiit", rows[0].WorkoutType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryRetentionRateZeroDenominator(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	// NULLIF turns 0 eligible members into a 0 rate, not an error.
	mock.ExpectQuery(`NULLIF`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"active_count", "total_count", "retention_rate"}).
			AddRow(0, 0, 0.0))

	retention, err := repo.RetentionRate(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 0.0, retention.RetentionRate)
	assert.Equal(t, 0, retention.TotalCount)
}

func TestRepositoryAttendanceFrequency(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	since := time.Now().AddDate(0, 0, -30)
	mock.ExpectQuery(`WHEN visit_count >= 20 THEN '5\+ times per week'`).
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"frequency_group", "member_count"}).
			AddRow("5+ times per week", 87).
			AddRow("3-4 times per week", 156).
			AddRow("Less than once a week", 124))

	rows, err := repo.AttendanceFrequency(context.Background(), since)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "5+ times per week", rows[0].FrequencyGroup)
}
