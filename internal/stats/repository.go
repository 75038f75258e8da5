package stats

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SignupsByMonth(ctx context.Context) ([]MonthlySignups, error) {
	query := `
		SELECT to_char(created_at, 'YYYY-MM') AS month, count(*) AS count
		FROM members
		WHERE created_at >= date_trunc('year', current_date)
		GROUP BY month
		ORDER BY month`

	rows := []MonthlySignups{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) UsageByDayOfWeek(ctx context.Context, since time.Time) ([]DayUsage, error) {
	query := `
		SELECT
			extract(DOW FROM check_in_time)::int AS day_of_week,
			count(*) AS total_visits,
			count(DISTINCT member_id) AS unique_members
		FROM attendance
		WHERE check_in_time >= $1
		GROUP BY day_of_week
		ORDER BY day_of_week`

	rows := []DayUsage{}
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DayName = dayNames[rows[i].DayOfWeek%7]
	}
	return rows, nil
}

func (r *repository) PeakHours(ctx context.Context, since time.Time) ([]HourlyCheckIns, error) {
	query := `
		SELECT extract(HOUR FROM check_in_time)::int AS hour_of_day, count(*) AS check_ins
		FROM attendance
		WHERE check_in_time >= $1
		GROUP BY hour_of_day
		ORDER BY hour_of_day`

	rows := []HourlyCheckIns{}
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) AverageSessionMinutes(ctx context.Context, since time.Time) (float64, error) {
	// Open records are excluded; an empty window averages to 0.
	query := `
		SELECT COALESCE(avg(extract(EPOCH FROM (check_out_time - check_in_time)) / 60), 0) AS avg_minutes
		FROM attendance
		WHERE check_in_time >= $1 AND check_out_time IS NOT NULL`

	var avg float64
	if err := r.db.GetContext(ctx, &avg, query, since); err != nil {
		return 0, err
	}
	return avg, nil
}

func (r *repository) TopWorkouts(ctx context.Context, since time.Time, limit int) ([]TopWorkout, error) {
	// Ties break on the type name so the ordering is stable.
	query := `
		SELECT
			workout_type,
			ROUND(AVG(calories_burned))::int AS avg_calories,
			count(DISTINCT member_id) AS member_count
		FROM workout_logs
		WHERE workout_date >= $1 AND calories_burned IS NOT NULL
		GROUP BY workout_type
		ORDER BY avg_calories DESC, workout_type ASC
		LIMIT $2`

	rows := []TopWorkout{}
	if err := r.db.SelectContext(ctx, &rows, query, since, limit); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CurrentMembers(ctx context.Context) ([]PresentMember, error) {
	query := `
		SELECT
			m.id,
			m.full_name,
			a.check_in_time,
			extract(EPOCH FROM (current_timestamp - a.check_in_time)) / 60 AS minutes_in_gym
		FROM attendance a
		JOIN members m ON a.member_id = m.id
		WHERE a.check_out_time IS NULL
		ORDER BY a.check_in_time ASC`

	rows := []PresentMember{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RetentionRate(ctx context.Context, since time.Time) (*Retention, error) {
	// NULLIF guards the zero-denominator case; the rate reports 0
	// instead of failing.
	query := `
		WITH active_members AS (
			SELECT DISTINCT member_id
			FROM attendance
			WHERE check_in_time >= $1
		),
		total_members AS (
			SELECT count(*) AS count FROM members
			WHERE created_at <= $1
		)
		SELECT
			(SELECT count(*) FROM active_members) AS active_count,
			(SELECT count FROM total_members) AS total_count,
			COALESCE(ROUND(
				(SELECT count(*) FROM active_members)::numeric /
				NULLIF((SELECT count FROM total_members), 0)::numeric * 100, 2
			), 0) AS retention_rate`

	var retention Retention
	if err := r.db.GetContext(ctx, &retention, query, since); err != nil {
		return nil, err
	}
	return &retention, nil
}

func (r *repository) AttendanceFrequency(ctx context.Context, since time.Time) ([]FrequencyGroup, error) {
	query := `
		WITH member_visits AS (
			SELECT member_id, count(*) AS visit_count
			FROM attendance
			WHERE check_in_time >= $1
			GROUP BY member_id
		)
		SELECT
			CASE
				WHEN visit_count >= 20 THEN '5+ times per week'
				WHEN visit_count >= 12 THEN '3-4 times per week'
				WHEN visit_count >= 4 THEN '1-2 times per week'
				ELSE 'Less than once a week'
			END AS frequency_group,
			count(*) AS member_count
		FROM member_visits
		GROUP BY frequency_group
		ORDER BY
			CASE frequency_group
				WHEN '5+ times per week' THEN 1
				WHEN '3-4 times per week' THEN 2
				WHEN '1-2 times per week' THEN 3
				ELSE 4
			END`

	rows := []FrequencyGroup{}
	if err := r.db.SelectContext(ctx, &rows, query, since); err != nil {
		return nil, err
	}
	return rows, nil
}
