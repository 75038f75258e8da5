package stats

import "time"

type MonthlySignups struct {
	Month string `db:"month" json:"month"`
	Count int    `db:"count" json:"count"`
}

type DayUsage struct {
	DayOfWeek     int    `db:"day_of_week" json:"day_of_week"`
	DayName       string `json:"day_name"`
	TotalVisits   int    `db:"total_visits" json:"total_visits"`
	UniqueMembers int    `db:"unique_members" json:"unique_members"`
}

type HourlyCheckIns struct {
	HourOfDay int `db:"hour_of_day" json:"hour_of_day"`
	CheckIns  int `db:"check_ins" json:"check_ins"`
}

type AverageTime struct {
	AvgMinutes float64 `db:"avg_minutes" json:"avg_minutes"`
}

type TopWorkout struct {
	WorkoutType string `db:"workout_type" json:"workout_type"`
	AvgCalories int    `db:"avg_calories" json:"avg_calories"`
	MemberCount int    `db:"member_count" json:"member_count"`
}

type PresentMember struct {
	ID           int       `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"full_name"`
	CheckInTime  time.Time `db:"check_in_time" json:"check_in_time"`
	MinutesInGym float64   `db:"minutes_in_gym" json:"minutes_in_gym"`
}

type Retention struct {
	ActiveCount   int     `db:"active_count" json:"active_count"`
	TotalCount    int     `db:"total_count" json:"total_count"`
	RetentionRate float64 `db:"retention_rate" json:"retention_rate"`
}

type FrequencyGroup struct {
	FrequencyGroup string `db:"frequency_group" json:"frequency_group"`
	MemberCount    int    `db:"member_count" json:"member_count"`
}

// Dashboard bundles every aggregate for the single-call endpoint.
type Dashboard struct {
	SignupsByMonth      []MonthlySignups `json:"signups_by_month"`
	UsageByDayOfWeek    []DayUsage       `json:"usage_by_day_of_week"`
	PeakHours           []HourlyCheckIns `json:"peak_hours"`
	AverageTime         AverageTime      `json:"average_time"`
	TopWorkouts         []TopWorkout     `json:"top_workouts"`
	CurrentMembers      []PresentMember  `json:"current_members"`
	RetentionRate       Retention        `json:"retention_rate"`
	AttendanceFrequency []FrequencyGroup `json:"attendance_frequency"`
}

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
