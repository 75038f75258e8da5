package workout

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Exercise is one prescribed or performed exercise. Timed and
// set-based exercises share the shape; unused fields are omitted.
type Exercise struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets,omitempty"`
	Reps      int    `json:"reps,omitempty"`
	Rest      string `json:"rest,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Intensity string `json:"intensity,omitempty"`
}

// ExerciseList maps to a jsonb column.
type ExerciseList []Exercise

func (l ExerciseList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for ExerciseList")
}

// Entry is one logged workout. The log is append-only.
type Entry struct {
	ID             int          `db:"id" json:"id"`
	MemberID       int          `db:"member_id" json:"member_id"`
	WorkoutType    string       `db:"workout_type" json:"workout_type"`
	Duration       int          `db:"duration_minutes" json:"duration"`
	CaloriesBurned *int         `db:"calories_burned" json:"calories_burned,omitempty"`
	Exercises      ExerciseList `db:"exercises" json:"exercises"`
	WorkoutDate    time.Time    `db:"workout_date" json:"workout_date"`
	CreatedAt      time.Time    `db:"created_at" json:"created_at"`
}

type LogRequest struct {
	WorkoutType    string     `json:"workout_type" binding:"required"`
	Duration       int        `json:"duration" binding:"required,gt=0"`
	CaloriesBurned *int       `json:"calories_burned" binding:"omitempty,gte=0"`
	Exercises      []Exercise `json:"exercises"`
}

type MonthlyProgress struct {
	TotalWorkouts   int     `json:"total_workouts"`
	TotalDuration   int     `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
}

// Stats summarizes a member's full log. Monthly progress covers the
// trailing six calendar months including the current one.
type Stats struct {
	TotalWorkouts   int                        `json:"total_workouts"`
	TotalDuration   int                        `json:"total_duration"`
	AverageDuration float64                    `json:"average_duration"`
	WorkoutsByType  map[string]int             `json:"workouts_by_type"`
	RecentWorkouts  []Entry                    `json:"recent_workouts"`
	MonthlyProgress map[string]MonthlyProgress `json:"monthly_progress"`
}

// GoalRecommendation pairs one fitness goal with its fixed routines.
type GoalRecommendation struct {
	Goal     string    `json:"goal"`
	Workouts []Routine `json:"workouts"`
}

type Routine struct {
	Name      string     `json:"name"`
	Duration  int        `json:"duration"`
	Intensity string     `json:"intensity"`
	Exercises []Exercise `json:"exercises"`
}
