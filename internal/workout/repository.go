package workout

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const entryColumns = `id, member_id, workout_type, duration_minutes,
		calories_burned, exercises, workout_date, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, memberID int, req LogRequest) (*Entry, error) {
	query := `
		INSERT INTO workout_logs (member_id, workout_type, duration_minutes, calories_burned, exercises)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + entryColumns

	var entry Entry
	err := r.db.GetContext(ctx, &entry, query,
		memberID, req.WorkoutType, req.Duration, req.CaloriesBurned, ExerciseList(req.Exercises))
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *repository) History(ctx context.Context, memberID int) ([]Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM workout_logs
		WHERE member_id = $1
		ORDER BY workout_date DESC, id DESC`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, memberID); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *repository) FitnessGoals(ctx context.Context, memberID int) ([]string, error) {
	var goals pq.StringArray
	err := r.db.GetContext(ctx, &goals,
		`SELECT fitness_goals FROM members WHERE id = $1`, memberID)
	if err != nil {
		return nil, err
	}
	return []string(goals), nil
}
