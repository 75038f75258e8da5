package membership

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

const statusColumns = `membership_plan, membership_start_date, membership_end_date`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Subscribe(ctx context.Context, memberID int, plan string, start, end time.Time) (*subscriber, error) {
	query := `
		UPDATE members
		SET membership_plan = $1, membership_start_date = $2, membership_end_date = $3
		WHERE id = $4
		RETURNING full_name, email, ` + statusColumns

	var sub subscriber
	if err := r.db.GetContext(ctx, &sub, query, plan, start, end, memberID); err != nil {
		return nil, err
	}

	return &sub, nil
}

func (r *repository) UpdatePlan(ctx context.Context, memberID int, plan string) (*Status, error) {
	query := `
		UPDATE members
		SET membership_plan = $1
		WHERE id = $2
		RETURNING ` + statusColumns

	var status Status
	if err := r.db.GetContext(ctx, &status, query, plan, memberID); err != nil {
		return nil, err
	}

	return &status, nil
}

func (r *repository) Cancel(ctx context.Context, memberID int, endDate time.Time) error {
	result, err := r.db.ExecContext(ctx, `
		UPDATE members
		SET membership_plan = $1, membership_end_date = $2
		WHERE id = $3`,
		PlanBasic, endDate, memberID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *repository) Status(ctx context.Context, memberID int) (*Status, error) {
	query := `SELECT ` + statusColumns + ` FROM members WHERE id = $1`

	var status Status
	if err := r.db.GetContext(ctx, &status, query, memberID); err != nil {
		return nil, err
	}

	return &status, nil
}
