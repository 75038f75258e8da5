package diet

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	SelectPlan(ctx context.Context, memberID int, plan string) error
	GetPlan(ctx context.Context, memberID int) (string, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) SelectPlan(ctx context.Context, memberID int, plan string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE members SET diet_plan = $1 WHERE id = $2`,
		plan, memberID,
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

func (r *repository) GetPlan(ctx context.Context, memberID int) (string, error) {
	var plan string
	err := r.db.GetContext(ctx, &plan,
		`SELECT diet_plan FROM members WHERE id = $1`,
		memberID,
	)
	return plan, err
}
