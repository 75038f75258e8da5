package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrOpenRecord reports a check-in attempt while an open record
// already exists for the member.
var ErrOpenRecord = errors.New("member already has an open attendance record")

const recordColumns = `id, member_id, check_in_time, check_out_time, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CheckIn is a single conditional insert: the WHERE NOT EXISTS guard
// serializes against concurrent check-ins for the same member, and
// the partial unique index on (member_id) WHERE check_out_time IS NULL
// backs it up if two inserts race past the guard.
func (r *repository) CheckIn(ctx context.Context, memberID int, at time.Time) (*Record, error) {
	query := `
		INSERT INTO attendance (member_id, check_in_time)
		SELECT $1, $2
		WHERE NOT EXISTS (
			SELECT 1 FROM attendance
			WHERE member_id = $1 AND check_out_time IS NULL
		)
		RETURNING ` + recordColumns

	var rec Record
	err := r.db.GetContext(ctx, &rec, query, memberID, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOpenRecord
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrOpenRecord
		}
		return nil, err
	}

	return &rec, nil
}

// CheckOut only matches a record that is still open and whose
// check-in precedes the given time; callers distinguish the
// no-match reasons via FindByID.
func (r *repository) CheckOut(ctx context.Context, recordID int, at time.Time) (*Record, error) {
	query := `
		UPDATE attendance
		SET check_out_time = $2
		WHERE id = $1 AND check_out_time IS NULL AND check_in_time < $2
		RETURNING ` + recordColumns

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, recordID, at); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) FindByID(ctx context.Context, recordID int) (*Record, error) {
	query := `SELECT ` + recordColumns + ` FROM attendance WHERE id = $1`

	var rec Record
	if err := r.db.GetContext(ctx, &rec, query, recordID); err != nil {
		return nil, err
	}

	return &rec, nil
}

func (r *repository) CurrentlyPresent(ctx context.Context) ([]Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance
		WHERE check_out_time IS NULL
		ORDER BY check_in_time ASC`

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repository) RecordsBetween(ctx context.Context, from, to time.Time, memberID *int) ([]Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM attendance
		WHERE check_in_time >= $1 AND check_in_time < $2`
	args := []interface{}{from, to}

	if memberID != nil {
		query += ` AND member_id = $3`
		args = append(args, *memberID)
	}
	query += ` ORDER BY check_in_time DESC`

	records := []Record{}
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *repository) Delete(ctx context.Context, recordID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = $1`, recordID)
	return err
}
