package attendance

import (
	"context"
	"time"
)

type Repository interface {
	// CheckIn inserts an open record unless the member already has
	// one; ErrOpenRecord reports the conflict.
	CheckIn(ctx context.Context, memberID int, at time.Time) (*Record, error)
	// CheckOut closes the record only if it is still open and the
	// time is after check-in; sql.ErrNoRows when no row matched.
	CheckOut(ctx context.Context, recordID int, at time.Time) (*Record, error)
	FindByID(ctx context.Context, recordID int) (*Record, error)
	CurrentlyPresent(ctx context.Context) ([]Record, error)
	RecordsBetween(ctx context.Context, from, to time.Time, memberID *int) ([]Record, error)
	Delete(ctx context.Context, recordID int) error
}
