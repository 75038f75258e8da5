package membership

import (
	"context"
	"time"
)

type Repository interface {
	// Subscribe sets the plan and a fresh [start, end] window and
	// returns the member's contact fields for the confirmation email.
	Subscribe(ctx context.Context, memberID int, plan string, start, end time.Time) (*subscriber, error)
	// UpdatePlan replaces the plan in place; the billing window is
	// untouched.
	UpdatePlan(ctx context.Context, memberID int, plan string) (*Status, error)
	// Cancel drops the member to basic effective immediately.
	Cancel(ctx context.Context, memberID int, endDate time.Time) error
	Status(ctx context.Context, memberID int) (*Status, error)
}
