package membership

import "time"

// Status is the membership slice of a member row.
type Status struct {
	Plan      string     `db:"membership_plan" json:"plan"`
	StartDate *time.Time `db:"membership_start_date" json:"start_date"`
	EndDate   *time.Time `db:"membership_end_date" json:"end_date"`
}

// subscriber carries the contact fields needed for the confirmation
// email alongside the updated status.
type subscriber struct {
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Status
}

type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type UpgradeRequest struct {
	NewPlan string `json:"new_plan" binding:"required"`
}
