package member

import (
	"time"

	"github.com/lib/pq"
)

// Member is the fitness profile plus membership/diet state. Rows are
// never hard-deleted; lifecycle transitions only mutate plan columns.
type Member struct {
	ID                  int            `db:"id" json:"id"`
	FullName            string         `db:"full_name" json:"full_name"`
	Email               string         `db:"email" json:"email"`
	PasswordHash        string         `db:"password_hash" json:"-"`
	Role                string         `db:"role" json:"role"`
	MembershipPlan      string         `db:"membership_plan" json:"membership_plan"`
	MembershipStartDate *time.Time     `db:"membership_start_date" json:"membership_start_date,omitempty"`
	MembershipEndDate   *time.Time     `db:"membership_end_date" json:"membership_end_date,omitempty"`
	DietPlan            string         `db:"diet_plan" json:"diet_plan"`
	FitnessGoals        pq.StringArray `db:"fitness_goals" json:"fitness_goals"`
	CurrentWeight       *float64       `db:"current_weight" json:"current_weight,omitempty"`
	GoalWeight          *float64       `db:"goal_weight" json:"goal_weight,omitempty"`
	Height              *float64       `db:"height" json:"height,omitempty"`
	Age                 *int           `db:"age" json:"age,omitempty"`
	Gender              *string        `db:"gender" json:"gender,omitempty"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
}

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Member       Member `json:"member"`
}

// UpdateProfileRequest carries the only fields a member may patch on
// their own profile. Anything else in the body is rejected.
type UpdateProfileRequest struct {
	FullName      *string   `json:"full_name,omitempty"`
	Email         *string   `json:"email,omitempty"`
	CurrentWeight *float64  `json:"current_weight,omitempty"`
	GoalWeight    *float64  `json:"goal_weight,omitempty"`
	DietPlan      *string   `json:"diet_plan,omitempty"`
	FitnessGoals  *[]string `json:"fitness_goals,omitempty"`
}

var allowedProfileFields = map[string]bool{
	"full_name":      true,
	"email":          true,
	"current_weight": true,
	"goal_weight":    true,
	"diet_plan":      true,
	"fitness_goals":  true,
}

var validFitnessGoals = map[string]bool{
	"weight-loss": true,
	"muscle-gain": true,
	"endurance":   true,
	"flexibility": true,
	"strength":    true,
}
