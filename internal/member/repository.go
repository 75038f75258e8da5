package member

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const memberColumns = `id, full_name, email, password_hash, role,
		membership_plan, membership_start_date, membership_end_date,
		diet_plan, fitness_goals, current_weight, goal_weight, height,
		age, gender, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, fullName, email, passwordHash, role string) (*Member, error) {
	query := fmt.Sprintf(`
		INSERT INTO members (full_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`, memberColumns)

	var m Member
	if err := r.db.GetContext(ctx, &m, query, fullName, email, passwordHash, role); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE email = $1`, memberColumns)

	var m Member
	if err := r.db.GetContext(ctx, &m, query, email); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) FindByID(ctx context.Context, id int) (*Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = $1`, memberColumns)

	var m Member
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		return false, err
	}

	return exists, nil
}

// UpdateProfile writes only allowlisted columns. Fields are assembled
// into one UPDATE so the patch is atomic.
func (r *repository) UpdateProfile(ctx context.Context, id int, fields map[string]interface{}) (*Member, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	columns := make([]string, 0, len(fields))
	for col := range fields {
		if !allowedProfileFields[col] {
			return nil, fmt.Errorf("column %q is not updatable", col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, col := range columns {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i+1))
		value := fields[col]
		if goals, ok := value.([]string); ok {
			value = pq.StringArray(goals)
		}
		args = append(args, value)
	}
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE members
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), len(args), memberColumns)

	var m Member
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		return nil, err
	}

	return &m, nil
}
