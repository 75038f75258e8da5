package member

import "context"

type Repository interface {
	Create(ctx context.Context, fullName, email, passwordHash, role string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	FindByID(ctx context.Context, id int) (*Member, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, id int, fields map[string]interface{}) (*Member, error)
}
