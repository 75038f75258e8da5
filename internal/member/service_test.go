package member

import (
	"context"
	"database/sql"
	"testing"

	"gymtrack/internal/apperr"
	"gymtrack/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, fullName, email, passwordHash, role string) (*Member, error) {
	args := m.Called(ctx, fullName, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *mockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) UpdateProfile(ctx context.Context, id int, fields map[string]interface{}) (*Member, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

const testSecret = "test-secret"

func TestServiceRegister(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, "New Member", "new@example.com", mock.AnythingOfType("string"), "member").
		Return(&Member{ID: 1, FullName: "New Member", Email: "new@example.com", Role: "member"}, nil)

	m, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "New Member",
		Email:    "new@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, m.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := auth.ValidateToken(access, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.MemberID)
	repo.AssertExpectations(t)
}

func TestServiceRegisterDuplicateEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Dup",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Create")
}

func TestServiceLogin(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testSecret)

	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "jane@example.com").
		Return(&Member{ID: 3, Email: "jane@example.com", PasswordHash: hash, Role: "member"}, nil)

	t.Run("valid credentials", func(t *testing.T) {
		m, access, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "jane@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)
		assert.Equal(t, 3, m.ID)
		assert.NotEmpty(t, access)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := svc.Login(context.Background(), LoginRequest{
			Email:    "jane@example.com",
			Password: "wrong",
		})
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	})
}

func TestServiceLoginUnknownEmail(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, sql.ErrNoRows)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	// Same message as a wrong password so the response does not leak
	// which accounts exist.
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
	assert.Equal(t, "invalid email or password", apperr.Message(err))
}

func TestServiceGetByIDNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc := NewService(repo, testSecret)

	repo.On("FindByID", mock.Anything, 42).Return(nil, sql.ErrNoRows)

	_, err := svc.GetByID(context.Background(), 42)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestServiceUpdateProfile(t *testing.T) {
	t.Run("valid fields forwarded", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, testSecret)

		name := "Jane D."
		weight := 70.0
		expected := map[string]interface{}{"full_name": "Jane D.", "current_weight": 70.0}
		repo.On("UpdateProfile", mock.Anything, 7, expected).
			Return(&Member{ID: 7, FullName: "Jane D."}, nil)

		m, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileRequest{
			FullName:      &name,
			CurrentWeight: &weight,
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane D.", m.FullName)
		repo.AssertExpectations(t)
	})

	t.Run("invalid diet plan", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, testSecret)

		plan := "keto-extreme"
		_, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileRequest{DietPlan: &plan})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		repo.AssertNotCalled(t, "UpdateProfile")
	})

	t.Run("invalid fitness goal", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, testSecret)

		goals := []string{"weight-loss", "parkour"}
		_, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileRequest{FitnessGoals: &goals})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("empty request", func(t *testing.T) {
		repo := new(mockRepository)
		svc := NewService(repo, testSecret)

		_, err := svc.UpdateProfile(context.Background(), 7, UpdateProfileRequest{})
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}
