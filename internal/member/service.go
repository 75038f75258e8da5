package member

import (
	"context"
	"database/sql"
	"errors"

	"gymtrack/internal/apperr"
	"gymtrack/internal/auth"
	"gymtrack/internal/diet"
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error)
	Login(ctx context.Context, req LoginRequest) (*Member, string, string, error)
	GetByID(ctx context.Context, memberID int) (*Member, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, *Member, error)
	UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error)
}

type service struct {
	repo      Repository
	jwtSecret string
}

func NewService(repo Repository, jwtSecret string) Service {
	return &service{
		repo:      repo,
		jwtSecret: jwtSecret,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Member, string, string, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", "", apperr.Dependency("failed to check email", err)
	}
	if exists {
		return nil, "", "", apperr.Conflict("email already registered")
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", apperr.Dependency("failed to hash password", err)
	}

	m, err := s.repo.Create(ctx, req.FullName, req.Email, passwordHash, "member")
	if err != nil {
		return nil, "", "", apperr.Dependency("failed to create member", err)
	}

	accessToken, refreshToken, err := auth.GenerateTokens(m.ID, m.Email, m.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", apperr.Dependency("failed to generate tokens", err)
	}

	return m, accessToken, refreshToken, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Member, string, string, error) {
	m, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", apperr.Auth("invalid email or password")
	}

	if !auth.CheckPassword(m.PasswordHash, req.Password) {
		return nil, "", "", apperr.Auth("invalid email or password")
	}

	accessToken, refreshToken, err := auth.GenerateTokens(m.ID, m.Email, m.Role, s.jwtSecret)
	if err != nil {
		return nil, "", "", apperr.Dependency("failed to generate tokens", err)
	}

	return m, accessToken, refreshToken, nil
}

func (s *service) GetByID(ctx context.Context, memberID int) (*Member, error) {
	m, err := s.repo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to load member", err)
	}
	return m, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, *Member, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, apperr.Auth("invalid or expired refresh token")
	}

	m, err := s.repo.FindByID(ctx, claims.MemberID)
	if err != nil {
		return "", nil, apperr.NotFound("member not found")
	}

	return newAccessToken, m, nil
}

func (s *service) UpdateProfile(ctx context.Context, memberID int, req UpdateProfileRequest) (*Member, error) {
	fields := map[string]interface{}{}

	if req.FullName != nil {
		if *req.FullName == "" {
			return nil, apperr.Validation("full_name cannot be empty")
		}
		fields["full_name"] = *req.FullName
	}
	if req.Email != nil {
		if *req.Email == "" {
			return nil, apperr.Validation("email cannot be empty")
		}
		fields["email"] = *req.Email
	}
	if req.CurrentWeight != nil {
		fields["current_weight"] = *req.CurrentWeight
	}
	if req.GoalWeight != nil {
		fields["goal_weight"] = *req.GoalWeight
	}
	if req.DietPlan != nil {
		if !diet.ValidPlan(*req.DietPlan) {
			return nil, apperr.Validation("invalid diet plan")
		}
		fields["diet_plan"] = *req.DietPlan
	}
	if req.FitnessGoals != nil {
		for _, goal := range *req.FitnessGoals {
			if !validFitnessGoals[goal] {
				return nil, apperr.Validation("invalid fitness goal: " + goal)
			}
		}
		fields["fitness_goals"] = *req.FitnessGoals
	}

	if len(fields) == 0 {
		return nil, apperr.Validation("no updatable fields in request")
	}

	m, err := s.repo.UpdateProfile(ctx, memberID, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to update profile", err)
	}

	return m, nil
}
