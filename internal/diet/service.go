package diet

import (
	"context"
	"database/sql"
	"errors"

	"gymtrack/internal/apperr"
	"gymtrack/internal/metrics"
)

type Service interface {
	SelectPlan(ctx context.Context, memberID int, plan string) error
	CurrentPlan(ctx context.Context, memberID int) (string, error)
	DailyPlanFor(ctx context.Context, memberID int) (MealPlan, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SelectPlan(ctx context.Context, memberID int, plan string) error {
	if !ValidPlan(plan) {
		return apperr.Validation("invalid diet plan")
	}

	if err := s.repo.SelectPlan(ctx, memberID, plan); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("member not found")
		}
		return apperr.Dependency("failed to select diet plan", err)
	}

	metrics.RecordDietPlanSelection(plan)
	return nil
}

func (s *service) CurrentPlan(ctx context.Context, memberID int) (string, error) {
	plan, err := s.repo.GetPlan(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperr.NotFound("member not found")
		}
		return "", apperr.Dependency("failed to load diet plan", err)
	}
	return plan, nil
}

// DailyPlanFor resolves the member's stored category to its fixed meal
// plan; unknown stored values fall back to health-wellness in
// DailyPlan rather than erroring.
func (s *service) DailyPlanFor(ctx context.Context, memberID int) (MealPlan, error) {
	plan, err := s.repo.GetPlan(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return MealPlan{}, apperr.NotFound("member not found")
		}
		return MealPlan{}, apperr.Dependency("failed to load diet plan", err)
	}

	return DailyPlan(plan), nil
}
