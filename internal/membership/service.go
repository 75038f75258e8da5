package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymtrack/internal/apperr"
	"gymtrack/internal/events"
	"gymtrack/internal/logger"
	"gymtrack/internal/metrics"
)

// Mailer queues outbound mail; the concrete implementation lives in
// the email package.
type Mailer interface {
	SendMembershipConfirmation(ctx context.Context, to, name, plan string, endDate time.Time) error
}

type Service interface {
	Subscribe(ctx context.Context, memberID int, plan string) (*Status, error)
	Upgrade(ctx context.Context, memberID int, newPlan string) (*Status, error)
	Cancel(ctx context.Context, memberID int) error
	Status(ctx context.Context, memberID int) (*Status, error)
}

type service struct {
	repo   Repository
	bus    *events.Bus
	mailer Mailer
}

func NewService(repo Repository, bus *events.Bus, mailer Mailer) Service {
	return &service{repo: repo, bus: bus, mailer: mailer}
}

func (s *service) Subscribe(ctx context.Context, memberID int, plan string) (*Status, error) {
	if !ValidPlan(plan) {
		return nil, apperr.Validation("invalid membership plan")
	}

	start := time.Now()
	end := start.AddDate(1, 0, 0)

	sub, err := s.repo.Subscribe(ctx, memberID, plan, start, end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to subscribe", err)
	}

	metrics.RecordSubscription("subscribe", plan)
	s.bus.Publish(ctx, "members", events.ActionUpdate, sub.Status)

	// Confirmation mail is queued best-effort; the subscription is
	// already committed.
	if s.mailer != nil && sub.EndDate != nil {
		if err := s.mailer.SendMembershipConfirmation(ctx, sub.Email, sub.FullName, plan, *sub.EndDate); err != nil {
			logger.Errorf("Failed to queue membership confirmation for %s: %v", sub.Email, err)
		}
	}

	return &sub.Status, nil
}

// Upgrade replaces the plan in place. The billing window is not
// renewed; an upgrade is not a new term.
func (s *service) Upgrade(ctx context.Context, memberID int, newPlan string) (*Status, error) {
	if newPlan != PlanPremium && newPlan != PlanElite {
		return nil, apperr.Validation("invalid upgrade plan")
	}

	current, err := s.repo.Status(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to load membership", err)
	}
	if current.Plan == PlanElite {
		return nil, apperr.InvalidState("already on the highest tier")
	}

	status, err := s.repo.UpdatePlan(ctx, memberID, newPlan)
	if err != nil {
		return nil, apperr.Dependency("failed to upgrade membership", err)
	}

	metrics.RecordSubscription("upgrade", newPlan)
	s.bus.Publish(ctx, "members", events.ActionUpdate, status)
	return status, nil
}

// Cancel is effective immediately: the member drops to basic and the
// end date is set to now. History is kept.
func (s *service) Cancel(ctx context.Context, memberID int) error {
	if err := s.repo.Cancel(ctx, memberID, time.Now()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("member not found")
		}
		return apperr.Dependency("failed to cancel membership", err)
	}

	metrics.RecordSubscription("cancel", PlanBasic)
	s.bus.Publish(ctx, "members", events.ActionUpdate, map[string]interface{}{
		"id":   memberID,
		"plan": PlanBasic,
	})
	return nil
}

func (s *service) Status(ctx context.Context, memberID int) (*Status, error) {
	status, err := s.repo.Status(ctx, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("member not found")
		}
		return nil, apperr.Dependency("failed to load membership", err)
	}
	return status, nil
}
