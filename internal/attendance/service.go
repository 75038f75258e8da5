package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymtrack/internal/apperr"
	"gymtrack/internal/events"
	"gymtrack/internal/metrics"
)

type Service interface {
	CheckIn(ctx context.Context, memberID int, at *time.Time) (*Record, error)
	CheckOut(ctx context.Context, recordID int, at *time.Time) (*Record, error)
	CurrentlyPresent(ctx context.Context) ([]RecordResponse, error)
	RecordsOn(ctx context.Context, date string, memberID *int) ([]RecordResponse, error)
	Delete(ctx context.Context, recordID int) error
}

type service struct {
	repo     Repository
	bus      *events.Bus
	location *time.Location
}

// NewService wires the ledger to the change bus. The location is the
// reporting timezone used to bound calendar-day queries.
func NewService(repo Repository, bus *events.Bus, location *time.Location) Service {
	return &service{repo: repo, bus: bus, location: location}
}

func (s *service) CheckIn(ctx context.Context, memberID int, at *time.Time) (*Record, error) {
	checkInTime := time.Now()
	if at != nil {
		checkInTime = *at
	}

	rec, err := s.repo.CheckIn(ctx, memberID, checkInTime)
	if err != nil {
		if errors.Is(err, ErrOpenRecord) {
			return nil, apperr.Conflict("member is already checked in")
		}
		return nil, apperr.Dependency("failed to check in", err)
	}

	metrics.RecordCheckIn()
	s.bus.Publish(ctx, "attendance", events.ActionInsert, rec)
	return rec, nil
}

func (s *service) CheckOut(ctx context.Context, recordID int, at *time.Time) (*Record, error) {
	checkOutTime := time.Now()
	if at != nil {
		checkOutTime = *at
	}

	rec, err := s.repo.CheckOut(ctx, recordID, checkOutTime)
	if err == nil {
		metrics.RecordCheckOut()
		s.bus.Publish(ctx, "attendance", events.ActionUpdate, rec)
		return rec, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Dependency("failed to check out", err)
	}

	// The conditional update matched nothing; look the record up to
	// tell an unknown id from an illegal transition.
	existing, findErr := s.repo.FindByID(ctx, recordID)
	if findErr != nil {
		if errors.Is(findErr, sql.ErrNoRows) {
			return nil, apperr.NotFound("attendance record not found")
		}
		return nil, apperr.Dependency("failed to check out", findErr)
	}
	if existing.CheckOutTime != nil {
		return nil, apperr.InvalidState("record is already checked out")
	}
	return nil, apperr.InvalidState("check-out time must be after check-in time")
}

func (s *service) CurrentlyPresent(ctx context.Context) ([]RecordResponse, error) {
	records, err := s.repo.CurrentlyPresent(ctx)
	if err != nil {
		return nil, apperr.Dependency("failed to load open records", err)
	}
	return toResponses(records), nil
}

// RecordsOn lists records whose check-in falls on the given calendar
// day in the reporting timezone. An empty date means today.
func (s *service) RecordsOn(ctx context.Context, date string, memberID *int) ([]RecordResponse, error) {
	day := time.Now().In(s.location)
	if date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", date, s.location)
		if err != nil {
			return nil, apperr.Validation("date must be in YYYY-MM-DD format")
		}
		day = parsed
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 0, 1)

	records, err := s.repo.RecordsBetween(ctx, from, to, memberID)
	if err != nil {
		return nil, apperr.Dependency("failed to load attendance records", err)
	}
	return toResponses(records), nil
}

// Delete removes a record unconditionally; it exists for data
// correction and does not touch the member.
func (s *service) Delete(ctx context.Context, recordID int) error {
	if err := s.repo.Delete(ctx, recordID); err != nil {
		return apperr.Dependency("failed to delete attendance record", err)
	}

	s.bus.Publish(ctx, "attendance", events.ActionDelete, map[string]int{"id": recordID})
	return nil
}
