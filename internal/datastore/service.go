package datastore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymtrack/internal/apperr"
	"gymtrack/internal/events"
)

type Service interface {
	List(ctx context.Context, table string) ([]Row, error)
	Get(ctx context.Context, table string, id int) (Row, error)
	Create(ctx context.Context, table string, fields map[string]interface{}) (Row, error)
	Update(ctx context.Context, table string, id int, fields map[string]interface{}) (Row, error)
	Delete(ctx context.Context, table string, id int) error
}

type service struct {
	repo Repository
	bus  *events.Bus
}

func NewService(repo Repository, bus *events.Bus) Service {
	return &service{repo: repo, bus: bus}
}

func (s *service) validateWrite(table string, fields map[string]interface{}) error {
	spec, ok := lookupTable(table)
	if !ok {
		return apperr.Validation(fmt.Sprintf("unknown table %q", table))
	}
	if len(fields) == 0 {
		return apperr.Validation("request body must contain at least one column")
	}
	for col := range fields {
		if !spec.writable[col] {
			return apperr.Validation(fmt.Sprintf("unknown column %q", col))
		}
	}
	return nil
}

func (s *service) List(ctx context.Context, table string) ([]Row, error) {
	if _, ok := lookupTable(table); !ok {
		return nil, apperr.Validation(fmt.Sprintf("unknown table %q", table))
	}

	rows, err := s.repo.List(ctx, table)
	if err != nil {
		return nil, apperr.Dependency("failed to list rows", err)
	}
	return rows, nil
}

func (s *service) Get(ctx context.Context, table string, id int) (Row, error) {
	if _, ok := lookupTable(table); !ok {
		return nil, apperr.Validation(fmt.Sprintf("unknown table %q", table))
	}

	row, err := s.repo.Get(ctx, table, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, apperr.Dependency("failed to load row", err)
	}
	return row, nil
}

func (s *service) Create(ctx context.Context, table string, fields map[string]interface{}) (Row, error) {
	if err := s.validateWrite(table, fields); err != nil {
		return nil, err
	}

	row, err := s.repo.Create(ctx, table, fields)
	if err != nil {
		return nil, apperr.Dependency("failed to create row", err)
	}

	s.bus.Publish(ctx, table, events.ActionInsert, row)
	return row, nil
}

func (s *service) Update(ctx context.Context, table string, id int, fields map[string]interface{}) (Row, error) {
	if err := s.validateWrite(table, fields); err != nil {
		return nil, err
	}

	row, err := s.repo.Update(ctx, table, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("item not found")
		}
		return nil, apperr.Dependency("failed to update row", err)
	}

	s.bus.Publish(ctx, table, events.ActionUpdate, row)
	return row, nil
}

func (s *service) Delete(ctx context.Context, table string, id int) error {
	if _, ok := lookupTable(table); !ok {
		return apperr.Validation(fmt.Sprintf("unknown table %q", table))
	}

	if err := s.repo.Delete(ctx, table, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("item not found")
		}
		return apperr.Dependency("failed to delete row", err)
	}

	s.bus.Publish(ctx, table, events.ActionDelete, map[string]int{"id": id})
	return nil
}
