package datastore

import (
	"context"
	"database/sql"
	"testing"

	"gymtrack/internal/apperr"
	"gymtrack/internal/events"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context, table string) ([]Row, error) {
	args := m.Called(ctx, table)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Row), args.Error(1)
}

func (m *mockRepository) Get(ctx context.Context, table string, id int) (Row, error) {
	args := m.Called(ctx, table, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Row), args.Error(1)
}

func (m *mockRepository) Create(ctx context.Context, table string, fields map[string]interface{}) (Row, error) {
	args := m.Called(ctx, table, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Row), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, table string, id int, fields map[string]interface{}) (Row, error) {
	args := m.Called(ctx, table, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(Row), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, table string, id int) error {
	args := m.Called(ctx, table, id)
	return args.Error(0)
}

func newTestService(t *testing.T, repo Repository) (Service, redismock.ClientMock) {
	t.Helper()
	client, redisMock := redismock.NewClientMock()
	return NewService(repo, events.NewWithClient(client)), redisMock
}

func TestServiceListUnknownTable(t *testing.T) {
	repo := new(mockRepository)
	svc, _ := newTestService(t, repo)

	_, err := svc.List(context.Background(), "pg_catalog")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	repo.AssertNotCalled(t, "List")
}

func TestServiceCreatePublishesEvent(t *testing.T) {
	repo := new(mockRepository)
	svc, redisMock := newTestService(t, repo)

	fields := map[string]interface{}{"member_id": 7.0, "check_in_time": "2026-03-10T09:00:00Z"}
	repo.On("Create", mock.Anything, "attendance", fields).
		Return(Row{"id": int64(1), "member_id": int64(7)}, nil)
	redisMock.Regexp().ExpectPublish("table-changes:attendance", `.*"action":"INSERT".*`).SetVal(1)

	row, err := svc.Create(context.Background(), "attendance", fields)
	require.NoError(t, err)
	assert.Equal(t, int64(1), row["id"])
	repo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestServiceCreateUnknownColumn(t *testing.T) {
	repo := new(mockRepository)
	svc, _ := newTestService(t, repo)

	_, err := svc.Create(context.Background(), "members", map[string]interface{}{"password_hash": "x"})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Create")
}

func TestServiceGetNotFound(t *testing.T) {
	repo := new(mockRepository)
	svc, _ := newTestService(t, repo)

	repo.On("Get", mock.Anything, "members", 42).Return(nil, sql.ErrNoRows)

	_, err := svc.Get(context.Background(), "members", 42)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestServiceDelete(t *testing.T) {
	repo := new(mockRepository)
	svc, redisMock := newTestService(t, repo)

	repo.On("Delete", mock.Anything, "workout_logs", 3).Return(nil)
	redisMock.Regexp().ExpectPublish("table-changes:workout_logs", `.*"action":"DELETE".*`).SetVal(1)

	require.NoError(t, svc.Delete(context.Background(), "workout_logs", 3))
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestPrepareWriteSortsColumns(t *testing.T) {
	_, columns, args, err := prepareWrite("attendance", map[string]interface{}{
		"member_id":     7,
		"check_in_time": "2026-03-10T09:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"check_in_time", "member_id"}, columns)
	assert.Equal(t, []interface{}{"2026-03-10T09:00:00Z", 7}, args)
}
