package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "member_id", "check_in_time", "check_out_time", "created_at"})
}

func TestRepositoryCheckIn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO attendance \(member_id, check_in_time\)\s+SELECT \$1, \$2\s+WHERE NOT EXISTS`).
		WithArgs(7, at).
		WillReturnRows(recordRows().AddRow(1, 7, at, nil, at))

	rec, err := repo.CheckIn(context.Background(), 7, at)
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Nil(t, rec.CheckOutTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCheckInAlreadyOpen(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	at := time.Now()
	// The guarded insert matches no row when an open record exists.
	mock.ExpectQuery(`INSERT INTO attendance`).
		WithArgs(7, at).
		WillReturnRows(recordRows())

	_, err := repo.CheckIn(context.Background(), 7, at)
	assert.ErrorIs(t, err, ErrOpenRecord)
}

func TestRepositoryCheckOut(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	checkIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(90 * time.Minute)
	mock.ExpectQuery(`UPDATE attendance\s+SET check_out_time = \$2\s+WHERE id = \$1 AND check_out_time IS NULL AND check_in_time < \$2`).
		WithArgs(1, checkOut).
		WillReturnRows(recordRows().AddRow(1, 7, checkIn, checkOut, checkIn))

	rec, err := repo.CheckOut(context.Background(), 1, checkOut)
	require.NoError(t, err)
	require.NotNil(t, rec.CheckOutTime)
	assert.Equal(t, checkOut, *rec.CheckOutTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCurrentlyPresent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	early := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	mock.ExpectQuery(`WHERE check_out_time IS NULL\s+ORDER BY check_in_time ASC`).
		WillReturnRows(recordRows().
			AddRow(1, 7, early, nil, early).
			AddRow(2, 9, late, nil, late))

	records, err := repo.CurrentlyPresent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].CheckInTime.Before(records[1].CheckInTime))
}

func TestRepositoryRecordsBetweenWithMember(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	memberID := 7
	mock.ExpectQuery(`AND member_id = \$3\s+ORDER BY check_in_time DESC`).
		WithArgs(from, to, memberID).
		WillReturnRows(recordRows().AddRow(1, 7, from.Add(9*time.Hour), nil, from))

	records, err := repo.RecordsBetween(context.Background(), from, to, &memberID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`DELETE FROM attendance WHERE id = \$1`).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
