package attendance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymtrack/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CheckIn(ctx context.Context, memberID int, at *time.Time) (*Record, error) {
	args := m.Called(ctx, memberID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *mockService) CheckOut(ctx context.Context, recordID int, at *time.Time) (*Record, error) {
	args := m.Called(ctx, recordID, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Record), args.Error(1)
}

func (m *mockService) CurrentlyPresent(ctx context.Context) ([]RecordResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecordResponse), args.Error(1)
}

func (m *mockService) RecordsOn(ctx context.Context, date string, memberID *int) ([]RecordResponse, error) {
	args := m.Called(ctx, date, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecordResponse), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, recordID int) error {
	args := m.Called(ctx, recordID)
	return args.Error(0)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("member_id", 7)
		c.Next()
	})
	r.POST("/attendance/check-in", h.CheckIn)
	r.POST("/attendance/:id/check-out", h.CheckOut)
	r.GET("/attendance", h.ListRecords)
	r.GET("/attendance/current", h.CurrentlyPresent)
	r.DELETE("/attendance/:id", h.DeleteRecord)
	return r
}

func TestHandlerCheckIn(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("CheckIn", mock.Anything, 7, (*time.Time)(nil)).
		Return(&Record{ID: 1, MemberID: 7, CheckInTime: time.Now()}, nil)

	req := httptest.NewRequest(http.MethodPost, "/attendance/check-in", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	svc.AssertExpectations(t)
}

func TestHandlerCheckInConflict(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("CheckIn", mock.Anything, 7, (*time.Time)(nil)).
		Return(nil, apperr.Conflict("member is already checked in"))

	req := httptest.NewRequest(http.MethodPost, "/attendance/check-in", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already checked in")
}

func TestHandlerCheckOutInvalidID(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/attendance/abc/check-out", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "CheckOut")
}

func TestHandlerListRecordsMemberFilter(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	memberID := 9
	svc.On("RecordsOn", mock.Anything, "2026-03-10", &memberID).
		Return([]RecordResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/attendance?date=2026-03-10&member_id=9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandlerDeleteRecord(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Delete", mock.Anything, 3).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/attendance/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
