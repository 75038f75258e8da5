package membership

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gymtrack/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Subscribe(ctx context.Context, memberID int, plan string) (*Status, error) {
	args := m.Called(ctx, memberID, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Status), args.Error(1)
}

func (m *mockService) Upgrade(ctx context.Context, memberID int, newPlan string) (*Status, error) {
	args := m.Called(ctx, memberID, newPlan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Status), args.Error(1)
}

func (m *mockService) Cancel(ctx context.Context, memberID int) error {
	args := m.Called(ctx, memberID)
	return args.Error(0)
}

func (m *mockService) Status(ctx context.Context, memberID int) (*Status, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Status), args.Error(1)
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	r := gin.New()
	r.GET("/memberships/plans", h.ListPlans)

	authed := r.Group("/", func(c *gin.Context) {
		c.Set("member_id", 7)
		c.Next()
	})
	authed.POST("/memberships/subscribe", h.Subscribe)
	authed.POST("/memberships/upgrade", h.Upgrade)
	authed.POST("/memberships/cancel", h.Cancel)
	authed.GET("/memberships/status", h.GetStatus)
	return r
}

func TestHandlerListPlans(t *testing.T) {
	router := setupRouter(new(mockService))

	req := httptest.NewRequest(http.MethodGet, "/memberships/plans", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var plans []Plan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plans))
	require.Len(t, plans, 3)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, 79.99, plans[2].Price)
}

func TestHandlerSubscribe(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Subscribe", mock.Anything, 7, "premium").
		Return(&Status{Plan: "premium"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/memberships/subscribe", strings.NewReader(`{"plan":"premium"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully subscribed")
}

func TestHandlerUpgradeFromElite(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Upgrade", mock.Anything, 7, "elite").
		Return(nil, apperr.InvalidState("already on the highest tier"))

	req := httptest.NewRequest(http.MethodPost, "/memberships/upgrade", strings.NewReader(`{"new_plan":"elite"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "highest tier")
}

func TestHandlerCancel(t *testing.T) {
	svc := new(mockService)
	router := setupRouter(svc)

	svc.On("Cancel", mock.Anything, 7).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/memberships/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cancelled")
}
