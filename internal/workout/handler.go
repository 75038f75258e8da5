package workout

import (
	"net/http"

	"gymtrack/internal/api"
	"gymtrack/internal/apperr"
	"gymtrack/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Log godoc
// @Summary      Log a workout
// @Tags         workouts
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      LogRequest  true  "Workout"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Router       /workouts/log [post]
func (h *Handler) Log(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	entry, err := h.service.Log(c.Request.Context(), memberID, req)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Workout logged successfully",
		"workout": entry,
	})
}

// History godoc
// @Summary      Workout history
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  Entry
// @Router       /workouts/history [get]
func (h *Handler) History(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	entries, err := h.service.History(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetStats godoc
// @Summary      Workout statistics
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Stats
// @Router       /workouts/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Recommendations godoc
// @Summary      Recommended routines per fitness goal
// @Tags         workouts
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  GoalRecommendation
// @Router       /workouts/recommendations [get]
func (h *Handler) Recommendations(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	recommendations, err := h.service.Recommendations(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, recommendations)
}
