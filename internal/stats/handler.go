package stats

import (
	"net/http"
	"strconv"

	"gymtrack/internal/api"
	"gymtrack/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func windowDays(c *gin.Context) (int, bool) {
	raw := c.Query("windowDays")
	if raw == "" {
		return defaultWindowDays, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		api.Error(c, apperr.Validation("windowDays must be a positive integer"))
		return 0, false
	}
	return days, true
}

// SignupsByMonth godoc
// @Summary      Member signups by month, current year
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  MonthlySignups
// @Router       /stats/signups [get]
func (h *Handler) SignupsByMonth(c *gin.Context) {
	rows, err := h.service.SignupsByMonth(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UsageByDay godoc
// @Summary      Check-ins per weekday
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query    int  false  "Trailing window, default 30"
// @Success      200         {array}  DayUsage
// @Router       /stats/usage-by-day [get]
func (h *Handler) UsageByDay(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	rows, err := h.service.UsageByDayOfWeek(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PeakHours godoc
// @Summary      Check-ins per hour of day
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query    int  false  "Trailing window, default 30"
// @Success      200         {array}  HourlyCheckIns
// @Router       /stats/peak-hours [get]
func (h *Handler) PeakHours(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	rows, err := h.service.PeakHours(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// AverageTime godoc
// @Summary      Average session duration in minutes
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query     int  false  "Trailing window, default 30"
// @Success      200         {object}  AverageTime
// @Router       /stats/average-time [get]
func (h *Handler) AverageTime(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	avg, err := h.service.AverageTime(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

// TopWorkouts godoc
// @Summary      Workout types by average calories burned
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query    int  false  "Trailing window, default 30"
// @Success      200         {array}  TopWorkout
// @Router       /stats/top-workouts [get]
func (h *Handler) TopWorkouts(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	rows, err := h.service.TopWorkouts(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// CurrentMembers godoc
// @Summary      Members currently in the gym
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  PresentMember
// @Router       /stats/current-members [get]
func (h *Handler) CurrentMembers(c *gin.Context) {
	rows, err := h.service.CurrentMembers(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// RetentionRate godoc
// @Summary      Share of established members active in the window
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query     int  false  "Trailing window, default 30"
// @Success      200         {object}  Retention
// @Router       /stats/retention-rate [get]
func (h *Handler) RetentionRate(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	retention, err := h.service.RetentionRate(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, retention)
}

// AttendanceFrequency godoc
// @Summary      Members bucketed by visit frequency
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query    int  false  "Trailing window, default 30"
// @Success      200         {array}  FrequencyGroup
// @Router       /stats/attendance-frequency [get]
func (h *Handler) AttendanceFrequency(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	rows, err := h.service.AttendanceFrequency(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// All godoc
// @Summary      Full statistics dashboard
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Param        windowDays  query     int  false  "Trailing window, default 30"
// @Success      200         {object}  Dashboard
// @Router       /stats/all [get]
func (h *Handler) All(c *gin.Context) {
	days, ok := windowDays(c)
	if !ok {
		return
	}
	dashboard, err := h.service.All(c.Request.Context(), days)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
