package diet

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

type SelectPlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type BMIRequest struct {
	WeightKg float64 `json:"weight_kg" binding:"required,gt=0"`
	HeightCm float64 `json:"height_cm" binding:"required,gt=0"`
	Age      int     `json:"age" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required,oneof=male female other"`
	Goal     string  `json:"goal" binding:"omitempty,oneof=maintain gain lose lose-significant"`
}

// ListPlans godoc
// @Summary      List diet plan catalog
// @Tags         diet-plans
// @Produce      json
// @Success      200  {array}  CatalogEntry
// @Router       /diet-plans/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog())
}

// SelectPlan godoc
// @Summary      Select diet plan
// @Tags         diet-plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SelectPlanRequest  true  "Plan selection"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  api.ErrorResponse
// @Router       /diet-plans/select [post]
func (h *Handler) SelectPlan(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	var req SelectPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	if err := h.service.SelectPlan(c.Request.Context(), memberID, req.Plan); err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Diet plan selected successfully",
		"diet_plan": req.Plan,
	})
}

// CurrentPlan godoc
// @Summary      Get current diet plan
// @Tags         diet-plans
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /diet-plans/current [get]
func (h *Handler) CurrentPlan(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	plan, err := h.service.CurrentPlan(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"diet_plan": plan})
}

// GetDailyPlan godoc
// @Summary      Get daily meal plan
// @Description  Fixed per-category meal plan derived from the stored
// @Description  diet plan; unrecognized values fall back to
// @Description  health-wellness.
// @Tags         diet-plans
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  MealPlan
// @Router       /diet-plans/daily-plan [get]
func (h *Handler) GetDailyPlan(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	plan, err := h.service.DailyPlanFor(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// AssessBMI godoc
// @Summary      BMI-driven calorie estimate
// @Description  Mifflin-St Jeor estimator; independent of the fixed
// @Description  daily meal plans.
// @Tags         diet-plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      BMIRequest  true  "Body metrics"
// @Success      200      {object}  Assessment
// @Failure      400      {object}  api.ErrorResponse
// @Router       /diet-plans/bmi [post]
func (h *Handler) AssessBMI(c *gin.Context) {
	var req BMIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	c.JSON(http.StatusOK, Assess(req.WeightKg, req.HeightCm, req.Age, req.Gender, req.Goal))
}
