package membership

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

// ListPlans godoc
// @Summary      List membership plans
// @Tags         memberships
// @Produce      json
// @Success      200  {array}  Plan
// @Router       /memberships/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog())
}

// Subscribe godoc
// @Summary      Subscribe to a membership plan
// @Description  Sets the plan with a one-year window starting now and
// @Description  queues a confirmation email.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      SubscribeRequest  true  "Plan"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Router       /memberships/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	status, err := h.service.Subscribe(c.Request.Context(), memberID, req.Plan)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Successfully subscribed to membership plan",
		"membership": status,
	})
}

// Upgrade godoc
// @Summary      Upgrade membership
// @Description  Replaces the plan in place; the billing window is
// @Description  unchanged. Elite members cannot upgrade further.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpgradeRequest  true  "Target plan"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  api.ErrorResponse
// @Router       /memberships/upgrade [post]
func (h *Handler) Upgrade(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	status, err := h.service.Upgrade(c.Request.Context(), memberID, req.NewPlan)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Membership upgraded successfully",
		"new_plan": status.Plan,
	})
}

// Cancel godoc
// @Summary      Cancel membership
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.MessageResponse
// @Router       /memberships/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	if err := h.service.Cancel(c.Request.Context(), memberID); err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership cancelled successfully"})
}

// GetStatus godoc
// @Summary      Current membership status
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Status
// @Router       /memberships/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	status, err := h.service.Status(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
