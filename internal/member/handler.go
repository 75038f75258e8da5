package member

import (
	"encoding/json"
	"net/http"
	"strings"

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

// Register godoc
// @Summary      Register new member
// @Description  Creates a member and returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Registration data"
// @Success      201      {object}  LoginResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	m, accessToken, refreshToken, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       *m,
	})
}

// Login godoc
// @Summary      Login member
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  LoginResponse
// @Failure      401      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation(err.Error()))
		return
	}

	m, accessToken, refreshToken, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Member:       *m,
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Error(c, apperr.Validation("refresh_token is required"))
		return
	}

	newAccessToken, m, err := h.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": newAccessToken,
		"member":       m,
	})
}

// GetMe godoc
// @Summary      Get current member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Member
// @Failure      401  {object}  api.ErrorResponse
// @Router       /me [get]
func (h *Handler) GetMe(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// UpdateMe godoc
// @Summary      Update current member profile
// @Description  Partial update; only full_name, email, current_weight,
// @Description  goal_weight, diet_plan and fitness_goals are accepted.
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      UpdateProfileRequest  true  "Fields to update"
// @Success      200      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Router       /me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	// Unknown fields are rejected, not silently dropped.
	var req UpdateProfileRequest
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		msg := err.Error()
		if strings.Contains(msg, "unknown field") {
			api.Error(c, apperr.Validation("invalid updates: "+msg))
			return
		}
		api.Error(c, apperr.Validation("invalid request body"))
		return
	}

	m, err := h.service.UpdateProfile(c.Request.Context(), memberID, req)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}
