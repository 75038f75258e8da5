package attendance

import (
	"net/http"
	"strconv"

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

// CheckIn godoc
// @Summary      Check in
// @Description  Opens an attendance record for the caller. A member
// @Description  with an open record gets 409.
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CheckInRequest  false  "Optional check-in time"
// @Success      201      {object}  Record
// @Failure      409      {object}  api.ErrorResponse
// @Router       /attendance/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	memberID, exists := auth.GetMemberID(c)
	if !exists {
		api.Error(c, apperr.Auth("member not authenticated"))
		return
	}

	var req CheckInRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Error(c, apperr.Validation("invalid request body"))
			return
		}
	}

	rec, err := h.service.CheckIn(c.Request.Context(), memberID, req.CheckInTime)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// CheckOut godoc
// @Summary      Check out
// @Tags         attendance
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int              true   "Record ID"
// @Param        request  body      CheckOutRequest  false  "Optional check-out time"
// @Success      200      {object}  Record
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /attendance/{id}/check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Error(c, apperr.Validation("invalid record id"))
		return
	}

	var req CheckOutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Error(c, apperr.Validation("invalid request body"))
			return
		}
	}

	rec, err := h.service.CheckOut(c.Request.Context(), recordID, req.CheckOutTime)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ListRecords godoc
// @Summary      List attendance records for a day
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Param        date       query     string  false  "Day (YYYY-MM-DD), default today"
// @Param        member_id  query     int     false  "Filter by member"
// @Success      200        {array}   RecordResponse
// @Failure      400        {object}  api.ErrorResponse
// @Router       /attendance [get]
func (h *Handler) ListRecords(c *gin.Context) {
	var memberID *int
	if raw := c.Query("member_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			api.Error(c, apperr.Validation("invalid member_id"))
			return
		}
		memberID = &id
	}

	records, err := h.service.RecordsOn(c.Request.Context(), c.Query("date"), memberID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// CurrentlyPresent godoc
// @Summary      Members currently in the gym
// @Tags         attendance
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  RecordResponse
// @Router       /attendance/current [get]
func (h *Handler) CurrentlyPresent(c *gin.Context) {
	records, err := h.service.CurrentlyPresent(c.Request.Context())
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// DeleteRecord godoc
// @Summary      Delete attendance record
// @Description  Unconditional removal for data correction.
// @Tags         attendance
// @Security     BearerAuth
// @Success      204
// @Router       /attendance/{id} [delete]
func (h *Handler) DeleteRecord(c *gin.Context) {
	recordID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Error(c, apperr.Validation("invalid record id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), recordID); err != nil {
		api.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
