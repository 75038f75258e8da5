package datastore

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

func rowID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Error(c, apperr.Validation("invalid id"))
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary      List all rows of an allowlisted table
// @Tags         data
// @Security     BearerAuth
// @Produce      json
// @Param        table  path      string  true  "Table name"
// @Success      200    {array}   Row
// @Failure      400    {object}  api.ErrorResponse
// @Router       /data/{table} [get]
func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), c.Param("table"))
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Get godoc
// @Summary      Get one row by id
// @Tags         data
// @Security     BearerAuth
// @Produce      json
// @Param        table  path      string  true  "Table name"
// @Param        id     path      int     true  "Row id"
// @Success      200    {object}  Row
// @Failure      404    {object}  api.ErrorResponse
// @Router       /data/{table}/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := rowID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), c.Param("table"), id)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Create godoc
// @Summary      Insert a row
// @Tags         data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        table  path      string                  true  "Table name"
// @Param        body   body      map[string]interface{}  true  "Column values"
// @Success      201    {object}  Row
// @Failure      400    {object}  api.ErrorResponse
// @Router       /data/{table} [post]
func (h *Handler) Create(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		api.Error(c, apperr.Validation("invalid request body"))
		return
	}

	row, err := h.service.Create(c.Request.Context(), c.Param("table"), fields)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

// Update godoc
// @Summary      Update a row
// @Tags         data
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        table  path      string                  true  "Table name"
// @Param        id     path      int                     true  "Row id"
// @Param        body   body      map[string]interface{}  true  "Column values"
// @Success      200    {object}  Row
// @Failure      404    {object}  api.ErrorResponse
// @Router       /data/{table}/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := rowID(c)
	if !ok {
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		api.Error(c, apperr.Validation("invalid request body"))
		return
	}

	row, err := h.service.Update(c.Request.Context(), c.Param("table"), id, fields)
	if err != nil {
		api.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete godoc
// @Summary      Delete a row
// @Tags         data
// @Security     BearerAuth
// @Param        table  path  string  true  "Table name"
// @Param        id     path  int     true  "Row id"
// @Success      204
// @Failure      404  {object}  api.ErrorResponse
// @Router       /data/{table}/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := rowID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("table"), id); err != nil {
		api.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
