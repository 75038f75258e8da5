package api

import (
	"net/http"

	"gymtrack/internal/apperr"
	"gymtrack/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Kind  string `json:"kind" example:"validation"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Error writes a taxonomy error as JSON. Unexpected errors are logged
// and surfaced as 500 without leaking internals.
func Error(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
	}
	c.JSON(status, ErrorResponse{
		Error: apperr.Message(err),
		Kind:  string(apperr.KindOf(err)),
	})
}
