package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrUnknownCategory):
		RespondError(c, http.StatusBadRequest, "Unknown trip category (use local, outstation or college)")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Planning session not found or expired")
	case errors.Is(err, ErrInvalidSelection):
		RespondError(c, http.StatusBadRequest, "Selected item is not in the catalog")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrPackageNotFound):
		RespondError(c, http.StatusNotFound, "Package not found")
	case errors.Is(err, ErrContentAPIError):
		log.Printf("Content API error: %v", err)
		RespondError(c, http.StatusBadGateway, "Content service is unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
