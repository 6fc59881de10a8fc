package utils

import (
	"errors"
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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: TraceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: TraceID(c),
	})
}

// RespondErrorWithData is RespondError with a payload, for failures that still
// carry a well-formed (usually empty) result.
func RespondErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: TraceID(c),
		Data:    data,
	})
}

func TraceID(c *gin.Context) string {
	traceID, _ := c.Get("trace_id")
	id, _ := traceID.(string)
	return id
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Record not found")
	case errors.Is(err, ErrCatalogUnavailable):
		RespondError(c, http.StatusServiceUnavailable, "Catalog search is not available")
	case errors.Is(err, ErrAnalysisFailed):
		RespondError(c, http.StatusInternalServerError, "Failed to analyze travel request")
	case errors.Is(err, ErrLLMUnavailable), errors.Is(err, ErrUnexpectedBehaviorOfAI):
		RespondError(c, http.StatusBadGateway, "AI service returned an unusable response")
	case errors.Is(err, ErrDatabaseError):
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
