package handler

import (
	"net/http"
	"strconv"

	errs "employeeservice/internal/domain/error"
	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	"employeeservice/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// parseIDParam extracts a positive integer id from the named path parameter.
// On failure it writes the 400 response itself and reports ok=false.
func parseIDParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message:   "Invalid id format",
			RequestID: middleware.GetRequestID(c),
			Details:   "path parameter must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// respondBindingError writes the 400 response for a payload that failed binding
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Message:   "Invalid request payload",
		RequestID: middleware.GetRequestID(c),
		Details:   err.Error(),
	})
}

// respondError maps a domain error onto the HTTP error payload. Unexpected
// errors are logged server-side and reported with a generic message so
// internals never leak to clients.
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.HTTPStatus(err)

	if status == http.StatusInternalServerError {
		logger.Error("Request failed", map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
			"error":      err.Error(),
		})
		c.JSON(status, dto.ErrorResponse{
			Message:   "Internal server error",
			RequestID: middleware.GetRequestID(c),
		})
		return
	}

	c.JSON(status, dto.ErrorResponse{
		Message:   err.Error(),
		RequestID: middleware.GetRequestID(c),
	})
}
