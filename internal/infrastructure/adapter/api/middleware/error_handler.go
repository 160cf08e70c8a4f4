package middleware

import (
	"net/http"

	coreport "employeeservice/internal/domain/port/core"
	"employeeservice/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware recovers from panics and returns appropriate error responses
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": GetRequestID(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Message:   "Internal server error",
					RequestID: GetRequestID(c),
				})
			}
		}()

		c.Next()
	}
}
