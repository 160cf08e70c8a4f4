package middleware

import (
	"time"

	coreport "employeeservice/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		logger.Info("Request processed", map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          ip,
			"request_id":  GetRequestID(c),
			"user_agent":  c.Request.UserAgent(),
			"errors":      c.Errors.Errors(),
			"status_text": statusText(statusCode),
		})
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
