package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key under which the request id is stored
const RequestIDKey = "request_id"

// RequestIDHeader is the HTTP header carrying the request id
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a unique id, reusing one supplied by the
// client. The id is stored in the gin context and echoed in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request id stored in the gin context
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
