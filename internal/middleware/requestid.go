package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 头
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestID"

// RequestID 为每个请求分配 ID，优先沿用客户端传入的值
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID 从上下文读取请求 ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
