package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"halforms/backend/internal/monitoring"
)

// RateLimit 全局令牌桶限流，rps <= 0 时不限流
func RateLimit(rps float64, burst int, metrics *monitoring.Metrics) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			if metrics != nil {
				metrics.RecordRateLimitBlock()
			}
			c.Header("X-RateLimit-Limit", strconv.FormatFloat(rps, 'f', -1, 64))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code": http.StatusTooManyRequests,
				"msg":  "请求过于频繁，请稍后重试",
			})
			return
		}
		c.Next()
	}
}
