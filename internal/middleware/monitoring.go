package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"halforms/backend/internal/monitoring"
)

// HTTPMetrics HTTP 指标中间件
func HTTPMetrics(metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestSize := c.Request.ContentLength
		if requestSize < 0 {
			requestSize = 0
		}

		c.Next()

		// 未匹配路由时使用固定标签，避免标签基数膨胀
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		responseSize := int64(c.Writer.Size())
		if responseSize < 0 {
			responseSize = 0
		}

		metrics.RecordHTTPRequest(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
			requestSize,
			responseSize,
		)

		if c.Writer.Status() >= 500 {
			metrics.RecordError("http_error", "http")
		}
	}
}
