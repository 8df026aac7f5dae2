// middleware/logger.go
package middleware

import (
	"time"

	"solarhub/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		switch {
		case status >= 500:
			logger.Error("[%s] %s %d %s %v", c.Request.Method, path, status, c.ClientIP(), latency)
		case status >= 400:
			logger.Warn("[%s] %s %d %s %v", c.Request.Method, path, status, c.ClientIP(), latency)
		default:
			logger.Info("[%s] %s %d %s %v", c.Request.Method, path, status, c.ClientIP(), latency)
		}
	}
}
