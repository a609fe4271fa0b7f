package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LoggingMiddleware 日志中间件
//
// 为每个请求生成 request id（写入上下文和响应头）并记录耗时。
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)

		log.Printf("[%s] %s %s | Status: %d | Latency: %v | RequestID: %s",
			c.Request.Method,
			path,
			c.ClientIP(),
			c.Writer.Status(),
			latency,
			requestID,
		)
	}
}

// GetRequestID 从上下文获取 request id
func GetRequestID(c *gin.Context) string {
	if id, exists := c.Get("request_id"); exists {
		if requestID, ok := id.(string); ok {
			return requestID
		}
	}
	return ""
}
