package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/sitechat/internal/ratelimit"
)

// RateLimitMiddleware 限流中间件
//
// 按客户端地址计数；限流器后端故障时放行并记录日志。
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("rate limiter degraded: %v", err)
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":   "Too many requests",
				"message": "You have sent too many messages. Please wait a moment and try again.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
