package router

import (
	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/sitechat/internal/config"
	"github.com/ashwinyue/sitechat/internal/handler"
	"github.com/ashwinyue/sitechat/internal/middleware"
	"github.com/ashwinyue/sitechat/internal/ratelimit"
	"github.com/ashwinyue/sitechat/web"
)

// Limiters 各端点的限流器
//
// 健康检查使用独立配额，不占用聊天配额。
type Limiters struct {
	Chat   ratelimit.Limiter
	Health ratelimit.Limiter
}

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, cfg *config.Config, limiters *Limiters) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.Server.AllowOrigin))

	// 健康检查
	r.GET("/health", middleware.RateLimitMiddleware(limiters.Health), h.Chat.Health)

	// API
	api := r.Group("/api")
	{
		api.POST("/chat", middleware.RateLimitMiddleware(limiters.Chat), h.Chat.Chat)
	}

	// 内嵌聊天组件页面与静态资源
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", web.Assets())
	})
	r.StaticFS("/static", web.Assets())

	return r
}
