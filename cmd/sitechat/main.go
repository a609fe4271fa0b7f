package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/ashwinyue/sitechat/internal/config"
	"github.com/ashwinyue/sitechat/internal/handler"
	"github.com/ashwinyue/sitechat/internal/ratelimit"
	"github.com/ashwinyue/sitechat/internal/router"
	"github.com/ashwinyue/sitechat/internal/service"
)

func main() {
	// 加载 .env（不存在则只用环境变量）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// 加载配置
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if _, err := os.Stat("./configs/config.yaml"); err == nil {
			configPath = "./configs/config.yaml"
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置 Gin 模式
	gin.SetMode(cfg.Server.Mode)

	// 限流器：配置了 Redis 用共享计数，否则进程内固定窗口
	limiters := newLimiters(cfg)

	// 初始化各层
	services, err := service.NewServices(cfg)
	if err != nil {
		log.Fatalf("Failed to init services: %v", err)
	}
	handlers := handler.NewHandlers(services)

	// 初始化路由
	r := router.SetupRouter(handlers, cfg, limiters)

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// 启动服务器
	go func() {
		log.Printf("Server starting on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

func newLimiters(cfg *config.Config) *router.Limiters {
	chatWindow := time.Duration(cfg.RateLimit.Chat.WindowSeconds) * time.Second
	healthWindow := time.Duration(cfg.RateLimit.Health.WindowSeconds) * time.Second

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Printf("Rate limiting backed by redis at %s", cfg.Redis.GetAddr())
		return &router.Limiters{
			Chat:   ratelimit.NewRedis(client, "chat", cfg.RateLimit.Chat.Limit, chatWindow),
			Health: ratelimit.NewRedis(client, "health", cfg.RateLimit.Health.Limit, healthWindow),
		}
	}

	return &router.Limiters{
		Chat:   ratelimit.NewMemory(cfg.RateLimit.Chat.Limit, chatWindow, nil),
		Health: ratelimit.NewMemory(cfg.RateLimit.Health.Limit, healthWindow, nil),
	}
}
