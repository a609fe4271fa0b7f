// Package handler 实现 HTTP 处理器
package handler

import (
	"github.com/ashwinyue/sitechat/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Chat *ChatHandler
}

// NewHandlers 创建所有处理器
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Chat: NewChatHandler(svc),
	}
}
