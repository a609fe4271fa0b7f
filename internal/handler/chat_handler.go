package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/sitechat/internal/model"
	"github.com/ashwinyue/sitechat/internal/service"
)

// ChatHandler 聊天处理器
type ChatHandler struct {
	svc *service.Services
}

// NewChatHandler 创建聊天处理器
func NewChatHandler(svc *service.Services) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Chat 处理一次聊天请求
//
// POST /api/chat
// 200: {response, consultationIntent}
// 400: {error, details?}
// 5xx: {error, message}（通用文案）
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request", []string{"request body must be valid JSON"})
		return
	}

	resp, err := h.svc.Chat.Respond(c.Request.Context(), &req)
	if err != nil {
		Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health 健康检查
//
// GET /health
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.svc.Config.App.Name,
	})
}
