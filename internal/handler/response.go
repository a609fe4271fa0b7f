package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashwinyue/sitechat/internal/service/types"
)

// ErrorResponse 对外错误响应
//
// 400 带字段级 details；5xx 只带通用 message，供应商错误原文和
// 堆栈永远不进响应体。
type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	Message string   `json:"message,omitempty"`
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, msg string, details []string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Details: details})
}

// ServiceUnavailable 通用 5xx 错误响应
func ServiceUnavailable(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "Service temporarily unavailable",
		Message: "Sorry, I could not process your message right now. Please try again in a moment.",
	})
}

// Error 按错误类型映射响应
func Error(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var verr *types.ValidationError
	if errors.As(err, &verr) {
		BadRequest(c, "Invalid request", verr.Details)
		return
	}

	// 超时/供应商错误：完整信息只进服务端日志
	var terr *types.TimeoutError
	var perr *types.ProviderError
	switch {
	case errors.As(err, &terr):
		log.Printf("completion timeout: %v", terr.Err)
	case errors.As(err, &perr):
		log.Printf("provider failure (status %d): %v", perr.StatusCode, perr.Err)
	default:
		log.Printf("unexpected chat error: %v", err)
	}
	ServiceUnavailable(c)
}
