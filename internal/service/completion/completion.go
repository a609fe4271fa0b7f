// Package completion 封装对外部补全供应商的单次调用
package completion

import (
	"context"
	"errors"
	"strings"
	"time"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/ashwinyue/sitechat/internal/model"
	"github.com/ashwinyue/sitechat/internal/service/types"
)

// Config 补全配置
type Config struct {
	// Persona 系统人设提示词，作为不可变配置注入
	Persona string
	// Timeout 单次调用时间预算
	Timeout time.Duration
	// MaxHistory 发给供应商的最大历史条数
	MaxHistory int
	// Temperature 采样温度
	Temperature float32
	// ShortReplyTokens / LongReplyTokens 回复长度预算；
	// 消息超过 LongQueryWords 个空白分隔词时用大预算
	ShortReplyTokens int
	LongReplyTokens  int
	LongQueryWords   int
}

// Adapter 补全适配器
type Adapter struct {
	chatModel ecomodel.ChatModel
	cfg       *Config
}

// New 创建补全适配器
func New(chatModel ecomodel.ChatModel, cfg *Config) *Adapter {
	return &Adapter{chatModel: chatModel, cfg: cfg}
}

// Complete 调用供应商生成回复
//
// 消息顺序：人设 system 消息 + 最近 MaxHistory 条历史 + 当前用户消息。
// 超时转换为 *types.TimeoutError，其余失败转换为 *types.ProviderError；
// 不重试，原始错误只供服务端日志使用。
func (a *Adapter) Complete(ctx context.Context, message string, history []model.Message) (string, error) {
	messages := a.buildMessages(message, history)

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	resp, err := a.chatModel.Generate(ctx, messages,
		ecomodel.WithTemperature(a.cfg.Temperature),
		ecomodel.WithMaxTokens(a.maxTokens(message)),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", &types.TimeoutError{Err: err}
		}
		// 供应商未附带状态码时按 500 处理
		return "", &types.ProviderError{StatusCode: 500, Err: err}
	}

	return strings.TrimSpace(resp.Content), nil
}

// buildMessages 构建发给供应商的消息序列
func (a *Adapter) buildMessages(message string, history []model.Message) []*schema.Message {
	if len(history) > a.cfg.MaxHistory {
		history = history[len(history)-a.cfg.MaxHistory:]
	}

	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, &schema.Message{
		Role:    schema.System,
		Content: a.cfg.Persona,
	})

	for _, m := range history {
		role := schema.User
		if m.Role == model.RoleAssistant {
			role = schema.Assistant
		}
		messages = append(messages, &schema.Message{
			Role:    role,
			Content: m.Content,
		})
	}

	messages = append(messages, &schema.Message{
		Role:    schema.User,
		Content: message,
	})
	return messages
}

// maxTokens 根据消息长短选择回复预算
func (a *Adapter) maxTokens(message string) int {
	if len(strings.Fields(message)) > a.cfg.LongQueryWords {
		return a.cfg.LongReplyTokens
	}
	return a.cfg.ShortReplyTokens
}
