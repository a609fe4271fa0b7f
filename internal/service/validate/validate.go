// Package validate 实现请求校验与清洗
//
// 进入分类/补全流程之前的信任边界：消息必须是 1-2000 字符的字符串，
// 历史必须是合法的 {role, content} 数组，超出部分直接丢弃。
package validate

import (
	"fmt"
	"html"
	"strings"

	"github.com/ashwinyue/sitechat/internal/model"
	"github.com/ashwinyue/sitechat/internal/service/types"
)

// Config 校验配置
type Config struct {
	// MaxMessageChars 校验接受的最大消息长度
	MaxMessageChars int
	// SanitizedChars 清洗后硬截断长度
	//
	// 注意：比 MaxMessageChars 小——消息可以通过校验但仍被截断到 250 字符。
	// 这是沿用的线上行为，不要"修复"。
	SanitizedChars int
	// MaxHistory 保留的历史条数
	MaxHistory int
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		MaxMessageChars: 2000,
		SanitizedChars:  250,
		MaxHistory:      10,
	}
}

// Validator 请求校验器
type Validator struct {
	cfg *Config
}

// New 创建校验器
func New(cfg *Config) *Validator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Validator{cfg: cfg}
}

// Validate 校验并清洗请求
//
// 返回清洗后的消息和最多 MaxHistory 条合法历史；
// 校验失败返回 *types.ValidationError，其中 Details 可直接对外。
func (v *Validator) Validate(req *model.ChatRequest) (string, []model.Message, error) {
	var details []string

	msg, ok := req.Message.(string)
	if !ok {
		details = append(details, "message is required and must be a string")
		return "", nil, &types.ValidationError{Details: details}
	}

	trimmed := strings.TrimSpace(msg)
	if n := len([]rune(trimmed)); n < 1 || n > v.cfg.MaxMessageChars {
		details = append(details, fmt.Sprintf("message must be between 1 and %d characters", v.cfg.MaxMessageChars))
		return "", nil, &types.ValidationError{Details: details}
	}

	message := v.Sanitize(html.EscapeString(trimmed))
	history := v.validateHistory(req.ConversationHistory)

	return message, history, nil
}

// Sanitize 清洗文本：去掉空字节并硬截断到 SanitizedChars
func (v *Validator) Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	if runes := []rune(s); len(runes) > v.cfg.SanitizedChars {
		return string(runes[:v.cfg.SanitizedChars])
	}
	return s
}

// validateHistory 过滤历史条目
//
// 非数组当作空历史；先取最近 MaxHistory 条再逐条过滤，
// 只保留 role ∈ {user, assistant} 且 content 为 1-2000 字符字符串的条目。
func (v *Validator) validateHistory(raw interface{}) []model.Message {
	entries, ok := raw.([]interface{})
	if !ok {
		return nil
	}

	if len(entries) > v.cfg.MaxHistory {
		entries = entries[len(entries)-v.cfg.MaxHistory:]
	}

	history := make([]model.Message, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]interface{})
		if !ok {
			continue
		}
		role, ok := m["role"].(string)
		if !ok || (role != model.RoleUser && role != model.RoleAssistant) {
			continue
		}
		content, ok := m["content"].(string)
		if !ok || content == "" || len([]rune(content)) > v.cfg.MaxMessageChars {
			continue
		}
		history = append(history, model.Message{
			Role:    role,
			Content: v.Sanitize(content),
		})
	}
	return history
}
