// Package testutil 提供测试辅助工具
package testutil

import (
	"context"
	"errors"
	"time"

	ecomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// MockChatModel Mock 补全模型
//
// 记录每次 Generate 收到的消息序列；Delay > 0 时先等待（可被 ctx 取消），
// 用于模拟慢供应商和超时。
type MockChatModel struct {
	Reply string
	Err   error
	Delay time.Duration

	Calls [][]*schema.Message
}

// Generate 实现 model.ChatModel 接口
func (m *MockChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...ecomodel.Option) (*schema.Message, error) {
	m.Calls = append(m.Calls, input)

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if m.Err != nil {
		return nil, m.Err
	}
	return &schema.Message{Role: schema.Assistant, Content: m.Reply}, nil
}

// Stream 实现 model.ChatModel 接口（测试不使用流式）
func (m *MockChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...ecomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not supported in mock")
}

// BindTools 实现 model.ChatModel 接口
func (m *MockChatModel) BindTools(tools []*schema.ToolInfo) error {
	return nil
}
