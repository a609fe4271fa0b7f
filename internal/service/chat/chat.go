// Package chat 编排完整的问答流水线
package chat

import (
	"context"

	"github.com/ashwinyue/sitechat/internal/model"
	"github.com/ashwinyue/sitechat/internal/service/completion"
	"github.com/ashwinyue/sitechat/internal/service/gate"
	"github.com/ashwinyue/sitechat/internal/service/postprocess"
	"github.com/ashwinyue/sitechat/internal/service/validate"
)

// Service 聊天服务
//
// 流程：校验 -> 门控 -> {短路回复 | 补全 -> 后处理}。
// 除放行分支的对外补全调用外没有任何副作用，服务端不保存会话状态。
type Service struct {
	validator *validate.Validator
	gate      *gate.Pipeline
	adapter   *completion.Adapter
	post      *postprocess.Pipeline
}

// NewService 创建聊天服务
func NewService(validator *validate.Validator, gatePipe *gate.Pipeline, adapter *completion.Adapter, post *postprocess.Pipeline) *Service {
	return &Service{
		validator: validator,
		gate:      gatePipe,
		adapter:   adapter,
		post:      post,
	}
}

// Respond 处理一次聊天请求
//
// 返回 *types.ValidationError / *types.TimeoutError / *types.ProviderError
// 之一或成功响应；错误到 handler 边界再映射为 HTTP 状态。
func (s *Service) Respond(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	message, history, err := s.validator.Validate(req)
	if err != nil {
		return nil, err
	}

	result := s.gate.Evaluate(message, history)
	if result.Decision != gate.Proceed {
		return &model.ChatResponse{
			Response:           result.Reply,
			ConsultationIntent: false,
		}, nil
	}

	raw, err := s.adapter.Complete(ctx, message, history)
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{
		Response:           s.post.Apply(raw, result.ConsultationIntent),
		ConsultationIntent: result.ConsultationIntent,
	}, nil
}
