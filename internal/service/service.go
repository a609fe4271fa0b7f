// Package service 组装业务服务
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ashwinyue/sitechat/internal/config"
	"github.com/ashwinyue/sitechat/internal/service/chat"
	"github.com/ashwinyue/sitechat/internal/service/classify"
	"github.com/ashwinyue/sitechat/internal/service/completion"
	"github.com/ashwinyue/sitechat/internal/service/gate"
	"github.com/ashwinyue/sitechat/internal/service/postprocess"
	"github.com/ashwinyue/sitechat/internal/service/validate"
)

// Services 服务集合
type Services struct {
	Chat   *chat.Service
	Config *config.Config
}

// NewServices 创建所有服务
//
// 人设、固定回复、CTA 文本全部来自配置；关键词表用 classify.DefaultConfig。
func NewServices(cfg *config.Config) (*Services, error) {
	ctx := context.Background()

	chatModel, err := newChatModel(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	classifier := classify.New(classify.DefaultConfig())

	gatePipe := gate.New(classifier, &gate.Config{
		RepeatedReply: cfg.Chat.RepeatedReply,
		OffTopicReply: cfg.Chat.OffTopicReply,
	})

	adapter := completion.New(chatModel, &completion.Config{
		Persona:          cfg.Chat.Persona,
		Timeout:          time.Duration(cfg.Chat.TimeoutSeconds) * time.Second,
		MaxHistory:       cfg.Chat.MaxHistory,
		Temperature:      cfg.Chat.Temperature,
		ShortReplyTokens: cfg.Chat.ShortReplyTokens,
		LongReplyTokens:  cfg.Chat.LongReplyTokens,
		LongQueryWords:   cfg.Chat.LongQueryWords,
	})

	postCfg := postprocess.DefaultConfig()
	if cfg.Chat.CTAText != "" {
		postCfg.CTAText = cfg.Chat.CTAText
	}
	post := postprocess.New(postCfg)

	chatSvc := chat.NewService(validate.New(validate.DefaultConfig()), gatePipe, adapter, post)

	return &Services{
		Chat:   chatSvc,
		Config: cfg,
	}, nil
}
