// Package gate 实现请求门控
//
// 在调用供应商之前决定：重复提问 -> 固定拒答；无咨询意向且跑题 -> 固定引导；
// 否则放行并携带咨询意向标记。重复判定优先，胜出后不再计算其余分类。
package gate

import (
	"github.com/ashwinyue/sitechat/internal/model"
	"github.com/ashwinyue/sitechat/internal/service/classify"
)

// Decision 门控结果类型
type Decision int

const (
	// Proceed 放行，调用供应商
	Proceed Decision = iota
	// ShortCircuitRepeated 重复提问，直接返回固定拒答
	ShortCircuitRepeated
	// ShortCircuitOffTopic 跑题，直接返回固定引导
	ShortCircuitOffTopic
)

// Result 门控结果
type Result struct {
	Decision           Decision
	Reply              string // 短路时的固定回复文本
	ConsultationIntent bool
}

// Config 门控配置
type Config struct {
	RepeatedReply string
	OffTopicReply string
}

// Pipeline 门控流水线
type Pipeline struct {
	classifier *classify.Classifier
	cfg        *Config
}

// New 创建门控流水线
func New(classifier *classify.Classifier, cfg *Config) *Pipeline {
	return &Pipeline{classifier: classifier, cfg: cfg}
}

// Evaluate 对单个请求求值，无副作用
func (p *Pipeline) Evaluate(message string, history []model.Message) Result {
	if p.classifier.IsRepeated(message, history) {
		return Result{
			Decision: ShortCircuitRepeated,
			Reply:    p.cfg.RepeatedReply,
		}
	}

	intent := p.classifier.DetectConsultationIntent(message, history)

	if !intent && p.classifier.IsOffTopic(message, history) {
		return Result{
			Decision: ShortCircuitOffTopic,
			Reply:    p.cfg.OffTopicReply,
		}
	}

	return Result{
		Decision:           Proceed,
		ConsultationIntent: intent,
	}
}
