// Package classify 实现对消息和近期历史的确定性文本分类
//
// 所有分类器都是大小写不敏感的关键词/正则匹配，关键词表作为配置数据注入，
// 测试可以替换为小 fixture。
package classify

import (
	"regexp"
	"strings"

	"github.com/ashwinyue/sitechat/internal/model"
)

// Config 分类器配置
type Config struct {
	// ConsultationKeywords 咨询意向关键词
	ConsultationKeywords []string
	// DomainKeywords 业务领域与站内导航关键词
	DomainKeywords []string
	// MetaRequestWords 元请求开头词（"list"、"summarize" 等）
	MetaRequestWords []string
	// GreetingPattern 问候语正则（匹配则永远不算跑题）
	GreetingPattern string
	// RecentUserTurns 参与判定的最近用户轮数
	RecentUserTurns int
}

// Classifier 文本分类器
type Classifier struct {
	cfg        *Config
	greetingRe *regexp.Regexp
}

// New 创建分类器
func New(cfg *Config) *Classifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Classifier{
		cfg:        cfg,
		greetingRe: regexp.MustCompile("(?i)" + cfg.GreetingPattern),
	}
}

// DetectConsultationIntent 判断当前消息或最近用户轮中是否出现咨询意向关键词
func (c *Classifier) DetectConsultationIntent(message string, history []model.Message) bool {
	if containsAny(message, c.cfg.ConsultationKeywords) {
		return true
	}
	for _, m := range c.recentUserMessages(history) {
		if containsAny(m, c.cfg.ConsultationKeywords) {
			return true
		}
	}
	return false
}

// HasDomainContext 判断最近用户轮中是否出现领域关键词
func (c *Classifier) HasDomainContext(history []model.Message) bool {
	for _, m := range c.recentUserMessages(history) {
		if containsAny(m, c.cfg.DomainKeywords) {
			return true
		}
	}
	return false
}

// IsOffTopic 判断消息是否跑题
//
// 问候语豁免；有领域上下文时 "list/summarize/..." 这类元请求不算跑题；
// 消息本身带领域关键词不算跑题；否则只有在没有任何领域上下文时才算跑题。
func (c *Classifier) IsOffTopic(message string, history []model.Message) bool {
	trimmed := strings.TrimSpace(message)
	if c.greetingRe.MatchString(trimmed) {
		return false
	}

	lower := strings.ToLower(trimmed)
	if c.startsWithMetaWord(lower) && c.HasDomainContext(history) {
		return false
	}
	if containsAny(lower, c.cfg.DomainKeywords) {
		return false
	}
	return !c.HasDomainContext(history)
}

// IsRepeated 判断是否为重复提问
//
// 严格要求至少 RecentUserTurns 条此前的用户消息，且它们归一化
// （小写 + 去空白）后全部与当前消息一致。
func (c *Classifier) IsRepeated(message string, history []model.Message) bool {
	recent := c.recentUserMessages(history)
	if len(recent) < c.cfg.RecentUserTurns {
		return false
	}

	current := normalize(message)
	for _, m := range recent {
		if normalize(m) != current {
			return false
		}
	}
	return true
}

// recentUserMessages 返回最近 RecentUserTurns 条用户消息，按时间顺序
func (c *Classifier) recentUserMessages(history []model.Message) []string {
	var msgs []string
	for _, m := range history {
		if m.Role == model.RoleUser {
			msgs = append(msgs, m.Content)
		}
	}
	if len(msgs) > c.cfg.RecentUserTurns {
		msgs = msgs[len(msgs)-c.cfg.RecentUserTurns:]
	}
	return msgs
}

func (c *Classifier) startsWithMetaWord(lower string) bool {
	for _, w := range c.cfg.MetaRequestWords {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
