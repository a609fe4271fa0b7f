// Package postprocess 实现模型回复的归一化流水线
//
// 固定顺序：标点补空格 -> 有序列表重排号 -> 列表截断；
// 有咨询意向时追加：去联系方式 -> 按钮指代修正 -> 追加 CTA；
// 无意向时只做按钮指代修正。所有步骤都是纯文本变换。
package postprocess

import (
	"fmt"
	"regexp"
	"strings"
)

// Config 后处理配置
type Config struct {
	// MaxListItems 每段连续列表保留的最大条数
	MaxListItems int
	// CTAText 追加的固定行动号召文本
	CTAText string
	// CTAThanksLine 回复为空时 CTA 前置的致谢行
	CTAThanksLine string
	// CTASkipPhrases 回复中已出现其一（不区分大小写）则不再追加 CTA
	CTASkipPhrases []string
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		MaxListItems:  3,
		CTAText:       `Ready for the next step? Tap the "Book a Free Consultation" button below to schedule your visit.`,
		CTAThanksLine: "Thanks for reaching out!",
		CTASkipPhrases: []string{
			"book a free consultation",
			"book a consultation",
			"schedule a consultation",
			"consultation button",
			"button below",
			"tap the button",
		},
	}
}

var (
	// 句末标点后紧跟字母且无空格
	spacingRe = regexp.MustCompile(`([.!?])([A-Za-z])`)

	// 有序列表项：可选缩进、可选加粗标记、数字、'.' 或 ')'、可选加粗标记、空格、内容
	orderedItemRe = regexp.MustCompile(`^(\s*)(\*\*)?(\d+)([.)])(\*\*)?\s+(.*)$`)

	// 无序列表项
	bulletItemRe = regexp.MustCompile(`^\s*[-*•]\s+`)

	phoneRe = regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// 引导拨打电话的措辞，连同后面的冒号/空白一起去掉
	contactPhraseRe = regexp.MustCompile(`(?i)(call us directly at|or you can call( us)?( at)?|call us at)[:\s]*`)

	doubleSpaceRe = regexp.MustCompile(`[ \t]{2,}`)
	spacePunctRe  = regexp.MustCompile(` +([.,!?;:])`)
)

// buttonRewrite 把"按钮在网站页面上"的指代改写成内嵌组件的说法
type buttonRewrite struct {
	re   *regexp.Regexp
	repl string
}

var buttonRewrites = []buttonRewrite{
	{regexp.MustCompile(`(?i)\bvisit (our|the) website to (book|schedule)\b`), "use the button below to ${2}"},
	{regexp.MustCompile(`(?i)\bbutton (on|at) (our|the) (website|site|page)\b`), "button below"},
	{regexp.MustCompile(`(?i)\bon (our|the) (website|site|homepage)\b`), "right here in this chat"},
	{regexp.MustCompile(`(?i)\bat the top of the page\b`), "below this chat"},
}

// Pipeline 后处理流水线
type Pipeline struct {
	cfg *Config
}

// New 创建后处理流水线
func New(cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Pipeline{cfg: cfg}
}

// Apply 按固定顺序应用全部归一化步骤
func (p *Pipeline) Apply(text string, consultationIntent bool) string {
	out := p.FixSpacing(text)
	out = p.FixNumberedLists(out)
	out = p.LimitList(out)

	if consultationIntent {
		out = p.RemoveContactInfo(out)
		out = p.FixButtonReferences(out)
		out = p.AppendConsultationCTA(out)
	} else {
		// 模型可能在没有意向时也提到按钮
		out = p.FixButtonReferences(out)
	}
	return out
}

// FixSpacing 在句末标点和紧跟的字母之间补空格（"foo.Bar" -> "foo. Bar"）
func (p *Pipeline) FixSpacing(text string) string {
	return spacingRe.ReplaceAllString(text, "$1 $2")
}

// FixNumberedLists 对有序列表从 1 开始顺序重排号
//
// 无论模型给出什么数字都重排；空行把计数器重置为 1（视为新列表）。
func (p *Pipeline) FixNumberedLists(text string) string {
	lines := strings.Split(text, "\n")
	counter := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			counter = 0
			continue
		}
		m := orderedItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		counter++
		// m: [full, indent, bold1, digits, delim, bold2, content]
		lines[i] = fmt.Sprintf("%s%s%d%s%s %s", m[1], m[2], counter, m[4], m[5], m[6])
	}
	return strings.Join(lines, "\n")
}

// LimitList 每段连续列表只保留前 MaxListItems 条
//
// 连续段由空行或非列表行分隔；非列表行原样通过。
func (p *Pipeline) LimitList(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	run := 0
	for _, line := range lines {
		if isListItem(line) {
			run++
			if run > p.cfg.MaxListItems {
				continue
			}
		} else {
			run = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// RemoveContactInfo 去掉电话、邮箱以及引导拨打电话的措辞，并收拢残留空格
func (p *Pipeline) RemoveContactInfo(text string) string {
	out := contactPhraseRe.ReplaceAllString(text, "")
	out = phoneRe.ReplaceAllString(out, "")
	out = emailRe.ReplaceAllString(out, "")
	out = doubleSpaceRe.ReplaceAllString(out, " ")
	out = spacePunctRe.ReplaceAllString(out, "$1")

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// FixButtonReferences 改写把 CTA 按钮说成在网站页面上的措辞
func (p *Pipeline) FixButtonReferences(text string) string {
	out := text
	for _, r := range buttonRewrites {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return out
}

// AppendConsultationCTA 追加固定 CTA
//
// 回复已提到按钮/预约概念时跳过；回复为空时改为"致谢行 + CTA"。
func (p *Pipeline) AppendConsultationCTA(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return p.cfg.CTAThanksLine + "\n\n" + p.cfg.CTAText
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range p.cfg.CTASkipPhrases {
		if strings.Contains(lower, phrase) {
			return trimmed
		}
	}
	return trimmed + "\n\n" + p.cfg.CTAText
}

func isListItem(line string) bool {
	return orderedItemRe.MatchString(line) || bulletItemRe.MatchString(line)
}
