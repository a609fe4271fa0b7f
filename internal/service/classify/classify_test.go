// Package classify 提供分类器单元测试
package classify

import (
	"testing"

	"github.com/ashwinyue/sitechat/internal/model"
)

func user(content string) model.Message {
	return model.Message{Role: model.RoleUser, Content: content}
}

func assistant(content string) model.Message {
	return model.Message{Role: model.RoleAssistant, Content: content}
}

func TestIsOffTopicGreetingExemption(t *testing.T) {
	c := New(nil)

	greetings := []string{
		"hi",
		"Hi there",
		"hello!",
		"Hello, anyone home?",
		"hey",
		"HEY",
		"good morning",
		"Good Afternoon",
		"good evening everyone",
	}

	for _, g := range greetings {
		if c.IsOffTopic(g, nil) {
			t.Errorf("greeting %q should never be off-topic", g)
		}
		// 历史无关紧要
		if c.IsOffTopic(g, []model.Message{user("what is the weather")}) {
			t.Errorf("greeting %q should never be off-topic regardless of history", g)
		}
	}
}

func TestIsOffTopicWithoutContext(t *testing.T) {
	c := New(nil)

	if !c.IsOffTopic("what is the weather today", nil) {
		t.Error("unrelated message with empty history should be off-topic")
	}
	if !c.IsOffTopic("who won the game last night", []model.Message{user("what is the weather")}) {
		t.Error("unrelated message with unrelated history should be off-topic")
	}
}

func TestIsOffTopicDomainKeywordInMessage(t *testing.T) {
	c := New(nil)

	for _, msg := range []string{
		"does botox hurt",
		"tell me about the HydraFacial",
		"what skincare memberships do you offer",
	} {
		if c.IsOffTopic(msg, nil) {
			t.Errorf("%q contains a domain keyword, should be on-topic", msg)
		}
	}
}

func TestIsOffTopicPriorContextKeepsOnTopic(t *testing.T) {
	c := New(nil)

	history := []model.Message{
		user("tell me about microneedling"),
		assistant("Microneedling stimulates collagen..."),
	}

	// 消息本身无关键词，但最近用户轮提供了领域上下文
	if c.IsOffTopic("does it hurt", history) {
		t.Error("follow-up with prior domain context should be on-topic")
	}
}

func TestIsOffTopicMetaRequestWithContext(t *testing.T) {
	c := New(nil)

	history := []model.Message{user("what treatments do you offer for acne")}

	if c.IsOffTopic("list the options for me", history) {
		t.Error("meta request with domain context should be on-topic")
	}
	if !c.IsOffTopic("list the ten best movies", nil) {
		t.Error("meta request without domain context should be off-topic")
	}
}

func TestIsRepeatedRequiresThreePriorUserTurns(t *testing.T) {
	c := New(nil)

	msg := "do you offer refunds"

	two := []model.Message{user(msg), assistant("..."), user(msg)}
	if c.IsRepeated(msg, two) {
		t.Error("two prior user turns should not count as repeated")
	}

	three := []model.Message{
		user(msg), assistant("..."),
		user(msg), assistant("..."),
		user(msg),
	}
	if !c.IsRepeated(msg, three) {
		t.Error("three identical prior user turns should be repeated")
	}
}

func TestIsRepeatedNormalizesCaseAndSpace(t *testing.T) {
	c := New(nil)

	history := []model.Message{
		user("Do You Offer Refunds"),
		user("  do you offer refunds  "),
		user("DO YOU OFFER REFUNDS"),
	}

	if !c.IsRepeated(" do you offer refunds ", history) {
		t.Error("repetition check should be case- and space-insensitive")
	}
}

func TestIsRepeatedMixedTurnsNotRepeated(t *testing.T) {
	c := New(nil)

	history := []model.Message{
		user("do you offer refunds"),
		user("what about exchanges"),
		user("do you offer refunds"),
	}

	if c.IsRepeated("do you offer refunds", history) {
		t.Error("non-identical recent turns should not be repeated")
	}
}

func TestDetectConsultationIntent(t *testing.T) {
	c := New(nil)

	cases := []struct {
		name    string
		message string
		history []model.Message
		want    bool
	}{
		{"keyword in message", "what is your pricing", nil, true},
		{"keyword uppercase", "PRICING please", nil, true},
		{"keyword in recent history", "does it hurt", []model.Message{user("can I book an appointment")}, true},
		{"no keyword anywhere", "does microneedling hurt", []model.Message{user("tell me about microneedling")}, false},
		{"keyword beyond recent window", "does it hurt", []model.Message{
			user("what does a consultation cost"),
			user("a"), user("b"), user("c"),
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.DetectConsultationIntent(tc.message, tc.history); got != tc.want {
				t.Fatalf("DetectConsultationIntent(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestClassifierUsesInjectedKeywordTables(t *testing.T) {
	c := New(&Config{
		ConsultationKeywords: []string{"banana"},
		DomainKeywords:       []string{"apple"},
		MetaRequestWords:     []string{"list"},
		GreetingPattern:      `^(hi|hello|hey|good (morning|afternoon|evening))`,
		RecentUserTurns:      3,
	})

	if !c.DetectConsultationIntent("I want a banana", nil) {
		t.Error("injected consultation keyword should match")
	}
	if c.IsOffTopic("an apple a day", nil) {
		t.Error("injected domain keyword should keep message on-topic")
	}
	if !c.IsOffTopic("what is your pricing", nil) {
		t.Error("default keywords should not leak into injected config")
	}
}
