// Package postprocess 提供归一化流水线单元测试
package postprocess

import (
	"strings"
	"testing"
)

func TestFixSpacing(t *testing.T) {
	p := New(nil)

	cases := []struct {
		in   string
		want string
	}{
		{"foo.Bar", "foo. Bar"},
		{"Done!Next step", "Done! Next step"},
		{"Really?Yes", "Really? Yes"},
		{"already fine. Keep it", "already fine. Keep it"},
		{"version 3.5 stays", "version 3.5 stays"},
	}

	for _, tc := range cases {
		if got := p.FixSpacing(tc.in); got != tc.want {
			t.Errorf("FixSpacing(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFixNumberedListsRenumbersFromOne(t *testing.T) {
	p := New(nil)

	in := "5. a\n7. b\n\n3. c"
	want := "1. a\n2. b\n\n1. c"
	if got := p.FixNumberedLists(in); got != want {
		t.Fatalf("FixNumberedLists(%q) = %q, want %q", in, got, want)
	}
}

func TestFixNumberedListsVariants(t *testing.T) {
	p := New(nil)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"paren delimiter", "4) first\n9) second", "1) first\n2) second"},
		{"bold markers", "**2.** Botox\n**5.** Fillers", "**1.** Botox\n**2.** Fillers"},
		{"indented", "  3. one\n  8. two", "  1. one\n  2. two"},
		{"interleaved prose keeps counting", "2. one\nsome note\n4. two", "1. one\nsome note\n2. two"},
		{"no list untouched", "just a paragraph.", "just a paragraph."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.FixNumberedLists(tc.in); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLimitListCapsRunsAtThree(t *testing.T) {
	p := New(nil)

	in := "1. a\n2. b\n3. c\n4. d\n5. e"
	want := "1. a\n2. b\n3. c"
	if got := p.LimitList(in); got != want {
		t.Fatalf("LimitList = %q, want %q", got, want)
	}
}

func TestLimitListResetsPerRun(t *testing.T) {
	p := New(nil)

	in := "- a\n- b\n- c\n- d\n\nsome prose\n\n- e\n- f\n- g\n- h"
	got := p.LimitList(in)

	if strings.Contains(got, "- d") || strings.Contains(got, "- h") {
		t.Fatalf("fourth items should be dropped: %q", got)
	}
	if !strings.Contains(got, "- c") || !strings.Contains(got, "- g") {
		t.Fatalf("third items should survive: %q", got)
	}
	if !strings.Contains(got, "some prose") {
		t.Fatalf("non-list lines must pass through unchanged: %q", got)
	}
}

func TestLimitListNonListPassthrough(t *testing.T) {
	p := New(nil)

	in := "line one\nline two\nline three\nline four\nline five"
	if got := p.LimitList(in); got != in {
		t.Fatalf("non-list lines must pass through unchanged: %q", got)
	}
}

func TestRemoveContactInfoStripsPhonesAndEmails(t *testing.T) {
	p := New(nil)

	cases := []string{
		"Call us directly at (555) 210-4488 to book.",
		"Reach us on 555-210-4488 anytime.",
		"Or you can call 555.210.4488 today.",
		"Write to hello@radianceaesthetics.com for details.",
		"Contact info@example.co.uk, we reply fast.",
		"+1 555 210 4488 is our line.",
	}

	for _, in := range cases {
		got := p.RemoveContactInfo(in)
		if phoneRe.MatchString(got) {
			t.Errorf("phone survived in %q -> %q", in, got)
		}
		if emailRe.MatchString(got) {
			t.Errorf("email survived in %q -> %q", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("double space left in %q -> %q", in, got)
		}
		if strings.Contains(got, " .") || strings.Contains(got, " ,") {
			t.Errorf("stray punctuation spacing in %q -> %q", in, got)
		}
	}
}

func TestRemoveContactInfoKeepsPlainText(t *testing.T) {
	p := New(nil)

	in := "Botox appointments usually take 30 minutes."
	if got := p.RemoveContactInfo(in); got != in {
		t.Fatalf("plain text changed: %q", got)
	}
}

func TestFixButtonReferences(t *testing.T) {
	p := New(nil)

	cases := []struct {
		in       string
		mustHave string
		mustNot  string
	}{
		{"Use the booking button on our website.", "button below", "on our website"},
		{"Visit our website to book an appointment.", "use the button below to book", "Visit our website"},
		{"You can find the form on the website.", "right here in this chat", "on the website"},
	}

	for _, tc := range cases {
		got := p.FixButtonReferences(tc.in)
		if !strings.Contains(strings.ToLower(got), tc.mustHave) {
			t.Errorf("FixButtonReferences(%q) = %q, missing %q", tc.in, got, tc.mustHave)
		}
		if strings.Contains(strings.ToLower(got), strings.ToLower(tc.mustNot)) {
			t.Errorf("FixButtonReferences(%q) = %q, still contains %q", tc.in, got, tc.mustNot)
		}
	}
}

func TestAppendConsultationCTA(t *testing.T) {
	p := New(nil)

	t.Run("appended to plain reply", func(t *testing.T) {
		got := p.AppendConsultationCTA("Botox smooths fine lines.")
		if !strings.HasSuffix(got, p.cfg.CTAText) {
			t.Fatalf("CTA not appended: %q", got)
		}
	})

	t.Run("skipped when button already referenced", func(t *testing.T) {
		in := "Just tap the button below to get started."
		got := p.AppendConsultationCTA(in)
		if strings.Count(strings.ToLower(got), "button below") != 1 {
			t.Fatalf("CTA should be skipped: %q", got)
		}
	})

	t.Run("empty reply gets thanks line", func(t *testing.T) {
		got := p.AppendConsultationCTA("")
		if !strings.HasPrefix(got, p.cfg.CTAThanksLine) {
			t.Fatalf("expected thanks prefix: %q", got)
		}
		if !strings.Contains(got, p.cfg.CTAText) {
			t.Fatalf("expected CTA present: %q", got)
		}
	})
}

func TestApplyConsultationPath(t *testing.T) {
	p := New(nil)

	raw := "We'd love to see you.Call us directly at (555) 210-4488 or email hello@spa.com.\n" +
		"5. Botox\n7. Fillers\n8. HydraFacial\n9. Peels"

	got := p.Apply(raw, true)

	if phoneRe.MatchString(got) || emailRe.MatchString(got) {
		t.Fatalf("contact info survived: %q", got)
	}
	if !strings.Contains(got, "1. Botox") || !strings.Contains(got, "3. HydraFacial") {
		t.Fatalf("list not renumbered: %q", got)
	}
	if strings.Contains(got, "Peels") {
		t.Fatalf("fourth list item should be dropped: %q", got)
	}
	if !strings.HasSuffix(got, p.cfg.CTAText) {
		t.Fatalf("CTA missing: %q", got)
	}
}

func TestApplyNonConsultationPath(t *testing.T) {
	p := New(nil)

	raw := "You can book with the button on our website. Call us at (555) 210-4488."
	got := p.Apply(raw, false)

	// 非咨询路径仍修正按钮指代
	if !strings.Contains(got, "button below") {
		t.Fatalf("button reference not fixed: %q", got)
	}
	// 但不做联系方式清理，也不追加 CTA
	if !phoneRe.MatchString(got) {
		t.Fatalf("phone should survive the non-consultation path: %q", got)
	}
	if strings.HasSuffix(got, p.cfg.CTAText) {
		t.Fatalf("CTA must not be appended without intent: %q", got)
	}
}
