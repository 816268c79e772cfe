package rules

import (
	"strings"
	"testing"

	"github.com/FocuswithJustin/Latinize/core/errors"
	"github.com/FocuswithJustin/Latinize/core/script"
)

func TestParseData(t *testing.T) {
	data := `# comment
::data-version 1.0

::s ш ::t sh
::s ة ::t h ::next WordEnd
::s ٥ ::t 5 ::num 5
::s г ::t h ::lcode ukr,bel
::s ъ ::t ""
::s َ ::t a
::s キャ ::t kya ::prio 42
`
	res, err := parseData("test", strings.NewReader(data), 0)
	if err != nil {
		t.Fatalf("parseData failed: %v", err)
	}
	if res.version != "1.0" {
		t.Errorf("version = %q, want 1.0", res.version)
	}
	if len(res.rules) != 7 {
		t.Fatalf("got %d rules, want 7", len(res.rules))
	}

	sha := res.rules[0]
	if string(sha.Pattern) != "ш" || sha.Target != "sh" || sha.Kind != KindLiteral {
		t.Errorf("unexpected first rule: %+v", sha)
	}
	if sha.Script != script.Cyrillic {
		t.Errorf("script not inferred: got %q", sha.Script)
	}
	if sha.Priority != PrioScript {
		t.Errorf("priority = %d, want %d", sha.Priority, PrioScript)
	}

	teh := res.rules[1]
	if teh.Kind != KindContextual || teh.Next != CtxWordEnd {
		t.Errorf("contextual rule not recognized: %+v", teh)
	}
	if teh.Priority != PrioScript+5 {
		t.Errorf("contextual priority = %d, want %d", teh.Priority, PrioScript+5)
	}

	five := res.rules[2]
	if five.Kind != KindNumeric || five.Value != 5 || five.Target != "5" {
		t.Errorf("numeric rule not recognized: %+v", five)
	}

	ukr := res.rules[3]
	if len(ukr.Langs) != 2 || ukr.Langs[0] != "ukr" || ukr.Langs[1] != "bel" {
		t.Errorf("lcode list not parsed: %+v", ukr.Langs)
	}
	if ukr.Priority != PrioLang {
		t.Errorf("lang priority = %d, want %d", ukr.Priority, PrioLang)
	}

	hard := res.rules[4]
	if hard.Target != "" {
		t.Errorf("empty target marker not honored: %q", hard.Target)
	}

	fatha := res.rules[5]
	if len(fatha.Pattern) != 1 || fatha.Pattern[0] != 0x064E {
		t.Errorf("unicode escape not decoded: %U", fatha.Pattern)
	}

	kya := res.rules[6]
	if len(kya.Pattern) != 2 || kya.Priority != 42 {
		t.Errorf("multi-codepoint pattern or explicit priority lost: %+v", kya)
	}
	if kya.ID != 6 {
		t.Errorf("rule IDs must follow registration order, got %d", kya.ID)
	}
}

func TestParseDataWhitespaceTarget(t *testing.T) {
	// A literal space cannot survive tokenization, so space targets are
	// written as escapes. The middle dot maps to a plain space this way.
	res, err := parseData("test", strings.NewReader(`::s ・ ::t \u0020`+"\n"), 0)
	if err != nil {
		t.Fatalf("parseData failed: %v", err)
	}
	if len(res.rules) != 1 {
		t.Fatalf("got %d rules, want 1", len(res.rules))
	}
	if res.rules[0].Target != " " {
		t.Errorf("target = %q, want a single space", res.rules[0].Target)
	}
}

func TestParseDataErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown directive", "::s a ::t b ::bogus x"},
		{"missing source value", "::s ::t b"},
		{"bad priority", "::s a ::t b ::prio twelve"},
		{"bad numeric", "::s a ::t b ::num one"},
		{"bad context class", "::s a ::t b ::next Sideways"},
		{"truncated escape", `::s \u06 ::t a`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseData("test", strings.NewReader(tt.data), 0)
			if err == nil {
				t.Fatalf("expected error for %q", tt.data)
			}
			var perr *errors.ParseError
			if !errors.As(err, &perr) {
				t.Errorf("expected ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestRuleMatches(t *testing.T) {
	line := []rune("مرحبة")
	teh := &Rule{Kind: KindContextual, Pattern: []rune("ة"), Target: "h", Next: CtxWordEnd}
	if !teh.Matches(line, 4) {
		t.Error("word-final teh marbuta should match CtxWordEnd")
	}

	mid := []rune("ةب")
	if teh.Matches(mid, 0) {
		t.Error("non-final teh marbuta should not match CtxWordEnd")
	}

	lit := &Rule{Kind: KindLiteral, Pattern: []rune("しゃ"), Target: "sha"}
	kana := []rune("しゃしん")
	if !lit.Matches(kana, 0) {
		t.Error("digraph should match at 0")
	}
	if lit.Matches(kana, 2) {
		t.Error("digraph should not match at 2")
	}
	if lit.Matches(kana, 3) {
		t.Error("pattern extending past end must not match")
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{` `, " "},
		{`á`, "á"},
		{`\U0001F600`, "\U0001F600"},
	}
	for _, tt := range tests {
		got, err := unescape(tt.in)
		if err != nil {
			t.Errorf("unescape(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
