package rules

import "testing"

func TestMatchContext(t *testing.T) {
	line := []rune("ال كتاب")
	tests := []struct {
		name  string
		class CtxClass
		pos   int
		want  bool
	}{
		{"word start at line start", CtxWordStart, 0, true},
		{"word start mid-word", CtxWordStart, 1, false},
		{"word start after space", CtxWordStart, 3, true},
		{"word end at line end", CtxWordEnd, 6, true},
		{"word end mid-word", CtxWordEnd, 3, false},
		{"word end before space", CtxWordEnd, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			if tt.class == CtxWordStart {
				got = matchContext(tt.class, line, tt.pos-1)
			} else {
				got = matchContext(tt.class, line, tt.pos+1)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVowelClasses(t *testing.T) {
	for _, r := range []rune{'a', 'o', 'α', 'и', 'ا', 'अ'} {
		if !isVowel(r) {
			t.Errorf("%c should classify as vowel", r)
		}
	}
	for _, r := range []rune{'k', 'ш', 'ب', 'क'} {
		if isVowel(r) {
			t.Errorf("%c should not classify as vowel", r)
		}
	}

	// Devanagari vowel sign AA and Tamil vowel sign I are dependent signs;
	// the independent letters are not.
	if !isVowelSign(0x093E) || !isVowelSign(0x0BBF) {
		t.Error("dependent vowel signs not recognized")
	}
	if isVowelSign('अ') || isVowelSign('a') {
		t.Error("independent letters misclassified as vowel signs")
	}
}
