package translit

import (
	"strings"

	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
)

// sokuonEdge handles the small tsu by geminating the consonant of the
// following kana: っき becomes kki, っち becomes tchi (Hepburn). The edge
// spans the sokuon and the following match. ok is false when nothing
// romanizable follows, in which case the data fallback drops the sokuon.
func sokuonEdge(line []rune, pos int, set *rules.Set) (Edge, bool) {
	if line[pos] != 'っ' && line[pos] != 'ッ' {
		return Edge{}, false
	}
	if pos+1 >= len(line) {
		return Edge{}, false
	}
	matches := set.MatchesAt(line, pos+1)
	for _, m := range matches {
		if m.Kind == rules.KindContextual || m.Target == "" {
			continue
		}
		first := m.Target[0]
		if !strings.ContainsRune("bcdfghjklmnpqrstvwyz", rune(first)) {
			continue
		}
		prefix := string(first)
		if strings.HasPrefix(m.Target, "ch") {
			prefix = "t"
		}
		end := pos + 1 + len(m.Pattern)
		return Edge{
			Start:    pos,
			End:      end,
			Text:     prefix + m.Target,
			Orig:     string(line[pos:end]),
			Type:     EdgeRule,
			Priority: m.Priority,
			RuleID:   m.ID,
		}, true
	}
	return Edge{}, false
}

// chouonTarget handles the katakana prolonged sound mark by repeating the
// vowel of the preceding kana. ok is false at line start or after a
// non-kana codepoint; the data fallback then drops the mark.
func chouonTarget(line []rune, pos int, set *rules.Set) (string, bool) {
	if line[pos] != 'ー' {
		return "", false
	}
	for i := pos - 1; i >= 0; i-- {
		sc := script.Of(line[i])
		if sc != script.Hiragana && sc != script.Katakana {
			return "", false
		}
		t, ok := singleRuneTarget(set, line[i])
		if !ok {
			return "", false
		}
		if v, ok := lastVowel(t); ok {
			return v, true
		}
	}
	return "", false
}

func lastVowel(s string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case 'a', 'e', 'i', 'o', 'u':
			return string(s[i]), true
		}
	}
	return "", false
}
