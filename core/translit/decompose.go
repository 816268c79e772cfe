package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
)

// singleRuneTarget looks up the romanization of one codepoint in the rule
// set. Literal rules win over contextual ones; on a one-rune line the word
// boundary predicates hold trivially and would otherwise shadow the default.
func singleRuneTarget(set *rules.Set, r rune) (string, bool) {
	matches := set.MatchesAt([]rune{r}, 0)
	if len(matches) == 0 {
		return "", false
	}
	for _, m := range matches {
		if m.Kind != rules.KindContextual {
			return m.Target, true
		}
	}
	return matches[0].Target, true
}

// decomposeTarget romanizes a codepoint through its canonical or
// compatibility decomposition: combining marks are dropped and each
// remaining codepoint is romanized on its own. This covers precomposed
// Latin letters, fullwidth forms and halfwidth katakana without any data
// rules. ok is false when the codepoint does not decompose or when a
// decomposed part has no romanization.
func decomposeTarget(r rune, set *rules.Set) (string, bool) {
	d := norm.NFKD.String(string(r))
	if d == string(r) {
		return "", false
	}
	var b strings.Builder
	for _, dr := range d {
		if unicode.Is(unicode.Mn, dr) {
			continue
		}
		switch {
		case dr < 0x80 || script.Of(dr) == script.Latin:
			b.WriteRune(dr)
		default:
			t, ok := singleRuneTarget(set, dr)
			if !ok {
				if t, ok = hangulSyllable(dr); !ok {
					return "", false
				}
			}
			b.WriteString(t)
		}
	}
	return b.String(), true
}

// caseTarget romanizes an uppercase non-Latin letter by resolving its
// lowercase form and title-casing the result, so Greek and Cyrillic
// capitals need no rules of their own.
func caseTarget(r rune, set *rules.Set) (string, bool) {
	if !unicode.IsUpper(r) {
		return "", false
	}
	lower := unicode.ToLower(r)
	if lower == r {
		return "", false
	}
	t, ok := singleRuneTarget(set, lower)
	if !ok {
		t, ok = decomposeTarget(lower, set)
	}
	if !ok || t == "" {
		return "", false
	}
	return titleCase(t), true
}

func titleCase(s string) string {
	rs := []rune(s)
	rs[0] = unicode.ToUpper(rs[0])
	return string(rs)
}
