package rules

import (
	"unicode"

	"github.com/FocuswithJustin/Latinize/core/errors"
)

// CtxClass names a neighbor predicate for contextual rules. Predicates look
// at a single codepoint immediately before or after the matched pattern, so
// the lookbehind/lookahead window is bounded by one codepoint plus the
// line edges.
type CtxClass int

const (
	// CtxNone imposes no constraint.
	CtxNone CtxClass = iota
	// CtxWordStart requires the position to touch a word boundary on the left.
	CtxWordStart
	// CtxWordEnd requires the position to touch a word boundary on the right.
	CtxWordEnd
	// CtxVowel requires a vowel codepoint.
	CtxVowel
	// CtxConsonant requires a consonant codepoint.
	CtxConsonant
	// CtxVowelSign requires an Indic dependent vowel sign or virama.
	CtxVowelSign
)

var ctxNames = map[string]CtxClass{
	"None":      CtxNone,
	"WordStart": CtxWordStart,
	"WordEnd":   CtxWordEnd,
	"Vowel":     CtxVowel,
	"Consonant": CtxConsonant,
	"VowelSign": CtxVowelSign,
}

// parseCtx resolves a context class name from the rule data.
func parseCtx(name string) (CtxClass, error) {
	if c, ok := ctxNames[name]; ok {
		return c, nil
	}
	return CtxNone, errors.NewValidation("context", "unknown context class: "+name)
}

// matchContext evaluates a context class against the codepoint at pos.
// pos may be out of range; out-of-range counts as a word boundary and as
// neither vowel nor consonant.
func matchContext(c CtxClass, line []rune, pos int) bool {
	switch c {
	case CtxNone:
		return true
	case CtxWordStart, CtxWordEnd:
		if pos < 0 || pos >= len(line) {
			return true
		}
		return !unicode.IsLetter(line[pos]) && !unicode.IsMark(line[pos])
	case CtxVowel:
		if pos < 0 || pos >= len(line) {
			return false
		}
		return isVowel(line[pos])
	case CtxConsonant:
		if pos < 0 || pos >= len(line) {
			return false
		}
		r := line[pos]
		return unicode.IsLetter(r) && !isVowel(r)
	case CtxVowelSign:
		if pos < 0 || pos >= len(line) {
			return false
		}
		return isVowelSign(line[pos])
	}
	return false
}

// isVowel reports vowel-hood for the scripts where contextual rules use it.
// Latin vowels plus the independent vowels and long-vowel carriers of the
// scripts in the embedded data.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'A', 'E', 'I', 'O', 'U':
		return true
	// Arabic long-vowel carriers
	case 'ا', 'و', 'ي', 'آ', 'أ', 'إ', 'ى':
		return true
	// Hebrew matres lectionis
	case 'ו', 'י':
		return true
	}
	// Greek and Cyrillic vowels
	switch r {
	case 'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω',
		'ά', 'έ', 'ή', 'ί', 'ό', 'ύ', 'ώ',
		'а', 'е', 'ё', 'и', 'о', 'у', 'ы', 'э', 'ю', 'я', 'і', 'ї', 'є':
		return true
	}
	// Devanagari independent vowels
	if r >= 0x0904 && r <= 0x0914 {
		return true
	}
	return false
}

// vowelSignRanges covers the dependent vowel signs and viramas of the Indic
// blocks handled by the embedded data.
var vowelSignRanges = [][2]rune{
	{0x093A, 0x094D}, // Devanagari signs + virama
	{0x09BE, 0x09CD}, // Bengali
	{0x0A3E, 0x0A4D}, // Gurmukhi
	{0x0ABE, 0x0ACD}, // Gujarati
	{0x0B3E, 0x0B4D}, // Oriya
	{0x0BBE, 0x0BCD}, // Tamil
	{0x0C3E, 0x0C4D}, // Telugu
	{0x0CBE, 0x0CCD}, // Kannada
	{0x0D3E, 0x0D4D}, // Malayalam
	{0x0DCF, 0x0DDF}, // Sinhala
}

func isVowelSign(r rune) bool {
	for _, rng := range vowelSignRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}
