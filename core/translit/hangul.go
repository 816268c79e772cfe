package translit

// Precomposed Hangul syllables decompose arithmetically into lead, vowel
// and tail jamo. The tables follow Revised Romanization.

const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3

	jamoVowels = 21
	jamoTails  = 28
)

var hangulLead = [19]string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
	"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

var hangulVowel = [21]string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
	"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
	"eu", "ui", "i",
}

var hangulTail = [28]string{
	"", "k", "kk", "ks", "n", "nj", "nh", "t", "l", "lk",
	"lm", "lp", "ls", "lt", "lp", "lh", "m", "p", "ps", "t",
	"tt", "ng", "t", "t", "k", "t", "p", "h",
}

// hangulSyllable romanizes a precomposed Hangul syllable. ok is false
// for codepoints outside the syllable block.
func hangulSyllable(r rune) (string, bool) {
	if r < hangulBase || r > hangulLast {
		return "", false
	}
	idx := int(r - hangulBase)
	lead := idx / (jamoVowels * jamoTails)
	vowel := (idx / jamoTails) % jamoVowels
	tail := idx % jamoTails
	return hangulLead[lead] + hangulVowel[vowel] + hangulTail[tail], true
}
