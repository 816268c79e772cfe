package translit

// The Ethiopic syllabary arranges each consonant in a row of eight vowel
// orders. Romanization is the row consonant plus the column vowel; the
// sixth order carries no vowel.

const (
	ethiopicBase = 0x1200
	ethiopicLast = 0x135A
)

var ethiopicConsonant = []string{
	"h", "l", "h", "m", "s", "r", "s", "sh",
	"q", "q", "b", "v", "t", "ch", "h", "n",
	"ny", "", "k", "k", "w", "", "z", "zh",
	"y", "d", "j", "g", "g", "t", "ch", "p",
	"ts", "ts", "f", "p",
}

var ethiopicVowel = [8]string{"e", "u", "i", "a", "ie", "", "o", "oa"}

// ethiopicSyllable romanizes one Ethiopic syllable. The two vowel-carrier
// rows (alef and ayin) contribute the vowel alone; their sixth order is
// rendered "i" so the syllable does not vanish.
func ethiopicSyllable(r rune) (string, bool) {
	if r < ethiopicBase || r > ethiopicLast {
		return "", false
	}
	idx := int(r - ethiopicBase)
	row, col := idx/8, idx%8
	if row >= len(ethiopicConsonant) {
		return "", false
	}
	c, v := ethiopicConsonant[row], ethiopicVowel[col]
	if c == "" && v == "" {
		v = "i"
	}
	return c + v, true
}
