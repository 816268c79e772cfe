package romanize

import (
	"strconv"
	"strings"

	"github.com/FocuswithJustin/Latinize/core/errors"
)

// DecodeEscapes replaces \uXXXX and \UXXXXXXXX sequences with the
// codepoints they name. A backslash not starting a recognized escape is
// kept literally.
func DecodeEscapes(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != '\\' || i+1 >= len(rs) {
			b.WriteRune(rs[i])
			continue
		}
		var width int
		switch rs[i+1] {
		case 'u':
			width = 4
		case 'U':
			width = 8
		default:
			b.WriteRune(rs[i])
			continue
		}
		if i+2+width > len(rs) {
			return "", errors.NewValidation("text", "truncated unicode escape")
		}
		hex := string(rs[i+2 : i+2+width])
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return "", errors.NewValidation("text", "invalid unicode escape \\"+string(rs[i+1])+hex)
		}
		b.WriteRune(rune(v))
		i += 1 + width
	}
	return b.String(), nil
}
