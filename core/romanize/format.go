package romanize

import "github.com/FocuswithJustin/Latinize/core/errors"

// Format selects the shape of romanization output.
type Format int

const (
	// FormatStr renders plain romanized text.
	FormatStr Format = iota
	// FormatEdges returns the edge tilings behind the text, with spans,
	// originals and numeric values.
	FormatEdges
)

func (f Format) String() string {
	switch f {
	case FormatStr:
		return "str"
	case FormatEdges:
		return "edges"
	}
	return "unknown"
}

// ParseFormat maps a format name to its Format. "alts" and "lattice" are
// accepted as historical aliases of "edges".
func ParseFormat(name string) (Format, error) {
	switch name {
	case "str", "":
		return FormatStr, nil
	case "edges", "alts", "lattice":
		return FormatEdges, nil
	}
	return 0, errors.NewValidation("format", "must be str, edges, alts or lattice")
}
