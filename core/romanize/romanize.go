// Package romanize is the public entry point: it loads the rule store,
// wires the resolver and engine together, and exposes whole-text
// romanization in string and edge form.
package romanize

import (
	"strings"

	"github.com/FocuswithJustin/Latinize/core/resolve"
	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
	"github.com/FocuswithJustin/Latinize/core/translit"
)

// Options adjusts construction of a Romanizer.
type Options struct {
	// Packs are additional rule files, plain or xz-compressed, loaded
	// after the embedded data.
	Packs []string
	// Engine adjusts lattice assembly. Leaving it nil selects the default
	// longest-match configuration; a non-nil value is honored verbatim,
	// including PreferLongest=false.
	Engine *translit.Config
}

// Romanizer converts text in any script to the Latin alphabet. It is
// immutable after construction and safe for concurrent use.
type Romanizer struct {
	store  *rules.Store
	engine *translit.Engine
}

// New builds a Romanizer from the embedded rule data.
func New() (*Romanizer, error) {
	return NewWithOptions(Options{})
}

// NewWithOptions builds a Romanizer from the embedded rule data plus any
// configured packs.
func NewWithOptions(opts Options) (*Romanizer, error) {
	store, err := rules.LoadWithPacks(opts.Packs...)
	if err != nil {
		return nil, err
	}
	cfg := translit.Config{PreferLongest: true}
	if opts.Engine != nil {
		cfg = *opts.Engine
	}
	return &Romanizer{
		store:  store,
		engine: translit.NewWithConfig(resolve.New(store), cfg),
	}, nil
}

// Romanize converts text to its Latin-script rendering. Lines are
// romanized independently; CR and CRLF line endings are normalized to LF
// in the output. lcode is an ISO 639-3 language code and may be empty,
// in which case each line's dominant script picks the language.
func (r *Romanizer) Romanize(text, lcode string) string {
	lines := splitLines(text)
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderEdges(r.engine.Line(lcode, line))
	}
	return strings.Join(out, "\n")
}

// RomanizeText romanizes multi-line text with no language hint; each
// line's dominant script infers its language independently.
func (r *Romanizer) RomanizeText(text string) string {
	return r.Romanize(text, "")
}

// RomanizeLineEdges romanizes one line and returns its edge tiling.
// The line must not contain newlines.
func (r *Romanizer) RomanizeLineEdges(line, lcode string) []translit.Edge {
	return r.engine.Line(lcode, line)
}

// RomanizeEdges romanizes text and returns one edge tiling per line.
func (r *Romanizer) RomanizeEdges(text, lcode string) [][]translit.Edge {
	lines := splitLines(text)
	out := make([][]translit.Edge, len(lines))
	for i, line := range lines {
		out[i] = r.engine.Line(lcode, line)
	}
	return out
}

// RomanizeEscaped decodes \uXXXX and \UXXXXXXXX escapes in text and
// romanizes the result.
func (r *Romanizer) RomanizeEscaped(text, lcode string) (string, error) {
	decoded, err := DecodeEscapes(text)
	if err != nil {
		return "", err
	}
	return r.Romanize(decoded, lcode), nil
}

// Version reports the ::data-version of the loaded rule data.
func (r *Romanizer) Version() string { return r.store.Version() }

// Checksum reports the hex checksum of the loaded rule data.
func (r *Romanizer) Checksum() string { return r.store.Checksum() }

// RuleCount reports how many rules are loaded.
func (r *Romanizer) RuleCount() int { return r.store.RuleCount() }

// Scripts lists the scripts the rule data covers.
func (r *Romanizer) Scripts() []script.Script { return r.store.Scripts() }

// KnownLang reports whether the rule data scopes any rule to lcode.
func (r *Romanizer) KnownLang(lcode string) bool { return r.store.KnownLang(lcode) }

func renderEdges(edges []translit.Edge) string {
	var b strings.Builder
	for _, e := range edges {
		b.WriteString(e.Text)
	}
	return b.String()
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
