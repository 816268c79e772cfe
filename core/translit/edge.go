// Package translit turns one line of text into a lattice of romanization
// candidates and assembles the best non-overlapping tiling of that lattice.
// Candidates come from the resolved rule set and from algorithmic providers
// for scripts that romanize compositionally (Hangul syllables, Ethiopic
// syllabary, precomposed and compatibility codepoints, case mapping).
package translit

import "fmt"

// EdgeType records which mechanism produced an edge.
type EdgeType string

const (
	// EdgeRule is a literal or contextual data rule match.
	EdgeRule EdgeType = "rule"
	// EdgeNumeric is a digit or numeral match carrying a value.
	EdgeNumeric EdgeType = "numeric"
	// EdgePassthrough copies the source codepoint unchanged.
	EdgePassthrough EdgeType = "passthrough"
	// EdgeDecompose romanizes through canonical or compatibility
	// decomposition of a single codepoint.
	EdgeDecompose EdgeType = "decompose"
	// EdgeHangul decomposes a precomposed Hangul syllable into jamo.
	EdgeHangul EdgeType = "hangul"
	// EdgeSyllabic romanizes a syllabary codepoint arithmetically.
	EdgeSyllabic EdgeType = "syllabic"
	// EdgeCase romanizes an uppercase letter through its lowercase rule.
	EdgeCase EdgeType = "case"
)

// Edge is one romanization candidate covering the half-open rune span
// [Start, End) of a line.
type Edge struct {
	Start int `json:"start"`
	End   int `json:"end"`

	// Text is the romanized output for the span.
	Text string `json:"text"`
	// Orig is the source text of the span.
	Orig string `json:"orig"`

	Type EdgeType `json:"type"`

	// Priority orders competing candidates for the same span.
	Priority int `json:"priority"`
	// RuleID identifies the data rule behind an EdgeRule or EdgeNumeric
	// edge; -1 for provider edges.
	RuleID int `json:"rule_id"`

	// Value carries the numeric value of an EdgeNumeric edge.
	Value    float64 `json:"value,omitempty"`
	HasValue bool    `json:"has_value,omitempty"`
}

// Span returns the number of runes the edge covers.
func (e Edge) Span() int { return e.End - e.Start }

func (e Edge) String() string {
	return fmt.Sprintf("[%d,%d) %q -> %q (%s)", e.Start, e.End, e.Orig, e.Text, e.Type)
}
