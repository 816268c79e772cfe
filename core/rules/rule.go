// Package rules holds the immutable romanization rule store.
//
// Rules are loaded once, either from the embedded data set or from external
// rule packs, and are never mutated afterwards. The store indexes rules by
// language code and by script so the resolver can build per-(lcode, script)
// rule sets cheaply.
package rules

import (
	"strings"

	"github.com/FocuswithJustin/Latinize/core/script"
)

// Kind discriminates the closed set of rule variants.
type Kind int

const (
	// KindLiteral matches a fixed codepoint sequence.
	KindLiteral Kind = iota
	// KindContextual matches a fixed sequence gated by neighbor predicates.
	KindContextual
	// KindNumeric matches a digit codepoint and carries its numeric value.
	KindNumeric
)

// Priority bands by scope. A language-scoped rule always outranks a
// script-scoped one, which outranks a universal one. Algorithmic providers
// sit below universal rules and passthrough sits at zero.
const (
	PrioLang      = 30
	PrioScript    = 20
	PrioUniversal = 10
	PrioProvider  = 5
)

// Rule is one immutable transliteration rule.
type Rule struct {
	// ID is the registration order, used as the final deterministic tie-break.
	ID int

	Kind    Kind
	Pattern []rune // source codepoint sequence, never empty
	Target  string // romanized replacement, may be empty

	// Langs restricts the rule to specific ISO 639-3 codes. Empty means the
	// rule is scoped by Script alone, or universal when Script is also empty.
	Langs  []string
	Script script.Script

	// Priority is the tie-break weight. Derived from scope unless the rule
	// data overrides it with ::prio.
	Priority int

	// Prev and Next gate contextual rules. CtxNone on literal rules.
	Prev, Next CtxClass

	// Value is the numeric value of KindNumeric rules.
	Value float64
}

// appliesTo reports whether the rule is in scope for the given language code.
// Rules without language restriction apply to every code.
func (r *Rule) appliesTo(lcode string) bool {
	if len(r.Langs) == 0 {
		return true
	}
	for _, l := range r.Langs {
		if l == lcode {
			return true
		}
	}
	return false
}

// Matches reports whether the rule's pattern (and context, for contextual
// rules) matches line starting at position pos.
func (r *Rule) Matches(line []rune, pos int) bool {
	if pos+len(r.Pattern) > len(line) {
		return false
	}
	for i, p := range r.Pattern {
		if line[pos+i] != p {
			return false
		}
	}
	if r.Kind != KindContextual {
		return true
	}
	if !matchContext(r.Prev, line, pos-1) {
		return false
	}
	return matchContext(r.Next, line, pos+len(r.Pattern))
}

// String renders the rule in its data-file form, for diagnostics.
func (r *Rule) String() string {
	var sb strings.Builder
	sb.WriteString("::s ")
	sb.WriteString(string(r.Pattern))
	sb.WriteString(" ::t ")
	if r.Target == "" {
		sb.WriteString(`""`)
	} else {
		sb.WriteString(r.Target)
	}
	if len(r.Langs) > 0 {
		sb.WriteString(" ::lcode ")
		sb.WriteString(strings.Join(r.Langs, ","))
	}
	return sb.String()
}
