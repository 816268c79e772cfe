package translit

import (
	"github.com/FocuswithJustin/Latinize/core/resolve"
	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
)

// Config adjusts lattice assembly.
type Config struct {
	// PreferLongest makes assembly minimize the number of edges first,
	// so a digraph rule always beats the letter-by-letter tiling of the
	// same span. When false the total rule priority is maximized first.
	PreferLongest bool
}

// Engine turns lines into edge lattices and assembles romanizations.
// It is safe for concurrent use.
type Engine struct {
	resolver *resolve.Resolver
	cfg      Config
}

func New(res *resolve.Resolver) *Engine {
	return NewWithConfig(res, Config{PreferLongest: true})
}

func NewWithConfig(res *resolve.Resolver, cfg Config) *Engine {
	return &Engine{resolver: res, cfg: cfg}
}

// Line romanizes a single line (no newlines) for the given language code
// and returns the winning edge tiling. The line's dominant script drives
// rule resolution; an empty line yields no edges.
func (e *Engine) Line(lcode, line string) []Edge {
	runes := []rune(line)
	if len(runes) == 0 {
		return nil
	}
	set := e.resolver.Resolve(lcode, script.Dominant(line))
	lattice := e.lattice(runes, set)
	return mergeNumbers(assemble(lattice, len(runes), e.cfg))
}

// lattice collects every candidate edge starting at each rune position.
// Position i of the result is never empty: the passthrough candidate
// guarantees a complete tiling exists.
func (e *Engine) lattice(line []rune, set *rules.Set) [][]Edge {
	out := make([][]Edge, len(line))
	for pos, r := range line {
		var cands []Edge

		for _, m := range set.MatchesAt(line, pos) {
			end := pos + len(m.Pattern)
			edge := Edge{
				Start:    pos,
				End:      end,
				Text:     m.Target,
				Orig:     string(line[pos:end]),
				Type:     EdgeRule,
				Priority: m.Priority,
				RuleID:   m.ID,
			}
			if m.Kind == rules.KindNumeric {
				edge.Type = EdgeNumeric
				edge.Value = m.Value
				edge.HasValue = true
			}
			cands = append(cands, edge)
		}

		if edge, ok := sokuonEdge(line, pos, set); ok {
			cands = append(cands, edge)
		}
		if t, ok := chouonTarget(line, pos, set); ok {
			cands = append(cands, Edge{
				Start: pos, End: pos + 1, Text: t, Orig: string(r),
				Type: EdgeRule, Priority: rules.PrioScript, RuleID: -1,
			})
		}
		if t, ok := hangulSyllable(r); ok {
			cands = append(cands, Edge{
				Start: pos, End: pos + 1, Text: t, Orig: string(r),
				Type: EdgeHangul, Priority: rules.PrioProvider, RuleID: -1,
			})
		}
		if t, ok := ethiopicSyllable(r); ok {
			cands = append(cands, Edge{
				Start: pos, End: pos + 1, Text: t, Orig: string(r),
				Type: EdgeSyllabic, Priority: rules.PrioProvider, RuleID: -1,
			})
		}
		if t, ok := caseTarget(r, set); ok {
			cands = append(cands, Edge{
				Start: pos, End: pos + 1, Text: t, Orig: string(r),
				Type: EdgeCase, Priority: rules.PrioProvider, RuleID: -1,
			})
		}
		if t, ok := decomposeTarget(r, set); ok {
			cands = append(cands, Edge{
				Start: pos, End: pos + 1, Text: t, Orig: string(r),
				Type: EdgeDecompose, Priority: rules.PrioProvider, RuleID: -1,
			})
		}

		// Identity fallback: codepoints nothing else covers survive
		// unchanged, so a tiling always exists.
		cands = append(cands, Edge{
			Start: pos, End: pos + 1, Text: string(r), Orig: string(r),
			Type: EdgePassthrough, RuleID: -1,
		})

		out[pos] = cands
	}
	return out
}

// mergeNumbers folds runs of adjacent single-digit numeric edges into one
// edge whose value is the whole number they spell.
func mergeNumbers(edges []Edge) []Edge {
	out := edges[:0]
	for _, e := range edges {
		n := len(out)
		if n > 0 && mergeableDigits(out[n-1], e) {
			prev := &out[n-1]
			prev.End = e.End
			prev.Text += e.Text
			prev.Orig += e.Orig
			prev.Value = prev.Value*10 + e.Value
			continue
		}
		out = append(out, e)
	}
	return out
}

func mergeableDigits(a, b Edge) bool {
	return a.Type == EdgeNumeric && b.Type == EdgeNumeric &&
		a.End == b.Start &&
		b.Value >= 0 && b.Value <= 9 && b.Value == float64(int(b.Value)) &&
		a.Value == float64(int(a.Value))
}
