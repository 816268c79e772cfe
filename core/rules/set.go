package rules

import "sort"

// Set is an ordered, resolved rule collection for one (language code, script)
// pair. Sets are built by the resolver, cached, and shared across calls, so
// they must never be mutated after Build returns.
type Set struct {
	// Lang and Script identify the pair the set was resolved for.
	Lang   string
	Script string

	// byFirst indexes rules by the first codepoint of their pattern.
	// Each bucket is sorted longest pattern first, then priority, then ID.
	byFirst map[rune][]*Rule

	// maxPattern bounds the lookahead the matcher needs.
	maxPattern int
}

// BuildSet resolves an ordered rule set from candidate rules. The caller
// (the resolver) has already applied scope filtering; BuildSet only indexes.
func BuildSet(lang, scriptID string, candidates []*Rule) *Set {
	s := &Set{
		Lang:    lang,
		Script:  scriptID,
		byFirst: make(map[rune][]*Rule),
	}
	for _, r := range candidates {
		first := r.Pattern[0]
		s.byFirst[first] = append(s.byFirst[first], r)
		if len(r.Pattern) > s.maxPattern {
			s.maxPattern = len(r.Pattern)
		}
	}
	for _, bucket := range s.byFirst {
		sort.SliceStable(bucket, func(i, j int) bool {
			a, b := bucket[i], bucket[j]
			if len(a.Pattern) != len(b.Pattern) {
				return len(a.Pattern) > len(b.Pattern)
			}
			if a.Priority != b.Priority {
				return a.Priority > b.Priority
			}
			return a.ID < b.ID
		})
	}
	return s
}

// MaxPattern returns the longest pattern length in the set.
func (s *Set) MaxPattern() int {
	return s.maxPattern
}

// MatchesAt returns every rule in the set whose pattern (and context)
// matches line at pos, longest pattern first. The returned slice is freshly
// allocated only when there is at least one match.
func (s *Set) MatchesAt(line []rune, pos int) []*Rule {
	bucket := s.byFirst[line[pos]]
	if len(bucket) == 0 {
		return nil
	}
	var matches []*Rule
	for _, r := range bucket {
		if r.Matches(line, pos) {
			matches = append(matches, r)
		}
	}
	return matches
}

// Size returns the number of rules in the set.
func (s *Set) Size() int {
	n := 0
	for _, bucket := range s.byFirst {
		n += len(bucket)
	}
	return n
}
