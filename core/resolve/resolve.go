// Package resolve maps a (language code, script) pair to an ordered rule set.
// Resolution walks a fallback chain: an explicitly requested language that
// the store knows wins; otherwise the dominant script's default language is
// tried; otherwise only unrestricted rules apply. Resolved sets are cached
// and shared, so concurrent romanization of many lines pays the resolution
// cost once per pair.
package resolve

import (
	"sync"

	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
	"github.com/FocuswithJustin/Latinize/internal/logging"
)

type cacheKey struct {
	lcode  string
	script script.Script
}

// Resolver caches rule sets per (language code, script) pair. It is safe
// for concurrent use; the zero value is not usable, construct with New.
type Resolver struct {
	store *rules.Store
	cache sync.Map // cacheKey -> *rules.Set
}

func New(store *rules.Store) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the rule set for lcode and the line's dominant script.
// Resolution never fails: an unknown language falls back to the script's
// default language, and an unknown script to the unrestricted rules alone.
func (r *Resolver) Resolve(lcode string, sc script.Script) *rules.Set {
	key := cacheKey{lcode: lcode, script: sc}
	if cached, ok := r.cache.Load(key); ok {
		return cached.(*rules.Set)
	}

	effective := r.effectiveLang(lcode, sc)
	set := rules.BuildSet(effective, string(sc), r.store.RulesFor(effective))

	actual, _ := r.cache.LoadOrStore(key, set)
	return actual.(*rules.Set)
}

// effectiveLang picks the language whose rules govern the line.
func (r *Resolver) effectiveLang(lcode string, sc script.Script) string {
	if lcode != "" && r.store.KnownLang(lcode) {
		return lcode
	}
	def := script.DefaultLang(sc)
	if lcode != "" {
		logging.LanguageFallback(lcode, string(sc), "fallback", def)
	}
	if def != "" && r.store.KnownLang(def) {
		return def
	}
	return ""
}

// CachedSets reports how many (language, script) pairs have been resolved,
// for diagnostics.
func (r *Resolver) CachedSets() int {
	n := 0
	r.cache.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
