package resolve

import (
	"sync"
	"testing"

	"github.com/FocuswithJustin/Latinize/core/rules"
	"github.com/FocuswithJustin/Latinize/core/script"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	store, err := rules.Load()
	if err != nil {
		t.Fatalf("loading embedded rules: %v", err)
	}
	return New(store)
}

func TestResolveKnownLanguage(t *testing.T) {
	r := newResolver(t)
	set := r.Resolve("ukr", script.Cyrillic)
	if set.Lang != "ukr" {
		t.Errorf("Lang = %q, want ukr", set.Lang)
	}
	matches := set.MatchesAt([]rune("г"), 0)
	if len(matches) == 0 {
		t.Fatal("no rules matched Cyrillic ghe")
	}
	// The ukr-scoped override outranks the unrestricted default.
	if matches[0].Target != "h" {
		t.Errorf("top match target = %q, want h", matches[0].Target)
	}
}

func TestResolveDefaultCodesKnown(t *testing.T) {
	// The main language of every covered script is a known code even when
	// no rule is scoped to it explicitly: requesting it must resolve to the
	// code itself, not fall back as unrecognized.
	r := newResolver(t)
	tests := []struct {
		lcode string
		sc    script.Script
	}{
		{"ara", script.Arabic},
		{"ell", script.Greek},
		{"jpn", script.Hiragana},
		{"hin", script.Devanagari},
		{"zho", script.Han},
		{"kor", script.Hangul},
	}
	for _, tt := range tests {
		set := r.Resolve(tt.lcode, tt.sc)
		if set.Lang != tt.lcode {
			t.Errorf("Resolve(%q, %s).Lang = %q, want %q", tt.lcode, tt.sc, set.Lang, tt.lcode)
		}
	}
}

func TestResolveScriptDefault(t *testing.T) {
	r := newResolver(t)

	// No language given: the script's default language governs.
	set := r.Resolve("", script.Cyrillic)
	if set.Lang != "rus" {
		t.Errorf("Lang = %q, want rus", set.Lang)
	}
	matches := set.MatchesAt([]rune("г"), 0)
	if len(matches) == 0 || matches[0].Target != "g" {
		t.Errorf("default Cyrillic ghe should romanize as g")
	}

	// Unknown language code falls back the same way.
	set = r.Resolve("xx", script.Greek)
	if set.Lang != "ell" {
		t.Errorf("Lang = %q, want ell", set.Lang)
	}
}

func TestResolveUniversalFallback(t *testing.T) {
	r := newResolver(t)
	set := r.Resolve("", script.Unknown)
	if set.Lang != "" {
		t.Errorf("Lang = %q, want empty (universal)", set.Lang)
	}
	if set.Size() == 0 {
		t.Error("universal set must still carry unrestricted rules")
	}
}

func TestResolveCaching(t *testing.T) {
	r := newResolver(t)
	a := r.Resolve("jpn", script.Hiragana)
	b := r.Resolve("jpn", script.Hiragana)
	if a != b {
		t.Error("repeat resolution must return the cached set")
	}
	if r.CachedSets() != 1 {
		t.Errorf("CachedSets = %d, want 1", r.CachedSets())
	}
	r.Resolve("jpn", script.Katakana)
	if r.CachedSets() != 2 {
		t.Errorf("CachedSets = %d, want 2", r.CachedSets())
	}
}

func TestResolveConcurrent(t *testing.T) {
	r := newResolver(t)
	var wg sync.WaitGroup
	sets := make([]*rules.Set, 16)
	for i := range sets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sets[i] = r.Resolve("ara", script.Arabic)
		}(i)
	}
	wg.Wait()
	for i := 1; i < len(sets); i++ {
		if sets[i] != sets[0] {
			t.Fatal("concurrent resolution returned distinct sets for one key")
		}
	}
}
