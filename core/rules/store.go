package rules

import (
	"bytes"
	"encoding/hex"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/Latinize/core/errors"
	"github.com/FocuswithJustin/Latinize/core/script"
	"github.com/FocuswithJustin/Latinize/internal/logging"
)

// Store is the immutable rule collection. Construct it with Load or
// LoadWithPacks; a Store is safe for unsynchronized concurrent reads.
type Store struct {
	version  string
	checksum string

	rules     []*Rule
	byScript  map[script.Script][]*Rule
	universal []*Rule
	langs     map[string]bool
}

// Load builds a Store from the embedded rule data set.
func Load() (*Store, error) {
	return LoadWithPacks()
}

// LoadWithPacks builds a Store from the embedded rule data set plus any
// number of external rule packs. Packs with an .xz suffix are decompressed
// transparently. Any malformed source fails the whole load; no partial
// store is ever returned.
func LoadWithPacks(packs ...string) (*Store, error) {
	s := &Store{
		byScript: make(map[script.Script][]*Rule),
		langs:    make(map[string]bool),
	}
	hasher := blake3.New()

	hasher.Write(embeddedRules)
	res, err := parseData("embedded", bytes.NewReader(embeddedRules), 0)
	if err != nil {
		return nil, err
	}
	if res.version == "" {
		return nil, errors.NewParse("rule file", "embedded", "missing ::data-version header")
	}
	s.version = res.version
	s.add(res.rules)

	for _, path := range packs {
		data, err := readPack(path)
		if err != nil {
			return nil, err
		}
		hasher.Write(data)
		res, err := parseData(path, bytes.NewReader(data), len(s.rules))
		if err != nil {
			return nil, err
		}
		s.add(res.rules)
	}

	// A script block's rules serve that script's default language even when
	// none of them is lcode-scoped, so the defaults count as known codes and
	// requesting one does not trip the unrecognized-language fallback.
	for sc := range s.byScript {
		if def := script.DefaultLang(sc); def != "" {
			s.langs[def] = true
		}
	}

	s.checksum = hex.EncodeToString(hasher.Sum(nil))
	logging.RuleLoading("embedded", s.version, len(s.rules), "packs", len(packs))
	return s, nil
}

// readPack reads an external rule pack, decompressing .xz files.
func readPack(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xzr, err := xz.NewReader(f)
		if err != nil {
			return nil, errors.NewParse("xz", path, err.Error())
		}
		r = xzr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}
	return data, nil
}

func (s *Store) add(rs []*Rule) {
	for _, r := range rs {
		s.rules = append(s.rules, r)
		if r.Script != "" {
			s.byScript[r.Script] = append(s.byScript[r.Script], r)
		} else {
			s.universal = append(s.universal, r)
		}
		for _, l := range r.Langs {
			s.langs[l] = true
		}
	}
}

// Version returns the ::data-version of the embedded rule data.
func (s *Store) Version() string {
	return s.version
}

// Checksum returns the hex BLAKE3 digest of all loaded rule data bytes.
// Cache layers key on it so stale caches are detected across data updates.
func (s *Store) Checksum() string {
	return s.checksum
}

// RuleCount returns the total number of loaded rules.
func (s *Store) RuleCount() int {
	return len(s.rules)
}

// KnownLang reports whether any loaded rule is scoped to the language code.
func (s *Store) KnownLang(lcode string) bool {
	return s.langs[lcode]
}

// Scripts returns the scripts that have at least one scoped rule, in
// name order.
func (s *Store) Scripts() []script.Script {
	out := make([]script.Script, 0, len(s.byScript))
	for sc := range s.byScript {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RulesFor returns the candidate rules admitted by a language code: every
// rule without a language restriction plus the rules scoped to lcode. Rules
// of other scripts stay in the set so mixed-script lines romanize fully;
// a pattern can only ever match its own codepoints.
func (s *Store) RulesFor(lcode string) []*Rule {
	out := make([]*Rule, 0, len(s.rules))
	for _, r := range s.rules {
		if len(r.Langs) == 0 || (lcode != "" && r.appliesTo(lcode)) {
			out = append(out, r)
		}
	}
	return out
}
