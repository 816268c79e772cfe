// Command genscripts regenerates core/script/table_gen.go from the Unicode
// Character Database in XML form (ucd.nounihan.grouped.xml, plain or .xz).
//
// Usage:
//
//	genscripts --ucd ucd.nounihan.grouped.xml --output core/script/table_gen.go
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"
)

// scriptNames maps UCD script property codes to the names used by the
// range table. Codes outside this map are skipped; their codepoints fall
// back to Unknown at classification time.
var scriptNames = map[string]string{
	"Latn": "Latin", "Grek": "Greek", "Cyrl": "Cyrillic", "Armn": "Armenian",
	"Hebr": "Hebrew", "Arab": "Arabic", "Syrc": "Syriac", "Thaa": "Thaana",
	"Deva": "Devanagari", "Beng": "Bengali", "Guru": "Gurmukhi",
	"Gujr": "Gujarati", "Orya": "Oriya", "Taml": "Tamil", "Telu": "Telugu",
	"Knda": "Kannada", "Mlym": "Malayalam", "Sinh": "Sinhala",
	"Thai": "Thai", "Laoo": "Lao", "Tibt": "Tibetan", "Mymr": "Myanmar",
	"Geor": "Georgian", "Hang": "Hangul", "Ethi": "Ethiopic",
	"Cher": "Cherokee", "Khmr": "Khmer", "Mong": "Mongolian",
	"Hira": "Hiragana", "Kana": "Katakana", "Bopo": "Bopomofo",
	"Hani": "Han", "Yiii": "Yi", "Zyyy": "Common", "Zinh": "Inherited",
}

var CLI struct {
	UCD    string `name:"ucd" required:"" help:"Path to ucd.nounihan.grouped.xml (plain or .xz)" type:"existingfile"`
	Output string `name:"output" short:"o" default:"core/script/table_gen.go" help:"Generated file path"`
}

type span struct {
	lo, hi rune
	script string
}

func main() {
	kong.Parse(&CLI,
		kong.Name("genscripts"),
		kong.Description("Regenerate the script range table from the UCD"),
		kong.UsageOnError(),
	)
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "genscripts:", err)
		os.Exit(1)
	}
}

func run() error {
	spans, err := load(CLI.UCD)
	if err != nil {
		return err
	}
	spans = merge(spans)
	return write(CLI.Output, spans)
}

var charQuery = xpath.MustCompile("//*[local-name()='group']/*[local-name()='char']")

func load(path string) ([]span, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = bufio.NewReader(f)
	if strings.HasSuffix(path, ".xz") {
		if reader, err = xz.NewReader(reader.(*bufio.Reader)); err != nil {
			return nil, fmt.Errorf("opening xz stream: %w", err)
		}
	}

	doc, err := xmlquery.Parse(reader)
	if err != nil {
		return nil, fmt.Errorf("parsing UCD: %w", err)
	}

	var spans []span
	for _, char := range xmlquery.QuerySelectorAll(doc, charQuery) {
		sc := attrOrGroup(char, "sc")
		name, ok := scriptNames[sc]
		if !ok {
			continue
		}
		lo, hi, ok := charRange(char)
		if !ok {
			continue
		}
		spans = append(spans, span{lo: lo, hi: hi, script: name})
	}
	if len(spans) == 0 {
		return nil, fmt.Errorf("no script-bearing codepoints found in %s", path)
	}
	return spans, nil
}

// attrOrGroup reads an attribute from a char element, falling back to the
// enclosing group's default.
func attrOrGroup(n *xmlquery.Node, name string) string {
	if v := n.SelectAttr(name); v != "" {
		return v
	}
	if n.Parent != nil {
		return n.Parent.SelectAttr(name)
	}
	return ""
}

// charRange reads the codepoint span of a char element, which carries
// either cp or first-cp/last-cp.
func charRange(n *xmlquery.Node) (rune, rune, bool) {
	if cp := n.SelectAttr("cp"); cp != "" {
		v, err := strconv.ParseUint(cp, 16, 32)
		if err != nil {
			return 0, 0, false
		}
		return rune(v), rune(v), true
	}
	first, last := n.SelectAttr("first-cp"), n.SelectAttr("last-cp")
	if first == "" || last == "" {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseUint(first, 16, 32)
	hi, err2 := strconv.ParseUint(last, 16, 32)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return rune(lo), rune(hi), true
}

// merge sorts spans and fuses adjacent spans of the same script.
func merge(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })
	out := spans[:0]
	for _, s := range spans {
		n := len(out)
		if n > 0 && out[n-1].script == s.script && s.lo <= out[n-1].hi+1 {
			if s.hi > out[n-1].hi {
				out[n-1].hi = s.hi
			}
			continue
		}
		out = append(out, s)
	}
	return out
}

func write(path string, spans []span) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "// Code generated by tools/genscripts from the Unicode Character Database. DO NOT EDIT.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "package script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "// scriptRange assigns one script to an inclusive codepoint range.")
	fmt.Fprintln(w, "// Entries are sorted by lo and never overlap; Of relies on both.")
	fmt.Fprintln(w, "type scriptRange struct {")
	fmt.Fprintln(w, "\tlo, hi rune")
	fmt.Fprintln(w, "\tscript Script")
	fmt.Fprintln(w, "}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "var scriptRanges = []scriptRange{")
	for _, s := range spans {
		fmt.Fprintf(w, "\t{0x%04X, 0x%04X, %s},\n", s.lo, s.hi, s.script)
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}
