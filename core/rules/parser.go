package rules

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/Latinize/core/errors"
	"github.com/FocuswithJustin/Latinize/core/script"
)

// ruleGrammar is the participle grammar for one rule data line: a sequence
// of ::key directives, each followed by its value tokens.
// Examples:
//
//	::s ш ::t sh
//	::s ة ::t h ::lcode ara ::next WordEnd
//	::s ٥ ::t 5 ::num 5
//
//nolint:govet // participle grammar tags are not standard struct tags
type ruleGrammar struct {
	Directives []*directive `parser:"@@+"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type directive struct {
	Key    string   `parser:"@Field"`
	Values []string `parser:"@Value*"`
}

// ruleLexer tokenizes rule data lines. Field must precede Value so that
// "::s" lexes as a directive key rather than a bare value.
var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `::[a-z][a-z0-9-]*`},
	{Name: "Value", Pattern: `[^\s]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var ruleParser = participle.MustBuild[ruleGrammar](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// emptyTarget is the data-file marker for an empty replacement string.
const emptyTarget = `""`

// parseResult carries everything extracted from one rule data source.
type parseResult struct {
	version string
	rules   []*Rule
}

// parseData parses one rule data source. Rule IDs continue from nextID so
// registration order stays globally deterministic across sources.
func parseData(name string, r io.Reader, nextID int) (*parseResult, error) {
	res := &parseResult{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parsed, err := ruleParser.ParseString(name, line)
		if err != nil {
			return nil, errors.NewParseLine("rule file", name, lineNo, err.Error())
		}

		first := parsed.Directives[0]
		if first.Key != "::s" {
			// Header directive (e.g. ::data-version 2026.1)
			if first.Key == "::data-version" && len(first.Values) == 1 {
				res.version = first.Values[0]
			}
			continue
		}

		rule, err := buildRule(parsed.Directives, nextID+len(res.rules))
		if err != nil {
			return nil, errors.NewParseLine("rule file", name, lineNo, err.Error())
		}
		res.rules = append(res.rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.NewIO("read", name, err)
	}
	return res, nil
}

// buildRule assembles a Rule from the directives of one ::s line.
func buildRule(dirs []*directive, id int) (*Rule, error) {
	r := &Rule{ID: id, Priority: -1}
	explicitScript := false

	for _, d := range dirs {
		switch d.Key {
		case "::s":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::s takes exactly one value")
			}
			src, err := unescape(d.Values[0])
			if err != nil {
				return nil, err
			}
			if src == "" {
				return nil, fmt.Errorf("empty source pattern")
			}
			r.Pattern = []rune(src)
		case "::t":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::t takes exactly one value")
			}
			if d.Values[0] != emptyTarget {
				tgt, err := unescape(d.Values[0])
				if err != nil {
					return nil, err
				}
				r.Target = tgt
			}
		case "::lcode":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::lcode takes exactly one value")
			}
			r.Langs = strings.Split(d.Values[0], ",")
		case "::script":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::script takes exactly one value")
			}
			r.Script = script.Script(d.Values[0])
			explicitScript = true
		case "::prio":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::prio takes exactly one value")
			}
			p, err := strconv.Atoi(d.Values[0])
			if err != nil {
				return nil, fmt.Errorf("invalid priority %q", d.Values[0])
			}
			r.Priority = p
		case "::num":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::num takes exactly one value")
			}
			v, err := strconv.ParseFloat(d.Values[0], 64)
			if err != nil {
				return nil, fmt.Errorf("invalid numeric value %q", d.Values[0])
			}
			r.Kind = KindNumeric
			r.Value = v
		case "::prev":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::prev takes exactly one value")
			}
			c, err := parseCtx(d.Values[0])
			if err != nil {
				return nil, err
			}
			r.Prev = c
		case "::next":
			if len(d.Values) != 1 {
				return nil, fmt.Errorf("::next takes exactly one value")
			}
			c, err := parseCtx(d.Values[0])
			if err != nil {
				return nil, err
			}
			r.Next = c
		default:
			return nil, fmt.Errorf("unknown directive %s", d.Key)
		}
	}

	if len(r.Pattern) == 0 {
		return nil, fmt.Errorf("rule has no source pattern")
	}
	if r.Kind != KindNumeric && (r.Prev != CtxNone || r.Next != CtxNone) {
		r.Kind = KindContextual
	}
	if !explicitScript {
		sc := script.Of(r.Pattern[0])
		if sc != script.Common && sc != script.Inherited && sc != script.Unknown {
			r.Script = sc
		}
	}
	if r.Priority < 0 {
		switch {
		case len(r.Langs) > 0:
			r.Priority = PrioLang
		case r.Script != "":
			r.Priority = PrioScript
		default:
			r.Priority = PrioUniversal
		}
		// Contextual rules outrank their literal siblings so the gated form
		// wins whenever its predicate holds.
		if r.Kind == KindContextual {
			r.Priority += 5
		}
	}
	return r, nil
}

// unescape decodes \uXXXX and \UXXXXXXXX escapes in rule source and target
// values, so combining marks and invisible codepoints stay readable in the
// data file.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\u`) && !strings.Contains(s, `\U`) {
		return s, nil
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == 'u' || s[i+1] == 'U') {
			n := 4
			if s[i+1] == 'U' {
				n = 8
			}
			if i+2+n > len(s) {
				return "", fmt.Errorf("truncated unicode escape in %q", s)
			}
			v, err := strconv.ParseUint(s[i+2:i+2+n], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid unicode escape in %q", s)
			}
			sb.WriteRune(rune(v))
			i += 2 + n
			continue
		}
		sb.WriteByte(s[i])
		i++
	}
	return sb.String(), nil
}
