// Package script classifies Unicode codepoints into writing systems.
//
// Classification is block-granular: each codepoint maps to the script that
// owns its Unicode block, with shared blocks reported as Common and combining
// mark blocks as Inherited. The range table lives in table_gen.go and is
// produced by tools/genscripts from the UCD.
package script

// Script identifies a writing system (e.g. "Cyrillic", "Han", "Arabic").
type Script string

// Scripts distinguished by the classifier. Anything else maps to Unknown.
const (
	Common    Script = "Common"
	Inherited Script = "Inherited"
	Unknown   Script = "Unknown"

	Latin      Script = "Latin"
	Greek      Script = "Greek"
	Cyrillic   Script = "Cyrillic"
	Armenian   Script = "Armenian"
	Hebrew     Script = "Hebrew"
	Arabic     Script = "Arabic"
	Syriac     Script = "Syriac"
	Thaana     Script = "Thaana"
	Devanagari Script = "Devanagari"
	Bengali    Script = "Bengali"
	Gurmukhi   Script = "Gurmukhi"
	Gujarati   Script = "Gujarati"
	Oriya      Script = "Oriya"
	Tamil      Script = "Tamil"
	Telugu     Script = "Telugu"
	Kannada    Script = "Kannada"
	Malayalam  Script = "Malayalam"
	Sinhala    Script = "Sinhala"
	Thai       Script = "Thai"
	Lao        Script = "Lao"
	Tibetan    Script = "Tibetan"
	Myanmar    Script = "Myanmar"
	Georgian   Script = "Georgian"
	Hangul     Script = "Hangul"
	Ethiopic   Script = "Ethiopic"
	Cherokee   Script = "Cherokee"
	Khmer      Script = "Khmer"
	Mongolian  Script = "Mongolian"
	Hiragana   Script = "Hiragana"
	Katakana   Script = "Katakana"
	Bopomofo   Script = "Bopomofo"
	Han        Script = "Han"
	Yi         Script = "Yi"
)

// Of returns the script owning the given codepoint. Unassigned or
// unclassified codepoints yield Unknown, never an error.
func Of(r rune) Script {
	lo, hi := 0, len(scriptRanges)
	for lo < hi {
		mid := (lo + hi) / 2
		rng := scriptRanges[mid]
		switch {
		case r < rng.lo:
			hi = mid
		case r > rng.hi:
			lo = mid + 1
		default:
			return rng.script
		}
	}
	return Unknown
}

// Dominant returns the dominant script of a line: the script with the most
// codepoints wins, ties broken by first occurrence. Common, Inherited and
// Unknown codepoints do not vote. A line with no voting codepoints is
// reported as Latin.
func Dominant(line string) Script {
	counts := make(map[Script]int)
	var order []Script
	for _, r := range line {
		s := Of(r)
		if s == Common || s == Inherited || s == Unknown {
			continue
		}
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}
	best := Latin
	bestCount := 0
	for _, s := range order {
		if counts[s] > bestCount {
			best = s
			bestCount = counts[s]
		}
	}
	return best
}

// defaultLangs maps a script to the ISO 639-3 code whose conventions are the
// least surprising default for that script.
var defaultLangs = map[Script]string{
	Greek:      "ell",
	Cyrillic:   "rus",
	Armenian:   "hye",
	Hebrew:     "heb",
	Arabic:     "ara",
	Syriac:     "syr",
	Thaana:     "div",
	Devanagari: "hin",
	Bengali:    "ben",
	Gurmukhi:   "pan",
	Gujarati:   "guj",
	Oriya:      "ori",
	Tamil:      "tam",
	Telugu:     "tel",
	Kannada:    "kan",
	Malayalam:  "mal",
	Sinhala:    "sin",
	Thai:       "tha",
	Lao:        "lao",
	Tibetan:    "bod",
	Myanmar:    "mya",
	Georgian:   "kat",
	Hangul:     "kor",
	Ethiopic:   "amh",
	Cherokee:   "chr",
	Khmer:      "khm",
	Mongolian:  "mon",
	Hiragana:   "jpn",
	Katakana:   "jpn",
	Bopomofo:   "zho",
	Han:        "zho",
	Yi:         "iii",
}

// DefaultLang returns the default ISO 639-3 language code inferred for a
// script, or the empty string when the script has no language default
// (Latin, Common, Unknown).
func DefaultLang(s Script) string {
	return defaultLangs[s]
}
