package rules

import _ "embed"

// embeddedRules is the versioned rule data set shipped with the library.
// The format is one rule per ::s line; see parser.go for the grammar.
//
//go:embed assets/romrules.txt
var embeddedRules []byte
