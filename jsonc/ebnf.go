package jsonc

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarStart is the start production of the EBNF grammar.
const GrammarStart = "Document"

//go:embed grammar.ebnf
var grammarSource string

// GrammarSource returns the accepted syntax written in EBNF. Strings and
// comments are shown over printable ASCII; the parser itself accepts any
// character other than the closing quote or newline respectively.
func GrammarSource() string {
	return grammarSource
}

// Grammar parses and verifies the EBNF description of the accepted syntax.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, GrammarStart); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
