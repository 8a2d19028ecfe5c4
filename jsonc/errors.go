package jsonc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Position is a location in the input. Line and Column are 1-based; Column
// counts characters, not bytes.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate finds where remainder starts inside input. remainder must be a
// suffix of input, which holds for every diagnostic the grammar produces.
func Locate(input, remainder string) Position {
	offset := len(input) - len(remainder)
	if offset < 0 || !strings.HasSuffix(input, remainder) {
		offset = 0
	}
	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	lineStart := strings.LastIndex(before, "\n") + 1
	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCountInString(before[lineStart:]) + 1,
	}
}

// ParseError reports a document that did not parse. Remainder is the
// unparsed input where the grammar gave up.
type ParseError struct {
	File      string
	Pos       Position
	Remainder string
}

func newParseError(file, input, remainder string) *ParseError {
	return &ParseError{
		File:      file,
		Pos:       Locate(input, remainder),
		Remainder: remainder,
	}
}

func (e *ParseError) Error() string {
	loc := e.Pos.String()
	if e.File != "" {
		loc = e.File + ":" + loc
	}
	if e.Remainder == "" {
		return loc + ": unexpected end of input"
	}
	return fmt.Sprintf("%s: unexpected %q", loc, snippet(e.Remainder))
}

func snippet(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if utf8.RuneCountInString(s) > 20 {
		s = string([]rune(s)[:20]) + "..."
	}
	return s
}
