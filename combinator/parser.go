package combinator

import (
	"strings"
	"sync"
	"unicode/utf8"
)

// Parser turns input text into a Result. Parsers are pure: the same input
// always produces the same result.
type Parser[T any] func(input string) Result[T]

// Parse runs the parser on input.
func (p Parser[T]) Parse(input string) Result[T] {
	return p(input)
}

// OrElse is Or(p, q).
func (p Parser[T]) OrElse(q Parser[T]) Parser[T] {
	return Or(p, q)
}

// Unit is the value of parsers that only recognize input.
type Unit struct{}

// Literal matches the exact text lit.
func Literal(lit string) Parser[string] {
	return func(input string) Result[string] {
		if rest, ok := strings.CutPrefix(input, lit); ok {
			return Success(lit, rest)
		}
		return Failure[string](input)
	}
}

// Satisfy matches a single character for which f holds.
func Satisfy(f func(rune) bool) Parser[rune] {
	return func(input string) Result[rune] {
		if input == "" {
			return Failure[rune](input)
		}
		r, size := utf8.DecodeRuneInString(input)
		if !f(r) {
			return Failure[rune](input)
		}
		return Success(r, input[size:])
	}
}

// AnyOf matches a single character contained in chars.
func AnyOf(chars string) Parser[rune] {
	return Satisfy(func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOf matches a single character not contained in chars.
func NoneOf(chars string) Parser[rune] {
	return Satisfy(func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// EOF succeeds only on empty input.
func EOF() Parser[Unit] {
	return func(input string) Result[Unit] {
		if input != "" {
			return Failure[Unit](input)
		}
		return Success(Unit{}, input)
	}
}

// Noop always succeeds without consuming input.
func Noop() Parser[Unit] {
	return func(input string) Result[Unit] {
		return Success(Unit{}, input)
	}
}

// Lazy defers calling build until the parser first runs. Recursive grammar
// rules must go through Lazy, otherwise building them never terminates.
// The built parser is cached, so build runs at most once.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var (
		once sync.Once
		p    Parser[T]
	)
	return func(input string) Result[T] {
		once.Do(func() { p = build() })
		return p(input)
	}
}

// RunesToString is a mapper for repetitions of single characters.
func RunesToString(rs []rune) string {
	return string(rs)
}
