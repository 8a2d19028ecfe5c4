package combinator

import "fmt"

// Result is the outcome of running a parser: either a value together with
// the unconsumed remainder, or a failure diagnostic.
type Result[T any] struct {
	Value      T
	Remainder  string
	Diagnostic string
	ok         bool
}

// Success builds a successful result.
func Success[T any](value T, remainder string) Result[T] {
	return Result[T]{Value: value, Remainder: remainder, ok: true}
}

// Failure builds a failed result carrying diagnostic.
func Failure[T any](diagnostic string) Result[T] {
	return Result[T]{Diagnostic: diagnostic}
}

// IsSuccess reports whether the parser matched.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Get returns the value and whether the parse succeeded.
func (r Result[T]) Get() (T, bool) {
	return r.Value, r.ok
}

// Err returns nil on success, or an *Error describing the failure.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &Error{Diagnostic: r.Diagnostic}
}

// Unwrap returns the parsed value and panics if the parse failed.
// It is meant for tests and for grammars known to match; parse errors
// are reported through the Result itself.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("combinator: unwrap of failed result: %q", r.Diagnostic))
	}
	return r.Value
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v, %q)", r.Value, r.Remainder)
	}
	return fmt.Sprintf("Failure(%q)", r.Diagnostic)
}

// failAs converts a failed result to another value type.
func failAs[U, T any](r Result[T]) Result[U] {
	return Failure[U](r.Diagnostic)
}

// Error is a parse failure turned into a Go error.
type Error struct {
	Diagnostic string
}

func (e *Error) Error() string {
	if e.Diagnostic == "" {
		return "parse failed at end of input"
	}
	return fmt.Sprintf("parse failed at %q", preview(e.Diagnostic, 32))
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
