// Package combinator provides a small backtracking parser-combinator engine.
//
// # Overview
//
// A Parser is a plain function from input text to a Result. Parsers hold no
// state of their own, so they can be stored in variables, passed around and
// combined freely:
//
//	digit  := combinator.Satisfy(unicode.IsDigit)
//	digits := combinator.Map(combinator.Many1(digit), combinator.RunesToString)
//	signed := combinator.Concat(combinator.OrBlank(combinator.Literal("-")), digits)
//
// # Results
//
// Every parser returns exactly one Result. A successful result carries the
// parsed value and the unconsumed remainder of the input, which is always a
// suffix of the text the parser was given. A failed result carries a
// diagnostic, which is the remainder of the input at the point of failure:
//
//	res := signed.Parse("-42 apples")
//	res.Value     // "-42"
//	res.Remainder // " apples"
//
// # Backtracking
//
// Or tries its alternatives in order against the same input; whatever the
// failed branch consumed is discarded. The first success wins. Sequencing
// (And, SkipLeft, SkipRight, Concat) stops at the first failing stage.
//
// # Repetition
//
// Repeat matches an item between min and max times, optionally separated by a
// second parser. The upper bound is strict: a further match past max fails the
// whole repetition instead of stopping early. A separator that consumed input
// must be followed by another item.
//
// # Recursion
//
// Grammar rules that refer to themselves are built with Lazy, which defers
// constructing the referenced parser until it first runs. Execution recursion
// depth follows the nesting depth of the input.
package combinator
