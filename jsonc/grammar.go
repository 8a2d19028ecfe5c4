package jsonc

import (
	"strconv"

	p "github.com/dhamidi/jcomb/combinator"
)

var (
	nullValue = p.Map(p.Literal("null"), func(string) Value { return Null{} })

	booleanValue = p.Or(
		p.Map(p.Literal("true"), func(string) Value { return Boolean(true) }),
		p.Map(p.Literal("false"), func(string) Value { return Boolean(false) }),
	)

	sign   = p.Map(p.AnyOf("+-"), func(r rune) string { return string(r) })
	digits = p.Map(p.Many1(p.Satisfy(isDigit)), p.RunesToString)

	numberText = p.Concat(
		p.OrBlank(sign),
		digits,
		p.OrBlank(p.Concat(p.Literal("."), digits)),
		p.OrBlank(p.Concat(p.Or(p.Literal("e"), p.Literal("E")), p.OrBlank(sign), digits)),
	)

	numberValue = p.FilterMap(numberText, decodeNumber)

	// Backslashes are ordinary characters; the first quote after the
	// opening one always closes the string.
	quotedText = p.SkipRight(
		p.SkipLeft(p.Literal(`"`), p.Map(p.Many(p.NoneOf(`"`)), p.RunesToString)),
		p.Literal(`"`),
	)

	stringValue = p.Map(quotedText, func(s string) Value { return String(s) })
)

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func decodeNumber(text string) (Value, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, false
	}
	return Number(f), true
}

// grammar holds the recursive rules. value is reached through Lazy because
// arrays and objects contain values.
type grammar struct {
	value p.Parser[Value]
}

func newGrammar() *grammar {
	g := &grammar{}
	g.value = p.Lazy(func() p.Parser[Value] {
		return p.Or(nullValue, numberValue, stringValue, booleanValue, g.array(), g.object())
	})
	return g
}

func (g *grammar) array() p.Parser[Value] {
	elements := p.SepBy(withComments(g.value), p.Literal(","))
	return p.Map(
		p.SkipRight(p.SkipLeft(p.Literal("["), elements), closing("]")),
		func(vs []Value) Value { return Array(vs) },
	)
}

func (g *grammar) object() p.Parser[Value] {
	member := p.Map(
		p.And(p.SkipRight(withComments(quotedText), p.Literal(":")), withComments(g.value)),
		func(kv p.Pair[string, Value]) Member { return Member{Key: kv.First, Value: kv.Second} },
	)
	members := p.SepBy(member, p.Literal(","))
	return p.Map(
		p.SkipRight(p.SkipLeft(p.Literal("{"), members), closing("}")),
		func(ms []Member) Value { return Object(ms) },
	)
}

// closing matches a closing bracket, allowing comments before it so that
// empty containers may contain white space.
func closing(bracket string) p.Parser[string] {
	return p.SkipLeft(comments, p.Literal(bracket))
}

func (g *grammar) document() p.Parser[Value] {
	return p.SkipRight(withComments(g.value), p.SkipLeft(comments, p.EOF()))
}

var std = newGrammar()

var document = std.document()

// The parsers below expose single grammar rules. None of them skips
// surrounding white space or comments.

func NullParser() p.Parser[Value]    { return nullValue }
func BooleanParser() p.Parser[Value] { return booleanValue }
func NumberParser() p.Parser[Value]  { return numberValue }
func StringParser() p.Parser[Value]  { return stringValue }
func ArrayParser() p.Parser[Value]   { return std.array() }
func ObjectParser() p.Parser[Value]  { return std.object() }
func ValueParser() p.Parser[Value]   { return std.value }
