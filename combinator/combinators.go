package combinator

import "unicode"

// Map replaces the value of a successful parse with f(value).
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(input string) Result[U] {
		r := p(input)
		if !r.ok {
			return failAs[U](r)
		}
		return Success(f(r.Value), r.Remainder)
	}
}

// Filter fails a successful parse whose value does not satisfy f.
func Filter[T any](p Parser[T], f func(T) bool) Parser[T] {
	return func(input string) Result[T] {
		r := p(input)
		if !r.ok {
			return r
		}
		if !f(r.Value) {
			return Failure[T](r.Remainder)
		}
		return r
	}
}

// FilterMap maps a successful value through f, failing when f reports false.
func FilterMap[T, U any](p Parser[T], f func(T) (U, bool)) Parser[U] {
	return func(input string) Result[U] {
		r := p(input)
		if !r.ok {
			return failAs[U](r)
		}
		v, ok := f(r.Value)
		if !ok {
			return Failure[U](r.Remainder)
		}
		return Success(v, r.Remainder)
	}
}

// Optional is the value of Maybe.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Maybe always succeeds. When p fails it consumes nothing and reports an
// absent value.
func Maybe[T any](p Parser[T]) Parser[Optional[T]] {
	return func(input string) Result[Optional[T]] {
		r := p(input)
		if !r.ok {
			return Success(Optional[T]{}, input)
		}
		return Success(Optional[T]{Value: r.Value, Present: true}, r.Remainder)
	}
}

// OrBlank is Maybe for text, yielding "" when p does not match.
func OrBlank(p Parser[string]) Parser[string] {
	return Map(Maybe(p), func(o Optional[string]) string { return o.Value })
}

// Or tries each parser in order on the same input and returns the first
// success. If all fail, the last failure is returned.
func Or[T any](ps ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		r := Failure[T](input)
		for _, p := range ps {
			if r = p(input); r.ok {
				return r
			}
		}
		return r
	}
}

// Pair holds the values of And.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And runs p, then q on p's remainder, keeping both values.
func And[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(input string) Result[Pair[A, B]] {
		a := p(input)
		if !a.ok {
			return failAs[Pair[A, B]](a)
		}
		b := q(a.Remainder)
		if !b.ok {
			return failAs[Pair[A, B]](b)
		}
		return Success(Pair[A, B]{First: a.Value, Second: b.Value}, b.Remainder)
	}
}

// SkipLeft runs p then q and keeps q's value.
func SkipLeft[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(And(p, q), func(v Pair[A, B]) B { return v.Second })
}

// SkipRight runs p then q and keeps p's value.
func SkipRight[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(And(p, q), func(v Pair[A, B]) A { return v.First })
}

// ConcatWith runs p then q and merges both values with combine.
func ConcatWith[T any](p, q Parser[T], combine func(T, T) T) Parser[T] {
	return Map(And(p, q), func(v Pair[T, T]) T { return combine(v.First, v.Second) })
}

// Concat runs the parsers in sequence and joins their text.
func Concat[S ~string](ps ...Parser[S]) Parser[S] {
	if len(ps) == 0 {
		return Map(Noop(), func(Unit) S { return "" })
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = ConcatWith(p, q, func(a, b S) S { return a + b })
	}
	return p
}

// Whitespace matches a possibly empty run of white space.
func Whitespace() Parser[string] {
	return Map(Many(Satisfy(unicode.IsSpace)), RunesToString)
}

// WithSpace runs p with leading and trailing white space discarded.
func WithSpace[T any](p Parser[T]) Parser[T] {
	ws := Whitespace()
	return SkipRight(SkipLeft(ws, p), ws)
}
