package combinator

import "math"

// Unbounded as the max of Repeat allows any number of matches.
const Unbounded = math.MaxInt

// Repeat matches p between min and max times with nothing in between.
func Repeat[T any](p Parser[T], min, max int) Parser[[]T] {
	return RepeatSep(p, min, max, Noop())
}

// Many matches p zero or more times.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 0, Unbounded)
}

// Many1 matches p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Repeat(p, 1, Unbounded)
}

// SepBy matches zero or more p separated by sep.
func SepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return RepeatSep(p, 0, Unbounded, sep)
}

// RepeatSep matches p between min and max times, separated by sep.
//
// The bounds are strict. If p matches again after max matches the whole
// repetition fails, and if fewer than min items are found it fails with the
// diagnostic of the parser that stopped it (p, or sep when a separator was
// still needed). A separator that consumed input must be followed by another
// item; a missing separator after the last item is not an error.
//
// When an item and its separator consume nothing, an Unbounded repetition
// stops with the items matched so far and a bounded one fails, since p would
// keep matching past max.
func RepeatSep[T, S any](p Parser[T], min, max int, sep Parser[S]) Parser[[]T] {
	return func(input string) Result[[]T] {
		items := make([]T, 0)
		rest := input
		needItem := false
		for n := 0; ; n++ {
			r := p(rest)
			if !r.ok {
				if n >= min && !needItem {
					return Success(items, rest)
				}
				return failAs[[]T](r)
			}
			if n >= max {
				return Failure[[]T](rest)
			}
			items = append(items, r.Value)

			s := sep(r.Remainder)
			if !s.ok {
				if n+1 >= min {
					return Success(items, r.Remainder)
				}
				return failAs[[]T](s)
			}
			// Neither p nor sep moved forward, so every later round would
			// match the same way. A bounded repetition would run into max;
			// an unbounded one stops here.
			if len(s.Remainder) == len(rest) && n+1 >= min {
				if max != Unbounded {
					return Failure[[]T](rest)
				}
				return Success(items, s.Remainder)
			}
			needItem = len(s.Remainder) < len(r.Remainder)
			rest = s.Remainder
		}
	}
}
