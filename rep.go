package parsing

import (
	"fmt"

	"github.com/clarete/parsing/trampoline"
)

// Unbounded is the value of `max` for repetitions without an upper
// limit
const Unbounded = -1

func checkBounds(min, max int) {
	if min < 0 {
		panic(fmt.Sprintf("Can't parse a negative minimum of %d times", min))
	}
	if max != Unbounded && min > max {
		panic(fmt.Sprintf("Can't parse min %d times and max %d times", min, max))
	}
}

// repStep applies p to r until it fails or `max` is reached, folding
// the values into acc.  Every iteration goes through the trampoline,
// so long repetitions run in constant stack.
func repStep[T, S, E any](p *Parser[T, E], r Reader[E], acc S, n, min, max int, add func(S, T) S) trampoline.Trampoline[Result[S, E]] {
	return trampoline.More(func() trampoline.Trampoline[Result[S, E]] {
		if n == max {
			return done(NewSuccess(acc, r))
		}
		return trampoline.FlatMap(p.Step(r), func(res Result[T, E]) trampoline.Trampoline[Result[S, E]] {
			if res.IsSuccess() {
				return repStep(p, res.Remaining, add(acc, res.Value), n+1, min, max, add)
			}
			if res.IsError() || n < min {
				return done(retype[S](res))
			}
			// enough matches, the failed attempt consumed nothing
			return done(NewSuccess(acc, r))
		})
	})
}

func repWith[T, S, E any](p *Parser[T, E], min, max int, empty func() S, add func(S, T) S) *Parser[S, E] {
	checkBounds(min, max)
	if max == 0 {
		return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[S, E]] {
			return done(NewSuccess(empty(), r))
		})
	}
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[S, E]] {
		return repStep(p, r, empty(), 0, min, max, add)
	})
}

// Rep applies p repeatedly, collecting its values, at least `min` and
// at most `max` times (Unbounded for no limit).
//
// Fewer than `min` matches is a failure.  Once `min` is reached, the
// first failure ends the repetition successfully right before the
// attempt that didn't match.  An error always propagates, no matter
// how many matches came before it.  When `max` is zero p is never
// applied.  Bounds where `min` is greater than `max` panic.
func Rep[T, E any](p *Parser[T, E], min, max int) *Parser[[]T, E] {
	return repWith(p, min, max,
		func() []T { return []T{} },
		func(acc []T, v T) []T { return append(acc, v) })
}

// Many applies p zero or more times
func Many[T, E any](p *Parser[T, E]) *Parser[[]T, E] {
	return Rep(p, 0, Unbounded)
}

// Many1 applies p one or more times
func Many1[T, E any](p *Parser[T, E]) *Parser[[]T, E] {
	return Rep(p, 1, Unbounded)
}

// RepN applies p exactly n times
func RepN[T, E any](p *Parser[T, E], n int) *Parser[[]T, E] {
	return Rep(p, n, n)
}

// RepInto is Rep accumulating the values into a sequenceable value
// instead of a slice
func RepInto[S interface{ Append(T) S }, T, E any](p *Parser[T, E], empty S, min, max int) *Parser[S, E] {
	return repWith(p, min, max,
		func() S { return empty },
		func(acc S, v T) S { return acc.Append(v) })
}

func repSepWith[T, U, S, E any](p *Parser[T, E], sep *Parser[U, E], min, max int, empty func() S, add func(S, T) S) *Parser[S, E] {
	checkBounds(min, max)
	if max == 0 {
		return repWith(p, min, max, empty, add)
	}
	next := SeqIgnoreLeft(sep, p)
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[S, E]] {
		return trampoline.FlatMap(p.Step(r), func(first Result[T, E]) trampoline.Trampoline[Result[S, E]] {
			switch first.Kind {
			case KindSuccess:
				return repStep(next, first.Remaining, add(empty(), first.Value), 1, min, max, add)
			case KindFailure:
				if min == 0 {
					return done(NewSuccess(empty(), r))
				}
			}
			return done(retype[S](first))
		})
	})
}

// RepSep applies p repeatedly with sep between the occurrences,
// collecting the values of p.  Bounds count occurrences of p and
// behave like in Rep.  A separator that isn't followed by p is left in
// the input.
func RepSep[T, U, E any](p *Parser[T, E], sep *Parser[U, E], min, max int) *Parser[[]T, E] {
	return repSepWith(p, sep, min, max,
		func() []T { return []T{} },
		func(acc []T, v T) []T { return append(acc, v) })
}

// RepSepInto is RepSep accumulating into a sequenceable value
func RepSepInto[S interface{ Append(T) S }, T, U, E any](p *Parser[T, E], sep *Parser[U, E], empty S, min, max int) *Parser[S, E] {
	return repSepWith(p, sep, min, max,
		func() S { return empty },
		func(acc S, v T) S { return acc.Append(v) })
}
