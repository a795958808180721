package parsing

import (
	"fmt"

	"github.com/clarete/parsing/trampoline"
)

// Opt makes p optional.  It always succeeds unless p errors: with the
// value of p wrapped in Some, or with None and no input consumed if p
// failed.
func Opt[T, E any](p *Parser[T, E]) *Parser[Option[T], E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[Option[T], E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[Option[T], E] {
			switch res.Kind {
			case KindSuccess:
				return NewSuccess(Some(res.Value), res.Remaining)
			case KindFailure:
				return NewSuccess(None[T](), r)
			}
			return retype[Option[T]](res)
		})
	})
}

// FollowedBy succeeds when p matches, but consumes no input
func FollowedBy[T, E any](p *Parser[T, E]) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[T, E] {
			if res.IsSuccess() {
				res.Remaining = r
			}
			return res
		})
	})
}

// NotFollowedBy succeeds when p fails and fails when p matches.  It
// never consumes input.  Errors from p are returned as they are.
func NotFollowedBy[T, E any](p *Parser[T, E]) *Parser[Unit, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[Unit, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[Unit, E] {
			switch res.Kind {
			case KindSuccess:
				return NewFailure[Unit](fmt.Sprintf("unexpected %v", res.Value), r)
			case KindFailure:
				return NewSuccess(Unit{}, r)
			}
			return retype[Unit](res)
		})
	})
}

// Not is NotFollowedBy
func Not[T, E any](p *Parser[T, E]) *Parser[Unit, E] {
	return NotFollowedBy(p)
}

func skipUntilStep[T, E any](p *Parser[T, E], r Reader[E]) trampoline.Trampoline[Result[T, E]] {
	return trampoline.FlatMap(p.Step(r), func(res Result[T, E]) trampoline.Trampoline[Result[T, E]] {
		if !res.IsFailure() {
			return done(res)
		}
		if r.AtEnd() {
			return done(NewFailure[T]("end of input", r))
		}
		return skipUntilStep(p, r.Rest())
	})
}

// SkipUntil moves forward one element at a time until p matches,
// ignoring everything before the match.  It fails if the input ends
// before that.
func SkipUntil[T, E any](p *Parser[T, E]) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return skipUntilStep(p, r)
	})
}
