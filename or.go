package parsing

import "github.com/clarete/parsing/trampoline"

// furthest picks between two failures the one that got further into
// the input.  Ties go to the alternative.
func furthest[V, E any](first, alt Result[V, E]) Result[V, E] {
	if offsetOf(alt) < offsetOf(first) {
		return first
	}
	return alt
}

func orWith[T, U, V, E any](p *Parser[T, E], q *Parser[U, E], left func(T) V, right func(U) V) *Parser[V, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[V, E]] {
		return trampoline.FlatMap(p.Step(r), func(first Result[T, E]) trampoline.Trampoline[Result[V, E]] {
			switch first.Kind {
			case KindSuccess:
				return done(MapResult(first, left))
			case KindError:
				return done(retype[V](first))
			}
			// the alternative starts from the same cursor p did
			return trampoline.Map(q.Step(r), func(alt Result[U, E]) Result[V, E] {
				if alt.IsSuccess() {
					return MapResult(alt, right)
				}
				return furthest(retype[V](first), retype[V](alt))
			})
		})
	})
}

// Or tries p and, only if it fails without an error, tries alternative
// on the same input.  The first success wins.  An error in either
// branch is returned right away.  When both branches fail the failure
// that got further into the input is reported.
func Or[T, E any](p, alternative *Parser[T, E]) *Parser[T, E] {
	id := func(v T) T { return v }
	return orWith(p, alternative, id, id)
}

// OrEither is Or for parsers of different types
func OrEither[T, U, E any](p *Parser[T, E], alternative *Parser[U, E]) *Parser[Either[T, U], E] {
	return orWith(p, alternative, Left[T, U], Right[T, U])
}

// Choice folds parsers with Or, trying them from left to right
func Choice[T, E any](ps ...*Parser[T, E]) *Parser[T, E] {
	if len(ps) == 0 {
		return Failure[T, E]("no alternatives")
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = Or(acc, p)
	}
	return acc
}

func orLongerWith[T, U, V, E any](p *Parser[T, E], q *Parser[U, E], left func(T) V, right func(U) V) *Parser[V, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[V, E]] {
		return trampoline.FlatMap(p.Step(r), func(first Result[T, E]) trampoline.Trampoline[Result[V, E]] {
			if first.IsError() {
				return done(retype[V](first))
			}
			return trampoline.Map(q.Step(r), func(alt Result[U, E]) Result[V, E] {
				if alt.IsError() {
					return retype[V](alt)
				}
				if first.IsSuccess() {
					// both matched, keep the one that consumed
					// more and favor p on a tie
					if alt.IsSuccess() && offsetOf(alt) > offsetOf(first) {
						return MapResult(alt, right)
					}
					return MapResult(first, left)
				}
				if alt.IsSuccess() {
					return MapResult(alt, right)
				}
				return furthest(retype[V](first), retype[V](alt))
			})
		})
	})
}

// OrLonger tries both p and alternative on the same input and, when
// both succeed, keeps the result that consumed more input.  Ties go to
// p.  An error from p is returned without trying the alternative, and
// an error from the alternative is returned even when p matched.
func OrLonger[T, E any](p, alternative *Parser[T, E]) *Parser[T, E] {
	id := func(v T) T { return v }
	return orLongerWith(p, alternative, id, id)
}

// OrLongerEither is OrLonger for parsers of different types
func OrLongerEither[T, U, E any](p *Parser[T, E], alternative *Parser[U, E]) *Parser[Either[T, U], E] {
	return orLongerWith(p, alternative, Left[T, U], Right[T, U])
}
