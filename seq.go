package parsing

import "github.com/clarete/parsing/trampoline"

// SeqWith applies p and then q on the input p left over, succeeding
// only if both do.  The two values are combined with f.
func SeqWith[T, U, V, E any](p *Parser[T, E], q *Parser[U, E], f func(T, U) V) *Parser[V, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[V, E]] {
		return trampoline.FlatMap(p.Step(r), func(first Result[T, E]) trampoline.Trampoline[Result[V, E]] {
			if !first.IsSuccess() {
				return done(retype[V](first))
			}
			return trampoline.Map(q.Step(first.Remaining), func(second Result[U, E]) Result[V, E] {
				if !second.IsSuccess() {
					return retype[V](second)
				}
				return NewSuccess(f(first.Value, second.Value), second.Remaining)
			})
		})
	})
}

// Seq sequences p and q and pairs up their values
func Seq[T, U, E any](p *Parser[T, E], q *Parser[U, E]) *Parser[Pair[T, U], E] {
	return SeqWith(p, q, func(a T, b U) Pair[T, U] { return Pair[T, U]{First: a, Second: b} })
}

// SeqIgnoreLeft sequences p and q keeping only the value of q
func SeqIgnoreLeft[T, U, E any](p *Parser[T, E], q *Parser[U, E]) *Parser[U, E] {
	return SeqWith(p, q, func(_ T, b U) U { return b })
}

// SeqIgnoreRight sequences p and q keeping only the value of p
func SeqIgnoreRight[T, U, E any](p *Parser[T, E], q *Parser[U, E]) *Parser[T, E] {
	return SeqWith(p, q, func(a T, _ U) T { return a })
}

// SeqCommit sequences p and q, committing to q once p matched: a
// failure of q becomes an error and stops any backtracking
func SeqCommit[T, U, E any](p *Parser[T, E], q *Parser[U, E]) *Parser[Pair[T, U], E] {
	return Seq(p, Commit(q))
}

// SeqMerge sequences two parsers producing the same sequenceable
// value and concatenates them, so chains of SeqMerge stay flat
func SeqMerge[S interface{ Concat(S) S }, E any](p, q *Parser[S, E]) *Parser[S, E] {
	return SeqWith(p, q, func(a, b S) S { return a.Concat(b) })
}

// SeqAppend sequences a parser producing a sequenceable value with one
// producing a single element, which gets appended to it
func SeqAppend[S interface{ Append(T) S }, T, E any](p *Parser[S, E], q *Parser[T, E]) *Parser[S, E] {
	return SeqWith(p, q, func(a S, b T) S { return a.Append(b) })
}

// SeqPrepend sequences a parser producing a single element with one
// producing a sequenceable value, the element ends up in front
func SeqPrepend[T any, S interface{ Prepend(T) S }, E any](p *Parser[T, E], q *Parser[S, E]) *Parser[S, E] {
	return SeqWith(p, q, func(a T, b S) S { return b.Prepend(a) })
}

// SeqAll sequences any amount of parsers producing the same element
// type and collects their values
func SeqAll[T, E any](ps ...*Parser[T, E]) *Parser[[]T, E] {
	acc := Success[List[T], E](nil)
	for _, p := range ps {
		acc = SeqAppend(acc, p)
	}
	return Map(acc, func(l List[T]) []T { return []T(l) })
}
