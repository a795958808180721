package parsing

import "github.com/clarete/parsing/trampoline"

// Commit turns every failure of p into an error.  Once a grammar has
// seen enough input to know which production it is in, committing
// makes a mismatch a hard error instead of a silent backtrack into
// the next alternative.
func Commit[T, E any](p *Parser[T, E]) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[T, E] {
			if res.IsFailure() {
				res.Kind = KindError
			}
			return res
		})
	})
}
