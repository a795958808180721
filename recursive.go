package parsing

import (
	"sync"

	"github.com/clarete/parsing/trampoline"
)

// Recursive builds a parser that refers to itself.  The builder gets a
// handle that forwards to the parser it returns, so productions can
// nest without the grammar being built forever:
//
//	parens := Recursive(func(self *Parser[string, rune]) *Parser[string, rune] {
//		nested := SeqIgnoreRight(SeqIgnoreLeft(Char('('), self), Char(')'))
//		return Or(nested, Success[string, rune](""))
//	})
func Recursive[T, E any](builder func(self *Parser[T, E]) *Parser[T, E]) *Parser[T, E] {
	var target *Parser[T, E]
	handle := NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return target.Step(r)
	})
	target = builder(handle)
	return handle
}

// Lazy defers building a parser until it's first applied.  It is how
// mutually recursive parsers refer to each other before all of them
// exist.
func Lazy[T, E any](thunk func() *Parser[T, E]) *Parser[T, E] {
	var (
		once   sync.Once
		target *Parser[T, E]
	)
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		once.Do(func() { target = thunk() })
		return target.Step(r)
	})
}
