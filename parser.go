package parsing

import (
	"fmt"
	"sync/atomic"

	"github.com/clarete/parsing/trampoline"
)

// StepFn is the signature of the function that drives a parser one
// step further.  It returns a trampoline instead of a result so that
// composing parsers never grows the Go stack: nested parsers are only
// evaluated from within the loop in trampoline.Run.
type StepFn[T, E any] func(r Reader[E]) trampoline.Trampoline[Result[T, E]]

// Parser produces values of type T from input elements of type E.
//
// Parsers are immutable and hold no state, the same parser can be
// applied to many readers, concurrently even, as long as these readers
// don't share a packrat cache.  Each parser gets a unique ID when it's
// constructed.  That ID is what the packrat cache uses as a key, so
// two parsers built the same way are still told apart.
type Parser[T, E any] struct {
	id   uint64
	name string
	step StepFn[T, E]
}

var lastParserID atomic.Uint64

// NewParser creates a parser from its step function
func NewParser[T, E any](step StepFn[T, E]) *Parser[T, E] {
	return &Parser[T, E]{id: lastParserID.Add(1), step: step}
}

// ID returns the identity assigned to the parser at construction
func (p *Parser[T, E]) ID() uint64 { return p.id }

// Name returns the name given with Named, or a name derived from the
// parser ID
func (p *Parser[T, E]) Name() string {
	if p.name == "" {
		return fmt.Sprintf("parser#%d", p.id)
	}
	return p.name
}

// Named returns a copy of the parser with a name that shows up in
// traces.  The copy is a new parser with its own ID.
func (p *Parser[T, E]) Named(name string) *Parser[T, E] {
	named := NewParser(p.step)
	named.name = name
	return named
}

// Step returns the deferred computation of applying the parser to r.
// Nothing is evaluated until the trampoline runs.
func (p *Parser[T, E]) Step(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
	return trampoline.More(func() trampoline.Trampoline[Result[T, E]] {
		return p.step(r)
	})
}

// Parse applies the parser to r and runs it to completion
func (p *Parser[T, E]) Parse(r Reader[E]) Result[T, E] {
	return p.Step(r).Run()
}

// Or is the method version of the Or combinator
func (p *Parser[T, E]) Or(alternative *Parser[T, E]) *Parser[T, E] {
	return Or(p, alternative)
}

// OrLonger is the method version of the OrLonger combinator
func (p *Parser[T, E]) OrLonger(alternative *Parser[T, E]) *Parser[T, E] {
	return OrLonger(p, alternative)
}

// Commit is the method version of the Commit combinator
func (p *Parser[T, E]) Commit() *Parser[T, E] {
	return Commit(p)
}

func done[T, E any](r Result[T, E]) trampoline.Trampoline[Result[T, E]] {
	return trampoline.Done(r)
}

// Success creates a parser that always succeeds with value, without
// consuming any input
func Success[T, E any](value T) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return done(NewSuccess(value, r))
	})
}

// Failure creates a parser that always fails with msg
func Failure[T, E any](msg string) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return done(NewFailure[T](msg, r))
	})
}

// Fatal creates a parser that always errors with msg
func Fatal[T, E any](msg string) *Parser[T, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		return done(NewError[T](msg, r))
	})
}

// Map creates a parser that behaves like p but transforms its value
// with f
func Map[T, U, E any](p *Parser[T, E], f func(T) U) *Parser[U, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[U, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[U, E] {
			return MapResult(res, f)
		})
	})
}

// MapTo creates a parser that behaves like p but always produces value
func MapTo[T, U, E any](p *Parser[T, E], value U) *Parser[U, E] {
	return Map(p, func(T) U { return value })
}

// TryMap is like Map but the transformation can fail.  If f returns
// an error built with Throw or Throwf (or wrapping a *ParsingError)
// the result is a fatal Error, any other error makes it a recoverable
// Failure.  Either way the result keeps the remaining input of the
// success it was transforming.
func TryMap[T, U, E any](p *Parser[T, E], f func(T) (U, error)) *Parser[U, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[U, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[U, E] {
			if !res.IsSuccess() {
				return retype[U](res)
			}
			value, err := f(res.Value)
			if err == nil {
				return NewSuccess(value, res.Remaining)
			}
			if isthrown(err) {
				return NewError[U](errorMessage(err), res.Remaining)
			}
			return NewFailure[U](errorMessage(err), res.Remaining)
		})
	})
}

// errorMessage drops the position suffix our own errors add, the
// result already carries the cursor
func errorMessage(err error) string {
	switch e := err.(type) {
	case *ParsingError:
		return e.Message
	case *backtrackingError:
		return e.Message
	default:
		return err.Error()
	}
}

// Filter succeeds with the value of p only if it satisfies pred.
// When msgFn is nil a generic message is used.
func Filter[T, E any](p *Parser[T, E], pred func(T) bool, msgFn func(T) string) *Parser[T, E] {
	return TryMap(p, func(v T) (T, error) {
		if pred(v) {
			return v, nil
		}
		if msgFn != nil {
			return v, Backtrack(msgFn(v))
		}
		return v, Backtrack(fmt.Sprintf("value did not match predicate: %v", v))
	})
}

// FlatMap applies p and, if it succeeds, uses its value to pick the
// parser to apply to the remaining input.  Failures and errors are
// returned without calling f.
func FlatMap[T, U, E any](p *Parser[T, E], f func(T) *Parser[U, E]) *Parser[U, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[U, E]] {
		return trampoline.FlatMap(p.Step(r), func(res Result[T, E]) trampoline.Trampoline[Result[U, E]] {
			if !res.IsSuccess() {
				return done(retype[U](res))
			}
			return f(res.Value).Step(res.Remaining)
		})
	})
}

// MapSpan is Map with the offsets where the match of p started and
// where it ended
func MapSpan[T, U, E any](p *Parser[T, E], f func(v T, start, end int) U) *Parser[U, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[U, E]] {
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[U, E] {
			return MapResult(res, func(v T) U {
				return f(v, r.Offset(), res.Remaining.Offset())
			})
		})
	})
}
