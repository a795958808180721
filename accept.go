package parsing

import (
	"fmt"
	"strings"

	"github.com/clarete/parsing/trampoline"
)

// AcceptAny matches any element and fails on end of input
func AcceptAny[E any]() *Parser[E, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[E, E]] {
		if r.AtEnd() {
			return done(NewFailure[E]("end of input", r))
		}
		return done(NewSuccess(r.First(), r.Rest()))
	})
}

// AcceptIf matches one element satisfying pred.  msgFn builds the
// failure message from the element that didn't match.
func AcceptIf[E any](pred func(E) bool, msgFn func(E) string) *Parser[E, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[E, E]] {
		if r.AtEnd() {
			return done(NewFailure[E]("end of input", r))
		}
		e := r.First()
		if !pred(e) {
			return done(NewFailure[E](msgFn(e), r))
		}
		return done(NewSuccess(e, r.Rest()))
	})
}

// Accept matches exactly element
func Accept[E comparable](element E) *Parser[E, E] {
	return AcceptIf(
		func(e E) bool { return e == element },
		func(e E) string { return fmt.Sprintf("expected %v but found %v", element, e) })
}

// Elem matches one element satisfying pred, `kind` names what was
// expected in the failure message
func Elem[E any](kind string, pred func(E) bool) *Parser[E, E] {
	return AcceptIf(pred, func(E) string { return kind + " expected" })
}

// Literal matches the exact sequence of elements
func Literal[E comparable](elements []E) *Parser[[]E, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[[]E, E]] {
		read, rest, err := Read(r, len(elements))
		if err != nil {
			return done(NewFailure[[]E]("reached end-of-file", r))
		}
		for i := range elements {
			if read[i] != elements[i] {
				return done(NewFailure[[]E](
					fmt.Sprintf("expected %s but found %s", joinElements(elements), joinElements(read)), r))
			}
		}
		return done(NewSuccess(read, rest))
	})
}

func joinElements[E any](elements []E) string {
	parts := make([]string, len(elements))
	for i, e := range elements {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, " ")
}

// EndOfInput succeeds only when the whole input has been consumed
func EndOfInput[E any]() *Parser[Unit, E] {
	return NewParser(func(r Reader[E]) trampoline.Trampoline[Result[Unit, E]] {
		if !r.AtEnd() {
			return done(NewFailure[Unit]("end of input expected", r))
		}
		return done(NewSuccess(Unit{}, r))
	})
}
