package parsing

import "fmt"

// Pair is the result of sequencing two parsers with Seq
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Either is the result of an alternation between parsers of different
// types.  IsRight tells which side matched.
type Either[L, R any] struct {
	Left    L
	Right   R
	IsRight bool
}

func Left[L, R any](v L) Either[L, R]  { return Either[L, R]{Left: v} }
func Right[L, R any](v R) Either[L, R] { return Either[L, R]{Right: v, IsRight: true} }

func (e Either[L, R]) String() string {
	if e.IsRight {
		return fmt.Sprintf("Right(%v)", e.Right)
	}
	return fmt.Sprintf("Left(%v)", e.Left)
}

// Merge collapses an Either whose sides have the same type
func Merge[T any](e Either[T, T]) T {
	if e.IsRight {
		return e.Right
	}
	return e.Left
}

// Option is the result of an optional parser, Valid is false when
// the parser didn't match
type Option[T any] struct {
	Value T
	Valid bool
}

func Some[T any](v T) Option[T] { return Option[T]{Value: v, Valid: true} }
func None[T any]() Option[T]    { return Option[T]{} }

// Get returns the value and whether it's present
func (o Option[T]) Get() (T, bool) { return o.Value, o.Valid }

// OrElse returns the value if present, or def otherwise
func (o Option[T]) OrElse(def T) T {
	if o.Valid {
		return o.Value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.Valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}
