package parsing

import "fmt"

// Kind tells the three possible outcomes of a parse apart
type Kind int

const (
	// KindSuccess means the parser matched and produced a value
	KindSuccess Kind = iota

	// KindFailure is a recoverable failure, alternation and
	// repetition are free to backtrack and try something else
	KindFailure

	// KindError is fatal, backtracking must stop
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of applying a parser at a given cursor.  All
// outcomes carry the remaining input, failing ones included, so
// alternatives can be compared by how far they got.
type Result[T, E any] struct {
	Kind      Kind
	Value     T
	Message   string
	Remaining Reader[E]
}

// NewSuccess creates a successful result
func NewSuccess[T, E any](value T, remaining Reader[E]) Result[T, E] {
	return Result[T, E]{Kind: KindSuccess, Value: value, Remaining: remaining}
}

// NewFailure creates a recoverable failure
func NewFailure[T, E any](message string, remaining Reader[E]) Result[T, E] {
	return Result[T, E]{Kind: KindFailure, Message: message, Remaining: remaining}
}

// NewError creates a fatal error
func NewError[T, E any](message string, remaining Reader[E]) Result[T, E] {
	return Result[T, E]{Kind: KindError, Message: message, Remaining: remaining}
}

func (r Result[T, E]) IsSuccess() bool { return r.Kind == KindSuccess }
func (r Result[T, E]) IsFailure() bool { return r.Kind == KindFailure }
func (r Result[T, E]) IsError() bool   { return r.Kind == KindError }

// Err returns nil for successful results.  Errors become a
// *ParsingError and failures a recoverable error; IsFatal tells them
// apart.
func (r Result[T, E]) Err() error {
	var pos Position
	if r.Remaining != nil {
		pos = r.Remaining.Position()
	}
	switch r.Kind {
	case KindSuccess:
		return nil
	case KindError:
		return &ParsingError{Message: r.Message, Position: pos}
	default:
		return &backtrackingError{Message: r.Message, Position: pos}
	}
}

func (r Result[T, E]) String() string {
	if r.Remaining == nil {
		return fmt.Sprintf("%s: %s", r.Kind, r.describe())
	}
	pos := r.Remaining.Position()
	if r.Kind == KindSuccess {
		return fmt.Sprintf("[%s] parsed: %v", pos, r.Value)
	}
	return fmt.Sprintf("[%s] %s: %s\n\n%s", pos, r.Kind, r.Message, pos.LongString())
}

func (r Result[T, E]) describe() string {
	if r.Kind == KindSuccess {
		return fmt.Sprint(r.Value)
	}
	return r.Message
}

// MapResult transforms the value of a successful result.  Failures and
// errors keep their message and remaining input, only their value type
// changes.
func MapResult[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.Kind == KindSuccess {
		return NewSuccess(f(r.Value), r.Remaining)
	}
	return retype[U](r)
}

// retype converts a non successful result to another value type
func retype[U, T, E any](r Result[T, E]) Result[U, E] {
	return Result[U, E]{Kind: r.Kind, Message: r.Message, Remaining: r.Remaining}
}

// offsetOf is the offset of a result's remaining input, -1 if unknown
func offsetOf[T, E any](r Result[T, E]) int {
	if r.Remaining == nil {
		return -1
	}
	return r.Remaining.Offset()
}
