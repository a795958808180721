package parsing

import (
	"errors"
	"fmt"
)

// ErrEndOfFile is returned by Read when the input is exhausted before
// the requested amount of elements could be read
var ErrEndOfFile = errors.New("end of file")

// ParsingError is the error thrown when the parser can't finish
// successfully and backtracking must stop.  Returning it from a
// TryMap transformation produces an Error result instead of a
// Failure.
type ParsingError struct {
	Message  string
	Position Position
}

// Error returns the human readable representation of a parsing error
func (e *ParsingError) Error() string {
	if e.Position == nil {
		return e.Message
	}
	return fmt.Sprintf("%s @ %s", e.Message, e.Position)
}

// backtrackingError is the error associated with recoverable
// failures.  Alternation and repetition catch these and try the next
// thing.
type backtrackingError struct {
	Message  string
	Position Position
}

// Error returns the human readable representation of a parsing error
func (e *backtrackingError) Error() string {
	if e.Position == nil {
		return e.Message
	}
	return fmt.Sprintf("%s @ %s", e.Message, e.Position)
}

// Throw creates an error that escalates into an Error result when
// returned from a TryMap transformation
func Throw(msg string) error {
	return &ParsingError{Message: msg}
}

// Throwf is the formatting version of Throw
func Throwf(format string, args ...any) error {
	return &ParsingError{Message: fmt.Sprintf(format, args...)}
}

// Backtrack creates an error that becomes a recoverable Failure.  Any
// error that isn't a ParsingError behaves the same way, this one just
// makes the intention explicit.
func Backtrack(msg string) error {
	return &backtrackingError{Message: msg}
}

// IsFatal tells whether err, or any error it wraps, is a ParsingError
func IsFatal(err error) bool {
	return isthrown(err)
}

func isthrown(err error) bool {
	var perr *ParsingError
	return errors.As(err, &perr)
}

// Describe takes apart the errors returned by Result.Err into their
// message and position.  The last value is false for any other error.
func Describe(err error) (string, Position, bool) {
	var perr *ParsingError
	if errors.As(err, &perr) {
		return perr.Message, perr.Position, true
	}
	var berr *backtrackingError
	if errors.As(err, &berr) {
		return berr.Message, berr.Position, true
	}
	return "", nil, false
}
