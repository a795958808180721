package parsing

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clarete/parsing/trampoline"
)

// Char matches the rune c
func Char(c rune) *Parser[rune, rune] {
	return AcceptIf(
		func(r rune) bool { return r == c },
		func(r rune) string { return fmt.Sprintf("expected %q but found %q", c, r) })
}

// In matches one rune from the unicode table, `kind` names the class
// in failure messages
func In(table *unicode.RangeTable, kind string) *Parser[rune, rune] {
	return Elem(kind, func(r rune) bool { return unicode.Is(table, r) })
}

// OneOf matches one of the runes in chars
func OneOf(chars, kind string) *Parser[rune, rune] {
	return Elem(kind, func(r rune) bool { return strings.ContainsRune(chars, r) })
}

// NoneOf matches any rune that isn't in chars
func NoneOf(chars, kind string) *Parser[rune, rune] {
	return Elem(kind, func(r rune) bool { return !strings.ContainsRune(chars, r) })
}

// String matches the literal s
func String(s string) *Parser[string, rune] {
	expected := []rune(s)
	return NewParser(func(r Reader[rune]) trampoline.Trampoline[Result[string, rune]] {
		read, rest, err := Read(r, len(expected))
		if err != nil {
			return done(NewFailure[string]("reached end-of-file", r))
		}
		for i, e := range expected {
			if read[i] != e {
				return done(NewFailure[string](fmt.Sprintf("expected %s but found %s", s, string(read)), r))
			}
		}
		return done(NewSuccess(s, rest))
	})
}

// Runes turns a parser of rune slices into a parser of strings
func Runes(p *Parser[[]rune, rune]) *Parser[string, rune] {
	return Map(p, func(rs []rune) string { return string(rs) })
}

// WhitespaceChar matches one space, tab, carriage return or newline
var WhitespaceChar = OneOf(" \t\r\n", "whitespace")

// Whitespace skips any amount of whitespace
var Whitespace = MapTo(Many(WhitespaceChar), Unit{})

// WithWhitespace surrounds p with optional whitespace
func WithWhitespace[T any](p *Parser[T, rune]) *Parser[T, rune] {
	return SeqIgnoreRight(SeqIgnoreLeft(Whitespace, p), Whitespace)
}
