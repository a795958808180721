// Package json is a JSON parser built with the combinators of the
// parsing package.  It produces a tree of values that remember where
// in the input they came from.
package json

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf16"

	"github.com/clarete/parsing"
)

type (
	valueParser = parsing.Parser[Value, rune]
	textParser  = parsing.Parser[parsing.Text, rune]
)

// Document parses a JSON value surrounded by optional whitespace.
// Values are memoized when the input is read through a packrat reader.
var Document = parsing.WithWhitespace(value).Named("document")

var value = parsing.Recursive(func(self *valueParser) *valueParser {
	json := parsing.WithWhitespace(self)
	return parsing.Packrat(parsing.Choice(
		primitive,
		number,
		stringValue,
		object(json),
		array(json),
	)).Named("value")
})

func spanned[T any](p *parsing.Parser[T, rune], f func(v T, span Span) Value) *valueParser {
	return parsing.MapSpan(p, func(v T, start, end int) Value {
		return f(v, Span{Start: start, End: end})
	})
}

// primitive reads a word of lowercase letters and only accepts the
// ones JSON knows about
var primitive = parsing.TryMap(
	parsing.MapSpan(
		parsing.Runes(parsing.Many(parsing.In(unicode.Lower, "lowercase letter"))),
		func(word string, start, end int) parsing.Pair[string, Span] {
			return parsing.Pair[string, Span]{First: word, Second: Span{Start: start, End: end}}
		}),
	func(word parsing.Pair[string, Span]) (Value, error) {
		switch word.First {
		case "null":
			return NewValueNull(word.Second), nil
		case "true":
			return NewValueBool(true, word.Second), nil
		case "false":
			return NewValueBool(false, word.Second), nil
		default:
			return nil, parsing.Backtrack("invalid characters: " + word.First)
		}
	}).Named("primitive")

func structureChar(c rune) *parsing.Parser[parsing.Unit, rune] {
	return parsing.MapTo(parsing.WithWhitespace(parsing.Char(c)), parsing.Unit{})
}

func structure[T any](start rune, content *parsing.Parser[T, rune], end rune) *parsing.Parser[T, rune] {
	return parsing.SeqIgnoreRight(parsing.SeqIgnoreLeft(structureChar(start), content), structureChar(end))
}

func object(json *valueParser) *valueParser {
	key := parsing.WithWhitespace(str)
	member := parsing.SeqWith(key, parsing.SeqIgnoreLeft(structureChar(':'), json), func(k string, v Value) Member {
		return Member{Key: k, Value: v}
	})
	content := parsing.RepSep(member, parsing.Char(','), 0, parsing.Unbounded)
	return spanned(structure('{', content, '}'), func(members []Member, span Span) Value {
		return NewValueObject(members, span)
	}).Named("object")
}

func array(json *valueParser) *valueParser {
	content := parsing.RepSep(json, parsing.Char(','), 0, parsing.Unbounded)
	return spanned(structure('[', content, ']'), func(items []Value, span Span) Value {
		return NewValueArray(items, span)
	}).Named("array")
}

// Strings

var hexDigit = parsing.OneOf("0123456789abcdefABCDEF", "hex-digit")

// unicodeBlock reads the four hex digits of a `\u` escape
var unicodeBlock = parsing.TryMap(
	parsing.SeqIgnoreLeft(parsing.Char('u'), parsing.RepN(hexDigit, 4)),
	func(digits []rune) (rune, error) {
		cp, err := strconv.ParseUint(string(digits), 16, 32)
		if err != nil {
			return 0, parsing.Throwf("illegal hex value: %s", string(digits))
		}
		return rune(cp), nil
	})

// unicodeEscape decodes `\u` escapes.  A high surrogate commits the
// parser to a second escape holding the low half of the pair.
var unicodeEscape = parsing.FlatMap(unicodeBlock, func(high rune) *parsing.Parser[rune, rune] {
	switch {
	case utf16.IsSurrogate(high) && high < 0xDC00:
		low := parsing.SeqIgnoreLeft(parsing.Char('\\'), unicodeBlock)
		pair := parsing.TryMap(low, func(low rune) (rune, error) {
			r := utf16.DecodeRune(high, low)
			if r == unicode.ReplacementChar {
				return r, parsing.Throwf("invalid surrogate pair: %U %U", high, low)
			}
			return r, nil
		})
		return parsing.Commit(pair)
	case utf16.IsSurrogate(high):
		return parsing.Fatal[rune, rune](fmt.Sprintf("unpaired low surrogate: %U", high))
	default:
		return parsing.Success[rune, rune](high)
	}
})

func escape(c, value rune) *parsing.Parser[rune, rune] {
	return parsing.MapTo(parsing.Char(c), value)
}

// charSeq commits to an escape once the backslash is read
var charSeq = parsing.SeqIgnoreLeft(parsing.Char('\\'), parsing.Commit(parsing.Choice(
	escape('"', '"'),
	escape('\\', '\\'),
	escape('/', '/'),
	escape('b', '\b'),
	escape('f', '\f'),
	escape('n', '\n'),
	escape('r', '\r'),
	escape('t', '\t'),
	unicodeEscape,
	parsing.Failure[rune, rune]("invalid escape sequence"),
)))

// plainChar is any rune allowed unescaped within a string, which
// excludes quotes, backslashes and control characters
var plainChar = parsing.Elem("string character", func(r rune) bool {
	return r >= 0x20 && r != '"' && r != '\\'
})

// str commits to the closing quote once the opening one is read, so a
// control character within a string is an error
var str = func() *parsing.Parser[string, rune] {
	char := parsing.Or(charSeq, plainChar)
	content := parsing.RepInto(char, parsing.Text(""), 0, parsing.Unbounded)
	quoted := parsing.SeqIgnoreRight(parsing.SeqIgnoreLeft(parsing.Char('"'), content), parsing.Commit(parsing.Char('"')))
	return parsing.Map(quoted, func(t parsing.Text) string { return string(t) })
}()

var stringValue = spanned(str, func(s string, span Span) Value {
	return NewValueString(s, span)
}).Named("string")

// Numbers

func text(p *parsing.Parser[rune, rune]) *textParser {
	return parsing.Map(p, func(r rune) parsing.Text { return parsing.Text(r) })
}

func optText(p *textParser) *textParser {
	return parsing.Map(parsing.Opt(p), func(o parsing.Option[parsing.Text]) parsing.Text {
		return o.OrElse("")
	})
}

func digits(min int) *textParser {
	return parsing.RepInto(parsing.In(unicode.Digit, "digit"), parsing.Text(""), min, parsing.Unbounded)
}

var (
	minus   = text(parsing.Char('-'))
	nonZero = parsing.Elem("non-zero digit", func(r rune) bool { return r >= '1' && r <= '9' })
	intPart = parsing.Or(text(parsing.Char('0')), parsing.SeqPrepend(nonZero, digits(0)))
	frac    = parsing.SeqPrepend(parsing.Char('.'), digits(1))
	exp     = parsing.SeqMerge(
		parsing.SeqMerge(text(parsing.OneOf("eE", "exponent")), optText(text(parsing.OneOf("+-", "sign")))),
		digits(1))
)

var numberText = parsing.SeqMerge(parsing.SeqMerge(parsing.SeqMerge(optText(minus), intPart), optText(frac)), optText(exp))

var number = parsing.TryMap(
	parsing.MapSpan(numberText, func(raw parsing.Text, start, end int) *ValueNumber {
		return NewValueNumber(0, string(raw), Span{Start: start, End: end})
	}),
	func(n *ValueNumber) (Value, error) {
		v, err := strconv.ParseFloat(n.Raw, 64)
		if err != nil {
			return nil, parsing.Backtrack("invalid number: " + n.Raw)
		}
		n.Value = v
		return n, nil
	}).Named("number")
