package json

import (
	"fmt"
	"strconv"
	"strings"
)

// Span is the range of input offsets a value was parsed from
type Span struct {
	Start int
	End   int
}

func (s Span) String() string { return fmt.Sprintf("%d..%d", s.Start, s.End) }

// Value is a node of the tree produced by Parse
type Value interface {
	Span() Span

	// String renders the tree along with spans, for debugging
	String() string

	// Text renders the value back as compact JSON
	Text() string

	// Interface converts the value into the types encoding/json
	// would use: nil, bool, float64, string, []any and map[string]any
	Interface() any
}

// Null Value

type ValueNull struct {
	span Span
}

func NewValueNull(span Span) *ValueNull { return &ValueNull{span: span} }

func (n ValueNull) Span() Span     { return n.span }
func (n ValueNull) String() string { return fmt.Sprintf("null @ %s", n.span) }
func (n ValueNull) Text() string   { return "null" }
func (n ValueNull) Interface() any { return nil }

// Bool Value

type ValueBool struct {
	span  Span
	Value bool
}

func NewValueBool(value bool, span Span) *ValueBool {
	return &ValueBool{span: span, Value: value}
}

func (n ValueBool) Span() Span     { return n.span }
func (n ValueBool) String() string { return fmt.Sprintf("%t @ %s", n.Value, n.span) }
func (n ValueBool) Text() string   { return strconv.FormatBool(n.Value) }
func (n ValueBool) Interface() any { return n.Value }

// Number Value

type ValueNumber struct {
	span  Span
	Value float64

	// Raw is the number as it was written in the input
	Raw string
}

func NewValueNumber(value float64, raw string, span Span) *ValueNumber {
	return &ValueNumber{span: span, Value: value, Raw: raw}
}

func (n ValueNumber) Span() Span     { return n.span }
func (n ValueNumber) String() string { return fmt.Sprintf("%s @ %s", n.Raw, n.span) }
func (n ValueNumber) Text() string   { return n.Raw }
func (n ValueNumber) Interface() any { return n.Value }

// String Value

type ValueString struct {
	span  Span
	Value string
}

func NewValueString(value string, span Span) *ValueString {
	return &ValueString{span: span, Value: value}
}

func (n ValueString) Span() Span     { return n.span }
func (n ValueString) String() string { return fmt.Sprintf(`"%s" @ %s`, n.Value, n.span) }
func (n ValueString) Text() string   { return quote(n.Value) }
func (n ValueString) Interface() any { return n.Value }

// Array Value

type ValueArray struct {
	span  Span
	Items []Value
}

func NewValueArray(items []Value, span Span) *ValueArray {
	return &ValueArray{Items: items, span: span}
}

func (n ValueArray) Span() Span { return n.span }

func (n ValueArray) String() string {
	var s strings.Builder
	s.WriteString("<[")
	for i, item := range n.Items {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(item.String())
	}
	fmt.Fprintf(&s, "] @ %s>", n.span)
	return s.String()
}

func (n ValueArray) Text() string {
	var s strings.Builder
	s.WriteByte('[')
	for i, item := range n.Items {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(item.Text())
	}
	s.WriteByte(']')
	return s.String()
}

func (n ValueArray) Interface() any {
	items := make([]any, len(n.Items))
	for i, item := range n.Items {
		items[i] = item.Interface()
	}
	return items
}

// Object Value

// Member is a key/value pair of an object
type Member struct {
	Key   string
	Value Value
}

type ValueObject struct {
	span Span

	// Members are kept in the order they were written.  Duplicated
	// keys are kept as well, the last one wins in Interface.
	Members []Member
}

func NewValueObject(members []Member, span Span) *ValueObject {
	return &ValueObject{Members: members, span: span}
}

func (n ValueObject) Span() Span { return n.span }

// Get returns the value of the last member named key
func (n ValueObject) Get(key string) (Value, bool) {
	for i := len(n.Members) - 1; i >= 0; i-- {
		if n.Members[i].Key == key {
			return n.Members[i].Value, true
		}
	}
	return nil, false
}

func (n ValueObject) String() string {
	var s strings.Builder
	s.WriteString("<{")
	for i, m := range n.Members {
		if i > 0 {
			s.WriteString(", ")
		}
		fmt.Fprintf(&s, "%q: %s", m.Key, m.Value.String())
	}
	fmt.Fprintf(&s, "} @ %s>", n.span)
	return s.String()
}

func (n ValueObject) Text() string {
	var s strings.Builder
	s.WriteByte('{')
	for i, m := range n.Members {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(quote(m.Key))
		s.WriteByte(':')
		s.WriteString(m.Value.Text())
	}
	s.WriteByte('}')
	return s.String()
}

func (n ValueObject) Interface() any {
	members := make(map[string]any, len(n.Members))
	for _, m := range n.Members {
		members[m.Key] = m.Value.Interface()
	}
	return members
}

// quote renders s as a JSON string literal
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
