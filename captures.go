package parsing

import (
	"fmt"
	"sort"
	"strings"
)

// Captures accumulates values in the order they were parsed, along
// with groups of them recorded under a name.  A name can be captured
// many times, each capture adds one group.
type Captures struct {
	Values  []any
	Entries map[string][][]any
}

// NewCaptures creates captures holding values and no named entries
func NewCaptures(values ...any) Captures {
	return Captures{Values: values, Entries: map[string][][]any{}}
}

// Get returns all the groups captured under name
func (c Captures) Get(name string) [][]any {
	return c.Entries[name]
}

func (c Captures) with(name string, values []any) Captures {
	entries := make(map[string][][]any, len(c.Entries)+1)
	for k, v := range c.Entries {
		entries[k] = v
	}
	group := append([]any{}, values...)
	entries[name] = append(append([][]any{}, entries[name]...), group)
	return Captures{Values: c.Values, Entries: entries}
}

// Concat returns the values of c followed by the ones of other, with
// their named entries merged
func (c Captures) Concat(other Captures) Captures {
	values := make([]any, 0, len(c.Values)+len(other.Values))
	values = append(values, c.Values...)
	values = append(values, other.Values...)

	entries := make(map[string][][]any, len(c.Entries)+len(other.Entries))
	for k, v := range c.Entries {
		entries[k] = v
	}
	for k, v := range other.Entries {
		entries[k] = append(append([][]any{}, entries[k]...), v...)
	}
	return Captures{Values: values, Entries: entries}
}

// Append adds next after the values of c.  Captures are merged
// instead, so their named entries aren't lost.
func (c Captures) Append(next any) Captures {
	if other, ok := next.(Captures); ok {
		return c.Concat(other)
	}
	return c.Concat(NewCaptures(next))
}

// Prepend adds previous before the values of c, merging it when it's
// a Captures value itself
func (c Captures) Prepend(previous any) Captures {
	if other, ok := previous.(Captures); ok {
		return other.Concat(c)
	}
	return NewCaptures(previous).Concat(c)
}

func (c Captures) String() string {
	names := make([]string, 0, len(c.Entries))
	for name := range c.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var s strings.Builder
	fmt.Fprintf(&s, "%v", c.Values)
	for _, name := range names {
		fmt.Fprintf(&s, " %s=%v", name, c.Entries[name])
	}
	return s.String()
}

// Captured lifts the value of p into Captures without naming it
func Captured[T, E any](p *Parser[T, E]) *Parser[Captures, E] {
	return Map(p, func(v T) Captures {
		if c, ok := any(v).(Captures); ok {
			return c
		}
		return NewCaptures(v)
	})
}

// Capture records the value of p under name.  When p already produces
// Captures, all of its values are recorded as one group.
func Capture[T, E any](p *Parser[T, E], name string) *Parser[Captures, E] {
	return Map(p, func(v T) Captures {
		if c, ok := any(v).(Captures); ok {
			return c.with(name, c.Values)
		}
		return NewCaptures(v).with(name, []any{v})
	})
}

// CaptureMany repeats p between `min` and `max` times, merging all the
// captures it produces into one value
func CaptureMany[E any](p *Parser[Captures, E], min, max int) *Parser[Captures, E] {
	item := Map(p, func(c Captures) any { return c })
	return RepInto(item, NewCaptures(), min, max)
}
