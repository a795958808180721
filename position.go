package parsing

import (
	"fmt"
	"strings"
)

// Position describes where a reader is within its input and knows
// how to render that for diagnostics
type Position interface {
	// Line is the 1-based line number.  Readers that don't know
	// about lines always report 1.
	Line() int

	// Column is the 1-based column within the line
	Column() int

	// LineContents returns the text of the line the position is in
	LineContents() string

	// String returns the column, or `line:column` past the first line
	String() string

	// LongString renders the line followed by a caret under the
	// column
	LongString() string
}

func formatPosition(line, column int) string {
	if line <= 1 {
		return fmt.Sprintf("%d", column)
	}
	return fmt.Sprintf("%d:%d", line, column)
}

// caretLine renders `contents` and, on the next line, a caret under
// the column that comes right after `prefix`.  Tabs in the prefix are
// kept so the caret lines up with what a terminal shows.
func caretLine(contents, prefix string) string {
	var s strings.Builder
	s.WriteString(contents)
	s.WriteByte('\n')
	for _, c := range prefix {
		if c == '\t' {
			s.WriteRune('\t')
		} else {
			s.WriteByte(' ')
		}
	}
	s.WriteByte('^')
	return s.String()
}

// SlicePosition is the position of a SliceReader.  Elements are
// rendered with the `%v` verb and separated by one space.
type SlicePosition[E any] struct {
	items []E
	index int
}

func (p SlicePosition[E]) Line() int      { return 1 }
func (p SlicePosition[E]) Column() int    { return p.index + 1 }
func (p SlicePosition[E]) String() string { return formatPosition(1, p.Column()) }

func (p SlicePosition[E]) LineContents() string {
	parts := make([]string, len(p.items))
	for i, item := range p.items {
		parts[i] = fmt.Sprint(item)
	}
	return strings.Join(parts, " ")
}

func (p SlicePosition[E]) LongString() string {
	var prefix strings.Builder
	for _, item := range p.items[:min(p.index, len(p.items))] {
		prefix.WriteString(fmt.Sprint(item))
		prefix.WriteByte(' ')
	}
	return caretLine(p.LineContents(), prefix.String())
}

// RunePosition is the position of a RuneReader, aware of lines
type RunePosition struct {
	input  []rune
	cursor int
	line   int
	column int
}

func (p RunePosition) Line() int      { return p.line }
func (p RunePosition) Column() int    { return p.column }
func (p RunePosition) String() string { return formatPosition(p.line, p.column) }

// lineBounds returns the offsets of the first rune of the current line
// and of the newline ending it (or the input length)
func (p RunePosition) lineBounds() (int, int) {
	start := p.cursor - (p.column - 1)
	end := start
	for end < len(p.input) && p.input[end] != '\n' {
		end++
	}
	return start, end
}

func (p RunePosition) LineContents() string {
	start, end := p.lineBounds()
	return string(p.input[start:end])
}

func (p RunePosition) LongString() string {
	start, _ := p.lineBounds()
	return caretLine(p.LineContents(), string(p.input[start:p.cursor]))
}
