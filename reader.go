package parsing

// Reader is an immutable cursor over a sequence of elements.  Moving
// forward creates a new reader and never changes the current one, so
// readers can be shared freely and are what makes backtracking cheap:
// going back is just holding on to an older reader.
type Reader[E any] interface {
	// AtEnd tells if the whole input has been consumed
	AtEnd() bool

	// First returns the element under the cursor.  It must not be
	// called when AtEnd returns true.
	First() E

	// Rest returns a reader advanced by exactly one element
	Rest() Reader[E]

	// Offset is the amount of elements consumed so far
	Offset() int

	// Position describes the cursor for diagnostics
	Position() Position
}

// Read consumes `count` elements from r, returning them along with the
// reader positioned right after them.  It returns ErrEndOfFile if the
// input ends before that.
func Read[E any](r Reader[E], count int) ([]E, Reader[E], error) {
	elements := make([]E, 0, count)
	for i := 0; i < count; i++ {
		if r.AtEnd() {
			return nil, r, ErrEndOfFile
		}
		elements = append(elements, r.First())
		r = r.Rest()
	}
	return elements, r, nil
}

// SliceReader reads elements from a slice
type SliceReader[E any] struct {
	items []E
	index int
}

// NewSliceReader creates a reader positioned at the start of items
func NewSliceReader[E any](items []E) SliceReader[E] {
	return SliceReader[E]{items: items}
}

func (r SliceReader[E]) AtEnd() bool { return r.index >= len(r.items) }
func (r SliceReader[E]) First() E    { return r.items[r.index] }
func (r SliceReader[E]) Offset() int { return r.index }

func (r SliceReader[E]) Rest() Reader[E] {
	return SliceReader[E]{items: r.items, index: r.index + 1}
}

func (r SliceReader[E]) Position() Position {
	return SlicePosition[E]{items: r.items, index: r.index}
}

// RuneReader reads the runes of a string keeping track of the line
// and column of the cursor
type RuneReader struct {
	input  []rune
	cursor int
	line   int
	column int
}

// NewRuneReader creates a reader positioned at the start of input
func NewRuneReader(input string) RuneReader {
	return RuneReader{input: []rune(input), line: 1, column: 1}
}

func (r RuneReader) AtEnd() bool { return r.cursor >= len(r.input) }
func (r RuneReader) First() rune { return r.input[r.cursor] }
func (r RuneReader) Offset() int { return r.cursor }

func (r RuneReader) Rest() Reader[rune] {
	next := RuneReader{
		input:  r.input,
		cursor: r.cursor + 1,
		line:   r.line,
		column: r.column + 1,
	}
	if !r.AtEnd() && r.input[r.cursor] == '\n' {
		next.line++
		next.column = 1
	}
	return next
}

func (r RuneReader) Position() Position {
	return RunePosition{
		input:  r.input,
		cursor: r.cursor,
		line:   r.line,
		column: r.column,
	}
}
