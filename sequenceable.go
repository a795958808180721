package parsing

// Sequenceable is implemented by values that can absorb their
// neighbors when parsers are sequenced.  Sequencing parsers that
// produce them yields one flat value instead of nested pairs.
//
// S is the type itself and T is the type of a single element it can
// absorb.
type Sequenceable[S, T any] interface {
	// Concat returns the receiver followed by other
	Concat(other S) S

	// Append returns the receiver followed by next
	Append(next T) S

	// Prepend returns previous followed by the receiver
	Prepend(previous T) S
}

// List accumulates elements in order
type List[T any] []T

func (l List[T]) Concat(other List[T]) List[T] {
	out := make(List[T], 0, len(l)+len(other))
	out = append(out, l...)
	return append(out, other...)
}

func (l List[T]) Append(next T) List[T] {
	out := make(List[T], 0, len(l)+1)
	out = append(out, l...)
	return append(out, next)
}

func (l List[T]) Prepend(previous T) List[T] {
	out := make(List[T], 0, len(l)+1)
	out = append(out, previous)
	return append(out, l...)
}

// Text accumulates runes into a string
type Text string

func (t Text) Concat(other Text) Text { return t + other }
func (t Text) Append(next rune) Text  { return t + Text(next) }
func (t Text) Prepend(prev rune) Text { return Text(prev) + t }
func (t Text) String() string         { return string(t) }

// Unit is the value of parsers that only matter for whether they
// match.  Sequencing anything into it yields Unit again.
type Unit struct{}

func (Unit) Concat(Unit) Unit { return Unit{} }
func (Unit) Append(any) Unit  { return Unit{} }
func (Unit) Prepend(any) Unit { return Unit{} }
func (Unit) String() string   { return "()" }
