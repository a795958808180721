package parsing

import "github.com/clarete/parsing/trampoline"

// LeftRecursionMessage is the message of the error a packrat parser
// returns when it's re-entered at the same offset
const LeftRecursionMessage = "left-recursion"

type memoKey struct {
	parser uint64
	offset int
}

// memoTable is shared by all the readers derived from the same
// PackratReader
type memoTable struct {
	entries map[memoKey]any
	hits    int
	misses  int
}

// MemoStats reports how the memo table of a packrat reader was used
type MemoStats struct {
	Hits    int
	Misses  int
	Entries int
}

// PackratReader decorates a reader with a memo table that Packrat
// parsers use to cache their results.  The table is shared by every
// reader obtained through Rest, so one table serves the whole parse.
//
// The table isn't synchronized: a PackratReader, and the readers
// derived from it, must not be used by two parses at the same time.
// Give each input its own PackratReader instead.
type PackratReader[E any] struct {
	underlying Reader[E]
	memo       *memoTable
}

// NewPackratReader wraps underlying with a fresh memo table
func NewPackratReader[E any](underlying Reader[E]) *PackratReader[E] {
	return &PackratReader[E]{
		underlying: underlying,
		memo:       &memoTable{entries: make(map[memoKey]any)},
	}
}

func (r *PackratReader[E]) AtEnd() bool        { return r.underlying.AtEnd() }
func (r *PackratReader[E]) First() E           { return r.underlying.First() }
func (r *PackratReader[E]) Offset() int        { return r.underlying.Offset() }
func (r *PackratReader[E]) Position() Position { return r.underlying.Position() }

// Underlying returns the decorated reader
func (r *PackratReader[E]) Underlying() Reader[E] { return r.underlying }

func (r *PackratReader[E]) Rest() Reader[E] {
	return &PackratReader[E]{underlying: r.underlying.Rest(), memo: r.memo}
}

// Stats returns the usage counters of the shared memo table
func (r *PackratReader[E]) Stats() MemoStats {
	return MemoStats{
		Hits:    r.memo.hits,
		Misses:  r.memo.misses,
		Entries: len(r.memo.entries),
	}
}

func lookup[T, E any](r *PackratReader[E], key memoKey) (Result[T, E], bool) {
	entry, ok := r.memo.entries[key]
	if !ok {
		r.memo.misses++
		return Result[T, E]{}, false
	}
	r.memo.hits++
	return entry.(Result[T, E]), true
}

func store[T, E any](r *PackratReader[E], key memoKey, res Result[T, E]) Result[T, E] {
	r.memo.entries[key] = res
	return res
}

// Packrat memoizes p.  When applied to a PackratReader the result of
// each offset is computed once and then served from the reader's memo
// table.  Before p runs, an error is stored under the same key, so if
// p ends up calling itself at the same offset, which only happens with
// left recursion, it gets that error back instead of looping forever.
//
// On any other reader, Packrat behaves exactly like p.
func Packrat[T, E any](p *Parser[T, E]) *Parser[T, E] {
	var self *Parser[T, E]
	self = NewParser(func(r Reader[E]) trampoline.Trampoline[Result[T, E]] {
		pr, ok := r.(*PackratReader[E])
		if !ok {
			return p.Step(r)
		}
		key := memoKey{parser: self.id, offset: pr.Offset()}
		if cached, ok := lookup[T](pr, key); ok {
			return done(cached)
		}
		store(pr, key, NewError[T](LeftRecursionMessage, r))
		return trampoline.Map(p.Step(r), func(res Result[T, E]) Result[T, E] {
			return store(pr, key, res)
		})
	})
	return self
}
