package parsing

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRep(t *testing.T) {
	tests := []struct {
		name      string
		min, max  int
		input     string
		kind      Kind
		matched   string
		remaining int
	}{
		{name: "zero or more", min: 0, max: Unbounded, input: "aaab", kind: KindSuccess, matched: "aaa", remaining: 3},
		{name: "zero matches", min: 0, max: Unbounded, input: "b", kind: KindSuccess, matched: "", remaining: 0},
		{name: "empty input", min: 0, max: Unbounded, input: "", kind: KindSuccess, matched: "", remaining: 0},
		{name: "one or more", min: 1, max: Unbounded, input: "b", kind: KindFailure},
		{name: "stops at max", min: 2, max: 3, input: "aaaa", kind: KindSuccess, matched: "aaa", remaining: 3},
		{name: "fewer than min", min: 2, max: 3, input: "ab", kind: KindFailure, remaining: 1},
		{name: "exactly", min: 2, max: 2, input: "aa", kind: KindSuccess, matched: "aa", remaining: 2},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := Rep(Char('a'), test.min, test.max).Parse(input(test.input))
			require.Equal(t, test.kind, res.Kind, res.Message)
			assert.Equal(t, test.remaining, res.Remaining.Offset())
			if res.IsSuccess() {
				assert.Equal(t, test.matched, string(res.Value))
			}
		})
	}

	t.Run("max zero never applies the parser", func(t *testing.T) {
		calls := 0
		res := Rep(counting(Char('a'), &calls), 0, 0).Parse(input("aaa"))
		require.True(t, res.IsSuccess())
		assert.Empty(t, res.Value)
		assert.Equal(t, 0, res.Remaining.Offset())
		assert.Equal(t, 0, calls)
	})

	t.Run("invalid bounds panic", func(t *testing.T) {
		assert.Panics(t, func() { Rep(Char('a'), 3, 2) })
		assert.Panics(t, func() { Rep(Char('a'), -1, Unbounded) })
		assert.NotPanics(t, func() { Rep(Char('a'), 3, Unbounded) })
	})

	t.Run("errors before min propagate", func(t *testing.T) {
		p := Or(Char('a'), Fatal[rune, rune]("boom"))
		res := Rep(p, 2, Unbounded).Parse(input("ab"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
	})

	t.Run("errors after min propagate", func(t *testing.T) {
		p := Or(Char('a'), Fatal[rune, rune]("boom"))
		res := Rep(p, 2, Unbounded).Parse(input("aab"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
		assert.Equal(t, 2, res.Remaining.Offset())
	})

	t.Run("committed items stop backtracking", func(t *testing.T) {
		item := SeqCommit(Char('k'), Char('v'))
		res := Many(item).Parse(input("kvkx"))
		require.True(t, res.IsError())
		assert.Equal(t, "expected 'v' but found 'x'", res.Message)
		assert.Equal(t, 3, res.Remaining.Offset())

		whole := Or(
			MapTo(SeqIgnoreRight(Many(item), EndOfInput[rune]()), "pairs"),
			MapTo(String("kvkx"), "fallback"))
		res2 := whole.Parse(input("kvkx"))
		require.True(t, res2.IsError())

		sep := RepSep(item, Char(','), 0, Unbounded).Parse(input("kv,kx"))
		require.True(t, sep.IsError())

		chained := ChainLeft(Commit(Char('1')), Map(Char('+'), func(rune) func(rune, rune) rune {
			return func(a, b rune) rune { return a }
		}), 0, Unbounded).Parse(input("1+2"))
		require.True(t, chained.IsError())
	})

	t.Run("helpers", func(t *testing.T) {
		res := Many1(Char('a')).Parse(input("aab"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "aa", string(res.Value))

		res = RepN(Char('a'), 3).Parse(input("aab"))
		require.True(t, res.IsFailure())
		assert.Equal(t, "expected 'a' but found 'b'", res.Message)

		text := RepInto(Char('a'), Text(""), 1, Unbounded).Parse(input("aab"))
		require.True(t, text.IsSuccess())
		assert.Equal(t, Text("aa"), text.Value)
	})

	t.Run("long repetitions run in constant stack", func(t *testing.T) {
		const n = 100000
		res := Many(Char('a')).Parse(input(strings.Repeat("a", n)))
		require.True(t, res.IsSuccess())
		assert.Len(t, res.Value, n)
		assert.True(t, res.Remaining.AtEnd())
	})
}

func TestRepSep(t *testing.T) {
	comma := Char(',')

	tests := []struct {
		name      string
		min, max  int
		input     string
		kind      Kind
		values    []int
		remaining int
	}{
		{name: "several", min: 0, max: Unbounded, input: "1,2,3", kind: KindSuccess, values: []int{1, 2, 3}, remaining: 5},
		{name: "trailing separator is left", min: 0, max: Unbounded, input: "1,2,", kind: KindSuccess, values: []int{1, 2}, remaining: 3},
		{name: "empty", min: 0, max: Unbounded, input: "", kind: KindSuccess, values: []int{}, remaining: 0},
		{name: "required", min: 1, max: Unbounded, input: "", kind: KindFailure},
		{name: "bounded", min: 1, max: 2, input: "1,2,3", kind: KindSuccess, values: []int{1, 2}, remaining: 3},
		{name: "not enough", min: 3, max: Unbounded, input: "1,2", kind: KindFailure, remaining: 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := RepSep(digit, comma, test.min, test.max).Parse(input(test.input))
			require.Equal(t, test.kind, res.Kind, res.Message)
			assert.Equal(t, test.remaining, res.Remaining.Offset())
			if res.IsSuccess() {
				assert.Equal(t, test.values, res.Value)
			}
		})
	}

	t.Run("into a sequenceable value", func(t *testing.T) {
		letters := In(unicode.Letter, "letter")
		res := RepSepInto(letters, Char('-'), Text(""), 0, Unbounded).Parse(input("a-b-c"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, Text("abc"), res.Value)
	})
}

func TestChain(t *testing.T) {
	minus := MapTo(Char('-'), func(a, b int) int { return a - b })

	t.Run("left folds earliest operands first", func(t *testing.T) {
		res := ChainLeft1(digit, minus).Parse(input("9-3-2"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, 4, res.Value)
		assert.True(t, res.Remaining.AtEnd())
	})

	t.Run("right folds latest operands first", func(t *testing.T) {
		res := ChainRight1(digit, minus).Parse(input("9-3-2"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, 8, res.Value)
	})

	t.Run("single operand", func(t *testing.T) {
		res := ChainRight1(digit, minus).Parse(input("7"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, 7, res.Value)
	})

	t.Run("zero operands", func(t *testing.T) {
		res := ChainLeft(digit, minus, 0, Unbounded).Parse(input("x"))
		require.True(t, res.IsSuccess())
		assert.False(t, res.Value.Valid)
		assert.Equal(t, 0, res.Remaining.Offset())

		one := ChainLeft1(digit, minus).Parse(input("x"))
		require.True(t, one.IsFailure())
	})

	t.Run("bounded", func(t *testing.T) {
		res := ChainLeft(digit, minus, 0, 2).Parse(input("9-3-2"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, Some(6), res.Value)
		assert.Equal(t, 3, res.Remaining.Offset())

		res = ChainLeft(digit, minus, 2, Unbounded).Parse(input("9"))
		require.True(t, res.IsFailure())
	})

	t.Run("trailing operator is left", func(t *testing.T) {
		res := ChainLeft1(digit, minus).Parse(input("9-3-"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, 6, res.Value)
		assert.Equal(t, 3, res.Remaining.Offset())
	})
}
