package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOr(t *testing.T) {
	t.Run("first success wins", func(t *testing.T) {
		res := Or(String("ab"), String("a")).Parse(input("abc"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "ab", res.Value)
	})

	t.Run("alternative runs from the same cursor", func(t *testing.T) {
		p := Or(MapTo(Seq(Char('a'), Char('x')), "ax"), String("ab"))
		res := p.Parse(input("ab"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "ab", res.Value)
		assert.Equal(t, 2, res.Remaining.Offset())
	})

	t.Run("reports the failure that got further", func(t *testing.T) {
		first := MapTo(Seq(Char('a'), Char('b')), "ab")
		alt := MapTo(Char('x'), "x")
		res := Or(first, alt).Parse(input("ac"))
		require.True(t, res.IsFailure())
		assert.Equal(t, "expected 'b' but found 'c'", res.Message)
		assert.Equal(t, 1, res.Remaining.Offset())

		res = Or(alt, first).Parse(input("ac"))
		require.True(t, res.IsFailure())
		assert.Equal(t, "expected 'b' but found 'c'", res.Message)
	})

	t.Run("ties report the alternative", func(t *testing.T) {
		res := Or(String("x"), String("y")).Parse(input("z"))
		require.True(t, res.IsFailure())
		assert.Equal(t, "expected y but found z", res.Message)
	})

	t.Run("error of the first branch aborts", func(t *testing.T) {
		calls := 0
		res := Or(Fatal[string, rune]("boom"), counting(String("a"), &calls)).Parse(input("a"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
		assert.Equal(t, 0, calls)
	})

	t.Run("error of the alternative propagates", func(t *testing.T) {
		res := Or(String("x"), Fatal[string, rune]("boom")).Parse(input("a"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
	})

	t.Run("method form", func(t *testing.T) {
		res := String("x").Or(String("a")).Parse(input("a"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "a", res.Value)
	})

	t.Run("either", func(t *testing.T) {
		p := OrEither(Char('a'), String("bc"))

		res := p.Parse(input("bc"))
		require.True(t, res.IsSuccess())
		assert.True(t, res.Value.IsRight)
		assert.Equal(t, "bc", res.Value.Right)
		assert.Equal(t, "Right(bc)", res.Value.String())

		res = p.Parse(input("a"))
		require.True(t, res.IsSuccess())
		assert.False(t, res.Value.IsRight)
		assert.Equal(t, 'a', res.Value.Left)
	})

	t.Run("choice", func(t *testing.T) {
		p := Choice(String("let"), String("if"), String("else"))
		res := p.Parse(input("else"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "else", res.Value)

		res = Choice[string, rune]().Parse(input("else"))
		require.True(t, res.IsFailure())
	})
}

func TestOrLonger(t *testing.T) {
	t.Run("keeps the longest match", func(t *testing.T) {
		res := OrLonger(String("a"), String("ab")).Parse(input("abc"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "ab", res.Value)
		assert.Equal(t, 2, res.Remaining.Offset())

		res = String("ab").OrLonger(String("a")).Parse(input("abc"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "ab", res.Value)
	})

	t.Run("ties favor the first", func(t *testing.T) {
		res := OrLonger(MapTo(String("a"), "first"), MapTo(String("a"), "second")).Parse(input("a"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "first", res.Value)
	})

	t.Run("error of the alternative wins over a success", func(t *testing.T) {
		res := OrLonger(String("a"), Fatal[string, rune]("boom")).Parse(input("a"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
	})

	t.Run("alternative after a failure", func(t *testing.T) {
		res := OrLonger(String("x"), String("a")).Parse(input("a"))
		require.True(t, res.IsSuccess())
		assert.Equal(t, "a", res.Value)

		res = OrLonger(String("x"), Fatal[string, rune]("boom")).Parse(input("a"))
		require.True(t, res.IsError())
		assert.Equal(t, "boom", res.Message)
	})

	t.Run("error of the first branch aborts", func(t *testing.T) {
		calls := 0
		res := OrLonger(Fatal[string, rune]("boom"), counting(String("a"), &calls)).Parse(input("a"))
		require.True(t, res.IsError())
		assert.Equal(t, 0, calls)
	})

	t.Run("either", func(t *testing.T) {
		res := OrLongerEither(Char('a'), String("ab")).Parse(input("ab"))
		require.True(t, res.IsSuccess())
		assert.True(t, res.Value.IsRight)
		assert.Equal(t, "ab", res.Value.Right)
	})
}

func TestCommit(t *testing.T) {
	res := Commit(Char('a')).Parse(input("b"))
	require.True(t, res.IsError())
	assert.Equal(t, "expected 'a' but found 'b'", res.Message)
	assert.Equal(t, 0, res.Remaining.Offset())

	res = Char('a').Commit().Parse(input("a"))
	require.True(t, res.IsSuccess())
	assert.Equal(t, 'a', res.Value)

	same := Commit(Fatal[rune, rune]("boom")).Parse(input("a"))
	require.True(t, same.IsError())
	assert.Equal(t, "boom", same.Message)
}

func TestMergeEither(t *testing.T) {
	assert.Equal(t, 1, Merge(Left[int, int](1)))
	assert.Equal(t, 2, Merge(Right[int, int](2)))
}
