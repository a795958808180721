package parsing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advance[E any](r Reader[E], n int) Reader[E] {
	for i := 0; i < n; i++ {
		r = r.Rest()
	}
	return r
}

func TestSlicePosition(t *testing.T) {
	r := advance(Reader[string](NewSliceReader([]string{"foo", "bar", "baz", "qux"})), 2)
	pos := r.Position()

	assert.Equal(t, 1, pos.Line())
	assert.Equal(t, 3, pos.Column())
	assert.Equal(t, "3", pos.String())
	assert.Equal(t, "foo bar baz qux", pos.LineContents())
	assert.Equal(t, "foo bar baz qux\n        ^", pos.LongString())
}

func TestRunePosition(t *testing.T) {
	t.Run("first line", func(t *testing.T) {
		pos := advance(input("abc\ndef"), 2).Position()
		assert.Equal(t, "3", pos.String())
		assert.Equal(t, "abc", pos.LineContents())
		assert.Equal(t, "abc\n  ^", pos.LongString())
	})

	t.Run("lines and tabs", func(t *testing.T) {
		pos := advance(input("ab\n\tcd"), 5).Position()
		assert.Equal(t, 2, pos.Line())
		assert.Equal(t, 3, pos.Column())
		assert.Equal(t, "2:3", pos.String())
		assert.Equal(t, "\tcd\n\t ^", pos.LongString())
	})

	t.Run("end of input", func(t *testing.T) {
		pos := advance(input("ab"), 2).Position()
		assert.Equal(t, "ab\n  ^", pos.LongString())
	})
}

func TestRead(t *testing.T) {
	items, rest, err := Read(input("abc"), 2)
	require.NoError(t, err)
	assert.Equal(t, []rune("ab"), items)
	assert.Equal(t, 2, rest.Offset())

	_, _, err = Read(input("abc"), 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEndOfFile))
}

func TestRestAtEnd(t *testing.T) {
	readers := map[string]Reader[rune]{
		"runes": NewRuneReader(""),
		"slice": NewSliceReader([]rune{}),
	}
	for name, r := range readers {
		t.Run(name, func(t *testing.T) {
			require.True(t, r.AtEnd())
			var rest Reader[rune]
			assert.NotPanics(t, func() { rest = r.Rest() })
			assert.True(t, rest.AtEnd())
			assert.Equal(t, 1, rest.Offset())
		})
	}
}

func TestResult(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		ok := String("a").Parse(input("ab"))
		assert.Equal(t, "[2] parsed: a", ok.String())

		failed := Char('x').Parse(input("ab"))
		assert.Equal(t, "[1] failure: expected 'x' but found 'a'\n\nab\n^", failed.String())
	})

	t.Run("errors", func(t *testing.T) {
		ok := String("a").Parse(input("ab"))
		assert.NoError(t, ok.Err())

		failed := Char('x').Parse(input("ab"))
		err := failed.Err()
		require.Error(t, err)
		assert.False(t, IsFatal(err))
		assert.Equal(t, "expected 'x' but found 'a' @ 1", err.Error())

		fatal := Commit(Char('x')).Parse(input("ab")).Err()
		require.Error(t, fatal)
		assert.True(t, IsFatal(fatal))

		var perr *ParsingError
		require.True(t, errors.As(fatal, &perr))
		assert.Equal(t, 1, perr.Position.Column())
	})

	t.Run("kinds", func(t *testing.T) {
		assert.Equal(t, "success", KindSuccess.String())
		assert.Equal(t, "failure", KindFailure.String())
		assert.Equal(t, "error", KindError.String())
	})
}

func TestDescribe(t *testing.T) {
	msg, pos, ok := Describe(Char('x').Parse(input("ab")).Err())
	require.True(t, ok)
	assert.Equal(t, "expected 'x' but found 'a'", msg)
	assert.Equal(t, "ab\n^", pos.LongString())

	msg, pos, ok = Describe(Commit(String("ax")).Parse(input("ab")).Err())
	require.True(t, ok)
	assert.Equal(t, "expected ax but found ab", msg)
	assert.Equal(t, 1, pos.Column())

	_, _, ok = Describe(errors.New("other"))
	assert.False(t, ok)
}
