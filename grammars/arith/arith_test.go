package arith

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clarete/parsing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		tree     string
	}{
		{input: "23+42*3", expected: 149, tree: "(23 + (42 * 3))"},
		{input: "10-4-3", expected: 3, tree: "((10 - 4) - 3)"},
		{input: "2^3^2", expected: 512, tree: "(2 ^ (3 ^ 2))"},
		{input: " ( 1 + 2 ) * 3 ", expected: 9, tree: "((1 + 2) * 3)"},
		{input: "-(2+3)", expected: -5, tree: "-(2 + 3)"},
		{input: "2--3", expected: 5, tree: "(2 - -3)"},
		{input: "17 % 5 / 2", expected: 1, tree: "((17 % 5) / 2)"},
		{input: "7", expected: 7, tree: "7"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			node, err := Parse(test.input, nil)
			require.NoError(t, err)
			assert.Equal(t, test.tree, node.String())

			v, err := node.Eval()
			require.NoError(t, err)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		fatal   bool
	}{
		{name: "dangling operator", input: "2+", message: "end of input expected @ 2"},
		{name: "unclosed parenthesis", input: "(1+2", message: "end of input @ 5", fatal: true},
		{name: "not a number", input: "x", message: "expected '-' but found 'x' @ 1"},
		{name: "too large", input: "99999999999999999999", message: "number out of range: 99999999999999999999 @ 21", fatal: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(test.input, nil)
			require.Error(t, err)
			assert.Equal(t, test.message, err.Error())
			assert.Equal(t, test.fatal, parsing.IsFatal(err))
		})
	}

	t.Run("division by zero", func(t *testing.T) {
		_, err := Eval("1/(2-2)", nil)
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestDeepExpressions(t *testing.T) {
	const depth = 5000
	input := strings.Repeat("(", depth) + "1" + strings.Repeat("+1)", depth)
	v, err := Eval(input, nil)
	require.NoError(t, err)
	assert.Equal(t, depth+1, v)

	long := "1" + strings.Repeat("+1", 50000)
	v, err = Eval(long, nil)
	require.NoError(t, err)
	assert.Equal(t, 50001, v)
}

func TestPackrat(t *testing.T) {
	cfg := parsing.NewConfig()
	cfg.SetBool("parse.packrat", true)
	v, err := Eval("23+42*3", cfg)
	require.NoError(t, err)
	assert.Equal(t, 149, v)
}

func TestLeftRecursive(t *testing.T) {
	_, err := ParseLeftRecursive("1+2")
	require.Error(t, err)
	assert.True(t, parsing.IsFatal(err))
	assert.Equal(t, parsing.LeftRecursionMessage+" @ 1", err.Error())
}
