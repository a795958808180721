// Package arith parses and evaluates integer arithmetic expressions.
// It exists mostly to exercise operator chaining and the packrat left
// recursion guard of the parsing package.
package arith

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/clarete/parsing"
)

var ErrDivisionByZero = errors.New("division by zero")

// Node is an expression tree
type Node interface {
	Eval() (int, error)
	String() string
}

type Num struct {
	Value int
}

func (n *Num) Eval() (int, error) { return n.Value, nil }
func (n *Num) String() string     { return strconv.Itoa(n.Value) }

type Neg struct {
	Operand Node
}

func (n *Neg) Eval() (int, error) {
	v, err := n.Operand.Eval()
	return -v, err
}

func (n *Neg) String() string { return fmt.Sprintf("-%s", n.Operand) }

type BinOp struct {
	Op    rune
	Left  Node
	Right Node
}

func (n *BinOp) String() string {
	return fmt.Sprintf("(%s %c %s)", n.Left, n.Op, n.Right)
}

func (n *BinOp) Eval() (int, error) {
	a, err := n.Left.Eval()
	if err != nil {
		return 0, err
	}
	b, err := n.Right.Eval()
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/', '%':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if n.Op == '/' {
			return a / b, nil
		}
		return a % b, nil
	case '^':
		if b < 0 {
			return 0, fmt.Errorf("negative exponent: %d", b)
		}
		result := 1
		for i := 0; i < b; i++ {
			result *= a
		}
		return result, nil
	default:
		return 0, fmt.Errorf("unknown operator: %c", n.Op)
	}
}

type (
	nodeParser = parsing.Parser[Node, rune]
	opParser   = parsing.Parser[func(Node, Node) Node, rune]
)

func binOp(op rune) func(Node, Node) Node {
	return func(a, b Node) Node { return &BinOp{Op: op, Left: a, Right: b} }
}

func operator(chars string) *opParser {
	return parsing.Map(parsing.WithWhitespace(parsing.OneOf(chars, "operator")), binOp)
}

var number = parsing.WithWhitespace(parsing.TryMap(
	parsing.Runes(parsing.Many1(parsing.In(unicode.Digit, "digit"))),
	func(digits string) (Node, error) {
		v, err := strconv.Atoi(digits)
		if err != nil {
			return nil, parsing.Throwf("number out of range: %s", digits)
		}
		return &Num{Value: v}, nil
	})).Named("number")

// Expr parses expressions with the usual precedence: `^` binds tighter
// and groups to the right, then `* / %`, then `+ -`, both grouping to
// the left.  Once an opening parenthesis is read, the closing one is
// required.
var Expr = parsing.Recursive(func(expr *nodeParser) *nodeParser {
	var factor *nodeParser
	parens := parsing.SeqIgnoreRight(
		parsing.SeqIgnoreLeft(parsing.WithWhitespace(parsing.Char('(')), expr),
		parsing.Commit(parsing.WithWhitespace(parsing.Char(')'))))
	negative := parsing.Map(
		parsing.SeqIgnoreLeft(parsing.WithWhitespace(parsing.Char('-')), parsing.Lazy(func() *nodeParser { return factor })),
		func(n Node) Node { return &Neg{Operand: n} })
	factor = parsing.Choice(number, parens, negative).Named("factor")

	power := parsing.ChainRight1(factor, operator("^"))
	term := parsing.ChainLeft1(power, operator("*/%")).Named("term")
	return parsing.ChainLeft1(term, operator("+-")).Named("expr")
})

// LeftRecursive is the grammar `expr <- expr '+' number / number`
// written as it reads.  It only works on packrat readers, where it
// stops with a left recursion error instead of looping forever.
var LeftRecursive = func() *nodeParser {
	var expr *nodeParser
	expr = parsing.Packrat(parsing.Lazy(func() *nodeParser {
		plus := parsing.SeqIgnoreLeft(parsing.WithWhitespace(parsing.Char('+')), number)
		sum := parsing.SeqWith(expr, plus, binOp('+'))
		return parsing.Or(sum, number)
	}))
	return expr.Named("left-recursive-expr")
}()

var complete = parsing.SeqIgnoreRight(Expr, parsing.EndOfInput[rune]())

// Parse reads a whole expression
func Parse(input string, cfg *parsing.Config) (Node, error) {
	res := parsing.ParseString(complete, input, cfg)
	if !res.IsSuccess() {
		return nil, res.Err()
	}
	return res.Value, nil
}

// Eval parses and evaluates an expression
func Eval(input string, cfg *parsing.Config) (int, error) {
	node, err := Parse(input, cfg)
	if err != nil {
		return 0, err
	}
	return node.Eval()
}

// ParseLeftRecursive applies LeftRecursive through a packrat reader
func ParseLeftRecursive(input string) (Node, error) {
	r := parsing.NewPackratReader(parsing.Reader[rune](parsing.NewRuneReader(input)))
	res := LeftRecursive.Parse(r)
	if !res.IsSuccess() {
		return nil, res.Err()
	}
	return res.Value, nil
}
