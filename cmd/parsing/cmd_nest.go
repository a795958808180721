package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clarete/parsing"
)

// nesting counts balanced parentheses: `p <- '(' p ')' / ''`
var nesting = parsing.Recursive(func(self *parsing.Parser[int, rune]) *parsing.Parser[int, rune] {
	open := parsing.SeqIgnoreLeft(parsing.Char('('), self)
	nested := parsing.Map(parsing.SeqIgnoreRight(open, parsing.Char(')')), func(n int) int { return n + 1 })
	return parsing.Or(nested, parsing.Success[int, rune](0))
}).Named("nesting")

func newNestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nest [depth]",
		Short: "Parse deeply nested parentheses",
		Long: `Parse a string of balanced parentheses nested depth times.

The parser recurses once per level, so this shows how deep grammars can
go without growing the goroutine stack.  The default depth comes from
the nest.depth setting.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			depth := a.cfg.GetInt("nest.depth")
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 0 {
					return fmt.Errorf("invalid depth `%s`", args[0])
				}
				depth = n
			}

			input := strings.Repeat("(", depth) + strings.Repeat(")", depth)
			complete := parsing.SeqIgnoreRight(nesting, parsing.EndOfInput[rune]())
			r := a.reader(input)
			res := parsing.Run(complete, r, a.cfg)
			a.logStats(r)
			if !res.IsSuccess() {
				return a.report(cmd.ErrOrStderr(), res.Err())
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "nested %d levels\n", res.Value)
			return err
		},
	}
}
