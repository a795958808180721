package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarete/parsing"
	"github.com/clarete/parsing/grammars/arith"
)

func newArithCmd(a *app) *cobra.Command {
	var showTree bool

	cmd := &cobra.Command{
		Use:   "arith <expression>",
		Short: "Evaluate an integer arithmetic expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			complete := parsing.SeqIgnoreRight(arith.Expr, parsing.EndOfInput[rune]())
			r := a.reader(args[0])
			res := parsing.Run(complete, r, a.cfg)
			a.logStats(r)
			if !res.IsSuccess() {
				return a.report(cmd.ErrOrStderr(), res.Err())
			}

			if showTree {
				fmt.Fprintln(cmd.OutOrStdout(), res.Value)
			}
			v, err := res.Value.Eval()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "print the expression tree before its value")
	return cmd
}
