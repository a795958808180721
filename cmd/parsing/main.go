package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "parsing",
		Short: "Run the example grammars of the parsing library",
		Long: `Run the example grammars of the parsing library.

Settings come from the defaults, then from the file given with
--config, then from the command line flags.  Use the config command
to see the resulting values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML file with settings")
	flags.Bool("packrat", false, "memoize parsers over the input")
	flags.Bool("trace", false, "log every step of the top level parser")
	flags.String("color", "auto", "color diagnostics: auto, always or never")
	flags.CountP("verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newJSONCmd(a))
	rootCmd.AddCommand(newArithCmd(a))
	rootCmd.AddCommand(newNestCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))

	return rootCmd
}
