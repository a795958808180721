package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/clarete/parsing"
	"github.com/clarete/parsing/grammars/json"
)

func newJSONCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "json [file]",
		Short: "Parse a JSON document",
		Long: `Parse a JSON document and print it back.

If no file is provided, reads the document from stdin.  The output is
either compact JSON or YAML, see --output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				source []byte
				err    error
			)
			if len(args) == 0 {
				source, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				source, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			if cmd.Flags().Changed("output") {
				a.cfg.SetString("cli.output", output)
			}

			r := a.reader(string(source))
			res := parsing.Run(json.Complete, r, a.cfg)
			a.logStats(r)
			if !res.IsSuccess() {
				return a.report(cmd.ErrOrStderr(), res.Err())
			}

			out := cmd.OutOrStdout()
			switch format := a.cfg.GetString("cli.output"); format {
			case "json":
				_, err = fmt.Fprintln(out, res.Value.Text())
				return err
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(json.ToYAML(res.Value)); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown output format `%s`, expected json or yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format: json or yaml")
	return cmd
}
