package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/clarete/parsing"
	"github.com/clarete/parsing/ascii"
)

// errReported is returned by commands that already printed a
// diagnostic, so main only needs to set the exit status
var errReported = errors.New("reported")

// app holds what every command shares once the root command parsed
// its flags
type app struct {
	configPath string

	cfg     *parsing.Config
	painter ascii.Painter
	log     commonlog.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = parsing.NewConfig()
	if a.configPath != "" {
		if err := a.cfg.LoadConfigFile(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("packrat") {
		v, _ := flags.GetBool("packrat")
		a.cfg.SetBool("parse.packrat", v)
	}
	if flags.Changed("trace") {
		v, _ := flags.GetBool("trace")
		a.cfg.SetBool("parse.trace", v)
	}
	if flags.Changed("color") {
		v, _ := flags.GetString("color")
		a.cfg.SetString("cli.color", v)
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetCount("verbose")
		a.cfg.SetInt("log.verbosity", v)
	}

	// tracing is only visible at debug level
	verbosity := a.cfg.GetInt("log.verbosity")
	if a.cfg.GetBool("parse.trace") && verbosity < 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	a.log = commonlog.GetLogger("parsing.cli")

	painter, err := ascii.NewPainter(a.cfg.GetString("cli.color"), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.painter = painter
	return nil
}

// report prints a diagnostic for err to w.  Parsing errors get their
// position and the line they happened in, with a caret under the
// column.
func (a *app) report(w io.Writer, err error) error {
	msg, pos, ok := parsing.Describe(err)
	if !ok {
		return err
	}

	theme := a.painter.Theme
	label, color := "failure", theme.Failure
	if parsing.IsFatal(err) {
		label, color = "error", theme.Error
	}

	if pos == nil {
		fmt.Fprintf(w, "%s: %s\n", a.painter.Paint(color, "%s", label), msg)
		return errReported
	}

	fmt.Fprintf(w, "%s: %s @ %s\n",
		a.painter.Paint(color, "%s", label), msg, a.painter.Paint(theme.Position, "%s", pos))

	lines := strings.Split(pos.LongString(), "\n")
	for i, line := range lines {
		if i == len(lines)-1 {
			fmt.Fprintf(w, "    %s\n", a.painter.Paint(theme.Caret, "%s", line))
			continue
		}
		fmt.Fprintf(w, "    %s\n", a.painter.Paint(theme.Muted, "%s", line))
	}
	return errReported
}

// logStats prints packrat counters when r memoized anything
func (a *app) logStats(r parsing.Reader[rune]) {
	pr, ok := r.(*parsing.PackratReader[rune])
	if !ok {
		return
	}
	stats := pr.Stats()
	a.log.Infof("memo: %d hits, %d misses, %d entries", stats.Hits, stats.Misses, stats.Entries)
}

// reader creates the reader the command should parse from, decorated
// with a memo table when packrat is enabled
func (a *app) reader(input string) parsing.Reader[rune] {
	var r parsing.Reader[rune] = parsing.NewRuneReader(input)
	if a.cfg.GetBool("parse.packrat") {
		r = parsing.NewPackratReader(r)
	}
	return r
}
