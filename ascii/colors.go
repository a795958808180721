// Package ascii provides terminal ANSI color codes and semantic names
// for them, grouped in themes, so diagnostics can be colored.
package ascii

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually
	Bold   = "\033[1m"

	// 256-color palette
	Orange = "\033[38;5;208m"
)

// Theme defines semantic color mappings
type Theme struct {
	Error   string
	Failure string
	Success string

	// Position of a diagnostic, and the caret pointing at it
	Position string
	Caret    string

	// Secondary text, like the line the caret points at
	Muted string
}

// DefaultTheme provides a sensible default color mapping.
var DefaultTheme = Theme{
	Error:   Red,
	Failure: Yellow,
	Success: Green,

	Position: Cyan,
	Caret:    Orange,
	Muted:    Gray,
}

func Color(color, format string, args ...any) string {
	return fmt.Sprintf(color+format+Reset, args...)
}

// Painter colors text with a theme, or leaves it alone when disabled
type Painter struct {
	Theme   Theme
	Enabled bool
}

// NewPainter decides whether to color output written to w.  `mode` is
// one of `always`, `never` or `auto`, which colors only terminals.
func NewPainter(mode string, w io.Writer) (Painter, error) {
	p := Painter{Theme: DefaultTheme}
	switch mode {
	case "always":
		p.Enabled = true
	case "never":
	case "auto", "":
		f, ok := w.(*os.File)
		p.Enabled = ok && IsTerminal(f)
	default:
		return p, fmt.Errorf("invalid color mode `%s`, expected auto, always or never", mode)
	}
	return p, nil
}

// IsTerminal tells whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p Painter) Paint(color, format string, args ...any) string {
	if !p.Enabled || color == "" {
		return fmt.Sprintf(format, args...)
	}
	return Color(color, format, args...)
}
