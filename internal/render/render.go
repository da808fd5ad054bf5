// Package render turns emphasized matches into terminal output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode controls whether emphasis is rendered as ANSI color
type ColorMode string

// Color modes
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Escape sequences produced for emphasized text
const (
	RedStart = termenv.CSI + "31m"
	Reset    = termenv.CSI + termenv.ResetSeq + "m"
)

// ParseColorMode validates a color mode name
func ParseColorMode(name string) (ColorMode, error) {
	switch mode := ColorMode(name); mode {
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode: %q", name)
	}
}

// Painter emphasizes text in red when color is enabled
type Painter struct {
	output  *termenv.Output
	enabled bool
}

// NewPainter creates a Painter for w. In auto mode color is enabled only when
// w is a terminal.
func NewPainter(w io.Writer, mode ColorMode) *Painter {
	enabled := mode == ColorAlways || (mode == ColorAuto && isTerminal(w))
	return &Painter{
		output:  termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI)),
		enabled: enabled,
	}
}

// Enabled reports whether the painter emits escape sequences
func (p *Painter) Enabled() bool {
	return p.enabled
}

// Emphasize wraps text in a red foreground sequence
func (p *Painter) Emphasize(text string) string {
	if !p.enabled {
		return text
	}
	return p.output.String(text).Foreground(termenv.ANSIRed).String()
}

// StripEmphasis removes the sequences added by Emphasize
func StripEmphasis(s string) string {
	return strings.NewReplacer(RedStart, "", Reset, "").Replace(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
