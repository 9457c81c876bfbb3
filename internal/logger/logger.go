// Package logger writes worgen's diagnostic lines.
// Info lines are printed only in verbose mode; error lines are always printed
// with an "ERROR: " prefix.
package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Logger is the diagnostic sink used by the loader and the CLI.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Stderr writes diagnostics to a writer, usually os.Stderr.
type Stderr struct {
	w       io.Writer
	verbose bool
	prefix  string
}

// New returns a logger writing to w. The error prefix is colored only when w is a terminal.
func New(w io.Writer, verbose bool) *Stderr {
	renderer := lipgloss.NewRenderer(w)
	style := renderer.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	return &Stderr{
		w:       w,
		verbose: verbose,
		prefix:  style.Render("ERROR:") + " ",
	}
}

// Verbose reports whether info lines are printed.
func (l *Stderr) Verbose() bool {
	return l.verbose
}

// Infof prints an informational line in verbose mode.
func (l *Stderr) Infof(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.write("", format, args...)
}

// Errorf prints an error line.
func (l *Stderr) Errorf(format string, args ...any) {
	l.write(l.prefix, format, args...)
}

func (l *Stderr) write(prefix, format string, args ...any) {
	if _, err := fmt.Fprintf(l.w, prefix+format+"\n", args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

type discard struct{}

func (discard) Infof(string, ...any)  {}
func (discard) Errorf(string, ...any) {}

// Discard drops every line.
var Discard Logger = discard{}
