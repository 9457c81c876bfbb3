// Package progress reports generation progress on the diagnostic stream.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// State is a snapshot of the generator taken at the start of an outer iteration.
type State struct {
	Done           int
	Total          int
	Emitted        int64
	EstimatedBytes int64
}

// Percent returns completion in whole percent.
func (s State) Percent() int {
	if s.Total <= 0 {
		return 100
	}
	return s.Done * 100 / s.Total
}

// Fraction returns completion as a value in [0, 1].
func (s State) Fraction() float64 {
	if s.Total <= 0 {
		return 1
	}
	return float64(s.Done) / float64(s.Total)
}

// Text renders the counts part of a progress line.
func (s State) Text() string {
	return fmt.Sprintf("Working. %d%% complete, %d words (approximately %dMb) produced.",
		s.Percent(), s.Emitted, s.EstimatedBytes/1024/1024)
}

// Reporter receives progress updates.
type Reporter interface {
	Update(State) error
	Finish() error
}

// Mode selects a reporter implementation.
type Mode string

// Supported modes.
const (
	ModeAuto  Mode = "auto"
	ModePlain Mode = "plain"
	ModeBar   Mode = "bar"
	ModeOff   Mode = "off"
)

// ParseMode validates a mode name.
func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case ModeAuto, ModePlain, ModeBar, ModeOff:
		return mode, nil
	case "":
		return ModeAuto, nil
	}
	return "", fmt.Errorf("unknown progress mode %q (expected auto, plain, bar or off)", value)
}

// New returns a reporter writing to w. ModeAuto draws a bar on terminals and a plain line otherwise.
func New(mode Mode, w io.Writer) Reporter {
	switch mode {
	case ModeOff:
		return Nop{}
	case ModePlain:
		return NewLine(w)
	case ModeBar:
		return NewBar(w, terminalWidth(w))
	}
	if isTerminal(w) {
		return NewBar(w, terminalWidth(w))
	}
	return NewLine(w)
}

// Nop discards progress.
type Nop struct{}

// Update implements Reporter.
func (Nop) Update(State) error { return nil }

// Finish implements Reporter.
func (Nop) Finish() error { return nil }

// Line rewrites a single carriage-return line.
type Line struct {
	w       io.Writer
	started bool
}

// NewLine returns a plain text reporter.
func NewLine(w io.Writer) *Line {
	return &Line{w: w}
}

// Update implements Reporter.
func (l *Line) Update(s State) error {
	l.started = true
	_, err := fmt.Fprintf(l.w, "\r%s", s.Text())
	return err
}

// Finish ends the progress line.
func (l *Line) Finish() error {
	if !l.started {
		return nil
	}
	_, err := io.WriteString(l.w, "\n")
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const defaultWidth = 80

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
