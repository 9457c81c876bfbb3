package progress

import (
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	maxBarWidth = 30
	minBarWidth = 10
)

// Bar draws a progress bar followed by the counts text, fitted to the terminal width.
type Bar struct {
	w        io.Writer
	width    int
	barWidth int
	bar      progress.Model
	started  bool
}

// NewBar returns a bar reporter for a terminal of the given width.
func NewBar(w io.Writer, width int) *Bar {
	if width <= 0 {
		width = defaultWidth
	}
	barWidth := width / 3
	if barWidth > maxBarWidth {
		barWidth = maxBarWidth
	}
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}
	renderer := lipgloss.NewRenderer(w)
	return &Bar{
		w:        w,
		width:    width,
		barWidth: barWidth,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(barWidth),
			progress.WithColorProfile(renderer.ColorProfile()),
		),
	}
}

// Update implements Reporter.
func (b *Bar) Update(s State) error {
	b.started = true
	_, err := io.WriteString(b.w, "\r"+b.render(s))
	return err
}

// Finish implements Reporter.
func (b *Bar) Finish() error {
	if !b.started {
		return nil
	}
	_, err := io.WriteString(b.w, "\n")
	return err
}

func (b *Bar) render(s State) string {
	avail := b.width - b.barWidth - 2
	if avail < 0 {
		avail = 0
	}
	text := runewidth.Truncate(s.Text(), avail, "…")
	// Pad so a shorter line fully overwrites the previous one.
	text = runewidth.FillRight(text, avail)
	return b.bar.ViewAs(s.Fraction()) + " " + text
}
