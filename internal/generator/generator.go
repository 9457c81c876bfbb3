// Package generator streams word combinations built from up to three word lists.
package generator

import (
	"bufio"
	"fmt"
	"io"

	"github.com/verte-zerg/worgen/internal/model"
	"github.com/verte-zerg/worgen/internal/progress"
	"github.com/verte-zerg/worgen/internal/stats"
)

// Generator writes combinations to an output stream, one per line.
type Generator struct {
	out      *bufio.Writer
	progress progress.Reporter
}

// Option configures a Generator.
type Option func(*Generator)

// WithProgress sets the reporter notified at the start of every primary word.
func WithProgress(r progress.Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.progress = r
		}
	}
}

// New returns a Generator writing to out.
func New(out io.Writer, opts ...Option) *Generator {
	g := &Generator{
		out:      bufio.NewWriterSize(out, 64*1024),
		progress: progress.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes every combination of one word per list, in list order, whose total
// length lies within bound. Combinations are ordered by primary, then secondary, then
// tertiary index. It returns the number of lines written.
func (g *Generator) Generate(lists model.Lists, bound model.Bound) (int64, error) {
	if err := lists.Validate(); err != nil {
		return 0, err
	}
	out := model.OutputSpec{Bound: bound}
	primary := lists.Primary.Words

	for i, w1 := range primary {
		if err := g.report(progress.State{
			Done:           i + 1,
			Total:          len(primary),
			Emitted:        out.Count,
			EstimatedBytes: stats.EstimateBytes(out.Count, bound),
		}); err != nil {
			return out.Count, err
		}

		len1 := len(w1)
		if !withinList(lists.Primary, len1) {
			continue
		}
		if bound.Contains(len1) {
			if err := g.emit(&out, w1); err != nil {
				return out.Count, err
			}
		}
		if lists.Secondary == nil {
			continue
		}

		for _, w2 := range lists.Secondary.Words {
			len2 := len(w2)
			if !withinList(*lists.Secondary, len2) {
				continue
			}
			if bound.Contains(len1 + len2) {
				if err := g.emit(&out, w1, w2); err != nil {
					return out.Count, err
				}
			}
			if lists.Tertiary == nil {
				continue
			}

			for _, w3 := range lists.Tertiary.Words {
				len3 := len(w3)
				if !withinList(*lists.Tertiary, len3) {
					continue
				}
				if bound.Contains(len1 + len2 + len3) {
					if err := g.emit(&out, w1, w2, w3); err != nil {
						return out.Count, err
					}
				}
			}
		}
	}

	if err := g.out.Flush(); err != nil {
		return out.Count, fmt.Errorf("failed to write output: %w", err)
	}
	if err := g.progress.Finish(); err != nil {
		return out.Count, fmt.Errorf("failed to write progress: %w", err)
	}
	return out.Count, nil
}

// withinList gates a word on its own list's bound. The loader applies the same bound
// when reading; this check is kept independent of it.
func withinList(list model.WordList, n int) bool {
	return list.Bound.Contains(n)
}

func (g *Generator) emit(out *model.OutputSpec, parts ...string) error {
	for _, part := range parts {
		if _, err := g.out.WriteString(part); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if err := g.out.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	out.Count++
	return nil
}

func (g *Generator) report(s progress.State) error {
	if _, ok := g.progress.(progress.Nop); ok {
		return nil
	}
	// Lines already produced must reach the output before progress is shown.
	if err := g.out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := g.progress.Update(s); err != nil {
		return fmt.Errorf("failed to write progress: %w", err)
	}
	return nil
}
