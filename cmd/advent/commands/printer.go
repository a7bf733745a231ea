package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/advent/internal/app"
	"go.trai.ch/advent/internal/core/domain"
	"go.trai.ch/advent/internal/core/ports"
	"go.trai.ch/advent/internal/ui/output"
	"go.trai.ch/advent/internal/ui/style"
)

// printer renders command results.
type printer struct {
	out *termenv.Output
}

func newPrinter(w io.Writer) *printer {
	out := output.New(w)
	lipgloss.SetColorProfile(out.Profile)
	return &printer{out: out}
}

func label(id domain.PuzzleID) string {
	return fmt.Sprintf("day %02d part %d", id.Day, id.Part)
}

func (p *printer) answer(a domain.Answer) {
	icon := lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)
	suffix := ""
	if a.Cached {
		icon = style.Muted.Render(style.Cached)
		suffix = " " + style.Muted.Render("(cached)")
	}
	_, _ = fmt.Fprintf(p.out, "%s %s  %s%s\n", icon, label(a.ID()), style.Answer.Render(a.Value), suffix)
}

func (p *printer) failure(id domain.PuzzleID, err error) {
	icon := style.Failed.Render(style.Cross)
	_, _ = fmt.Fprintf(p.out, "%s %s  %s\n", icon, label(id), style.Failed.Render(err.Error()))
}

func (p *printer) results(results []app.Result) {
	var solved, cached, failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			p.failure(r.ID, r.Err)
		case r.Answer.Cached:
			cached++
			p.answer(r.Answer)
		default:
			solved++
			p.answer(r.Answer)
		}
	}

	summary := fmt.Sprintf("%d solved, %d cached, %d failed", solved, cached, failed)
	if failed == 0 && len(results) > 0 {
		summary = lipgloss.NewStyle().Foreground(style.Star).Render(style.Gold) + " " + style.Muted.Render(summary)
	} else {
		summary = style.Muted.Render(summary)
	}
	_, _ = fmt.Fprintln(p.out, summary)
}

func (p *printer) puzzles(puzzles []ports.Puzzle) {
	_, _ = fmt.Fprintln(p.out, style.Title.Render("Advent of Code 2020"))
	for _, puzzle := range puzzles {
		_, _ = fmt.Fprintf(p.out, "  %s  %s\n", style.Muted.Render(label(puzzle.ID())), puzzle.Title())
	}
}
