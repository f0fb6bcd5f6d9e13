// Package render draws grids for terminals, optionally with lipgloss colors.
package render

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/mazepath/grid"
)

// Options controls Grid output.
type Options struct {
	// Color enables styled output. Without it Grid returns plain symbols.
	Color bool
	// Renderer overrides the default lipgloss renderer (and its color profile).
	Renderer *lipgloss.Renderer
	// Title, when set, is printed bold on the first line.
	Title string
}

type palette struct {
	title lipgloss.Style
	cells map[grid.CellState]lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	return palette{
		title: r.NewStyle().Bold(true),
		cells: map[grid.CellState]lipgloss.Style{
			grid.Open:    r.NewStyle().Foreground(lipgloss.Color("238")),
			grid.Blocked: r.NewStyle().Foreground(lipgloss.Color("241")),
			grid.Start:   r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			grid.Goal:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			grid.Path:    r.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		},
	}
}

// Grid renders g one row per line, without a trailing newline.
// Runs of equal cells share one styled span.
func Grid(g *grid.Grid, opts Options) string {
	if !opts.Color {
		if opts.Title == "" {
			return g.String()
		}
		return opts.Title + "\n" + g.String()
	}

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := newPalette(r)

	var b strings.Builder
	if opts.Title != "" {
		b.WriteString(p.title.Render(opts.Title))
		b.WriteByte('\n')
	}
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		run := make([]byte, 0, g.Cols())
		var runState grid.CellState
		for col := 0; col < g.Cols(); col++ {
			st, _ := g.State(grid.C(row, col))
			if len(run) > 0 && st != runState {
				b.WriteString(p.cells[runState].Render(string(run)))
				run = run[:0]
			}
			runState = st
			run = append(run, st.Symbol())
		}
		b.WriteString(p.cells[runState].Render(string(run)))
	}
	return b.String()
}

// ColorEnabled reports whether f is a terminal and NO_COLOR is unset.
func ColorEnabled(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
