package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazeio"
	"github.com/katalvlaran/mazepath/render"
	"github.com/katalvlaran/mazepath/route"
	"github.com/katalvlaran/mazepath/search"
)

func newRenderCmd(a *app) *cobra.Command {
	var conn, strategy, color string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Print the mazes of a file, optionally solved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := grid.ParseConnectivity(conn)
			if err != nil {
				return err
			}
			var opts render.Options
			switch color {
			case "always":
				opts.Color = true
			case "never":
			case "auto":
				f, ok := cmd.OutOrStdout().(*os.File)
				opts.Color = ok && render.ColorEnabled(f)
			default:
				return fmt.Errorf("unknown --color value %q", color)
			}

			mazes, err := mazeio.ReadFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range mazes {
				if m.Err != nil {
					a.logger.Warn("skipping malformed maze", slog.Int("maze", m.Index), slog.String("error", m.Err.Error()))
					continue
				}
				opts.Title = fmt.Sprintf("maze %d (%dx%d)", m.Index, m.Grid.Rows(), m.Grid.Cols())
				g := m.Grid
				if strategy != "" {
					g, opts.Title, err = solveForRender(g, c, strategy, opts.Title)
					if err != nil {
						return err
					}
				}
				if _, err := fmt.Fprintln(out, render.Grid(g, opts)); err != nil {
					return err
				}
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&conn, "conn", "c", "conn4", "connectivity: conn4 or conn8")
	f.StringVarP(&strategy, "strategy", "s", "", "solve with greedy or astar before printing")
	f.StringVar(&color, "color", "auto", "auto, always or never")
	return cmd
}

func solveForRender(g *grid.Grid, conn grid.Connectivity, strategy, title string) (*grid.Grid, string, error) {
	st, err := search.ParseStrategy(strategy)
	if err != nil {
		return nil, "", err
	}
	g = g.Clone()
	res, err := search.Search(g, search.WithStrategy(st), search.WithConnectivity(conn))
	switch {
	case errors.Is(err, search.ErrPathNotFound):
		return g, fmt.Sprintf("%s %s: no path", title, st), nil
	case err != nil:
		return nil, "", err
	}
	if err := route.Mark(g, res.Path, conn); err != nil {
		return nil, "", err
	}
	return g, fmt.Sprintf("%s %s: %d steps, %d expanded", title, st, res.Steps(), res.Expanded), nil
}
