package main

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/mazeio"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rows, cols, count int
		probability       float64
		seed              int64
		appendTo          []string
		solvable          string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random mazes",
		Long: "Generates mazes with a blocked border and random interior walls.\n" +
			"With --append each maze is appended to every listed file; otherwise\n" +
			"mazes are printed to stdout separated by blank lines.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			opts := []mazegen.Option{
				mazegen.WithRand(rand.New(rand.NewSource(seed))),
				mazegen.WithBlockedProbability(probability),
			}
			if solvable != "" {
				conn, err := grid.ParseConnectivity(solvable)
				if err != nil {
					return err
				}
				opts = append(opts, mazegen.WithSolvable(conn))
			}
			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				g, err := mazegen.Generate(rows, cols, opts...)
				if err != nil {
					return err
				}
				if len(appendTo) == 0 {
					if i > 0 {
						if _, err := out.Write([]byte("\n")); err != nil {
							return err
						}
					}
					if err := mazeio.WriteGrid(out, g); err != nil {
						return err
					}
					continue
				}
				for _, path := range appendTo {
					if err := mazeio.AppendFile(path, g); err != nil {
						return err
					}
				}
			}
			a.logger.Debug("mazes generated", slog.Int("count", count), slog.Int64("seed", seed))
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&rows, "rows", 10, "rows including the border")
	f.IntVar(&cols, "cols", 10, "columns including the border")
	f.IntVarP(&count, "count", "n", 1, "number of mazes")
	f.Float64VarP(&probability, "probability", "p", mazegen.DefaultBlockedProbability, "chance an interior cell is a wall")
	f.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	f.StringSliceVar(&appendTo, "append", nil, "files to append the mazes to")
	f.StringVar(&solvable, "solvable", "", "only emit mazes solvable under this connectivity (conn4 or conn8)")
	return cmd
}
