package bfs_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
)

func BenchmarkBFS_200x300(b *testing.B) {
	g, err := mazegen.Generate(200, 300, mazegen.WithSeed(42), mazegen.WithBlockedProbability(0.25))
	if err != nil {
		b.Fatal(err)
	}
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		b.Run(conn.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := bfs.BFS(g, g.Start(), bfs.WithConnectivity(conn)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
