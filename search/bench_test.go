package search_test

import (
	"testing"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/search"
)

// benchmarkSearch runs one strategy on a fixed 200×300 generated maze.
// Complexity: O(N log N), N = open cells.
func benchmarkSearch(b *testing.B, s search.Strategy, conn grid.Connectivity) {
	g, err := mazegen.Generate(200, 300, mazegen.WithSeed(42), mazegen.WithBlockedProbability(0.25))
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Search(g, search.WithStrategy(s), search.WithConnectivity(conn))
	}
}

func BenchmarkAStarConn4(b *testing.B)  { benchmarkSearch(b, search.AStar, grid.Conn4) }
func BenchmarkAStarConn8(b *testing.B)  { benchmarkSearch(b, search.AStar, grid.Conn8) }
func BenchmarkGreedyConn4(b *testing.B) { benchmarkSearch(b, search.Greedy, grid.Conn4) }
func BenchmarkGreedyConn8(b *testing.B) { benchmarkSearch(b, search.Greedy, grid.Conn8) }
