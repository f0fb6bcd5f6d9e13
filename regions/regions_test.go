package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
	"github.com/katalvlaran/mazepath/regions"
)

func TestLabel_TwoRegions(t *testing.T) {
	g := grid.MustParse(
		"S_X__",
		"__X__",
		"XXX__",
		"____G",
	)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		t.Run(conn.String(), func(t *testing.T) {
			m := regions.Label(g, conn)
			require.Equal(t, 2, m.Count())
			assert.Equal(t, 0, m.Of(g.Start()))
			assert.Equal(t, 1, m.Of(g.Goal()))
			assert.Equal(t, 4, m.Size(0))
			assert.Equal(t, 11, m.Size(1))
			assert.Equal(t, 1, m.Largest())
			assert.Equal(t, regions.None, m.Of(grid.C(0, 2)))
			assert.Equal(t, regions.None, m.Of(grid.C(9, 9)))
			assert.False(t, m.Connected(g.Start(), g.Goal()))
			assert.False(t, regions.Reachable(g, conn))
		})
	}
}

func TestLabel_Diagonal(t *testing.T) {
	g := grid.MustParse("SX", "XG")

	m4 := regions.Label(g, grid.Conn4)
	assert.Equal(t, 2, m4.Count())
	assert.False(t, m4.Connected(g.Start(), g.Goal()))

	m8 := regions.Label(g, grid.Conn8)
	assert.Equal(t, 1, m8.Count())
	assert.Equal(t, 2, m8.Size(0))
	assert.True(t, m8.Connected(g.Start(), g.Goal()))
	assert.Equal(t, grid.Conn8, m8.Connectivity())
}

func TestLabel_NoOpenCells(t *testing.T) {
	g := grid.MustParse("SG")
	require.NoError(t, g.Set(grid.C(0, 0), grid.Blocked))
	require.NoError(t, g.Set(grid.C(0, 1), grid.Path))

	m := regions.Label(g, grid.Conn4)
	assert.Equal(t, 0, m.Count())
	assert.Equal(t, regions.None, m.Largest())
	assert.Equal(t, 0, m.Size(0))
}

// Reachable agrees with breadth-first search on random mazes.
func TestReachable_MatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		g, err := mazegen.Generate(9, 13, mazegen.WithSeed(seed), mazegen.WithBlockedProbability(0.4))
		require.NoError(t, err)
		for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
			_, err := bfs.ShortestPath(g, conn)
			assert.Equal(t, err == nil, regions.Reachable(g, conn), "seed %d %v", seed, conn)
		}
	}
}
