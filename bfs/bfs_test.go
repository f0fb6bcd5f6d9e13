package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
)

func TestBFS_NilGrid(t *testing.T) {
	res, err := bfs.BFS(nil, grid.C(0, 0))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGridNil)
}

func TestBFS_StartBlocked(t *testing.T) {
	g := grid.MustParse("SXG")
	_, err := bfs.BFS(g, grid.C(0, 1))
	assert.ErrorIs(t, err, bfs.ErrStartNotOpen)
	_, err = bfs.BFS(g, grid.C(4, 4))
	assert.ErrorIs(t, err, bfs.ErrStartNotOpen)
}

func TestBFS_BadOptions(t *testing.T) {
	g := grid.MustParse("S_G")
	_, err := bfs.BFS(g, g.Start(), bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = bfs.BFS(g, g.Start(), bfs.WithConnectivity(grid.Connectivity(9)))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsConn4AndConn8(t *testing.T) {
	g := grid.MustParse(
		"S__",
		"_X_",
		"__G",
	)
	res, err := bfs.BFS(g, g.Start())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Depth[grid.C(2, 2)])
	assert.Equal(t, grid.C(0, 0), res.Order[0])
	_, reached := res.Depth[grid.C(1, 1)]
	assert.False(t, reached, "blocked cell is never reached")

	d, err := bfs.Distance(g, grid.Conn8)
	require.NoError(t, err)
	assert.Equal(t, 3, d, "the diagonal through the wall corner is allowed")
}

func TestShortestPath_NoPath(t *testing.T) {
	g := grid.MustParse(
		"S_X_",
		"__X_",
		"XXX_",
		"___G",
	)
	_, err := bfs.ShortestPath(g, grid.Conn4)
	assert.ErrorIs(t, err, bfs.ErrNoPath)

	// (1,1) has no open diagonal out of the pocket
	_, err = bfs.ShortestPath(g, grid.Conn8)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := grid.MustParse("S____G")
	res, err := bfs.BFS(g, g.Start(), bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	_, err = res.PathTo(g.Goal())
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_OnVisitError(t *testing.T) {
	g := grid.MustParse("S__G")
	stop := errors.New("stop")
	_, err := bfs.BFS(g, g.Start(), bfs.WithOnVisit(func(c grid.Coordinate, depth int) error {
		if depth == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestBFS_Cancelled(t *testing.T) {
	g := grid.MustParse("S__G")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, g.Start(), bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
