package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/route"
)

// chain builds a came_from map along the given coordinates (first is start).
func chain(cs ...grid.Coordinate) map[grid.Coordinate]grid.Coordinate {
	m := map[grid.Coordinate]grid.Coordinate{cs[0]: grid.NoCoordinate}
	for i := 1; i < len(cs); i++ {
		m[cs[i]] = cs[i-1]
	}
	return m
}

func TestWalk(t *testing.T) {
	cf := chain(grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(1, 2))
	cf[grid.C(5, 5)] = grid.C(0, 0) // unrelated branch is ignored

	path, err := route.Walk(cf, grid.C(0, 0), grid.C(1, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}}, path)
}

func TestWalk_StartIsGoal(t *testing.T) {
	path, err := route.Walk(chain(grid.C(2, 2)), grid.C(2, 2), grid.C(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []grid.Coordinate{{Row: 2, Col: 2}}, path)
}

func TestWalk_Broken(t *testing.T) {
	cf := chain(grid.C(0, 0), grid.C(0, 1))
	cf[grid.C(0, 3)] = grid.C(0, 2) // (0,2) has no entry

	_, err := route.Walk(cf, grid.C(0, 0), grid.C(0, 3))
	assert.ErrorIs(t, err, route.ErrBrokenPath)

	_, err = route.Walk(cf, grid.C(0, 0), grid.C(9, 9))
	assert.ErrorIs(t, err, route.ErrBrokenPath, "goal absent from the map")

	_, err = route.Walk(cf, grid.C(7, 7), grid.C(0, 1))
	assert.ErrorIs(t, err, route.ErrBrokenPath, "reached the sentinel before start")
}

func TestWalk_Cycle(t *testing.T) {
	cf := map[grid.Coordinate]grid.Coordinate{
		grid.C(0, 1): grid.C(0, 2),
		grid.C(0, 2): grid.C(0, 1),
	}
	_, err := route.Walk(cf, grid.C(0, 0), grid.C(0, 1))
	assert.ErrorIs(t, err, route.ErrBrokenPath)
}

func TestApply_MarksInteriorOnly(t *testing.T) {
	g := grid.MustParse(
		"S__",
		"_X_",
		"__G",
	)
	cf := chain(grid.C(0, 0), grid.C(0, 1), grid.C(0, 2), grid.C(1, 2), grid.C(2, 2))

	path, err := route.Apply(g, cf, g.Start(), g.Goal(), grid.Conn4)
	require.NoError(t, err)
	assert.Len(t, path, 5)
	assert.Equal(t, []string{
		"SPP",
		"_XP",
		"__G",
	}, g.Lines())
}

func TestApply_OverriddenEndpoints(t *testing.T) {
	g := grid.MustParse(
		"S__",
		"_X_",
		"__G",
	)
	from, to := grid.C(0, 2), grid.C(2, 0)
	cf := chain(from, grid.C(1, 2), grid.C(2, 2), grid.C(2, 1), to)

	_, err := route.Apply(g.Clone(), cf, g.Start(), g.Goal(), grid.Conn4)
	assert.ErrorIs(t, err, route.ErrBrokenPath)

	path, err := route.Apply(g, cf, from, to, grid.Conn4)
	require.NoError(t, err)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	assert.Equal(t, []string{
		"S_P",
		"_XP",
		"PPG",
	}, g.Lines())
}

func TestMark_RejectsBlocked(t *testing.T) {
	g := grid.MustParse("SXG")
	err := route.Mark(g, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, grid.Conn4)
	assert.ErrorIs(t, err, route.ErrNotOpen)
	assert.Equal(t, "SXG", g.String())

	g = grid.MustParse("S___G")
	require.NoError(t, route.Mark(g, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, grid.Conn4))
	err = route.Mark(g, []grid.Coordinate{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}}, grid.Conn4)
	assert.ErrorIs(t, err, route.ErrNotOpen)
	assert.Equal(t, "SPP_G", g.String(), "grid must be unchanged after a rejected path")
}

func TestMark_RejectsGaps(t *testing.T) {
	g := grid.MustParse("S__G")
	err := route.Mark(g, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, grid.Conn4)
	assert.ErrorIs(t, err, route.ErrNotAdjacent)

	g = grid.MustParse("S_", "_G")
	err = route.Mark(g, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, grid.Conn4)
	assert.ErrorIs(t, err, route.ErrNotAdjacent)
	err = route.Mark(g, []grid.Coordinate{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, grid.Conn8)
	assert.NoError(t, err)
	assert.Equal(t, "S_\n_G", g.String())
}

func TestMark_OutOfBounds(t *testing.T) {
	g := grid.MustParse("SG")
	err := route.Mark(g, []grid.Coordinate{{Row: 0, Col: 1}, {Row: 0, Col: 2}}, grid.Conn4)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}
