package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/frontier"
	"github.com/katalvlaran/mazepath/grid"
)

func TestQueue_Empty(t *testing.T) {
	var q frontier.Queue
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Len())
	_, ok := q.PopMin()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)
}

func TestQueue_PriorityThenCoordinate(t *testing.T) {
	q := frontier.New(8)
	q.Push(frontier.Entry{Priority: 2, Coord: grid.C(0, 0)})
	q.Push(frontier.Entry{Priority: 1, Coord: grid.C(3, 3)})
	q.Push(frontier.Entry{Priority: 1, Coord: grid.C(1, 5)})
	q.Push(frontier.Entry{Priority: 1, Coord: grid.C(1, 2)})
	q.Push(frontier.Entry{Priority: 0, Coord: grid.C(9, 9)})

	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, grid.C(9, 9), top.Coord)

	var got []grid.Coordinate
	for !q.IsEmpty() {
		e, _ := q.PopMin()
		got = append(got, e.Coord)
	}
	want := []grid.Coordinate{{Row: 9, Col: 9}, {Row: 1, Col: 2}, {Row: 1, Col: 5}, {Row: 3, Col: 3}, {Row: 0, Col: 0}}
	assert.Equal(t, want, got)
}

func TestQueue_Duplicates(t *testing.T) {
	q := frontier.New(0)
	c := grid.C(1, 1)
	q.Push(frontier.Entry{Priority: 5, Coord: c})
	q.Push(frontier.Entry{Priority: 3, Coord: c})
	assert.Equal(t, 2, q.Len())

	e, _ := q.PopMin()
	assert.Equal(t, 3, e.Priority)
	e, _ = q.PopMin()
	assert.Equal(t, 5, e.Priority, "stale duplicate is kept; the caller filters it")
}

// TestQueue_RandomOrder cross-checks the heap against a sort of the same entries.
func TestQueue_RandomOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := frontier.New(0)
	var all []frontier.Entry
	for i := 0; i < 500; i++ {
		e := frontier.Entry{Priority: rng.Intn(20), Coord: grid.C(rng.Intn(10), rng.Intn(10))}
		all = append(all, e)
		q.Push(e)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Priority != all[j].Priority {
			return all[i].Priority < all[j].Priority
		}
		return all[i].Coord.Less(all[j].Coord)
	})
	for i := range all {
		e, ok := q.PopMin()
		require.True(t, ok)
		assert.Equal(t, all[i].Priority, e.Priority)
		assert.Equal(t, all[i].Coord, e.Coord)
	}
	assert.True(t, q.IsEmpty())
}
