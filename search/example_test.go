// Package search_test provides examples demonstrating greedy and A* search.
// Each example is runnable via “go test -run Example”.
package search_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/route"
	"github.com/katalvlaran/mazepath/search"
)

// ExampleSearch finds the shortest 4-directional route around a wall and
// marks it on the grid.
func ExampleSearch() {
	g := grid.MustParse(
		"S__",
		"_X_",
		"__G",
	)
	res, err := search.Search(g, search.WithStrategy(search.AStar), search.WithConnectivity(grid.Conn4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", res.Steps(), "expanded:", res.Expanded)
	_ = route.Mark(g, res.Path, grid.Conn4)
	fmt.Println(g)
	// Output:
	// steps: 4 expanded: 7
	// SPP
	// _XP
	// __G
}

// ExampleGreedySearch shows that greedy search can be lured into a detour
// that A* avoids.
func ExampleGreedySearch() {
	g := grid.MustParse(
		"______",
		"_X__X_",
		"_GX___",
		"____S_",
	)
	greedy, _ := search.GreedySearch(g, grid.Conn4)
	astar, _ := search.AStarSearch(g, grid.Conn4)
	fmt.Println("greedy:", greedy.Steps(), "A*:", astar.Steps())
	// Output:
	// greedy: 10 A*: 4
}

// ExampleSearch_unreachable shows the explicit failure outcome.
func ExampleSearch_unreachable() {
	g := grid.MustParse(
		"SX_",
		"XX_",
		"__G",
	)
	res, err := search.Search(g, search.WithConnectivity(grid.Conn8))
	fmt.Println(errors.Is(err, search.ErrPathNotFound), res.Found, res.Expanded)
	// Output:
	// true false 1
}
