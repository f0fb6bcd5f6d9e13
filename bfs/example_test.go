package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/bfs"
	"github.com/katalvlaran/mazepath/grid"
)

// ExampleShortestPath finds the unit-step shortest route under both
// movement models.
func ExampleShortestPath() {
	g := grid.MustParse(
		"S__",
		"_X_",
		"__G",
	)
	path, _ := bfs.ShortestPath(g, grid.Conn4)
	fmt.Println(path)

	d, _ := bfs.Distance(g, grid.Conn8)
	fmt.Println("conn8 steps:", d)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
	// conn8 steps: 3
}
