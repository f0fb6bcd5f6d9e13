package grid_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// ExampleParse decodes a small maze and queries its endpoints and the
// open neighbors of the start cell under both movement models.
func ExampleParse() {
	g, err := grid.Parse([]string{
		"S__",
		"_X_",
		"__G",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", g.Start(), "goal:", g.Goal())
	fmt.Println("conn4:", g.Neighbors(g.Start(), grid.Conn4))
	fmt.Println("conn8:", g.Neighbors(g.Start(), grid.Conn8))
	// Output:
	// start: (0,0) goal: (2,2)
	// conn4: [(1,0) (0,1)]
	// conn8: [(1,0) (0,1)]
}
