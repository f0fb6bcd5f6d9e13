package regions_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/regions"
)

func ExampleLabel() {
	g := grid.MustParse(
		"S_X",
		"XX_",
		"__G",
	)
	for _, conn := range []grid.Connectivity{grid.Conn4, grid.Conn8} {
		m := regions.Label(g, conn)
		fmt.Println(conn, m.Count(), m.Connected(g.Start(), g.Goal()))
	}
	// Output:
	// conn4 2 false
	// conn8 1 true
}
