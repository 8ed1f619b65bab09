package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/dfs"
)

// ExampleFindCycle reports the triangle hanging off a tree.
func ExampleFindCycle() {
	g, _ := core.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {3, 4}} {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}
	cycle, _ := dfs.FindCycle(g)
	fmt.Println(cycle)
	// Output: [1 2 3]
}
