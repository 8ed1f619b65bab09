package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/ewmst/bfs"
	"github.com/katalvlaran/ewmst/core"
)

// ExampleOrder visits a small tree level by level.
func ExampleOrder() {
	g, _ := core.NewGraph(5)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}} {
		_, _ = g.AddEdge(e[0], e[1], 1)
	}
	order, err := bfs.Order(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [0 1 2 3 4]
}

// ExampleComponents labels two components.
func ExampleComponents() {
	g, _ := core.NewGraph(5)
	_, _ = g.AddEdge(0, 2, 1)
	_, _ = g.AddEdge(1, 4, 1)
	_, _ = g.AddEdge(3, 4, 1)
	labels, count, _ := bfs.Components(g)
	fmt.Println(labels, count)
	// Output: [0 1 0 1 1] 2
}
