// File: cycle.go
// Role: Iterative three-color DFS that reports one cycle of an undirected
//       multigraph, or none.
// Determinism:
//   - Roots are tried in ascending vertex order; neighbors in adjacency order.
// Concurrency:
//   - Reads the graph through core snapshots; safe alongside other readers.

package dfs

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/ewmst/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Visitation colors.
const (
	White = iota // unvisited
	Gray         // on the current DFS path
	Black        // finished
)

// frame is one vertex on the explicit DFS stack.
type frame struct {
	v    int          // vertex
	via  *core.Edge   // tree edge used to reach v; nil for a root
	adj  []*core.Edge // snapshot of v's adjacency
	next int          // index of the next edge of adj to examine
}

// FindCycle returns the vertices of one cycle of g in path order, or nil if
// g is a forest. A self-loop at v yields [v]; two parallel edges u—v yield
// [u v].
//
// Steps:
//  1. Launch a DFS from every White vertex, ascending.
//  2. On each edge other than the frame's own tree edge: a Gray endpoint
//     closes a cycle; a White endpoint is pushed; a Black one was already
//     examined from its side.
//  3. Rebuild the cycle from the stack, from the Gray endpoint to the top.
func FindCycle(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.VertexCount()
	color := make([]int, n)
	stack := make([]frame, 0, n)

	push := func(v int, via *core.Edge) error {
		seq, err := g.Adjacent(v)
		if err != nil {
			return fmt.Errorf("dfs: FindCycle: %w", err)
		}
		color[v] = Gray
		stack = append(stack, frame{v: v, via: via, adj: slices.Collect(seq)})
		return nil
	}

	// 1) One tree per unvisited root.
	for root := 0; root < n; root++ {
		if color[root] != White {
			continue
		}
		if err := push(root, nil); err != nil {
			return nil, err
		}

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.adj) {
				color[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.adj[top.next]
			top.next++

			// 2) A self-loop appears twice in its slot; both differ from via.
			if e == top.via {
				continue
			}
			w, err := e.Other(top.v)
			if err != nil {
				return nil, fmt.Errorf("dfs: FindCycle: %w", err)
			}
			switch color[w] {
			case Gray:
				// 3) w is on the path: the cycle runs from w down to top.
				return cycleFrom(stack, w), nil
			case White:
				if err := push(w, e); err != nil {
					return nil, err
				}
			}
		}
	}

	return nil, nil
}

// IsAcyclic reports whether g is a forest: no self-loops, no parallel edges,
// no longer cycles.
func IsAcyclic(g *core.Graph) (bool, error) {
	cycle, err := FindCycle(g)
	if err != nil {
		return false, err
	}

	return cycle == nil, nil
}

// cycleFrom collects the stack vertices from w to the top, inclusive.
func cycleFrom(stack []frame, w int) []int {
	i := len(stack) - 1
	for stack[i].v != w {
		i--
	}
	out := make([]int, 0, len(stack)-i)
	for _, f := range stack[i:] {
		out = append(out, f.v)
	}

	return out
}
