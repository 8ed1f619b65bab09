// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It assumes an undirected, weighted *core.Graph and grows the MST from a specified root vertex using a min‐heap.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

// Prim computes a minimum spanning forest of an undirected, weighted graph
// by growing outwards from a specified root vertex using a min‐heap.
//
// Error Conditions:
//   - ErrInvalidGraph          : if graph is nil.
//   - core.ErrVertexOutOfRange : if root is outside [0, V) on a non-empty graph.
//
// Steps:
//  1. Validate graph and root.
//  2. Initialize visited[] and an empty min‐heap of candidate edges
//     ordered by core.Edge.Compare.
//  3. Grow a tree from root: mark it visited, push its incident edges; then
//     repeatedly pop the lightest edge, skip it if both ends are visited,
//     otherwise accept it and scan the newly reached vertex.
//  4. When the heap drains, restart from the smallest unvisited vertex so
//     every component gets its own tree.
//  5. Return the forest; edges are in acceptance order.
//
// Complexity: O(E log E) time (lazy deletion), O(V + E) memory.
func Prim(graph *core.Graph, root int) (*Forest, error) {
	// 1. Validate that graph is non-nil and the root exists.
	if graph == nil {
		return nil, ErrInvalidGraph
	}
	n := graph.VertexCount()
	f := &Forest{Vertices: n}
	if n == 0 {
		// Nothing to span; any root is acceptable.
		return f, nil
	}
	if !graph.HasVertex(root) {
		return nil, fmt.Errorf("%w: root %d not in [0,%d)", core.ErrVertexOutOfRange, root, n)
	}

	// 2. Initialize visited set, MST container and priority queue.
	visited := make([]bool, n)
	f.Edges = make([]*core.Edge, 0, n-1)
	pq := &edgePQ{}
	heap.Init(pq)

	// scan marks x visited and pushes every edge to a not-yet-visited vertex.
	scan := func(x int) error {
		visited[x] = true
		adj, err := graph.Adjacent(x)
		if err != nil {
			return err
		}
		for e := range adj {
			other, oerr := e.Other(x)
			if oerr != nil {
				return oerr
			}
			if !visited[other] {
				heap.Push(pq, e)
			}
		}
		return nil
	}

	// 3–4. Grow one tree per component, starting with root.
	start := root
	for {
		if err := scan(start); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		for pq.Len() > 0 && len(f.Edges) < n-1 {
			e := heap.Pop(pq).(*core.Edge)
			f.Examined++
			u := e.Either()
			v, _ := e.Other(u) // u is an endpoint by construction
			// Both ends already in the tree: the edge would close a cycle.
			if visited[u] && visited[v] {
				f.Rejected++
				continue
			}
			f.Edges = append(f.Edges, e)
			f.Weight += e.Weight()
			next := v
			if visited[v] {
				next = u
			}
			if err := scan(next); err != nil {
				return nil, fmt.Errorf("prim_kruskal: %w", err)
			}
		}
		if len(f.Edges) == n-1 {
			break
		}
		// Pick the next unvisited vertex in ascending order.
		start = -1
		for x := 0; x < n; x++ {
			if !visited[x] {
				start = x
				break
			}
		}
		if start < 0 {
			break
		}
		// Candidates left over from the finished tree all close cycles.
		*pq = (*pq)[:0]
	}

	// 5. Return the completed forest.
	return f, nil
}

// edgePQ implements heap.Interface for a min‐heap of *core.Edge, ordered by core.Edge.Compare.
type edgePQ []*core.Edge

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less reports whether element i should sort before j.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool { return pq[i].Less(pq[j]) }

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new *core.Edge to the heap.
// Called by heap.Push. Complexity: O(log N) amortized.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(*core.Edge)) }

// Pop removes and returns the smallest *core.Edge from the heap.
// Called by heap.Pop. Complexity: O(log N) amortized.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1] // smallest element after heap adjustments
	old[n-1] = nil   // drop the reference for the GC
	*pq = old[:n-1]  // shrink slice

	return edge
}
