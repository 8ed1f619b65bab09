// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order,
// plus connected-component labelling used to cross-check spanning forests.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a
//     start vertex and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: vertex → distance from start (-1 if unreached)
//   - Parent: vertex → predecessor in the BFS tree (-1 for start/unreached)
//   - Order is the convenience form returning only the visit sequence.
//   - Components labels every vertex with its component index.
//   - OnVisit hook (may abort with an error), MaxDepth limit, and
//     context cancellation via WithContext.
//
// Determinism
//
//	Adjacency slots keep insertion order and BFS enqueues neighbors in that
//	order, so the visit sequence is fully reproducible. Component labels are
//	numbered by smallest member: vertex 0 is always in component 0.
//
// Complexity
//
//	Time:   O(V + E)
//	Memory: O(V)
package bfs
