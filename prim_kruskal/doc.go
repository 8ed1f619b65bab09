// Package prim_kruskal provides two algorithms for computing a Minimum
// Spanning Forest on an undirected, weighted *core.Graph: Kruskal’s
// algorithm and Prim’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     For a disconnected graph the analogue is a minimum spanning forest: one MST per component.
//
// Algorithms Provided
//
//   - Kruskal(g *core.Graph) (*Forest, error)
//
//   - Strategy: Sort all edges by core.Edge.Compare, then iterate from smallest to largest. Use a
//     dsu.DisjointSet to merge vertices component-by-component, skipping edges whose endpoints are
//     already connected. Stop once |V|−1 edges have been added.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Determinism: AllEdges() has a fixed scan order and the sort is stable with an endpoint
//     tie-break, so equal inputs give identical accepted-edge sequences.
//
//   - Prim(g *core.Graph, root int) (*Forest, error)
//
//   - Strategy: Grow a tree from root with a min-heap of candidate edges; when the heap drains,
//     restart from the smallest unvisited vertex so that every component is covered.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
// Forests are results, not errors
//
//	Both algorithms return a *Forest. Forest.Spanning() is false and
//	Forest.Components() > 1 when the graph is disconnected. Callers that want
//	a hard failure use Compute(g, WithRequireSpanning()), which returns the
//	forest together with ErrDisconnected.
//
// Error Conditions
//
//	- ErrInvalidGraph          – graph is nil.
//	- core.ErrVertexOutOfRange – Prim root outside [0, V).
//	- ErrUnknownMethod         – Compute with an unrecognised method name.
//	- ErrDisconnected          – Compute with RequireSpanning on a forest.
//
// Every call allocates its own candidate list, disjoint set and heap; no
// state survives between calls.
package prim_kruskal
