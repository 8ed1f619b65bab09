// Package dfs finds cycles in undirected core.Graphs by depth-first search.
//
// The graph may hold self-loops and parallel edges; both are cycles (of
// length one and two). Back edges are told apart from the tree edge to the
// parent by edge identity, not by vertex, so a second parallel edge to the
// parent is reported.
//
// The main use is verifying that a set of edges, such as a spanning forest,
// is acyclic:
//
//	ok, err := dfs.IsAcyclic(g)
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (explicit stack plus adjacency snapshots, no recursion)
package dfs
