// Package ewmst is an in-memory toolkit for minimum spanning forests of
// edge-weighted undirected graphs: parallel edges, self-loops and
// disconnected inputs included.
//
// What is in the box
//
//	core/         — Graph and Edge: fixed vertex range 0..V-1, adjacency slots,
//	                total edge order, thread-safe insertion, Clone
//	dsu/          — disjoint-set forest with path compression and union by size
//	prim_kruskal/ — Kruskal and Prim returning a Forest; Compute dispatches
//	bfs/          — breadth-first order and connected-component labels
//	dfs/          — cycle search, used to verify forests
//	builder/      — seeded graph generators (complete, path, cycle, star, grid,
//	                random sparse, random multigraph) and weight distributions
//	cmd/ewmst     — YAML-driven runner with hot reload, slog logging and
//	                Prometheus metrics
//
// Quick example:
//
//	g, _ := core.NewGraph(4)
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 2)
//	g.AddEdge(2, 3, 3)
//	g.AddEdge(3, 0, 4)
//	f, _ := prim_kruskal.Kruskal(g)
//	fmt.Println(f.Weight, f.Spanning()) // 6 true
//
// Determinism
//
//	Edges are ordered by weight, then by their smaller endpoint, then by the
//	larger one; sorting is stable. Equal inputs give equal forests, edge for
//	edge.
package ewmst
