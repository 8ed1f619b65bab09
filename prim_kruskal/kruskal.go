// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It assumes an undirected, weighted *core.Graph and produces the accepted edges of a minimum spanning forest.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/dsu"
)

// Kruskal computes a minimum spanning forest of an undirected, weighted graph.
// It uses a fresh dsu.DisjointSet (path compression, union by size) per call.
//
// Error Conditions:
//   - ErrInvalidGraph : if graph is nil.
//
// A disconnected graph is not an error: the result then holds fewer than
// |V|-1 edges, one tree per connected component (see Forest.Spanning).
//
// Steps:
//  1. Collect: snapshot every distinct edge via graph.AllEdges().
//  2. Order: stable sort by core.Edge.Compare (weight, then min/max endpoint).
//  3. Select: MakeSet for every vertex of a fresh disjoint set; walk the
//     sorted edges, accepting an edge when its endpoints have different
//     roots and merging those roots, rejecting it otherwise.
//     Stop once |V|-1 edges have been accepted.
//
// All bookkeeping is local to this call, so repeated runs over an
// unmodified graph return identical sequences.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) (*Forest, error) {
	// 0. Validate input.
	if graph == nil {
		return nil, ErrInvalidGraph
	}

	// 1. Collect. AllEdges already allocates a private slice; sorting it
	//    never disturbs the graph.
	edges := graph.AllEdges()

	// 2. Order. Stability keeps AllEdges order for edges equal on all keys
	//    (parallel edges of the same weight).
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Less(edges[j])
	})

	// 3. Select.
	return selectEdges(graph.VertexCount(), edges)
}

// selectEdges runs the greedy phase of Kruskal over pre-sorted edges.
func selectEdges(numVerts int, sorted []*core.Edge) (*Forest, error) {
	// Initialize a fresh disjoint set: one singleton per vertex.
	set, err := dsu.New(numVerts)
	if err != nil {
		return nil, fmt.Errorf("prim_kruskal: %w", err)
	}
	for v := 0; v < numVerts; v++ {
		if err = set.MakeSet(v); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
	}

	f := &Forest{Vertices: numVerts}
	if numVerts > 1 {
		f.Edges = make([]*core.Edge, 0, numVerts-1)
	}
	var (
		u, v   int // endpoints
		ru, rv int // their roots
	)
	for _, e := range sorted {
		// Early exit once a spanning tree is complete.
		if len(f.Edges) >= numVerts-1 {
			break
		}
		f.Examined++

		u = e.Either()
		if v, err = e.Other(u); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		if ru, err = set.Find(u); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		if rv, err = set.Find(v); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}

		// Same root: the edge would close a cycle (self-loops included).
		if ru == rv {
			f.Rejected++
			continue
		}

		// Different components: accept and merge.
		if _, err = set.Union(ru, rv); err != nil {
			return nil, fmt.Errorf("prim_kruskal: %w", err)
		}
		f.Edges = append(f.Edges, e)
		f.Weight += e.Weight()
	}

	return f, nil
}
