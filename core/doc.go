// Package core provides the edge-weighted undirected Graph used by every
// other ewmst package.
//
// The Graph G = (V,E) is stored as adjacency lists:
//
//   - Vertices are the integers 0..V-1, fixed by NewGraph(V).
//   - Edges are immutable *Edge values referenced from both endpoint slots;
//     a self-loop is referenced twice from its own slot.
//   - Parallel edges and self-loops are permitted.
//   - There is no removal; slots are append-only.
//
// Core Methods:
//
//	// Construction
//	NewGraph(v int, opts ...GraphOption) (*Graph, error)  // O(V)
//	NewEdge(v, w int, weight float64) (*Edge, error)       // O(1)
//
//	// Mutation
//	AddEdge(v, w int, weight float64) (*Edge, error)       // O(1)†
//	InsertEdge(e *Edge) error                              // O(1)†
//
//	// Query
//	Adjacent(v int) (iter.Seq[*Edge], error)  // restartable, insertion order
//	Degree(v int) (int, error)                // self-loops count twice
//	AllEdges() []*Edge                        // each edge once, O(V+E)
//	Edges() iter.Seq[*Edge]                   // lazy AllEdges
//	VertexCount() int                         // O(1)
//	EdgeCount() int                           // O(1)
//
//	// Cloning
//	Clone() *Graph                            // O(V+E), order-preserving
//
// Edge total order (Compare/Less): weight ascending, then min(v,w), then
// max(v,w). NaN weights are rejected so the order is total.
//
// Errors:
//
//	ErrInvalidVertexCount – V < 0 at construction
//	ErrInvalidEdgeCount   – negative WithEdgeHint
//	ErrVertexOutOfRange   – vertex outside [0, V)
//	ErrBadWeight          – NaN weight
//	ErrNilEdge            – InsertEdge(nil)
//	ErrNotEndpoint        – Edge.Other on a foreign vertex
//
// † amortized (slice append).
package core
