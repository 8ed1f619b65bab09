// Package core defines the central Graph and Edge types of ewmst and the
// sentinel errors returned by their constructors and mutators.
//
// Vertices are the integers 0..V-1, fixed when the Graph is created.
// Edges are immutable values shared (by pointer) between the adjacency
// slots of both endpoints.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewEdge/NewGraph constructors.
//
// Errors:
//
//	ErrInvalidVertexCount - negative vertex count passed to NewGraph.
//	ErrInvalidEdgeCount   - negative edge-count hint passed via WithEdgeHint.
//	ErrVertexOutOfRange   - vertex reference outside [0, V).
//	ErrBadWeight          - NaN edge weight.
//	ErrNilEdge            - nil *Edge passed to InsertEdge.
//	ErrNotEndpoint        - Edge.Other called with a vertex that is not an endpoint.
package core

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexCount indicates a negative vertex count at construction.
	ErrInvalidVertexCount = errors.New("core: number of vertices must be nonnegative")

	// ErrInvalidEdgeCount indicates a negative edge count at construction.
	ErrInvalidEdgeCount = errors.New("core: number of edges must be nonnegative")

	// ErrVertexOutOfRange indicates a vertex reference outside [0, V).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrBadWeight indicates an edge weight that cannot be ordered (NaN).
	ErrBadWeight = errors.New("core: edge weight is NaN")

	// ErrNilEdge indicates a nil edge was passed to InsertEdge.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrNotEndpoint indicates Edge.Other was asked about a foreign vertex.
	ErrNotEndpoint = errors.New("core: vertex is not an endpoint of edge")
)

// Edge is an undirected, weighted connection between vertices v and w.
//
// Edge is immutable: fields are unexported and only readable through
// Either, Other, Weight and the ordering methods. Self-loops (v == w)
// are valid edges.
type Edge struct {
	v      int     // one endpoint
	w      int     // the other endpoint
	weight float64 // cost of the edge; never NaN
}

// NewEdge creates an immutable edge v—w with the given weight.
//
// Only properties checkable without a graph are validated here: both
// endpoints must be nonnegative and weight must not be NaN. The upper
// bound of the vertex range is enforced by Graph.InsertEdge.
//
// Complexity: O(1).
func NewEdge(v, w int, weight float64) (*Edge, error) {
	if v < 0 || w < 0 {
		return nil, fmt.Errorf("%w: edge %d-%d has a negative endpoint", ErrVertexOutOfRange, v, w)
	}
	if math.IsNaN(weight) {
		return nil, fmt.Errorf("%w: edge %d-%d", ErrBadWeight, v, w)
	}

	return &Edge{v: v, w: w, weight: weight}, nil
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *graphConfig)

// graphConfig collects construction-time knobs; validated by NewGraph.
type graphConfig struct {
	edgeHint int // expected number of AddEdge calls; pre-sizes storage
}

// WithEdgeHint tells NewGraph how many edges the caller is about to add.
// The hint only affects pre-allocation; a negative hint makes NewGraph
// fail with ErrInvalidEdgeCount.
func WithEdgeHint(e int) GraphOption {
	return func(c *graphConfig) { c.edgeHint = e }
}

// Graph is an edge-weighted undirected graph over vertices 0..V-1,
// stored as a vertex-indexed array of adjacency slots.
//
// Invariants:
//   - every stored edge has both endpoints in [0, V);
//   - a non-loop edge is referenced from exactly two slots;
//   - a self-loop is referenced twice, consecutively, from its own slot;
//   - e counts successful AddEdge/InsertEdge calls.
//
// mu guards e and adj. Slots are only ever appended to, so readers of a
// fully built graph never observe a rewrite.
type Graph struct {
	mu sync.RWMutex // guards e and adj

	v   int       // number of vertices, fixed at construction
	e   int       // number of edges added
	adj [][]*Edge // adj[x] = edges incident to x, in insertion order
}

// NewGraph creates an empty Graph with v vertices and no edges.
//
// Errors:
//   - ErrInvalidVertexCount if v < 0.
//   - ErrInvalidEdgeCount if WithEdgeHint carried a negative count.
//
// Complexity: O(v).
func NewGraph(v int, opts ...GraphOption) (*Graph, error) {
	// 1) Validate vertex count before any allocation.
	if v < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidVertexCount, v)
	}

	// 2) Resolve and validate options.
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.edgeHint < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidEdgeCount, cfg.edgeHint)
	}

	// 3) Allocate one empty slot per vertex. With a hint, reserve the
	//    average degree 2E/V per slot.
	g := &Graph{v: v, adj: make([][]*Edge, v)}
	if cfg.edgeHint > 0 && v > 0 {
		perSlot := 2 * cfg.edgeHint / v
		for x := range g.adj {
			g.adj[x] = make([]*Edge, 0, perSlot)
		}
	}

	return g, nil
}
