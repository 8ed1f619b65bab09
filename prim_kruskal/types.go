// Package prim_kruskal defines the Forest result, configuration options and
// sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

// ErrInvalidGraph indicates that no graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownMethod indicates that MSTOptions.Method names no algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// ErrDisconnected indicates that a spanning tree was required but the graph
// has more than one connected component. Only Compute with
// WithRequireSpanning returns it; Kruskal and Prim report forests through
// Forest.Spanning instead.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// Forest is a minimum spanning forest: one minimum spanning tree per
// connected component of the input graph.
type Forest struct {
	// Edges lists the accepted edges in the order they were accepted.
	Edges []*core.Edge

	// Weight is the sum of the accepted edge weights.
	Weight float64

	// Vertices is the vertex count V of the input graph.
	Vertices int

	// Examined counts candidate edges considered before the run stopped.
	Examined int

	// Rejected counts examined edges skipped because they would close a cycle.
	Rejected int
}

// Spanning reports whether the forest is a single spanning tree, i.e. it
// holds exactly V-1 edges. Graphs with at most one vertex are spanning.
func (f *Forest) Spanning() bool {
	if f.Vertices <= 1 {
		return true
	}

	return len(f.Edges) == f.Vertices-1
}

// Components returns the number of trees in the forest, V - |Edges|.
func (f *Forest) Components() int {
	return f.Vertices - len(f.Edges)
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method          string — one of MethodPrim or MethodKruskal.
//	Root            int    — start vertex for Prim; ignored when Method == MethodKruskal.
//	RequireSpanning bool   — report ErrDisconnected when the result is a forest.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root int

	// RequireSpanning turns a forest result into ErrDisconnected.
	RequireSpanning bool
}

// Option configures MSTOptions. All Option functions should modify the pointed MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm and is ignored by Kruskal.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithRequireSpanning returns an Option that makes Compute fail with
// ErrDisconnected unless the result spans every vertex.
func WithRequireSpanning() Option {
	return func(opts *MSTOptions) {
		opts.RequireSpanning = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method          = MethodKruskal
//	– Root            = 0 (ignored by Kruskal)
//	– RequireSpanning = false (forests are valid results).
//
// Complexity: O(1) to construct.
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm based on opts.
//
//	– If Method == MethodKruskal: calls Kruskal(graph).
//	– If Method == MethodPrim:    calls Prim(graph, Root).
//	– Otherwise:                  returns ErrUnknownMethod.
//
// With RequireSpanning, a forest of more than one tree is returned together
// with ErrDisconnected so the caller can still inspect it.
func Compute(graph *core.Graph, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		f   *Forest
		err error
	)
	// Dispatch by method name
	switch o.Method {
	case MethodKruskal:
		f, err = Kruskal(graph)
	case MethodPrim:
		f, err = Prim(graph, o.Root)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
	if err != nil {
		return nil, err
	}
	if o.RequireSpanning && !f.Spanning() {
		return f, ErrDisconnected
	}

	return f, nil
}
