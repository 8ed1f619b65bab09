// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, visit order,
// and connected-component labels.
//
// Edge weights are ignored; self-loops and parallel edges are harmless.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue []int
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from src,
// applying any number of functional Options.
// Returns ErrGraphNil, core.ErrVertexOutOfRange for a bad src,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, src int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(src) {
		return nil, fmt.Errorf("bfs: start %d: %w", src, core.ErrVertexOutOfRange)
	}

	// Prepare walker
	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = unreached
		w.res.Parent[i] = unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(src, 0, unreached)

	return w.res, w.loop()
}

// Order returns the breadth-first visit order from src.
func Order(g *core.Graph, src int) ([]int, error) {
	res, err := BFS(g, src)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Components labels every vertex of g with the index of its connected
// component and returns the labels with the component count.
//
// Labels are assigned in ascending order of each component's smallest
// vertex, so vertex 0 (if any) is always in component 0.
// Complexity: O(V + E).
func Components(g *core.Graph) (labels []int, count int, err error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}

	n := g.VertexCount()
	labels = make([]int, n)
	for i := range labels {
		labels[i] = unreached
	}

	queue := make([]int, 0, n)
	for s := 0; s < n; s++ {
		if labels[s] != unreached {
			continue
		}
		// 1) New component rooted at its smallest vertex s.
		labels[s] = count
		queue = append(queue[:0], s)

		// 2) Flood it.
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			adj, err := g.Adjacent(x)
			if err != nil {
				return nil, 0, err
			}
			for e := range adj {
				y, _ := e.Other(x) // x is an endpoint of every edge in its own slot
				if labels[y] == unreached {
					labels[y] = count
					queue = append(queue, y)
				}
			}
		}
		count++
	}

	return labels, count, nil
}

// enqueue marks v visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(v); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(v); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors walks v's adjacency in insertion order, applies MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(v int) error {
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}

	adj, err := w.graph.Adjacent(v)
	if err != nil {
		return err
	}
	for e := range adj {
		nbr, _ := e.Other(v)
		// first time seen?
		if w.res.Depth[nbr] == unreached {
			w.enqueue(nbr, nextDepth, v)
		}
	}

	return nil
}
