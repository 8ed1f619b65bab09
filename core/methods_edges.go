// File: methods_edges.go
// Role: Edge accessors and total order; Graph edge insertion and iteration
//       (AddEdge/InsertEdge/AllEdges/Edges/EdgeCount).
// Determinism:
//   - AllEdges()/Edges() scan vertices 0..V-1 and each slot in insertion order.
//   - Edge.Compare is a total order: weight, then min endpoint, then max endpoint.
// Concurrency:
//   - Insertions under mu write lock; iteration snapshots under mu read lock.

package core

import (
	"fmt"
	"iter"
)

// Either returns one endpoint of e (the first one given to NewEdge).
func (e *Edge) Either() int { return e.v }

// Other returns the endpoint of e opposite to x.
// For a self-loop Other(v) == v. Returns ErrNotEndpoint if x is neither endpoint.
func (e *Edge) Other(x int) (int, error) {
	switch x {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: vertex %d, edge %s", ErrNotEndpoint, x, e)
	}
}

// Weight returns the weight of e.
func (e *Edge) Weight() float64 { return e.weight }

// IsLoop reports whether e connects a vertex to itself.
func (e *Edge) IsLoop() bool { return e.v == e.w }

// ends returns the endpoints ordered as (min, max).
func (e *Edge) ends() (lo, hi int) {
	if e.v <= e.w {
		return e.v, e.w
	}

	return e.w, e.v
}

// Compare orders edges by weight ascending, breaking ties by
// (min(v,w), max(v,w)) so that sorting is reproducible.
// It returns -1, 0 or +1. Edges equal on all three keys compare as 0.
func (e *Edge) Compare(o *Edge) int {
	// 1) Primary key: weight. NaN is rejected by NewEdge, so < and > are total here.
	switch {
	case e.weight < o.weight:
		return -1
	case e.weight > o.weight:
		return 1
	}

	// 2) Tie-break on normalized endpoints.
	elo, ehi := e.ends()
	olo, ohi := o.ends()
	switch {
	case elo != olo:
		if elo < olo {
			return -1
		}
		return 1
	case ehi != ohi:
		if ehi < ohi {
			return -1
		}
		return 1
	}

	return 0
}

// Less reports whether e sorts strictly before o under Compare.
func (e *Edge) Less(o *Edge) bool { return e.Compare(o) < 0 }

// String renders e as "v-w weight" with five fractional digits.
func (e *Edge) String() string {
	return fmt.Sprintf("%d-%d %.5f", e.v, e.w, e.weight)
}

// AddEdge creates the edge v—w with the given weight and inserts it.
//
// Errors:
//   - ErrVertexOutOfRange if v or w is outside [0, V).
//   - ErrBadWeight if weight is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(v, w int, weight float64) (*Edge, error) {
	// Check the range first so an out-of-range vertex reports the range, not just the sign.
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}
	if err := g.validateVertex(w); err != nil {
		return nil, err
	}
	e, err := NewEdge(v, w, weight)
	if err != nil {
		return nil, err
	}
	if err = g.InsertEdge(e); err != nil {
		return nil, err
	}

	return e, nil
}

// InsertEdge adds the undirected edge e to the graph.
//
// Steps:
//  1. Reject nil and out-of-range endpoints (graph untouched on failure).
//  2. Append e to adj[v] and to adj[w]; a self-loop lands twice in adj[v],
//     back to back.
//  3. Increment the edge count exactly once.
//
// Parallel edges and self-loops are accepted.
// Complexity: O(1) amortized.
func (g *Graph) InsertEdge(e *Edge) error {
	// 1) Validation.
	if e == nil {
		return ErrNilEdge
	}
	if err := g.validateVertex(e.v); err != nil {
		return err
	}
	if err := g.validateVertex(e.w); err != nil {
		return err
	}

	// 2) Link both endpoints under the write lock.
	g.mu.Lock()
	defer g.mu.Unlock()
	g.adj[e.v] = append(g.adj[e.v], e)
	g.adj[e.w] = append(g.adj[e.w], e)

	// 3) One edge, regardless of loop/parallel status.
	g.e++

	return nil
}

// EdgeCount returns the number of edges added so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.e
}

// AllEdges returns every distinct edge exactly once.
//
// Vertices are scanned 0..V-1; an edge at slot x is emitted when its other
// endpoint is greater than x. Self-loops occupy two consecutive entries of
// their slot, and only the first of each pair is emitted. The result has
// exactly EdgeCount() entries.
//
// Complexity: O(V + E).
func (g *Graph) AllEdges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, g.e)
	for x, slot := range g.adj {
		out = appendDistinct(out, x, slot)
	}

	return out
}

// Edges returns a lazy, restartable sequence over the same edges as
// AllEdges, in the same order. The sequence reads a snapshot of the
// slots taken when Edges is called.
func (g *Graph) Edges() iter.Seq[*Edge] {
	g.mu.RLock()
	slots := make([][]*Edge, len(g.adj))
	copy(slots, g.adj) // slice headers only; slot contents are append-only
	g.mu.RUnlock()

	return func(yield func(*Edge) bool) {
		var buf []*Edge
		for x, slot := range slots {
			buf = appendDistinct(buf[:0], x, slot)
			for _, e := range buf {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// appendDistinct appends to dst the edges of slot x that x "owns":
// those whose other endpoint is greater than x, and every second
// occurrence of a self-loop counted from the first.
func appendDistinct(dst []*Edge, x int, slot []*Edge) []*Edge {
	selfLoops := 0
	for _, e := range slot {
		other := e.w
		if other == x {
			other = e.v
		}
		switch {
		case other > x:
			dst = append(dst, e)
		case other == x:
			// Self-loop: entries come in consecutive pairs; keep the first of each.
			if selfLoops%2 == 0 {
				dst = append(dst, e)
			}
			selfLoops++
		}
	}

	return dst
}
