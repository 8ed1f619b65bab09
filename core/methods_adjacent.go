// File: methods_adjacent.go
// Role: Per-vertex queries: Adjacent and Degree.
// Determinism:
//   - Adjacent yields edges in insertion order.
// Concurrency:
//   - Read lock held only while the slot is snapshotted.

package core

import "iter"

// Adjacent returns the edges incident to v as a lazy sequence.
//
// The sequence is restartable: every range over it walks the same
// snapshot of adj[v], taken when Adjacent was called, in insertion order.
// A self-loop at v appears twice.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, V).
//
// Complexity: O(1) to create, O(deg(v)) to walk.
func (g *Graph) Adjacent(v int) (iter.Seq[*Edge], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	// Snapshot the slice header. Later appends never touch the first len entries.
	g.mu.RLock()
	slot := g.adj[v][:len(g.adj[v]):len(g.adj[v])]
	g.mu.RUnlock()

	return func(yield func(*Edge) bool) {
		for _, e := range slot {
			if !yield(e) {
				return
			}
		}
	}, nil
}

// Degree returns the number of adjacency entries at v; self-loops count twice.
//
// Errors:
//   - ErrVertexOutOfRange if v is outside [0, V).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[v]), nil
}
