// File: methods_clone.go
// Role: Deep copy of graph instances.
// Determinism:
//   - Clone reproduces every adjacency slot in exactly the source order.
// Concurrency:
//   - Read lock on the source for the whole copy; no mutation of the source.

package core

// Clone returns a deep copy of the Graph: vertex count, edge count and
// adjacency, with the same order in every slot.
//
// Each source edge is copied once; the copy is referenced from the same
// slots as the original, so a non-loop edge is still shared by its two
// endpoints and a self-loop still sits twice in its slot.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{v: g.v, e: g.e, adj: make([][]*Edge, g.v)}
	// copies maps a source edge to its single duplicate.
	copies := make(map[*Edge]*Edge, g.e)
	var (
		ne *Edge
		ok bool
	)
	for x, slot := range g.adj {
		clone.adj[x] = make([]*Edge, len(slot))
		for i, e := range slot {
			if ne, ok = copies[e]; !ok {
				ne = &Edge{v: e.v, w: e.w, weight: e.weight}
				copies[e] = ne
			}
			clone.adj[x][i] = ne
		}
	}

	return clone
}
