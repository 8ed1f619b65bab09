// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: read-only getters and shared validation.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity.

package core

import "fmt"

// VertexCount returns V, the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	// v is immutable after NewGraph; no lock needed.
	return g.v
}

// HasVertex reports whether v lies in [0, V).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.v
}

// validateVertex returns ErrVertexOutOfRange, wrapped with the offending
// vertex and the valid range, unless 0 <= v < V.
func (g *Graph) validateVertex(v int) error {
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.v-1)
	}

	return nil
}
