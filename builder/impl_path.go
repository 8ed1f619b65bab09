// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_path.go — implementation of the Path() constructor.
//
// Contract:
//   • V ≥ 2 (else ErrTooFewVertices).
//   • Emits the chain 0—1—…—(V-1): exactly V-1 edges.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity: O(V) time, O(1) extra space.
//
// Determinism: edges emitted for i ascending.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that links consecutive vertices of g into a
// simple path. A path over all vertices is itself a spanning tree, which makes
// it the usual backbone for connected random graphs.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i+1 < n; i++ {
			if err := addWeighted(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
