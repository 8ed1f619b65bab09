// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_complete.go — implementation of the Complete() constructor.
//
// Contract:
//   • V ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weight of every edge = cfg.weightFn(cfg.rng).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(V²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

// File-local constants for method tagging and parameter minima (no magic numbers).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that connects every pair of vertices of g,
// turning it into K_V.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		// K_n is defined for n≥1.
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addWeighted(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
