// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_cycle.go — implementation of the Cycle() constructor.
//
// Contract:
//   • V ≥ 3 (else ErrTooFewVertices). Smaller rings would need a loop or a
//     parallel edge, which are RandomMulti's business.
//   • Emits the path 0—1—…—(V-1) followed by the closing edge (V-1)—0.
//   • Weight policy: cfg.weightFn(cfg.rng) per edge.
//
// Complexity: O(V) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that closes the vertices of g into a simple ring.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// ring edges i—(i+1) mod n, closing edge last
		for i := 0; i < n; i++ {
			if err := addWeighted(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
