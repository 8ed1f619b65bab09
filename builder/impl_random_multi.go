// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_random_multi.go - implementation of the RandomMulti(m) constructor.
//
// Model:
//   - m edges, each with both endpoints drawn uniformly and independently
//     from [0, V). Self-loops and parallel edges are kept as drawn.
//
// Contract:
//   - V ≥ 1 (else ErrTooFewVertices).
//   - m ≥ 0 (else ErrBadSize).
//   - cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//
// Complexity: O(m) time, O(1) extra space.
//
// Determinism:
//   - Per edge the draws are v, w, then weight; fixed seed ⇒ fixed multigraph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodRandomMulti      = "RandomMulti"
	minRandomMultiVertices = 1
)

// RandomMulti returns a Constructor that adds m uniformly random edges to g.
func RandomMulti(m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minRandomMultiVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomMulti, n, minRandomMultiVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandomMulti, m, ErrBadSize)
		}
		if m == 0 {
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomMulti, ErrNeedRandSource)
		}

		for k := 0; k < m; k++ {
			v := cfg.rng.Intn(n)
			w := cfg.rng.Intn(n)
			if err := addWeighted(g, cfg, methodRandomMulti, v, w); err != nil {
				return err
			}
		}

		return nil
	}
}
