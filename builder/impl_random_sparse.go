// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Model:
//   - Erdős–Rényi G(V, p): include each unordered pair {i,j}, i<j,
//     independently with probability p. No loops, no parallel edges.
//
// Contract:
//   - V ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1, not NaN (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight policy: cfg.weightFn(cfg.rng), drawn only for included pairs.
//
// Complexity:
//   - Time: O(V²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Fixed trial order: i asc, j asc (j>i); fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each vertex pair of g
// independently with probability p.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		n := g.VertexCount()
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per pair; boundaries skip the draw.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p < probMax && cfg.rng.Float64() >= p:
					continue
				}
				if err := addWeighted(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
