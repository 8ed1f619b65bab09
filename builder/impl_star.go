// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_star.go — implementation of the Star(center) constructor.
//
// Contract:
//   • V ≥ 2 (else ErrTooFewVertices).
//   • 0 ≤ center < V (else ErrBadSize).
//   • Emits center—i for every i ≠ center, i ascending: exactly V-1 edges.
//
// Complexity: O(V) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that joins the given center to every other vertex.
func Star(center int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if center < 0 || center >= n {
			return fmt.Errorf("%s: center=%d not in [0,%d): %w", methodStar, center, n, ErrBadSize)
		}

		for i := 0; i < n; i++ {
			if i == center {
				continue
			}
			if err := addWeighted(g, cfg, methodStar, center, i); err != nil {
				return err
			}
		}

		return nil
	}
}
