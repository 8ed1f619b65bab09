// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// impl_grid.go — implementation of the Grid(cols) constructor.
//
// Contract:
//   • cols ≥ 1 and cols divides V (else ErrBadSize); rows = V / cols.
//   • Vertex index (r,c) ↦ r*cols + c (row-major).
//   • 4-neighborhood: right (r, c+1) then down (r+1, c), per cell in
//     row-major order; each undirected edge appears once.
//   • Edge total: rows*(cols-1) + (rows-1)*cols.
//
// Complexity: O(V) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that lays the vertices of g out as a rows×cols
// lattice with the given number of columns and links orthogonal neighbors.
func Grid(cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.VertexCount()
		if n < minGridDim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGrid, n, minGridDim, ErrTooFewVertices)
		}
		if cols < minGridDim || n%cols != 0 {
			return fmt.Errorf("%s: cols=%d does not divide n=%d: %w", methodGrid, cols, n, ErrBadSize)
		}
		rows := n / cols

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addWeighted(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addWeighted(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
