// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// api.go — public entry point of the builder package.
//
// Contract:
//   • BuildGraph allocates a core.Graph with n vertices and applies every
//     Constructor in order over those vertices.
//   • Constructors only add edges; the vertex set is fixed by n.
//   • The same (n, options, constructors) always yields the same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ewmst/core"
)

// Constructor adds one topology's edges to g, drawing weights and random
// choices from cfg. Implementations must not panic; they return errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with n vertices and applies cons in order.
//
// Errors:
//   - ErrConstructFailed wrapping core.ErrInvalidVertexCount for n < 0.
//   - ErrConstructFailed for a nil constructor.
//   - Any sentinel returned by a constructor, wrapped with "BuildGraph: ".
//
// Complexity: O(n) plus the sum of constructor costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	// Create the target graph; the vertex set is fixed from here on.
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addWeighted inserts u—v with the next configured weight, wrapping
// failures with the method tag.
func addWeighted(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	w := cfg.weightFn(cfg.rng)
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d—%d, w=%g): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
