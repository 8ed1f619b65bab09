package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/ewmst/prim_kruskal"
)

// Validate checks the config for:
//   - a present, nonnegative vertex count and known topology/method names
//   - topology parameters that fit the vertex count
//   - a finite, ordered weight range
//
// Every problem is reported; the messages are joined into one error.
func Validate(cfg *RunConfig) error {
	var errs []string

	n := cfg.VertexCount()
	switch {
	case cfg.Vertices == nil:
		errs = append(errs, "vertices: is required")
	case n < 0:
		errs = append(errs, fmt.Sprintf("vertices: must be >= 0, got %d", n))
	}

	switch cfg.Topology {
	case TopologyComplete, TopologyPath, TopologyCycle:
	case TopologyStar:
		if cfg.Center < 0 || (n > 0 && cfg.Center >= n) {
			errs = append(errs, fmt.Sprintf("center: %d not in [0,%d)", cfg.Center, n))
		}
	case TopologyGrid:
		if cfg.Columns < 1 {
			errs = append(errs, fmt.Sprintf("columns: must be >= 1 for grid, got %d", cfg.Columns))
		} else if n%cfg.Columns != 0 {
			errs = append(errs, fmt.Sprintf("columns: %d does not divide vertices %d", cfg.Columns, n))
		}
	case TopologyRandomSparse:
		if cfg.Probability < 0 || cfg.Probability > 1 || math.IsNaN(cfg.Probability) {
			errs = append(errs, fmt.Sprintf("probability: %g not in [0,1]", cfg.Probability))
		}
	case TopologyRandomMulti:
		if cfg.Edges < 0 {
			errs = append(errs, fmt.Sprintf("edges: must be >= 0, got %d", cfg.Edges))
		}
	default:
		errs = append(errs, fmt.Sprintf("topology: unknown %q", cfg.Topology))
	}

	w := cfg.Weights
	switch {
	case math.IsNaN(w.Min) || math.IsNaN(w.Max) || math.IsInf(w.Min, 0) || math.IsInf(w.Max, 0):
		errs = append(errs, "weights: bounds must be finite")
	case w.Max < w.Min:
		errs = append(errs, fmt.Sprintf("weights: max %g < min %g", w.Max, w.Min))
	}

	switch cfg.Method {
	case prim_kruskal.MethodKruskal:
	case prim_kruskal.MethodPrim:
		if cfg.Root < 0 || (n > 0 && cfg.Root >= n) {
			errs = append(errs, fmt.Sprintf("root: %d not in [0,%d)", cfg.Root, n))
		}
	default:
		errs = append(errs, fmt.Sprintf("method: unknown %q", cfg.Method))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
