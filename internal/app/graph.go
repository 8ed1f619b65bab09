package app

import (
	"fmt"

	"github.com/katalvlaran/ewmst/builder"
	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/internal/config"
)

// buildGraph generates the graph a run config describes. Zero vertices
// yields the empty graph regardless of topology.
func buildGraph(cfg *config.RunConfig) (*core.Graph, error) {
	opts := []builder.BuilderOption{
		builder.WithSeed(cfg.Seed),
		builder.WithUniformWeight(cfg.Weights.Min, cfg.Weights.Max),
	}
	if cfg.VertexCount() == 0 {
		return builder.BuildGraph(0, opts)
	}

	var ctor builder.Constructor
	switch cfg.Topology {
	case config.TopologyComplete:
		ctor = builder.Complete()
	case config.TopologyPath:
		ctor = builder.Path()
	case config.TopologyCycle:
		ctor = builder.Cycle()
	case config.TopologyStar:
		ctor = builder.Star(cfg.Center)
	case config.TopologyGrid:
		ctor = builder.Grid(cfg.Columns)
	case config.TopologyRandomSparse:
		ctor = builder.RandomSparse(cfg.Probability)
	case config.TopologyRandomMulti:
		ctor = builder.RandomMulti(cfg.Edges)
	default:
		return nil, fmt.Errorf("unknown topology %q", cfg.Topology)
	}

	return builder.BuildGraph(cfg.VertexCount(), opts, ctor)
}
