package config

// RunConfig is the top-level YAML structure describing one ewmst run:
// which graph to generate and how to span it.
//
// Vertices is a pointer so a missing key is distinguishable from 0.
type RunConfig struct {
	Vertices        *int        `yaml:"vertices"`
	Topology        string      `yaml:"topology"`
	Probability     float64     `yaml:"probability"`
	Edges           int         `yaml:"edges"`
	Columns         int         `yaml:"columns"`
	Center          int         `yaml:"center"`
	Seed            int64       `yaml:"seed"`
	Weights         WeightRange `yaml:"weights"`
	Method          string      `yaml:"method"`
	Root            int         `yaml:"root"`
	RequireSpanning bool        `yaml:"require_spanning"`
	MetricsTextfile string      `yaml:"metrics_textfile"`
}

// VertexCount returns the configured vertex count, 0 when unset.
func (c *RunConfig) VertexCount() int {
	if c.Vertices == nil {
		return 0
	}
	return *c.Vertices
}

// IntPtr returns a pointer to n, for building a RunConfig in code.
func IntPtr(n int) *int { return &n }

// WeightRange bounds the uniform edge-weight distribution, [Min, Max).
type WeightRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Topology names accepted in RunConfig.Topology.
const (
	TopologyComplete     = "complete"
	TopologyPath         = "path"
	TopologyCycle        = "cycle"
	TopologyStar         = "star"
	TopologyGrid         = "grid"
	TopologyRandomSparse = "random_sparse"
	TopologyRandomMulti  = "random_multi"
)

// Defaults applied by the loader to zero-valued fields.
const (
	DefaultTopology    = TopologyRandomSparse
	DefaultProbability = 0.1
	DefaultMethod      = "kruskal"
	DefaultWeightMax   = 1.0
)
