// Package builder generates edge-weighted graphs for tests, benchmarks and
// the ewmst command. A build is one call:
//
//	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.Path(), builder.RandomMulti(3*n))
//
// BuildGraph fixes the vertex set 0..n-1 and then lets each Constructor add
// edges in order, so topologies compose (a Path backbone plus random extras
// yields a connected multigraph).
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the RNG used by stochastic constructors and weights.
//     – WithWeightFn:      the per-edge weight generator.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:     constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:    fixed user-provided value.
//     – UniformWeightFn:     uniform ∼U[min,max).
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Constructors: Complete, Path, Cycle, Star, Grid, RandomSparse, RandomMulti.
//
// Guarantees:
//
//   - Determinism: identical (n, options, constructors) produce identical
//     graphs, edge by edge and weight by weight.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//   - Documented complexity per constructor.
package builder
