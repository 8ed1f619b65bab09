// File: weight_fn_test.go
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ewmst/builder"
)

func TestDefaultWeightFn(t *testing.T) {
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rand.New(rand.NewSource(1))))
}

func TestConstantWeightFn(t *testing.T) {
	fn := builder.ConstantWeightFn(-3.25)
	assert.Equal(t, -3.25, fn(nil))
	assert.Equal(t, math.Inf(1), builder.ConstantWeightFn(math.Inf(1))(nil))
	assert.Panics(t, func() { builder.ConstantWeightFn(math.NaN()) })
}

func TestUniformWeightFn(t *testing.T) {
	fn := builder.UniformWeightFn(-5, 5)
	// nil RNG falls back to the lower bound.
	assert.Equal(t, -5.0, fn(nil))

	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 1000; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, -5.0)
		assert.Less(t, w, 5.0)
	}

	assert.Equal(t, 7.0, builder.UniformWeightFn(7, 7)(rng))
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.UniformWeightFn(math.NaN(), 1) })
}

func TestExponentialWeightFn(t *testing.T) {
	fn := builder.ExponentialWeightFn(2)
	assert.Equal(t, builder.DefaultEdgeWeight, fn(nil))

	rng := rand.New(rand.NewSource(3))
	sum := 0.0
	const draws = 20000
	for i := 0; i < draws; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, 0.0)
		sum += w
	}
	// mean 1/rate = 0.5
	assert.InDelta(t, 0.5, sum/draws, 0.05)

	assert.Panics(t, func() { builder.ExponentialWeightFn(0) })
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWithRand_SharedSource(t *testing.T) {
	build := func() float64 {
		g, err := builder.BuildGraph(2, []builder.BuilderOption{
			builder.WithRand(rand.New(rand.NewSource(77))),
			builder.WithUniformWeight(0, 1),
		}, builder.Path())
		assert.NoError(t, err)
		return g.AllEdges()[0].Weight()
	}
	assert.Equal(t, build(), build())
}
