// SPDX-License-Identifier: MIT
// Package: ewmst/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX..., XWeightFn).

package builder

import "errors"

// ErrTooFewVertices indicates that the target graph has fewer vertices than
// the requested topology needs (e.g. Cycle on fewer than 3 vertices).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadSize indicates sizes that do not fit the graph (e.g. Grid columns
// that do not divide the vertex count, a negative edge budget, a Star center
// outside the vertex range).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrConstructFailed indicates that construction could not proceed (nil
// constructor, invalid vertex count, or a core insertion failure).
var ErrConstructFailed = errors.New("builder: construction failed")
