// SPDX-License-Identifier: MIT
// Package core_test verifies Edge construction and ordering contracts.

package core_test

import (
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ewmst/core"
)

// mustEdge builds an edge or fails the test.
func mustEdge(t testing.TB, v, w int, weight float64) *core.Edge {
	t.Helper()
	e, err := core.NewEdge(v, w, weight)
	require.NoError(t, err)

	return e
}

// TestNewEdge_Validation checks sign and NaN rejection.
func TestNewEdge_Validation(t *testing.T) {
	_, err := core.NewEdge(-1, 0, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.NewEdge(0, -3, 1)
	assert.ErrorIs(t, err, core.ErrVertexOutOfRange)

	_, err = core.NewEdge(0, 1, math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)

	// Infinite weights are ordered and therefore allowed.
	e, err := core.NewEdge(0, 1, math.Inf(1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(e.Weight(), 1))
}

// TestEdge_Accessors covers Either/Other/IsLoop/String.
func TestEdge_Accessors(t *testing.T) {
	e := mustEdge(t, 3, 7, 0.25)
	assert.Equal(t, 3, e.Either())

	other, err := e.Other(3)
	require.NoError(t, err)
	assert.Equal(t, 7, other)

	other, err = e.Other(7)
	require.NoError(t, err)
	assert.Equal(t, 3, other)

	_, err = e.Other(5)
	assert.ErrorIs(t, err, core.ErrNotEndpoint)

	assert.False(t, e.IsLoop())
	assert.Equal(t, "3-7 0.25000", e.String())

	loop := mustEdge(t, 2, 2, 1)
	assert.True(t, loop.IsLoop())
	other, err = loop.Other(2)
	require.NoError(t, err)
	assert.Equal(t, 2, other)
}

// TestEdge_Compare covers weight ordering and the endpoint tie-break.
func TestEdge_Compare(t *testing.T) {
	light := mustEdge(t, 5, 6, 1.0)
	heavy := mustEdge(t, 0, 1, 2.0)
	assert.Equal(t, -1, light.Compare(heavy))
	assert.Equal(t, 1, heavy.Compare(light))
	assert.True(t, light.Less(heavy))

	// Equal weights: ordered by (min, max) regardless of endpoint orientation.
	a := mustEdge(t, 4, 1, 3.0) // (1,4)
	b := mustEdge(t, 2, 3, 3.0) // (2,3)
	c := mustEdge(t, 1, 5, 3.0) // (1,5)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, -1, a.Compare(c))
	assert.Equal(t, -1, c.Compare(b))

	// Same weight and same endpoints, either orientation: equal.
	assert.Equal(t, 0, mustEdge(t, 1, 4, 3.0).Compare(a))
	assert.False(t, a.Less(mustEdge(t, 1, 4, 3.0)))
}

// TestEdge_SortIsReproducible sorts two shuffles of one edge set and diffs them.
func TestEdge_SortIsReproducible(t *testing.T) {
	base := []*core.Edge{
		mustEdge(t, 0, 1, 1.0),
		mustEdge(t, 2, 3, 1.0),
		mustEdge(t, 3, 1, 1.0),
		mustEdge(t, 0, 2, 0.5),
		mustEdge(t, 4, 4, 0.5),
	}
	first := []*core.Edge{base[4], base[2], base[0], base[3], base[1]}
	second := []*core.Edge{base[1], base[3], base[0], base[2], base[4]}
	byOrder := func(s []*core.Edge) func(i, j int) bool {
		return func(i, j int) bool { return s[i].Less(s[j]) }
	}
	sort.Slice(first, byOrder(first))
	sort.Slice(second, byOrder(second))

	render := func(s []*core.Edge) []string {
		out := make([]string, len(s))
		for i, e := range s {
			out[i] = e.String()
		}
		return out
	}
	want := []string{"0-2 0.50000", "4-4 0.50000", "0-1 1.00000", "3-1 1.00000", "2-3 1.00000"}
	if diff := cmp.Diff(want, render(first)); diff != "" {
		t.Errorf("first sort mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(render(first), render(second)); diff != "" {
		t.Errorf("sort not reproducible (-first +second):\n%s", diff)
	}
}
