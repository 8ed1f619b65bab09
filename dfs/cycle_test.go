package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ewmst/builder"
	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/dfs"
)

func graphOf(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	return g
}

func TestFindCycle_NilGraph(t *testing.T) {
	_, err := dfs.FindCycle(nil)
	assert.True(t, errors.Is(err, dfs.ErrGraphNil))
}

func TestFindCycle(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want []int
	}{
		{"empty", graphOf(t, 0), nil},
		{"isolated", graphOf(t, 3), nil},
		{"tree", graphOf(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{3, 4}), nil},
		{"forest", graphOf(t, 5, [2]int{0, 1}, [2]int{3, 4}), nil},
		{"self-loop", graphOf(t, 3, [2]int{0, 1}, [2]int{2, 2}), []int{2}},
		{"parallel pair", graphOf(t, 3, [2]int{1, 2}, [2]int{0, 1}, [2]int{2, 1}), []int{1, 2}},
		{"triangle", graphOf(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}), []int{0, 1, 2}},
		{"cycle in second tree", graphOf(t, 6, [2]int{0, 1}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 3}), []int{3, 4, 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.FindCycle(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			ok, err := dfs.IsAcyclic(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want == nil, ok)
		})
	}
}

func TestIsAcyclic_Generated(t *testing.T) {
	path, err := builder.BuildGraph(200, nil, builder.Path())
	require.NoError(t, err)
	ok, err := dfs.IsAcyclic(path)
	require.NoError(t, err)
	assert.True(t, ok)

	grid, err := builder.BuildGraph(16, nil, builder.Grid(4))
	require.NoError(t, err)
	cycle, err := dfs.FindCycle(grid)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 7, 6}, cycle)
}
